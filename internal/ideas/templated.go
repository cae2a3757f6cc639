package ideas

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/magician360/opportunity-engine/internal/types"
)

// CategoryNotFoundSentinel is returned by the templated generator for
// an unknown category.
const CategoryNotFoundSentinel = "Category not found"

// texasKeywords are the location phrases mixed into templated ideas.
var texasKeywords = []string{
	"Texas", "Lone Star", "Dallas", "Houston", "Austin",
	"San Antonio", "border", "Gulf Coast", "Permian Basin",
}

// categoryTemplates are the sector phrases available per category.
var categoryTemplates = map[types.Category][]string{
	types.CategoryJobs: {
		"technology sector",
		"energy industry",
		"healthcare field",
		"logistics and transportation",
		"agriculture and farming",
	},
	types.CategoryBusinesses: {
		"retail innovation",
		"service-based enterprise",
		"sustainable solutions",
		"food and beverage",
		"technology startup",
	},
	types.CategorySelfEmployment: {
		"freelance services",
		"consulting practice",
		"creative arts",
		"skilled trades",
		"digital services",
	},
	types.CategoryContracts: {
		"government contracting",
		"municipal services",
		"infrastructure projects",
		"public sector consulting",
		"community services",
	},
}

// TemplatedGenerator composes an idea sentence from a category template
// and a random Texas keyword.
type TemplatedGenerator struct {
	rng *rand.Rand
}

// NewTemplatedGenerator creates a templated generator. A nil rng gets a
// time-seeded source.
func NewTemplatedGenerator(rng *rand.Rand) *TemplatedGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &TemplatedGenerator{rng: rng}
}

// Generate returns a composed idea sentence for the category, or
// CategoryNotFoundSentinel when the category is unknown.
func (g *TemplatedGenerator) Generate(category types.Category) string {
	templates := categoryTemplates[category]
	if len(templates) == 0 {
		return CategoryNotFoundSentinel
	}

	template := templates[g.rng.Intn(len(templates))]
	location := texasKeywords[g.rng.Intn(len(texasKeywords))]

	switch category {
	case types.CategoryJobs:
		return fmt.Sprintf("AI-optimized position in %s focusing on %s market opportunities with emphasis on innovation and growth", template, location)
	case types.CategoryBusinesses:
		return fmt.Sprintf("Launch a %s in %s leveraging Texas market advantages and sustainable business practices", template, location)
	case types.CategorySelfEmployment:
		return fmt.Sprintf("Build a %s business serving the %s area with focus on flexible, scalable operations", template, location)
	case types.CategoryContracts:
		return fmt.Sprintf("Secure %s opportunities in %s region supporting public infrastructure and community development", template, location)
	default:
		return "Generate innovative Texas-focused opportunity"
	}
}
