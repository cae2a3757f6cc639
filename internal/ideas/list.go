// Package ideas provides the canned opportunity-idea generators: a
// list-backed generator and a templated sentence generator. Both are
// pure apart from the injected random draw.
package ideas

import (
	"math/rand"
	"time"

	"github.com/magician360/opportunity-engine/internal/types"
)

// NoIdeasSentinel is returned by the list generator for an unknown
// category or an empty list.
const NoIdeasSentinel = "No ideas available for this category yet."

// ideaLists holds the canned Texas idea titles for each category.
var ideaLists = map[types.Category][]string{
	types.CategoryJobs: {
		"Remote software developer for Austin's growing tech hub",
		"Healthcare administrator in Houston's medical center",
		"Renewable energy technician for West Texas wind farms",
		"Oil and gas field supervisor in the Permian Basin",
		"Cybersecurity analyst for Dallas financial institutions",
		"Bilingual customer service representative for border region businesses",
		"Construction project manager for expanding Texas suburbs",
		"Logistics coordinator for Texas-Mexico trade routes",
		"Agricultural technology specialist for Central Texas farms",
		"Tourism and hospitality manager in San Antonio",
		"Corporate relocation specialist helping businesses move to Texas",
		"ESL teacher for growing immigrant communities",
		"Aerospace engineer for NASA in Houston",
		"Real estate appraiser in fast-growing Texas cities",
		"Water resource manager addressing Texas drought challenges",
	},
	types.CategoryBusinesses: {
		"Mobile food truck featuring Texas-Mexican fusion cuisine",
		"Eco-friendly landscaping service using native Texas plants",
		"Co-working space catering to remote workers in suburban areas",
		"Electric vehicle charging station network along Texas highways",
		"Boutique Texas wine tourism company",
		"Disaster preparedness consulting for Gulf Coast businesses",
		"Specialty pecan products using Texas-grown nuts",
		"Tech repair service for rural Texas communities",
		"Custom home cooling solutions for Texas heat",
		"Local delivery service connecting Texas farmers to urban consumers",
		"Bilingual business consulting for Texas-Mexico commerce",
		"Solar installation company for residential Texas properties",
		"Barbecue equipment and supplies retailer",
		"Water conservation technology for Texas ranches and farms",
		"Texas-themed subscription box featuring local products",
	},
	types.CategorySelfEmployment: {
		"Freelance content creator specializing in Texas tourism",
		"Mobile notary public serving rural Texas communities",
		"Social media manager for Texas small businesses",
		"Independent real estate investor focusing on Texas border towns",
		"Personal chef specializing in Texas regional cuisines",
		"Drone photographer for Texas ranches and properties",
		"Online Texas history tutor for homeschooled students",
		"Virtual assistant for Texas oil and gas professionals",
		"Custom boot maker preserving Texas craftsmanship",
		"Independent insurance agent specializing in Texas weather risks",
		"Freelance translator for Texas-Mexico business documents",
		"Mobile auto detailing service for luxury vehicles in Texas suburbs",
		"Independent tour guide for Texas historical sites",
		"Handmade Texas-themed crafts seller on e-commerce platforms",
		"Personal fitness trainer specializing in outdoor Texas activities",
	},
	types.CategoryContracts: {
		"School district technology implementation specialist",
		"Municipal website development and maintenance",
		"Environmental impact assessment for Texas infrastructure projects",
		"Grant writer for Texas rural development initiatives",
		"Event coordinator for Texas state and county fairs",
		"Healthcare facility compliance consultant",
		"Texas government agency IT security auditor",
		"Public transportation planning consultant for growing Texas cities",
		"Renewable energy project manager for municipal installations",
		"Disaster recovery specialist for Gulf Coast communities",
		"Cultural sensitivity trainer for Texas businesses with diverse workforces",
		"Water quality testing for Texas municipalities",
		"Bilingual community outreach coordinator for public health initiatives",
		"Texas historical building restoration specialist",
		"Energy efficiency consultant for Texas public buildings",
	},
}

// ListGenerator picks a random canned idea title for a category.
type ListGenerator struct {
	rng *rand.Rand
}

// NewListGenerator creates a list generator. A nil rng gets a
// time-seeded source.
func NewListGenerator(rng *rand.Rand) *ListGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ListGenerator{rng: rng}
}

// Generate returns a random idea for the category, or NoIdeasSentinel
// when the category is unknown or has no entries.
func (g *ListGenerator) Generate(category types.Category) string {
	list := ideaLists[category]
	if len(list) == 0 {
		return NoIdeasSentinel
	}
	return list[g.rng.Intn(len(list))]
}
