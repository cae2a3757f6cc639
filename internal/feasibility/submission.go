package feasibility

import (
	"math"
	"regexp"
	"strings"

	"github.com/magician360/opportunity-engine/internal/types"
)

// Rubric weights for the submission scorer. They sum to 100.
const (
	completenessWeight = 30
	specificityWeight  = 25
	clarityWeight      = 20
	alignmentWeight    = 15
	viabilityWeight    = 10
)

// Specificity length caps: a field at or beyond its cap earns its full
// sub-weight, shorter fields earn proportionally.
const (
	needsLengthCap  = 200
	goalsLengthCap  = 200
	marketLengthCap = 150
)

// alignmentKeywords are matched case-insensitively against the
// combined goals, accommodation-needs, and expected-outcomes text.
var alignmentKeywords = []string{
	"employment", "career", "opportunity", "growth",
	"independence", "accessible", "texas", "community",
}

// structuredBudget detects a dollar sign, a currency code, or any digit.
var structuredBudget = regexp.MustCompile(`\$|USD|\d+`)

// ScoreSubmission scores a submission on the report-path rubric: a
// 6-field completeness denominator, length-capped specificity, and a
// clarity factor in place of the Engine's budget check. Deterministic,
// always within [0,100].
func ScoreSubmission(data types.ValidationFormData) int {
	score := 0.0

	// Completeness: whitespace-only fields do not count.
	completed := 0
	for _, field := range []string{
		data.BusinessName, data.BusinessType, string(data.FundingAgency),
		data.AccommodationNeeds, data.BusinessGoals, data.EstimatedBudget,
	} {
		if strings.TrimSpace(field) != "" {
			completed++
		}
	}
	score += float64(completed) / 6 * completenessWeight

	// Specificity: length-capped ratios weighted 0.4/0.4/0.2.
	specificity := lengthRatio(data.AccommodationNeeds, needsLengthCap)*0.4 +
		lengthRatio(data.BusinessGoals, goalsLengthCap)*0.4 +
		lengthRatio(data.TargetMarket, marketLengthCap)*0.2
	score += specificity * specificityWeight

	// Clarity: structured budget, stated timeline, stated outcomes.
	clarity := 0.0
	if structuredBudget.MatchString(data.EstimatedBudget) {
		clarity += 0.3
	}
	if data.Timeline != "" {
		clarity += 0.3
	}
	if data.ExpectedOutcomes != "" {
		clarity += 0.4
	}
	score += clarity * clarityWeight

	// Alignment: fraction of keywords present in the narrative text.
	narrative := strings.ToLower(data.BusinessGoals + " " + data.AccommodationNeeds + " " + data.ExpectedOutcomes)
	matches := 0
	for _, keyword := range alignmentKeywords {
		if strings.Contains(narrative, keyword) {
			matches++
		}
	}
	score += float64(matches) / float64(len(alignmentKeywords)) * alignmentWeight

	// Market viability: substantive market description plus a named type.
	viability := 0.0
	if len(data.TargetMarket) > 50 {
		viability += 0.5
	}
	if data.BusinessType != "" {
		viability += 0.5
	}
	score += viability * viabilityWeight

	return int(math.Round(math.Min(score, 100)))
}

func lengthRatio(s string, limit int) float64 {
	return math.Min(float64(len(s))/float64(limit), 1.0)
}
