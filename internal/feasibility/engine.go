// Package feasibility scores funding-justification submissions.
//
// Two independently evolved rubrics exist in this system and are kept
// as two named scorers on purpose: the Engine variant (4-field
// completeness denominator, budget well-formedness factor) and the
// submission variant used by the report path (6-field denominator,
// clarity factor). Which one is authoritative for production has not
// been settled, so neither replaces the other.
package feasibility

import (
	"fmt"
	"math"
	"strings"

	"github.com/magician360/opportunity-engine/internal/types"
)

// Recommendation tier labels, inclusive on each lower bound.
const (
	RecommendationHigh     = "High feasibility"
	RecommendationModerate = "Moderate feasibility"
	RecommendationRefine   = "Needs refinement"

	highTierFloor     = 80
	moderateTierFloor = 60
)

// marketKeywords drive the Engine's market-alignment factor.
var marketKeywords = []string{"texas", "local", "community", "market", "customer"}

// engineRequiredFields is the Engine completeness denominator.
const engineRequiredFields = 4

// Engine is the 4-field feasibility scorer. It is stateless; the zero
// value is ready to use.
type Engine struct{}

// NewEngine creates an Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// CalculateFeasibility scores a submission on the Engine rubric.
// Missing fields contribute zero rather than erroring, the result is
// always within [0,100], and identical input always yields an
// identical score.
func (e *Engine) CalculateFeasibility(data types.ValidationFormData) types.FeasibilityResult {
	score := 0.0
	factors := make([]string, 0, 4)

	// Completeness (30): fraction of the four required fields present.
	completed := 0
	for _, field := range []string{data.BusinessName, data.BusinessType, data.BusinessGoals, data.AccommodationNeeds} {
		if field != "" {
			completed++
		}
	}
	completeness := float64(completed) / engineRequiredFields
	score += completeness * 30
	factors = append(factors, fmt.Sprintf("Completeness: %.0f%%", completeness*100))

	// Detail level (25): length-thresholded sub-scores.
	detail := 0.0
	if len(data.AccommodationNeeds) > 100 {
		detail += 0.4
	}
	if len(data.BusinessGoals) > 100 {
		detail += 0.4
	}
	if len(data.TargetMarket) > 50 {
		detail += 0.2
	}
	score += detail * 25
	factors = append(factors, fmt.Sprintf("Detail Level: %.0f%%", detail*100))

	// Budget well-formedness (20): any digit counts.
	if strings.ContainsAny(data.EstimatedBudget, "0123456789") {
		score += 20
		factors = append(factors, "Budget: Well-defined")
	} else {
		factors = append(factors, "Budget: Needs specification")
	}

	// Market alignment (15): keyword presence in market + goals text.
	marketText := strings.ToLower(data.TargetMarket + " " + data.BusinessGoals)
	matches := 0
	for _, keyword := range marketKeywords {
		if strings.Contains(marketText, keyword) {
			matches++
		}
	}
	marketScore := math.Min(float64(matches)/float64(len(marketKeywords)), 1.0)
	score += marketScore * 15
	factors = append(factors, fmt.Sprintf("Market Alignment: %.0f%%", marketScore*100))

	// Implementation readiness (10): flat bonuses.
	if data.Timeline != "" {
		score += 5
	}
	if data.ExpectedOutcomes != "" {
		score += 5
	}

	final := int(math.Round(math.Min(score, 100)))
	return types.FeasibilityResult{
		Score:          final,
		Factors:        factors,
		Recommendation: Recommendation(final),
	}
}

// Recommendation maps a 0-100 score to its qualitative tier.
func Recommendation(score int) string {
	switch {
	case score >= highTierFloor:
		return RecommendationHigh
	case score >= moderateTierFloor:
		return RecommendationModerate
	default:
		return RecommendationRefine
	}
}
