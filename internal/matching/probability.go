// Package matching selects catalog opportunities for a user profile and
// scores the fit with a weighted match-probability rubric.
package matching

import (
	"math"
	"strings"

	"github.com/magician360/opportunity-engine/internal/types"
)

// Factor weights. Every factor has a fixed maximum and the maxima sum
// to 100, so the final probability is just the rounded earned total.
const (
	geographicWeight = 20
	educationWeight  = 15
	skillsWeight     = 25
	financialWeight  = 15
	timelineWeight   = 10
	programsWeight   = 15
)

// Startup-cost bands for the financial factor. An unknown startup cost
// on a business entry is treated as the microloan ceiling.
const (
	defaultStartupCost  = 50_000
	microloanCeiling    = 50_000    // SBA Microloan eligible
	sevenALoanCeiling   = 5_000_000 // SBA 7(a) eligible
	educationGapPenalty = 5
)

// MatchProbability scores how well an opportunity fits the user's
// circumstances, as an integer 0-100. The profile is read-only.
func MatchProbability(opp *types.Opportunity, user *types.UserCircumstances) int {
	score := geographicScore(opp, user) +
		educationScore(opp, user) +
		skillOverlapScore(opp, user) +
		financialScore(opp, user) +
		timelineScore(opp, user) +
		specialProgramsScore(opp, user)

	return int(math.Round(score))
}

// geographicScore awards full credit for a same-region opportunity and
// half for a user willing to relocate.
func geographicScore(opp *types.Opportunity, user *types.UserCircumstances) float64 {
	if opp.Region == user.Location.Region {
		return geographicWeight
	}
	if user.WillingToRelocate {
		return geographicWeight / 2
	}
	return 0
}

// educationScore awards full credit when the user meets the required
// level, losing five points per level of gap below it.
func educationScore(opp *types.Opportunity, user *types.UserCircumstances) float64 {
	userIndex := user.EducationLevel.Index()
	requiredIndex := opp.EducationRequired.Index()
	if userIndex >= requiredIndex {
		return educationWeight
	}
	penalized := educationWeight - educationGapPenalty*(requiredIndex-userIndex)
	if penalized < 0 {
		return 0
	}
	return float64(penalized)
}

// skillOverlapScore awards credit proportional to the fraction of the
// opportunity's required skills matched by at least one user skill.
// Matching is case-insensitive substring containment in either
// direction. An entry with no required skills contributes nothing; the
// catalog verifier keeps that from happening in practice.
func skillOverlapScore(opp *types.Opportunity, user *types.UserCircumstances) float64 {
	if len(opp.Skills) == 0 || len(user.Skills) == 0 {
		return 0
	}

	matched := 0
	for _, required := range opp.Skills {
		requiredLower := strings.ToLower(required)
		for _, skill := range user.Skills {
			skillLower := strings.ToLower(skill)
			if strings.Contains(requiredLower, skillLower) || strings.Contains(skillLower, requiredLower) {
				matched++
				break
			}
		}
	}

	rate := float64(matched) / float64(len(opp.Skills))
	return rate * skillsWeight
}

// financialScore is a flat award for non-business opportunities. For
// businesses it compares available capital against the startup cost,
// with partial credit inside the SBA loan-eligibility bands.
func financialScore(opp *types.Opportunity, user *types.UserCircumstances) float64 {
	if !opp.IsBusiness() {
		return financialWeight
	}

	startupCost := opp.StartupCost
	if startupCost == 0 {
		startupCost = defaultStartupCost
	}

	switch {
	case user.AvailableCapital >= startupCost:
		return financialWeight
	case startupCost <= microloanCeiling:
		return 12
	case startupCost <= sevenALoanCeiling:
		return 8
	default:
		return 0
	}
}

// timelineScore awards full credit for an exact time-to-start match,
// partial credit when the two are one step apart among the first three
// steps, and a floor otherwise.
func timelineScore(opp *types.Opportunity, user *types.UserCircumstances) float64 {
	if opp.TimeToStart == user.TimeToStart {
		return timelineWeight
	}
	if adjacentTimeToStart(user.TimeToStart, opp.TimeToStart) {
		return 7
	}
	return 3
}

// adjacentTimeToStart reports whether the two values form one of the
// adjacency pairs immediate<->within-month or within-month<->within-3-months.
// Planning-stage has no adjacency credit.
func adjacentTimeToStart(a, b types.TimeToStart) bool {
	ai, bi := a.Index(), b.Index()
	if ai < 0 || bi < 0 {
		return false
	}
	if a == types.StartPlanningStage || b == types.StartPlanningStage {
		return false
	}
	diff := ai - bi
	return diff == 1 || diff == -1
}

// specialProgramsScore is checked in priority order: a veteran match
// wins over a disability match, which wins over an opportunity-zone
// match. A user matching several still earns only the highest-priority
// bonus; everyone else gets the baseline.
func specialProgramsScore(opp *types.Opportunity, user *types.UserCircumstances) float64 {
	switch {
	case user.IsVeteran && opp.VeteranPreferred:
		return programsWeight
	case user.HasDisability && opp.DisabilityFriendly:
		return programsWeight
	case user.Location.InOpportunityZone && opp.OpportunityZone:
		return 12
	default:
		return 5
	}
}
