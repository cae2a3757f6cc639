package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magician360/opportunity-engine/internal/types"
)

func baseOpportunity() types.Opportunity {
	return types.Opportunity{
		ID:                "test-opp",
		Category:          types.CategoryJobs,
		Title:             "Test Opportunity",
		Region:            types.RegionAustin,
		EducationRequired: types.EducationHighSchool,
		Skills:            []string{"customer service"},
		TimeToStart:       types.StartWithinMonth,
	}
}

func TestGeographicScore_SameRegion(t *testing.T) {
	opp := baseOpportunity()
	user := &types.UserCircumstances{Location: types.Location{Region: types.RegionAustin}}

	assert.InDelta(t, 20.0, geographicScore(&opp, user), 0.01)
}

func TestGeographicScore_WillingToRelocate(t *testing.T) {
	opp := baseOpportunity()
	user := &types.UserCircumstances{
		Location:          types.Location{Region: types.RegionHouston},
		WillingToRelocate: true,
	}

	assert.InDelta(t, 10.0, geographicScore(&opp, user), 0.01)
}

func TestGeographicScore_DifferentRegionNoRelocate(t *testing.T) {
	opp := baseOpportunity()
	user := &types.UserCircumstances{Location: types.Location{Region: types.RegionHouston}}

	assert.InDelta(t, 0.0, geographicScore(&opp, user), 0.01)
}

func TestEducationScore_MeetsRequirement(t *testing.T) {
	opp := baseOpportunity()
	opp.EducationRequired = types.EducationBachelor
	user := &types.UserCircumstances{EducationLevel: types.EducationAdvanced}

	assert.InDelta(t, 15.0, educationScore(&opp, user), 0.01)
}

func TestEducationScore_OneLevelBelow(t *testing.T) {
	opp := baseOpportunity()
	opp.EducationRequired = types.EducationBachelor
	user := &types.UserCircumstances{EducationLevel: types.EducationAssociate}

	assert.InDelta(t, 10.0, educationScore(&opp, user), 0.01)
}

func TestEducationScore_LargeGapFloorsAtZero(t *testing.T) {
	opp := baseOpportunity()
	opp.EducationRequired = types.EducationAdvanced
	user := &types.UserCircumstances{EducationLevel: types.EducationLessThanHighSchool}

	// Five levels below at five points each would go negative; it floors.
	assert.InDelta(t, 0.0, educationScore(&opp, user), 0.01)
}

func TestEducationScore_UnknownLevelDefaultsToHighSchool(t *testing.T) {
	opp := baseOpportunity()
	opp.EducationRequired = types.EducationSomeCollege
	user := &types.UserCircumstances{EducationLevel: "trade-certificate"}

	// Unknown user level is treated as high-school, one level below.
	assert.InDelta(t, 10.0, educationScore(&opp, user), 0.01)
}

func TestSkillOverlapScore_FullOverlap(t *testing.T) {
	opp := baseOpportunity()
	opp.Skills = []string{"Customer Service", "Sales"}
	user := &types.UserCircumstances{Skills: []string{"customer service", "sales management"}}

	assert.InDelta(t, 25.0, skillOverlapScore(&opp, user), 0.01)
}

func TestSkillOverlapScore_PartialOverlap(t *testing.T) {
	opp := baseOpportunity()
	opp.Skills = []string{"Welding", "Blueprint Reading", "Safety Compliance", "Forklift Operation"}
	user := &types.UserCircumstances{Skills: []string{"welding"}}

	assert.InDelta(t, 25.0/4, skillOverlapScore(&opp, user), 0.01)
}

func TestSkillOverlapScore_SubstringEitherDirection(t *testing.T) {
	opp := baseOpportunity()
	opp.Skills = []string{"Java"}
	user := &types.UserCircumstances{Skills: []string{"JavaScript"}}

	// "java" is contained in "javascript", so the skill counts as matched.
	assert.InDelta(t, 25.0, skillOverlapScore(&opp, user), 0.01)
}

func TestSkillOverlapScore_NoUserSkills(t *testing.T) {
	opp := baseOpportunity()
	user := &types.UserCircumstances{}

	assert.InDelta(t, 0.0, skillOverlapScore(&opp, user), 0.01)
}

func TestFinancialScore_NonBusinessFlatAward(t *testing.T) {
	opp := baseOpportunity()
	user := &types.UserCircumstances{}

	assert.InDelta(t, 15.0, financialScore(&opp, user), 0.01)
}

func TestFinancialScore_SufficientCapital(t *testing.T) {
	opp := baseOpportunity()
	opp.Category = types.CategoryBusinesses
	opp.StartupCost = 80_000
	user := &types.UserCircumstances{AvailableCapital: 100_000}

	assert.InDelta(t, 15.0, financialScore(&opp, user), 0.01)
}

func TestFinancialScore_MicroloanBand(t *testing.T) {
	opp := baseOpportunity()
	opp.Category = types.CategoryBusinesses
	opp.StartupCost = 40_000
	user := &types.UserCircumstances{AvailableCapital: 5_000}

	assert.InDelta(t, 12.0, financialScore(&opp, user), 0.01)
}

func TestFinancialScore_SevenABand(t *testing.T) {
	opp := baseOpportunity()
	opp.Category = types.CategoryBusinesses
	opp.StartupCost = 2_000_000
	user := &types.UserCircumstances{AvailableCapital: 5_000}

	assert.InDelta(t, 8.0, financialScore(&opp, user), 0.01)
}

func TestFinancialScore_BeyondLoanBands(t *testing.T) {
	opp := baseOpportunity()
	opp.Category = types.CategoryBusinesses
	opp.StartupCost = 10_000_000
	user := &types.UserCircumstances{AvailableCapital: 5_000}

	assert.InDelta(t, 0.0, financialScore(&opp, user), 0.01)
}

func TestFinancialScore_UnknownCostDefaultsToMicroloanCeiling(t *testing.T) {
	opp := baseOpportunity()
	opp.Category = types.CategoryBusinesses
	opp.StartupCost = 0
	user := &types.UserCircumstances{AvailableCapital: 1_000}

	// Unknown cost is assumed to be 50k, which is microloan eligible.
	assert.InDelta(t, 12.0, financialScore(&opp, user), 0.01)
}

func TestTimelineScore_ExactMatch(t *testing.T) {
	opp := baseOpportunity()
	opp.TimeToStart = types.StartImmediate
	user := &types.UserCircumstances{TimeToStart: types.StartImmediate}

	assert.InDelta(t, 10.0, timelineScore(&opp, user), 0.01)
}

func TestTimelineScore_AdjacentStep(t *testing.T) {
	opp := baseOpportunity()
	opp.TimeToStart = types.StartWithinMonth
	user := &types.UserCircumstances{TimeToStart: types.StartImmediate}

	assert.InDelta(t, 7.0, timelineScore(&opp, user), 0.01)
}

func TestTimelineScore_AdjacentStepReversed(t *testing.T) {
	opp := baseOpportunity()
	opp.TimeToStart = types.StartWithinMonth
	user := &types.UserCircumstances{TimeToStart: types.StartWithin3Months}

	assert.InDelta(t, 7.0, timelineScore(&opp, user), 0.01)
}

func TestTimelineScore_PlanningStageGetsNoAdjacency(t *testing.T) {
	opp := baseOpportunity()
	opp.TimeToStart = types.StartPlanningStage
	user := &types.UserCircumstances{TimeToStart: types.StartWithin3Months}

	assert.InDelta(t, 3.0, timelineScore(&opp, user), 0.01)
}

func TestTimelineScore_DistantStepsGetFloor(t *testing.T) {
	opp := baseOpportunity()
	opp.TimeToStart = types.StartWithin3Months
	user := &types.UserCircumstances{TimeToStart: types.StartImmediate}

	assert.InDelta(t, 3.0, timelineScore(&opp, user), 0.01)
}

func TestSpecialProgramsScore_VeteranMatch(t *testing.T) {
	opp := baseOpportunity()
	opp.VeteranPreferred = true
	user := &types.UserCircumstances{IsVeteran: true}

	assert.InDelta(t, 15.0, specialProgramsScore(&opp, user), 0.01)
}

func TestSpecialProgramsScore_VeteranWinsOverDisability(t *testing.T) {
	opp := baseOpportunity()
	opp.VeteranPreferred = true
	opp.DisabilityFriendly = true
	opp.OpportunityZone = true
	user := &types.UserCircumstances{
		IsVeteran:     true,
		HasDisability: true,
		Location:      types.Location{InOpportunityZone: true},
	}

	// Highest-priority bonus only; bonuses never stack.
	assert.InDelta(t, 15.0, specialProgramsScore(&opp, user), 0.01)
}

func TestSpecialProgramsScore_DisabilityMatch(t *testing.T) {
	opp := baseOpportunity()
	opp.DisabilityFriendly = true
	user := &types.UserCircumstances{HasDisability: true}

	assert.InDelta(t, 15.0, specialProgramsScore(&opp, user), 0.01)
}

func TestSpecialProgramsScore_OpportunityZoneMatch(t *testing.T) {
	opp := baseOpportunity()
	opp.OpportunityZone = true
	user := &types.UserCircumstances{Location: types.Location{InOpportunityZone: true}}

	assert.InDelta(t, 12.0, specialProgramsScore(&opp, user), 0.01)
}

func TestSpecialProgramsScore_Baseline(t *testing.T) {
	opp := baseOpportunity()
	user := &types.UserCircumstances{}

	assert.InDelta(t, 5.0, specialProgramsScore(&opp, user), 0.01)
}

func TestMatchProbability_WithinBounds(t *testing.T) {
	opp := baseOpportunity()
	opp.Category = types.CategoryBusinesses
	opp.StartupCost = 10_000_000

	profiles := []*types.UserCircumstances{
		{},
		{
			EducationLevel:    types.EducationAdvanced,
			Skills:            []string{"customer service"},
			IsVeteran:         true,
			AvailableCapital:  20_000_000,
			Location:          types.Location{Region: types.RegionAustin},
			TimeToStart:       types.StartWithinMonth,
			WillingToRelocate: true,
		},
	}

	for _, user := range profiles {
		score := MatchProbability(&opp, user)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}

func TestMatchProbability_PerfectProfile(t *testing.T) {
	opp := baseOpportunity()
	opp.VeteranPreferred = true
	user := &types.UserCircumstances{
		EducationLevel: types.EducationBachelor,
		Skills:         []string{"customer service"},
		IsVeteran:      true,
		Location:       types.Location{Region: types.RegionAustin},
		TimeToStart:    types.StartWithinMonth,
	}

	// 20 geo + 15 edu + 25 skills + 15 financial (non-business) + 10 timeline + 15 veteran
	assert.Equal(t, 100, MatchProbability(&opp, user))
}
