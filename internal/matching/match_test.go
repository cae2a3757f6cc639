package matching

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magician360/opportunity-engine/internal/catalog"
	"github.com/magician360/opportunity-engine/internal/types"
)

func TestMatch_ValidCategoryReturnsResult(t *testing.T) {
	matcher := NewMatcher(catalog.Default(), rand.New(rand.NewSource(1)))

	result, err := matcher.Match(types.CategoryJobs, nil)

	require.NoError(t, err)
	assert.Equal(t, types.CategoryJobs, result.Opportunity.Category)
	assert.NotEmpty(t, result.Opportunity.Title)
	assert.GreaterOrEqual(t, result.MatchProbability, 0)
	assert.LessOrEqual(t, result.MatchProbability, 100)
	assert.NotEmpty(t, result.Resources)
}

func TestMatch_UnknownCategoryFallsBackToFullCatalog(t *testing.T) {
	matcher := NewMatcher(catalog.Default(), rand.New(rand.NewSource(1)))

	result, err := matcher.Match("franchises", nil)

	require.NoError(t, err)
	assert.NotEmpty(t, result.Opportunity.ID)
}

func TestMatch_EmptyCatalogReturnsError(t *testing.T) {
	empty, err := catalog.New(nil)
	require.NoError(t, err)
	matcher := NewMatcher(empty, rand.New(rand.NewSource(1)))

	_, err = matcher.Match(types.CategoryJobs, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestMatch_DeterministicWithSeededSource(t *testing.T) {
	user := &types.UserCircumstances{
		EducationLevel: types.EducationBachelor,
		Skills:         []string{"marketing"},
		Location:       types.Location{Region: types.RegionHouston},
	}

	first, err := NewMatcher(catalog.Default(), rand.New(rand.NewSource(42))).Match(types.CategoryBusinesses, user)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		result, err := NewMatcher(catalog.Default(), rand.New(rand.NewSource(42))).Match(types.CategoryBusinesses, user)
		require.NoError(t, err)
		assert.Equal(t, first.Opportunity.ID, result.Opportunity.ID)
		assert.Equal(t, first.MatchProbability, result.MatchProbability)
	}
}

func TestMatch_DiversityFloorOverFiftyDraws(t *testing.T) {
	matcher := NewMatcher(catalog.Default(), rand.New(rand.NewSource(7)))

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		result, err := matcher.Match(types.CategoryBusinesses, nil)
		require.NoError(t, err)
		seen[result.Opportunity.ID] = true
	}

	assert.GreaterOrEqual(t, len(seen), 10, "50 draws should produce at least 10 distinct opportunities")
}

func TestMatch_NilUserIsAnonymous(t *testing.T) {
	matcher := NewMatcher(catalog.Default(), rand.New(rand.NewSource(3)))

	result, err := matcher.Match(types.CategorySelfEmployment, nil)

	require.NoError(t, err)
	// Anonymous profiles still earn the baseline program and timeline floors.
	assert.GreaterOrEqual(t, result.MatchProbability, 0)
}

func TestMatch_DoesNotMutateUserProfile(t *testing.T) {
	user := &types.UserCircumstances{
		Skills:   []string{"welding"},
		Location: types.Location{Region: types.RegionPermianBasin},
	}
	original := *user

	matcher := NewMatcher(catalog.Default(), rand.New(rand.NewSource(5)))
	_, err := matcher.Match(types.CategoryJobs, user)

	require.NoError(t, err)
	assert.Equal(t, original, *user)
}

func TestDeriveResources_IncludesRegionalAndProgramEntries(t *testing.T) {
	opp := types.Opportunity{
		ID:       "biz-test",
		Category: types.CategoryBusinesses,
		Region:   types.RegionSanAntonio,
		Skills:   []string{"operations"},
		Programs: []types.Program{
			{Type: "SBA", Name: "8(a) Business Development"},
		},
	}

	resources := deriveResources(&opp)

	require.Len(t, resources, 3)
	assert.Equal(t, "SBA Office: San Antonio District Office", resources[0])
	assert.Contains(t, resources[1], "Workforce Solutions: ")
	assert.Equal(t, "SBA Program: 8(a) Business Development", resources[2])
}
