package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magician360/opportunity-engine/internal/types"
)

func TestDefault_PassesVerification(t *testing.T) {
	assert.NotPanics(t, func() { Default() })
}

func TestDefault_EveryCategoryHasEntries(t *testing.T) {
	c := Default()
	for _, category := range types.Categories() {
		assert.NotEmpty(t, c.ByCategory(category), "category %s should have entries", category)
	}
}

func TestDefault_BusinessCategorySupportsDiversityFloor(t *testing.T) {
	c := Default()

	// The matcher's 50-draw diversity floor needs at least 10 distinct
	// business entries to be satisfiable.
	assert.GreaterOrEqual(t, len(c.ByCategory(types.CategoryBusinesses)), 10)
}

func TestNew_RejectsDuplicateIDs(t *testing.T) {
	entry := types.Opportunity{
		ID:       "dup",
		Category: types.CategoryJobs,
		Region:   types.RegionAustin,
		Skills:   []string{"typing"},
	}

	_, err := New([]types.Opportunity{entry, entry})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate catalog ID")
}

func TestNew_RejectsUnknownRegion(t *testing.T) {
	entry := types.Opportunity{
		ID:       "bad-region",
		Category: types.CategoryJobs,
		Region:   "oklahoma",
		Skills:   []string{"typing"},
	}

	_, err := New([]types.Opportunity{entry})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown region")
}

func TestNew_RejectsEntryWithoutSkills(t *testing.T) {
	entry := types.Opportunity{
		ID:       "no-skills",
		Category: types.CategoryJobs,
		Region:   types.RegionAustin,
	}

	_, err := New([]types.Opportunity{entry})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no required skills")
}

func TestNew_RejectsInvalidCategory(t *testing.T) {
	entry := types.Opportunity{
		ID:       "bad-category",
		Category: "franchises",
		Region:   types.RegionAustin,
		Skills:   []string{"sales"},
	}

	_, err := New([]types.Opportunity{entry})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestAll_ReturnsCopy(t *testing.T) {
	c := Default()

	first := c.All()
	first[0].Title = "mutated"

	assert.NotEqual(t, "mutated", c.All()[0].Title)
}

func TestByCategory_UnknownCategoryYieldsEmpty(t *testing.T) {
	assert.Empty(t, Default().ByCategory("franchises"))
}

func TestRegions_ListsAllTwelve(t *testing.T) {
	assert.Len(t, Regions(), 12)
}

func TestRegionData_KnownRegion(t *testing.T) {
	data, ok := RegionData(types.RegionHouston)

	require.True(t, ok)
	assert.Equal(t, "Houston District Office", data.SBAOffice)
	assert.NotEmpty(t, data.PrimaryIndustries)
	assert.NotEmpty(t, data.WorkforceSolutionsOffices)
}

func TestRegionData_UnknownRegion(t *testing.T) {
	_, ok := RegionData("oklahoma")
	assert.False(t, ok)
}

func TestRegionalResources_RendersSummaryLines(t *testing.T) {
	resources := RegionalResources(types.RegionSanAntonio)

	require.Len(t, resources, 4)
	assert.Equal(t, "SBA Office: San Antonio District Office", resources[0])
	assert.Contains(t, resources[1], "Workforce Solutions: ")
	assert.Contains(t, resources[2], "designated areas")
	assert.Contains(t, resources[3], "Key Programs: ")
}

func TestRegionalResources_UnknownRegionYieldsNil(t *testing.T) {
	assert.Nil(t, RegionalResources("oklahoma"))
}
