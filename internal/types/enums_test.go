package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_IsValid(t *testing.T) {
	for _, category := range Categories() {
		assert.True(t, category.IsValid(), "category %s", category)
	}
	assert.False(t, Category("franchises").IsValid())
	assert.False(t, Category("").IsValid())
}

func TestEducationLevel_IndexOrdering(t *testing.T) {
	assert.Equal(t, 0, EducationLessThanHighSchool.Index())
	assert.Equal(t, 1, EducationHighSchool.Index())
	assert.Equal(t, 4, EducationBachelor.Index())
	assert.Equal(t, 5, EducationAdvanced.Index())
}

func TestEducationLevel_UnknownDefaultsToHighSchool(t *testing.T) {
	assert.Equal(t, EducationHighSchool.Index(), EducationLevel("trade-certificate").Index())
	assert.Equal(t, EducationHighSchool.Index(), EducationLevel("").Index())
}

func TestTimeToStart_IndexOrdering(t *testing.T) {
	assert.Equal(t, 0, StartImmediate.Index())
	assert.Equal(t, 1, StartWithinMonth.Index())
	assert.Equal(t, 2, StartWithin3Months.Index())
	assert.Equal(t, 3, StartPlanningStage.Index())
}

func TestTimeToStart_UnknownIsNegative(t *testing.T) {
	assert.Equal(t, -1, TimeToStart("someday").Index())
	assert.Equal(t, -1, TimeToStart("").Index())
}

func TestOpportunity_IsBusiness(t *testing.T) {
	business := Opportunity{Category: CategoryBusinesses}
	job := Opportunity{Category: CategoryJobs}

	assert.True(t, business.IsBusiness())
	assert.False(t, job.IsBusiness())
}
