// Package types provides type definitions for structured data used throughout the opportunity-engine system.
package types

// Category identifies one of the four opportunity categories.
type Category string

// Category constants define the supported opportunity categories.
const (
	CategoryJobs           Category = "jobs"
	CategoryBusinesses     Category = "businesses"
	CategorySelfEmployment Category = "self-employment"
	CategoryContracts      Category = "contracts"
)

// Categories lists all valid categories in canonical order.
func Categories() []Category {
	return []Category{CategoryJobs, CategoryBusinesses, CategorySelfEmployment, CategoryContracts}
}

// IsValid reports whether the category is one of the four known categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryJobs, CategoryBusinesses, CategorySelfEmployment, CategoryContracts:
		return true
	}
	return false
}

// TexasRegion identifies one of the twelve fixed Texas regions.
type TexasRegion string

// TexasRegion constants define the fixed regional enumeration.
const (
	RegionDallasFortWorth TexasRegion = "dallas-fort-worth"
	RegionHouston         TexasRegion = "houston"
	RegionSanAntonio      TexasRegion = "san-antonio"
	RegionAustin          TexasRegion = "austin"
	RegionElPaso          TexasRegion = "el-paso"
	RegionRioGrandeValley TexasRegion = "rio-grande-valley"
	RegionPermianBasin    TexasRegion = "permian-basin"
	RegionGulfCoast       TexasRegion = "gulf-coast"
	RegionPanhandle       TexasRegion = "panhandle"
	RegionEastTexas       TexasRegion = "east-texas"
	RegionCentralTexas    TexasRegion = "central-texas"
	RegionWestTexas       TexasRegion = "west-texas"
)

// EducationLevel is an ordered enum of education attainment.
// Higher index means more education.
type EducationLevel string

// EducationLevel constants, ordered from least to most education.
const (
	EducationLessThanHighSchool EducationLevel = "less-than-high-school"
	EducationHighSchool         EducationLevel = "high-school"
	EducationSomeCollege        EducationLevel = "some-college"
	EducationAssociate          EducationLevel = "associate"
	EducationBachelor           EducationLevel = "bachelor"
	EducationAdvanced           EducationLevel = "advanced"
)

var educationOrder = []EducationLevel{
	EducationLessThanHighSchool,
	EducationHighSchool,
	EducationSomeCollege,
	EducationAssociate,
	EducationBachelor,
	EducationAdvanced,
}

// Index returns the ordinal position of the level, or the position of
// high-school when the value is unknown or empty.
func (e EducationLevel) Index() int {
	for i, level := range educationOrder {
		if level == e {
			return i
		}
	}
	return 1 // high-school default
}

// TimeToStart is an ordered enum of how soon an opportunity can begin.
type TimeToStart string

// TimeToStart constants, ordered from soonest to furthest out.
const (
	StartImmediate     TimeToStart = "immediate"
	StartWithinMonth   TimeToStart = "within-month"
	StartWithin3Months TimeToStart = "within-3-months"
	StartPlanningStage TimeToStart = "planning-stage"
)

var timeToStartOrder = []TimeToStart{
	StartImmediate,
	StartWithinMonth,
	StartWithin3Months,
	StartPlanningStage,
}

// Index returns the ordinal position of the value, or -1 when unknown.
func (t TimeToStart) Index() int {
	for i, step := range timeToStartOrder {
		if step == t {
			return i
		}
	}
	return -1
}

// EmploymentStatus describes the user's current work situation.
type EmploymentStatus string

// EmploymentStatus constants.
const (
	StatusEmployed      EmploymentStatus = "employed"
	StatusUnemployed    EmploymentStatus = "unemployed"
	StatusUnderemployed EmploymentStatus = "underemployed"
	StatusStudent       EmploymentStatus = "student"
	StatusRetired       EmploymentStatus = "retired"
)

// Goal describes the user's primary objective.
type Goal string

// Goal constants.
const (
	GoalImmediateEmployment Goal = "immediate-employment"
	GoalCareerChange        Goal = "career-change"
	GoalStartBusiness       Goal = "start-business"
	GoalTraining            Goal = "training"
	GoalContractWork        Goal = "contract-work"
)

// WorkType describes the user's preferred work arrangement.
type WorkType string

// WorkType constants.
const (
	WorkFullTime WorkType = "full-time"
	WorkPartTime WorkType = "part-time"
	WorkRemote   WorkType = "remote"
	WorkFlexible WorkType = "flexible"
)

// FundingAgency selects the report template used by the report formatter.
type FundingAgency string

// FundingAgency constants. Unknown values fall back to AgencyOther.
const (
	AgencyVocationalRehab   FundingAgency = "vocational-rehab"
	AgencySBA               FundingAgency = "sba"
	AgencyStateGrant        FundingAgency = "state-grant"
	AgencyPrivateFoundation FundingAgency = "private-foundation"
	AgencyOther             FundingAgency = "other"
)
