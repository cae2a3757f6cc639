package types

// Location describes where the user lives within Texas.
type Location struct {
	City              string      `json:"city,omitempty"`
	County            string      `json:"county,omitempty"`
	Region            TexasRegion `json:"region,omitempty"`
	IsRural           bool        `json:"is_rural,omitempty"`
	InOpportunityZone bool        `json:"in_opportunity_zone,omitempty"`
}

// UserCircumstances is the caller-supplied profile used to personalize
// matching. It is constructed per interaction, passed by value into the
// matcher, and never persisted or mutated by the engine. Zero values are
// legal everywhere; missing information simply earns fewer match points.
type UserCircumstances struct {
	// Personal information
	EmploymentStatus EmploymentStatus `json:"employment_status,omitempty"`
	EducationLevel   EducationLevel   `json:"education_level,omitempty"`
	YearsExperience  int              `json:"years_experience,omitempty"`
	Skills           []string         `json:"skills,omitempty"`
	Languages        []string         `json:"languages,omitempty"`

	// Special circumstances
	IsVeteran        bool `json:"is_veteran,omitempty"`
	IsMilitarySpouse bool `json:"is_military_spouse,omitempty"`
	HasDisability    bool `json:"has_disability,omitempty"`

	// Resources and constraints
	AvailableCapital int `json:"available_capital,omitempty"` // dollars for business startup

	// Geographic
	Location Location `json:"location,omitempty"`

	// Goals
	PrimaryGoal       Goal        `json:"primary_goal,omitempty"`
	WillingToRelocate bool        `json:"willing_to_relocate,omitempty"`
	PreferredWorkType WorkType    `json:"preferred_work_type,omitempty"`
	TimeToStart       TimeToStart `json:"time_to_start,omitempty"`
}
