package types

// Program references a government or nonprofit support program tied to
// an opportunity, such as an SBA loan program or a Workforce Solutions
// training track.
type Program struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// Opportunity is an immutable catalog entry describing a job, business,
// self-employment, or contract possibility tied to a Texas region.
// Entries are never created, mutated, or deleted at runtime.
type Opportunity struct {
	ID          string      `json:"id"`
	Category    Category    `json:"category"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Region      TexasRegion `json:"region"`

	// Requirements
	EducationRequired EducationLevel `json:"education_required"`
	Skills            []string       `json:"skills"`
	YearsExperience   int            `json:"years_experience"`

	// Economics
	StartupCost int         `json:"startup_cost,omitempty"` // dollars; 0 means not applicable / unknown
	SalaryRange string      `json:"salary_range,omitempty"`
	TimeToStart TimeToStart `json:"time_to_start"`

	// Eligibility flags
	VeteranPreferred   bool `json:"veteran_preferred"`
	DisabilityFriendly bool `json:"disability_friendly"`
	OpportunityZone    bool `json:"opportunity_zone"`
	Remote             bool `json:"remote"`
	PartTimeAvailable  bool `json:"part_time_available"`

	// Guidance
	NextSteps   []string  `json:"next_steps"`
	ContactInfo []string  `json:"contact_info"`
	Programs    []Program `json:"programs"`
}

// IsBusiness reports whether the opportunity requires startup capital.
// Only business-category entries factor capital into match probability.
func (o *Opportunity) IsBusiness() bool {
	return o.Category == CategoryBusinesses
}

// MatchResult is the output of matching a user profile against the catalog.
type MatchResult struct {
	Opportunity      Opportunity `json:"opportunity"`
	MatchProbability int         `json:"match_probability"` // 0-100
	Resources        []string    `json:"resources"`
}
