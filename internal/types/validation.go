package types

// ValidationFormData is the report-input record for feasibility scoring
// and report generation. It is constructed and consumed within a single
// call; every field may be empty and empty fields simply score zero.
type ValidationFormData struct {
	BusinessName       string        `json:"business_name,omitempty"`
	BusinessType       string        `json:"business_type,omitempty"`
	FundingAgency      FundingAgency `json:"funding_agency,omitempty"`
	AccommodationNeeds string        `json:"accommodation_needs,omitempty"`
	BusinessGoals      string        `json:"business_goals,omitempty"`
	TargetMarket       string        `json:"target_market,omitempty"`
	EstimatedBudget    string        `json:"estimated_budget,omitempty"`
	Timeline           string        `json:"timeline,omitempty"`
	ExpectedOutcomes   string        `json:"expected_outcomes,omitempty"`
}

// FeasibilityResult is the output of the engine-variant scorer:
// a 0-100 score, human-readable factor strings, and a derived
// recommendation tier.
type FeasibilityResult struct {
	Score          int      `json:"score"`
	Factors        []string `json:"factors"`
	Recommendation string   `json:"recommendation"`
}

// ValidationResult is the output of the report-variant path: the fully
// formatted report text plus the 0-100 feasibility score it embeds.
type ValidationResult struct {
	Report           string `json:"report"`
	FeasibilityScore int    `json:"feasibility_score"`
}
