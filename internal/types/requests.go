package types

import "github.com/go-playground/validator/v10"

// IdeaRequest is the request body for idea generation. Enhance asks the
// configured AI provider to expand the idea; the provider degrades to a
// canned response when unavailable.
type IdeaRequest struct {
	Category  string `json:"category" validate:"required"`
	Templated bool   `json:"templated,omitempty"`
	Enhance   bool   `json:"enhance,omitempty"`
}

// IdeaResponse is the response for idea generation. Enhanced is empty
// unless enhancement was requested.
type IdeaResponse struct {
	Category string `json:"category"`
	Idea     string `json:"idea"`
	Enhanced string `json:"enhanced,omitempty"`
}

// MatchRequest is the request body for personalized opportunity matching.
// The category must be supplied; circumstances are optional and default
// to an anonymous profile.
type MatchRequest struct {
	Category      string             `json:"category" validate:"required"`
	Circumstances *UserCircumstances `json:"circumstances,omitempty"`
}

// ValidateRequest is the request body for feasibility scoring. An
// all-empty form is legal; every scoring factor treats absence as zero.
type ValidateRequest struct {
	Form ValidationFormData `json:"form"`
}

// ReportRequest is the request body for report generation. Empty form
// fields render as blank report sections rather than erroring.
type ReportRequest struct {
	Form ValidationFormData `json:"form"`
}

// ReportResponse is the response for report generation.
type ReportResponse struct {
	ReportID         string `json:"report_id"`
	Report           string `json:"report"`
	FeasibilityScore int    `json:"feasibility_score"`
}

// Validate validates the IdeaRequest using the validator.
func (r *IdeaRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

