package report

import (
	"github.com/google/uuid"

	"github.com/magician360/opportunity-engine/internal/feasibility"
	"github.com/magician360/opportunity-engine/internal/types"
)

// Generator scores a submission and renders its agency report in one
// step, stamping each report with a unique ID.
type Generator struct {
	formatter *Formatter
}

// NewGenerator creates a generator around the given formatter. A nil
// formatter gets a system-clock default.
func NewGenerator(formatter *Formatter) *Generator {
	if formatter == nil {
		formatter = NewFormatter()
	}
	return &Generator{formatter: formatter}
}

// Generate scores the submission on the report-path rubric and renders
// the agency report. The returned ID is unique per invocation.
func (g *Generator) Generate(data types.ValidationFormData) (string, types.ValidationResult) {
	score := feasibility.ScoreSubmission(data)
	return uuid.NewString(), types.ValidationResult{
		Report:           g.formatter.Format(data, score),
		FeasibilityScore: score,
	}
}
