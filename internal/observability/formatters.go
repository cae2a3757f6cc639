// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/magician360/opportunity-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchResult outputs a human-readable summary of a matched opportunity.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	opp := result.Opportunity

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:    %s\n", opp.Title))
	sb.WriteString(fmt.Sprintf("Category: %s\n", opp.Category))
	sb.WriteString(fmt.Sprintf("Region:   %s\n", opp.Region))
	sb.WriteString(fmt.Sprintf("Match:    %d%%\n", result.MatchProbability))
	sb.WriteString("\n")

	if len(opp.Skills) > 0 {
		skills := strings.Join(opp.Skills, ", ")
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Skills:   %s\n", skills))
	}
	if opp.SalaryRange != "" {
		sb.WriteString(fmt.Sprintf("Salary:   %s\n", opp.SalaryRange))
	}
	if opp.StartupCost > 0 {
		sb.WriteString(fmt.Sprintf("Startup:  $%d\n", opp.StartupCost))
	}
	sb.WriteString("\n")

	if len(result.Resources) > 0 {
		sb.WriteString("Resources:\n")
		count := min(len(result.Resources), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.Resources[i]))
		}
		if len(result.Resources) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Resources)-maxItemsToShow))
		}
	}

	p.printBox("MATCHED OPPORTUNITY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintNextSteps outputs the action items attached to an opportunity.
func (p *Printer) PrintNextSteps(opp *types.Opportunity) {
	if opp == nil || len(opp.NextSteps) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(opp.NextSteps), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, opp.NextSteps[i]))
	}
	if len(opp.NextSteps) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(opp.NextSteps)-maxItemsToShow))
	}
	if len(opp.ContactInfo) > 0 {
		sb.WriteString(fmt.Sprintf("\nContact: %s\n", strings.Join(opp.ContactInfo, "; ")))
	}

	p.printBox("NEXT STEPS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFeasibility outputs a feasibility score breakdown with its factors.
func (p *Printer) PrintFeasibility(result *types.FeasibilityResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:          %d / 100\n", result.Score))
	sb.WriteString(fmt.Sprintf("Recommendation: %s\n", result.Recommendation))

	if len(result.Factors) > 0 {
		sb.WriteString("\nFactors:\n")
		for _, factor := range result.Factors {
			sb.WriteString(fmt.Sprintf("  • %s\n", factor))
		}
	}

	p.printBox("FEASIBILITY ASSESSMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRegionalResources outputs the support resources for a region.
func (p *Printer) PrintRegionalResources(region types.TexasRegion, resources []string) {
	if len(resources) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Region: %s\n\n", region))
	for _, resource := range resources {
		sb.WriteString(fmt.Sprintf("  • %s\n", resource))
	}

	p.printBox("REGIONAL RESOURCES", strings.TrimSuffix(sb.String(), "\n"))
}
