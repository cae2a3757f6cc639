// Package report renders a funding-justification submission into the
// multi-section plain-text report expected by each funding agency.
package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/magician360/opportunity-engine/internal/types"
)

// agencyFormat is one agency's report layout: a title and exactly six
// section headings rendered in order.
type agencyFormat struct {
	Title    string
	Sections [6]string
}

var agencyFormats = map[types.FundingAgency]agencyFormat{
	types.AgencyVocationalRehab: {
		Title: "VOCATIONAL REHABILITATION ACCOMMODATION JUSTIFICATION REPORT",
		Sections: [6]string{
			"Individual Information and Business Overview",
			"Accommodation Requirements Analysis",
			"Vocational Goals and Career Objectives",
			"Cost-Benefit Analysis",
			"Implementation Timeline and Milestones",
			"Expected Outcomes and Success Metrics",
		},
	},
	types.AgencySBA: {
		Title: "SMALL BUSINESS ADMINISTRATION FUNDING JUSTIFICATION REPORT",
		Sections: [6]string{
			"Business Overview and Market Analysis",
			"Accommodation and Accessibility Needs",
			"Business Plan and Strategic Goals",
			"Financial Projections and Budget",
			"Timeline and Implementation Strategy",
			"Economic Impact and Community Benefits",
		},
	},
	types.AgencyStateGrant: {
		Title: "STATE GRANT PROGRAM APPLICATION JUSTIFICATION",
		Sections: [6]string{
			"Project Overview",
			"Accommodation Requirements",
			"Program Goals and Objectives",
			"Budget and Resource Allocation",
			"Implementation Schedule",
			"Anticipated Outcomes and Impact",
		},
	},
	types.AgencyPrivateFoundation: {
		Title: "PRIVATE FOUNDATION FUNDING PROPOSAL",
		Sections: [6]string{
			"Mission Alignment",
			"Project Description and Accessibility Needs",
			"Goals and Impact",
			"Financial Overview",
			"Timeline",
			"Sustainability Plan",
		},
	},
	types.AgencyOther: {
		Title: "ACCOMMODATION AND FUNDING JUSTIFICATION REPORT",
		Sections: [6]string{
			"Business Overview",
			"Accommodation Needs",
			"Goals and Objectives",
			"Budget Analysis",
			"Timeline",
			"Expected Results",
		},
	},
}

// Formatter renders agency reports. The clock is injectable so tests
// can pin the report date.
type Formatter struct {
	now func() time.Time
}

// NewFormatter creates a formatter using the system clock.
func NewFormatter() *Formatter {
	return &Formatter{now: time.Now}
}

// NewFormatterAt creates a formatter with a fixed clock.
func NewFormatterAt(now func() time.Time) *Formatter {
	if now == nil {
		now = time.Now
	}
	return &Formatter{now: now}
}

// Format renders the submission and its precomputed feasibility score
// as an agency-formatted text report. An unrecognized agency falls back
// to the generic layout. The input is never mutated.
func (f *Formatter) Format(data types.ValidationFormData, feasibilityScore int) string {
	format, ok := agencyFormats[data.FundingAgency]
	if !ok {
		format = agencyFormats[types.AgencyOther]
	}

	var b strings.Builder

	b.WriteString(format.Title + "\n")
	b.WriteString(strings.Repeat("=", len(format.Title)) + "\n\n")
	b.WriteString("Report Date: " + f.now().Format("January 2, 2006") + "\n")
	b.WriteString("Business/Project Name: " + data.BusinessName + "\n")
	b.WriteString("Business Type: " + data.BusinessType + "\n")
	b.WriteString("Feasibility Assessment Score: " + strconv.Itoa(feasibilityScore) + "%\n\n")

	writeHeading(&b, format.Sections[0])
	b.WriteString("Business/Project Name: " + data.BusinessName + "\n")
	b.WriteString("Industry Category: " + data.BusinessType + "\n")
	if data.TargetMarket != "" {
		b.WriteString("Target Market: " + data.TargetMarket + "\n")
	}
	b.WriteString("\nBusiness Description: " + data.BusinessGoals + "\n\n")

	writeHeading(&b, format.Sections[1])
	b.WriteString("Accommodation Requirements:\n" + data.AccommodationNeeds + "\n\n")
	b.WriteString("These accommodations are essential for ensuring equal opportunity, workplace accessibility, and the ability to perform essential business functions effectively.\n\n")

	writeHeading(&b, format.Sections[2])
	b.WriteString("Primary Objectives:\n" + data.BusinessGoals + "\n\n")
	if data.ExpectedOutcomes != "" {
		b.WriteString("Expected Outcomes:\n" + data.ExpectedOutcomes + "\n\n")
	}

	writeHeading(&b, format.Sections[3])
	b.WriteString("Estimated Budget: " + data.EstimatedBudget + "\n\n")
	b.WriteString("Budget Justification: The requested funding will be allocated toward necessary accommodations, business development, and operational expenses that directly contribute to achieving vocational independence and business sustainability in the Texas market.\n\n")

	writeHeading(&b, format.Sections[4])
	if data.Timeline != "" {
		b.WriteString("Proposed Timeline: " + data.Timeline + "\n\n")
	}
	b.WriteString("Phase 1: Initial Setup and Accommodation Implementation\n")
	b.WriteString("Phase 2: Business Launch and Market Entry\n")
	b.WriteString("Phase 3: Growth and Sustainability Assessment\n\n")

	writeHeading(&b, format.Sections[5])
	b.WriteString("Success Metrics:\n")
	b.WriteString("- Achievement of vocational independence through sustainable employment or business operation\n")
	b.WriteString("- Successful implementation of necessary accommodations\n")
	b.WriteString("- Contribution to the Texas economy and local community\n")
	if data.ExpectedOutcomes != "" {
		b.WriteString("- " + data.ExpectedOutcomes + "\n")
	}
	b.WriteString("\n")

	b.WriteString("CONCLUSION\n")
	b.WriteString(strings.Repeat("=", 10) + "\n\n")
	b.WriteString("This proposal demonstrates a " + planStrength(feasibilityScore) + " plan for achieving vocational goals through " + data.BusinessName + ". ")
	b.WriteString("The requested accommodations and support are justified by clear business objectives, market analysis, and alignment with the mission of " + agencyMission(data.FundingAgency) + ". ")
	b.WriteString("This initiative represents an investment in individual independence, economic opportunity, and community development within the State of Texas.\n\n")

	b.WriteString("Feasibility Rating: " + feasibilityRating(feasibilityScore) + "\n\n")

	b.WriteString("---\n")
	b.WriteString("Report generated by the 360 Business Magician - Texas Opportunity Generator\n")
	b.WriteString("Advanced Validation Tool - Powered by feasibility assessment algorithms\n")

	return b.String()
}

func writeHeading(b *strings.Builder, heading string) {
	b.WriteString(strings.ToUpper(heading) + "\n")
	b.WriteString(strings.Repeat("-", len(heading)) + "\n\n")
}

func planStrength(score int) string {
	switch {
	case score >= 80:
		return "strong"
	case score >= 60:
		return "viable"
	default:
		return "developing"
	}
}

func feasibilityRating(score int) string {
	switch {
	case score >= 80:
		return "HIGH - Ready for funding consideration"
	case score >= 60:
		return "MODERATE - Additional refinement recommended"
	default:
		return "DEVELOPING - Further planning suggested"
	}
}

func agencyMission(agency types.FundingAgency) string {
	switch agency {
	case types.AgencyVocationalRehab:
		return "vocational rehabilitation services"
	case types.AgencySBA:
		return "the Small Business Administration"
	default:
		return "the funding agency"
	}
}
