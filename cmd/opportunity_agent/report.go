package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/magician360/opportunity-engine/internal/report"
	"github.com/magician360/opportunity-engine/internal/types"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate an agency-formatted justification report",
	Long:  "Scores a funding-justification submission and renders the multi-section text report in the layout expected by the selected funding agency.",
	RunE:  runReport,
}

var (
	reportForm   string
	reportOutput string
	reportJSON   bool
)

func init() {
	reportCmd.Flags().StringVarP(&reportForm, "form", "f", "", "Path to input ValidationFormData JSON file (required)")
	reportCmd.Flags().StringVarP(&reportOutput, "out", "o", "", "Path to output file (defaults to stdout)")
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "Emit a ValidationReport JSON envelope instead of plain text")

	if err := reportCmd.MarkFlagRequired("form"); err != nil {
		panic(fmt.Sprintf("failed to mark form flag as required: %v", err))
	}

	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
	// 1. Load submission
	content, err := os.ReadFile(reportForm)
	if err != nil {
		return fmt.Errorf("failed to read form file %s: %w", reportForm, err)
	}

	var form types.ValidationFormData
	if err := json.Unmarshal(content, &form); err != nil {
		return fmt.Errorf("failed to unmarshal form JSON: %w", err)
	}

	// 2. Generate the report
	reportID, result := report.NewGenerator(nil).Generate(form)

	// 3. Emit
	if reportJSON {
		envelope := types.ReportResponse{
			ReportID:         reportID,
			Report:           result.Report,
			FeasibilityScore: result.FeasibilityScore,
		}
		if reportOutput != "" {
			if err := writeJSONOutput(reportOutput, envelope); err != nil {
				return err
			}
			validateOutputSchema("schemas/validation_report.schema.json", reportOutput)
			_, _ = fmt.Fprintf(os.Stdout, "Report %s (score %d) written to %s\n", reportID, result.FeasibilityScore, reportOutput)
			return nil
		}
		jsonOutput, err := json.MarshalIndent(envelope, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report to JSON: %w", err)
		}
		_, _ = fmt.Fprintln(os.Stdout, string(jsonOutput))
		return nil
	}

	if reportOutput != "" {
		if err := os.WriteFile(reportOutput, []byte(result.Report), 0644); err != nil {
			return fmt.Errorf("failed to write report to output file %s: %w", reportOutput, err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Report %s (score %d) written to %s\n", reportID, result.FeasibilityScore, reportOutput)
		return nil
	}

	_, _ = fmt.Fprintln(os.Stdout, result.Report)
	return nil
}
