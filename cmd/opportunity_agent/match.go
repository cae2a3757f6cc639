package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/magician360/opportunity-engine/internal/catalog"
	"github.com/magician360/opportunity-engine/internal/matching"
	"github.com/magician360/opportunity-engine/internal/observability"
	"github.com/magician360/opportunity-engine/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match a catalog opportunity to user circumstances",
	Long:  "Selects an opportunity from the built-in Texas catalog for a category, scores it against a user circumstances profile, and emits a MatchResult JSON with support resources.",
	RunE:  runMatch,
}

var (
	matchCategory      string
	matchCircumstances string
	matchOutput        string
	matchSeed          int64
	matchVerbose       bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchCategory, "category", "c", "", "Opportunity category: jobs, businesses, self-employment, or contracts (required)")
	matchCmd.Flags().StringVarP(&matchCircumstances, "circumstances", "u", "", "Path to input UserCircumstances JSON file (optional; omit for anonymous matching)")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output MatchResult JSON file (defaults to stdout)")
	matchCmd.Flags().Int64Var(&matchSeed, "seed", 0, "Random seed for reproducible selection (0 = time-seeded)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a formatted match summary")

	if err := matchCmd.MarkFlagRequired("category"); err != nil {
		panic(fmt.Sprintf("failed to mark category flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	// 1. Load circumstances profile if provided
	var user *types.UserCircumstances
	if matchCircumstances != "" {
		content, err := os.ReadFile(matchCircumstances)
		if err != nil {
			return fmt.Errorf("failed to read circumstances file %s: %w", matchCircumstances, err)
		}
		user = &types.UserCircumstances{}
		if err := json.Unmarshal(content, user); err != nil {
			return fmt.Errorf("failed to unmarshal circumstances JSON: %w", err)
		}
	}

	// 2. Match against the catalog
	matcher := matching.NewMatcher(catalog.Default(), newSeededRand(matchSeed))
	result, err := matcher.Match(types.Category(matchCategory), user)
	if err != nil {
		return fmt.Errorf("failed to match opportunity: %w", err)
	}

	// 3. Emit the result
	if matchOutput != "" {
		if err := writeJSONOutput(matchOutput, result); err != nil {
			return err
		}
		validateOutputSchema("schemas/match_result.schema.json", matchOutput)
		_, _ = fmt.Fprintf(os.Stdout, "Successfully matched %q (%d%%) to %s\n", result.Opportunity.Title, result.MatchProbability, matchOutput)
	} else {
		jsonOutput, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal match result to JSON: %w", err)
		}
		_, _ = fmt.Fprintln(os.Stdout, string(jsonOutput))
	}

	if matchVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintMatchResult(&result)
		printer.PrintNextSteps(&result.Opportunity)
	}

	return nil
}
