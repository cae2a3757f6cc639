package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/magician360/opportunity-engine/internal/ai"
	"github.com/magician360/opportunity-engine/internal/feasibility"
	"github.com/magician360/opportunity-engine/internal/observability"
	"github.com/magician360/opportunity-engine/internal/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Score the feasibility of a funding submission",
	Long:  "Scores a funding-justification submission on the weighted feasibility rubric and emits a FeasibilityResult JSON. With --ai-review, an AI concept review runs alongside the rubric.",
	RunE:  runValidate,
}

var (
	validateForm       string
	validateOutput     string
	validateAIReview   bool
	validateAIProvider string
	validateAIEndpoint string
	validateAIModel    string
	validateVerbose    bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateForm, "form", "f", "", "Path to input ValidationFormData JSON file (required)")
	validateCmd.Flags().StringVarP(&validateOutput, "out", "o", "", "Path to output FeasibilityResult JSON file (defaults to stdout)")
	validateCmd.Flags().BoolVar(&validateAIReview, "ai-review", false, "Run an AI concept review alongside the rubric")
	validateCmd.Flags().StringVar(&validateAIProvider, "ai-provider", "", "AI provider: gemini, ollama, local, or mock")
	validateCmd.Flags().StringVar(&validateAIEndpoint, "ai-endpoint", "", "Override endpoint for HTTP AI providers")
	validateCmd.Flags().StringVar(&validateAIModel, "ai-model", "", "Override AI model name")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Print a formatted score breakdown")

	if err := validateCmd.MarkFlagRequired("form"); err != nil {
		panic(fmt.Sprintf("failed to mark form flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	// 1. Load submission
	content, err := os.ReadFile(validateForm)
	if err != nil {
		return fmt.Errorf("failed to read form file %s: %w", validateForm, err)
	}

	var form types.ValidationFormData
	if err := json.Unmarshal(content, &form); err != nil {
		return fmt.Errorf("failed to unmarshal form JSON: %w", err)
	}

	// 2. Score the rubric and, optionally, the AI review in parallel.
	// The rubric is pure computation; the review is a network call.
	var (
		result types.FeasibilityResult
		review ai.ConceptReview
	)

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		result = feasibility.NewEngine().CalculateFeasibility(form)
		return nil
	})
	if validateAIReview {
		g.Go(func() error {
			service := ai.NewService(aiConfigFromEnv(validateAIProvider, validateAIEndpoint, validateAIModel))
			review = service.ValidateBusinessConcept(ctx, form)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// 3. Emit the result
	if validateOutput != "" {
		if err := writeJSONOutput(validateOutput, result); err != nil {
			return err
		}
		validateOutputSchema("schemas/feasibility_result.schema.json", validateOutput)
		_, _ = fmt.Fprintf(os.Stdout, "Feasibility score %d (%s) written to %s\n", result.Score, result.Recommendation, validateOutput)
	} else {
		jsonOutput, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal feasibility result to JSON: %w", err)
		}
		_, _ = fmt.Fprintln(os.Stdout, string(jsonOutput))
	}

	if validateAIReview {
		_, _ = fmt.Fprintf(os.Stdout, "\nAI concept review (score %d):\n%s\n", review.Score, review.Feedback)
	}

	if validateVerbose {
		observability.NewPrinter(os.Stderr).PrintFeasibility(&result)
	}

	return nil
}
