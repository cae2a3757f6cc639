package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/magician360/opportunity-engine/internal/ai"
	"github.com/magician360/opportunity-engine/internal/ideas"
	"github.com/magician360/opportunity-engine/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an opportunity idea for a category",
	Long:  "Generates a Texas opportunity idea for one of the four categories (jobs, businesses, self-employment, contracts), either from the curated idea lists or composed from sector templates.",
	RunE:  runGenerate,
}

var (
	generateCategory   string
	generateTemplated  bool
	generateEnhance    bool
	generateSeed       int64
	generateAIProvider string
	generateAIEndpoint string
	generateAIModel    string
)

func init() {
	generateCmd.Flags().StringVarP(&generateCategory, "category", "c", "", "Opportunity category: jobs, businesses, self-employment, or contracts (required)")
	generateCmd.Flags().BoolVar(&generateTemplated, "templated", false, "Compose the idea from sector templates instead of the curated lists")
	generateCmd.Flags().BoolVar(&generateEnhance, "enhance", false, "Enhance the idea with the configured AI provider")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "Random seed for reproducible output (0 = time-seeded)")
	generateCmd.Flags().StringVar(&generateAIProvider, "ai-provider", "", "AI provider: gemini, ollama, local, or mock")
	generateCmd.Flags().StringVar(&generateAIEndpoint, "ai-endpoint", "", "Override endpoint for HTTP AI providers")
	generateCmd.Flags().StringVar(&generateAIModel, "ai-model", "", "Override AI model name")

	if err := generateCmd.MarkFlagRequired("category"); err != nil {
		panic(fmt.Sprintf("failed to mark category flag as required: %v", err))
	}

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	category := types.Category(generateCategory)
	rng := newSeededRand(generateSeed)

	var idea string
	if generateTemplated {
		idea = ideas.NewTemplatedGenerator(rng).Generate(category)
	} else {
		idea = ideas.NewListGenerator(rng).Generate(category)
	}

	_, _ = fmt.Fprintln(os.Stdout, idea)

	if generateEnhance {
		service := ai.NewService(aiConfigFromEnv(generateAIProvider, generateAIEndpoint, generateAIModel))
		enhanced := service.EnhanceIdea(cmd.Context(), idea, category)
		_, _ = fmt.Fprintf(os.Stdout, "\n%s\n", enhanced)
	}

	return nil
}
