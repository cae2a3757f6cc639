package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/magician360/opportunity-engine/internal/ai"
	"github.com/magician360/opportunity-engine/internal/schemas"
)

// newSeededRand returns a deterministic source for a non-zero seed, or
// nil so the consumer falls back to time seeding.
func newSeededRand(seed int64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewSource(seed))
}

// aiConfigFromEnv builds an AI config from flags plus environment.
func aiConfigFromEnv(provider, endpoint, model string) *ai.Config {
	if provider == "" {
		provider = os.Getenv("AI_PROVIDER")
	}
	if provider == "" {
		return ai.DefaultConfig()
	}
	return &ai.Config{
		Provider: ai.Provider(provider),
		Endpoint: endpoint,
		Model:    model,
		APIKey:   os.Getenv("GEMINI_API_KEY"),
	}
}

// writeJSONOutput marshals v with indentation and writes it to path,
// creating parent directories as needed.
func writeJSONOutput(path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

// validateOutputSchema checks a written artifact against its schema.
// Validation is a safety check, not a requirement, so failures only
// warn on stderr.
func validateOutputSchema(schemaRelPath, jsonPath string) {
	schemaPath := schemas.ResolveSchemaPath(schemaRelPath)
	if schemaPath == "" {
		return
	}
	if err := schemas.ValidateJSON(schemaPath, jsonPath); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
	}
}
