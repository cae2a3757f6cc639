package main

import (
	"fmt"
	"math"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/magician360/opportunity-engine/internal/ai"
	"github.com/magician360/opportunity-engine/internal/ideas"
	"github.com/magician360/opportunity-engine/internal/types"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark AI idea-enhancement latency",
	Long:  "Runs repeated idea enhancements against the configured AI provider and reports latency statistics (mean, median, min, max, standard deviation).",
	RunE:  runBench,
}

var (
	benchIterations int
	benchCategory   string
	benchAIProvider string
	benchAIEndpoint string
	benchAIModel    string
)

func init() {
	benchCmd.Flags().IntVarP(&benchIterations, "iterations", "n", 10, "Number of enhancement requests to run")
	benchCmd.Flags().StringVarP(&benchCategory, "category", "c", "businesses", "Opportunity category to benchmark with")
	benchCmd.Flags().StringVar(&benchAIProvider, "ai-provider", "", "AI provider: gemini, ollama, local, or mock")
	benchCmd.Flags().StringVar(&benchAIEndpoint, "ai-endpoint", "", "Override endpoint for HTTP AI providers")
	benchCmd.Flags().StringVar(&benchAIModel, "ai-model", "", "Override AI model name")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, _ []string) error {
	if benchIterations < 1 {
		return fmt.Errorf("iterations must be at least 1")
	}

	category := types.Category(benchCategory)
	service := ai.NewService(aiConfigFromEnv(benchAIProvider, benchAIEndpoint, benchAIModel))
	generator := ideas.NewListGenerator(nil)

	durations := make([]time.Duration, 0, benchIterations)
	for i := 0; i < benchIterations; i++ {
		idea := generator.Generate(category)
		start := time.Now()
		service.EnhanceIdea(cmd.Context(), idea, category)
		durations = append(durations, time.Since(start))
		_, _ = fmt.Fprintf(os.Stderr, "run %d/%d: %v\n", i+1, benchIterations, durations[i])
	}

	stats := computeLatencyStats(durations)
	_, _ = fmt.Fprintf(os.Stdout, "Iterations: %d\n", benchIterations)
	_, _ = fmt.Fprintf(os.Stdout, "Mean:       %v\n", stats.Mean)
	_, _ = fmt.Fprintf(os.Stdout, "Median:     %v\n", stats.Median)
	_, _ = fmt.Fprintf(os.Stdout, "Min:        %v\n", stats.Min)
	_, _ = fmt.Fprintf(os.Stdout, "Max:        %v\n", stats.Max)
	_, _ = fmt.Fprintf(os.Stdout, "Stddev:     %v\n", stats.Stddev)

	return nil
}

// latencyStats summarizes a set of request durations.
type latencyStats struct {
	Mean   time.Duration
	Median time.Duration
	Min    time.Duration
	Max    time.Duration
	Stddev time.Duration
}

// computeLatencyStats derives summary statistics from the raw samples.
// The input must be non-empty; the samples are sorted in place.
func computeLatencyStats(samples []time.Duration) latencyStats {
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })

	var sum time.Duration
	for _, d := range samples {
		sum += d
	}
	mean := sum / time.Duration(len(samples))

	var median time.Duration
	mid := len(samples) / 2
	if len(samples)%2 == 0 {
		median = (samples[mid-1] + samples[mid]) / 2
	} else {
		median = samples[mid]
	}

	var variance float64
	for _, d := range samples {
		diff := float64(d - mean)
		variance += diff * diff
	}
	variance /= float64(len(samples))

	return latencyStats{
		Mean:   mean,
		Median: median,
		Min:    samples[0],
		Max:    samples[len(samples)-1],
		Stddev: time.Duration(math.Sqrt(variance)),
	}
}
