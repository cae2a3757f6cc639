// Package main provides the entry point for the Texas Opportunity Engine CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "opportunity_agent",
	Short: "Texas Opportunity Engine",
	Long:  "Texas Opportunity Engine generates opportunity ideas, matches catalog entries to user circumstances, scores funding-justification feasibility, and formats agency reports via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
