package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/magician360/opportunity-engine/internal/ai"
	"github.com/magician360/opportunity-engine/internal/config"
	"github.com/magician360/opportunity-engine/internal/server"
)

var (
	serveAddr   string
	serveSeed   int64
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for idea generation, opportunity matching, feasibility scoring, and report generation.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Address to listen on")
	serveCmd.Flags().Int64Var(&serveSeed, "seed", 0, "Random seed for reproducible selection (0 = time-seeded)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	var aiConfig *ai.Config

	if serveConfig != "" {
		cfg, err := config.LoadConfig(serveConfig)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if cfg.ListenAddr != "" && serveAddr == ":8080" {
			serveAddr = cfg.ListenAddr
		}
		if cfg.Seed != 0 && serveSeed == 0 {
			serveSeed = cfg.Seed
		}
		aiConfig = aiConfigFromEnv(cfg.AIProvider, cfg.AIEndpoint, cfg.AIModel)
		if cfg.APIKey != "" {
			aiConfig.APIKey = cfg.APIKey
		}
	} else {
		aiConfig = aiConfigFromEnv("", "", "")
	}

	srv, err := server.New(server.Config{
		Addr:     serveAddr,
		Seed:     serveSeed,
		AIConfig: aiConfig,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
