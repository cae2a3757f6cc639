// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Engine
	Seed   int64  `json:"seed,omitempty"`   // Random seed; 0 means time-seeded
	Region string `json:"region,omitempty"` // Default Texas region for matching

	// AI
	AIProvider string `json:"ai_provider,omitempty"` // gemini, ollama, local, or mock
	AIEndpoint string `json:"ai_endpoint,omitempty"` // Override endpoint for HTTP providers
	AIModel    string `json:"ai_model,omitempty"`    // Override model name
	APIKey     string `json:"api_key,omitempty"`     // Gemini API key

	// Server
	ListenAddr string `json:"listen_addr,omitempty"` // HTTP listen address for serve mode

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Seed < 0 {
		return fmt.Errorf("config error: 'seed' must be non-negative")
	}

	switch c.AIProvider {
	case "", "gemini", "ollama", "local", "mock":
	default:
		return fmt.Errorf("config error: unknown 'ai_provider' %q", c.AIProvider)
	}

	if c.AIProvider == "gemini" && c.APIKey == "" && os.Getenv("GEMINI_API_KEY") == "" {
		return fmt.Errorf("config error: gemini provider requires 'api_key' or GEMINI_API_KEY")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Region == "" {
		result.Region = defaults.Region
	}
	if result.AIProvider == "" {
		result.AIProvider = defaults.AIProvider
	}
	if result.AIEndpoint == "" {
		result.AIEndpoint = defaults.AIEndpoint
	}
	if result.AIModel == "" {
		result.AIModel = defaults.AIModel
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.ListenAddr == "" {
		result.ListenAddr = defaults.ListenAddr
	}
	if result.Seed == 0 {
		result.Seed = defaults.Seed
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
