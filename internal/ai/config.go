// Package ai provides the optional generative-AI layer: idea
// enhancement and business-concept review. The deterministic engine
// never depends on it; every provider failure degrades to the mock
// provider rather than surfacing an error.
package ai

// Provider identifies a generation backend.
type Provider string

const (
	// ProviderGemini uses the Google Gemini API.
	ProviderGemini Provider = "gemini"
	// ProviderOllama uses a local Ollama server.
	ProviderOllama Provider = "ollama"
	// ProviderLocal uses a self-hosted generation service.
	ProviderLocal Provider = "local"
	// ProviderMock returns canned responses; the default.
	ProviderMock Provider = "mock"
)

// Default endpoints and model for the HTTP providers.
const (
	defaultOllamaEndpoint = "http://localhost:11434"
	defaultLocalEndpoint  = "http://localhost:5000"
	defaultOllamaModel    = "llama2"
	defaultGeminiModel    = "gemini-2.5-flash"
)

// Config selects and parameterizes a provider. Callers hold their own
// Config; there is no package-level singleton.
type Config struct {
	Provider Provider
	Endpoint string
	Model    string
	APIKey   string
}

// DefaultConfig returns the mock-provider configuration.
func DefaultConfig() *Config {
	return &Config{Provider: ProviderMock}
}

// endpoint returns the configured endpoint or the provider default.
func (c *Config) endpoint(fallback string) string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	return fallback
}

// model returns the configured model or the provider default.
func (c *Config) model(fallback string) string {
	if c.Model != "" {
		return c.Model
	}
	return fallback
}
