package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Request is a single generation request.
type Request struct {
	Prompt      string
	Category    string
	Temperature float64
	MaxTokens   int
}

// Response is a completed generation with provenance metadata.
type Response struct {
	Text           string
	Confidence     float64
	Model          string
	ProcessingTime time.Duration
}

// mockText is returned whenever no real provider is reachable.
const mockText = "AI service is not configured. Please set up Ollama or local AI service."

// Service routes generation requests to the configured provider.
type Service struct {
	config *Config
	http   *http.Client
}

// NewService creates a service for the given configuration. A nil
// config defaults to the mock provider.
func NewService(config *Config) *Service {
	if config == nil {
		config = DefaultConfig()
	}
	return &Service{
		config: config,
		http:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Generate runs the request against the configured provider. Provider
// errors are absorbed: the caller always gets a usable response, with
// the mock text standing in when generation is unavailable.
func (s *Service) Generate(ctx context.Context, req Request) Response {
	start := time.Now()

	var (
		resp Response
		err  error
	)
	switch s.config.Provider {
	case ProviderGemini:
		resp, err = s.generateWithGemini(ctx, req)
	case ProviderOllama:
		resp, err = s.generateWithOllama(ctx, req)
	case ProviderLocal:
		resp, err = s.generateWithLocal(ctx, req)
	default:
		resp = s.mockResponse()
	}
	if err != nil {
		resp = s.mockResponse()
	}

	resp.ProcessingTime = time.Since(start)
	return resp
}

func (s *Service) mockResponse() Response {
	return Response{Text: mockText, Confidence: 0.5, Model: "mock"}
}

func (s *Service) generateWithGemini(ctx context.Context, req Request) (Response, error) {
	if s.config.APIKey == "" {
		return Response{}, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.config.APIKey))
	if err != nil {
		return Response{}, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	modelName := s.config.model(defaultGeminiModel)
	model := client.GenerativeModel(modelName)
	model.SetTemperature(float32(req.Temperature))

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return Response{}, fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return Response{}, err
	}

	return Response{Text: text, Confidence: 0.9, Model: modelName}, nil
}

func (s *Service) generateWithOllama(ctx context.Context, req Request) (Response, error) {
	endpoint := s.config.endpoint(defaultOllamaEndpoint)
	model := s.config.model(defaultOllamaModel)

	payload := map[string]any{
		"model":       model,
		"prompt":      req.Prompt,
		"temperature": temperatureOrDefault(req.Temperature),
		"stream":      false,
	}

	var body struct {
		Response string `json:"response"`
	}
	if err := s.postJSON(ctx, endpoint+"/api/generate", payload, &body); err != nil {
		return Response{}, err
	}

	return Response{Text: body.Response, Confidence: 0.85, Model: model}, nil
}

func (s *Service) generateWithLocal(ctx context.Context, req Request) (Response, error) {
	endpoint := s.config.endpoint(defaultLocalEndpoint)

	payload := map[string]any{
		"prompt":      req.Prompt,
		"category":    req.Category,
		"temperature": temperatureOrDefault(req.Temperature),
		"max_tokens":  maxTokensOrDefault(req.MaxTokens),
	}

	var body struct {
		Text       string  `json:"text"`
		Confidence float64 `json:"confidence"`
		Model      string  `json:"model"`
	}
	if err := s.postJSON(ctx, endpoint+"/api/generate", payload, &body); err != nil {
		return Response{}, err
	}

	if body.Confidence == 0 {
		body.Confidence = 0.8
	}
	if body.Model == "" {
		body.Model = "local-ai"
	}
	return Response{Text: body.Text, Confidence: body.Confidence, Model: body.Model}, nil
}

func (s *Service) postJSON(ctx context.Context, url string, payload any, out any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := s.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("generation request failed: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("generation API error: %s", httpResp.Status)
	}

	if err := json.NewDecoder(httpResp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func temperatureOrDefault(t float64) float64 {
	if t == 0 {
		return 0.7
	}
	return t
}

func maxTokensOrDefault(n int) int {
	if n == 0 {
		return 150
	}
	return n
}

func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var text string
	for _, part := range candidate.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text += string(t)
		}
	}
	if text == "" {
		return "", fmt.Errorf("no text parts in response")
	}
	return text, nil
}
