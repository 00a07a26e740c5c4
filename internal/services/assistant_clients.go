package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/dto"

	"google.golang.org/genai"
)

var ErrUpstreamStatus = errors.New("unexpected upstream status")

// AuthTransport adds a bearer API key and JSON content type to every request.
type AuthTransport struct {
	apiKey string
	base   http.RoundTripper
}

func NewAuthTransport(apiKey string, base http.RoundTripper) *AuthTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &AuthTransport{apiKey: apiKey, base: base}
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	if t.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+t.apiKey)
	}
	req.Header.Set("Accept", "application/json")
	if req.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return t.base.RoundTrip(req)
}

// NewAssistantClient builds the client for the configured provider.
func NewAssistantClient(ctx context.Context, cfg *config.AssistantConfig, logger *slog.Logger) (AssistantClientInterface, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return NewGeminiClient(ctx, cfg)
	case config.ProviderOpenAI, "":
		return NewOpenAIClient(cfg, nil, logger), nil
	default:
		return nil, fmt.Errorf("unknown assistant provider %q", cfg.Provider)
	}
}

// OpenAIClient talks to any OpenAI-compatible chat completions endpoint, such
// as the xAI API.
type OpenAIClient struct {
	baseURL string
	model   string
	client  *http.Client
	logger  *slog.Logger
}

// NewOpenAIClient creates an OpenAIClient. base may be nil to use
// http.DefaultTransport.
func NewOpenAIClient(cfg *config.AssistantConfig, base http.RoundTripper, logger *slog.Logger) *OpenAIClient {
	return &OpenAIClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		client: &http.Client{
			Transport: NewAuthTransport(cfg.APIKey, base),
			Timeout:   cfg.Timeout,
		},
		logger: logger,
	}
}

func (c *OpenAIClient) Name() string {
	return config.ProviderOpenAI
}

func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	payload, err := json.Marshal(dto.ChatCompletionRequest{
		Model: c.model,
		Messages: []dto.ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		ResponseFormat: &dto.ChatResponseFormat{Type: "json_object"},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "assistant request failed", "url", req.URL.String(), "error", err)
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr dto.ChatErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("%w %d: %s", ErrUpstreamStatus, resp.StatusCode, apiErr.Error.Message)
		}
		return "", fmt.Errorf("%w %d", ErrUpstreamStatus, resp.StatusCode)
	}

	var completion dto.ChatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("decode completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("completion has no choices")
	}
	return completion.Choices[0].Message.Content, nil
}

// GeminiClient uses the Gemini API through google.golang.org/genai. Without an
// API key it is built anyway and every call reports the assistant unavailable.
type GeminiClient struct {
	models *genai.Models
	model  string
}

func NewGeminiClient(ctx context.Context, cfg *config.AssistantConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return &GeminiClient{model: cfg.Model}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiClient{models: client.Models, model: cfg.Model}, nil
}

func (c *GeminiClient) Name() string {
	return config.ProviderGemini
}

func (c *GeminiClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.models == nil {
		return "", fmt.Errorf("%w: gemini API key is not configured", ErrAssistantUnavailable)
	}

	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(userPrompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		ResponseMIMEType:  "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("empty response from model")
	}
	return text, nil
}
