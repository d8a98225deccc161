package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ---- Anthropic Messages API ----

const (
	anthropicDefaultURL = "https://api.anthropic.com"
	anthropicVersion    = "2023-06-01"

	// DefaultAnthropicModel is used when no model is configured.
	DefaultAnthropicModel = "claude-3-sonnet-20240229"
)

// AnthropicClient generates text through the Anthropic Messages API.
type AnthropicClient struct {
	apiKey    string
	model     string
	maxTokens int
	baseURL   string
	client    *http.Client
}

// NewAnthropicClient constructs an AnthropicClient. An empty model selects
// DefaultAnthropicModel.
func NewAnthropicClient(apiKey, model string, maxTokens int) *AnthropicClient {
	return NewAnthropicClientWithURL(anthropicDefaultURL, apiKey, model, maxTokens)
}

// NewAnthropicClientWithURL constructs an AnthropicClient pointing at a custom base URL (for tests).
func NewAnthropicClientWithURL(baseURL, apiKey, model string, maxTokens int) *AnthropicClient {
	if model == "" {
		model = DefaultAnthropicModel
	}
	return &AnthropicClient{
		apiKey:    apiKey,
		model:     model,
		maxTokens: maxTokens,
		baseURL:   strings.TrimRight(baseURL, "/"),
		client:    newHTTPClient(),
	}
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

type anthropicErrorEnvelope struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends prompt as a single user message and returns the text of the
// first content block.
func (c *AnthropicClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("anthropic: no api key: %w", ErrUnavailable)
	}

	payload, err := json.Marshal(anthropicRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages:  []anthropicMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("encoding anthropic request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating anthropic request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("POST anthropic messages: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading anthropic response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &ProviderError{Provider: "anthropic", Status: resp.StatusCode, Detail: anthropicDetail(body)}
	}

	var raw anthropicResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", fmt.Errorf("decoding anthropic response: %w", err)
	}
	if len(raw.Content) == 0 {
		return "", fmt.Errorf("anthropic response has no content blocks")
	}

	return raw.Content[0].Text, nil
}

// anthropicDetail prefers the message from the error envelope and falls back
// to the raw body text.
func anthropicDetail(body []byte) string {
	var env anthropicErrorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error.Message != "" {
		return env.Error.Message
	}
	if detail := strings.TrimSpace(string(body)); detail != "" {
		return detail
	}
	return "failed to generate trip"
}
