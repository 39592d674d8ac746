// Package aiclient talks to an OpenAI-compatible chat completions API to
// turn a sales digest into a structured analysis.
package aiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/salespulse/backend/internal/domain/insight"
	"github.com/salespulse/backend/internal/infrastructure/config"
)

// Common errors. Rate limiting and exhausted credits are distinguished so
// callers can show different messages.
var (
	ErrRateLimited      = errors.New("AI provider rate limit exceeded")
	ErrCreditsExhausted = errors.New("AI provider credits exhausted")
	ErrEmptyResponse    = errors.New("AI provider returned no choices")
)

const systemPrompt = `You are a sales analyst. Given a plain-text summary of sales data, ` +
	`respond with a single JSON object with keys "trends", "patterns", "predictions", ` +
	`"risks", "insights" (each an array of short strings) and "summary" (one paragraph). ` +
	`Respond with JSON only.`

// Client calls a chat completions endpoint.
type Client struct {
	baseURL     string
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
	httpClient  *http.Client
}

// NewClient creates a client from configuration.
func NewClient(cfg config.AIConfig) *Client {
	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
	}
}

// NewClientWithHTTPClient creates a client with a caller-supplied
// http.Client, useful for testing.
func NewClientWithHTTPClient(cfg config.AIConfig, httpClient *http.Client) *Client {
	c := NewClient(cfg)
	c.httpClient = httpClient
	return c
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Analyze sends the digest to the model and decodes the structured
// analysis from its reply.
func (c *Client) Analyze(ctx context.Context, digest string) (insight.Analysis, error) {
	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: digest},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return insight.Analysis{}, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return insight.Analysis{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return insight.Analysis{}, fmt.Errorf("AI request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return insight.Analysis{}, ErrRateLimited
	case http.StatusPaymentRequired:
		return insight.Analysis{}, ErrCreditsExhausted
	default:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return insight.Analysis{}, fmt.Errorf("AI provider returned status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return insight.Analysis{}, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return insight.Analysis{}, ErrEmptyResponse
	}

	analysis, err := ParseAnalysis(decoded.Choices[0].Message.Content)
	if err != nil {
		return insight.Analysis{}, err
	}
	return analysis, nil
}

// ParseAnalysis extracts the analysis JSON object from a model reply.
// Models sometimes wrap the object in prose or a code fence, so the
// first balanced top-level object is located before decoding.
func ParseAnalysis(content string) (insight.Analysis, error) {
	blob, ok := extractJSONObject(content)
	if !ok {
		return insight.Analysis{}, insight.ErrMalformedAnalysis
	}

	var analysis insight.Analysis
	if err := json.Unmarshal([]byte(blob), &analysis); err != nil {
		return insight.Analysis{}, insight.ErrMalformedAnalysis
	}
	if err := analysis.Validate(); err != nil {
		return insight.Analysis{}, err
	}
	return analysis, nil
}

// extractJSONObject returns the first balanced {...} span in s.
func extractJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
