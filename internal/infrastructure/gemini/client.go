// Package gemini adapts the Google Gemini API to the text generation port.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"article-generator/internal/domain"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-1.5-flash-latest"

// Config holds the client settings.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	// HTTPClient is optional; the SDK default is used when nil.
	HTTPClient *http.Client
}

// Client generates text with a Gemini model.
type Client struct {
	models *genai.Models
	model  string
}

// NewClient creates a Gemini client. No network call is made.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: strings.TrimRight(cfg.BaseURL, "/") + "/"}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Client{models: client.Models, model: cfg.Model}, nil
}

// GenerateText sends one prompt and returns the first candidate's text.
// There is no retry; the caller bounds the call with ctx.
func (c *Client) GenerateText(ctx context.Context, prompt string, sc domain.SamplingConfig) (string, error) {
	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(sc.Temperature),
		TopK:            genai.Ptr(sc.TopK),
		TopP:            genai.Ptr(sc.TopP),
		MaxOutputTokens: sc.MaxOutputTokens,
	})
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("gemini API returned no candidate text")
	}
	return text, nil
}
