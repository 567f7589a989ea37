// Package gemini adapts the Google Gen AI SDK to ports.AIProvider.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/genai"

	"inkpress/src/core/ports"
	"inkpress/src/infra/config"
)

var errEmptyCandidate = errors.New("gemini returned no text")

// Client sends single-turn prompts to a Gemini model.
type Client struct {
	genai *genai.Client
	model string
	log   *slog.Logger
}

// New creates a client for the configured model. It does not contact the API.
func New(ctx context.Context, cfg config.AIConfig, log *slog.Logger) (*Client, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{genai: c, model: cfg.Model, log: log}, nil
}

// Generate returns the model's raw text for prompt. One call, no retries.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	result, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	out := result.Text()
	c.log.Debug("gemini call completed",
		"model", c.model,
		"duration", time.Since(start),
		"response_length", len(out),
	)
	if out == "" {
		return "", errEmptyCandidate
	}
	return out, nil
}

// Health checks that the configured model is reachable with the given key.
func (c *Client) Health(ctx context.Context) error {
	if _, err := c.genai.Models.Get(ctx, c.model, nil); err != nil {
		return fmt.Errorf("get model %s: %w", c.model, err)
	}
	return nil
}

var _ ports.AIProvider = (*Client)(nil)
