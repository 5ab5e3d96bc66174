package inference

import (
	"context"
	"fmt"
	"strings"
	"time"

	"natal-api/internal/metrics"
	"natal-api/internal/models"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiClient generates completions with the Gemini API.
type GeminiClient struct {
	client *genai.Client
	opts   Options
}

// NewGeminiClient creates a Gemini client.
func NewGeminiClient(ctx context.Context, opts Options) (*GeminiClient, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("inference: Gemini API key is required")
	}
	opts = opts.withDefaults()
	if opts.Model == "" {
		opts.Model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("inference: failed to create GenAI client: %w", err)
	}
	return &GeminiClient{client: client, opts: opts}, nil
}

// Complete sends prompt as a single user turn.
func (c *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := c.client.Models.GenerateContent(ctx, c.opts.Model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(c.opts.Temperature),
		MaxOutputTokens: int32(c.opts.MaxTokens),
	})
	metrics.InferenceDurationMs.WithLabelValues("gemini").Observe(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.InferenceRequestsTotal.WithLabelValues("gemini", "error").Inc()
		log.Warn().Err(err).Str("model", c.opts.Model).Msg("inference: gemini completion failed")
		return "", fmt.Errorf("%w: %v", models.ErrExternalService, err)
	}
	metrics.InferenceRequestsTotal.WithLabelValues("gemini", "ok").Inc()
	return strings.TrimSpace(resp.Text()), nil
}
