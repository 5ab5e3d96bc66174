package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"natal-api/internal/metrics"
	"natal-api/internal/models"

	"github.com/rs/zerolog/log"
)

const (
	DefaultGroqBaseURL = "https://api.groq.com/openai/v1"
	DefaultGroqModel   = "llama-3.3-70b-versatile"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GroqClient calls an OpenAI-compatible chat completions endpoint.
type GroqClient struct {
	opts       Options
	httpClient *http.Client
}

// NewGroqClient creates a client; empty options fall back to the Groq defaults.
func NewGroqClient(opts Options) *GroqClient {
	opts = opts.withDefaults()
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultGroqBaseURL
	}
	if opts.Model == "" {
		opts.Model = DefaultGroqModel
	}
	return &GroqClient{
		opts:       opts,
		httpClient: &http.Client{Timeout: opts.Timeout},
	}
}

// Complete sends prompt as a single user message.
func (c *GroqClient) Complete(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	reply, err := c.complete(ctx, prompt)
	metrics.InferenceDurationMs.WithLabelValues("groq").Observe(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.InferenceRequestsTotal.WithLabelValues("groq", "error").Inc()
		log.Warn().Err(err).Str("model", c.opts.Model).Msg("inference: groq completion failed")
		return "", fmt.Errorf("%w: %v", models.ErrExternalService, err)
	}
	metrics.InferenceRequestsTotal.WithLabelValues("groq", "ok").Inc()
	return reply, nil
}

func (c *GroqClient) complete(ctx context.Context, prompt string) (string, error) {
	if c.opts.APIKey == "" {
		return "", fmt.Errorf("API key not configured")
	}

	body, err := json.Marshal(chatRequest{
		Model:       c.opts.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: c.opts.Temperature,
		MaxTokens:   c.opts.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.opts.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(raw))
	}

	var out chatResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("API error: %s", out.Error.Message)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("no completion returned")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
