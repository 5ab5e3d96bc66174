// Package inference talks to large-language-model completion services used
// for place inference, offset guesses and extended readings.
package inference

import (
	"context"
	"fmt"
	"time"

	"natal-api/internal/models"
)

// Completer turns a free-text prompt into a free-text reply.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Options configures a completion provider.
type Options struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

const (
	DefaultTemperature = 0.8
	DefaultMaxTokens   = 2048
	DefaultTimeout     = 60 * time.Second
)

func (o Options) withDefaults() Options {
	if o.Temperature == 0 {
		o.Temperature = DefaultTemperature
	}
	if o.MaxTokens == 0 {
		o.MaxTokens = DefaultMaxTokens
	}
	if o.Timeout == 0 {
		o.Timeout = DefaultTimeout
	}
	return o
}

// Disabled is a Completer for deployments without an inference provider.
type Disabled struct{}

func (Disabled) Complete(context.Context, string) (string, error) {
	return "", fmt.Errorf("%w: inference disabled", models.ErrExternalService)
}

// New selects a provider by name: "groq", "gemini" or "none".
func New(ctx context.Context, provider string, opts Options) (Completer, error) {
	switch provider {
	case "groq":
		return NewGroqClient(opts), nil
	case "gemini":
		return NewGeminiClient(ctx, opts)
	case "", "none":
		return Disabled{}, nil
	}
	return nil, fmt.Errorf("inference: unknown provider %q", provider)
}
