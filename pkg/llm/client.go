package llm

import (
	"context"
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned when a gated operation is attempted without a
// credential. Keys are supplied per request by the browser, never stored
// server-side.
var ErrMissingAPIKey = errors.New("API key is required")

const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// TextGenerator sends one prompt to a generative-text model and returns the
// raw text output. Implementations do not retry.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewTextGenerator builds a client for the given provider. An empty provider
// selects Gemini, which is what the browser UI supplies a key for.
func NewTextGenerator(ctx context.Context, provider, apiKey string) (TextGenerator, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	switch provider {
	case "", ProviderGemini:
		return NewGeminiClient(ctx, apiKey)
	case ProviderOpenAI:
		return NewOpenAIClient(apiKey), nil
	case ProviderAnthropic:
		return NewAnthropicClient(apiKey), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", provider)
	}
}
