package services

import (
	"context"
	"fmt"

	"banter-backend/internal/config"
)

// CompletionRequest is a single system + user exchange sent upstream.
type CompletionRequest struct {
	System    string
	Prompt    string
	MaxTokens int
}

// Completer performs one chat completion.
// It returns "" with a nil error when the upstream answered without usable text.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// UpstreamError is returned when the completion API answers with a non-2xx status.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error (status %d): %s", e.StatusCode, e.Body)
}

// NewCompleter builds the backend selected by cfg.LLMProvider.
func NewCompleter(ctx context.Context, cfg *config.Config) (Completer, error) {
	switch cfg.LLMProvider {
	case "", "openai":
		return NewOpenAIService(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, nil), nil
	case "gemini":
		return NewGeminiService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
	}
}
