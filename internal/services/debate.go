package services

import (
	"context"
	"fmt"
	"time"

	"banter-backend/internal/models"
)

const (
	DebateSystemPrompt = "You are a helpful debate partner."
	FallbackReply      = "Sorry, I couldn't generate a reply."

	// Substituted for request fields the caller left out.
	missingField = "undefined"
)

type DebateService struct {
	completer Completer
	maxTokens int
	timeout   time.Duration
}

// NewDebateService wires the relay. A zero timeout leaves upstream calls unbounded.
func NewDebateService(completer Completer, maxTokens int, timeout time.Duration) *DebateService {
	return &DebateService{
		completer: completer,
		maxTokens: maxTokens,
		timeout:   timeout,
	}
}

// Rebut asks the model for one argument or rebuttal against the user's message.
func (s *DebateService) Rebut(ctx context.Context, req models.DebateRequest) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	reply, err := s.completer.Complete(ctx, CompletionRequest{
		System:    DebateSystemPrompt,
		Prompt:    BuildDebatePrompt(req),
		MaxTokens: s.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("debate completion failed: %w", err)
	}

	if reply == "" {
		return FallbackReply, nil
	}
	return reply, nil
}

func BuildDebatePrompt(req models.DebateRequest) string {
	return fmt.Sprintf(`You are an argumentative debate partner. Topic: %s
User says: "%s"
Respond with one clear argument or rebuttal in 2-4 sentences. Be concise and give reasoning.`,
		valueOrMissing(req.Topic),
		valueOrMissing(req.UserMessage),
	)
}

func valueOrMissing(s *string) string {
	if s == nil {
		return missingField
	}
	return *s
}
