package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"banter-backend/internal/models"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain json", ` {"a":1} `, `{"a":1}`},
		{"json fence", "Here:\n```json\n{\"a\":1}\n```\nthanks", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"unterminated fence", "```json\n{\"a\":1}", `{"a":1}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := stripCodeFence(tc.input); got != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestBuildScoringPrompt(t *testing.T) {
	prompt := buildScoringPrompt("AI Safety", []models.ChatMessage{
		{Role: "user", Content: "AI is dangerous."},
		{Role: "ai", Content: "I disagree."},
	})

	for _, want := range []string{
		`on the topic: "AI Safety"`,
		"USER: AI is dangerous.\nAI: I disagree.",
		"ONLY RETURN THE JSON.",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestScoringService_ScoreContent(t *testing.T) {
	c := &stubCompleter{reply: "```json\n{\"novelty_score\":30,\"engagement_score\":15,\"efficiency_score\":8,\"feedback\":\"Great job, very concise.\"}\n```"}
	svc := NewScoringService(c)

	got := svc.ScoreContent(context.Background(), "AI Safety", []models.ChatMessage{{Role: "user", Content: "AI is dangerous."}})

	if got.TotalScore != 53 {
		t.Fatalf("expected total 53, got %v", got.TotalScore)
	}
	if got.Breakdown.Novelty != 30 || got.Breakdown.Engagement != 15 || got.Breakdown.Efficiency != 8 {
		t.Fatalf("unexpected breakdown %+v", got.Breakdown)
	}
	if got.Feedback != "Great job, very concise." {
		t.Fatalf("unexpected feedback %q", got.Feedback)
	}
	if c.last.System != judgeSystemPrompt {
		t.Fatalf("unexpected system prompt %q", c.last.System)
	}
}

func TestScoringService_ScoreContent_Failures(t *testing.T) {
	tests := []struct {
		name string
		c    *stubCompleter
	}{
		{"upstream error", &stubCompleter{err: errors.New("boom")}},
		{"not json", &stubCompleter{reply: "I think they did well."}},
		{"empty reply", &stubCompleter{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NewScoringService(tc.c).ScoreContent(context.Background(), "t", nil)
			if got.TotalScore != 0 || got.Breakdown != (models.ScoreBreakdown{}) {
				t.Fatalf("expected zero scores, got %+v", got)
			}
			if got.Feedback != scoringFailed {
				t.Fatalf("unexpected feedback %q", got.Feedback)
			}
		})
	}
}
