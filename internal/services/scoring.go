package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"banter-backend/internal/models"
)

const (
	judgeSystemPrompt = "You are a professional debate judge."
	scoringFailed     = "Error analyzing content."
)

// ScoringService grades the user's side of a debate with an LLM judge.
type ScoringService struct {
	completer Completer
}

func NewScoringService(completer Completer) *ScoringService {
	return &ScoringService{completer: completer}
}

type judgeVerdict struct {
	NoveltyScore    float64 `json:"novelty_score"`
	EngagementScore float64 `json:"engagement_score"`
	EfficiencyScore float64 `json:"efficiency_score"`
	Feedback        string  `json:"feedback"`
}

// ScoreContent never fails: on any error the result carries zero scores.
func (s *ScoringService) ScoreContent(ctx context.Context, topic string, history []models.ChatMessage) models.ScoreResult {
	content, err := s.completer.Complete(ctx, CompletionRequest{
		System: judgeSystemPrompt,
		Prompt: buildScoringPrompt(topic, history),
	})
	if err != nil {
		log.Printf("Content scoring error: %v", err)
		return models.ScoreResult{Feedback: scoringFailed}
	}

	var verdict judgeVerdict
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &verdict); err != nil {
		log.Printf("Content scoring error: failed to parse verdict: %v", err)
		return models.ScoreResult{Feedback: scoringFailed}
	}

	return models.ScoreResult{
		TotalScore: verdict.NoveltyScore + verdict.EngagementScore + verdict.EfficiencyScore,
		Breakdown: models.ScoreBreakdown{
			Novelty:    verdict.NoveltyScore,
			Engagement: verdict.EngagementScore,
			Efficiency: verdict.EfficiencyScore,
		},
		Feedback: verdict.Feedback,
	}
}

func buildScoringPrompt(topic string, history []models.ChatMessage) string {
	lines := make([]string, 0, len(history))
	for _, h := range history {
		lines = append(lines, fmt.Sprintf("%s: %s", strings.ToUpper(h.Role), h.Content))
	}

	return fmt.Sprintf(`Evaluate the USER's performance in this debate on the topic: "%s".
Rubric (Total 65 points for content):
1. Novel Contributions (35p): Did they bring new evidence, analogies, or perspectives to shift the topic?
2. Engagement (20p): Did they respond to the AI's questions, recognize valid claims, and expand on them?
3. Efficiency (10p): Were they concise and clear?

Debate History:
%s

Return a JSON object with:
- novelty_score (0-35)
- engagement_score (0-20)
- efficiency_score (0-10)
- feedback (String, 2-3 sentences max summarizing pros/cons)

ONLY RETURN THE JSON.`, topic, strings.Join(lines, "\n"))
}

// stripCodeFence unwraps a ```json ... ``` (or bare ```) block if the model added one.
func stripCodeFence(text string) string {
	if _, after, ok := strings.Cut(text, "```json"); ok {
		text = after
	} else if _, after, ok := strings.Cut(text, "```"); ok {
		text = after
	} else {
		return strings.TrimSpace(text)
	}
	body, _, _ := strings.Cut(text, "```")
	return strings.TrimSpace(body)
}
