package models

// ScoreRequest asks the judge to grade the user's side of a debate.
type ScoreRequest struct {
	Topic   string        `json:"topic"`
	History []ChatMessage `json:"history"`
}

type ScoreBreakdown struct {
	Novelty    float64 `json:"novelty"`
	Engagement float64 `json:"engagement"`
	Efficiency float64 `json:"efficiency"`
}

type ScoreResult struct {
	TotalScore float64        `json:"total_score"`
	Breakdown  ScoreBreakdown `json:"breakdown"`
	Feedback   string         `json:"feedback"`
}
