package models

// ChatMessage represents a single turn in a debate.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "ai"
	Content string `json:"content"`
}
