package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"banter-backend/internal/models"
)

type contentScorer interface {
	ScoreContent(ctx context.Context, topic string, history []models.ChatMessage) models.ScoreResult
}

type ScoreHandler struct {
	scoringService contentScorer
}

func NewScoreHandler(scoringService contentScorer) *ScoreHandler {
	return &ScoreHandler{scoringService: scoringService}
}

func (h *ScoreHandler) Score(w http.ResponseWriter, r *http.Request) {
	var req models.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	writeJSON(w, http.StatusOK, h.scoringService.ScoreContent(r.Context(), req.Topic, req.History))
}
