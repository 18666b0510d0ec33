package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"banter-backend/internal/models"
)

const backendError = "backend error"

type debater interface {
	Rebut(ctx context.Context, req models.DebateRequest) (string, error)
}

type DebateHandler struct {
	debateService debater
}

func NewDebateHandler(debateService debater) *DebateHandler {
	return &DebateHandler{debateService: debateService}
}

// Debate relays one user message to the model and returns its rebuttal.
// The body is not validated: absent or malformed fields still produce a prompt.
func (h *DebateHandler) Debate(w http.ResponseWriter, r *http.Request) {
	req := decodeDebateRequest(r.Body)

	reply, err := h.debateService.Rebut(r.Context(), req)
	if err != nil {
		log.Printf("debate request %s failed: %v", r.Header.Get("X-Request-ID"), err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorReply{Error: backendError})
		return
	}

	writeJSON(w, http.StatusOK, models.DebateReply{Reply: reply})
}

// decodeDebateRequest reads each field independently so a bad value in one
// field never drops the others. Non-string values are rendered as text.
// A body that is not a JSON object yields a request with every field absent.
func decodeDebateRequest(body io.Reader) models.DebateRequest {
	var fields map[string]interface{}
	if err := json.NewDecoder(body).Decode(&fields); err != nil {
		return models.DebateRequest{}
	}

	return models.DebateRequest{
		Topic:       fieldText(fields, "topic"),
		UserMessage: fieldText(fields, "userMessage"),
		Role:        fieldText(fields, "role"),
	}
}

func fieldText(fields map[string]interface{}, key string) *string {
	v, ok := fields[key]
	if !ok {
		return nil
	}
	s := renderValue(v)
	return &s
}

// renderValue formats a decoded JSON value the way string interpolation does
// in the browser clients: null -> "null", arrays comma-joined, objects opaque.
func renderValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case []interface{}:
		parts := make([]string, len(t))
		for i, e := range t {
			if e != nil {
				parts[i] = renderValue(e)
			}
		}
		return strings.Join(parts, ",")
	case map[string]interface{}:
		return "[object Object]"
	default:
		return fmt.Sprint(t)
	}
}
