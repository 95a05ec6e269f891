package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"oracle-backend/internal/models"
)

// maxPromptBody caps the request body at 100kb.
const maxPromptBody = 100 << 10

type oracleService interface {
	HandlePrompt(ctx context.Context, prompt string) (string, error)
}

type AIHandler struct {
	oracle oracleService
}

func NewAIHandler(oracle oracleService) *AIHandler {
	return &AIHandler{oracle: oracle}
}

// Ask handles POST /ai.
func (h *AIHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req models.ProxyRequest
	if r.Body != nil {
		body := http.MaxBytesReader(w, r.Body, maxPromptBody)
		if err := json.NewDecoder(body).Decode(&req); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeJSON(w, http.StatusRequestEntityTooLarge, models.ErrorResponse{Error: "Request body too large"})
				return
			}
			// Absent, malformed, or non-string prompt all read as "no prompt".
			req.Prompt = ""
		}
	}

	reply, err := h.oracle.HandlePrompt(r.Context(), req.Prompt)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ProxyResponse{Response: reply})
}

// Health handles GET /health.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{Status: "ok"})
}
