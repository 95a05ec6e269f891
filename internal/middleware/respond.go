package middleware

import (
	"encoding/json"
	"net/http"

	"oracle-backend/internal/models"
)

func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ErrorResponse{Error: message, Details: details})
}
