package handlers

import (
	"encoding/json"
	"net/http"

	"oracle-backend/internal/models"
	"oracle-backend/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func handleServiceError(w http.ResponseWriter, err error) {
	switch e := err.(type) {
	case *services.InvalidInputError:
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: e.Message})
	case *services.UpstreamError:
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Error:   services.MsgUpstreamFailed,
			Details: e.Error(),
		})
	default:
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Error:   services.MsgUpstreamFailed,
			Details: err.Error(),
		})
	}
}
