package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"campaignboard/internal/core/domain"
)

type errorResponse struct {
	Message string `json:"message"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps the error taxonomy to HTTP statuses. Store failures are
// logged with their cause and surfaced with a generic message only.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal error"

	switch domain.CodeOf(err) {
	case domain.CodeNotFound:
		status = http.StatusNotFound
		message = err.Error()
	case domain.CodeConflict:
		status = http.StatusConflict
		message = err.Error()
	case domain.CodeStore:
		h.logger.Error("store error", slog.Any("error", err))
	default:
		// remaining codes are all client-input errors
		status = http.StatusBadRequest
		message = err.Error()
	}
	h.writeJSON(w, status, errorResponse{Message: message})
}
