package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"campaignboard/internal/core/domain"
)

type ctxKey int

const campaignIDKey ctxKey = iota

// campaignIDCtx validates the {id} path parameter and stores the parsed id
// in the request context. Anything that is not a positive integer is
// rejected here, before any store access happens.
func (h *Handler) campaignIDCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			h.writeError(w, domain.NewError(domain.CodeInvalidID,
				"Invalid campaign ID format. ID must be a positive integer."))
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), campaignIDKey, id)))
	})
}

func campaignID(r *http.Request) int64 {
	id, _ := r.Context().Value(campaignIDKey).(int64)
	return id
}

// requestLogger emits one structured line per request with a generated
// request id, replacing the console dump the old middleware produced.
func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.Info("request",
			slog.String("request_id", uuid.NewString()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
		)
	})
}
