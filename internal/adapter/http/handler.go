package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"campaignboard/internal/core/port"
)

// Handler is the inbound HTTP adapter. It holds the two usecases, a logger
// for structured logging and a chi.Router with all routes registered.
type Handler struct {
	campaigns   port.CampaignUseCase
	performance port.PerformanceUseCase
	logger      *slog.Logger
	router      chi.Router
}

// NewHandler creates a handler with all routes configured. CORS is open to
// any origin since the browser client is served from a different host. Every
// per-campaign route is gated by the id middleware, so an invalid id is
// rejected before any usecase or store call.
func NewHandler(campaigns port.CampaignUseCase, performance port.PerformanceUseCase, logger *slog.Logger) *Handler {
	h := &Handler{campaigns: campaigns, performance: performance, logger: logger}
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))
	r.Use(h.requestLogger)

	r.Route("/api/campaigns", func(r chi.Router) {
		r.Get("/", h.handleListCampaigns)
		r.Post("/", h.handleCreateCampaign)

		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.campaignIDCtx)
			r.Get("/", h.handleGetCampaign)
			r.Put("/", h.handleUpdateCampaign)
			r.Delete("/", h.handleDeleteCampaign)
			r.Get("/performance", h.handleListPerformance)
			r.Post("/performance", h.handleCreatePerformance)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
