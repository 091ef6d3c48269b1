package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"campaignboard/internal/core/domain"
	"campaignboard/internal/core/port"
)

// campaignResponse is the aggregate projection rendered for clients. Dates
// are plain calendar days, money-like values fixed-2 text, counts integers.
type campaignResponse struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Status           string  `json:"status"`
	StartDate        *string `json:"start_date"`
	EndDate          *string `json:"end_date"`
	Budget           *string `json:"budget"`
	TotalImpressions int64   `json:"total_impressions"`
	TotalClicks      int64   `json:"total_clicks"`
	CTR              string  `json:"ctr"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

func newCampaignResponse(s *domain.CampaignSummary) campaignResponse {
	resp := campaignResponse{
		ID:               s.ID,
		Name:             s.Name,
		Status:           string(s.Status),
		StartDate:        formatDate(s.StartDate),
		EndDate:          formatDate(s.EndDate),
		TotalImpressions: s.TotalImpressions,
		TotalClicks:      s.TotalClicks,
		CTR:              s.CTR.StringFixed(2),
	}
	if s.Budget != nil {
		b := s.Budget.StringFixed(2)
		resp.Budget = &b
	}
	return resp
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	list, err := h.campaigns.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp := make([]campaignResponse, 0, len(list))
	for i := range list {
		resp = append(resp, newCampaignResponse(&list[i]))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	s, err := h.campaigns.Get(r.Context(), campaignID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCampaignResponse(s))
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req port.CampaignCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid JSON"})
		return
	}
	s, err := h.campaigns.Create(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, newCampaignResponse(s))
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var req port.CampaignUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid JSON"})
		return
	}
	s, err := h.campaigns.Update(r.Context(), campaignID(r), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCampaignResponse(s))
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	if err := h.campaigns.Delete(r.Context(), campaignID(r)); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
