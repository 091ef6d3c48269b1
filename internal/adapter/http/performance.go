package httpadapter

import (
	"encoding/json"
	"net/http"

	"campaignboard/internal/core/domain"
	"campaignboard/internal/core/port"
)

// performanceResponse renders one daily row. The campaign id is included on
// create responses and omitted from listings, whose URL already names the
// campaign.
type performanceResponse struct {
	ID          int64  `json:"id"`
	CampaignID  int64  `json:"campaign_id,omitempty"`
	ReportDate  string `json:"report_date"`
	Impressions int64  `json:"impressions"`
	Clicks      int64  `json:"clicks"`
}

func newPerformanceResponse(p *domain.DailyPerformance, includeCampaign bool) performanceResponse {
	resp := performanceResponse{
		ID:          p.ID,
		ReportDate:  p.ReportDate.Format("2006-01-02"),
		Impressions: p.Impressions,
		Clicks:      p.Clicks,
	}
	if includeCampaign {
		resp.CampaignID = p.CampaignID
	}
	return resp
}

func (h *Handler) handleListPerformance(w http.ResponseWriter, r *http.Request) {
	rows, err := h.performance.ListForCampaign(r.Context(), campaignID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp := make([]performanceResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, newPerformanceResponse(&rows[i], false))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleCreatePerformance(w http.ResponseWriter, r *http.Request) {
	var req port.PerformanceCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid JSON"})
		return
	}
	row, err := h.performance.Create(r.Context(), campaignID(r), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, newPerformanceResponse(row, true))
}
