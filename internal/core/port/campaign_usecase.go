package port

import (
	"context"

	"github.com/shopspring/decimal"

	"campaignboard/internal/core/domain"
)

// CampaignUseCase defines the campaign operations exposed by the service.
// This interface is the primary port into the application domain; the HTTP
// adapter depends on it and tests substitute it freely.
type CampaignUseCase interface {
	// List returns all campaigns projected through the aggregate view, in
	// whatever order the store yields them.
	List(ctx context.Context) ([]domain.CampaignSummary, error)

	// Get returns the aggregate projection for one campaign. A missing
	// campaign yields a not-found error.
	Get(ctx context.Context, id int64) (*domain.CampaignSummary, error)

	// Create validates the request, inserts a new campaign (status defaults
	// to draft, unset dates and budget to null) and returns the freshly
	// re-read projection. A new campaign has zero totals and zero CTR.
	Create(ctx context.Context, req CampaignCreateRequest) (*domain.CampaignSummary, error)

	// Update applies a sparse update: only supplied fields are written,
	// everything else keeps its stored value. The date-order rule is checked
	// against the effective dates, so the current record is read first.
	Update(ctx context.Context, id int64, req CampaignUpdateRequest) (*domain.CampaignSummary, error)

	// Delete removes the campaign's performance rows, then the campaign
	// itself. A missing campaign yields a not-found error.
	Delete(ctx context.Context, id int64) error
}

// PerformanceUseCase defines operations on daily performance rows.
type PerformanceUseCase interface {
	// ListForCampaign returns all rows for a campaign ordered by report
	// date ascending.
	ListForCampaign(ctx context.Context, campaignID int64) ([]domain.DailyPerformance, error)

	// Create inserts one daily row for the campaign. The parent must exist;
	// a second row for the same (campaign, date) pair is a conflict, never
	// an update.
	Create(ctx context.Context, campaignID int64, req PerformanceCreateRequest) (*domain.DailyPerformance, error)
}

// CampaignCreateRequest is the decoded POST /api/campaigns body. Field
// presence is structural via Optional rather than inferred at runtime.
type CampaignCreateRequest struct {
	Name      Optional[string]          `json:"name"`
	StartDate Optional[string]          `json:"start_date"`
	EndDate   Optional[string]          `json:"end_date"`
	Budget    Optional[decimal.Decimal] `json:"budget"`
	Status    Optional[string]          `json:"status"`
}

// CampaignUpdateRequest mirrors the create body with every field optional.
// An explicit null clears a nullable field; an absent field is untouched.
type CampaignUpdateRequest struct {
	Name      Optional[string]          `json:"name"`
	StartDate Optional[string]          `json:"start_date"`
	EndDate   Optional[string]          `json:"end_date"`
	Budget    Optional[decimal.Decimal] `json:"budget"`
	Status    Optional[string]          `json:"status"`
}

// Empty reports whether no known field was supplied at all.
func (r CampaignUpdateRequest) Empty() bool {
	return !r.Name.Present && !r.StartDate.Present && !r.EndDate.Present &&
		!r.Budget.Present && !r.Status.Present
}

// PerformanceCreateRequest is the decoded POST performance body.
type PerformanceCreateRequest struct {
	ReportDate  Optional[string] `json:"report_date"`
	Impressions Optional[int64]  `json:"impressions"`
	Clicks      Optional[int64]  `json:"clicks"`
}
