package port

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"campaignboard/internal/core/domain"
)

// ErrDuplicateReportDate is returned by CreatePerformance when the store's
// uniqueness constraint on (campaign_id, report_date) fires. The constraint
// is the authoritative conflict signal: two concurrent creates can both pass
// the existence pre-check, but only one insert survives.
var ErrDuplicateReportDate = errors.New("performance row already exists for this campaign and date")

// NewCampaign holds validated values for a campaign insert.
type NewCampaign struct {
	Name      string
	StartDate *time.Time
	EndDate   *time.Time
	Budget    *decimal.Decimal
	Status    domain.Status
}

// CampaignChanges describes a sparse update. A nil pointer leaves the column
// unchanged; for the nullable columns the Set flag with a nil value clears
// the column.
type CampaignChanges struct {
	Name *string

	SetStartDate bool
	StartDate    *time.Time

	SetEndDate bool
	EndDate    *time.Time

	SetBudget bool
	Budget    *decimal.Decimal

	Status *domain.Status
}

// Empty reports whether the change set touches no column.
func (c CampaignChanges) Empty() bool {
	return c.Name == nil && !c.SetStartDate && !c.SetEndDate && !c.SetBudget && c.Status == nil
}

// NewDailyPerformance holds validated values for a performance insert.
type NewDailyPerformance struct {
	CampaignID  int64
	ReportDate  time.Time
	Impressions int64
	Clicks      int64
}

// CampaignRepository is the outbound persistence port. Implementations must
// use parameterized statements only and wrap every multi-statement operation
// in a transaction so partial writes never become visible.
type CampaignRepository interface {
	// ListCampaigns returns all rows of the aggregate view.
	ListCampaigns(ctx context.Context) ([]domain.CampaignSummary, error)

	// GetCampaignSummary returns the aggregate projection for one campaign,
	// nil when no row matches.
	GetCampaignSummary(ctx context.Context, id int64) (*domain.CampaignSummary, error)

	// GetCampaign returns the stored base record, nil when no row matches.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)

	// CreateCampaign inserts the record and re-reads its aggregate
	// projection in the same transaction.
	CreateCampaign(ctx context.Context, c NewCampaign) (*domain.CampaignSummary, error)

	// UpdateCampaign applies the supplied columns and re-reads the
	// projection in the same transaction. Returns nil when the campaign
	// does not exist.
	UpdateCampaign(ctx context.Context, id int64, ch CampaignChanges) (*domain.CampaignSummary, error)

	// DeleteCampaign removes the campaign's performance rows, then the
	// campaign itself, in one transaction. Reports whether the campaign row
	// existed.
	DeleteCampaign(ctx context.Context, id int64) (bool, error)

	// CampaignExists reports whether a base row with the given id exists.
	CampaignExists(ctx context.Context, id int64) (bool, error)

	// ListPerformance returns the campaign's rows ordered by report date
	// ascending.
	ListPerformance(ctx context.Context, campaignID int64) ([]domain.DailyPerformance, error)

	// PerformanceExists reports whether a row for the (campaign, date) pair
	// already exists.
	PerformanceExists(ctx context.Context, campaignID int64, reportDate time.Time) (bool, error)

	// CreatePerformance inserts one daily row. A duplicate
	// (campaign_id, report_date) pair yields ErrDuplicateReportDate.
	CreatePerformance(ctx context.Context, p NewDailyPerformance) (*domain.DailyPerformance, error)
}
