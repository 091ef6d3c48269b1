package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Campaign is the stored base record of a marketing campaign. Dates carry no
// time component; Budget is nullable and kept as a decimal to avoid float
// rounding in money values.
type Campaign struct {
	ID        int64
	Name      string
	StartDate *time.Time
	EndDate   *time.Time
	Budget    *decimal.Decimal
	Status    Status
}

// CampaignSummary is the campaigns_view projection: the base record joined
// with aggregates computed by the store over the campaign's performance
// rows. The aggregate fields are read-only and never written directly.
type CampaignSummary struct {
	Campaign
	TotalImpressions int64
	TotalClicks      int64
	// CTR is clicks/impressions as a percentage, rounded to two places by
	// the view. Zero when the campaign has no impressions.
	CTR decimal.Decimal
}
