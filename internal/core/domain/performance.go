package domain

import "time"

// DailyPerformance is one day's delivery metrics for a campaign. At most one
// row exists per (campaign, report date). Rows are append-only: they are
// never updated and disappear only when their campaign is deleted.
type DailyPerformance struct {
	ID          int64
	CampaignID  int64
	ReportDate  time.Time
	Impressions int64
	Clicks      int64
}
