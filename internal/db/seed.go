package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Seed inserts a handful of demo campaigns with a month of daily performance
// rows so the list and chart views have something to show. Inserts are
// idempotent via ON CONFLICT DO NOTHING.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	type demoCampaign struct {
		id     int64
		name   string
		status string
		budget decimal.Decimal
	}
	campaigns := []demoCampaign{
		{1, "Spring Sale", "active", decimal.NewFromFloat(500.75)},
		{2, "Summer Launch", "draft", decimal.NewFromFloat(1200.00)},
		{3, "Holiday Retargeting", "paused", decimal.NewFromFloat(310.50)},
	}

	start := time.Now().AddDate(0, 0, -30)
	end := time.Now().AddDate(0, 1, 0)
	for _, c := range campaigns {
		_, err := pool.Exec(ctx, `INSERT INTO campaigns (id, name, start_date, end_date, budget, status)
VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT DO NOTHING`,
			c.id, c.name, start, end, c.budget, c.status)
		if err != nil {
			return err
		}
	}

	// a month of daily rows for the active campaign, impressions tapering
	// off and clicks staying under 5% of them
	for day := 0; day < 30; day++ {
		date := start.AddDate(0, 0, day)
		impressions := 1000 - day*10
		clicks := impressions / 20
		_, err := pool.Exec(ctx, `INSERT INTO daily_performance (campaign_id, report_date, impressions, clicks)
VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`,
			1, date, impressions, clicks)
		if err != nil {
			return err
		}
	}

	// keep the sequence ahead of the fixed demo ids
	_, err := pool.Exec(ctx,
		`SELECT setval('campaigns_id_seq', (SELECT MAX(id) FROM campaigns))`)
	return err
}
