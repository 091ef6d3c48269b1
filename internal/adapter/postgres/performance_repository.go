package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"campaignboard/internal/core/domain"
	"campaignboard/internal/core/port"
)

// uniqueViolation is the SQLSTATE raised when the (campaign_id, report_date)
// unique constraint fires.
const uniqueViolation = "23505"

// ListPerformance returns the campaign's daily rows ordered by report date
// ascending.
func (r *CampaignRepository) ListPerformance(ctx context.Context, campaignID int64) ([]domain.DailyPerformance, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, campaign_id, report_date, impressions, clicks
         FROM daily_performance
         WHERE campaign_id = $1
         ORDER BY report_date ASC`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DailyPerformance, error) {
		var p domain.DailyPerformance
		err := row.Scan(&p.ID, &p.CampaignID, &p.ReportDate, &p.Impressions, &p.Clicks)
		return p, err
	})
}

// PerformanceExists reports whether a row for the (campaign, date) pair
// already exists. Callers must not rely on this alone for conflict
// detection; the unique constraint is the authoritative signal.
func (r *CampaignRepository) PerformanceExists(ctx context.Context, campaignID int64, reportDate time.Time) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM daily_performance WHERE campaign_id = $1 AND report_date = $2)`,
		campaignID, reportDate).Scan(&exists)
	return exists, err
}

// CreatePerformance inserts one daily row. A unique-constraint violation is
// translated into port.ErrDuplicateReportDate so the caller can report a
// conflict even when a concurrent insert won the race.
func (r *CampaignRepository) CreatePerformance(ctx context.Context, p port.NewDailyPerformance) (*domain.DailyPerformance, error) {
	rec := domain.DailyPerformance{
		CampaignID:  p.CampaignID,
		ReportDate:  p.ReportDate,
		Impressions: p.Impressions,
		Clicks:      p.Clicks,
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO daily_performance (campaign_id, report_date, impressions, clicks)
         VALUES ($1, $2, $3, $4) RETURNING id`,
		p.CampaignID, p.ReportDate, p.Impressions, p.Clicks).Scan(&rec.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, port.ErrDuplicateReportDate
		}
		return nil, err
	}
	return &rec, nil
}
