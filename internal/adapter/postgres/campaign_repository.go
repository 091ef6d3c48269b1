package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"campaignboard/internal/core/domain"
	"campaignboard/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. All reads of campaign projections go through campaigns_view so
// the aggregate columns are always store-computed.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const summaryQuery = `
        SELECT id, name, status, start_date, end_date, budget,
               total_impressions, total_clicks, ctr
        FROM campaigns_view`

// summaryRow is satisfied by pgx.Row and pgx.CollectableRow.
type summaryRow interface {
	Scan(dest ...any) error
}

func scanSummary(row summaryRow) (domain.CampaignSummary, error) {
	var (
		s      domain.CampaignSummary
		status string
		budget decimal.NullDecimal
	)
	err := row.Scan(
		&s.ID,
		&s.Name,
		&status,
		&s.StartDate,
		&s.EndDate,
		&budget,
		&s.TotalImpressions,
		&s.TotalClicks,
		&s.CTR,
	)
	if err != nil {
		return s, err
	}
	s.Status = domain.Status(status)
	if budget.Valid {
		s.Budget = &budget.Decimal
	}
	return s, nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

// ListCampaigns returns every row of the aggregate view.
func (r *CampaignRepository) ListCampaigns(ctx context.Context) ([]domain.CampaignSummary, error) {
	rows, err := r.pool.Query(ctx, summaryQuery)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignSummary, error) {
		return scanSummary(row)
	})
}

// GetCampaignSummary returns the projection for one campaign, nil if absent.
func (r *CampaignRepository) GetCampaignSummary(ctx context.Context, id int64) (*domain.CampaignSummary, error) {
	s, err := scanSummary(r.pool.QueryRow(ctx, summaryQuery+` WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetCampaign returns the stored base record, nil if absent.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	var (
		c      domain.Campaign
		status string
		budget decimal.NullDecimal
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, status, start_date, end_date, budget FROM campaigns WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &status, &c.StartDate, &c.EndDate, &budget)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.Status = domain.Status(status)
	if budget.Valid {
		c.Budget = &budget.Decimal
	}
	return &c, nil
}

// CreateCampaign inserts the record and re-reads the aggregate projection in
// the same transaction.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c port.NewCampaign) (summary *domain.CampaignSummary, err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var id int64
	err = tx.QueryRow(ctx,
		`INSERT INTO campaigns (name, start_date, end_date, budget, status)
         VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		c.Name, c.StartDate, c.EndDate, nullDecimal(c.Budget), string(c.Status)).Scan(&id)
	if err != nil {
		return nil, err
	}

	s, err := scanSummary(tx.QueryRow(ctx, summaryQuery+` WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateCampaign applies the supplied columns with a dynamically built SET
// list, then re-reads the projection, all inside one transaction. Returns
// nil when no row matched the id.
func (r *CampaignRepository) UpdateCampaign(ctx context.Context, id int64, ch port.CampaignChanges) (summary *domain.CampaignSummary, err error) {
	assignments := make([]string, 0, 5)
	args := make([]any, 0, 6)
	add := func(column string, value any) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if ch.Name != nil {
		add("name", *ch.Name)
	}
	if ch.SetStartDate {
		add("start_date", ch.StartDate)
	}
	if ch.SetEndDate {
		add("end_date", ch.EndDate)
	}
	if ch.SetBudget {
		add("budget", nullDecimal(ch.Budget))
	}
	if ch.Status != nil {
		add("status", string(*ch.Status))
	}
	if len(assignments) == 0 {
		return r.GetCampaignSummary(ctx, id)
	}
	args = append(args, id)

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	query := fmt.Sprintf(`UPDATE campaigns SET %s WHERE id = $%d`,
		strings.Join(assignments, ", "), len(args))
	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}

	s, err := scanSummary(tx.QueryRow(ctx, summaryQuery+` WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// DeleteCampaign removes performance rows first, then the campaign, in one
// transaction. The foreign key has no cascade: child rows must go first, and
// if that statement fails the campaign row survives untouched.
func (r *CampaignRepository) DeleteCampaign(ctx context.Context, id int64) (deleted bool, err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `DELETE FROM daily_performance WHERE campaign_id = $1`, id)
	if err != nil {
		return false, err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// CampaignExists reports whether a base row with the given id exists.
func (r *CampaignRepository) CampaignExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM campaigns WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}
