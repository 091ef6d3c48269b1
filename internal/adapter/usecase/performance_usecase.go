package usecase

import (
	"context"
	"errors"

	"campaignboard/internal/core/domain"
	"campaignboard/internal/core/port"
)

// PerformanceUseCase orchestrates daily performance rows for campaigns.
type PerformanceUseCase struct {
	repo port.CampaignRepository
}

// NewPerformanceUseCase creates a usecase with the provided repository.
func NewPerformanceUseCase(repo port.CampaignRepository) *PerformanceUseCase {
	return &PerformanceUseCase{repo: repo}
}

// ListForCampaign returns the campaign's rows ordered by report date
// ascending.
func (u *PerformanceUseCase) ListForCampaign(ctx context.Context, campaignID int64) ([]domain.DailyPerformance, error) {
	rows, err := u.repo.ListPerformance(ctx, campaignID)
	if err != nil {
		return nil, domain.StoreError(err)
	}
	return rows, nil
}

// Create inserts one daily row after checking that the parent campaign
// exists and that no row for the same day is already present. The existence
// pre-check gives a friendly early answer, but the store's unique constraint
// is the authoritative conflict signal: a concurrent create that slips past
// the pre-check still comes back as a conflict, never as a store failure.
func (u *PerformanceUseCase) Create(ctx context.Context, campaignID int64, req port.PerformanceCreateRequest) (*domain.DailyPerformance, error) {
	rec, err := validatePerformanceCreate(campaignID, req)
	if err != nil {
		return nil, err
	}

	exists, err := u.repo.CampaignExists(ctx, campaignID)
	if err != nil {
		return nil, domain.StoreError(err)
	}
	if !exists {
		return nil, domain.NewError(domain.CodeNotFound, "Campaign not found.")
	}

	dup, err := u.repo.PerformanceExists(ctx, campaignID, rec.ReportDate)
	if err != nil {
		return nil, domain.StoreError(err)
	}
	if dup {
		return nil, domain.NewError(domain.CodeConflict, "Performance data for this campaign and date already exists.")
	}

	row, err := u.repo.CreatePerformance(ctx, rec)
	if errors.Is(err, port.ErrDuplicateReportDate) {
		return nil, domain.NewError(domain.CodeConflict, "Performance data for this campaign and date already exists.")
	}
	if err != nil {
		return nil, domain.StoreError(err)
	}
	return row, nil
}
