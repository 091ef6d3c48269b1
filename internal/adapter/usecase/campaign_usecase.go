package usecase

import (
	"context"

	"campaignboard/internal/core/domain"
	"campaignboard/internal/core/port"
)

// CampaignUseCase orchestrates campaign CRUD over the repository port. It
// validates before any store call and maps repository failures into the
// coded error taxonomy.
type CampaignUseCase struct {
	repo port.CampaignRepository
}

// NewCampaignUseCase creates a usecase with the provided repository.
func NewCampaignUseCase(repo port.CampaignRepository) *CampaignUseCase {
	return &CampaignUseCase{repo: repo}
}

// List returns all campaigns projected through the aggregate view.
func (u *CampaignUseCase) List(ctx context.Context) ([]domain.CampaignSummary, error) {
	list, err := u.repo.ListCampaigns(ctx)
	if err != nil {
		return nil, domain.StoreError(err)
	}
	return list, nil
}

// Get returns the aggregate projection for one campaign.
func (u *CampaignUseCase) Get(ctx context.Context, id int64) (*domain.CampaignSummary, error) {
	s, err := u.repo.GetCampaignSummary(ctx, id)
	if err != nil {
		return nil, domain.StoreError(err)
	}
	if s == nil {
		return nil, domain.NewError(domain.CodeNotFound, "Campaign not found.")
	}
	return s, nil
}

// Create validates the request and inserts a new campaign. The returned
// projection is re-read from the aggregate view, so a fresh campaign always
// reports zero totals and zero CTR.
func (u *CampaignUseCase) Create(ctx context.Context, req port.CampaignCreateRequest) (*domain.CampaignSummary, error) {
	c, err := validateCampaignCreate(req)
	if err != nil {
		return nil, err
	}
	s, err := u.repo.CreateCampaign(ctx, c)
	if err != nil {
		return nil, domain.StoreError(err)
	}
	return s, nil
}

// Update applies a sparse update. Per-field validation runs before any
// store access; only the date-order rule needs the current record, since it
// is evaluated against the effective dates: a supplied date when present,
// the stored one otherwise.
func (u *CampaignUseCase) Update(ctx context.Context, id int64, req port.CampaignUpdateRequest) (*domain.CampaignSummary, error) {
	ch, err := validateCampaignUpdate(req)
	if err != nil {
		return nil, err
	}

	current, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, domain.StoreError(err)
	}
	if current == nil {
		return nil, domain.NewError(domain.CodeNotFound, "Campaign not found.")
	}

	if err = validateEffectiveDateOrder(ch, current); err != nil {
		return nil, err
	}

	s, err := u.repo.UpdateCampaign(ctx, id, ch)
	if err != nil {
		return nil, domain.StoreError(err)
	}
	// the campaign may have been deleted between the read and the write
	if s == nil {
		return nil, domain.NewError(domain.CodeNotFound, "Campaign not found.")
	}
	return s, nil
}

// Delete removes the campaign and all of its performance rows. The child
// rows go first so the referential constraint holds at every point.
func (u *CampaignUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := u.repo.DeleteCampaign(ctx, id)
	if err != nil {
		return domain.StoreError(err)
	}
	if !deleted {
		return domain.NewError(domain.CodeNotFound, "Campaign not found.")
	}
	return nil
}
