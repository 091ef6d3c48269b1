package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaignboard/internal/core/domain"
	"campaignboard/internal/core/port"
)

func decodeReq[T any](t *testing.T, body string) T {
	t.Helper()
	var req T
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func TestCreateCampaignDefaults(t *testing.T) {
	repo := newFakeRepository()
	svc := NewCampaignUseCase(repo)

	s, err := svc.Create(context.Background(),
		decodeReq[port.CampaignCreateRequest](t, `{"name": "Spring Sale"}`))
	require.NoError(t, err)

	assert.Equal(t, domain.StatusDraft, s.Status)
	assert.Nil(t, s.StartDate)
	assert.Nil(t, s.EndDate)
	assert.Nil(t, s.Budget)
	assert.EqualValues(t, 0, s.TotalImpressions)
	assert.EqualValues(t, 0, s.TotalClicks)
	assert.Equal(t, "0.00", s.CTR.StringFixed(2))
	assert.Equal(t, 1, repo.writes)
}

func TestCreateCampaignValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		code domain.Code
	}{
		{"missing name", `{}`, domain.CodeMissingField},
		{"null name", `{"name": null}`, domain.CodeMissingField},
		{"blank name", `{"name": "   "}`, domain.CodeInvalidField},
		{"name wrong type", `{"name": 42}`, domain.CodeInvalidField},
		{"negative budget", `{"name": "x", "budget": -1}`, domain.CodeInvalidField},
		{"bad start date", `{"name": "x", "start_date": "yesterday"}`, domain.CodeInvalidField},
		{"bad end date", `{"name": "x", "end_date": "soon"}`, domain.CodeInvalidField},
		{"start after end", `{"name": "x", "start_date": "2025-02-01", "end_date": "2025-01-01"}`, domain.CodeInvalidRange},
		{"unknown status", `{"name": "x", "status": "launched"}`, domain.CodeInvalidEnum},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepository()
			svc := NewCampaignUseCase(repo)

			_, err := svc.Create(context.Background(),
				decodeReq[port.CampaignCreateRequest](t, tt.body))
			require.Error(t, err)
			assert.Equal(t, tt.code, domain.CodeOf(err))
			assert.Zero(t, repo.writes, "validation failure must not write")
		})
	}
}

func TestGetCampaignNotFound(t *testing.T) {
	svc := NewCampaignUseCase(newFakeRepository())

	_, err := svc.Get(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))
}

func TestUpdateCampaignSparse(t *testing.T) {
	repo := newFakeRepository()
	svc := NewCampaignUseCase(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, decodeReq[port.CampaignCreateRequest](t,
		`{"name": "Spring Sale", "budget": 500.75, "status": "active", "start_date": "2025-01-01", "end_date": "2025-03-01"}`))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID,
		decodeReq[port.CampaignUpdateRequest](t, `{"budget": 900}`))
	require.NoError(t, err)

	assert.Equal(t, "Spring Sale", updated.Name)
	assert.Equal(t, domain.StatusActive, updated.Status)
	require.NotNil(t, updated.Budget)
	assert.Equal(t, "900.00", updated.Budget.StringFixed(2))
	require.NotNil(t, updated.StartDate)
	assert.Equal(t, "2025-01-01", updated.StartDate.Format("2006-01-02"))
}

func TestUpdateCampaignClearsDateWithNull(t *testing.T) {
	repo := newFakeRepository()
	svc := NewCampaignUseCase(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, decodeReq[port.CampaignCreateRequest](t,
		`{"name": "x", "end_date": "2025-03-01"}`))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID,
		decodeReq[port.CampaignUpdateRequest](t, `{"end_date": null}`))
	require.NoError(t, err)
	assert.Nil(t, updated.EndDate)
}

func TestUpdateCampaignEmptyBody(t *testing.T) {
	repo := newFakeRepository()
	svc := NewCampaignUseCase(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, decodeReq[port.CampaignCreateRequest](t, `{"name": "x"}`))
	require.NoError(t, err)
	writesAfterCreate := repo.writes

	readsBefore := repo.reads
	_, err = svc.Update(ctx, created.ID, decodeReq[port.CampaignUpdateRequest](t, `{}`))
	require.Error(t, err)
	assert.Equal(t, domain.CodeEmptyUpdate, domain.CodeOf(err))
	assert.Equal(t, writesAfterCreate, repo.writes, "empty update must not write")
	assert.Equal(t, readsBefore, repo.reads, "empty update must not read either")
}

// Per-field validation answers before the current row is even looked up, so
// a bad payload for a nonexistent campaign yields 400, not 404.
func TestUpdateCampaignValidatesBeforeRead(t *testing.T) {
	repo := newFakeRepository()
	svc := NewCampaignUseCase(repo)
	ctx := context.Background()

	_, err := svc.Update(ctx, 999, decodeReq[port.CampaignUpdateRequest](t, `{}`))
	require.Error(t, err)
	assert.Equal(t, domain.CodeEmptyUpdate, domain.CodeOf(err))

	_, err = svc.Update(ctx, 999, decodeReq[port.CampaignUpdateRequest](t, `{"name": ""}`))
	require.Error(t, err)
	assert.Equal(t, domain.CodeInvalidField, domain.CodeOf(err))

	assert.Zero(t, repo.reads, "validation failure must not query the store")
	assert.Zero(t, repo.writes)
}

func TestUpdateCampaignEmptyName(t *testing.T) {
	repo := newFakeRepository()
	svc := NewCampaignUseCase(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, decodeReq[port.CampaignCreateRequest](t, `{"name": "x"}`))
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, decodeReq[port.CampaignUpdateRequest](t, `{"name": ""}`))
	require.Error(t, err)
	assert.Equal(t, domain.CodeInvalidField, domain.CodeOf(err))
}

// The date-order rule on update is checked against the effective dates: a
// new start date must be compared with the stored end date.
func TestUpdateCampaignEffectiveDateOrder(t *testing.T) {
	repo := newFakeRepository()
	svc := NewCampaignUseCase(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, decodeReq[port.CampaignCreateRequest](t,
		`{"name": "x", "end_date": "2025-01-01"}`))
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID,
		decodeReq[port.CampaignUpdateRequest](t, `{"start_date": "2025-06-01"}`))
	require.Error(t, err)
	assert.Equal(t, domain.CodeInvalidRange, domain.CodeOf(err))
}

func TestUpdateCampaignMissing(t *testing.T) {
	svc := NewCampaignUseCase(newFakeRepository())

	_, err := svc.Update(context.Background(), 7,
		decodeReq[port.CampaignUpdateRequest](t, `{"name": "y"}`))
	require.Error(t, err)
	assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))
}

func TestDeleteCampaignCascades(t *testing.T) {
	repo := newFakeRepository()
	campaigns := NewCampaignUseCase(repo)
	performance := NewPerformanceUseCase(repo)
	ctx := context.Background()

	created, err := campaigns.Create(ctx, decodeReq[port.CampaignCreateRequest](t, `{"name": "x"}`))
	require.NoError(t, err)
	_, err = performance.Create(ctx, created.ID, decodeReq[port.PerformanceCreateRequest](t,
		`{"report_date": "2024-01-15", "impressions": 100, "clicks": 3}`))
	require.NoError(t, err)

	require.NoError(t, campaigns.Delete(ctx, created.ID))

	_, err = campaigns.Get(ctx, created.ID)
	assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))

	rows, err := performance.ListForCampaign(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)

	err = campaigns.Delete(ctx, created.ID)
	assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))
}
