package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaignboard/internal/core/domain"
	"campaignboard/internal/core/port"
)

func TestParseDate(t *testing.T) {
	day, ok := parseDate("2025-06-01")
	require.True(t, ok)
	assert.Equal(t, "2025-06-01", day.Format("2006-01-02"))

	// RFC3339 timestamps are accepted and truncated to the day
	day, ok = parseDate("2025-06-01T15:04:05Z")
	require.True(t, ok)
	assert.Equal(t, "2025-06-01", day.Format("2006-01-02"))

	_, ok = parseDate("01/06/2025")
	assert.False(t, ok)
}

func TestValidateCampaignCreateDefaultsStatus(t *testing.T) {
	out, err := validateCampaignCreate(
		decodeReq[port.CampaignCreateRequest](t, `{"name": "x", "status": null}`))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, out.Status)
}

func TestValidateCampaignCreateKeepsNameUntrimmed(t *testing.T) {
	out, err := validateCampaignCreate(
		decodeReq[port.CampaignCreateRequest](t, `{"name": " Spring Sale "}`))
	require.NoError(t, err)
	assert.Equal(t, " Spring Sale ", out.Name)
}

func TestValidateCampaignUpdateNullBudgetClears(t *testing.T) {
	ch, err := validateCampaignUpdate(
		decodeReq[port.CampaignUpdateRequest](t, `{"budget": null}`))
	require.NoError(t, err)
	assert.True(t, ch.SetBudget)
	assert.Nil(t, ch.Budget)
}

func TestValidateCampaignUpdateNullStatusRejected(t *testing.T) {
	_, err := validateCampaignUpdate(
		decodeReq[port.CampaignUpdateRequest](t, `{"status": null}`))
	require.Error(t, err)
	assert.Equal(t, domain.CodeInvalidEnum, domain.CodeOf(err))
}

func TestValidateEffectiveDateOrderBothSupplied(t *testing.T) {
	// stored dates are irrelevant when both sides come from the request
	ch, err := validateCampaignUpdate(decodeReq[port.CampaignUpdateRequest](t,
		`{"start_date": "2025-06-01", "end_date": "2025-01-01"}`))
	require.NoError(t, err, "per-field validation has no date-order rule")

	err = validateEffectiveDateOrder(ch, &domain.Campaign{})
	require.Error(t, err)
	assert.Equal(t, domain.CodeInvalidRange, domain.CodeOf(err))
}

func TestValidatePerformanceCreateBoundary(t *testing.T) {
	// clicks equal to impressions is allowed; the range rule is strict
	out, err := validatePerformanceCreate(1,
		decodeReq[port.PerformanceCreateRequest](t,
			`{"report_date": "2024-01-15", "impressions": 10, "clicks": 10}`))
	require.NoError(t, err)
	assert.EqualValues(t, 10, out.Clicks)

	out, err = validatePerformanceCreate(1,
		decodeReq[port.PerformanceCreateRequest](t,
			`{"report_date": "2024-01-15", "impressions": 0, "clicks": 0}`))
	require.NoError(t, err)
	assert.EqualValues(t, 0, out.Impressions)
}
