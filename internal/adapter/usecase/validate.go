package usecase

import (
	"regexp"
	"strings"
	"time"

	"campaignboard/internal/core/domain"
	"campaignboard/internal/core/port"
)

// Validators are pure and total: they never touch the store and always
// return either validated parameters or a coded error, so a failed request
// leaves zero partial writes behind.

const dateLayout = "2006-01-02"

var reportDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// parseDate accepts a plain calendar date or an RFC3339 timestamp and
// truncates the latter to the day.
func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

func optionalDate(f port.Optional[string], message string) (*time.Time, error) {
	if !f.Present || f.Null {
		return nil, nil
	}
	if f.Malformed() {
		return nil, domain.NewError(domain.CodeInvalidField, message)
	}
	t, ok := parseDate(f.Value)
	if !ok {
		return nil, domain.NewError(domain.CodeInvalidField, message)
	}
	return &t, nil
}

func validateCampaignCreate(req port.CampaignCreateRequest) (port.NewCampaign, error) {
	var out port.NewCampaign

	if !req.Name.Present || req.Name.Null {
		return out, domain.NewError(domain.CodeMissingField, "Campaign name is required.")
	}
	if req.Name.Malformed() || strings.TrimSpace(req.Name.Value) == "" {
		return out, domain.NewError(domain.CodeInvalidField, "Campaign name must be a non-empty string.")
	}
	out.Name = req.Name.Value

	if req.Budget.Present && !req.Budget.Null {
		if req.Budget.Malformed() || req.Budget.Value.IsNegative() {
			return out, domain.NewError(domain.CodeInvalidField, "Budget must be a non-negative number.")
		}
		b := req.Budget.Value
		out.Budget = &b
	}

	start, err := optionalDate(req.StartDate, "Invalid start date format.")
	if err != nil {
		return out, err
	}
	end, err := optionalDate(req.EndDate, "Invalid end date format.")
	if err != nil {
		return out, err
	}
	if start != nil && end != nil && start.After(*end) {
		return out, domain.NewError(domain.CodeInvalidRange, "Start date cannot be after end date.")
	}
	out.StartDate = start
	out.EndDate = end

	out.Status = domain.StatusDraft
	if req.Status.Present && !req.Status.Null {
		st := domain.Status(req.Status.Value)
		if req.Status.Malformed() || !st.Valid() {
			return out, domain.NewError(domain.CodeInvalidEnum, "Invalid status. Must be one of: "+domain.StatusList()+".")
		}
		out.Status = st
	}
	return out, nil
}

// validateCampaignUpdate checks only the supplied fields and needs no store
// access. The date-order rule depends on the stored record and is checked
// separately by validateEffectiveDateOrder once the current row is known.
func validateCampaignUpdate(req port.CampaignUpdateRequest) (port.CampaignChanges, error) {
	var ch port.CampaignChanges

	if req.Empty() {
		return ch, domain.NewError(domain.CodeEmptyUpdate, "No fields provided for update.")
	}

	if req.Name.Present {
		if req.Name.Null || req.Name.Malformed() || strings.TrimSpace(req.Name.Value) == "" {
			return ch, domain.NewError(domain.CodeInvalidField, "Campaign name cannot be empty.")
		}
		name := req.Name.Value
		ch.Name = &name
	}

	if req.Budget.Present {
		ch.SetBudget = true
		if !req.Budget.Null {
			if req.Budget.Malformed() || req.Budget.Value.IsNegative() {
				return ch, domain.NewError(domain.CodeInvalidField, "Budget must be a non-negative number.")
			}
			b := req.Budget.Value
			ch.Budget = &b
		}
	}

	if req.StartDate.Present {
		start, err := optionalDate(req.StartDate, "Invalid start date format.")
		if err != nil {
			return ch, err
		}
		ch.SetStartDate = true
		ch.StartDate = start
	}
	if req.EndDate.Present {
		end, err := optionalDate(req.EndDate, "Invalid end date format.")
		if err != nil {
			return ch, err
		}
		ch.SetEndDate = true
		ch.EndDate = end
	}

	if req.Status.Present {
		st := domain.Status(req.Status.Value)
		if req.Status.Null || req.Status.Malformed() || !st.Valid() {
			return ch, domain.NewError(domain.CodeInvalidEnum, "Invalid status. Must be one of: "+domain.StatusList()+".")
		}
		ch.Status = &st
	}
	return ch, nil
}

// validateEffectiveDateOrder checks the date-order rule against the
// effective dates: the supplied value when present, otherwise the stored
// value from current.
func validateEffectiveDateOrder(ch port.CampaignChanges, current *domain.Campaign) error {
	effStart := current.StartDate
	if ch.SetStartDate {
		effStart = ch.StartDate
	}
	effEnd := current.EndDate
	if ch.SetEndDate {
		effEnd = ch.EndDate
	}
	if effStart != nil && effEnd != nil && effStart.After(*effEnd) {
		return domain.NewError(domain.CodeInvalidRange, "Start date cannot be after end date.")
	}
	return nil
}

func validatePerformanceCreate(campaignID int64, req port.PerformanceCreateRequest) (port.NewDailyPerformance, error) {
	var out port.NewDailyPerformance
	out.CampaignID = campaignID

	if !req.ReportDate.Valid() || !reportDatePattern.MatchString(req.ReportDate.Value) {
		return out, domain.NewError(domain.CodeMissingField, "A valid report date (YYYY-MM-DD) is required.")
	}
	day, err := time.Parse(dateLayout, req.ReportDate.Value)
	if err != nil {
		return out, domain.NewError(domain.CodeMissingField, "A valid report date (YYYY-MM-DD) is required.")
	}
	out.ReportDate = day

	if !req.Impressions.Valid() || req.Impressions.Value < 0 {
		return out, domain.NewError(domain.CodeInvalidField, "Impressions must be a non-negative integer.")
	}
	if !req.Clicks.Valid() || req.Clicks.Value < 0 {
		return out, domain.NewError(domain.CodeInvalidField, "Clicks must be a non-negative integer.")
	}
	if req.Clicks.Value > req.Impressions.Value {
		return out, domain.NewError(domain.CodeInvalidRange, "Clicks cannot be greater than impressions.")
	}
	out.Impressions = req.Impressions.Value
	out.Clicks = req.Clicks.Value
	return out, nil
}
