package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"campaignboard/internal/core/domain"
	"campaignboard/internal/core/port"
)

// fakeRepository is an in-memory port.CampaignRepository. It recomputes the
// aggregate projection on every read, the way campaigns_view does, and
// counts writes so tests can assert that failed validation never touches the
// store.
type fakeRepository struct {
	nextCampaignID int64
	nextPerfID     int64
	campaigns      map[int64]domain.Campaign
	performance    map[int64][]domain.DailyPerformance

	// reads counts campaign-row lookups so tests can assert that failed
	// validation never touches the store, not even for a read.
	reads  int
	writes int
	// forceDuplicate makes CreatePerformance fail with the constraint
	// sentinel regardless of the pre-check, simulating a lost race.
	forceDuplicate bool
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		campaigns:   make(map[int64]domain.Campaign),
		performance: make(map[int64][]domain.DailyPerformance),
	}
}

func (f *fakeRepository) summarize(c domain.Campaign) domain.CampaignSummary {
	s := domain.CampaignSummary{Campaign: c}
	for _, p := range f.performance[c.ID] {
		s.TotalImpressions += p.Impressions
		s.TotalClicks += p.Clicks
	}
	if s.TotalImpressions > 0 {
		s.CTR = decimal.NewFromInt(s.TotalClicks * 100).
			Div(decimal.NewFromInt(s.TotalImpressions)).Round(2)
	}
	return s
}

func (f *fakeRepository) ListCampaigns(context.Context) ([]domain.CampaignSummary, error) {
	out := make([]domain.CampaignSummary, 0, len(f.campaigns))
	for _, c := range f.campaigns {
		out = append(out, f.summarize(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRepository) GetCampaignSummary(_ context.Context, id int64) (*domain.CampaignSummary, error) {
	f.reads++
	c, ok := f.campaigns[id]
	if !ok {
		return nil, nil
	}
	s := f.summarize(c)
	return &s, nil
}

func (f *fakeRepository) GetCampaign(_ context.Context, id int64) (*domain.Campaign, error) {
	f.reads++
	c, ok := f.campaigns[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeRepository) CreateCampaign(_ context.Context, c port.NewCampaign) (*domain.CampaignSummary, error) {
	f.writes++
	f.nextCampaignID++
	rec := domain.Campaign{
		ID:        f.nextCampaignID,
		Name:      c.Name,
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
		Budget:    c.Budget,
		Status:    c.Status,
	}
	f.campaigns[rec.ID] = rec
	s := f.summarize(rec)
	return &s, nil
}

func (f *fakeRepository) UpdateCampaign(_ context.Context, id int64, ch port.CampaignChanges) (*domain.CampaignSummary, error) {
	c, ok := f.campaigns[id]
	if !ok {
		return nil, nil
	}
	f.writes++
	if ch.Name != nil {
		c.Name = *ch.Name
	}
	if ch.SetStartDate {
		c.StartDate = ch.StartDate
	}
	if ch.SetEndDate {
		c.EndDate = ch.EndDate
	}
	if ch.SetBudget {
		c.Budget = ch.Budget
	}
	if ch.Status != nil {
		c.Status = *ch.Status
	}
	f.campaigns[id] = c
	s := f.summarize(c)
	return &s, nil
}

func (f *fakeRepository) DeleteCampaign(_ context.Context, id int64) (bool, error) {
	if _, ok := f.campaigns[id]; !ok {
		return false, nil
	}
	f.writes++
	delete(f.performance, id)
	delete(f.campaigns, id)
	return true, nil
}

func (f *fakeRepository) CampaignExists(_ context.Context, id int64) (bool, error) {
	_, ok := f.campaigns[id]
	return ok, nil
}

func (f *fakeRepository) ListPerformance(_ context.Context, campaignID int64) ([]domain.DailyPerformance, error) {
	rows := append([]domain.DailyPerformance(nil), f.performance[campaignID]...)
	sort.Slice(rows, func(i, j int) bool { return rows[i].ReportDate.Before(rows[j].ReportDate) })
	return rows, nil
}

func (f *fakeRepository) PerformanceExists(_ context.Context, campaignID int64, reportDate time.Time) (bool, error) {
	for _, p := range f.performance[campaignID] {
		if p.ReportDate.Equal(reportDate) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) CreatePerformance(_ context.Context, p port.NewDailyPerformance) (*domain.DailyPerformance, error) {
	if f.forceDuplicate {
		return nil, port.ErrDuplicateReportDate
	}
	for _, existing := range f.performance[p.CampaignID] {
		if existing.ReportDate.Equal(p.ReportDate) {
			return nil, port.ErrDuplicateReportDate
		}
	}
	f.writes++
	f.nextPerfID++
	rec := domain.DailyPerformance{
		ID:          f.nextPerfID,
		CampaignID:  p.CampaignID,
		ReportDate:  p.ReportDate,
		Impressions: p.Impressions,
		Clicks:      p.Clicks,
	}
	f.performance[p.CampaignID] = append(f.performance[p.CampaignID], rec)
	return &rec, nil
}
