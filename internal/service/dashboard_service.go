package service

import (
	"context"
	"fmt"
	"time"

	"casemonitor/internal/aggregate"
	"casemonitor/internal/model"
	"casemonitor/pkg/logger"
)

// EmptyReason why the dashboard stopped before rendering statistics
type EmptyReason string

const (
	EmptyNone            EmptyReason = ""
	EmptyNoActiveBatches EmptyReason = "no_active_batches"
	EmptyNoCases         EmptyReason = "no_cases"
)

// Dashboard everything one page render needs
type Dashboard struct {
	GeneratedAt time.Time                 `json:"generated_at"`
	Window      aggregate.Window          `json:"window"`
	Empty       EmptyReason               `json:"empty,omitempty"`
	Batches     []*model.Batch            `json:"batches"`
	Summary     *aggregate.Summary        `json:"summary,omitempty"`
	Ranking     []aggregate.OperatorTally `json:"ranking,omitempty"`
	Daily       *aggregate.Daily          `json:"daily,omitempty"`
	InProgress  []aggregate.ActiveCase    `json:"in_progress,omitempty"`
}

// DashboardService fetches and aggregates the dashboard data on every call.
// Nothing is cached between calls.
type DashboardService struct {
	fetcher  *Fetcher
	location *time.Location
}

// NewDashboardService creates a dashboard service; loc anchors "today"
func NewDashboardService(fetcher *Fetcher, loc *time.Location) *DashboardService {
	if loc == nil {
		loc = time.Local
	}
	return &DashboardService{fetcher: fetcher, location: loc}
}

// Now current time in the dashboard timezone
func (s *DashboardService) Now() time.Time {
	return time.Now().In(s.location)
}

// Build fetches and aggregates the dashboard for the daily window ending on
// now's date. No active batches stops before any case or daily query; no
// cases stops before any daily query.
func (s *DashboardService) Build(ctx context.Context, window aggregate.Window, now time.Time) (*Dashboard, error) {
	start := time.Now()
	d := &Dashboard{GeneratedAt: now, Window: window}

	batches, err := s.fetcher.ActiveBatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active batches: %w", err)
	}
	d.Batches = batches
	if len(batches) == 0 {
		d.Empty = EmptyNoActiveBatches
		return d, nil
	}

	cases, err := s.fetcher.Cases(ctx, batches)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cases: %w", err)
	}
	if len(cases) == 0 {
		d.Empty = EmptyNoCases
		return d, nil
	}

	d.Summary = aggregate.Summarize(cases)
	d.Ranking = aggregate.RankOperators(d.Summary.Operators)
	d.InProgress = aggregate.InProgress(cases)

	dates := aggregate.WindowDates(window, now)
	counts, err := s.fetcher.OperatorCounts(ctx, dates)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch operator stats: %w", err)
	}
	d.Daily = aggregate.TallyDaily(dates, counts)

	logger.DebugCtx(ctx, "dashboard built: batches=%d cases=%d window=%d elapsed=%v",
		len(batches), len(cases), window.Days(), time.Since(start))
	return d, nil
}
