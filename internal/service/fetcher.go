package service

import (
	"context"

	"casemonitor/internal/model"
	"casemonitor/pkg/interfaces"
)

// Fetcher issues the dashboard's read queries against the case store.
// Any store error is returned as is; empty results are not errors.
type Fetcher struct {
	store interfaces.CaseStore
}

// NewFetcher creates a fetcher over store
func NewFetcher(store interfaces.CaseStore) *Fetcher {
	return &Fetcher{store: store}
}

// ActiveBatches returns the batches with status "active"
func (f *Fetcher) ActiveBatches(ctx context.Context) ([]*model.Batch, error) {
	return f.store.ListActiveBatches(ctx)
}

// Cases returns the cases of every batch, in batch order
func (f *Fetcher) Cases(ctx context.Context, batches []*model.Batch) ([]*model.Case, error) {
	all := make([]*model.Case, 0)
	for _, b := range batches {
		cases, err := f.store.ListCasesByBatch(ctx, b.ID)
		if err != nil {
			return nil, err
		}
		all = append(all, cases...)
	}
	return all, nil
}

// OperatorCounts returns the per-operator counters of each date
func (f *Fetcher) OperatorCounts(ctx context.Context, dates []string) (map[string][]model.OperatorCount, error) {
	counts := make(map[string][]model.OperatorCount, len(dates))
	for _, d := range dates {
		dayCounts, err := f.store.ListOperatorCounts(ctx, d)
		if err != nil {
			return nil, err
		}
		counts[d] = dayCounts
	}
	return counts, nil
}
