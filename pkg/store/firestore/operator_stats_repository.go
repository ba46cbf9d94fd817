package firestore

import (
	"context"
	"fmt"

	"casemonitor/internal/model"
)

// OperatorStatsRepository reads daily per-operator counters stored as
// {operator_stats}/{date}/{operators}/{operator}
type OperatorStatsRepository struct {
	ds *Datastore
}

// NewOperatorStatsRepository creates a new operator stats repository
func NewOperatorStatsRepository(ds *Datastore) *OperatorStatsRepository {
	return &OperatorStatsRepository{ds: ds}
}

// ListByDate returns the counters recorded for date (YYYY-MM-DD).
// A date without a document yields an empty list.
func (r *OperatorStatsRepository) ListByDate(ctx context.Context, date string) ([]model.OperatorCount, error) {
	docs, err := r.ds.client.Collection(r.ds.collections.OperatorStats).
		Doc(date).
		Collection(r.ds.collections.Operators).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list operator stats for %s: %w", date, err)
	}

	counts := make([]model.OperatorCount, 0, len(docs))
	for _, doc := range docs {
		counts = append(counts, ToOperatorCountDomain(doc.Ref.ID, doc.Data()))
	}
	return counts, nil
}
