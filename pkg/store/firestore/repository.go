package firestore

import (
	"context"

	"casemonitor/internal/model"
	"casemonitor/pkg/config"
	"casemonitor/pkg/interfaces"
)

// Repository aggregates the Firestore repositories and implements interfaces.CaseStore
type Repository struct {
	ds *Datastore

	Batch         *BatchRepository
	Case          *CaseRepository
	OperatorStats *OperatorStatsRepository
}

var _ interfaces.CaseStore = (*Repository)(nil)

// NewRepository connects to Firestore and builds all sub-repositories
func NewRepository(ctx context.Context, cfg config.FirestoreConfig) (*Repository, error) {
	ds, err := NewDatastore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &Repository{
		ds:            ds,
		Batch:         NewBatchRepository(ds),
		Case:          NewCaseRepository(ds),
		OperatorStats: NewOperatorStatsRepository(ds),
	}, nil
}

func (r *Repository) ListActiveBatches(ctx context.Context) ([]*model.Batch, error) {
	return r.Batch.ListByStatus(ctx, model.BatchStatusActive)
}

func (r *Repository) ListCasesByBatch(ctx context.Context, batchID string) ([]*model.Case, error) {
	return r.Case.ListByBatch(ctx, batchID)
}

func (r *Repository) ListOperatorCounts(ctx context.Context, date string) ([]model.OperatorCount, error) {
	return r.OperatorStats.ListByDate(ctx, date)
}

// Close closes the Firestore connection
func (r *Repository) Close() error {
	return r.ds.Close()
}
