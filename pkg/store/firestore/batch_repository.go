package firestore

import (
	"context"
	"fmt"

	"casemonitor/internal/model"
)

// BatchRepository reads work batches
type BatchRepository struct {
	ds *Datastore
}

// NewBatchRepository creates a new batch repository
func NewBatchRepository(ds *Datastore) *BatchRepository {
	return &BatchRepository{ds: ds}
}

// ListByStatus returns batches whose status equals status
func (r *BatchRepository) ListByStatus(ctx context.Context, status string) ([]*model.Batch, error) {
	docs, err := r.ds.client.Collection(r.ds.collections.Batches).
		Where("status", "==", status).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list %s batches: %w", status, err)
	}

	batches := make([]*model.Batch, 0, len(docs))
	for _, doc := range docs {
		batches = append(batches, ToBatchDomain(doc.Ref.ID, doc.Data()))
	}
	return batches, nil
}
