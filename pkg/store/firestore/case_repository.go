package firestore

import (
	"context"
	"fmt"

	"casemonitor/internal/model"
)

// CaseRepository reads cases
type CaseRepository struct {
	ds *Datastore
}

// NewCaseRepository creates a new case repository
func NewCaseRepository(ds *Datastore) *CaseRepository {
	return &CaseRepository{ds: ds}
}

// ListByBatch returns the cases whose batch_id equals batchID
func (r *CaseRepository) ListByBatch(ctx context.Context, batchID string) ([]*model.Case, error) {
	docs, err := r.ds.client.Collection(r.ds.collections.Cases).
		Where("batch_id", "==", batchID).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list cases of batch %s: %w", batchID, err)
	}

	cases := make([]*model.Case, 0, len(docs))
	for _, doc := range docs {
		cases = append(cases, ToCaseDomain(doc.Ref.ID, doc.Data()))
	}
	return cases, nil
}
