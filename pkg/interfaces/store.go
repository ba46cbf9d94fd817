package interfaces

import (
	"context"

	"casemonitor/internal/model"
)

// CaseStore read access to the shared document store
// The dashboard never writes through it.
type CaseStore interface {
	// ListActiveBatches returns batches whose status is "active"
	ListActiveBatches(ctx context.Context) ([]*model.Batch, error)

	// ListCasesByBatch returns the cases that reference batchID
	ListCasesByBatch(ctx context.Context, batchID string) ([]*model.Case, error)

	// ListOperatorCounts returns the per-operator counters of one day (YYYY-MM-DD)
	ListOperatorCounts(ctx context.Context, date string) ([]model.OperatorCount, error)
}

// SessionStore persists login sessions
type SessionStore interface {
	// Get returns the session, or nil without error when it does not exist
	Get(ctx context.Context, id string) (*model.Session, error)

	// Save creates or replaces the session
	Save(ctx context.Context, sess *model.Session) error
}
