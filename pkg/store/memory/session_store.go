// Package memory keeps login sessions in process memory for single-instance
// deployments without Redis.
package memory

import (
	"context"
	"sync"

	"casemonitor/internal/model"
	"casemonitor/pkg/interfaces"
)

// SessionStore in-process session storage
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]model.Session
}

var _ interfaces.SessionStore = (*SessionStore)(nil)

// NewSessionStore creates an empty store
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]model.Session)}
}

// Get returns a copy of the session, nil when unknown
func (s *SessionStore) Get(_ context.Context, id string) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	return &sess, nil
}

// Save stores a copy of sess
func (s *SessionStore) Save(_ context.Context, sess *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sess.ID] = *sess
	return nil
}

// Len number of stored sessions
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
