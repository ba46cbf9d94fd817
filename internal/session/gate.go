// Package session implements the login gate in front of the dashboard: one
// shared admin secret and a per-browser authenticated flag.
package session

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"casemonitor/internal/model"
	"casemonitor/pkg/interfaces"
	"casemonitor/pkg/logger"

	"github.com/google/uuid"
)

// ErrInvalidCredential the submitted password does not match the admin secret
var ErrInvalidCredential = errors.New("invalid password")

// Gate checks credentials and tracks the authenticated flag of each session
type Gate struct {
	secret string
	store  interfaces.SessionStore
}

// NewGate creates a gate for the given admin secret
func NewGate(secret string, store interfaces.SessionStore) *Gate {
	return &Gate{secret: secret, store: store}
}

// Load returns the session with the given id. An empty or unknown id starts a
// new unauthenticated session; it is only persisted once it logs in.
func (g *Gate) Load(ctx context.Context, id string) (*model.Session, error) {
	if id != "" {
		sess, err := g.store.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to load session: %w", err)
		}
		if sess != nil {
			return sess, nil
		}
	}

	return &model.Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
	}, nil
}

// Login compares credential with the admin secret. On a match the session is
// marked authenticated and saved; otherwise ErrInvalidCredential is returned
// and the session is left untouched.
func (g *Gate) Login(ctx context.Context, sess *model.Session, credential string) error {
	if subtle.ConstantTimeCompare([]byte(credential), []byte(g.secret)) != 1 {
		logger.WarnCtx(ctx, "login rejected for session %s", shortID(sess.ID))
		return ErrInvalidCredential
	}

	sess.Authenticated = true
	if err := g.store.Save(ctx, sess); err != nil {
		sess.Authenticated = false
		return fmt.Errorf("failed to save session: %w", err)
	}

	logger.InfoCtx(ctx, "session %s authenticated", shortID(sess.ID))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
