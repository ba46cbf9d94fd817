package redis

import (
	"context"
	"testing"
	"time"

	"casemonitor/internal/model"
	"casemonitor/pkg/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*SessionRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(context.Background(), config.RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return NewSessionRepository(client), mr
}

func TestSessionRepository_SaveAndGet(t *testing.T) {
	repo, mr := newTestRepository(t)
	ctx := context.Background()

	sess := &model.Session{ID: "s1", CreatedAt: time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)}
	require.NoError(t, repo.Save(ctx, sess))

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, sess, got)

	sess.Authenticated = true
	require.NoError(t, repo.Save(ctx, sess))

	got, err = repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, got.Authenticated)

	// sessions never expire on their own
	assert.Equal(t, time.Duration(0), mr.TTL(sessionKeyPrefix+"s1"))
}

func TestSessionRepository_Missing(t *testing.T) {
	repo, _ := newTestRepository(t)

	got, err := repo.Get(context.Background(), "nope")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionRepository_Corrupt(t *testing.T) {
	repo, mr := newTestRepository(t)
	require.NoError(t, mr.Set(sessionKeyPrefix+"bad", "{not json"))

	_, err := repo.Get(context.Background(), "bad")
	assert.Error(t, err)
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisClient(context.Background(), config.RedisConfig{Addr: addr})
	assert.Error(t, err)
}
