package session

import (
	"context"
	"errors"
	"testing"

	"casemonitor/internal/model"
	"casemonitor/pkg/config"
	"casemonitor/pkg/store/memory"
	redisstore "casemonitor/pkg/store/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate_LoginFlow(t *testing.T) {
	store := memory.NewSessionStore()
	gate := NewGate("s3cret", store)
	ctx := context.Background()

	sess, err := gate.Load(ctx, "")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.False(t, sess.Authenticated)
	assert.Equal(t, 0, store.Len(), "anonymous sessions are not persisted")

	err = gate.Login(ctx, sess, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredential)
	assert.False(t, sess.Authenticated)

	require.NoError(t, gate.Login(ctx, sess, "s3cret"))
	assert.True(t, sess.Authenticated)

	reloaded, err := gate.Load(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, reloaded.ID)
	assert.True(t, reloaded.Authenticated)
}

func TestGate_ExactMatchOnly(t *testing.T) {
	gate := NewGate("s3cret", memory.NewSessionStore())
	ctx := context.Background()

	for _, candidate := range []string{"", "S3CRET", "s3cret ", " s3cret", "s3cre", "s3crett"} {
		sess := &model.Session{ID: "x"}
		assert.ErrorIs(t, gate.Login(ctx, sess, candidate), ErrInvalidCredential, "%q", candidate)
		assert.False(t, sess.Authenticated)
	}
}

func TestGate_UnknownIDStartsNewSession(t *testing.T) {
	gate := NewGate("pw", memory.NewSessionStore())

	sess, err := gate.Load(context.Background(), "forged-id")
	require.NoError(t, err)
	assert.NotEqual(t, "forged-id", sess.ID)
	assert.False(t, sess.Authenticated)
}

func TestGate_WithRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := redisstore.NewRedisClient(context.Background(), config.RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	defer client.Close()

	gate := NewGate("pw", redisstore.NewSessionRepository(client))
	ctx := context.Background()

	sess, err := gate.Load(ctx, "")
	require.NoError(t, err)
	require.NoError(t, gate.Login(ctx, sess, "pw"))

	reloaded, err := gate.Load(ctx, sess.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Authenticated)
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) (*model.Session, error) {
	return nil, errors.New("store down")
}

func (failingStore) Save(context.Context, *model.Session) error {
	return errors.New("store down")
}

func TestGate_StoreErrors(t *testing.T) {
	gate := NewGate("pw", failingStore{})
	ctx := context.Background()

	_, err := gate.Load(ctx, "some-id")
	assert.Error(t, err)

	sess := &model.Session{ID: "x"}
	err = gate.Login(ctx, sess, "pw")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredential)
	assert.False(t, sess.Authenticated)
}
