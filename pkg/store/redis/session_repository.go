package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"casemonitor/internal/model"
	"casemonitor/pkg/interfaces"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "monitor:session:" // monitor:session:{id}

// SessionRepository stores login sessions in Redis without expiry
type SessionRepository struct {
	redis *redis.Client
}

var _ interfaces.SessionStore = (*SessionRepository)(nil)

// NewSessionRepository creates a session repository
func NewSessionRepository(redisClient *RedisClient) *SessionRepository {
	return &SessionRepository{
		redis: redisClient.GetClient(),
	}
}

// Get retrieves a session, nil when it does not exist
func (r *SessionRepository) Get(ctx context.Context, id string) (*model.Session, error) {
	data, err := r.redis.Get(ctx, sessionKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var sess model.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &sess, nil
}

// Save writes the session
func (r *SessionRepository) Save(ctx context.Context, sess *model.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := r.redis.Set(ctx, sessionKeyPrefix+sess.ID, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}
