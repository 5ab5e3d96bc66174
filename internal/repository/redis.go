package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"natal-api/internal/models"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "natal:session:"

// RedisSessionStore keeps conversation state in Redis with a sliding TTL.
type RedisSessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisSessionStore wraps an existing client.
func NewRedisSessionStore(rdb *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb, ttl: ttl}
}

// OpenRedis returns nil when addr is empty.
func OpenRedis(addr, pass string, db int) *redis.Client {
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})
}

// GetSession returns models.ErrSessionNotFound for missing or expired sessions.
func (s *RedisSessionStore) GetSession(ctx context.Context, id string) (*models.Session, error) {
	raw, err := s.rdb.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, models.ErrSessionNotFound
		}
		return nil, fmt.Errorf("repository: failed to get session: %w", err)
	}
	var sess models.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("repository: failed to decode session: %w", err)
	}
	return &sess, nil
}

func (s *RedisSessionStore) SaveSession(ctx context.Context, sess models.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("repository: failed to encode session: %w", err)
	}
	if err := s.rdb.Set(ctx, sessionKeyPrefix+sess.ID, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("repository: failed to save session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) DeleteSession(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, sessionKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("repository: failed to delete session: %w", err)
	}
	return nil
}
