package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"afyabuddy/internal/models"
)

const sessionPrefix = "session:"

// RedisStore keeps transcripts as JSON arrays under session:<id>
type RedisStore struct {
	rdb         *redis.Client
	maxMessages int
	ttl         time.Duration
}

// NewRedisStore wraps an existing client. Non-positive arguments select the defaults.
func NewRedisStore(rdb *redis.Client, maxMessages int, ttl time.Duration) *RedisStore {
	if maxMessages <= 0 {
		maxMessages = DefaultMaxMessages
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{rdb: rdb, maxMessages: maxMessages, ttl: ttl}
}

// Dial parses a redis:// URL and verifies the connection with PING
func Dial(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return rdb, nil
}

func key(sessionID string) string {
	return sessionPrefix + sessionID
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) ([]models.Message, error) {
	data, err := s.rdb.Get(ctx, key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var history []models.Message
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return history, nil
}

func (s *RedisStore) Append(ctx context.Context, sessionID string, msgs ...models.Message) error {
	history, err := s.Load(ctx, sessionID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}

	data, err := json.Marshal(trim(append(history, msgs...), s.maxMessages))
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.rdb.Set(ctx, key(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}
