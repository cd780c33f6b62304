// Package session tracks anonymous cookie sessions in Redis. Sessions are
// bookkeeping only: bearer tokens remain the sole authorization proof.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// Tracker is the part of the store handlers depend on.
type Tracker interface {
	Touch(ctx context.Context, id string) error
}

// Store keeps one Redis entry per session id, refreshed on every request
// so idle sessions expire after the configured TTL.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore connects to Redis at the given URI and pings it so a broken
// session store is a startup failure, not a request-time surprise.
func NewStore(ctx context.Context, uri string, ttl time.Duration) (*Store, error) {
	opt, err := redis.ParseURL(uri)
	if err != nil {
		return nil, fmt.Errorf("parse redis uri: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Store{client: client, ttl: ttl}, nil
}

// Touch records the session id, extending its TTL. The stored value is
// the last-seen time; nothing reads it yet, it exists for inspection.
func (s *Store) Touch(ctx context.Context, id string) error {
	val := time.Now().UTC().Format(time.RFC3339)
	if err := s.client.Set(ctx, keyPrefix+id, val, s.ttl).Err(); err != nil {
		return fmt.Errorf("touch session %s: %w", id, err)
	}
	return nil
}

// Close releases the underlying Redis connection pool.
func (s *Store) Close() error {
	return s.client.Close()
}
