package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/realm-engine/pkg/engine"
)

// keyPrefix namespaces all save keys in the shared Redis keyspace.
const keyPrefix = "realm:"

// RedisStore persists save snapshots in Redis.
type RedisStore struct {
	client *redis.Client
	logger *slog.Logger
}

// Ensure RedisStore implements the engine's Store interface
var _ engine.Store = (*RedisStore)(nil)

// NewRedisStore creates a new Redis-backed store.
func NewRedisStore(addr string, logger *slog.Logger) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	return &RedisStore{
		client: rdb,
		logger: logger,
	}
}

func (r *RedisStore) Ping(ctx context.Context) error {
	cmd := r.client.Ping(ctx)
	if err := cmd.Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	r.logger.Debug("Redis ping successful", "result", cmd.Val())
	return nil
}

// Read returns the raw snapshot stored under key, or nil when the key
// does not exist.
func (r *RedisStore) Read(ctx context.Context, key string) ([]byte, error) {
	cmd := r.client.Get(ctx, keyPrefix+key)
	if err := cmd.Err(); err != nil {
		if err == redis.Nil {
			r.logger.Debug("Redis key not found", "key", key)
			return nil, nil
		}
		r.logger.Error("Redis GET failed", "key", key, "error", err)
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	data, err := cmd.Bytes()
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	r.logger.Debug("Redis GET successful", "key", key, "value_length", len(data))
	return data, nil
}

// Write stores a snapshot under key. Saves never expire.
func (r *RedisStore) Write(ctx context.Context, key string, data []byte) error {
	cmd := r.client.Set(ctx, keyPrefix+key, data, 0)
	if err := cmd.Err(); err != nil {
		r.logger.Error("Redis SET failed", "key", key, "error", err)
		return fmt.Errorf("redis set failed: %w", err)
	}

	r.logger.Debug("Redis SET successful", "key", key)
	return nil
}

func (r *RedisStore) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}

	r.logger.Info("Redis connection closed")
	return nil
}

// WaitForConnection blocks until Redis answers a ping or the context
// is cancelled.
func (r *RedisStore) WaitForConnection(ctx context.Context) error {
	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}
		return nil
	}
	return fmt.Errorf("redis did not become ready after %d attempts", maxRetries)
}
