package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStateRepository stores ledger state as plain redis strings under a common prefix
type RedisStateRepository struct {
	client    redis.Cmdable
	keyPrefix string
}

// NewRedisStateRepository creates a new redis-backed key-value store
func NewRedisStateRepository(client redis.Cmdable, keyPrefix string) KeyValueStoreInterface {
	return &RedisStateRepository{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

func (r *RedisStateRepository) key(key string) string {
	return r.keyPrefix + key
}

// Get retrieves the value stored under key
func (r *RedisStateRepository) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, r.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("failed to get redis key %q: %w", key, err)
	}

	return value, nil
}

// Set stores value under key without expiry
func (r *RedisStateRepository) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set redis key %q: %w", key, err)
	}

	return nil
}

// Delete removes key
func (r *RedisStateRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete redis key %q: %w", key, err)
	}

	return nil
}

// Ping checks redis connectivity
func (r *RedisStateRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
