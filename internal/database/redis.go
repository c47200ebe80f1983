package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"finance-tracker/internal/config"

	"github.com/redis/go-redis/v9"
)

// OpenRedis connects to redis and verifies the connection with a ping.
// REDIS_URL may be a full redis:// URL or a bare host:port.
func OpenRedis(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	redisURL := cfg.URL
	if !strings.Contains(redisURL, "://") {
		redisURL = "redis://" + redisURL
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{
			Addr: cfg.URL,
		}
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}
