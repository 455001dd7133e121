// Package kv provides the Redis connection backing the key-value store.
package kv

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/resolvpay/backend/config"
)

// Redis wraps the go-redis client used as the persistence backend.
type Redis struct {
	client *redis.Client
	cfg    *config.RedisConfig
}

// NewRedisConnection creates and pings a Redis connection.
func NewRedisConnection(cfg *config.RedisConfig) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	slog.Info("Redis connection established", "addr", cfg.Addr, "db", cfg.DB)

	return &Redis{client: client, cfg: cfg}, nil
}

// Client returns the underlying go-redis client.
func (r *Redis) Client() *redis.Client {
	return r.client
}

// HealthCheck pings Redis.
func (r *Redis) HealthCheck(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis health check failed: %w", err)
	}
	return nil
}

// Close closes the connection.
func (r *Redis) Close() error {
	return r.client.Close()
}
