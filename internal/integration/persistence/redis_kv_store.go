// Package persistence implements repository interfaces over the key-value backend.
package persistence

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/resolvpay/backend/internal/application/adapter"
)

// redisKeyValueStore implements adapter.KeyValueStore on Redis. Each
// collection is one string key, written whole.
type redisKeyValueStore struct {
	client *redis.Client
}

// NewRedisKeyValueStore creates a Redis-backed key-value store.
func NewRedisKeyValueStore(client *redis.Client) adapter.KeyValueStore {
	return &redisKeyValueStore{client: client}
}

func (s *redisKeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (s *redisKeyValueStore) Set(ctx context.Context, key string, value string) error {
	return s.client.Set(ctx, key, value, 0).Err()
}
