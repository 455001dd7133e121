// Package mock provides embedded test infrastructure for integration tests.
package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var miniRedisOnce sync.Once
var miniRedis *miniredis.Miniredis

// RedisAddr starts the embedded Redis server on first use and returns
// its address. The server is shared by the whole test run.
func RedisAddr() string {
	miniRedisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		miniRedis = server
	})
	return miniRedis.Addr()
}

// ClearRedis removes all keys so scenarios start from an empty store.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}
