package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the subset of the Redis client the cache layer uses.
type CacheClient interface {
	Ping(ctx context.Context) *redis.StatusCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Close() error
}
