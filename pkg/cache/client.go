package cache

import (
	"context"
	"fmt"
	"time"

	"realestate-valley/pkg/config"
	"realestate-valley/pkg/logger"

	"github.com/go-redis/redis/v8"
)

// NewRedisClient connects to Redis and verifies the connection with a ping.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	opts, err := buildOptions(cfg)
	if err != nil {
		logger.GlobalLogger.Errorf("invalid Redis options: %v", err)
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Ping(ctx, client); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.GlobalLogger.Printf("Redis connected: addr=%s, db=%d", opts.Addr, opts.DB)
	return client, nil
}

// Ping checks the connection and records its latency.
func Ping(ctx context.Context, client CacheClient) error {
	start := time.Now()
	err := client.Ping(ctx).Err()
	RecordOperationDuration("ping", time.Since(start).Seconds())
	if err != nil {
		IncrementError("ping")
		logger.GlobalLogger.Errorf("Redis ping failed: %v", err)
		return NewCacheError("ping", "", err, true)
	}
	return nil
}

// Close closes the Redis client connection.
func Close(client CacheClient) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		logger.GlobalLogger.Errorf("error closing Redis: %v", err)
	} else {
		logger.GlobalLogger.Println("Redis connection closed")
	}
}
