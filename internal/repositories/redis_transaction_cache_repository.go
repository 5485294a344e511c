package repositories

import (
	"context"
	"time"

	"realestate-valley/internal/models"
	"realestate-valley/pkg/cache"
	"realestate-valley/pkg/logger"
)

type redisTransactionCache struct {
	client cache.CacheClient
}

func NewRedisTransactionCache(client cache.CacheClient) TransactionCache {
	return &redisTransactionCache{client: client}
}

func (c *redisTransactionCache) Get(ctx context.Context, key string) ([]models.TransactionRecord, bool, error) {
	var records []models.TransactionRecord
	found, err := cache.Get(ctx, c.client, key, &records)
	if cache.IsCorrupt(err) {
		logger.GlobalLogger.Warnf("Dropping undecodable cache entry key=%s", key)
		_ = cache.Delete(ctx, c.client, key)
		return nil, false, nil
	}
	if err != nil || !found {
		return nil, false, err
	}
	if records == nil {
		records = []models.TransactionRecord{}
	}
	return records, true, nil
}

func (c *redisTransactionCache) Set(ctx context.Context, key string, records []models.TransactionRecord, expiration time.Duration) error {
	if records == nil {
		records = []models.TransactionRecord{}
	}
	return cache.Set(ctx, c.client, key, records, expiration)
}

func (c *redisTransactionCache) Name() string {
	return "redis"
}
