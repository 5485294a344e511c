package repositories

import (
	"context"
	"errors"
	"time"

	"realestate-valley/internal/models"
	"realestate-valley/internal/utils"
	"realestate-valley/pkg/logger"
)

type tieredTransactionCache struct {
	tiers  []TransactionCache
	policy ExpirationPolicy
}

// NewTieredTransactionCache reads tiers in order and backfills the faster
// tiers on a hit further down. A failing tier is logged and skipped.
func NewTieredTransactionCache(policy ExpirationPolicy, tiers ...TransactionCache) TransactionCache {
	return &tieredTransactionCache{tiers: tiers, policy: policy}
}

func (c *tieredTransactionCache) Get(ctx context.Context, key string) ([]models.TransactionRecord, bool, error) {
	for i, tier := range c.tiers {
		records, found, err := tier.Get(ctx, key)
		if err != nil {
			logger.GlobalLogger.Errorf("Cache tier read failed: tier=%s, key=%s, error=%v", tier.Name(), key, err)
			continue
		}
		utils.RecordCacheLookup(tier.Name(), found)
		if !found {
			continue
		}
		for _, faster := range c.tiers[:i] {
			if err := faster.Set(ctx, key, records, c.expiration(key)); err != nil {
				logger.GlobalLogger.Errorf("Cache backfill failed: tier=%s, key=%s, error=%v", faster.Name(), key, err)
			}
		}
		return records, true, nil
	}
	return nil, false, nil
}

func (c *tieredTransactionCache) Set(ctx context.Context, key string, records []models.TransactionRecord, expiration time.Duration) error {
	var errs []error
	for _, tier := range c.tiers {
		if err := tier.Set(ctx, key, records, expiration); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *tieredTransactionCache) Name() string {
	return "tiered"
}

func (c *tieredTransactionCache) expiration(key string) time.Duration {
	if c.policy == nil {
		return 0
	}
	return c.policy(key)
}
