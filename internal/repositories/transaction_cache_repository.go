package repositories

import (
	"context"
	"fmt"
	"time"

	"realestate-valley/internal/models"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// MinMemoryCacheCapacity leaves one slot for each partition.
const MinMemoryCacheCapacity = 2

type memoryTransactionCache struct {
	closed   *lru.Cache[string, []models.TransactionRecord]
	expiring *expirable.LRU[string, []models.TransactionRecord]
}

// NewMemoryTransactionCache builds a bounded in-process cache holding at most
// capacity entries. A quarter of it (at least one slot) holds entries stored
// with a positive expiration, which all share expiringTTL; the rest holds
// entries that stay until evicted.
func NewMemoryTransactionCache(capacity int, expiringTTL time.Duration) (TransactionCache, error) {
	if capacity < MinMemoryCacheCapacity {
		return nil, fmt.Errorf("cache capacity must be at least %d, got %d", MinMemoryCacheCapacity, capacity)
	}
	expiringCap := max(capacity/4, 1)
	closed, err := lru.New[string, []models.TransactionRecord](capacity - expiringCap)
	if err != nil {
		return nil, fmt.Errorf("failed to create LRU cache: %w", err)
	}
	return &memoryTransactionCache{
		closed:   closed,
		expiring: expirable.NewLRU[string, []models.TransactionRecord](expiringCap, nil, expiringTTL),
	}, nil
}

func (c *memoryTransactionCache) Get(ctx context.Context, key string) ([]models.TransactionRecord, bool, error) {
	if records, ok := c.closed.Get(key); ok {
		return records, true, nil
	}
	if records, ok := c.expiring.Get(key); ok {
		return records, true, nil
	}
	return nil, false, nil
}

func (c *memoryTransactionCache) Set(ctx context.Context, key string, records []models.TransactionRecord, expiration time.Duration) error {
	stored := make([]models.TransactionRecord, len(records))
	copy(stored, records)

	if expiration > 0 {
		c.closed.Remove(key)
		c.expiring.Add(key, stored)
		return nil
	}
	c.expiring.Remove(key)
	c.closed.Add(key, stored)
	return nil
}

func (c *memoryTransactionCache) Name() string {
	return "memory"
}

// Len returns the number of entries across both partitions.
func (c *memoryTransactionCache) Len() int {
	return c.closed.Len() + c.expiring.Len()
}
