package repositories

import (
	"context"
	"time"

	"realestate-valley/internal/models"
)

// TransactionCache stores the records of one district and month under a key
// built by cache.TransactionKey. Only successful fetches are stored.
type TransactionCache interface {
	Get(ctx context.Context, key string) ([]models.TransactionRecord, bool, error)
	Set(ctx context.Context, key string, records []models.TransactionRecord, expiration time.Duration) error
	Name() string
}

// ExpirationPolicy returns the expiration for a cache key; zero keeps the
// entry until evicted.
type ExpirationPolicy func(key string) time.Duration
