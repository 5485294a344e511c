package cache

import (
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// CacheError describes a failed cache operation on one key. Retryable is
// false when the stored value itself is bad and retrying cannot help.
type CacheError struct {
	Operation string
	Key       string
	Err       error
	Retryable bool
}

func NewCacheError(operation, key string, err error, retryable bool) *CacheError {
	return &CacheError{
		Operation: operation,
		Key:       key,
		Err:       err,
		Retryable: retryable,
	}
}

func (e *CacheError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("cache %s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("cache %s %q: %v", e.Operation, e.Key, e.Err)
}

func (e *CacheError) Unwrap() error {
	return e.Err
}

// IsMiss reports whether err only signals an absent key.
func IsMiss(err error) bool {
	return errors.Is(err, redis.Nil)
}

// IsCorrupt reports whether err came from a stored value that cannot be decoded.
func IsCorrupt(err error) bool {
	var cacheErr *CacheError
	return errors.As(err, &cacheErr) && !cacheErr.Retryable
}
