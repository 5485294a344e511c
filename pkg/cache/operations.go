package cache

import (
	"context"
	"encoding/json"
	"time"

	"realestate-valley/pkg/logger"
)

// Set stores value as JSON under key. Zero expiration keeps the key forever.
func Set(ctx context.Context, client CacheClient, key string, value interface{}, expiration time.Duration) error {
	start := time.Now()
	data, err := json.Marshal(value)
	if err != nil {
		IncrementError("set_marshal")
		logger.GlobalLogger.Errorf("failed to marshal value for key %s: %v", key, err)
		return NewCacheError("marshal", key, err, false)
	}
	err = client.Set(ctx, key, data, expiration).Err()
	RecordOperationDuration("set", time.Since(start).Seconds())
	if err != nil {
		IncrementError("set")
		logger.GlobalLogger.Errorf("failed to set key %s: %v", key, err)
		return NewCacheError("set", key, err, true)
	}
	return nil
}

// Get loads the JSON value under key into dest. A missing key returns
// found=false and no error.
func Get(ctx context.Context, client CacheClient, key string, dest interface{}) (bool, error) {
	start := time.Now()
	val, err := client.Get(ctx, key).Result()
	RecordOperationDuration("get", time.Since(start).Seconds())
	if IsMiss(err) {
		return false, nil
	}
	if err != nil {
		IncrementError("get")
		logger.GlobalLogger.Errorf("failed to get key %s: %v", key, err)
		return false, NewCacheError("get", key, err, true)
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		IncrementError("get_unmarshal")
		logger.GlobalLogger.Errorf("failed to unmarshal value for key %s: %v", key, err)
		return false, NewCacheError("unmarshal", key, err, false)
	}
	return true, nil
}

// Delete removes key from the cache.
func Delete(ctx context.Context, client CacheClient, key string) error {
	start := time.Now()
	err := client.Del(ctx, key).Err()
	RecordOperationDuration("delete", time.Since(start).Seconds())
	if err != nil {
		IncrementError("delete")
		logger.GlobalLogger.Errorf("failed to delete key %s: %v", key, err)
		return NewCacheError("delete", key, err, true)
	}
	return nil
}
