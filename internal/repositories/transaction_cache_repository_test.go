package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"realestate-valley/internal/models"
	"realestate-valley/pkg/cache"
	"realestate-valley/pkg/cache/cachetest"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records(names ...string) []models.TransactionRecord {
	out := make([]models.TransactionRecord, len(names))
	for i, n := range names {
		out[i] = models.TransactionRecord{AptName: n, Price: "100000"}
	}
	return out
}

func TestMemoryCacheGetSet(t *testing.T) {
	ctx := context.Background()
	c, err := NewMemoryTransactionCache(4, time.Hour)
	require.NoError(t, err)

	_, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)

	in := records("A", "B")
	require.NoError(t, c.Set(ctx, "k", in, 0))
	in[0].AptName = "mutated"

	got, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "A", got[0].AptName)
}

func TestMemoryCacheEvictsBeyondCapacity(t *testing.T) {
	ctx := context.Background()
	c, err := NewMemoryTransactionCache(4, time.Hour)
	require.NoError(t, err)

	for _, key := range []string{"a", "b", "c", "d"} {
		require.NoError(t, c.Set(ctx, key, records(key), 0))
	}
	for _, key := range []string{"open1", "open2"} {
		require.NoError(t, c.Set(ctx, key, records(key), time.Hour))
	}

	_, found, _ := c.Get(ctx, "a")
	assert.False(t, found)
	_, found, _ = c.Get(ctx, "open1")
	assert.False(t, found)
	_, found, _ = c.Get(ctx, "d")
	assert.True(t, found)
	_, found, _ = c.Get(ctx, "open2")
	assert.True(t, found)
	assert.Equal(t, 4, c.(*memoryTransactionCache).Len())
}

func TestMemoryCacheExpiringEntries(t *testing.T) {
	ctx := context.Background()
	c, err := NewMemoryTransactionCache(4, 30*time.Millisecond)
	require.NoError(t, err)

	require.NoError(t, c.Set(ctx, "open", records("A"), 30*time.Millisecond))
	require.NoError(t, c.Set(ctx, "closed", records("B"), 0))

	_, found, _ := c.Get(ctx, "open")
	assert.True(t, found)

	time.Sleep(80 * time.Millisecond)

	_, found, _ = c.Get(ctx, "open")
	assert.False(t, found)
	_, found, _ = c.Get(ctx, "closed")
	assert.True(t, found)
}

func TestMemoryCacheZeroRecordsIsAHit(t *testing.T) {
	ctx := context.Background()
	c, err := NewMemoryTransactionCache(4, 0)
	require.NoError(t, err)

	require.NoError(t, c.Set(ctx, "empty", nil, 0))
	got, found, err := c.Get(ctx, "empty")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, got)
}

func TestMemoryCacheRejectsTinyCapacity(t *testing.T) {
	_, err := NewMemoryTransactionCache(0, 0)
	assert.Error(t, err)
	_, err = NewMemoryTransactionCache(1, 0)
	assert.Error(t, err)
	_, err = NewMemoryTransactionCache(MinMemoryCacheCapacity, 0)
	assert.NoError(t, err)
}

func TestRedisCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := cachetest.NewFakeClient()
	c := NewRedisTransactionCache(client)

	require.NoError(t, c.Set(ctx, "k", records("A"), 5*time.Minute))
	got, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "A", got[0].AptName)

	ttl, _ := client.TTL("k")
	assert.Equal(t, 5*time.Minute, ttl)

	require.NoError(t, cache.Delete(ctx, client, "k"))
	_, found, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisCacheDropsCorruptEntry(t *testing.T) {
	ctx := context.Background()
	client := cachetest.NewFakeClient()
	client.Put("k", "{not json")
	c := NewRedisTransactionCache(client)

	_, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
	assert.ErrorIs(t, client.Get(ctx, "k").Err(), redis.Nil)
}

func TestTieredCacheBackfillsMemory(t *testing.T) {
	ctx := context.Background()
	memory, err := NewMemoryTransactionCache(4, 0)
	require.NoError(t, err)
	redisTier := NewRedisTransactionCache(cachetest.NewFakeClient())
	require.NoError(t, redisTier.Set(ctx, "k", records("A"), 0))

	tiered := NewTieredTransactionCache(func(string) time.Duration { return 0 }, memory, redisTier)

	got, found, err := tiered.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, got, 1)

	_, found, _ = memory.Get(ctx, "k")
	assert.True(t, found)
}

func TestTieredCacheSkipsFailingTier(t *testing.T) {
	ctx := context.Background()
	memory, err := NewMemoryTransactionCache(4, 0)
	require.NoError(t, err)
	client := cachetest.NewFakeClient()
	client.FailErr = errors.New("connection refused")

	tiered := NewTieredTransactionCache(nil, NewRedisTransactionCache(client), memory)

	err = tiered.Set(ctx, "k", records("A"), 0)
	assert.Error(t, err)

	got, found, err := tiered.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, got, 1)
}
