// Package cachetest provides an in-memory stand-in for the Redis client.
package cachetest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// FakeClient stores values in a map and can be told to fail.
type FakeClient struct {
	mu      sync.Mutex
	values  map[string]string
	ttls    map[string]time.Duration
	FailErr error
	Gets    int
	Sets    int
}

func NewFakeClient() *FakeClient {
	return &FakeClient{
		values: make(map[string]string),
		ttls:   make(map[string]time.Duration),
	}
}

func (f *FakeClient) Ping(ctx context.Context) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailErr != nil {
		return redis.NewStatusResult("", f.FailErr)
	}
	return redis.NewStatusResult("PONG", nil)
}

func (f *FakeClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Sets++
	if f.FailErr != nil {
		return redis.NewStatusResult("", f.FailErr)
	}
	switch v := value.(type) {
	case []byte:
		f.values[key] = string(v)
	case string:
		f.values[key] = v
	default:
		f.values[key] = fmt.Sprint(v)
	}
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *FakeClient) Get(ctx context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Gets++
	if f.FailErr != nil {
		return redis.NewStringResult("", f.FailErr)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *FakeClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailErr != nil {
		return redis.NewIntResult(0, f.FailErr)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.values[k]; ok {
			delete(f.values, k)
			delete(f.ttls, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (f *FakeClient) Close() error {
	return nil
}

// TTL returns the expiration the key was last stored with.
func (f *FakeClient) TTL(key string) (time.Duration, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ttl, ok := f.ttls[key]
	return ttl, ok
}

// Put stores a raw value, bypassing encoding.
func (f *FakeClient) Put(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
}
