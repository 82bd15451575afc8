package feed

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

// setupTestRedis creates a Redis client using miniredis so cache tests
// run without a real Redis server.
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to create miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		mr.Close()
		t.Fatalf("Failed to connect to miniredis: %v", err)
	}

	return client, mr
}

func cleanupTestRedis(client *redis.Client, mr *miniredis.Miniredis) {
	if client != nil {
		client.Close()
	}
	if mr != nil {
		mr.Close()
	}
}

func TestCacheSetAndGet(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer cleanupTestRedis(client, mr)

	cache := NewCache(client, 10*time.Minute)
	payload := []byte(`{"total_events": 3}`)

	// Empty cache misses
	data, ok := cache.Get()
	assert.False(t, ok)
	assert.Nil(t, data)

	cache.Set(payload)

	data, ok = cache.Get()
	assert.True(t, ok)
	assert.Equal(t, payload, data)

	// The entry carries the configured TTL
	assert.Equal(t, 10*time.Minute, mr.TTL(cacheKey))
}

func TestCacheInvalidate(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer cleanupTestRedis(client, mr)

	cache := NewCache(client, 10*time.Minute)
	cache.Set([]byte(`{"total_events": 3}`))

	// The fetcher invalidates after writing a new feed; the next read
	// must miss so it picks up the fresh file.
	cache.Invalidate()

	_, ok := cache.Get()
	assert.False(t, ok)
}

func TestCacheEntryExpires(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer cleanupTestRedis(client, mr)

	cache := NewCache(client, time.Minute)
	cache.Set([]byte(`{"total_events": 3}`))

	mr.FastForward(2 * time.Minute)

	_, ok := cache.Get()
	assert.False(t, ok)
}

func TestCacheDegradesWithoutRedis(t *testing.T) {
	// A nil client means redis is not configured; every operation is a
	// no-op and Get always misses.
	cache := NewCache(nil, time.Minute)

	cache.Set([]byte("ignored"))
	data, ok := cache.Get()
	assert.False(t, ok)
	assert.Nil(t, data)
	cache.Invalidate()

	// A nil *Cache behaves the same way.
	var none *Cache
	none.Set([]byte("ignored"))
	_, ok = none.Get()
	assert.False(t, ok)
	none.Invalidate()
}
