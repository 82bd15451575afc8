package feed

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const cacheKey = "comedy:feed:json"

// Cache keeps the served feed bytes in redis with a TTL so repeated page
// loads between fetcher runs skip the disk read. Redis being unavailable
// degrades to uncached serving; it is never an error surfaced to the
// viewer.
type Cache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{Client: client, TTL: ttl}
}

func (c *Cache) Get() ([]byte, bool) {
	if c == nil || c.Client == nil {
		return nil, false
	}
	data, err := c.Client.Get(context.Background(), cacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

func (c *Cache) Set(data []byte) {
	if c == nil || c.Client == nil {
		return
	}
	c.Client.Set(context.Background(), cacheKey, data, c.TTL)
}

// Invalidate drops the cached feed; the fetcher calls this after a
// successful write so viewers see the new run immediately.
func (c *Cache) Invalidate() {
	if c == nil || c.Client == nil {
		return
	}
	c.Client.Del(context.Background(), cacheKey)
}
