// ABOUTME: In-memory response cache backed by patrickmn/go-cache
// ABOUTME: Expired entries are swept by go-cache's janitor goroutine

package memory

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"leadsearch-api/core/interfaces"
)

// MemoryCache implements interfaces.Cache in process memory
type MemoryCache struct {
	items *gocache.Cache
}

var _ interfaces.Cache = (*MemoryCache)(nil)

// NewMemoryCache creates a cache whose expired entries are purged every cleanupInterval
func NewMemoryCache(cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		items: gocache.New(gocache.NoExpiration, cleanupInterval),
	}
}

// Get returns a copy of the stored value or interfaces.ErrCacheMiss
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v, found := c.items.Get(key)
	if !found {
		return nil, interfaces.ErrCacheMiss
	}
	value, ok := v.([]byte)
	if !ok {
		return nil, interfaces.ErrCacheMiss
	}

	result := make([]byte, len(value))
	copy(result, value)
	return result, nil
}

// Set stores a copy of value. A zero ttl never expires.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)
	c.items.Set(key, valueCopy, ttl)
	return nil
}

// Delete removes a key from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.items.Delete(key)
	return nil
}

// Len returns the number of stored entries, expired ones included until swept
func (c *MemoryCache) Len() int {
	return c.items.ItemCount()
}
