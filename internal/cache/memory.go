package cache

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/quantmind-br/viteassets/internal/domain"
)

// MemoryCache keeps entries in process memory. It is safe for concurrent use.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewMemoryCache creates an empty in-memory cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]*Entry)}
}

// Get retrieves a value from cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || e.IsExpired() {
		return nil, domain.ErrCacheMiss
	}
	return bytes.Clone(e.Content), nil
}

// Set stores a value in cache with TTL; a zero TTL never expires
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	now := time.Now()
	e := &Entry{
		Key:      key,
		Content:  bytes.Clone(value),
		StoredAt: now,
	}
	if ttl > 0 {
		e.ExpiresAt = now.Add(ttl)
	}

	c.mu.Lock()
	c.entries[key] = e
	c.mu.Unlock()
	return nil
}

// Has checks if a live key exists in cache
func (c *MemoryCache) Has(ctx context.Context, key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	return ok && !e.IsExpired()
}

// Delete removes a key from cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

// Close drops all entries
func (c *MemoryCache) Close() error {
	c.mu.Lock()
	c.entries = make(map[string]*Entry)
	c.mu.Unlock()
	return nil
}

// Size returns the number of stored entries, expired ones included
func (c *MemoryCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear removes all entries
func (c *MemoryCache) Clear() error {
	return c.Close()
}

// Stats returns cache statistics
func (c *MemoryCache) Stats() map[string]interface{} {
	return map[string]interface{}{
		"entries": c.Size(),
	}
}

// NullCache never stores anything; every Get is a miss
type NullCache struct{}

func (NullCache) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, domain.ErrCacheMiss
}

func (NullCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (NullCache) Has(ctx context.Context, key string) bool {
	return false
}

func (NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

func (NullCache) Close() error {
	return nil
}
