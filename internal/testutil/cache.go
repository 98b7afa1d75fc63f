package testutil

import (
	"testing"

	"github.com/quantmind-br/viteassets/internal/cache"
	"github.com/stretchr/testify/require"
)

// NewBadgerCache creates an in-memory BadgerDB cache for testing
func NewBadgerCache(t *testing.T) *cache.BadgerCache {
	t.Helper()

	c, err := cache.NewBadgerCache(cache.Options{
		InMemory: true,
		Logger:   false,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		c.Close()
	})

	return c
}

// NewMemoryCache creates a map-backed cache for testing
func NewMemoryCache(t *testing.T) *cache.MemoryCache {
	t.Helper()

	c := cache.NewMemoryCache()
	t.Cleanup(func() {
		c.Close()
	})
	return c
}
