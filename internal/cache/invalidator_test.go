package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidator(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	key := ManifestKey("/srv/dist/manifest.json")
	opts := Options{Backend: BackendBadger, Directory: dir, OpenTimeout: time.Second}

	c, err := NewBadgerCache(opts)
	require.NoError(t, err)
	require.NoError(t, c.Set(ctx, key, []byte("cached"), 0))
	require.NoError(t, c.Set(ctx, "other", []byte("kept"), 0))
	require.NoError(t, c.Close())

	inv := NewInvalidator(opts)
	require.NoError(t, inv.Invalidate(ctx, "/srv/dist/manifest.json"))

	// The lock is released again, so the cache opens without waiting
	reopened, err := NewBadgerCache(Options{Directory: dir, OpenTimeout: 100 * time.Millisecond})
	require.NoError(t, err)
	defer reopened.Close()

	assert.False(t, reopened.Has(ctx, key))
	assert.True(t, reopened.Has(ctx, "other"))
}

func TestInvalidator_WaitsForLock(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	holder, err := NewBadgerCache(Options{Directory: dir})
	require.NoError(t, err)
	defer holder.Close()

	inv := NewInvalidator(Options{Backend: BackendBadger, Directory: dir, OpenTimeout: 100 * time.Millisecond})
	assert.Error(t, inv.Invalidate(ctx, "/srv/dist/manifest.json"))
}

func TestInvalidator_OtherBackends(t *testing.T) {
	ctx := context.Background()

	for _, backend := range []string{BackendMemory, BackendNone} {
		t.Run(backend, func(t *testing.T) {
			inv := NewInvalidator(Options{Backend: backend})
			assert.NoError(t, inv.Invalidate(ctx, "/srv/dist/manifest.json"))
		})
	}

	t.Run("unknown backend", func(t *testing.T) {
		inv := NewInvalidator(Options{Backend: "redis"})
		assert.Error(t, inv.Invalidate(ctx, "/srv/dist/manifest.json"))
	})
}
