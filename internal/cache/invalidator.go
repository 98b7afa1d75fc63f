package cache

import (
	"context"
)

// Invalidator deletes cached manifests from a backend it opens for the
// duration of each call only. Long-running processes use it so that the
// badger directory lock is held for milliseconds rather than for their
// whole lifetime.
type Invalidator struct {
	opts Options
}

// NewInvalidator creates an Invalidator for the backend described by opts
func NewInvalidator(opts Options) *Invalidator {
	return &Invalidator{opts: opts}
}

// Invalidate opens the cache, deletes the entry of the manifest at absPath
// and closes the cache again
func (i *Invalidator) Invalidate(ctx context.Context, absPath string) (err error) {
	c, err := New(i.opts)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}()

	return c.Delete(ctx, ManifestKey(absPath))
}
