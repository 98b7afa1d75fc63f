// Package watcher drops cached manifests when the manifest file changes on
// disk. The store keys its cache by path only, so this is how rebuilt
// manifests become visible without waiting for the TTL.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/quantmind-br/viteassets/internal/utils"
)

// Invalidator forgets whatever is cached for a manifest path
type Invalidator interface {
	Invalidate(ctx context.Context, absPath string) error
}

// Options contains options for creating a watcher
type Options struct {
	Logger *utils.Logger
	// OnInvalidate is called after each invalidation attempt
	OnInvalidate func(path string, op fsnotify.Op, err error)
}

// Watcher watches one manifest file
type Watcher struct {
	fsWatcher    *fsnotify.Watcher
	manifest     string
	dir          string
	invalidator  Invalidator
	logger       *utils.Logger
	onInvalidate func(path string, op fsnotify.Op, err error)
	closeOnce    sync.Once
}

// New starts watching the directory of manifestPath. The directory, not the
// file, is watched so that builds replacing the file atomically are seen.
// Its parent is watched too, because builds that empty the output directory
// delete and recreate the manifest's directory.
func New(manifestPath string, invalidator Invalidator, opts Options) (*Watcher, error) {
	abs, err := filepath.Abs(manifestPath)
	if err != nil {
		return nil, err
	}
	abs = filepath.Clean(abs)
	dir := filepath.Dir(abs)

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, err
	}
	if parent := filepath.Dir(dir); parent != dir {
		if err := fsWatcher.Add(parent); err != nil {
			fsWatcher.Close()
			return nil, err
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}

	return &Watcher{
		fsWatcher:    fsWatcher,
		manifest:     abs,
		dir:          dir,
		invalidator:  invalidator,
		logger:       logger.WithComponent("watcher").WithManifest(abs),
		onInvalidate: opts.OnInvalidate,
	}, nil
}

// Path returns the watched manifest path
func (w *Watcher) Path() string {
	return w.manifest
}

// Run processes file system events until ctx is cancelled or Close is
// called. It closes the watcher before returning.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) == w.dir {
				w.handleDir(ctx, event)
				continue
			}
			if w.relevant(event) {
				w.invalidate(ctx, event.Op)
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("File system watch error")
		}
	}
}

// Close stops watching
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.fsWatcher.Close()
	})
	return err
}

// handleDir follows the manifest directory being removed and recreated. A
// recreated directory is watched again, and a manifest already written into
// it before that happened is invalidated.
func (w *Watcher) handleDir(ctx context.Context, event fsnotify.Event) {
	switch {
	case event.Has(fsnotify.Create):
		if err := w.fsWatcher.Add(w.dir); err != nil {
			w.logger.Warn().Err(err).Str("dir", w.dir).Msg("Failed to watch recreated directory")
			return
		}
		w.logger.Debug().Str("dir", w.dir).Msg("Watching recreated directory")
		if _, err := os.Stat(w.manifest); err == nil {
			w.invalidate(ctx, event.Op)
		}
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		w.invalidate(ctx, event.Op)
	}
}

func (w *Watcher) invalidate(ctx context.Context, op fsnotify.Op) {
	err := w.invalidator.Invalidate(ctx, w.manifest)
	if err != nil {
		w.logger.Warn().Err(err).Str("op", op.String()).Msg("Failed to invalidate manifest")
	} else {
		w.logger.Info().Str("op", op.String()).Msg("Manifest changed, cache entry dropped")
	}
	if w.onInvalidate != nil {
		w.onInvalidate(w.manifest, op, err)
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.manifest {
		return false
	}
	return event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) ||
		event.Has(fsnotify.Rename)
}
