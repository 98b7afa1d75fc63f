// Package store locates manifest files and memoizes their parsed form in a
// cache keyed by the manifest's absolute path.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/quantmind-br/viteassets/internal/cache"
	"github.com/quantmind-br/viteassets/internal/domain"
	"github.com/quantmind-br/viteassets/internal/manifest"
	"github.com/quantmind-br/viteassets/internal/utils"
)

// Store resolves manifest references and loads parsed manifests through the
// cache. It holds no mutable state of its own.
type Store struct {
	fs     domain.FileSystem
	cache  domain.Cache
	ttl    time.Duration
	logger *utils.Logger
}

// Options contains options for creating a Store
type Options struct {
	FileSystem domain.FileSystem
	Cache      domain.Cache
	// TTL is passed to Cache.Set; zero stores without expiry
	TTL    time.Duration
	Logger *utils.Logger
}

// New creates a Store. A nil Cache disables memoization and a nil FileSystem
// uses the working directory.
func New(opts Options) *Store {
	s := &Store{
		fs:     opts.FileSystem,
		cache:  opts.Cache,
		ttl:    opts.TTL,
		logger: opts.Logger,
	}
	if s.fs == nil {
		s.fs = utils.NewLocalFS("")
	}
	if s.cache == nil {
		s.cache = cache.NullCache{}
	}
	if s.logger == nil {
		s.logger = utils.NewNopLogger()
	}
	s.logger = s.logger.WithComponent("store")
	return s
}

// Resolve maps a manifest reference to the absolute path of an existing file
func (s *Store) Resolve(ref string) (string, error) {
	path, err := s.fs.Resolve(ref)
	if err != nil {
		var resErr *domain.ResolutionError
		if errors.As(err, &resErr) {
			return "", err
		}
		return "", domain.NewResolutionError(ref, path, err)
	}
	return path, nil
}

// Load returns the manifest at absPath. A cached value is returned as stored;
// the file is only read and parsed on a cache miss. Because the key depends on
// the path alone, edits to a file with a warm entry are not seen until the
// entry is evicted.
func (s *Store) Load(ctx context.Context, absPath string) (*manifest.Manifest, error) {
	key := cache.ManifestKey(absPath)
	log := s.logger.WithManifest(absPath)

	value, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		m, decodeErr := decodeManifest(absPath, value)
		if decodeErr == nil {
			log.Debug().Msg("Manifest cache hit")
			return m, nil
		}
		log.Warn().Err(decodeErr).Msg("Discarding unreadable cached manifest")
	case errors.Is(err, domain.ErrCacheMiss):
		log.Debug().Msg("Manifest cache miss")
	default:
		log.Warn().Err(err).Msg("Manifest cache lookup failed")
	}

	data, err := s.fs.ReadFile(absPath)
	if err != nil {
		return nil, domain.NewReadError(absPath, err)
	}

	m, err := manifest.Parse(data, absPath)
	if err != nil {
		return nil, err
	}

	encoded, err := encodeManifest(m)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to encode manifest for cache")
		return m, nil
	}
	if err := s.cache.Set(ctx, key, encoded, s.ttl); err != nil {
		log.Warn().Err(err).Msg("Failed to store manifest in cache")
	}

	return m, nil
}

// Open resolves ref and loads the manifest it points to
func (s *Store) Open(ctx context.Context, ref string) (*manifest.Manifest, error) {
	path, err := s.Resolve(ref)
	if err != nil {
		return nil, err
	}
	return s.Load(ctx, path)
}

// Invalidate drops the cached manifest for absPath
func (s *Store) Invalidate(ctx context.Context, absPath string) error {
	return s.cache.Delete(ctx, cache.ManifestKey(absPath))
}
