// Package app wires configuration, cache, manifest store and planner into the
// operations exposed to callers.
package app

import (
	"context"
	"fmt"
	"net/url"

	"github.com/quantmind-br/viteassets/internal/cache"
	"github.com/quantmind-br/viteassets/internal/config"
	"github.com/quantmind-br/viteassets/internal/devserver"
	"github.com/quantmind-br/viteassets/internal/domain"
	"github.com/quantmind-br/viteassets/internal/manifest"
	"github.com/quantmind-br/viteassets/internal/planner"
	"github.com/quantmind-br/viteassets/internal/store"
	"github.com/quantmind-br/viteassets/internal/utils"
)

// Service resolves Vite entry points into assets for a sink
type Service struct {
	config  *config.Config
	fs      *utils.LocalFS
	cache   domain.Cache
	store   *store.Store
	planner *planner.Planner
	ports   domain.PortSource
	logger  *utils.Logger
}

// ServiceOptions contains options for creating a service
type ServiceOptions struct {
	Config *config.Config
	// Cache replaces the backend selected by Config
	Cache domain.Cache
	// Ports supplies the dev server port; defaults to Config.DevServer.Port
	Ports   domain.PortSource
	Logger  *utils.Logger
	Verbose bool
}

// NewService creates a service with the given configuration
func NewService(opts ServiceOptions) (*Service, error) {
	cfg := opts.Config

	// Validate config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := opts.Logger
	if logger == nil {
		logLevel := cfg.Logging.Level
		if opts.Verbose {
			logLevel = "debug"
		}
		logger = utils.NewLogger(utils.LoggerOptions{
			Level:   logLevel,
			Format:  cfg.Logging.Format,
			Verbose: opts.Verbose,
		})
	}

	c := opts.Cache
	if c == nil {
		var err error
		c, err = cache.New(CacheOptions(cfg))
		if err != nil {
			return nil, fmt.Errorf("failed to open cache: %w", err)
		}
	}

	ports := opts.Ports
	if ports == nil {
		ports = devserver.StaticPort(cfg.DevServer.Port)
	}

	fs := utils.NewLocalFS(cfg.Manifest.Root)

	return &Service{
		config: cfg,
		fs:     fs,
		cache:  c,
		store: store.New(store.Options{
			FileSystem: fs,
			Cache:      c,
			TTL:        cfg.Cache.TTL,
			Logger:     logger,
		}),
		planner: planner.New(fs),
		ports:   ports,
		logger:  logger,
	}, nil
}

// CacheOptions returns the options of the cache backend cfg selects
func CacheOptions(cfg *config.Config) cache.Options {
	opts := cache.DefaultOptions()
	opts.Backend = cfg.CacheBackend()
	opts.Directory = utils.ExpandPath(cfg.Cache.Directory)
	return opts
}

// Close releases the cache
func (s *Service) Close() error {
	if s.cache != nil {
		return s.cache.Close()
	}
	return nil
}

// Cache returns the cache backing the manifest store
func (s *Service) Cache() domain.Cache {
	return s.cache
}

// Store returns the manifest store used by the service
func (s *Service) Store() *store.Store {
	return s.store
}

// DevServerBase returns the dev server base URL for a page request
func (s *Service) DevServerBase(requestURL *url.URL) *url.URL {
	base := devserver.ResolveBase(requestURL, s.ports)
	s.logger.Debug().Str("base", base.String()).Msg("Resolved dev server")
	return base
}

// AddAssetsFromDevServer adds the HMR client and entry module served by the
// dev server at base
func (s *Service) AddAssetsFromDevServer(sink domain.AssetSink, base *url.URL, entry string, opts planner.DevOptions) {
	plan := s.planner.PlanDev(base, entry, opts)
	plan.Emit(sink)

	s.logger.WithEntry(entry).Debug().
		Str("base", base.String()).
		Int("assets", plan.Len()).
		Msg("Added dev server assets")
}

// DetectEntry returns the manifest's only entry point
func (s *Service) DetectEntry(ctx context.Context, manifestRef string) (string, error) {
	m, err := s.open(ctx, manifestRef)
	if err != nil {
		return "", err
	}

	entry, err := manifest.FindSoleEntry(m)
	if err != nil {
		s.logger.WithManifest(m.Path()).Error().Err(err).Msg("Entry point detection failed")
		return "", err
	}

	s.logger.WithManifest(m.Path()).Debug().Str("entry", entry).Msg("Detected entry point")
	return entry, nil
}

// AddAssetsFromManifest adds the production assets of entry. The sink is
// left untouched when any error occurs.
func (s *Service) AddAssetsFromManifest(ctx context.Context, sink domain.AssetSink, manifestRef, entry string, opts planner.ManifestOptions) error {
	m, err := s.open(ctx, manifestRef)
	if err != nil {
		return err
	}
	log := s.logger.WithManifest(m.Path()).WithEntry(entry)

	resolved, err := manifest.ResolveEntry(m, entry)
	if err != nil {
		log.Error().Err(err).Msg("Invalid entry point")
		return err
	}

	plan, err := s.planner.PlanManifest(m, resolved, opts)
	if err != nil {
		log.Error().Err(err).Msg("Failed to plan assets")
		return err
	}
	plan.Emit(sink)

	log.Debug().
		Int("assets", plan.Len()).
		Bool("inline_css", opts.InlineCSS).
		Msg("Added manifest assets")
	return nil
}

// AssetPath returns the path of any manifest chunk's emitted file. Files
// below the configured web root are returned as root-relative URL paths.
func (s *Service) AssetPath(ctx context.Context, manifestRef, asset string) (string, error) {
	m, err := s.open(ctx, manifestRef)
	if err != nil {
		return "", err
	}

	path, err := manifest.AssetPath(m, asset)
	if err != nil {
		s.logger.WithManifest(m.Path()).Error().Err(err).Str("asset", asset).Msg("Invalid asset")
		return "", err
	}
	return s.fs.WebPath(path), nil
}

func (s *Service) open(ctx context.Context, manifestRef string) (*manifest.Manifest, error) {
	if manifestRef == "" {
		manifestRef = s.config.Manifest.Path
	}

	m, err := s.store.Open(ctx, manifestRef)
	if err != nil {
		s.logger.Error().Err(err).Str("manifest", manifestRef).Msg("Failed to load manifest")
		return nil, err
	}
	return m, nil
}
