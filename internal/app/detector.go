package app

import (
	"context"
	"net/url"

	"github.com/quantmind-br/viteassets/internal/config"
	"github.com/quantmind-br/viteassets/internal/domain"
	"github.com/quantmind-br/viteassets/internal/planner"
)

// Mode selects where assets are served from
type Mode string

const (
	ModeDevServer Mode = "dev"
	ModeManifest  Mode = "manifest"
)

// DetectMode picks the dev server when it is enabled and a page request URL
// is known, and the production manifest otherwise
func DetectMode(devServerEnabled bool, requestURL *url.URL) Mode {
	if devServerEnabled && requestURL != nil && requestURL.Host != "" {
		return ModeDevServer
	}
	return ModeManifest
}

// Request describes one entry point to add to a sink
type Request struct {
	// Manifest is the manifest reference; empty uses the configured path
	Manifest string
	// Entry is the entry key; empty detects the manifest's only entry
	Entry string
	// RequestURL is the page request, needed in dev server mode
	RequestURL *url.URL
	Asset      domain.AssetOptions
	AddCSS     bool
	InlineCSS  bool
	// NormalizeCharset transcodes inlined stylesheets to UTF-8
	NormalizeCharset bool
	Script           planner.Attributes
	CSS              planner.Attributes
}

// RequestFromConfig fills a request with the configured defaults
func RequestFromConfig(cfg *config.Config) Request {
	return Request{
		Manifest:         cfg.Manifest.Path,
		AddCSS:           cfg.Assets.AddCSS,
		InlineCSS:        cfg.Assets.InlineCSS,
		NormalizeCharset: cfg.Assets.NormalizeCharset,
		Asset:            domain.AssetOptions{Priority: cfg.Assets.Priority},
	}
}

// AddAssets resolves the entry (detecting it when empty) and adds its assets
// from the dev server or the manifest, depending on DetectMode. It returns the
// mode used and the entry key.
func (s *Service) AddAssets(ctx context.Context, sink domain.AssetSink, req Request) (Mode, string, error) {
	entry := req.Entry
	if entry == "" {
		detected, err := s.DetectEntry(ctx, req.Manifest)
		if err != nil {
			return "", "", err
		}
		entry = detected
	}

	mode := DetectMode(s.config.DevServer.Enabled, req.RequestURL)
	switch mode {
	case ModeDevServer:
		base := s.DevServerBase(req.RequestURL)
		s.AddAssetsFromDevServer(sink, base, entry, planner.DevOptions{
			Asset:  req.Asset,
			Script: req.Script,
		})
		return mode, entry, nil
	default:
		err := s.AddAssetsFromManifest(ctx, sink, req.Manifest, entry, planner.ManifestOptions{
			AddCSS:           req.AddCSS,
			InlineCSS:        req.InlineCSS,
			NormalizeCharset: req.NormalizeCharset,
			Asset:            req.Asset,
			Script:           req.Script,
			CSS:              req.CSS,
		})
		if err != nil {
			return "", "", err
		}
		return mode, entry, nil
	}
}
