package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default values
const (
	// Manifest defaults
	DefaultManifestPath = "dist/.vite/manifest.json"

	// Asset defaults
	DefaultAddCSS           = true
	DefaultInlineCSS        = false
	DefaultNormalizeCharset = false
	DefaultPriority         = false

	// Cache defaults
	DefaultCacheEnabled = true
	DefaultCacheBackend = "badger"
	DefaultCacheTTL     = 24 * time.Hour

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// PortEnvVar is the environment variable Vite tooling uses for the dev
// server port
const PortEnvVar = "VITE_PRIMARY_PORT"

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".viteassets"
	}
	return filepath.Join(home, ".viteassets")
}

// CacheDir returns the cache directory path
func CacheDir() string {
	return filepath.Join(ConfigDir(), "cache")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Manifest: ManifestConfig{
			Path: DefaultManifestPath,
		},
		DevServer: DevServerConfig{
			Enabled: false,
		},
		Assets: AssetsConfig{
			AddCSS:           DefaultAddCSS,
			InlineCSS:        DefaultInlineCSS,
			NormalizeCharset: DefaultNormalizeCharset,
			Priority:         DefaultPriority,
		},
		Cache: CacheConfig{
			Enabled:   DefaultCacheEnabled,
			Backend:   DefaultCacheBackend,
			TTL:       DefaultCacheTTL,
			Directory: CacheDir(),
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
