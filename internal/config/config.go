package config

import (
	"slices"
	"strings"
	"time"
)

// Config represents the application configuration
type Config struct {
	Manifest  ManifestConfig  `mapstructure:"manifest" json:"manifest" yaml:"manifest"`
	DevServer DevServerConfig `mapstructure:"dev_server" json:"dev_server" yaml:"dev_server"`
	Assets    AssetsConfig    `mapstructure:"assets" json:"assets" yaml:"assets"`
	Cache     CacheConfig     `mapstructure:"cache" json:"cache" yaml:"cache"`
	Logging   LoggingConfig   `mapstructure:"logging" json:"logging" yaml:"logging"`
}

// ManifestConfig locates the build manifest
type ManifestConfig struct {
	// Path is the manifest reference; relative paths are resolved against Root
	Path string `mapstructure:"path" json:"path" yaml:"path"`
	// Root is the web root. Asset paths below it are reported web-relative.
	Root string `mapstructure:"root" json:"root" yaml:"root"`
}

// DevServerConfig contains dev server settings
type DevServerConfig struct {
	Enabled bool `mapstructure:"enabled" json:"enabled" yaml:"enabled"`
	// Port is kept as configured; it is coerced when the base URL is built
	Port string `mapstructure:"port" json:"port" yaml:"port"`
}

// AssetsConfig contains emission defaults
type AssetsConfig struct {
	AddCSS           bool `mapstructure:"add_css" json:"add_css" yaml:"add_css"`
	InlineCSS        bool `mapstructure:"inline_css" json:"inline_css" yaml:"inline_css"`
	NormalizeCharset bool `mapstructure:"normalize_charset" json:"normalize_charset" yaml:"normalize_charset"`
	Priority         bool `mapstructure:"priority" json:"priority" yaml:"priority"`
}

// CacheConfig contains cache settings
type CacheConfig struct {
	Enabled   bool          `mapstructure:"enabled" json:"enabled" yaml:"enabled"`
	Backend   string        `mapstructure:"backend" json:"backend" yaml:"backend"`
	TTL       time.Duration `mapstructure:"ttl" json:"ttl" yaml:"ttl"`
	Directory string        `mapstructure:"directory" json:"directory" yaml:"directory"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" json:"level" yaml:"level"`
	Format string `mapstructure:"format" json:"format" yaml:"format"`
}

var (
	validBackends   = []string{"badger", "memory", "none"}
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"pretty", "json"}
)

// Validate validates the configuration, replacing unusable values with
// defaults
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Manifest.Path) == "" {
		c.Manifest.Path = DefaultManifestPath
	}
	c.Cache.Backend = strings.ToLower(c.Cache.Backend)
	if !slices.Contains(validBackends, c.Cache.Backend) {
		c.Cache.Backend = DefaultCacheBackend
	}
	if c.Cache.TTL < time.Minute {
		c.Cache.TTL = DefaultCacheTTL
	}
	if c.Cache.Directory == "" {
		c.Cache.Directory = CacheDir()
	}
	if !slices.Contains(validLogLevels, c.Logging.Level) {
		c.Logging.Level = DefaultLogLevel
	}
	if !slices.Contains(validLogFormats, c.Logging.Format) {
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}

// CacheBackend returns the backend to open, honouring Enabled
func (c *Config) CacheBackend() string {
	if !c.Cache.Enabled {
		return "none"
	}
	return c.Cache.Backend
}
