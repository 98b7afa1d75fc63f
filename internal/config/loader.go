package config

import (
	"os"
	"strings"

	"github.com/quantmind-br/viteassets/internal/domain"
	"github.com/spf13/viper"
)

// Load loads configuration from file, environment, and defaults
// Uses the global viper instance to access CLI flag bindings
func Load() (*Config, error) {
	return load(viper.GetViper(), "")
}

// LoadWithViper loads configuration and returns the viper instance.
// configFile overrides the config search path when set.
func LoadWithViper(configFile string) (*Config, *viper.Viper, error) {
	v := viper.New()
	cfg, err := load(v, configFile)
	if err != nil {
		return nil, nil, err
	}
	return cfg, v, nil
}

func load(v *viper.Viper, configFile string) (*Config, error) {
	// Set defaults
	setDefaults(v)

	// Config file settings
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Environment variables (VITEASSETS_*)
	v.SetEnvPrefix("VITEASSETS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("dev_server.port", PortEnvVar, "VITEASSETS_DEV_SERVER_PORT"); err != nil {
		return nil, err
	}

	// Unmarshal config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Validate and apply defaults for invalid values
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	// Manifest defaults
	v.SetDefault("manifest.path", DefaultManifestPath)
	v.SetDefault("manifest.root", "")

	// Dev server defaults
	v.SetDefault("dev_server.enabled", false)
	v.SetDefault("dev_server.port", "")

	// Asset defaults
	v.SetDefault("assets.add_css", DefaultAddCSS)
	v.SetDefault("assets.inline_css", DefaultInlineCSS)
	v.SetDefault("assets.normalize_charset", DefaultNormalizeCharset)
	v.SetDefault("assets.priority", DefaultPriority)

	// Cache defaults
	v.SetDefault("cache.enabled", DefaultCacheEnabled)
	v.SetDefault("cache.backend", DefaultCacheBackend)
	v.SetDefault("cache.ttl", DefaultCacheTTL)
	v.SetDefault("cache.directory", CacheDir())

	// Logging defaults
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}

// viperPorts reads the port override from viper on every call, so flags and
// environment changes made after loading are honoured
type viperPorts struct {
	v *viper.Viper
}

// PortSource exposes the dev_server.port setting as a domain.PortSource
func PortSource(v *viper.Viper) domain.PortSource {
	return viperPorts{v: v}
}

func (p viperPorts) PortOverride() string {
	return strings.TrimSpace(p.v.GetString("dev_server.port"))
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	dir := ConfigDir()
	return os.MkdirAll(dir, 0755)
}
