package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultSessionTTL is how long a session stays valid without being expired explicitly.
	DefaultSessionTTL = 30 * time.Minute

	// DefaultCacheExpiration is the default lifetime of cache entries.
	DefaultCacheExpiration = 10 * time.Minute

	// DefaultCacheCleanupInterval is how often expired cache entries are purged.
	DefaultCacheCleanupInterval = 30 * time.Minute

	// DefaultBatchConcurrency bounds concurrent order processing.
	DefaultBatchConcurrency = 4
)

// Config holds all configuration for patternkit.
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Session SessionConfig `mapstructure:"session"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Orders  OrdersConfig  `mapstructure:"orders"`
	LogSink LogSinkConfig `mapstructure:"logsink"`
	Logging LoggingConfig `mapstructure:"logging"`
	API     APIConfig     `mapstructure:"api"`
}

// APIConfig holds HTTP API server settings.
type APIConfig struct {
	ListenAddr string `mapstructure:"listen_addr"`
	AuthToken  string `mapstructure:"auth_token"`
}

// String returns a safe representation of APIConfig with the token masked.
func (c APIConfig) String() string {
	return fmt.Sprintf("APIConfig{ListenAddr:%s, AuthToken:%s}", c.ListenAddr, maskSecret(c.AuthToken))
}

// maskSecret shows first 4 + last 4 chars, replacing the middle with asterisks.
func maskSecret(s string) string {
	const visible = 4
	if len(s) <= visible*2 {
		return "***"
	}
	return s[:visible] + "****" + s[len(s)-visible:]
}

// CatalogConfig controls how the prototype catalog is populated.
type CatalogConfig struct {
	SeedFile     string `mapstructure:"seed_file"`     // optional YAML file with extra prototypes
	SkipDefaults bool   `mapstructure:"skip_defaults"` // start from empty registries
}

// SessionConfig holds session manager settings.
type SessionConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// CacheConfig holds cache manager settings.
type CacheConfig struct {
	Expiration      time.Duration `mapstructure:"expiration"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// OrdersConfig holds order facade settings.
type OrdersConfig struct {
	BatchConcurrency int `mapstructure:"batch_concurrency"`
}

// LogSinkConfig holds the append-only text log settings.
type LogSinkConfig struct {
	Path string `mapstructure:"path"` // empty disables the file sink
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("catalog.seed_file", "")
	v.SetDefault("catalog.skip_defaults", false)

	v.SetDefault("session.ttl", DefaultSessionTTL)

	v.SetDefault("cache.expiration", DefaultCacheExpiration)
	v.SetDefault("cache.cleanup_interval", DefaultCacheCleanupInterval)

	v.SetDefault("orders.batch_concurrency", DefaultBatchConcurrency)

	v.SetDefault("logsink.path", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetDefault("api.listen_addr", ":8080")
	v.SetDefault("api.auth_token", "")

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(homeDir(), ".patternkit"))
	v.AddConfigPath(".")

	// Environment variables
	v.SetEnvPrefix("PATTERNKIT")
	v.AutomaticEnv()

	// Map specific env vars
	_ = v.BindEnv("catalog.seed_file", "PATTERNKIT_CATALOG_SEED_FILE")
	_ = v.BindEnv("logsink.path", "PATTERNKIT_LOGSINK_PATH")
	_ = v.BindEnv("api.listen_addr", "PATTERNKIT_API_LISTEN_ADDR")
	_ = v.BindEnv("api.auth_token", "PATTERNKIT_API_AUTH_TOKEN")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is OK: use defaults + env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that required configuration fields are set and consistent.
func (c *Config) Validate() error {
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be greater than 0")
	}
	if c.Cache.Expiration <= 0 {
		return fmt.Errorf("cache.expiration must be greater than 0")
	}
	if c.Cache.CleanupInterval <= 0 {
		return fmt.Errorf("cache.cleanup_interval must be greater than 0")
	}
	if c.Orders.BatchConcurrency <= 0 {
		return fmt.Errorf("orders.batch_concurrency must be greater than 0")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format %q must be text or json", c.Logging.Format)
	}
	if c.API.ListenAddr == "" {
		return fmt.Errorf("api.listen_addr must not be empty")
	}
	return nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
