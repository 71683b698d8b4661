package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var defaults = map[string]any{
	"server.addr":             ":8080",
	"server.read_timeout":     15 * time.Second,
	"server.write_timeout":    15 * time.Second,
	"server.idle_timeout":     60 * time.Second,
	"server.shutdown_timeout": 10 * time.Second,

	"upstream.base_url": "https://fakestoreapi.com",
	"upstream.timeout":  10 * time.Second,

	"catalog.source": SourceUpstream,

	"cache.redis_addr":     "",
	"cache.redis_password": "",
	"cache.redis_db":       0,
	"cache.ttl":            5 * time.Minute,

	"database.host":            "localhost",
	"database.port":            5432,
	"database.name":            "storefront",
	"database.user":            "storefront",
	"database.password":        "",
	"database.sslmode":         "disable",
	"database.max_connections": 10,
	"database.max_idle":        5,

	"accounts.store": StoreMemory,

	"contact.submit_delay": 1500 * time.Millisecond,

	"logging.level":  "info",
	"logging.format": "console",
}

// Load reads configuration from an optional .env file, an optional config.yaml and the
// environment, in increasing order of precedence. SERVER_ADDR overrides server.addr, and so on.
func Load() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")
	if path := os.Getenv("STOREFRONT_CONFIG"); path != "" {
		v.SetConfigFile(path)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadEnvFile() {
	for _, path := range []string{".env", "../.env"} {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Upstream.BaseURL == "" {
		return errors.New("upstream.base_url is required")
	}
	switch cfg.Catalog.Source {
	case SourceUpstream, SourceDatabase:
	default:
		return fmt.Errorf("catalog.source must be %q or %q, got %q", SourceUpstream, SourceDatabase, cfg.Catalog.Source)
	}
	switch cfg.Accounts.Store {
	case StoreMemory:
	case StoreRedis:
		if !cfg.Cache.Enabled() {
			return errors.New("accounts.store=redis requires cache.redis_addr")
		}
	default:
		return fmt.Errorf("accounts.store must be %q or %q, got %q", StoreMemory, StoreRedis, cfg.Accounts.Store)
	}
	if cfg.Cache.Enabled() && cfg.Cache.TTL <= 0 {
		return errors.New("cache.ttl must be positive")
	}
	if cfg.Contact.SubmitDelay < 0 {
		return errors.New("contact.submit_delay must not be negative")
	}
	return nil
}
