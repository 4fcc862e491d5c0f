// Package config loads the portfolio server configuration from a TOML file
// with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/aishwary11/portfolio"
)

// EnvPrefix prefixes every environment override, e.g. PORTFOLIO_SERVER_LISTEN_ADDRESS.
const EnvPrefix = "PORTFOLIO_"

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig  `toml:"server" envPrefix:"SERVER_"`
	Storage StorageConfig `toml:"storage" envPrefix:"STORAGE_"`
	Cache   CacheConfig   `toml:"cache" envPrefix:"CACHE_"`
	Log     LogConfig     `toml:"log" envPrefix:"LOG_"`
	Theme   ThemeConfig   `toml:"theme" envPrefix:"THEME_"`
	Cookie  CookieConfig  `toml:"cookie" envPrefix:"COOKIE_"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	ListenAddress   string        `toml:"listen_address" env:"LISTEN_ADDRESS"`
	ReadTimeout     time.Duration `toml:"read_timeout" env:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `toml:"write_timeout" env:"WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `toml:"idle_timeout" env:"IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
}

// StorageConfig selects the durable medium.
type StorageConfig struct {
	Type        string `toml:"type" env:"TYPE"` // memory, sqlite or postgres
	SQLitePath  string `toml:"sqlite_path" env:"SQLITE_PATH"`
	PostgresDSN string `toml:"postgres_dsn" env:"POSTGRES_DSN"`
}

// CacheConfig selects the read-through cache.
type CacheConfig struct {
	Type          string        `toml:"type" env:"TYPE"` // none, memory or redis
	TTL           time.Duration `toml:"ttl" env:"TTL"`
	RedisAddr     string        `toml:"redis_addr" env:"REDIS_ADDR"`
	RedisPassword string        `toml:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB       int           `toml:"redis_db" env:"REDIS_DB"`
}

type LogConfig struct {
	Level  string `toml:"level" env:"LEVEL"`
	Format string `toml:"format" env:"FORMAT"` // json or text
}

type ThemeConfig struct {
	Default string `toml:"default" env:"DEFAULT"`
}

// CookieConfig controls the browser identifier cookie. An empty Key leaves
// the cookie unsealed.
type CookieConfig struct {
	Name   string        `toml:"name" env:"NAME"`
	Key    string        `toml:"key" env:"KEY"`
	Secure bool          `toml:"secure" env:"SECURE"`
	MaxAge time.Duration `toml:"max_age" env:"MAX_AGE"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Server: ServerConfig{
			ListenAddress:   ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Storage: StorageConfig{
			Type:       "sqlite",
			SQLitePath: "portfolio.db",
		},
		Cache: CacheConfig{
			Type:      "memory",
			TTL:       24 * time.Hour,
			RedisAddr: "localhost:6379",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Theme: ThemeConfig{
			Default: "dark",
		},
		Cookie: CookieConfig{
			Name:   "portfolio_browser",
			MaxAge: 365 * 24 * time.Hour,
		},
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("parsing config file: %w", err)
			}
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that configuration values are within acceptable ranges.
func (c *Config) Validate() error {
	if c.Server.ListenAddress == "" {
		return errors.New("server.listen_address must not be empty")
	}

	switch c.Storage.Type {
	case "memory":
	case "sqlite":
		if c.Storage.SQLitePath == "" {
			return errors.New("storage.sqlite_path is required for sqlite storage")
		}
	case "postgres":
		if c.Storage.PostgresDSN == "" {
			return errors.New("storage.postgres_dsn is required for postgres storage")
		}
	default:
		return fmt.Errorf("invalid storage.type %q: must be memory, sqlite or postgres", c.Storage.Type)
	}

	switch c.Cache.Type {
	case "none", "memory":
	case "redis":
		if c.Cache.RedisAddr == "" {
			return errors.New("cache.redis_addr is required for redis cache")
		}
	default:
		return fmt.Errorf("invalid cache.type %q: must be none, memory or redis", c.Cache.Type)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("invalid cache.ttl %s: must not be negative", c.Cache.TTL)
	}

	switch c.Theme.Default {
	case "dark", "light":
	default:
		return fmt.Errorf("invalid theme.default %q: must be dark or light", c.Theme.Default)
	}

	if _, err := portfolio.ParseLogLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level: %w", err)
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log.format %q: must be json or text", c.Log.Format)
	}

	if c.Cookie.Name == "" {
		return errors.New("cookie.name must not be empty")
	}
	if c.Cookie.Key != "" && len(c.Cookie.Key) < 32 {
		return fmt.Errorf("cookie.key must be at least 32 bytes, got %d", len(c.Cookie.Key))
	}
	return nil
}

// Exists reports whether a config file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
