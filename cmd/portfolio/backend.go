package main

import (
	"fmt"
	"io"

	"github.com/aishwary11/portfolio"
	"github.com/aishwary11/portfolio/cache"
	"github.com/aishwary11/portfolio/config"
	"github.com/aishwary11/portfolio/encryption"
	"github.com/aishwary11/portfolio/storage"
)

func newLogger(w io.Writer, cfg config.LogConfig) (portfolio.Logger, error) {
	level, err := portfolio.ParseLogLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	return portfolio.NewLogger(w, cfg.Format, level), nil
}

func newStorage(cfg config.StorageConfig) (portfolio.Storage, error) {
	switch cfg.Type {
	case "memory":
		return storage.NewMemoryStorage(), nil
	case "sqlite":
		s, err := storage.NewSQLiteStorage(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "postgres":
		s, err := storage.NewPostgresStorage(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
	}
}

// newCache returns nil for the "none" cache type.
func newCache(cfg config.CacheConfig) (portfolio.Cache, error) {
	switch cfg.Type {
	case "none":
		return nil, nil
	case "memory":
		return cache.NewMemoryCache(), nil
	case "redis":
		c, err := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown cache type %q", cfg.Type)
	}
}

// newSealer returns nil when no cookie key is configured.
func newSealer(cfg config.CookieConfig) (*encryption.Sealer, error) {
	if cfg.Key == "" {
		return nil, nil
	}
	return encryption.NewSealer([]byte(cfg.Key))
}

// newStore opens the configured storage and cache.
func newStore(cfg *config.Config, logger portfolio.Logger) (*portfolio.Store, error) {
	backend, err := newStorage(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("opening storage: %w", err)
	}

	opts := []portfolio.Option{
		portfolio.WithStorage(backend),
		portfolio.WithCacheTTL(cfg.Cache.TTL),
		portfolio.WithLogger(logger),
	}

	c, err := newCache(cfg.Cache)
	if err != nil {
		_ = backend.Close()
		return nil, fmt.Errorf("opening cache: %w", err)
	}
	if c != nil {
		opts = append(opts, portfolio.WithCache(c))
	}

	return portfolio.New(opts...), nil
}
