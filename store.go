package portfolio

import (
	"errors"
	"time"
)

// DefaultCacheTTL is how long a cached item stays valid when WithCacheTTL is not given.
const DefaultCacheTTL = 24 * time.Hour

// Config holds the internal configuration for a Store instance.
// It is populated by applying functional Options when a Store is created with New.
type Config struct {
	storage  Storage
	cache    Cache
	cacheTTL time.Duration
	logger   Logger
}

// Option configures a Store.
type Option func(*Config)

// WithStorage sets the durable medium. A Store without storage degrades every
// read and write to ErrStorageUnavailable.
func WithStorage(s Storage) Option {
	return func(c *Config) {
		c.storage = s
	}
}

// WithCache puts a read-through cache in front of the storage.
func WithCache(cache Cache) Option {
	return func(c *Config) {
		c.cache = cache
	}
}

// WithCacheTTL sets the lifetime of cached items.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Config) {
		c.cacheTTL = ttl
	}
}

// WithLogger sets the logger used by the store and the preferences bound to it.
func WithLogger(l Logger) Option {
	return func(c *Config) {
		c.logger = l
	}
}

// Store hands out browser-scoped LocalStores over a shared storage and cache.
type Store struct {
	config *Config
}

// New creates a Store from the given options.
func New(opts ...Option) *Store {
	cfg := &Config{
		cacheTTL: DefaultCacheTTL,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = NewDefaultLogger()
	}

	return &Store{config: cfg}
}

// Local returns the local store of one browser.
func (s *Store) Local(browserID string) (*LocalStore, error) {
	if browserID == "" {
		return nil, ErrInvalidInput
	}
	return &LocalStore{browserID: browserID, config: s.config}, nil
}

// Logger returns the configured logger.
func (s *Store) Logger() Logger {
	return s.config.logger
}

// Close releases the cache and the storage.
func (s *Store) Close() error {
	var errs []error
	if s.config.cache != nil {
		errs = append(errs, s.config.cache.Close())
	}
	if s.config.storage != nil {
		errs = append(errs, s.config.storage.Close())
	}
	return errors.Join(errs...)
}
