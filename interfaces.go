package portfolio

import (
	"context"
	"time"
)

// Storage is a durable key/value medium partitioned by browser.
// Get returns ErrNotFound when the browser has no value for key.
type Storage interface {
	Get(ctx context.Context, browserID, key string) (*Record, error)
	Set(ctx context.Context, rec *Record) error
	Delete(ctx context.Context, browserID, key string) error
	GetAll(ctx context.Context, browserID string) (map[string]*Record, error)
	Close() error
}

// Cache defines the methods required for a caching backend.
type Cache interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
