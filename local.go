package portfolio

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ItemStore is the string key/value surface a Pref persists through.
// GetItem returns ErrNotFound for a missing key.
type ItemStore interface {
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key, value string) error
}

// LocalStore is the durable store of one browser. Reads go through the cache
// when one is configured; writes go to storage first and then refresh the cache.
type LocalStore struct {
	browserID string
	config    *Config
}

// BrowserID returns the browser this store is scoped to.
func (l *LocalStore) BrowserID() string {
	return l.browserID
}

// Logger returns the logger of the owning Store.
func (l *LocalStore) Logger() Logger {
	return l.config.logger
}

// GetItem returns the serialized value stored under key.
func (l *LocalStore) GetItem(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrInvalidKey
	}

	if l.config.cache != nil {
		if v, err := l.config.cache.Get(ctx, l.cacheKey(key)); err == nil {
			if s, ok := v.(string); ok {
				return s, nil
			}
		}
	}

	if l.config.storage == nil {
		return "", ErrStorageUnavailable
	}

	rec, err := l.config.storage.Get(ctx, l.browserID, key)
	if err != nil {
		return "", err
	}

	l.setToCache(ctx, key, rec.Value)
	return rec.Value, nil
}

// SetItem stores value under key.
func (l *LocalStore) SetItem(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrInvalidKey
	}
	if l.config.storage == nil {
		return ErrStorageUnavailable
	}

	rec := &Record{
		BrowserID: l.browserID,
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	if err := l.config.storage.Set(ctx, rec); err != nil {
		return err
	}

	l.setToCache(ctx, key, value)
	return nil
}

// RemoveItem deletes key. Removing a missing key is not an error.
func (l *LocalStore) RemoveItem(ctx context.Context, key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	if l.config.storage == nil {
		return ErrStorageUnavailable
	}

	if err := l.config.storage.Delete(ctx, l.browserID, key); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}

	if l.config.cache != nil {
		if err := l.config.cache.Delete(ctx, l.cacheKey(key)); err != nil {
			l.config.logger.Error("Failed to delete item from cache", "key", key, "error", err)
		}
	}
	return nil
}

// Items returns every stored key and serialized value of the browser.
func (l *LocalStore) Items(ctx context.Context) (map[string]string, error) {
	if l.config.storage == nil {
		return nil, ErrStorageUnavailable
	}

	recs, err := l.config.storage.GetAll(ctx, l.browserID)
	if err != nil {
		return nil, err
	}

	items := make(map[string]string, len(recs))
	for k, rec := range recs {
		items[k] = rec.Value
	}
	return items, nil
}

func (l *LocalStore) cacheKey(key string) string {
	return fmt.Sprintf("pref:%s:%s", l.browserID, key)
}

func (l *LocalStore) setToCache(ctx context.Context, key, value string) {
	if l.config.cache == nil {
		return
	}
	if err := l.config.cache.Set(ctx, l.cacheKey(key), value, l.config.cacheTTL); err != nil {
		l.config.logger.Error("Failed to cache item", "key", key, "error", err)
	}
}
