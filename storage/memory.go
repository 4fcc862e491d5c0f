package storage

import (
	"context"
	"sync"
	"time"

	"github.com/aishwary11/portfolio"
)

// MemoryStorage implements the Storage interface using an in-memory map.
// Values survive for the life of the process only.
type MemoryStorage struct {
	mu    sync.RWMutex
	items map[string]map[string]*portfolio.Record // browserID -> key -> Record
}

// NewMemoryStorage creates a new instance of MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		items: make(map[string]map[string]*portfolio.Record),
	}
}

// Get returns portfolio.ErrNotFound if the key does not exist.
func (s *MemoryStorage) Get(_ context.Context, browserID, key string) (*portfolio.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs, ok := s.items[browserID]
	if !ok {
		return nil, portfolio.ErrNotFound
	}
	rec, ok := recs[key]
	if !ok {
		return nil, portfolio.ErrNotFound
	}

	recCopy := *rec
	return &recCopy, nil
}

// Set stores a copy of rec with UpdatedAt set to now.
func (s *MemoryStorage) Set(_ context.Context, rec *portfolio.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[rec.BrowserID]; !ok {
		s.items[rec.BrowserID] = make(map[string]*portfolio.Record)
	}

	recToStore := *rec
	recToStore.UpdatedAt = time.Now()
	s.items[rec.BrowserID][rec.Key] = &recToStore
	return nil
}

// Delete returns portfolio.ErrNotFound if the key does not exist.
func (s *MemoryStorage) Delete(_ context.Context, browserID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, ok := s.items[browserID]
	if !ok {
		return portfolio.ErrNotFound
	}
	if _, ok := recs[key]; !ok {
		return portfolio.ErrNotFound
	}

	delete(recs, key)
	if len(recs) == 0 {
		delete(s.items, browserID)
	}
	return nil
}

// GetAll returns copies of every record of the browser.
func (s *MemoryStorage) GetAll(_ context.Context, browserID string) (map[string]*portfolio.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := s.items[browserID]
	out := make(map[string]*portfolio.Record, len(recs))
	for k, v := range recs {
		valCopy := *v
		out[k] = &valCopy
	}
	return out, nil
}

// Close is a no-op.
func (s *MemoryStorage) Close() error {
	return nil
}
