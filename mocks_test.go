package portfolio

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

var errQuotaExceeded = errors.New("quota exceeded")

// MockStorage implements the Storage interface for testing
type MockStorage struct {
	mu     sync.RWMutex
	data   map[string]map[string]*Record
	closed bool
	getErr error // returned by Get and GetAll when set
	setErr error // returned by Set when set
	gets   int
	sets   int
}

func NewMockStorage() *MockStorage {
	return &MockStorage{
		data: make(map[string]map[string]*Record),
	}
}

func (m *MockStorage) Get(ctx context.Context, browserID, key string) (*Record, error) {
	_, _ = ctx.Deadline()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++

	if m.closed {
		return nil, ErrStorageUnavailable
	}
	if m.getErr != nil {
		return nil, m.getErr
	}

	if recs, exists := m.data[browserID]; exists {
		if rec, exists := recs[key]; exists {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MockStorage) Set(ctx context.Context, rec *Record) error {
	_, _ = ctx.Deadline()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++

	if m.closed {
		return ErrStorageUnavailable
	}
	if m.setErr != nil {
		return m.setErr
	}

	if _, exists := m.data[rec.BrowserID]; !exists {
		m.data[rec.BrowserID] = make(map[string]*Record)
	}
	cp := *rec
	m.data[rec.BrowserID][rec.Key] = &cp
	return nil
}

func (m *MockStorage) Delete(ctx context.Context, browserID, key string) error {
	_, _ = ctx.Deadline()
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStorageUnavailable
	}

	if recs, exists := m.data[browserID]; exists {
		if _, exists := recs[key]; exists {
			delete(recs, key)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MockStorage) GetAll(ctx context.Context, browserID string) (map[string]*Record, error) {
	_, _ = ctx.Deadline()
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStorageUnavailable
	}
	if m.getErr != nil {
		return nil, m.getErr
	}

	out := make(map[string]*Record)
	for k, rec := range m.data[browserID] {
		cp := *rec
		out[k] = &cp
	}
	return out, nil
}

func (m *MockStorage) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// raw returns the stored text for browserID/key, or "" when absent.
func (m *MockStorage) raw(browserID, key string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if rec, ok := m.data[browserID][key]; ok {
		return rec.Value
	}
	return ""
}

func (m *MockStorage) put(browserID, key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.data[browserID]; !exists {
		m.data[browserID] = make(map[string]*Record)
	}
	m.data[browserID][key] = &Record{BrowserID: browserID, Key: key, Value: value, UpdatedAt: time.Now()}
}

func (m *MockStorage) counts() (gets, sets int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.gets, m.sets
}

// MockCache implements the Cache interface for testing
type MockCache struct {
	mu     sync.RWMutex
	data   map[string]interface{}
	closed bool
	setErr error
}

func NewMockCache() *MockCache {
	return &MockCache{
		data: make(map[string]interface{}),
	}
}

func (m *MockCache) Get(ctx context.Context, key string) (interface{}, error) {
	_, _ = ctx.Deadline()
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrCacheUnavailable
	}
	v, exists := m.data[key]
	if !exists {
		return nil, ErrNotFound
	}
	return v, nil
}

func (m *MockCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	_, _ = ctx.Deadline()
	_ = ttl

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrCacheUnavailable
	}
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	_, _ = ctx.Deadline()
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrCacheUnavailable
	}
	delete(m.data, key)
	return nil
}

func (m *MockCache) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// MockLogger implements the Logger interface for testing
type MockLogger struct {
	mu       sync.Mutex
	Messages []string
}

func (m *MockLogger) Debug(msg string, args ...interface{}) {
	m.record("DEBUG", msg, args...)
}

func (m *MockLogger) Info(msg string, args ...interface{}) {
	m.record("INFO", msg, args...)
}

func (m *MockLogger) Warn(msg string, args ...interface{}) {
	m.record("WARN", msg, args...)
}

func (m *MockLogger) Error(msg string, args ...any) {
	m.record("ERROR", msg, args...)
}

func (m *MockLogger) SetLevel(level LogLevel) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Messages = append(m.Messages, fmt.Sprintf("SET_LEVEL: %v", level))
}

func (m *MockLogger) record(level, msg string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Messages = append(m.Messages, formatMessage(level, msg, args...))
}

// count returns how many recorded messages start with the given level.
func (m *MockLogger) count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, msg := range m.Messages {
		if strings.HasPrefix(msg, level+":") {
			n++
		}
	}
	return n
}

func formatMessage(level, msg string, args ...interface{}) string {
	if len(args) > 0 {
		return fmt.Sprintf("%s: %s %v", level, msg, args)
	}
	return fmt.Sprintf("%s: %s", level, msg)
}
