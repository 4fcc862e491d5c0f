package portfolio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// Pref is one preference bound to an ItemStore.
//
// A Pref is created with its default value and never touches the store until
// Sync is called, so the first render is the same whether or not a value was
// persisted. Sync reads the store at most once; after it, every change is
// written back. Store faults and panicking update funcs are logged and never
// surface to the caller. A Pref is safe for concurrent use: writes to the
// store are serialized and always carry the latest in-memory value.
type Pref[T any] struct {
	mu           sync.Mutex
	writeMu      sync.Mutex // held across store writes; taken before mu
	items        ItemStore
	key          string
	value        T
	defaultValue T
	synced       bool
	logger       Logger
	onChange     []func(T)
}

// PrefOption configures a Pref.
type PrefOption func(*prefConfig)

type prefConfig struct {
	logger Logger
}

// WithPrefLogger overrides the logger a Pref reports storage faults to.
func WithPrefLogger(l Logger) PrefOption {
	return func(c *prefConfig) {
		c.logger = l
	}
}

// Validator is implemented by values that can reject a decoded payload.
// Sync treats a stored value whose Validate fails as malformed.
type Validator interface {
	Validate() error
}

// Use creates a Pref for key holding defaultValue.
func Use[T any](items ItemStore, key string, defaultValue T, opts ...PrefOption) *Pref[T] {
	var cfg prefConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		if lp, ok := items.(interface{ Logger() Logger }); ok {
			cfg.logger = lp.Logger()
		} else {
			cfg.logger = NewDefaultLogger()
		}
	}

	return &Pref[T]{
		items:        items,
		key:          key,
		value:        defaultValue,
		defaultValue: defaultValue,
		logger:       cfg.logger,
	}
}

// Key returns the storage key.
func (p *Pref[T]) Key() string {
	return p.key
}

// Default returns the value the Pref was created with.
func (p *Pref[T]) Default() T {
	return p.defaultValue
}

// Value returns the current in-memory value.
func (p *Pref[T]) Value() T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value
}

// IsSynced reports whether the durable read has completed.
func (p *Pref[T]) IsSynced() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.synced
}

// Read returns the current value and its setter.
func (p *Pref[T]) Read() (T, func(context.Context, T)) {
	return p.Value(), p.Set
}

// OnChange registers fn to run whenever Sync or a setter changes the value.
// Callbacks run outside the Pref lock.
func (p *Pref[T]) OnChange(fn func(T)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onChange = append(p.onChange, fn)
}

// Sync reconciles the in-memory value with the store. Only the first call
// reads; later calls return false without touching the store. It reports
// whether the value changed, i.e. whether the caller must render again.
//
// A stored, well-formed value replaces the in-memory one. A missing, empty or
// malformed value keeps the current one and writes it back. A failed read keeps
// the current value and leaves the store alone.
func (p *Pref[T]) Sync(ctx context.Context) bool {
	p.writeMu.Lock()
	p.mu.Lock()
	if p.synced {
		p.mu.Unlock()
		p.writeMu.Unlock()
		return false
	}
	p.synced = true
	before := p.value

	writeBack := false
	raw, err := p.items.GetItem(ctx, p.key)
	switch {
	case err == nil && raw != "":
		v, derr := p.decode(raw)
		if derr != nil {
			p.logger.Warn("Error reading stored preference", "key", p.key, "error", derr)
			writeBack = true
		} else {
			p.value = v
		}
	case err == nil, errors.Is(err, ErrNotFound):
		writeBack = true
	default:
		p.logger.Warn("Error reading stored preference", "key", p.key, "error", err)
	}

	after := p.value
	listeners := p.listeners()
	p.mu.Unlock()

	if writeBack {
		p.persist(ctx)
	}
	p.writeMu.Unlock()

	changed := !reflect.DeepEqual(before, after)
	if changed {
		notify(listeners, after)
	}
	return changed
}

// Set replaces the value. Once synced, the new value is also persisted.
func (p *Pref[T]) Set(ctx context.Context, value T) {
	p.Update(ctx, func(T) T { return value })
}

// Update replaces the value with fn applied to the current one. If fn panics
// the value is left unchanged.
func (p *Pref[T]) Update(ctx context.Context, fn func(T) T) {
	p.mu.Lock()
	before := p.value
	after, ok := p.apply(fn, before)
	if !ok {
		p.mu.Unlock()
		return
	}
	p.value = after
	synced := p.synced
	listeners := p.listeners()
	p.mu.Unlock()

	if synced {
		p.writeMu.Lock()
		p.persist(ctx)
		p.writeMu.Unlock()
	}
	if !reflect.DeepEqual(before, after) {
		notify(listeners, after)
	}
}

func (p *Pref[T]) apply(fn func(T) T, v T) (out T, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warn("Error setting preference", "key", p.key, "error", fmt.Sprint(r))
			out, ok = v, false
		}
	}()
	return fn(v), true
}

func (p *Pref[T]) decode(raw string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return v, err
	}
	if val, ok := any(v).(Validator); ok {
		if err := val.Validate(); err != nil {
			return v, err
		}
	}
	return v, nil
}

// persist writes the current value. Callers hold writeMu.
func (p *Pref[T]) persist(ctx context.Context) {
	p.mu.Lock()
	value := p.value
	p.mu.Unlock()

	data, err := json.Marshal(value)
	if err != nil {
		p.logger.Warn("Error serializing preference", "key", p.key, "error", err)
		return
	}
	if err := p.items.SetItem(ctx, p.key, string(data)); err != nil {
		p.logger.Warn("Error writing stored preference", "key", p.key, "error", err)
	}
}

func (p *Pref[T]) listeners() []func(T) {
	if len(p.onChange) == 0 {
		return nil
	}
	out := make([]func(T), len(p.onChange))
	copy(out, p.onChange)
	return out
}

func notify[T any](fns []func(T), v T) {
	for _, fn := range fns {
		fn(v)
	}
}

// UseTheme creates the theme preference.
func UseTheme(items ItemStore, defaultTheme Theme, opts ...PrefOption) *Pref[Theme] {
	return Use(items, ThemeKey, defaultTheme, opts...)
}

// ToggleTheme flips the theme held by p and returns the new value.
func ToggleTheme(ctx context.Context, p *Pref[Theme]) Theme {
	p.Update(ctx, Theme.Toggle)
	return p.Value()
}
