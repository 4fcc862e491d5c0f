package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/aishwary11/portfolio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupSQLiteTest creates a fresh database in a temp dir.
func setupSQLiteTest(t *testing.T) *SQLiteStorage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "browser_storage.db")
	storage, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err, "Failed to initialize SQLiteStorage")
	t.Cleanup(func() {
		assert.NoError(t, storage.Close())
	})
	return storage
}

func TestSQLiteStorage_SetGet(t *testing.T) {
	storage := setupSQLiteTest(t)
	ctx := context.Background()
	when := time.Now().Truncate(time.Second)

	rec := &portfolio.Record{BrowserID: "browser-1", Key: portfolio.ThemeKey, Value: `"light"`, UpdatedAt: when}
	require.NoError(t, storage.Set(ctx, rec))

	got, err := storage.Get(ctx, "browser-1", portfolio.ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, "browser-1", got.BrowserID)
	assert.Equal(t, portfolio.ThemeKey, got.Key)
	assert.Equal(t, `"light"`, got.Value)
	assert.Equal(t, when.Unix(), got.UpdatedAt.Unix())

	t.Run("upsert", func(t *testing.T) {
		later := when.Add(time.Minute)
		require.NoError(t, storage.Set(ctx, &portfolio.Record{BrowserID: "browser-1", Key: portfolio.ThemeKey, Value: `"dark"`, UpdatedAt: later}))

		got, err := storage.Get(ctx, "browser-1", portfolio.ThemeKey)
		require.NoError(t, err)
		assert.Equal(t, `"dark"`, got.Value)
		assert.Equal(t, later.Unix(), got.UpdatedAt.Unix())
	})

	t.Run("zero_updated_at_is_filled", func(t *testing.T) {
		require.NoError(t, storage.Set(ctx, &portfolio.Record{BrowserID: "browser-1", Key: "layout", Value: `{}`}))
		got, err := storage.Get(ctx, "browser-1", "layout")
		require.NoError(t, err)
		assert.False(t, got.UpdatedAt.IsZero())
	})
}

func TestSQLiteStorage_NotFound(t *testing.T) {
	storage := setupSQLiteTest(t)
	ctx := context.Background()

	_, err := storage.Get(ctx, "browser-1", "missing")
	assert.True(t, errors.Is(err, portfolio.ErrNotFound))

	err = storage.Delete(ctx, "browser-1", "missing")
	assert.True(t, errors.Is(err, portfolio.ErrNotFound))
}

func TestSQLiteStorage_DeleteAndGetAll(t *testing.T) {
	storage := setupSQLiteTest(t)
	ctx := context.Background()

	for _, rec := range []*portfolio.Record{
		{BrowserID: "browser-1", Key: "a", Value: `1`},
		{BrowserID: "browser-1", Key: "b", Value: `2`},
		{BrowserID: "browser-2", Key: "a", Value: `3`},
	} {
		require.NoError(t, storage.Set(ctx, rec))
	}

	all, err := storage.GetAll(ctx, "browser-1")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, `1`, all["a"].Value)
	assert.Equal(t, `2`, all["b"].Value)

	require.NoError(t, storage.Delete(ctx, "browser-1", "a"))
	all, err = storage.GetAll(ctx, "browser-1")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	other, err := storage.GetAll(ctx, "browser-2")
	require.NoError(t, err)
	assert.Equal(t, `3`, other["a"].Value)

	none, err := storage.GetAll(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSQLiteStorage_Persistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "persist.db")
	ctx := context.Background()

	first, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, &portfolio.Record{BrowserID: "browser-1", Key: portfolio.ThemeKey, Value: `"light"`}))
	require.NoError(t, first.Close())

	second, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.Get(ctx, "browser-1", portfolio.ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, `"light"`, got.Value)
}

func TestNewSQLiteStorage_BadPath(t *testing.T) {
	_, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "missing", "dir", "x.db"))
	assert.Error(t, err)
}
