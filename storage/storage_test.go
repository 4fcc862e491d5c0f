package storage

import (
	"testing"
)

func TestStorageInterface(t *testing.T) {
	t.Name()
	var _ Storage = &SQLiteStorage{}
	var _ Storage = &PostgresStorage{}
	var _ Storage = NewMemoryStorage()
}
