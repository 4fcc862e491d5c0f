package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/aishwary11/portfolio"
)

// sqlOpenFunc is a package-level variable that can be overridden for testing.
var sqlOpenFunc = sql.Open

const (
	createTableSQL = `
		CREATE TABLE IF NOT EXISTS browser_storage (
			browser_id TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (browser_id, key)
		);
	`

	insertSQL = `
		INSERT INTO browser_storage (browser_id, key, value, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (browser_id, key)
		DO UPDATE SET value = $3, updated_at = $4
	`

	selectSQL = `
		SELECT browser_id, key, value, updated_at
		FROM browser_storage
		WHERE browser_id = $1 AND key = $2
	`

	selectAllSQL = `
		SELECT browser_id, key, value, updated_at
		FROM browser_storage
		WHERE browser_id = $1
	`

	deleteSQL = `
		DELETE FROM browser_storage
		WHERE browser_id = $1 AND key = $2
	`
)

// PostgresStorage implements the Storage interface using PostgreSQL.
type PostgresStorage struct {
	db *sql.DB
}

// NewPostgresStorage connects using connString and runs migrations.
func NewPostgresStorage(connString string) (*PostgresStorage, error) {
	db, err := sqlOpenFunc("postgres", connString)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: failed to ping database: %w", err)
	}

	storage := &PostgresStorage{db: db}
	if err := storage.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: failed to run migrations: %w", err)
	}

	return storage, nil
}

func (s *PostgresStorage) migrate() error {
	_, err := s.db.Exec(createTableSQL)
	return err
}

// Get returns portfolio.ErrNotFound if the key does not exist.
func (s *PostgresStorage) Get(ctx context.Context, browserID, key string) (*portfolio.Record, error) {
	var rec portfolio.Record
	err := s.db.QueryRowContext(ctx, selectSQL, browserID, key).Scan(
		&rec.BrowserID,
		&rec.Key,
		&rec.Value,
		&rec.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, portfolio.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to get item: %w", err)
	}
	return &rec, nil
}

// Set inserts or replaces the record.
func (s *PostgresStorage) Set(ctx context.Context, rec *portfolio.Record) error {
	updatedAt := rec.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	if _, err := s.db.ExecContext(ctx, insertSQL, rec.BrowserID, rec.Key, rec.Value, updatedAt); err != nil {
		return fmt.Errorf("postgres: failed to set item: %w", err)
	}
	return nil
}

// GetAll returns every record of the browser.
func (s *PostgresStorage) GetAll(ctx context.Context, browserID string) (map[string]*portfolio.Record, error) {
	rows, err := s.db.QueryContext(ctx, selectAllSQL, browserID)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query items: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Delete returns portfolio.ErrNotFound if the key does not exist.
func (s *PostgresStorage) Delete(ctx context.Context, browserID, key string) error {
	result, err := s.db.ExecContext(ctx, deleteSQL, browserID, key)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete item: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("postgres: failed to get affected rows: %w", err)
	}
	if n == 0 {
		return portfolio.ErrNotFound
	}
	return nil
}

// Close closes the database connection.
func (s *PostgresStorage) Close() error {
	return s.db.Close()
}
