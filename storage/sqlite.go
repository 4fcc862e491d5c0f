package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/aishwary11/portfolio"
)

const (
	sqliteCreateTableSQL = `
		CREATE TABLE IF NOT EXISTS browser_storage (
			browser_id TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (browser_id, key)
		);
	`

	sqliteInsertSQL = `
		INSERT INTO browser_storage (browser_id, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(browser_id, key)
		DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	sqliteSelectSQL = `
		SELECT browser_id, key, value, updated_at
		FROM browser_storage
		WHERE browser_id = ? AND key = ?
	`

	sqliteSelectAllSQL = `
		SELECT browser_id, key, value, updated_at
		FROM browser_storage
		WHERE browser_id = ?
	`

	sqliteDeleteSQL = `
		DELETE FROM browser_storage
		WHERE browser_id = ? AND key = ?
	`
)

// SQLiteStorage implements the Storage interface using SQLite.
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage opens the database at dbPath and runs migrations.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	storage := &SQLiteStorage{db: db}
	if err := storage.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return storage, nil
}

func (s *SQLiteStorage) migrate() error {
	_, err := s.db.Exec(sqliteCreateTableSQL)
	return err
}

// Get returns portfolio.ErrNotFound if the key does not exist.
func (s *SQLiteStorage) Get(ctx context.Context, browserID, key string) (*portfolio.Record, error) {
	var rec portfolio.Record
	err := s.db.QueryRowContext(ctx, sqliteSelectSQL, browserID, key).Scan(
		&rec.BrowserID,
		&rec.Key,
		&rec.Value,
		&rec.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, portfolio.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return &rec, nil
}

// Set inserts or replaces the record.
func (s *SQLiteStorage) Set(ctx context.Context, rec *portfolio.Record) error {
	updatedAt := rec.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, sqliteInsertSQL,
		rec.BrowserID,
		rec.Key,
		rec.Value,
		updatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to set item: %w", err)
	}
	return nil
}

// GetAll returns every record of the browser.
func (s *SQLiteStorage) GetAll(ctx context.Context, browserID string) (map[string]*portfolio.Record, error) {
	rows, err := s.db.QueryContext(ctx, sqliteSelectAllSQL, browserID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Delete returns portfolio.ErrNotFound if the key does not exist.
func (s *SQLiteStorage) Delete(ctx context.Context, browserID, key string) error {
	result, err := s.db.ExecContext(ctx, sqliteDeleteSQL, browserID, key)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return portfolio.ErrNotFound
	}
	return nil
}

// Close closes the SQLite database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// scanRecords is shared by the SQL backends.
func scanRecords(rows *sql.Rows) (map[string]*portfolio.Record, error) {
	recs := make(map[string]*portfolio.Record)

	for rows.Next() {
		var rec portfolio.Record
		if err := rows.Scan(&rec.BrowserID, &rec.Key, &rec.Value, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		recs[rec.Key] = &rec
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return recs, nil
}
