package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fadedpez/onexrace/pkg/db/migrations"
	"github.com/fadedpez/onexrace/pkg/storage"
	_ "github.com/mattn/go-sqlite3"
)

const upsertSQL = `
	INSERT INTO settings (key, value, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET
		value = excluded.value,
		updated_at = excluded.updated_at
`

// Store implements storage.KeyValueStore on a SQLite settings table
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at dbPath and applies migrations
func Open(dbPath string) (*Store, error) {
	// Ensure directory exists
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := migrations.NewMigrator(db).MigrateUp(); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Get returns the value for key
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrKeyNotFound
		}
		return nil, fmt.Errorf("error getting %s: %w", key, err)
	}
	return []byte(value), nil
}

// Set creates or replaces the value for key
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, upsertSQL, key, string(value), now())
	if err != nil {
		return fmt.Errorf("error setting %s: %w", key, err)
	}
	return nil
}

// SetMany writes all entries in one transaction
func (s *Store) SetMany(ctx context.Context, entries map[string][]byte) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertSQL)
	if err != nil {
		return fmt.Errorf("error preparing upsert: %w", err)
	}
	defer stmt.Close()

	ts := now()
	for key, value := range entries {
		if _, err := stmt.ExecContext(ctx, key, string(value), ts); err != nil {
			return fmt.Errorf("error setting %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing settings: %w", err)
	}
	return nil
}

// Delete removes key
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key); err != nil {
		return fmt.Errorf("error deleting %s: %w", key, err)
	}
	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// now uses the SQLite default timestamp format
func now() string {
	return time.Now().UTC().Format("2006-01-02 15:04:05")
}
