// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache memoizes registry responses on disk so repeated
// bibliography builds do not re-query the CRISTIN APIs. The pipeline
// never depends on this layer; it decorates the fetch collaborator and
// can be dropped without touching the core.
package cache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	_ "github.com/mattn/go-sqlite3"
)

const defaultDBFile = "pubgrab/cache.db"

// DefaultPath returns the cache database location under the user cache
// directory.
func DefaultPath() (string, error) {
	return xdg.CacheFile(defaultDBFile)
}

// Store is a SQLite-backed key-value cache. Entries are keyed by the
// operation name plus its serialized arguments, so distinct lookups never
// collide.
type Store struct {
	db *sql.DB
}

// Open opens or creates the cache database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS entries (
		op      TEXT NOT NULL,
		key     TEXT NOT NULL,
		value   BLOB NOT NULL,
		created TEXT NOT NULL,
		PRIMARY KEY (op, key)
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the cached value for (op, key). ok is false on a miss.
func (s *Store) Get(op, key string) (value []byte, ok bool, err error) {
	row := s.db.QueryRow(`SELECT value FROM entries WHERE op = ? AND key = ?`, op, key)
	switch err := row.Scan(&value); err {
	case nil:
		return value, true, nil
	case sql.ErrNoRows:
		return nil, false, nil
	default:
		return nil, false, fmt.Errorf("reading cache entry: %w", err)
	}
}

// Put stores or replaces the value for (op, key).
func (s *Store) Put(op, key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO entries (op, key, value, created) VALUES (?, ?, ?, ?)`,
		op, key, value, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}
	return nil
}

// Clear removes all cached entries.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM entries`); err != nil {
		return fmt.Errorf("clearing cache: %w", err)
	}
	return nil
}

// Len returns the number of cached entries.
func (s *Store) Len() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting cache entries: %w", err)
	}
	return n, nil
}
