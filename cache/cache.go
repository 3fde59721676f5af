// Package cache persists translation records in a single-table SQLite
// store so each unique literal is sent to the translation service at most
// once across runs. The store is append-only: rows are inserted after a
// confirmed lookup miss and are never updated or deleted.
package cache

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Record maps language codes to the translated string for one literal.
// A record is created once, at first translation, and never mutated.
type Record map[string]string

const schema = `
CREATE TABLE IF NOT EXISTS translations (
	k TEXT PRIMARY KEY,
	v TEXT NOT NULL
);`

// Store is a handle to the translation cache. It is opened once per run
// and accessed from a single control flow; no locking discipline applies.
type Store struct {
	db *sqlx.DB
}

// Open opens (creating if absent) the cache database at path and ensures
// the translations table exists. Schema creation is idempotent.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating translations table: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Lookup returns the record stored for key. ok is false when the key has
// never been translated.
func (s *Store) Lookup(key string) (Record, bool, error) {
	var raw string
	err := s.db.Get(&raw, `SELECT v FROM translations WHERE k = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache lookup %q: %w", key, err)
	}
	var rec Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, false, fmt.Errorf("cache row %q holds invalid JSON: %w", key, err)
	}
	return rec, true, nil
}

// Insert writes a new row for key. Inserting an existing key violates the
// primary-key constraint and returns an error; callers must only insert
// after a confirmed Lookup miss.
func (s *Store) Insert(key string, rec Record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("serializing record for %q: %w", key, err)
	}
	if _, err := s.db.Exec(`INSERT INTO translations (k, v) VALUES (?, ?)`, key, string(raw)); err != nil {
		return fmt.Errorf("cache insert %q: %w", key, err)
	}
	return nil
}

// Count returns the number of cached rows, for the run summary.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.Get(&n, `SELECT COUNT(*) FROM translations`); err != nil {
		return 0, fmt.Errorf("cache count: %w", err)
	}
	return n, nil
}
