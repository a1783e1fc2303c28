// Package store provides local persistence for the prompt library: a small
// key-value layer over sqlite, the two prompt collections, and the analytics
// sub-store.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

// Fixed keys, one per persisted collection.
const (
	KeyManualPrompts = "sports-betting-prompts"
	KeyAIPrompts     = "ai-generated-prompts"
	KeyAnalytics     = "prompt-analytics"
	KeyDarkMode      = "dark-mode"
	KeyAPIKey        = "openai-api-key"
)

// Store is a typed get/set wrapper over a sqlite-backed key-value table.
// Values are stored as JSON documents. Writes are serialized through a
// single mutex; sqlite runs with a single connection.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open creates the database file (and parent directory) if needed and
// prepares the kv table.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite doesn't handle concurrent writes well
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS kv (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get unmarshals the value stored under key into dest. It reports whether
// the key was present; an absent key leaves dest untouched.
func (s *Store) Get(ctx context.Context, key string, dest any) (bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read key %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("decode key %q: %w", key, err)
	}
	return true, nil
}

// Set persists value under key immediately, replacing any previous value.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode key %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, string(raw))
	if err != nil {
		return fmt.Errorf("write key %q: %w", key, err)
	}
	return nil
}

// DarkMode reports the persisted theme preference. Light is the default
// when no preference has been stored yet.
func (s *Store) DarkMode(ctx context.Context) (bool, error) {
	var dark bool
	if _, err := s.Get(ctx, KeyDarkMode, &dark); err != nil {
		return false, err
	}
	return dark, nil
}

// SetDarkMode persists the theme preference.
func (s *Store) SetDarkMode(ctx context.Context, dark bool) error {
	return s.Set(ctx, KeyDarkMode, dark)
}

// Delete removes a key. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete key %q: %w", key, err)
	}
	return nil
}
