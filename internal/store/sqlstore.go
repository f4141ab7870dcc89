package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// SQLStore keeps each key as a JSON blob in a MySQL kv table. It is the
// multi-device deployment of the same key-value contract FileStore
// implements locally.
type SQLStore struct {
	db *sql.DB
}

// NewSQLStore prepares the kv table and returns a store backed by db.
func NewSQLStore(db *sql.DB) (*SQLStore, error) {
	schema := `
		CREATE TABLE IF NOT EXISTS kv_entries (
			k VARCHAR(191) NOT NULL PRIMARY KEY,
			v JSON NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
				ON UPDATE CURRENT_TIMESTAMP
		)`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create kv table: %w", err)
	}
	return &SQLStore{db: db}, nil
}

// Read distinguishes a missing row (the caller's default applies) from
// a failing database. A transient MySQL error must surface: degrading
// it to "not found" would let the next Write replace a whole collection
// with defaults.
func (s *SQLStore) Read(key string, dest any) (bool, error) {
	var raw []byte
	err := s.db.QueryRow("SELECT v FROM kv_entries WHERE k = ?", key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		// Corrupted value: degrade to the default, like FileStore.
		return false, nil
	}
	return true, nil
}

func (s *SQLStore) Write(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}

	query := `
		INSERT INTO kv_entries (k, v) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE v = VALUES(v)`
	if _, err := s.db.Exec(query, key, raw); err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}
