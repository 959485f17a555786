package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"nathanbeddoewebdev/hue/internal/database"
)

// SQLiteSlot stores the blob as one row of a key-value table.
type SQLiteSlot struct {
	db  *sql.DB
	key string
}

// OpenSQLiteSlot opens (or creates) the database at path and returns the
// slot for key.
func OpenSQLiteSlot(path, key string) (*SQLiteSlot, error) {
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	s := &SQLiteSlot{db: db, key: key}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// migrate creates the kv table if it doesn't exist.
func (s *SQLiteSlot) migrate() error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS kv (
			key        TEXT PRIMARY KEY,
			value      BLOB NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		);
	`
	if _, err := s.db.Exec(ddl); err != nil {
		return fmt.Errorf("storage: migration failed: %w", err)
	}
	return nil
}

// Read returns the stored value, or false if the key has no row.
func (s *SQLiteSlot) Read() ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("storage: query failed: %w", err)
	}
	return value, true, nil
}

// Write upserts the value for the slot key.
func (s *SQLiteSlot) Write(data []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		s.key, data, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("storage: upsert failed: %w", err)
	}
	return nil
}

// Close releases database resources.
func (s *SQLiteSlot) Close() error {
	return s.db.Close()
}
