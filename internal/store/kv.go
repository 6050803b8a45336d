package store

import (
	"database/sql"
	"fmt"
	"time"
)

// Fixed storage keys. Stored blobs are plain JSON under these names, so
// the database stays inspectable with the sqlite3 shell.
const (
	KeyUsers   = "users"
	KeySession = "loggedInUser"
)

// PlaylistKey returns the per-user storage key for playlist collections.
func PlaylistKey(user string) string {
	return "playlists_" + user
}

// KV is a SQLite-backed key-value blob store. Each key holds a whole
// serialized collection; mutations rewrite the value in full.
type KV struct {
	db *sql.DB
}

// NewKV creates a KV over an open database connection. The storage
// table must already exist (see shared.RunMigrations).
func NewKV(db *sql.DB) *KV {
	return &KV{db: db}
}

// Get returns the blob stored under key, or nil if the key is absent.
func (kv *KV) Get(key string) ([]byte, error) {
	var value []byte
	err := kv.db.QueryRow("SELECT value FROM storage WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, nil
}

// Set overwrites the blob stored under key.
func (kv *KV) Set(key string, value []byte) error {
	_, err := kv.db.Exec(`
		INSERT INTO storage (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now())
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

// Delete removes key and its blob. Deleting an absent key is a no-op.
func (kv *KV) Delete(key string) error {
	if _, err := kv.db.Exec("DELETE FROM storage WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}
