package postgres

import (
	"context"
	"database/sql"
	"errors"

	"tripbook/internal/kvstore"
)

// KVBackend is a PostgreSQL implementation of kvstore.Backend. Every key is
// one row of kv_entries; a write replaces the whole value.
type KVBackend struct {
	q Querier
}

// NewKVBackend creates a new PostgreSQL key-value backend.
func NewKVBackend(db *sql.DB) *KVBackend {
	return &KVBackend{q: db}
}

// Get retrieves the value stored under key.
func (r *KVBackend) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM kv_entries WHERE key = $1`

	var value string
	err := r.q.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, kvstore.ErrKeyNotFound
		}
		return nil, err
	}

	return []byte(value), nil
}

// Set upserts the value stored under key.
func (r *KVBackend) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`

	_, err := r.q.ExecContext(ctx, query, key, string(value))
	return err
}

// Remove deletes key. Deleting an absent key is not an error.
func (r *KVBackend) Remove(ctx context.Context, key string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM kv_entries WHERE key = $1`, key)
	return err
}

// Clear deletes every key.
func (r *KVBackend) Clear(ctx context.Context) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM kv_entries`)
	return err
}

// Ensure KVBackend implements kvstore.Backend.
var _ kvstore.Backend = (*KVBackend)(nil)
