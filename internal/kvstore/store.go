// Package kvstore is the process-wide key-value store every collection is
// persisted through. Values are whole JSON documents; every write replaces
// the previous value under the key (last write wins).
package kvstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
)

// ErrKeyNotFound is returned by a Backend when the key holds no value.
var ErrKeyNotFound = errors.New("key not found")

// Backend is the raw byte storage underneath a Store.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// Store wraps a Backend and never returns errors to its callers: failures
// are logged and reported as a nil value or false.
type Store struct {
	backend Backend
	log     *slog.Logger
}

// New creates a Store over backend. A nil logger uses slog.Default().
func New(backend Backend, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{backend: backend, log: logger.With("component", "kvstore")}
}

var jsonNull = []byte("null")

// Get returns the JSON value stored under key, or nil when the key is
// absent, holds JSON null, or could not be read.
func (s *Store) Get(ctx context.Context, key string) json.RawMessage {
	data, err := s.backend.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			s.log.ErrorContext(ctx, "read failed", "key", key, "error", err)
		}
		return nil
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		return nil
	}
	if !json.Valid(data) {
		s.log.ErrorContext(ctx, "stored value is not valid JSON", "key", key)
		return nil
	}
	return json.RawMessage(data)
}

// Set JSON-encodes value and stores it under key.
func (s *Store) Set(ctx context.Context, key string, value any) bool {
	data, err := json.Marshal(value)
	if err != nil {
		s.log.ErrorContext(ctx, "encode failed", "key", key, "error", err)
		return false
	}
	if err := s.backend.Set(ctx, key, data); err != nil {
		s.log.ErrorContext(ctx, "write failed", "key", key, "error", err)
		return false
	}
	return true
}

// Remove deletes key. Removing an absent key succeeds.
func (s *Store) Remove(ctx context.Context, key string) bool {
	if err := s.backend.Remove(ctx, key); err != nil {
		s.log.ErrorContext(ctx, "remove failed", "key", key, "error", err)
		return false
	}
	return true
}

// Clear deletes every key.
func (s *Store) Clear(ctx context.Context) bool {
	if err := s.backend.Clear(ctx); err != nil {
		s.log.ErrorContext(ctx, "clear failed", "error", err)
		return false
	}
	return true
}
