package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"tripbook/internal/kvstore"
)

// Collection binds a fixed key to an array of T. Get reports false when the
// key was never written (or its value could not be read), which is distinct
// from an empty list.
type Collection[T any] struct {
	store *kvstore.Store
	key   string
}

// NewCollection creates a Collection stored under key.
func NewCollection[T any](store *kvstore.Store, key string) Collection[T] {
	return Collection[T]{store: store, key: key}
}

// Key returns the storage key.
func (c Collection[T]) Key() string { return c.key }

// Get reads the whole collection.
func (c Collection[T]) Get(ctx context.Context) ([]T, bool) {
	raw := c.store.Get(ctx, c.key)
	if raw == nil {
		return nil, false
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		slog.WarnContext(ctx, "collection has unexpected shape", "key", c.key, "error", err)
		return nil, false
	}
	if items == nil {
		items = []T{}
	}
	return items, true
}

// Set overwrites the whole collection. A nil slice is stored as [].
func (c Collection[T]) Set(ctx context.Context, items []T) bool {
	if items == nil {
		items = []T{}
	}
	return c.store.Set(ctx, c.key, items)
}

// Remove deletes the collection key.
func (c Collection[T]) Remove(ctx context.Context) bool {
	return c.store.Remove(ctx, c.key)
}

// Document binds a fixed key to a single object.
type Document[T any] struct {
	store *kvstore.Store
	key   string
}

// NewDocument creates a Document stored under key.
func NewDocument[T any](store *kvstore.Store, key string) Document[T] {
	return Document[T]{store: store, key: key}
}

// Key returns the storage key.
func (d Document[T]) Key() string { return d.key }

// Get reads the object.
func (d Document[T]) Get(ctx context.Context) (T, bool) {
	var v T
	raw := d.store.Get(ctx, d.key)
	if raw == nil {
		return v, false
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		slog.WarnContext(ctx, "document has unexpected shape", "key", d.key, "error", err)
		var zero T
		return zero, false
	}
	return v, true
}

// Set overwrites the object.
func (d Document[T]) Set(ctx context.Context, v T) bool {
	return d.store.Set(ctx, d.key, v)
}

// Remove deletes the object key.
func (d Document[T]) Remove(ctx context.Context) bool {
	return d.store.Remove(ctx, d.key)
}
