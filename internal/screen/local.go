// Package screen models the per-screen state of the app: every screen keeps
// its own copy of the collections it shows, refreshes it when it regains
// focus and writes the whole copy back after each change. Screens never
// coordinate; whichever writes last wins.
package screen

import (
	"context"

	"tripbook/internal/domain"
	"tripbook/internal/repository"
	"tripbook/internal/service"
)

// Local is a screen's private copy of one collection.
type Local[T domain.Entity] struct {
	coll  repository.Collection[T]
	load  func(context.Context) []T
	order func([]T) []T
	items []T
}

// NewLocal creates a Local over coll. load reads the collection on focus and
// may seed it.
func NewLocal[T domain.Entity](coll repository.Collection[T], load func(context.Context) []T) *Local[T] {
	return &Local[T]{coll: coll, load: load, items: []T{}}
}

// Ordered makes the copy re-sort with order after every change.
func (l *Local[T]) Ordered(order func([]T) []T) *Local[T] {
	l.order = order
	return l
}

// Focus replaces the copy with the stored collection.
func (l *Local[T]) Focus(ctx context.Context) []T {
	items := l.load(ctx)
	if items == nil {
		items = []T{}
	}
	l.items = items
	return l.Items()
}

// Items returns the current copy.
func (l *Local[T]) Items() []T {
	return append([]T{}, l.items...)
}

// Find looks up a record in the copy.
func (l *Local[T]) Find(id string) (T, bool) {
	return domain.Find(l.items, id)
}

// Prepend adds item at the head of the copy and writes the copy.
func (l *Local[T]) Prepend(ctx context.Context, item T) error {
	return l.commit(ctx, domain.Prepend(l.items, item))
}

// Append adds item at the end of the copy and writes the copy.
func (l *Local[T]) Append(ctx context.Context, item T) error {
	return l.commit(ctx, domain.Append(l.items, item))
}

// Replace swaps the record sharing item's ID. It fails with notFound when the
// copy has no such record.
func (l *Local[T]) Replace(ctx context.Context, item T, notFound error) error {
	if !domain.Contains(l.items, item.EntityID()) {
		return notFound
	}
	return l.commit(ctx, domain.Replace(l.items, item))
}

// Update applies fn to the record with the given ID.
func (l *Local[T]) Update(ctx context.Context, id string, fn func(T) T, notFound error) (T, error) {
	current, ok := domain.Find(l.items, id)
	if !ok {
		var zero T
		return zero, notFound
	}
	updated := fn(current)
	return updated, l.commit(ctx, domain.Replace(l.items, updated))
}

// Remove drops the record with the given ID and writes the copy. An
// unknown ID rewrites the copy unchanged.
func (l *Local[T]) Remove(ctx context.Context, id string) error {
	return l.commit(ctx, domain.Remove(l.items, id))
}

// commit adopts next as the copy and writes it. The copy is kept even when
// the write fails.
func (l *Local[T]) commit(ctx context.Context, next []T) error {
	if l.order != nil {
		next = l.order(next)
	}
	l.items = next
	if !l.coll.Set(ctx, next) {
		return service.ErrNotPersisted
	}
	return nil
}
