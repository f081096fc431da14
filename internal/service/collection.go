package service

import (
	"context"
	"strconv"
	"time"

	"tripbook/internal/domain"
	"tripbook/internal/repository"
)

// Clock returns the current time. Services take one so tests can freeze it.
type Clock func() time.Time

func clockOrNow(c Clock) Clock {
	if c == nil {
		return time.Now
	}
	return c
}

// NewID returns the identifier for a record created at t: epoch
// milliseconds in decimal. Two records created in the same millisecond
// collide; that is accepted.
func NewID(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

// Mutation is the outcome of a write: the affected record and the whole
// collection as it was written. Callers update their in-memory state from
// List instead of reading storage again.
type Mutation[T any] struct {
	Item T
	List []T
}

// mutate reads the whole collection through load, which seeds it on first
// use, applies fn and writes the result back. There is no lock and no
// version check: whatever another writer stored in between is overwritten.
func mutate[T any](ctx context.Context, load func(context.Context) []T, c repository.Collection[T], fn func([]T) ([]T, error)) ([]T, error) {
	current := load(ctx)
	if current == nil {
		current = []T{}
	}

	next, err := fn(current)
	if err != nil {
		return nil, err
	}

	if !c.Set(ctx, next) {
		return next, ErrNotPersisted
	}
	return next, nil
}

// replaceExisting replaces item in list, or fails with notFound when no
// record shares its ID.
func replaceExisting[T domain.Entity](list []T, item T, notFound error) ([]T, error) {
	if !domain.Contains(list, item.EntityID()) {
		return nil, notFound
	}
	return domain.Replace(list, item), nil
}
