package repository

import "errors"

// ErrNotFound is wrapped by every "no record with this id" error raised
// while editing a stored collection.
var ErrNotFound = errors.New("record not found")
