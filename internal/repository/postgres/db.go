package postgres

import (
	"context"
	"database/sql"
)

// Querier is the subset of *sql.DB and *sql.Tx the key-value backend runs
// its statements on.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
)
