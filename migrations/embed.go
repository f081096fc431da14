// Package migrations embeds the SQL migrations of the postgres store
// backend.
package migrations

import "embed"

// FS holds all *.sql migration files.
//
//go:embed *.sql
var FS embed.FS
