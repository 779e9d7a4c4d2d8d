// Package dbx holds the minimal database/sql surface shared by storage code.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by the key-value store.
// Both *sql.DB and *sql.Tx satisfy this interface, so repositories can be
// pointed at either a plain connection or an open transaction.
//
// Note that the store deliberately offers no multi-key transaction helper:
// callers write one key at a time and must tolerate a partial sequence if
// the process dies between writes.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
