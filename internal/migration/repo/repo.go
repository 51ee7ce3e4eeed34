package repo

import (
	"context"
	"database/sql"
)

// DBTX is the common interface of *sql.DB and *sql.Tx as used by the sqlite
// repos. The handle returned by transaction.Enable satisfies it as well.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}
