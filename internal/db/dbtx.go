package db

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql methods shared by *sql.DB and
// *sql.Tx. Repositories are written against it, so the same repository
// code runs standalone or inside a unit-of-work transaction.
type DBTX interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
