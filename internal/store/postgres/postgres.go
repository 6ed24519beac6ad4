// Package postgres implements the record stores against PostgreSQL using
// pgx v5.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the stores need. pgxmock satisfies it in
// tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store bundles the contact and booking stores over one connection pool.
type Store struct {
	*ContactStore
	*BookingStore
}

// NewStore creates a combined store over the given pool.
func NewStore(db DB) *Store {
	return &Store{
		ContactStore: NewContactStore(db),
		BookingStore: NewBookingStore(db),
	}
}
