// Package db provides the per-request connection scope. A request acquires
// exactly one connection for its lifetime and releases it on every exit path.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the query surface repositories run against. It is satisfied by
// *Scope in production and by pgxmock pools in tests.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Beginner starts a transaction. *pgxpool.Pool implements it.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Scope holds a database connection for the duration of one request. The
// backing transaction pins a pool connection; Commit or Close returns it.
type Scope struct {
	tx        pgx.Tx
	committed bool
}

// Open acquires a connection and begins a transaction on it.
func Open(ctx context.Context, pool Beginner) (*Scope, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("open scope: %w", err)
	}
	return &Scope{tx: tx}, nil
}

// Commit flushes pending writes and releases the connection.
func (s *Scope) Commit(ctx context.Context) error {
	if err := s.tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit scope: %w", err)
	}
	s.committed = true
	return nil
}

// Close releases the connection. When Commit has not run, pending writes are
// rolled back. Close is safe after Commit, so callers defer it unconditionally.
func (s *Scope) Close(ctx context.Context) {
	if s.committed {
		return
	}
	_ = s.tx.Rollback(ctx)
}

func (s *Scope) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return s.tx.Exec(ctx, sql, args...)
}

func (s *Scope) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return s.tx.Query(ctx, sql, args...)
}

func (s *Scope) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return s.tx.QueryRow(ctx, sql, args...)
}
