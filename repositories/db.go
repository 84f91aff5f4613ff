package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/dnstock/realty-backend/models"
)

// DB is the minimal query surface the engine needs. Both *pgxpool.Pool and
// pgx.Tx satisfy it, so the same code runs inside and outside a request
// transaction.
type DB interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// ContextRunner executes fn inside a fresh RequestContext. Controllers depend
// on this seam rather than on a concrete pool so tests can substitute a fake
// store.
type ContextRunner func(ctx context.Context, user *models.User, fn func(*RequestContext) error) error

// WithContext opens one transaction for the lifetime of fn and wraps it,
// together with the authenticated user (nil for anonymous access), in a
// RequestContext. A nil error from fn commits; any error rolls back. The
// transaction is never shared across requests and is released either way.
func WithContext(ctx context.Context, pool *pgxpool.Pool, user *models.User, fn func(*RequestContext) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin request transaction: %w", err)
	}

	rc := NewRequestContext(ctx, user, tx)
	if err := fn(rc); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

// PoolRunner adapts a pool to the ContextRunner seam.
func PoolRunner(pool *pgxpool.Pool) ContextRunner {
	return func(ctx context.Context, user *models.User, fn func(*RequestContext) error) error {
		return WithContext(ctx, pool, user, fn)
	}
}
