// Package database owns the connection pool and the query gateway: every
// statement the service runs against the store goes through FetchAll,
// FetchOne, ExecuteWrite, Exec or WithTx. Callers never see a connection.
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TxRunner is the slice of the gateway the transactional services depend
// on; tests substitute an in-memory runner.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}

type Gateway struct {
	pool         *pgxpool.Pool
	queryTimeout time.Duration
}

func NewGateway(pool *pgxpool.Pool, queryTimeout time.Duration) *Gateway {
	if queryTimeout <= 0 {
		queryTimeout = 10 * time.Second
	}
	return &Gateway{pool: pool, queryTimeout: queryTimeout}
}

// run executes fn with the per-statement timeout applied, retrying the
// whole cycle exactly once on a connection-level failure. Statement errors
// pass through untouched; a second connection failure is reported as
// ErrStoreUnavailable.
func (g *Gateway) run(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if err := ctx.Err(); err != nil {
			break
		}
		attemptCtx, cancel := context.WithTimeout(ctx, g.queryTimeout)
		err := fn(attemptCtx)
		cancel()
		if err == nil {
			return nil
		}
		if !IsConnectionFailure(err) {
			return err
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = ctx.Err()
	}
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, lastErr)
}

// FetchAll runs one query and maps every row into T by column name. A
// result column without a matching db-tagged field is an error, so schema
// drift surfaces at the access boundary instead of as misassigned fields.
func FetchAll[T any](ctx context.Context, g *Gateway, query string, args ...any) ([]T, error) {
	var out []T
	err := g.run(ctx, func(ctx context.Context) error {
		rows, err := g.pool.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[T])
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FetchOne runs one query expected to yield at most one row. No row is not
// an error here: callers translate the nil into their own NotFound.
func FetchOne[T any](ctx context.Context, g *Gateway, query string, args ...any) (*T, error) {
	var out *T
	err := g.run(ctx, func(ctx context.Context) error {
		rows, err := g.pool.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		v, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
		if errors.Is(err, pgx.ErrNoRows) {
			out = nil
			return nil
		}
		if err != nil {
			return err
		}
		out = &v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExecuteWrite runs one mutating statement that ends in RETURNING <id> and
// yields the generated identifier. A single statement commits or rolls back
// atomically on the server, so no partial effect survives an error.
func (g *Gateway) ExecuteWrite(ctx context.Context, query string, args ...any) (int64, error) {
	var id int64
	err := g.run(ctx, func(ctx context.Context) error {
		return g.pool.QueryRow(ctx, query, args...).Scan(&id)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Exec runs one mutating statement and reports how many rows it touched.
func (g *Gateway) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	var affected int64
	err := g.run(ctx, func(ctx context.Context) error {
		tag, err := g.pool.Exec(ctx, query, args...)
		if err != nil {
			return err
		}
		affected = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

// WithTx runs fn inside a transaction: rollback on error, commit on nil.
// Only the acquisition of the transaction is retried; once fn has run, a
// broken connection surfaces as ErrStoreUnavailable rather than a rerun,
// since fn's statements may not be idempotent.
func (g *Gateway) WithTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error {
	txCtx, cancel := context.WithTimeout(ctx, g.queryTimeout)
	defer cancel()

	var tx pgx.Tx
	err := g.run(ctx, func(ctx context.Context) error {
		var err error
		tx, err = g.pool.BeginTx(txCtx, pgx.TxOptions{})
		return err
	})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(txCtx) }() // no-op once committed

	if err := fn(txCtx, tx); err != nil {
		if IsConnectionFailure(err) {
			return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		return err
	}
	if err := tx.Commit(txCtx); err != nil {
		if IsConnectionFailure(err) {
			return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		return err
	}
	return nil
}
