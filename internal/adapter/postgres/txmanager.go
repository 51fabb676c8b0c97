package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TxManager runs a function inside one PostgreSQL transaction, exposing
// the transaction to repositories through the context (QuerierFromCtx).
// The combination batch create uses it so a cross product either applies
// fully or not at all.
//
// RunInTx does not nest: calling it inside the callback opens a second,
// independent transaction.
type TxManager struct {
	pool *pgxpool.Pool
}

// NewTxManager creates a new TxManager.
func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

// RunInTx begins a transaction, runs fn with the transaction bound to the
// context, and commits. Any error from fn aborts the transaction and is
// returned as-is so callers can match on domain errors.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	// Rollback after a successful commit is a no-op (pgx.ErrTxClosed), so
	// the deferred call safely covers both error returns and panics in fn.
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(withTx(ctx, tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
