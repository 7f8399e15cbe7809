package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/storekhata/storekhata_backend/internal/apperrors"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", translatePgError(err))
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", translatePgError(err))
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, sql.ErrTxDone) && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// translatePgError maps driver-level failures onto the application error
// taxonomy so callers never match on SQLSTATEs.
//
//	23505 unique_violation        -> ErrDuplicate
//	23503 foreign_key_violation   -> ErrIntegrity
//	23514 check_violation         -> ErrValidation
//	40001 serialization_failure   -> ErrRetryable
//	40P01 deadlock_detected       -> ErrRetryable
//	55P03 lock_not_available      -> ErrRetryable
//	57014 query_canceled          -> ErrRetryable
func translatePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", apperrors.ErrRetryable, err)
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case "23505":
		return fmt.Errorf("%w: %s", apperrors.ErrDuplicate, pgErr.Detail)
	case "23503":
		return fmt.Errorf("%w: %s", apperrors.ErrIntegrity, pgErr.Detail)
	case "23514":
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, pgErr.ConstraintName)
	case "40001", "40P01", "55P03", "57014":
		return fmt.Errorf("%w: %s", apperrors.ErrRetryable, pgErr.Message)
	default:
		return err
	}
}
