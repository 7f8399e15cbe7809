package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/storekhata/storekhata_backend/internal/apperrors"
	"github.com/storekhata/storekhata_backend/internal/core/domain"
	portsrepo "github.com/storekhata/storekhata_backend/internal/core/ports/repositories"
	"github.com/storekhata/storekhata_backend/internal/models"
	"github.com/storekhata/storekhata_backend/internal/utils/mapping"
)

type PgxTransactionRepository struct {
	BaseRepository
	customerRepo portsrepo.CustomerRepository
}

// newPgxTransactionRepository creates a new repository for the credit
// transaction log.
func newPgxTransactionRepository(pool *pgxpool.Pool, customerRepo portsrepo.CustomerRepository) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
		customerRepo:   customerRepo,
	}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepository
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// SaveTransaction appends one credit event and bumps the customer's
// accumulator within one DB transaction. The customer row is locked first so
// concurrent events against the same customer serialize; either both writes
// commit or neither does.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored if the transaction commits.
	defer r.Rollback(ctx, tx)

	// 1. Lock the customer row. Also confirms the customer exists.
	if _, err := r.customerRepo.FindCustomerByIDForUpdate(ctx, tx, txn.CustomerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("customer " + txn.CustomerID + " not found")
		}
		return apperrors.NewAppError(500, "failed to lock customer "+txn.CustomerID, err)
	}

	// 2. Append the immutable transaction row.
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (transaction_id, customer_id, transaction_type, amount, description, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, query,
		m.TransactionID,
		m.CustomerID,
		m.TransactionType,
		m.Amount,
		m.Description,
		m.CreatedBy,
		m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert transaction "+m.TransactionID, translatePgError(err))
	}

	// 3. Bump the matching accumulator on the locked row.
	if err := r.customerRepo.ApplyCreditDeltaInTx(ctx, tx, txn.CustomerID, txn.TransactionType, txn.Amount, txn.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// ListTransactionsByCustomerID retrieves a customer's credit history, most
// recent first.
func (r *PgxTransactionRepository) ListTransactionsByCustomerID(ctx context.Context, customerID string, limit int, offset int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT transaction_id, customer_id, transaction_type, amount, description, created_by, created_at
		FROM transactions
		WHERE customer_id = $1
		ORDER BY created_at DESC, transaction_id DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, customerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for customer %s: %w", customerID, translatePgError(err))
	}
	defer rows.Close()

	txns := []models.Transaction{}
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(&m.TransactionID, &m.CustomerID, &m.TransactionType, &m.Amount, &m.Description, &m.CreatedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}

	return mapping.ToDomainTransactionSlice(txns), nil
}
