package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/storekhata/storekhata_backend/internal/apperrors"
	"github.com/storekhata/storekhata_backend/internal/core/domain"
	portsrepo "github.com/storekhata/storekhata_backend/internal/core/ports/repositories"
	"github.com/storekhata/storekhata_backend/internal/models"
	"github.com/storekhata/storekhata_backend/internal/utils/mapping"
)

type PgxCustomerRepository struct {
	pool *pgxpool.Pool
}

// newPgxCustomerRepository creates a new repository for customer data.
func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepository {
	return &PgxCustomerRepository{pool: pool}
}

// Ensure PgxCustomerRepository implements portsrepo.CustomerRepository
var _ portsrepo.CustomerRepository = (*PgxCustomerRepository)(nil)

const customerColumns = `customer_id, name, phone, address, total_borrowed, total_repaid, created_at, created_by, last_updated_at, last_updated_by`

func scanCustomer(row pgx.Row) (models.Customer, error) {
	var m models.Customer
	err := row.Scan(
		&m.CustomerID,
		&m.Name,
		&m.Phone,
		&m.Address,
		&m.TotalBorrowed,
		&m.TotalRepaid,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveCustomer inserts a new customer with zeroed credit accumulators.
func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)

	query := `
		INSERT INTO customers (customer_id, name, phone, address, total_borrowed, total_repaid, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		m.CustomerID,
		m.Name,
		m.Phone,
		m.Address,
		m.TotalBorrowed,
		m.TotalRepaid,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if translated := translatePgError(err); errors.Is(translated, apperrors.ErrDuplicate) {
			return fmt.Errorf("%w: customer with phone %s already exists", apperrors.ErrDuplicate, m.Phone)
		}
		return fmt.Errorf("failed to save customer %s: %w", m.CustomerID, translatePgError(err))
	}
	return nil
}

// FindCustomerByID retrieves a customer by its ID.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1;`

	m, err := scanCustomer(r.pool.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer by ID %s: %w", customerID, translatePgError(err))
	}

	d := mapping.ToDomainCustomer(m)
	return &d, nil
}

// ListCustomers retrieves a paginated list of customers ordered by name.
func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY name LIMIT $1 OFFSET $2;`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", translatePgError(err))
	}
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		m, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", rows.Err())
	}

	return mapping.ToDomainCustomerSlice(customers), nil
}

// UpdateCustomer updates the contact fields of an existing customer.
// total_borrowed/total_repaid are deliberately not settable here; they belong
// to the credit transaction path.
func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)

	query := `
		UPDATE customers
		SET name = $2, phone = $3, address = $4, last_updated_at = $5, last_updated_by = $6
		WHERE customer_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.CustomerID,
		m.Name,
		m.Phone,
		m.Address,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if translated := translatePgError(err); errors.Is(translated, apperrors.ErrDuplicate) {
			return fmt.Errorf("%w: phone %s already in use", apperrors.ErrDuplicate, m.Phone)
		}
		return fmt.Errorf("failed to execute update customer %s: %w", m.CustomerID, translatePgError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindCustomerByIDForUpdate retrieves a customer and locks the row for update.
// Must be called within a transaction.
func (r *PgxCustomerRepository) FindCustomerByIDForUpdate(ctx context.Context, tx pgx.Tx, customerID string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1 FOR UPDATE;`

	m, err := scanCustomer(tx.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customerID)
		}
		return nil, fmt.Errorf("failed to lock customer %s: %w", customerID, translatePgError(err))
	}

	d := mapping.ToDomainCustomer(m)
	return &d, nil
}

// ApplyCreditDeltaInTx bumps the accumulator matching kind by amount for the
// locked customer row.
func (r *PgxCustomerRepository) ApplyCreditDeltaInTx(ctx context.Context, tx pgx.Tx, customerID string, kind domain.TransactionType, amount decimal.Decimal, now time.Time) error {
	var query string
	switch kind {
	case domain.Borrow:
		query = `UPDATE customers SET total_borrowed = total_borrowed + $2, last_updated_at = $3 WHERE customer_id = $1;`
	case domain.Repay:
		query = `UPDATE customers SET total_repaid = total_repaid + $2, last_updated_at = $3 WHERE customer_id = $1;`
	default:
		return fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, kind)
	}

	cmdTag, err := tx.Exec(ctx, query, customerID, amount, now)
	if err != nil {
		return fmt.Errorf("failed to apply credit delta for customer %s: %w", customerID, translatePgError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		// Should not happen after the locking read found the row.
		return fmt.Errorf("%w: customer %s not found during accumulator update", apperrors.ErrNotFound, customerID)
	}
	return nil
}
