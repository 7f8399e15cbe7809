package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/storekhata/storekhata_backend/internal/core/domain"
)

// CustomerRepository defines persistence operations for customers.
type CustomerRepository interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer domain.Customer) error

	// FindCustomerByIDForUpdate locks the customer row for the duration of
	// the transaction. Must be called within tx.
	FindCustomerByIDForUpdate(ctx context.Context, tx pgx.Tx, customerID string) (*domain.Customer, error)

	// ApplyCreditDeltaInTx bumps total_borrowed or total_repaid by amount for
	// the locked customer row. The balance accumulator is only ever written
	// through this method, inside the same transaction that appends the
	// corresponding transaction row.
	ApplyCreditDeltaInTx(ctx context.Context, tx pgx.Tx, customerID string, kind domain.TransactionType, amount decimal.Decimal, now time.Time) error
}
