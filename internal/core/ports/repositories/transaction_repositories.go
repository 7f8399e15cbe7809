package repositories

import (
	"context"

	"github.com/storekhata/storekhata_backend/internal/core/domain"
)

// TransactionRepository defines persistence for the append-only credit
// transaction log. SaveTransaction is the credit coordinator's unit of work:
// the transaction row and the customer's accumulator update commit together
// or not at all. There is no update or delete for this table.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	ListTransactionsByCustomerID(ctx context.Context, customerID string, limit int, offset int) ([]domain.Transaction, error)
}
