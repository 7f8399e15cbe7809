package services

import (
	"context"

	"github.com/storekhata/storekhata_backend/internal/core/domain"
	"github.com/storekhata/storekhata_backend/internal/dto"
)

// CreditSvcFacade is the credit transaction coordinator's surface.
// RecordTransaction appends an immutable log row and updates the customer's
// accumulators in one unit of work. There is no amendment operation: a
// mistaken entry is corrected by recording a compensating transaction of the
// opposite kind.
type CreditSvcFacade interface {
	RecordTransaction(ctx context.Context, customerID string, req dto.CreateTransactionRequest, actorID *string) (*domain.Transaction, error)
	ListTransactionsByCustomerID(ctx context.Context, customerID string, limit int, offset int) ([]domain.Transaction, error)
}
