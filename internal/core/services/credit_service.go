package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/storekhata/storekhata_backend/internal/apperrors"
	"github.com/storekhata/storekhata_backend/internal/core/domain"
	portsrepo "github.com/storekhata/storekhata_backend/internal/core/ports/repositories"
	portssvc "github.com/storekhata/storekhata_backend/internal/core/ports/services"
	"github.com/storekhata/storekhata_backend/internal/dto"
	"github.com/storekhata/storekhata_backend/internal/middleware"
)

// CreditService coordinates the customer credit log. Every recorded event is
// immutable; corrections are made by recording a compensating event of the
// opposite kind, never by editing history.
type CreditService struct {
	transactionRepo portsrepo.TransactionRepository
	customerRepo    portsrepo.CustomerRepository
}

func NewCreditService(transactionRepo portsrepo.TransactionRepository, customerRepo portsrepo.CustomerRepository) *CreditService {
	return &CreditService{
		transactionRepo: transactionRepo,
		customerRepo:    customerRepo,
	}
}

// Ensure CreditService implements the facade
var _ portssvc.CreditSvcFacade = (*CreditService)(nil)

// RecordTransaction appends a borrow or repay event and bumps the customer's
// accumulator in one transaction.
func (s *CreditService) RecordTransaction(ctx context.Context, customerID string, req dto.CreateTransactionRequest, actorID *string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	switch req.TransactionType {
	case domain.Borrow, domain.Repay:
	default:
		return nil, fmt.Errorf("%w: transaction type must be BORROW or REPAY", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be strictly positive", apperrors.ErrValidation)
	}

	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		CustomerID:      customerID,
		TransactionType: req.TransactionType,
		Amount:          req.Amount,
		Description:     req.Description,
		CreatedBy:       actorID,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to save transaction in repository",
				slog.String("error", err.Error()),
				slog.String("transaction_id", txn.TransactionID),
				slog.String("customer_id", customerID),
			)
		}
		return nil, err
	}

	logger.Info("Credit transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("customer_id", customerID),
		slog.String("type", string(txn.TransactionType)),
		slog.String("amount", txn.Amount.String()),
	)
	return &txn, nil
}

// ListTransactionsByCustomerID retrieves a customer's credit history. Fails
// with apperrors.ErrNotFound when the customer does not exist, so an empty
// history and a missing customer are distinguishable.
func (s *CreditService) ListTransactionsByCustomerID(ctx context.Context, customerID string, limit int, offset int) ([]domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.customerRepo.FindCustomerByID(ctx, customerID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find customer for transaction listing", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		}
		return nil, err
	}

	txns, err := s.transactionRepo.ListTransactionsByCustomerID(ctx, customerID, limit, offset)
	if err != nil {
		logger.Error("Failed to list transactions from repository", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}
