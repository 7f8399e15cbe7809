package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storekhata/storekhata_backend/internal/apperrors"
	"github.com/storekhata/storekhata_backend/internal/core/domain"
	portsrepo "github.com/storekhata/storekhata_backend/internal/core/ports/repositories"
	portssvc "github.com/storekhata/storekhata_backend/internal/core/ports/services"
	"github.com/storekhata/storekhata_backend/internal/dto"
	"github.com/storekhata/storekhata_backend/internal/middleware"
)

type CustomerService struct {
	customerRepo portsrepo.CustomerRepository
}

func NewCustomerService(repo portsrepo.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: repo}
}

// Ensure CustomerService implements the facade
var _ portssvc.CustomerSvcFacade = (*CustomerService)(nil)

// CreateCustomer registers a new customer with zeroed credit accumulators.
func (s *CustomerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	customer := domain.Customer{
		CustomerID:    uuid.NewString(),
		Name:          req.Name,
		Phone:         req.Phone,
		Address:       req.Address,
		TotalBorrowed: decimal.Zero,
		TotalRepaid:   decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save customer in repository", slog.String("error", err.Error()), slog.String("customer_id", customer.CustomerID))
		}
		return nil, err
	}

	logger.Info("Customer created successfully", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

// GetCustomerByID retrieves a customer, including the current accumulator values.
func (s *CustomerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find customer by ID in repository", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		}
		return nil, err
	}
	return customer, nil
}

// ListCustomers retrieves a paginated list of customers.
func (s *CustomerService) ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	customers, err := s.customerRepo.ListCustomers(ctx, limit, offset)
	if err != nil {
		logger.Error("Failed to list customers from repository", slog.String("error", err.Error()), slog.Int("limit", limit), slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	if customers == nil {
		return []domain.Customer{}, nil
	}
	return customers, nil
}

// UpdateCustomer applies partial updates to a customer's contact fields.
// The credit accumulators cannot be modified here: they change only through
// the credit coordinator's unit of work.
func (s *CustomerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, userID string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find customer for update", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		}
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: customer name cannot be empty", apperrors.ErrValidation)
		}
		customer.Name = *req.Name
	}
	if req.Phone != nil {
		if *req.Phone == "" {
			return nil, fmt.Errorf("%w: customer phone cannot be empty", apperrors.ErrValidation)
		}
		customer.Phone = *req.Phone
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	customer.LastUpdatedAt = time.Now().UTC()
	customer.LastUpdatedBy = userID

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to update customer in repository", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		}
		return nil, err
	}

	logger.Info("Customer updated successfully", slog.String("customer_id", customerID))
	return customer, nil
}
