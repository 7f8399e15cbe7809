package services

import (
	"context"

	"github.com/storekhata/storekhata_backend/internal/core/domain"
	"github.com/storekhata/storekhata_backend/internal/dto"
)

// CustomerSvcFacade defines the customer operations exposed to the HTTP layer.
type CustomerSvcFacade interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error)
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, userID string) (*domain.Customer, error)
}
