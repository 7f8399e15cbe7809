package services

import (
	"context"

	"github.com/storekhata/storekhata_backend/internal/core/domain"
	"github.com/storekhata/storekhata_backend/internal/dto"
)

// ProductSvcFacade defines the catalog operations exposed to the HTTP layer.
// Role gating (owner|staff for mutation, owner for deletion) is enforced by
// the caller; the service validates data, not identity.
type ProductSvcFacade interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error)
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error)
	ListLowStockProducts(ctx context.Context) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, userID string) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
}
