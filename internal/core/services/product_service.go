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

type ProductService struct {
	productRepo portsrepo.ProductRepository
}

func NewProductService(repo portsrepo.ProductRepository) *ProductService {
	return &ProductService{productRepo: repo}
}

// Ensure ProductService implements the facade
var _ portssvc.ProductSvcFacade = (*ProductService)(nil)

// CreateProduct adds a new catalog item.
func (s *ProductService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: unit price cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	product := domain.Product{
		ProductID:         uuid.NewString(),
		Name:              req.Name,
		Category:          req.Category,
		UnitPrice:         req.UnitPrice,
		StockQuantity:     req.StockQuantity,
		LowStockThreshold: req.LowStockThreshold,
		UnitLabel:         req.UnitLabel,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		logger.Error("Failed to save product in repository", slog.String("error", err.Error()), slog.String("product_id", product.ProductID))
		return nil, err
	}

	logger.Info("Product created successfully", slog.String("product_id", product.ProductID))
	return &product, nil
}

// GetProductByID retrieves a catalog item.
func (s *ProductService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find product by ID in repository", slog.String("error", err.Error()), slog.String("product_id", productID))
		}
		return nil, err
	}
	return product, nil
}

// ListProducts retrieves a paginated list of catalog items.
func (s *ProductService) ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	products, err := s.productRepo.ListProducts(ctx, limit, offset)
	if err != nil {
		logger.Error("Failed to list products from repository", slog.String("error", err.Error()), slog.Int("limit", limit), slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if products == nil {
		return []domain.Product{}, nil
	}
	return products, nil
}

// ListLowStockProducts retrieves every product at or below its own
// low-stock threshold.
func (s *ProductService) ListLowStockProducts(ctx context.Context) ([]domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	products, err := s.productRepo.ListLowStockProducts(ctx)
	if err != nil {
		logger.Error("Failed to list low stock products from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
	}
	if products == nil {
		return []domain.Product{}, nil
	}
	return products, nil
}

// UpdateProduct applies partial updates to a catalog item. A StockQuantity
// update here is an explicit restock or correction, distinct from the
// decrements applied by sales.
func (s *ProductService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, userID string) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find product for update", slog.String("error", err.Error()), slog.String("product_id", productID))
		}
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: product name cannot be empty", apperrors.ErrValidation)
		}
		product.Name = *req.Name
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.UnitPrice != nil {
		if req.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: unit price cannot be negative", apperrors.ErrValidation)
		}
		product.UnitPrice = *req.UnitPrice
	}
	if req.StockQuantity != nil {
		if *req.StockQuantity < 0 {
			return nil, fmt.Errorf("%w: stock quantity cannot be set below zero", apperrors.ErrValidation)
		}
		product.StockQuantity = *req.StockQuantity
	}
	if req.LowStockThreshold != nil {
		if *req.LowStockThreshold < 0 {
			return nil, fmt.Errorf("%w: low stock threshold cannot be negative", apperrors.ErrValidation)
		}
		product.LowStockThreshold = *req.LowStockThreshold
	}
	if req.UnitLabel != nil {
		product.UnitLabel = *req.UnitLabel
	}
	product.LastUpdatedAt = time.Now().UTC()
	product.LastUpdatedBy = userID

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to update product in repository", slog.String("error", err.Error()), slog.String("product_id", productID))
		}
		return nil, err
	}

	logger.Info("Product updated successfully", slog.String("product_id", productID))
	return product, nil
}

// DeleteProduct removes a catalog item. Products referenced by sale history
// cannot be deleted; the repository surfaces that as apperrors.ErrIntegrity.
func (s *ProductService) DeleteProduct(ctx context.Context, productID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrIntegrity) {
			logger.Error("Failed to delete product in repository", slog.String("error", err.Error()), slog.String("product_id", productID))
		}
		return err
	}
	logger.Info("Product deleted successfully", slog.String("product_id", productID))
	return nil
}
