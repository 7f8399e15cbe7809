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

// SaleService coordinates checkout: it validates the requested lines against
// the catalog, prices them, and hands the assembled sale to the repository's
// atomic unit of work.
type SaleService struct {
	saleRepo           portsrepo.SaleRepository
	productRepo        portsrepo.ProductRepository
	customerRepo       portsrepo.CustomerRepository
	allowNegativeStock bool
}

func NewSaleService(saleRepo portsrepo.SaleRepository, productRepo portsrepo.ProductRepository, customerRepo portsrepo.CustomerRepository, allowNegativeStock bool) *SaleService {
	return &SaleService{
		saleRepo:           saleRepo,
		productRepo:        productRepo,
		customerRepo:       customerRepo,
		allowNegativeStock: allowNegativeStock,
	}
}

// Ensure SaleService implements the facade
var _ portssvc.SaleSvcFacade = (*SaleService)(nil)

// CreateSale records a sale. The sale row, its line items, and the stock
// decrements for every line commit in one transaction; any failure leaves
// ledger and inventory untouched.
func (s *SaleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest, actorID *string) (*domain.Sale, []domain.SaleItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(req.Items) == 0 {
		return nil, nil, fmt.Errorf("%w: a sale needs at least one line item", apperrors.ErrValidation)
	}
	for i, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, nil, fmt.Errorf("%w: line %d: quantity must be positive", apperrors.ErrValidation, i)
		}
		if item.UnitPrice != nil && item.UnitPrice.IsNegative() {
			return nil, nil, fmt.Errorf("%w: line %d: unit price cannot be negative", apperrors.ErrValidation, i)
		}
	}

	// An attributed sale must point at a real customer.
	if req.CustomerID != nil {
		if _, err := s.customerRepo.FindCustomerByID(ctx, *req.CustomerID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, nil, apperrors.NewNotFoundError("customer " + *req.CustomerID + " not found")
			}
			return nil, nil, err
		}
	}

	now := time.Now().UTC()
	saleID := uuid.NewString()

	// Price each line, defaulting to the catalog price when the request
	// carries none. Existence failures surface here, before any write.
	items := make([]domain.SaleItem, 0, len(req.Items))
	for _, reqItem := range req.Items {
		unitPrice := reqItem.UnitPrice
		if unitPrice == nil {
			product, err := s.productRepo.FindProductByID(ctx, reqItem.ProductID)
			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return nil, nil, apperrors.NewNotFoundError("product " + reqItem.ProductID + " not found")
				}
				return nil, nil, err
			}
			unitPrice = &product.UnitPrice
		}
		items = append(items, domain.SaleItem{
			SaleItemID: uuid.NewString(),
			SaleID:     saleID,
			ProductID:  reqItem.ProductID,
			Quantity:   reqItem.Quantity,
			UnitPrice:  *unitPrice,
		})
	}

	sale := domain.Sale{
		SaleID:        saleID,
		CustomerID:    req.CustomerID,
		TotalAmount:   domain.ComputeSaleTotal(items),
		PaymentStatus: req.PaymentStatus,
		CreatedBy:     actorID,
		CreatedAt:     now,
	}

	if err := s.saleRepo.SaveSale(ctx, sale, items, s.allowNegativeStock); err != nil {
		if errors.Is(err, apperrors.ErrInsufficientStock) || errors.Is(err, apperrors.ErrNotFound) {
			// Expected outcomes under the stock policy or a raced catalog
			// delete; the whole sale rolled back.
			return nil, nil, err
		}
		logger.Error("Failed to save sale in repository", slog.String("error", err.Error()), slog.String("sale_id", saleID))
		return nil, nil, err
	}

	logger.Info("Sale recorded successfully",
		slog.String("sale_id", saleID),
		slog.Int("line_count", len(items)),
		slog.String("total_amount", sale.TotalAmount.String()),
	)
	return &sale, items, nil
}

// GetSaleWithItems retrieves a sale and its line items.
func (s *SaleService) GetSaleWithItems(ctx context.Context, saleID string) (*domain.Sale, []domain.SaleItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find sale by ID in repository", slog.String("error", err.Error()), slog.String("sale_id", saleID))
		}
		return nil, nil, err
	}

	items, err := s.saleRepo.FindSaleItemsBySaleID(ctx, saleID)
	if err != nil {
		logger.Error("Failed to load line items for sale", slog.String("error", err.Error()), slog.String("sale_id", saleID))
		return nil, nil, err
	}

	return sale, items, nil
}

// ListSales retrieves a paginated list of sales without their line items.
func (s *SaleService) ListSales(ctx context.Context, limit int, offset int) ([]domain.Sale, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	sales, err := s.saleRepo.ListSales(ctx, limit, offset)
	if err != nil {
		logger.Error("Failed to list sales from repository", slog.String("error", err.Error()), slog.Int("limit", limit), slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	if sales == nil {
		return []domain.Sale{}, nil
	}
	return sales, nil
}
