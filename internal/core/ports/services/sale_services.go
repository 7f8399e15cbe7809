package services

import (
	"context"

	"github.com/storekhata/storekhata_backend/internal/core/domain"
	"github.com/storekhata/storekhata_backend/internal/dto"
)

// SaleSvcFacade is the sale transaction coordinator's surface. CreateSale
// either fully commits (sale row, all line items, all stock decrements) or
// fails with nothing persisted.
type SaleSvcFacade interface {
	CreateSale(ctx context.Context, req dto.CreateSaleRequest, actorID *string) (*domain.Sale, []domain.SaleItem, error)
	GetSaleWithItems(ctx context.Context, saleID string) (*domain.Sale, []domain.SaleItem, error)
	ListSales(ctx context.Context, limit int, offset int) ([]domain.Sale, error)
}
