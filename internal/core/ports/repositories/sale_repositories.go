package repositories

import (
	"context"

	"github.com/storekhata/storekhata_backend/internal/core/domain"
)

// SaleRepository defines persistence for sales and their line items.
// SaveSale is the sale coordinator's unit of work: the sale row, every line
// item, and every stock decrement commit together or not at all.
type SaleRepository interface {
	SaveSale(ctx context.Context, sale domain.Sale, items []domain.SaleItem, allowNegativeStock bool) error
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)
	FindSaleItemsBySaleID(ctx context.Context, saleID string) ([]domain.SaleItem, error)
	ListSales(ctx context.Context, limit int, offset int) ([]domain.Sale, error)
}
