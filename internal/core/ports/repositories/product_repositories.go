package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/storekhata/storekhata_backend/internal/core/domain"
)

// ProductRepository defines persistence operations for catalog items.
type ProductRepository interface {
	SaveProduct(ctx context.Context, product domain.Product) error
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error)
	ListLowStockProducts(ctx context.Context) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) error

	// DeleteProduct removes a catalog item. Fails with apperrors.ErrIntegrity
	// when sale line items still reference it.
	DeleteProduct(ctx context.Context, productID string) error

	// FindProductsByIDsForUpdate locks the product rows for the duration of
	// the transaction. Fails with apperrors.ErrNotFound when any id is
	// missing. Must be called within tx.
	FindProductsByIDsForUpdate(ctx context.Context, tx pgx.Tx, productIDs []string) (map[string]domain.Product, error)

	// ApplyStockDecrementsInTx decrements stock for the locked rows,
	// enforcing the negative-stock policy per product. Must be called within
	// the same transaction that created the sale the decrements belong to.
	ApplyStockDecrementsInTx(ctx context.Context, tx pgx.Tx, decrements map[string]int, allowNegativeStock bool, userID string, now time.Time) error
}
