package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/storekhata/storekhata_backend/internal/apperrors"
	"github.com/storekhata/storekhata_backend/internal/core/domain"
	portsrepo "github.com/storekhata/storekhata_backend/internal/core/ports/repositories"
	"github.com/storekhata/storekhata_backend/internal/models"
	"github.com/storekhata/storekhata_backend/internal/utils/inventory"
	"github.com/storekhata/storekhata_backend/internal/utils/mapping"
)

type PgxProductRepository struct {
	pool *pgxpool.Pool
}

// newPgxProductRepository creates a new repository for catalog data.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepository {
	return &PgxProductRepository{pool: pool}
}

// Ensure PgxProductRepository implements portsrepo.ProductRepository
var _ portsrepo.ProductRepository = (*PgxProductRepository)(nil)

const productColumns = `product_id, name, category, unit_price, stock_quantity, low_stock_threshold, unit_label, created_at, created_by, last_updated_at, last_updated_by`

func scanProduct(row pgx.Row) (models.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ProductID,
		&m.Name,
		&m.Category,
		&m.UnitPrice,
		&m.StockQuantity,
		&m.LowStockThreshold,
		&m.UnitLabel,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveProduct inserts a new catalog item.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)

	query := `
		INSERT INTO products (product_id, name, category, unit_price, stock_quantity, low_stock_threshold, unit_label, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		m.ProductID,
		m.Name,
		m.Category,
		m.UnitPrice,
		m.StockQuantity,
		m.LowStockThreshold,
		m.UnitLabel,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save product %s: %w", m.ProductID, translatePgError(err))
	}
	return nil
}

// FindProductByID retrieves a catalog item by its ID.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1;`

	m, err := scanProduct(r.pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID %s: %w", productID, translatePgError(err))
	}

	d := mapping.ToDomainProduct(m)
	return &d, nil
}

// ListProducts retrieves a paginated list of catalog items.
func (r *PgxProductRepository) ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + productColumns + ` FROM products ORDER BY category, name LIMIT $1 OFFSET $2;`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", translatePgError(err))
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", rows.Err())
	}

	return mapping.ToDomainProductSlice(products), nil
}

// ListLowStockProducts retrieves items at or below their threshold.
// The predicate lives in the query; low-stock status is never stored.
func (r *PgxProductRepository) ListLowStockProducts(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE stock_quantity <= low_stock_threshold ORDER BY stock_quantity;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query low stock products: %w", translatePgError(err))
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan low stock product row: %w", err)
		}
		products = append(products, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating low stock product rows: %w", rows.Err())
	}

	return mapping.ToDomainProductSlice(products), nil
}

// UpdateProduct updates an existing catalog item.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)

	query := `
		UPDATE products
		SET name = $2, category = $3, unit_price = $4, stock_quantity = $5, low_stock_threshold = $6, unit_label = $7, last_updated_at = $8, last_updated_by = $9
		WHERE product_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.ProductID,
		m.Name,
		m.Category,
		m.UnitPrice,
		m.StockQuantity,
		m.LowStockThreshold,
		m.UnitLabel,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update product %s: %w", m.ProductID, translatePgError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteProduct removes a catalog item. The FK from sale_items is RESTRICT,
// so a referenced product surfaces as ErrIntegrity and stays put.
func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE product_id = $1;`, productID)
	if err != nil {
		if translated := translatePgError(err); errors.Is(translated, apperrors.ErrIntegrity) {
			return fmt.Errorf("%w: product %s is referenced by sale history", apperrors.ErrIntegrity, productID)
		}
		return fmt.Errorf("failed to delete product %s: %w", productID, translatePgError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindProductsByIDsForUpdate retrieves multiple products by IDs and locks the
// rows for update. Must be called within a transaction.
func (r *PgxProductRepository) FindProductsByIDsForUpdate(ctx context.Context, tx pgx.Tx, productIDs []string) (map[string]domain.Product, error) {
	if len(productIDs) == 0 {
		return map[string]domain.Product{}, nil
	}

	// Deterministic lock order avoids deadlocks between concurrent sales
	// touching overlapping product sets.
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = ANY($1) ORDER BY product_id FOR UPDATE;`

	rows, err := tx.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query products by IDs for update: %w", translatePgError(err))
	}
	defer rows.Close()

	productsMap := make(map[string]domain.Product)
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan locked product row: %w", err)
		}
		productsMap[m.ProductID] = mapping.ToDomainProduct(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locked product rows: %w", translatePgError(err))
	}

	if len(productsMap) != len(productIDs) {
		missing := []string{}
		for _, id := range productIDs {
			if _, found := productsMap[id]; !found {
				missing = append(missing, id)
			}
		}
		slog.WarnContext(ctx, "Some products requested for update lock were not found", "missing_products", missing)
		return nil, fmt.Errorf("%w: could not find or lock all requested products, missing: %v", apperrors.ErrNotFound, missing)
	}

	return productsMap, nil
}

// ApplyStockDecrementsInTx decrements stock for the locked product rows.
// Callers must have locked the rows via FindProductsByIDsForUpdate first so
// the read-modify-write cannot be lost to a concurrent sale.
func (r *PgxProductRepository) ApplyStockDecrementsInTx(ctx context.Context, tx pgx.Tx, decrements map[string]int, allowNegativeStock bool, userID string, now time.Time) error {
	if len(decrements) == 0 {
		return nil
	}

	query := `
		UPDATE products
		SET stock_quantity = stock_quantity - $2, last_updated_at = $3, last_updated_by = $4
		WHERE product_id = $1;
	`

	batch := &pgx.Batch{}
	productIDs := make([]string, 0, len(decrements))
	for productID, qty := range decrements {
		var current int
		if err := tx.QueryRow(ctx, `SELECT stock_quantity FROM products WHERE product_id = $1;`, productID).Scan(&current); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
			}
			return fmt.Errorf("failed to read stock for product %s: %w", productID, translatePgError(err))
		}
		if err := inventory.CheckDecrement(current, qty, allowNegativeStock); err != nil {
			return fmt.Errorf("product %s: %w", productID, err)
		}
		batch.Queue(query, productID, qty, now, userID)
		productIDs = append(productIDs, productID)
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		ct, err := br.Exec()
		if err != nil {
			if batchErr == nil {
				batchErr = fmt.Errorf("failed to decrement stock for product %s: %w", productIDs[i], translatePgError(err))
			}
		} else if ct.RowsAffected() == 0 {
			if batchErr == nil {
				batchErr = fmt.Errorf("%w: product %s not found during stock decrement", apperrors.ErrNotFound, productIDs[i])
			}
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close stock decrement batch: %w", translatePgError(err))
	}

	return batchErr
}
