package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/storekhata/storekhata_backend/internal/apperrors"
	"github.com/storekhata/storekhata_backend/internal/core/domain"
	portsrepo "github.com/storekhata/storekhata_backend/internal/core/ports/repositories"
	"github.com/storekhata/storekhata_backend/internal/models"
	"github.com/storekhata/storekhata_backend/internal/utils/mapping"
)

type PgxSaleRepository struct {
	BaseRepository
	productRepo portsrepo.ProductRepository
}

// newPgxSaleRepository creates a new repository for sale and line item data.
func newPgxSaleRepository(pool *pgxpool.Pool, productRepo portsrepo.ProductRepository) portsrepo.SaleRepository {
	return &PgxSaleRepository{
		BaseRepository: BaseRepository{Pool: pool},
		productRepo:    productRepo,
	}
}

// Ensure PgxSaleRepository implements portsrepo.SaleRepository
var _ portsrepo.SaleRepository = (*PgxSaleRepository)(nil)

// SaveSale persists a sale, its line items, and the matching stock decrements
// within one DB transaction. Any failure rolls back the whole unit of work:
// no partial sale or partial decrement is ever observable.
func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale, items []domain.SaleItem, allowNegativeStock bool) error {
	productRepo := r.productRepo

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored if the transaction commits.
	defer r.Rollback(ctx, tx)

	now := sale.CreatedAt
	userID := ""
	if sale.CreatedBy != nil {
		userID = *sale.CreatedBy
	}

	// 1. Insert the sale row.
	modelSale := mapping.ToModelSale(sale)
	saleQuery := `
		INSERT INTO sales (sale_id, customer_id, total_amount, payment_status, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = tx.Exec(ctx, saleQuery,
		modelSale.SaleID,
		modelSale.CustomerID,
		modelSale.TotalAmount,
		modelSale.PaymentStatus,
		modelSale.CreatedBy,
		modelSale.CreatedAt,
	)
	if err != nil {
		translated := translatePgError(err)
		if errors.Is(translated, apperrors.ErrIntegrity) {
			return fmt.Errorf("%w: sale %s references a missing customer or user", apperrors.ErrIntegrity, modelSale.SaleID)
		}
		return apperrors.NewAppError(500, "failed to insert sale "+modelSale.SaleID, translated)
	}

	// 2. Lock the affected product rows and aggregate per-product quantities.
	decrements := make(map[string]int, len(items))
	productIDs := make([]string, 0, len(items))
	for _, item := range items {
		if _, seen := decrements[item.ProductID]; !seen {
			productIDs = append(productIDs, item.ProductID)
		}
		decrements[item.ProductID] += item.Quantity
	}

	if _, err := productRepo.FindProductsByIDsForUpdate(ctx, tx, productIDs); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return apperrors.NewAppError(500, "failed to lock products for sale "+modelSale.SaleID, err)
	}

	// 3. Insert the line items.
	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO sale_items (sale_item_id, sale_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, item := range items {
		modelItem := mapping.ToModelSaleItem(item)
		batch.Queue(itemQuery,
			modelItem.SaleItemID,
			modelItem.SaleID,
			modelItem.ProductID,
			modelItem.Quantity,
			modelItem.UnitPrice,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert line items for sale "+modelSale.SaleID, translatePgError(err))
	}

	// 4. Decrement stock for the locked rows under the configured policy.
	if err := productRepo.ApplyStockDecrementsInTx(ctx, tx, decrements, allowNegativeStock, userID, now); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindSaleByID retrieves a sale by its ID, without line items.
func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	query := `
		SELECT sale_id, customer_id, total_amount, payment_status, created_by, created_at
		FROM sales
		WHERE sale_id = $1;
	`
	var m models.Sale
	err := r.Pool.QueryRow(ctx, query, saleID).Scan(
		&m.SaleID,
		&m.CustomerID,
		&m.TotalAmount,
		&m.PaymentStatus,
		&m.CreatedBy,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sale by ID %s: %w", saleID, translatePgError(err))
	}

	d := mapping.ToDomainSale(m)
	return &d, nil
}

// FindSaleItemsBySaleID retrieves the ordered line items of a sale.
func (r *PgxSaleRepository) FindSaleItemsBySaleID(ctx context.Context, saleID string) ([]domain.SaleItem, error) {
	query := `
		SELECT sale_item_id, sale_id, product_id, quantity, unit_price
		FROM sale_items
		WHERE sale_id = $1
		ORDER BY sale_item_id;
	`
	rows, err := r.Pool.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query line items for sale %s: %w", saleID, translatePgError(err))
	}
	defer rows.Close()

	items := []models.SaleItem{}
	for rows.Next() {
		var m models.SaleItem
		if err := rows.Scan(&m.SaleItemID, &m.SaleID, &m.ProductID, &m.Quantity, &m.UnitPrice); err != nil {
			return nil, fmt.Errorf("failed to scan line item row for sale %s: %w", saleID, err)
		}
		items = append(items, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating line item rows for sale %s: %w", saleID, rows.Err())
	}

	return mapping.ToDomainSaleItemSlice(items), nil
}

// ListSales retrieves a paginated list of sales, most recent first.
func (r *PgxSaleRepository) ListSales(ctx context.Context, limit int, offset int) ([]domain.Sale, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT sale_id, customer_id, total_amount, payment_status, created_by, created_at
		FROM sales
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", translatePgError(err))
	}
	defer rows.Close()

	sales := []models.Sale{}
	for rows.Next() {
		var m models.Sale
		if err := rows.Scan(&m.SaleID, &m.CustomerID, &m.TotalAmount, &m.PaymentStatus, &m.CreatedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		sales = append(sales, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating sale rows: %w", rows.Err())
	}

	return mapping.ToDomainSaleSlice(sales), nil
}
