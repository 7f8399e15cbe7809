package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/storekhata/storekhata_backend/internal/core/domain"
	portsrepo "github.com/storekhata/storekhata_backend/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates the read-only repository backing the
// dashboard aggregates.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetDashboardSummary computes today's revenue and sale count, the total
// outstanding credit across all customers, and the number of low-stock
// products, all in a single round trip. dayStart bounds "today" so the
// caller controls the store's timezone.
func (r *PgxReportingRepository) GetDashboardSummary(ctx context.Context, dayStart time.Time) (*domain.DashboardSummary, error) {
	query := `
		SELECT
			(SELECT COALESCE(SUM(total_amount), 0) FROM sales WHERE created_at >= $1)    AS today_revenue,
			(SELECT COUNT(*) FROM sales WHERE created_at >= $1)                          AS today_sale_count,
			(SELECT COALESCE(SUM(total_borrowed - total_repaid), 0) FROM customers)      AS outstanding_credit,
			(SELECT COUNT(*) FROM products WHERE stock_quantity <= low_stock_threshold)  AS low_stock_count;
	`
	var s domain.DashboardSummary
	err := r.Pool.QueryRow(ctx, query, dayStart).Scan(
		&s.TodayRevenue,
		&s.TodaySaleCount,
		&s.OutstandingCredit,
		&s.LowStockCount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute dashboard summary: %w", translatePgError(err))
	}
	return &s, nil
}
