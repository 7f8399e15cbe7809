package repositories

import (
	"context"
	"time"

	"github.com/storekhata/storekhata_backend/internal/core/domain"
)

// ReportingRepository defines the read-only aggregation queries behind the
// dashboard. Never writes.
type ReportingRepository interface {
	GetDashboardSummary(ctx context.Context, dayStart time.Time) (*domain.DashboardSummary, error)
}
