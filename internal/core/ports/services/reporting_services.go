package services

import (
	"context"

	"github.com/storekhata/storekhata_backend/internal/core/domain"
)

// ReportingSvcFacade exposes the read-only dashboard aggregation.
type ReportingSvcFacade interface {
	GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error)
}
