package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/storekhata/storekhata_backend/internal/core/domain"
	portsrepo "github.com/storekhata/storekhata_backend/internal/core/ports/repositories"
	portssvc "github.com/storekhata/storekhata_backend/internal/core/ports/services"
	"github.com/storekhata/storekhata_backend/internal/middleware"
)

type ReportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

func NewReportingService(repo portsrepo.ReportingRepository) *ReportingService {
	return &ReportingService{reportingRepo: repo}
}

// Ensure ReportingService implements the facade
var _ portssvc.ReportingSvcFacade = (*ReportingService)(nil)

// GetDashboardSummary computes the dashboard figures. "Today" starts at
// UTC midnight.
func (s *ReportingService) GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	summary, err := s.reportingRepo.GetDashboardSummary(ctx, dayStart)
	if err != nil {
		logger.Error("Failed to compute dashboard summary", slog.String("error", err.Error()))
		return nil, err
	}
	return summary, nil
}
