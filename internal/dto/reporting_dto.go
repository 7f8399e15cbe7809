package dto

import (
	"github.com/shopspring/decimal"
	"github.com/storekhata/storekhata_backend/internal/core/domain"
)

// DashboardSummaryResponse carries the dashboard figures.
type DashboardSummaryResponse struct {
	TodayRevenue      decimal.Decimal `json:"todayRevenue"`
	TodaySaleCount    int64           `json:"todaySaleCount"`
	OutstandingCredit decimal.Decimal `json:"outstandingCredit"`
	LowStockCount     int64           `json:"lowStockCount"`
}

// ToDashboardSummaryResponse converts the domain summary to its DTO.
func ToDashboardSummaryResponse(s *domain.DashboardSummary) DashboardSummaryResponse {
	return DashboardSummaryResponse{
		TodayRevenue:      s.TodayRevenue,
		TodaySaleCount:    s.TodaySaleCount,
		OutstandingCredit: s.OutstandingCredit,
		LowStockCount:     s.LowStockCount,
	}
}
