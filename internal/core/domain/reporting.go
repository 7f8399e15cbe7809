package domain

import (
	"github.com/shopspring/decimal"
)

// DashboardSummary aggregates the read-only figures shown on the store
// dashboard. Derived entirely from persisted rows, never stored.
type DashboardSummary struct {
	TodayRevenue      decimal.Decimal `json:"todayRevenue"`
	TodaySaleCount    int64           `json:"todaySaleCount"`
	OutstandingCredit decimal.Decimal `json:"outstandingCredit"` // Σ customer (borrowed - repaid)
	LowStockCount     int64           `json:"lowStockCount"`
}
