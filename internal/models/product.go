package models

import (
	"github.com/shopspring/decimal"
)

// Product represents a catalog row. stock_quantity is adjusted only inside
// the sale unit of work (or by an explicit catalog edit).
type Product struct {
	ProductID         string          `db:"product_id"`
	Name              string          `db:"name"`
	Category          string          `db:"category"`
	UnitPrice         decimal.Decimal `db:"unit_price"`
	StockQuantity     int             `db:"stock_quantity"`
	LowStockThreshold int             `db:"low_stock_threshold"`
	UnitLabel         string          `db:"unit_label"`
	AuditFields
}
