package domain

import (
	"github.com/shopspring/decimal"
)

// Product is a sellable catalog item with price and stock.
type Product struct {
	ProductID         string          `json:"productID"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	UnitPrice         decimal.Decimal `json:"unitPrice"` // non-negative
	StockQuantity     int             `json:"stockQuantity"`
	LowStockThreshold int             `json:"lowStockThreshold"`
	UnitLabel         string          `json:"unitLabel"` // e.g. "pc", "kg", "ltr"
	AuditFields
}

// IsLowStock reports whether the product's stock is at or below its threshold.
// Derived predicate, never stored.
func (p Product) IsLowStock() bool {
	return p.StockQuantity <= p.LowStockThreshold
}
