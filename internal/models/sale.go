package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus mirrors domain.PaymentStatus at the storage layer.
type PaymentStatus string

const (
	Paid   PaymentStatus = "PAID"
	Credit PaymentStatus = "CREDIT"
)

// Sale represents a sale row. Immutable after insert.
type Sale struct {
	SaleID        string          `db:"sale_id"`
	CustomerID    *string         `db:"customer_id"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	PaymentStatus PaymentStatus   `db:"payment_status"`
	CreatedBy     *string         `db:"created_by"`
	CreatedAt     time.Time       `db:"created_at"`
}

// SaleItem represents a sale line item row. Immutable after insert.
type SaleItem struct {
	SaleItemID string          `db:"sale_item_id"`
	SaleID     string          `db:"sale_id"`
	ProductID  string          `db:"product_id"`
	Quantity   int             `db:"quantity"`
	UnitPrice  decimal.Decimal `db:"unit_price"`
}
