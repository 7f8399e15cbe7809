package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus indicates how a sale was settled.
type PaymentStatus string

const (
	Paid   PaymentStatus = "PAID"
	Credit PaymentStatus = "CREDIT"
)

// Sale is an immutable record of a checkout. It is created atomically with
// its line items and the corresponding stock decrements.
type Sale struct {
	SaleID        string          `json:"saleID"`
	CustomerID    *string         `json:"customerID"` // optional walk-in sales have no customer
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
	CreatedBy     *string         `json:"createdBy"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// SaleItem is one line of a sale. UnitPrice is captured at time of sale so
// later catalog edits do not rewrite history.
type SaleItem struct {
	SaleItemID string          `json:"saleItemID"`
	SaleID     string          `json:"saleID"`
	ProductID  string          `json:"productID"`
	Quantity   int             `json:"quantity"` // strictly positive
	UnitPrice  decimal.Decimal `json:"unitPrice"`
}

// ComputeSaleTotal returns the sum of quantity × unit price over the items.
func ComputeSaleTotal(items []SaleItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
