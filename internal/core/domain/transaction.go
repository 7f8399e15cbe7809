package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a credit transaction is a borrow or a repayment.
type TransactionType string

const (
	Borrow TransactionType = "BORROW"
	Repay  TransactionType = "REPAY"
)

// Transaction is an immutable, append-only credit event against a customer.
// Rows are never updated or deleted after creation; the customer's
// totalBorrowed/totalRepaid accumulators are derived from them.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	CustomerID      string          `json:"customerID"`
	TransactionType TransactionType `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"` // strictly positive
	Description     string          `json:"description"`
	CreatedBy       *string         `json:"createdBy"` // authoring actor; nil when written outside an authenticated context
	CreatedAt       time.Time       `json:"createdAt"` // server-assigned, UTC
}
