package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors domain.TransactionType at the storage layer.
type TransactionType string

const (
	Borrow TransactionType = "BORROW"
	Repay  TransactionType = "REPAY"
)

// Transaction represents an append-only credit event row. Immutable after
// insert; there is no update path for this table.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	CustomerID      string          `db:"customer_id"`
	TransactionType TransactionType `db:"transaction_type"`
	Amount          decimal.Decimal `db:"amount"`
	Description     string          `db:"description"`
	CreatedBy       *string         `db:"created_by"`
	CreatedAt       time.Time       `db:"created_at"`
}
