package models

import (
	"github.com/shopspring/decimal"
)

// Customer represents a customer row. total_borrowed and total_repaid are
// accumulator columns owned by the credit transaction path.
type Customer struct {
	CustomerID    string          `db:"customer_id"`
	Name          string          `db:"name"`
	Phone         string          `db:"phone"`
	Address       string          `db:"address"`
	TotalBorrowed decimal.Decimal `db:"total_borrowed"`
	TotalRepaid   decimal.Decimal `db:"total_repaid"`
	AuditFields
}
