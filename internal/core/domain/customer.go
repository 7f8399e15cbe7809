package domain

import (
	"github.com/shopspring/decimal"
)

// Customer is an account tracked for credit (borrow/repay) purposes.
// TotalBorrowed and TotalRepaid are maintained projections of the customer's
// transaction log: they are mutated only by the credit coordinator, in the
// same unit of work that appends the transaction row.
type Customer struct {
	CustomerID    string          `json:"customerID"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone"` // unique contact identifier
	Address       string          `json:"address"`
	TotalBorrowed decimal.Decimal `json:"totalBorrowed"`
	TotalRepaid   decimal.Decimal `json:"totalRepaid"`
	AuditFields
}

// AmountDue returns the outstanding balance. It is always derived, never
// persisted, so it cannot drift from the transaction log.
func (c Customer) AmountDue() decimal.Decimal {
	return c.TotalBorrowed.Sub(c.TotalRepaid)
}
