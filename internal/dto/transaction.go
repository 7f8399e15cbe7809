package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/storekhata/storekhata_backend/internal/core/domain"
)

// CreateTransactionRequest defines the data needed to record a borrow or
// repay event against a customer.
type CreateTransactionRequest struct {
	TransactionType domain.TransactionType `json:"transactionType" binding:"required,oneof=BORROW REPAY"`
	Amount          decimal.Decimal        `json:"amount"` // positivity checked in the service
	Description     string                 `json:"description"`
}

// TransactionResponse defines the data returned for a credit transaction.
type TransactionResponse struct {
	TransactionID   string                 `json:"transactionID"`
	CustomerID      string                 `json:"customerID"`
	TransactionType domain.TransactionType `json:"transactionType"`
	Amount          decimal.Decimal        `json:"amount"`
	Description     string                 `json:"description"`
	CreatedBy       *string                `json:"createdBy"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		CustomerID:      t.CustomerID,
		TransactionType: t.TransactionType,
		Amount:          t.Amount,
		Description:     t.Description,
		CreatedBy:       t.CreatedBy,
		CreatedAt:       t.CreatedAt,
	}
}

// ToListTransactionResponse converts a slice of transactions to response DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// ListTransactionsParams defines query parameters for a customer's history.
type ListTransactionsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}
