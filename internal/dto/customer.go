package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/storekhata/storekhata_backend/internal/core/domain"
)

// CreateCustomerRequest defines the data needed to register a new customer.
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"` // unique contact identifier
	Address string `json:"address"`                  // Optional
}

// UpdateCustomerRequest defines the fields allowed for updating a customer.
// Pointers distinguish zero-value updates from fields not provided.
// The credit accumulators are deliberately absent: only the credit
// coordinator may touch them.
type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID    string          `json:"customerID"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	TotalBorrowed decimal.Decimal `json:"totalBorrowed"`
	TotalRepaid   decimal.Decimal `json:"totalRepaid"`
	AmountDue     decimal.Decimal `json:"amountDue"` // derived, never persisted
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToCustomerResponse converts a domain.Customer to its response DTO.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:    c.CustomerID,
		Name:          c.Name,
		Phone:         c.Phone,
		Address:       c.Address,
		TotalBorrowed: c.TotalBorrowed,
		TotalRepaid:   c.TotalRepaid,
		AmountDue:     c.AmountDue(),
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// ToListCustomerResponse converts a slice of customers to response DTOs.
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i := range customers {
		res[i] = ToCustomerResponse(&customers[i])
	}
	return res
}

// ListCustomersParams defines query parameters for listing customers.
type ListCustomersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}
