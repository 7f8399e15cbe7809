package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/storekhata/storekhata_backend/internal/core/domain"
)

// SaleItemRequest is one requested line of a sale. UnitPrice is optional;
// when nil the catalog price at time of sale is captured.
type SaleItemRequest struct {
	ProductID string           `json:"productID" binding:"required"`
	Quantity  int              `json:"quantity" binding:"required,gt=0"`
	UnitPrice *decimal.Decimal `json:"unitPrice"`
}

// CreateSaleRequest defines the data needed to record a sale.
type CreateSaleRequest struct {
	CustomerID    *string              `json:"customerID"` // optional, walk-in sales carry none
	PaymentStatus domain.PaymentStatus `json:"paymentStatus" binding:"required,oneof=PAID CREDIT"`
	Items         []SaleItemRequest    `json:"items" binding:"required,min=1,dive"`
}

// SaleItemResponse is one line of a recorded sale.
type SaleItemResponse struct {
	SaleItemID string          `json:"saleItemID"`
	ProductID  string          `json:"productID"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	LineTotal  decimal.Decimal `json:"lineTotal"`
}

// SaleResponse defines the data returned for a sale.
type SaleResponse struct {
	SaleID        string               `json:"saleID"`
	CustomerID    *string              `json:"customerID"`
	TotalAmount   decimal.Decimal      `json:"totalAmount"`
	PaymentStatus domain.PaymentStatus `json:"paymentStatus"`
	CreatedBy     *string              `json:"createdBy"`
	CreatedAt     time.Time            `json:"createdAt"`
	Items         []SaleItemResponse   `json:"items,omitempty"`
}

// ToSaleResponse converts a sale and its line items to the response DTO.
func ToSaleResponse(s *domain.Sale, items []domain.SaleItem) SaleResponse {
	resp := SaleResponse{
		SaleID:        s.SaleID,
		CustomerID:    s.CustomerID,
		TotalAmount:   s.TotalAmount,
		PaymentStatus: s.PaymentStatus,
		CreatedBy:     s.CreatedBy,
		CreatedAt:     s.CreatedAt,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, SaleItemResponse{
			SaleItemID: item.SaleItemID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			LineTotal:  item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}
	return resp
}

// ToListSaleResponse converts sales without their line items (list views).
func ToListSaleResponse(sales []domain.Sale) []SaleResponse {
	res := make([]SaleResponse, len(sales))
	for i := range sales {
		res[i] = ToSaleResponse(&sales[i], nil)
	}
	return res
}

// ListSalesParams defines query parameters for listing sales.
type ListSalesParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}
