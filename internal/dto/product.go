package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/storekhata/storekhata_backend/internal/core/domain"
)

// CreateProductRequest defines the data needed to add a catalog item.
type CreateProductRequest struct {
	Name              string          `json:"name" binding:"required"`
	Category          string          `json:"category"`
	UnitPrice         decimal.Decimal `json:"unitPrice"` // non-negative, checked in the service
	StockQuantity     int             `json:"stockQuantity" binding:"gte=0"`
	LowStockThreshold int             `json:"lowStockThreshold" binding:"gte=0"`
	UnitLabel         string          `json:"unitLabel"`
}

// UpdateProductRequest defines the fields allowed for updating a catalog item.
type UpdateProductRequest struct {
	Name              *string          `json:"name"`
	Category          *string          `json:"category"`
	UnitPrice         *decimal.Decimal `json:"unitPrice"`
	StockQuantity     *int             `json:"stockQuantity"` // explicit restock/correction, not a sale decrement
	LowStockThreshold *int             `json:"lowStockThreshold"`
	UnitLabel         *string          `json:"unitLabel"`
}

// ProductResponse defines the data returned for a catalog item.
type ProductResponse struct {
	ProductID         string          `json:"productID"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	StockQuantity     int             `json:"stockQuantity"`
	LowStockThreshold int             `json:"lowStockThreshold"`
	UnitLabel         string          `json:"unitLabel"`
	LowStock          bool            `json:"lowStock"` // derived
	CreatedAt         time.Time       `json:"createdAt"`
	LastUpdatedAt     time.Time       `json:"lastUpdatedAt"`
}

// ToProductResponse converts a domain.Product to its response DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:         p.ProductID,
		Name:              p.Name,
		Category:          p.Category,
		UnitPrice:         p.UnitPrice,
		StockQuantity:     p.StockQuantity,
		LowStockThreshold: p.LowStockThreshold,
		UnitLabel:         p.UnitLabel,
		LowStock:          p.IsLowStock(),
		CreatedAt:         p.CreatedAt,
		LastUpdatedAt:     p.LastUpdatedAt,
	}
}

// ToListProductResponse converts a slice of products to response DTOs.
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i := range products {
		res[i] = ToProductResponse(&products[i])
	}
	return res
}

// ListProductsParams defines query parameters for listing products.
type ListProductsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}
