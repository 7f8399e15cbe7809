package mapping

import (
	"github.com/storekhata/storekhata_backend/internal/core/domain"
	"github.com/storekhata/storekhata_backend/internal/models"
)

// ToModelSale converts a domain.Sale to its storage representation.
func ToModelSale(d domain.Sale) models.Sale {
	return models.Sale{
		SaleID:        d.SaleID,
		CustomerID:    d.CustomerID,
		TotalAmount:   d.TotalAmount,
		PaymentStatus: models.PaymentStatus(d.PaymentStatus),
		CreatedBy:     d.CreatedBy,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainSale converts a storage row to the domain representation.
func ToDomainSale(m models.Sale) domain.Sale {
	return domain.Sale{
		SaleID:        m.SaleID,
		CustomerID:    m.CustomerID,
		TotalAmount:   m.TotalAmount,
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
		CreatedBy:     m.CreatedBy,
		CreatedAt:     m.CreatedAt,
	}
}

// ToModelSaleItem converts a domain.SaleItem to its storage representation.
func ToModelSaleItem(d domain.SaleItem) models.SaleItem {
	return models.SaleItem{
		SaleItemID: d.SaleItemID,
		SaleID:     d.SaleID,
		ProductID:  d.ProductID,
		Quantity:   d.Quantity,
		UnitPrice:  d.UnitPrice,
	}
}

// ToDomainSaleItem converts a storage row to the domain representation.
func ToDomainSaleItem(m models.SaleItem) domain.SaleItem {
	return domain.SaleItem{
		SaleItemID: m.SaleItemID,
		SaleID:     m.SaleID,
		ProductID:  m.ProductID,
		Quantity:   m.Quantity,
		UnitPrice:  m.UnitPrice,
	}
}

// ToDomainSaleSlice converts a slice of sale rows.
func ToDomainSaleSlice(ms []models.Sale) []domain.Sale {
	ds := make([]domain.Sale, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSale(m)
	}
	return ds
}

// ToDomainSaleItemSlice converts a slice of sale item rows.
func ToDomainSaleItemSlice(ms []models.SaleItem) []domain.SaleItem {
	ds := make([]domain.SaleItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSaleItem(m)
	}
	return ds
}
