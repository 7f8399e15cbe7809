package mapping

import (
	"github.com/storekhata/storekhata_backend/internal/core/domain"
	"github.com/storekhata/storekhata_backend/internal/models"
)

// ToModelProduct converts a domain.Product to its storage representation.
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:         d.ProductID,
		Name:              d.Name,
		Category:          d.Category,
		UnitPrice:         d.UnitPrice,
		StockQuantity:     d.StockQuantity,
		LowStockThreshold: d.LowStockThreshold,
		UnitLabel:         d.UnitLabel,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProduct converts a storage row to the domain representation.
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:         m.ProductID,
		Name:              m.Name,
		Category:          m.Category,
		UnitPrice:         m.UnitPrice,
		StockQuantity:     m.StockQuantity,
		LowStockThreshold: m.LowStockThreshold,
		UnitLabel:         m.UnitLabel,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProductSlice converts a slice of product rows.
func ToDomainProductSlice(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProduct(m)
	}
	return ds
}
