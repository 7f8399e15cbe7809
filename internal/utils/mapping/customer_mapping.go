package mapping

import (
	"github.com/storekhata/storekhata_backend/internal/core/domain"
	"github.com/storekhata/storekhata_backend/internal/models"
)

// ToModelCustomer converts a domain.Customer to its storage representation.
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:    d.CustomerID,
		Name:          d.Name,
		Phone:         d.Phone,
		Address:       d.Address,
		TotalBorrowed: d.TotalBorrowed,
		TotalRepaid:   d.TotalRepaid,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCustomer converts a storage row to the domain representation.
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:    m.CustomerID,
		Name:          m.Name,
		Phone:         m.Phone,
		Address:       m.Address,
		TotalBorrowed: m.TotalBorrowed,
		TotalRepaid:   m.TotalRepaid,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCustomerSlice converts a slice of customer rows.
func ToDomainCustomerSlice(ms []models.Customer) []domain.Customer {
	ds := make([]domain.Customer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCustomer(m)
	}
	return ds
}
