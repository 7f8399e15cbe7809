package mapping

import (
	"github.com/storekhata/storekhata_backend/internal/core/domain"
	"github.com/storekhata/storekhata_backend/internal/models"
)

// ToModelTransaction converts a domain.Transaction to its storage representation.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		CustomerID:      d.CustomerID,
		TransactionType: models.TransactionType(d.TransactionType),
		Amount:          d.Amount,
		Description:     d.Description,
		CreatedBy:       d.CreatedBy,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainTransaction converts a storage row to the domain representation.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		CustomerID:      m.CustomerID,
		TransactionType: domain.TransactionType(m.TransactionType),
		Amount:          m.Amount,
		Description:     m.Description,
		CreatedBy:       m.CreatedBy,
		CreatedAt:       m.CreatedAt,
	}
}

// ToDomainTransactionSlice converts a slice of transaction rows.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
