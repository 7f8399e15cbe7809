package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/storekhata/storekhata_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestComputeSaleTotal(t *testing.T) {
	items := []domain.SaleItem{
		{Quantity: 2, UnitPrice: decimal.RequireFromString("12.50")},
		{Quantity: 3, UnitPrice: decimal.RequireFromString("0.75")},
		{Quantity: 1, UnitPrice: decimal.RequireFromString("99.99")},
	}

	total := domain.ComputeSaleTotal(items)
	assert.True(t, total.Equal(decimal.RequireFromString("127.24")), "total = %s", total)
}

func TestComputeSaleTotal_Empty(t *testing.T) {
	assert.True(t, domain.ComputeSaleTotal(nil).IsZero())
}

func TestCustomerAmountDue(t *testing.T) {
	c := domain.Customer{
		TotalBorrowed: decimal.NewFromInt(1500),
		TotalRepaid:   decimal.NewFromInt(1100),
	}
	assert.True(t, c.AmountDue().Equal(decimal.NewFromInt(400)))

	// Over-repayment yields a negative due, meaning the store owes the customer.
	c.TotalRepaid = decimal.NewFromInt(1600)
	assert.True(t, c.AmountDue().Equal(decimal.NewFromInt(-100)))
}

func TestProductIsLowStock(t *testing.T) {
	p := domain.Product{StockQuantity: 5, LowStockThreshold: 5}
	assert.True(t, p.IsLowStock())

	p.StockQuantity = 6
	assert.False(t, p.IsLowStock())

	p.StockQuantity = 0
	assert.True(t, p.IsLowStock())
}
