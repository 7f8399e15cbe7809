package inventory

import (
	"fmt"

	"github.com/storekhata/storekhata_backend/internal/apperrors"
)

// CheckDecrement validates that removing quantity units from the current
// stock is allowed under the active policy. When allowNegativeStock is false
// a shortage is rejected with apperrors.ErrInsufficientStock; when true the
// decrement is always permitted and stock may go negative.
// This is used in both services and repositories so the policy is applied
// identically everywhere a decrement happens.
func CheckDecrement(currentStock, quantity int, allowNegativeStock bool) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: decrement quantity must be positive, got %d", apperrors.ErrValidation, quantity)
	}
	if !allowNegativeStock && currentStock-quantity < 0 {
		return fmt.Errorf("%w: have %d, need %d", apperrors.ErrInsufficientStock, currentStock, quantity)
	}
	return nil
}

// NextStock returns the stock level after removing quantity units.
func NextStock(currentStock, quantity int) int {
	return currentStock - quantity
}

// IsLowStock reports whether stock is at or below the configured threshold.
func IsLowStock(stock, threshold int) bool {
	return stock <= threshold
}
