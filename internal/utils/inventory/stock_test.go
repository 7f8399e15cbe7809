package inventory_test

import (
	"testing"

	"github.com/storekhata/storekhata_backend/internal/apperrors"
	"github.com/storekhata/storekhata_backend/internal/utils/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDecrement(t *testing.T) {
	tests := []struct {
		name          string
		current       int
		quantity      int
		allowNegative bool
		wantErr       error
	}{
		{name: "exact stock", current: 5, quantity: 5, allowNegative: false, wantErr: nil},
		{name: "plenty of stock", current: 10, quantity: 3, allowNegative: false, wantErr: nil},
		{name: "shortage rejected", current: 2, quantity: 3, allowNegative: false, wantErr: apperrors.ErrInsufficientStock},
		{name: "shortage allowed by policy", current: 2, quantity: 3, allowNegative: true, wantErr: nil},
		{name: "zero stock rejected", current: 0, quantity: 1, allowNegative: false, wantErr: apperrors.ErrInsufficientStock},
		{name: "zero quantity invalid", current: 10, quantity: 0, allowNegative: false, wantErr: apperrors.ErrValidation},
		{name: "negative quantity invalid", current: 10, quantity: -2, allowNegative: false, wantErr: apperrors.ErrValidation},
		{name: "negative quantity invalid even when policy allows shortage", current: 10, quantity: -2, allowNegative: true, wantErr: apperrors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := inventory.CheckDecrement(tt.current, tt.quantity, tt.allowNegative)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestNextStock(t *testing.T) {
	assert.Equal(t, 7, inventory.NextStock(10, 3))
	assert.Equal(t, 0, inventory.NextStock(3, 3))
	// Policy permitting, stock may go negative.
	assert.Equal(t, -2, inventory.NextStock(1, 3))
}

func TestIsLowStock(t *testing.T) {
	assert.True(t, inventory.IsLowStock(0, 0))
	assert.True(t, inventory.IsLowStock(5, 5))
	assert.True(t, inventory.IsLowStock(4, 5))
	assert.False(t, inventory.IsLowStock(6, 5))
}
