package finance

import (
	"testing"

	"github.com/erp/orderflow/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvoice(t *testing.T) {
	inv, err := NewInvoice(4)
	require.NoError(t, err)
	assert.Equal(t, int64(4), inv.SupplierID)
	assert.Nil(t, inv.Total)
	assert.Empty(t, inv.Number)

	_, err = NewInvoice(-1)
	assert.True(t, shared.IsInvalidArgument(err))
}

func TestInvoice_SetTotal(t *testing.T) {
	inv, _ := NewInvoice(1)
	require.NoError(t, inv.SetTotal(decimal.NewFromFloat(99.5)))
	assert.Equal(t, "99.5", inv.TotalOrZero().String())

	assert.Error(t, inv.SetTotal(decimal.NewFromInt(-1)))
}

func TestInvoice_SetNumber(t *testing.T) {
	inv, _ := NewInvoice(1)
	require.NoError(t, inv.SetNumber(" FAC-0001 "))
	assert.Equal(t, "FAC-0001", inv.Number)

	assert.Error(t, inv.SetNumber("   "))
}

func TestInvoice_Normalize(t *testing.T) {
	t.Run("fills missing total and number", func(t *testing.T) {
		inv, _ := NewInvoice(1)
		require.NoError(t, inv.Normalize(func() string { return "FAC-ABCDEF01" }))
		assert.True(t, inv.TotalOrZero().IsZero())
		require.NotNil(t, inv.Total)
		assert.Equal(t, "FAC-ABCDEF01", inv.Number)
	})

	t.Run("keeps supplied number", func(t *testing.T) {
		inv, _ := NewInvoice(1)
		inv.Number = "F-77"
		called := false
		require.NoError(t, inv.Normalize(func() string { called = true; return "x" }))
		assert.Equal(t, "F-77", inv.Number)
		assert.False(t, called)
	})
}
