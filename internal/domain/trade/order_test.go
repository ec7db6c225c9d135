package trade

import (
	"testing"

	"github.com/erp/orderflow/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func TestNewLineItem(t *testing.T) {
	t.Run("valid item", func(t *testing.T) {
		li, err := NewLineItem(" Teclado ", decimal.NewFromInt(10), dec(2))
		require.NoError(t, err)
		assert.Equal(t, "Teclado", li.Name)
		assert.True(t, decimal.NewFromInt(20).Equal(li.Subtotal()))
	})

	t.Run("nil quantity counts as one", func(t *testing.T) {
		li, err := NewLineItem("Mouse", decimal.NewFromInt(5), nil)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(5).Equal(li.Subtotal()))
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := NewLineItem("X", decimal.NewFromInt(-1), nil)
		assert.True(t, shared.IsInvalidArgument(err))
	})

	t.Run("negative quantity", func(t *testing.T) {
		_, err := NewLineItem("X", decimal.NewFromInt(1), dec(-1))
		assert.ErrorIs(t, err, shared.ErrInvalidLineItem)
	})
}

func TestNewOrder(t *testing.T) {
	o, err := NewOrder(1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), o.CustomerID)
	assert.Nil(t, o.Total)

	_, err = NewOrder(0)
	assert.True(t, shared.IsInvalidArgument(err))
}

func TestOrder_AttachItems(t *testing.T) {
	o, err := NewOrder(1)
	require.NoError(t, err)

	x, _ := NewLineItem("X", decimal.NewFromInt(10), dec(2))
	y, _ := NewLineItem("Y", decimal.NewFromInt(5), nil)
	require.NoError(t, o.AttachItems([]LineItem{x, y}))

	require.NotNil(t, o.Total)
	assert.True(t, decimal.NewFromInt(25).Equal(*o.Total))
	assert.Len(t, o.Items, 2)
}

func TestOrder_StampCode(t *testing.T) {
	o := &Order{}
	o.StampCode("ORDER-0A1B2C3D")
	assert.Equal(t, "Pedido generado con código: ORDER-0A1B2C3D", o.Description)
	assert.Equal(t, "ORDER-0A1B2C3D", o.Code())

	o.Description = "manual"
	assert.Empty(t, o.Code())
}

func TestOrder_Normalize(t *testing.T) {
	o := &Order{}
	require.NoError(t, o.Normalize())
	require.NotNil(t, o.Total)
	assert.True(t, o.Total.IsZero())

	o.Total = dec(-3)
	assert.Error(t, o.Normalize())
}

func TestNewOrderCreatedEvent(t *testing.T) {
	o := &Order{CustomerID: 7, Total: dec(12.5)}
	o.ID = 3
	o.StampCode("ORDER-DEADBEEF")

	evt := NewOrderCreatedEvent(o)
	assert.Equal(t, EventTypeOrderCreated, evt.EventType())
	assert.Equal(t, AggregateTypeOrder, evt.AggregateType())
	assert.Equal(t, int64(3), evt.AggregateID())
	assert.Equal(t, "ORDER-DEADBEEF", evt.Code)
	assert.True(t, decimal.NewFromFloat(12.5).Equal(evt.Total))
}
