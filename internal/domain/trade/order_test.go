package trade

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrderNumber(t *testing.T) {
	now := time.Date(2025, 3, 7, 9, 5, 4, 123_456_789, time.UTC)
	assert.Equal(t, "ORD-20250307090504123", GenerateOrderNumber(now))
}

func TestGenerateOrderNumber_PadsMilliseconds(t *testing.T) {
	now := time.Date(2025, 3, 7, 9, 5, 4, 7_000_000, time.UTC)
	assert.Equal(t, "ORD-20250307090504007", GenerateOrderNumber(now))
}

func TestGenerateOrderNumber_UsesUTC(t *testing.T) {
	berlin := time.FixedZone("CET", 3600)
	now := time.Date(2025, 1, 1, 0, 30, 0, 0, berlin)
	assert.Equal(t, "ORD-20241231233000000", GenerateOrderNumber(now))
}

func TestNewOrder(t *testing.T) {
	now := time.Date(2025, 3, 7, 9, 5, 4, 0, time.UTC)
	active := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	order, err := NewOrder(42, active, now)
	require.NoError(t, err)

	assert.Equal(t, int64(42), order.CustomerID)
	assert.Equal(t, "ORD-20250307090504000", order.OrderNumber)
	assert.Equal(t, time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC), order.OrderDate)
	assert.Equal(t, active, order.ActiveDate)
	assert.Equal(t, "Created on 2025-03-07 09:05:04Z", order.Description)
	assert.True(t, order.IsActive())
	assert.Equal(t, 0, order.ItemCount())
	assert.LessOrEqual(t, len(order.OrderNumber), MaxOrderNumberLength)
}

func TestNewOrder_Validation(t *testing.T) {
	now := time.Now()

	_, err := NewOrder(0, now, now)
	assert.Error(t, err)

	_, err = NewOrder(1, time.Time{}, now)
	assert.Error(t, err)
}

func TestOrder_AddItem(t *testing.T) {
	order, err := NewOrder(1, time.Now(), time.Now())
	require.NoError(t, err)

	require.NoError(t, order.AddItem(1, 10, decimal.RequireFromString("200.000")))
	require.NoError(t, order.AddItem(2, 20, decimal.Zero))

	require.Equal(t, 2, order.ItemCount())
	assert.Equal(t, int64(10), order.Items[0].TariffID)
	assert.Equal(t, int64(20), order.Items[1].TariffID)

	assert.Error(t, order.AddItem(0, 10, decimal.Zero))
	assert.Error(t, order.AddItem(1, 0, decimal.Zero))
	assert.Error(t, order.AddItem(1, 10, decimal.NewFromInt(-1)))
	assert.Equal(t, 2, order.ItemCount())
}
