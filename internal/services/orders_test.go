package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunohmachado/vitrine/internal/common"
	"github.com/brunohmachado/vitrine/internal/models"
)

func TestPlaceOrder_RequiresLogin(t *testing.T) {
	svc := NewOrderService(newTestData(t))

	_, err := svc.Place(context.Background(), nil, []models.CartItem{laptop(1)})
	require.ErrorIs(t, err, common.ErrNotLoggedIn)
}

func TestPlaceOrder_EmptyCartAborts(t *testing.T) {
	data := newTestData(t)
	svc := NewOrderService(data)
	ctx := context.Background()

	_, err := svc.Place(ctx, userA, nil)
	require.ErrorIs(t, err, common.ErrEmptyCart)

	orders, err := data.Orders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestPlaceOrder_ComputesDiscountedTotal(t *testing.T) {
	svc := NewOrderService(newTestData(t))
	ctx := context.Background()

	// Fixed scenario: one Laptop X at R$ 2.500,00 against the R$ 1.000,00
	// discount leaves a total of R$ 1.500,00.
	order, err := svc.Place(ctx, userA, []models.CartItem{laptop(1)})
	require.NoError(t, err)

	assert.InDelta(t, 2500.00, order.Subtotal, 0.001)
	assert.InDelta(t, 1000.00, order.Discount, 0.001)
	assert.InDelta(t, 1500.00, order.Total, 0.001)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
	assert.Equal(t, userA.ID, order.UserID)
	assert.NotEmpty(t, order.ID)
}

func TestPlaceOrder_TotalNeverNegative(t *testing.T) {
	svc := NewOrderService(newTestData(t))
	ctx := context.Background()

	cheap := models.CartItem{Name: "Cabo USB", Price: "R$ 19,90", Quantity: 1}
	order, err := svc.Place(ctx, userA, []models.CartItem{cheap})
	require.NoError(t, err)

	assert.InDelta(t, 19.90, order.Subtotal, 0.001)
	assert.Zero(t, order.Total)
}

func TestPlaceOrder_SnapshotIndependentOfCartMutation(t *testing.T) {
	svc := NewOrderService(newTestData(t))
	ctx := context.Background()

	cart := []models.CartItem{laptop(2)}
	order, err := svc.Place(ctx, userA, cart)
	require.NoError(t, err)

	// Mutating the cart afterwards must not reach into the order.
	cart[0].Quantity = 99
	cart[0].Name = "changed"

	orders, err := svc.List(ctx, userA)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "Laptop X", orders[0].Items[0].Name)
	assert.Equal(t, 2, orders[0].Items[0].Quantity)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestListOrders_FiltersByUserAndSortsByDateDescending(t *testing.T) {
	os := NewOrderService(newTestData(t)).(*orderService)
	ctx := context.Background()

	clock := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	os.now = func() time.Time {
		clock = clock.Add(time.Hour)
		return clock
	}

	first, err := os.Place(ctx, userA, []models.CartItem{laptop(1)})
	require.NoError(t, err)
	_, err = os.Place(ctx, userB, []models.CartItem{laptop(1)})
	require.NoError(t, err)
	second, err := os.Place(ctx, userA, []models.CartItem{laptop(2)})
	require.NoError(t, err)

	orders, err := os.List(ctx, userA)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
	for _, o := range orders {
		assert.Equal(t, userA.ID, o.UserID)
	}
}

func TestPlaceOrder_MalformedQuantityCountsAsOne(t *testing.T) {
	svc := NewOrderService(newTestData(t))
	ctx := context.Background()

	broken := models.CartItem{Name: "Teclado", Price: "R$ 1.100,00", Quantity: 0}
	order, err := svc.Place(ctx, userA, []models.CartItem{broken})
	require.NoError(t, err)

	assert.InDelta(t, 1100.00, order.Subtotal, 0.001)
	assert.Equal(t, 1, order.Items[0].Quantity)
	assert.InDelta(t, 100.00, order.Total, 0.001)
}
