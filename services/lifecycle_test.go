package services

import (
	"testing"

	"restaurant-platform/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder() *models.Order {
	return &models.Order{
		ID:             42,
		OrderNumber:    "ORD-1001",
		UserID:         7,
		RestaurantID:   3,
		RestaurantName: "Testaurant",
		Status:         models.OrderPending,
		PaymentMethod:  models.PayByCard,
		Total:          decimal.NewFromFloat(27.50),
	}
}

func TestTransitionEffectsSameStatusIsEmpty(t *testing.T) {
	o := testOrder()
	for _, status := range []string{
		models.OrderPending, models.OrderConfirmed, models.OrderOutForDelivery,
		models.OrderDelivered, models.OrderCancelled,
	} {
		assert.True(t, TransitionEffects(status, status, o).Empty(), status)
	}
}

func TestTransitionEffectsOrderPlaced(t *testing.T) {
	o := testOrder()
	e := TransitionEffects("", models.OrderPending, o)

	require.Len(t, e.Notifications, 1)
	n := e.Notifications[0]
	assert.Equal(t, models.NotifyOrder, n.Type)
	assert.Equal(t, "Order Placed Successfully", n.Title)
	assert.Equal(t, "Your order #ORD-1001 has been placed at Testaurant. Total: $27.50", n.Message)
	assert.Equal(t, 42, n.Data["order_id"])
	assert.Equal(t, "ORD-1001", n.Data["order_number"])
	assert.False(t, e.ConfirmCashPayment)
	assert.Nil(t, e.CashConfirmed)
}

func TestTransitionEffectsSingleNotificationTransitions(t *testing.T) {
	o := testOrder()
	cases := []struct {
		next    string
		title   string
		message string
	}{
		{models.OrderConfirmed, "Order Confirmed", "Your order #ORD-1001 has been confirmed by Testaurant."},
		{models.OrderOutForDelivery, "Order Out for Delivery", "Your order #ORD-1001 is on its way!"},
		{models.OrderCancelled, "Order Cancelled", "Your order #ORD-1001 has been cancelled."},
	}
	for _, tc := range cases {
		e := TransitionEffects(models.OrderPending, tc.next, o)
		require.Len(t, e.Notifications, 1, tc.next)
		assert.Equal(t, tc.title, e.Notifications[0].Title)
		assert.Equal(t, tc.message, e.Notifications[0].Message)
		assert.False(t, e.ConfirmCashPayment, tc.next)
	}
}

func TestTransitionEffectsDeliveredCardOrder(t *testing.T) {
	o := testOrder()
	o.Status = models.OrderOutForDelivery

	e := TransitionEffects(models.OrderOutForDelivery, models.OrderDelivered, o)

	require.Len(t, e.Notifications, 1)
	assert.Equal(t, "Order Delivered", e.Notifications[0].Title)
	assert.False(t, e.ConfirmCashPayment)
	assert.Nil(t, e.CashConfirmed)
}

func TestTransitionEffectsDeliveredUnpaidCashOrder(t *testing.T) {
	o := testOrder()
	o.PaymentMethod = models.PayByCash
	o.IsPaid = false

	e := TransitionEffects(models.OrderOutForDelivery, models.OrderDelivered, o)

	assert.True(t, e.ConfirmCashPayment)
	require.NotNil(t, e.CashConfirmed)
	assert.Equal(t, models.NotifyPayment, e.CashConfirmed.Type)
	assert.Equal(t, "Order Delivered and Paid", e.CashConfirmed.Title)
	require.Len(t, e.Notifications, 1)
	assert.Equal(t, "Order Delivered", e.Notifications[0].Title)
}

func TestTransitionEffectsDeliveredPaidCashOrder(t *testing.T) {
	o := testOrder()
	o.PaymentMethod = models.PayByCash
	o.IsPaid = true

	e := TransitionEffects(models.OrderOutForDelivery, models.OrderDelivered, o)

	assert.False(t, e.ConfirmCashPayment)
	assert.Nil(t, e.CashConfirmed)
	require.Len(t, e.Notifications, 1)
}
