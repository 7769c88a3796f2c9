package services

import (
	"context"
	"testing"
	"time"

	"restaurant-platform/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	orders    *fakeOrderRepo
	payments  *fakePaymentRepo
	notifier  *fakeNotifier
	inventory *fakeInventoryConsumer
	svc       *OrderService
}

func newOrderFixture(orders ...*models.Order) *orderFixture {
	f := &orderFixture{
		orders:    newFakeOrderRepo(orders...),
		payments:  &fakePaymentRepo{payments: map[int]*models.Payment{}, cashPending: map[int]bool{}},
		notifier:  &fakeNotifier{},
		inventory: &fakeInventoryConsumer{},
	}
	f.svc = NewOrderService(f.orders, f.payments, f.notifier, f.inventory, nil, nil, nil)
	f.svc.now = func() time.Time { return sweepNow }
	return f
}

func adminScope() models.Scope {
	return models.Scope{Role: models.RoleAdmin, UserID: 1}
}

func TestChangeStatusInvalidStatus(t *testing.T) {
	f := newOrderFixture(testOrder())

	_, err := f.svc.ChangeStatus(context.Background(), adminScope(), 42, models.OrderStatusRequest{Status: "SHIPPED"})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestChangeStatusOrderNotFound(t *testing.T) {
	f := newOrderFixture()

	_, err := f.svc.ChangeStatus(context.Background(), adminScope(), 99, models.OrderStatusRequest{Status: models.OrderConfirmed})

	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestChangeStatusForbiddenForOtherCustomer(t *testing.T) {
	f := newOrderFixture(testOrder())
	scope := models.Scope{Role: models.RoleCustomer, UserID: 999}

	_, err := f.svc.ChangeStatus(context.Background(), scope, 42, models.OrderStatusRequest{Status: models.OrderCancelled})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestChangeStatusSameStatusIsIdempotent(t *testing.T) {
	f := newOrderFixture(testOrder())

	got, err := f.svc.ChangeStatus(context.Background(), adminScope(), 42, models.OrderStatusRequest{Status: models.OrderPending})

	require.NoError(t, err)
	assert.Equal(t, models.OrderPending, got.Status)
	assert.Zero(t, f.orders.updateCalls)
	assert.Empty(t, f.notifier.sent)
}

func TestChangeStatusTerminalOrder(t *testing.T) {
	o := testOrder()
	o.Status = models.OrderDelivered
	f := newOrderFixture(o)

	_, err := f.svc.ChangeStatus(context.Background(), adminScope(), 42, models.OrderStatusRequest{Status: models.OrderCancelled})

	assert.ErrorIs(t, err, ErrOrderClosed)
	assert.Zero(t, f.orders.updateCalls)
}

func TestChangeStatusGuardConflict(t *testing.T) {
	o := testOrder()
	f := newOrderFixture(o)
	// Another writer moves the order after the service read it.
	f.svc.now = func() time.Time {
		f.orders.orders[42].Status = models.OrderCancelled
		return sweepNow
	}

	_, err := f.svc.ChangeStatus(context.Background(), adminScope(), 42, models.OrderStatusRequest{Status: models.OrderConfirmed})

	assert.ErrorIs(t, err, ErrStatusConflict)
	assert.Empty(t, f.notifier.sent)
}

func TestChangeStatusConfirmConsumesInventory(t *testing.T) {
	f := newOrderFixture(testOrder())

	got, err := f.svc.ChangeStatus(context.Background(), adminScope(), 42, models.OrderStatusRequest{Status: models.OrderConfirmed})

	require.NoError(t, err)
	assert.Equal(t, models.OrderConfirmed, got.Status)
	assert.Equal(t, []int{42}, f.inventory.consumed)
	assert.Equal(t, []string{"Order Confirmed"}, f.notifier.titles())
}

func TestChangeStatusConfirmBlockedByStock(t *testing.T) {
	f := newOrderFixture(testOrder())
	stockErr := &InsufficientStockError{Ingredient: "Flour", Available: decimal.NewFromFloat(0.3), Required: decimal.NewFromFloat(0.4)}
	f.inventory.err = stockErr

	_, err := f.svc.ChangeStatus(context.Background(), adminScope(), 42, models.OrderStatusRequest{Status: models.OrderConfirmed})

	var got *InsufficientStockError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, "Flour", got.Ingredient)
	assert.Zero(t, f.orders.updateCalls)
	assert.Empty(t, f.notifier.sent)
}

func TestChangeStatusDeliveredConfirmsCash(t *testing.T) {
	o := testOrder()
	o.Status = models.OrderOutForDelivery
	o.PaymentMethod = models.PayByCash
	f := newOrderFixture(o)
	f.payments.cashPending[42] = true

	got, err := f.svc.ChangeStatus(context.Background(), adminScope(), 42, models.OrderStatusRequest{Status: models.OrderDelivered})

	require.NoError(t, err)
	assert.Equal(t, models.OrderDelivered, got.Status)
	assert.True(t, got.IsPaid)
	require.NotNil(t, got.DeliveredAt)
	assert.Equal(t, []int{42}, f.payments.confirmed)
	assert.Equal(t, []string{"Order Delivered and Paid", "Order Delivered"}, f.notifier.titles())
}

func TestChangeStatusDeliveredWithoutPendingCashPayment(t *testing.T) {
	o := testOrder()
	o.Status = models.OrderOutForDelivery
	o.PaymentMethod = models.PayByCash
	f := newOrderFixture(o)
	// No PENDING cash payment row: the confirmation step is skipped and the
	// order stays unpaid even though it is DELIVERED.

	got, err := f.svc.ChangeStatus(context.Background(), adminScope(), 42, models.OrderStatusRequest{Status: models.OrderDelivered})

	require.NoError(t, err)
	assert.Equal(t, models.OrderDelivered, got.Status)
	assert.False(t, got.IsPaid)
	assert.Empty(t, f.orders.paidDelivered)
	assert.Equal(t, []string{"Order Delivered"}, f.notifier.titles())
}

func TestChangeStatusDeliveredCardOrderSkipsCashConfirmation(t *testing.T) {
	o := testOrder()
	o.Status = models.OrderOutForDelivery
	o.IsPaid = true
	f := newOrderFixture(o)
	f.payments.cashPending[42] = true

	got, err := f.svc.ChangeStatus(context.Background(), adminScope(), 42, models.OrderStatusRequest{Status: models.OrderDelivered})

	require.NoError(t, err)
	assert.Empty(t, f.payments.confirmed)
	assert.Equal(t, []string{"Order Delivered"}, f.notifier.titles())
	assert.Equal(t, models.OrderDelivered, got.Status)
}

func TestChangeStatusCancelRecordsReason(t *testing.T) {
	f := newOrderFixture(testOrder())

	got, err := f.svc.ChangeStatus(context.Background(), adminScope(), 42, models.OrderStatusRequest{
		Status: models.OrderCancelled,
		Reason: "Customer changed their mind",
	})

	require.NoError(t, err)
	assert.Equal(t, models.OrderCancelled, got.Status)
	assert.Equal(t, "Customer changed their mind", got.CancellationReason)
	require.NotNil(t, got.CancelledAt)
	assert.Equal(t, []string{"Order Cancelled"}, f.notifier.titles())
}

func TestCheckoutPricesOrder(t *testing.T) {
	f := newOrderFixture()
	f.svc = NewOrderService(f.orders, f.payments, f.notifier, f.inventory,
		&fakeMenuSource{items: []models.MenuItem{
			{ID: 1, Name: "Margherita", Price: decimal.NewFromFloat(12.00), IsAvailable: true},
			{ID: 2, Name: "Tiramisu", Price: decimal.NewFromFloat(6.50), IsAvailable: true},
		}},
		&fakePromoSource{},
		&fakeRestaurantSource{restaurant: &models.Restaurant{ID: 3, Name: "Testaurant", OwnerID: 5}})
	f.svc.now = func() time.Time { return sweepNow }

	order, err := f.svc.Checkout(context.Background(), 7, models.CheckoutRequest{
		RestaurantID:    3,
		PaymentMethod:   models.PayByCard,
		DeliveryAddress: "1 Main St",
		Items: []models.CheckoutItem{
			{MenuItemID: 1, Quantity: 2},
			{MenuItemID: 2, Quantity: 1},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.Equal(t, "30.5", order.Subtotal.String())
	assert.Equal(t, "3.05", order.Tax.String())
	assert.Equal(t, "5", order.DeliveryFee.String())
	assert.Equal(t, "38.55", order.Total.String())
	require.Len(t, order.Items, 2)
	assert.Equal(t, "24", order.Items[0].Subtotal.String())

	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, "Order Placed Successfully", f.notifier.sent[0].draft.Title)
}

func TestCheckoutAppliesPromo(t *testing.T) {
	promos := &fakePromoSource{promo: &models.Promotion{
		ID: 9, Code: "TEN", DiscountType: models.DiscountPercent,
		Value:     decimal.NewFromInt(10),
		ValidFrom: sweepNow.Add(-time.Hour), ValidUntil: sweepNow.Add(time.Hour),
		IsActive: true,
	}}
	f := newOrderFixture()
	f.svc = NewOrderService(f.orders, f.payments, f.notifier, f.inventory,
		&fakeMenuSource{items: []models.MenuItem{
			{ID: 1, Name: "Margherita", Price: decimal.NewFromFloat(20.00), IsAvailable: true},
		}},
		promos,
		&fakeRestaurantSource{restaurant: &models.Restaurant{ID: 3, Name: "Testaurant"}})
	f.svc.now = func() time.Time { return sweepNow }

	order, err := f.svc.Checkout(context.Background(), 7, models.CheckoutRequest{
		RestaurantID:  3,
		PaymentMethod: models.PayByCard,
		PromoCode:     "TEN",
		Items:         []models.CheckoutItem{{MenuItemID: 1, Quantity: 1}},
	})

	require.NoError(t, err)
	assert.Equal(t, "2", order.Discount.String())
	// 20 - 2 + 2 tax + 5 delivery
	assert.Equal(t, "25", order.Total.String())
	assert.Equal(t, 1, promos.uses)
}

func TestCheckoutRejectsExpiredPromo(t *testing.T) {
	promos := &fakePromoSource{promo: &models.Promotion{
		ID: 9, Code: "OLD", DiscountType: models.DiscountFixed,
		Value:     decimal.NewFromInt(5),
		ValidFrom: sweepNow.Add(-48 * time.Hour), ValidUntil: sweepNow.Add(-24 * time.Hour),
		IsActive: true,
	}}
	f := newOrderFixture()
	f.svc = NewOrderService(f.orders, f.payments, f.notifier, f.inventory,
		&fakeMenuSource{items: []models.MenuItem{
			{ID: 1, Name: "Margherita", Price: decimal.NewFromFloat(20.00), IsAvailable: true},
		}},
		promos,
		&fakeRestaurantSource{restaurant: &models.Restaurant{ID: 3, Name: "Testaurant"}})
	f.svc.now = func() time.Time { return sweepNow }

	_, err := f.svc.Checkout(context.Background(), 7, models.CheckoutRequest{
		RestaurantID:  3,
		PaymentMethod: models.PayByCard,
		PromoCode:     "OLD",
		Items:         []models.CheckoutItem{{MenuItemID: 1, Quantity: 1}},
	})

	assert.ErrorIs(t, err, ErrInvalidPromo)
}

func TestCheckoutRejectsUnavailableItem(t *testing.T) {
	f := newOrderFixture()
	f.svc = NewOrderService(f.orders, f.payments, f.notifier, f.inventory,
		&fakeMenuSource{items: []models.MenuItem{
			{ID: 1, Name: "Margherita", Price: decimal.NewFromFloat(12.00), IsAvailable: false},
		}},
		&fakePromoSource{},
		&fakeRestaurantSource{restaurant: &models.Restaurant{ID: 3, Name: "Testaurant"}})
	f.svc.now = func() time.Time { return sweepNow }

	_, err := f.svc.Checkout(context.Background(), 7, models.CheckoutRequest{
		RestaurantID:  3,
		PaymentMethod: models.PayByCard,
		Items:         []models.CheckoutItem{{MenuItemID: 1, Quantity: 1}},
	})

	assert.ErrorIs(t, err, ErrMenuUnavailable)
}

func TestCheckoutRejectsUnknownItem(t *testing.T) {
	f := newOrderFixture()
	f.svc = NewOrderService(f.orders, f.payments, f.notifier, f.inventory,
		&fakeMenuSource{},
		&fakePromoSource{},
		&fakeRestaurantSource{restaurant: &models.Restaurant{ID: 3, Name: "Testaurant"}})
	f.svc.now = func() time.Time { return sweepNow }

	_, err := f.svc.Checkout(context.Background(), 7, models.CheckoutRequest{
		RestaurantID:  3,
		PaymentMethod: models.PayByCard,
		Items:         []models.CheckoutItem{{MenuItemID: 404, Quantity: 1}},
	})

	assert.ErrorIs(t, err, ErrMenuUnavailable)
}
