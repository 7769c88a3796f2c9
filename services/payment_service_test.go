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

func paymentFixture(p *models.Payment, o *models.Order) (*PaymentService, *orderFixture) {
	f := newOrderFixture(o)
	f.payments.payments[p.ID] = p
	svc := NewPaymentService(f.payments, f.svc)
	svc.now = func() time.Time { return sweepNow }
	return svc, f
}

func TestCaptureConfirmsOrder(t *testing.T) {
	o := testOrder()
	p := &models.Payment{ID: 9, OrderID: 42, UserID: 7, Amount: decimal.NewFromFloat(27.50),
		Currency: "USD", Method: models.PayByCard, Status: models.PaymentPending}
	svc, f := paymentFixture(p, o)
	scope := models.Scope{Role: models.RoleCustomer, UserID: 7}

	got, err := svc.Capture(context.Background(), scope, 9)

	require.NoError(t, err)
	assert.Equal(t, models.PaymentSucceeded, got.Status)
	require.NotNil(t, got.PaidAt)
	assert.True(t, f.orders.orders[42].IsPaid)
	assert.Equal(t, models.OrderConfirmed, f.orders.orders[42].Status)
	assert.Equal(t, []int{42}, f.inventory.consumed)
	assert.Equal(t, []string{"Order Confirmed"}, f.notifier.titles())
}

func TestCaptureSettledPayment(t *testing.T) {
	o := testOrder()
	p := &models.Payment{ID: 9, OrderID: 42, UserID: 7, Status: models.PaymentSucceeded}
	svc, _ := paymentFixture(p, o)

	_, err := svc.Capture(context.Background(), adminScope(), 9)

	assert.ErrorIs(t, err, ErrPaymentClosed)
}

func TestCaptureForbiddenForOtherCustomer(t *testing.T) {
	o := testOrder()
	p := &models.Payment{ID: 9, OrderID: 42, UserID: 7, Status: models.PaymentPending}
	svc, _ := paymentFixture(p, o)
	scope := models.Scope{Role: models.RoleCustomer, UserID: 8}

	_, err := svc.Capture(context.Background(), scope, 9)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCaptureUnknownPayment(t *testing.T) {
	svc, _ := paymentFixture(&models.Payment{ID: 9}, testOrder())

	_, err := svc.Capture(context.Background(), adminScope(), 404)

	assert.ErrorIs(t, err, ErrPaymentNotFound)
}
