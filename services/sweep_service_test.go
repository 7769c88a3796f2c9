package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"restaurant-platform/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sweepNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newSweepService(orders *fakeOrderRepo, reservations *fakeReservationSweepRepo, notifier *fakeNotifier) *SweepService {
	s := NewSweepService(orders, reservations, notifier)
	s.now = func() time.Time { return sweepNow }
	return s
}

func TestAutoCancelUnpaidOrders(t *testing.T) {
	orders := newFakeOrderRepo()
	orders.expired = []models.Order{
		{ID: 1, OrderNumber: "ORD-1", UserID: 11, Status: models.OrderPending, CreatedAt: sweepNow.Add(-31 * time.Minute)},
		{ID: 2, OrderNumber: "ORD-2", UserID: 12, Status: models.OrderPending, CreatedAt: sweepNow.Add(-29 * time.Minute)},
	}
	notifier := &fakeNotifier{}
	s := newSweepService(orders, &fakeReservationSweepRepo{}, notifier)

	summary, err := s.AutoCancelUnpaidOrders(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Auto-cancelled 1 unpaid orders", summary)
	assert.Equal(t, models.OrderCancelled, orders.expired[0].Status)
	assert.Equal(t, "Automatically cancelled due to non-payment", orders.expired[0].CancellationReason)
	assert.Equal(t, models.OrderPending, orders.expired[1].Status)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, 11, notifier.sent[0].userID)
	assert.Equal(t, "Order Cancelled", notifier.sent[0].draft.Title)
	assert.Equal(t, "Your order #ORD-1 was cancelled because payment was not received in time.", notifier.sent[0].draft.Message)
}

func TestAutoCancelSkipsAlreadyCancelled(t *testing.T) {
	orders := newFakeOrderRepo()
	orders.expired = []models.Order{
		{ID: 1, OrderNumber: "ORD-1", UserID: 11, Status: models.OrderConfirmed, CreatedAt: sweepNow.Add(-40 * time.Minute)},
	}
	notifier := &fakeNotifier{}
	s := newSweepService(orders, &fakeReservationSweepRepo{}, notifier)

	summary, err := s.AutoCancelUnpaidOrders(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Auto-cancelled 0 unpaid orders", summary)
	assert.Empty(t, notifier.sent)
}

func TestAutoCancelContinuesPastFailures(t *testing.T) {
	orders := newFakeOrderRepo()
	orders.expired = []models.Order{
		{ID: 1, OrderNumber: "ORD-1", UserID: 11, Status: models.OrderPending, CreatedAt: sweepNow.Add(-45 * time.Minute)},
		{ID: 2, OrderNumber: "ORD-2", UserID: 12, Status: models.OrderPending, CreatedAt: sweepNow.Add(-45 * time.Minute)},
	}
	orders.cancelErrs[1] = errors.New("connection reset")
	s := newSweepService(orders, &fakeReservationSweepRepo{}, &fakeNotifier{})

	summary, err := s.AutoCancelUnpaidOrders(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Auto-cancelled 1 unpaid orders", summary)
	assert.Equal(t, models.OrderPending, orders.expired[0].Status)
	assert.Equal(t, models.OrderCancelled, orders.expired[1].Status)
}

func TestAutoCancelIsIdempotent(t *testing.T) {
	orders := newFakeOrderRepo()
	orders.expired = []models.Order{
		{ID: 1, OrderNumber: "ORD-1", UserID: 11, Status: models.OrderPending, CreatedAt: sweepNow.Add(-45 * time.Minute)},
	}
	s := newSweepService(orders, &fakeReservationSweepRepo{}, &fakeNotifier{})

	_, err := s.AutoCancelUnpaidOrders(context.Background())
	require.NoError(t, err)
	summary, err := s.AutoCancelUnpaidOrders(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Auto-cancelled 0 unpaid orders", summary)
}


func sweepReservation(id int, startedAgo time.Duration) models.Reservation {
	start := sweepNow.Add(-startedAgo)
	return models.Reservation{
		ID:              id,
		UserID:          20 + id,
		RestaurantID:    3,
		ReservationDate: time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC),
		ReservationTime: start.Format("15:04"),
		Status:          models.ReservationConfirmed,
	}
}

func TestMarkNoShowReservations(t *testing.T) {
	reservations := &fakeReservationSweepRepo{
		confirmed: []models.Reservation{
			sweepReservation(1, 31*time.Minute),
			sweepReservation(2, 29*time.Minute),
		},
	}
	s := newSweepService(newFakeOrderRepo(), reservations, &fakeNotifier{})

	summary, err := s.MarkNoShowReservations(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Marked 1 reservations as NO_SHOW", summary)
	assert.Equal(t, []int{1}, reservations.marked)
	assert.Equal(t, models.ReservationNoShow, reservations.confirmed[0].Status)
	assert.Equal(t, models.ReservationConfirmed, reservations.confirmed[1].Status)
}

func TestMarkNoShowContinuesPastFailures(t *testing.T) {
	reservations := &fakeReservationSweepRepo{
		confirmed: []models.Reservation{
			sweepReservation(1, time.Hour),
			sweepReservation(2, time.Hour),
		},
		markErrs: map[int]error{1: errors.New("connection reset")},
	}
	s := newSweepService(newFakeOrderRepo(), reservations, &fakeNotifier{})

	summary, err := s.MarkNoShowReservations(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Marked 1 reservations as NO_SHOW", summary)
	assert.Equal(t, []int{2}, reservations.marked)
}

func TestMarkNoShowSecondRunIsNoop(t *testing.T) {
	reservations := &fakeReservationSweepRepo{
		confirmed: []models.Reservation{sweepReservation(1, time.Hour)},
	}
	s := newSweepService(newFakeOrderRepo(), reservations, &fakeNotifier{})

	_, err := s.MarkNoShowReservations(context.Background())
	require.NoError(t, err)
	summary, err := s.MarkNoShowReservations(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Marked 0 reservations as NO_SHOW", summary)
}
