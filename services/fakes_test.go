package services

import (
	"context"
	"errors"
	"time"

	"restaurant-platform/models"
)

type notified struct {
	userID int
	draft  NotificationDraft
}

type fakeNotifier struct {
	sent []notified
	err  error
}

func (f *fakeNotifier) Notify(_ context.Context, userID int, draft NotificationDraft) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, notified{userID: userID, draft: draft})
	return nil
}

func (f *fakeNotifier) titles() []string {
	out := make([]string, 0, len(f.sent))
	for _, n := range f.sent {
		out = append(out, n.draft.Title)
	}
	return out
}

type fakeOrderRepo struct {
	orders map[int]*models.Order

	expired    []models.Order
	cancelErrs map[int]error

	updateCalls   int
	paidDelivered []int
}

func newFakeOrderRepo(orders ...*models.Order) *fakeOrderRepo {
	m := map[int]*models.Order{}
	for _, o := range orders {
		m[o.ID] = o
	}
	return &fakeOrderRepo{orders: m, cancelErrs: map[int]error{}}
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id int) (*models.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, errors.New("no rows")
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) ListByScope(_ context.Context, _ models.Scope, _ string, _, _ int) ([]models.Order, int, error) {
	out := []models.Order{}
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, len(out), nil
}

func (f *fakeOrderRepo) CreateWithItems(_ context.Context, o *models.Order, p *models.Payment) error {
	o.ID = len(f.orders) + 1
	p.OrderID = o.ID
	f.orders[o.ID] = o
	return nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id int, prev, next, reason string, now time.Time) (bool, error) {
	f.updateCalls++
	o, ok := f.orders[id]
	if !ok || o.Status != prev {
		return false, nil
	}
	o.Status = next
	if next == models.OrderCancelled {
		o.CancellationReason = reason
		o.CancelledAt = &now
	}
	return true, nil
}

func (f *fakeOrderRepo) MarkPaidDelivered(_ context.Context, id int, now time.Time) error {
	o, ok := f.orders[id]
	if !ok {
		return errors.New("no rows")
	}
	o.IsPaid = true
	o.DeliveredAt = &now
	f.paidDelivered = append(f.paidDelivered, id)
	return nil
}

func (f *fakeOrderRepo) MarkPaid(_ context.Context, id int) error {
	o, ok := f.orders[id]
	if !ok {
		return errors.New("no rows")
	}
	o.IsPaid = true
	return nil
}

func (f *fakeOrderRepo) ListExpiredPending(_ context.Context, cutoff time.Time) ([]models.Order, error) {
	out := []models.Order{}
	for _, o := range f.expired {
		if o.CreatedAt.Before(cutoff) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) CancelIfPending(_ context.Context, id int, reason string, now time.Time) (bool, error) {
	if err := f.cancelErrs[id]; err != nil {
		return false, err
	}
	for i := range f.expired {
		if f.expired[i].ID == id && f.expired[i].Status == models.OrderPending {
			f.expired[i].Status = models.OrderCancelled
			f.expired[i].CancellationReason = reason
			f.expired[i].CancelledAt = &now
			return true, nil
		}
	}
	return false, nil
}

type fakePaymentRepo struct {
	payments    map[int]*models.Payment
	cashPending map[int]bool // orderID -> has a PENDING cash payment
	confirmed   []int
}

func (f *fakePaymentRepo) GetByID(_ context.Context, id int) (*models.Payment, error) {
	p, ok := f.payments[id]
	if !ok {
		return nil, errors.New("no rows")
	}
	return p, nil
}

func (f *fakePaymentRepo) ListByScope(_ context.Context, _ models.Scope, _, _ int) ([]models.Payment, int, error) {
	return nil, 0, nil
}

func (f *fakePaymentRepo) ConfirmPendingCash(_ context.Context, orderID int, _ time.Time) (bool, error) {
	if !f.cashPending[orderID] {
		return false, nil
	}
	f.cashPending[orderID] = false
	f.confirmed = append(f.confirmed, orderID)
	return true, nil
}

func (f *fakePaymentRepo) MarkSucceeded(_ context.Context, id int, now time.Time) (bool, error) {
	p, ok := f.payments[id]
	if !ok || (p.Status != models.PaymentPending && p.Status != models.PaymentProcessing) {
		return false, nil
	}
	p.Status = models.PaymentSucceeded
	p.PaidAt = &now
	return true, nil
}

type fakeMenuSource struct {
	items []models.MenuItem
}

func (f *fakeMenuSource) MenuItemsByIDs(_ context.Context, _ int, ids []int) ([]models.MenuItem, error) {
	want := map[int]bool{}
	for _, id := range ids {
		want[id] = true
	}
	out := []models.MenuItem{}
	for _, mi := range f.items {
		if want[mi.ID] {
			out = append(out, mi)
		}
	}
	return out, nil
}

type fakePromoSource struct {
	promo *models.Promotion
	uses  int
}

func (f *fakePromoSource) GetActiveByCode(_ context.Context, code string) (*models.Promotion, error) {
	if f.promo == nil || f.promo.Code != code {
		return nil, errors.New("no rows")
	}
	return f.promo, nil
}

func (f *fakePromoSource) IncrementUse(_ context.Context, _ int) error {
	f.uses++
	return nil
}

type fakeRestaurantSource struct {
	restaurant *models.Restaurant
}

func (f *fakeRestaurantSource) GetRestaurantByID(_ context.Context, id int) (*models.Restaurant, error) {
	if f.restaurant == nil || f.restaurant.ID != id {
		return nil, errors.New("no rows")
	}
	return f.restaurant, nil
}

type fakeInventoryRepo struct {
	items   []models.InventoryItem
	applied [][]models.StockMovement
}

func (f *fakeInventoryRepo) ItemsByIDs(_ context.Context, _ int, ids []int) ([]models.InventoryItem, error) {
	want := map[int]bool{}
	for _, id := range ids {
		want[id] = true
	}
	out := []models.InventoryItem{}
	for _, it := range f.items {
		if want[it.ID] {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeInventoryRepo) ApplyConsumption(_ context.Context, _ int, movements []models.StockMovement) error {
	for _, m := range movements {
		for i := range f.items {
			if f.items[i].ID == m.InventoryItemID {
				f.items[i].CurrentQuantity = f.items[i].CurrentQuantity.Sub(m.Quantity)
			}
		}
	}
	f.applied = append(f.applied, movements)
	return nil
}

type fakeInventoryConsumer struct {
	consumed []int
	err      error
}

func (f *fakeInventoryConsumer) ConsumeForOrder(_ context.Context, o *models.Order) error {
	if f.err != nil {
		return f.err
	}
	f.consumed = append(f.consumed, o.ID)
	return nil
}

type fakeReservationSweepRepo struct {
	confirmed []models.Reservation
	markErrs  map[int]error
	marked    []int
}

func (f *fakeReservationSweepRepo) ListRecentConfirmed(_ context.Context, _ time.Time) ([]models.Reservation, error) {
	out := []models.Reservation{}
	for _, r := range f.confirmed {
		if r.Status == models.ReservationConfirmed {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReservationSweepRepo) MarkNoShowIfConfirmed(_ context.Context, id int) (bool, error) {
	if err := f.markErrs[id]; err != nil {
		return false, err
	}
	for i := range f.confirmed {
		if f.confirmed[i].ID == id && f.confirmed[i].Status == models.ReservationConfirmed {
			f.confirmed[i].Status = models.ReservationNoShow
			f.marked = append(f.marked, id)
			return true, nil
		}
	}
	return false, nil
}
