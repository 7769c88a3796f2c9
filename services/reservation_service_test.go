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

type fakeReservationRepo struct {
	reservations map[int]*models.Reservation
	nextID       int
}

func newFakeReservationRepo(rs ...*models.Reservation) *fakeReservationRepo {
	m := map[int]*models.Reservation{}
	for _, r := range rs {
		m[r.ID] = r
	}
	return &fakeReservationRepo{reservations: m, nextID: 100}
}

func (f *fakeReservationRepo) Create(_ context.Context, r *models.Reservation) error {
	f.nextID++
	r.ID = f.nextID
	f.reservations[r.ID] = r
	return nil
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int) (*models.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return nil, errors.New("no rows")
	}
	cp := *r
	return &cp, nil
}

func (f *fakeReservationRepo) ListByScope(_ context.Context, _ models.Scope, _, _ int) ([]models.Reservation, int, error) {
	return nil, 0, nil
}

func (f *fakeReservationRepo) UpdateStatusIf(_ context.Context, id int, prev, next string) (bool, error) {
	r, ok := f.reservations[id]
	if !ok || r.Status != prev {
		return false, nil
	}
	r.Status = next
	return true, nil
}

func (f *fakeReservationRepo) CancelIfActive(_ context.Context, id int, reason string, now time.Time) (bool, error) {
	r, ok := f.reservations[id]
	if !ok || (r.Status != models.ReservationPending && r.Status != models.ReservationConfirmed) {
		return false, nil
	}
	r.Status = models.ReservationCancelled
	r.CancellationReason = reason
	r.CancelledAt = &now
	return true, nil
}

func (f *fakeReservationRepo) AvailableTables(_ context.Context, _ int, _ time.Time, _ string, _ int) ([]models.Table, error) {
	return []models.Table{}, nil
}

type fakeTableSource struct {
	table *models.Table
}

func (f *fakeTableSource) GetTable(_ context.Context, id int) (*models.Table, error) {
	if f.table == nil || f.table.ID != id {
		return nil, errors.New("no rows")
	}
	return f.table, nil
}

func reservationFixture(rs ...*models.Reservation) (*ReservationService, *fakeReservationRepo, *fakeNotifier) {
	repo := newFakeReservationRepo(rs...)
	tables := &fakeTableSource{table: &models.Table{ID: 4, RestaurantID: 3, TableNumber: "T4", Capacity: 4, IsAvailable: true}}
	notifier := &fakeNotifier{}
	svc := NewReservationService(repo, tables, notifier)
	svc.now = func() time.Time { return sweepNow }
	return svc, repo, notifier
}

func validReservationRequest() models.ReservationRequest {
	return models.ReservationRequest{
		RestaurantID:    3,
		TableID:         4,
		ReservationDate: "2025-06-16",
		ReservationTime: "19:30",
		GuestsCount:     2,
		Phone:           "+15550100",
		Email:           "guest@example.com",
	}
}

func TestReservationCreate(t *testing.T) {
	svc, repo, notifier := reservationFixture()

	r, err := svc.Create(context.Background(), 7, validReservationRequest())

	require.NoError(t, err)
	assert.Equal(t, models.ReservationPending, r.Status)
	assert.Equal(t, 7, r.UserID)
	assert.NotZero(t, r.ID)
	assert.Contains(t, repo.reservations, r.ID)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "Reservation Requested", notifier.sent[0].draft.Title)
}

func TestReservationCreateRejectsPastDate(t *testing.T) {
	svc, _, notifier := reservationFixture()
	req := validReservationRequest()
	req.ReservationDate = "2025-06-14"

	_, err := svc.Create(context.Background(), 7, req)

	assert.ErrorIs(t, err, models.ErrPastReservation)
	assert.Empty(t, notifier.sent)
}

func TestReservationCreateRejectsOverCapacity(t *testing.T) {
	svc, _, _ := reservationFixture()
	req := validReservationRequest()
	req.GuestsCount = 9

	_, err := svc.Create(context.Background(), 7, req)

	assert.Error(t, err)
}

func TestReservationCreateUnknownTable(t *testing.T) {
	svc, _, _ := reservationFixture()
	req := validReservationRequest()
	req.TableID = 999

	_, err := svc.Create(context.Background(), 7, req)

	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestReservationCreateTableFromOtherRestaurant(t *testing.T) {
	svc, _, _ := reservationFixture()
	req := validReservationRequest()
	req.RestaurantID = 8

	_, err := svc.Create(context.Background(), 7, req)

	assert.Error(t, err)
}

func TestReservationConfirm(t *testing.T) {
	r := &models.Reservation{ID: 1, UserID: 7, RestaurantID: 3, Status: models.ReservationPending,
		ReservationDate: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), ReservationTime: "19:30"}
	svc, repo, notifier := reservationFixture(r)
	scope := models.Scope{Role: models.RoleRestaurantOwner, UserID: 5, OwnedRestaurantIDs: []int{3}}

	got, err := svc.Confirm(context.Background(), scope, 1)

	require.NoError(t, err)
	assert.Equal(t, models.ReservationConfirmed, got.Status)
	assert.Equal(t, models.ReservationConfirmed, repo.reservations[1].Status)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, 7, notifier.sent[0].userID)
	assert.Equal(t, "Reservation Confirmed", notifier.sent[0].draft.Title)
}

func TestReservationConfirmAlreadyConfirmed(t *testing.T) {
	r := &models.Reservation{ID: 1, UserID: 7, RestaurantID: 3, Status: models.ReservationConfirmed}
	svc, _, _ := reservationFixture(r)

	_, err := svc.Confirm(context.Background(), adminScope(), 1)

	assert.ErrorIs(t, err, ErrReservationClosed)
}

func TestReservationConfirmForbiddenForUnrelatedOwner(t *testing.T) {
	r := &models.Reservation{ID: 1, UserID: 7, RestaurantID: 3, Status: models.ReservationPending}
	svc, _, _ := reservationFixture(r)
	scope := models.Scope{Role: models.RoleRestaurantOwner, UserID: 5, OwnedRestaurantIDs: []int{8}}

	_, err := svc.Confirm(context.Background(), scope, 1)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestReservationCancel(t *testing.T) {
	r := &models.Reservation{ID: 1, UserID: 7, RestaurantID: 3, Status: models.ReservationConfirmed}
	svc, _, _ := reservationFixture(r)
	scope := models.Scope{Role: models.RoleCustomer, UserID: 7}

	got, err := svc.Cancel(context.Background(), scope, 1, "Plans changed")

	require.NoError(t, err)
	assert.Equal(t, models.ReservationCancelled, got.Status)
	assert.Equal(t, "Plans changed", got.CancellationReason)
	require.NotNil(t, got.CancelledAt)
}

func TestReservationCancelCompletedReservation(t *testing.T) {
	r := &models.Reservation{ID: 1, UserID: 7, RestaurantID: 3, Status: models.ReservationCompleted}
	svc, _, _ := reservationFixture(r)
	scope := models.Scope{Role: models.RoleCustomer, UserID: 7}

	_, err := svc.Cancel(context.Background(), scope, 1, "")

	assert.ErrorIs(t, err, ErrReservationClosed)
}

func TestAvailableTablesValidatesInput(t *testing.T) {
	svc, _, _ := reservationFixture()

	_, err := svc.AvailableTables(context.Background(), 3, "June 16", "19:30", 2)
	assert.Error(t, err)

	_, err = svc.AvailableTables(context.Background(), 3, "2025-06-16", "7pm", 2)
	assert.Error(t, err)

	_, err = svc.AvailableTables(context.Background(), 3, "2025-06-16", "19:30", 0)
	assert.Error(t, err)

	_, err = svc.AvailableTables(context.Background(), 3, "2025-06-16", "19:30", 2)
	assert.NoError(t, err)
}
