package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"restaurant-platform/models"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReservationClosed   = errors.New("reservation can no longer be changed")
	ErrTableNotFound       = errors.New("table not found")
)

// ReservationRepo is the persistence surface for reservations.
type ReservationRepo interface {
	Create(ctx context.Context, r *models.Reservation) error
	GetByID(ctx context.Context, id int) (*models.Reservation, error)
	ListByScope(ctx context.Context, scope models.Scope, page, limit int) ([]models.Reservation, int, error)
	// UpdateStatusIf flips prev to next, guarded by WHERE status = prev.
	UpdateStatusIf(ctx context.Context, id int, prev, next string) (bool, error)
	CancelIfActive(ctx context.Context, id int, reason string, now time.Time) (bool, error)
	AvailableTables(ctx context.Context, restaurantID int, date time.Time, timeOfDay string, guests int) ([]models.Table, error)
}

// TableSource resolves tables for capacity validation.
type TableSource interface {
	GetTable(ctx context.Context, id int) (*models.Table, error)
}

type ReservationService struct {
	repo     ReservationRepo
	tables   TableSource
	notifier Notifier
	now      func() time.Time
}

func NewReservationService(repo ReservationRepo, tables TableSource, notifier Notifier) *ReservationService {
	return &ReservationService{repo: repo, tables: tables, notifier: notifier, now: time.Now}
}

// Create validates and books a reservation. Validation failures are returned
// to the caller untouched; the input is never silently corrected.
func (s *ReservationService) Create(ctx context.Context, userID int, req models.ReservationRequest) (*models.Reservation, error) {
	date, err := time.Parse("2006-01-02", req.ReservationDate)
	if err != nil {
		return nil, errors.New("reservation_date must be in YYYY-MM-DD format")
	}

	table, err := s.tables.GetTable(ctx, req.TableID)
	if err != nil || table == nil {
		return nil, ErrTableNotFound
	}
	if table.RestaurantID != req.RestaurantID {
		return nil, errors.New("table does not belong to the restaurant")
	}

	r := &models.Reservation{
		UserID:          userID,
		RestaurantID:    req.RestaurantID,
		TableID:         req.TableID,
		ReservationDate: date,
		ReservationTime: req.ReservationTime,
		GuestsCount:     req.GuestsCount,
		Status:          models.ReservationPending,
		SpecialRequests: req.SpecialRequests,
		Phone:           req.Phone,
		Email:           req.Email,
	}

	if err := r.Validate(table, s.now()); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		_ = s.notifier.Notify(ctx, userID, NotificationDraft{
			Type:  models.NotifyReservation,
			Title: "Reservation Requested",
			Message: fmt.Sprintf("Your reservation for %d guests on %s at %s is awaiting confirmation.",
				r.GuestsCount, req.ReservationDate, req.ReservationTime),
			Data: map[string]any{"reservation_id": r.ID},
		})
	}

	return r, nil
}

// Confirm moves a PENDING reservation to CONFIRMED (restaurant side).
func (s *ReservationService) Confirm(ctx context.Context, scope models.Scope, id int) (*models.Reservation, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrReservationNotFound
	}
	if !scope.CanAccess(r) {
		return nil, ErrForbidden
	}

	ok, err := s.repo.UpdateStatusIf(ctx, id, models.ReservationPending, models.ReservationConfirmed)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrReservationClosed
	}

	if s.notifier != nil {
		_ = s.notifier.Notify(ctx, r.UserID, NotificationDraft{
			Type:    models.NotifyReservation,
			Title:   "Reservation Confirmed",
			Message: fmt.Sprintf("Your reservation on %s at %s is confirmed. See you soon!", r.ReservationDate.Format("2006-01-02"), r.ReservationTime),
			Data:    map[string]any{"reservation_id": r.ID},
		})
	}

	return s.repo.GetByID(ctx, id)
}

// Cancel cancels a PENDING or CONFIRMED reservation.
func (s *ReservationService) Cancel(ctx context.Context, scope models.Scope, id int, reason string) (*models.Reservation, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrReservationNotFound
	}
	if !scope.CanAccess(r) {
		return nil, ErrForbidden
	}

	ok, err := s.repo.CancelIfActive(ctx, id, reason, s.now())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrReservationClosed
	}

	return s.repo.GetByID(ctx, id)
}

func (s *ReservationService) Get(ctx context.Context, scope models.Scope, id int) (*models.Reservation, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrReservationNotFound
	}
	if !scope.CanAccess(r) {
		return nil, ErrForbidden
	}
	return r, nil
}

func (s *ReservationService) List(ctx context.Context, scope models.Scope, page, limit int) ([]models.Reservation, int, error) {
	return s.repo.ListByScope(ctx, scope, page, limit)
}

func (s *ReservationService) AvailableTables(ctx context.Context, restaurantID int, dateStr, timeOfDay string, guests int) ([]models.Table, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, errors.New("date must be in YYYY-MM-DD format")
	}
	if _, err := time.Parse("15:04", timeOfDay); err != nil {
		return nil, errors.New("time must be in HH:MM format")
	}
	if guests < 1 {
		return nil, errors.New("guests must be at least 1")
	}
	return s.repo.AvailableTables(ctx, restaurantID, date, timeOfDay, guests)
}
