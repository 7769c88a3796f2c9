package models

import (
	"errors"
	"fmt"
	"time"
)

const (
	ReservationPending   = "PENDING"
	ReservationConfirmed = "CONFIRMED"
	ReservationSeated    = "SEATED"
	ReservationCompleted = "COMPLETED"
	ReservationCancelled = "CANCELLED"
	ReservationNoShow    = "NO_SHOW"
)

var ErrPastReservation = errors.New("reservation date cannot be in the past")

type Reservation struct {
	ID                 int        `json:"id"`
	UserID             int        `json:"user_id"`
	RestaurantID       int        `json:"restaurant_id"`
	TableID            int        `json:"table_id"`
	ReservationDate    time.Time  `json:"reservation_date"`
	ReservationTime    string     `json:"reservation_time"` // HH:MM
	GuestsCount        int        `json:"guests_count"`
	Status             string     `json:"status"`
	SpecialRequests    string     `json:"special_requests,omitempty"`
	Phone              string     `json:"phone"`
	Email              string     `json:"email"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
}

func (r *Reservation) OwnerUserID() int        { return r.UserID }
func (r *Reservation) OwningRestaurantID() int { return r.RestaurantID }

// StartsAt combines the reservation date with its HH:MM time of day.
func (r *Reservation) StartsAt() time.Time {
	t, err := time.Parse("15:04", r.ReservationTime)
	if err != nil {
		return r.ReservationDate
	}
	d := r.ReservationDate
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, d.Location())
}

// Validate checks creation-time invariants against the chosen table. It never
// corrects the input; violations are returned to the caller.
func (r *Reservation) Validate(table *Table, now time.Time) error {
	if r.GuestsCount < 1 {
		return errors.New("guests_count must be at least 1")
	}
	if table != nil && r.GuestsCount > table.Capacity {
		return fmt.Errorf("table capacity is %d, requested %d guests", table.Capacity, r.GuestsCount)
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	if r.ReservationDate.Before(today) {
		return ErrPastReservation
	}
	if _, err := time.Parse("15:04", r.ReservationTime); err != nil {
		return errors.New("reservation_time must be in HH:MM format")
	}
	return nil
}
