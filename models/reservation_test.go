package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var resNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func validReservation() *Reservation {
	return &Reservation{
		ReservationDate: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		ReservationTime: "19:30",
		GuestsCount:     2,
	}
}

func TestStartsAt(t *testing.T) {
	r := validReservation()
	assert.Equal(t, time.Date(2025, 6, 16, 19, 30, 0, 0, time.UTC), r.StartsAt())
}

func TestStartsAtUnparseableTimeFallsBackToDate(t *testing.T) {
	r := validReservation()
	r.ReservationTime = "7pm"
	assert.Equal(t, r.ReservationDate, r.StartsAt())
}

func TestValidateAccepts(t *testing.T) {
	r := validReservation()
	table := &Table{Capacity: 4}
	require.NoError(t, r.Validate(table, resNow))
}

func TestValidateSameDayIsNotPast(t *testing.T) {
	r := validReservation()
	r.ReservationDate = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, r.Validate(nil, resNow))
}

func TestValidateRejectsPastDate(t *testing.T) {
	r := validReservation()
	r.ReservationDate = time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	assert.ErrorIs(t, r.Validate(nil, resNow), ErrPastReservation)
}

func TestValidateRejectsZeroGuests(t *testing.T) {
	r := validReservation()
	r.GuestsCount = 0
	assert.Error(t, r.Validate(nil, resNow))
}

func TestValidateRejectsOverCapacity(t *testing.T) {
	r := validReservation()
	r.GuestsCount = 6
	table := &Table{Capacity: 4}
	assert.Error(t, r.Validate(table, resNow))
}

func TestValidateRejectsBadTimeFormat(t *testing.T) {
	r := validReservation()
	r.ReservationTime = "half past seven"
	assert.Error(t, r.Validate(nil, resNow))
}
