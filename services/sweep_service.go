package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"restaurant-platform/models"
)

const (
	unpaidOrderTTL    = 30 * time.Minute
	noShowGrace       = 30 * time.Minute
	noShowLookback    = 24 * time.Hour
	autoCancelReason  = "Automatically cancelled due to non-payment"
	noShowSweepPrefix = "Marked %d reservations as NO_SHOW"
)

// SweepOrderRepo is the slice of order storage the sweeps need.
type SweepOrderRepo interface {
	// ListExpiredPending returns orders still PENDING and unpaid that were
	// created before cutoff.
	ListExpiredPending(ctx context.Context, cutoff time.Time) ([]models.Order, error)
	// CancelIfPending cancels the order only if it is still PENDING,
	// returning false when another writer got there first.
	CancelIfPending(ctx context.Context, id int, reason string, now time.Time) (bool, error)
}

// SweepReservationRepo is the slice of reservation storage the sweeps need.
type SweepReservationRepo interface {
	// ListRecentConfirmed returns CONFIRMED reservations dated on or after
	// since.
	ListRecentConfirmed(ctx context.Context, since time.Time) ([]models.Reservation, error)
	// MarkNoShowIfConfirmed flips CONFIRMED to NO_SHOW, returning false when
	// the reservation is no longer CONFIRMED.
	MarkNoShowIfConfirmed(ctx context.Context, id int) (bool, error)
}

// SweepService hosts the periodic batch jobs. Both sweeps are idempotent:
// they only act on rows still in the pre-condition status at write time, so
// overlapping runs cannot double-cancel or double-mark.
type SweepService struct {
	orders       SweepOrderRepo
	reservations SweepReservationRepo
	notifier     Notifier
	now          func() time.Time
}

func NewSweepService(orders SweepOrderRepo, reservations SweepReservationRepo, notifier Notifier) *SweepService {
	return &SweepService{
		orders:       orders,
		reservations: reservations,
		notifier:     notifier,
		now:          time.Now,
	}
}

// AutoCancelUnpaidOrders cancels orders that stayed PENDING and unpaid for
// more than 30 minutes. A failure on one order is logged and skipped; the
// sweep continues over the remaining records.
func (s *SweepService) AutoCancelUnpaidOrders(ctx context.Context) (string, error) {
	now := s.now()
	cutoff := now.Add(-unpaidOrderTTL)

	orders, err := s.orders.ListExpiredPending(ctx, cutoff)
	if err != nil {
		return "", fmt.Errorf("failed to list expired pending orders: %w", err)
	}

	count := 0
	for _, o := range orders {
		cancelled, err := s.orders.CancelIfPending(ctx, o.ID, autoCancelReason, now)
		if err != nil {
			log.Printf("Auto-cancel: skipping order %s: %v", o.OrderNumber, err)
			continue
		}
		if !cancelled {
			continue
		}
		count++

		if s.notifier != nil {
			draft := NotificationDraft{
				Type:    models.NotifyOrder,
				Title:   "Order Cancelled",
				Message: fmt.Sprintf("Your order #%s was cancelled because payment was not received in time.", o.OrderNumber),
				Data:    map[string]any{"order_id": o.ID, "order_number": o.OrderNumber},
			}
			if err := s.notifier.Notify(ctx, o.UserID, draft); err != nil {
				log.Printf("Auto-cancel: notification for order %s failed: %v", o.OrderNumber, err)
			}
		}
	}

	return fmt.Sprintf("Auto-cancelled %d unpaid orders", count), nil
}

// MarkNoShowReservations flags CONFIRMED reservations whose start instant is
// more than 30 minutes in the past as NO_SHOW. Only reservations dated within
// the last 24 hours are examined.
func (s *SweepService) MarkNoShowReservations(ctx context.Context) (string, error) {
	now := s.now()
	since := now.Add(-noShowLookback)

	reservations, err := s.reservations.ListRecentConfirmed(ctx, since)
	if err != nil {
		return "", fmt.Errorf("failed to list confirmed reservations: %w", err)
	}

	count := 0
	for _, r := range reservations {
		if now.Sub(r.StartsAt()) <= noShowGrace {
			continue
		}
		marked, err := s.reservations.MarkNoShowIfConfirmed(ctx, r.ID)
		if err != nil {
			log.Printf("No-show sweep: skipping reservation %d: %v", r.ID, err)
			continue
		}
		if marked {
			count++
		}
	}

	return fmt.Sprintf(noShowSweepPrefix, count), nil
}
