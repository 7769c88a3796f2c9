package models

import "time"

const (
	NotifyOrder       = "ORDER"
	NotifyReservation = "RESERVATION"
	NotifyPayment     = "PAYMENT"
	NotifyPromotion   = "PROMOTION"
	NotifyReview      = "REVIEW"
	NotifySystem      = "SYSTEM"
	NotifyAlert       = "ALERT"
)

// Notification is a persistent record of a user-facing event. Delivery
// channels poll for rows whose sent flags are still false and mark them sent
// themselves; this service only creates the record.
type Notification struct {
	ID        int            `json:"id"`
	UserID    int            `json:"user_id"`
	Type      string         `json:"notification_type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
	IsRead    bool           `json:"is_read"`
	SentEmail bool           `json:"sent_email"`
	SentSMS   bool           `json:"sent_sms"`
	SentPush  bool           `json:"sent_push"`
	CreatedAt time.Time      `json:"created_at"`
	ReadAt    *time.Time     `json:"read_at,omitempty"`
}

func (n *Notification) OwnerUserID() int { return n.UserID }
