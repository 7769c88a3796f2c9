package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentPending    = "PENDING"
	PaymentProcessing = "PROCESSING"
	PaymentSucceeded  = "SUCCEEDED"
	PaymentFailed     = "FAILED"
)

const (
	PayByCard   = "CARD"
	PayByCash   = "CASH"
	PayByWallet = "WALLET"
)

func ValidPaymentMethod(m string) bool {
	return m == PayByCard || m == PayByCash || m == PayByWallet
}

// Payment belongs to exactly one order. At most one SUCCEEDED payment may
// exist per order (enforced by a partial unique index).
type Payment struct {
	ID        int             `json:"id"`
	OrderID   int             `json:"order_id"`
	UserID    int             `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Method    string          `json:"payment_method"`
	Status    string          `json:"status"`
	PaidAt    *time.Time      `json:"paid_at,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func (p *Payment) OwnerUserID() int { return p.UserID }
