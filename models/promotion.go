package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	DiscountPercent = "PERCENT"
	DiscountFixed   = "FIXED"
)

type Promotion struct {
	ID           int             `json:"id"`
	Code         string          `json:"code"`
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	DiscountType string          `json:"discount_type"`
	Value        decimal.Decimal `json:"value"`
	ValidFrom    time.Time       `json:"valid_from"`
	ValidUntil   time.Time       `json:"valid_until"`
	MaxUses      int             `json:"max_uses"`
	UsedCount    int             `json:"used_count"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Usable reports whether the promotion can be applied at the given instant.
func (p *Promotion) Usable(now time.Time) bool {
	if !p.IsActive || now.Before(p.ValidFrom) || now.After(p.ValidUntil) {
		return false
	}
	return p.MaxUses == 0 || p.UsedCount < p.MaxUses
}

// DiscountFor computes the discount this promotion grants on a subtotal.
// The result never exceeds the subtotal.
func (p *Promotion) DiscountFor(subtotal decimal.Decimal) decimal.Decimal {
	var d decimal.Decimal
	switch p.DiscountType {
	case DiscountPercent:
		d = subtotal.Mul(p.Value).Div(decimal.NewFromInt(100)).Round(2)
	case DiscountFixed:
		d = p.Value
	}
	if d.GreaterThan(subtotal) {
		return subtotal
	}
	return d
}
