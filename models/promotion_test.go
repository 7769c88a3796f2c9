package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var promoNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func activePromo() *Promotion {
	return &Promotion{
		Code:         "SAVE10",
		DiscountType: DiscountPercent,
		Value:        decimal.NewFromInt(10),
		ValidFrom:    promoNow.Add(-24 * time.Hour),
		ValidUntil:   promoNow.Add(24 * time.Hour),
		MaxUses:      100,
		UsedCount:    10,
		IsActive:     true,
	}
}

func TestUsable(t *testing.T) {
	assert.True(t, activePromo().Usable(promoNow))
}

func TestUsableInactive(t *testing.T) {
	p := activePromo()
	p.IsActive = false
	assert.False(t, p.Usable(promoNow))
}

func TestUsableOutsideWindow(t *testing.T) {
	p := activePromo()
	assert.False(t, p.Usable(p.ValidFrom.Add(-time.Minute)))
	assert.False(t, p.Usable(p.ValidUntil.Add(time.Minute)))
	assert.True(t, p.Usable(p.ValidUntil))
}

func TestUsableExhausted(t *testing.T) {
	p := activePromo()
	p.UsedCount = p.MaxUses
	assert.False(t, p.Usable(promoNow))
}

func TestUsableUnlimitedUses(t *testing.T) {
	p := activePromo()
	p.MaxUses = 0
	p.UsedCount = 100000
	assert.True(t, p.Usable(promoNow))
}

func TestDiscountForPercent(t *testing.T) {
	p := activePromo()
	got := p.DiscountFor(decimal.NewFromFloat(45.50))
	assert.True(t, got.Equal(decimal.NewFromFloat(4.55)), got.String())
}

func TestDiscountForFixed(t *testing.T) {
	p := activePromo()
	p.DiscountType = DiscountFixed
	p.Value = decimal.NewFromInt(5)
	got := p.DiscountFor(decimal.NewFromFloat(45.50))
	assert.True(t, got.Equal(decimal.NewFromInt(5)))
}

func TestDiscountForCappedAtSubtotal(t *testing.T) {
	p := activePromo()
	p.DiscountType = DiscountFixed
	p.Value = decimal.NewFromInt(50)
	subtotal := decimal.NewFromFloat(12.00)
	assert.True(t, p.DiscountFor(subtotal).Equal(subtotal))
}

func TestDiscountForUnknownTypeIsZero(t *testing.T) {
	p := activePromo()
	p.DiscountType = "BOGOF"
	assert.True(t, p.DiscountFor(decimal.NewFromFloat(12.00)).IsZero())
}
