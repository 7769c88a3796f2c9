package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotal(t *testing.T) {
	o := &Order{
		Subtotal:    decimal.NewFromFloat(30.00),
		Discount:    decimal.NewFromFloat(3.00),
		Tax:         decimal.NewFromFloat(3.00),
		DeliveryFee: decimal.NewFromFloat(5.00),
	}
	assert.True(t, o.ComputeTotal().Equal(decimal.NewFromFloat(35.00)))
}

func TestComputeTotalNoDiscount(t *testing.T) {
	o := &Order{
		Subtotal:    decimal.NewFromFloat(10.00),
		Tax:         decimal.NewFromFloat(1.00),
		DeliveryFee: decimal.NewFromFloat(5.00),
	}
	assert.True(t, o.ComputeTotal().Equal(decimal.NewFromFloat(16.00)))
}

func TestTerminal(t *testing.T) {
	cases := map[string]bool{
		OrderPending:        false,
		OrderConfirmed:      false,
		OrderOutForDelivery: false,
		OrderDelivered:      true,
		OrderCancelled:      true,
	}
	for status, want := range cases {
		o := &Order{Status: status}
		assert.Equal(t, want, o.Terminal(), status)
	}
}

func TestValidOrderStatus(t *testing.T) {
	assert.True(t, ValidOrderStatus(OrderOutForDelivery))
	assert.False(t, ValidOrderStatus("SHIPPED"))
	assert.False(t, ValidOrderStatus(""))
	assert.False(t, ValidOrderStatus("pending"))
}
