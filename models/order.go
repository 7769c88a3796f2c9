package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderPending        = "PENDING"
	OrderConfirmed      = "CONFIRMED"
	OrderOutForDelivery = "OUT_FOR_DELIVERY"
	OrderDelivered      = "DELIVERED"
	OrderCancelled      = "CANCELLED"
)

// ValidOrderStatus reports whether s is one of the literal order statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderOutForDelivery, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

type Order struct {
	ID                 int             `json:"id"`
	OrderNumber        string          `json:"order_number"`
	UserID             int             `json:"user_id"`
	RestaurantID       int             `json:"restaurant_id"`
	RestaurantName     string          `json:"restaurant_name,omitempty"`
	Status             string          `json:"status"`
	IsPaid             bool            `json:"is_paid"`
	PaymentMethod      string          `json:"payment_method"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	Tax                decimal.Decimal `json:"tax"`
	DeliveryFee        decimal.Decimal `json:"delivery_fee"`
	Discount           decimal.Decimal `json:"discount"`
	Total              decimal.Decimal `json:"total"`
	DeliveryAddress    string          `json:"delivery_address,omitempty"`
	CancellationReason string          `json:"cancellation_reason,omitempty"`
	Items              []OrderItem     `json:"items,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
	DeliveredAt        *time.Time      `json:"delivered_at,omitempty"`
	CancelledAt        *time.Time      `json:"cancelled_at,omitempty"`
}

func (o *Order) OwnerUserID() int        { return o.UserID }
func (o *Order) OwningRestaurantID() int { return o.RestaurantID }

// ComputeTotal returns subtotal - discount + tax + delivery_fee. The stored
// total must always equal this after any lifecycle mutation.
func (o *Order) ComputeTotal() decimal.Decimal {
	return o.Subtotal.Sub(o.Discount).Add(o.Tax).Add(o.DeliveryFee)
}

// Terminal reports whether the order can no longer change status.
func (o *Order) Terminal() bool {
	return o.Status == OrderDelivered || o.Status == OrderCancelled
}

type OrderItem struct {
	ID         int             `json:"id"`
	OrderID    int             `json:"order_id"`
	MenuItemID int             `json:"menu_item_id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}
