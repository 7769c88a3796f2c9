package services

import (
	"fmt"

	"restaurant-platform/models"
)

// NotificationDraft describes a notification to be persisted for the order's
// customer once the surrounding write has committed.
type NotificationDraft struct {
	Type    string
	Title   string
	Message string
	Data    map[string]any
}

// EffectSet is the list of side-effect commands produced by a single order
// status transition. It is computed purely from (previous status, new status,
// order) and applied by OrderService around the actual write.
type EffectSet struct {
	// Notifications are emitted unconditionally after the status write.
	Notifications []NotificationDraft

	// ConfirmCashPayment requests the cash auto-confirmation step: mark the
	// order's PENDING CASH payment SUCCEEDED and the order paid+delivered.
	// When no such payment row exists the step is skipped silently.
	ConfirmCashPayment bool

	// CashConfirmed is emitted only if the confirmation actually applied.
	CashConfirmed *NotificationDraft
}

// Empty reports whether the transition produces no side effects.
func (e EffectSet) Empty() bool {
	return len(e.Notifications) == 0 && !e.ConfirmCashPayment && e.CashConfirmed == nil
}

// TransitionEffects computes the side effects of moving an order from prev to
// next. Pass prev == "" for a freshly created order. Re-saving an order with
// an unchanged status yields no effects, so repeated writes are idempotent.
func TransitionEffects(prev, next string, o *models.Order) EffectSet {
	var e EffectSet

	if prev == next {
		return e
	}

	orderData := map[string]any{
		"order_id":     o.ID,
		"order_number": o.OrderNumber,
	}

	if prev == "" {
		e.Notifications = append(e.Notifications, NotificationDraft{
			Type:  models.NotifyOrder,
			Title: "Order Placed Successfully",
			Message: fmt.Sprintf("Your order #%s has been placed at %s. Total: $%s",
				o.OrderNumber, o.RestaurantName, o.Total.StringFixed(2)),
			Data: orderData,
		})
		return e
	}

	switch next {
	case models.OrderConfirmed:
		e.Notifications = append(e.Notifications, NotificationDraft{
			Type:  models.NotifyOrder,
			Title: "Order Confirmed",
			Message: fmt.Sprintf("Your order #%s has been confirmed by %s.",
				o.OrderNumber, o.RestaurantName),
			Data: orderData,
		})

	case models.OrderOutForDelivery:
		e.Notifications = append(e.Notifications, NotificationDraft{
			Type:    models.NotifyOrder,
			Title:   "Order Out for Delivery",
			Message: fmt.Sprintf("Your order #%s is on its way!", o.OrderNumber),
			Data:    orderData,
		})

	case models.OrderDelivered:
		if o.PaymentMethod == models.PayByCash && !o.IsPaid {
			e.ConfirmCashPayment = true
			e.CashConfirmed = &NotificationDraft{
				Type:  models.NotifyPayment,
				Title: "Order Delivered and Paid",
				Message: fmt.Sprintf("Your order #%s has been delivered and paid in cash. Enjoy your meal!",
					o.OrderNumber),
				Data: orderData,
			}
		}
		e.Notifications = append(e.Notifications, NotificationDraft{
			Type:    models.NotifyOrder,
			Title:   "Order Delivered",
			Message: fmt.Sprintf("Your order #%s has been delivered. Enjoy your meal!", o.OrderNumber),
			Data:    orderData,
		})

	case models.OrderCancelled:
		e.Notifications = append(e.Notifications, NotificationDraft{
			Type:    models.NotifyOrder,
			Title:   "Order Cancelled",
			Message: fmt.Sprintf("Your order #%s has been cancelled.", o.OrderNumber),
			Data:    orderData,
		})
	}

	return e
}
