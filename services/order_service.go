package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"restaurant-platform/models"

	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrOrderClosed     = errors.New("order is already delivered or cancelled")
	ErrStatusConflict  = errors.New("order was modified concurrently, status not changed")
	ErrForbidden       = errors.New("access denied")
	ErrInvalidStatus   = errors.New("invalid order status")
	ErrInvalidPromo    = errors.New("promo code is invalid or expired")
	ErrMenuUnavailable = errors.New("one or more menu items are unavailable")
)

// OrderRepo is the persistence surface the coordinator needs. The concrete
// pgx implementation lives in repositories.
type OrderRepo interface {
	GetByID(ctx context.Context, id int) (*models.Order, error)
	ListByScope(ctx context.Context, scope models.Scope, status string, page, limit int) ([]models.Order, int, error)
	CreateWithItems(ctx context.Context, o *models.Order, p *models.Payment) error
	// UpdateStatus transitions id from prev to next, guarded by
	// WHERE status = prev. Returns false when the guard did not match.
	UpdateStatus(ctx context.Context, id int, prev, next, reason string, now time.Time) (bool, error)
	// MarkPaidDelivered sets is_paid = true and delivered_at = now.
	MarkPaidDelivered(ctx context.Context, id int, now time.Time) error
	MarkPaid(ctx context.Context, id int) error
}

// PaymentRepo covers the payment writes driven by the order lifecycle.
type PaymentRepo interface {
	GetByID(ctx context.Context, id int) (*models.Payment, error)
	ListByScope(ctx context.Context, scope models.Scope, page, limit int) ([]models.Payment, int, error)
	// ConfirmPendingCash marks the order's CASH payment in PENDING status as
	// SUCCEEDED. Returns false when no such payment exists.
	ConfirmPendingCash(ctx context.Context, orderID int, now time.Time) (bool, error)
	// MarkSucceeded succeeds a PENDING or PROCESSING payment.
	MarkSucceeded(ctx context.Context, id int, now time.Time) (bool, error)
}

// Notifier persists a notification record for a user.
type Notifier interface {
	Notify(ctx context.Context, userID int, draft NotificationDraft) error
}

// InventoryConsumer deducts ingredient stock for an order being fulfilled.
type InventoryConsumer interface {
	ConsumeForOrder(ctx context.Context, o *models.Order) error
}

// MenuSource resolves menu items for pricing and recipes.
type MenuSource interface {
	MenuItemsByIDs(ctx context.Context, restaurantID int, ids []int) ([]models.MenuItem, error)
}

// PromoSource resolves promo codes at checkout.
type PromoSource interface {
	GetActiveByCode(ctx context.Context, code string) (*models.Promotion, error)
	IncrementUse(ctx context.Context, id int) error
}

// RestaurantSource resolves restaurants for naming and ownership.
type RestaurantSource interface {
	GetRestaurantByID(ctx context.Context, id int) (*models.Restaurant, error)
}

var taxRate = decimal.NewFromFloat(0.10)
var flatDeliveryFee = decimal.NewFromFloat(5.00)

type OrderService struct {
	orders      OrderRepo
	payments    PaymentRepo
	notifier    Notifier
	inventory   InventoryConsumer
	menu        MenuSource
	promos      PromoSource
	restaurants RestaurantSource
	now         func() time.Time
}

func NewOrderService(orders OrderRepo, payments PaymentRepo, notifier Notifier,
	inventory InventoryConsumer, menu MenuSource, promos PromoSource, restaurants RestaurantSource) *OrderService {
	return &OrderService{
		orders:      orders,
		payments:    payments,
		notifier:    notifier,
		inventory:   inventory,
		menu:        menu,
		promos:      promos,
		restaurants: restaurants,
		now:         time.Now,
	}
}

// Checkout prices the requested items, applies an optional promo code and
// creates the order in PENDING status together with its PENDING payment.
func (s *OrderService) Checkout(ctx context.Context, userID int, req models.CheckoutRequest) (*models.Order, error) {
	if !models.ValidPaymentMethod(req.PaymentMethod) {
		return nil, fmt.Errorf("invalid payment method %q", req.PaymentMethod)
	}

	restaurant, err := s.restaurants.GetRestaurantByID(ctx, req.RestaurantID)
	if err != nil {
		return nil, errors.New("restaurant not found")
	}

	ids := make([]int, 0, len(req.Items))
	qty := map[int]int{}
	for _, it := range req.Items {
		ids = append(ids, it.MenuItemID)
		qty[it.MenuItemID] += it.Quantity
	}

	menuItems, err := s.menu.MenuItemsByIDs(ctx, req.RestaurantID, ids)
	if err != nil {
		return nil, err
	}
	if len(menuItems) != len(qty) {
		return nil, ErrMenuUnavailable
	}

	now := s.now()
	order := &models.Order{
		OrderNumber:     fmt.Sprintf("ORD-%d", now.UnixNano()),
		UserID:          userID,
		RestaurantID:    restaurant.ID,
		RestaurantName:  restaurant.Name,
		Status:          models.OrderPending,
		PaymentMethod:   req.PaymentMethod,
		DeliveryAddress: req.DeliveryAddress,
	}

	subtotal := decimal.Zero
	for _, mi := range menuItems {
		if !mi.IsAvailable {
			return nil, ErrMenuUnavailable
		}
		n := qty[mi.ID]
		lineTotal := mi.Price.Mul(decimal.NewFromInt(int64(n)))
		subtotal = subtotal.Add(lineTotal)
		order.Items = append(order.Items, models.OrderItem{
			MenuItemID: mi.ID,
			Name:       mi.Name,
			Quantity:   n,
			UnitPrice:  mi.Price,
			Subtotal:   lineTotal,
		})
	}

	order.Subtotal = subtotal
	order.Tax = subtotal.Mul(taxRate).Round(2)
	order.DeliveryFee = flatDeliveryFee
	order.Discount = decimal.Zero

	var promo *models.Promotion
	if req.PromoCode != "" {
		promo, err = s.promos.GetActiveByCode(ctx, req.PromoCode)
		if err != nil || promo == nil || !promo.Usable(now) {
			return nil, ErrInvalidPromo
		}
		order.Discount = promo.DiscountFor(subtotal)
	}

	order.Total = order.ComputeTotal()

	payment := &models.Payment{
		UserID:   userID,
		Amount:   order.Total,
		Currency: "USD",
		Method:   req.PaymentMethod,
		Status:   models.PaymentPending,
	}

	if err := s.orders.CreateWithItems(ctx, order, payment); err != nil {
		return nil, err
	}

	if promo != nil {
		if err := s.promos.IncrementUse(ctx, promo.ID); err != nil {
			log.Printf("Failed to record promo use for %s: %v", promo.Code, err)
		}
	}

	s.emit(ctx, order.UserID, TransitionEffects("", models.OrderPending, order).Notifications)

	return order, nil
}

// ChangeStatus drives the order lifecycle. Side effects are computed purely
// from (previous persisted status, requested status), the cash
// auto-confirmation is applied before the guarded status write, and
// notifications are emitted only after the write succeeded.
func (s *OrderService) ChangeStatus(ctx context.Context, scope models.Scope, orderID int, req models.OrderStatusRequest) (*models.Order, error) {
	if !models.ValidOrderStatus(req.Status) {
		return nil, ErrInvalidStatus
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	if !scope.CanAccess(order) {
		return nil, ErrForbidden
	}

	effects := TransitionEffects(order.Status, req.Status, order)
	if effects.Empty() {
		// Unchanged status: nothing to do, and no duplicate notifications.
		return order, nil
	}
	if order.Terminal() {
		return nil, ErrOrderClosed
	}

	now := s.now()

	if req.Status == models.OrderConfirmed && s.inventory != nil {
		if err := s.inventory.ConsumeForOrder(ctx, order); err != nil {
			return nil, err
		}
	}

	cashApplied := false
	if effects.ConfirmCashPayment {
		applied, err := s.payments.ConfirmPendingCash(ctx, orderID, now)
		if err != nil {
			return nil, err
		}
		if applied {
			// The order may have been delivered via an untracked cash path;
			// in that case nothing is confirmed and is_paid stays false.
			if err := s.orders.MarkPaidDelivered(ctx, orderID, now); err != nil {
				return nil, err
			}
			cashApplied = true
		}
	}

	ok, err := s.orders.UpdateStatus(ctx, orderID, order.Status, req.Status, req.Reason, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrStatusConflict
	}

	if cashApplied && effects.CashConfirmed != nil {
		s.emit(ctx, order.UserID, []NotificationDraft{*effects.CashConfirmed})
	}
	s.emit(ctx, order.UserID, effects.Notifications)

	return s.orders.GetByID(ctx, orderID)
}

func (s *OrderService) GetOrder(ctx context.Context, scope models.Scope, id int) (*models.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	if !scope.CanAccess(order) {
		return nil, ErrForbidden
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, scope models.Scope, status string, page, limit int) ([]models.Order, int, error) {
	return s.orders.ListByScope(ctx, scope, status, page, limit)
}

// emit persists notification drafts, logging and skipping failures so a
// notification problem never breaks an order write that already committed.
func (s *OrderService) emit(ctx context.Context, userID int, drafts []NotificationDraft) {
	if s.notifier == nil {
		return
	}
	for _, d := range drafts {
		if err := s.notifier.Notify(ctx, userID, d); err != nil {
			log.Printf("Failed to create notification %q for user %d: %v", d.Title, userID, err)
		}
	}
}
