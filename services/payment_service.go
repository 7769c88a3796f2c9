package services

import (
	"context"
	"errors"
	"log"
	"time"

	"restaurant-platform/models"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrPaymentClosed   = errors.New("payment already settled")
)

// PaymentService handles the simulated capture flow. A real gateway
// integration is out of scope; cash settles through the order lifecycle's
// auto-confirmation instead.
type PaymentService struct {
	payments PaymentRepo
	orders   *OrderService
	now      func() time.Time
}

func NewPaymentService(payments PaymentRepo, orders *OrderService) *PaymentService {
	return &PaymentService{payments: payments, orders: orders, now: time.Now}
}

// Capture marks a PENDING or PROCESSING payment as SUCCEEDED, flags the order
// paid and drives it to CONFIRMED so the usual lifecycle side effects fire.
func (s *PaymentService) Capture(ctx context.Context, scope models.Scope, paymentID int) (*models.Payment, error) {
	p, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		return nil, ErrPaymentNotFound
	}
	if !scope.CanAccess(p) {
		return nil, ErrForbidden
	}

	ok, err := s.payments.MarkSucceeded(ctx, paymentID, s.now())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrPaymentClosed
	}

	if err := s.orders.orders.MarkPaid(ctx, p.OrderID); err != nil {
		return nil, err
	}

	if _, err := s.orders.ChangeStatus(ctx, scope, p.OrderID, models.OrderStatusRequest{Status: models.OrderConfirmed}); err != nil {
		// The payment already settled; a lifecycle failure here (for example
		// insufficient inventory) leaves the order PENDING but paid.
		if !errors.Is(err, ErrStatusConflict) {
			return nil, err
		}
	}

	return s.payments.GetByID(ctx, paymentID)
}

func (s *PaymentService) Get(ctx context.Context, scope models.Scope, id int) (*models.Payment, error) {
	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, ErrPaymentNotFound
	}
	if !scope.CanAccess(p) {
		return nil, ErrForbidden
	}
	return p, nil
}

func (s *PaymentService) List(ctx context.Context, scope models.Scope, page, limit int) ([]models.Payment, int, error) {
	return s.payments.ListByScope(ctx, scope, page, limit)
}

// LogWebhookEvent records an incoming provider callback. Processing the
// event is not implemented; capture happens through the API instead.
func (s *PaymentService) LogWebhookEvent(event map[string]any) {
	log.Printf("Payment webhook event received: type=%v id=%v", event["type"], event["id"])
}
