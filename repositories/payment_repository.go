package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"restaurant-platform/models"
)

type PaymentRepository struct{}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

const paymentColumns = `id, order_id, user_id, amount, currency, payment_method, status, paid_at, created_at`

func (r *PaymentRepository) GetByID(ctx context.Context, id int) (*models.Payment, error) {
	p := &models.Payment{}
	err := models.DB.QueryRow(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id,
	).Scan(&p.ID, &p.OrderID, &p.UserID, &p.Amount, &p.Currency, &p.Method, &p.Status, &p.PaidAt, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PaymentRepository) ListByScope(ctx context.Context, scope models.Scope, page, limit int) ([]models.Payment, int, error) {
	offset := (page - 1) * limit

	where := []string{}
	args := []any{}

	switch scope.Role {
	case models.RoleCustomer:
		args = append(args, scope.UserID)
		where = append(where, fmt.Sprintf("p.user_id = $%d", len(args)))
	case models.RoleRestaurantOwner:
		args = append(args, scope.OwnedRestaurantIDs)
		where = append(where, fmt.Sprintf("o.restaurant_id = ANY($%d)", len(args)))
	case models.RoleAdmin:
	default:
		return []models.Payment{}, 0, nil
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	err := models.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM payments p JOIN orders o ON o.id = p.order_id`+whereClause, args...,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := `SELECT p.id, p.order_id, p.user_id, p.amount, p.currency, p.payment_method, p.status, p.paid_at, p.created_at
		FROM payments p JOIN orders o ON o.id = p.order_id` + whereClause +
		fmt.Sprintf(" ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := models.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.OrderID, &p.UserID, &p.Amount, &p.Currency, &p.Method, &p.Status, &p.PaidAt, &p.CreatedAt); err != nil {
			return nil, 0, err
		}
		payments = append(payments, p)
	}
	return payments, total, rows.Err()
}

// ConfirmPendingCash marks the order's pending cash payment SUCCEEDED. The
// WHERE clause doubles as the not-found check: an order paid through another
// method simply matches no row.
func (r *PaymentRepository) ConfirmPendingCash(ctx context.Context, orderID int, now time.Time) (bool, error) {
	result, err := models.DB.Exec(ctx, `
		UPDATE payments SET status=$1, paid_at=$2
		WHERE order_id=$3 AND payment_method=$4 AND status=$5`,
		models.PaymentSucceeded, now, orderID, models.PayByCash, models.PaymentPending)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

func (r *PaymentRepository) MarkSucceeded(ctx context.Context, id int, now time.Time) (bool, error) {
	result, err := models.DB.Exec(ctx, `
		UPDATE payments SET status=$1, paid_at=$2
		WHERE id=$3 AND status IN ($4, $5)`,
		models.PaymentSucceeded, now, id, models.PaymentPending, models.PaymentProcessing)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}
