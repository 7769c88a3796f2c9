package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"restaurant-platform/models"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

const orderColumns = `
	o.id, o.order_number, o.user_id, o.restaurant_id, r.name,
	o.status, o.is_paid, o.payment_method,
	o.subtotal, o.tax, o.delivery_fee, o.discount, o.total,
	o.delivery_address, COALESCE(o.cancellation_reason, ''),
	o.created_at, o.updated_at, o.delivered_at, o.cancelled_at`

func scanOrder(row interface{ Scan(...any) error }) (*models.Order, error) {
	o := &models.Order{}
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.UserID, &o.RestaurantID, &o.RestaurantName,
		&o.Status, &o.IsPaid, &o.PaymentMethod,
		&o.Subtotal, &o.Tax, &o.DeliveryFee, &o.Discount, &o.Total,
		&o.DeliveryAddress, &o.CancellationReason,
		&o.CreatedAt, &o.UpdatedAt, &o.DeliveredAt, &o.CancelledAt,
	)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int) (*models.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders o JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.id = $1`

	o, err := scanOrder(models.DB.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	items, err := r.itemsForOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

func (r *OrderRepository) itemsForOrder(ctx context.Context, orderID int) ([]models.OrderItem, error) {
	rows, err := models.DB.Query(ctx, `
		SELECT id, order_id, menu_item_id, name, quantity, unit_price, subtotal
		FROM order_items WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var it models.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.MenuItemID, &it.Name, &it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *OrderRepository) ListByScope(ctx context.Context, scope models.Scope, status string, page, limit int) ([]models.Order, int, error) {
	offset := (page - 1) * limit

	where := []string{}
	args := []any{}

	switch scope.Role {
	case models.RoleCustomer:
		args = append(args, scope.UserID)
		where = append(where, fmt.Sprintf("o.user_id = $%d", len(args)))
	case models.RoleRestaurantOwner:
		args = append(args, scope.OwnedRestaurantIDs)
		where = append(where, fmt.Sprintf("o.restaurant_id = ANY($%d)", len(args)))
	case models.RoleAdmin:
		// no filter
	default:
		return []models.Order{}, 0, nil
	}

	if status != "" && status != "All" {
		args = append(args, status)
		where = append(where, fmt.Sprintf("o.status = $%d", len(args)))
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM orders o" + whereClause
	if err := models.DB.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + orderColumns + `
		FROM orders o JOIN restaurants r ON r.id = o.restaurant_id` + whereClause +
		fmt.Sprintf(" ORDER BY o.created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := models.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, *o)
	}
	return orders, total, rows.Err()
}

// CreateWithItems inserts the order, its items and the initial PENDING
// payment in a single transaction.
func (r *OrderRepository) CreateWithItems(ctx context.Context, o *models.Order, p *models.Payment) error {
	tx, err := models.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	err = tx.QueryRow(ctx, `
		INSERT INTO orders (order_number, user_id, restaurant_id, status, is_paid, payment_method,
			subtotal, tax, delivery_fee, discount, total, delivery_address, created_at, updated_at)
		VALUES ($1,$2,$3,$4,false,$5,$6,$7,$8,$9,$10,$11,$12,$12)
		RETURNING id, created_at, updated_at`,
		o.OrderNumber, o.UserID, o.RestaurantID, o.Status, o.PaymentMethod,
		o.Subtotal, o.Tax, o.DeliveryFee, o.Discount, o.Total, o.DeliveryAddress, now,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return err
	}

	for i := range o.Items {
		it := &o.Items[i]
		it.OrderID = o.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, name, quantity, unit_price, subtotal)
			VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`,
			it.OrderID, it.MenuItemID, it.Name, it.Quantity, it.UnitPrice, it.Subtotal,
		).Scan(&it.ID)
		if err != nil {
			return err
		}
	}

	if p != nil {
		p.OrderID = o.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO payments (order_id, user_id, amount, currency, payment_method, status, created_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id, created_at`,
			p.OrderID, p.UserID, p.Amount, p.Currency, p.Method, p.Status, now,
		).Scan(&p.ID, &p.CreatedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// UpdateStatus applies the guarded transition. The WHERE status = prev clause
// is the optimistic check: a concurrent writer that already moved the order
// makes this a no-op.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id int, prev, next, reason string, now time.Time) (bool, error) {
	var tag string
	var args []any

	switch next {
	case models.OrderCancelled:
		tag = `UPDATE orders SET status=$1, cancellation_reason=$2, cancelled_at=$3, updated_at=$3
			WHERE id=$4 AND status=$5`
		args = []any{next, reason, now, id, prev}
	default:
		tag = `UPDATE orders SET status=$1, updated_at=$2 WHERE id=$3 AND status=$4`
		args = []any{next, now, id, prev}
	}

	result, err := models.DB.Exec(ctx, tag, args...)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

func (r *OrderRepository) MarkPaidDelivered(ctx context.Context, id int, now time.Time) error {
	_, err := models.DB.Exec(ctx,
		`UPDATE orders SET is_paid=true, delivered_at=$1, updated_at=$1 WHERE id=$2`, now, id)
	return err
}

func (r *OrderRepository) MarkPaid(ctx context.Context, id int) error {
	_, err := models.DB.Exec(ctx,
		`UPDATE orders SET is_paid=true, updated_at=$1 WHERE id=$2`, time.Now(), id)
	return err
}

// ListExpiredPending feeds the auto-cancel sweep.
func (r *OrderRepository) ListExpiredPending(ctx context.Context, cutoff time.Time) ([]models.Order, error) {
	rows, err := models.DB.Query(ctx, `SELECT `+orderColumns+`
		FROM orders o JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.status = $1 AND o.is_paid = false AND o.created_at < $2
		ORDER BY o.created_at`, models.OrderPending, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

// CancelIfPending is the sweep's status-guarded write.
func (r *OrderRepository) CancelIfPending(ctx context.Context, id int, reason string, now time.Time) (bool, error) {
	result, err := models.DB.Exec(ctx, `
		UPDATE orders SET status=$1, cancellation_reason=$2, cancelled_at=$3, updated_at=$3
		WHERE id=$4 AND status=$5 AND is_paid=false`,
		models.OrderCancelled, reason, now, id, models.OrderPending)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}
