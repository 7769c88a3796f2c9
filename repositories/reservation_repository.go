package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"restaurant-platform/models"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

const reservationColumns = `id, user_id, restaurant_id, table_id, reservation_date, reservation_time,
	guests_count, status, COALESCE(special_requests, ''), phone, email,
	COALESCE(cancellation_reason, ''), created_at, updated_at, cancelled_at`

func scanReservation(row interface{ Scan(...any) error }) (*models.Reservation, error) {
	r := &models.Reservation{}
	err := row.Scan(
		&r.ID, &r.UserID, &r.RestaurantID, &r.TableID, &r.ReservationDate, &r.ReservationTime,
		&r.GuestsCount, &r.Status, &r.SpecialRequests, &r.Phone, &r.Email,
		&r.CancellationReason, &r.CreatedAt, &r.UpdatedAt, &r.CancelledAt,
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ReservationRepository) Create(ctx context.Context, res *models.Reservation) error {
	now := time.Now()
	return models.DB.QueryRow(ctx, `
		INSERT INTO reservations (user_id, restaurant_id, table_id, reservation_date, reservation_time,
			guests_count, status, special_requests, phone, email, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$11)
		RETURNING id, created_at, updated_at`,
		res.UserID, res.RestaurantID, res.TableID, res.ReservationDate, res.ReservationTime,
		res.GuestsCount, res.Status, res.SpecialRequests, res.Phone, res.Email, now,
	).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int) (*models.Reservation, error) {
	return scanReservation(models.DB.QueryRow(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id))
}

func (r *ReservationRepository) ListByScope(ctx context.Context, scope models.Scope, page, limit int) ([]models.Reservation, int, error) {
	offset := (page - 1) * limit

	where := []string{}
	args := []any{}

	switch scope.Role {
	case models.RoleCustomer:
		args = append(args, scope.UserID)
		where = append(where, fmt.Sprintf("user_id = $%d", len(args)))
	case models.RoleRestaurantOwner:
		args = append(args, scope.OwnedRestaurantIDs)
		where = append(where, fmt.Sprintf("restaurant_id = ANY($%d)", len(args)))
	case models.RoleAdmin:
	default:
		return []models.Reservation{}, 0, nil
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := models.DB.QueryRow(ctx, "SELECT COUNT(*) FROM reservations"+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + reservationColumns + ` FROM reservations` + whereClause +
		fmt.Sprintf(" ORDER BY reservation_date DESC, reservation_time DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := models.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	reservations := []models.Reservation{}
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, 0, err
		}
		reservations = append(reservations, *res)
	}
	return reservations, total, rows.Err()
}

func (r *ReservationRepository) UpdateStatusIf(ctx context.Context, id int, prev, next string) (bool, error) {
	result, err := models.DB.Exec(ctx, `
		UPDATE reservations SET status=$1, updated_at=$2 WHERE id=$3 AND status=$4`,
		next, time.Now(), id, prev)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

func (r *ReservationRepository) CancelIfActive(ctx context.Context, id int, reason string, now time.Time) (bool, error) {
	result, err := models.DB.Exec(ctx, `
		UPDATE reservations SET status=$1, cancellation_reason=$2, cancelled_at=$3, updated_at=$3
		WHERE id=$4 AND status IN ($5, $6)`,
		models.ReservationCancelled, reason, now, id,
		models.ReservationPending, models.ReservationConfirmed)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

// ListRecentConfirmed feeds the no-show sweep.
func (r *ReservationRepository) ListRecentConfirmed(ctx context.Context, since time.Time) ([]models.Reservation, error) {
	rows, err := models.DB.Query(ctx, `
		SELECT `+reservationColumns+` FROM reservations
		WHERE status = $1 AND reservation_date >= $2
		ORDER BY reservation_date, reservation_time`,
		models.ReservationConfirmed, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := []models.Reservation{}
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, *res)
	}
	return reservations, rows.Err()
}

func (r *ReservationRepository) MarkNoShowIfConfirmed(ctx context.Context, id int) (bool, error) {
	result, err := models.DB.Exec(ctx, `
		UPDATE reservations SET status=$1, updated_at=$2 WHERE id=$3 AND status=$4`,
		models.ReservationNoShow, time.Now(), id, models.ReservationConfirmed)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

// AvailableTables returns tables with enough capacity that have no PENDING or
// CONFIRMED reservation at the same date and time.
func (r *ReservationRepository) AvailableTables(ctx context.Context, restaurantID int, date time.Time, timeOfDay string, guests int) ([]models.Table, error) {
	rows, err := models.DB.Query(ctx, `
		SELECT t.id, t.restaurant_id, t.table_number, t.capacity, COALESCE(t.location, ''), t.is_available, t.created_at
		FROM tables t
		WHERE t.restaurant_id = $1 AND t.capacity >= $2 AND t.is_available = true
		AND NOT EXISTS (
			SELECT 1 FROM reservations res
			WHERE res.table_id = t.id
			  AND res.reservation_date = $3
			  AND res.reservation_time = $4
			  AND res.status IN ($5, $6)
		)
		ORDER BY t.capacity, t.table_number`,
		restaurantID, guests, date, timeOfDay,
		models.ReservationPending, models.ReservationConfirmed)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := []models.Table{}
	for rows.Next() {
		var t models.Table
		if err := rows.Scan(&t.ID, &t.RestaurantID, &t.TableNumber, &t.Capacity, &t.Location, &t.IsAvailable, &t.CreatedAt); err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, rows.Err()
}
