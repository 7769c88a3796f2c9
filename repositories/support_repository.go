package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"restaurant-platform/models"
)

type SupportRepository struct{}

func NewSupportRepository() *SupportRepository {
	return &SupportRepository{}
}

const ticketColumns = `id, user_id, subject, description, status, priority, created_at, updated_at`

func scanTicket(row interface{ Scan(...any) error }) (*models.SupportTicket, error) {
	var t models.SupportTicket
	err := row.Scan(&t.ID, &t.UserID, &t.Subject, &t.Description, &t.Status, &t.Priority,
		&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *SupportRepository) Create(ctx context.Context, t *models.SupportTicket) error {
	now := time.Now()
	return models.DB.QueryRow(ctx, `
		INSERT INTO support_tickets (user_id, subject, description, status, priority, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$6)
		RETURNING id, created_at, updated_at`,
		t.UserID, t.Subject, t.Description, models.TicketOpen, t.Priority, now,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *SupportRepository) GetByID(ctx context.Context, id int) (*models.SupportTicket, error) {
	t, err := scanTicket(models.DB.QueryRow(ctx,
		`SELECT `+ticketColumns+` FROM support_tickets WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return t, err
}

func (r *SupportRepository) ListByScope(ctx context.Context, scope models.Scope, page, limit int) ([]models.SupportTicket, int, error) {
	offset := (page - 1) * limit

	countQuery := `SELECT COUNT(*) FROM support_tickets WHERE user_id = $1`
	listQuery := `SELECT ` + ticketColumns + ` FROM support_tickets WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	args := []any{scope.UserID}
	if scope.IsAdmin() {
		countQuery = `SELECT COUNT(*) FROM support_tickets`
		listQuery = `SELECT ` + ticketColumns + ` FROM support_tickets
			ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		args = nil
	}

	var total int
	if err := models.DB.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := models.DB.Query(ctx, listQuery, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	tickets := []models.SupportTicket{}
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, *t)
	}
	return tickets, total, rows.Err()
}

func (r *SupportRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	result, err := models.DB.Exec(ctx, `
		UPDATE support_tickets SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now(), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
