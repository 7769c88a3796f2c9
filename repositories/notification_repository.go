package repositories

import (
	"context"
	"encoding/json"
	"time"

	"restaurant-platform/models"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	data := n.Data
	if data == nil {
		data = map[string]any{}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	return models.DB.QueryRow(ctx, `
		INSERT INTO notifications (user_id, notification_type, title, message, data,
			is_read, sent_email, sent_sms, sent_push, created_at)
		VALUES ($1,$2,$3,$4,$5,false,false,false,false,$6)
		RETURNING id, created_at`,
		n.UserID, n.Type, n.Title, n.Message, raw, time.Now(),
	).Scan(&n.ID, &n.CreatedAt)
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID, page, limit int) ([]models.Notification, int, error) {
	offset := (page - 1) * limit

	var total int
	if err := models.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := models.DB.Query(ctx, `
		SELECT id, user_id, notification_type, title, message, data,
			is_read, sent_email, sent_sms, sent_push, created_at, read_at
		FROM notifications WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	notifications := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		var raw []byte
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &raw,
			&n.IsRead, &n.SentEmail, &n.SentSMS, &n.SentPush, &n.CreatedAt, &n.ReadAt); err != nil {
			return nil, 0, err
		}
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &n.Data)
		}
		notifications = append(notifications, n)
	}
	return notifications, total, rows.Err()
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID int) (int, error) {
	var n int
	err := models.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = false`, userID).Scan(&n)
	return n, err
}

func (r *NotificationRepository) MarkRead(ctx context.Context, userID, id int) (bool, error) {
	result, err := models.DB.Exec(ctx, `
		UPDATE notifications SET is_read = true, read_at = $1
		WHERE id = $2 AND user_id = $3 AND is_read = false`, time.Now(), id, userID)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int) (int, error) {
	result, err := models.DB.Exec(ctx, `
		UPDATE notifications SET is_read = true, read_at = $1
		WHERE user_id = $2 AND is_read = false`, time.Now(), userID)
	if err != nil {
		return 0, err
	}
	return int(result.RowsAffected()), nil
}
