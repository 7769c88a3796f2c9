package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"restaurant-platform/models"
)

// NotificationRepo is the persistence surface for notification records.
type NotificationRepo interface {
	Create(ctx context.Context, n *models.Notification) error
	ListByUser(ctx context.Context, userID, page, limit int) ([]models.Notification, int, error)
	CountUnread(ctx context.Context, userID int) (int, error)
	MarkRead(ctx context.Context, userID, id int) (bool, error)
	MarkAllRead(ctx context.Context, userID int) (int, error)
}

const unreadCacheTTL = time.Minute

type NotificationService struct {
	repo NotificationRepo
}

func NewNotificationService(repo NotificationRepo) *NotificationService {
	return &NotificationService{repo: repo}
}

// Notify persists a notification record. Delivery flags start false; the
// email/SMS/push channels are external consumers that poll for unsent rows.
func (s *NotificationService) Notify(ctx context.Context, userID int, draft NotificationDraft) error {
	n := &models.Notification{
		UserID:  userID,
		Type:    draft.Type,
		Title:   draft.Title,
		Message: draft.Message,
		Data:    draft.Data,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}
	models.CacheDel(ctx, unreadKey(userID))
	return nil
}

func (s *NotificationService) List(ctx context.Context, userID, page, limit int) ([]models.Notification, int, error) {
	return s.repo.ListByUser(ctx, userID, page, limit)
}

// UnreadCount returns the number of unread notifications, served from the
// redis cache when available.
func (s *NotificationService) UnreadCount(ctx context.Context, userID int) (int, error) {
	if cached := models.CacheGet(ctx, unreadKey(userID)); cached != "" {
		if n, err := strconv.Atoi(cached); err == nil {
			return n, nil
		}
	}

	n, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, err
	}
	models.CacheSet(ctx, unreadKey(userID), strconv.Itoa(n), unreadCacheTTL)
	return n, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, id int) (bool, error) {
	ok, err := s.repo.MarkRead(ctx, userID, id)
	if ok {
		models.CacheDel(ctx, unreadKey(userID))
	}
	return ok, err
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID int) (int, error) {
	n, err := s.repo.MarkAllRead(ctx, userID)
	if n > 0 {
		models.CacheDel(ctx, unreadKey(userID))
	}
	return n, err
}

func unreadKey(userID int) string {
	return fmt.Sprintf("notifications:unread:%d", userID)
}
