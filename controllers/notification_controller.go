package controllers

import (
	"github.com/gin-gonic/gin"

	"restaurant-platform/services"
)

type NotificationController struct {
	notificationService *services.NotificationService
}

func NewNotificationController(notificationService *services.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// @Summary List own notifications
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginatedResponse
// @Router /notifications [get]
func (ctrl *NotificationController) List(c *gin.Context) {
	page, limit := getPaginationParams(c, 20)

	notifications, total, err := ctrl.notificationService.List(c.Request.Context(), currentUserID(c), page, limit)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get notifications", "error": err.Error()})
		return
	}

	c.JSON(200, paginated("Notifications retrieved", notifications, page, limit, total))
}

// @Summary Get unread notification count
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /notifications/unread-count [get]
func (ctrl *NotificationController) UnreadCount(c *gin.Context) {
	count, err := ctrl.notificationService.UnreadCount(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to count notifications", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Unread count retrieved", "data": gin.H{"unread": count}})
}

// @Summary Mark a notification as read
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /notifications/{id}/read [patch]
func (ctrl *NotificationController) MarkRead(c *gin.Context) {
	ok, err := ctrl.notificationService.MarkRead(c.Request.Context(), currentUserID(c), idParam(c))
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to mark notification", "error": err.Error()})
		return
	}
	if !ok {
		c.JSON(404, gin.H{"success": false, "message": "Notification not found or already read"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Notification marked as read"})
}

// @Summary Mark all notifications as read
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /notifications/read-all [patch]
func (ctrl *NotificationController) MarkAllRead(c *gin.Context) {
	n, err := ctrl.notificationService.MarkAllRead(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to mark notifications", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Notifications marked as read", "data": gin.H{"updated": n}})
}
