package controllers

import (
	"github.com/gin-gonic/gin"

	"restaurant-platform/services"
)

// TaskController exposes the periodic sweeps as admin endpoints so they can
// be triggered on demand between ticker runs.
type TaskController struct {
	sweeps *services.SweepService
}

func NewTaskController(sweeps *services.SweepService) *TaskController {
	return &TaskController{sweeps: sweeps}
}

// @Summary Auto-cancel unpaid orders
// @Description Cancel orders that stayed PENDING and unpaid past the cutoff
// @Tags Admin - Tasks
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/tasks/auto-cancel-orders [post]
func (ctrl *TaskController) AutoCancelOrders(c *gin.Context) {
	summary, err := ctrl.sweeps.AutoCancelUnpaidOrders(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Sweep failed", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": summary})
}

// @Summary Mark no-show reservations
// @Description Flag CONFIRMED reservations whose start time passed the grace period
// @Tags Admin - Tasks
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/tasks/mark-no-shows [post]
func (ctrl *TaskController) MarkNoShows(c *gin.Context) {
	summary, err := ctrl.sweeps.MarkNoShowReservations(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Sweep failed", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": summary})
}
