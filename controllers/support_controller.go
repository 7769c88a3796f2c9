package controllers

import (
	"github.com/gin-gonic/gin"

	"restaurant-platform/middleware"
	"restaurant-platform/models"
	"restaurant-platform/repositories"
)

type SupportController struct {
	repo *repositories.SupportRepository
}

func NewSupportController() *SupportController {
	return &SupportController{
		repo: repositories.NewSupportRepository(),
	}
}

// @Summary Open a support ticket
// @Tags Support
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.SupportTicketRequest true "Ticket data"
// @Success 201 {object} models.Response
// @Router /support/tickets [post]
func (ctrl *SupportController) Create(c *gin.Context) {
	var req models.SupportTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	priority := req.Priority
	if priority == "" {
		priority = "MEDIUM"
	}

	ticket := &models.SupportTicket{
		UserID:      currentUserID(c),
		Subject:     req.Subject,
		Description: req.Description,
		Priority:    priority,
	}

	if err := ctrl.repo.Create(c.Request.Context(), ticket); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create ticket", "error": err.Error()})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Ticket created", "data": ticket})
}

// @Summary List support tickets
// @Description Users see their own tickets, admins all
// @Tags Support
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginatedResponse
// @Router /support/tickets [get]
func (ctrl *SupportController) List(c *gin.Context) {
	page, limit := getPaginationParams(c, 10)

	tickets, total, err := ctrl.repo.ListByScope(c.Request.Context(), middleware.GetScope(c), page, limit)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get tickets", "error": err.Error()})
		return
	}

	c.JSON(200, paginated("Tickets retrieved", tickets, page, limit, total))
}

// @Summary Get ticket by ID
// @Tags Support
// @Security BearerAuth
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /support/tickets/{id} [get]
func (ctrl *SupportController) Get(c *gin.Context) {
	ticket, err := ctrl.repo.GetByID(c.Request.Context(), idParam(c))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Ticket not found"})
		return
	}

	if !middleware.GetScope(c).CanAccess(ticket) {
		c.JSON(403, gin.H{"success": false, "message": "Access denied"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Ticket retrieved", "data": ticket})
}

// @Summary Update ticket status
// @Tags Admin - Support
// @Security BearerAuth
// @Produce json
// @Param id path int true "Ticket ID"
// @Param status query string true "New status" Enums(OPEN, IN_PROGRESS, RESOLVED, CLOSED)
// @Success 200 {object} models.Response
// @Router /admin/support/tickets/{id}/status [patch]
func (ctrl *SupportController) UpdateStatus(c *gin.Context) {
	status := c.Query("status")
	switch status {
	case models.TicketOpen, models.TicketInProgress, models.TicketResolved, models.TicketClosed:
	default:
		c.JSON(400, gin.H{"success": false, "message": "Invalid ticket status"})
		return
	}

	if err := ctrl.repo.UpdateStatus(c.Request.Context(), idParam(c), status); err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Ticket not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Ticket status updated"})
}
