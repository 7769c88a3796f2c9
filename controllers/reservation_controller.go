package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"restaurant-platform/middleware"
	"restaurant-platform/models"
	"restaurant-platform/services"
)

type ReservationController struct {
	reservationService *services.ReservationService
}

func NewReservationController(reservationService *services.ReservationService) *ReservationController {
	return &ReservationController{reservationService: reservationService}
}

func reservationErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrReservationNotFound),
		errors.Is(err, services.ErrTableNotFound):
		return 404
	case errors.Is(err, services.ErrForbidden):
		return 403
	case errors.Is(err, services.ErrReservationClosed),
		errors.Is(err, services.ErrStatusConflict):
		return 409
	}
	return 400
}

// @Summary Book a table
// @Tags Reservations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ReservationRequest true "Reservation data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /reservations [post]
func (ctrl *ReservationController) Create(c *gin.Context) {
	var req models.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	reservation, err := ctrl.reservationService.Create(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		c.JSON(reservationErrorStatus(err), gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Reservation requested", "data": reservation})
}

// @Summary List reservations
// @Tags Reservations
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginatedResponse
// @Router /reservations [get]
func (ctrl *ReservationController) List(c *gin.Context) {
	page, limit := getPaginationParams(c, 10)

	reservations, total, err := ctrl.reservationService.List(c.Request.Context(), middleware.GetScope(c), page, limit)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get reservations", "error": err.Error()})
		return
	}

	c.JSON(200, paginated("Reservations retrieved", reservations, page, limit, total))
}

// @Summary Get reservation by ID
// @Tags Reservations
// @Security BearerAuth
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /reservations/{id} [get]
func (ctrl *ReservationController) Get(c *gin.Context) {
	reservation, err := ctrl.reservationService.Get(c.Request.Context(), middleware.GetScope(c), idParam(c))
	if err != nil {
		c.JSON(reservationErrorStatus(err), gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Reservation retrieved", "data": reservation})
}

// @Summary Confirm a reservation
// @Tags Reservations
// @Security BearerAuth
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /reservations/{id}/confirm [patch]
func (ctrl *ReservationController) Confirm(c *gin.Context) {
	reservation, err := ctrl.reservationService.Confirm(c.Request.Context(), middleware.GetScope(c), idParam(c))
	if err != nil {
		c.JSON(reservationErrorStatus(err), gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Reservation confirmed", "data": reservation})
}

// @Summary Cancel a reservation
// @Tags Reservations
// @Security BearerAuth
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /reservations/{id}/cancel [patch]
func (ctrl *ReservationController) Cancel(c *gin.Context) {
	reservation, err := ctrl.reservationService.Cancel(c.Request.Context(), middleware.GetScope(c), idParam(c), c.Query("reason"))
	if err != nil {
		c.JSON(reservationErrorStatus(err), gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Reservation cancelled", "data": reservation})
}

// @Summary List available tables
// @Description Tables with enough capacity and no conflicting reservation at the requested slot
// @Tags Reservations
// @Produce json
// @Param id path int true "Restaurant ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param time query string true "Time (HH:MM)"
// @Param guests query int true "Number of guests"
// @Success 200 {object} models.Response
// @Router /restaurants/{id}/available-tables [get]
func (ctrl *ReservationController) AvailableTables(c *gin.Context) {
	guests, _ := strconv.Atoi(c.DefaultQuery("guests", "1"))

	tables, err := ctrl.reservationService.AvailableTables(c.Request.Context(),
		idParam(c), c.Query("date"), c.Query("time"), guests)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Available tables retrieved", "data": tables})
}
