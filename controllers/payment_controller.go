package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"restaurant-platform/middleware"
	"restaurant-platform/services"
)

type PaymentController struct {
	paymentService *services.PaymentService
}

func NewPaymentController(paymentService *services.PaymentService) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

func paymentErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrPaymentNotFound):
		return 404
	case errors.Is(err, services.ErrForbidden):
		return 403
	case errors.Is(err, services.ErrPaymentClosed),
		errors.Is(err, services.ErrStatusConflict):
		return 409
	}
	return 500
}

// @Summary List payments
// @Tags Payments
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginatedResponse
// @Router /payments [get]
func (ctrl *PaymentController) List(c *gin.Context) {
	page, limit := getPaginationParams(c, 10)

	payments, total, err := ctrl.paymentService.List(c.Request.Context(), middleware.GetScope(c), page, limit)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get payments", "error": err.Error()})
		return
	}

	c.JSON(200, paginated("Payments retrieved", payments, page, limit, total))
}

// @Summary Get payment by ID
// @Tags Payments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /payments/{id} [get]
func (ctrl *PaymentController) Get(c *gin.Context) {
	payment, err := ctrl.paymentService.Get(c.Request.Context(), middleware.GetScope(c), idParam(c))
	if err != nil {
		c.JSON(paymentErrorStatus(err), gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Payment retrieved", "data": payment})
}

// @Summary Capture a payment
// @Description Mark the payment SUCCEEDED and confirm its order
// @Tags Payments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /payments/{id}/capture [post]
func (ctrl *PaymentController) Capture(c *gin.Context) {
	payment, err := ctrl.paymentService.Capture(c.Request.Context(), middleware.GetScope(c), idParam(c))
	if err != nil {
		c.JSON(paymentErrorStatus(err), gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Payment captured", "data": payment})
}

// @Summary Payment provider webhook
// @Description Placeholder endpoint for asynchronous provider callbacks.
// Always acknowledges so the provider does not retry; events are logged only.
// @Tags Payments
// @Accept json
// @Produce json
// @Success 200 {object} models.Response
// @Router /payments/webhook [post]
func (ctrl *PaymentController) Webhook(c *gin.Context) {
	var event map[string]any
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid payload"})
		return
	}

	ctrl.paymentService.LogWebhookEvent(event)
	c.JSON(200, gin.H{"success": true, "message": "Event received"})
}
