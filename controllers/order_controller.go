package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"restaurant-platform/middleware"
	"restaurant-platform/models"
	"restaurant-platform/services"
)

type OrderController struct {
	orderService *services.OrderService
}

func NewOrderController(orderService *services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

func orderErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		return 404
	case errors.Is(err, services.ErrForbidden):
		return 403
	case errors.Is(err, services.ErrOrderClosed),
		errors.Is(err, services.ErrStatusConflict):
		return 409
	case errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidPromo),
		errors.Is(err, services.ErrMenuUnavailable):
		return 400
	}

	var stock *services.InsufficientStockError
	if errors.As(err, &stock) {
		return 409
	}
	return 500
}

// @Summary Place an order
// @Description Price the cart, apply an optional promo code and create the order with a PENDING payment
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Checkout data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /orders [post]
func (ctrl *OrderController) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	order, err := ctrl.orderService.Checkout(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		status := orderErrorStatus(err)
		if status == 500 {
			status = 400
		}
		c.JSON(status, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Order placed successfully", "data": order})
}

// @Summary List orders
// @Description Customers see their own orders, owners their restaurants' orders, admins all
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param status query string false "Filter by status"
// @Success 200 {object} models.PaginatedResponse
// @Router /orders [get]
func (ctrl *OrderController) List(c *gin.Context) {
	page, limit := getPaginationParams(c, 10)

	orders, total, err := ctrl.orderService.ListOrders(c.Request.Context(),
		middleware.GetScope(c), c.Query("status"), page, limit)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get orders", "error": err.Error()})
		return
	}

	c.JSON(200, paginated("Orders retrieved", orders, page, limit, total))
}

// @Summary Get order by ID
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [get]
func (ctrl *OrderController) Get(c *gin.Context) {
	order, err := ctrl.orderService.GetOrder(c.Request.Context(), middleware.GetScope(c), idParam(c))
	if err != nil {
		c.JSON(orderErrorStatus(err), gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order retrieved", "data": order})
}

// @Summary Update order status
// @Description Drive the order through its lifecycle; CONFIRMED consumes inventory,
// DELIVERED settles pending cash payments, CANCELLED records a reason
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body models.OrderStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /orders/{id}/status [patch]
func (ctrl *OrderController) UpdateStatus(c *gin.Context) {
	var req models.OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	order, err := ctrl.orderService.ChangeStatus(c.Request.Context(), middleware.GetScope(c), idParam(c), req)
	if err != nil {
		c.JSON(orderErrorStatus(err), gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order status updated", "data": order})
}
