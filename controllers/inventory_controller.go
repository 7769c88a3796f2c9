package controllers

import (
	"github.com/gin-gonic/gin"

	"restaurant-platform/middleware"
	"restaurant-platform/models"
	"restaurant-platform/repositories"
)

type InventoryController struct {
	repo           *repositories.InventoryRepository
	restaurantRepo *repositories.RestaurantRepository
}

func NewInventoryController() *InventoryController {
	return &InventoryController{
		repo:           repositories.NewInventoryRepository(),
		restaurantRepo: repositories.NewRestaurantRepository(),
	}
}

func (ctrl *InventoryController) authorizeRestaurant(c *gin.Context, restaurantID int) bool {
	restaurant, err := ctrl.restaurantRepo.GetRestaurantByID(c.Request.Context(), restaurantID)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Restaurant not found"})
		return false
	}
	if !middleware.GetScope(c).CanAccess(restaurant) {
		c.JSON(403, gin.H{"success": false, "message": "Access denied"})
		return false
	}
	return true
}

// @Summary List inventory items
// @Tags Inventory
// @Security BearerAuth
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.Response
// @Router /restaurants/{id}/inventory [get]
func (ctrl *InventoryController) List(c *gin.Context) {
	restaurantID := idParam(c)
	if !ctrl.authorizeRestaurant(c, restaurantID) {
		return
	}

	items, err := ctrl.repo.ListByRestaurant(c.Request.Context(), restaurantID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get inventory", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Inventory retrieved", "data": items})
}

// @Summary Create an inventory item
// @Tags Inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Restaurant ID"
// @Param request body models.InventoryItemRequest true "Inventory item data"
// @Success 201 {object} models.Response
// @Router /restaurants/{id}/inventory [post]
func (ctrl *InventoryController) Create(c *gin.Context) {
	restaurantID := idParam(c)
	if !ctrl.authorizeRestaurant(c, restaurantID) {
		return
	}

	var req models.InventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	item := &models.InventoryItem{
		RestaurantID:    restaurantID,
		Name:            req.Name,
		Unit:            req.Unit,
		CurrentQuantity: req.CurrentQuantity,
		MinimumQuantity: req.MinimumQuantity,
	}

	if err := ctrl.repo.Create(c.Request.Context(), item); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create inventory item", "error": err.Error()})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Inventory item created", "data": item})
}

// @Summary Adjust stock
// @Description Record a manual stock movement; the quantity never goes negative
// @Tags Inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Restaurant ID"
// @Param itemId path int true "Inventory item ID"
// @Param request body models.StockAdjustmentRequest true "Adjustment data"
// @Success 200 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /restaurants/{id}/inventory/{itemId}/adjust [post]
func (ctrl *InventoryController) Adjust(c *gin.Context) {
	restaurantID := idParam(c)
	if !ctrl.authorizeRestaurant(c, restaurantID) {
		return
	}

	var req models.StockAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	itemID := intParam(c, "itemId")
	movement := &models.StockMovement{
		InventoryItemID: itemID,
		MovementType:    req.MovementType,
		Quantity:        req.Quantity,
		Notes:           req.Notes,
	}

	if err := ctrl.repo.Adjust(c.Request.Context(), restaurantID, itemID, movement); err != nil {
		c.JSON(409, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Stock adjusted", "data": movement})
}

// @Summary List stock movements
// @Tags Inventory
// @Security BearerAuth
// @Produce json
// @Param id path int true "Restaurant ID"
// @Param itemId path int true "Inventory item ID"
// @Success 200 {object} models.Response
// @Router /restaurants/{id}/inventory/{itemId}/movements [get]
func (ctrl *InventoryController) Movements(c *gin.Context) {
	if !ctrl.authorizeRestaurant(c, idParam(c)) {
		return
	}

	movements, err := ctrl.repo.Movements(c.Request.Context(), intParam(c, "itemId"), 50)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get movements", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Movements retrieved", "data": movements})
}
