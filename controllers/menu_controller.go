package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"restaurant-platform/middleware"
	"restaurant-platform/models"
	"restaurant-platform/repositories"
)

type MenuController struct {
	menuRepo       *repositories.MenuRepository
	restaurantRepo *repositories.RestaurantRepository
}

func NewMenuController() *MenuController {
	return &MenuController{
		menuRepo:       repositories.NewMenuRepository(),
		restaurantRepo: repositories.NewRestaurantRepository(),
	}
}

func (ctrl *MenuController) authorizeRestaurant(c *gin.Context, restaurantID int) bool {
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

// @Summary List menu categories
// @Tags Menu
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.Response
// @Router /restaurants/{id}/categories [get]
func (ctrl *MenuController) ListCategories(c *gin.Context) {
	categories, err := ctrl.menuRepo.ListCategories(c.Request.Context(), idParam(c))
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get categories", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Categories retrieved", "data": categories})
}

// @Summary Create a menu category
// @Tags Menu
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Restaurant ID"
// @Param request body models.MenuCategoryRequest true "Category data"
// @Success 201 {object} models.Response
// @Router /restaurants/{id}/categories [post]
func (ctrl *MenuController) CreateCategory(c *gin.Context) {
	restaurantID := idParam(c)
	if !ctrl.authorizeRestaurant(c, restaurantID) {
		return
	}

	var req models.MenuCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	category := &models.MenuCategory{
		RestaurantID: restaurantID,
		Name:         req.Name,
		Description:  req.Description,
		SortOrder:    req.SortOrder,
	}

	if err := ctrl.menuRepo.CreateCategory(c.Request.Context(), category); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create category", "error": err.Error()})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Category created", "data": category})
}

// @Summary Update a menu category
// @Tags Menu
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body models.MenuCategoryRequest true "Category data"
// @Success 200 {object} models.Response
// @Router /categories/{id} [put]
func (ctrl *MenuController) UpdateCategory(c *gin.Context) {
	category, err := ctrl.menuRepo.GetCategory(c.Request.Context(), idParam(c))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Category not found"})
		return
	}

	if !middleware.GetScope(c).CanAccess(category) {
		c.JSON(403, gin.H{"success": false, "message": "Access denied"})
		return
	}

	var req models.MenuCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	category.Name = req.Name
	category.Description = req.Description
	category.SortOrder = req.SortOrder

	if err := ctrl.menuRepo.UpdateCategory(c.Request.Context(), category); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update category", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Category updated", "data": category})
}

// @Summary Delete a menu category
// @Tags Menu
// @Security BearerAuth
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} models.Response
// @Router /categories/{id} [delete]
func (ctrl *MenuController) DeleteCategory(c *gin.Context) {
	category, err := ctrl.menuRepo.GetCategory(c.Request.Context(), idParam(c))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Category not found"})
		return
	}

	if !middleware.GetScope(c).CanAccess(category) {
		c.JSON(403, gin.H{"success": false, "message": "Access denied"})
		return
	}

	if err := ctrl.menuRepo.DeleteCategory(c.Request.Context(), category.ID); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete category", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Category deleted"})
}

// @Summary List menu items
// @Tags Menu
// @Produce json
// @Param id path int true "Restaurant ID"
// @Param category_id query int false "Filter by category"
// @Param available query bool false "Only available items"
// @Success 200 {object} models.Response
// @Router /restaurants/{id}/menu [get]
func (ctrl *MenuController) ListItems(c *gin.Context) {
	categoryID, _ := strconv.Atoi(c.Query("category_id"))
	availableOnly := c.Query("available") == "true"

	items, err := ctrl.menuRepo.ListMenuItems(c.Request.Context(), idParam(c), categoryID, availableOnly)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get menu items", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Menu items retrieved", "data": items})
}

// @Summary Get a menu item
// @Tags Menu
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /menu-items/{id} [get]
func (ctrl *MenuController) GetItem(c *gin.Context) {
	item, err := ctrl.menuRepo.GetMenuItem(c.Request.Context(), idParam(c))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Menu item not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Menu item retrieved", "data": item})
}

// @Summary Create a menu item
// @Tags Menu
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Restaurant ID"
// @Param request body models.MenuItemRequest true "Menu item data"
// @Success 201 {object} models.Response
// @Router /restaurants/{id}/menu [post]
func (ctrl *MenuController) CreateItem(c *gin.Context) {
	restaurantID := idParam(c)
	if !ctrl.authorizeRestaurant(c, restaurantID) {
		return
	}

	var req models.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	item := &models.MenuItem{
		RestaurantID: restaurantID,
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		IsAvailable:  true,
		IsVegetarian: req.IsVegetarian,
		Recipe:       req.Recipe,
		PrepMinutes:  req.PrepMinutes,
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := ctrl.menuRepo.CreateMenuItem(c.Request.Context(), item); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create menu item", "error": err.Error()})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Menu item created", "data": item})
}

// @Summary Update a menu item
// @Tags Menu
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Menu item ID"
// @Param request body models.MenuItemRequest true "Menu item data"
// @Success 200 {object} models.Response
// @Router /menu-items/{id} [put]
func (ctrl *MenuController) UpdateItem(c *gin.Context) {
	item, err := ctrl.menuRepo.GetMenuItem(c.Request.Context(), idParam(c))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Menu item not found"})
		return
	}

	if !middleware.GetScope(c).CanAccess(item) {
		c.JSON(403, gin.H{"success": false, "message": "Access denied"})
		return
	}

	var req models.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	item.CategoryID = req.CategoryID
	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	item.IsVegetarian = req.IsVegetarian
	item.Recipe = req.Recipe
	item.PrepMinutes = req.PrepMinutes
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := ctrl.menuRepo.UpdateMenuItem(c.Request.Context(), item); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update menu item", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Menu item updated", "data": item})
}

// @Summary Delete a menu item
// @Tags Menu
// @Security BearerAuth
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 200 {object} models.Response
// @Router /menu-items/{id} [delete]
func (ctrl *MenuController) DeleteItem(c *gin.Context) {
	item, err := ctrl.menuRepo.GetMenuItem(c.Request.Context(), idParam(c))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Menu item not found"})
		return
	}

	if !middleware.GetScope(c).CanAccess(item) {
		c.JSON(403, gin.H{"success": false, "message": "Access denied"})
		return
	}

	if err := ctrl.menuRepo.DeleteMenuItem(c.Request.Context(), item.ID); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete menu item", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Menu item deleted"})
}

// @Summary Upload menu item image
// @Tags Menu
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Menu item ID"
// @Param image formData file true "Item image"
// @Success 200 {object} models.Response
// @Router /menu-items/{id}/image [post]
func (ctrl *MenuController) UploadItemImage(c *gin.Context) {
	item, err := ctrl.menuRepo.GetMenuItem(c.Request.Context(), idParam(c))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Menu item not found"})
		return
	}

	if !middleware.GetScope(c).CanAccess(item) {
		c.JSON(403, gin.H{"success": false, "message": "Access denied"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Image file is required"})
		return
	}

	cld, err := models.NewCloudinaryService()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Image upload unavailable", "error": err.Error()})
		return
	}

	url, publicID, err := cld.UploadFromHeader(c.Request.Context(), file, "menu")
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to upload image", "error": err.Error()})
		return
	}

	if item.CloudinaryID != "" {
		_ = cld.DeleteImage(c.Request.Context(), item.CloudinaryID)
	}

	item.ImageURL = url
	item.CloudinaryID = publicID
	if err := ctrl.menuRepo.UpdateMenuItem(c.Request.Context(), item); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to save image", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Image uploaded", "data": gin.H{"image_url": url}})
}
