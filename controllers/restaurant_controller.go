package controllers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"restaurant-platform/middleware"
	"restaurant-platform/models"
	"restaurant-platform/repositories"
)

type RestaurantController struct {
	repo *repositories.RestaurantRepository
}

func NewRestaurantController() *RestaurantController {
	return &RestaurantController{
		repo: repositories.NewRestaurantRepository(),
	}
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '-'
		}
		return -1
	}, slug)
	return strings.Trim(slug, "-")
}

// @Summary List restaurants
// @Tags Restaurants
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param search query string false "Search by name"
// @Success 200 {object} models.PaginatedResponse
// @Router /restaurants [get]
func (ctrl *RestaurantController) List(c *gin.Context) {
	page, limit := getPaginationParams(c, 10)

	restaurants, total, err := ctrl.repo.List(c.Request.Context(), c.Query("search"), page, limit)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get restaurants", "error": err.Error()})
		return
	}

	c.JSON(200, paginated("Restaurants retrieved", restaurants, page, limit, total))
}

// @Summary Get restaurant by ID
// @Tags Restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /restaurants/{id} [get]
func (ctrl *RestaurantController) Get(c *gin.Context) {
	restaurant, err := ctrl.repo.GetRestaurantByID(c.Request.Context(), idParam(c))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Restaurant not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Restaurant retrieved", "data": restaurant})
}

// @Summary Create a restaurant
// @Tags Restaurants
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.RestaurantRequest true "Restaurant data"
// @Success 201 {object} models.Response
// @Router /restaurants [post]
func (ctrl *RestaurantController) Create(c *gin.Context) {
	var req models.RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	restaurant := &models.Restaurant{
		OwnerID:     currentUserID(c),
		Name:        req.Name,
		Slug:        slugify(req.Name),
		Description: req.Description,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
	}

	if err := ctrl.repo.Create(c.Request.Context(), restaurant); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create restaurant", "error": err.Error()})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Restaurant created", "data": restaurant})
}

// @Summary Update a restaurant
// @Tags Restaurants
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Restaurant ID"
// @Param request body models.RestaurantRequest true "Restaurant data"
// @Success 200 {object} models.Response
// @Router /restaurants/{id} [put]
func (ctrl *RestaurantController) Update(c *gin.Context) {
	restaurant, err := ctrl.repo.GetRestaurantByID(c.Request.Context(), idParam(c))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Restaurant not found"})
		return
	}

	if !middleware.GetScope(c).CanAccess(restaurant) {
		c.JSON(403, gin.H{"success": false, "message": "Access denied"})
		return
	}

	var req models.RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	restaurant.Name = req.Name
	restaurant.Description = req.Description
	restaurant.Address = req.Address
	restaurant.Phone = req.Phone
	restaurant.Email = req.Email

	if err := ctrl.repo.Update(c.Request.Context(), restaurant); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update restaurant", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Restaurant updated", "data": restaurant})
}

// @Summary Deactivate a restaurant
// @Tags Restaurants
// @Security BearerAuth
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.Response
// @Router /restaurants/{id} [delete]
func (ctrl *RestaurantController) Delete(c *gin.Context) {
	restaurant, err := ctrl.repo.GetRestaurantByID(c.Request.Context(), idParam(c))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Restaurant not found"})
		return
	}

	if !middleware.GetScope(c).CanAccess(restaurant) {
		c.JSON(403, gin.H{"success": false, "message": "Access denied"})
		return
	}

	if err := ctrl.repo.Delete(c.Request.Context(), restaurant.ID); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete restaurant", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Restaurant deactivated"})
}

// @Summary Upload restaurant image
// @Tags Restaurants
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Restaurant ID"
// @Param image formData file true "Restaurant image"
// @Success 200 {object} models.Response
// @Router /restaurants/{id}/image [post]
func (ctrl *RestaurantController) UploadImage(c *gin.Context) {
	restaurant, err := ctrl.repo.GetRestaurantByID(c.Request.Context(), idParam(c))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Restaurant not found"})
		return
	}

	if !middleware.GetScope(c).CanAccess(restaurant) {
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

	url, publicID, err := cld.UploadFromHeader(c.Request.Context(), file, "restaurants")
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to upload image", "error": err.Error()})
		return
	}

	if restaurant.CloudinaryID != "" {
		_ = cld.DeleteImage(c.Request.Context(), restaurant.CloudinaryID)
	}

	restaurant.ImageURL = url
	restaurant.CloudinaryID = publicID
	if err := ctrl.repo.Update(c.Request.Context(), restaurant); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to save image", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Image uploaded", "data": gin.H{"image_url": url}})
}

// @Summary List tables of a restaurant
// @Tags Tables
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.Response
// @Router /restaurants/{id}/tables [get]
func (ctrl *RestaurantController) ListTables(c *gin.Context) {
	tables, err := ctrl.repo.ListTables(c.Request.Context(), idParam(c))
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get tables", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Tables retrieved", "data": tables})
}

// @Summary Add a table
// @Tags Tables
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Restaurant ID"
// @Param request body models.TableRequest true "Table data"
// @Success 201 {object} models.Response
// @Router /restaurants/{id}/tables [post]
func (ctrl *RestaurantController) CreateTable(c *gin.Context) {
	restaurant, err := ctrl.repo.GetRestaurantByID(c.Request.Context(), idParam(c))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Restaurant not found"})
		return
	}

	if !middleware.GetScope(c).CanAccess(restaurant) {
		c.JSON(403, gin.H{"success": false, "message": "Access denied"})
		return
	}

	var req models.TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	table := &models.Table{
		RestaurantID: restaurant.ID,
		TableNumber:  req.TableNumber,
		Capacity:     req.Capacity,
		Location:     req.Location,
		IsAvailable:  true,
	}

	if err := ctrl.repo.CreateTable(c.Request.Context(), table); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create table", "error": err.Error()})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Table created", "data": table})
}

// @Summary Update a table
// @Tags Tables
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Table ID"
// @Param request body models.TableRequest true "Table data"
// @Success 200 {object} models.Response
// @Router /tables/{id} [put]
func (ctrl *RestaurantController) UpdateTable(c *gin.Context) {
	table, err := ctrl.repo.GetTable(c.Request.Context(), idParam(c))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Table not found"})
		return
	}

	if !middleware.GetScope(c).CanAccess(table) {
		c.JSON(403, gin.H{"success": false, "message": "Access denied"})
		return
	}

	var req models.TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	table.TableNumber = req.TableNumber
	table.Capacity = req.Capacity
	table.Location = req.Location
	if req.IsAvailable != nil {
		table.IsAvailable = *req.IsAvailable
	}

	if err := ctrl.repo.UpdateTable(c.Request.Context(), table); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update table", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Table updated", "data": table})
}

// @Summary Delete a table
// @Tags Tables
// @Security BearerAuth
// @Produce json
// @Param id path int true "Table ID"
// @Success 200 {object} models.Response
// @Router /tables/{id} [delete]
func (ctrl *RestaurantController) DeleteTable(c *gin.Context) {
	table, err := ctrl.repo.GetTable(c.Request.Context(), idParam(c))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Table not found"})
		return
	}

	if !middleware.GetScope(c).CanAccess(table) {
		c.JSON(403, gin.H{"success": false, "message": "Access denied"})
		return
	}

	if err := ctrl.repo.DeleteTable(c.Request.Context(), table.ID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Table not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete table", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Table deleted"})
}
