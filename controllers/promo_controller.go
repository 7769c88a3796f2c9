package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"restaurant-platform/models"
	"restaurant-platform/repositories"
)

type PromoController struct {
	repo *repositories.PromoRepository
}

func NewPromoController() *PromoController {
	return &PromoController{
		repo: repositories.NewPromoRepository(),
	}
}

// @Summary List active promotions
// @Tags Promotions
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginatedResponse
// @Router /promotions [get]
func (ctrl *PromoController) List(c *gin.Context) {
	page, limit := getPaginationParams(c, 10)

	promos, total, err := ctrl.repo.List(c.Request.Context(), true, page, limit)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get promotions", "error": err.Error()})
		return
	}

	c.JSON(200, paginated("Promotions retrieved", promos, page, limit, total))
}

// @Summary List all promotions
// @Tags Admin - Promotions
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginatedResponse
// @Router /admin/promotions [get]
func (ctrl *PromoController) ListAll(c *gin.Context) {
	page, limit := getPaginationParams(c, 10)

	promos, total, err := ctrl.repo.List(c.Request.Context(), false, page, limit)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get promotions", "error": err.Error()})
		return
	}

	c.JSON(200, paginated("Promotions retrieved", promos, page, limit, total))
}

func promotionFromRequest(req models.PromotionRequest, p *models.Promotion) error {
	from, err := time.Parse("2006-01-02", req.ValidFrom)
	if err != nil {
		return err
	}
	until, err := time.Parse("2006-01-02", req.ValidUntil)
	if err != nil {
		return err
	}

	p.Code = req.Code
	p.Title = req.Title
	p.Description = req.Description
	p.DiscountType = req.DiscountType
	p.Value = req.Value
	p.ValidFrom = from
	// The promotion stays usable through the whole last day.
	p.ValidUntil = until.Add(24*time.Hour - time.Second)
	p.MaxUses = req.MaxUses
	return nil
}

// @Summary Create a promotion
// @Tags Admin - Promotions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.PromotionRequest true "Promotion data"
// @Success 201 {object} models.Response
// @Router /admin/promotions [post]
func (ctrl *PromoController) Create(c *gin.Context) {
	var req models.PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	var promo models.Promotion
	if err := promotionFromRequest(req, &promo); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Dates must be in YYYY-MM-DD format"})
		return
	}

	if err := ctrl.repo.Create(c.Request.Context(), &promo); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create promotion", "error": err.Error()})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Promotion created", "data": promo})
}

// @Summary Update a promotion
// @Tags Admin - Promotions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Promotion ID"
// @Param request body models.PromotionRequest true "Promotion data"
// @Success 200 {object} models.Response
// @Router /admin/promotions/{id} [put]
func (ctrl *PromoController) Update(c *gin.Context) {
	promo, err := ctrl.repo.GetByID(c.Request.Context(), idParam(c))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Promotion not found"})
		return
	}

	var req models.PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	if err := promotionFromRequest(req, promo); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Dates must be in YYYY-MM-DD format"})
		return
	}

	if err := ctrl.repo.Update(c.Request.Context(), promo); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update promotion", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Promotion updated", "data": promo})
}

// @Summary Deactivate a promotion
// @Tags Admin - Promotions
// @Security BearerAuth
// @Produce json
// @Param id path int true "Promotion ID"
// @Success 200 {object} models.Response
// @Router /admin/promotions/{id} [delete]
func (ctrl *PromoController) Delete(c *gin.Context) {
	if err := ctrl.repo.Delete(c.Request.Context(), idParam(c)); err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Promotion not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Promotion deactivated"})
}
