package controllers

import (
	"context"

	"github.com/gin-gonic/gin"

	"restaurant-platform/models"
	"restaurant-platform/services"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{
		authService: services.NewAuthService(),
	}
}

// @Summary Register a new account
// @Description Register as CUSTOMER or RESTAURANT_OWNER and receive a JWT
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	result, err := ctrl.authService.Register(req)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Registration successful", "data": result})
}

// @Summary Login
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	result, err := ctrl.authService.Login(req)
	if err != nil {
		c.JSON(401, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Login successful", "data": result})
}

// @Summary Request a password reset OTP
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.ForgotPasswordRequest true "Email"
// @Success 200 {object} models.Response
// @Router /auth/forgot-password [post]
func (ctrl *AuthController) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	if err := ctrl.authService.ForgotPassword(context.Background(), req); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to send OTP", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "If the email is registered, an OTP has been sent"})
}

// @Summary Reset password with OTP
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.ResetPasswordRequest true "Email, OTP and new password"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/reset-password [post]
func (ctrl *AuthController) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	if err := ctrl.authService.ResetPassword(context.Background(), req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Password reset successful"})
}

// @Summary Get own profile
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /profile [get]
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	profile, err := ctrl.authService.GetProfile(currentUserID(c))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Profile not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Profile retrieved", "data": profile})
}

// @Summary Update own profile
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} models.Response
// @Router /profile [put]
func (ctrl *AuthController) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	if err := ctrl.authService.UpdateProfile(currentUserID(c), req); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update profile", "error": err.Error()})
		return
	}

	profile, _ := ctrl.authService.GetProfile(currentUserID(c))
	c.JSON(200, gin.H{"success": true, "message": "Profile updated", "data": profile})
}

// @Summary Upload profile photo
// @Tags Profile
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param photo formData file true "Profile photo"
// @Success 200 {object} models.Response
// @Router /profile/photo [post]
func (ctrl *AuthController) UploadProfilePhoto(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Photo file is required"})
		return
	}

	cld, err := models.NewCloudinaryService()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Image upload unavailable", "error": err.Error()})
		return
	}

	url, _, err := cld.UploadFromHeader(c.Request.Context(), file, "profiles")
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to upload photo", "error": err.Error()})
		return
	}

	if err := ctrl.authService.UpdateProfilePhoto(currentUserID(c), url); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to save photo", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Photo uploaded", "data": gin.H{"photo_url": url}})
}

// @Summary Change password
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ChangePasswordRequest true "Old and new password"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /profile/password [put]
func (ctrl *AuthController) ChangePassword(c *gin.Context) {
	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	if err := ctrl.authService.ChangePassword(currentUserID(c), req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Password changed"})
}
