package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"restaurant-platform/models"
	"restaurant-platform/repositories"
	"restaurant-platform/utils"
)

const scopeKey = "scope"

func AuthMiddleware() gin.HandlerFunc {
	userRepo := repositories.NewUserRepository()

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Authorization header required",
			})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid or expired token",
				Error:   err.Error(),
			})
			c.Abort()
			return
		}

		scope := models.Scope{
			Role:   claims.Role,
			UserID: claims.UserID,
		}
		if claims.Role == models.RoleRestaurantOwner {
			owned, err := userRepo.OwnedRestaurantIDs(c.Request.Context(), claims.UserID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse{
					Success: false,
					Message: "Failed to resolve owned restaurants",
					Error:   err.Error(),
				})
				c.Abort()
				return
			}
			scope.OwnedRestaurantIDs = owned
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)
		c.Set(scopeKey, scope)
		c.Next()
	}
}

// GetScope returns the caller's scope set by AuthMiddleware.
func GetScope(c *gin.Context) models.Scope {
	v, exists := c.Get(scopeKey)
	if !exists {
		return models.Scope{}
	}
	scope, _ := v.(models.Scope)
	return scope
}

func AdminMiddleware() gin.HandlerFunc {
	return RequireRoles(models.RoleAdmin)
}

func OwnerMiddleware() gin.HandlerFunc {
	return RequireRoles(models.RoleRestaurantOwner, models.RoleAdmin)
}

// RequireRoles rejects callers whose role is not in the allowed set.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("user_role")
		if !exists {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "User role not found",
			})
			c.Abort()
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Success: false,
			Message: "Access denied. Insufficient role",
		})
		c.Abort()
	}
}
