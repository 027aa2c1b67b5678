package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fabric-store/models"
	"fabric-store/utils"
)

const bearerPrefix = "Bearer "

// Context keys set for downstream admin handlers.
const (
	CtxAdminID    = "adminID"
	CtxAdminEmail = "adminEmail"
	CtxAdminRole  = "adminRole"
)

// AuthMiddleware gates the admin surface behind a bearer JWT issued by the
// login endpoint.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Bearer token required",
			})
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		claims, err := utils.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid or expired session",
				Error:   err.Error(),
			})
			return
		}

		c.Set(CtxAdminID, claims.UserID)
		c.Set(CtxAdminEmail, claims.Email)
		c.Set(CtxAdminRole, claims.Role)
		c.Next()
	}
}

// AdminMiddleware requires the admin role on top of a valid session.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxAdminRole) != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "Admin access required",
			})
			return
		}
		c.Next()
	}
}
