package middleware

import (
	"net/http"
	"strings"

	"resto-admin/models"
	"resto-admin/utils"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortWith(c, http.StatusUnauthorized, "Authorization header required", "")
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			abortWith(c, http.StatusUnauthorized, "Invalid authorization header format", "")
			return
		}

		claims, err := utils.ValidateToken(token)
		if err != nil {
			abortWith(c, http.StatusUnauthorized, "Invalid or expired token", err.Error())
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)
		c.Next()
	}
}

func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("user_role")
		if !exists {
			abortWith(c, http.StatusForbidden, "User role not found", "")
			return
		}
		if role != "admin" {
			abortWith(c, http.StatusForbidden, "Access denied. Admin role required", "")
			return
		}
		c.Next()
	}
}

func abortWith(c *gin.Context, status int, message, detail string) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{
		Success: false,
		Message: message,
		Error:   detail,
	})
}
