package middleware

import (
	"github.com/gin-gonic/gin"

	"storefront-backend/internal/shared"
	"storefront-backend/internal/shared/response"
	"storefront-backend/pkg/jwt"
)

// AdminMiddleware checks if user has admin role (chạy sau AuthMiddleware)
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(shared.CtxUserRole)
		if !ok || role != jwt.RoleAdmin {
			response.Forbidden(c, "Access denied: admin role required")
			c.Abort()
			return
		}

		c.Next()
	}
}
