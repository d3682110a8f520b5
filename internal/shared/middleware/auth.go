package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"storefront-backend/internal/shared"
	"storefront-backend/internal/shared/response"
	"storefront-backend/pkg/jwt"
)

// AuthMiddleware - bắt buộc access token hợp lệ
func AuthMiddleware(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Unauthorized(c, "Missing or invalid authorization header")
			c.Abort()
			return
		}

		if !authenticate(c, jwtManager, token) {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Next()
	}
}

// OptionalAuth - có token hợp lệ thì set user vào context, không có hoặc sai thì tiếp tục như guest
func OptionalAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c.GetHeader("Authorization")); ok {
			if !authenticate(c, jwtManager, token) {
				log.Debug().Str("path", c.Request.URL.Path).Msg("ignoring invalid token on optional-auth route")
			}
		}
		c.Next()
	}
}

// GetUserID trả về user hiện tại (nếu đã đăng nhập)
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(shared.CtxUserID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok && id != uuid.Nil
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

func authenticate(c *gin.Context, jwtManager *jwt.Manager, token string) bool {
	claims, err := jwtManager.ValidateAccessToken(token)
	if err != nil {
		return false
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return false
	}

	c.Set(shared.CtxUserID, userID)
	c.Set(shared.CtxUserEmail, claims.Email)
	c.Set(shared.CtxUserRole, claims.Role)
	return true
}
