package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const CronKeyHeader = "X-Cron-Key"

// CronKey bảo vệ các endpoint do scheduler bên ngoài gọi.
// Key nhận từ ?key=, header X-Cron-Key hoặc Authorization: Bearer
func CronKey(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.Query("key")
		if provided == "" {
			provided = c.GetHeader(CronKeyHeader)
		}
		if provided == "" {
			provided, _ = bearerToken(c.GetHeader("Authorization"))
		}

		if secret == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			log.Warn().
				Str("path", c.Request.URL.Path).
				Str("ip", c.ClientIP()).
				Msg("🚫 Rejected cron call with invalid key")

			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Unauthorized",
			})
			return
		}

		c.Next()
	}
}
