package middleware

import (
	"net/http"
	"strings"

	"gtnotes/notes-api/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// NewJWTMiddleware verifies the Authorization bearer token and stashes
// the caller's userID and role for the handlers behind it
func NewJWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Missing token",
				"requestID": requestID,
			})
			return
		}

		id, err := security.VerifyToken(strings.TrimPrefix(header, "Bearer "), []byte(viper.GetString("jwt.secret")))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Invalid token",
				"requestID": requestID,
			})

			zap.L().Debug("Failed to verify token", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		c.Set("userID", id.UserID)
		c.Set("role", id.Role)
		c.Next()
	}
}
