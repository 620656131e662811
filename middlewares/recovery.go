package middlewares

import (
	"net/http"

	"github.com/vanshikasingh06/health-mate/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery keeps any per-request failure from taking the process down.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				utils.L().Error("panic_recovered", zap.Any("panic", r))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			}
		}()
		c.Next()
	}
}
