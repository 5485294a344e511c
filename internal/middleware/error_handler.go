package middleware

import (
	"realestate-valley/internal/errors"
	"realestate-valley/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler catches errors and returns standardized responses.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		appErr := errors.MapError(err)

		entry := logger.GlobalLogger.WithFields(logger.Fields{
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"client_ip":  c.ClientIP(),
			"code":       appErr.Code,
			"request_id": c.GetString(RequestIDKey),
		})
		if appErr.HTTPStatus >= 500 {
			entry.Errorf("Request failed: %s", appErr.TechnicalMessage)
		} else {
			entry.Warnf("Request rejected: %s", appErr.TechnicalMessage)
		}

		c.JSON(appErr.HTTPStatus, gin.H{
			"error": gin.H{
				"message": appErr.UserMessage,
				"code":    appErr.Code,
			},
		})
	}
}
