package middleware

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "invoicetrack/internal/errors"
	"invoicetrack/internal/logger"
)

// NewErrorBody builds the stable wire shape for error responses:
// statusCode, timestamp, path, message, and error, plus per-field
// message lists for validation failures. Every error response in the
// API goes through this builder.
func NewErrorBody(c *gin.Context, appErr *apperrors.AppError) gin.H {
	body := gin.H{
		"statusCode": appErr.StatusCode,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"path":       c.Request.URL.Path,
		"message":    appErr.Message,
		"error":      appErr.Name,
	}
	if len(appErr.Fields) > 0 {
		body["errors"] = appErr.Fields
	}
	return body
}

// ErrorHandler converts errors attached to the Gin context into consistent
// JSON error responses. AppErrors keep their status and message; anything
// unrecognized is logged with full detail and answered with a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		// Process the last error (most relevant in a middleware chain)
		err := c.Errors.Last().Err

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			if appErr.Internal != nil {
				logger.Get().Errorw("app error",
					"error", appErr.Name,
					"message", appErr.Message,
					"internal", appErr.Internal.Error(),
					"path", c.Request.URL.Path,
				)
			}
			c.JSON(appErr.StatusCode, NewErrorBody(c, appErr))
			return
		}

		// Unexpected error: log full details, return generic message
		logger.Get().Errorw("unexpected error",
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		)
		c.JSON(apperrors.ErrInternalServer.StatusCode, NewErrorBody(c, apperrors.ErrInternalServer))
	}
}
