package handlers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "invoicetrack/internal/errors"
	"invoicetrack/internal/logger"
	"invoicetrack/internal/middleware"
)

// getUserID extracts the authenticated principal's id from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (string, error) {
	userID, exists := c.Get("userID")
	if !exists {
		return "", apperrors.ErrUnauthorized
	}
	return userID.(string), nil
}

// bindError converts a Gin binding failure into a 400 AppError. Validator
// failures are keyed per field so clients can attach messages to inputs;
// anything else (malformed JSON, type mismatches) keeps a single message.
func bindError(err error) *apperrors.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string][]string, len(verrs))
		for _, fe := range verrs {
			name := fieldName(fe.Field())
			fields[name] = append(fields[name], validationMessage(fe))
		}
		return apperrors.Validation(fields)
	}
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

// fieldName lowercases the first rune so struct field names line up with
// their JSON/query spelling (Password -> password, SortBy -> sortBy).
func fieldName(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]|0x20) + s[1:]
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "sort_field":
		return "is not a sortable field"
	case "sort_order":
		return "must be asc or desc"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// respondWithError writes a consistent JSON error response. If the error is
// an *AppError it keeps the error's status, name, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"error", appErr.Name,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, middleware.NewErrorBody(c, appErr))
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, middleware.NewErrorBody(c, apperrors.ErrInternalServer))
}

// ErrorResponse documents the wire shape of error responses.
type ErrorResponse struct {
	StatusCode int                 `json:"statusCode"`
	Timestamp  string              `json:"timestamp"`
	Path       string              `json:"path"`
	Message    string              `json:"message"`
	Error      string              `json:"error"`
	Errors     map[string][]string `json:"errors,omitempty"`
}
