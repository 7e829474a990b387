// Package errors provides the typed failure taxonomy for the invoice API.
// Services raise *AppError values; the HTTP layer is the only place that
// turns them into wire responses, so internal details never reach clients.
package errors

import "net/http"

// AppError is a structured application error carrying a stable error name,
// a client-safe message, the HTTP status it maps to, an optional wrapped
// internal error, and optional per-field validation messages.
type AppError struct {
	Name       string              `json:"error"`
	Message    string              `json:"message"`
	StatusCode int                 `json:"-"`
	Internal   error               `json:"-"`
	Fields     map[string][]string `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap returns a copy of sentinel that wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Name:       sentinel.Name,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage returns a copy of sentinel with a custom client-facing message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Name:       sentinel.Name,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Validation returns a 400 error carrying per-field message lists.
func Validation(fields map[string][]string) *AppError {
	return &AppError{
		Name:       "Validation Error",
		Message:    "Validation failed",
		StatusCode: http.StatusBadRequest,
		Fields:     fields,
	}
}

// Authentication and authorization failures.
var (
	// ErrAuthenticationFailed carries one message for both "no such user"
	// and "wrong password" so login errors never reveal which check failed.
	ErrAuthenticationFailed = &AppError{Name: "Authentication Failed", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrUnauthorized         = &AppError{Name: "Authentication Failed", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidToken         = &AppError{Name: "Authentication Failed", Message: "Invalid or expired token", StatusCode: http.StatusUnauthorized}
	ErrForbidden            = &AppError{Name: "Insufficient Permissions", Message: "Insufficient permissions", StatusCode: http.StatusForbidden}
)

// General failures.
var (
	ErrInvalidInput   = &AppError{Name: "Validation Error", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Name: "Not Found", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Name: "Internal Server Error", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User failures.
var (
	ErrUserNotFound   = &AppError{Name: "Not Found", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Name: "Resource Conflict", Message: "User with this email already exists", StatusCode: http.StatusConflict}
)

// Invoice failures.
var (
	ErrInvoiceNotFound = &AppError{Name: "Not Found", Message: "Invoice not found", StatusCode: http.StatusNotFound}
	// ErrInvoiceForbidden is deliberately distinct from ErrInvoiceNotFound:
	// a 403 on someone else's invoice leaks that the id exists. Kept to match
	// the documented interface contract.
	ErrInvoiceForbidden = &AppError{Name: "Insufficient Permissions", Message: "You don't have sufficient permissions to access this invoice", StatusCode: http.StatusForbidden}
)
