package services

import (
	"invoicetrack/internal/models"
	"invoicetrack/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(name, email, password string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	AttemptLogin(email, password string) (*models.User, error)
}

// InvoiceServicer defines the contract for invoice reads. Both operations
// are owner-scoped: list queries filter on the principal structurally, and
// single-record fetches enforce ownership after lookup.
type InvoiceServicer interface {
	GetUserInvoices(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Invoice], error)
	GetInvoiceByID(userID, invoiceID string) (*models.Invoice, error)
}
