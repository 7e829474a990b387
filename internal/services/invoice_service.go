package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "invoicetrack/internal/errors"
	"invoicetrack/internal/models"
	"invoicetrack/internal/pagination"
)

// invoiceService handles invoice reads.
type invoiceService struct {
	db *gorm.DB
}

// NewInvoiceService creates a new InvoiceServicer.
func NewInvoiceService(db *gorm.DB) InvoiceServicer {
	return &invoiceService{db: db}
}

// GetUserInvoices retrieves a paginated, sorted page of the user's invoices.
// Both the total count and the page slice are computed over the owner-scoped
// set, so no other user's rows can leak in through pagination arithmetic.
func (s *invoiceService) GetUserInvoices(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Invoice], error) {
	page.Defaults()

	base := s.db.Model(&models.Invoice{}).Where("user_id = ?", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var invoices []models.Invoice
	if err := base.Order(page.OrderClause()).
		Scopes(pagination.Paginate(page)).
		Find(&invoices).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(invoices, page.Page, page.Limit, total)
	return &result, nil
}

// GetInvoiceByID retrieves a single invoice and enforces ownership. A
// missing id is a 404; an existing invoice owned by someone else is a 403,
// which deliberately tells an authenticated caller that the id exists.
func (s *invoiceService) GetInvoiceByID(userID, invoiceID string) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := s.db.Where("id = ?", invoiceID).First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvoiceNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if invoice.UserID != userID {
		return nil, apperrors.ErrInvoiceForbidden
	}

	return &invoice, nil
}
