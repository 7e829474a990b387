package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "invoicetrack/internal/errors"
	"invoicetrack/internal/pagination"
	"invoicetrack/internal/services"
	"invoicetrack/internal/uuid"
)

// InvoiceHandler handles invoice read requests.
type InvoiceHandler struct {
	invoiceService services.InvoiceServicer
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoiceService services.InvoiceServicer) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// GetUserInvoices returns a page of the authenticated user's invoices
// @Summary     List invoices
// @Description Paginated, sorted list of the authenticated user's invoices
// @Tags        invoices
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number (1-based)" minimum(1)
// @Param       limit query int false "Rows per page; values below 1 are clamped to 1"
// @Param       sortBy query string false "Sort key" Enums(createdAt, updatedAt, dueDate, amount, vendorName, paid)
// @Param       order query string false "Sort order" Enums(asc, desc)
// @Success     200 {object} pagination.PageResponse[models.Invoice] "Page of invoices"
// @Failure     400 {object} ErrorResponse "Validation failed"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /invoices [get]
func (h *InvoiceHandler) GetUserInvoices(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := h.invoiceService.GetUserInvoices(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetInvoiceByID returns a single invoice owned by the authenticated user
// @Summary     Get invoice
// @Description Fetch one invoice; 403 when it belongs to another user, 404 when absent
// @Tags        invoices
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Invoice ID"
// @Success     200 {object} models.Invoice "Invoice"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Owned by another user"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoiceByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	invoiceID := c.Param("id")
	if !uuid.IsValid(invoiceID) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid invoice id"))
		return
	}

	invoice, err := h.invoiceService.GetInvoiceByID(userID, invoiceID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoice)
}
