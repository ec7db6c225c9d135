package handler

import (
	"github.com/gin-gonic/gin"

	financeapp "github.com/erp/orderflow/internal/application/finance"
)

// InvoiceHandler serves /api/facturas and /api/proveedores/:id/facturas
type InvoiceHandler struct {
	BaseHandler
	invoiceService *financeapp.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoiceService *financeapp.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// List handles GET /api/facturas. It is also the target of the order notification.
func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.invoiceService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.OK(c, invoices)
}

// GetByID handles GET /api/facturas/:id
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	invoice, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.OK(c, invoice)
}

// ListBySupplier handles GET /api/proveedores/:id/facturas
func (h *InvoiceHandler) ListBySupplier(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	invoices, err := h.invoiceService.ListBySupplier(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.OK(c, invoices)
}

// Create handles POST /api/facturas with either body shape
func (h *InvoiceHandler) Create(c *gin.Context) {
	var body InvoiceBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BindError(c, err)
		return
	}
	req, err := body.Request()
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, invoice)
}

// Delete handles DELETE /api/facturas/:id
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	if err := h.invoiceService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
