package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/erp/orderflow/internal/interfaces/http/dto"
)

// Fixed service names reported by the per-resource health endpoints
const (
	ServiceCustomers = "Componente A - Clientes"
	ServiceOrders    = "Componente A - Pedidos"
	ServiceSuppliers = "Componente B - Proveedores"
	ServiceInvoices  = "Componente B - Facturas"
)

// HealthHandler answers GET /api/<resource>/health with a fixed payload
type HealthHandler struct {
	BaseHandler
	service string
}

// NewHealthHandler creates a health handler reporting the given service name
func NewHealthHandler(service string) *HealthHandler {
	return &HealthHandler{service: service}
}

// Health reports the service as up. It does not touch the record store.
func (h *HealthHandler) Health(c *gin.Context) {
	h.OK(c, dto.HealthResponse{Status: "OK", Service: h.service})
}
