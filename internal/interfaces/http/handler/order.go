package handler

import (
	"github.com/gin-gonic/gin"

	tradeapp "github.com/erp/orderflow/internal/application/trade"
)

// OrderHandler serves /api/pedidos and /api/clientes/:id/pedidos
type OrderHandler struct {
	BaseHandler
	orderService *tradeapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *tradeapp.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List handles GET /api/pedidos
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.OK(c, orders)
}

// GetByID handles GET /api/pedidos/:id
func (h *OrderHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	order, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.OK(c, order)
}

// ListByCustomer handles GET /api/clientes/:id/pedidos
func (h *OrderHandler) ListByCustomer(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	orders, err := h.orderService.ListByCustomer(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.OK(c, orders)
}

// Create handles POST /api/pedidos with either body shape
func (h *OrderHandler) Create(c *gin.Context) {
	var body OrderBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BindError(c, err)
		return
	}
	req, err := body.Request()
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	order, err := h.orderService.CreateOrder(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, order)
}

// Delete handles DELETE /api/pedidos/:id
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	if err := h.orderService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
