package handler

import (
	"github.com/shopspring/decimal"

	financeapp "github.com/erp/orderflow/internal/application/finance"
	tradeapp "github.com/erp/orderflow/internal/application/trade"
	"github.com/erp/orderflow/internal/domain/shared"
)

// entityRef is the {"id": n} reference used by the raw entity shapes
type entityRef struct {
	ID int64 `json:"id"`
}

// OrderBody accepts either the composite shape {clienteId, productos} or the
// raw entity shape {cliente: {id}, productos, descripcion, total}.
// descripcion and total are read but never used; the service owns them.
type OrderBody struct {
	CustomerID  *int64                   `json:"clienteId"`
	Customer    *entityRef               `json:"cliente"`
	Items       []tradeapp.LineItemInput `json:"productos"`
	Description *string                  `json:"descripcion"`
	Total       *decimal.Decimal         `json:"total"`
}

// Request normalizes the body into a CreateOrderRequest
func (b OrderBody) Request() (tradeapp.CreateOrderRequest, error) {
	var customerID int64
	switch {
	case b.CustomerID != nil && b.Customer != nil:
		return tradeapp.CreateOrderRequest{}, shared.NewInvalidArgumentError("use either clienteId or cliente, not both")
	case b.CustomerID != nil:
		customerID = *b.CustomerID
	case b.Customer != nil:
		customerID = b.Customer.ID
	default:
		return tradeapp.CreateOrderRequest{}, shared.NewInvalidArgumentError("clienteId or cliente.id is required")
	}
	if customerID <= 0 {
		return tradeapp.CreateOrderRequest{}, shared.NewInvalidArgumentError("customer id must be positive")
	}
	return tradeapp.CreateOrderRequest{CustomerID: customerID, Items: b.Items}, nil
}

// InvoiceBody accepts either the composite shape
// {proveedorId, totalFactura, numero, pedidos, productos} or the raw entity
// shape {proveedor: {id}, numero, totalFactura}. The raw shape ignores
// pedidos and productos.
type InvoiceBody struct {
	SupplierID *int64                       `json:"proveedorId"`
	Supplier   *entityRef                   `json:"proveedor"`
	Number     *string                      `json:"numero"`
	Total      *decimal.Decimal             `json:"totalFactura"`
	Orders     []financeapp.OrderTotalInput `json:"pedidos"`
	Items      []tradeapp.LineItemInput     `json:"productos"`
}

// Request normalizes the body into a CreateInvoiceRequest
func (b InvoiceBody) Request() (financeapp.CreateInvoiceRequest, error) {
	req := financeapp.CreateInvoiceRequest{Number: b.Number, Total: b.Total}
	switch {
	case b.SupplierID != nil && b.Supplier != nil:
		return financeapp.CreateInvoiceRequest{}, shared.NewInvalidArgumentError("use either proveedorId or proveedor, not both")
	case b.SupplierID != nil:
		req.SupplierID = *b.SupplierID
		req.Orders = b.Orders
		req.Items = b.Items
	case b.Supplier != nil:
		req.SupplierID = b.Supplier.ID
	default:
		return financeapp.CreateInvoiceRequest{}, shared.NewInvalidArgumentError("proveedorId or proveedor.id is required")
	}
	if req.SupplierID <= 0 {
		return financeapp.CreateInvoiceRequest{}, shared.NewInvalidArgumentError("supplier id must be positive")
	}
	return req, nil
}
