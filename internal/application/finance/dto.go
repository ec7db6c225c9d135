package finance

import (
	"github.com/shopspring/decimal"

	apppartner "github.com/erp/orderflow/internal/application/partner"
	apptrade "github.com/erp/orderflow/internal/application/trade"
	"github.com/erp/orderflow/internal/domain/finance"
)

// OrderTotalInput is one entry of "pedidos" in an invoice body
type OrderTotalInput struct {
	OrderID int64            `json:"pedidoId"`
	Total   *decimal.Decimal `json:"total"`
}

// CreateInvoiceRequest is the normalized input of CreateInvoice.
// Total wins over Orders, which win over Items.
type CreateInvoiceRequest struct {
	SupplierID int64
	Number     *string
	Total      *decimal.Decimal
	Orders     []OrderTotalInput
	Items      []apptrade.LineItemInput
}

// InvoiceResponse is the wire form of an invoice, with its supplier embedded
type InvoiceResponse struct {
	ID         int64                        `json:"id"`
	Number     string                       `json:"numero"`
	Total      decimal.Decimal              `json:"totalFactura"`
	SupplierID int64                        `json:"proveedorId"`
	Supplier   *apppartner.SupplierResponse `json:"proveedor,omitempty"`
}

// ToInvoiceResponse converts a domain invoice
func ToInvoiceResponse(inv *finance.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:         inv.ID,
		Number:     inv.Number,
		Total:      inv.TotalOrZero(),
		SupplierID: inv.SupplierID,
	}
	if inv.Supplier != nil {
		s := apppartner.ToSupplierResponse(inv.Supplier)
		resp.Supplier = &s
	}
	return resp
}

// ToInvoiceResponses converts a slice of domain invoices
func ToInvoiceResponses(invoices []finance.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		out[i] = ToInvoiceResponse(&invoices[i])
	}
	return out
}
