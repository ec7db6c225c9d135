package trade

import (
	"github.com/shopspring/decimal"

	"github.com/erp/orderflow/internal/domain/trade"
)

// LineItemInput is one entry of "productos" in a request body
type LineItemInput struct {
	Name     string           `json:"nombre"`
	Price    decimal.Decimal  `json:"precio"`
	Quantity *decimal.Decimal `json:"cantidad,omitempty"`
}

// ToLineItems validates inputs and converts them to domain line items
func ToLineItems(inputs []LineItemInput) ([]trade.LineItem, error) {
	items := make([]trade.LineItem, 0, len(inputs))
	for _, in := range inputs {
		item, err := trade.NewLineItem(in.Name, in.Price, in.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// CreateOrderRequest is the normalized input of CreateOrder, whichever body shape it came from
type CreateOrderRequest struct {
	CustomerID int64
	Items      []LineItemInput
}

// OrderResponse is the wire form of an order
type OrderResponse struct {
	ID          int64            `json:"id"`
	Description string           `json:"descripcion"`
	Total       decimal.Decimal  `json:"total"`
	CustomerID  int64            `json:"clienteId"`
	Items       []trade.LineItem `json:"productos"`
}

// ToOrderResponse converts a domain order
func ToOrderResponse(o *trade.Order) OrderResponse {
	items := o.Items
	if items == nil {
		items = []trade.LineItem{}
	}
	return OrderResponse{
		ID:          o.ID,
		Description: o.Description,
		Total:       o.TotalOrZero(),
		CustomerID:  o.CustomerID,
		Items:       items,
	}
}

// ToOrderResponses converts a slice of domain orders
func ToOrderResponses(orders []trade.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i := range orders {
		out[i] = ToOrderResponse(&orders[i])
	}
	return out
}
