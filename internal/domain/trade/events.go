package trade

import (
	"github.com/erp/orderflow/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// EventTypeOrderCreated is published after an order has been persisted
const EventTypeOrderCreated = "OrderCreated"

// OrderCreatedEvent is published once an order has been committed
type OrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderID    int64           `json:"order_id"`
	CustomerID int64           `json:"customer_id"`
	Code       string          `json:"code"`
	Total      decimal.Decimal `json:"total"`
}

// NewOrderCreatedEvent creates a new OrderCreatedEvent
func NewOrderCreatedEvent(order *Order) *OrderCreatedEvent {
	return &OrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderCreated, AggregateTypeOrder, order.ID),
		OrderID:         order.ID,
		CustomerID:      order.CustomerID,
		Code:            order.Code(),
		Total:           order.TotalOrZero(),
	}
}
