package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/erp/orderflow/internal/domain/shared"
	"github.com/erp/orderflow/internal/domain/trade"
)

// Sender is the part of Notifier the event handler needs
type Sender interface {
	Notify(ctx context.Context, endpoint string)
}

// OrderCreatedHandler tells the invoices service about every new order
type OrderCreatedHandler struct {
	sender Sender
	url    string
	logger *zap.Logger
}

// NewOrderCreatedHandler creates the handler targeting invoiceURL
func NewOrderCreatedHandler(sender Sender, invoiceURL string, logger *zap.Logger) *OrderCreatedHandler {
	return &OrderCreatedHandler{sender: sender, url: invoiceURL, logger: logger}
}

// EventTypes implements shared.EventHandler
func (h *OrderCreatedHandler) EventTypes() []string {
	return []string{trade.EventTypeOrderCreated}
}

// Handle implements shared.EventHandler. It always returns nil.
func (h *OrderCreatedHandler) Handle(ctx context.Context, ev shared.DomainEvent) error {
	if created, ok := ev.(*trade.OrderCreatedEvent); ok {
		h.logger.Debug("notifying invoices service",
			zap.Int64("order_id", created.OrderID),
			zap.String("code", created.Code),
		)
	}
	h.sender.Notify(ctx, h.url)
	return nil
}

var _ shared.EventHandler = (*OrderCreatedHandler)(nil)
