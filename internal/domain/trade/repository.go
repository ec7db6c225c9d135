package trade

import (
	"context"

	"github.com/erp/orderflow/internal/domain/shared"
)

// OrderRepository persists orders
type OrderRepository interface {
	shared.Repository[Order]

	// FindByCustomer returns the orders owned by a customer, oldest first
	FindByCustomer(ctx context.Context, customerID int64) ([]Order, error)
}
