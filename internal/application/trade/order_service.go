// Package trade implements the order use cases.
package trade

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/erp/orderflow/internal/domain/partner"
	"github.com/erp/orderflow/internal/domain/shared"
	"github.com/erp/orderflow/internal/domain/shared/codegen"
	"github.com/erp/orderflow/internal/domain/trade"
	"github.com/erp/orderflow/internal/infrastructure/logger"
)

// OrderService creates orders for existing customers and announces them
type OrderService struct {
	orderRepo    trade.OrderRepository
	customerRepo partner.CustomerRepository
	publisher    shared.EventPublisher
	logger       *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo trade.OrderRepository, customerRepo partner.CustomerRepository, log *zap.Logger) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		logger:       log,
	}
}

// SetEventPublisher sets the publisher that receives OrderCreated events
func (s *OrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.publisher = publisher
}

// CreateOrder resolves the customer, prices the items, stamps a fresh code and
// persists the order. The OrderCreated event goes out only after the save.
func (s *OrderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	if _, err := s.customerRepo.FindByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	order, err := trade.NewOrder(req.CustomerID)
	if err != nil {
		return nil, err
	}

	if len(req.Items) > 0 {
		items, err := ToLineItems(req.Items)
		if err != nil {
			return nil, err
		}
		if err := order.AttachItems(items); err != nil {
			return nil, err
		}
	}

	code, err := codegen.Generate(codegen.TagOrder)
	if err != nil {
		return nil, fmt.Errorf("generate order code: %w", err)
	}
	order.StampCode(code)

	if err := order.Normalize(); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	logger.Enrich(ctx, s.logger).Info("order created",
		zap.Int64("order_id", order.ID),
		zap.Int64("customer_id", order.CustomerID),
		zap.String("code", code),
		zap.String("total", order.TotalOrZero().String()),
	)
	s.publish(ctx, trade.NewOrderCreatedEvent(order))

	resp := ToOrderResponse(order)
	return &resp, nil
}

// GetByID retrieves an order by ID
func (s *OrderService) GetByID(ctx context.Context, id int64) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToOrderResponse(order)
	return &resp, nil
}

// List returns every order
func (s *OrderService) List(ctx context.Context) ([]OrderResponse, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToOrderResponses(orders), nil
}

// ListByCustomer returns a customer's orders; the customer must exist
func (s *OrderService) ListByCustomer(ctx context.Context, customerID int64) ([]OrderResponse, error) {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return ToOrderResponses(orders), nil
}

// Delete removes an order. Deleting a missing order succeeds.
func (s *OrderService) Delete(ctx context.Context, id int64) error {
	return s.orderRepo.DeleteByID(ctx, id)
}

func (s *OrderService) publish(ctx context.Context, events ...shared.DomainEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("failed to publish order events", zap.Error(err))
	}
}
