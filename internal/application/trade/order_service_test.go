package trade

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/erp/orderflow/internal/domain/partner"
	"github.com/erp/orderflow/internal/domain/shared"
	"github.com/erp/orderflow/internal/domain/trade"
)

var orderDescription = regexp.MustCompile(`^Pedido generado con código: ORDER-[0-9A-F]{8}$`)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func existingCustomer(id int64) *partner.Customer {
	return &partner.Customer{BaseEntity: shared.BaseEntity{ID: id}, Name: "Ana", Email: "ana@example.com"}
}

func newServiceWithMocks() (*OrderService, *MockOrderRepository, *MockCustomerRepository, *MockEventPublisher) {
	orders := new(MockOrderRepository)
	customers := new(MockCustomerRepository)
	publisher := new(MockEventPublisher)
	svc := NewOrderService(orders, customers, zap.NewNop())
	svc.SetEventPublisher(publisher)
	return svc, orders, customers, publisher
}

func TestCreateOrder_ComputesTotalAndStampsCode(t *testing.T) {
	svc, orders, customers, publisher := newServiceWithMocks()
	ctx := context.Background()

	customers.On("FindByID", ctx, int64(1)).Return(existingCustomer(1), nil)
	orders.On("Save", ctx, mock.AnythingOfType("*trade.Order")).
		Run(func(args mock.Arguments) { args.Get(1).(*trade.Order).ID = 42 }).
		Return(nil)

	var published []shared.DomainEvent
	publisher.On("Publish", ctx, mock.Anything).
		Run(func(args mock.Arguments) { published = args.Get(1).([]shared.DomainEvent) }).
		Return(nil)

	resp, err := svc.CreateOrder(ctx, CreateOrderRequest{
		CustomerID: 1,
		Items: []LineItemInput{
			{Name: "X", Price: dec("10"), Quantity: decPtr("2")},
			{Name: "Y", Price: dec("5")},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.True(t, dec("25").Equal(resp.Total), "total was %s", resp.Total)
	assert.Regexp(t, orderDescription, resp.Description)
	assert.Len(t, resp.Items, 2)

	require.Len(t, published, 1)
	ev, ok := published[0].(*trade.OrderCreatedEvent)
	require.True(t, ok)
	assert.Equal(t, int64(42), ev.OrderID)
	assert.Equal(t, trade.DescriptionPrefix+ev.Code, resp.Description)
}

func TestCreateOrder_WithoutItemsDefaultsTotalToZero(t *testing.T) {
	svc, orders, customers, publisher := newServiceWithMocks()
	ctx := context.Background()

	customers.On("FindByID", ctx, int64(1)).Return(existingCustomer(1), nil)
	var saved *trade.Order
	orders.On("Save", ctx, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*trade.Order) }).
		Return(nil)
	publisher.On("Publish", ctx, mock.Anything).Return(nil)

	resp, err := svc.CreateOrder(ctx, CreateOrderRequest{CustomerID: 1})

	require.NoError(t, err)
	require.NotNil(t, saved.Total, "total is never null when persisted")
	assert.True(t, saved.Total.IsZero())
	assert.True(t, resp.Total.IsZero())
	assert.Empty(t, resp.Items)
}

func TestCreateOrder_UnknownCustomer(t *testing.T) {
	svc, orders, customers, publisher := newServiceWithMocks()
	ctx := context.Background()

	customers.On("FindByID", ctx, int64(99)).Return(nil, shared.NewNotFoundError(partner.AggregateTypeCustomer, int64(99)))

	resp, err := svc.CreateOrder(ctx, CreateOrderRequest{
		CustomerID: 99,
		Items:      []LineItemInput{{Name: "X", Price: dec("1")}},
	})

	assert.Nil(t, resp)
	assert.True(t, shared.IsNotFound(err))
	assert.Contains(t, err.Error(), "Customer not found: 99")
	orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCreateOrder_InvalidItemRejectedBeforeWrite(t *testing.T) {
	tests := []struct {
		name string
		item LineItemInput
	}{
		{name: "negative price", item: LineItemInput{Name: "X", Price: dec("-1")}},
		{name: "negative quantity", item: LineItemInput{Name: "X", Price: dec("1"), Quantity: decPtr("-2")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, orders, customers, _ := newServiceWithMocks()
			ctx := context.Background()
			customers.On("FindByID", ctx, int64(1)).Return(existingCustomer(1), nil)

			_, err := svc.CreateOrder(ctx, CreateOrderRequest{CustomerID: 1, Items: []LineItemInput{tt.item}})

			assert.True(t, shared.IsInvalidArgument(err))
			orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateOrder_SaveErrorIsReturnedAndNothingPublished(t *testing.T) {
	svc, orders, customers, publisher := newServiceWithMocks()
	ctx := context.Background()

	customers.On("FindByID", ctx, int64(1)).Return(existingCustomer(1), nil)
	orders.On("Save", ctx, mock.Anything).Return(errors.New("db down"))

	_, err := svc.CreateOrder(ctx, CreateOrderRequest{CustomerID: 1})

	assert.EqualError(t, err, "db down")
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCreateOrder_PublishFailureDoesNotFailCreate(t *testing.T) {
	svc, orders, customers, publisher := newServiceWithMocks()
	ctx := context.Background()

	customers.On("FindByID", ctx, int64(1)).Return(existingCustomer(1), nil)
	orders.On("Save", ctx, mock.Anything).Return(nil)
	publisher.On("Publish", ctx, mock.Anything).Return(errors.New("bus down"))

	resp, err := svc.CreateOrder(ctx, CreateOrderRequest{CustomerID: 1})

	require.NoError(t, err)
	assert.NotNil(t, resp)
}

func TestCreateOrder_CodesAreFreshPerOrder(t *testing.T) {
	svc, orders, customers, publisher := newServiceWithMocks()
	ctx := context.Background()

	customers.On("FindByID", ctx, int64(1)).Return(existingCustomer(1), nil)
	orders.On("Save", ctx, mock.Anything).Return(nil)
	publisher.On("Publish", ctx, mock.Anything).Return(nil)

	first, err := svc.CreateOrder(ctx, CreateOrderRequest{CustomerID: 1})
	require.NoError(t, err)
	second, err := svc.CreateOrder(ctx, CreateOrderRequest{CustomerID: 1})
	require.NoError(t, err)

	assert.NotEqual(t, first.Description, second.Description)
}

func TestListByCustomer(t *testing.T) {
	t.Run("returns customer orders", func(t *testing.T) {
		svc, orders, customers, _ := newServiceWithMocks()
		ctx := context.Background()
		customers.On("FindByID", ctx, int64(1)).Return(existingCustomer(1), nil)
		orders.On("FindByCustomer", ctx, int64(1)).Return([]trade.Order{
			{BaseEntity: shared.BaseEntity{ID: 3}, CustomerID: 1, Total: decPtr("7")},
		}, nil)

		got, err := svc.ListByCustomer(ctx, 1)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(3), got[0].ID)
	})

	t.Run("missing customer is not found", func(t *testing.T) {
		svc, orders, customers, _ := newServiceWithMocks()
		ctx := context.Background()
		customers.On("FindByID", ctx, int64(5)).Return(nil, shared.NewNotFoundError(partner.AggregateTypeCustomer, int64(5)))

		_, err := svc.ListByCustomer(ctx, 5)

		assert.True(t, shared.IsNotFound(err))
		orders.AssertNotCalled(t, "FindByCustomer", mock.Anything, mock.Anything)
	})
}

func TestGetListDelete(t *testing.T) {
	svc, orders, _, _ := newServiceWithMocks()
	ctx := context.Background()

	orders.On("FindByID", ctx, int64(1)).Return(&trade.Order{BaseEntity: shared.BaseEntity{ID: 1}, CustomerID: 2}, nil)
	orders.On("FindAll", ctx).Return([]trade.Order{{BaseEntity: shared.BaseEntity{ID: 1}}}, nil)
	orders.On("DeleteByID", ctx, int64(1)).Return(nil)

	got, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.CustomerID)
	assert.True(t, got.Total.IsZero())

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, svc.Delete(ctx, 1))
	orders.AssertExpectations(t)
}
