package trade

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/erp/orderflow/internal/domain/partner"
	"github.com/erp/orderflow/internal/domain/shared"
	"github.com/erp/orderflow/internal/infrastructure/config"
	"github.com/erp/orderflow/internal/infrastructure/event"
	"github.com/erp/orderflow/internal/infrastructure/notify"
	"github.com/erp/orderflow/internal/infrastructure/persistence"
	"github.com/erp/orderflow/internal/infrastructure/persistence/models"
)

func openStore(t *testing.T) *persistence.Database {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := persistence.NewDatabase(&config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		Path:         "file:" + name + "?mode=memory&cache=shared",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.AutoMigrate(models.OrdersService()...))
	return db
}

func TestCreateOrder_UnknownCustomerLeavesStoreUnchanged(t *testing.T) {
	db := openStore(t)
	orders := persistence.NewGormOrderRepository(db.DB)
	svc := NewOrderService(orders, persistence.NewGormCustomerRepository(db.DB), zap.NewNop())
	ctx := context.Background()

	before, err := orders.Count(ctx)
	require.NoError(t, err)

	_, err = svc.CreateOrder(ctx, CreateOrderRequest{CustomerID: 12345})
	require.True(t, shared.IsNotFound(err))

	after, err := orders.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestCreateOrder_UnresponsiveInvoicesServiceStillPersists(t *testing.T) {
	release := make(chan struct{})
	hanging := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer hanging.Close()
	defer close(release)

	db := openStore(t)
	customers := persistence.NewGormCustomerRepository(db.DB)
	orders := persistence.NewGormOrderRepository(db.DB)
	ctx := context.Background()

	customer, err := partner.NewCustomer("Ana", "ana@example.com")
	require.NoError(t, err)
	require.NoError(t, customers.Save(ctx, customer))

	notifier := notify.NewNotifier(config.NotifierConfig{
		Enabled:        true,
		ConnectTimeout: 300 * time.Millisecond,
		ReadTimeout:    300 * time.Millisecond,
	}, zap.NewNop())
	bus := event.NewInMemoryEventBus(zap.NewNop())
	require.NoError(t, bus.Start(ctx))
	bus.Subscribe(notify.NewOrderCreatedHandler(notifier, hanging.URL+"/api/facturas", zap.NewNop()))

	svc := NewOrderService(orders, customers, zap.NewNop())
	svc.SetEventPublisher(bus)

	start := time.Now()
	resp, err := svc.CreateOrder(ctx, CreateOrderRequest{
		CustomerID: customer.ID,
		Items:      []LineItemInput{{Name: "X", Price: dec("10"), Quantity: decPtr("2")}, {Name: "Y", Price: dec("5")}},
	})
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)

	stored, err := orders.FindByID(ctx, resp.ID)
	require.NoError(t, err)
	assert.True(t, dec("25").Equal(stored.TotalOrZero()))
	assert.Regexp(t, orderDescription, stored.Description)
}
