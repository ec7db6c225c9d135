package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	financeapp "github.com/erp/orderflow/internal/application/finance"
	partnerapp "github.com/erp/orderflow/internal/application/partner"
	tradeapp "github.com/erp/orderflow/internal/application/trade"
	"github.com/erp/orderflow/internal/infrastructure/config"
	"github.com/erp/orderflow/internal/infrastructure/persistence"
	"github.com/erp/orderflow/internal/infrastructure/persistence/models"
	"github.com/erp/orderflow/internal/interfaces/http/dto"
	"github.com/erp/orderflow/internal/interfaces/http/handler"
	"github.com/erp/orderflow/internal/interfaces/http/middleware"
	"github.com/erp/orderflow/internal/interfaces/http/router"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func openDB(t *testing.T, dst ...any) *persistence.Database {
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
	require.NoError(t, db.AutoMigrate(dst...))
	return db
}

func newEngine(registrars ...router.RouteRegistrar) *gin.Engine {
	middleware.SetupValidator()
	engine := gin.New()
	engine.Use(middleware.RequestID())
	r := router.NewRouter(engine)
	for _, reg := range registrars {
		r.Register(reg)
	}
	r.Setup()
	return engine
}

// newOrdersAPI serves customers and orders with no event publisher attached
func newOrdersAPI(t *testing.T) *gin.Engine {
	t.Helper()
	db := openDB(t, models.OrdersService()...)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)

	customers := handler.NewCustomerHandler(partnerapp.NewCustomerService(customerRepo))
	orders := handler.NewOrderHandler(tradeapp.NewOrderService(orderRepo, customerRepo, zap.NewNop()))
	return newEngine(router.CustomerRoutes(customers, orders), router.OrderRoutes(orders))
}

func newInvoicesAPI(t *testing.T) *gin.Engine {
	t.Helper()
	db := openDB(t, models.InvoicesService()...)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)

	suppliers := handler.NewSupplierHandler(partnerapp.NewSupplierService(supplierRepo, invoiceRepo))
	invoices := handler.NewInvoiceHandler(financeapp.NewInvoiceService(invoiceRepo, supplierRepo, zap.NewNop()))
	return newEngine(router.SupplierRoutes(suppliers, invoices), router.InvoiceRoutes(invoices))
}

func do(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	resp := decode[dto.ErrorResponse](t, w)
	require.NotNil(t, resp.Error)
	require.False(t, resp.Success)
	return resp.Error.Code
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
