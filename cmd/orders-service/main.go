// Command orders-service serves customers and orders and notifies the
// invoices service after each order is created.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	partnerapp "github.com/erp/orderflow/internal/application/partner"
	tradeapp "github.com/erp/orderflow/internal/application/trade"
	"github.com/erp/orderflow/internal/domain/shared"
	"github.com/erp/orderflow/internal/infrastructure/cache"
	"github.com/erp/orderflow/internal/infrastructure/config"
	"github.com/erp/orderflow/internal/infrastructure/event"
	"github.com/erp/orderflow/internal/infrastructure/logger"
	"github.com/erp/orderflow/internal/infrastructure/notify"
	"github.com/erp/orderflow/internal/infrastructure/persistence"
	"github.com/erp/orderflow/internal/infrastructure/persistence/models"
	"github.com/erp/orderflow/internal/infrastructure/telemetry"
	"github.com/erp/orderflow/internal/interfaces/http/handler"
	"github.com/erp/orderflow/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load(config.WithDefaults("orders-service", "8080"))
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(cfg.Log, cfg.App.Name)
	defer func() { _ = log.Sync() }()

	// Totals go over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	log.Info("Starting orders service",
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("invoice_url", cfg.Notifier.InvoiceURL),
	)

	ctx := context.Background()

	tp, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	mp, err := telemetry.NewMeterProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize metrics", zap.Error(err))
	}
	lp, err := telemetry.NewLoggerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize log export", zap.Error(err))
	}
	log = lp.Bridge(log, cfg.App.Name, logger.ParseLevel(cfg.Log.Level))

	gormLog := logger.NewGormLogger(log, logger.GormLevel(cfg.Log.Level), cfg.Telemetry.DBSlowQueryThresh)
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfigFrom(cfg.Telemetry, cfg.Database.Driver), log); err != nil {
		log.Warn("Database tracing disabled", zap.Error(err))
	}
	if err := db.AutoMigrate(models.OrdersService()...); err != nil {
		log.Fatal("Failed to migrate schema", zap.Error(err))
	}
	log.Info("Database connected successfully", zap.String("driver", cfg.Database.Driver))

	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)

	customerService := partnerapp.NewCustomerService(customerRepo)
	orderService := tradeapp.NewOrderService(orderRepo, customerRepo, log)

	// Order created -> notify the invoices service, at most once per event
	bus := event.NewInMemoryEventBus(log)
	store := cache.NewIdempotencyStore(ctx, cfg.Redis, log)
	notifier := notify.NewNotifier(cfg.Notifier, log, notify.WithMeter(mp.Meter("orderflow/notify")))
	bus.Subscribe(event.NewIdempotentHandler(
		notify.NewOrderCreatedHandler(notifier, cfg.Notifier.InvoiceURL, log),
		store,
		shared.IdempotencyConfig{Enabled: cfg.Idempotency.Enabled, TTL: cfg.Idempotency.TTL},
		log,
	))
	orderService.SetEventPublisher(bus)
	if err := bus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}

	customerHandler := handler.NewCustomerHandler(customerService)
	orderHandler := handler.NewOrderHandler(orderService)

	engine := router.NewEngine(cfg, log, router.EngineOptions{
		ServiceName:    cfg.Telemetry.ServiceName,
		TracingEnabled: tp.IsEnabled(),
		TracerProvider: otel.GetTracerProvider(),
		Meter:          mp.Meter("http.server"),
	})
	router.NewRouter(engine).
		Register(router.CustomerRoutes(customerHandler, orderHandler)).
		Register(router.OrderRoutes(orderHandler)).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	_ = bus.Stop(shutdownCtx)
	if err := notifier.Close(shutdownCtx); err != nil {
		log.Warn("Pending notifications dropped", zap.Error(err))
	}
	if err := store.Close(); err != nil {
		log.Error("Error closing idempotency store", zap.Error(err))
	}
	if err := tp.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down telemetry", zap.Error(err))
	}
	if err := mp.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down metrics", zap.Error(err))
	}
	if err := db.Close(); err != nil {
		log.Error("Error closing database", zap.Error(err))
	}

	log.Info("Server exited gracefully")
	_ = lp.Shutdown(shutdownCtx)
}
