package router

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/erp/orderflow/internal/infrastructure/config"
	"github.com/erp/orderflow/internal/infrastructure/logger"
	"github.com/erp/orderflow/internal/interfaces/http/middleware"
)

// EngineOptions carries what NewEngine needs besides the config
type EngineOptions struct {
	ServiceName    string
	TracingEnabled bool
	TracerProvider trace.TracerProvider
	// Meter feeds the request metrics; nil disables them
	Meter metric.Meter
}

// NewEngine builds a gin engine with the shared middleware chain:
// RequestID, Recovery, access log, metrics, tracing, security headers, CORS, body limit.
func NewEngine(cfg *config.Config, log *zap.Logger, opts EngineOptions) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.Recovery(log),
		logger.GinMiddleware(log),
		middleware.HTTPMetrics(opts.Meter),
		middleware.Tracing(middleware.TracingConfig{
			ServiceName:    opts.ServiceName,
			Enabled:        opts.TracingEnabled,
			TracerProvider: opts.TracerProvider,
		}),
		middleware.SpanEnricher(),
		middleware.Secure(),
		middleware.CORSWithConfig(corsConfig),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)
	return engine
}
