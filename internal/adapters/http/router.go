package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/addresskit/companieshouse/internal/adapters/http/dto"
	"github.com/addresskit/companieshouse/internal/adapters/http/handlers"
	"github.com/addresskit/companieshouse/internal/adapters/http/middleware"
	"github.com/addresskit/companieshouse/internal/platform/config"
	"github.com/addresskit/companieshouse/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// HealthHandler handles health check endpoints.
	HealthHandler *handlers.HealthHandler

	// AddressHandler handles company lookup endpoints.
	AddressHandler *handlers.AddressHandler

	// Timeout is the default request timeout.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - handle distributed tracing correlation
//  4. OpenTelemetry - tracing and metrics
//  5. Logging - request logging (skips health endpoints)
//  6. Timeout - request deadline on the API group
//
// Route groups:
//   - /-/ (internal): Health endpoints
//   - /api/v1/ (public API): Company lookup endpoints
//
// Unmatched paths get the JSON error envelope instead of gin's empty 404.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	// Apply global middleware in order
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.Middleware(cfg.AppConfig.Name),
		middleware.Logging(cfg.Logger),
	)

	engine.NoRoute(func(c *gin.Context) {
		RespondWithErrorCode(c, dto.ErrorCodeNotFound, "resource not found")
	})

	// Register health endpoints (no timeout for probes)
	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	// Setup API v1 routes with timeout
	apiV1 := engine.Group("/api/v1")
	if cfg.Timeout > 0 {
		apiV1.Use(middleware.Timeout(cfg.Timeout))
	}

	if cfg.AddressHandler != nil {
		cfg.AddressHandler.RegisterAddressRoutes(apiV1)
	}
}

// NewDefaultRouterConfig creates a RouterConfig with sensible defaults.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	appCfg *config.AppConfig,
	healthHandler *handlers.HealthHandler,
	addressHandler *handlers.AddressHandler,
) RouterConfig {
	return RouterConfig{
		Logger:         logger,
		AppConfig:      appCfg,
		HealthHandler:  healthHandler,
		AddressHandler: addressHandler,
		Timeout:        DefaultRequestTimeout,
	}
}
