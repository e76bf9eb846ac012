package runtime

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/hashicorp/vault/api"

	"github.com/architeacher/svc-project-messaging/internal/adapters/http/handlers"
	"github.com/architeacher/svc-project-messaging/internal/adapters/middleware"
	queueAdapters "github.com/architeacher/svc-project-messaging/internal/adapters/queue"
	"github.com/architeacher/svc-project-messaging/internal/config"
	"github.com/architeacher/svc-project-messaging/internal/infrastructure"
	"github.com/architeacher/svc-project-messaging/internal/ports"
	"github.com/architeacher/svc-project-messaging/internal/usecases"
	"github.com/architeacher/svc-project-messaging/pkg/queue"
)

type (
	Applications struct {
		Publisher *usecases.PublisherApplication
	}

	ApplicationWorkers struct {
		Consumer *queueAdapters.ConsumerWorker
	}

	TracerShutdownFunc func(ctx context.Context) error

	InfrastructureDeps struct {
		OpsServer           *http.Server
		SecretStorageClient *api.Client
		Connection          *queue.ConnectionManager
		Publisher           *queue.Publisher
		Metrics             infrastructure.Metrics
	}

	Repos struct {
		SecretStorageRepo ports.SecretsRepository
	}

	Dependencies struct {
		Apps    Applications
		Workers ApplicationWorkers

		cfg          *config.ServiceConfig
		configLoader *config.Loader

		logger infrastructure.Logger

		Infra         InfrastructureDeps
		Repos         Repos
		HealthChecker ports.HealthChecker

		tracerShutdownFunc TracerShutdownFunc
	}
)

func initializeDependencies(ctx context.Context, opts ...DependencyOption) (*Dependencies, error) {
	cfg, err := config.Init()
	if err != nil {
		return nil, fmt.Errorf("unable to load service configuration: %w", err)
	}

	appLogger := infrastructure.New(cfg.Logging).
		WithService(cfg.AppConfig.ServiceName, cfg.AppConfig.ServiceVersion)

	appLogger.Info().Msg("initializing dependencies...")

	deps := &Dependencies{
		cfg:    cfg,
		logger: appLogger,
	}

	// Start with default options and append any additional options.
	options := append(defaultOptions(ctx), opts...)

	for _, opt := range options {
		if err := opt(deps); err != nil {
			return nil, fmt.Errorf("failed to apply dependency option: %w", err)
		}
	}

	deps.logger.Info().Msg("dependencies initialized successfully")

	return deps, nil
}

// release closes what the dependency options opened, in reverse order.
func (d *Dependencies) release(ctx context.Context) {
	if d.Infra.Connection != nil {
		if err := d.Infra.Connection.Close(); err != nil {
			d.logger.Error().Err(err).Msg("failed to close broker connection")
		}
	}

	if d.tracerShutdownFunc != nil {
		if err := d.tracerShutdownFunc(ctx); err != nil {
			d.logger.Error().Err(err).Msg("failed to shutdown tracer")
		}
	}

	if d.Infra.Metrics != nil {
		if err := d.Infra.Metrics.Shutdown(ctx); err != nil {
			d.logger.Error().Err(err).Msg("failed to shutdown metrics")
		}
	}
}

func initOpsServer(
	cfg *config.ServiceConfig,
	logger infrastructure.Logger,
	metrics infrastructure.Metrics,
	healthChecker ports.HealthChecker,
) *http.Server {
	logger.Info().Msg("creating ops server...")

	router := chi.NewRouter()

	for _, mw := range initMiddlewares(cfg, logger, metrics) {
		router.Use(mw)
	}

	var metricsHandler http.Handler
	if cfg.Telemetry.Metrics.Enabled {
		metricsHandler = metrics.Handler()
	}

	handlers.NewOpsHandler(healthChecker, metricsHandler, logger).Routes(router)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.OpsServer.Host, strconv.Itoa(cfg.OpsServer.Port)),
		Handler:      router,
		ReadTimeout:  cfg.OpsServer.ReadTimeout,
		WriteTimeout: cfg.OpsServer.WriteTimeout,
		IdleTimeout:  cfg.OpsServer.IdleTimeout,
	}

	logger.Info().Str("addr", server.Addr).Msg("ops server created")

	return server
}

func initMiddlewares(
	cfg *config.ServiceConfig,
	logger infrastructure.Logger,
	metrics infrastructure.Metrics,
) []func(http.Handler) http.Handler {
	middlewares := []func(http.Handler) http.Handler{
		chimiddleware.RequestID,
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		chimiddleware.Timeout(cfg.OpsServer.WriteTimeout),
	}

	if cfg.Telemetry.Metrics.Enabled {
		metricsMiddleware := middleware.NewMetricsMiddleware(metrics)
		middlewares = append(middlewares, metricsMiddleware.Middleware)
		logger.Info().Msg("HTTP metrics collection enabled")
	}

	if cfg.Logging.AccessLog.Enabled {
		healthFilter := middleware.NewHealthCheckFilter(cfg.Logging.AccessLog.LogHealthChecks)
		accessLogger := middleware.NewAccessLogger(logger)

		middlewares = append(middlewares, healthFilter.Middleware, accessLogger.Middleware)
		logger.Info().
			Bool("log_health_checks", cfg.Logging.AccessLog.LogHealthChecks).
			Msg("structured access logging enabled")
	}

	return middlewares
}
