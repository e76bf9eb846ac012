package runtime

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"

	"github.com/architeacher/svc-project-messaging/internal/adapters"
	queueAdapters "github.com/architeacher/svc-project-messaging/internal/adapters/queue"
	"github.com/architeacher/svc-project-messaging/internal/adapters/repos"
	"github.com/architeacher/svc-project-messaging/internal/config"
	"github.com/architeacher/svc-project-messaging/internal/infrastructure"
	"github.com/architeacher/svc-project-messaging/internal/usecases"
	"github.com/architeacher/svc-project-messaging/pkg/queue"
)

type (
	DependencyOption func(*Dependencies) error
)

func defaultOptions(ctx context.Context) []DependencyOption {
	return []DependencyOption{
		WithSecretStorage(),
		WithSecretStorageRepo(),
		WithConfigLoader(ctx),
		WithMetrics(ctx),
		WithTracing(ctx),
		WithConnection(),
	}
}

// WithSecretStorage initializes the Vault client using ENV config.
func WithSecretStorage() DependencyOption {
	return func(d *Dependencies) error {
		client, err := infrastructure.NewSecretStorageClient(d.cfg.SecretStorage)
		if err != nil {
			return err
		}

		d.Infra.SecretStorageClient = client

		return nil
	}
}

func WithSecretStorageRepo() DependencyOption {
	return func(d *Dependencies) error {
		d.Repos.SecretStorageRepo = repos.NewVaultRepository(d.Infra.SecretStorageClient)

		return nil
	}
}

// WithConfigLoader overlays broker credentials from Vault. It has to run
// before WithConnection, the broker configuration is fixed afterwards.
func WithConfigLoader(ctx context.Context) DependencyOption {
	return func(d *Dependencies) error {
		d.configLoader = config.NewLoader(d.cfg, d.Repos.SecretStorageRepo)

		if !d.cfg.SecretStorage.Enabled {
			d.logger.Info().Msg("secret storage is disabled, skipping vault configuration loading")

			return nil
		}

		if err := d.configLoader.Load(ctx); err != nil {
			return fmt.Errorf("unable to load service configuration: %w", err)
		}

		if err := d.cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration after applying secrets: %w", err)
		}

		return nil
	}
}

func WithMetrics(ctx context.Context) DependencyOption {
	return func(d *Dependencies) error {
		metrics, err := infrastructure.NewMetrics(ctx, *d.cfg, d.logger)
		if err != nil {
			return fmt.Errorf("failed to initialize metrics: %w", err)
		}

		d.Infra.Metrics = metrics

		return nil
	}
}

func WithTracing(ctx context.Context) DependencyOption {
	return func(d *Dependencies) error {
		if !d.cfg.Telemetry.Traces.Enabled {
			d.tracerShutdownFunc = func(_ context.Context) error {
				return nil
			}

			return nil
		}

		tracerShutdownFunc, err := infrastructure.InitGlobalTracer(ctx, d.cfg.Telemetry, d.cfg.AppConfig)
		if err != nil {
			d.logger.Error().Err(err).Msg("failed to initialize global tracer")

			return err
		}

		d.tracerShutdownFunc = tracerShutdownFunc

		return nil
	}
}

// WithConnection creates the lazy connection manager, nothing is dialed yet.
func WithConnection() DependencyOption {
	return func(d *Dependencies) error {
		d.Infra.Connection = infrastructure.NewConnectionManager(
			*d.cfg,
			d.logger,
			adapters.NewMetricsAdapter(d.Infra.Metrics),
		)
		d.HealthChecker = adapters.NewHealthChecker(d.Infra.Connection, nil)

		return nil
	}
}

func WithPublisher() DependencyOption {
	return func(d *Dependencies) error {
		metricsAdapter := adapters.NewMetricsAdapter(d.Infra.Metrics)

		d.Infra.Publisher = infrastructure.NewPublisher(*d.cfg, d.Infra.Connection, d.logger, metricsAdapter)

		d.Apps.Publisher = usecases.NewPublisherApplication(
			d.Infra.Publisher,
			d.logger,
			otel.GetTracerProvider(),
			metricsAdapter,
		)

		return nil
	}
}

func WithSubscriber() DependencyOption {
	return func(d *Dependencies) error {
		processor := queueAdapters.ContentTypeRouter{
			queue.ContentTypeText: queueAdapters.NewLogProcessor(d.logger),
			queue.ContentTypeJSON: queueAdapters.NewProjectEventProcessor(d.logger),
		}

		d.Workers.Consumer = queueAdapters.NewConsumerWorker(
			d.Infra.Connection,
			processor,
			d.cfg.Worker,
			d.logger,
			queueAdapters.WithPrefetch(d.cfg.Queue.PrefetchCount),
			queueAdapters.WithWorkerMetrics(d.Infra.Metrics),
		)

		d.HealthChecker = adapters.NewHealthChecker(d.Infra.Connection, d.Workers.Consumer)

		return nil
	}
}

// WithOpsServer exposes health and metrics. It has to run after WithSubscriber
// to report the worker state.
func WithOpsServer() DependencyOption {
	return func(d *Dependencies) error {
		d.Infra.OpsServer = initOpsServer(d.cfg, d.logger, d.Infra.Metrics, d.HealthChecker)

		return nil
	}
}
