package usecases

import (
	"github.com/architeacher/svc-project-messaging/internal/infrastructure"
	"github.com/architeacher/svc-project-messaging/internal/ports"
	"github.com/architeacher/svc-project-messaging/internal/shared/decorator"
	"github.com/architeacher/svc-project-messaging/internal/usecases/commands"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	PublisherApplication struct {
		Commands PublisherCommands
	}

	PublisherCommands struct {
		PublishTextHandler         commands.PublishTextHandler
		PublishProjectEventHandler commands.PublishProjectEventHandler
	}
)

func NewPublisherApplication(
	publisher ports.MessagePublisher,
	logger infrastructure.Logger,
	tracerProvider otelTrace.TracerProvider,
	metricsClient decorator.MetricsClient,
) *PublisherApplication {
	return &PublisherApplication{
		Commands: PublisherCommands{
			PublishTextHandler: commands.NewPublishTextHandler(
				publisher,
				logger,
				tracerProvider,
				metricsClient,
			),
			PublishProjectEventHandler: commands.NewPublishProjectEventHandler(
				publisher,
				logger,
				tracerProvider,
				metricsClient,
			),
		},
	}
}
