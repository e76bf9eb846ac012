package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/architeacher/svc-project-messaging/internal/domain"
	"github.com/architeacher/svc-project-messaging/internal/infrastructure"
	"github.com/architeacher/svc-project-messaging/internal/ports"
	"github.com/architeacher/svc-project-messaging/internal/shared/decorator"
	"github.com/architeacher/svc-project-messaging/pkg/queue"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	PublishProjectEventCommand struct {
		Type      domain.ProjectEventType
		ProjectID string
		Name      string
	}

	PublishProjectEventHandler decorator.CommandHandler[PublishProjectEventCommand, *domain.PublishResult]

	publishProjectEventHandler struct {
		publisher ports.MessagePublisher
		logger    infrastructure.Logger
	}
)

func NewPublishProjectEventHandler(
	publisher ports.MessagePublisher,
	logger infrastructure.Logger,
	tracerProvider otelTrace.TracerProvider,
	metricsClient decorator.MetricsClient,
) PublishProjectEventHandler {
	return decorator.ApplyCommandDecorators[PublishProjectEventCommand, *domain.PublishResult](
		publishProjectEventHandler{
			publisher: publisher,
			logger:    logger,
		},
		logger,
		tracerProvider,
		metricsClient,
	)
}

func (h publishProjectEventHandler) Handle(ctx context.Context, cmd PublishProjectEventCommand) (*domain.PublishResult, error) {
	event, err := domain.NewProjectEvent(cmd.Type, cmd.ProjectID, cmd.Name)
	if err != nil {
		return nil, err
	}

	if err := h.publisher.PublishObject(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to publish %s event for project %s: %w", event.Type, event.ProjectID, err)
	}

	h.logger.Info().
		Str("event_id", event.EventID.String()).
		Str("event_type", string(event.Type)).
		Str("project_id", event.ProjectID).
		Msg("project event published")

	return &domain.PublishResult{
		EventID:     event.EventID,
		ContentType: queue.ContentTypeJSON,
		PublishedAt: time.Now().UTC(),
	}, nil
}
