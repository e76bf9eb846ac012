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
	PublishTextCommand struct {
		Message string
	}

	PublishTextHandler decorator.CommandHandler[PublishTextCommand, *domain.PublishResult]

	publishTextHandler struct {
		publisher ports.MessagePublisher
	}
)

func NewPublishTextHandler(
	publisher ports.MessagePublisher,
	logger infrastructure.Logger,
	tracerProvider otelTrace.TracerProvider,
	metricsClient decorator.MetricsClient,
) PublishTextHandler {
	return decorator.ApplyCommandDecorators[PublishTextCommand, *domain.PublishResult](
		publishTextHandler{
			publisher: publisher,
		},
		logger,
		tracerProvider,
		metricsClient,
	)
}

func (h publishTextHandler) Handle(ctx context.Context, cmd PublishTextCommand) (*domain.PublishResult, error) {
	if cmd.Message == "" {
		return nil, domain.NewValidationError("message", "must not be empty")
	}

	if err := h.publisher.PublishText(ctx, cmd.Message); err != nil {
		return nil, fmt.Errorf("failed to publish text message: %w", err)
	}

	return &domain.PublishResult{
		ContentType: queue.ContentTypeText,
		PublishedAt: time.Now().UTC(),
	}, nil
}
