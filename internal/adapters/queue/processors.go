package queue

import (
	"context"
	"fmt"
	"strings"

	"github.com/architeacher/svc-project-messaging/internal/domain"
	"github.com/architeacher/svc-project-messaging/internal/infrastructure"
	"github.com/architeacher/svc-project-messaging/internal/ports"
	"github.com/architeacher/svc-project-messaging/pkg/queue"
)

var (
	_ ports.DeliveryProcessor = (*LogProcessor)(nil)
	_ ports.DeliveryProcessor = (*JSONProcessor[domain.ProjectEvent])(nil)
	_ ports.DeliveryProcessor = (ContentTypeRouter)(nil)
)

// LogProcessor logs every payload it receives and never fails.
type LogProcessor struct {
	logger infrastructure.Logger
}

func NewLogProcessor(logger infrastructure.Logger) *LogProcessor {
	return &LogProcessor{
		logger: logger,
	}
}

func (p *LogProcessor) Process(_ context.Context, delivery queue.Delivery) error {
	p.logger.Info().
		Str("message_id", delivery.MessageID).
		Str("content_type", delivery.ContentType).
		Bool("redelivered", delivery.Redelivered).
		Time("sent_at", delivery.Timestamp).
		Str("body", string(delivery.Body)).
		Msg("received message")

	return nil
}

// JSONProcessor decodes JSON payloads into T before handing them over.
type JSONProcessor[T any] struct {
	handle func(ctx context.Context, payload T) error
}

func NewJSONProcessor[T any](handle func(ctx context.Context, payload T) error) *JSONProcessor[T] {
	return &JSONProcessor[T]{
		handle: handle,
	}
}

func (p *JSONProcessor[T]) Process(ctx context.Context, delivery queue.Delivery) error {
	if !isContentType(delivery.ContentType, queue.ContentTypeJSON) {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedContentType, delivery.ContentType)
	}

	payload, err := queue.Decode[T](delivery)
	if err != nil {
		return err
	}

	return p.handle(ctx, payload)
}

// NewProjectEventProcessor validates project events and logs them.
func NewProjectEventProcessor(logger infrastructure.Logger) *JSONProcessor[domain.ProjectEvent] {
	return NewJSONProcessor(func(_ context.Context, event domain.ProjectEvent) error {
		if err := event.Validate(); err != nil {
			return fmt.Errorf("invalid project event %s: %w", event.EventID, err)
		}

		logger.Info().
			Str("event_id", event.EventID.String()).
			Str("event_type", string(event.Type)).
			Str("project_id", event.ProjectID).
			Time("occurred_at", event.OccurredAt).
			Msg("project event received")

		return nil
	})
}

// ContentTypeRouter picks the processor registered for the delivery content type.
type ContentTypeRouter map[string]ports.DeliveryProcessor

func (r ContentTypeRouter) Process(ctx context.Context, delivery queue.Delivery) error {
	for contentType, processor := range r {
		if isContentType(delivery.ContentType, contentType) {
			return processor.Process(ctx, delivery)
		}
	}

	return fmt.Errorf("%w: %q", domain.ErrUnsupportedContentType, delivery.ContentType)
}

// isContentType ignores parameters such as charset.
func isContentType(actual, expected string) bool {
	mediaType, _, _ := strings.Cut(actual, ";")

	return strings.EqualFold(strings.TrimSpace(mediaType), expected)
}
