package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/architeacher/svc-project-messaging/pkg/queue"

// Publisher sends messages to the managed queue through the default exchange.
// It is safe for concurrent use, writes on the shared channel are serialised
// by the ChannelWrapper.
type Publisher struct {
	manager  *ConnectionManager
	timeout  time.Duration
	breaker  *gobreaker.CircuitBreaker
	logger   Logger
	observer Observer
	tracer   trace.Tracer
	now      func() time.Time
}

// NewPublisher creates a Publisher on top of manager.
func NewPublisher(manager *ConnectionManager, opts ...PublisherOption) *Publisher {
	options := defaultPublisherOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &Publisher{
		manager:  manager,
		timeout:  options.timeout,
		breaker:  options.breaker,
		logger:   options.logger,
		observer: options.observer,
		tracer:   otel.Tracer(tracerName),
		now:      options.now,
	}
}

// PublishText publishes message as a persistent text/plain message.
func (p *Publisher) PublishText(ctx context.Context, message string) error {
	return p.Publish(ctx, p.newMessage([]byte(message), ContentTypeText))
}

// PublishObject publishes obj encoded as JSON. Encoding failures are returned
// as *SerializationError and nothing is sent.
func (p *Publisher) PublishObject(ctx context.Context, obj any) error {
	body, err := json.Marshal(obj)
	if err != nil {
		return &SerializationError{Type: fmt.Sprintf("%T", obj), Err: err}
	}

	return p.Publish(ctx, p.newMessage(body, ContentTypeJSON))
}

// Publish sends msg once. It does not retry, transport failures are returned
// as *TransportError and the caller decides what to do.
func (p *Publisher) Publish(ctx context.Context, msg OutboundMessage) error {
	queueName := p.manager.QueueName()

	ctx, span := p.tracer.Start(ctx, "queue.publish",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "rabbitmq"),
			attribute.String("messaging.destination.name", queueName),
			attribute.String("messaging.message.id", msg.MessageID),
			attribute.String("messaging.message.content_type", msg.ContentType),
		),
	)
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	err := p.execute(func() error {
		return p.send(ctx, queueName, msg)
	})

	p.observer.ObservePublish(ctx, msg.ContentType, time.Since(start), err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		p.logger.Error().
			Err(err).
			Str("queue", queueName).
			Str("message_id", msg.MessageID).
			Msg("failed to publish message")

		return err
	}

	p.logger.Debug().
		Str("queue", queueName).
		Str("message_id", msg.MessageID).
		Str("content_type", msg.ContentType).
		Msg("message published")

	return nil
}

func (p *Publisher) execute(fn func() error) error {
	if p.breaker == nil {
		return fn()
	}

	_, err := p.breaker.Execute(func() (any, error) {
		return nil, fn()
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return &TransportError{Op: "publish", Err: err}
	}

	return err
}

func (p *Publisher) send(ctx context.Context, queueName string, msg OutboundMessage) error {
	ch, err := p.manager.EnsureReady(ctx)
	if err != nil {
		return err
	}

	if err := ch.publish(ctx, "", queueName, msg.publishing()); err != nil {
		var amqpErr *amqp.Error
		if errors.Is(err, amqp.ErrClosed) || errors.As(err, &amqpErr) {
			p.manager.Invalidate(ch)
		}

		return &TransportError{Op: "publish", Err: err}
	}

	return nil
}

func (p *Publisher) newMessage(body []byte, contentType string) OutboundMessage {
	return OutboundMessage{
		Body:        body,
		ContentType: contentType,
		Persistent:  true,
		Timestamp:   p.now().UTC().Truncate(time.Second),
		MessageID:   uuid.NewString(),
	}
}

// Close releases the channel and the connection.
func (p *Publisher) Close() error {
	return p.manager.Close()
}
