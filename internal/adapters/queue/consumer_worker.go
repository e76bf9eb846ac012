package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/semaphore"

	"github.com/architeacher/svc-project-messaging/internal/config"
	"github.com/architeacher/svc-project-messaging/internal/domain"
	"github.com/architeacher/svc-project-messaging/internal/infrastructure"
	"github.com/architeacher/svc-project-messaging/internal/ports"
	"github.com/architeacher/svc-project-messaging/internal/shared/backoff"
	"github.com/architeacher/svc-project-messaging/pkg/queue"
)

const tracerName = "github.com/architeacher/svc-project-messaging/internal/adapters/queue"

// Ensure ConsumerWorker implements the BackgroundProcessor interface
var _ ports.BackgroundProcessor = (*ConsumerWorker)(nil)

var ErrAlreadyStarted = errors.New("consumer worker already started")

type (
	// Broker is the part of the connection manager the worker consumes through.
	Broker interface {
		Subscribe(ctx context.Context, consumerTag string, prefetch int) (queue.Subscription, error)
		Close() error
	}

	// ConsumerWorker connects with retry and backoff, subscribes to the queue
	// and hands every delivery to the processor, acking on success and
	// requeueing on failure.
	ConsumerWorker struct {
		broker    Broker
		processor ports.DeliveryProcessor
		strategy  backoff.Strategy
		cfg       config.WorkerConfig
		prefetch  int
		logger    infrastructure.Logger
		metrics   infrastructure.Metrics
		tracer    trace.Tracer
		sleep     func(ctx context.Context, d time.Duration) error

		state    atomic.Int32
		attempts atomic.Int64
		started  atomic.Bool
	}

	WorkerOption func(*ConsumerWorker)
)

// WithBackoffStrategy replaces the exponential strategy built from the config.
func WithBackoffStrategy(strategy backoff.Strategy) WorkerOption {
	return func(w *ConsumerWorker) {
		w.strategy = strategy
	}
}

// WithPrefetch sets how many unacknowledged deliveries the broker may push.
// It defaults to the worker concurrency.
func WithPrefetch(prefetch int) WorkerOption {
	return func(w *ConsumerWorker) {
		if prefetch > 0 {
			w.prefetch = prefetch
		}
	}
}

func WithWorkerMetrics(metrics infrastructure.Metrics) WorkerOption {
	return func(w *ConsumerWorker) {
		if metrics != nil {
			w.metrics = metrics
		}
	}
}

func NewConsumerWorker(
	broker Broker,
	processor ports.DeliveryProcessor,
	cfg config.WorkerConfig,
	logger infrastructure.Logger,
	opts ...WorkerOption,
) *ConsumerWorker {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}

	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}

	w := &ConsumerWorker{
		broker:    broker,
		processor: processor,
		strategy:  backoff.NewExponentialStrategy(cfg.Backoff),
		cfg:       cfg,
		prefetch:  cfg.Concurrency,
		logger:    logger.Component("consumer_worker"),
		metrics:   &infrastructure.NoOpMetrics{},
		tracer:    otel.Tracer(tracerName),
		sleep:     sleepContext,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// State returns the current lifecycle state.
func (w *ConsumerWorker) State() domain.WorkerState {
	return domain.WorkerState(w.state.Load())
}

// Attempts is the number of consecutive failed connection attempts.
func (w *ConsumerWorker) Attempts() int {
	return int(w.attempts.Load())
}

// Start runs the worker until ctx is cancelled or it gives up connecting.
// It returns nil after a graceful shutdown and a *queue.GiveUpError when
// the connection attempts are exhausted.
func (w *ConsumerWorker) Start(ctx context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}

	w.logger.Info().
		Str("consumer_tag", w.cfg.ConsumerTag).
		Int("concurrency", w.cfg.Concurrency).
		Int("max_attempts", w.cfg.MaxAttempts).
		Msg("starting consumer worker")

	for {
		sub, err := w.connect(ctx)
		if err != nil {
			var giveUpErr *queue.GiveUpError
			if errors.As(err, &giveUpErr) {
				w.setState(ctx, domain.WorkerStateGivenUp)
				w.logger.Error().
					Err(err).
					Int("attempts", giveUpErr.Attempts).
					Msg("consumer worker gave up connecting, no messages will be consumed")

				return err
			}

			w.stop(ctx)

			if ctx.Err() != nil {
				return nil
			}

			return err
		}

		if stopped := w.consume(ctx, sub); stopped {
			w.stop(ctx)

			return nil
		}

		w.logger.Warn().Msg("delivery stream closed unexpectedly, reconnecting")
	}
}

// connect subscribes, sleeping between failed attempts. The attempt counter
// starts from zero on every call.
func (w *ConsumerWorker) connect(ctx context.Context) (queue.Subscription, error) {
	attempt := 0
	w.attempts.Store(0)

	for {
		w.setState(ctx, domain.WorkerStateConnecting)

		sub, err := w.broker.Subscribe(ctx, w.cfg.ConsumerTag, w.prefetch)
		if err == nil {
			w.attempts.Store(0)
			w.setState(ctx, domain.WorkerStateSubscribed)

			return sub, nil
		}

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if errors.Is(err, queue.ErrClosed) {
			return nil, err
		}

		attempt++
		w.attempts.Store(int64(attempt))

		if attempt >= w.cfg.MaxAttempts {
			return nil, &queue.GiveUpError{Attempts: attempt, Err: err}
		}

		delay := w.strategy.Backoff(attempt - 1)

		w.setState(ctx, domain.WorkerStateRetrying)
		w.logger.Warn().
			Err(err).
			Int("attempt", attempt).
			Int("max_attempts", w.cfg.MaxAttempts).
			Dur("delay", delay).
			Msg("failed to connect to RabbitMQ, retrying")

		if err := w.sleep(ctx, delay); err != nil {
			return nil, err
		}
	}
}

// consume runs the delivery loop. It reports true when the worker is shutting
// down and false when the stream closed on its own.
func (w *ConsumerWorker) consume(ctx context.Context, sub queue.Subscription) bool {
	var wg sync.WaitGroup

	sem := semaphore.NewWeighted(int64(w.cfg.Concurrency))

	// in-flight callbacks outlive the shutdown signal until the grace period ends
	procCtx, procCancel := context.WithCancel(context.WithoutCancel(ctx))
	defer procCancel()

	deliveries := sub.Deliveries()

	for {
		if err := sem.Acquire(ctx, 1); err != nil {
			w.drain(sub, &wg, procCancel)

			return true
		}

		if ctx.Err() != nil {
			sem.Release(1)
			w.drain(sub, &wg, procCancel)

			return true
		}

		select {
		case <-ctx.Done():
			sem.Release(1)
			w.drain(sub, &wg, procCancel)

			return true

		case d, ok := <-deliveries:
			if !ok {
				sem.Release(1)
				w.setState(ctx, domain.WorkerStateConnecting)

				if !awaitInFlight(ctx, &wg) {
					w.drain(sub, &wg, procCancel)

					return true
				}

				sub.Abandon()

				return false
			}

			delivery := queue.NewDelivery(d)

			wg.Go(func() {
				defer sem.Release(1)

				w.handle(procCtx, delivery)
			})
		}
	}
}

// awaitInFlight waits for running callbacks after the delivery stream closed.
// It reports false when ctx is cancelled first.
func awaitInFlight(ctx context.Context, wg *sync.WaitGroup) bool {
	if ctx.Err() != nil {
		return false
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return ctx.Err() == nil
	case <-ctx.Done():
		return false
	}
}

// drain stops new deliveries and waits for in-flight callbacks, at most for
// the shutdown grace period.
func (w *ConsumerWorker) drain(sub queue.Subscription, wg *sync.WaitGroup, cancel context.CancelFunc) {
	w.setState(context.Background(), domain.WorkerStateStopping)

	if err := sub.Cancel(); err != nil {
		w.logger.Warn().Err(err).Msg("failed to cancel consumer")
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(w.cfg.ShutdownGrace)
	defer timer.Stop()

	select {
	case <-done:
		w.logger.Info().Msg("in-flight deliveries completed")
	case <-timer.C:
		cancel()
		w.logger.Warn().
			Dur("grace", w.cfg.ShutdownGrace).
			Msg("shutdown grace period elapsed, unacknowledged deliveries are left to the broker")
	}
}

func (w *ConsumerWorker) stop(ctx context.Context) {
	w.setState(ctx, domain.WorkerStateStopping)

	if err := w.broker.Close(); err != nil {
		w.logger.Warn().Err(err).Msg("failed to close broker connection")
	}

	w.setState(ctx, domain.WorkerStateStopped)
	w.logger.Info().Msg("consumer worker stopped")
}

func (w *ConsumerWorker) handle(ctx context.Context, delivery queue.Delivery) {
	ctx, span := w.tracer.Start(ctx, "queue.process",
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("messaging.system", "rabbitmq"),
			attribute.String("messaging.message.id", delivery.MessageID),
			attribute.String("messaging.message.content_type", delivery.ContentType),
			attribute.Int64("messaging.rabbitmq.delivery_tag", int64(delivery.DeliveryTag)),
			attribute.Bool("messaging.rabbitmq.redelivered", delivery.Redelivered),
		),
	)
	defer span.End()

	start := time.Now()
	outcome := domain.OutcomeProcessed

	if err := w.process(ctx, delivery); err != nil {
		outcome = domain.OutcomeFailed

		procErr := &queue.ProcessingError{
			DeliveryTag: delivery.DeliveryTag,
			Redelivered: delivery.Redelivered,
			Err:         err,
		}

		span.RecordError(procErr)
		span.SetStatus(codes.Error, procErr.Error())

		w.logger.Error().
			Err(procErr).
			Uint64("delivery_tag", delivery.DeliveryTag).
			Str("message_id", delivery.MessageID).
			Bool("redelivered", delivery.Redelivered).
			Msg("failed to process delivery, requeueing")

		if delivery.Redelivered {
			w.logger.Warn().
				Uint64("delivery_tag", delivery.DeliveryTag).
				Str("message_id", delivery.MessageID).
				Msg("redelivered message failed again, it stays on the queue")
		}

		if err := delivery.Nack(true); err != nil {
			w.ackFailed(ctx, "nack", delivery, err)
		}
	} else {
		w.logger.Debug().
			Uint64("delivery_tag", delivery.DeliveryTag).
			Str("message_id", delivery.MessageID).
			Msg("delivery processed")

		if err := delivery.Ack(); err != nil {
			w.ackFailed(ctx, "ack", delivery, err)
		}
	}

	w.metrics.RecordDelivery(ctx, outcome, delivery.Redelivered, time.Since(start))
}

// process invokes the processor, a panic counts as a failure.
func (w *ConsumerWorker) process(ctx context.Context, delivery queue.Delivery) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("processor panicked: %v", r)
		}
	}()

	return w.processor.Process(ctx, delivery)
}

// ackFailed logs a lost acknowledgement. The broker redelivers the message
// once the channel is gone.
func (w *ConsumerWorker) ackFailed(ctx context.Context, operation string, delivery queue.Delivery, err error) {
	w.metrics.RecordAckFailure(ctx, operation)
	w.logger.Error().
		Err(err).
		Str("operation", operation).
		Uint64("delivery_tag", delivery.DeliveryTag).
		Str("message_id", delivery.MessageID).
		Msg("failed to acknowledge delivery")
}

func (w *ConsumerWorker) setState(ctx context.Context, state domain.WorkerState) {
	previous := domain.WorkerState(w.state.Swap(int32(state)))
	if previous == state {
		return
	}

	w.metrics.RecordWorkerState(ctx, state)
	w.logger.Info().
		Str("from", previous.String()).
		Str("to", state.String()).
		Msg("consumer worker state changed")
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
