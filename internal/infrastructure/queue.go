package infrastructure

import (
	"fmt"

	"github.com/architeacher/svc-project-messaging/internal/config"
	"github.com/architeacher/svc-project-messaging/pkg/queue"
	"github.com/sony/gobreaker"
)

// NewConnectionManager builds the process-wide broker connection manager.
// Nothing is dialed until the first EnsureReady.
func NewConnectionManager(cfg config.ServiceConfig, logger Logger, observer queue.Observer) *queue.ConnectionManager {
	queueLogger := logger.Component("queue")

	return queue.NewConnectionManager(
		queueConfig(cfg),
		queue.WithLogger(queue.NewZerologAdapter(queueLogger.Logger)),
		queue.WithObserver(observer),
	)
}

// NewPublisher builds a publisher on top of manager, guarded by a circuit
// breaker when one is enabled.
func NewPublisher(cfg config.ServiceConfig, manager *queue.ConnectionManager, logger Logger, observer queue.Observer) *queue.Publisher {
	publisherLogger := logger.Component("publisher")

	opts := []queue.PublisherOption{
		queue.WithPublishingTimeout(cfg.Queue.PublishTimeout),
		queue.WithPublisherLogger(queue.NewZerologAdapter(publisherLogger.Logger)),
		queue.WithPublishObserver(observer),
	}

	if cfg.Publisher.CircuitBreaker.Enabled {
		opts = append(opts, queue.WithCircuitBreaker(NewCircuitBreaker("publisher", cfg.Publisher.CircuitBreaker, publisherLogger)))
	}

	return queue.NewPublisher(manager, opts...)
}

// NewCircuitBreaker trips after FailureThreshold consecutive failures.
func NewCircuitBreaker(name string, cfg config.CircuitBreakerConfig, logger Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !queue.IsTransportError(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
	})
}

func queueConfig(cfg config.ServiceConfig) queue.Config {
	return queue.Config{
		Username:       cfg.Queue.Username,
		Password:       cfg.Queue.Password,
		Host:           cfg.Queue.Host,
		Port:           cfg.Queue.Port,
		Vhost:          cfg.Queue.VirtualHost,
		QueueName:      cfg.Queue.QueueName,
		ConnectionName: fmt.Sprintf("%s@%s", cfg.AppConfig.ServiceName, cfg.AppConfig.ServiceVersion),
		ConnectTimeout: cfg.Queue.ConnectTimeout,
		Heartbeat:      cfg.Queue.Heartbeat,
	}
}
