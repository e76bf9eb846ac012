package queue

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
)

// Observer receives connection and publish outcomes, typically to feed metrics.
type Observer interface {
	ObserveConnectAttempt(ctx context.Context, success bool)
	ObservePublish(ctx context.Context, contentType string, duration time.Duration, err error)
}

type nopObserver struct{}

func (nopObserver) ObserveConnectAttempt(context.Context, bool)                {}
func (nopObserver) ObservePublish(context.Context, string, time.Duration, error) {}

type connectionOptions struct {
	dial     dialFunc
	logger   Logger
	observer Observer
}

type ConnectionOption func(options *connectionOptions)

// WithLogger returns a ConnectionOption which sets the logger when a connection is created.
func WithLogger(l Logger) ConnectionOption {
	return func(o *connectionOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithObserver returns a ConnectionOption which reports every connect attempt.
func WithObserver(observer Observer) ConnectionOption {
	return func(o *connectionOptions) {
		if observer != nil {
			o.observer = observer
		}
	}
}

func withDialer(dial dialFunc) ConnectionOption {
	return func(o *connectionOptions) {
		o.dial = dial
	}
}

func defaultConnectionOptions() connectionOptions {
	return connectionOptions{
		dial:     dialAMQP,
		logger:   NopLogger(),
		observer: nopObserver{},
	}
}

// publisherOptions configure a NewPublisher call. publisherOptions are set by the PublisherOption
// values passed to NewPublisher.
type publisherOptions struct {
	timeout  time.Duration
	breaker  *gobreaker.CircuitBreaker
	logger   Logger
	observer Observer
	now      func() time.Time
}

type PublisherOption func(options *publisherOptions)

const (
	publishingTimeout = 3 * time.Second
)

// WithPublishingTimeout returns a PublisherOption which sets the timeout used when
// publishing the message, connecting included.
func WithPublishingTimeout(d time.Duration) PublisherOption {
	return func(o *publisherOptions) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithCircuitBreaker returns a PublisherOption which guards every send with cb.
func WithCircuitBreaker(cb *gobreaker.CircuitBreaker) PublisherOption {
	return func(o *publisherOptions) {
		o.breaker = cb
	}
}

// WithPublisherLogger returns a PublisherOption which sets the publisher logger.
func WithPublisherLogger(l Logger) PublisherOption {
	return func(o *publisherOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithPublishObserver returns a PublisherOption which reports every publish outcome.
func WithPublishObserver(observer Observer) PublisherOption {
	return func(o *publisherOptions) {
		if observer != nil {
			o.observer = observer
		}
	}
}

func withClock(now func() time.Time) PublisherOption {
	return func(o *publisherOptions) {
		o.now = now
	}
}

func defaultPublisherOptions() publisherOptions {
	return publisherOptions{
		timeout:  publishingTimeout,
		logger:   NopLogger(),
		observer: nopObserver{},
		now:      time.Now,
	}
}
