package queue

import (
	"context"
	"errors"
	"sync/atomic"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Subscription is a running manual-ack consumer on the managed queue.
type Subscription interface {
	// Deliveries is closed when the consumer is cancelled or the channel dies.
	Deliveries() <-chan amqp.Delivery
	// Cancel stops the broker from pushing new deliveries.
	Cancel() error
	// Abandon discards the underlying channel after its stream closed unexpectedly.
	Abandon()
}

type subscription struct {
	manager    *ConnectionManager
	channel    *ChannelWrapper
	tag        string
	deliveries <-chan amqp.Delivery
	cancelled  atomic.Bool
}

// Subscribe makes sure the connection is ready, applies the prefetch limit and
// starts consuming the queue with manual acknowledgement.
func (m *ConnectionManager) Subscribe(ctx context.Context, consumerTag string, prefetch int) (Subscription, error) {
	ch, err := m.EnsureReady(ctx)
	if err != nil {
		return nil, err
	}

	if prefetch > 0 {
		if err := ch.Qos(prefetch); err != nil {
			m.Invalidate(ch)

			return nil, &TransportError{Op: "qos", Err: err}
		}
	}

	deliveries, err := ch.Consume(m.config.QueueName, consumerTag)
	if err != nil {
		m.Invalidate(ch)

		return nil, &TransportError{Op: "consume", Err: err}
	}

	m.logger.Info().
		Str("queue", m.config.QueueName).
		Str("consumer_tag", consumerTag).
		Int("prefetch", prefetch).
		Msg("consumer subscribed")

	return &subscription{
		manager:    m,
		channel:    ch,
		tag:        consumerTag,
		deliveries: deliveries,
	}, nil
}

func (s *subscription) Deliveries() <-chan amqp.Delivery {
	return s.deliveries
}

func (s *subscription) Cancel() error {
	if !s.cancelled.CompareAndSwap(false, true) {
		return nil
	}

	if err := s.channel.Cancel(s.tag); err != nil && !errors.Is(err, amqp.ErrClosed) {
		return &TransportError{Op: "cancel", Err: err}
	}

	return nil
}

func (s *subscription) Abandon() {
	if s.cancelled.Load() {
		return
	}

	s.manager.Invalidate(s.channel)
}
