package queue

import (
	"context"
	"io"
	"sync"
	"sync/atomic"

	amqp "github.com/rabbitmq/amqp091-go"
)

// amqpChannel is used mainly to be able to generate mocks for the AMQP behavior.
type amqpChannel interface {
	io.Closer

	Cancel(consumer string, noWait bool) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	NotifyClose(c chan *amqp.Error) chan *amqp.Error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	Qos(prefetchCount, prefetchSize int, global bool) error
}

// ChannelWrapper is a wrapper around amqp091-go.Channel that serialises every
// write on the underlying channel behind a single mutex.
type ChannelWrapper struct {
	amqpChan amqpChannel

	mutex  *sync.Mutex
	closed atomic.Bool
}

func newChannelWrapper(ch amqpChannel) *ChannelWrapper {
	return &ChannelWrapper{
		amqpChan: ch,
		mutex:    &sync.Mutex{},
	}
}

// Close is a wrapper around amqp091-go.Channel.Close method, which closes a channel.
func (ch *ChannelWrapper) Close() error {
	defer ch.mutex.Unlock()
	ch.mutex.Lock()

	if ch.isClosed() {
		return amqp.ErrClosed
	}

	ch.closed.Store(true)

	return ch.amqpChan.Close()
}

// markClosed flags the wrapper as unusable without touching the broker, used
// once the broker already tore the channel down.
func (ch *ChannelWrapper) markClosed() {
	ch.closed.Store(true)
}

func (ch *ChannelWrapper) isClosed() bool {
	return ch.closed.Load()
}

func (ch *ChannelWrapper) queueDeclare(name string) (amqp.Queue, error) {
	ch.mutex.Lock()
	defer ch.mutex.Unlock()

	return ch.amqpChan.QueueDeclare(
		name,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
}

func (ch *ChannelWrapper) qos(prefetchCount int) error {
	ch.mutex.Lock()
	defer ch.mutex.Unlock()

	return ch.amqpChan.Qos(prefetchCount, 0, false)
}

func (ch *ChannelWrapper) publish(ctx context.Context, exchange, key string, msg amqp.Publishing) error {
	ch.mutex.Lock()
	defer ch.mutex.Unlock()

	if ch.isClosed() {
		return amqp.ErrClosed
	}

	return ch.amqpChan.PublishWithContext(ctx, exchange, key, false, false, msg)
}

func (ch *ChannelWrapper) consume(queue, consumer string) (<-chan amqp.Delivery, error) {
	ch.mutex.Lock()
	defer ch.mutex.Unlock()

	if ch.isClosed() {
		return nil, amqp.ErrClosed
	}

	return ch.amqpChan.Consume(queue, consumer, false, false, false, false, nil)
}

func (ch *ChannelWrapper) cancel(consumer string) error {
	ch.mutex.Lock()
	defer ch.mutex.Unlock()

	if ch.isClosed() {
		return amqp.ErrClosed
	}

	return ch.amqpChan.Cancel(consumer, false)
}

// Qos limits the number of unacknowledged deliveries the broker pushes to this channel.
func (ch *ChannelWrapper) Qos(prefetchCount int) error {
	return ch.qos(prefetchCount)
}

// Consume subscribes to the queue with manual acknowledgement.
func (ch *ChannelWrapper) Consume(queue, consumer string) (<-chan amqp.Delivery, error) {
	return ch.consume(queue, consumer)
}

// Cancel stops the broker from sending new deliveries to the consumer.
func (ch *ChannelWrapper) Cancel(consumer string) error {
	return ch.cancel(consumer)
}
