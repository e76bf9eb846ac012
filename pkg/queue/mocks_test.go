package queue

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/mock"
)

type MockamqpChannel struct {
	mock.Mock
}

func (m *MockamqpChannel) Close() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockamqpChannel) Cancel(consumer string, noWait bool) error {
	args := m.Called(consumer, noWait)
	return args.Error(0)
}

func (m *MockamqpChannel) Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error) {
	callArgs := m.Called(queue, consumer, autoAck, exclusive, noLocal, noWait, args)
	return callArgs.Get(0).(<-chan amqp.Delivery), callArgs.Error(1)
}

func (m *MockamqpChannel) NotifyClose(c chan *amqp.Error) chan *amqp.Error {
	m.Called(c)
	return c
}

func (m *MockamqpChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	callArgs := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return callArgs.Error(0)
}

func (m *MockamqpChannel) QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error) {
	callArgs := m.Called(name, durable, autoDelete, exclusive, noWait, args)
	return callArgs.Get(0).(amqp.Queue), callArgs.Error(1)
}

func (m *MockamqpChannel) Qos(prefetchCount, prefetchSize int, global bool) error {
	callArgs := m.Called(prefetchCount, prefetchSize, global)
	return callArgs.Error(0)
}

type MockAcknowledger struct {
	mock.Mock
}

func (m *MockAcknowledger) Ack(tag uint64, multiple bool) error {
	args := m.Called(tag, multiple)
	return args.Error(0)
}

func (m *MockAcknowledger) Nack(tag uint64, multiple, requeue bool) error {
	args := m.Called(tag, multiple, requeue)
	return args.Error(0)
}

func (m *MockAcknowledger) Reject(tag uint64, requeue bool) error {
	args := m.Called(tag, requeue)
	return args.Error(0)
}

type MockObserver struct {
	mock.Mock
}

func (m *MockObserver) ObserveConnectAttempt(ctx context.Context, success bool) {
	m.Called(ctx, success)
}

func (m *MockObserver) ObservePublish(ctx context.Context, contentType string, duration time.Duration, err error) {
	m.Called(ctx, contentType, duration, err)
}

// closeLog records the order in which fakes are closed.
type closeLog struct {
	mu     sync.Mutex
	events []string
}

func (l *closeLog) add(event string) {
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.events = append(l.events, event)
}

func (l *closeLog) list() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]string(nil), l.events...)
}

type publishedMessage struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

// fakeChannel flags overlapping publishes so tests can prove serialisation.
type fakeChannel struct {
	log *closeLog

	mu         sync.Mutex
	published  []publishedMessage
	declared   []string
	notify     chan *amqp.Error
	publishErr error
	declareErr error
	consumeErr error
	deliveries chan amqp.Delivery
	prefetch   int
	cancelled  []string

	inFlight   atomic.Int32
	overlapped atomic.Bool
	closed     atomic.Bool
}

func newFakeChannel() *fakeChannel {
	return &fakeChannel{deliveries: make(chan amqp.Delivery, 16)}
}

func (c *fakeChannel) Close() error {
	c.closed.Store(true)
	c.log.add("channel")

	return nil
}

func (c *fakeChannel) Cancel(consumer string, _ bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelled = append(c.cancelled, consumer)

	return nil
}

func (c *fakeChannel) Consume(_, _ string, _, _, _, _ bool, _ amqp.Table) (<-chan amqp.Delivery, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.consumeErr != nil {
		return nil, c.consumeErr
	}

	return c.deliveries, nil
}

func (c *fakeChannel) NotifyClose(receiver chan *amqp.Error) chan *amqp.Error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.notify = receiver

	return receiver
}

func (c *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if c.inFlight.Add(1) > 1 {
		c.overlapped.Store(true)
	}
	defer c.inFlight.Add(-1)

	runtime.Gosched()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.publishErr != nil {
		return c.publishErr
	}

	c.published = append(c.published, publishedMessage{exchange: exchange, key: key, msg: msg})

	return nil
}

func (c *fakeChannel) QueueDeclare(name string, _, _, _, _ bool, _ amqp.Table) (amqp.Queue, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.declareErr != nil {
		return amqp.Queue{}, c.declareErr
	}

	c.declared = append(c.declared, name)

	return amqp.Queue{Name: name}, nil
}

func (c *fakeChannel) Qos(prefetchCount, _ int, _ bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.prefetch = prefetchCount

	return nil
}

func (c *fakeChannel) messages() []publishedMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]publishedMessage(nil), c.published...)
}

type fakeConnection struct {
	log        *closeLog
	channel    *fakeChannel
	channelErr error

	mu     sync.Mutex
	notify chan *amqp.Error
	closed atomic.Bool
}

func (c *fakeConnection) Channel() (amqpChannel, error) {
	if c.channelErr != nil {
		return nil, c.channelErr
	}

	return c.channel, nil
}

func (c *fakeConnection) Close() error {
	c.closed.Store(true)
	c.log.add("connection")

	return nil
}

func (c *fakeConnection) IsClosed() bool {
	return c.closed.Load()
}

func (c *fakeConnection) NotifyClose(receiver chan *amqp.Error) chan *amqp.Error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.notify = receiver

	return receiver
}

// drop simulates the broker closing the connection.
func (c *fakeConnection) drop(reason *amqp.Error) {
	c.mu.Lock()
	receiver := c.notify
	c.mu.Unlock()

	c.closed.Store(true)
	receiver <- reason
}

type fakeDialer struct {
	calls atomic.Int32
	fn    func(call int) (amqpConnection, error)
}

func (d *fakeDialer) dial(_ string, _ amqp.Config) (amqpConnection, error) {
	return d.fn(int(d.calls.Add(1)))
}

func dialing(conn *fakeConnection) *fakeDialer {
	return &fakeDialer{fn: func(int) (amqpConnection, error) { return conn, nil }}
}

func newFakeConnection(log *closeLog) *fakeConnection {
	ch := newFakeChannel()
	ch.log = log

	return &fakeConnection{log: log, channel: ch}
}

var anyContext = mock.MatchedBy(func(context.Context) bool { return true })
