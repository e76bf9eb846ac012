package queue

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ConnectionState is the lifecycle state of a ConnectionManager.
type ConnectionState int32

const (
	StateUninitialized ConnectionState = iota
	StateConnecting
	StateReady
	StateFailed
	StateClosed
)

func (s ConnectionState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateConnecting:
		return "connecting"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// amqpConnection is the subset of *amqp.Connection the manager relies on.
type amqpConnection interface {
	Channel() (amqpChannel, error)
	Close() error
	IsClosed() bool
	NotifyClose(receiver chan *amqp.Error) chan *amqp.Error
}

type dialFunc func(url string, cfg amqp.Config) (amqpConnection, error)

type connectionAdapter struct {
	*amqp.Connection
}

func (c *connectionAdapter) Channel() (amqpChannel, error) {
	ch, err := c.Connection.Channel()
	if err != nil {
		return nil, err
	}

	return ch, nil
}

func dialAMQP(url string, cfg amqp.Config) (amqpConnection, error) {
	conn, err := amqp.DialConfig(url, cfg)
	if err != nil {
		return nil, err
	}

	return &connectionAdapter{Connection: conn}, nil
}

// ConnectionManager owns the broker connection and its single channel.
//
// Initialization is lazy and guarded: the state flag is read lock-free on the
// hot path, and only the connect-and-declare sequence runs under initLock.
// Callers that queued behind an in-flight attempt observe its outcome instead
// of dialing again.
type ConnectionManager struct {
	config   Config
	dial     dialFunc
	logger   Logger
	observer Observer

	initLock   chan struct{}
	state      atomic.Int32
	generation atomic.Uint64
	attempts   atomic.Int64

	mutex   sync.RWMutex
	conn    amqpConnection
	channel *ChannelWrapper
	lastErr error
	// failedGeneration is the generation of the attempt that set lastErr.
	failedGeneration uint64

	done      chan struct{}
	closeOnce sync.Once
}

// NewConnectionManager creates a manager in the Uninitialized state. No I/O
// happens until the first EnsureReady call.
func NewConnectionManager(config Config, opts ...ConnectionOption) *ConnectionManager {
	options := defaultConnectionOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &ConnectionManager{
		config:   config.withDefaults(),
		dial:     options.dial,
		logger:   options.logger,
		observer: options.observer,
		initLock: make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// QueueName is the durable queue every publish and consume targets.
func (m *ConnectionManager) QueueName() string {
	return m.config.QueueName
}

// State returns the current connection state.
func (m *ConnectionManager) State() ConnectionState {
	return ConnectionState(m.state.Load())
}

// IsReady reports whether a usable channel is available without any I/O.
func (m *ConnectionManager) IsReady() bool {
	_, ok := m.readyChannel()

	return ok
}

// ConnectAttempts is the number of dial attempts made so far.
func (m *ConnectionManager) ConnectAttempts() int64 {
	return m.attempts.Load()
}

// EnsureReady returns the ready channel, connecting first when needed.
// Only one connect runs at a time, ctx bounds both the wait for the lock and
// the dial itself.
func (m *ConnectionManager) EnsureReady(ctx context.Context) (*ChannelWrapper, error) {
	if ch, ok := m.readyChannel(); ok {
		return ch, nil
	}

	if m.isClosed() {
		return nil, ErrClosed
	}

	seen := m.generation.Load()

	select {
	case m.initLock <- struct{}{}:
	case <-ctx.Done():
		return nil, &TransportError{Op: "await connection", Err: ctx.Err()}
	case <-m.done:
		return nil, ErrClosed
	}
	defer func() { <-m.initLock }()

	if ch, ok := m.readyChannel(); ok {
		return ch, nil
	}

	if m.isClosed() {
		return nil, ErrClosed
	}

	// an attempt finished while we were waiting and it failed
	if generation := m.generation.Load(); generation != seen {
		m.mutex.RLock()
		err, failedGeneration := m.lastErr, m.failedGeneration
		m.mutex.RUnlock()

		if err != nil && failedGeneration == generation {
			return nil, err
		}
	}

	return m.connect(ctx)
}

func (m *ConnectionManager) isClosed() bool {
	select {
	case <-m.done:
		return true
	default:
		return false
	}
}

// setState never leaves Closed.
func (m *ConnectionManager) setState(state ConnectionState) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.isClosed() {
		m.state.Store(int32(StateClosed))

		return
	}

	m.state.Store(int32(state))
}

func (m *ConnectionManager) readyChannel() (*ChannelWrapper, bool) {
	if m.State() != StateReady {
		return nil, false
	}

	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.channel == nil || m.channel.isClosed() {
		return nil, false
	}

	return m.channel, true
}

func (m *ConnectionManager) connect(ctx context.Context) (*ChannelWrapper, error) {
	m.setState(StateConnecting)
	attempt := m.attempts.Add(1)

	m.logger.Debug().
		Str("url", redactedURL(m.config)).
		Int("attempt", int(attempt)).
		Msg("connecting to RabbitMQ")

	conn, ch, err := m.open(ctx)

	defer m.generation.Add(1)

	if err != nil {
		m.mutex.Lock()
		m.lastErr = err
		m.failedGeneration = m.generation.Load() + 1
		m.mutex.Unlock()

		m.setState(StateFailed)
		m.observer.ObserveConnectAttempt(ctx, false)

		return nil, err
	}

	connClosed := conn.NotifyClose(make(chan *amqp.Error, 1))
	chanClosed := ch.amqpChan.NotifyClose(make(chan *amqp.Error, 1))

	m.mutex.Lock()
	if m.isClosed() {
		m.state.Store(int32(StateClosed))
		m.mutex.Unlock()

		_ = ch.Close()
		_ = conn.Close()

		return nil, ErrClosed
	}

	m.conn = conn
	m.channel = ch
	m.lastErr = nil
	m.state.Store(int32(StateReady))
	m.mutex.Unlock()

	go m.watch(ch, connClosed, chanClosed)

	m.observer.ObserveConnectAttempt(ctx, true)
	m.logger.Info().
		Str("queue", m.config.QueueName).
		Str("host", m.config.Host).
		Msg("connected to RabbitMQ")

	return ch, nil
}

// open dials, opens a channel and declares the durable queue.
func (m *ConnectionManager) open(ctx context.Context) (amqpConnection, *ChannelWrapper, error) {
	conn, err := m.dial(getURL(m.config), m.config.amqpConfig(ctx))
	if err != nil {
		return nil, nil, &TransportError{Op: "dial", Err: err}
	}

	amqpCh, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, nil, &TransportError{Op: "open channel", Err: err}
	}

	ch := newChannelWrapper(amqpCh)

	if _, err := ch.queueDeclare(m.config.QueueName); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, nil, &TransportError{Op: "declare queue", Err: err}
	}

	return conn, ch, nil
}

func (m *ConnectionManager) watch(ch *ChannelWrapper, connClosed, chanClosed chan *amqp.Error) {
	var reason *amqp.Error

	select {
	case reason = <-connClosed:
	case reason = <-chanClosed:
	case <-m.done:
		return
	}

	if reason != nil {
		m.logger.Warn().Err(reason).Msg("RabbitMQ connection lost")
	}

	m.Invalidate(ch)
}

// Invalidate discards ch if it is still the current channel and moves the
// manager to Failed, so the next EnsureReady reconnects.
func (m *ConnectionManager) Invalidate(ch *ChannelWrapper) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if ch == nil || m.channel != ch {
		return
	}

	ch.markClosed()

	if m.conn != nil && !m.conn.IsClosed() {
		if err := m.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			m.logger.Warn().Err(err).Msg("failed to close broken RabbitMQ connection")
		}
	}

	m.channel = nil
	m.conn = nil
	m.state.CompareAndSwap(int32(StateReady), int32(StateFailed))
}

// Close closes the channel then the connection. It is idempotent, close
// failures are logged and never returned.
func (m *ConnectionManager) Close() error {
	m.closeOnce.Do(func() {
		close(m.done)

		m.mutex.Lock()
		defer m.mutex.Unlock()

		m.state.Store(int32(StateClosed))

		if m.channel != nil {
			if err := m.channel.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
				m.logger.Warn().Err(err).Msg("failed to close RabbitMQ channel")
			}
		}

		if m.conn != nil && !m.conn.IsClosed() {
			if err := m.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
				m.logger.Warn().Err(err).Msg("failed to close RabbitMQ connection")
			}
		}

		m.channel = nil
		m.conn = nil

		m.logger.Info().Msg("RabbitMQ connection closed")
	})

	return nil
}
