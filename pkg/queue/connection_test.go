package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(dialer *fakeDialer, opts ...ConnectionOption) *ConnectionManager {
	opts = append(opts, withDialer(dialer.dial))

	return NewConnectionManager(Config{Host: "localhost", QueueName: "orders"}, opts...)
}

func TestConnectionManager_StartsUninitialized(t *testing.T) {
	t.Parallel()

	dialer := dialing(newFakeConnection(nil))
	manager := newTestManager(dialer)

	assert.Equal(t, StateUninitialized, manager.State())
	assert.False(t, manager.IsReady())
	assert.Equal(t, "orders", manager.QueueName())
	assert.EqualValues(t, 0, dialer.calls.Load())
}

func TestConnectionManager_EnsureReady(t *testing.T) {
	t.Parallel()

	conn := newFakeConnection(nil)
	dialer := dialing(conn)
	manager := newTestManager(dialer)

	ch, err := manager.EnsureReady(context.Background())
	require.NoError(t, err)
	require.NotNil(t, ch)

	assert.Equal(t, StateReady, manager.State())
	assert.Equal(t, []string{"orders"}, conn.channel.declared)

	again, err := manager.EnsureReady(context.Background())
	require.NoError(t, err)

	assert.Same(t, ch, again)
	assert.EqualValues(t, 1, dialer.calls.Load())
	assert.EqualValues(t, 1, manager.ConnectAttempts())
}

func TestConnectionManager_ConcurrentCallersDialOnce(t *testing.T) {
	t.Parallel()

	const callers = 32

	conn := newFakeConnection(nil)
	dialer := &fakeDialer{fn: func(int) (amqpConnection, error) {
		time.Sleep(20 * time.Millisecond)

		return conn, nil
	}}
	manager := newTestManager(dialer)

	start := make(chan struct{})
	channels := make([]*ChannelWrapper, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := range callers {
		wg.Go(func() {
			<-start
			channels[i], errs[i] = manager.EnsureReady(context.Background())
		})
	}

	close(start)
	wg.Wait()

	for i := range callers {
		require.NoError(t, errs[i])
		assert.Same(t, channels[0], channels[i])
	}

	assert.EqualValues(t, 1, dialer.calls.Load())
	assert.Equal(t, []string{"orders"}, conn.channel.declared)
	assert.Equal(t, StateReady, manager.State())
}

func TestConnectionManager_WaitersObserveFailedAttempt(t *testing.T) {
	t.Parallel()

	dialErr := errors.New("connection refused")
	entered := make(chan struct{})
	release := make(chan struct{})

	dialer := &fakeDialer{fn: func(call int) (amqpConnection, error) {
		if call == 1 {
			close(entered)
			<-release
		}

		return nil, dialErr
	}}
	manager := newTestManager(dialer)

	var wg sync.WaitGroup

	errs := make(chan error, 5)

	wg.Go(func() {
		_, err := manager.EnsureReady(context.Background())
		errs <- err
	})

	<-entered

	for range 4 {
		wg.Go(func() {
			_, err := manager.EnsureReady(context.Background())
			errs <- err
		})
	}

	// let the waiters queue up on the initialization lock
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.ErrorIs(t, err, dialErr)
	}

	assert.EqualValues(t, 1, dialer.calls.Load())
	assert.Equal(t, StateFailed, manager.State())
}

func TestConnectionManager_WaiterReconnectsAfterSucceededAttemptWasLost(t *testing.T) {
	t.Parallel()

	first := newFakeConnection(nil)
	second := newFakeConnection(nil)

	dialer := &fakeDialer{fn: func(call int) (amqpConnection, error) {
		if call == 1 {
			return first, nil
		}

		return second, nil
	}}
	manager := newTestManager(dialer)

	// hold the initialization lock so the caller queues up behind it
	manager.initLock <- struct{}{}

	result := make(chan error, 1)
	go func() {
		_, err := manager.EnsureReady(context.Background())
		result <- err
	}()

	time.Sleep(50 * time.Millisecond)

	ch, err := manager.connect(context.Background())
	require.NoError(t, err)

	manager.Invalidate(ch)
	require.Equal(t, StateFailed, manager.State())

	<-manager.initLock

	select {
	case err := <-result:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("EnsureReady did not return")
	}

	assert.EqualValues(t, 2, dialer.calls.Load())
	assert.Equal(t, StateReady, manager.State())
}

func TestConnectionManager_FailureSurfacesTransportError(t *testing.T) {
	t.Parallel()

	dialErr := errors.New("connection refused")
	conn := newFakeConnection(nil)

	dialer := &fakeDialer{fn: func(call int) (amqpConnection, error) {
		if call == 1 {
			return nil, dialErr
		}

		return conn, nil
	}}

	observer := &MockObserver{}
	observer.On("ObserveConnectAttempt", anyContext, false).Once()
	observer.On("ObserveConnectAttempt", anyContext, true).Once()

	manager := newTestManager(dialer, WithObserver(observer))

	_, err := manager.EnsureReady(context.Background())
	require.Error(t, err)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, "dial", transportErr.Op)
	assert.ErrorIs(t, err, dialErr)
	assert.True(t, IsTransportError(err))
	assert.Equal(t, StateFailed, manager.State())

	// no retry inside the manager, the next call makes a new attempt
	_, err = manager.EnsureReady(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 2, dialer.calls.Load())
	assert.Equal(t, StateReady, manager.State())
	observer.AssertExpectations(t)
}

func TestConnectionManager_OpenFailuresReleaseResources(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		prepare         func(conn *fakeConnection)
		op              string
		expectedClosing []string
	}{
		{
			name: "channel cannot be opened",
			prepare: func(conn *fakeConnection) {
				conn.channelErr = errors.New("channel limit reached")
			},
			op:              "open channel",
			expectedClosing: []string{"connection"},
		},
		{
			name: "queue cannot be declared",
			prepare: func(conn *fakeConnection) {
				conn.channel.declareErr = &amqp.Error{Code: amqp.PreconditionFailed, Reason: "inequivalent arg 'durable'"}
			},
			op:              "declare queue",
			expectedClosing: []string{"channel", "connection"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			log := &closeLog{}
			conn := newFakeConnection(log)
			tt.prepare(conn)

			manager := newTestManager(dialing(conn))

			_, err := manager.EnsureReady(context.Background())

			var transportErr *TransportError
			require.ErrorAs(t, err, &transportErr)
			assert.Equal(t, tt.op, transportErr.Op)
			assert.Equal(t, tt.expectedClosing, log.list())
			assert.Equal(t, StateFailed, manager.State())
		})
	}
}

func TestConnectionManager_ConnectionLossMovesToFailed(t *testing.T) {
	t.Parallel()

	first := newFakeConnection(nil)
	second := newFakeConnection(nil)

	dialer := &fakeDialer{fn: func(call int) (amqpConnection, error) {
		if call == 1 {
			return first, nil
		}

		return second, nil
	}}
	manager := newTestManager(dialer)

	ch, err := manager.EnsureReady(context.Background())
	require.NoError(t, err)

	first.drop(&amqp.Error{Code: amqp.ConnectionForced, Reason: "broker shutdown"})

	require.Eventually(t, func() bool {
		return manager.State() == StateFailed
	}, time.Second, 5*time.Millisecond)

	assert.True(t, ch.isClosed())

	reconnected, err := manager.EnsureReady(context.Background())
	require.NoError(t, err)

	assert.NotSame(t, ch, reconnected)
	assert.EqualValues(t, 2, dialer.calls.Load())
	assert.Equal(t, []string{"orders"}, second.channel.declared)
}

func TestConnectionManager_InvalidateIgnoresStaleChannel(t *testing.T) {
	t.Parallel()

	manager := newTestManager(dialing(newFakeConnection(nil)))

	ch, err := manager.EnsureReady(context.Background())
	require.NoError(t, err)

	manager.Invalidate(newChannelWrapper(newFakeChannel()))
	manager.Invalidate(nil)

	assert.Equal(t, StateReady, manager.State())
	assert.False(t, ch.isClosed())
}

func TestConnectionManager_EnsureReadyHonoursContext(t *testing.T) {
	t.Parallel()

	entered := make(chan struct{})
	release := make(chan struct{})

	dialer := &fakeDialer{fn: func(int) (amqpConnection, error) {
		close(entered)
		<-release

		return newFakeConnection(nil), nil
	}}
	manager := newTestManager(dialer)

	done := make(chan struct{})
	go func() {
		defer close(done)

		_, _ = manager.EnsureReady(context.Background())
	}()

	<-entered

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := manager.EnsureReady(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, IsTransportError(err))

	close(release)
	<-done
}

func TestConnectionManager_Close(t *testing.T) {
	t.Parallel()

	log := &closeLog{}
	conn := newFakeConnection(log)
	dialer := dialing(conn)
	manager := newTestManager(dialer)

	_, err := manager.EnsureReady(context.Background())
	require.NoError(t, err)

	assert.NoError(t, manager.Close())
	assert.NoError(t, manager.Close())

	assert.Equal(t, []string{"channel", "connection"}, log.list())
	assert.Equal(t, StateClosed, manager.State())

	_, err = manager.EnsureReady(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
	assert.EqualValues(t, 1, dialer.calls.Load())
}

func TestConnectionManager_CloseWhileConnecting(t *testing.T) {
	t.Parallel()

	entered := make(chan struct{})
	release := make(chan struct{})
	conn := newFakeConnection(nil)

	dialer := &fakeDialer{fn: func(int) (amqpConnection, error) {
		close(entered)
		<-release

		return conn, nil
	}}
	manager := newTestManager(dialer)

	errs := make(chan error, 1)
	go func() {
		_, err := manager.EnsureReady(context.Background())
		errs <- err
	}()

	<-entered
	require.NoError(t, manager.Close())
	close(release)

	assert.ErrorIs(t, <-errs, ErrClosed)
	assert.True(t, conn.IsClosed())
	assert.Equal(t, StateClosed, manager.State())
}

func TestConnectionState_String(t *testing.T) {
	t.Parallel()

	tests := map[ConnectionState]string{
		StateUninitialized:  "uninitialized",
		StateConnecting:     "connecting",
		StateReady:          "ready",
		StateFailed:         "failed",
		StateClosed:         "closed",
		ConnectionState(42): "unknown",
	}

	for state, expected := range tests {
		assert.Equal(t, expected, state.String())
	}
}
