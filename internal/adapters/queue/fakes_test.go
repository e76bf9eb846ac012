package queue

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/architeacher/svc-project-messaging/pkg/queue"
)

var errBrokerDown = errors.New("dial tcp: connection refused")

type fakeSubscription struct {
	deliveries chan amqp.Delivery
	closeOnce  sync.Once
	cancelled  atomic.Int32
	abandoned  atomic.Int32
}

func newFakeSubscription() *fakeSubscription {
	return &fakeSubscription{
		deliveries: make(chan amqp.Delivery, 16),
	}
}

func (s *fakeSubscription) Deliveries() <-chan amqp.Delivery {
	return s.deliveries
}

func (s *fakeSubscription) Cancel() error {
	s.cancelled.Add(1)
	s.closeStream()

	return nil
}

func (s *fakeSubscription) Abandon() {
	s.abandoned.Add(1)
}

// drop simulates the broker closing the channel under the consumer.
func (s *fakeSubscription) drop() {
	s.closeStream()
}

func (s *fakeSubscription) closeStream() {
	s.closeOnce.Do(func() {
		close(s.deliveries)
	})
}

// fakeBroker fails the first failures subscriptions, then hands out fresh
// subscriptions.
type fakeBroker struct {
	mu            sync.Mutex
	failures      int
	calls         int
	closed        atomic.Int32
	subscriptions []*fakeSubscription
	subscribed    chan *fakeSubscription
}

func newFakeBroker(failures int) *fakeBroker {
	return &fakeBroker{
		failures:   failures,
		subscribed: make(chan *fakeSubscription, 8),
	}
}

func (b *fakeBroker) Subscribe(_ context.Context, _ string, _ int) (queue.Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.calls++
	if b.calls <= b.failures {
		return nil, &queue.TransportError{Op: "dial", Err: errBrokerDown}
	}

	sub := newFakeSubscription()
	b.subscriptions = append(b.subscriptions, sub)
	b.subscribed <- sub

	return sub, nil
}

func (b *fakeBroker) Close() error {
	b.closed.Add(1)

	return nil
}

func (b *fakeBroker) Calls() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.calls
}

type ackRecord struct {
	tag     uint64
	ack     bool
	requeue bool
}

type fakeAcknowledger struct {
	mu      sync.Mutex
	records []ackRecord
	ackErr  error
}

func (a *fakeAcknowledger) Ack(tag uint64, _ bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.records = append(a.records, ackRecord{tag: tag, ack: true})

	return a.ackErr
}

func (a *fakeAcknowledger) Nack(tag uint64, _ bool, requeue bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.records = append(a.records, ackRecord{tag: tag, requeue: requeue})

	return nil
}

func (a *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}

func (a *fakeAcknowledger) Records() []ackRecord {
	a.mu.Lock()
	defer a.mu.Unlock()

	return append([]ackRecord(nil), a.records...)
}

func (a *fakeAcknowledger) Count(ack bool) int {
	count := 0
	for _, record := range a.Records() {
		if record.ack == ack {
			count++
		}
	}

	return count
}

// recordingSleeper returns immediately and keeps the requested delays.
type recordingSleeper struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (s *recordingSleeper) Sleep(ctx context.Context, d time.Duration) error {
	s.mu.Lock()
	s.delays = append(s.delays, d)
	s.mu.Unlock()

	return ctx.Err()
}

func (s *recordingSleeper) Delays() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]time.Duration(nil), s.delays...)
}

func newDelivery(ack amqp.Acknowledger, tag uint64, contentType, body string, redelivered bool) amqp.Delivery {
	return amqp.Delivery{
		Acknowledger: ack,
		DeliveryTag:  tag,
		ContentType:  contentType,
		Body:         []byte(body),
		Redelivered:  redelivered,
		MessageId:    "msg-" + body,
		Timestamp:    time.Unix(1700000000, 0).UTC(),
	}
}
