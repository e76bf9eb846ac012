// Package queue provides the RabbitMQ layer of the service: a lazily
// initialised connection, a publisher for text and JSON messages, and a
// manual-ack subscription used by the consumer worker.
//
// # Overview
//
// Everything goes through one durable queue reached via the default exchange,
// the queue name doubles as the routing key. The queue is declared (durable,
// non-exclusive, not auto-deleted) every time a connection is established,
// before anything is published or consumed on it.
//
// # Connection Management
//
// ConnectionManager owns the single connection and channel. EnsureReady
// returns immediately when the channel is ready. Otherwise it takes the
// initialization lock, re-checks the state and connects. Concurrent callers
// wait on the lock and reuse the outcome of the attempt in flight, so K
// concurrent callers produce a single dial.
//
// The manager never retries on its own. A failed attempt leaves it in the
// Failed state and the next EnsureReady tries again. A broker-side close moves
// it to Failed as well.
//
//	manager := queue.NewConnectionManager(queue.Config{
//		Username:  "guest",
//		Password:  "guest",
//		Host:      "localhost",
//		QueueName: "orders",
//	}, queue.WithLogger(queue.NewZerologAdapter(&logger)))
//	defer manager.Close()
//
// # Publishing
//
// Messages are persistent, stamped with a second-precision UTC timestamp and
// a UUID message id:
//
//	publisher := queue.NewPublisher(manager, queue.WithPublishingTimeout(3*time.Second))
//
//	if err := publisher.PublishText(ctx, "hello"); err != nil {
//		var transportErr *queue.TransportError
//		if errors.As(err, &transportErr) {
//			// broker unreachable, the caller decides whether to retry
//		}
//	}
//
//	err := publisher.PublishObject(ctx, map[string]string{"id": "p1"})
//
// Publish calls may come from many goroutines, writes on the shared channel
// are serialised.
//
// # Consuming
//
// Subscribe applies the prefetch limit and starts a consumer with manual
// acknowledgement. Each amqp.Delivery is converted with NewDelivery and must
// be acknowledged with Ack or Nack:
//
//	sub, err := manager.Subscribe(ctx, "worker-1", 1)
//	for d := range sub.Deliveries() {
//		delivery := queue.NewDelivery(d)
//		order, err := queue.Decode[Order](delivery)
//		...
//	}
//
// Retry policy for the long-lived consume path lives with the caller, see the
// consumer worker.
//
// # Logging Integration
//
// The package logs through the small Logger interface. NewZerologAdapter
// bridges a zerolog logger, NopLogger is used when none is configured.
package queue
