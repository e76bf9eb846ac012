package queue

import (
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ContentTypeText = "text/plain"
	ContentTypeJSON = "application/json"
)

// OutboundMessage is built per publish call and discarded once sent.
type OutboundMessage struct {
	Body        []byte
	ContentType string
	Persistent  bool
	// Timestamp has second precision, it travels as a Unix timestamp.
	Timestamp time.Time
	MessageID string
}

func (m OutboundMessage) publishing() amqp.Publishing {
	mode := amqp.Transient
	if m.Persistent {
		mode = amqp.Persistent
	}

	return amqp.Publishing{
		ContentType:  m.ContentType,
		DeliveryMode: mode,
		Timestamp:    m.Timestamp,
		MessageId:    m.MessageID,
		Body:         m.Body,
	}
}

// Delivery is a message received from the queue. It must be acknowledged or
// negatively acknowledged exactly once.
type Delivery struct {
	Body        []byte
	ContentType string
	DeliveryTag uint64
	Redelivered bool
	MessageID   string
	Timestamp   time.Time

	acknowledger amqp.Acknowledger
}

// NewDelivery converts a broker delivery, keeping its acknowledger.
func NewDelivery(d amqp.Delivery) Delivery {
	return Delivery{
		Body:         d.Body,
		ContentType:  d.ContentType,
		DeliveryTag:  d.DeliveryTag,
		Redelivered:  d.Redelivered,
		MessageID:    d.MessageId,
		Timestamp:    d.Timestamp,
		acknowledger: d.Acknowledger,
	}
}

// Ack removes the delivery from the broker's unacknowledged set.
func (d Delivery) Ack() error {
	if d.acknowledger == nil {
		return ErrNotConnected
	}

	return d.acknowledger.Ack(d.DeliveryTag, false)
}

// Nack negatively acknowledges the delivery, requeue puts it back on the queue.
func (d Delivery) Nack(requeue bool) error {
	if d.acknowledger == nil {
		return ErrNotConnected
	}

	return d.acknowledger.Nack(d.DeliveryTag, false, requeue)
}

// Decode parses a JSON delivery body into a T.
func Decode[T any](d Delivery) (T, error) {
	var target T

	if err := json.Unmarshal(d.Body, &target); err != nil {
		return target, fmt.Errorf("could not decode delivery %d: %w", d.DeliveryTag, err)
	}

	return target, nil
}
