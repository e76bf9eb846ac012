package queue

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConnected is returned when no ready channel is available.
	ErrNotConnected = errors.New("queue: not connected")
	// ErrClosed is returned once the connection manager has been closed.
	ErrClosed = errors.New("queue: connection manager closed")
	// ErrGivenUp marks a consumer that exhausted its connection attempts.
	ErrGivenUp = errors.New("queue: gave up connecting")
)

// TransportError describes a connect, channel or publish failure on the broker link.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("queue transport error: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// SerializationError is returned when an object cannot be encoded for publishing.
type SerializationError struct {
	Type string
	Err  error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("queue serialization error: cannot encode %s: %v", e.Type, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// ProcessingError wraps a failure reported by a delivery processor.
type ProcessingError struct {
	DeliveryTag uint64
	Redelivered bool
	Err         error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("queue processing error: delivery %d (redelivered=%t): %v", e.DeliveryTag, e.Redelivered, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// GiveUpError is terminal for a consumer: max connection attempts were exhausted.
type GiveUpError struct {
	Attempts int
	Err      error
}

func (e *GiveUpError) Error() string {
	return fmt.Sprintf("queue: gave up after %d connection attempts: %v", e.Attempts, e.Err)
}

func (e *GiveUpError) Unwrap() []error {
	return []error{ErrGivenUp, e.Err}
}

// IsTransportError reports whether err originates from the broker link.
func IsTransportError(err error) bool {
	var transportErr *TransportError

	return errors.As(err, &transportErr)
}
