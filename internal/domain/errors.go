package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedContentType = errors.New("unsupported content type")
	ErrUnknownEventType       = errors.New("unknown project event type")
)

type (
	// ValidationError describes an invalid field of a domain value.
	ValidationError struct {
		Field   string
		Message string
	}
)

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
