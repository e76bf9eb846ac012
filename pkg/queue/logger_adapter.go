package queue

import (
	"time"

	"github.com/rs/zerolog"
)

// ZerologAdapter adapts a zerolog logger to the queue logger interface.
type ZerologAdapter struct {
	logger *zerolog.Logger
}

// NewZerologAdapter creates a new logger adapter
func NewZerologAdapter(logger *zerolog.Logger) *ZerologAdapter {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &ZerologAdapter{logger: logger}
}

func (l *ZerologAdapter) Debug() LogEvent {
	return &zerologEvent{event: l.logger.Debug()}
}

func (l *ZerologAdapter) Info() LogEvent {
	return &zerologEvent{event: l.logger.Info()}
}

func (l *ZerologAdapter) Warn() LogEvent {
	return &zerologEvent{event: l.logger.Warn()}
}

func (l *ZerologAdapter) Error() LogEvent {
	return &zerologEvent{event: l.logger.Error()}
}

// zerologEvent wraps a *zerolog.Event, a nil event (level disabled) is a no-op.
type zerologEvent struct {
	event *zerolog.Event
}

func (e *zerologEvent) Msg(msg string) {
	e.event.Msg(msg)
}

func (e *zerologEvent) Err(err error) LogEvent {
	e.event = e.event.Err(err)

	return e
}

func (e *zerologEvent) Str(key, value string) LogEvent {
	e.event = e.event.Str(key, value)

	return e
}

func (e *zerologEvent) Int(key string, value int) LogEvent {
	e.event = e.event.Int(key, value)

	return e
}

func (e *zerologEvent) Uint64(key string, value uint64) LogEvent {
	e.event = e.event.Uint64(key, value)

	return e
}

func (e *zerologEvent) Bool(key string, value bool) LogEvent {
	e.event = e.event.Bool(key, value)

	return e
}

func (e *zerologEvent) Dur(key string, value time.Duration) LogEvent {
	e.event = e.event.Dur(key, value)

	return e
}
