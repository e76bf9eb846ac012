package queue

import "time"

// Logger defines a simple logging interface to avoid circular dependencies
type Logger interface {
	Debug() LogEvent
	Info() LogEvent
	Warn() LogEvent
	Error() LogEvent
}

// LogEvent defines a simple log event interface
type LogEvent interface {
	Msg(string)
	Err(error) LogEvent
	Str(string, string) LogEvent
	Int(string, int) LogEvent
	Uint64(string, uint64) LogEvent
	Bool(string, bool) LogEvent
	Dur(string, time.Duration) LogEvent
}

type nopLogger struct{}

type nopLogEvent struct{}

// NopLogger discards everything, it is the default when no logger is configured.
func NopLogger() Logger {
	return nopLogger{}
}

func (nopLogger) Debug() LogEvent { return nopLogEvent{} }
func (nopLogger) Info() LogEvent  { return nopLogEvent{} }
func (nopLogger) Warn() LogEvent  { return nopLogEvent{} }
func (nopLogger) Error() LogEvent { return nopLogEvent{} }

func (nopLogEvent) Msg(string)                           {}
func (e nopLogEvent) Err(error) LogEvent                 { return e }
func (e nopLogEvent) Str(string, string) LogEvent        { return e }
func (e nopLogEvent) Int(string, int) LogEvent           { return e }
func (e nopLogEvent) Uint64(string, uint64) LogEvent     { return e }
func (e nopLogEvent) Bool(string, bool) LogEvent         { return e }
func (e nopLogEvent) Dur(string, time.Duration) LogEvent { return e }
