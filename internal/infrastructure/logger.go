package infrastructure

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/architeacher/svc-project-messaging/internal/config"
	"github.com/rs/zerolog"
)

type Logger struct {
	*zerolog.Logger
}

// New builds the process logger from the logging configuration.
func New(cfg config.LoggingConfig) Logger {
	return newLogger(cfg, os.Stdout)
}

func newLogger(cfg config.LoggingConfig, out io.Writer) Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	writer := out
	if strings.EqualFold(cfg.Format, "console") {
		writer = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	return Logger{Logger: &logger}
}

// WithService stamps the service name and version on every event.
func (l Logger) WithService(name, version string) Logger {
	logger := l.With().
		Str("service", name).
		Str("version", version).
		Logger()

	return Logger{Logger: &logger}
}

// Component returns a child logger tagged with the component name.
func (l Logger) Component(name string) Logger {
	logger := l.With().Str("component", name).Logger()

	return Logger{Logger: &logger}
}

func NewTestLogger() Logger {
	logger := zerolog.Nop()

	return Logger{Logger: &logger}
}
