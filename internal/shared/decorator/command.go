package decorator

import (
	"context"
	"fmt"
	"strings"

	"github.com/architeacher/svc-project-messaging/internal/infrastructure"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	CommandHandler[C any, R any] interface {
		Handle(ctx context.Context, cmd C) (R, error)
	}

	MetricsClient interface {
		Inc(key string, value int)
	}
)

// ApplyCommandDecorators wraps handler with logging, metrics and tracing, in
// that order from the outside in.
func ApplyCommandDecorators[C any, R any](
	handler CommandHandler[C, R],
	logger infrastructure.Logger,
	tracerProvider otelTrace.TracerProvider,
	metricsClient MetricsClient,
) CommandHandler[C, R] {
	return commandLoggingDecorator[C, R]{
		base: commandMetricsDecorator[C, R]{
			base: commandTracingDecorator[C, R]{
				base:   handler,
				tracer: tracerProvider.Tracer(tracerName),
			},
			client: metricsClient,
		},
		logger: logger,
	}
}

func generateActionName(handler any) string {
	name := fmt.Sprintf("%T", handler)
	if _, after, found := strings.Cut(name, "."); found {
		name = after
	}

	return strings.TrimSuffix(name, "Command")
}
