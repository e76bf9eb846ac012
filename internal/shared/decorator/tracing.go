package decorator

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	otelTrace "go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/architeacher/svc-project-messaging/internal/shared/decorator"

type commandTracingDecorator[C any, R any] struct {
	base   CommandHandler[C, R]
	tracer otelTrace.Tracer
}

func (d commandTracingDecorator[C, R]) Handle(ctx context.Context, cmd C) (R, error) {
	action := generateActionName(cmd)

	ctx, span := d.tracer.Start(ctx, "command."+action,
		otelTrace.WithAttributes(attribute.String("command.name", action)),
	)
	defer span.End()

	result, err := d.base.Handle(ctx, cmd)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return result, err
}
