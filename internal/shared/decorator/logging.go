package decorator

import (
	"context"
	"time"

	"github.com/architeacher/svc-project-messaging/internal/infrastructure"
)

type commandLoggingDecorator[C any, R any] struct {
	base   CommandHandler[C, R]
	logger infrastructure.Logger
}

func (d commandLoggingDecorator[C, R]) Handle(ctx context.Context, cmd C) (result R, err error) {
	action := generateActionName(cmd)
	start := time.Now()

	d.logger.Debug().
		Str("command", action).
		Msg("executing command")

	defer func() {
		event := d.logger.Debug()
		if err != nil {
			event = d.logger.Error().Err(err)
		}

		event.
			Str("command", action).
			Dur("duration", time.Since(start)).
			Msg("command executed")
	}()

	return d.base.Handle(ctx, cmd)
}
