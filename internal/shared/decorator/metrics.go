package decorator

import (
	"context"
	"fmt"
)

type commandMetricsDecorator[C any, R any] struct {
	base   CommandHandler[C, R]
	client MetricsClient
}

func (d commandMetricsDecorator[C, R]) Handle(ctx context.Context, cmd C) (result R, err error) {
	action := generateActionName(cmd)

	defer func() {
		if err == nil {
			d.client.Inc(fmt.Sprintf("commands.%s.success", action), 1)
		} else {
			d.client.Inc(fmt.Sprintf("commands.%s.failure", action), 1)
		}
	}()

	return d.base.Handle(ctx, cmd)
}
