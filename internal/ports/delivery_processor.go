//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

import (
	"context"

	"github.com/architeacher/svc-project-messaging/pkg/queue"
)

//counterfeiter:generate -o ../mocks/delivery_processor.go . DeliveryProcessor

// DeliveryProcessor interprets one delivery. A nil error means processed,
// any error means failed and the delivery is requeued.
type DeliveryProcessor interface {
	Process(ctx context.Context, delivery queue.Delivery) error
}

// DeliveryProcessorFunc adapts a plain function to DeliveryProcessor.
type DeliveryProcessorFunc func(ctx context.Context, delivery queue.Delivery) error

func (f DeliveryProcessorFunc) Process(ctx context.Context, delivery queue.Delivery) error {
	return f(ctx, delivery)
}
