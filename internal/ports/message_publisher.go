//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

import "context"

//counterfeiter:generate -o ../mocks/message_publisher.go . MessagePublisher

// MessagePublisher is what domain services call after a successful mutation.
type MessagePublisher interface {
	PublishText(ctx context.Context, message string) error
	PublishObject(ctx context.Context, obj any) error
	Close() error
}
