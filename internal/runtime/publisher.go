package runtime

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/architeacher/svc-project-messaging/internal/usecases"
)

// PublishFunc runs against the publisher application. ctx is cancelled on
// SIGINT or SIGTERM.
type PublishFunc func(ctx context.Context, app *usecases.PublisherApplication) error

type PublisherCtx struct {
	deps *Dependencies

	shutdownChannel chan os.Signal

	publisherCtx      context.Context
	publisherStopFunc context.CancelFunc
}

func NewPublisher(opt ...PublisherOption) *PublisherCtx {
	pCtx := &PublisherCtx{
		shutdownChannel: make(chan os.Signal, 1),
	}

	for i := range opt {
		opt[i](pCtx)
	}

	return pCtx
}

// Run builds the publisher dependencies, hands them to fn and releases them
// once fn returns.
func (c *PublisherCtx) Run(fn PublishFunc) error {
	if err := c.build(); err != nil {
		return err
	}
	defer c.cleanup()

	c.shutdownHook()

	return fn(c.publisherCtx, c.deps.Apps.Publisher)
}

func (c *PublisherCtx) build() error {
	c.publisherCtx, c.publisherStopFunc = context.WithCancel(context.Background())

	deps, err := initializeDependencies(c.publisherCtx, WithPublisher())
	if err != nil {
		c.publisherStopFunc()

		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	c.deps = deps

	return nil
}

func (c *PublisherCtx) shutdownHook() {
	signal.Notify(c.shutdownChannel, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-c.shutdownChannel:
			c.deps.logger.Info().Msg("received shutdown signal")
			c.publisherStopFunc()
		case <-c.publisherCtx.Done():
		}
	}()
}

func (c *PublisherCtx) cleanup() {
	c.deps.logger.Debug().Msg("cleaning up resources...")

	c.publisherStopFunc()
	signal.Stop(c.shutdownChannel)

	if err := c.deps.Infra.Publisher.Close(); err != nil {
		c.deps.logger.Error().Err(err).Msg("failed to close publisher")
	}

	releaseCtx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()

	c.deps.release(releaseCtx)

	c.deps.logger.Debug().Msg("cleanup completed")
}
