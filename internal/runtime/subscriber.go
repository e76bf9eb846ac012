package runtime

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const releaseTimeout = 5 * time.Second

type SubscriberCtx struct {
	deps *Dependencies

	shutdownChannel chan os.Signal

	workerCtx      context.Context
	workerStopFunc context.CancelFunc
	workerDone     chan error

	serverReady chan struct{}
}

func NewSubscriber(opt ...SubscriberOption) *SubscriberCtx {
	sCtx := &SubscriberCtx{
		shutdownChannel: make(chan os.Signal, 1),
	}

	for i := range opt {
		opt[i](sCtx)
	}

	return sCtx
}

func (c *SubscriberCtx) Run() {
	c.build()
	c.start()
	c.monitorConfigDump()
	c.shutdownHook()
	c.wait()
	c.shutdown()
}

// build initializes the worker, the connection manager and the ops server.
func (c *SubscriberCtx) build() {
	c.workerCtx, c.workerStopFunc = context.WithCancel(context.Background())

	deps, err := initializeDependencies(c.workerCtx, WithSubscriber(), WithOpsServer())
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	c.deps = deps
}

func (c *SubscriberCtx) start() {
	go func() {
		c.deps.logger.Info().
			Str("address", c.deps.Infra.OpsServer.Addr).
			Msg("ops server starting up")

		if c.serverReady != nil {
			c.serverReady <- struct{}{}
		}

		if err := c.deps.Infra.OpsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			c.deps.logger.Error().Err(err).Msg("ops server failed")
		}
	}()

	c.workerDone = make(chan error, 1)

	go func() {
		c.deps.logger.Info().
			Str("queue", c.deps.cfg.Queue.QueueName).
			Msg("starting consumer worker")

		c.workerDone <- c.deps.Workers.Consumer.Start(c.workerCtx)
	}()
}

func (c *SubscriberCtx) monitorConfigDump() {
	c.deps.configLoader.WatchDumpSignal(c.workerCtx)
}

func (c *SubscriberCtx) shutdownHook() {
	signal.Notify(c.shutdownChannel, syscall.SIGINT, syscall.SIGTERM)
}

// wait blocks until a termination signal. A worker that gave up does not end
// the process, it keeps reporting dead on the liveness probe until restarted.
func (c *SubscriberCtx) wait() {
	for {
		select {
		case <-c.shutdownChannel:
			c.deps.logger.Info().Msg("received shutdown signal")

			return
		case err := <-c.workerDone:
			c.workerDone = nil

			if err == nil {
				return
			}

			c.deps.logger.Error().
				Err(err).
				Str("worker_state", c.deps.Workers.Consumer.State().String()).
				Msg("consumer worker stopped, waiting for shutdown signal")
		}
	}
}

func (c *SubscriberCtx) shutdown() {
	defer signal.Stop(c.shutdownChannel)

	// Cancel context that the worker starts draining.
	c.workerStopFunc()

	timeout := c.deps.cfg.Worker.ShutdownGrace + c.deps.cfg.OpsServer.ShutdownTimeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	go func() {
		<-shutdownCtx.Done()

		if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
			c.deps.logger.Error().Msg("graceful shutdown timed out.. forcing exit.")
			os.Exit(1)
		}
	}()

	if c.workerDone != nil {
		if err := <-c.workerDone; err != nil {
			c.deps.logger.Error().Err(err).Msg("consumer worker stopped with error")
		}
	}

	c.cleanup(shutdownCtx)

	c.deps.logger.Info().Msg("consumer worker service stopped")
}

// WaitForOpsServer blocks until the ops server is about to listen.
// The subscriber has to be created with WithWaitingForOpsServer.
//
// Example:
//
//	sub := runtime.NewSubscriber(runtime.WithWaitingForOpsServer())
//	go func() {
//		sub.Run()
//	}()
//
//	sub.WaitForOpsServer()
func (c *SubscriberCtx) WaitForOpsServer() {
	if c.serverReady != nil {
		<-c.serverReady
		close(c.serverReady)
	}
}

func (c *SubscriberCtx) cleanup(shutdownCtx context.Context) {
	c.deps.logger.Info().Msg("cleaning up resources...")

	if err := c.deps.Infra.OpsServer.Shutdown(shutdownCtx); err != nil {
		c.deps.logger.Error().Err(err).Msg("unable to gracefully shutdown ops server")
	}

	releaseCtx, cancel := context.WithTimeout(shutdownCtx, releaseTimeout)
	defer cancel()

	c.deps.release(releaseCtx)

	c.deps.logger.Info().Msg("cleanup completed")
}
