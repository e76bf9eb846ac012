package infrastructure

import (
	"context"
	"net/http"
	"time"

	"github.com/architeacher/svc-project-messaging/internal/domain"
)

type NoOpMetrics struct{}

func (n *NoOpMetrics) RecordHTTPRequest(_ context.Context, _, _ string, _ int, _ time.Duration, _, _ int64) {
}

func (n *NoOpMetrics) RecordPublish(_ context.Context, _ string, _ time.Duration, _ bool) {
}

func (n *NoOpMetrics) RecordDelivery(_ context.Context, _ domain.ProcessingOutcome, _ bool, _ time.Duration) {
}

func (n *NoOpMetrics) RecordAckFailure(_ context.Context, _ string) {
}

func (n *NoOpMetrics) RecordConnectAttempt(_ context.Context, _ bool) {
}

func (n *NoOpMetrics) RecordWorkerState(_ context.Context, _ domain.WorkerState) {
}

func (n *NoOpMetrics) RecordCommand(_ context.Context, _ string, _ int64) {
}

func (n *NoOpMetrics) Handler() http.Handler {
	return http.NotFoundHandler()
}

func (n *NoOpMetrics) Shutdown(_ context.Context) error {
	return nil
}
