package adapters

import (
	"context"
	"time"

	"github.com/architeacher/svc-project-messaging/internal/infrastructure"
	"github.com/architeacher/svc-project-messaging/internal/shared/decorator"
	"github.com/architeacher/svc-project-messaging/pkg/queue"
)

var (
	_ queue.Observer          = (*MetricsAdapter)(nil)
	_ decorator.MetricsClient = (*MetricsAdapter)(nil)
)

// MetricsAdapter feeds broker layer outcomes and command counters into the
// service metrics.
type MetricsAdapter struct {
	metrics infrastructure.Metrics
}

func NewMetricsAdapter(metrics infrastructure.Metrics) *MetricsAdapter {
	return &MetricsAdapter{
		metrics: metrics,
	}
}

func (m *MetricsAdapter) ObserveConnectAttempt(ctx context.Context, success bool) {
	m.metrics.RecordConnectAttempt(ctx, success)
}

func (m *MetricsAdapter) ObservePublish(ctx context.Context, contentType string, duration time.Duration, err error) {
	m.metrics.RecordPublish(ctx, contentType, duration, err == nil)
}

func (m *MetricsAdapter) Inc(key string, value int) {
	m.metrics.RecordCommand(context.Background(), key, int64(value))
}
