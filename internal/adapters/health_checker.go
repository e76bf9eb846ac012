package adapters

import (
	"context"
	"time"

	"github.com/architeacher/svc-project-messaging/internal/adapters/http/mappers"
	"github.com/architeacher/svc-project-messaging/internal/domain"
	"github.com/architeacher/svc-project-messaging/internal/ports"
	"github.com/architeacher/svc-project-messaging/pkg/queue"
)

type (
	// BrokerState is the view of the connection manager the checker needs.
	BrokerState interface {
		State() queue.ConnectionState
	}

	// WorkerState is the view of the consumer worker the checker needs.
	WorkerState interface {
		State() domain.WorkerState
	}

	// HealthChecker derives health from in-memory state only, probes never
	// touch the broker.
	HealthChecker struct {
		broker    BrokerState
		worker    WorkerState
		startTime time.Time
		now       func() time.Time
	}
)

// NewHealthChecker creates a health checker. worker may be nil for processes
// that only publish.
func NewHealthChecker(broker BrokerState, worker WorkerState) ports.HealthChecker {
	return &HealthChecker{
		broker:    broker,
		worker:    worker,
		startTime: time.Now(),
		now:       time.Now,
	}
}

// CheckLiveness reports dead once the worker gave up, a restart is the only
// way back to consuming.
func (h *HealthChecker) CheckLiveness(_ context.Context) *domain.LivenessResult {
	overallStatus := domain.LivenessResponseStatusAlive
	if h.worker != nil && h.worker.State() == domain.WorkerStateGivenUp {
		overallStatus = domain.LivenessResponseStatusDead
	}

	return &domain.LivenessResult{
		OverallStatus: overallStatus,
		Uptime:        float32(h.now().Sub(h.startTime).Seconds()),
	}
}

func (h *HealthChecker) CheckReadiness(_ context.Context) *domain.ReadinessResult {
	brokerStatus := h.checkBroker()
	workerStatus := h.checkWorker()

	return &domain.ReadinessResult{
		OverallStatus: overallReadiness(brokerStatus, workerStatus),
		Broker:        brokerStatus,
		Worker:        workerStatus,
	}
}

func (h *HealthChecker) checkBroker() domain.DependencyStatus {
	start := h.now()
	state := h.broker.State()

	status := domain.DependencyStatus{
		Status:       mappers.ConnectionStateToDependencyStatus(state),
		State:        state.String(),
		ResponseTime: float32(h.now().Sub(start).Milliseconds()),
		LastChecked:  h.now(),
	}

	if status.Status == domain.DependencyCheckStatusUnhealthy {
		status.Error = "broker connection is " + state.String()
	}

	return status
}

func (h *HealthChecker) checkWorker() domain.DependencyStatus {
	if h.worker == nil {
		return domain.DependencyStatus{
			Status:      domain.DependencyCheckStatusHealthy,
			State:       "disabled",
			LastChecked: h.now(),
		}
	}

	state := h.worker.State()

	status := domain.DependencyStatus{
		Status:      mappers.WorkerStateToDependencyStatus(state),
		State:       state.String(),
		LastChecked: h.now(),
	}

	if status.Status == domain.DependencyCheckStatusUnhealthy {
		status.Error = "consumer worker is " + state.String()
	}

	return status
}

func overallReadiness(dependencies ...domain.DependencyStatus) domain.ReadinessResponseStatus {
	overall := domain.ReadinessResponseStatusReady

	for _, dependency := range dependencies {
		switch dependency.Status {
		case domain.DependencyCheckStatusUnhealthy:
			return domain.ReadinessResponseStatusNotReady
		case domain.DependencyCheckStatusDegraded:
			overall = domain.ReadinessResponseStatusDegraded
		}
	}

	return overall
}
