package mappers

import (
	"net/http"

	"github.com/architeacher/svc-project-messaging/internal/domain"
	"github.com/architeacher/svc-project-messaging/pkg/queue"
)

func ConnectionStateToDependencyStatus(state queue.ConnectionState) domain.DependencyCheckStatus {
	switch state {
	case queue.StateReady:
		return domain.DependencyCheckStatusHealthy
	case queue.StateUninitialized, queue.StateConnecting:
		return domain.DependencyCheckStatusDegraded
	default:
		return domain.DependencyCheckStatusUnhealthy
	}
}

func WorkerStateToDependencyStatus(state domain.WorkerState) domain.DependencyCheckStatus {
	switch state {
	case domain.WorkerStateSubscribed:
		return domain.DependencyCheckStatusHealthy
	case domain.WorkerStateIdle, domain.WorkerStateConnecting, domain.WorkerStateRetrying:
		return domain.DependencyCheckStatusDegraded
	default:
		return domain.DependencyCheckStatusUnhealthy
	}
}

func LivenessStatusToHTTP(status domain.LivenessResponseStatus) int {
	if status == domain.LivenessResponseStatusAlive {
		return http.StatusOK
	}

	return http.StatusServiceUnavailable
}

// ReadinessStatusToHTTP keeps a degraded instance in rotation.
func ReadinessStatusToHTTP(status domain.ReadinessResponseStatus) int {
	switch status {
	case domain.ReadinessResponseStatusReady, domain.ReadinessResponseStatusDegraded:
		return http.StatusOK
	default:
		return http.StatusServiceUnavailable
	}
}
