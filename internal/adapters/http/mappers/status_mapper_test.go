package mappers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/architeacher/svc-project-messaging/internal/domain"
	"github.com/architeacher/svc-project-messaging/pkg/queue"
)

func TestConnectionStateToDependencyStatus(t *testing.T) {
	t.Parallel()

	tests := map[queue.ConnectionState]domain.DependencyCheckStatus{
		queue.StateReady:         domain.DependencyCheckStatusHealthy,
		queue.StateUninitialized: domain.DependencyCheckStatusDegraded,
		queue.StateConnecting:    domain.DependencyCheckStatusDegraded,
		queue.StateFailed:        domain.DependencyCheckStatusUnhealthy,
		queue.StateClosed:        domain.DependencyCheckStatusUnhealthy,
	}

	for state, expected := range tests {
		assert.Equal(t, expected, ConnectionStateToDependencyStatus(state), state.String())
	}
}

func TestWorkerStateToDependencyStatus(t *testing.T) {
	t.Parallel()

	tests := map[domain.WorkerState]domain.DependencyCheckStatus{
		domain.WorkerStateSubscribed: domain.DependencyCheckStatusHealthy,
		domain.WorkerStateIdle:       domain.DependencyCheckStatusDegraded,
		domain.WorkerStateConnecting: domain.DependencyCheckStatusDegraded,
		domain.WorkerStateRetrying:   domain.DependencyCheckStatusDegraded,
		domain.WorkerStateStopping:   domain.DependencyCheckStatusUnhealthy,
		domain.WorkerStateStopped:    domain.DependencyCheckStatusUnhealthy,
		domain.WorkerStateGivenUp:    domain.DependencyCheckStatusUnhealthy,
	}

	for state, expected := range tests {
		assert.Equal(t, expected, WorkerStateToDependencyStatus(state), state.String())
	}
}

func TestStatusToHTTP(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusOK, LivenessStatusToHTTP(domain.LivenessResponseStatusAlive))
	assert.Equal(t, http.StatusServiceUnavailable, LivenessStatusToHTTP(domain.LivenessResponseStatusDead))
	assert.Equal(t, http.StatusOK, ReadinessStatusToHTTP(domain.ReadinessResponseStatusReady))
	assert.Equal(t, http.StatusOK, ReadinessStatusToHTTP(domain.ReadinessResponseStatusDegraded))
	assert.Equal(t, http.StatusServiceUnavailable, ReadinessStatusToHTTP(domain.ReadinessResponseStatusNotReady))
}
