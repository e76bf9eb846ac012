package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProjectEvent(t *testing.T) {
	t.Parallel()

	event, err := NewProjectEvent(ProjectCreated, "  p1 ", " Apollo ")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, event.EventID)
	assert.Equal(t, ProjectCreated, event.Type)
	assert.Equal(t, "p1", event.ProjectID)
	assert.Equal(t, "Apollo", event.Name)
	assert.False(t, event.OccurredAt.IsZero())
	assert.Equal(t, "UTC", event.OccurredAt.Location().String())
}

func TestProjectEvent_Validate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		eventType ProjectEventType
		projectID string
		eventName string
		field     string
		unknown   bool
	}{
		{name: "unknown type", eventType: "project.archived", projectID: "p1", unknown: true},
		{name: "missing project id", eventType: ProjectUpdated, projectID: " ", field: "project_id"},
		{name: "created without name", eventType: ProjectCreated, projectID: "p1", field: "name"},
		{name: "deleted without name", eventType: ProjectDeleted, projectID: "p1"},
		{name: "updated with name", eventType: ProjectUpdated, projectID: "p1", eventName: "Apollo"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewProjectEvent(tc.eventType, tc.projectID, tc.eventName)

			switch {
			case tc.unknown:
				assert.ErrorIs(t, err, ErrUnknownEventType)
			case tc.field != "":
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tc.field, validationErr.Field)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestWorkerState(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		state    WorkerState
		name     string
		terminal bool
	}{
		{WorkerStateIdle, "idle", false},
		{WorkerStateConnecting, "connecting", false},
		{WorkerStateRetrying, "retrying", false},
		{WorkerStateSubscribed, "subscribed", false},
		{WorkerStateStopping, "stopping", false},
		{WorkerStateStopped, "stopped", true},
		{WorkerStateGivenUp, "given_up", true},
		{WorkerState(42), "unknown", false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.name, tc.state.String())
		assert.Equal(t, tc.terminal, tc.state.IsTerminal(), tc.name)
	}
}
