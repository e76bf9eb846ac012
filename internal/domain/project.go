package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	ProjectCreated ProjectEventType = "project.created"
	ProjectUpdated ProjectEventType = "project.updated"
	ProjectDeleted ProjectEventType = "project.deleted"
)

type (
	ProjectEventType string

	// ProjectEvent is published by the project service after a successful
	// state change and consumed by the worker.
	ProjectEvent struct {
		EventID    uuid.UUID        `json:"event_id"`
		Type       ProjectEventType `json:"type"`
		ProjectID  string           `json:"project_id"`
		Name       string           `json:"name,omitempty"`
		OccurredAt time.Time        `json:"occurred_at"`
	}
)

func (t ProjectEventType) IsValid() bool {
	switch t {
	case ProjectCreated, ProjectUpdated, ProjectDeleted:
		return true
	default:
		return false
	}
}

// NewProjectEvent builds a validated event stamped with the current time.
func NewProjectEvent(eventType ProjectEventType, projectID, name string) (ProjectEvent, error) {
	event := ProjectEvent{
		EventID:    uuid.New(),
		Type:       eventType,
		ProjectID:  strings.TrimSpace(projectID),
		Name:       strings.TrimSpace(name),
		OccurredAt: time.Now().UTC(),
	}

	if err := event.Validate(); err != nil {
		return ProjectEvent{}, err
	}

	return event, nil
}

func (e ProjectEvent) Validate() error {
	if !e.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownEventType, e.Type)
	}

	if e.ProjectID == "" {
		return NewValidationError("project_id", "must not be empty")
	}

	if e.Type == ProjectCreated && e.Name == "" {
		return NewValidationError("name", "is required for project.created")
	}

	return nil
}
