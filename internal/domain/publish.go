package domain

import (
	"time"

	"github.com/google/uuid"
)

// PublishResult describes a message handed to the broker.
type PublishResult struct {
	EventID     uuid.UUID `json:"event_id,omitempty"`
	ContentType string    `json:"content_type"`
	PublishedAt time.Time `json:"published_at"`
}
