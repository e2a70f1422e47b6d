package hook

import (
	"time"

	"github.com/google/uuid"
)

// Event is the envelope delivered to observers.
type Event struct {
	ID        string    `json:"id"`         // Unique identifier for the event
	Name      string    `json:"name"`       // Extension point name (e.g., "tag.registered")
	Payload   any       `json:"payload"`    // Event data, defined by the emitting package
	CreatedAt time.Time `json:"created_at"` // When the event was emitted
}

// NewEvent creates an Event with an auto-generated ID and timestamp.
func NewEvent(name string, payload any) Event {
	return Event{
		ID:        uuid.New().String(),
		Name:      name,
		Payload:   payload,
		CreatedAt: time.Now(),
	}
}
