package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type AllocationEventType string

const (
	EventVenueAllocated   AllocationEventType = "VENUE_ALLOCATED"
	EventAllocationFailed AllocationEventType = "ALLOCATION_FAILED"
	EventBookingCancelled AllocationEventType = "BOOKING_CANCELLED"
)

// AllocationEvent is the message published for every allocation decision so
// downstream consumers (event service, mailers) can react to venue changes.
type AllocationEvent struct {
	ID        uuid.UUID           `json:"id"`
	Type      AllocationEventType `json:"type"`
	EventID   uuid.UUID           `json:"event_id"`
	EventName string              `json:"event_name,omitempty"`
	VenueID   *uuid.UUID          `json:"venue_id,omitempty"`
	VenueName string              `json:"venue_name,omitempty"`
	StartTime *time.Time          `json:"start_time,omitempty"`
	EndTime   *time.Time          `json:"end_time,omitempty"`
	Message   string              `json:"message,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
}

// NewAllocationEvent creates an event with id and timestamp set.
func NewAllocationEvent(eventType AllocationEventType, eventID uuid.UUID) *AllocationEvent {
	return &AllocationEvent{
		ID:        uuid.New(),
		Type:      eventType,
		EventID:   eventID,
		CreatedAt: time.Now(),
	}
}

// ToJSON serializes the event for the wire.
func (e *AllocationEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// PartitionKey routes all events for one upstream event to one partition so
// consumers see its allocation history in order.
func (e *AllocationEvent) PartitionKey() string {
	return e.EventID.String()
}
