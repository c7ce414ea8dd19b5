package allocation

import (
	"time"

	"venuely/internal/venues"

	"github.com/google/uuid"
)

// Request describes one event's venue requirements. Amenity, type and
// location preferences are soft: they narrow the candidate set when possible
// but never turn an otherwise satisfiable request into a failure.
type Request struct {
	EventID           uuid.UUID        `json:"event_id" validate:"required"`
	EventName         string           `json:"event_name" validate:"required,min=1,max=255"`
	StartTime         time.Time        `json:"start_time" validate:"required"`
	EndTime           time.Time        `json:"end_time" validate:"required,gtfield=StartTime"`
	AttendeeCount     int              `json:"attendee_count" validate:"required,min=1"`
	RequiredAmenities []string         `json:"required_amenities" validate:"omitempty,dive,min=1,max=100"`
	PreferredType     venues.VenueType `json:"preferred_venue_type" validate:"omitempty,oneof=AUDITORIUM CLASSROOM CONFERENCE_ROOM OUTDOOR BANQUET_HALL"`
	PreferredLocation string           `json:"preferred_location"`
	Notes             string           `json:"notes" validate:"max=1000"`
}

// Result is the outcome of a single allocation run. A failed allocation is a
// normal business outcome, not an error: Success is false and Message says
// which constraint could not be met.
type Result struct {
	Success   bool       `json:"success"`
	VenueID   *uuid.UUID `json:"venue_id,omitempty"`
	VenueName string     `json:"venue_name,omitempty"`
	Message   string     `json:"message"`
}

// AvailabilityQuery asks whether a single venue is free for a window.
type AvailabilityQuery struct {
	StartTime time.Time `form:"start_time" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	EndTime   time.Time `form:"end_time" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

// AvailabilityResult reports the answer along with any bookings that block
// the window, so callers can surface the conflict to users.
type AvailabilityResult struct {
	VenueID             uuid.UUID                `json:"venue_id"`
	VenueName           string                   `json:"venue_name"`
	StartTime           time.Time                `json:"start_time"`
	EndTime             time.Time                `json:"end_time"`
	Available           bool                     `json:"available"`
	ConflictingBookings []venues.BookingResponse `json:"conflicting_bookings,omitempty"`
}

func failure(message string) *Result {
	return &Result{Success: false, Message: message}
}

func success(venue *venues.Venue) *Result {
	id := venue.ID
	return &Result{
		Success:   true,
		VenueID:   &id,
		VenueName: venue.Name,
		Message:   "Venue allocated successfully",
	}
}
