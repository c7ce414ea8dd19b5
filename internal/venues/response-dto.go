package venues

import "time"

type VenueResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Location           string    `json:"location"`
	Capacity           int       `json:"capacity"`
	Type               string    `json:"type"`
	Description        string    `json:"description,omitempty"`
	AvailabilityStatus bool      `json:"availability_status"`
	ImageURL           string    `json:"image_url,omitempty"`
	Amenities          []string  `json:"amenities"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type BookingResponse struct {
	ID            string    `json:"id"`
	EventID       string    `json:"event_id"`
	EventName     string    `json:"event_name"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	AttendeeCount int       `json:"attendee_count"`
	Notes         string    `json:"notes,omitempty"`
}

type VenueScheduleResponse struct {
	VenueID   string            `json:"venue_id"`
	VenueName string            `json:"venue_name"`
	Bookings  []BookingResponse `json:"bookings"`
}

// ToResponse converts a Venue to its API representation
func (v *Venue) ToResponse() VenueResponse {
	amenities := make([]string, len(v.Amenities))
	for i, a := range v.Amenities {
		amenities[i] = a.Name
	}

	return VenueResponse{
		ID:                 v.ID.String(),
		Name:               v.Name,
		Location:           v.Location,
		Capacity:           v.Capacity,
		Type:               v.Type.String(),
		Description:        v.Description,
		AvailabilityStatus: v.AvailabilityStatus,
		ImageURL:           v.ImageURL,
		Amenities:          amenities,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

// ToResponse converts a Booking to its API representation
func (b *Booking) ToResponse() BookingResponse {
	return BookingResponse{
		ID:            b.ID.String(),
		EventID:       b.EventID.String(),
		EventName:     b.EventName,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		AttendeeCount: b.AttendeeCount,
		Notes:         b.Notes,
	}
}
