package venues

import "time"

type CreateVenueRequest struct {
	Name        string   `json:"name" binding:"required,min=3,max=255"`
	Location    string   `json:"location" binding:"required,min=2,max=255"`
	Capacity    int      `json:"capacity" binding:"required,min=1"`
	Type        string   `json:"type" binding:"required,oneof=AUDITORIUM CLASSROOM CONFERENCE_ROOM OUTDOOR BANQUET_HALL"`
	Description string   `json:"description" binding:"max=1000"`
	ImageURL    string   `json:"image_url" binding:"omitempty,url"`
	Amenities   []string `json:"amenities" binding:"omitempty,dive,min=1,max=100"`
}

type UpdateVenueRequest struct {
	Name               *string   `json:"name" binding:"omitempty,min=3,max=255"`
	Location           *string   `json:"location" binding:"omitempty,min=2,max=255"`
	Capacity           *int      `json:"capacity" binding:"omitempty,min=1"`
	Type               *string   `json:"type" binding:"omitempty,oneof=AUDITORIUM CLASSROOM CONFERENCE_ROOM OUTDOOR BANQUET_HALL"`
	Description        *string   `json:"description" binding:"omitempty,max=1000"`
	AvailabilityStatus *bool     `json:"availability_status"`
	ImageURL           *string   `json:"image_url" binding:"omitempty,url"`
	Amenities          *[]string `json:"amenities" binding:"omitempty,dive,min=1,max=100"`
}

type AvailabilitySearchRequest struct {
	StartTime         time.Time `json:"start_time" binding:"required"`
	EndTime           time.Time `json:"end_time" binding:"required,gtfield=StartTime"`
	MinCapacity       int       `json:"min_capacity" binding:"omitempty,min=1"`
	VenueType         string    `json:"venue_type" binding:"omitempty,oneof=AUDITORIUM CLASSROOM CONFERENCE_ROOM OUTDOOR BANQUET_HALL"`
	Location          string    `json:"location"`
	RequiredAmenities []string  `json:"required_amenities" binding:"omitempty,dive,min=1,max=100"`
}

type ScheduleQuery struct {
	Start string `form:"start"`
	End   string `form:"end"`
}
