package venues

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// VenueType enumerates the supported venue categories.
type VenueType string

const (
	TypeAuditorium     VenueType = "AUDITORIUM"
	TypeClassroom      VenueType = "CLASSROOM"
	TypeConferenceRoom VenueType = "CONFERENCE_ROOM"
	TypeOutdoor        VenueType = "OUTDOOR"
	TypeBanquetHall    VenueType = "BANQUET_HALL"
)

// IsValid checks if the venue type is one of the supported categories.
func (t VenueType) IsValid() bool {
	switch t {
	case TypeAuditorium, TypeClassroom, TypeConferenceRoom, TypeOutdoor, TypeBanquetHall:
		return true
	}
	return false
}

func (t VenueType) String() string {
	return string(t)
}

// Venue is a physical space that can host events. AvailabilityStatus is an
// administrative flag independent of bookings: a venue with it unset is never
// allocatable even when its calendar is empty.
type Venue struct {
	ID                 uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name               string    `gorm:"not null" json:"name"`
	Location           string    `gorm:"not null" json:"location"`
	Capacity           int       `gorm:"not null" json:"capacity"`
	Type               VenueType `gorm:"type:varchar(30);not null" json:"type"`
	Description        string    `json:"description,omitempty"`
	AvailabilityStatus bool      `gorm:"not null;default:true" json:"availability_status"`
	ImageURL           string    `json:"image_url,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	// Relationships
	Amenities []Amenity `json:"amenities,omitempty" gorm:"many2many:venue_amenity_mappings;"`
	Bookings  []Booking `json:"bookings,omitempty" gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE;"`
}

// Amenity is a named venue feature (projector, wifi, ...). Names are unique
// case-insensitively; creation goes through the repository's find-or-create
// so lookups stay canonical.
type Amenity struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Description string    `json:"description,omitempty"`
}

// Booking reserves a venue for an event over [StartTime, EndTime). A venue's
// bookings fully determine its occupied intervals.
type Booking struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	VenueID       uuid.UUID `gorm:"type:uuid;index;not null" json:"venue_id"`
	EventID       uuid.UUID `gorm:"type:uuid;index;not null" json:"event_id"`
	EventName     string    `gorm:"not null" json:"event_name"`
	StartTime     time.Time `gorm:"not null" json:"start_time"`
	EndTime       time.Time `gorm:"not null" json:"end_time"`
	AttendeeCount int       `gorm:"not null" json:"attendee_count"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Venue *Venue `json:"venue,omitempty" gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE;"`
}

// TableName sets the table name for Venue
func (Venue) TableName() string {
	return "venues"
}

// TableName sets the table name for Amenity
func (Amenity) TableName() string {
	return "venue_amenities"
}

// TableName sets the table name for Booking
func (Booking) TableName() string {
	return "venue_bookings"
}

// AmenityNames returns the venue's amenity names lower-cased for
// case-insensitive matching.
func (v *Venue) AmenityNames() []string {
	names := make([]string, len(v.Amenities))
	for i, a := range v.Amenities {
		names[i] = strings.ToLower(a.Name)
	}
	return names
}

// HasAmenities checks whether the venue's amenity set covers every required
// name, matched case-insensitively.
func (v *Venue) HasAmenities(required []string) bool {
	have := make(map[string]bool, len(v.Amenities))
	for _, a := range v.Amenities {
		have[strings.ToLower(a.Name)] = true
	}
	for _, name := range required {
		if !have[strings.ToLower(name)] {
			return false
		}
	}
	return true
}
