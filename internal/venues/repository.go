package venues

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository interface for venue catalog operations
type Repository interface {
	// Venues
	CreateVenue(ctx context.Context, venue *Venue) error
	GetVenueByID(ctx context.Context, id uuid.UUID) (*Venue, error)
	GetVenues(ctx context.Context, filters VenueFilters) ([]Venue, error)
	UpdateVenue(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	ReplaceVenueAmenities(ctx context.Context, venue *Venue, amenities []Amenity) error
	DeleteVenue(ctx context.Context, id uuid.UUID) error

	// Constraint queries used by the allocation engine
	ListAllocatableVenues(ctx context.Context, minCapacity int) ([]Venue, error)
	FindAvailable(ctx context.Context, start, end time.Time, minCapacity int) ([]Venue, error)

	// Amenities
	FindOrCreateAmenity(ctx context.Context, name string) (*Amenity, error)

	// Bookings
	CreateBooking(ctx context.Context, booking *Booking) error
	GetBookingsByVenueID(ctx context.Context, venueID uuid.UUID) ([]Booking, error)
	GetBookingsByEventID(ctx context.Context, eventID uuid.UUID) ([]Booking, error)
	GetScheduleBookings(ctx context.Context, venueID uuid.UUID, from, to time.Time) ([]Booking, error)
	FindConflictingBookings(ctx context.Context, venueID uuid.UUID, start, end time.Time) ([]Booking, error)
	DeleteBookings(ctx context.Context, bookings []Booking) error

	// InTransaction runs fn against a repository bound to a single database
	// transaction; fn's writes commit or roll back together.
	InTransaction(ctx context.Context, fn func(Repository) error) error
}

// repository implements Repository over GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new venue catalog repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ============= VENUES =============

func (r *repository) CreateVenue(ctx context.Context, venue *Venue) error {
	return r.db.WithContext(ctx).Create(venue).Error
}

func (r *repository) GetVenueByID(ctx context.Context, id uuid.UUID) (*Venue, error) {
	var venue Venue
	err := r.db.WithContext(ctx).
		Preload("Amenities").
		First(&venue, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *repository) GetVenues(ctx context.Context, filters VenueFilters) ([]Venue, error) {
	var venues []Venue

	query := r.db.WithContext(ctx).Model(&Venue{}).Preload("Amenities")

	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}
	if filters.Location != "" {
		query = query.Where("location ILIKE ?", fmt.Sprintf("%%%s%%", filters.Location))
	}
	if filters.MinCapacity > 0 {
		query = query.Where("capacity >= ?", filters.MinCapacity)
	}
	if filters.AvailableOnly {
		query = query.Where("availability_status = true")
	}

	err := query.Order("name ASC").Find(&venues).Error
	return venues, err
}

func (r *repository) UpdateVenue(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&Venue{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) ReplaceVenueAmenities(ctx context.Context, venue *Venue, amenities []Amenity) error {
	return r.db.WithContext(ctx).Model(venue).Association("Amenities").Replace(amenities)
}

func (r *repository) DeleteVenue(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Select("Bookings").Delete(&Venue{ID: id}).Error
}

// ListAllocatableVenues returns available venues with at least minCapacity
// seats, locking the matched rows for the enclosing transaction. Concurrent
// allocations competing for the same venues serialize on these locks, which
// closes the gap between the conflict check and the booking insert.
func (r *repository) ListAllocatableVenues(ctx context.Context, minCapacity int) ([]Venue, error) {
	var venues []Venue

	err := r.db.WithContext(ctx).
		Preload("Amenities").
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("capacity >= ?", minCapacity).
		Where("availability_status = true").
		Order("id ASC"). // ascending id keeps allocation tie-breaking deterministic
		Find(&venues).Error
	return venues, err
}

// FindAvailable returns available venues with at least minCapacity seats and
// no booking overlapping [start, end).
func (r *repository) FindAvailable(ctx context.Context, start, end time.Time, minCapacity int) ([]Venue, error) {
	var venues []Venue

	err := r.db.WithContext(ctx).
		Preload("Amenities").
		Where("capacity >= ?", minCapacity).
		Where("availability_status = true").
		Where(`NOT EXISTS (
			SELECT 1 FROM venue_bookings b
			WHERE b.venue_id = venues.id
			AND b.start_time < ? AND b.end_time > ?
		)`, end, start).
		Order("id ASC").
		Find(&venues).Error
	return venues, err
}

// ============= AMENITIES =============

// FindOrCreateAmenity looks an amenity up by case-insensitive name and
// creates it on first use.
func (r *repository) FindOrCreateAmenity(ctx context.Context, name string) (*Amenity, error) {
	var amenity Amenity
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&amenity).Error
	if err == nil {
		return &amenity, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	amenity = Amenity{ID: uuid.New(), Name: name}
	if err := r.db.WithContext(ctx).Create(&amenity).Error; err != nil {
		return nil, fmt.Errorf("failed to create amenity %q: %w", name, err)
	}
	return &amenity, nil
}

// ============= BOOKINGS =============

func (r *repository) CreateBooking(ctx context.Context, booking *Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *repository) GetBookingsByVenueID(ctx context.Context, venueID uuid.UUID) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Order("start_time ASC").
		Find(&bookings).Error
	return bookings, err
}

func (r *repository) GetBookingsByEventID(ctx context.Context, eventID uuid.UUID) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Find(&bookings).Error
	return bookings, err
}

func (r *repository) GetScheduleBookings(ctx context.Context, venueID uuid.UUID, from, to time.Time) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Where("start_time >= ? AND end_time <= ?", from, to).
		Order("start_time ASC").
		Find(&bookings).Error
	return bookings, err
}

// FindConflictingBookings returns bookings on the venue overlapping
// [start, end). Bookings that only touch at an endpoint do not conflict.
func (r *repository) FindConflictingBookings(ctx context.Context, venueID uuid.UUID, start, end time.Time) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Where("start_time < ? AND end_time > ?", end, start).
		Find(&bookings).Error
	return bookings, err
}

func (r *repository) DeleteBookings(ctx context.Context, bookings []Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(bookings))
	for i, b := range bookings {
		ids[i] = b.ID
	}
	return r.db.WithContext(ctx).Delete(&Booking{}, "id IN ?", ids).Error
}

func (r *repository) InTransaction(ctx context.Context, fn func(Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&repository{db: tx})
	})
}

// ============= FILTER STRUCTS =============

type VenueFilters struct {
	Type          VenueType `form:"type" binding:"omitempty,oneof=AUDITORIUM CLASSROOM CONFERENCE_ROOM OUTDOOR BANQUET_HALL"`
	Location      string    `form:"location"`
	MinCapacity   int       `form:"min_capacity" binding:"omitempty,min=1"`
	AvailableOnly bool      `form:"available_only"`
}
