package venues

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"venuely/internal/shared/constants"
)

// mockRepository implements Repository with injectable behavior per method.
type mockRepository struct {
	CreateVenueFunc             func(ctx context.Context, venue *Venue) error
	GetVenueByIDFunc            func(ctx context.Context, id uuid.UUID) (*Venue, error)
	GetVenuesFunc               func(ctx context.Context, filters VenueFilters) ([]Venue, error)
	UpdateVenueFunc             func(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	ReplaceVenueAmenitiesFunc   func(ctx context.Context, venue *Venue, amenities []Amenity) error
	DeleteVenueFunc             func(ctx context.Context, id uuid.UUID) error
	ListAllocatableVenuesFunc   func(ctx context.Context, minCapacity int) ([]Venue, error)
	FindAvailableFunc           func(ctx context.Context, start, end time.Time, minCapacity int) ([]Venue, error)
	FindOrCreateAmenityFunc     func(ctx context.Context, name string) (*Amenity, error)
	CreateBookingFunc           func(ctx context.Context, booking *Booking) error
	GetBookingsByVenueIDFunc    func(ctx context.Context, venueID uuid.UUID) ([]Booking, error)
	GetBookingsByEventIDFunc    func(ctx context.Context, eventID uuid.UUID) ([]Booking, error)
	GetScheduleBookingsFunc     func(ctx context.Context, venueID uuid.UUID, from, to time.Time) ([]Booking, error)
	FindConflictingBookingsFunc func(ctx context.Context, venueID uuid.UUID, start, end time.Time) ([]Booking, error)
	DeleteBookingsFunc          func(ctx context.Context, bookings []Booking) error
	InTransactionFunc           func(ctx context.Context, fn func(Repository) error) error
}

func (m *mockRepository) CreateVenue(ctx context.Context, venue *Venue) error {
	return m.CreateVenueFunc(ctx, venue)
}
func (m *mockRepository) GetVenueByID(ctx context.Context, id uuid.UUID) (*Venue, error) {
	return m.GetVenueByIDFunc(ctx, id)
}
func (m *mockRepository) GetVenues(ctx context.Context, filters VenueFilters) ([]Venue, error) {
	return m.GetVenuesFunc(ctx, filters)
}
func (m *mockRepository) UpdateVenue(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return m.UpdateVenueFunc(ctx, id, updates)
}
func (m *mockRepository) ReplaceVenueAmenities(ctx context.Context, venue *Venue, amenities []Amenity) error {
	return m.ReplaceVenueAmenitiesFunc(ctx, venue, amenities)
}
func (m *mockRepository) DeleteVenue(ctx context.Context, id uuid.UUID) error {
	return m.DeleteVenueFunc(ctx, id)
}
func (m *mockRepository) ListAllocatableVenues(ctx context.Context, minCapacity int) ([]Venue, error) {
	return m.ListAllocatableVenuesFunc(ctx, minCapacity)
}
func (m *mockRepository) FindAvailable(ctx context.Context, start, end time.Time, minCapacity int) ([]Venue, error) {
	return m.FindAvailableFunc(ctx, start, end, minCapacity)
}
func (m *mockRepository) FindOrCreateAmenity(ctx context.Context, name string) (*Amenity, error) {
	return m.FindOrCreateAmenityFunc(ctx, name)
}
func (m *mockRepository) CreateBooking(ctx context.Context, booking *Booking) error {
	return m.CreateBookingFunc(ctx, booking)
}
func (m *mockRepository) GetBookingsByVenueID(ctx context.Context, venueID uuid.UUID) ([]Booking, error) {
	return m.GetBookingsByVenueIDFunc(ctx, venueID)
}
func (m *mockRepository) GetBookingsByEventID(ctx context.Context, eventID uuid.UUID) ([]Booking, error) {
	return m.GetBookingsByEventIDFunc(ctx, eventID)
}
func (m *mockRepository) GetScheduleBookings(ctx context.Context, venueID uuid.UUID, from, to time.Time) ([]Booking, error) {
	return m.GetScheduleBookingsFunc(ctx, venueID, from, to)
}
func (m *mockRepository) FindConflictingBookings(ctx context.Context, venueID uuid.UUID, start, end time.Time) ([]Booking, error) {
	return m.FindConflictingBookingsFunc(ctx, venueID, start, end)
}
func (m *mockRepository) DeleteBookings(ctx context.Context, bookings []Booking) error {
	return m.DeleteBookingsFunc(ctx, bookings)
}
func (m *mockRepository) InTransaction(ctx context.Context, fn func(Repository) error) error {
	return m.InTransactionFunc(ctx, fn)
}

func TestCreateVenueResolvesAmenities(t *testing.T) {
	var created *Venue
	var requested []string

	repo := &mockRepository{
		FindOrCreateAmenityFunc: func(ctx context.Context, name string) (*Amenity, error) {
			requested = append(requested, name)
			return &Amenity{ID: uuid.New(), Name: name}, nil
		},
		CreateVenueFunc: func(ctx context.Context, venue *Venue) error {
			created = venue
			return nil
		},
	}
	svc := NewService(repo, nil, CacheTTLs{})

	resp, err := svc.CreateVenue(context.Background(), CreateVenueRequest{
		Name:     "Main Hall",
		Location: "North Campus",
		Capacity: 200,
		Type:     "AUDITORIUM",
		// Duplicates and padding collapse to one amenity each
		Amenities: []string{"Projector", " projector ", "WiFi"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Projector", "WiFi"}, requested)
	require.NotNil(t, created)
	assert.Len(t, created.Amenities, 2)
	assert.True(t, created.AvailabilityStatus)
	assert.Equal(t, "Main Hall", resp.Name)
	assert.Equal(t, "AUDITORIUM", resp.Type)
}

func TestGetVenueByIDNotFound(t *testing.T) {
	repo := &mockRepository{
		GetVenueByIDFunc: func(ctx context.Context, id uuid.UUID) (*Venue, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewService(repo, nil, CacheTTLs{})

	_, err := svc.GetVenueByID(context.Background(), uuid.NewString())
	assert.EqualError(t, err, "venue not found")
}

func TestGetVenueByIDRejectsMalformedID(t *testing.T) {
	svc := NewService(&mockRepository{}, nil, CacheTTLs{})

	_, err := svc.GetVenueByID(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid venue ID")
}

func TestUpdateVenueBuildsPartialUpdateMap(t *testing.T) {
	venueID := uuid.New()
	existing := &Venue{ID: venueID, Name: "Old Name", Capacity: 100, Type: TypeClassroom}

	var gotUpdates map[string]interface{}
	repo := &mockRepository{
		GetVenueByIDFunc: func(ctx context.Context, id uuid.UUID) (*Venue, error) {
			return existing, nil
		},
		UpdateVenueFunc: func(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
			gotUpdates = updates
			return nil
		},
	}
	svc := NewService(repo, nil, CacheTTLs{})

	newName := "New Name"
	newCapacity := 150
	_, err := svc.UpdateVenue(context.Background(), venueID.String(), UpdateVenueRequest{
		Name:     &newName,
		Capacity: &newCapacity,
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{
		"name":     "New Name",
		"capacity": 150,
	}, gotUpdates)
}

func TestFindAvailableVenuesAppliesHardFilters(t *testing.T) {
	conference := Venue{
		ID:       uuid.New(),
		Name:     "Boardroom",
		Location: "HQ Tower",
		Capacity: 20,
		Type:     TypeConferenceRoom,
		Amenities: []Amenity{
			{Name: "Projector"},
		},
	}
	outdoor := Venue{
		ID:       uuid.New(),
		Name:     "Garden",
		Location: "HQ Tower",
		Capacity: 200,
		Type:     TypeOutdoor,
	}

	repo := &mockRepository{
		FindAvailableFunc: func(ctx context.Context, start, end time.Time, minCapacity int) ([]Venue, error) {
			return []Venue{conference, outdoor}, nil
		},
	}
	svc := NewService(repo, nil, CacheTTLs{})

	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	req := AvailabilitySearchRequest{
		StartTime:         start,
		EndTime:           start.Add(time.Hour),
		VenueType:         "CONFERENCE_ROOM",
		Location:          "hq",
		RequiredAmenities: []string{"projector"},
	}

	got, err := svc.FindAvailableVenues(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Boardroom", got[0].Name)

	// Search filters are hard: an unmatched type yields nothing instead of
	// falling back like allocation preferences do.
	req.VenueType = "BANQUET_HALL"
	got, err = svc.FindAvailableVenues(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetVenueScheduleDefaultsToNextMonth(t *testing.T) {
	venueID := uuid.New()
	var gotFrom, gotTo time.Time

	repo := &mockRepository{
		GetVenueByIDFunc: func(ctx context.Context, id uuid.UUID) (*Venue, error) {
			return &Venue{ID: venueID, Name: "Main Hall"}, nil
		},
		GetScheduleBookingsFunc: func(ctx context.Context, id uuid.UUID, from, to time.Time) ([]Booking, error) {
			gotFrom, gotTo = from, to
			return []Booking{
				{ID: uuid.New(), VenueID: venueID, EventName: "Orientation"},
			}, nil
		},
	}
	svc := NewService(repo, nil, CacheTTLs{})

	schedule, err := svc.GetVenueSchedule(context.Background(), venueID.String(), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, venueID.String(), schedule.VenueID)
	assert.Equal(t, "Main Hall", schedule.VenueName)
	require.Len(t, schedule.Bookings, 1)
	assert.Equal(t, "Orientation", schedule.Bookings[0].EventName)

	// Window defaults to roughly now..+1 month
	assert.WithinDuration(t, time.Now(), gotFrom, time.Minute)
	assert.WithinDuration(t, time.Now().AddDate(0, 1, 0), gotTo, time.Minute)
}

func TestGetVenueScheduleHonorsExplicitWindow(t *testing.T) {
	venueID := uuid.New()
	from := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	var gotFrom, gotTo time.Time
	repo := &mockRepository{
		GetVenueByIDFunc: func(ctx context.Context, id uuid.UUID) (*Venue, error) {
			return &Venue{ID: venueID, Name: "Main Hall"}, nil
		},
		GetScheduleBookingsFunc: func(ctx context.Context, id uuid.UUID, f, t time.Time) ([]Booking, error) {
			gotFrom, gotTo = f, t
			return nil, nil
		},
	}
	svc := NewService(repo, nil, CacheTTLs{})

	_, err := svc.GetVenueSchedule(context.Background(), venueID.String(), &from, &to)
	require.NoError(t, err)
	assert.True(t, gotFrom.Equal(from))
	assert.True(t, gotTo.Equal(to))
}

func TestResolveAmenitiesSkipsBlankNames(t *testing.T) {
	var requested []string
	repo := &mockRepository{
		FindOrCreateAmenityFunc: func(ctx context.Context, name string) (*Amenity, error) {
			requested = append(requested, name)
			return &Amenity{ID: uuid.New(), Name: name}, nil
		},
		CreateVenueFunc: func(ctx context.Context, venue *Venue) error { return nil },
	}
	svc := NewService(repo, nil, CacheTTLs{})

	_, err := svc.CreateVenue(context.Background(), CreateVenueRequest{
		Name:      "Main Hall",
		Location:  "North Campus",
		Capacity:  200,
		Type:      "AUDITORIUM",
		Amenities: []string{"  ", "Stage", ""},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Stage"}, requested)
}

func TestVenueTypeRoundTripsThroughResponse(t *testing.T) {
	venue := Venue{
		ID:       uuid.New(),
		Name:     "Banquet West",
		Location: "West Wing",
		Capacity: 300,
		Type:     TypeBanquetHall,
		Amenities: []Amenity{
			{ID: uuid.New(), Name: "Catering"},
		},
	}

	resp := venue.ToResponse()
	assert.Equal(t, venue.ID.String(), resp.ID)
	assert.Equal(t, "BANQUET_HALL", resp.Type)
	require.Len(t, resp.Amenities, 1)
	assert.True(t, strings.EqualFold("Catering", resp.Amenities[0]))
}

func TestNewServiceCacheTTLs(t *testing.T) {
	custom := NewService(&mockRepository{}, nil, CacheTTLs{
		Detail:   30 * time.Minute,
		List:     5 * time.Minute,
		Schedule: time.Minute,
	}).(*service)
	assert.Equal(t, 30*time.Minute, custom.ttls.Detail)
	assert.Equal(t, 5*time.Minute, custom.ttls.List)
	assert.Equal(t, time.Minute, custom.ttls.Schedule)

	defaults := NewService(&mockRepository{}, nil, CacheTTLs{}).(*service)
	assert.Equal(t, constants.TTL_VENUE_DETAIL, defaults.ttls.Detail)
	assert.Equal(t, constants.TTL_VENUE_LIST, defaults.ttls.List)
	assert.Equal(t, constants.TTL_VENUE_SCHEDULE, defaults.ttls.Schedule)
}
