package venues

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"venuely/internal/shared/constants"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Service interface {
	// Venue CRUD
	CreateVenue(ctx context.Context, req CreateVenueRequest) (*VenueResponse, error)
	GetVenueByID(ctx context.Context, id string) (*VenueResponse, error)
	GetVenues(ctx context.Context, filters VenueFilters) ([]VenueResponse, error)
	UpdateVenue(ctx context.Context, id string, req UpdateVenueRequest) (*VenueResponse, error)
	DeleteVenue(ctx context.Context, id string) error

	// Availability search and schedules
	FindAvailableVenues(ctx context.Context, req AvailabilitySearchRequest) ([]VenueResponse, error)
	GetVenueSchedule(ctx context.Context, id string, from, to *time.Time) (*VenueScheduleResponse, error)
}

// CacheTTLs carries the cache lifetimes for venue reads. Zero fields fall
// back to the constants package defaults, so callers only set what they
// override.
type CacheTTLs struct {
	Detail   time.Duration
	List     time.Duration
	Schedule time.Duration
}

type service struct {
	repo        Repository
	redisClient *redis.Client
	ttls        CacheTTLs
}

func NewService(repo Repository, redisClient *redis.Client, ttls CacheTTLs) Service {
	if ttls.Detail <= 0 {
		ttls.Detail = constants.TTL_VENUE_DETAIL
	}
	if ttls.List <= 0 {
		ttls.List = constants.TTL_VENUE_LIST
	}
	if ttls.Schedule <= 0 {
		ttls.Schedule = constants.TTL_VENUE_SCHEDULE
	}
	return &service{
		repo:        repo,
		redisClient: redisClient,
		ttls:        ttls,
	}
}

//  VENUE CRUD

func (s *service) CreateVenue(ctx context.Context, req CreateVenueRequest) (*VenueResponse, error) {
	amenities, err := s.resolveAmenities(ctx, req.Amenities)
	if err != nil {
		return nil, err
	}

	venue := &Venue{
		ID:                 uuid.New(),
		Name:               req.Name,
		Location:           req.Location,
		Capacity:           req.Capacity,
		Type:               VenueType(req.Type),
		Description:        req.Description,
		AvailabilityStatus: true,
		ImageURL:           req.ImageURL,
		Amenities:          amenities,
	}

	if err := s.repo.CreateVenue(ctx, venue); err != nil {
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}

	if err := InvalidateVenueCache(ctx, s.redisClient, nil); err != nil {
		log.Printf("Warning: failed to invalidate venue cache after creation: %v", err)
	}

	resp := venue.ToResponse()
	return &resp, nil
}

func (s *service) GetVenueByID(ctx context.Context, id string) (*VenueResponse, error) {
	venueID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid venue ID: %w", err)
	}

	cacheKey := constants.CACHE_KEY_VENUE_DETAIL + id

	var cached VenueResponse
	if err := GetCache(ctx, s.redisClient, cacheKey, &cached); err == nil {
		return &cached, nil
	}

	venue, err := s.repo.GetVenueByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("venue not found")
		}
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}

	resp := venue.ToResponse()
	if err := SetCache(ctx, s.redisClient, cacheKey, resp, s.ttls.Detail); err != nil {
		log.Printf("Warning: failed to cache venue %s: %v", id, err)
	}

	return &resp, nil
}

func (s *service) GetVenues(ctx context.Context, filters VenueFilters) ([]VenueResponse, error) {
	cacheKey := fmt.Sprintf("%s:type:%s:location:%s:capacity:%d:available:%t",
		constants.CACHE_KEY_VENUE_LIST,
		filters.Type,
		strings.ToLower(filters.Location),
		filters.MinCapacity,
		filters.AvailableOnly,
	)

	var cached []VenueResponse
	if err := GetCache(ctx, s.redisClient, cacheKey, &cached); err == nil {
		return cached, nil
	}

	venues, err := s.repo.GetVenues(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}

	responses := make([]VenueResponse, len(venues))
	for i := range venues {
		responses[i] = venues[i].ToResponse()
	}

	if err := SetCache(ctx, s.redisClient, cacheKey, responses, s.ttls.List); err != nil {
		log.Printf("Warning: failed to cache venue list: %v", err)
	}

	return responses, nil
}

func (s *service) UpdateVenue(ctx context.Context, id string, req UpdateVenueRequest) (*VenueResponse, error) {
	venueID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid venue ID: %w", err)
	}

	venue, err := s.repo.GetVenueByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("venue not found")
		}
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Capacity != nil {
		updates["capacity"] = *req.Capacity
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.AvailabilityStatus != nil {
		updates["availability_status"] = *req.AvailabilityStatus
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}

	if len(updates) > 0 {
		if err := s.repo.UpdateVenue(ctx, venueID, updates); err != nil {
			return nil, fmt.Errorf("failed to update venue: %w", err)
		}
	}

	if req.Amenities != nil {
		amenities, err := s.resolveAmenities(ctx, *req.Amenities)
		if err != nil {
			return nil, err
		}
		if err := s.repo.ReplaceVenueAmenities(ctx, venue, amenities); err != nil {
			return nil, fmt.Errorf("failed to update venue amenities: %w", err)
		}
	}

	if err := InvalidateVenueCache(ctx, s.redisClient, &venueID); err != nil {
		log.Printf("Warning: failed to invalidate venue cache after update: %v", err)
	}

	updated, err := s.repo.GetVenueByID(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload venue: %w", err)
	}

	resp := updated.ToResponse()
	return &resp, nil
}

func (s *service) DeleteVenue(ctx context.Context, id string) error {
	venueID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid venue ID: %w", err)
	}

	if _, err := s.repo.GetVenueByID(ctx, venueID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("venue not found")
		}
		return fmt.Errorf("failed to get venue: %w", err)
	}

	if err := s.repo.DeleteVenue(ctx, venueID); err != nil {
		return fmt.Errorf("failed to delete venue: %w", err)
	}

	if err := InvalidateVenueCache(ctx, s.redisClient, &venueID); err != nil {
		log.Printf("Warning: failed to invalidate venue cache after deletion: %v", err)
	}

	return nil
}

//  AVAILABILITY SEARCH

// FindAvailableVenues returns venues free of booking conflicts during the
// requested window. Unlike allocation, every given criterion here is a hard
// filter: a search for CONFERENCE_ROOM returns only conference rooms.
func (s *service) FindAvailableVenues(ctx context.Context, req AvailabilitySearchRequest) ([]VenueResponse, error) {
	venues, err := s.repo.FindAvailable(ctx, req.StartTime, req.EndTime, req.MinCapacity)
	if err != nil {
		return nil, fmt.Errorf("failed to search available venues: %w", err)
	}

	if req.VenueType != "" {
		venues = filterVenues(venues, func(v Venue) bool {
			return v.Type == VenueType(req.VenueType)
		})
	}

	if req.Location != "" {
		location := strings.ToLower(req.Location)
		venues = filterVenues(venues, func(v Venue) bool {
			return strings.Contains(strings.ToLower(v.Location), location)
		})
	}

	if len(req.RequiredAmenities) > 0 {
		venues = filterVenues(venues, func(v Venue) bool {
			return v.HasAmenities(req.RequiredAmenities)
		})
	}

	responses := make([]VenueResponse, len(venues))
	for i := range venues {
		responses[i] = venues[i].ToResponse()
	}
	return responses, nil
}

func (s *service) GetVenueSchedule(ctx context.Context, id string, from, to *time.Time) (*VenueScheduleResponse, error) {
	venueID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid venue ID: %w", err)
	}

	// Default window: the next month.
	start := time.Now()
	end := start.AddDate(0, 1, 0)
	if from != nil && to != nil {
		start, end = *from, *to
	}

	cacheKey := fmt.Sprintf("%s:%d:%d", constants.BuildVenueScheduleKey(id), start.Unix(), end.Unix())

	var cached VenueScheduleResponse
	if err := GetCache(ctx, s.redisClient, cacheKey, &cached); err == nil {
		return &cached, nil
	}

	venue, err := s.repo.GetVenueByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("venue not found")
		}
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}

	bookings, err := s.repo.GetScheduleBookings(ctx, venueID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get venue schedule: %w", err)
	}

	schedule := &VenueScheduleResponse{
		VenueID:   venue.ID.String(),
		VenueName: venue.Name,
		Bookings:  make([]BookingResponse, len(bookings)),
	}
	for i := range bookings {
		schedule.Bookings[i] = bookings[i].ToResponse()
	}

	if err := SetCache(ctx, s.redisClient, cacheKey, schedule, s.ttls.Schedule); err != nil {
		log.Printf("Warning: failed to cache venue schedule: %v", err)
	}

	return schedule, nil
}

//  HELPER FUNCTIONS

// resolveAmenities maps amenity names to records, creating missing ones.
func (s *service) resolveAmenities(ctx context.Context, names []string) ([]Amenity, error) {
	amenities := make([]Amenity, 0, len(names))
	seen := make(map[string]bool, len(names))

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true

		amenity, err := s.repo.FindOrCreateAmenity(ctx, strings.TrimSpace(name))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve amenity %q: %w", name, err)
		}
		amenities = append(amenities, *amenity)
	}

	return amenities, nil
}

func filterVenues(venues []Venue, keep func(Venue) bool) []Venue {
	filtered := make([]Venue, 0, len(venues))
	for _, v := range venues {
		if keep(v) {
			filtered = append(filtered, v)
		}
	}
	return filtered
}
