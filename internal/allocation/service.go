package allocation

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"venuely/internal/notifications"
	"venuely/internal/venues"
	"venuely/pkg/logger"
)

type Service interface {
	Allocate(ctx context.Context, req Request) (*Result, error)
	CheckAvailability(ctx context.Context, venueID uuid.UUID, q AvailabilityQuery) (*AvailabilityResult, error)
	CancelBooking(ctx context.Context, eventID uuid.UUID) (bool, error)
}

type service struct {
	repo        venues.Repository
	redisClient *redis.Client
	producer    notifications.Producer
	logger      *logger.Logger
}

func NewService(repo venues.Repository, redisClient *redis.Client, producer notifications.Producer) Service {
	return &service{
		repo:        repo,
		redisClient: redisClient,
		producer:    producer,
		logger:      logger.GetDefault(),
	}
}

// Allocate finds the best available venue for an event and books it.
// Any prior bookings for the same event are released first, so calling
// Allocate again for an event re-evaluates its venue from scratch.
// The release and the new booking happen in one transaction.
func (s *service) Allocate(ctx context.Context, req Request) (*Result, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, fmt.Errorf("end time must be after start time")
	}
	if req.PreferredType != "" && !req.PreferredType.IsValid() {
		return nil, fmt.Errorf("invalid preferred venue type: %s", req.PreferredType)
	}

	var result *Result
	var bookedVenueID *uuid.UUID

	err := s.repo.InTransaction(ctx, func(tx venues.Repository) error {
		// Release any existing booking for this event before re-allocating
		existing, err := tx.GetBookingsByEventID(ctx, req.EventID)
		if err != nil {
			return fmt.Errorf("failed to fetch existing bookings: %w", err)
		}
		if len(existing) > 0 {
			if err := tx.DeleteBookings(ctx, existing); err != nil {
				return fmt.Errorf("failed to release existing bookings: %w", err)
			}
		}

		candidates, err := tx.ListAllocatableVenues(ctx, req.AttendeeCount)
		if err != nil {
			return fmt.Errorf("failed to list venues: %w", err)
		}
		if len(candidates) == 0 {
			result = failure(fmt.Sprintf("No venues available with sufficient capacity for %d attendees", req.AttendeeCount))
			return nil
		}

		free := make([]venues.Venue, 0, len(candidates))
		for _, v := range candidates {
			conflicts, err := tx.FindConflictingBookings(ctx, v.ID, req.StartTime, req.EndTime)
			if err != nil {
				return fmt.Errorf("failed to check conflicts for venue %s: %w", v.ID, err)
			}
			if len(conflicts) == 0 {
				free = append(free, v)
			}
		}
		if len(free) == 0 {
			result = failure("All suitable venues are already booked during the requested time")
			return nil
		}

		preferred := applyPreferences(free, req)
		ranked := rankVenues(preferred, req)
		best := ranked[0]

		booking := &venues.Booking{
			VenueID:       best.ID,
			EventID:       req.EventID,
			EventName:     req.EventName,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			AttendeeCount: req.AttendeeCount,
			Notes:         req.Notes,
		}
		if err := tx.CreateBooking(ctx, booking); err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		bookedVenueID = &best.ID
		result = success(&best)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Success {
		s.logger.LogVenueAllocated(ctx, req.EventID.String(), bookedVenueID.String(), result.VenueName)
		if err := venues.InvalidateVenueCache(ctx, s.redisClient, bookedVenueID); err != nil {
			log.Printf("Warning: failed to invalidate venue cache after allocation: %v", err)
		}

		event := notifications.NewAllocationEvent(notifications.EventVenueAllocated, req.EventID)
		event.EventName = req.EventName
		event.VenueID = bookedVenueID
		event.VenueName = result.VenueName
		event.StartTime = &req.StartTime
		event.EndTime = &req.EndTime
		event.Message = result.Message
		s.publishEvent(ctx, event)
	} else {
		s.logger.LogAllocationFailed(ctx, req.EventID.String(), result.Message)

		event := notifications.NewAllocationEvent(notifications.EventAllocationFailed, req.EventID)
		event.EventName = req.EventName
		event.Message = result.Message
		s.publishEvent(ctx, event)
	}

	return result, nil
}

// CheckAvailability reports whether a venue is free for the given window.
// Only bookings count: the administrative availability flag gates
// allocation, not availability queries, so a disabled venue with an empty
// calendar still reports the window as free.
func (s *service) CheckAvailability(ctx context.Context, venueID uuid.UUID, q AvailabilityQuery) (*AvailabilityResult, error) {
	if !q.EndTime.After(q.StartTime) {
		return nil, fmt.Errorf("end time must be after start time")
	}

	venue, err := s.repo.GetVenueByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("venue not found")
		}
		return nil, fmt.Errorf("failed to fetch venue: %w", err)
	}

	conflicts, err := s.repo.FindConflictingBookings(ctx, venue.ID, q.StartTime, q.EndTime)
	if err != nil {
		return nil, fmt.Errorf("failed to check conflicts: %w", err)
	}

	res := &AvailabilityResult{
		VenueID:   venue.ID,
		VenueName: venue.Name,
		StartTime: q.StartTime,
		EndTime:   q.EndTime,
		Available: len(conflicts) == 0,
	}
	for _, b := range conflicts {
		res.ConflictingBookings = append(res.ConflictingBookings, b.ToResponse())
	}
	return res, nil
}

// CancelBooking removes all venue bookings held by an event. It returns
// false when the event holds no bookings; that is an idempotent no-op,
// not an error.
func (s *service) CancelBooking(ctx context.Context, eventID uuid.UUID) (bool, error) {
	bookings, err := s.repo.GetBookingsByEventID(ctx, eventID)
	if err != nil {
		return false, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	if len(bookings) == 0 {
		return false, nil
	}

	if err := s.repo.DeleteBookings(ctx, bookings); err != nil {
		return false, fmt.Errorf("failed to delete bookings: %w", err)
	}

	s.logger.LogBookingCancelled(ctx, eventID.String(), len(bookings))
	for _, b := range bookings {
		venueID := b.VenueID
		if err := venues.InvalidateVenueCache(ctx, s.redisClient, &venueID); err != nil {
			log.Printf("Warning: failed to invalidate venue cache after cancellation: %v", err)
		}
	}

	event := notifications.NewAllocationEvent(notifications.EventBookingCancelled, eventID)
	event.Message = fmt.Sprintf("Released %d booking(s)", len(bookings))
	s.publishEvent(ctx, event)
	return true, nil
}

// publishEvent sends an allocation lifecycle event to Kafka. Publishing is
// best-effort: a broker outage must not fail the allocation itself.
func (s *service) publishEvent(ctx context.Context, event *notifications.AllocationEvent) {
	if s.producer == nil {
		return
	}
	if err := s.producer.PublishAllocationEvent(ctx, event); err != nil {
		log.Printf("Warning: failed to publish %s event for event %s: %v", event.Type, event.EventID, err)
	}
}
