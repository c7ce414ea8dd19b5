package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"venuely/internal/shared/config"
	"venuely/internal/shared/database"
	"venuely/internal/venues"

	"github.com/google/uuid"
)

type Seeder struct {
	db   *database.DB
	repo venues.Repository
}

func main() {
	fmt.Println("🌱 Starting Venuely Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{
		db:   db,
		repo: venues.NewRepository(db.GetPostgreSQL()),
	}

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in the correct order (respecting foreign key constraints)
func (s *Seeder) CleanDatabase() error {
	// Delete in reverse dependency order
	tables := []string{
		"venue_bookings",
		"venue_amenity_mappings",
		"venue_amenities",
		"venues",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	venueIDs, err := s.SeedVenues(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed venues: %w", err)
	}

	if err := s.SeedBookings(ctx, venueIDs); err != nil {
		return fmt.Errorf("failed to seed bookings: %w", err)
	}

	return nil
}

// SeedVenues creates a small catalog covering every venue type
func (s *Seeder) SeedVenues(ctx context.Context) (map[string]uuid.UUID, error) {
	fmt.Println("  Seeding venues...")

	seeds := []struct {
		name      string
		location  string
		capacity  int
		venueType venues.VenueType
		amenities []string
	}{
		{"Grand Auditorium", "North Campus", 500, venues.TypeAuditorium, []string{"Stage", "Projector", "Sound System"}},
		{"Lecture Hall B", "North Campus", 150, venues.TypeAuditorium, []string{"Projector", "Sound System"}},
		{"Room 101", "South Campus", 40, venues.TypeClassroom, []string{"Whiteboard", "Projector"}},
		{"Room 102", "South Campus", 60, venues.TypeClassroom, []string{"Whiteboard"}},
		{"Boardroom", "HQ Tower", 20, venues.TypeConferenceRoom, []string{"Projector", "Video Conferencing", "Whiteboard"}},
		{"Summit Room", "HQ Tower", 35, venues.TypeConferenceRoom, []string{"Video Conferencing"}},
		{"Rose Garden", "West Field", 300, venues.TypeOutdoor, []string{"Stage"}},
		{"Harbor Banquet Hall", "Waterfront", 250, venues.TypeBanquetHall, []string{"Catering", "Sound System", "Stage"}},
	}

	ids := make(map[string]uuid.UUID, len(seeds))
	for _, seed := range seeds {
		amenities := make([]venues.Amenity, 0, len(seed.amenities))
		for _, name := range seed.amenities {
			amenity, err := s.repo.FindOrCreateAmenity(ctx, name)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve amenity %q: %w", name, err)
			}
			amenities = append(amenities, *amenity)
		}

		venue := &venues.Venue{
			ID:                 uuid.New(),
			Name:               seed.name,
			Location:           seed.location,
			Capacity:           seed.capacity,
			Type:               seed.venueType,
			AvailabilityStatus: true,
			Amenities:          amenities,
		}
		if err := s.repo.CreateVenue(ctx, venue); err != nil {
			return nil, fmt.Errorf("failed to create venue %q: %w", seed.name, err)
		}
		ids[seed.name] = venue.ID
		fmt.Printf("    ✅ %s (%s, capacity %d)\n", seed.name, seed.venueType, seed.capacity)
	}

	return ids, nil
}

// SeedBookings places a few bookings so availability queries have conflicts
// to report straight away
func (s *Seeder) SeedBookings(ctx context.Context, venueIDs map[string]uuid.UUID) error {
	fmt.Println("  Seeding bookings...")

	base := time.Now().Truncate(time.Hour).Add(24 * time.Hour)

	bookings := []venues.Booking{
		{
			VenueID:       venueIDs["Grand Auditorium"],
			EventID:       uuid.New(),
			EventName:     "Opening Keynote",
			StartTime:     base.Add(9 * time.Hour),
			EndTime:       base.Add(11 * time.Hour),
			AttendeeCount: 420,
		},
		{
			VenueID:       venueIDs["Boardroom"],
			EventID:       uuid.New(),
			EventName:     "Partner Sync",
			StartTime:     base.Add(13 * time.Hour),
			EndTime:       base.Add(14 * time.Hour),
			AttendeeCount: 12,
		},
		{
			VenueID:       venueIDs["Room 101"],
			EventID:       uuid.New(),
			EventName:     "Intro Workshop",
			StartTime:     base.Add(10 * time.Hour),
			EndTime:       base.Add(12 * time.Hour),
			AttendeeCount: 30,
		},
	}

	for i := range bookings {
		if err := s.repo.CreateBooking(ctx, &bookings[i]); err != nil {
			return fmt.Errorf("failed to create booking %q: %w", bookings[i].EventName, err)
		}
		fmt.Printf("    ✅ %s\n", bookings[i].EventName)
	}

	return nil
}
