package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds critical database constraints for concurrency control
func MigrateConstraints(db *gorm.DB) error {
	// Add index for conflict detection queries on the booking window
	err := db.Exec(`
		CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_venue_bookings_venue_window
		ON venue_bookings (venue_id, start_time, end_time);
	`).Error
	if err != nil {
		return err
	}

	// Add index for booking lookups by event
	err = db.Exec(`
		CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_venue_bookings_event_id
		ON venue_bookings (event_id);
	`).Error
	if err != nil {
		return err
	}

	// Add index for capacity-first candidate scans during allocation
	err = db.Exec(`
		CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_venues_capacity
		ON venues (capacity);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
