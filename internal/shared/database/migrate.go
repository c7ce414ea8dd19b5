package database

import (
	"venuely/internal/venues"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&venues.Venue{},
		&venues.Amenity{},
		&venues.Booking{},
	)
}
