package constants

import "time"

// Redis cache keys and TTLs for the venuely service.
// Pattern: venuely:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

const (
	// Venue records change rarely; schedules change on every allocation.
	TTL_VENUE_DETAIL   = 1 * time.Hour
	TTL_VENUE_LIST     = 15 * time.Minute
	TTL_VENUE_SCHEDULE = 2 * time.Minute
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "venuely"

	CACHE_KEY_VENUE_DETAIL   = CACHE_PREFIX + ":venues:detail:uuid:" // + venue-id
	CACHE_KEY_VENUE_LIST     = CACHE_PREFIX + ":venues:list"         // + :type:X:location:Y:...
	CACHE_KEY_VENUE_SCHEDULE = CACHE_PREFIX + ":venues:schedule:"    // + venue-id

	PATTERN_INVALIDATE_VENUES_ALL = CACHE_PREFIX + ":venues:*"
)

// BuildVenueScheduleKey builds the cache key for a venue's schedule.
func BuildVenueScheduleKey(venueID string) string {
	return CACHE_KEY_VENUE_SCHEDULE + venueID
}
