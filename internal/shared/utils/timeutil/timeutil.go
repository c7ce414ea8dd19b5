package timeutil

import "time"

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) overlap. Intervals that only touch at an endpoint do not
// overlap, so a booking ending at 10:00 never conflicts with one starting
// at 10:00.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// DurationMinutes returns the number of whole minutes between start and end.
func DurationMinutes(start, end time.Time) int64 {
	return int64(end.Sub(start).Minutes())
}

// DurationHours returns the duration between start and end in fractional hours.
func DurationHours(start, end time.Time) float64 {
	return float64(DurationMinutes(start, end)) / 60.0
}

// EpochSeconds returns the Unix timestamp for t.
func EpochSeconds(t time.Time) int64 {
	return t.Unix()
}
