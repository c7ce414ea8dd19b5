package allocation

import (
	"sort"
	"strings"

	"venuely/internal/venues"
)

// Venue desirability scoring. Components are additive with no shared scale;
// the band breakpoints and flat bonuses are tuned constants and must not be
// renormalized, or existing allocation outcomes change.
const (
	scorePerfectCapacity    = 100.0 // up to 10% spare capacity
	scoreGoodCapacity       = 80.0  // up to 25% spare
	scoreAcceptableCapacity = 60.0  // up to 50% spare
	scoreMediocreCapacity   = 40.0  // up to double the need
	scorePoorCapacity       = 20.0  // more than double the need

	amenityBonusWeight = 50.0
	locationBonus      = 30.0
	typeBonus          = 40.0
)

// scoreVenue rates a single venue against a request. Higher is better; there
// is no fixed upper bound.
func scoreVenue(venue venues.Venue, req Request) float64 {
	score := capacityScore(venue.Capacity, req.AttendeeCount)

	if len(req.RequiredAmenities) > 0 {
		have := make(map[string]bool, len(venue.Amenities))
		for _, name := range venue.AmenityNames() {
			have[name] = true
		}
		matched := 0
		for _, required := range req.RequiredAmenities {
			if have[strings.ToLower(required)] {
				matched++
			}
		}
		score += float64(matched) / float64(len(req.RequiredAmenities)) * amenityBonusWeight
	}

	if req.PreferredLocation != "" &&
		strings.Contains(strings.ToLower(venue.Location), strings.ToLower(req.PreferredLocation)) {
		score += locationBonus
	}

	if req.PreferredType != "" && venue.Type == req.PreferredType {
		score += typeBonus
	}

	return score
}

// capacityScore rewards tight capacity fits in discrete bands, penalizing
// venues much larger than the event needs.
func capacityScore(capacity, attendees int) float64 {
	ratio := float64(capacity) / float64(attendees)
	switch {
	case ratio <= 1.10:
		return scorePerfectCapacity
	case ratio <= 1.25:
		return scoreGoodCapacity
	case ratio <= 1.50:
		return scoreAcceptableCapacity
	case ratio <= 2.00:
		return scoreMediocreCapacity
	default:
		return scorePoorCapacity
	}
}

// rankVenues orders candidates by descending score. Ties break on ascending
// venue id so repeated runs over the same catalog pick the same venue.
func rankVenues(candidates []venues.Venue, req Request) []venues.Venue {
	ranked := make([]venues.Venue, len(candidates))
	copy(ranked, candidates)

	scores := make(map[string]float64, len(ranked))
	for _, v := range ranked {
		scores[v.ID.String()] = scoreVenue(v, req)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := scores[ranked[i].ID.String()], scores[ranked[j].ID.String()]
		if si != sj {
			return si > sj
		}
		return ranked[i].ID.String() < ranked[j].ID.String()
	})

	return ranked
}
