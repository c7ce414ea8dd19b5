package allocation

import (
	"strings"

	"venuely/internal/venues"
)

// Soft preference filters. Each narrows the candidate set but falls back to
// the unfiltered set when nothing matches, so a preference can never empty
// the candidate list on its own. They are applied in order after the hard
// capacity and time-conflict stages: type, then location, then amenities.

// applyTypePreference keeps venues of the preferred type, if any match.
func applyTypePreference(candidates []venues.Venue, preferred venues.VenueType) []venues.Venue {
	if preferred == "" {
		return candidates
	}

	matched := make([]venues.Venue, 0, len(candidates))
	for _, v := range candidates {
		if v.Type == preferred {
			matched = append(matched, v)
		}
	}
	if len(matched) == 0 {
		return candidates
	}
	return matched
}

// applyLocationPreference keeps venues whose location contains the preferred
// substring, matched case-insensitively, if any do.
func applyLocationPreference(candidates []venues.Venue, preferred string) []venues.Venue {
	if preferred == "" {
		return candidates
	}

	needle := strings.ToLower(preferred)
	matched := make([]venues.Venue, 0, len(candidates))
	for _, v := range candidates {
		if strings.Contains(strings.ToLower(v.Location), needle) {
			matched = append(matched, v)
		}
	}
	if len(matched) == 0 {
		return candidates
	}
	return matched
}

// applyAmenityPreference keeps venues carrying every required amenity, if
// any venue does.
func applyAmenityPreference(candidates []venues.Venue, required []string) []venues.Venue {
	if len(required) == 0 {
		return candidates
	}

	matched := make([]venues.Venue, 0, len(candidates))
	for _, v := range candidates {
		if v.HasAmenities(required) {
			matched = append(matched, v)
		}
	}
	if len(matched) == 0 {
		return candidates
	}
	return matched
}

// applyPreferences runs the three soft filters in their fixed order.
func applyPreferences(candidates []venues.Venue, req Request) []venues.Venue {
	candidates = applyTypePreference(candidates, req.PreferredType)
	candidates = applyLocationPreference(candidates, req.PreferredLocation)
	candidates = applyAmenityPreference(candidates, req.RequiredAmenities)
	return candidates
}
