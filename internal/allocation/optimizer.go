package allocation

import (
	"math/rand"

	"github.com/google/uuid"

	"venuely/internal/shared/utils/timeutil"
	"venuely/internal/venues"
)

// Assignment pairs one event with the venue it currently holds.
type Assignment struct {
	EventID uuid.UUID
	VenueID uuid.UUID
}

// EventPair marks two events whose time windows overlap. Assigning both to
// the same venue is a double booking.
type EventPair struct {
	A uuid.UUID
	B uuid.UUID
}

// ConflictPairs derives the overlapping-event pairs the batch scorer needs
// from a set of bookings. Bookings of the same event never conflict with
// each other.
func ConflictPairs(bookings []venues.Booking) []EventPair {
	var pairs []EventPair
	for i := 0; i < len(bookings); i++ {
		for j := i + 1; j < len(bookings); j++ {
			if bookings[i].EventID == bookings[j].EventID {
				continue
			}
			if timeutil.Overlaps(bookings[i].StartTime, bookings[i].EndTime, bookings[j].StartTime, bookings[j].EndTime) {
				pairs = append(pairs, EventPair{A: bookings[i].EventID, B: bookings[j].EventID})
			}
		}
	}
	return pairs
}

// OptimizerOptions tunes the hill-climbing search. MaxIterations and
// StagnationLimit are taken as given, so a zero MaxIterations runs no
// iterations at all; DefaultOptimizerOptions supplies the production
// budget. Rand may be seeded by callers that need reproducible runs; when
// nil a freshly seeded source is used.
type OptimizerOptions struct {
	MaxIterations   int
	StagnationLimit int
	Rand            *rand.Rand
}

// DefaultOptimizerOptions returns the search budget used in production.
func DefaultOptimizerOptions() OptimizerOptions {
	return OptimizerOptions{
		MaxIterations:   1000,
		StagnationLimit: 100,
	}
}

// ScoreFunc rates a full set of assignments. Higher is better.
type ScoreFunc func(assignments []Assignment) float64

// HillClimb improves a set of venue assignments by repeatedly swapping the
// venues of two random events and keeping the swap only when it strictly
// raises the score. The search stops after MaxIterations total iterations or
// StagnationLimit consecutive iterations without improvement, whichever
// comes first. The input slice is never mutated.
func HillClimb(initial []Assignment, score ScoreFunc, opts OptimizerOptions) ([]Assignment, float64) {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	best := make([]Assignment, len(initial))
	copy(best, initial)
	bestScore := score(best)

	if len(best) < 2 {
		return best, bestScore
	}

	candidate := make([]Assignment, len(best))
	stagnation := 0
	for i := 0; i < opts.MaxIterations && stagnation < opts.StagnationLimit; i++ {
		copy(candidate, best)

		a := rng.Intn(len(candidate))
		b := rng.Intn(len(candidate))
		for b == a {
			b = rng.Intn(len(candidate))
		}
		candidate[a].VenueID, candidate[b].VenueID = candidate[b].VenueID, candidate[a].VenueID

		if s := score(candidate); s > bestScore {
			copy(best, candidate)
			bestScore = s
			stagnation = 0
		} else {
			stagnation++
		}
	}

	return best, bestScore
}

// Penalties and bonuses for batch assignment scoring. Hard violations
// (under-capacity, double booking) dominate so the search never trades them
// for soft wins.
const (
	penaltyUnderCapacity = -1000.0
	penaltyDoubleBooking = -2000.0
	wastedSeatWeight     = -0.1
	preferenceBonus      = 50.0
)

// ScoreAssignments rates a batch allocation. Each event seated in a venue
// too small for it costs penaltyUnderCapacity; otherwise every unused seat
// costs wastedSeatWeight. Events placed in one of the venues on their
// preference list earn preferenceBonus. Every overlapping pair sharing a
// venue costs penaltyDoubleBooking.
func ScoreAssignments(
	assignments []Assignment,
	venueCapacities map[uuid.UUID]int,
	eventAttendees map[uuid.UUID]int,
	venuePreferences map[uuid.UUID][]uuid.UUID,
	conflicts []EventPair,
) float64 {
	score := 0.0
	assigned := make(map[uuid.UUID]uuid.UUID, len(assignments))

	for _, a := range assignments {
		assigned[a.EventID] = a.VenueID

		capacity := venueCapacities[a.VenueID]
		attendees := eventAttendees[a.EventID]
		if capacity < attendees {
			score += penaltyUnderCapacity
		} else {
			score += float64(capacity-attendees) * wastedSeatWeight
		}

		for _, preferred := range venuePreferences[a.EventID] {
			if preferred == a.VenueID {
				score += preferenceBonus
				break
			}
		}
	}

	for _, pair := range conflicts {
		venueA, okA := assigned[pair.A]
		venueB, okB := assigned[pair.B]
		if okA && okB && venueA == venueB {
			score += penaltyDoubleBooking
		}
	}

	return score
}
