package allocation

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"venuely/internal/venues"
)

func seqUUID(n byte) uuid.UUID {
	var id uuid.UUID
	id[15] = n
	return id
}

func TestHillClimbNeverReturnsWorseThanInitial(t *testing.T) {
	initial := []Assignment{
		{EventID: seqUUID(1), VenueID: seqUUID(10)},
		{EventID: seqUUID(2), VenueID: seqUUID(11)},
		{EventID: seqUUID(3), VenueID: seqUUID(12)},
	}
	capacities := map[uuid.UUID]int{
		seqUUID(10): 100,
		seqUUID(11): 50,
		seqUUID(12): 500,
	}
	attendees := map[uuid.UUID]int{
		seqUUID(1): 90,
		seqUUID(2): 400,
		seqUUID(3): 40,
	}
	score := func(as []Assignment) float64 {
		return ScoreAssignments(as, capacities, attendees, nil, nil)
	}

	opts := DefaultOptimizerOptions()
	opts.Rand = rand.New(rand.NewSource(42))

	initialScore := score(initial)
	best, bestScore := HillClimb(initial, score, opts)

	assert.GreaterOrEqual(t, bestScore, initialScore)
	assert.Len(t, best, len(initial))
}

func TestHillClimbResolvesUnderCapacity(t *testing.T) {
	// Event 2 needs 400 seats but starts in the 50-seat venue. A single swap
	// with event 3 fixes both placements, so the search must find it.
	initial := []Assignment{
		{EventID: seqUUID(1), VenueID: seqUUID(10)},
		{EventID: seqUUID(2), VenueID: seqUUID(11)},
		{EventID: seqUUID(3), VenueID: seqUUID(12)},
	}
	capacities := map[uuid.UUID]int{
		seqUUID(10): 100,
		seqUUID(11): 50,
		seqUUID(12): 500,
	}
	attendees := map[uuid.UUID]int{
		seqUUID(1): 90,
		seqUUID(2): 400,
		seqUUID(3): 40,
	}
	score := func(as []Assignment) float64 {
		return ScoreAssignments(as, capacities, attendees, nil, nil)
	}

	opts := DefaultOptimizerOptions()
	opts.Rand = rand.New(rand.NewSource(1))

	best, bestScore := HillClimb(initial, score, opts)

	assigned := make(map[uuid.UUID]uuid.UUID)
	for _, a := range best {
		assigned[a.EventID] = a.VenueID
	}
	assert.Equal(t, seqUUID(12), assigned[seqUUID(2)])
	assert.Equal(t, seqUUID(11), assigned[seqUUID(3)])
	// 10 + 100 + 10 wasted seats, nothing under capacity
	assert.InDelta(t, 120*wastedSeatWeight, bestScore, 1e-9)
}

func TestHillClimbZeroIterationsReturnsInitial(t *testing.T) {
	initial := []Assignment{
		{EventID: seqUUID(1), VenueID: seqUUID(10)},
		{EventID: seqUUID(2), VenueID: seqUUID(11)},
	}
	score := func(as []Assignment) float64 { return 0 }

	best, bestScore := HillClimb(initial, score, OptimizerOptions{Rand: rand.New(rand.NewSource(7))})

	assert.Equal(t, initial, best)
	assert.Equal(t, 0.0, bestScore)
}

func TestHillClimbSingleAssignmentIsStable(t *testing.T) {
	initial := []Assignment{{EventID: seqUUID(1), VenueID: seqUUID(10)}}
	score := func(as []Assignment) float64 { return 5 }

	opts := DefaultOptimizerOptions()
	best, bestScore := HillClimb(initial, score, opts)

	assert.Equal(t, initial, best)
	assert.Equal(t, 5.0, bestScore)
}

func TestHillClimbDoesNotMutateInput(t *testing.T) {
	initial := []Assignment{
		{EventID: seqUUID(1), VenueID: seqUUID(10)},
		{EventID: seqUUID(2), VenueID: seqUUID(11)},
	}
	snapshot := make([]Assignment, len(initial))
	copy(snapshot, initial)

	capacities := map[uuid.UUID]int{seqUUID(10): 10, seqUUID(11): 100}
	attendees := map[uuid.UUID]int{seqUUID(1): 80, seqUUID(2): 5}
	score := func(as []Assignment) float64 {
		return ScoreAssignments(as, capacities, attendees, nil, nil)
	}

	opts := DefaultOptimizerOptions()
	opts.Rand = rand.New(rand.NewSource(3))
	HillClimb(initial, score, opts)

	assert.Equal(t, snapshot, initial)
}

func TestConflictPairs(t *testing.T) {
	base := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	bookings := []venues.Booking{
		{EventID: seqUUID(1), StartTime: base, EndTime: base.Add(2 * time.Hour)},
		{EventID: seqUUID(2), StartTime: base.Add(time.Hour), EndTime: base.Add(3 * time.Hour)},
		// Adjacent to event 2, no overlap
		{EventID: seqUUID(3), StartTime: base.Add(3 * time.Hour), EndTime: base.Add(4 * time.Hour)},
	}

	pairs := ConflictPairs(bookings)
	assert.Equal(t, []EventPair{{A: seqUUID(1), B: seqUUID(2)}}, pairs)
}

func TestConflictPairsIgnoresSameEvent(t *testing.T) {
	base := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	bookings := []venues.Booking{
		{EventID: seqUUID(1), StartTime: base, EndTime: base.Add(2 * time.Hour)},
		{EventID: seqUUID(1), StartTime: base.Add(time.Hour), EndTime: base.Add(3 * time.Hour)},
	}

	assert.Empty(t, ConflictPairs(bookings))
}

func TestScoreAssignments(t *testing.T) {
	venueA := seqUUID(10)
	venueB := seqUUID(11)
	event1 := seqUUID(1)
	event2 := seqUUID(2)

	capacities := map[uuid.UUID]int{venueA: 100, venueB: 40}
	attendees := map[uuid.UUID]int{event1: 80, event2: 40}

	tests := []struct {
		name        string
		assignments []Assignment
		preferences map[uuid.UUID][]uuid.UUID
		conflicts   []EventPair
		want        float64
	}{
		{
			name: "wasted seats cost a tenth of a point each",
			assignments: []Assignment{
				{EventID: event1, VenueID: venueA},
				{EventID: event2, VenueID: venueB},
			},
			want: 20*wastedSeatWeight + 0,
		},
		{
			name: "under capacity dominates",
			assignments: []Assignment{
				{EventID: event1, VenueID: venueB},
			},
			want: penaltyUnderCapacity,
		},
		{
			name: "preference match earns bonus",
			assignments: []Assignment{
				{EventID: event2, VenueID: venueB},
			},
			preferences: map[uuid.UUID][]uuid.UUID{event2: {venueB}},
			want:        preferenceBonus,
		},
		{
			name: "any venue on the preference list earns the bonus once",
			assignments: []Assignment{
				{EventID: event2, VenueID: venueB},
			},
			preferences: map[uuid.UUID][]uuid.UUID{event2: {venueA, venueB}},
			want:        preferenceBonus,
		},
		{
			name: "venue outside the preference list earns nothing",
			assignments: []Assignment{
				{EventID: event2, VenueID: venueB},
			},
			preferences: map[uuid.UUID][]uuid.UUID{event2: {venueA}},
			want:        0,
		},
		{
			name: "overlapping events sharing a venue are penalized",
			assignments: []Assignment{
				{EventID: event1, VenueID: venueA},
				{EventID: event2, VenueID: venueA},
			},
			conflicts: []EventPair{{A: event1, B: event2}},
			want:      20*wastedSeatWeight + 60*wastedSeatWeight + penaltyDoubleBooking,
		},
		{
			name: "overlapping events in separate venues are fine",
			assignments: []Assignment{
				{EventID: event1, VenueID: venueA},
				{EventID: event2, VenueID: venueB},
			},
			conflicts: []EventPair{{A: event1, B: event2}},
			want:      20 * wastedSeatWeight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreAssignments(tt.assignments, capacities, attendees, tt.preferences, tt.conflicts)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}
