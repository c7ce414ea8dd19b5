package notifications

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAllocationEvent(t *testing.T) {
	eventID := uuid.New()
	event := NewAllocationEvent(EventVenueAllocated, eventID)

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, EventVenueAllocated, event.Type)
	assert.Equal(t, eventID, event.EventID)
	assert.False(t, event.CreatedAt.IsZero())
}

func TestPartitionKeyGroupsByUpstreamEvent(t *testing.T) {
	eventID := uuid.New()
	allocated := NewAllocationEvent(EventVenueAllocated, eventID)
	cancelled := NewAllocationEvent(EventBookingCancelled, eventID)

	// Both lifecycle events for one upstream event land on one partition
	assert.Equal(t, allocated.PartitionKey(), cancelled.PartitionKey())
	assert.Equal(t, eventID.String(), allocated.PartitionKey())
}

func TestToJSONOmitsUnsetOptionalFields(t *testing.T) {
	event := NewAllocationEvent(EventAllocationFailed, uuid.New())
	event.Message = "No venues available with sufficient capacity for 500 attendees"

	payload, err := event.ToJSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &decoded))

	assert.Equal(t, "ALLOCATION_FAILED", decoded["type"])
	assert.NotContains(t, decoded, "venue_id")
	assert.NotContains(t, decoded, "start_time")
}
