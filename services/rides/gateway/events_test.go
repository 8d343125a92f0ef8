package gateway

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/piresc/ridepay/internal/pkg/eventbus"
	"github.com/piresc/ridepay/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishTripEvent(t *testing.T) {
	bus := eventbus.NewMemoryBus(1)
	defer bus.Close()

	received := make(chan models.Event, 1)
	require.NoError(t, bus.Subscribe(context.Background(), "trip.requested", "test", func(ctx context.Context, data []byte) error {
		var e models.Event
		assert.NoError(t, json.Unmarshal(data, &e))
		received <- e
		return nil
	}))

	gw := NewRideGW(eventbus.NewEventPublisher(bus, nil))
	err := gw.PublishTripEvent(context.Background(), &models.Event{
		Type:          models.EventTripRequested,
		Trip:          &models.Trip{ID: "trip-1", Status: models.TripStatusRequested},
		CandidateIDs:  []string{"driver-1", "driver-2"},
		PickupGeohash: "qqguwv",
	})
	require.NoError(t, err)
	bus.Wait()

	e := <-received
	assert.Equal(t, models.EventTripRequested, e.Type)
	require.NotNil(t, e.Trip)
	assert.Equal(t, "trip-1", e.Trip.ID)
	assert.Equal(t, []string{"driver-1", "driver-2"}, e.CandidateIDs)
	assert.Equal(t, "qqguwv", e.PickupGeohash)
}

func TestPublishTripEvent_UnknownType(t *testing.T) {
	gw := NewRideGW(eventbus.NewEventPublisher(eventbus.NewMemoryBus(1), nil))

	err := gw.PublishTripEvent(context.Background(), &models.Event{Type: models.EventWalletTopup})
	assert.Error(t, err)
}
