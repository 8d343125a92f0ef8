package repository

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/piresc/ridepay/internal/pkg/models"
	"github.com/piresc/ridepay/services/rides"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDriver(t *testing.T, s *MemoryStore, id string, availability models.DriverAvailability) {
	t.Helper()
	_, err := s.SaveDriver(context.Background(), &models.Driver{
		ID:             id,
		ApprovalStatus: models.DriverApprovalApproved,
		Availability:   availability,
		VehicleClass:   models.VehicleClassEconomy,
		UpdatedAt:      testNow,
	})
	require.NoError(t, err)
}

func seedTrip(t *testing.T, s *MemoryStore, id, requesterID string) {
	t.Helper()
	require.NoError(t, s.CreateTrip(context.Background(), &models.Trip{
		ID:          id,
		RequesterID: requesterID,
		Status:      models.TripStatusRequested,
		Version:     1,
		RequestedAt: testNow,
	}))
}

func TestMemoryStore_OneActiveTripPerRequester(t *testing.T) {
	s := NewMemoryRepository()
	seedTrip(t, s, "trip-1", "rider-1")

	err := s.CreateTrip(context.Background(), &models.Trip{ID: "trip-2", RequesterID: "rider-1", Status: models.TripStatusRequested})
	assert.ErrorIs(t, err, rides.ErrDuplicate)

	active, err := s.GetActiveTripByRequester(context.Background(), "rider-1")
	require.NoError(t, err)
	assert.Equal(t, "trip-1", active.ID)

	_, err = s.GetActiveTripByRequester(context.Background(), "rider-2")
	assert.ErrorIs(t, err, rides.ErrNotFound)
}

func TestMemoryStore_GetTripReturnsCopy(t *testing.T) {
	s := NewMemoryRepository()
	seedTrip(t, s, "trip-1", "rider-1")

	trip, err := s.GetTrip(context.Background(), "trip-1")
	require.NoError(t, err)
	trip.Status = models.TripStatusCancelled

	stored, err := s.GetTrip(context.Background(), "trip-1")
	require.NoError(t, err)
	assert.Equal(t, models.TripStatusRequested, stored.Status)
}

func TestMemoryStore_AcceptTrip(t *testing.T) {
	s := NewMemoryRepository()
	seedDriver(t, s, "driver-1", models.DriverOnline)
	seedTrip(t, s, "trip-1", "rider-1")
	seedTrip(t, s, "trip-2", "rider-2")

	trip, err := s.AcceptTrip(context.Background(), "trip-1", "driver-1", testNow)
	require.NoError(t, err)
	assert.Equal(t, models.TripStatusAccepted, trip.Status)
	assert.Equal(t, int64(2), trip.Version)
	require.NotNil(t, trip.AcceptedAt)

	d, err := s.GetDriver(context.Background(), "driver-1")
	require.NoError(t, err)
	assert.Equal(t, models.DriverBusy, d.Availability)

	_, err = s.AcceptTrip(context.Background(), "trip-1", "driver-2", testNow)
	assert.ErrorIs(t, err, rides.ErrPreconditionFailed)

	_, err = s.AcceptTrip(context.Background(), "trip-2", "driver-1", testNow)
	assert.ErrorIs(t, err, rides.ErrDriverBusy)

	_, err = s.AcceptTrip(context.Background(), "ghost", "driver-1", testNow)
	assert.ErrorIs(t, err, rides.ErrNotFound)
}

func TestMemoryStore_ConcurrentAcceptHasOneWinner(t *testing.T) {
	s := NewMemoryRepository()
	seedTrip(t, s, "trip-1", "rider-1")

	const drivers = 20
	var wins int32
	var wg sync.WaitGroup
	for i := 0; i < drivers; i++ {
		id := fmt.Sprintf("driver-%d", i)
		seedDriver(t, s, id, models.DriverOnline)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.AcceptTrip(context.Background(), "trip-1", id, testNow); err == nil {
				atomic.AddInt32(&wins, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins)
}

func TestMemoryStore_UpdateTripCompareAndSet(t *testing.T) {
	s := NewMemoryRepository()
	seedDriver(t, s, "driver-1", models.DriverOnline)
	seedTrip(t, s, "trip-1", "rider-1")
	accepted, err := s.AcceptTrip(context.Background(), "trip-1", "driver-1", testNow)
	require.NoError(t, err)

	next := accepted.Clone()
	next.Status = models.TripStatusCancelled
	next.UpdatedAt = testNow
	tr := models.TripTransition{
		TripID:             "trip-1",
		FromStatus:         accepted.Status,
		FromVersion:        accepted.Version,
		Trip:               next,
		DriverAvailability: models.DriverOnline,
	}

	updated, err := s.UpdateTrip(context.Background(), tr)
	require.NoError(t, err)
	assert.Equal(t, accepted.Version+1, updated.Version)

	_, err = s.UpdateTrip(context.Background(), tr)
	assert.ErrorIs(t, err, rides.ErrPreconditionFailed)

	d, err := s.GetDriver(context.Background(), "driver-1")
	require.NoError(t, err)
	assert.Equal(t, models.DriverOnline, d.Availability)

	_, err = s.GetActiveTripByRequester(context.Background(), "rider-1")
	assert.ErrorIs(t, err, rides.ErrNotFound)
}

func TestMemoryStore_UpdateTripCreditsEarnings(t *testing.T) {
	s := NewMemoryRepository()
	seedDriver(t, s, "driver-1", models.DriverOnline)
	seedTrip(t, s, "trip-1", "rider-1")
	accepted, err := s.AcceptTrip(context.Background(), "trip-1", "driver-1", testNow)
	require.NoError(t, err)

	next := accepted.Clone()
	next.Status = models.TripStatusCompleted
	_, err = s.UpdateTrip(context.Background(), models.TripTransition{
		TripID:             "trip-1",
		FromStatus:         accepted.Status,
		FromVersion:        accepted.Version,
		Trip:               next,
		DriverAvailability: models.DriverOnline,
		DriverEarnings:     &models.DriverEarnings{Trips: 1, Amount: decimal.RequireFromString("15.70")},
	})
	require.NoError(t, err)

	d, err := s.GetDriver(context.Background(), "driver-1")
	require.NoError(t, err)
	assert.Equal(t, 1, d.TotalTrips)
	assert.Equal(t, "15.70", d.TotalEarnings.StringFixed(2))
}

func TestMemoryStore_SaveDriverKeepsCounters(t *testing.T) {
	s := NewMemoryRepository()
	seedDriver(t, s, "driver-1", models.DriverOnline)

	d, err := s.SaveDriver(context.Background(), &models.Driver{
		ID:             "driver-1",
		ApprovalStatus: models.DriverApprovalSuspended,
		Availability:   models.DriverOffline,
		VehicleClass:   models.VehicleClassComfort,
	})
	require.NoError(t, err)
	assert.Equal(t, models.DriverOffline, d.Availability)
	assert.Equal(t, models.VehicleClassComfort, d.VehicleClass)
	assert.Equal(t, models.DriverApprovalSuspended, d.ApprovalStatus)
}

func TestMemoryStore_SetDriverAvailability(t *testing.T) {
	s := NewMemoryRepository()
	seedDriver(t, s, "driver-1", models.DriverOffline)
	seedDriver(t, s, "driver-2", models.DriverBusy)

	d, err := s.SetDriverAvailability(context.Background(), "driver-1", models.DriverOnline, testNow)
	require.NoError(t, err)
	assert.Equal(t, models.DriverOnline, d.Availability)

	_, err = s.SetDriverAvailability(context.Background(), "driver-2", models.DriverOffline, testNow)
	assert.ErrorIs(t, err, rides.ErrDriverBusy)

	_, err = s.SetDriverAvailability(context.Background(), "ghost", models.DriverOnline, testNow)
	assert.ErrorIs(t, err, rides.ErrNotFound)

	drivers, err := s.GetDrivers(context.Background(), []string{"driver-1", "ghost", "driver-2"})
	require.NoError(t, err)
	assert.Len(t, drivers, 2)
}
