package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/ridepay/internal/pkg/apperror"
	"github.com/piresc/ridepay/internal/pkg/models"
	"github.com/piresc/ridepay/services/fare/route"
	"github.com/piresc/ridepay/services/rides/gateway"
	"github.com/piresc/ridepay/services/rides/mocks"
	"github.com/piresc/ridepay/services/rides/repository"
	"github.com/piresc/ridepay/services/wallet"
	walletmocks "github.com/piresc/ridepay/services/wallet/mocks"
	walletrepo "github.com/piresc/ridepay/services/wallet/repository"
	walletusecase "github.com/piresc/ridepay/services/wallet/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pickup   = models.Location{Latitude: -6.2, Longitude: 106.8, Address: "Pickup St"}
	dropoff  = models.Location{Latitude: -6.25, Longitude: 106.85, Address: "Dropoff Ave"}
	nearby1  = models.Location{Latitude: -6.2, Longitude: 106.81}
	nearby2  = models.Location{Latitude: -6.2, Longitude: 106.83}
	tooFar   = models.Location{Latitude: -6.2, Longitude: 106.95}
	tenKmRun = route.Estimate{DistanceKm: 10, DurationMin: 20}
)

type stubRouter struct {
	estimate route.Estimate
	err      error
}

func (s stubRouter) Estimate(ctx context.Context, from, to models.Location) (route.Estimate, error) {
	return s.estimate, s.err
}

type fixture struct {
	uc      *rideUC
	store   *repository.MemoryStore
	locator *gateway.MemoryLocator
	wallet  wallet.WalletUC

	mu     sync.Mutex
	events []*models.Event
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	walletGW := walletmocks.NewMockWalletGW(ctrl)
	walletGW.EXPECT().PublishWalletEvent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f := &fixture{
		store:   repository.NewMemoryRepository(),
		locator: gateway.NewMemoryLocator(),
		wallet:  walletusecase.NewWalletUC(&models.Config{}, walletrepo.NewMemoryRepository(), walletGW),
	}

	rideGW := mocks.NewMockRideGW(ctrl)
	rideGW.EXPECT().PublishTripEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, e *models.Event) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.events = append(f.events, e)
			return nil
		}).AnyTimes()

	f.uc = NewRideUC(&models.Config{}, f.store, f.store, f.locator, rideGW, f.wallet, stubRouter{estimate: tenKmRun}).(*rideUC)
	return f
}

func (f *fixture) eventsOf(typ models.EventType) []*models.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Event
	for _, e := range f.events {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

func (f *fixture) onlineDriver(t *testing.T, id string, class models.VehicleClass, loc models.Location) {
	t.Helper()
	ctx := context.Background()
	_, err := f.uc.RegisterDriver(ctx, models.Driver{ID: id, ApprovalStatus: models.DriverApprovalApproved, VehicleClass: class})
	require.NoError(t, err)
	_, err = f.uc.UpdateDriverStatus(ctx, id, models.DriverStatusUpdate{Availability: models.DriverOnline, Location: &loc})
	require.NoError(t, err)
}

func (f *fixture) request(t *testing.T, riderID string, method models.PaymentMethod) *models.Trip {
	t.Helper()
	trip, err := f.uc.RequestRide(context.Background(), models.RideRequest{
		RequesterID:   riderID,
		Pickup:        pickup,
		Dropoff:       dropoff,
		VehicleClass:  models.VehicleClassEconomy,
		PaymentMethod: method,
	})
	require.NoError(t, err)
	return trip
}

// advance drives a trip through the given statuses as driverID
func (f *fixture) advance(t *testing.T, driverID, tripID string, statuses ...models.TripStatus) *models.Trip {
	t.Helper()
	var trip *models.Trip
	var err error
	for _, s := range statuses {
		trip, err = f.uc.UpdateTripStatus(context.Background(), driverID, tripID, s)
		require.NoError(t, err, "moving to %s", s)
	}
	return trip
}

// completedTrip runs a full economy trip for riderID with driver-1
func (f *fixture) completedTrip(t *testing.T, riderID string, method models.PaymentMethod) *models.Trip {
	t.Helper()
	f.onlineDriver(t, "driver-1", models.VehicleClassEconomy, nearby1)
	trip := f.request(t, riderID, method)
	return f.advance(t, "driver-1", trip.ID,
		models.TripStatusAccepted,
		models.TripStatusDriverArrived,
		models.TripStatusInProgress,
		models.TripStatusCompleted)
}

func (f *fixture) balance(t *testing.T, accountID string) string {
	t.Helper()
	w, err := f.wallet.GetWallet(context.Background(), accountID)
	require.NoError(t, err)
	return w.Balance.StringFixed(2)
}

func (f *fixture) fund(t *testing.T, accountID, amount, confirmation string) {
	t.Helper()
	_, err := f.wallet.TopupWallet(context.Background(), accountID, decimal.RequireFromString(amount), confirmation)
	require.NoError(t, err)
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, code, apperror.CodeOf(err), "error: %v", err)
}
