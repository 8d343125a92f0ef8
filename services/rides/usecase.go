package rides

import (
	"context"

	"github.com/piresc/ridepay/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// RideUC defines the interface for ride business logic
// go:generate mockgen -destination=mocks/mock_rides.go -package=mocks github.com/piresc/ridepay/services/rides RideUC,TripRepo,DriverRepo,RideGW,DriverLocator
type RideUC interface {
	RequestRide(ctx context.Context, req models.RideRequest) (*models.Trip, error)
	AcceptRide(ctx context.Context, driverID, tripID string) (*models.Trip, error)
	UpdateTripStatus(ctx context.Context, actorID, tripID string, status models.TripStatus) (*models.Trip, error)
	CancelTrip(ctx context.Context, actorID, tripID, reason string) error
	RateTrip(ctx context.Context, actorID, tripID string, rating int, comment string) error
	EstimateFare(ctx context.Context, pickup, dropoff models.Location, class models.VehicleClass) (*models.FareBreakdown, error)
	GetTrip(ctx context.Context, actorID, tripID string) (*models.Trip, error)

	SettleTripPayment(ctx context.Context, tripID string) error
	RefundTripPayment(ctx context.Context, tripID string, amount decimal.Decimal, reason string) (*models.Transaction, error)

	RegisterDriver(ctx context.Context, driver models.Driver) (*models.Driver, error)
	UpdateDriverStatus(ctx context.Context, driverID string, update models.DriverStatusUpdate) (*models.Driver, error)
}
