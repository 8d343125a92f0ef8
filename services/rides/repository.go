package rides

import (
	"context"
	"errors"
	"time"

	"github.com/piresc/ridepay/internal/pkg/models"
)

var (
	// ErrNotFound is returned when a trip or driver does not exist
	ErrNotFound = errors.New("not found")
	// ErrPreconditionFailed is returned when a conditional write finds the
	// stored record in another state or version
	ErrPreconditionFailed = errors.New("precondition failed")
	// ErrDuplicate is returned when the requester already has an active trip
	ErrDuplicate = errors.New("requester already has an active trip")
	// ErrDriverBusy is returned when the driver already has an active trip
	ErrDriverBusy = errors.New("driver already has an active trip")
)

// TripRepo stores trips. Every write after creation is conditional on the
// stored status and version.
type TripRepo interface {
	CreateTrip(ctx context.Context, trip *models.Trip) error
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)
	GetActiveTripByRequester(ctx context.Context, requesterID string) (*models.Trip, error)
	// AcceptTrip binds the driver and moves the trip to ACCEPTED only while it
	// is still REQUESTED and the driver has no other active trip. The driver
	// becomes BUSY in the same write.
	AcceptTrip(ctx context.Context, tripID, driverID string, acceptedAt time.Time) (*models.Trip, error)
	UpdateTrip(ctx context.Context, tr models.TripTransition) (*models.Trip, error)
}

// DriverRepo stores the driver state dispatch depends on
type DriverRepo interface {
	SaveDriver(ctx context.Context, driver *models.Driver) (*models.Driver, error)
	GetDriver(ctx context.Context, driverID string) (*models.Driver, error)
	GetDrivers(ctx context.Context, driverIDs []string) ([]*models.Driver, error)
	UpdateDriverLocation(ctx context.Context, driverID string, location models.Location, now time.Time) (*models.Driver, error)
	// SetDriverAvailability fails with ErrDriverBusy while the driver is BUSY
	SetDriverAvailability(ctx context.Context, driverID string, availability models.DriverAvailability, now time.Time) (*models.Driver, error)
}
