package rides

import (
	"context"

	"github.com/piresc/ridepay/internal/pkg/models"
)

// RideGW publishes trip lifecycle and payment events
type RideGW interface {
	PublishTripEvent(ctx context.Context, event *models.Event) error
}

// DriverLocator indexes driver positions per vehicle class
type DriverLocator interface {
	UpsertDriver(ctx context.Context, driverID string, class models.VehicleClass, location models.Location) error
	RemoveDriver(ctx context.Context, driverID string, class models.VehicleClass) error
	// Nearby returns up to limit drivers within radiusKm of center, closest first
	Nearby(ctx context.Context, center models.Location, class models.VehicleClass, radiusKm float64, limit int) ([]models.NearbyDriver, error)
}
