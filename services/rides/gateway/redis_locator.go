package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/ridepay/internal/pkg/constants"
	"github.com/piresc/ridepay/internal/pkg/database"
	"github.com/piresc/ridepay/internal/pkg/models"
)

// RedisLocator indexes driver positions in one Redis GEO set per vehicle class
type RedisLocator struct {
	redis *database.RedisClient
}

// NewRedisLocator creates a driver locator backed by Redis
func NewRedisLocator(redis *database.RedisClient) *RedisLocator {
	return &RedisLocator{redis: redis}
}

func (l *RedisLocator) UpsertDriver(ctx context.Context, driverID string, class models.VehicleClass, location models.Location) error {
	// a driver is indexed under exactly one class
	for _, other := range models.VehicleClasses {
		if other == class {
			continue
		}
		if err := l.redis.GeoRemove(ctx, geoKey(other), driverID); err != nil {
			return fmt.Errorf("failed to remove driver from %s index: %w", other, err)
		}
	}

	if err := l.redis.GeoAdd(ctx, geoKey(class), location.Longitude, location.Latitude, driverID); err != nil {
		return fmt.Errorf("failed to index driver location: %w", err)
	}
	err := l.redis.HSet(ctx, fmt.Sprintf(constants.KeyDriverLocation, driverID), map[string]interface{}{
		constants.FieldLatitude:     location.Latitude,
		constants.FieldLongitude:    location.Longitude,
		constants.FieldVehicleClass: string(class),
	})
	if err != nil {
		return fmt.Errorf("failed to store driver location: %w", err)
	}
	return nil
}

func (l *RedisLocator) RemoveDriver(ctx context.Context, driverID string, class models.VehicleClass) error {
	if err := l.redis.GeoRemove(ctx, geoKey(class), driverID); err != nil {
		return fmt.Errorf("failed to remove driver from index: %w", err)
	}
	if err := l.redis.Delete(ctx, fmt.Sprintf(constants.KeyDriverLocation, driverID)); err != nil {
		return fmt.Errorf("failed to delete driver location: %w", err)
	}
	return nil
}

// Nearby returns up to limit indexed drivers within radiusKm, nearest first
func (l *RedisLocator) Nearby(ctx context.Context, center models.Location, class models.VehicleClass, radiusKm float64, limit int) ([]models.NearbyDriver, error) {
	if radiusKm <= 0 {
		return []models.NearbyDriver{}, nil
	}
	locations, err := l.redis.GeoRadius(ctx, geoKey(class), center.Longitude, center.Latitude, radiusKm, "km", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search nearby drivers: %w", err)
	}

	nearby := make([]models.NearbyDriver, 0, len(locations))
	for _, loc := range locations {
		nearby = append(nearby, models.NearbyDriver{
			DriverID:   loc.Name,
			Location:   models.Location{Latitude: loc.Latitude, Longitude: loc.Longitude},
			DistanceKm: loc.Dist,
		})
	}
	return nearby, nil
}

func geoKey(class models.VehicleClass) string {
	return fmt.Sprintf(constants.KeyDriverGeo, class)
}
