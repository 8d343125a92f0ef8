package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/ridepay/internal/pkg/models"
)

// PickupGeohashPrecision is the cell size attached to dispatch events (~1.2 km)
const PickupGeohashPrecision = 6

const earthRadiusKm = 6371.0

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// CalculateDistance calculates the distance between two points in kilometers using the Haversine formula
func CalculateDistance(point1, point2 GeoPoint) float64 {
	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// DistanceKm is CalculateDistance over two locations
func DistanceKm(a, b models.Location) float64 {
	return CalculateDistance(GeoPointFromLocation(a), GeoPointFromLocation(b))
}

// BoundingBox returns the min and max corners (lat, lng) of a box that contains
// every point within radiusKm of center.
func BoundingBox(center models.Location, radiusKm float64) (minLat, minLng, maxLat, maxLng float64) {
	dLat := radiusKm / earthRadiusKm * 180 / math.Pi
	cos := math.Cos(center.Latitude * math.Pi / 180)
	if cos < 1e-6 {
		cos = 1e-6
	}
	dLng := dLat / cos
	return center.Latitude - dLat, center.Longitude - dLng, center.Latitude + dLat, center.Longitude + dLng
}

// GeoPointFromLocation converts a Location model to a GeoPoint
func GeoPointFromLocation(location models.Location) GeoPoint {
	return GeoPoint{
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
	}
}
