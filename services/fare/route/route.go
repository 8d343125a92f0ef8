package route

import (
	"context"

	"github.com/piresc/ridepay/internal/pkg/models"
	"github.com/piresc/ridepay/internal/utils"
)

// Estimate is the expected road distance and driving time of a route
type Estimate struct {
	DistanceKm  float64 `json:"distance_km"`
	DurationMin float64 `json:"duration_min"`
}

// Estimator estimates a route between two points
type Estimator interface {
	Estimate(ctx context.Context, from, to models.Location) (Estimate, error)
}

const (
	DefaultRoadFactor  = 1.3
	DefaultAvgSpeedKmh = 30.0
)

// Haversine estimates road distance as the great-circle distance scaled by
// a road factor, driven at a constant average speed.
type Haversine struct {
	RoadFactor  float64
	AvgSpeedKmh float64
}

// NewHaversine returns an estimator, substituting defaults for non-positive values
func NewHaversine(roadFactor, avgSpeedKmh float64) *Haversine {
	if roadFactor <= 0 {
		roadFactor = DefaultRoadFactor
	}
	if avgSpeedKmh <= 0 {
		avgSpeedKmh = DefaultAvgSpeedKmh
	}
	return &Haversine{RoadFactor: roadFactor, AvgSpeedKmh: avgSpeedKmh}
}

func (h *Haversine) Estimate(ctx context.Context, from, to models.Location) (Estimate, error) {
	distance := utils.DistanceKm(from, to) * h.RoadFactor
	return Estimate{
		DistanceKm:  distance,
		DurationMin: distance / h.AvgSpeedKmh * 60,
	}, nil
}

// NewFromConfig picks the estimator named by the maps configuration
func NewFromConfig(cfg models.MapsConfig) (Estimator, error) {
	fallback := NewHaversine(cfg.RoadFactor, cfg.AvgSpeedKmh)
	if cfg.Provider != "google" {
		return fallback, nil
	}
	return NewGoogleMaps(cfg, fallback)
}
