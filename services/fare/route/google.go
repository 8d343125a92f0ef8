package route

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/ridepay/internal/pkg/circuitbreaker"
	"github.com/piresc/ridepay/internal/pkg/logger"
	"github.com/piresc/ridepay/internal/pkg/models"
	"googlemaps.github.io/maps"
)

// GoogleMaps estimates routes with the Distance Matrix API and falls back to
// another estimator when the provider fails. Repeated failures open a
// breaker and requests go straight to the fallback until it half-opens.
type GoogleMaps struct {
	client   *maps.Client
	fallback Estimator
	timeout  time.Duration
	breaker  *circuitbreaker.CircuitBreaker
}

// NewGoogleMaps creates the estimator. Extra client options are appended
// after the API key.
func NewGoogleMaps(cfg models.MapsConfig, fallback Estimator, opts ...maps.ClientOption) (*GoogleMaps, error) {
	client, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(cfg.APIKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	timeout := time.Duration(cfg.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &GoogleMaps{
		client:   client,
		fallback: fallback,
		timeout:  timeout,
		breaker:  circuitbreaker.New(circuitbreaker.DefaultConfig("google_maps")),
	}, nil
}

func (g *GoogleMaps) Estimate(ctx context.Context, from, to models.Location) (Estimate, error) {
	est, err := circuitbreaker.Execute(g.breaker, func() (Estimate, error) {
		return g.distanceMatrix(ctx, from, to)
	})
	if err == nil {
		return est, nil
	}

	if circuitbreaker.IsOpen(err) {
		logger.DebugCtx(ctx, "Maps breaker open, using fallback estimate")
	} else {
		logger.WarnCtx(ctx, "Maps provider failed, using fallback estimate", logger.Err(err))
	}
	return g.fallback.Estimate(ctx, from, to)
}

func (g *GoogleMaps) distanceMatrix(ctx context.Context, from, to models.Location) (Estimate, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.DistanceMatrix(ctx, &maps.DistanceMatrixRequest{
		Origins:      []string{latLng(from)},
		Destinations: []string{latLng(to)},
		Mode:         maps.TravelModeDriving,
	})
	if err != nil {
		return Estimate{}, err
	}
	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return Estimate{}, fmt.Errorf("empty distance matrix response")
	}

	el := resp.Rows[0].Elements[0]
	if el.Status != "OK" {
		return Estimate{}, fmt.Errorf("distance matrix element status %s", el.Status)
	}
	return Estimate{
		DistanceKm:  float64(el.Distance.Meters) / 1000,
		DurationMin: el.Duration.Minutes(),
	}, nil
}

func latLng(l models.Location) string {
	return fmt.Sprintf("%f,%f", l.Latitude, l.Longitude)
}
