package gateway

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/dhconnelly/rtreego"
	"github.com/piresc/ridepay/internal/pkg/models"
	"github.com/piresc/ridepay/internal/utils"
)

// pointTolerance is the half-width, in degrees, of the box a driver occupies in the tree
const pointTolerance = 1e-7

type indexedDriver struct {
	id       string
	class    models.VehicleClass
	location models.Location
	bounds   rtreego.Rect
}

func (d *indexedDriver) Bounds() rtreego.Rect {
	return d.bounds
}

// MemoryLocator indexes driver positions in an in-process R-tree per vehicle class
type MemoryLocator struct {
	mu      sync.RWMutex
	trees   map[models.VehicleClass]*rtreego.Rtree
	drivers map[string]*indexedDriver
}

// NewMemoryLocator creates an empty in-memory driver locator
func NewMemoryLocator() *MemoryLocator {
	return &MemoryLocator{
		trees:   make(map[models.VehicleClass]*rtreego.Rtree),
		drivers: make(map[string]*indexedDriver),
	}
}

func (l *MemoryLocator) UpsertDriver(ctx context.Context, driverID string, class models.VehicleClass, location models.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.remove(driverID)
	d := &indexedDriver{
		id:       driverID,
		class:    class,
		location: location,
		bounds:   rtreego.Point{location.Latitude, location.Longitude}.ToRect(pointTolerance),
	}
	tree, ok := l.trees[class]
	if !ok {
		tree = rtreego.NewTree(2, 25, 50)
		l.trees[class] = tree
	}
	tree.Insert(d)
	l.drivers[driverID] = d
	return nil
}

func (l *MemoryLocator) RemoveDriver(ctx context.Context, driverID string, class models.VehicleClass) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.remove(driverID)
	return nil
}

// remove drops a driver from whichever class it is indexed under. Callers hold mu.
func (l *MemoryLocator) remove(driverID string) {
	d, ok := l.drivers[driverID]
	if !ok {
		return
	}
	if tree, ok := l.trees[d.class]; ok {
		tree.Delete(d)
	}
	delete(l.drivers, driverID)
}

// Nearby returns up to limit indexed drivers within radiusKm, nearest first.
// A limit of zero returns every match.
func (l *MemoryLocator) Nearby(ctx context.Context, center models.Location, class models.VehicleClass, radiusKm float64, limit int) ([]models.NearbyDriver, error) {
	if radiusKm <= 0 {
		return []models.NearbyDriver{}, nil
	}
	minLat, minLng, maxLat, maxLng := utils.BoundingBox(center, radiusKm)
	box, err := rtreego.NewRect(rtreego.Point{minLat, minLng}, []float64{maxLat - minLat, maxLng - minLng})
	if err != nil {
		return nil, fmt.Errorf("invalid search area: %w", err)
	}

	l.mu.RLock()
	var hits []rtreego.Spatial
	if tree, ok := l.trees[class]; ok {
		hits = tree.SearchIntersect(box)
	}
	l.mu.RUnlock()

	nearby := make([]models.NearbyDriver, 0, len(hits))
	for _, hit := range hits {
		d := hit.(*indexedDriver)
		dist := utils.DistanceKm(center, d.location)
		if dist > radiusKm {
			continue
		}
		nearby = append(nearby, models.NearbyDriver{DriverID: d.id, Location: d.location, DistanceKm: dist})
	}

	sort.Slice(nearby, func(i, j int) bool {
		if nearby[i].DistanceKm != nearby[j].DistanceKm {
			return nearby[i].DistanceKm < nearby[j].DistanceKm
		}
		return nearby[i].DriverID < nearby[j].DriverID
	})
	if limit > 0 && len(nearby) > limit {
		nearby = nearby[:limit]
	}
	return nearby, nil
}
