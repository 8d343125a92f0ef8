package repository

import (
	"context"
	"sync"
	"time"

	"github.com/piresc/ridepay/internal/pkg/models"
	"github.com/piresc/ridepay/services/rides"
)

// MemoryStore keeps trips and drivers in process behind one lock, so a trip
// write and its driver side effects are applied together.
type MemoryStore struct {
	mu      sync.RWMutex
	trips   map[string]*models.Trip
	drivers map[string]*models.Driver
}

// NewMemoryRepository creates an empty in-memory trip and driver store
func NewMemoryRepository() *MemoryStore {
	return &MemoryStore{
		trips:   make(map[string]*models.Trip),
		drivers: make(map[string]*models.Driver),
	}
}

func (s *MemoryStore) CreateTrip(ctx context.Context, trip *models.Trip) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.trips[trip.ID]; ok {
		return rides.ErrDuplicate
	}
	if s.activeTrip(func(t *models.Trip) bool { return t.RequesterID == trip.RequesterID }) != nil {
		return rides.ErrDuplicate
	}
	s.trips[trip.ID] = trip.Clone()
	return nil
}

func (s *MemoryStore) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.trips[tripID]
	if !ok {
		return nil, rides.ErrNotFound
	}
	return t.Clone(), nil
}

func (s *MemoryStore) GetActiveTripByRequester(ctx context.Context, requesterID string) (*models.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t := s.activeTrip(func(t *models.Trip) bool { return t.RequesterID == requesterID })
	if t == nil {
		return nil, rides.ErrNotFound
	}
	return t.Clone(), nil
}

func (s *MemoryStore) AcceptTrip(ctx context.Context, tripID, driverID string, acceptedAt time.Time) (*models.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.trips[tripID]
	if !ok {
		return nil, rides.ErrNotFound
	}
	if t.Status != models.TripStatusRequested {
		return nil, rides.ErrPreconditionFailed
	}
	if s.activeTrip(func(t *models.Trip) bool { return t.DriverID == driverID }) != nil {
		return nil, rides.ErrDriverBusy
	}

	at := acceptedAt
	t.DriverID = driverID
	t.Status = models.TripStatusAccepted
	t.AcceptedAt = &at
	t.UpdatedAt = acceptedAt
	t.Version++

	if d, ok := s.drivers[driverID]; ok {
		d.Availability = models.DriverBusy
		d.UpdatedAt = acceptedAt
	}
	return t.Clone(), nil
}

func (s *MemoryStore) UpdateTrip(ctx context.Context, tr models.TripTransition) (*models.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.trips[tr.TripID]
	if !ok {
		return nil, rides.ErrNotFound
	}
	if current.Status != tr.FromStatus || current.Version != tr.FromVersion {
		return nil, rides.ErrPreconditionFailed
	}

	updated := tr.Trip.Clone()
	updated.Version = tr.FromVersion + 1
	s.trips[tr.TripID] = updated

	if tr.DriverAvailability != "" && updated.DriverID != "" {
		if d, ok := s.drivers[updated.DriverID]; ok {
			d.Availability = tr.DriverAvailability
			d.UpdatedAt = updated.UpdatedAt
			if tr.DriverEarnings != nil {
				d.TotalTrips += tr.DriverEarnings.Trips
				d.TotalEarnings = d.TotalEarnings.Add(tr.DriverEarnings.Amount)
			}
		}
	}
	return updated.Clone(), nil
}

// activeTrip returns the first non-terminal trip matching match. Callers hold mu.
func (s *MemoryStore) activeTrip(match func(*models.Trip) bool) *models.Trip {
	for _, t := range s.trips {
		if t.Status.IsActive() && match(t) {
			return t
		}
	}
	return nil
}

func (s *MemoryStore) SaveDriver(ctx context.Context, driver *models.Driver) (*models.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.drivers[driver.ID]
	if !ok {
		d := *driver
		s.drivers[driver.ID] = &d
		c := d
		return &c, nil
	}

	existing.ApprovalStatus = driver.ApprovalStatus
	existing.VehicleClass = driver.VehicleClass
	existing.UpdatedAt = driver.UpdatedAt
	if driver.ApprovalStatus != models.DriverApprovalApproved && existing.Availability == models.DriverOnline {
		existing.Availability = models.DriverOffline
	}
	c := *existing
	return &c, nil
}

func (s *MemoryStore) GetDriver(ctx context.Context, driverID string) (*models.Driver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.drivers[driverID]
	if !ok {
		return nil, rides.ErrNotFound
	}
	c := *d
	return &c, nil
}

func (s *MemoryStore) GetDrivers(ctx context.Context, driverIDs []string) ([]*models.Driver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	drivers := make([]*models.Driver, 0, len(driverIDs))
	for _, id := range driverIDs {
		if d, ok := s.drivers[id]; ok {
			c := *d
			drivers = append(drivers, &c)
		}
	}
	return drivers, nil
}

func (s *MemoryStore) UpdateDriverLocation(ctx context.Context, driverID string, location models.Location, now time.Time) (*models.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drivers[driverID]
	if !ok {
		return nil, rides.ErrNotFound
	}
	d.Location = location
	d.UpdatedAt = now
	c := *d
	return &c, nil
}

func (s *MemoryStore) SetDriverAvailability(ctx context.Context, driverID string, availability models.DriverAvailability, now time.Time) (*models.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drivers[driverID]
	if !ok {
		return nil, rides.ErrNotFound
	}
	if d.Availability == models.DriverBusy {
		return nil, rides.ErrDriverBusy
	}
	d.Availability = availability
	d.UpdatedAt = now
	c := *d
	return &c, nil
}
