package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/piresc/ridepay/internal/pkg/apperror"
	"github.com/piresc/ridepay/internal/pkg/logger"
	"github.com/piresc/ridepay/internal/pkg/models"
	nrpkg "github.com/piresc/ridepay/internal/pkg/newrelic"
	"github.com/piresc/ridepay/internal/utils"
	"github.com/piresc/ridepay/services/fare"
	"github.com/piresc/ridepay/services/fare/route"
	"github.com/piresc/ridepay/services/rides"
)

// RequestRide prices the route, looks for nearby drivers and records the trip
// as REQUESTED. The trip.requested event carries the candidate driver ids.
func (uc *rideUC) RequestRide(ctx context.Context, req models.RideRequest) (*models.Trip, error) {
	if req.RequesterID == "" {
		return nil, apperror.Validation("requester id is required")
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = models.PaymentMethodWallet
	}
	if !req.PaymentMethod.Valid() {
		return nil, apperror.Validation("unsupported payment method %q", req.PaymentMethod)
	}
	if err := validateRoute(req.Pickup, req.Dropoff, req.VehicleClass); err != nil {
		return nil, err
	}

	active, err := uc.tripRepo.GetActiveTripByRequester(ctx, req.RequesterID)
	if err != nil && !errors.Is(err, rides.ErrNotFound) {
		return nil, uc.translate(err)
	}
	if active != nil {
		return nil, apperror.ErrAlreadyActiveTrip.WithMessage("requester already has active trip %s", active.ID)
	}

	estimate, breakdown, err := uc.price(ctx, req.Pickup, req.Dropoff, req.VehicleClass)
	if err != nil {
		return nil, err
	}

	candidates, err := uc.findCandidates(ctx, req.Pickup, req.VehicleClass)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		logger.InfoCtx(ctx, "No drivers available",
			logger.String("requester_id", req.RequesterID),
			logger.String("vehicle_class", string(req.VehicleClass)))
		return nil, apperror.ErrNoDriversAvailable
	}

	now := uc.now()
	trip := &models.Trip{
		ID:                   uuid.New().String(),
		RequesterID:          req.RequesterID,
		Status:               models.TripStatusRequested,
		VehicleClass:         req.VehicleClass,
		Pickup:               req.Pickup,
		Dropoff:              req.Dropoff,
		EstimatedDistanceKm:  estimate.DistanceKm,
		EstimatedDurationMin: estimate.DurationMin,
		Fare:                 *breakdown,
		PaymentMethod:        req.PaymentMethod,
		PaymentStatus:        models.PaymentStatusPending,
		RequestedAt:          now,
		Version:              1,
		UpdatedAt:            now,
	}
	if err := uc.tripRepo.CreateTrip(ctx, trip); err != nil {
		if errors.Is(err, rides.ErrDuplicate) {
			return nil, apperror.ErrAlreadyActiveTrip
		}
		return nil, uc.translate(err)
	}

	candidateIDs := make([]string, len(candidates))
	for i, c := range candidates {
		candidateIDs[i] = c.DriverID
	}

	logger.InfoCtx(ctx, "Ride requested",
		logger.String("trip_id", trip.ID),
		logger.String("requester_id", trip.RequesterID),
		logger.Int("candidates", len(candidateIDs)),
		logger.String("fare_total", trip.Fare.Total.StringFixed(2)))

	uc.publish(ctx, &models.Event{
		Type:          models.EventTripRequested,
		Trip:          trip,
		CandidateIDs:  candidateIDs,
		PickupGeohash: utils.EncodeLocation(trip.Pickup, utils.PickupGeohashPrecision),
	})
	return trip, nil
}

// AcceptRide gives a REQUESTED trip to the first driver whose accept lands.
// Later accepts fail with TripNoLongerAvailable.
func (uc *rideUC) AcceptRide(ctx context.Context, driverID, tripID string) (*models.Trip, error) {
	if driverID == "" || tripID == "" {
		return nil, apperror.Validation("driver id and trip id are required")
	}

	trip, err := uc.getTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.Status != models.TripStatusRequested {
		logger.DebugCtx(ctx, "Trip already taken",
			logger.String("trip_id", tripID),
			logger.String("driver_id", driverID),
			logger.String("status", string(trip.Status)))
		return nil, apperror.ErrTripNoLongerAvailable
	}
	if trip.RequesterID == driverID {
		return nil, apperror.ErrPermissionDenied.WithMessage("drivers cannot accept their own ride request")
	}

	driver, err := uc.driverRepo.GetDriver(ctx, driverID)
	if err != nil {
		if errors.Is(err, rides.ErrNotFound) {
			return nil, apperror.ErrDriverNotFound
		}
		return nil, uc.translate(err)
	}
	if driver.ApprovalStatus != models.DriverApprovalApproved {
		return nil, apperror.ErrPermissionDenied.WithMessage("driver is not approved")
	}
	if driver.VehicleClass != trip.VehicleClass {
		return nil, apperror.ErrPermissionDenied.WithMessage("trip requires a %s vehicle", trip.VehicleClass)
	}

	accepted, err := uc.tripRepo.AcceptTrip(ctx, tripID, driverID, uc.now())
	switch {
	case errors.Is(err, rides.ErrPreconditionFailed):
		logger.DebugCtx(ctx, "Lost accept race",
			logger.String("trip_id", tripID),
			logger.String("driver_id", driverID))
		return nil, apperror.ErrTripNoLongerAvailable
	case errors.Is(err, rides.ErrDriverBusy):
		return nil, apperror.ErrDriverAlreadyActive
	case err != nil:
		return nil, uc.translate(err)
	}

	logger.InfoCtx(ctx, "Ride accepted",
		logger.String("trip_id", tripID),
		logger.String("driver_id", driverID))
	uc.publish(ctx, &models.Event{
		Type:          models.EventTripAccepted,
		Trip:          accepted,
		PreviousState: models.TripStatusRequested,
	})
	return accepted, nil
}

// EstimateFare prices a route without creating a trip
func (uc *rideUC) EstimateFare(ctx context.Context, pickup, dropoff models.Location, class models.VehicleClass) (*models.FareBreakdown, error) {
	if err := validateRoute(pickup, dropoff, class); err != nil {
		return nil, err
	}
	_, breakdown, err := uc.price(ctx, pickup, dropoff, class)
	return breakdown, err
}

func (uc *rideUC) price(ctx context.Context, pickup, dropoff models.Location, class models.VehicleClass) (route.Estimate, *models.FareBreakdown, error) {
	estimate, err := nrpkg.Trace(ctx, "route.Estimate", func() (route.Estimate, error) {
		return uc.router.Estimate(ctx, pickup, dropoff)
	})
	if err != nil {
		return route.Estimate{}, nil, apperror.External("route estimation failed", err)
	}

	breakdown, err := uc.rates.Calculate(fare.Input{
		DistanceKm:      estimate.DistanceKm,
		DurationMin:     estimate.DurationMin,
		VehicleClass:    class,
		SurgeMultiplier: uc.surge,
	})
	if err != nil {
		return route.Estimate{}, nil, err
	}
	return estimate, breakdown, nil
}

// findCandidates returns dispatchable drivers near pickup, closest first.
// The locator may still index drivers that are busy or went stale, so the
// search widens until enough candidates pass re-validation or every driver
// inside the radius has been seen.
func (uc *rideUC) findCandidates(ctx context.Context, pickup models.Location, class models.VehicleClass) ([]models.NearbyDriver, error) {
	known := make(map[string]*models.Driver)
	limit := uc.maxCandidates * candidateOverfetch
	for {
		nearby, err := uc.locator.Nearby(ctx, pickup, class, uc.searchRadiusKm, limit)
		if err != nil {
			return nil, apperror.External("driver search failed", err)
		}

		var unknown []string
		for _, n := range nearby {
			if _, ok := known[n.DriverID]; !ok {
				unknown = append(unknown, n.DriverID)
			}
		}
		if len(unknown) > 0 {
			drivers, err := uc.driverRepo.GetDrivers(ctx, unknown)
			if err != nil {
				return nil, uc.translate(err)
			}
			for _, id := range unknown {
				known[id] = nil
			}
			for _, d := range drivers {
				known[d.ID] = d
			}
		}

		candidates := make([]models.NearbyDriver, 0, uc.maxCandidates)
		for _, n := range nearby {
			d := known[n.DriverID]
			if d == nil || !d.Dispatchable(class) || n.DistanceKm > uc.searchRadiusKm {
				continue
			}
			candidates = append(candidates, n)
			if len(candidates) == uc.maxCandidates {
				break
			}
		}
		if len(candidates) == uc.maxCandidates || len(nearby) < limit {
			return candidates, nil
		}

		logger.DebugCtx(ctx, "Widening driver search",
			logger.Int("limit", limit),
			logger.Int("candidates", len(candidates)))
		limit *= 2
	}
}

func validateRoute(pickup, dropoff models.Location, class models.VehicleClass) error {
	if err := pickup.Validate(); err != nil {
		return apperror.Validation("invalid pickup location")
	}
	if err := dropoff.Validate(); err != nil {
		return apperror.Validation("invalid dropoff location")
	}
	if !class.Valid() {
		return apperror.Validation("unknown vehicle class %q", class)
	}
	return nil
}
