package usecase

import (
	"context"
	"errors"
	"math"

	"github.com/piresc/ridepay/internal/pkg/apperror"
	"github.com/piresc/ridepay/internal/pkg/logger"
	"github.com/piresc/ridepay/internal/pkg/models"
	"github.com/piresc/ridepay/services/rides"
)

// tripMutation edits tr.Trip, a copy of the stored trip, and may attach
// driver side effects to tr. It runs again on a fresh copy when the
// conditional write loses to a concurrent update.
type tripMutation func(tr *models.TripTransition) error

// UpdateTripStatus advances a trip along its lifecycle on behalf of actorID.
// A move outside the transition table fails with a state conflict naming
// both statuses. Acceptance goes through AcceptRide and cancellation
// through CancelTrip.
func (uc *rideUC) UpdateTripStatus(ctx context.Context, actorID, tripID string, status models.TripStatus) (*models.Trip, error) {
	switch status {
	case models.TripStatusCancelled:
		return uc.cancel(ctx, actorID, tripID, "")
	case models.TripStatusRequested, models.TripStatusAccepted:
		current, err := uc.getTrip(ctx, tripID)
		if err != nil {
			return nil, err
		}
		if !current.Status.CanTransition(status) {
			return nil, apperror.StateConflict(string(current.Status), string(status))
		}
		return uc.AcceptRide(ctx, actorID, tripID)
	}
	if !status.Valid() {
		return nil, apperror.Validation("unknown trip status %q", status)
	}

	action := statusActions[status]
	var previous models.TripStatus
	trip, err := uc.mutateTrip(ctx, tripID, func(tr *models.TripTransition) error {
		t := tr.Trip
		if !t.Status.CanTransition(status) {
			return apperror.StateConflict(string(t.Status), string(status))
		}
		if !allowed(action, t, actorID) {
			return apperror.ErrPermissionDenied.WithMessage("only the assigned driver can move a trip to %s", status)
		}

		previous = t.Status
		now := uc.now()
		switch status {
		case models.TripStatusDriverArrived:
			t.ArrivedAt = &now
		case models.TripStatusInProgress:
			t.StartedAt = &now
		case models.TripStatusCompleted:
			t.CompletedAt = &now
			t.ActualDistanceKm = t.EstimatedDistanceKm
			if t.StartedAt != nil {
				t.ActualDurationMin = math.Round(now.Sub(*t.StartedAt).Minutes()*100) / 100
			}
			t.PaymentStatus = models.PaymentStatusProcessing
			tr.DriverAvailability = models.DriverOnline
			tr.DriverEarnings = &models.DriverEarnings{Trips: 1, Amount: uc.driverShare(t.Fare.Total)}
		}
		t.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Trip status changed",
		logger.String("trip_id", trip.ID),
		logger.String("from", string(previous)),
		logger.String("to", string(trip.Status)))

	uc.publish(ctx, &models.Event{
		Type:          models.EventTripStatusChanged,
		Trip:          trip,
		PreviousState: previous,
	})
	if trip.Status == models.TripStatusCompleted {
		uc.publish(ctx, &models.Event{
			Type:          models.EventTripCompleted,
			Trip:          trip,
			PreviousState: previous,
		})
	}
	return trip, nil
}

// CancelTrip cancels a trip that has not started yet. Only the requester and
// the assigned driver may cancel.
func (uc *rideUC) CancelTrip(ctx context.Context, actorID, tripID, reason string) error {
	_, err := uc.cancel(ctx, actorID, tripID, reason)
	return err
}

func (uc *rideUC) cancel(ctx context.Context, actorID, tripID, reason string) (*models.Trip, error) {
	var previous models.TripStatus
	trip, err := uc.mutateTrip(ctx, tripID, func(tr *models.TripTransition) error {
		t := tr.Trip
		if !t.Status.IsCancellable() {
			return apperror.ErrNotCancellable.WithMessage("trip is %s and can no longer be cancelled", t.Status)
		}
		if !allowed(actionCancel, t, actorID) {
			return apperror.ErrPermissionDenied.WithMessage("only the requester or the assigned driver can cancel")
		}

		previous = t.Status
		now := uc.now()
		t.Status = models.TripStatusCancelled
		t.CancelledAt = &now
		t.CancelledBy = actorID
		t.CancelReason = reason
		if t.DriverID != "" {
			tr.DriverAvailability = models.DriverOnline
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Trip cancelled",
		logger.String("trip_id", trip.ID),
		logger.String("cancelled_by", actorID),
		logger.String("previous_status", string(previous)))
	uc.publish(ctx, &models.Event{
		Type:          models.EventTripCancelled,
		Trip:          trip,
		PreviousState: previous,
	})
	return trip, nil
}

// mutateTrip applies fn to the stored trip with a compare-and-set on its
// status and version, reloading and reapplying fn when another write won
func (uc *rideUC) mutateTrip(ctx context.Context, tripID string, fn tripMutation) (*models.Trip, error) {
	for attempt := 1; attempt <= maxUpdateAttempts; attempt++ {
		current, err := uc.getTrip(ctx, tripID)
		if err != nil {
			return nil, err
		}

		tr := models.TripTransition{
			TripID:      current.ID,
			FromStatus:  current.Status,
			FromVersion: current.Version,
			Trip:        current.Clone(),
		}
		if err := fn(&tr); err != nil {
			return nil, err
		}
		tr.Trip.UpdatedAt = uc.now()

		updated, err := uc.tripRepo.UpdateTrip(ctx, tr)
		if err == nil {
			return updated, nil
		}
		if !errors.Is(err, rides.ErrPreconditionFailed) {
			return nil, uc.translate(err)
		}
		logger.DebugCtx(ctx, "Concurrent trip update, retrying",
			logger.String("trip_id", tripID),
			logger.Int("attempt", attempt))
	}
	return nil, apperror.ErrConcurrentUpdate
}

func (uc *rideUC) getTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	if tripID == "" {
		return nil, apperror.Validation("trip id is required")
	}
	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		if errors.Is(err, rides.ErrNotFound) {
			return nil, apperror.ErrTripNotFound
		}
		return nil, uc.translate(err)
	}
	return trip, nil
}

func (uc *rideUC) publish(ctx context.Context, event *models.Event) {
	if err := uc.rideGW.PublishTripEvent(ctx, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish trip event",
			logger.String("event", string(event.Type)),
			logger.String("trip_id", event.Trip.ID),
			logger.Err(err))
	}
}

// translate maps repository errors to application errors
func (uc *rideUC) translate(err error) error {
	var appErr *apperror.Error
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, rides.ErrNotFound):
		return apperror.ErrTripNotFound
	case errors.Is(err, rides.ErrDuplicate):
		return apperror.ErrAlreadyActiveTrip
	case errors.Is(err, rides.ErrDriverBusy):
		return apperror.ErrDriverAlreadyActive
	case errors.Is(err, rides.ErrPreconditionFailed):
		return apperror.ErrConcurrentUpdate
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		logger.Error("Trip storage failure", logger.Err(err))
		return apperror.Internal("trip storage failure", err)
	}
}
