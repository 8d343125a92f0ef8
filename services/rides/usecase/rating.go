package usecase

import (
	"context"

	"github.com/piresc/ridepay/internal/pkg/apperror"
	"github.com/piresc/ridepay/internal/pkg/logger"
	"github.com/piresc/ridepay/internal/pkg/models"
)

const (
	minRating = 1
	maxRating = 5
)

// RateTrip records the requester's rating of the driver or the driver's
// rating of the requester. Each side rates a completed trip once.
func (uc *rideUC) RateTrip(ctx context.Context, actorID, tripID string, rating int, comment string) error {
	if rating < minRating || rating > maxRating {
		return apperror.Validation("rating must be between %d and %d", minRating, maxRating)
	}

	_, err := uc.mutateTrip(ctx, tripID, func(tr *models.TripTransition) error {
		t := tr.Trip
		if !allowed(actionRate, t, actorID) {
			return apperror.ErrPermissionDenied.WithMessage("only trip participants can rate a trip")
		}
		if t.Status != models.TripStatusCompleted {
			return apperror.ErrStateConflict.WithMessage("trip is %s, only completed trips can be rated", t.Status)
		}

		r := rating
		switch relationTo(t, actorID) {
		case relRequester:
			if t.PassengerRating != nil {
				return apperror.ErrAlreadyRated
			}
			t.PassengerRating, t.PassengerComment = &r, comment
		case relDriver:
			if t.DriverRating != nil {
				return apperror.ErrAlreadyRated
			}
			t.DriverRating, t.DriverComment = &r, comment
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Trip rated",
		logger.String("trip_id", tripID),
		logger.String("actor_id", actorID),
		logger.Int("rating", rating))
	return nil
}

// GetTrip returns a trip to one of its participants. Open requests are
// visible to any driver so candidates can review them before accepting.
func (uc *rideUC) GetTrip(ctx context.Context, actorID, tripID string) (*models.Trip, error) {
	trip, err := uc.getTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !allowed(actionView, trip, actorID) && trip.Status != models.TripStatusRequested {
		return nil, apperror.ErrPermissionDenied
	}
	return trip, nil
}
