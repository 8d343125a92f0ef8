package usecase

import (
	"context"

	"github.com/piresc/ridepay/internal/pkg/apperror"
	"github.com/piresc/ridepay/internal/pkg/logger"
	"github.com/piresc/ridepay/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// SettleTripPayment moves the fare of a completed trip through the wallet
// ledger. It is safe to call again for the same trip.
func (uc *rideUC) SettleTripPayment(ctx context.Context, tripID string) error {
	trip, err := uc.getTrip(ctx, tripID)
	if err != nil {
		return err
	}
	if trip.Status != models.TripStatusCompleted {
		return apperror.ErrStateConflict.WithMessage("trip is %s, only completed trips are settled", trip.Status)
	}
	switch trip.PaymentStatus {
	case models.PaymentStatusCompleted, models.PaymentStatusRefunded:
		logger.DebugCtx(ctx, "Trip payment already settled", logger.String("trip_id", tripID))
		return nil
	}

	share := uc.driverShare(trip.Fare.Total)
	txns, err := uc.walletUC.SettleRide(ctx, models.RideSettlement{
		TripID:      trip.ID,
		RequesterID: trip.RequesterID,
		DriverID:    trip.DriverID,
		Method:      trip.PaymentMethod,
		Total:       trip.Fare.Total,
		DriverShare: share,
		PlatformFee: trip.Fare.Total.Sub(share),
	})
	if err != nil {
		if settlementRejected(err) {
			logger.WarnCtx(ctx, "Trip payment rejected",
				logger.String("trip_id", tripID),
				logger.String("reason", apperror.CodeOf(err)))
			if _, markErr := uc.setPaymentStatus(ctx, tripID, models.PaymentStatusFailed); markErr != nil {
				logger.ErrorCtx(ctx, "Failed to mark trip payment failed",
					logger.String("trip_id", tripID),
					logger.Err(markErr))
			}
		}
		return err
	}

	settled, err := uc.setPaymentStatus(ctx, tripID, models.PaymentStatusCompleted)
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Trip payment completed",
		logger.String("trip_id", tripID),
		logger.String("payment_method", string(trip.PaymentMethod)),
		logger.String("total", trip.Fare.Total.StringFixed(2)),
		logger.String("driver_share", share.StringFixed(2)))
	uc.publish(ctx, &models.Event{
		Type:         models.EventPaymentCompleted,
		Trip:         settled,
		Transactions: txns,
		ReferenceID:  trip.ID,
	})
	return nil
}

// RefundTripPayment credits amount back to the requester of a settled trip.
// A full refund marks the trip payment refunded.
func (uc *rideUC) RefundTripPayment(ctx context.Context, tripID string, amount decimal.Decimal, reason string) (*models.Transaction, error) {
	trip, err := uc.getTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.PaymentStatus != models.PaymentStatusCompleted {
		return nil, apperror.ErrStateConflict.WithMessage("trip payment is %s, only completed payments are refunded", trip.PaymentStatus)
	}
	amount = models.RoundMoney(amount)
	if amount.GreaterThan(trip.Fare.Total) {
		return nil, apperror.Validation("refund %s exceeds fare %s", amount.StringFixed(2), trip.Fare.Total.StringFixed(2))
	}

	txn, err := uc.walletUC.RefundRide(ctx, trip.ID, trip.RequesterID, amount, reason)
	if err != nil {
		return nil, err
	}

	if amount.Equal(trip.Fare.Total) {
		if _, err := uc.setPaymentStatus(ctx, tripID, models.PaymentStatusRefunded); err != nil {
			logger.ErrorCtx(ctx, "Failed to mark trip payment refunded",
				logger.String("trip_id", tripID),
				logger.Err(err))
		}
	}

	logger.InfoCtx(ctx, "Trip payment refunded",
		logger.String("trip_id", tripID),
		logger.String("amount", amount.StringFixed(2)))
	return txn, nil
}

func (uc *rideUC) setPaymentStatus(ctx context.Context, tripID string, status models.PaymentStatus) (*models.Trip, error) {
	return uc.mutateTrip(ctx, tripID, func(tr *models.TripTransition) error {
		tr.Trip.PaymentStatus = status
		return nil
	})
}

// driverShare is the part of total paid out to the driver after the platform fee
func (uc *rideUC) driverShare(total decimal.Decimal) decimal.Decimal {
	return models.RoundMoney(total.Mul(decimal.NewFromInt(1).Sub(uc.platformFeeRate)))
}

// settlementRejected reports whether the ledger refused the settlement for a
// reason that redelivery will not fix
func settlementRejected(err error) bool {
	switch apperror.KindOf(err) {
	case apperror.KindInsufficientFunds, apperror.KindLimitExceeded, apperror.KindValidation:
		return true
	}
	return false
}
