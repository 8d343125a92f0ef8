package usecase

import (
	"context"
	"testing"

	"github.com/piresc/ridepay/internal/pkg/apperror"
	"github.com/piresc/ridepay/internal/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettleTripPayment_WalletTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.fund(t, "rider-1", "50", "conf-rider")
	trip := f.completedTrip(t, "rider-1", models.PaymentMethodWallet)

	require.NoError(t, f.uc.SettleTripPayment(ctx, trip.ID))

	assert.Equal(t, "28.94", f.balance(t, "rider-1"))
	assert.Equal(t, "17.90", f.balance(t, "driver-1"))

	stored, err := f.store.GetTrip(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, stored.PaymentStatus)

	paid := f.eventsOf(models.EventPaymentCompleted)
	require.Len(t, paid, 1)
	assert.Equal(t, trip.ID, paid[0].ReferenceID)
	assert.Len(t, paid[0].Transactions, 2)

	require.NoError(t, f.uc.SettleTripPayment(ctx, trip.ID))
	assert.Equal(t, "28.94", f.balance(t, "rider-1"))
	assert.Equal(t, "17.90", f.balance(t, "driver-1"))
	assert.Len(t, f.eventsOf(models.EventPaymentCompleted), 1)
}

func TestSettleTripPayment_InsufficientFundsMarksFailed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.fund(t, "rider-1", "10", "conf-rider")
	trip := f.completedTrip(t, "rider-1", models.PaymentMethodWallet)

	err := f.uc.SettleTripPayment(ctx, trip.ID)
	assert.ErrorIs(t, err, apperror.ErrInsufficientFunds)

	assert.Equal(t, "10.00", f.balance(t, "rider-1"))
	assert.Equal(t, "0.00", f.balance(t, "driver-1"))

	stored, err := f.store.GetTrip(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusFailed, stored.PaymentStatus)
	assert.Empty(t, f.eventsOf(models.EventPaymentCompleted))
}

func TestSettleTripPayment_CashTripChargesDriverFee(t *testing.T) {
	f := newFixture(t)
	f.fund(t, "driver-1", "10", "conf-driver")
	trip := f.completedTrip(t, "rider-1", models.PaymentMethodCash)

	require.NoError(t, f.uc.SettleTripPayment(context.Background(), trip.ID))

	assert.Equal(t, "6.84", f.balance(t, "driver-1"))
	assert.Equal(t, "0.00", f.balance(t, "rider-1"))
}

func TestSettleTripPayment_OnlyCompletedTrips(t *testing.T) {
	f := newFixture(t)
	f.onlineDriver(t, "driver-1", models.VehicleClassEconomy, nearby1)
	trip := f.request(t, "rider-1", models.PaymentMethodWallet)

	err := f.uc.SettleTripPayment(context.Background(), trip.ID)
	assertCode(t, err, "state_conflict")

	err = f.uc.SettleTripPayment(context.Background(), "missing")
	assertCode(t, err, "trip_not_found")
}

func TestRefundTripPayment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.fund(t, "rider-1", "50", "conf-rider")
	trip := f.completedTrip(t, "rider-1", models.PaymentMethodWallet)

	_, err := f.uc.RefundTripPayment(ctx, trip.ID, decimal.RequireFromString("5"), "before settlement")
	assertCode(t, err, "state_conflict")

	require.NoError(t, f.uc.SettleTripPayment(ctx, trip.ID))

	_, err = f.uc.RefundTripPayment(ctx, trip.ID, decimal.RequireFromString("21.07"), "too much")
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	txn, err := f.uc.RefundTripPayment(ctx, trip.ID, decimal.RequireFromString("21.06"), "driver no-show")
	require.NoError(t, err)
	assert.Equal(t, models.TransactionCredit, txn.Type)
	assert.Equal(t, "50.00", f.balance(t, "rider-1"))

	stored, err := f.store.GetTrip(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusRefunded, stored.PaymentStatus)

	_, err = f.uc.RefundTripPayment(ctx, trip.ID, decimal.RequireFromString("1"), "again")
	assertCode(t, err, "state_conflict")

	require.NoError(t, f.uc.SettleTripPayment(ctx, trip.ID))
	assert.Equal(t, "50.00", f.balance(t, "rider-1"))
}

func TestDriverShare(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, "17.90", f.uc.driverShare(decimal.RequireFromString("21.06")).StringFixed(2))
	assert.Equal(t, "8.50", f.uc.driverShare(decimal.RequireFromString("10")).StringFixed(2))
	assert.Equal(t, "0.00", f.uc.driverShare(decimal.Zero).StringFixed(2))
}
