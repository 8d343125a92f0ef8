package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/ridepay/internal/pkg/apperror"
	"github.com/piresc/ridepay/internal/pkg/models"
	"github.com/piresc/ridepay/services/rides/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternalHandler_SettlePayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewInternalHandler(mockUC)

	gomock.InOrder(
		mockUC.EXPECT().SettleTripPayment(gomock.Any(), "trip-1").Return(nil),
		mockUC.EXPECT().SettleTripPayment(gomock.Any(), "trip-2").Return(apperror.ErrInsufficientFunds),
	)

	c, rec := newContext(http.MethodPost, "/internal/rides/trip-1/settle", "", "", "id", "trip-1")
	require.NoError(t, handler.SettlePayment(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodPost, "/internal/rides/trip-2/settle", "", "", "id", "trip-2")
	require.NoError(t, handler.SettlePayment(c))
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reason":"insufficient_funds"`)
}

func TestInternalHandler_RefundPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewInternalHandler(mockUC)

	mockUC.EXPECT().
		RefundTripPayment(gomock.Any(), "trip-1", gomock.Any(), "driver no-show").
		DoAndReturn(func(ctx context.Context, tripID string, amount decimal.Decimal, reason string) (*models.Transaction, error) {
			assert.Equal(t, "5.00", amount.StringFixed(2))
			return &models.Transaction{ID: "tx-refund", Amount: amount, Type: models.TransactionCredit}, nil
		})

	c, rec := newContext(http.MethodPost, "/internal/rides/trip-1/refund", `{"amount":"5.00","reason":"driver no-show"}`, "", "id", "trip-1")
	require.NoError(t, handler.RefundPayment(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"tx-refund"`)
}

func TestInternalHandler_RegisterDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewInternalHandler(mockUC)

	mockUC.EXPECT().
		RegisterDriver(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, d models.Driver) (*models.Driver, error) {
			assert.Equal(t, "driver-7", d.ID)
			assert.Equal(t, models.DriverApprovalApproved, d.ApprovalStatus)
			d.Availability = models.DriverOffline
			return &d, nil
		})

	body := `{"approval_status":"APPROVED","vehicle_class":"xl"}`
	c, rec := newContext(http.MethodPut, "/internal/drivers/driver-7", body, "", "id", "driver-7")
	require.NoError(t, handler.RegisterDriver(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"availability":"OFFLINE"`)
}

func TestDriverHandler_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewDriverHandler(mockUC)

	mockUC.EXPECT().
		UpdateDriverStatus(gomock.Any(), "driver-1", gomock.Any()).
		DoAndReturn(func(ctx context.Context, id string, u models.DriverStatusUpdate) (*models.Driver, error) {
			require.NotNil(t, u.Location)
			assert.Equal(t, models.DriverOnline, u.Availability)
			return nil, apperror.ErrDriverAlreadyActive
		})

	body := `{"availability":"ONLINE","location":{"latitude":-6.2,"longitude":106.8}}`
	c, rec := newContext(http.MethodPut, "/api/v1/drivers/me/status", body, "driver-1")
	require.NoError(t, handler.UpdateStatus(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reason":"driver_already_active"`)
}
