package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/ridepay/internal/pkg/apperror"
	"github.com/piresc/ridepay/internal/pkg/logger"
	"github.com/piresc/ridepay/internal/pkg/models"
	"github.com/piresc/ridepay/services/rides/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target, body, actorID string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if actorID != "" {
		c.Set(logger.ActorKey, actorID)
	}
	if len(params) == 2 {
		c.SetParamNames(params[0])
		c.SetParamValues(params[1])
	}
	return c, rec
}

func TestRideHandler_RequestRide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewRideHandler(mockUC)

	mockUC.EXPECT().
		RequestRide(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req models.RideRequest) (*models.Trip, error) {
			assert.Equal(t, "rider-1", req.RequesterID)
			assert.Equal(t, models.VehicleClassEconomy, req.VehicleClass)
			assert.Equal(t, -6.2, req.Pickup.Latitude)
			return &models.Trip{ID: "trip-1", RequesterID: req.RequesterID, Status: models.TripStatusRequested}, nil
		})

	body := `{"pickup":{"latitude":-6.2,"longitude":106.8},"dropoff":{"latitude":-6.25,"longitude":106.85},"vehicle_class":"economy"}`
	c, rec := newContext(http.MethodPost, "/api/v1/rides", body, "rider-1")
	require.NoError(t, handler.RequestRide(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"trip-1"`)
}

func TestRideHandler_RequestRide_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantReason string
	}{
		{"no drivers", apperror.ErrNoDriversAvailable, http.StatusNotFound, "no_drivers_available"},
		{"active trip", apperror.ErrAlreadyActiveTrip, http.StatusConflict, "already_active_trip"},
		{"invalid input", apperror.Validation("pickup latitude out of range"), http.StatusBadRequest, ""},
		{"routing down", apperror.External("route estimate failed", assert.AnError), http.StatusBadGateway, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockRideUC(ctrl)
			handler := NewRideHandler(mockUC)
			mockUC.EXPECT().RequestRide(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			c, rec := newContext(http.MethodPost, "/api/v1/rides", `{"vehicle_class":"economy"}`, "rider-1")
			require.NoError(t, handler.RequestRide(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantReason != "" {
				assert.Contains(t, rec.Body.String(), `"reason":"`+tt.wantReason+`"`)
			}
		})
	}
}

func TestRideHandler_RequiresActor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewRideHandler(mocks.NewMockRideUC(ctrl))

	c, rec := newContext(http.MethodPost, "/api/v1/rides", `{}`, "")
	require.NoError(t, handler.RequestRide(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	c, rec = newContext(http.MethodPost, "/api/v1/rides/trip-1/accept", "", "", "id", "trip-1")
	require.NoError(t, handler.AcceptRide(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRideHandler_EstimateFare(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewRideHandler(mockUC)

	mockUC.EXPECT().
		EstimateFare(gomock.Any(), gomock.Any(), gomock.Any(), models.VehicleClassComfort).
		Return(&models.FareBreakdown{Total: decimal.RequireFromString("21.06"), Currency: "USD"}, nil)

	body := `{"pickup":{"latitude":-6.2,"longitude":106.8},"dropoff":{"latitude":-6.25,"longitude":106.85},"vehicle_class":"comfort"}`
	c, rec := newContext(http.MethodPost, "/api/v1/rides/estimate", body, "rider-1")
	require.NoError(t, handler.EstimateFare(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"21.06"`)
}

func TestRideHandler_AcceptRide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewRideHandler(mockUC)

	gomock.InOrder(
		mockUC.EXPECT().AcceptRide(gomock.Any(), "driver-1", "trip-1").
			Return(&models.Trip{ID: "trip-1", DriverID: "driver-1", Status: models.TripStatusAccepted}, nil),
		mockUC.EXPECT().AcceptRide(gomock.Any(), "driver-2", "trip-1").
			Return(nil, apperror.ErrTripNoLongerAvailable),
	)

	c, rec := newContext(http.MethodPost, "/api/v1/rides/trip-1/accept", "", "driver-1", "id", "trip-1")
	require.NoError(t, handler.AcceptRide(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ACCEPTED"`)

	c, rec = newContext(http.MethodPost, "/api/v1/rides/trip-1/accept", "", "driver-2", "id", "trip-1")
	require.NoError(t, handler.AcceptRide(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reason":"trip_no_longer_available"`)
}

func TestRideHandler_UpdateTripStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewRideHandler(mockUC)

	mockUC.EXPECT().
		UpdateTripStatus(gomock.Any(), "driver-1", "trip-1", models.TripStatusInProgress).
		Return(nil, apperror.StateConflict(string(models.TripStatusAccepted), string(models.TripStatusInProgress)))

	c, rec := newContext(http.MethodPost, "/api/v1/rides/trip-1/status", `{"status":"IN_PROGRESS"}`, "driver-1", "id", "trip-1")
	require.NoError(t, handler.UpdateTripStatus(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reason":"state_conflict"`)

	c, rec = newContext(http.MethodPost, "/api/v1/rides/trip-1/status", `{}`, "driver-1", "id", "trip-1")
	require.NoError(t, handler.UpdateTripStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRideHandler_CancelTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewRideHandler(mockUC)

	gomock.InOrder(
		mockUC.EXPECT().CancelTrip(gomock.Any(), "rider-1", "trip-1", "changed plans").Return(nil),
		mockUC.EXPECT().CancelTrip(gomock.Any(), "rider-1", "trip-2", "").Return(apperror.ErrNotCancellable),
	)

	c, rec := newContext(http.MethodPost, "/api/v1/rides/trip-1/cancel", `{"reason":"changed plans"}`, "rider-1", "id", "trip-1")
	require.NoError(t, handler.CancelTrip(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodPost, "/api/v1/rides/trip-2/cancel", `{}`, "rider-1", "id", "trip-2")
	require.NoError(t, handler.CancelTrip(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reason":"not_cancellable"`)
}

func TestRideHandler_RateTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewRideHandler(mockUC)

	mockUC.EXPECT().RateTrip(gomock.Any(), "rider-1", "trip-1", 5, "smooth ride").Return(nil)

	c, rec := newContext(http.MethodPost, "/api/v1/rides/trip-1/rating", `{"rating":5,"comment":"smooth ride"}`, "rider-1", "id", "trip-1")
	require.NoError(t, handler.RateTrip(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRideHandler_GetTrip_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewRideHandler(mockUC)

	mockUC.EXPECT().GetTrip(gomock.Any(), "stranger", "trip-1").Return(nil, apperror.ErrPermissionDenied)

	c, rec := newContext(http.MethodGet, "/api/v1/rides/trip-1", "", "stranger", "id", "trip-1")
	require.NoError(t, handler.GetTrip(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
