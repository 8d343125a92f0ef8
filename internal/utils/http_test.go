package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ridepay/internal/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := SuccessResponse(c, http.StatusCreated, "Resource created", map[string]string{"id": "123"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Resource created", resp.Message)
}

func TestAppErrorResponse(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantReason string
	}{
		{"validation", apperror.Validation("bad input"), http.StatusBadRequest, "validation_error"},
		{"not found", apperror.ErrTripNotFound, http.StatusNotFound, "trip_not_found"},
		{"permission", apperror.ErrPermissionDenied, http.StatusForbidden, "permission_denied"},
		{"state conflict", apperror.ErrNotCancellable, http.StatusConflict, "not_cancellable"},
		{"lost race", apperror.ErrTripNoLongerAvailable, http.StatusConflict, "trip_no_longer_available"},
		{"funds", apperror.ErrInsufficientFunds, http.StatusPaymentRequired, "insufficient_funds"},
		{"limit", apperror.ErrDailyLimitExceeded, http.StatusUnprocessableEntity, "daily_limit_exceeded"},
		{"external", apperror.External("maps", errors.New("down")), http.StatusBadGateway, "external_service_error"},
		{"plain", errors.New("db exploded"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, AppErrorResponse(c, tt.err))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantReason, resp.Reason)
			if tt.wantStatus == http.StatusInternalServerError {
				assert.Equal(t, "Internal server error", resp.Error)
			}
		})
	}
}
