package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ridepay/internal/pkg/models"
	nrpkg "github.com/piresc/ridepay/internal/pkg/newrelic"
	"github.com/piresc/ridepay/internal/utils"
	"github.com/piresc/ridepay/services/rides"
)

// InternalHandler serves the API-key protected operations other services call
type InternalHandler struct {
	rideUC rides.RideUC
}

// NewInternalHandler creates a new internal HTTP handler
func NewInternalHandler(rideUC rides.RideUC) *InternalHandler {
	return &InternalHandler{
		rideUC: rideUC,
	}
}

// SettlePayment settles a completed trip. Repeated calls are no-ops.
func (h *InternalHandler) SettlePayment(c echo.Context) error {
	tripID := c.Param("id")
	if err := h.rideUC.SettleTripPayment(c.Request().Context(), tripID); err != nil {
		nrpkg.NoticeTransactionError(nrpkg.FromEchoContext(c), err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip payment settled successfully", map[string]string{"trip_id": tripID})
}

func (h *InternalHandler) RefundPayment(c echo.Context) error {
	var req models.RefundRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	txn, err := h.rideUC.RefundTripPayment(c.Request().Context(), c.Param("id"), req.Amount, req.Reason)
	if err != nil {
		nrpkg.NoticeTransactionError(nrpkg.FromEchoContext(c), err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Trip payment refunded successfully", txn)
}

// RegisterDriver creates or updates the onboarding record of a driver
func (h *InternalHandler) RegisterDriver(c echo.Context) error {
	var req models.Driver
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	req.ID = c.Param("id")

	driver, err := h.rideUC.RegisterDriver(c.Request().Context(), req)
	if err != nil {
		nrpkg.NoticeTransactionError(nrpkg.FromEchoContext(c), err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver registered successfully", driver)
}
