package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ridepay/internal/pkg/middleware"
	"github.com/piresc/ridepay/internal/pkg/models"
	nrpkg "github.com/piresc/ridepay/internal/pkg/newrelic"
	"github.com/piresc/ridepay/internal/utils"
	"github.com/piresc/ridepay/services/rides"
)

// RideHandler handles HTTP requests for ride requests and trips
type RideHandler struct {
	rideUC rides.RideUC
}

// NewRideHandler creates a new ride HTTP handler
func NewRideHandler(rideUC rides.RideUC) *RideHandler {
	return &RideHandler{
		rideUC: rideUC,
	}
}

// RequestRide creates a trip for the caller and offers it to nearby drivers
func (h *RideHandler) RequestRide(c echo.Context) error {
	actorID := middleware.ActorID(c)
	if actorID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.RideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	req.RequesterID = actorID

	trip, err := h.rideUC.RequestRide(c.Request().Context(), req)
	if err != nil {
		nrpkg.NoticeTransactionError(nrpkg.FromEchoContext(c), err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Ride requested successfully", trip)
}

// EstimateFare quotes a ride without creating it
func (h *RideHandler) EstimateFare(c echo.Context) error {
	var req models.FareEstimateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	fare, err := h.rideUC.EstimateFare(c.Request().Context(), req.Pickup, req.Dropoff, req.VehicleClass)
	if err != nil {
		nrpkg.NoticeTransactionError(nrpkg.FromEchoContext(c), err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Fare estimated successfully", fare)
}

func (h *RideHandler) GetTrip(c echo.Context) error {
	actorID := middleware.ActorID(c)
	if actorID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	trip, err := h.rideUC.GetTrip(c.Request().Context(), actorID, c.Param("id"))
	if err != nil {
		nrpkg.NoticeTransactionError(nrpkg.FromEchoContext(c), err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip retrieved successfully", trip)
}

// AcceptRide assigns the calling driver to a requested trip
func (h *RideHandler) AcceptRide(c echo.Context) error {
	actorID := middleware.ActorID(c)
	if actorID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	trip, err := h.rideUC.AcceptRide(c.Request().Context(), actorID, c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride accepted successfully", trip)
}

// UpdateTripStatus moves a trip along its lifecycle
func (h *RideHandler) UpdateTripStatus(c echo.Context) error {
	actorID := middleware.ActorID(c)
	if actorID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.TripStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Status == "" {
		return utils.BadRequestResponse(c, "status is required")
	}

	trip, err := h.rideUC.UpdateTripStatus(c.Request().Context(), actorID, c.Param("id"), req.Status)
	if err != nil {
		nrpkg.NoticeTransactionError(nrpkg.FromEchoContext(c), err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip status updated successfully", trip)
}

func (h *RideHandler) CancelTrip(c echo.Context) error {
	actorID := middleware.ActorID(c)
	if actorID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CancelTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.rideUC.CancelTrip(c.Request().Context(), actorID, c.Param("id"), req.Reason); err != nil {
		nrpkg.NoticeTransactionError(nrpkg.FromEchoContext(c), err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip cancelled successfully", nil)
}

// RateTrip records the caller's rating of a completed trip
func (h *RideHandler) RateTrip(c echo.Context) error {
	actorID := middleware.ActorID(c)
	if actorID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.RateTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.rideUC.RateTrip(c.Request().Context(), actorID, c.Param("id"), req.Rating, req.Comment); err != nil {
		nrpkg.NoticeTransactionError(nrpkg.FromEchoContext(c), err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip rated successfully", nil)
}
