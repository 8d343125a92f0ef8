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

// DriverHandler handles HTTP requests from drivers about their own state
type DriverHandler struct {
	rideUC rides.RideUC
}

// NewDriverHandler creates a new driver HTTP handler
func NewDriverHandler(rideUC rides.RideUC) *DriverHandler {
	return &DriverHandler{
		rideUC: rideUC,
	}
}

// UpdateStatus sets the calling driver's availability and position
func (h *DriverHandler) UpdateStatus(c echo.Context) error {
	actorID := middleware.ActorID(c)
	if actorID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.DriverStatusUpdate
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	driver, err := h.rideUC.UpdateDriverStatus(c.Request().Context(), actorID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(nrpkg.FromEchoContext(c), err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver status updated successfully", driver)
}
