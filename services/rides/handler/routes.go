package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/ridepay/services/rides"
	httpHandler "github.com/piresc/ridepay/services/rides/handler/http"
)

// Handler combines all handlers for the rides service
type Handler struct {
	rideHTTP     *httpHandler.RideHandler
	driverHTTP   *httpHandler.DriverHandler
	internalHTTP *httpHandler.InternalHandler
}

// NewHandler creates a new combined handler
func NewHandler(rideUC rides.RideUC) *Handler {
	return &Handler{
		rideHTTP:     httpHandler.NewRideHandler(rideUC),
		driverHTTP:   httpHandler.NewDriverHandler(rideUC),
		internalHTTP: httpHandler.NewInternalHandler(rideUC),
	}
}

// RegisterRoutes registers the rider and driver endpoints on an authenticated
// group. requestLimit, when not nil, guards ride creation.
func (h *Handler) RegisterRoutes(api *echo.Group, requestLimit echo.MiddlewareFunc) {
	r := api.Group("/rides")
	if requestLimit != nil {
		r.POST("", h.rideHTTP.RequestRide, requestLimit)
	} else {
		r.POST("", h.rideHTTP.RequestRide)
	}
	r.POST("/estimate", h.rideHTTP.EstimateFare)
	r.GET("/:id", h.rideHTTP.GetTrip)
	r.POST("/:id/accept", h.rideHTTP.AcceptRide)
	r.POST("/:id/status", h.rideHTTP.UpdateTripStatus)
	r.POST("/:id/cancel", h.rideHTTP.CancelTrip)
	r.POST("/:id/rating", h.rideHTTP.RateTrip)

	api.PUT("/drivers/me/status", h.driverHTTP.UpdateStatus)
}

// RegisterInternalRoutes registers the service-to-service endpoints on an
// API-key protected group
func (h *Handler) RegisterInternalRoutes(internal *echo.Group) {
	internal.POST("/rides/:id/settle", h.internalHTTP.SettlePayment)
	internal.POST("/rides/:id/refund", h.internalHTTP.RefundPayment)
	internal.PUT("/drivers/:id", h.internalHTTP.RegisterDriver)
}
