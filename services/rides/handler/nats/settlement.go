package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/ridepay/internal/pkg/apperror"
	"github.com/piresc/ridepay/internal/pkg/constants"
	"github.com/piresc/ridepay/internal/pkg/eventbus"
	"github.com/piresc/ridepay/internal/pkg/logger"
	"github.com/piresc/ridepay/internal/pkg/models"
	nrpkg "github.com/piresc/ridepay/internal/pkg/newrelic"
	"github.com/piresc/ridepay/services/rides"
)

// SettlementHandler settles trip payments from trip.completed events
type SettlementHandler struct {
	rideUC     rides.RideUC
	subscriber eventbus.Subscriber
	nrApp      *newrelic.Application
}

// NewSettlementHandler creates a new settlement event handler
func NewSettlementHandler(rideUC rides.RideUC, subscriber eventbus.Subscriber, nrApp *newrelic.Application) *SettlementHandler {
	return &SettlementHandler{
		rideUC:     rideUC,
		subscriber: subscriber,
		nrApp:      nrApp,
	}
}

// InitConsumers subscribes the settlement consumer
func (h *SettlementHandler) InitConsumers(ctx context.Context) error {
	handler := nrpkg.TraceConsumer(h.nrApp, "settlement/"+constants.SubjectTripCompleted, h.handleTripCompleted)
	if err := h.subscriber.Subscribe(ctx, constants.SubjectTripCompleted, constants.ConsumerSettlement, handler); err != nil {
		return fmt.Errorf("failed to subscribe to trip completed events: %w", err)
	}
	return nil
}

// handleTripCompleted returns an error only when a redelivery could succeed.
// Business rejections are final: the trip is already marked failed.
func (h *SettlementHandler) handleTripCompleted(ctx context.Context, data []byte) error {
	var event models.Event
	if err := json.Unmarshal(data, &event); err != nil {
		logger.ErrorCtx(ctx, "Failed to unmarshal trip completed event", logger.Err(err))
		return nil
	}
	if event.Trip == nil || event.Trip.ID == "" {
		logger.WarnCtx(ctx, "Trip completed event without trip", logger.String("event_id", event.ID))
		return nil
	}

	err := h.rideUC.SettleTripPayment(ctx, event.Trip.ID)
	if err == nil {
		return nil
	}

	switch apperror.KindOf(err) {
	case apperror.KindInternal, apperror.KindExternalService, apperror.KindConcurrency:
		logger.ErrorCtx(ctx, "Trip settlement failed, will retry",
			logger.String("trip_id", event.Trip.ID),
			logger.Err(err))
		return err
	default:
		logger.WarnCtx(ctx, "Trip settlement rejected",
			logger.String("trip_id", event.Trip.ID),
			logger.String("reason", apperror.CodeOf(err)),
			logger.Err(err))
		return nil
	}
}
