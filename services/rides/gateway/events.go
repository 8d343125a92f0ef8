package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/ridepay/internal/pkg/constants"
	"github.com/piresc/ridepay/internal/pkg/eventbus"
	"github.com/piresc/ridepay/internal/pkg/models"
)

var tripSubjects = map[models.EventType]string{
	models.EventTripRequested:     constants.SubjectTripRequested,
	models.EventTripAccepted:      constants.SubjectTripAccepted,
	models.EventTripStatusChanged: constants.SubjectTripStatusChanged,
	models.EventTripCancelled:     constants.SubjectTripCancelled,
	models.EventTripCompleted:     constants.SubjectTripCompleted,
	models.EventPaymentCompleted:  constants.SubjectPaymentCompleted,
}

// RideGW publishes trip lifecycle and payment events on the event bus
type RideGW struct {
	publisher *eventbus.EventPublisher
}

// NewRideGW creates a new ride gateway
func NewRideGW(publisher *eventbus.EventPublisher) *RideGW {
	return &RideGW{publisher: publisher}
}

func (g *RideGW) PublishTripEvent(ctx context.Context, event *models.Event) error {
	subject, ok := tripSubjects[event.Type]
	if !ok {
		return fmt.Errorf("unsupported trip event %s", event.Type)
	}
	return g.publisher.Publish(ctx, subject, event)
}
