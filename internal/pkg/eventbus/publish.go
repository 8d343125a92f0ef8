package eventbus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/ridepay/internal/pkg/apperror"
	"github.com/piresc/ridepay/internal/pkg/models"
	"github.com/piresc/ridepay/internal/pkg/retry"
)

// EventPublisher marshals domain events and publishes them with retries.
// The event id doubles as the broker message id, so retried publishes can be
// deduplicated.
type EventPublisher struct {
	publisher Publisher
	retrier   *retry.Retrier
}

// NewEventPublisher wraps pub. A nil retrier publishes once.
func NewEventPublisher(pub Publisher, retrier *retry.Retrier) *EventPublisher {
	if retrier == nil {
		retrier = retry.New(retry.Config{MaxRetries: 0})
	}
	return &EventPublisher{publisher: pub, retrier: retrier}
}

// Publish sends event on subject, filling in its id and timestamp when unset.
// A broker failure that survives the retries is reported as ErrEventPublish.
func (p *EventPublisher) Publish(ctx context.Context, subject string, event *models.Event) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = models.Now()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", event.Type, err)
	}

	err = p.retrier.Execute(ctx, func(ctx context.Context) error {
		return p.publisher.Publish(ctx, subject, event.ID, data)
	})
	if err != nil {
		return apperror.EventPublish(string(event.Type), err)
	}
	return nil
}
