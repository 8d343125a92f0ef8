package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/piresc/ridepay/internal/pkg/apperror"
	"github.com/piresc/ridepay/internal/pkg/models"
	"github.com/piresc/ridepay/internal/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakyPublisher struct {
	failures int
	calls    int
	msgIDs   []string
	last     []byte
}

func (p *flakyPublisher) Publish(ctx context.Context, subject, msgID string, data []byte) error {
	p.calls++
	p.msgIDs = append(p.msgIDs, msgID)
	if p.calls <= p.failures {
		return errors.New("broker unavailable")
	}
	p.last = data
	return nil
}

func fastRetrier(maxRetries int) *retry.Retrier {
	return retry.New(retry.Config{MaxRetries: maxRetries, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond})
}

func TestEventPublisher_RetriesWithSameMessageID(t *testing.T) {
	pub := &flakyPublisher{failures: 2}
	p := NewEventPublisher(pub, fastRetrier(3))

	event := &models.Event{Type: models.EventWalletTopup, ReferenceID: "conf-1"}
	require.NoError(t, p.Publish(context.Background(), "wallet.topup", event))

	assert.Equal(t, 3, pub.calls)
	assert.NotEmpty(t, event.ID)
	assert.False(t, event.OccurredAt.IsZero())
	for _, id := range pub.msgIDs {
		assert.Equal(t, event.ID, id)
	}

	var decoded models.Event
	require.NoError(t, json.Unmarshal(pub.last, &decoded))
	assert.Equal(t, models.EventWalletTopup, decoded.Type)
	assert.Equal(t, "conf-1", decoded.ReferenceID)
}

func TestEventPublisher_GivesUp(t *testing.T) {
	pub := &flakyPublisher{failures: 10}
	p := NewEventPublisher(pub, fastRetrier(1))

	err := p.Publish(context.Background(), "trip.completed", &models.Event{Type: models.EventTripCompleted})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trip.completed")
	assert.ErrorIs(t, err, apperror.ErrEventPublish)
	assert.Equal(t, apperror.KindExternalService, apperror.KindOf(err))
	assert.Equal(t, 2, pub.calls)
}

func TestEventPublisher_NilRetrierPublishesOnce(t *testing.T) {
	pub := &flakyPublisher{failures: 1}
	p := NewEventPublisher(pub, nil)

	assert.Error(t, p.Publish(context.Background(), "trip.accepted", &models.Event{Type: models.EventTripAccepted}))
	assert.Equal(t, 1, pub.calls)
}
