// Package eventbus is the at-least-once publish/subscribe seam between the
// usecases and the message broker.
package eventbus

import (
	"context"
	"fmt"

	"github.com/piresc/ridepay/internal/pkg/models"
	"github.com/piresc/ridepay/internal/pkg/nats"
	"github.com/piresc/ridepay/internal/pkg/nsq"
)

// Handler processes one delivered message. Returning an error asks the
// broker to redeliver it later.
type Handler = func(ctx context.Context, data []byte) error

// Publisher publishes raw payloads. msgID lets brokers that support it drop
// duplicates of a retried publish.
type Publisher interface {
	Publish(ctx context.Context, subject, msgID string, data []byte) error
}

// Subscriber registers durable consumers
type Subscriber interface {
	Subscribe(ctx context.Context, subject, durable string, handler Handler) error
}

// Bus is a connected publisher and subscriber
type Bus interface {
	Publisher
	Subscriber
	Ping(ctx context.Context) error
	Close() error
}

// New connects the bus selected by cfg.EventBus.Type
func New(cfg *models.Config) (Bus, error) {
	switch cfg.EventBus.Type {
	case "", "nats":
		client, err := nats.NewClient(cfg.NATS.URL)
		if err != nil {
			return nil, err
		}
		return client, nil
	case "nsq":
		producer, err := nsq.NewProducer(cfg.NSQ.NSQDAddress)
		if err != nil {
			return nil, err
		}
		return &nsqBus{
			Producer:   producer,
			Subscriber: nsq.NewSubscriber(cfg.NSQ.NSQDAddress, cfg.NSQ.LookupdAddress, cfg.NSQ.MaxAttempts),
		}, nil
	case "memory":
		return NewMemoryBus(5), nil
	default:
		return nil, fmt.Errorf("unknown event bus type %q", cfg.EventBus.Type)
	}
}

type nsqBus struct {
	*nsq.Producer
	*nsq.Subscriber
}

func (b *nsqBus) Close() error {
	b.Subscriber.Stop()
	b.Producer.Stop()
	return nil
}
