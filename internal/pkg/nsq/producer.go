package nsq

import (
	"context"
	"fmt"

	"github.com/nsqio/go-nsq"
)

// Producer handles publishing messages to NSQ topics
type Producer struct {
	producer *nsq.Producer
}

// NewProducer creates a new NSQ producer
func NewProducer(address string) (*Producer, error) {
	config := nsq.NewConfig()
	producer, err := nsq.NewProducer(address, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}

	// Ping the NSQ daemon to ensure connectivity
	if err := producer.Ping(); err != nil {
		producer.Stop()
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	producer.SetLogger(zapBridge{}, nsqLogLevel)
	return &Producer{producer: producer}, nil
}

// Publish sends data to the topic named after subject. NSQ has no publish
// deduplication, so msgID is ignored and consumers must stay idempotent.
func (p *Producer) Publish(ctx context.Context, subject, msgID string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := p.producer.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// Ping checks the connection to nsqd
func (p *Producer) Ping(ctx context.Context) error {
	return p.producer.Ping()
}

// Stop gracefully stops the producer
func (p *Producer) Stop() {
	p.producer.Stop()
}
