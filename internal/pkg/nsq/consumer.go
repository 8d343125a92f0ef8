package nsq

import (
	"context"
	"fmt"
	"sync"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/ridepay/internal/pkg/logger"
)

// Subscriber creates NSQ consumers, one per subject and channel
type Subscriber struct {
	nsqdAddress    string
	lookupdAddress string
	maxAttempts    int

	mu        sync.Mutex
	consumers []*nsq.Consumer
}

// NewSubscriber creates a subscriber connecting through lookupd when an
// address is given, directly to nsqd otherwise.
func NewSubscriber(nsqdAddress, lookupdAddress string, maxAttempts int) *Subscriber {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	return &Subscriber{
		nsqdAddress:    nsqdAddress,
		lookupdAddress: lookupdAddress,
		maxAttempts:    maxAttempts,
	}
}

// Subscribe consumes subject on the channel named durable. A handler error
// requeues the message until MaxAttempts is reached.
func (s *Subscriber) Subscribe(ctx context.Context, subject, durable string, handler func(context.Context, []byte) error) error {
	config := nsq.NewConfig()
	config.MaxAttempts = uint16(s.maxAttempts)

	consumer, err := nsq.NewConsumer(subject, durable, config)
	if err != nil {
		return fmt.Errorf("failed to create NSQ consumer: %w", err)
	}
	consumer.SetLogger(zapBridge{}, nsqLogLevel)

	consumer.AddHandler(nsq.HandlerFunc(func(message *nsq.Message) error {
		if err := handler(context.Background(), message.Body); err != nil {
			logger.Warn("Error processing NSQ message",
				logger.String("topic", subject),
				logger.String("channel", durable),
				logger.Int("attempts", int(message.Attempts)),
				logger.Err(err))
			return err
		}
		return nil
	}))

	if s.lookupdAddress != "" {
		err = consumer.ConnectToNSQLookupd(s.lookupdAddress)
	} else {
		err = consumer.ConnectToNSQD(s.nsqdAddress)
	}
	if err != nil {
		consumer.Stop()
		return fmt.Errorf("failed to connect NSQ consumer: %w", err)
	}

	s.mu.Lock()
	s.consumers = append(s.consumers, consumer)
	s.mu.Unlock()
	return nil
}

// Stop gracefully stops all consumers
func (s *Subscriber) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.consumers {
		c.Stop()
		<-c.StopChan
	}
	s.consumers = nil
}
