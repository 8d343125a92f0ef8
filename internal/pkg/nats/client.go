package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/piresc/ridepay/internal/pkg/logger"
)

// Client publishes to and consumes from JetStream
type Client struct {
	conn      *nats.Conn
	js        jetstream.JetStream
	consumers []jetstream.ConsumeContext
	// MaxDeliver bounds redelivery of a failing message
	MaxDeliver int
}

// NewClient connects to NATS and makes sure the default streams exist
func NewClient(url string) (*Client, error) {
	conn, err := nats.Connect(url,
		nats.Name("ridepay"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	c := &Client{conn: conn, js: js, MaxDeliver: 5}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, cfg := range DefaultStreamConfigs() {
		if _, err := js.CreateOrUpdateStream(ctx, cfg); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to create stream %s: %w", cfg.Name, err)
		}
	}

	return c, nil
}

// GetConn returns the underlying connection
func (c *Client) GetConn() *nats.Conn {
	return c.conn
}

// Publish stores data on the stream capturing subject. msgID deduplicates
// retried publishes within the stream's duplicate window.
func (c *Client) Publish(ctx context.Context, subject, msgID string, data []byte) error {
	var opts []jetstream.PublishOpt
	if msgID != "" {
		opts = append(opts, jetstream.WithMsgID(msgID))
	}
	if _, err := c.js.Publish(ctx, subject, data, opts...); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// Subscribe starts a durable consumer on subject. Messages are acked when
// handler returns nil and nak'ed for redelivery otherwise.
func (c *Client) Subscribe(ctx context.Context, subject, durable string, handler func(context.Context, []byte) error) error {
	stream := StreamForSubject(subject)
	if stream == "" {
		return fmt.Errorf("no stream captures subject %s", subject)
	}

	consumer, err := c.js.CreateOrUpdateConsumer(ctx, stream, ConsumerConfig(durable, subject, c.MaxDeliver))
	if err != nil {
		return fmt.Errorf("failed to create consumer %s: %w", durable, err)
	}

	cc, err := consumer.Consume(func(msg jetstream.Msg) {
		if err := handler(context.Background(), msg.Data()); err != nil {
			logger.Warn("Error processing JetStream message",
				logger.String("subject", msg.Subject()),
				logger.String("consumer", durable),
				logger.Err(err))
			if nakErr := msg.NakWithDelay(time.Second); nakErr != nil {
				logger.Error("Failed to NAK message", logger.Err(nakErr))
			}
			return
		}
		if ackErr := msg.Ack(); ackErr != nil {
			logger.Error("Failed to ACK message", logger.Err(ackErr))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	c.consumers = append(c.consumers, cc)
	return nil
}

// Ping reports whether the connection is up
func (c *Client) Ping(ctx context.Context) error {
	if c.conn == nil || !c.conn.IsConnected() {
		return fmt.Errorf("nats not connected")
	}
	return nil
}

// Close stops all consumers and drains the connection
func (c *Client) Close() error {
	for _, cc := range c.consumers {
		cc.Stop()
	}
	if c.conn != nil {
		return c.conn.Drain()
	}
	return nil
}
