package eventbus

import (
	"context"
	"sync"
	"time"

	"github.com/piresc/ridepay/internal/pkg/logger"
)

// MemoryBus delivers messages in process. Each published message is handed to
// every subscriber of its subject on its own goroutine and redelivered on
// error up to maxDeliver times.
type MemoryBus struct {
	maxDeliver int
	backoff    time.Duration

	mu       sync.RWMutex
	handlers map[string][]Handler
	closed   bool
	wg       sync.WaitGroup
}

// NewMemoryBus creates an in-process bus
func NewMemoryBus(maxDeliver int) *MemoryBus {
	if maxDeliver <= 0 {
		maxDeliver = 1
	}
	return &MemoryBus{
		maxDeliver: maxDeliver,
		backoff:    10 * time.Millisecond,
		handlers:   make(map[string][]Handler),
	}
}

// Publish fans data out to the subject's subscribers
func (b *MemoryBus) Publish(ctx context.Context, subject, msgID string, data []byte) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return context.Canceled
	}

	payload := append([]byte(nil), data...)
	for _, h := range b.handlers[subject] {
		b.wg.Add(1)
		go b.deliver(subject, msgID, payload, h)
	}
	return nil
}

func (b *MemoryBus) deliver(subject, msgID string, data []byte, h Handler) {
	defer b.wg.Done()
	for attempt := 1; attempt <= b.maxDeliver; attempt++ {
		err := h(context.Background(), data)
		if err == nil {
			return
		}
		logger.Warn("In-memory delivery failed",
			logger.String("subject", subject),
			logger.String("msg_id", msgID),
			logger.Int("attempt", attempt),
			logger.Err(err))
		time.Sleep(b.backoff * time.Duration(attempt))
	}
}

// Subscribe registers handler for subject
func (b *MemoryBus) Subscribe(ctx context.Context, subject, durable string, handler Handler) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[subject] = append(b.handlers[subject], handler)
	return nil
}

// Ping always succeeds
func (b *MemoryBus) Ping(ctx context.Context) error {
	return nil
}

// Wait blocks until every in-flight delivery has finished
func (b *MemoryBus) Wait() {
	b.wg.Wait()
}

// Close stops accepting publishes and waits for in-flight deliveries
func (b *MemoryBus) Close() error {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
	b.wg.Wait()
	return nil
}
