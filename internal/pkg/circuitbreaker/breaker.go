package circuitbreaker

import (
	"errors"
	"time"

	"github.com/piresc/ridepay/internal/pkg/logger"
	"github.com/sony/gobreaker"
)

// Config holds circuit breaker configuration
type Config struct {
	Name             string
	MaxRequests      uint32        // Max requests allowed in half-open state
	Interval         time.Duration // Interval to clear counters in closed state
	Timeout          time.Duration // Timeout to switch from open to half-open
	FailureThreshold uint32        // Consecutive failures that open the breaker
}

// DefaultConfig returns a default circuit breaker configuration
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		MaxRequests:      1,
		Interval:         30 * time.Second,
		Timeout:          60 * time.Second,
		FailureThreshold: 5,
	}
}

// CircuitBreaker guards calls to an unreliable dependency
type CircuitBreaker struct {
	cb *gobreaker.CircuitBreaker
}

// New creates a breaker that logs every state change
func New(config Config) *CircuitBreaker {
	threshold := config.FailureThreshold
	if threshold == 0 {
		threshold = 1
	}
	return &CircuitBreaker{cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        config.Name,
		MaxRequests: config.MaxRequests,
		Interval:    config.Interval,
		Timeout:     config.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit breaker state changed",
				logger.String("name", name),
				logger.String("from", from.String()),
				logger.String("to", to.String()))
		},
	})}
}

// Execute runs fn unless the breaker is open. Rejected calls return
// ErrOpen without invoking fn.
func Execute[T any](b *CircuitBreaker, fn func() (T, error)) (T, error) {
	res, err := b.cb.Execute(func() (interface{}, error) {
		return fn()
	})
	v, _ := res.(T)
	return v, err
}

// State returns the breaker state as closed, half-open or open
func (b *CircuitBreaker) State() string {
	return b.cb.State().String()
}

// IsOpen reports whether err is a rejection by an open or saturated breaker
func IsOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
