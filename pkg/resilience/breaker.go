package resilience

import (
	"context"
	"errors"
	"fmt"
	"time"

	"style-weaver-be/internal/pkg/logger"
	"style-weaver-be/pkg/styling"

	gobreaker "github.com/sony/gobreaker/v2"
)

const breakerModule = "CircuitBreaker"

type Config struct {
	// FailureThreshold is the number of consecutive failures that opens the circuit.
	FailureThreshold uint32
	// OpenTimeout is how long the circuit stays open before probing again.
	OpenTimeout time.Duration
	// HalfOpenRequests is the number of probe requests allowed while half-open.
	HalfOpenRequests uint32
	Interval         time.Duration
	OnStateChange    func(name string, from, to gobreaker.State)
}

func DefaultConfig() Config {
	return Config{
		FailureThreshold: 5,
		OpenTimeout:      30 * time.Second,
		HalfOpenRequests: 1,
		Interval:         time.Minute,
	}
}

// NewBreaker builds a breaker that only counts infrastructure failures.
// Not found, empty and rejected results leave the counters untouched.
func NewBreaker[T any](name string, cfg Config, log logger.ILogger) *gobreaker.CircuitBreaker[T] {
	defaults := DefaultConfig()
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = defaults.FailureThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = defaults.OpenTimeout
	}
	if cfg.HalfOpenRequests == 0 {
		cfg.HalfOpenRequests = defaults.HalfOpenRequests
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaults.Interval
	}

	threshold := cfg.FailureThreshold
	return gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.HalfOpenRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn(breakerModule, "State transition", map[string]interface{}{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			})
			if cfg.OnStateChange != nil {
				cfg.OnStateChange(name, from, to)
			}
		},
		// Caller cancellation counts as neither success nor failure.
		IsSuccessful: func(err error) bool {
			return err == nil || styling.IsExpected(err) || errors.Is(err, context.Canceled)
		},
	})
}

// Execute runs fn through cb. A rejected call is reported as styling.ErrUnavailable.
func Execute[T any](cb *gobreaker.CircuitBreaker[T], fn func() (T, error)) (T, error) {
	result, err := cb.Execute(fn)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		var zero T
		return zero, fmt.Errorf("%w: %s: %v", styling.ErrUnavailable, cb.Name(), err)
	}
	return result, err
}
