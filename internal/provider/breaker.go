package provider

import (
	"errors"
	"log/slog"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/heartmarshall/tripplanner-backend/internal/config"
)

// NewBreaker builds a circuit breaker that opens after cfg.MaxFailures
// consecutive upstream failures and tries again after cfg.OpenTimeout.
// Cancelled callers and 4xx answers other than 429 are not failures.
func NewBreaker[T any](name string, cfg config.BreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker[T] {
	BreakerState.WithLabelValues(name).Set(0)

	maxFailures := cfg.MaxFailures
	if maxFailures == 0 {
		maxFailures = 1
	}

	return gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:         name,
		MaxRequests:  1,
		Interval:     cfg.Interval,
		Timeout:      cfg.OpenTimeout,
		IsSuccessful: upstreamHealthy,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			BreakerState.WithLabelValues(name).Set(stateValue(to))
		},
	})
}

// Rejected reports whether err came from an open or saturated breaker.
func Rejected(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
