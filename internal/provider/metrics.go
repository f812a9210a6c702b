package provider

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels of CallsTotal.
const (
	OutcomeOK          = "ok"
	OutcomeUnavailable = "unavailable"
	OutcomeRejected    = "rejected"
	OutcomeNoKey       = "no_key"
)

var (
	// CallsTotal counts adapter calls by provider and outcome.
	CallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripplanner_provider_calls_total",
			Help: "Total number of external provider calls by outcome",
		},
		[]string{"provider", "outcome"},
	)

	// BreakerState is 0 when closed, 1 when half-open and 2 when open.
	BreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "tripplanner_provider_breaker_state",
			Help: "Circuit breaker state per provider (0=closed, 1=half-open, 2=open)",
		},
		[]string{"provider"},
	)
)

// Observe increments CallsTotal for the provider.
func Observe(name, outcome string) {
	CallsTotal.WithLabelValues(name, outcome).Inc()
}
