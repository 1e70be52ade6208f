package fetcher

import (
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	upstreamAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spacescope_upstream_attempts_total",
			Help: "HTTP attempts against external providers by outcome",
		},
		[]string{"provider", "outcome"},
	)

	breakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "spacescope_upstream_breaker_state",
			Help: "Circuit breaker state per provider (0=closed, 1=half-open, 2=open)",
		},
		[]string{"provider"},
	)

	breakerTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spacescope_upstream_breaker_transitions_total",
			Help: "Circuit breaker state transitions per provider",
		},
		[]string{"provider", "from", "to"},
	)
)

func init() {
	prometheus.MustRegister(upstreamAttempts)
	prometheus.MustRegister(breakerState)
	prometheus.MustRegister(breakerTransitions)
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
