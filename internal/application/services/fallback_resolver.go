package services

import (
	"context"
	"time"

	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/fetch"
	"github.com/FutureAlok1445/SpaceScope/internal/core/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

var fallbacksServed = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "spacescope_fallbacks_served_total",
		Help: "Synthetic values served in place of live data, by category and reason",
	},
	[]string{"category", "reason"},
)

func init() {
	prometheus.MustRegister(fallbacksServed)
}

// FallbackPolicy describes how one data category degrades. Policies are built
// once at startup and never mutated.
type FallbackPolicy[T any] struct {
	Category string
	// Timeout bounds the wait for live data; zero waits for the live call to finish.
	Timeout time.Duration
	// CacheTTL is how long a live value is reused.
	CacheTTL  time.Duration
	Synthetic func(now time.Time) T
}

// Resolution is the value handed back to the facade.
type Resolution[T any] struct {
	Value       T
	Fallback    bool
	RetrievedAt time.Time
}

// FallbackResolver races live calls against their policy timeout.
type FallbackResolver struct {
	clock  ports.Clock
	logger *logrus.Logger
}

func NewFallbackResolver(clock ports.Clock, logger *logrus.Logger) *FallbackResolver {
	if clock == nil {
		clock = ports.SystemClock
	}
	return &FallbackResolver{clock: clock, logger: logger}
}

// Resolve never fails. The live call runs on a context detached from ctx so
// that losing the race does not abort it; its late result is dropped.
func Resolve[T any](ctx context.Context, r *FallbackResolver, policy FallbackPolicy[T], live func(ctx context.Context) fetch.Result[T]) Resolution[T] {
	results := make(chan fetch.Result[T], 1)
	detached := context.WithoutCancel(ctx)
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				results <- fetch.FailWith[T](fetch.NetworkFailure, "live call panicked: %v", rec)
			}
		}()
		results <- live(detached)
	}()

	var deadline <-chan time.Time
	if policy.Timeout > 0 {
		timer := time.NewTimer(policy.Timeout)
		defer timer.Stop()
		deadline = timer.C
	}

	select {
	case res := <-results:
		if res.IsOk() {
			v, at := res.Value()
			return Resolution[T]{Value: v, RetrievedAt: at}
		}
		return synthesize(r, policy, string(res.Err().Kind), res.Err())
	case <-deadline:
		return synthesize(r, policy, "timeout", nil)
	case <-ctx.Done():
		return synthesize(r, policy, "canceled", ctx.Err())
	}
}

func synthesize[T any](r *FallbackResolver, policy FallbackPolicy[T], reason string, cause error) Resolution[T] {
	now := r.clock.Now()
	fallbacksServed.WithLabelValues(policy.Category, reason).Inc()
	if r.logger != nil {
		entry := r.logger.WithFields(logrus.Fields{"category": policy.Category, "reason": reason})
		if cause != nil {
			entry = entry.WithError(cause)
		}
		entry.Warn("serving fallback data")
	}
	var v T
	if policy.Synthetic != nil {
		v = policy.Synthetic(now)
	}
	return Resolution[T]{Value: v, Fallback: true, RetrievedAt: now}
}
