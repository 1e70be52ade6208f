package fetcher

import (
	"context"
	"errors"
	"time"

	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/fetch"
	"github.com/FutureAlok1445/SpaceScope/internal/core/ports"
	"github.com/sirupsen/logrus"
	gobreaker "github.com/sony/gobreaker/v2"
)

// BreakerConfig tunes the per-provider circuit breaker.
type BreakerConfig struct {
	// ConsecutiveFailures opens the circuit; zero disables the breaker.
	ConsecutiveFailures uint32
	// OpenTimeout is how long the circuit stays open before probing again.
	OpenTimeout time.Duration
	// Interval clears failure counts while closed.
	Interval time.Duration
	// HalfOpenRequests is the number of probes allowed while half-open.
	HalfOpenRequests uint32
}

// BreakerFetcher decorates a ports.Fetcher with a circuit breaker so a dead
// provider is skipped instead of retried on every request. NotFound answers
// count as successes: the provider is up.
type BreakerFetcher struct {
	inner  ports.Fetcher
	name   string
	cb     *gobreaker.CircuitBreaker[fetch.Result[fetch.RawJSON]]
	logger *logrus.Logger
}

func NewBreakerFetcher(inner ports.Fetcher, name string, cfg BreakerConfig, logger *logrus.Logger) *BreakerFetcher {
	threshold := cfg.ConsecutiveFailures
	if threshold == 0 {
		threshold = 5
	}
	halfOpen := cfg.HalfOpenRequests
	if halfOpen == 0 {
		halfOpen = 1
	}
	timeout := cfg.OpenTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	breakerState.WithLabelValues(name).Set(0)

	b := &BreakerFetcher{inner: inner, name: name, logger: logger}
	b.cb = gobreaker.NewCircuitBreaker[fetch.Result[fetch.RawJSON]](gobreaker.Settings{
		Name:        name,
		MaxRequests: halfOpen,
		Interval:    cfg.Interval,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || fetch.IsKind(err, fetch.NotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			breakerState.WithLabelValues(name).Set(stateToFloat(to))
			breakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
			if logger != nil {
				logger.WithFields(logrus.Fields{"provider": name, "from": from.String(), "to": to.String()}).Warn("circuit breaker state change")
			}
		},
	})
	return b
}

// Fetch implements ports.Fetcher.
func (b *BreakerFetcher) Fetch(ctx context.Context, rawURL string, opts ports.FetchOptions, maxAttempts int, baseDelay time.Duration) fetch.Result[fetch.RawJSON] {
	res, err := b.cb.Execute(func() (fetch.Result[fetch.RawJSON], error) {
		r := b.inner.Fetch(ctx, rawURL, opts, maxAttempts, baseDelay)
		if e := r.Err(); e != nil {
			return r, e
		}
		return r, nil
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		upstreamAttempts.WithLabelValues(b.name, "rejected").Inc()
		return fetch.FailWith[fetch.RawJSON](fetch.NetworkFailure, "circuit open")
	}
	return res
}

// Name implements ports.UpstreamStatus.
func (b *BreakerFetcher) Name() string { return b.name }

// State implements ports.UpstreamStatus.
func (b *BreakerFetcher) State() string { return b.cb.State().String() }
