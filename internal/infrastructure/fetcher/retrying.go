package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/FutureAlok1445/SpaceScope/internal/core/domain/fetch"
	"github.com/FutureAlok1445/SpaceScope/internal/core/ports"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// maxBodyBytes caps a single provider payload.
const maxBodyBytes = 8 << 20

// Config describes one provider's outbound HTTP behavior.
type Config struct {
	// Provider labels logs and metrics.
	Provider string
	// Timeout bounds each attempt when FetchOptions.Timeout is zero.
	Timeout time.Duration
	// RatePerSecond throttles outbound requests; zero disables throttling.
	RatePerSecond float64
	Burst         int
	UserAgent     string
}

// RetryingFetcher implements ports.Fetcher with linear backoff.
type RetryingFetcher struct {
	client    *http.Client
	provider  string
	timeout   time.Duration
	userAgent string
	limiter   *rate.Limiter
	clock     ports.Clock
	logger    *logrus.Logger
	// sleep waits d or until ctx is done; it reports false when ctx ended first.
	sleep func(ctx context.Context, d time.Duration) bool
}

func NewRetryingFetcher(client *http.Client, cfg Config, clock ports.Clock, logger *logrus.Logger) *RetryingFetcher {
	if client == nil {
		client = &http.Client{}
	}
	if clock == nil {
		clock = ports.SystemClock
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	f := &RetryingFetcher{
		client:    client,
		provider:  cfg.Provider,
		timeout:   timeout,
		userAgent: cfg.UserAgent,
		clock:     clock,
		logger:    logger,
		sleep:     sleepCtx,
	}
	if cfg.RatePerSecond > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		f.limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), burst)
	}
	return f
}

// Fetch implements ports.Fetcher. Attempt n (1-based) that fails is followed by
// a wait of baseDelay*n before the next attempt. A 404 is final and reported as
// NotFound only when opts.NotFoundIsFinal is set.
func (f *RetryingFetcher) Fetch(ctx context.Context, rawURL string, opts ports.FetchOptions, maxAttempts int, baseDelay time.Duration) fetch.Result[fetch.RawJSON] {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if baseDelay < 0 {
		baseDelay = 0
	}
	target, err := buildURL(rawURL, opts.Query)
	if err != nil {
		return fetch.FailWith[fetch.RawJSON](fetch.NetworkFailure, "invalid provider url: %v", err)
	}

	var last *fetch.Error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		body, status, err := f.attempt(ctx, target, opts)
		switch {
		case err == nil && status >= 200 && status < 300:
			upstreamAttempts.WithLabelValues(f.provider, "success").Inc()
			return fetch.Ok(fetch.RawJSON(body), f.clock.Now())
		case err == nil && status == http.StatusNotFound && opts.NotFoundIsFinal:
			upstreamAttempts.WithLabelValues(f.provider, "not_found").Inc()
			return fetch.Fail[fetch.RawJSON](&fetch.Error{Kind: fetch.NotFound, Message: "resource not found", StatusCode: status})
		case err != nil:
			last = &fetch.Error{Kind: fetch.NetworkFailure, Message: err.Error()}
		default:
			last = &fetch.Error{Kind: fetch.NetworkFailure, Message: fmt.Sprintf("unexpected status %d", status), StatusCode: status}
		}
		upstreamAttempts.WithLabelValues(f.provider, "failure").Inc()
		if f.logger != nil {
			f.logger.WithFields(logrus.Fields{"provider": f.provider, "attempt": attempt, "max_attempts": maxAttempts, "status": last.StatusCode}).Debug("provider attempt failed: " + last.Message)
		}
		if attempt == maxAttempts {
			break
		}
		if !f.sleep(ctx, baseDelay*time.Duration(attempt)) {
			return fetch.Fail[fetch.RawJSON](&fetch.Error{Kind: fetch.NetworkFailure, Message: "request canceled: " + ctx.Err().Error(), StatusCode: last.StatusCode})
		}
	}

	if f.logger != nil {
		f.logger.WithFields(logrus.Fields{"provider": f.provider, "attempts": maxAttempts}).Warn("provider retries exhausted")
	}
	return fetch.Fail[fetch.RawJSON](&fetch.Error{
		Kind:       fetch.NetworkFailure,
		Message:    fmt.Sprintf("%s after %d attempts", last.Message, maxAttempts),
		StatusCode: last.StatusCode,
	})
}

func (f *RetryingFetcher) attempt(ctx context.Context, target string, opts ports.FetchOptions) ([]byte, int, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, 0, fmt.Errorf("rate limit wait: %w", err)
		}
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = f.timeout
	}
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, target, nil)
	if err != nil {
		return nil, 0, err
	}
	for k, vs := range opts.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read body: %w", err)
	}
	return body, resp.StatusCode, nil
}

func buildURL(rawURL string, query url.Values) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if len(query) > 0 {
		q := u.Query()
		for k, vs := range query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
