package llm

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"
)

// RetryConfig controls the retry decorator. Backoff doubles per attempt from
// Base up to Max, with +/-25% jitter to avoid thundering herds.
type RetryConfig struct {
	// MaxRetries is the number of additional attempts after the first.
	MaxRetries int

	// BackoffBase is the delay before the first retry.
	BackoffBase time.Duration

	// BackoffMax caps the delay between attempts.
	BackoffMax time.Duration
}

// DefaultRetryConfig mirrors the pipeline defaults.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:  3,
		BackoffBase: 2 * time.Second,
		BackoffMax:  30 * time.Second,
	}
}

// WithRetry wraps a provider with transient-failure retries. Rate limits and
// transport errors are retried; cancellation and provider rejections are
// not. Step-level retry policy lives in the pipeline engine, so only callers
// that own their retry budget (the summarizer's map phase) should wrap.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = 2 * time.Second
	}
	if cfg.BackoffMax < cfg.BackoffBase {
		cfg.BackoffMax = cfg.BackoffBase
	}
	return &retryingProvider{next: p, cfg: cfg}
}

type retryingProvider struct {
	next Provider
	cfg  RetryConfig
}

func (r *retryingProvider) Name() string  { return r.next.Name() }
func (r *retryingProvider) Model() string { return r.next.Model() }

func (r *retryingProvider) Generate(ctx context.Context, req *Request) (*Response, error) {
	var lastErr error
	for attempt := 0; attempt <= r.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := r.backoffDelay(attempt)
			slog.WarnContext(ctx, "Retrying LLM call after transient failure",
				"provider", r.next.Name(),
				"model", r.next.Model(),
				"attempt", attempt,
				"delay", delay,
				"error", lastErr)
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case <-timer.C:
			}
		}

		resp, err := r.next.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if !IsRetryable(err) || ctx.Err() != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("llm: %d attempts exhausted: %w", r.cfg.MaxRetries+1, lastErr)
}

func (r *retryingProvider) backoffDelay(attempt int) time.Duration {
	delay := r.cfg.BackoffBase
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= r.cfg.BackoffMax {
			delay = r.cfg.BackoffMax
			break
		}
	}
	jitter := 0.75 + rand.Float64()*0.5
	return time.Duration(float64(delay) * jitter)
}
