package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedProvider fails with errs[i] on call i and succeeds once the script
// runs out.
type scriptedProvider struct {
	errs  []error
	resp  *Response
	calls int
}

func (s *scriptedProvider) Name() string  { return "scripted" }
func (s *scriptedProvider) Model() string { return "test-model" }

func (s *scriptedProvider) Generate(_ context.Context, _ *Request) (*Response, error) {
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return nil, s.errs[i]
	}
	return s.resp, nil
}

func fastRetry(maxRetries int) RetryConfig {
	return RetryConfig{MaxRetries: maxRetries, BackoffBase: time.Millisecond, BackoffMax: 4 * time.Millisecond}
}

func TestWithRetry_SucceedsAfterTransientFailures(t *testing.T) {
	transient := errors.Join(ErrRateLimited, errors.New("429"))
	inner := &scriptedProvider{
		errs: []error{transient, transient},
		resp: &Response{Text: "ok"},
	}
	p := WithRetry(inner, fastRetry(3))

	resp, err := p.Generate(context.Background(), &Request{Messages: []Message{UserMessage("hi")}})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
	assert.Equal(t, 3, inner.calls)
}

func TestWithRetry_PermanentErrorStopsImmediately(t *testing.T) {
	permanent := &ProviderError{Provider: "scripted", StatusCode: 400, Retryable: false, Err: errors.New("bad request")}
	inner := &scriptedProvider{errs: []error{permanent, permanent, permanent, permanent}}
	p := WithRetry(inner, fastRetry(3))

	_, err := p.Generate(context.Background(), &Request{Messages: []Message{UserMessage("hi")}})
	require.Error(t, err)
	assert.Equal(t, 1, inner.calls)

	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 400, pe.StatusCode)
}

func TestWithRetry_ExhaustsAttempts(t *testing.T) {
	transient := errors.New("connection reset")
	inner := &scriptedProvider{errs: []error{transient, transient, transient, transient, transient}}
	p := WithRetry(inner, fastRetry(2))

	_, err := p.Generate(context.Background(), &Request{Messages: []Message{UserMessage("hi")}})
	require.Error(t, err)
	assert.Equal(t, 3, inner.calls)
	assert.ErrorIs(t, err, transient)
	assert.Contains(t, err.Error(), "attempts exhausted")
}

func TestWithRetry_ContextCancelledDuringBackoff(t *testing.T) {
	transient := errors.Join(ErrRateLimited, errors.New("429"))
	inner := &scriptedProvider{errs: []error{transient, transient, transient, transient}}
	p := WithRetry(inner, RetryConfig{MaxRetries: 3, BackoffBase: time.Second, BackoffMax: time.Second})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := p.Generate(ctx, &Request{Messages: []Message{UserMessage("hi")}})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, inner.calls)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestWithRetry_DelegatesIdentity(t *testing.T) {
	inner := &scriptedProvider{resp: &Response{}}
	p := WithRetry(inner, DefaultRetryConfig())
	assert.Equal(t, "scripted", p.Name())
	assert.Equal(t, "test-model", p.Model())
}

func TestBackoffDelay_GrowsAndCaps(t *testing.T) {
	r := &retryingProvider{cfg: RetryConfig{MaxRetries: 5, BackoffBase: 2 * time.Second, BackoffMax: 30 * time.Second}}

	for attempt := 1; attempt <= 6; attempt++ {
		d := r.backoffDelay(attempt)
		// Doubling from the base, capped, with +/-25% jitter.
		want := 2 * time.Second << (attempt - 1)
		if want > 30*time.Second {
			want = 30 * time.Second
		}
		assert.GreaterOrEqual(t, d, time.Duration(float64(want)*0.75), "attempt %d", attempt)
		assert.LessOrEqual(t, d, time.Duration(float64(want)*1.25), "attempt %d", attempt)
	}
}
