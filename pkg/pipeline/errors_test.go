package pipeline

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loreweave/loreweave/pkg/agent"
	"github.com/loreweave/loreweave/pkg/budget"
	"github.com/loreweave/loreweave/pkg/llm"
	"github.com/loreweave/loreweave/pkg/models"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "handler-typed error wins",
			err:  NewError(KindPermanentBudget, errors.New("over budget")),
			want: KindPermanentBudget,
		},
		{
			name: "wrapped handler-typed error",
			err:  fmt.Errorf("npc_research: %w", NewError(KindTransientTransport, errors.New("connection reset"))),
			want: KindTransientTransport,
		},
		{
			name: "schema violation",
			err:  &agent.SchemaViolationError{Raw: "{}", Err: errors.New("missing required field")},
			want: KindPermanentSchema,
		},
		{
			name: "budget exhausted",
			err:  fmt.Errorf("reserve for extraction: %w", budget.ErrBudgetExhausted),
			want: KindPermanentBudget,
		},
		{
			name: "rate limited provider",
			err: &llm.ProviderError{
				Provider: "openai", Operation: "generate",
				StatusCode: 429, Retryable: true, Err: llm.ErrRateLimited,
			},
			want: KindTransientRateLimit,
		},
		{
			name: "retryable provider failure",
			err: &llm.ProviderError{
				Provider: "gemini", Operation: "generate",
				StatusCode: 503, Retryable: true, Err: errors.New("overloaded"),
			},
			want: KindTransientTransport,
		},
		{
			name: "rejected provider request",
			err: &llm.ProviderError{
				Provider: "anthropic", Operation: "generate",
				StatusCode: 400, Retryable: false, Err: errors.New("invalid request"),
			},
			want: KindPermanentInternal,
		},
		{
			name: "deadline exceeded",
			err:  context.DeadlineExceeded,
			want: KindTransientTimeout,
		},
		{
			name: "wrapped deadline",
			err:  fmt.Errorf("step timed out: %w", context.DeadlineExceeded),
			want: KindTransientTimeout,
		},
		{
			name: "network timeout",
			err:  &net.DNSError{Err: "lookup timed out", IsTimeout: true},
			want: KindTransientTimeout,
		},
		{
			name: "network failure",
			err:  &net.OpError{Op: "dial", Err: errors.New("connection refused")},
			want: KindTransientTransport,
		},
		{
			name: "unclassified",
			err:  errors.New("something unexpected"),
			want: KindTransientInternal,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.err))
		})
	}
}

func TestEscalate(t *testing.T) {
	t.Run("no history stays transient", func(t *testing.T) {
		cp := models.NewCheckpoint("j1")
		assert.Equal(t, KindTransientInternal, Escalate(KindTransientInternal, "npc_research", cp))
	})

	t.Run("different step stays transient", func(t *testing.T) {
		cp := models.NewCheckpoint("j1")
		cp.RecordError("lore_research", KindTransientInternal, "boom")
		assert.Equal(t, KindTransientInternal, Escalate(KindTransientInternal, "npc_research", cp))
	})

	t.Run("different kind stays transient", func(t *testing.T) {
		cp := models.NewCheckpoint("j1")
		cp.RecordError("npc_research", KindTransientRateLimit, "429")
		assert.Equal(t, KindTransientInternal, Escalate(KindTransientInternal, "npc_research", cp))
	})

	t.Run("immediate repeat escalates", func(t *testing.T) {
		cp := models.NewCheckpoint("j1")
		cp.RecordError("npc_research", KindTransientInternal, "boom")
		assert.Equal(t, KindPermanentInternal, Escalate(KindTransientInternal, "npc_research", cp))
	})

	t.Run("only transient_internal escalates", func(t *testing.T) {
		cp := models.NewCheckpoint("j1")
		cp.RecordError("npc_research", KindTransientRateLimit, "429")
		assert.Equal(t, KindTransientRateLimit, Escalate(KindTransientRateLimit, "npc_research", cp))
	})
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(KindTransientTransport))
	assert.True(t, IsTransient(KindTransientRateLimit))
	assert.True(t, IsTransient(KindTransientTimeout))
	assert.True(t, IsTransient(KindTransientInternal))
	assert.False(t, IsTransient(KindPermanentSchema))
	assert.False(t, IsTransient(KindPermanentBudget))
	assert.False(t, IsTransient(KindPermanentInternal))
	assert.False(t, IsTransient(KindSchemaRepair))
}

func TestErrorWrapping(t *testing.T) {
	inner := errors.New("socket closed")
	err := NewError(KindTransientTransport, inner)
	assert.Equal(t, "transient_transport: socket closed", err.Error())
	assert.True(t, errors.Is(err, inner))
}
