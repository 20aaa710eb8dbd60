package pipeline

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/loreweave/loreweave/pkg/agent"
	"github.com/loreweave/loreweave/pkg/budget"
	"github.com/loreweave/loreweave/pkg/llm"
	"github.com/loreweave/loreweave/pkg/models"
)

// Error kinds recorded in checkpoints, step_runs rows, and failure events.
// The transient_ prefix marks kinds the dispatcher may resume from; the
// permanent_ prefix ends the job.
const (
	KindTransientTransport = "transient_transport"
	KindTransientRateLimit = "transient_rate_limit"
	KindTransientTimeout   = "transient_timeout"

	// KindTransientInternal marks an unclassified failure. It is transient
	// exactly once per step: when the checkpoint's most recent error is a
	// transient_internal failure of the same step, the repeat escalates to
	// KindPermanentInternal.
	KindTransientInternal = "transient_internal"

	KindPermanentSchema   = "permanent_schema"
	KindPermanentBudget   = "permanent_budget"
	KindPermanentInternal = "permanent_internal"

	// KindSchemaRepair is informational, never a failure: it records a
	// structured-output repair that succeeded, so repaired extractions stay
	// visible in the checkpoint error history.
	KindSchemaRepair = "schema_repair"
)

// IsTransient reports whether a kind pauses the job rather than failing it.
func IsTransient(kind string) bool {
	return strings.HasPrefix(kind, "transient_")
}

// Error pins an explicit kind on a step failure. Handlers return it when
// they know the classification better than Classify can infer it.
type Error struct {
	Kind string
	Err  error
}

// NewError wraps err with an explicit error kind.
func NewError(kind string, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Classify maps a step failure onto its error kind. Handler-typed errors
// win; known budget, schema, provider, and context errors follow the
// failure table; everything else is transient_internal.
func Classify(err error) string {
	var stepErr *Error
	if errors.As(err, &stepErr) && stepErr.Kind != "" {
		return stepErr.Kind
	}

	var schemaErr *agent.SchemaViolationError
	if errors.As(err, &schemaErr) {
		return KindPermanentSchema
	}
	if errors.Is(err, budget.ErrBudgetExhausted) {
		return KindPermanentBudget
	}
	if errors.Is(err, llm.ErrRateLimited) {
		return KindTransientRateLimit
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTransientTimeout
	}

	var provErr *llm.ProviderError
	if errors.As(err, &provErr) {
		if provErr.Retryable {
			return KindTransientTransport
		}
		// The provider rejected the request outright; repeating the same
		// call cannot change the answer.
		return KindPermanentInternal
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return KindTransientTimeout
		}
		return KindTransientTransport
	}

	return KindTransientInternal
}

// Escalate returns kind unchanged unless it is transient_internal and the
// checkpoint's most recent error is a transient_internal failure of the
// same step. That immediate repeat becomes permanent_internal.
func Escalate(kind, stepName string, cp *models.Checkpoint) string {
	if kind != KindTransientInternal {
		return kind
	}
	last := cp.LastError()
	if last != nil && last.Step == stepName && last.Kind == KindTransientInternal {
		return KindPermanentInternal
	}
	return kind
}
