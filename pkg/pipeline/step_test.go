package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopHandler(_ context.Context, _ *StepContext) (StepResult, error) {
	return StepResult{}, nil
}

func TestNewRegistry(t *testing.T) {
	t.Run("freezes the ordered sequence", func(t *testing.T) {
		registry, err := NewRegistry(
			Step{Name: "zone_overview_research", Kind: StepKindResearch, Handler: noopHandler},
			Step{Name: "extract_all", Kind: StepKindExtraction, Handler: noopHandler},
			Step{Name: "package_and_send", Kind: StepKindTransform, Handler: noopHandler},
		)
		require.NoError(t, err)
		assert.Equal(t, 3, registry.Len())
		assert.Equal(t, []string{"zone_overview_research", "extract_all", "package_and_send"}, registry.Names())
	})

	t.Run("rejects empty sequence", func(t *testing.T) {
		_, err := NewRegistry()
		assert.Error(t, err)
	})

	t.Run("rejects unnamed step", func(t *testing.T) {
		_, err := NewRegistry(Step{Kind: StepKindResearch, Handler: noopHandler})
		assert.ErrorContains(t, err, "no name")
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		_, err := NewRegistry(
			Step{Name: "extract_all", Kind: StepKindExtraction, Handler: noopHandler},
			Step{Name: "extract_all", Kind: StepKindExtraction, Handler: noopHandler},
		)
		assert.ErrorContains(t, err, "duplicate step name")
	})

	t.Run("rejects missing handler", func(t *testing.T) {
		_, err := NewRegistry(Step{Name: "extract_all", Kind: StepKindExtraction})
		assert.ErrorContains(t, err, "no handler")
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		_, err := NewRegistry(Step{Name: "extract_all", Kind: StepKind("batch"), Handler: noopHandler})
		assert.ErrorContains(t, err, "unknown kind")
	})
}
