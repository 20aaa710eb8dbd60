package zone

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loreweave/loreweave/pkg/events"
	"github.com/loreweave/loreweave/pkg/models"
)

func discoveryResponse(t *testing.T, names ...string) string {
	t.Helper()
	zones := make([]ConnectedZone, 0, len(names))
	for _, name := range names {
		zones = append(zones, ConnectedZone{Name: name, Connection: "border crossing"})
	}
	return mustJSON(t, ZoneDiscovery{ConnectedZones: zones})
}

func TestDiscoverZones_EnqueuesChildren(t *testing.T) {
	h := newZoneHarness(t)
	ctx := context.Background()

	model := "anthropic:claude-sonnet-4-5"
	_, err := h.jobs.CreateJob(ctx, models.CreateJobRequest{
		ZoneName:     "Emberfall Reach",
		Depth:        2,
		BudgetTokens: 200_000,
		Model:        &model,
	})
	require.NoError(t, err)
	parent, err := h.jobs.ClaimNextJob(ctx, "zone-test-worker")
	require.NoError(t, err)
	require.NotNil(t, parent)

	provider := &scriptedProvider{responses: []scripted{
		{resp: textResponse(discoveryResponse(t,
			"Gloomvale", "The Ashen Coast", "gloomvale", "Emberfall Reach"), 400)},
	}}
	steps := h.newSteps(provider, nil)
	sc := h.stepContext(parent)
	seedExtractions(t, sc)

	step := stepByName(t, steps, StepDiscoverZones)
	require.NotNil(t, step.Guard)
	assert.True(t, step.Guard(sc))
	_, err = step.Handler(ctx, sc)
	require.NoError(t, err)

	// Dedup folds the case variant, the zone under research is skipped.
	children, err := h.jobs.ListJobs(ctx, models.JobFilters{ParentJobID: &parent.ID})
	require.NoError(t, err)
	require.Len(t, children.Jobs, 2)
	for _, child := range children.Jobs {
		assert.Equal(t, 1, child.Depth)
		assert.Equal(t, int64(500_000), child.BudgetTokens)
		assert.Equal(t, "pending", child.Status)

		row, err := h.jobs.GetJob(ctx, child.ID, false)
		require.NoError(t, err)
		assert.Equal(t, model, row.Model)
	}

	assert.Equal(t, []string{"zone_discovered", "zone_discovered"}, h.jobEventNames(parent.ID))
	payload := h.lastEvent(parent.ID, events.EventZoneDiscovered)
	assert.Equal(t, "Emberfall Reach", payload["zone_name"])
	assert.NotEmpty(t, payload["child_job_id"])

	queued := h.lastEvent(children.Jobs[0].ID, events.EventJobQueued)
	assert.Equal(t, children.Jobs[0].ZoneName, queued["zone_name"])

	record, ok := sc.Checkpoint.PartialExtractions[discoveredZonesKey].(map[string]any)
	require.True(t, ok)
	assert.ElementsMatch(t, []any{"Gloomvale", "The Ashen Coast"}, record["zones"])

	// Extracted overview evidence reaches the prompt.
	require.Len(t, provider.calls, 1)
	assert.Contains(t, provider.calls[0].Messages[0].Content, `"overview"`)
}

func TestDiscoverZones_SkipsExistingChildren(t *testing.T) {
	h := newZoneHarness(t)
	ctx := context.Background()
	parent := h.startJob("Emberfall Reach", 1, 200_000)

	_, err := h.jobs.CreateJob(ctx, models.CreateJobRequest{
		ZoneName:     "Gloomvale",
		Depth:        0,
		BudgetTokens: 500_000,
		ParentJobID:  &parent.ID,
	})
	require.NoError(t, err)

	provider := &scriptedProvider{responses: []scripted{
		{resp: textResponse(discoveryResponse(t, "Gloomvale", "Duskmere"), 400)},
	}}
	steps := h.newSteps(provider, nil)
	sc := h.stepContext(parent)

	step := stepByName(t, steps, StepDiscoverZones)
	_, err = step.Handler(ctx, sc)
	require.NoError(t, err)

	children, err := h.jobs.ListJobs(ctx, models.JobFilters{ParentJobID: &parent.ID})
	require.NoError(t, err)
	assert.Len(t, children.Jobs, 2)

	// Only the new zone announces; the record still names both.
	assert.Equal(t, []string{"zone_discovered"}, h.jobEventNames(parent.ID))
	payload := h.lastEvent(parent.ID, events.EventZoneDiscovered)
	assert.Equal(t, "Duskmere", payload["discovered_zone"])

	record := sc.Checkpoint.PartialExtractions[discoveredZonesKey].(map[string]any)
	assert.ElementsMatch(t, []any{"Gloomvale", "Duskmere"}, record["zones"])
}

func TestDiscoverZones_CapsFanOut(t *testing.T) {
	h := newZoneHarness(t)
	ctx := context.Background()
	parent := h.startJob("Emberfall Reach", 1, 200_000)

	names := make([]string, 0, maxChildJobs+2)
	for i := 0; i < maxChildJobs+2; i++ {
		names = append(names, fmt.Sprintf("Zone %d", i+1))
	}
	provider := &scriptedProvider{responses: []scripted{
		{resp: textResponse(discoveryResponse(t, names...), 400)},
	}}
	steps := h.newSteps(provider, nil)
	sc := h.stepContext(parent)

	step := stepByName(t, steps, StepDiscoverZones)
	_, err := step.Handler(ctx, sc)
	require.NoError(t, err)

	children, err := h.jobs.ListJobs(ctx, models.JobFilters{ParentJobID: &parent.ID})
	require.NoError(t, err)
	assert.Len(t, children.Jobs, maxChildJobs)

	// No model on the parent, none inherited.
	row, err := h.jobs.GetJob(ctx, children.Jobs[0].ID, false)
	require.NoError(t, err)
	assert.Empty(t, row.Model)

	record := sc.Checkpoint.PartialExtractions[discoveredZonesKey].(map[string]any)
	assert.Len(t, record["zones"], maxChildJobs)
}

func TestDiscoverZones_GuardSkipsAtDepthZero(t *testing.T) {
	steps := newTestSteps(t, &scriptedProvider{}, nil, nil)
	sc := newStepContext("Emberfall Reach", 0, 100_000)

	step := stepByName(t, steps, StepDiscoverZones)
	require.NotNil(t, step.Guard)
	assert.False(t, step.Guard(sc))
}

func TestDiscoveryContext_FallsBackToSummaries(t *testing.T) {
	cp := newStepContext("z", 1, 1000).Checkpoint
	cp.TopicSummaries[CategoryOverview] = "volcanic highland"
	assert.Equal(t, "overview: volcanic highland", discoveryContext(cp))

	cp.PartialExtractions[CategoryOverview] = map[string]any{"name": "z"}
	assert.Contains(t, discoveryContext(cp), `"name": "z"`)
}
