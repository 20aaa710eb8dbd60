package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Subscribers route incoming notifications by inspecting the top-level
// "event" and "job_id" keys of the payload JSON. That only works while the
// Envelope stays embedded WITHOUT a json tag, so its fields promote flat
// into every payload. These tests pin that wire contract for every payload
// type; if one of them fails, consumers will silently stop seeing events.

func TestPayloads_EnvelopePromotesToTopLevel(t *testing.T) {
	tests := []struct {
		name    string
		event   string
		payload stamped
	}{
		{"JobQueuedPayload", EventJobQueued, &JobQueuedPayload{ZoneName: "Emberfall Reach", Depth: 2}},
		{"StepStartedPayload", EventStepStarted, &StepStartedPayload{StepName: "zone_overview_research", StepIndex: 0, TotalSteps: 9}},
		{"StepCompletedPayload", EventStepCompleted, &StepCompletedPayload{StepName: "npc_research", StepIndex: 1, DurationMS: 1200, TokensUsed: 4500}},
		{"StepFailedTransientPayload", EventStepFailedTransient, &StepFailedTransientPayload{StepName: "lore_research", ErrorKind: "transient_rate_limit", Message: "429 from provider", Attempt: 1}},
		{"JobCompletedPayload", EventJobCompleted, &JobCompletedPayload{ZoneName: "Emberfall Reach", TokensUsed: 81000}},
		{"JobFailedPayload", EventJobFailed, &JobFailedPayload{ErrorKind: "permanent_budget", Message: "token budget exhausted"}},
		{"JobCancelledPayload", EventJobCancelled, &JobCancelledPayload{ZoneName: "Emberfall Reach"}},
		{"ZoneDiscoveredPayload", EventZoneDiscovered, &ZoneDiscoveredPayload{ZoneName: "Emberfall Reach", DiscoveredZone: "Hollowmere", ChildJobID: "job-child-1", ChildDepth: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.payload.stamp(tc.event, "job-123", "worker-1")

			data, err := json.Marshal(tc.payload)
			require.NoError(t, err)

			var fields map[string]any
			require.NoError(t, json.Unmarshal(data, &fields))

			assert.Equal(t, tc.event, fields["event"], "event must be a top-level key")
			assert.Equal(t, "job-123", fields["job_id"], "job_id must be a top-level key")
			assert.Equal(t, "worker-1", fields["agent_id"], "agent_id must be a top-level key")

			ts, ok := fields["timestamp"].(string)
			require.True(t, ok, "timestamp must be a top-level string")
			_, err = time.Parse(time.RFC3339Nano, ts)
			assert.NoError(t, err, "timestamp must be RFC3339")
		})
	}
}

func TestStamp_SetsUTCTimestamp(t *testing.T) {
	var payload StepStartedPayload
	before := time.Now().UTC()
	payload.stamp(EventStepStarted, "job-1", "worker-1")

	parsed, err := time.Parse(time.RFC3339Nano, payload.Timestamp)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, parsed.Location())
	assert.False(t, parsed.Before(before.Truncate(time.Second)))
}

// Field names below are what dashboard consumers key on. Renaming a json tag
// is a breaking change even when the Go field keeps its name.

func TestStepCompletedPayload_WireFieldNames(t *testing.T) {
	payload := StepCompletedPayload{
		StepName:   "faction_research",
		StepIndex:  2,
		DurationMS: 3400,
		TokensUsed: 12000,
		Metrics:    map[string]any{"sources_found": 7},
	}
	payload.stamp(EventStepCompleted, "job-1", "worker-1")

	data, err := json.Marshal(&payload)
	require.NoError(t, err)

	for _, key := range []string{`"step_name"`, `"step_index"`, `"duration_ms"`, `"tokens_used"`, `"metrics"`} {
		assert.Contains(t, string(data), key)
	}
}

func TestStepFailedTransientPayload_WireFieldNames(t *testing.T) {
	payload := StepFailedTransientPayload{
		StepName:  "extract_all",
		ErrorKind: "transient_timeout",
		Message:   "deadline exceeded",
		Attempt:   2,
	}
	payload.stamp(EventStepFailedTransient, "job-1", "worker-1")

	data, err := json.Marshal(&payload)
	require.NoError(t, err)

	for _, key := range []string{`"step_name"`, `"error_kind"`, `"message"`, `"attempt"`} {
		assert.Contains(t, string(data), key)
	}
}

func TestJobCompletedPayload_IncludesPackageSummary(t *testing.T) {
	payload := JobCompletedPayload{
		ZoneName:   "Emberfall Reach",
		TokensUsed: 95000,
		PackageSummary: &PackageSummary{
			Categories:           map[string]int{"npcs": 12, "factions": 3},
			SourceCount:          41,
			ConfidenceByCategory: map[string]float64{"npcs": 0.82},
			ErrorCount:           0,
		},
	}
	payload.stamp(EventJobCompleted, "job-1", "worker-1")

	data, err := json.Marshal(&payload)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	summary, ok := fields["package_summary"].(map[string]any)
	require.True(t, ok, "package_summary must be a nested object")
	assert.Contains(t, summary, "categories")
	assert.Contains(t, summary, "source_count")
	assert.Contains(t, summary, "confidence_by_category")
}

func TestJobFailedPayload_OmitsEmptyOptionalFields(t *testing.T) {
	payload := JobFailedPayload{ErrorKind: "permanent_internal", Message: "boom"}
	payload.stamp(EventJobFailed, "job-1", "worker-1")

	data, err := json.Marshal(&payload)
	require.NoError(t, err)

	assert.NotContains(t, string(data), `"zone_name"`)
	assert.NotContains(t, string(data), `"failed_step"`)
}

func TestZoneDiscoveredPayload_CarriesParentAndChild(t *testing.T) {
	payload := ZoneDiscoveredPayload{
		ZoneName:       "Emberfall Reach",
		DiscoveredZone: "Hollowmere",
		ChildJobID:     "job-child-9",
		ChildDepth:     1,
	}
	payload.stamp(EventZoneDiscovered, "job-parent-1", "worker-1")

	data, err := json.Marshal(&payload)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	// job_id stays the parent's so subscribers following a job see its spawns
	assert.Equal(t, "job-parent-1", fields["job_id"])
	assert.Equal(t, "Hollowmere", fields["discovered_zone"])
	assert.Equal(t, "job-child-9", fields["child_job_id"])
	assert.Equal(t, float64(1), fields["child_depth"])
}
