package e2e

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	oa "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loreweave/loreweave/pkg/config"
	"github.com/loreweave/loreweave/pkg/events"
	"github.com/loreweave/loreweave/pkg/models"
	"github.com/loreweave/loreweave/pkg/zone"
)

// TestE2E_FullResearchRun drives one depth-1 job from HTTP submission to
// the published package: five research steps chain their summaries, the
// extraction is schema-constrained, discovery runs but finds nothing, and
// the completion event carries the package summary over NOTIFY.
func TestE2E_FullResearchRun(t *testing.T) {
	llm := NewScriptedLLM(t)
	llm.Add(
		reportEntry(t, "The Reach is a volcanic highland above the Cinder Marches, level band 38-44.",
			"Volcanic highland zone scarred by an ancient eruption.",
			models.ReportSource{URI: "https://lore.example/wiki/emberfall-reach", Tier: "official"}),
		reportEntry(t, "Warden Maro commands the Emberguard bastion; Sel the Cartographer maps the lava tubes.",
			"Two story NPCs anchor the zone.",
			models.ReportSource{URI: "https://lore.example/wiki/warden-maro", Tier: "primary"}),
		reportEntry(t, "The Emberguard hold the Reach against the ash cults of the lowlands.",
			"One dominant faction with a hostile cult rival.",
			// Unknown tier: must land in the tertiary bucket, not be dropped.
			models.ReportSource{URI: "https://forums.example/emberguard-thread", Tier: "community"}),
		reportEntry(t, "The Sundering split the Reach three ages ago; the wardens date their oaths to it.",
			"A single era-defining eruption event.",
			models.ReportSource{URI: "https://lore.example/wiki/the-sundering", Tier: "official"}),
		reportEntry(t, "Maro's Oath-Brand is a relic sword inscribed with the founding vows.",
			"One named relic ties the items to the zone's history.",
			models.ReportSource{URI: "https://lore.example/wiki/oath-brand", Tier: "primary"}),
		ScriptEntry{Text: mustJSON(t, scriptedExtraction("Emberfall Reach"))},
		ScriptEntry{Text: mustJSON(t, consistentCrossRef())},
		ScriptEntry{Text: mustJSON(t, zone.ZoneDiscovery{ConnectedZones: []zone.ConnectedZone{}})},
	)

	app := NewTestApp(t, WithLLM(llm))
	notifications := app.SubscribeEvents(64)

	jobID := app.SubmitJob(t, "Emberfall Reach", 1, 100_000)
	app.WaitForJobStatus(t, jobID, "completed")

	// Completion arrives over the listener's dedicated connection, with the
	// package summary riding the payload.
	n := waitForNotification(t, notifications, jobID, events.EventJobCompleted)
	var completed events.JobCompletedPayload
	require.NoError(t, json.Unmarshal(n.Payload, &completed))
	require.NotNil(t, completed.PackageSummary)
	assert.Equal(t, 5, completed.PackageSummary.SourceCount)
	assert.Equal(t, 2, completed.PackageSummary.Categories["npcs"])
	assert.EqualValues(t, 1280, completed.TokensUsed) // 8 calls x 160 scripted tokens

	// Job detail over the API: all nine steps completed.
	detail := app.GetJob(t, jobID)
	assert.Equal(t, "completed", detail["status"])
	progress, ok := detail["progress"].(map[string]any)
	require.True(t, ok, "detail response is missing progress")
	assert.Len(t, progress["completed_steps"], len(zone.StepNames()))

	runs := app.StepRunList(t, jobID)
	require.Len(t, runs, len(zone.StepNames()))
	for i, run := range runs {
		assert.Equal(t, zone.StepNames()[i], run.StepName)
		assert.Equal(t, "completed", string(run.Status))
		assert.Equal(t, 1, run.Attempt)
	}

	// Published package.
	pkg := app.GetPackage(t, jobID)
	assert.Equal(t, jobID, pkg["job_id"])
	assert.Equal(t, "Emberfall Reach", pkg["zone_name"])
	doc, ok := pkg["document"].(map[string]any)
	require.True(t, ok, "package response is missing the document")
	assert.Len(t, doc["categories"], 5)
	confidence, _ := doc["confidence_by_category"].(map[string]any)
	assert.Equal(t, 0.9, confidence["overview"])
	sources, _ := doc["sources_by_tier"].(map[string]any)
	assert.Len(t, sources["official"], 2)
	assert.Contains(t, sources["tertiary"], "https://forums.example/emberguard-thread")
	assert.EqualValues(t, 1280, doc["tokens_used"])
	assert.NotContains(t, doc, "discovered_zones")

	// Persisted event trail: queued, one started/completed pair per step,
	// then completed. No transient failures.
	expected := []string{events.EventJobQueued}
	for range zone.StepNames() {
		expected = append(expected, events.EventStepStarted, events.EventStepCompleted)
	}
	expected = append(expected, events.EventJobCompleted)
	assert.Equal(t, expected, app.JobEventNames(t, jobID))

	// Prompt plumbing, straight off the wire. The second research step gets
	// the first step's summary as known context; the extraction call is
	// constrained to a JSON object and sees the accumulated material.
	reqs := llm.Requests()
	require.Len(t, reqs, 8)
	assert.Contains(t, messageText(reqs[0], oa.ChatMessageRoleSystem), "Emberfall Reach")
	assert.Nil(t, reqs[0].ResponseFormat)
	assert.Contains(t, messageText(reqs[1], oa.ChatMessageRoleUser), "Volcanic highland zone scarred")
	require.NotNil(t, reqs[5].ResponseFormat)
	assert.Equal(t, oa.ChatCompletionResponseFormatTypeJSONObject, reqs[5].ResponseFormat.Type)
	extractionPrompt := messageText(reqs[5], oa.ChatMessageRoleUser)
	assert.Contains(t, extractionPrompt, "# overview")
	assert.Contains(t, extractionPrompt, "volcanic highland above the Cinder Marches")
}

// TestE2E_TransientPauseAndResume rate-limits the second research step.
// With no in-process retries configured the job pauses, the worker
// schedules a backoff resume, and the next claim re-runs the step from the
// checkpoint without repeating the first one.
func TestE2E_TransientPauseAndResume(t *testing.T) {
	llm := NewScriptedLLM(t)
	llm.Add(
		reportEntry(t, "Ashfall covers the coast road for most of the year.", "A grey volcanic shoreline."),
		ScriptEntry{Status: http.StatusTooManyRequests, ErrorMessage: "rate limit exceeded, retry later"},
		reportEntry(t, "Harbormaster Ilka runs the only safe anchorage.", "One notable NPC."),
		reportEntry(t, "The Saltworn League taxes every landing.", "A single merchant faction."),
		reportEntry(t, "The coast drowned twice in recorded history.", "Flood lore dominates."),
		reportEntry(t, "The Drowned Bell still rings before storms.", "One storied relic."),
		ScriptEntry{Text: mustJSON(t, scriptedExtraction("The Ashen Coast"))},
		ScriptEntry{Text: mustJSON(t, consistentCrossRef())},
	)

	pipelineCfg := config.DefaultPipelineConfig()
	pipelineCfg.MaxStepRetries = 0
	app := NewTestApp(t, WithLLM(llm), WithPipelineConfig(pipelineCfg))

	jobID := app.SubmitJob(t, "The Ashen Coast", 0, 100_000)
	app.WaitForJobStatus(t, jobID, "completed")

	job, err := app.EntClient.ResearchJob.Get(context.Background(), jobID)
	require.NoError(t, err)
	assert.Equal(t, 1, job.ResumeCount)

	// The rate-limited step has two audit rows: the failed first attempt
	// and the successful second one after the resume.
	runs := app.StepRunList(t, jobID)
	npcRuns := RunsForStep(runs, zone.StepNPCs)
	require.Len(t, npcRuns, 2)
	assert.Equal(t, "failed_transient", string(npcRuns[0].Status))
	require.NotNil(t, npcRuns[0].ErrorKind)
	assert.Equal(t, "transient_rate_limit", *npcRuns[0].ErrorKind)
	assert.Equal(t, 1, npcRuns[0].Attempt)
	assert.Equal(t, "completed", string(npcRuns[1].Status))
	assert.Equal(t, 2, npcRuns[1].Attempt)

	// Depth 0 guards discovery off; the slot is skipped, not run.
	discoveryRuns := RunsForStep(runs, zone.StepDiscoverZones)
	require.Len(t, discoveryRuns, 1)
	assert.Equal(t, "skipped", string(discoveryRuns[0].Status))

	failure := app.JobEventPayload(t, jobID, events.EventStepFailedTransient)
	assert.Equal(t, zone.StepNPCs, failure["step_name"])
	assert.Equal(t, "transient_rate_limit", failure["error_kind"])

	assert.Equal(t, 8, llm.CallCount())
	app.GetPackage(t, jobID)
}

// TestE2E_CancelMidRun cancels while the third research step's completion
// is held in flight. The API acknowledges with 202, the in-flight step is
// allowed to finish, and the engine stops at the next step boundary
// without starting a fourth step.
func TestE2E_CancelMidRun(t *testing.T) {
	release := make(chan struct{})
	blocked := make(chan struct{})

	llm := NewScriptedLLM(t)
	llm.Add(
		reportEntry(t, "Gloomvale sits under permanent fog.", "A fogbound forest vale."),
		reportEntry(t, "The Pale Warden patrols the old road.", "One spectral NPC."),
		ScriptEntry{
			Text:    mustJSON(t, models.ResearchReport{Findings: "The Mistcallers claim the vale.", Summary: "One reclusive faction."}),
			WaitCh:  release,
			OnBlock: blocked,
		},
	)

	app := NewTestApp(t, WithLLM(llm))
	notifications := app.SubscribeEvents(64)
	jobID := app.SubmitJob(t, "Gloomvale", 0, 100_000)

	// Wait until the faction step's provider call is provably in flight,
	// then cancel through the API.
	<-blocked
	resp := app.CancelJob(t, jobID, http.StatusAccepted)
	assert.Equal(t, "running", resp["status"])
	close(release)

	app.WaitForJobStatus(t, jobID, "cancelled")
	// The cancelled event row lands just after the status flip; wait for
	// its NOTIFY before reading the persisted trail.
	waitForNotification(t, notifications, jobID, events.EventJobCancelled)

	// The in-flight step completed; nothing after it started.
	assert.Equal(t, 3, llm.CallCount())
	runs := app.StepRunList(t, jobID)
	require.Len(t, runs, 3)
	for _, run := range runs {
		assert.Equal(t, "completed", string(run.Status))
	}

	detail := app.GetJob(t, jobID)
	assert.Equal(t, "cancelled", detail["status"])
	assert.Equal(t, true, detail["cancel_requested"])
	progress, ok := detail["progress"].(map[string]any)
	require.True(t, ok, "detail response is missing progress")
	assert.Len(t, progress["completed_steps"], 3)

	assert.Contains(t, app.JobEventNames(t, jobID), events.EventJobCancelled)
	app.getJSON(t, "/api/v1/jobs/"+jobID+"/package", http.StatusNotFound)
}

// TestE2E_DiscoverySpawnsChildJob runs a depth-1 parent whose discovery
// step finds a connected zone. The child job is enqueued with depth 0 and
// the default budget, claimed by the same worker after the parent
// finishes, and researched to its own package.
func TestE2E_DiscoverySpawnsChildJob(t *testing.T) {
	llm := NewScriptedLLM(t)
	// Parent: Emberfall Reach at depth 1.
	llm.Add(
		reportEntry(t, "The Reach overlooks the fog line of Gloomvale.", "A volcanic highland bordering a fogbound vale."),
		reportEntry(t, "Warden Maro holds the bastion.", "One commanding NPC."),
		reportEntry(t, "The Emberguard man the walls.", "A single garrison faction."),
		reportEntry(t, "The Sundering shaped the Reach.", "One founding catastrophe."),
		reportEntry(t, "The Oath-Brand hangs in the bastion hall.", "One relic of note."),
		ScriptEntry{Text: mustJSON(t, scriptedExtraction("Emberfall Reach"))},
		ScriptEntry{Text: mustJSON(t, consistentCrossRef())},
		ScriptEntry{Text: mustJSON(t, zone.ZoneDiscovery{ConnectedZones: []zone.ConnectedZone{
			{Name: "Gloomvale", Connection: "pass through the ash dunes"},
		}})},
	)
	// Child: Gloomvale at depth 0, discovery skipped.
	llm.Add(
		reportEntry(t, "Gloomvale lies in permanent fog below the Reach.", "A fogbound forest vale."),
		reportEntry(t, "The Pale Warden walks the old road.", "One spectral NPC."),
		reportEntry(t, "The Mistcallers keep the vale closed.", "One reclusive faction."),
		reportEntry(t, "The fog rose the night the Reach burned.", "Lore ties the vale to the Sundering."),
		reportEntry(t, "The Lantern of the Last Road never goes out.", "One storied item."),
		ScriptEntry{Text: mustJSON(t, scriptedExtraction("Gloomvale"))},
		ScriptEntry{Text: mustJSON(t, consistentCrossRef())},
	)

	app := NewTestApp(t, WithLLM(llm))

	parentID := app.SubmitJob(t, "Emberfall Reach", 1, 100_000)
	app.WaitForJobStatus(t, parentID, "completed")

	child := app.ChildJob(t, parentID)
	assert.Equal(t, "Gloomvale", child.ZoneName)
	assert.Equal(t, 0, child.Depth)
	assert.EqualValues(t, app.Config.Budget.DefaultJobBudgetTokens, child.BudgetTokens)

	discovered := app.JobEventPayload(t, parentID, events.EventZoneDiscovered)
	assert.Equal(t, "Gloomvale", discovered["discovered_zone"])
	assert.Equal(t, child.ID, discovered["child_job_id"])
	assert.Equal(t, float64(0), discovered["child_depth"])

	parentPkg := app.GetPackage(t, parentID)
	parentDoc, _ := parentPkg["document"].(map[string]any)
	assert.Equal(t, []any{"Gloomvale"}, parentDoc["discovered_zones"])

	app.WaitForJobStatus(t, child.ID, "completed")
	childPkg := app.GetPackage(t, child.ID)
	assert.Equal(t, "Gloomvale", childPkg["zone_name"])

	assert.Equal(t, 15, llm.CallCount())
}

// reportEntry wraps a research report in a script entry the way research
// agents are instructed to reply.
func reportEntry(t *testing.T, findings, summary string, sources ...models.ReportSource) ScriptEntry {
	t.Helper()
	return ScriptEntry{Text: mustJSON(t, models.ResearchReport{
		Findings: findings,
		Summary:  summary,
		Sources:  sources,
	})}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

// scriptedExtraction returns a ZoneExtraction that satisfies the derived
// schema, themed for the given zone.
func scriptedExtraction(zoneName string) zone.ZoneExtraction {
	return zone.ZoneExtraction{
		Overview: zone.OverviewExtraction{
			Name:        zoneName,
			Region:      "The Cinder Marches",
			Description: "A region scarred by the Sundering.",
			Confidence:  0.9,
		},
		NPCs: zone.NPCExtraction{
			Entries: []zone.NPC{
				{Name: "Warden Maro", Role: "quest giver", Faction: "The Emberguard"},
				{Name: "Sel the Cartographer", Role: "vendor"},
			},
			Confidence: 0.8,
		},
		Factions: zone.FactionExtraction{
			Entries:    []zone.Faction{{Name: "The Emberguard", Leaders: []string{"Warden Maro"}}},
			Confidence: 0.7,
		},
		Lore: zone.LoreExtraction{
			Entries:    []zone.LoreEntry{{Title: "The Sundering", Account: "The eruption that split the Reach."}},
			Confidence: 0.6,
		},
		NarrativeItems: zone.ItemExtraction{
			Entries:    []zone.NarrativeItem{{Name: "Maro's Oath-Brand", Kind: "relic"}},
			Confidence: 0.5,
		},
	}
}

// consistentCrossRef is a clean consistency verdict. All three fields are
// schema-required, so the empty collections must encode as [] rather than
// null.
func consistentCrossRef() zone.CrossReferenceResult {
	return zone.CrossReferenceResult{
		IsConsistent: true,
		Conflicts:    []zone.Conflict{},
		Adjustments:  []zone.ConfidenceAdjustment{},
	}
}

// messageText concatenates the contents of all messages with the given
// role, for prompt assertions.
func messageText(req oa.ChatCompletionRequest, role string) string {
	var b strings.Builder
	for _, m := range req.Messages {
		if m.Role == role {
			b.WriteString(m.Content)
			b.WriteString("\n")
		}
	}
	return b.String()
}
