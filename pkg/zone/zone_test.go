package zone

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/loreweave/loreweave/ent"
	"github.com/loreweave/loreweave/pkg/agent"
	"github.com/loreweave/loreweave/pkg/budget"
	"github.com/loreweave/loreweave/pkg/config"
	"github.com/loreweave/loreweave/pkg/database"
	"github.com/loreweave/loreweave/pkg/events"
	"github.com/loreweave/loreweave/pkg/llm"
	"github.com/loreweave/loreweave/pkg/models"
	"github.com/loreweave/loreweave/pkg/pipeline"
	"github.com/loreweave/loreweave/pkg/prompts"
	"github.com/loreweave/loreweave/pkg/services"
	"github.com/loreweave/loreweave/pkg/summarize"
	testdb "github.com/loreweave/loreweave/test/database"
)

type scripted struct {
	resp *llm.Response
	err  error
}

// scriptedProvider plays back responses in call order and captures every
// request with its message slice snapshotted at call time.
type scriptedProvider struct {
	responses []scripted
	calls     []*llm.Request
}

func (p *scriptedProvider) Name() string  { return "anthropic" }
func (p *scriptedProvider) Model() string { return "claude-sonnet-4-5" }

func (p *scriptedProvider) Generate(_ context.Context, req *llm.Request) (*llm.Response, error) {
	idx := len(p.calls)
	snapshot := *req
	snapshot.Messages = append([]llm.Message(nil), req.Messages...)
	p.calls = append(p.calls, &snapshot)

	if idx >= len(p.responses) {
		return nil, fmt.Errorf("no scripted response for call %d", idx+1)
	}
	s := p.responses[idx]
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func textResponse(text string, tokens int64) *llm.Response {
	return &llm.Response{Text: text, Usage: llm.Usage{TotalTokens: tokens}}
}

type scriptedExecutor struct {
	tools    []llm.ToolDefinition
	results  map[string]string
	executed []llm.ToolCall
}

func (e *scriptedExecutor) ListTools(context.Context) ([]llm.ToolDefinition, error) {
	return e.tools, nil
}

func (e *scriptedExecutor) Execute(_ context.Context, call llm.ToolCall) (*llm.ToolResult, error) {
	e.executed = append(e.executed, call)
	content, ok := e.results[call.Name]
	return &llm.ToolResult{ToolCallID: call.ID, Name: call.Name, Content: content, IsError: !ok}, nil
}

func (e *scriptedExecutor) Instructions() string { return "" }

type storageCall struct {
	set  string
	tool string
	args map[string]any
}

// fakeStorage stands in for the mcp client on the assembler's upsert path.
type fakeStorage struct {
	calls     []storageCall
	connected bool
	result    *mcpsdk.CallToolResult
	err       error
}

func (f *fakeStorage) Call(_ context.Context, setName, toolName string, args map[string]any) (*mcpsdk.CallToolResult, error) {
	f.calls = append(f.calls, storageCall{set: setName, tool: toolName, args: args})
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &mcpsdk.CallToolResult{}, nil
}

func (f *fakeStorage) HasSession(string) bool { return f.connected }

// newTestSteps wires Steps over scripted LLM parts with no database behind
// the services. Tests that enqueue jobs or publish packages use zoneHarness
// instead.
func newTestSteps(t *testing.T, provider llm.Provider, executor agent.ToolExecutor, cfg *config.Config) *Steps {
	t.Helper()
	lib, err := prompts.Load()
	require.NoError(t, err)
	counter := budget.NewCounter("claude-sonnet-4-5")
	return NewSteps(StepDeps{
		Runtime:    agent.NewRuntime(provider, executor, nil, lib),
		Summarizer: summarize.NewEngine(provider, counter, lib, config.DefaultSummarizerConfig(), summarize.NewSemaphore()),
		Counter:    counter,
		Library:    lib,
		Config:     cfg,
	})
}

func newStepContext(zoneName string, depth int, budgetTokens int64) *pipeline.StepContext {
	jobID := uuid.New().String()
	return &pipeline.StepContext{
		Job: &ent.ResearchJob{
			ID:           jobID,
			ZoneName:     zoneName,
			Depth:        depth,
			BudgetTokens: budgetTokens,
		},
		Checkpoint: models.NewCheckpoint(jobID),
		Ledger:     budget.NewLedger(budgetTokens, 0),
	}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

// validExtraction is a ZoneExtraction that passes the derived schema.
func validExtraction() ZoneExtraction {
	return ZoneExtraction{
		Overview: OverviewExtraction{
			Name:           "Emberfall Reach",
			Region:         "The Cinder Marches",
			Description:    "A volcanic highland scarred by the Sundering.",
			BorderingZones: []string{"Gloomvale", "The Ashen Coast"},
			Confidence:     0.9,
		},
		NPCs: NPCExtraction{
			Entries: []NPC{
				{Name: "Warden Maro", Role: "quest giver", Faction: "The Emberguard"},
				{Name: "Sel the Cartographer", Role: "vendor"},
			},
			Confidence: 0.8,
		},
		Factions: FactionExtraction{
			Entries: []Faction{
				{Name: "The Emberguard", Leaders: []string{"Warden Maro"}},
			},
			Confidence: 0.7,
		},
		Lore: LoreExtraction{
			Entries: []LoreEntry{
				{Title: "The Sundering", Account: "The eruption that split the Reach."},
			},
			Confidence: 0.6,
		},
		NarrativeItems: ItemExtraction{
			Entries: []NarrativeItem{
				{Name: "Maro's Oath-Brand", Kind: "relic", References: []string{"Warden Maro"}},
			},
			Confidence: 0.5,
		},
	}
}

// zoneHarness backs the steps that write through real services.
type zoneHarness struct {
	t         *testing.T
	client    *database.Client
	jobs      *services.JobService
	packages  *services.PackageService
	eventLog  *services.EventService
	publisher *events.Publisher
}

func newZoneHarness(t *testing.T) *zoneHarness {
	client := testdb.NewTestClient(t)
	return &zoneHarness{
		t:         t,
		client:    client,
		jobs:      services.NewJobService(client.Client),
		packages:  services.NewPackageService(client.Client),
		eventLog:  services.NewEventService(client.Client),
		publisher: events.NewPublisher(client.DB(), "zone-test"),
	}
}

// newSteps wires Steps over the harness services plus scripted LLM parts.
func (h *zoneHarness) newSteps(provider llm.Provider, storage ToolCaller) *Steps {
	h.t.Helper()
	lib, err := prompts.Load()
	require.NoError(h.t, err)
	counter := budget.NewCounter("claude-sonnet-4-5")
	return NewSteps(StepDeps{
		Runtime:    agent.NewRuntime(provider, nil, nil, lib),
		Summarizer: summarize.NewEngine(provider, counter, lib, config.DefaultSummarizerConfig(), summarize.NewSemaphore()),
		Counter:    counter,
		Library:    lib,
		Storage:    storage,
		Jobs:       h.jobs,
		Packages:   h.packages,
		Publisher:  h.publisher,
	})
}

// startJob creates and claims a job so handlers see the row a worker would.
func (h *zoneHarness) startJob(zoneName string, depth int, budgetTokens int64) *ent.ResearchJob {
	h.t.Helper()
	ctx := context.Background()
	_, err := h.jobs.CreateJob(ctx, models.CreateJobRequest{
		JobID:        uuid.New().String(),
		ZoneName:     zoneName,
		Depth:        depth,
		BudgetTokens: budgetTokens,
	})
	require.NoError(h.t, err)
	job, err := h.jobs.ClaimNextJob(ctx, "zone-test-worker")
	require.NoError(h.t, err)
	require.NotNil(h.t, job)
	return job
}

func (h *zoneHarness) stepContext(job *ent.ResearchJob) *pipeline.StepContext {
	return &pipeline.StepContext{
		Job:        job,
		Checkpoint: models.NewCheckpoint(job.ID),
		Ledger:     budget.NewLedger(job.BudgetTokens, 0),
	}
}

// jobEventNames lists the event names recorded for a job, oldest first.
func (h *zoneHarness) jobEventNames(jobID string) []string {
	h.t.Helper()
	rows, err := h.eventLog.GetJobEvents(context.Background(), jobID)
	require.NoError(h.t, err)
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.Payload["event"].(string))
	}
	return names
}

// lastEvent returns the payload of the most recent event with the given
// name for the job.
func (h *zoneHarness) lastEvent(jobID, eventName string) map[string]any {
	h.t.Helper()
	rows, err := h.eventLog.GetJobEvents(context.Background(), jobID)
	require.NoError(h.t, err)
	var found map[string]any
	for _, row := range rows {
		if row.Payload["event"] == eventName {
			found = row.Payload
		}
	}
	require.NotNil(h.t, found, "no %s event for job %s", eventName, jobID)
	return found
}
