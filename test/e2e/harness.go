// Package e2e boots the complete loreweave stack against a real PostgreSQL
// database and a scripted OpenAI-compatible endpoint, then drives research
// jobs through the public HTTP API. Everything between the API handler and
// the provider's HTTP client is production code: queue claiming, the zone
// pipeline, checkpointing, budget accounting, and the NOTIFY event bus.
package e2e

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/loreweave/loreweave/ent"
	"github.com/loreweave/loreweave/pkg/api"
	"github.com/loreweave/loreweave/pkg/config"
	"github.com/loreweave/loreweave/pkg/database"
	"github.com/loreweave/loreweave/pkg/events"
	"github.com/loreweave/loreweave/pkg/llm"
	"github.com/loreweave/loreweave/pkg/mcp"
	"github.com/loreweave/loreweave/pkg/prompts"
	"github.com/loreweave/loreweave/pkg/queue"
	"github.com/loreweave/loreweave/pkg/services"
	"github.com/loreweave/loreweave/pkg/zone"
	testdb "github.com/loreweave/loreweave/test/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testModelID is the model every scripted completion reports back.
const testModelID = "lore-e2e-model"

// TestApp is one booted loreweave instance for end-to-end tests.
type TestApp struct {
	Config    *config.Config
	DBClient  *database.Client
	EntClient *ent.Client

	LLM      *ScriptedLLM
	Listener *events.Listener

	WorkerPool *queue.WorkerPool
	Server     *api.Server
	BaseURL    string

	Jobs     *services.JobService
	StepRuns *services.StepRunService
	Events   *services.EventService

	t *testing.T
}

// testAppConfig holds options accumulated before boot.
type testAppConfig struct {
	llm         *ScriptedLLM
	workerCount int
	pipeline    *config.PipelineConfig
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithLLM sets a pre-scripted completion server. Without it the app gets an
// empty script, which fails the first job with a visible script-exhausted
// message.
func WithLLM(s *ScriptedLLM) TestAppOption {
	return func(c *testAppConfig) { c.llm = s }
}

// WithWorkerCount sets the number of queue workers. The default is one,
// which keeps script consumption order deterministic across parent and
// child jobs.
func WithWorkerCount(n int) TestAppOption {
	return func(c *testAppConfig) { c.workerCount = n }
}

// WithPipelineConfig overrides the pipeline section; the harness still
// points DefaultModel at the scripted provider afterwards.
func WithPipelineConfig(cfg *config.PipelineConfig) TestAppOption {
	return func(c *testAppConfig) { c.pipeline = cfg }
}

// NewTestApp boots a full loreweave instance. Shutdown is registered via
// t.Cleanup in reverse-creation order.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	tc := &testAppConfig{workerCount: 1}
	for _, opt := range opts {
		opt(tc)
	}
	if tc.llm == nil {
		tc.llm = NewScriptedLLM(t)
	}
	cfg := testConfig(tc)

	// Shared schema rather than a per-test one: the listener opens its own
	// dedicated connection and must land on the same tables as the pools.
	shared := testdb.NewSharedTestDB(t)
	dbClient := shared.NewClient(t)
	entClient := dbClient.Client

	podID := "e2e-test-" + t.Name()
	publisher := events.NewPublisher(dbClient.DB(), podID)

	ctx := context.Background()
	listener := events.NewListener(shared.ConnString())
	require.NoError(t, listener.Start(ctx))

	jobService := services.NewJobService(entClient)
	checkpointService := services.NewCheckpointService(entClient)
	stepRunService := services.NewStepRunService(entClient)
	interactionService := services.NewInteractionService(entClient)
	packageService := services.NewPackageService(entClient)
	eventService := services.NewEventService(entClient)

	runner := zone.NewRunner(zone.RunnerDeps{
		Router:       llm.NewRouter(cfg),
		Tools:        mcp.NewFactory(cfg.ToolSetRegistry),
		Interactions: interactionService,
		Jobs:         jobService,
		Checkpoints:  checkpointService,
		StepRuns:     stepRunService,
		Packages:     packageService,
		Publisher:    publisher,
		Library:      prompts.MustLoad(),
		Config:       cfg,
	})

	workerPool := queue.NewWorkerPool(podID, jobService, runner, publisher, cfg.Queue)
	require.NoError(t, workerPool.Start(ctx))

	server := api.NewServer(cfg, dbClient, jobService, checkpointService, stepRunService, packageService, publisher, workerPool)
	httpSrv := httptest.NewServer(server.Handler())

	t.Cleanup(func() {
		httpSrv.Close()
		workerPool.Stop()
		listener.Stop(context.Background())
	})

	return &TestApp{
		Config:     cfg,
		DBClient:   dbClient,
		EntClient:  entClient,
		LLM:        tc.llm,
		Listener:   listener,
		WorkerPool: workerPool,
		Server:     server,
		BaseURL:    httpSrv.URL,
		Jobs:       jobService,
		StepRuns:   stepRunService,
		Events:     eventService,
		t:          t,
	}
}

// testConfig builds the app config around the scripted endpoint. Queue
// timings are compressed so polls, resumes, and shutdowns complete in test
// time; everything else keeps production defaults.
func testConfig(tc *testAppConfig) *config.Config {
	pipelineCfg := tc.pipeline
	if pipelineCfg == nil {
		pipelineCfg = config.DefaultPipelineConfig()
	}
	pipelineCfg.DefaultModel = "mock:" + testModelID

	return &config.Config{
		Pipeline:   pipelineCfg,
		Budget:     config.DefaultBudgetConfig(),
		Summarizer: config.DefaultSummarizerConfig(),
		Extraction: config.DefaultExtractionConfig(),
		Retention:  config.DefaultRetentionConfig(),
		Queue: &config.QueueConfig{
			WorkerCount:             tc.workerCount,
			MaxConcurrentJobs:       tc.workerCount,
			PollInterval:            100 * time.Millisecond,
			PollIntervalJitter:      50 * time.Millisecond,
			JobTimeout:              60 * time.Second,
			HeartbeatInterval:       5 * time.Second,
			GracefulShutdownTimeout: 10 * time.Second,
			OrphanDetectionInterval: time.Minute,
			OrphanThreshold:         time.Minute,
			MaxResumes:              5,
			// One short delay so pause/resume round-trips finish quickly.
			ResumeBackoff: []time.Duration{200 * time.Millisecond},
		},
		ToolSetRegistry: config.NewToolSetRegistry(nil),
		LLMProviderRegistry: config.NewLLMProviderRegistry(map[string]*config.LLMProviderConfig{
			"mock": {
				Type:    config.LLMProviderTypeOpenAI,
				Model:   testModelID,
				BaseURL: tc.llm.BaseURL(),
			},
		}),
	}
}
