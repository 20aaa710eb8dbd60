// Loreweave pipeline daemon — serves the HTTP API, runs the queue workers,
// and drives research jobs through the zone pipeline.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/loreweave/loreweave/pkg/api"
	"github.com/loreweave/loreweave/pkg/cleanup"
	"github.com/loreweave/loreweave/pkg/config"
	"github.com/loreweave/loreweave/pkg/database"
	"github.com/loreweave/loreweave/pkg/events"
	"github.com/loreweave/loreweave/pkg/llm"
	"github.com/loreweave/loreweave/pkg/mcp"
	"github.com/loreweave/loreweave/pkg/prompts"
	"github.com/loreweave/loreweave/pkg/queue"
	"github.com/loreweave/loreweave/pkg/services"
	"github.com/loreweave/loreweave/pkg/summarize"
	"github.com/loreweave/loreweave/pkg/zone"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting loreweave",
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database (migrations run inside NewClient)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services and the event publisher
	jobService := services.NewJobService(dbClient.Client)
	checkpointService := services.NewCheckpointService(dbClient.Client)
	stepRunService := services.NewStepRunService(dbClient.Client)
	packageService := services.NewPackageService(dbClient.Client)
	interactionService := services.NewInteractionService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	publisher := events.NewPublisher(dbClient.DB(), podID)
	slog.Info("Services initialized")

	// 4. LLM router, prompt library, tool factory
	router := llm.NewRouter(cfg)

	library, err := prompts.Load()
	if err != nil {
		slog.Error("Failed to load prompt library", "error", err)
		os.Exit(1)
	}

	toolFactory := mcp.NewFactory(cfg.ToolSetRegistry)

	// Startup tool set probe. Unreachable endpoints are warnings, not
	// fatal: runs degrade per step while a set is down, and tool servers
	// may come up after this pod does.
	toolSets := cfg.AllToolSetNames()
	if len(toolSets) > 0 {
		probe, probeErr := toolFactory.CreateClient(ctx, toolSets)
		if probeErr != nil {
			slog.Warn("Tool set startup probe failed", "error", probeErr)
		} else {
			if failed := probe.FailedToolSets(); len(failed) > 0 {
				slog.Warn("Tool sets unreachable at startup", "failed_tool_sets", failed)
			} else {
				slog.Info("Tool sets validated", "count", len(toolSets))
			}
			_ = probe.Close()
		}
	}

	// 5. Pipeline runner. The semaphore is created once here so every
	// summarization engine in the process shares one map-phase gate.
	runner := zone.NewRunner(zone.RunnerDeps{
		Router:       router,
		Tools:        toolFactory,
		Interactions: interactionService,
		Jobs:         jobService,
		Checkpoints:  checkpointService,
		StepRuns:     stepRunService,
		Packages:     packageService,
		Publisher:    publisher,
		Library:      library,
		Config:       cfg,
		Semaphore:    summarize.NewSemaphore(),
	})

	// 6. Start worker pool (before HTTP server; recovers this pod's stale
	// claims on the way up)
	workerPool := queue.NewWorkerPool(podID, jobService, runner, publisher, cfg.Queue)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 7. Start retention sweeps
	cleanupService := cleanup.NewService(cfg.Retention, jobService, checkpointService, eventService)
	cleanupService.Start(ctx)

	// 8. Create HTTP server
	httpServer := api.NewServer(cfg, dbClient, jobService, checkpointService, stepRunService, packageService, publisher, workerPool)

	// 9. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Loreweave started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown. The cleanup ticker stops immediately; the
	// pool waits for active jobs up to its configured shutdown timeout,
	// then cancels them so orphan recovery resumes the work elsewhere.
	cleanupService.Stop()
	workerPool.Stop()

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
