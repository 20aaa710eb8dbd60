// Loreweave summarizer — standalone MCP tool server hosting the map-reduce
// summarization engine over streamable HTTP. The pipeline's agents reach it
// through the summarizer tool set; it needs LLM provider credentials but no
// database.
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
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/loreweave/loreweave/pkg/budget"
	"github.com/loreweave/loreweave/pkg/config"
	"github.com/loreweave/loreweave/pkg/llm"
	"github.com/loreweave/loreweave/pkg/prompts"
	"github.com/loreweave/loreweave/pkg/summarize"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8090")

	slog.Info("Starting loreweave summarizer",
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx := context.Background()

	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	library, err := prompts.Load()
	if err != nil {
		slog.Error("Failed to load prompt library", "error", err)
		os.Exit(1)
	}

	// Summaries use the pipeline default model. Resolving up front surfaces
	// missing API keys at startup instead of on the first tool call.
	router := llm.NewRouter(cfg)
	provider, err := router.Resolve("")
	if err != nil {
		slog.Error("Failed to resolve summarization model", "error", err)
		os.Exit(1)
	}
	slog.Info("Summarization model resolved", "model", provider.Model())

	engine := summarize.NewEngine(
		provider,
		budget.NewCounter(provider.Model()),
		library,
		cfg.Summarizer,
		summarize.NewSemaphore(),
	)
	server := summarize.NewServer(summarize.NewService(engine))

	// One MCP server instance serves every session; the engine is safe for
	// concurrent use and the shared semaphore bounds total provider fan-out.
	handler := mcpsdk.NewStreamableHTTPHandler(
		func(*http.Request) *mcpsdk.Server { return server },
		nil,
	)

	httpServer := &http.Server{
		Addr:              ":" + httpPort,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Summarizer listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// In-flight summarizations get a short drain window; anything longer is
	// abandoned and the caller's degrade path returns content unchanged.
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
