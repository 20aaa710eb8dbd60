// Package api serves the HTTP surface: job submission, status, cancel and
// resume, package retrieval, and the health endpoint. Handlers stay thin;
// lifecycle rules live in the service layer and the queue owns execution.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/loreweave/loreweave/pkg/config"
	"github.com/loreweave/loreweave/pkg/database"
	"github.com/loreweave/loreweave/pkg/events"
	"github.com/loreweave/loreweave/pkg/queue"
	"github.com/loreweave/loreweave/pkg/services"
)

// Server holds the handler dependencies and the underlying HTTP server.
type Server struct {
	cfg         *config.Config
	dbClient    *database.Client
	jobs        *services.JobService
	checkpoints *services.CheckpointService
	stepRuns    *services.StepRunService
	packages    *services.PackageService
	publisher   *events.Publisher
	workerPool  *queue.WorkerPool

	httpSrv *http.Server
}

// NewServer creates the API server. workerPool may be nil in deployments
// that serve the API without running workers; the health endpoint then
// skips the pool check.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	jobs *services.JobService,
	checkpoints *services.CheckpointService,
	stepRuns *services.StepRunService,
	packages *services.PackageService,
	publisher *events.Publisher,
	workerPool *queue.WorkerPool,
) *Server {
	return &Server{
		cfg:         cfg,
		dbClient:    dbClient,
		jobs:        jobs,
		checkpoints: checkpoints,
		stepRuns:    stepRuns,
		packages:    packages,
		publisher:   publisher,
		workerPool:  workerPool,
	}
}

// Handler builds the gin engine with all routes registered. Exposed so
// tests can drive the full router without binding a port.
func (s *Server) Handler() http.Handler {
	router := gin.New()
	router.Use(gin.Recovery(), securityHeaders())

	router.GET("/healthz", s.healthHandler)

	v1 := router.Group("/api/v1")
	v1.POST("/jobs", s.createJobHandler)
	v1.GET("/jobs", s.listJobsHandler)
	v1.GET("/jobs/:id", s.getJobHandler)
	v1.POST("/jobs/:id/cancel", s.cancelJobHandler)
	v1.POST("/jobs/:id/resume", s.resumeJobHandler)
	v1.GET("/jobs/:id/package", s.getJobPackageHandler)

	return router
}

// Start listens on addr and blocks until the server stops. Returns
// http.ErrServerClosed after a graceful Shutdown.
func (s *Server) Start(addr string) error {
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpSrv.ListenAndServe()
}

// Shutdown stops accepting new connections and waits for in-flight
// requests, bounded by ctx.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}
