package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// getJobPackageHandler handles GET /api/v1/jobs/:id/package. Returns the
// package the job published; 404 until the job completes its final step.
func (s *Server) getJobPackageHandler(c *gin.Context) {
	jobID := c.Param("id")
	if jobID == "" {
		badRequest(c, "job id is required")
		return
	}

	pkg, err := s.packages.GetByJobID(c.Request.Context(), jobID)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, PackageResponse{
		PackageID:   pkg.ID,
		JobID:       pkg.JobID,
		ZoneName:    pkg.ZoneName,
		Document:    pkg.Document,
		PublishedAt: pkg.PublishedAt.UTC().Format(time.RFC3339),
	})
}
