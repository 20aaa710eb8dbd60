package api

// SubmitJobResponse is returned by POST /api/v1/jobs.
type SubmitJobResponse struct {
	JobID   string `json:"job_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// CancelResponse is returned by POST /api/v1/jobs/:id/cancel.
type CancelResponse struct {
	JobID   string `json:"job_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ResumeResponse is returned by POST /api/v1/jobs/:id/resume.
type ResumeResponse struct {
	JobID   string `json:"job_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// PackageResponse is returned by GET /api/v1/jobs/:id/package.
type PackageResponse struct {
	PackageID   string         `json:"package_id"`
	JobID       string         `json:"job_id"`
	ZoneName    string         `json:"zone_name"`
	Document    map[string]any `json:"document"`
	PublishedAt string         `json:"published_at"`
}

// HealthCheck reports one component's state inside HealthResponse.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}
