package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/loreweave/loreweave/ent"
	"github.com/loreweave/loreweave/ent/researchjob"
	"github.com/loreweave/loreweave/pkg/events"
)

// SubmitJob posts a research job and returns its id.
func (app *TestApp) SubmitJob(t *testing.T, zoneName string, depth int, budgetTokens int64) string {
	t.Helper()
	resp := app.postJSON(t, "/api/v1/jobs", map[string]any{
		"zone_name":     zoneName,
		"depth":         depth,
		"budget_tokens": budgetTokens,
	}, http.StatusCreated)
	jobID, _ := resp["job_id"].(string)
	require.NotEmpty(t, jobID)
	return jobID
}

// CancelJob posts a cancel request. Running jobs answer 202, pending and
// paused ones 200.
func (app *TestApp) CancelJob(t *testing.T, jobID string, expectedStatus int) map[string]any {
	t.Helper()
	return app.postJSON(t, "/api/v1/jobs/"+jobID+"/cancel", nil, expectedStatus)
}

// GetJob retrieves the job detail response: row plus progress and step runs.
func (app *TestApp) GetJob(t *testing.T, jobID string) map[string]any {
	t.Helper()
	return app.getJSON(t, "/api/v1/jobs/"+jobID, http.StatusOK)
}

// GetPackage retrieves the published package for a completed job.
func (app *TestApp) GetPackage(t *testing.T, jobID string) map[string]any {
	t.Helper()
	return app.getJSON(t, "/api/v1/jobs/"+jobID+"/package", http.StatusOK)
}

func (app *TestApp) postJSON(t *testing.T, path string, body any, expectedStatus int) map[string]any {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, app.BaseURL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, expectedStatus, resp.StatusCode, "POST %s: unexpected status", path)
	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func (app *TestApp) getJSON(t *testing.T, path string, expectedStatus int) map[string]any {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, app.BaseURL+path, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, expectedStatus, resp.StatusCode, "GET %s: unexpected status", path)
	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

// WaitForJobStatus polls the DB until the job reaches one of the expected
// statuses and returns the one it reached.
func (app *TestApp) WaitForJobStatus(t *testing.T, jobID string, expected ...string) string {
	t.Helper()
	var actual string
	require.Eventually(t, func() bool {
		job, err := app.EntClient.ResearchJob.Get(context.Background(), jobID)
		if err != nil {
			return false
		}
		actual = string(job.Status)
		for _, exp := range expected {
			if actual == exp {
				return true
			}
		}
		return false
	}, 30*time.Second, 100*time.Millisecond,
		"job %s did not reach status %v (last: %s)", jobID, expected, actual)
	return actual
}

// ChildJob returns the single job spawned under parentID, waiting for
// discovery to enqueue it first.
func (app *TestApp) ChildJob(t *testing.T, parentID string) *ent.ResearchJob {
	t.Helper()
	var child *ent.ResearchJob
	require.Eventually(t, func() bool {
		found, err := app.EntClient.ResearchJob.Query().
			Where(researchjob.ParentJobIDEQ(parentID)).
			Only(context.Background())
		if err != nil {
			return false
		}
		child = found
		return true
	}, 10*time.Second, 100*time.Millisecond, "no child job appeared under %s", parentID)
	return child
}

// StepRunList returns the job's step run audit rows in execution order.
func (app *TestApp) StepRunList(t *testing.T, jobID string) []*ent.StepRun {
	t.Helper()
	runs, err := app.StepRuns.List(context.Background(), jobID)
	require.NoError(t, err)
	return runs
}

// RunsForStep filters step runs down to one step name, keeping order.
func RunsForStep(runs []*ent.StepRun, stepName string) []*ent.StepRun {
	var out []*ent.StepRun
	for _, run := range runs {
		if run.StepName == stepName {
			out = append(out, run)
		}
	}
	return out
}

// JobEventNames reads the persisted event rows for a job and returns the
// event names in publication order.
func (app *TestApp) JobEventNames(t *testing.T, jobID string) []string {
	t.Helper()
	rows, err := app.Events.GetJobEvents(context.Background(), jobID)
	require.NoError(t, err)
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		name, _ := row.Payload["event"].(string)
		names = append(names, name)
	}
	return names
}

// JobEventPayload returns the payload of the first persisted event with the
// given name, failing the test when none exists.
func (app *TestApp) JobEventPayload(t *testing.T, jobID, eventName string) map[string]any {
	t.Helper()
	rows, err := app.Events.GetJobEvents(context.Background(), jobID)
	require.NoError(t, err)
	for _, row := range rows {
		if name, _ := row.Payload["event"].(string); name == eventName {
			return row.Payload
		}
	}
	t.Fatalf("job %s has no %s event", jobID, eventName)
	return nil
}

// SubscribeEvents opens a NOTIFY subscription on the app's listener; the
// unsubscribe runs on test cleanup.
func (app *TestApp) SubscribeEvents(buffer int) <-chan events.Notification {
	ch, unsubscribe := app.Listener.Subscribe(buffer)
	app.t.Cleanup(unsubscribe)
	return ch
}

// waitForNotification receives until a notification for jobID with the
// given event name arrives. The NOTIFY channel is database-level, so other
// jobs' traffic is skipped rather than failed on.
func waitForNotification(t *testing.T, ch <-chan events.Notification, jobID, eventName string) events.Notification {
	t.Helper()
	deadline := time.After(30 * time.Second)
	for {
		select {
		case n, ok := <-ch:
			require.True(t, ok, "subscription closed while waiting for %s", eventName)
			if n.JobID == jobID && n.Event == eventName {
				return n
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %s notification for job %s", eventName, jobID)
			return events.Notification{}
		}
	}
}
