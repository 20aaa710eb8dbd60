package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// notifyPayloadLimit keeps NOTIFY bodies under PostgreSQL's 8000-byte cap,
// with headroom for transport overhead. Larger payloads ship a truncation
// envelope instead; the full row is fetched by db_event_id.
const notifyPayloadLimit = 7900

// stamped is implemented by every payload struct via the embedded Envelope.
type stamped interface {
	stamp(event, jobID, agentID string)
}

// Publisher writes job progress events. Each publish inserts into the
// events table and fires pg_notify on Channel in a single transaction
// (pg_notify is transactional, held until COMMIT). Every method is
// best-effort: failures are logged, never returned.
type Publisher struct {
	db      *sql.DB
	agentID string
	logger  *slog.Logger
}

// NewPublisher creates a publisher stamping agentID into every envelope.
// The db parameter is the *sql.DB from database.Client.DB(); raw SQL is
// required because the insert and the notify must share a transaction.
func NewPublisher(db *sql.DB, agentID string) *Publisher {
	return &Publisher{
		db:      db,
		agentID: agentID,
		logger:  slog.Default().With("component", "event_publisher"),
	}
}

// PublishJobQueued announces an accepted job.
func (p *Publisher) PublishJobQueued(ctx context.Context, jobID string, payload JobQueuedPayload) {
	p.publish(ctx, EventJobQueued, jobID, &payload)
}

// PublishStepStarted announces a step entering execution.
func (p *Publisher) PublishStepStarted(ctx context.Context, jobID string, payload StepStartedPayload) {
	p.publish(ctx, EventStepStarted, jobID, &payload)
}

// PublishStepCompleted announces a successful step.
func (p *Publisher) PublishStepCompleted(ctx context.Context, jobID string, payload StepCompletedPayload) {
	p.publish(ctx, EventStepCompleted, jobID, &payload)
}

// PublishStepFailedTransient announces a recoverable step failure.
func (p *Publisher) PublishStepFailedTransient(ctx context.Context, jobID string, payload StepFailedTransientPayload) {
	p.publish(ctx, EventStepFailedTransient, jobID, &payload)
}

// PublishJobCompleted announces a job reaching the completed state.
func (p *Publisher) PublishJobCompleted(ctx context.Context, jobID string, payload JobCompletedPayload) {
	p.publish(ctx, EventJobCompleted, jobID, &payload)
}

// PublishJobFailed announces a job reaching the failed state.
func (p *Publisher) PublishJobFailed(ctx context.Context, jobID string, payload JobFailedPayload) {
	p.publish(ctx, EventJobFailed, jobID, &payload)
}

// PublishJobCancelled announces a cancellation taking effect.
func (p *Publisher) PublishJobCancelled(ctx context.Context, jobID string, payload JobCancelledPayload) {
	p.publish(ctx, EventJobCancelled, jobID, &payload)
}

// PublishZoneDiscovered announces a connected zone spawning a child job.
func (p *Publisher) PublishZoneDiscovered(ctx context.Context, jobID string, payload ZoneDiscoveredPayload) {
	p.publish(ctx, EventZoneDiscovered, jobID, &payload)
}

// publish stamps the envelope, marshals, and delivers. The single funnel for
// the fire-and-forget contract: every failure ends here, in a log line.
func (p *Publisher) publish(ctx context.Context, event, jobID string, payload stamped) {
	payload.stamp(event, jobID, p.agentID)

	body, err := json.Marshal(payload)
	if err != nil {
		p.logger.ErrorContext(ctx, "Failed to marshal event payload",
			"event", event, "job_id", jobID, "error", err)
		return
	}

	if err := p.persistAndNotify(ctx, event, jobID, body); err != nil {
		p.logger.WarnContext(ctx, "Event publish failed",
			"event", event, "job_id", jobID, "error", err)
	}
}

// persistAndNotify inserts the event row and fires pg_notify in one
// transaction, so the notification commits with the row or not at all.
func (p *Publisher) persistAndNotify(ctx context.Context, event, jobID string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin event transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (job_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		jobID, Channel, payloadJSON, time.Now().UTC(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("persist event: %w", err)
	}

	notifyPayload, err := notifyBody(payloadJSON, eventID)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", Channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify %s: %w", event, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit event transaction: %w", err)
	}
	return nil
}

// notifyBody adds db_event_id to the payload for row lookup, then applies
// the size guard.
func notifyBody(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enriched, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("marshal enriched notify payload: %w", err)
	}
	return truncateIfNeeded(enriched)
}

// truncateIfNeeded passes small payloads through and replaces oversized
// ones with a routing-only truncation envelope.
func truncateIfNeeded(payload []byte) (string, error) {
	if len(payload) <= notifyPayloadLimit {
		return string(payload), nil
	}
	return truncationEnvelope(payload)
}

// truncationEnvelope extracts the routing fields a consumer needs to fetch
// the full event from the database.
func truncationEnvelope(payload []byte) (string, error) {
	var routing struct {
		Event     string `json:"event"`
		JobID     string `json:"job_id"`
		AgentID   string `json:"agent_id"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payload, &routing); err != nil {
		return "", fmt.Errorf("extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"event":     routing.Event,
		"job_id":    routing.JobID,
		"agent_id":  routing.AgentID,
		"truncated": true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	out, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("marshal truncation envelope: %w", err)
	}
	return string(out), nil
}
