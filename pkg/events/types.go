// Package events is the status bus: typed job progress events persisted to
// the events table and broadcast via PostgreSQL NOTIFY in one transaction,
// so a notification is never seen for a row that failed to commit.
//
// All events share one channel. Consumers route by the envelope fields
// (event, job_id, agent_id) carried in every payload. NOTIFY payloads over
// the PostgreSQL size limit are replaced by a truncation envelope holding
// only routing fields plus db_event_id; the full payload is always in the
// events table, keyed by that id.
//
// Publishing is fire-and-forget: the pipeline's correctness never depends
// on delivery, so publish failures are logged and suppressed.
package events

// Event types carried in the envelope's "event" field.
const (
	// Job lifecycle.
	EventJobQueued    = "job_queued"
	EventJobCompleted = "job_completed"
	EventJobFailed    = "job_failed"
	EventJobCancelled = "job_cancelled"

	// Step lifecycle, one pair (or failure) per pipeline step.
	EventStepStarted         = "step_started"
	EventStepCompleted       = "step_completed"
	EventStepFailedTransient = "step_failed_transient"

	// Zone graph expansion: a connected zone spawned a child job.
	EventZoneDiscovered = "zone_discovered"
)

// Channel is the NOTIFY channel every event broadcasts on. Channels are
// database-level, so one deployment per database.
const Channel = "loreweave_events"
