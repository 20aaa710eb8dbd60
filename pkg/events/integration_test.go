package events

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loreweave/loreweave/ent/event"
	"github.com/loreweave/loreweave/pkg/database"
	testdb "github.com/loreweave/loreweave/test/database"
)

// eventBusEnv wires a publisher and listener against a real PostgreSQL
// database (testcontainers locally, service container in CI). The publisher
// uses a pooled connection, the listener its own dedicated one, matching
// the production topology.
type eventBusEnv struct {
	client    *database.Client
	publisher *Publisher
	listener  *Listener
}

func setupEventBus(t *testing.T) *eventBusEnv {
	t.Helper()

	shared := testdb.NewSharedTestDB(t)
	client := shared.NewClient(t)

	listener := NewListener(shared.ConnString())
	require.NoError(t, listener.Start(context.Background()))
	t.Cleanup(func() { listener.Stop(context.Background()) })

	return &eventBusEnv{
		client:    client,
		publisher: NewPublisher(client.DB(), "worker-itest"),
		listener:  listener,
	}
}

// waitForEvent receives until a notification for jobID with the given event
// name arrives. NOTIFY channels are database-level, so traffic from tests
// running against the same database can interleave; filtering by job ID
// keeps each test isolated.
func waitForEvent(t *testing.T, ch <-chan Notification, jobID, eventName string) Notification {
	t.Helper()
	deadline := time.After(10 * time.Second)
	for {
		select {
		case n, ok := <-ch:
			require.True(t, ok, "subscription closed while waiting for %s", eventName)
			if n.JobID == jobID && n.Event == eventName {
				return n
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %s notification for job %s", eventName, jobID)
			return Notification{}
		}
	}
}

// collectEvents receives until count notifications for jobID have arrived,
// preserving delivery order.
func collectEvents(t *testing.T, ch <-chan Notification, jobID string, count int) []Notification {
	t.Helper()
	var got []Notification
	deadline := time.After(10 * time.Second)
	for len(got) < count {
		select {
		case n, ok := <-ch:
			require.True(t, ok, "subscription closed after %d of %d notifications", len(got), count)
			if n.JobID == jobID {
				got = append(got, n)
			}
		case <-deadline:
			t.Fatalf("timed out after %d of %d notifications for job %s", len(got), count, jobID)
		}
	}
	return got
}

func TestIntegration_PublishDeliversAndPersists(t *testing.T) {
	env := setupEventBus(t)
	ctx := context.Background()

	ch, cancel := env.listener.Subscribe(16)
	defer cancel()

	jobID := uuid.New().String()
	env.publisher.PublishStepStarted(ctx, jobID, StepStartedPayload{
		StepName:   "zone_overview_research",
		StepIndex:  0,
		TotalSteps: 9,
	})

	n := waitForEvent(t, ch, jobID, EventStepStarted)
	assert.Equal(t, "worker-itest", n.AgentID)
	assert.False(t, n.Truncated)
	require.Greater(t, n.DBEventID, int64(0))

	var payload StepStartedPayload
	require.NoError(t, json.Unmarshal(n.Payload, &payload))
	assert.Equal(t, "zone_overview_research", payload.StepName)
	assert.Equal(t, 9, payload.TotalSteps)
	assert.NotEmpty(t, payload.Timestamp)

	// The notification's db_event_id resolves to the persisted row.
	row, err := env.client.Event.Get(ctx, int(n.DBEventID))
	require.NoError(t, err)
	assert.Equal(t, jobID, row.JobID)
	assert.Equal(t, Channel, row.Channel)
	assert.Equal(t, EventStepStarted, row.Payload["event"])
	assert.Equal(t, "zone_overview_research", row.Payload["step_name"])
}

func TestIntegration_DeliveryOrderMatchesPublishOrder(t *testing.T) {
	env := setupEventBus(t)
	ctx := context.Background()

	ch, cancel := env.listener.Subscribe(16)
	defer cancel()

	jobID := uuid.New().String()
	env.publisher.PublishStepStarted(ctx, jobID, StepStartedPayload{StepName: "npc_research", StepIndex: 1, TotalSteps: 9})
	env.publisher.PublishStepCompleted(ctx, jobID, StepCompletedPayload{StepName: "npc_research", StepIndex: 1, DurationMS: 750, TokensUsed: 4200})
	env.publisher.PublishJobCompleted(ctx, jobID, JobCompletedPayload{ZoneName: "Emberfall Reach", TokensUsed: 4200})

	got := collectEvents(t, ch, jobID, 3)
	require.Len(t, got, 3)
	assert.Equal(t, EventStepStarted, got[0].Event)
	assert.Equal(t, EventStepCompleted, got[1].Event)
	assert.Equal(t, EventJobCompleted, got[2].Event)

	// db_event_id is monotonic, so it doubles as a catchup cursor.
	assert.Less(t, got[0].DBEventID, got[1].DBEventID)
	assert.Less(t, got[1].DBEventID, got[2].DBEventID)
}

func TestIntegration_OversizedPayloadTruncatedOnWire(t *testing.T) {
	env := setupEventBus(t)
	ctx := context.Background()

	ch, cancel := env.listener.Subscribe(16)
	defer cancel()

	jobID := uuid.New().String()
	longMessage := strings.Repeat("x", 9000)
	env.publisher.PublishJobFailed(ctx, jobID, JobFailedPayload{
		ErrorKind: "permanent_internal",
		Message:   longMessage,
	})

	n := waitForEvent(t, ch, jobID, EventJobFailed)
	assert.True(t, n.Truncated)
	assert.LessOrEqual(t, len(n.Payload), notifyPayloadLimit)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(n.Payload, &envelope))
	assert.NotContains(t, envelope, "message")

	// The database row keeps the full payload.
	row, err := env.client.Event.Get(ctx, int(n.DBEventID))
	require.NoError(t, err)
	stored, ok := row.Payload["message"].(string)
	require.True(t, ok)
	assert.Equal(t, longMessage, stored)
	assert.Equal(t, "permanent_internal", row.Payload["error_kind"])
}

func TestIntegration_FanOutToMultipleSubscribers(t *testing.T) {
	env := setupEventBus(t)
	ctx := context.Background()

	ch1, cancel1 := env.listener.Subscribe(4)
	defer cancel1()
	ch2, cancel2 := env.listener.Subscribe(4)
	defer cancel2()

	jobID := uuid.New().String()
	env.publisher.PublishJobQueued(ctx, jobID, JobQueuedPayload{ZoneName: "Hollowmere", Depth: 1})

	for _, ch := range []<-chan Notification{ch1, ch2} {
		n := waitForEvent(t, ch, jobID, EventJobQueued)
		assert.Equal(t, jobID, n.JobID)
	}
}

func TestIntegration_PublishSurvivesListenerStop(t *testing.T) {
	env := setupEventBus(t)
	ctx := context.Background()

	env.listener.Stop(ctx)
	env.listener.Stop(ctx) // idempotent

	// The publisher is independent of any listener: the row still lands.
	jobID := uuid.New().String()
	env.publisher.PublishJobCancelled(ctx, jobID, JobCancelledPayload{ZoneName: "Emberfall Reach"})

	count, err := env.client.Event.Query().Where(event.JobID(jobID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
