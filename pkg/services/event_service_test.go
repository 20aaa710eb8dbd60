package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loreweave/loreweave/ent"
	"github.com/loreweave/loreweave/pkg/database"
	testdb "github.com/loreweave/loreweave/test/database"
)

func seedEvent(t *testing.T, client *database.Client, jobID, eventName string, age time.Duration) *ent.Event {
	t.Helper()
	row, err := client.Event.Create().
		SetJobID(jobID).
		SetChannel("loreweave_events").
		SetPayload(map[string]interface{}{"event": eventName, "job_id": jobID}).
		SetCreatedAt(time.Now().Add(-age)).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func TestEventService_GetEventsSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	jobID := uuid.New().String()
	first := seedEvent(t, client, jobID, "job_queued", 0)
	second := seedEvent(t, client, jobID, "step_started", 0)
	third := seedEvent(t, client, jobID, "step_completed", 0)

	t.Run("replays everything after the cursor", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, "loreweave_events", first.ID, 0)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, second.ID, events[0].ID)
		assert.Equal(t, third.ID, events[1].ID)
	})

	t.Run("cursor zero replays from the beginning", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, "loreweave_events", 0, 0)
		require.NoError(t, err)
		assert.Len(t, events, 3)
	})

	t.Run("respects the limit", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, "loreweave_events", 0, 2)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, first.ID, events[0].ID)
	})

	t.Run("unknown channel yields nothing", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, "other_channel", 0, 0)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestEventService_GetJobEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	jobID := uuid.New().String()
	otherID := uuid.New().String()
	seedEvent(t, client, jobID, "job_queued", 0)
	seedEvent(t, client, otherID, "job_queued", 0)
	seedEvent(t, client, jobID, "job_completed", 0)

	events, err := service.GetJobEvents(ctx, jobID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "job_queued", events[0].Payload["event"])
	assert.Equal(t, "job_completed", events[1].Payload["event"])
}

func TestEventService_DeleteBefore(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	jobID := uuid.New().String()
	seedEvent(t, client, jobID, "job_queued", 72*time.Hour)
	seedEvent(t, client, jobID, "step_started", 72*time.Hour)
	kept := seedEvent(t, client, jobID, "job_completed", 0)

	n, err := service.DeleteBefore(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	remaining, err := service.GetJobEvents(ctx, jobID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, kept.ID, remaining[0].ID)
}
