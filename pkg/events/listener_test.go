package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListener(t *testing.T) {
	l := NewListener("postgres://localhost:5432/loreweave")

	assert.Equal(t, "postgres://localhost:5432/loreweave", l.connString)
	assert.NotNil(t, l.subs)
	assert.Empty(t, l.subs)
	assert.Nil(t, l.conn)
}

func TestListener_DispatchFansOut(t *testing.T) {
	l := NewListener("postgres://unused")

	ch1, cancel1 := l.Subscribe(4)
	defer cancel1()
	ch2, cancel2 := l.Subscribe(4)
	defer cancel2()

	sent := Notification{Event: EventStepStarted, JobID: "job-1", AgentID: "worker-1", DBEventID: 3}
	l.dispatch(sent)

	for _, ch := range []<-chan Notification{ch1, ch2} {
		got := <-ch
		assert.Equal(t, sent.Event, got.Event)
		assert.Equal(t, sent.JobID, got.JobID)
		assert.Equal(t, sent.DBEventID, got.DBEventID)
	}
}

func TestListener_SlowSubscriberDropsNotifications(t *testing.T) {
	l := NewListener("postgres://unused")

	slow, cancelSlow := l.Subscribe(1)
	defer cancelSlow()
	healthy, cancelHealthy := l.Subscribe(4)
	defer cancelHealthy()

	l.dispatch(Notification{Event: EventStepStarted, JobID: "job-1"})
	l.dispatch(Notification{Event: EventStepCompleted, JobID: "job-1"})

	// slow buffer held only the first; the second was dropped, not blocked on
	assert.Equal(t, EventStepStarted, (<-slow).Event)
	select {
	case extra := <-slow:
		t.Fatalf("expected drop, received %q", extra.Event)
	default:
	}

	// an unrelated subscriber is unaffected by the slow one
	assert.Equal(t, EventStepStarted, (<-healthy).Event)
	assert.Equal(t, EventStepCompleted, (<-healthy).Event)
}

func TestListener_SubscribeCancel(t *testing.T) {
	l := NewListener("postgres://unused")

	ch, cancel := l.Subscribe(1)
	cancel()
	cancel() // second call is a no-op

	_, open := <-ch
	assert.False(t, open, "cancel must close the channel")

	assert.NotPanics(t, func() {
		l.dispatch(Notification{Event: EventJobCompleted, JobID: "job-1"})
	})
}

func TestListener_SubscribeDefaultBuffer(t *testing.T) {
	l := NewListener("postgres://unused")

	ch, cancel := l.Subscribe(0)
	defer cancel()

	assert.Equal(t, 64, cap(ch))
}

func TestListener_StopBeforeStart(t *testing.T) {
	l := NewListener("postgres://unused")

	assert.NotPanics(t, func() {
		l.Stop(t.Context())
	})
}

func TestDecodeNotification(t *testing.T) {
	t.Run("full payload", func(t *testing.T) {
		raw := []byte(`{"event":"step_completed","job_id":"job-9","agent_id":"worker-2","db_event_id":12,"step_name":"npc_research","duration_ms":800}`)

		n := decodeNotification(raw)

		assert.Equal(t, "step_completed", n.Event)
		assert.Equal(t, "job-9", n.JobID)
		assert.Equal(t, "worker-2", n.AgentID)
		assert.Equal(t, int64(12), n.DBEventID)
		assert.False(t, n.Truncated)
		assert.Equal(t, raw, n.Payload)
	})

	t.Run("truncation envelope", func(t *testing.T) {
		raw := []byte(`{"event":"job_failed","job_id":"job-9","agent_id":"worker-2","db_event_id":40,"truncated":true}`)

		n := decodeNotification(raw)

		require.True(t, n.Truncated)
		assert.Equal(t, "job_failed", n.Event)
		assert.Equal(t, int64(40), n.DBEventID)
	})

	t.Run("undecodable payload keeps raw bytes", func(t *testing.T) {
		raw := []byte("not json at all")

		n := decodeNotification(raw)

		assert.Empty(t, n.Event)
		assert.Empty(t, n.JobID)
		assert.Equal(t, raw, n.Payload)
	})
}
