package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
)

// Notification is one decoded NOTIFY delivery. Payload holds the raw JSON
// as broadcast, which is a truncation envelope when Truncated is set.
type Notification struct {
	Event     string
	JobID     string
	AgentID   string
	DBEventID int64
	Truncated bool
	Payload   []byte
}

// Listener holds a dedicated PostgreSQL connection LISTENing on Channel and
// fans notifications out to in-process subscribers. Consumers are optional
// observers (dashboards, tests); the pipeline never depends on one.
type Listener struct {
	connString string
	conn       *pgx.Conn
	connMu     sync.Mutex

	subs   map[int]chan Notification
	nextID int
	subsMu sync.Mutex

	// cancelLoop and loopDone coordinate graceful shutdown of the receive
	// loop, which is the sole user of the pgx connection.
	cancelLoop context.CancelFunc
	loopDone   chan struct{}
}

// NewListener creates a listener. The connection string needs no special
// options; LISTEN uses a dedicated connection opened by Start.
func NewListener(connString string) *Listener {
	return &Listener{
		connString: connString,
		subs:       make(map[int]chan Notification),
	}
}

// Start establishes the dedicated connection, issues LISTEN, and begins
// receiving notifications.
func (l *Listener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return fmt.Errorf("connect for LISTEN: %w", err)
	}
	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{Channel}.Sanitize()); err != nil {
		_ = conn.Close(ctx)
		return fmt.Errorf("LISTEN %s: %w", Channel, err)
	}

	l.connMu.Lock()
	l.conn = conn
	l.connMu.Unlock()

	loopCtx, cancel := context.WithCancel(ctx)
	l.cancelLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.receiveLoop(loopCtx)
	}()

	slog.Info("Event listener started", "channel", Channel)
	return nil
}

// Subscribe registers a consumer. Notifications are dropped for a consumer
// whose buffer is full — the bus never blocks on a slow reader. The
// returned cancel func unregisters and closes the channel; it is safe to
// call more than once.
func (l *Listener) Subscribe(buffer int) (<-chan Notification, func()) {
	if buffer <= 0 {
		buffer = 64
	}
	ch := make(chan Notification, buffer)

	l.subsMu.Lock()
	id := l.nextID
	l.nextID++
	l.subs[id] = ch
	l.subsMu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			// Close under the same lock dispatch sends under, so a send
			// can never race the close.
			l.subsMu.Lock()
			delete(l.subs, id)
			close(ch)
			l.subsMu.Unlock()
		})
	}
	return ch, cancel
}

// receiveLoop continuously receives notifications and dispatches them. It
// is the only goroutine touching the pgx connection after Start.
func (l *Listener) receiveLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		l.connMu.Lock()
		conn := l.conn
		l.connMu.Unlock()

		if conn == nil {
			l.reconnect(ctx)
			continue
		}

		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return // shutting down
			}
			slog.Error("NOTIFY receive error", "error", err)
			l.reconnect(ctx)
			continue
		}

		l.dispatch(decodeNotification([]byte(notification.Payload)))
	}
}

func (l *Listener) dispatch(n Notification) {
	l.subsMu.Lock()
	defer l.subsMu.Unlock()
	for _, ch := range l.subs {
		select {
		case ch <- n:
		default:
			slog.Warn("Dropping notification for slow subscriber",
				"event", n.Event, "job_id", n.JobID)
		}
	}
}

// decodeNotification extracts routing fields. Undecodable payloads still
// reach subscribers, with only the raw bytes set.
func decodeNotification(payload []byte) Notification {
	n := Notification{Payload: payload}
	var env struct {
		Event     string `json:"event"`
		JobID     string `json:"job_id"`
		AgentID   string `json:"agent_id"`
		DBEventID int64  `json:"db_event_id"`
		Truncated bool   `json:"truncated"`
	}
	if err := json.Unmarshal(payload, &env); err != nil {
		slog.Warn("Undecodable NOTIFY payload", "error", err)
		return n
	}
	n.Event = env.Event
	n.JobID = env.JobID
	n.AgentID = env.AgentID
	n.DBEventID = env.DBEventID
	n.Truncated = env.Truncated
	return n
}

// reconnect re-establishes the LISTEN connection with exponential backoff
// and re-issues LISTEN. Notifications fired while disconnected are lost to
// subscribers; the events table has them.
func (l *Listener) reconnect(ctx context.Context) {
	l.connMu.Lock()
	defer l.connMu.Unlock()

	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}

	backoff := time.Second
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		conn, err := pgx.Connect(ctx, l.connString)
		if err != nil {
			slog.Error("LISTEN reconnect failed", "error", err, "backoff", backoff)
			backoff = min(backoff*2, 30*time.Second)
			continue
		}
		if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{Channel}.Sanitize()); err != nil {
			slog.Error("Re-LISTEN failed", "error", err)
			_ = conn.Close(ctx)
			backoff = min(backoff*2, 30*time.Second)
			continue
		}

		l.conn = conn
		slog.Info("Event listener reconnected")
		return
	}
}

// Stop signals the receive loop to exit, waits for it to finish, then
// closes the connection. This ordering prevents a race between
// WaitForNotification and conn.Close. Subscriber channels stay open; their
// cancel funcs close them.
func (l *Listener) Stop(ctx context.Context) {
	if l.cancelLoop != nil {
		l.cancelLoop()
	}
	if l.loopDone != nil {
		<-l.loopDone
	}

	l.connMu.Lock()
	defer l.connMu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
}
