package services

import (
	"context"
	"fmt"
	"time"

	"github.com/loreweave/loreweave/ent"
	"github.com/loreweave/loreweave/ent/event"
)

// EventService reads and prunes the status bus backing table. Writes go
// through events.Publisher (raw SQL, transactional with pg_notify); this
// service covers catchup reads and retention.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetEventsSince retrieves events on a channel after the given ID. The
// auto-increment ID is the catchup cursor: a consumer that missed NOTIFY
// traffic replays from the last ID it saw.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID int, limit int) ([]*ent.Event, error) {
	if limit <= 0 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}

	events, err := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	return events, nil
}

// GetJobEvents retrieves all events for one job in publish order.
func (s *EventService) GetJobEvents(ctx context.Context, jobID string) ([]*ent.Event, error) {
	events, err := s.client.Event.Query().
		Where(event.JobIDEQ(jobID)).
		Order(ent.Asc(event.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get job events: %w", err)
	}
	return events, nil
}

// DeleteBefore removes events created before the cutoff. Used by retention
// sweeps; NOTIFY consumers have long received them.
func (s *EventService) DeleteBefore(ctx context.Context, cutoff time.Time) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old events: %w", err)
	}
	return n, nil
}
