package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity.
// Backing table for the NOTIFY-based status bus. The publisher inserts rows
// with raw SQL (insert + pg_notify must share a transaction); catchup reads
// and retention sweeps go through the generated API. Auto-increment int ID
// doubles as the catchup cursor.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("job_id"),
		field.String("channel"),
		field.JSON("payload", map[string]interface{}{}),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel"),
		index.Fields("job_id"),
		index.Fields("created_at"),
	}
}
