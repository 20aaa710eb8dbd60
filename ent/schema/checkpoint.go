package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Checkpoint holds the schema definition for the Checkpoint entity.
// The durable per-job state document. One row per job; every save replaces
// the whole document in a single transaction so readers never observe a
// torn checkpoint. JSON columns stay schemaless here; typed views live in
// pkg/models and readers tolerate unknown fields.
type Checkpoint struct {
	ent.Schema
}

// Fields of the Checkpoint.
func (Checkpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("checkpoint_id").
			Unique().
			Immutable(),
		field.String("job_id").
			Unique().
			Immutable(),

		// Step cursor. Invariant: current_step_index == len(completed_step_names).
		field.Int("current_step_index").
			Default(0),
		field.JSON("completed_step_names", []string{}),

		// Accumulated research state
		field.JSON("accumulated_content", map[string][]string{}).
			Optional().
			Comment("topic -> ordered content blocks, capped per topic"),
		field.JSON("accumulated_sources", map[string]interface{}{}).
			Optional().
			Comment("topic -> [{uri, tier}], deduplicated by URI keeping highest tier"),
		field.JSON("topic_summaries", map[string]string{}).
			Optional().
			Comment("topic -> agent-produced compact summary"),
		field.JSON("partial_extractions", map[string]interface{}{}).
			Optional().
			Comment("category -> most recent structured extraction"),
		field.JSON("step_errors", []map[string]interface{}{}).
			Optional().
			Comment("Append-only: {step, kind, message, at}"),

		field.Int64("tokens_used").
			Default(0),
		field.Enum("status").
			Values("running", "paused", "completed", "failed").
			Default("running"),
		field.Int("schema_version").
			Default(1).
			Comment("Document shape version for forward-compatible readers"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Checkpoint.
func (Checkpoint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", ResearchJob.Type).
			Ref("checkpoint").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Checkpoint.
func (Checkpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "updated_at"),
	}
}
