package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StepRun holds the schema definition for the StepRun entity.
// Audit record for one attempt of one pipeline step. A step paused on a
// transient error gets a new row with attempt+1 when the job resumes.
type StepRun struct {
	ent.Schema
}

// Fields of the StepRun.
func (StepRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("step_run_id").
			Unique().
			Immutable(),
		field.String("job_id").
			Immutable(),
		field.String("step_name"),
		field.Int("step_index"),
		field.Int("attempt").
			Default(1),
		field.Enum("status").
			Values("running", "completed", "skipped", "failed_transient", "failed_permanent").
			Default("running"),

		// Metrics reported on step_completed
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.Int64("tokens_used").
			Optional().
			Nillable(),
		field.Int("sources_added").
			Optional().
			Nillable(),
		field.Int("content_bytes").
			Optional().
			Nillable(),

		field.String("error_kind").
			Optional().
			Nillable(),
		field.Text("error_message").
			Optional().
			Nillable(),

		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the StepRun.
func (StepRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", ResearchJob.Type).
			Ref("step_runs").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the StepRun.
func (StepRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "step_index", "attempt").
			Unique(),
		index.Fields("job_id", "started_at"),
	}
}
