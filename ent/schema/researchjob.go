package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResearchJob holds the schema definition for the ResearchJob entity.
// One row per research job: the dispatch record the queue claims and the
// engine drives. Durable step-by-step state lives on the Checkpoint row.
type ResearchJob struct {
	ent.Schema
}

// Fields of the ResearchJob.
func (ResearchJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("zone_name").
			Comment("Target entity the pipeline researches"),
		field.Int("depth").
			Default(0).
			Comment("Remaining connected-zone traversal depth"),
		field.Int64("budget_tokens").
			Comment("Per-job token budget"),
		field.String("model").
			Optional().
			Comment("provider:model-id override; empty = configured default"),
		field.Enum("status").
			Values("pending", "running", "paused", "completed", "failed", "cancelled").
			Default("pending"),
		field.Bool("cancel_requested").
			Default(false).
			Comment("Engine checks between steps and stops at the next quiescent point"),
		field.String("requested_by").
			Optional().
			Nillable(),
		field.String("parent_job_id").
			Optional().
			Nillable().
			Comment("Set on child jobs created by connected-zone discovery"),

		// Worker coordination
		field.String("claimed_by").
			Optional().
			Nillable().
			Comment("Worker identity holding the claim"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),

		// Retry scheduling for paused (transient-failure) jobs
		field.Time("resume_at").
			Optional().
			Nillable().
			Comment("Earliest time a paused job becomes claimable again"),
		field.Int("resume_count").
			Default(0),

		// Terminal diagnostics
		field.String("error_kind").
			Optional().
			Nillable(),
		field.Text("error_message").
			Optional().
			Nillable(),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("First transition from pending to running"),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the ResearchJob.
func (ResearchJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("checkpoint", Checkpoint.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("step_runs", StepRun.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("llm_calls", LLMCall.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("tool_calls", ToolCall.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("package", LorePackage.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ResearchJob.
func (ResearchJob) Indexes() []ent.Index {
	return []ent.Index{
		// Claim query scans by status and age
		index.Fields("status", "created_at"),
		index.Fields("status", "resume_at"),
		index.Fields("parent_job_id"),
	}
}
