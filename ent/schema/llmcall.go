package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMCall holds the schema definition for the LLMCall entity.
// One row per provider call, for usage accounting and trace debugging.
type LLMCall struct {
	ent.Schema
}

// Fields of the LLMCall.
func (LLMCall) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("llm_call_id").
			Unique().
			Immutable(),
		field.String("job_id").
			Immutable(),
		field.String("step_name"),
		field.Enum("purpose").
			Values("research", "extraction", "repair", "cross_reference", "discovery", "summarize_map", "summarize_reduce"),
		field.String("provider").
			Comment("e.g. 'anthropic'"),
		field.String("model"),

		field.Int64("prompt_tokens").
			Optional().
			Nillable(),
		field.Int64("completion_tokens").
			Optional().
			Nillable(),
		field.Int64("total_tokens").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional().
			Nillable(),

		field.Enum("status").
			Values("completed", "failed").
			Default("completed"),
		field.Text("error_message").
			Optional().
			Nillable(),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the LLMCall.
func (LLMCall) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", ResearchJob.Type).
			Ref("llm_calls").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the LLMCall.
func (LLMCall) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "created_at"),
	}
}
