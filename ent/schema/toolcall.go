package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ToolCall holds the schema definition for the ToolCall entity.
// One row per remote tool invocation made by the agent. Result text is
// truncated to a token budget before storage; full results never persist.
type ToolCall struct {
	ent.Schema
}

// Fields of the ToolCall.
func (ToolCall) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("tool_call_id").
			Unique().
			Immutable(),
		field.String("job_id").
			Immutable(),
		field.String("step_name"),
		field.String("tool_set").
			Comment("Configured tool-set name, e.g. 'search'"),
		field.String("tool_name").
			Comment("Unprefixed tool name on the server"),

		field.JSON("arguments", map[string]interface{}{}).
			Optional(),
		field.Text("result_text").
			Optional().
			Nillable().
			Comment("Token-truncated at a line boundary for storage"),
		field.Bool("is_error").
			Default(false),
		field.Int("duration_ms").
			Optional().
			Nillable(),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ToolCall.
func (ToolCall) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", ResearchJob.Type).
			Ref("tool_calls").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ToolCall.
func (ToolCall) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "created_at"),
	}
}
