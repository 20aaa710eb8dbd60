package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LorePackage holds the schema definition for the LorePackage entity.
// The assembled output document for a completed job. Document containment
// queries ride a GIN index created in pkg/database.
type LorePackage struct {
	ent.Schema
}

// Fields of the LorePackage.
func (LorePackage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("package_id").
			Unique().
			Immutable(),
		field.String("job_id").
			Unique().
			Immutable(),
		field.String("zone_name"),
		field.JSON("document", map[string]interface{}{}).
			Comment("Categories, cross_reference, sources_by_tier, confidence_by_category, errors"),
		field.Time("published_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the LorePackage.
func (LorePackage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", ResearchJob.Type).
			Ref("package").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the LorePackage.
func (LorePackage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("zone_name"),
	}
}
