// Code generated by ent, DO NOT EDIT.

package lorepackage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loreweave/loreweave/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldContainsFold(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldEQ(FieldJobID, v))
}

// ZoneName applies equality check predicate on the "zone_name" field. It's identical to ZoneNameEQ.
func ZoneName(v string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldEQ(FieldZoneName, v))
}

// PublishedAt applies equality check predicate on the "published_at" field. It's identical to PublishedAtEQ.
func PublishedAt(v time.Time) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldEQ(FieldPublishedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldContainsFold(FieldJobID, v))
}

// ZoneNameEQ applies the EQ predicate on the "zone_name" field.
func ZoneNameEQ(v string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldEQ(FieldZoneName, v))
}

// ZoneNameNEQ applies the NEQ predicate on the "zone_name" field.
func ZoneNameNEQ(v string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldNEQ(FieldZoneName, v))
}

// ZoneNameIn applies the In predicate on the "zone_name" field.
func ZoneNameIn(vs ...string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldIn(FieldZoneName, vs...))
}

// ZoneNameNotIn applies the NotIn predicate on the "zone_name" field.
func ZoneNameNotIn(vs ...string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldNotIn(FieldZoneName, vs...))
}

// ZoneNameGT applies the GT predicate on the "zone_name" field.
func ZoneNameGT(v string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldGT(FieldZoneName, v))
}

// ZoneNameGTE applies the GTE predicate on the "zone_name" field.
func ZoneNameGTE(v string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldGTE(FieldZoneName, v))
}

// ZoneNameLT applies the LT predicate on the "zone_name" field.
func ZoneNameLT(v string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldLT(FieldZoneName, v))
}

// ZoneNameLTE applies the LTE predicate on the "zone_name" field.
func ZoneNameLTE(v string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldLTE(FieldZoneName, v))
}

// ZoneNameContains applies the Contains predicate on the "zone_name" field.
func ZoneNameContains(v string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldContains(FieldZoneName, v))
}

// ZoneNameHasPrefix applies the HasPrefix predicate on the "zone_name" field.
func ZoneNameHasPrefix(v string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldHasPrefix(FieldZoneName, v))
}

// ZoneNameHasSuffix applies the HasSuffix predicate on the "zone_name" field.
func ZoneNameHasSuffix(v string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldHasSuffix(FieldZoneName, v))
}

// ZoneNameEqualFold applies the EqualFold predicate on the "zone_name" field.
func ZoneNameEqualFold(v string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldEqualFold(FieldZoneName, v))
}

// ZoneNameContainsFold applies the ContainsFold predicate on the "zone_name" field.
func ZoneNameContainsFold(v string) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldContainsFold(FieldZoneName, v))
}

// PublishedAtEQ applies the EQ predicate on the "published_at" field.
func PublishedAtEQ(v time.Time) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldEQ(FieldPublishedAt, v))
}

// PublishedAtNEQ applies the NEQ predicate on the "published_at" field.
func PublishedAtNEQ(v time.Time) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldNEQ(FieldPublishedAt, v))
}

// PublishedAtIn applies the In predicate on the "published_at" field.
func PublishedAtIn(vs ...time.Time) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldIn(FieldPublishedAt, vs...))
}

// PublishedAtNotIn applies the NotIn predicate on the "published_at" field.
func PublishedAtNotIn(vs ...time.Time) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldNotIn(FieldPublishedAt, vs...))
}

// PublishedAtGT applies the GT predicate on the "published_at" field.
func PublishedAtGT(v time.Time) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldGT(FieldPublishedAt, v))
}

// PublishedAtGTE applies the GTE predicate on the "published_at" field.
func PublishedAtGTE(v time.Time) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldGTE(FieldPublishedAt, v))
}

// PublishedAtLT applies the LT predicate on the "published_at" field.
func PublishedAtLT(v time.Time) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldLT(FieldPublishedAt, v))
}

// PublishedAtLTE applies the LTE predicate on the "published_at" field.
func PublishedAtLTE(v time.Time) predicate.LorePackage {
	return predicate.LorePackage(sql.FieldLTE(FieldPublishedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.LorePackage {
	return predicate.LorePackage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.ResearchJob) predicate.LorePackage {
	return predicate.LorePackage(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LorePackage) predicate.LorePackage {
	return predicate.LorePackage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LorePackage) predicate.LorePackage {
	return predicate.LorePackage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LorePackage) predicate.LorePackage {
	return predicate.LorePackage(sql.NotPredicates(p))
}
