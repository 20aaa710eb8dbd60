// Code generated by ent, DO NOT EDIT.

package checkpoint

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loreweave/loreweave/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContainsFold(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldJobID, v))
}

// CurrentStepIndex applies equality check predicate on the "current_step_index" field. It's identical to CurrentStepIndexEQ.
func CurrentStepIndex(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldCurrentStepIndex, v))
}

// TokensUsed applies equality check predicate on the "tokens_used" field. It's identical to TokensUsedEQ.
func TokensUsed(v int64) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldTokensUsed, v))
}

// SchemaVersion applies equality check predicate on the "schema_version" field. It's identical to SchemaVersionEQ.
func SchemaVersion(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldSchemaVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldUpdatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContainsFold(FieldJobID, v))
}

// CurrentStepIndexEQ applies the EQ predicate on the "current_step_index" field.
func CurrentStepIndexEQ(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldCurrentStepIndex, v))
}

// CurrentStepIndexNEQ applies the NEQ predicate on the "current_step_index" field.
func CurrentStepIndexNEQ(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldCurrentStepIndex, v))
}

// CurrentStepIndexIn applies the In predicate on the "current_step_index" field.
func CurrentStepIndexIn(vs ...int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldCurrentStepIndex, vs...))
}

// CurrentStepIndexNotIn applies the NotIn predicate on the "current_step_index" field.
func CurrentStepIndexNotIn(vs ...int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldCurrentStepIndex, vs...))
}

// CurrentStepIndexGT applies the GT predicate on the "current_step_index" field.
func CurrentStepIndexGT(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldCurrentStepIndex, v))
}

// CurrentStepIndexGTE applies the GTE predicate on the "current_step_index" field.
func CurrentStepIndexGTE(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldCurrentStepIndex, v))
}

// CurrentStepIndexLT applies the LT predicate on the "current_step_index" field.
func CurrentStepIndexLT(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldCurrentStepIndex, v))
}

// CurrentStepIndexLTE applies the LTE predicate on the "current_step_index" field.
func CurrentStepIndexLTE(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldCurrentStepIndex, v))
}

// AccumulatedContentIsNil applies the IsNil predicate on the "accumulated_content" field.
func AccumulatedContentIsNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIsNull(FieldAccumulatedContent))
}

// AccumulatedContentNotNil applies the NotNil predicate on the "accumulated_content" field.
func AccumulatedContentNotNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotNull(FieldAccumulatedContent))
}

// AccumulatedSourcesIsNil applies the IsNil predicate on the "accumulated_sources" field.
func AccumulatedSourcesIsNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIsNull(FieldAccumulatedSources))
}

// AccumulatedSourcesNotNil applies the NotNil predicate on the "accumulated_sources" field.
func AccumulatedSourcesNotNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotNull(FieldAccumulatedSources))
}

// TopicSummariesIsNil applies the IsNil predicate on the "topic_summaries" field.
func TopicSummariesIsNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIsNull(FieldTopicSummaries))
}

// TopicSummariesNotNil applies the NotNil predicate on the "topic_summaries" field.
func TopicSummariesNotNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotNull(FieldTopicSummaries))
}

// PartialExtractionsIsNil applies the IsNil predicate on the "partial_extractions" field.
func PartialExtractionsIsNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIsNull(FieldPartialExtractions))
}

// PartialExtractionsNotNil applies the NotNil predicate on the "partial_extractions" field.
func PartialExtractionsNotNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotNull(FieldPartialExtractions))
}

// StepErrorsIsNil applies the IsNil predicate on the "step_errors" field.
func StepErrorsIsNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIsNull(FieldStepErrors))
}

// StepErrorsNotNil applies the NotNil predicate on the "step_errors" field.
func StepErrorsNotNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotNull(FieldStepErrors))
}

// TokensUsedEQ applies the EQ predicate on the "tokens_used" field.
func TokensUsedEQ(v int64) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldTokensUsed, v))
}

// TokensUsedNEQ applies the NEQ predicate on the "tokens_used" field.
func TokensUsedNEQ(v int64) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldTokensUsed, v))
}

// TokensUsedIn applies the In predicate on the "tokens_used" field.
func TokensUsedIn(vs ...int64) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldTokensUsed, vs...))
}

// TokensUsedNotIn applies the NotIn predicate on the "tokens_used" field.
func TokensUsedNotIn(vs ...int64) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldTokensUsed, vs...))
}

// TokensUsedGT applies the GT predicate on the "tokens_used" field.
func TokensUsedGT(v int64) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldTokensUsed, v))
}

// TokensUsedGTE applies the GTE predicate on the "tokens_used" field.
func TokensUsedGTE(v int64) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldTokensUsed, v))
}

// TokensUsedLT applies the LT predicate on the "tokens_used" field.
func TokensUsedLT(v int64) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldTokensUsed, v))
}

// TokensUsedLTE applies the LTE predicate on the "tokens_used" field.
func TokensUsedLTE(v int64) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldTokensUsed, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldStatus, vs...))
}

// SchemaVersionEQ applies the EQ predicate on the "schema_version" field.
func SchemaVersionEQ(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldSchemaVersion, v))
}

// SchemaVersionNEQ applies the NEQ predicate on the "schema_version" field.
func SchemaVersionNEQ(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldSchemaVersion, v))
}

// SchemaVersionIn applies the In predicate on the "schema_version" field.
func SchemaVersionIn(vs ...int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldSchemaVersion, vs...))
}

// SchemaVersionNotIn applies the NotIn predicate on the "schema_version" field.
func SchemaVersionNotIn(vs ...int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldSchemaVersion, vs...))
}

// SchemaVersionGT applies the GT predicate on the "schema_version" field.
func SchemaVersionGT(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldSchemaVersion, v))
}

// SchemaVersionGTE applies the GTE predicate on the "schema_version" field.
func SchemaVersionGTE(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldSchemaVersion, v))
}

// SchemaVersionLT applies the LT predicate on the "schema_version" field.
func SchemaVersionLT(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldSchemaVersion, v))
}

// SchemaVersionLTE applies the LTE predicate on the "schema_version" field.
func SchemaVersionLTE(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldSchemaVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.Checkpoint {
	return predicate.Checkpoint(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.ResearchJob) predicate.Checkpoint {
	return predicate.Checkpoint(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Checkpoint) predicate.Checkpoint {
	return predicate.Checkpoint(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Checkpoint) predicate.Checkpoint {
	return predicate.Checkpoint(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Checkpoint) predicate.Checkpoint {
	return predicate.Checkpoint(sql.NotPredicates(p))
}
