// Code generated by ent, DO NOT EDIT.

package toolcall

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loreweave/loreweave/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContainsFold(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldJobID, v))
}

// StepName applies equality check predicate on the "step_name" field. It's identical to StepNameEQ.
func StepName(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldStepName, v))
}

// ToolSet applies equality check predicate on the "tool_set" field. It's identical to ToolSetEQ.
func ToolSet(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldToolSet, v))
}

// ToolName applies equality check predicate on the "tool_name" field. It's identical to ToolNameEQ.
func ToolName(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldToolName, v))
}

// ResultText applies equality check predicate on the "result_text" field. It's identical to ResultTextEQ.
func ResultText(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldResultText, v))
}

// IsError applies equality check predicate on the "is_error" field. It's identical to IsErrorEQ.
func IsError(v bool) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldIsError, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldDurationMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldCreatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContainsFold(FieldJobID, v))
}

// StepNameEQ applies the EQ predicate on the "step_name" field.
func StepNameEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldStepName, v))
}

// StepNameNEQ applies the NEQ predicate on the "step_name" field.
func StepNameNEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldStepName, v))
}

// StepNameIn applies the In predicate on the "step_name" field.
func StepNameIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldStepName, vs...))
}

// StepNameNotIn applies the NotIn predicate on the "step_name" field.
func StepNameNotIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldStepName, vs...))
}

// StepNameGT applies the GT predicate on the "step_name" field.
func StepNameGT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldStepName, v))
}

// StepNameGTE applies the GTE predicate on the "step_name" field.
func StepNameGTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldStepName, v))
}

// StepNameLT applies the LT predicate on the "step_name" field.
func StepNameLT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldStepName, v))
}

// StepNameLTE applies the LTE predicate on the "step_name" field.
func StepNameLTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldStepName, v))
}

// StepNameContains applies the Contains predicate on the "step_name" field.
func StepNameContains(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContains(FieldStepName, v))
}

// StepNameHasPrefix applies the HasPrefix predicate on the "step_name" field.
func StepNameHasPrefix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasPrefix(FieldStepName, v))
}

// StepNameHasSuffix applies the HasSuffix predicate on the "step_name" field.
func StepNameHasSuffix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasSuffix(FieldStepName, v))
}

// StepNameEqualFold applies the EqualFold predicate on the "step_name" field.
func StepNameEqualFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEqualFold(FieldStepName, v))
}

// StepNameContainsFold applies the ContainsFold predicate on the "step_name" field.
func StepNameContainsFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContainsFold(FieldStepName, v))
}

// ToolSetEQ applies the EQ predicate on the "tool_set" field.
func ToolSetEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldToolSet, v))
}

// ToolSetNEQ applies the NEQ predicate on the "tool_set" field.
func ToolSetNEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldToolSet, v))
}

// ToolSetIn applies the In predicate on the "tool_set" field.
func ToolSetIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldToolSet, vs...))
}

// ToolSetNotIn applies the NotIn predicate on the "tool_set" field.
func ToolSetNotIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldToolSet, vs...))
}

// ToolSetGT applies the GT predicate on the "tool_set" field.
func ToolSetGT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldToolSet, v))
}

// ToolSetGTE applies the GTE predicate on the "tool_set" field.
func ToolSetGTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldToolSet, v))
}

// ToolSetLT applies the LT predicate on the "tool_set" field.
func ToolSetLT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldToolSet, v))
}

// ToolSetLTE applies the LTE predicate on the "tool_set" field.
func ToolSetLTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldToolSet, v))
}

// ToolSetContains applies the Contains predicate on the "tool_set" field.
func ToolSetContains(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContains(FieldToolSet, v))
}

// ToolSetHasPrefix applies the HasPrefix predicate on the "tool_set" field.
func ToolSetHasPrefix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasPrefix(FieldToolSet, v))
}

// ToolSetHasSuffix applies the HasSuffix predicate on the "tool_set" field.
func ToolSetHasSuffix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasSuffix(FieldToolSet, v))
}

// ToolSetEqualFold applies the EqualFold predicate on the "tool_set" field.
func ToolSetEqualFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEqualFold(FieldToolSet, v))
}

// ToolSetContainsFold applies the ContainsFold predicate on the "tool_set" field.
func ToolSetContainsFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContainsFold(FieldToolSet, v))
}

// ToolNameEQ applies the EQ predicate on the "tool_name" field.
func ToolNameEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldToolName, v))
}

// ToolNameNEQ applies the NEQ predicate on the "tool_name" field.
func ToolNameNEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldToolName, v))
}

// ToolNameIn applies the In predicate on the "tool_name" field.
func ToolNameIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldToolName, vs...))
}

// ToolNameNotIn applies the NotIn predicate on the "tool_name" field.
func ToolNameNotIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldToolName, vs...))
}

// ToolNameGT applies the GT predicate on the "tool_name" field.
func ToolNameGT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldToolName, v))
}

// ToolNameGTE applies the GTE predicate on the "tool_name" field.
func ToolNameGTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldToolName, v))
}

// ToolNameLT applies the LT predicate on the "tool_name" field.
func ToolNameLT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldToolName, v))
}

// ToolNameLTE applies the LTE predicate on the "tool_name" field.
func ToolNameLTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldToolName, v))
}

// ToolNameContains applies the Contains predicate on the "tool_name" field.
func ToolNameContains(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContains(FieldToolName, v))
}

// ToolNameHasPrefix applies the HasPrefix predicate on the "tool_name" field.
func ToolNameHasPrefix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasPrefix(FieldToolName, v))
}

// ToolNameHasSuffix applies the HasSuffix predicate on the "tool_name" field.
func ToolNameHasSuffix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasSuffix(FieldToolName, v))
}

// ToolNameEqualFold applies the EqualFold predicate on the "tool_name" field.
func ToolNameEqualFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEqualFold(FieldToolName, v))
}

// ToolNameContainsFold applies the ContainsFold predicate on the "tool_name" field.
func ToolNameContainsFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContainsFold(FieldToolName, v))
}

// ArgumentsIsNil applies the IsNil predicate on the "arguments" field.
func ArgumentsIsNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIsNull(FieldArguments))
}

// ArgumentsNotNil applies the NotNil predicate on the "arguments" field.
func ArgumentsNotNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotNull(FieldArguments))
}

// ResultTextEQ applies the EQ predicate on the "result_text" field.
func ResultTextEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldResultText, v))
}

// ResultTextNEQ applies the NEQ predicate on the "result_text" field.
func ResultTextNEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldResultText, v))
}

// ResultTextIn applies the In predicate on the "result_text" field.
func ResultTextIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldResultText, vs...))
}

// ResultTextNotIn applies the NotIn predicate on the "result_text" field.
func ResultTextNotIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldResultText, vs...))
}

// ResultTextGT applies the GT predicate on the "result_text" field.
func ResultTextGT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldResultText, v))
}

// ResultTextGTE applies the GTE predicate on the "result_text" field.
func ResultTextGTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldResultText, v))
}

// ResultTextLT applies the LT predicate on the "result_text" field.
func ResultTextLT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldResultText, v))
}

// ResultTextLTE applies the LTE predicate on the "result_text" field.
func ResultTextLTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldResultText, v))
}

// ResultTextContains applies the Contains predicate on the "result_text" field.
func ResultTextContains(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContains(FieldResultText, v))
}

// ResultTextHasPrefix applies the HasPrefix predicate on the "result_text" field.
func ResultTextHasPrefix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasPrefix(FieldResultText, v))
}

// ResultTextHasSuffix applies the HasSuffix predicate on the "result_text" field.
func ResultTextHasSuffix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasSuffix(FieldResultText, v))
}

// ResultTextIsNil applies the IsNil predicate on the "result_text" field.
func ResultTextIsNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIsNull(FieldResultText))
}

// ResultTextNotNil applies the NotNil predicate on the "result_text" field.
func ResultTextNotNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotNull(FieldResultText))
}

// ResultTextEqualFold applies the EqualFold predicate on the "result_text" field.
func ResultTextEqualFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEqualFold(FieldResultText, v))
}

// ResultTextContainsFold applies the ContainsFold predicate on the "result_text" field.
func ResultTextContainsFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContainsFold(FieldResultText, v))
}

// IsErrorEQ applies the EQ predicate on the "is_error" field.
func IsErrorEQ(v bool) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldIsError, v))
}

// IsErrorNEQ applies the NEQ predicate on the "is_error" field.
func IsErrorNEQ(v bool) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldIsError, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotNull(FieldDurationMs))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldCreatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.ToolCall {
	return predicate.ToolCall(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.ResearchJob) predicate.ToolCall {
	return predicate.ToolCall(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ToolCall) predicate.ToolCall {
	return predicate.ToolCall(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ToolCall) predicate.ToolCall {
	return predicate.ToolCall(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ToolCall) predicate.ToolCall {
	return predicate.ToolCall(sql.NotPredicates(p))
}
