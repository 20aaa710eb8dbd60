// Code generated by ent, DO NOT EDIT.

package steprun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loreweave/loreweave/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.StepRun {
	return predicate.StepRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.StepRun {
	return predicate.StepRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.StepRun {
	return predicate.StepRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.StepRun {
	return predicate.StepRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.StepRun {
	return predicate.StepRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.StepRun {
	return predicate.StepRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.StepRun {
	return predicate.StepRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.StepRun {
	return predicate.StepRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.StepRun {
	return predicate.StepRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.StepRun {
	return predicate.StepRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.StepRun {
	return predicate.StepRun(sql.FieldContainsFold(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldEQ(FieldJobID, v))
}

// StepName applies equality check predicate on the "step_name" field. It's identical to StepNameEQ.
func StepName(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldEQ(FieldStepName, v))
}

// StepIndex applies equality check predicate on the "step_index" field. It's identical to StepIndexEQ.
func StepIndex(v int) predicate.StepRun {
	return predicate.StepRun(sql.FieldEQ(FieldStepIndex, v))
}

// Attempt applies equality check predicate on the "attempt" field. It's identical to AttemptEQ.
func Attempt(v int) predicate.StepRun {
	return predicate.StepRun(sql.FieldEQ(FieldAttempt, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int) predicate.StepRun {
	return predicate.StepRun(sql.FieldEQ(FieldDurationMs, v))
}

// TokensUsed applies equality check predicate on the "tokens_used" field. It's identical to TokensUsedEQ.
func TokensUsed(v int64) predicate.StepRun {
	return predicate.StepRun(sql.FieldEQ(FieldTokensUsed, v))
}

// SourcesAdded applies equality check predicate on the "sources_added" field. It's identical to SourcesAddedEQ.
func SourcesAdded(v int) predicate.StepRun {
	return predicate.StepRun(sql.FieldEQ(FieldSourcesAdded, v))
}

// ContentBytes applies equality check predicate on the "content_bytes" field. It's identical to ContentBytesEQ.
func ContentBytes(v int) predicate.StepRun {
	return predicate.StepRun(sql.FieldEQ(FieldContentBytes, v))
}

// ErrorKind applies equality check predicate on the "error_kind" field. It's identical to ErrorKindEQ.
func ErrorKind(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldEQ(FieldErrorMessage, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.StepRun {
	return predicate.StepRun(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.StepRun {
	return predicate.StepRun(sql.FieldEQ(FieldCompletedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.StepRun {
	return predicate.StepRun(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.StepRun {
	return predicate.StepRun(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldContainsFold(FieldJobID, v))
}

// StepNameEQ applies the EQ predicate on the "step_name" field.
func StepNameEQ(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldEQ(FieldStepName, v))
}

// StepNameNEQ applies the NEQ predicate on the "step_name" field.
func StepNameNEQ(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldNEQ(FieldStepName, v))
}

// StepNameIn applies the In predicate on the "step_name" field.
func StepNameIn(vs ...string) predicate.StepRun {
	return predicate.StepRun(sql.FieldIn(FieldStepName, vs...))
}

// StepNameNotIn applies the NotIn predicate on the "step_name" field.
func StepNameNotIn(vs ...string) predicate.StepRun {
	return predicate.StepRun(sql.FieldNotIn(FieldStepName, vs...))
}

// StepNameGT applies the GT predicate on the "step_name" field.
func StepNameGT(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldGT(FieldStepName, v))
}

// StepNameGTE applies the GTE predicate on the "step_name" field.
func StepNameGTE(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldGTE(FieldStepName, v))
}

// StepNameLT applies the LT predicate on the "step_name" field.
func StepNameLT(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldLT(FieldStepName, v))
}

// StepNameLTE applies the LTE predicate on the "step_name" field.
func StepNameLTE(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldLTE(FieldStepName, v))
}

// StepNameContains applies the Contains predicate on the "step_name" field.
func StepNameContains(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldContains(FieldStepName, v))
}

// StepNameHasPrefix applies the HasPrefix predicate on the "step_name" field.
func StepNameHasPrefix(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldHasPrefix(FieldStepName, v))
}

// StepNameHasSuffix applies the HasSuffix predicate on the "step_name" field.
func StepNameHasSuffix(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldHasSuffix(FieldStepName, v))
}

// StepNameEqualFold applies the EqualFold predicate on the "step_name" field.
func StepNameEqualFold(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldEqualFold(FieldStepName, v))
}

// StepNameContainsFold applies the ContainsFold predicate on the "step_name" field.
func StepNameContainsFold(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldContainsFold(FieldStepName, v))
}

// StepIndexEQ applies the EQ predicate on the "step_index" field.
func StepIndexEQ(v int) predicate.StepRun {
	return predicate.StepRun(sql.FieldEQ(FieldStepIndex, v))
}

// StepIndexNEQ applies the NEQ predicate on the "step_index" field.
func StepIndexNEQ(v int) predicate.StepRun {
	return predicate.StepRun(sql.FieldNEQ(FieldStepIndex, v))
}

// StepIndexIn applies the In predicate on the "step_index" field.
func StepIndexIn(vs ...int) predicate.StepRun {
	return predicate.StepRun(sql.FieldIn(FieldStepIndex, vs...))
}

// StepIndexNotIn applies the NotIn predicate on the "step_index" field.
func StepIndexNotIn(vs ...int) predicate.StepRun {
	return predicate.StepRun(sql.FieldNotIn(FieldStepIndex, vs...))
}

// StepIndexGT applies the GT predicate on the "step_index" field.
func StepIndexGT(v int) predicate.StepRun {
	return predicate.StepRun(sql.FieldGT(FieldStepIndex, v))
}

// StepIndexGTE applies the GTE predicate on the "step_index" field.
func StepIndexGTE(v int) predicate.StepRun {
	return predicate.StepRun(sql.FieldGTE(FieldStepIndex, v))
}

// StepIndexLT applies the LT predicate on the "step_index" field.
func StepIndexLT(v int) predicate.StepRun {
	return predicate.StepRun(sql.FieldLT(FieldStepIndex, v))
}

// StepIndexLTE applies the LTE predicate on the "step_index" field.
func StepIndexLTE(v int) predicate.StepRun {
	return predicate.StepRun(sql.FieldLTE(FieldStepIndex, v))
}

// AttemptEQ applies the EQ predicate on the "attempt" field.
func AttemptEQ(v int) predicate.StepRun {
	return predicate.StepRun(sql.FieldEQ(FieldAttempt, v))
}

// AttemptNEQ applies the NEQ predicate on the "attempt" field.
func AttemptNEQ(v int) predicate.StepRun {
	return predicate.StepRun(sql.FieldNEQ(FieldAttempt, v))
}

// AttemptIn applies the In predicate on the "attempt" field.
func AttemptIn(vs ...int) predicate.StepRun {
	return predicate.StepRun(sql.FieldIn(FieldAttempt, vs...))
}

// AttemptNotIn applies the NotIn predicate on the "attempt" field.
func AttemptNotIn(vs ...int) predicate.StepRun {
	return predicate.StepRun(sql.FieldNotIn(FieldAttempt, vs...))
}

// AttemptGT applies the GT predicate on the "attempt" field.
func AttemptGT(v int) predicate.StepRun {
	return predicate.StepRun(sql.FieldGT(FieldAttempt, v))
}

// AttemptGTE applies the GTE predicate on the "attempt" field.
func AttemptGTE(v int) predicate.StepRun {
	return predicate.StepRun(sql.FieldGTE(FieldAttempt, v))
}

// AttemptLT applies the LT predicate on the "attempt" field.
func AttemptLT(v int) predicate.StepRun {
	return predicate.StepRun(sql.FieldLT(FieldAttempt, v))
}

// AttemptLTE applies the LTE predicate on the "attempt" field.
func AttemptLTE(v int) predicate.StepRun {
	return predicate.StepRun(sql.FieldLTE(FieldAttempt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.StepRun {
	return predicate.StepRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.StepRun {
	return predicate.StepRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.StepRun {
	return predicate.StepRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.StepRun {
	return predicate.StepRun(sql.FieldNotIn(FieldStatus, vs...))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int) predicate.StepRun {
	return predicate.StepRun(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int) predicate.StepRun {
	return predicate.StepRun(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int) predicate.StepRun {
	return predicate.StepRun(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int) predicate.StepRun {
	return predicate.StepRun(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int) predicate.StepRun {
	return predicate.StepRun(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int) predicate.StepRun {
	return predicate.StepRun(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int) predicate.StepRun {
	return predicate.StepRun(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int) predicate.StepRun {
	return predicate.StepRun(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.StepRun {
	return predicate.StepRun(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.StepRun {
	return predicate.StepRun(sql.FieldNotNull(FieldDurationMs))
}

// TokensUsedEQ applies the EQ predicate on the "tokens_used" field.
func TokensUsedEQ(v int64) predicate.StepRun {
	return predicate.StepRun(sql.FieldEQ(FieldTokensUsed, v))
}

// TokensUsedNEQ applies the NEQ predicate on the "tokens_used" field.
func TokensUsedNEQ(v int64) predicate.StepRun {
	return predicate.StepRun(sql.FieldNEQ(FieldTokensUsed, v))
}

// TokensUsedIn applies the In predicate on the "tokens_used" field.
func TokensUsedIn(vs ...int64) predicate.StepRun {
	return predicate.StepRun(sql.FieldIn(FieldTokensUsed, vs...))
}

// TokensUsedNotIn applies the NotIn predicate on the "tokens_used" field.
func TokensUsedNotIn(vs ...int64) predicate.StepRun {
	return predicate.StepRun(sql.FieldNotIn(FieldTokensUsed, vs...))
}

// TokensUsedGT applies the GT predicate on the "tokens_used" field.
func TokensUsedGT(v int64) predicate.StepRun {
	return predicate.StepRun(sql.FieldGT(FieldTokensUsed, v))
}

// TokensUsedGTE applies the GTE predicate on the "tokens_used" field.
func TokensUsedGTE(v int64) predicate.StepRun {
	return predicate.StepRun(sql.FieldGTE(FieldTokensUsed, v))
}

// TokensUsedLT applies the LT predicate on the "tokens_used" field.
func TokensUsedLT(v int64) predicate.StepRun {
	return predicate.StepRun(sql.FieldLT(FieldTokensUsed, v))
}

// TokensUsedLTE applies the LTE predicate on the "tokens_used" field.
func TokensUsedLTE(v int64) predicate.StepRun {
	return predicate.StepRun(sql.FieldLTE(FieldTokensUsed, v))
}

// TokensUsedIsNil applies the IsNil predicate on the "tokens_used" field.
func TokensUsedIsNil() predicate.StepRun {
	return predicate.StepRun(sql.FieldIsNull(FieldTokensUsed))
}

// TokensUsedNotNil applies the NotNil predicate on the "tokens_used" field.
func TokensUsedNotNil() predicate.StepRun {
	return predicate.StepRun(sql.FieldNotNull(FieldTokensUsed))
}

// SourcesAddedEQ applies the EQ predicate on the "sources_added" field.
func SourcesAddedEQ(v int) predicate.StepRun {
	return predicate.StepRun(sql.FieldEQ(FieldSourcesAdded, v))
}

// SourcesAddedNEQ applies the NEQ predicate on the "sources_added" field.
func SourcesAddedNEQ(v int) predicate.StepRun {
	return predicate.StepRun(sql.FieldNEQ(FieldSourcesAdded, v))
}

// SourcesAddedIn applies the In predicate on the "sources_added" field.
func SourcesAddedIn(vs ...int) predicate.StepRun {
	return predicate.StepRun(sql.FieldIn(FieldSourcesAdded, vs...))
}

// SourcesAddedNotIn applies the NotIn predicate on the "sources_added" field.
func SourcesAddedNotIn(vs ...int) predicate.StepRun {
	return predicate.StepRun(sql.FieldNotIn(FieldSourcesAdded, vs...))
}

// SourcesAddedGT applies the GT predicate on the "sources_added" field.
func SourcesAddedGT(v int) predicate.StepRun {
	return predicate.StepRun(sql.FieldGT(FieldSourcesAdded, v))
}

// SourcesAddedGTE applies the GTE predicate on the "sources_added" field.
func SourcesAddedGTE(v int) predicate.StepRun {
	return predicate.StepRun(sql.FieldGTE(FieldSourcesAdded, v))
}

// SourcesAddedLT applies the LT predicate on the "sources_added" field.
func SourcesAddedLT(v int) predicate.StepRun {
	return predicate.StepRun(sql.FieldLT(FieldSourcesAdded, v))
}

// SourcesAddedLTE applies the LTE predicate on the "sources_added" field.
func SourcesAddedLTE(v int) predicate.StepRun {
	return predicate.StepRun(sql.FieldLTE(FieldSourcesAdded, v))
}

// SourcesAddedIsNil applies the IsNil predicate on the "sources_added" field.
func SourcesAddedIsNil() predicate.StepRun {
	return predicate.StepRun(sql.FieldIsNull(FieldSourcesAdded))
}

// SourcesAddedNotNil applies the NotNil predicate on the "sources_added" field.
func SourcesAddedNotNil() predicate.StepRun {
	return predicate.StepRun(sql.FieldNotNull(FieldSourcesAdded))
}

// ContentBytesEQ applies the EQ predicate on the "content_bytes" field.
func ContentBytesEQ(v int) predicate.StepRun {
	return predicate.StepRun(sql.FieldEQ(FieldContentBytes, v))
}

// ContentBytesNEQ applies the NEQ predicate on the "content_bytes" field.
func ContentBytesNEQ(v int) predicate.StepRun {
	return predicate.StepRun(sql.FieldNEQ(FieldContentBytes, v))
}

// ContentBytesIn applies the In predicate on the "content_bytes" field.
func ContentBytesIn(vs ...int) predicate.StepRun {
	return predicate.StepRun(sql.FieldIn(FieldContentBytes, vs...))
}

// ContentBytesNotIn applies the NotIn predicate on the "content_bytes" field.
func ContentBytesNotIn(vs ...int) predicate.StepRun {
	return predicate.StepRun(sql.FieldNotIn(FieldContentBytes, vs...))
}

// ContentBytesGT applies the GT predicate on the "content_bytes" field.
func ContentBytesGT(v int) predicate.StepRun {
	return predicate.StepRun(sql.FieldGT(FieldContentBytes, v))
}

// ContentBytesGTE applies the GTE predicate on the "content_bytes" field.
func ContentBytesGTE(v int) predicate.StepRun {
	return predicate.StepRun(sql.FieldGTE(FieldContentBytes, v))
}

// ContentBytesLT applies the LT predicate on the "content_bytes" field.
func ContentBytesLT(v int) predicate.StepRun {
	return predicate.StepRun(sql.FieldLT(FieldContentBytes, v))
}

// ContentBytesLTE applies the LTE predicate on the "content_bytes" field.
func ContentBytesLTE(v int) predicate.StepRun {
	return predicate.StepRun(sql.FieldLTE(FieldContentBytes, v))
}

// ContentBytesIsNil applies the IsNil predicate on the "content_bytes" field.
func ContentBytesIsNil() predicate.StepRun {
	return predicate.StepRun(sql.FieldIsNull(FieldContentBytes))
}

// ContentBytesNotNil applies the NotNil predicate on the "content_bytes" field.
func ContentBytesNotNil() predicate.StepRun {
	return predicate.StepRun(sql.FieldNotNull(FieldContentBytes))
}

// ErrorKindEQ applies the EQ predicate on the "error_kind" field.
func ErrorKindEQ(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorKindNEQ applies the NEQ predicate on the "error_kind" field.
func ErrorKindNEQ(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldNEQ(FieldErrorKind, v))
}

// ErrorKindIn applies the In predicate on the "error_kind" field.
func ErrorKindIn(vs ...string) predicate.StepRun {
	return predicate.StepRun(sql.FieldIn(FieldErrorKind, vs...))
}

// ErrorKindNotIn applies the NotIn predicate on the "error_kind" field.
func ErrorKindNotIn(vs ...string) predicate.StepRun {
	return predicate.StepRun(sql.FieldNotIn(FieldErrorKind, vs...))
}

// ErrorKindGT applies the GT predicate on the "error_kind" field.
func ErrorKindGT(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldGT(FieldErrorKind, v))
}

// ErrorKindGTE applies the GTE predicate on the "error_kind" field.
func ErrorKindGTE(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldGTE(FieldErrorKind, v))
}

// ErrorKindLT applies the LT predicate on the "error_kind" field.
func ErrorKindLT(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldLT(FieldErrorKind, v))
}

// ErrorKindLTE applies the LTE predicate on the "error_kind" field.
func ErrorKindLTE(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldLTE(FieldErrorKind, v))
}

// ErrorKindContains applies the Contains predicate on the "error_kind" field.
func ErrorKindContains(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldContains(FieldErrorKind, v))
}

// ErrorKindHasPrefix applies the HasPrefix predicate on the "error_kind" field.
func ErrorKindHasPrefix(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldHasPrefix(FieldErrorKind, v))
}

// ErrorKindHasSuffix applies the HasSuffix predicate on the "error_kind" field.
func ErrorKindHasSuffix(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldHasSuffix(FieldErrorKind, v))
}

// ErrorKindIsNil applies the IsNil predicate on the "error_kind" field.
func ErrorKindIsNil() predicate.StepRun {
	return predicate.StepRun(sql.FieldIsNull(FieldErrorKind))
}

// ErrorKindNotNil applies the NotNil predicate on the "error_kind" field.
func ErrorKindNotNil() predicate.StepRun {
	return predicate.StepRun(sql.FieldNotNull(FieldErrorKind))
}

// ErrorKindEqualFold applies the EqualFold predicate on the "error_kind" field.
func ErrorKindEqualFold(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldEqualFold(FieldErrorKind, v))
}

// ErrorKindContainsFold applies the ContainsFold predicate on the "error_kind" field.
func ErrorKindContainsFold(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldContainsFold(FieldErrorKind, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.StepRun {
	return predicate.StepRun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.StepRun {
	return predicate.StepRun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.StepRun {
	return predicate.StepRun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.StepRun {
	return predicate.StepRun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.StepRun {
	return predicate.StepRun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.StepRun {
	return predicate.StepRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.StepRun {
	return predicate.StepRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.StepRun {
	return predicate.StepRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.StepRun {
	return predicate.StepRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.StepRun {
	return predicate.StepRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.StepRun {
	return predicate.StepRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.StepRun {
	return predicate.StepRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.StepRun {
	return predicate.StepRun(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.StepRun {
	return predicate.StepRun(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.StepRun {
	return predicate.StepRun(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.StepRun {
	return predicate.StepRun(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.StepRun {
	return predicate.StepRun(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.StepRun {
	return predicate.StepRun(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.StepRun {
	return predicate.StepRun(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.StepRun {
	return predicate.StepRun(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.StepRun {
	return predicate.StepRun(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.StepRun {
	return predicate.StepRun(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.StepRun {
	return predicate.StepRun(sql.FieldNotNull(FieldCompletedAt))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.StepRun {
	return predicate.StepRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.ResearchJob) predicate.StepRun {
	return predicate.StepRun(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StepRun) predicate.StepRun {
	return predicate.StepRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StepRun) predicate.StepRun {
	return predicate.StepRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StepRun) predicate.StepRun {
	return predicate.StepRun(sql.NotPredicates(p))
}
