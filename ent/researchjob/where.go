// Code generated by ent, DO NOT EDIT.

package researchjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loreweave/loreweave/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldContainsFold(FieldID, id))
}

// ZoneName applies equality check predicate on the "zone_name" field. It's identical to ZoneNameEQ.
func ZoneName(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEQ(FieldZoneName, v))
}

// Depth applies equality check predicate on the "depth" field. It's identical to DepthEQ.
func Depth(v int) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEQ(FieldDepth, v))
}

// BudgetTokens applies equality check predicate on the "budget_tokens" field. It's identical to BudgetTokensEQ.
func BudgetTokens(v int64) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEQ(FieldBudgetTokens, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEQ(FieldModel, v))
}

// CancelRequested applies equality check predicate on the "cancel_requested" field. It's identical to CancelRequestedEQ.
func CancelRequested(v bool) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEQ(FieldCancelRequested, v))
}

// RequestedBy applies equality check predicate on the "requested_by" field. It's identical to RequestedByEQ.
func RequestedBy(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEQ(FieldRequestedBy, v))
}

// ParentJobID applies equality check predicate on the "parent_job_id" field. It's identical to ParentJobIDEQ.
func ParentJobID(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEQ(FieldParentJobID, v))
}

// ClaimedBy applies equality check predicate on the "claimed_by" field. It's identical to ClaimedByEQ.
func ClaimedBy(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEQ(FieldClaimedBy, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// ResumeAt applies equality check predicate on the "resume_at" field. It's identical to ResumeAtEQ.
func ResumeAt(v time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEQ(FieldResumeAt, v))
}

// ResumeCount applies equality check predicate on the "resume_count" field. It's identical to ResumeCountEQ.
func ResumeCount(v int) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEQ(FieldResumeCount, v))
}

// ErrorKind applies equality check predicate on the "error_kind" field. It's identical to ErrorKindEQ.
func ErrorKind(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEQ(FieldCompletedAt, v))
}

// ZoneNameEQ applies the EQ predicate on the "zone_name" field.
func ZoneNameEQ(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEQ(FieldZoneName, v))
}

// ZoneNameNEQ applies the NEQ predicate on the "zone_name" field.
func ZoneNameNEQ(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNEQ(FieldZoneName, v))
}

// ZoneNameIn applies the In predicate on the "zone_name" field.
func ZoneNameIn(vs ...string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldIn(FieldZoneName, vs...))
}

// ZoneNameNotIn applies the NotIn predicate on the "zone_name" field.
func ZoneNameNotIn(vs ...string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNotIn(FieldZoneName, vs...))
}

// ZoneNameGT applies the GT predicate on the "zone_name" field.
func ZoneNameGT(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldGT(FieldZoneName, v))
}

// ZoneNameGTE applies the GTE predicate on the "zone_name" field.
func ZoneNameGTE(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldGTE(FieldZoneName, v))
}

// ZoneNameLT applies the LT predicate on the "zone_name" field.
func ZoneNameLT(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldLT(FieldZoneName, v))
}

// ZoneNameLTE applies the LTE predicate on the "zone_name" field.
func ZoneNameLTE(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldLTE(FieldZoneName, v))
}

// ZoneNameContains applies the Contains predicate on the "zone_name" field.
func ZoneNameContains(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldContains(FieldZoneName, v))
}

// ZoneNameHasPrefix applies the HasPrefix predicate on the "zone_name" field.
func ZoneNameHasPrefix(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldHasPrefix(FieldZoneName, v))
}

// ZoneNameHasSuffix applies the HasSuffix predicate on the "zone_name" field.
func ZoneNameHasSuffix(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldHasSuffix(FieldZoneName, v))
}

// ZoneNameEqualFold applies the EqualFold predicate on the "zone_name" field.
func ZoneNameEqualFold(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEqualFold(FieldZoneName, v))
}

// ZoneNameContainsFold applies the ContainsFold predicate on the "zone_name" field.
func ZoneNameContainsFold(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldContainsFold(FieldZoneName, v))
}

// DepthEQ applies the EQ predicate on the "depth" field.
func DepthEQ(v int) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEQ(FieldDepth, v))
}

// DepthNEQ applies the NEQ predicate on the "depth" field.
func DepthNEQ(v int) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNEQ(FieldDepth, v))
}

// DepthIn applies the In predicate on the "depth" field.
func DepthIn(vs ...int) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldIn(FieldDepth, vs...))
}

// DepthNotIn applies the NotIn predicate on the "depth" field.
func DepthNotIn(vs ...int) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNotIn(FieldDepth, vs...))
}

// DepthGT applies the GT predicate on the "depth" field.
func DepthGT(v int) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldGT(FieldDepth, v))
}

// DepthGTE applies the GTE predicate on the "depth" field.
func DepthGTE(v int) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldGTE(FieldDepth, v))
}

// DepthLT applies the LT predicate on the "depth" field.
func DepthLT(v int) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldLT(FieldDepth, v))
}

// DepthLTE applies the LTE predicate on the "depth" field.
func DepthLTE(v int) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldLTE(FieldDepth, v))
}

// BudgetTokensEQ applies the EQ predicate on the "budget_tokens" field.
func BudgetTokensEQ(v int64) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEQ(FieldBudgetTokens, v))
}

// BudgetTokensNEQ applies the NEQ predicate on the "budget_tokens" field.
func BudgetTokensNEQ(v int64) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNEQ(FieldBudgetTokens, v))
}

// BudgetTokensIn applies the In predicate on the "budget_tokens" field.
func BudgetTokensIn(vs ...int64) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldIn(FieldBudgetTokens, vs...))
}

// BudgetTokensNotIn applies the NotIn predicate on the "budget_tokens" field.
func BudgetTokensNotIn(vs ...int64) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNotIn(FieldBudgetTokens, vs...))
}

// BudgetTokensGT applies the GT predicate on the "budget_tokens" field.
func BudgetTokensGT(v int64) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldGT(FieldBudgetTokens, v))
}

// BudgetTokensGTE applies the GTE predicate on the "budget_tokens" field.
func BudgetTokensGTE(v int64) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldGTE(FieldBudgetTokens, v))
}

// BudgetTokensLT applies the LT predicate on the "budget_tokens" field.
func BudgetTokensLT(v int64) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldLT(FieldBudgetTokens, v))
}

// BudgetTokensLTE applies the LTE predicate on the "budget_tokens" field.
func BudgetTokensLTE(v int64) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldLTE(FieldBudgetTokens, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldHasSuffix(FieldModel, v))
}

// ModelIsNil applies the IsNil predicate on the "model" field.
func ModelIsNil() predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldIsNull(FieldModel))
}

// ModelNotNil applies the NotNil predicate on the "model" field.
func ModelNotNil() predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNotNull(FieldModel))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldContainsFold(FieldModel, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNotIn(FieldStatus, vs...))
}

// CancelRequestedEQ applies the EQ predicate on the "cancel_requested" field.
func CancelRequestedEQ(v bool) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEQ(FieldCancelRequested, v))
}

// CancelRequestedNEQ applies the NEQ predicate on the "cancel_requested" field.
func CancelRequestedNEQ(v bool) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNEQ(FieldCancelRequested, v))
}

// RequestedByEQ applies the EQ predicate on the "requested_by" field.
func RequestedByEQ(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEQ(FieldRequestedBy, v))
}

// RequestedByNEQ applies the NEQ predicate on the "requested_by" field.
func RequestedByNEQ(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNEQ(FieldRequestedBy, v))
}

// RequestedByIn applies the In predicate on the "requested_by" field.
func RequestedByIn(vs ...string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldIn(FieldRequestedBy, vs...))
}

// RequestedByNotIn applies the NotIn predicate on the "requested_by" field.
func RequestedByNotIn(vs ...string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNotIn(FieldRequestedBy, vs...))
}

// RequestedByGT applies the GT predicate on the "requested_by" field.
func RequestedByGT(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldGT(FieldRequestedBy, v))
}

// RequestedByGTE applies the GTE predicate on the "requested_by" field.
func RequestedByGTE(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldGTE(FieldRequestedBy, v))
}

// RequestedByLT applies the LT predicate on the "requested_by" field.
func RequestedByLT(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldLT(FieldRequestedBy, v))
}

// RequestedByLTE applies the LTE predicate on the "requested_by" field.
func RequestedByLTE(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldLTE(FieldRequestedBy, v))
}

// RequestedByContains applies the Contains predicate on the "requested_by" field.
func RequestedByContains(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldContains(FieldRequestedBy, v))
}

// RequestedByHasPrefix applies the HasPrefix predicate on the "requested_by" field.
func RequestedByHasPrefix(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldHasPrefix(FieldRequestedBy, v))
}

// RequestedByHasSuffix applies the HasSuffix predicate on the "requested_by" field.
func RequestedByHasSuffix(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldHasSuffix(FieldRequestedBy, v))
}

// RequestedByIsNil applies the IsNil predicate on the "requested_by" field.
func RequestedByIsNil() predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldIsNull(FieldRequestedBy))
}

// RequestedByNotNil applies the NotNil predicate on the "requested_by" field.
func RequestedByNotNil() predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNotNull(FieldRequestedBy))
}

// RequestedByEqualFold applies the EqualFold predicate on the "requested_by" field.
func RequestedByEqualFold(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEqualFold(FieldRequestedBy, v))
}

// RequestedByContainsFold applies the ContainsFold predicate on the "requested_by" field.
func RequestedByContainsFold(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldContainsFold(FieldRequestedBy, v))
}

// ParentJobIDEQ applies the EQ predicate on the "parent_job_id" field.
func ParentJobIDEQ(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEQ(FieldParentJobID, v))
}

// ParentJobIDNEQ applies the NEQ predicate on the "parent_job_id" field.
func ParentJobIDNEQ(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNEQ(FieldParentJobID, v))
}

// ParentJobIDIn applies the In predicate on the "parent_job_id" field.
func ParentJobIDIn(vs ...string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldIn(FieldParentJobID, vs...))
}

// ParentJobIDNotIn applies the NotIn predicate on the "parent_job_id" field.
func ParentJobIDNotIn(vs ...string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNotIn(FieldParentJobID, vs...))
}

// ParentJobIDGT applies the GT predicate on the "parent_job_id" field.
func ParentJobIDGT(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldGT(FieldParentJobID, v))
}

// ParentJobIDGTE applies the GTE predicate on the "parent_job_id" field.
func ParentJobIDGTE(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldGTE(FieldParentJobID, v))
}

// ParentJobIDLT applies the LT predicate on the "parent_job_id" field.
func ParentJobIDLT(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldLT(FieldParentJobID, v))
}

// ParentJobIDLTE applies the LTE predicate on the "parent_job_id" field.
func ParentJobIDLTE(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldLTE(FieldParentJobID, v))
}

// ParentJobIDContains applies the Contains predicate on the "parent_job_id" field.
func ParentJobIDContains(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldContains(FieldParentJobID, v))
}

// ParentJobIDHasPrefix applies the HasPrefix predicate on the "parent_job_id" field.
func ParentJobIDHasPrefix(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldHasPrefix(FieldParentJobID, v))
}

// ParentJobIDHasSuffix applies the HasSuffix predicate on the "parent_job_id" field.
func ParentJobIDHasSuffix(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldHasSuffix(FieldParentJobID, v))
}

// ParentJobIDIsNil applies the IsNil predicate on the "parent_job_id" field.
func ParentJobIDIsNil() predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldIsNull(FieldParentJobID))
}

// ParentJobIDNotNil applies the NotNil predicate on the "parent_job_id" field.
func ParentJobIDNotNil() predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNotNull(FieldParentJobID))
}

// ParentJobIDEqualFold applies the EqualFold predicate on the "parent_job_id" field.
func ParentJobIDEqualFold(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEqualFold(FieldParentJobID, v))
}

// ParentJobIDContainsFold applies the ContainsFold predicate on the "parent_job_id" field.
func ParentJobIDContainsFold(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldContainsFold(FieldParentJobID, v))
}

// ClaimedByEQ applies the EQ predicate on the "claimed_by" field.
func ClaimedByEQ(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEQ(FieldClaimedBy, v))
}

// ClaimedByNEQ applies the NEQ predicate on the "claimed_by" field.
func ClaimedByNEQ(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNEQ(FieldClaimedBy, v))
}

// ClaimedByIn applies the In predicate on the "claimed_by" field.
func ClaimedByIn(vs ...string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldIn(FieldClaimedBy, vs...))
}

// ClaimedByNotIn applies the NotIn predicate on the "claimed_by" field.
func ClaimedByNotIn(vs ...string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNotIn(FieldClaimedBy, vs...))
}

// ClaimedByGT applies the GT predicate on the "claimed_by" field.
func ClaimedByGT(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldGT(FieldClaimedBy, v))
}

// ClaimedByGTE applies the GTE predicate on the "claimed_by" field.
func ClaimedByGTE(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldGTE(FieldClaimedBy, v))
}

// ClaimedByLT applies the LT predicate on the "claimed_by" field.
func ClaimedByLT(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldLT(FieldClaimedBy, v))
}

// ClaimedByLTE applies the LTE predicate on the "claimed_by" field.
func ClaimedByLTE(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldLTE(FieldClaimedBy, v))
}

// ClaimedByContains applies the Contains predicate on the "claimed_by" field.
func ClaimedByContains(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldContains(FieldClaimedBy, v))
}

// ClaimedByHasPrefix applies the HasPrefix predicate on the "claimed_by" field.
func ClaimedByHasPrefix(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldHasPrefix(FieldClaimedBy, v))
}

// ClaimedByHasSuffix applies the HasSuffix predicate on the "claimed_by" field.
func ClaimedByHasSuffix(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldHasSuffix(FieldClaimedBy, v))
}

// ClaimedByIsNil applies the IsNil predicate on the "claimed_by" field.
func ClaimedByIsNil() predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldIsNull(FieldClaimedBy))
}

// ClaimedByNotNil applies the NotNil predicate on the "claimed_by" field.
func ClaimedByNotNil() predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNotNull(FieldClaimedBy))
}

// ClaimedByEqualFold applies the EqualFold predicate on the "claimed_by" field.
func ClaimedByEqualFold(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEqualFold(FieldClaimedBy, v))
}

// ClaimedByContainsFold applies the ContainsFold predicate on the "claimed_by" field.
func ClaimedByContainsFold(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldContainsFold(FieldClaimedBy, v))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// ResumeAtEQ applies the EQ predicate on the "resume_at" field.
func ResumeAtEQ(v time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEQ(FieldResumeAt, v))
}

// ResumeAtNEQ applies the NEQ predicate on the "resume_at" field.
func ResumeAtNEQ(v time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNEQ(FieldResumeAt, v))
}

// ResumeAtIn applies the In predicate on the "resume_at" field.
func ResumeAtIn(vs ...time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldIn(FieldResumeAt, vs...))
}

// ResumeAtNotIn applies the NotIn predicate on the "resume_at" field.
func ResumeAtNotIn(vs ...time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNotIn(FieldResumeAt, vs...))
}

// ResumeAtGT applies the GT predicate on the "resume_at" field.
func ResumeAtGT(v time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldGT(FieldResumeAt, v))
}

// ResumeAtGTE applies the GTE predicate on the "resume_at" field.
func ResumeAtGTE(v time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldGTE(FieldResumeAt, v))
}

// ResumeAtLT applies the LT predicate on the "resume_at" field.
func ResumeAtLT(v time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldLT(FieldResumeAt, v))
}

// ResumeAtLTE applies the LTE predicate on the "resume_at" field.
func ResumeAtLTE(v time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldLTE(FieldResumeAt, v))
}

// ResumeAtIsNil applies the IsNil predicate on the "resume_at" field.
func ResumeAtIsNil() predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldIsNull(FieldResumeAt))
}

// ResumeAtNotNil applies the NotNil predicate on the "resume_at" field.
func ResumeAtNotNil() predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNotNull(FieldResumeAt))
}

// ResumeCountEQ applies the EQ predicate on the "resume_count" field.
func ResumeCountEQ(v int) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEQ(FieldResumeCount, v))
}

// ResumeCountNEQ applies the NEQ predicate on the "resume_count" field.
func ResumeCountNEQ(v int) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNEQ(FieldResumeCount, v))
}

// ResumeCountIn applies the In predicate on the "resume_count" field.
func ResumeCountIn(vs ...int) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldIn(FieldResumeCount, vs...))
}

// ResumeCountNotIn applies the NotIn predicate on the "resume_count" field.
func ResumeCountNotIn(vs ...int) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNotIn(FieldResumeCount, vs...))
}

// ResumeCountGT applies the GT predicate on the "resume_count" field.
func ResumeCountGT(v int) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldGT(FieldResumeCount, v))
}

// ResumeCountGTE applies the GTE predicate on the "resume_count" field.
func ResumeCountGTE(v int) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldGTE(FieldResumeCount, v))
}

// ResumeCountLT applies the LT predicate on the "resume_count" field.
func ResumeCountLT(v int) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldLT(FieldResumeCount, v))
}

// ResumeCountLTE applies the LTE predicate on the "resume_count" field.
func ResumeCountLTE(v int) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldLTE(FieldResumeCount, v))
}

// ErrorKindEQ applies the EQ predicate on the "error_kind" field.
func ErrorKindEQ(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorKindNEQ applies the NEQ predicate on the "error_kind" field.
func ErrorKindNEQ(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNEQ(FieldErrorKind, v))
}

// ErrorKindIn applies the In predicate on the "error_kind" field.
func ErrorKindIn(vs ...string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldIn(FieldErrorKind, vs...))
}

// ErrorKindNotIn applies the NotIn predicate on the "error_kind" field.
func ErrorKindNotIn(vs ...string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNotIn(FieldErrorKind, vs...))
}

// ErrorKindGT applies the GT predicate on the "error_kind" field.
func ErrorKindGT(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldGT(FieldErrorKind, v))
}

// ErrorKindGTE applies the GTE predicate on the "error_kind" field.
func ErrorKindGTE(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldGTE(FieldErrorKind, v))
}

// ErrorKindLT applies the LT predicate on the "error_kind" field.
func ErrorKindLT(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldLT(FieldErrorKind, v))
}

// ErrorKindLTE applies the LTE predicate on the "error_kind" field.
func ErrorKindLTE(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldLTE(FieldErrorKind, v))
}

// ErrorKindContains applies the Contains predicate on the "error_kind" field.
func ErrorKindContains(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldContains(FieldErrorKind, v))
}

// ErrorKindHasPrefix applies the HasPrefix predicate on the "error_kind" field.
func ErrorKindHasPrefix(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldHasPrefix(FieldErrorKind, v))
}

// ErrorKindHasSuffix applies the HasSuffix predicate on the "error_kind" field.
func ErrorKindHasSuffix(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldHasSuffix(FieldErrorKind, v))
}

// ErrorKindIsNil applies the IsNil predicate on the "error_kind" field.
func ErrorKindIsNil() predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldIsNull(FieldErrorKind))
}

// ErrorKindNotNil applies the NotNil predicate on the "error_kind" field.
func ErrorKindNotNil() predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNotNull(FieldErrorKind))
}

// ErrorKindEqualFold applies the EqualFold predicate on the "error_kind" field.
func ErrorKindEqualFold(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEqualFold(FieldErrorKind, v))
}

// ErrorKindContainsFold applies the ContainsFold predicate on the "error_kind" field.
func ErrorKindContainsFold(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldContainsFold(FieldErrorKind, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ResearchJob {
	return predicate.ResearchJob(sql.FieldNotNull(FieldCompletedAt))
}

// HasCheckpoint applies the HasEdge predicate on the "checkpoint" edge.
func HasCheckpoint() predicate.ResearchJob {
	return predicate.ResearchJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, CheckpointTable, CheckpointColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCheckpointWith applies the HasEdge predicate on the "checkpoint" edge with a given conditions (other predicates).
func HasCheckpointWith(preds ...predicate.Checkpoint) predicate.ResearchJob {
	return predicate.ResearchJob(func(s *sql.Selector) {
		step := newCheckpointStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStepRuns applies the HasEdge predicate on the "step_runs" edge.
func HasStepRuns() predicate.ResearchJob {
	return predicate.ResearchJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StepRunsTable, StepRunsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepRunsWith applies the HasEdge predicate on the "step_runs" edge with a given conditions (other predicates).
func HasStepRunsWith(preds ...predicate.StepRun) predicate.ResearchJob {
	return predicate.ResearchJob(func(s *sql.Selector) {
		step := newStepRunsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLlmCalls applies the HasEdge predicate on the "llm_calls" edge.
func HasLlmCalls() predicate.ResearchJob {
	return predicate.ResearchJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LlmCallsTable, LlmCallsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLlmCallsWith applies the HasEdge predicate on the "llm_calls" edge with a given conditions (other predicates).
func HasLlmCallsWith(preds ...predicate.LLMCall) predicate.ResearchJob {
	return predicate.ResearchJob(func(s *sql.Selector) {
		step := newLlmCallsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasToolCalls applies the HasEdge predicate on the "tool_calls" edge.
func HasToolCalls() predicate.ResearchJob {
	return predicate.ResearchJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ToolCallsTable, ToolCallsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasToolCallsWith applies the HasEdge predicate on the "tool_calls" edge with a given conditions (other predicates).
func HasToolCallsWith(preds ...predicate.ToolCall) predicate.ResearchJob {
	return predicate.ResearchJob(func(s *sql.Selector) {
		step := newToolCallsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPackage applies the HasEdge predicate on the "package" edge.
func HasPackage() predicate.ResearchJob {
	return predicate.ResearchJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, PackageTable, PackageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPackageWith applies the HasEdge predicate on the "package" edge with a given conditions (other predicates).
func HasPackageWith(preds ...predicate.LorePackage) predicate.ResearchJob {
	return predicate.ResearchJob(func(s *sql.Selector) {
		step := newPackageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResearchJob) predicate.ResearchJob {
	return predicate.ResearchJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResearchJob) predicate.ResearchJob {
	return predicate.ResearchJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResearchJob) predicate.ResearchJob {
	return predicate.ResearchJob(sql.NotPredicates(p))
}
