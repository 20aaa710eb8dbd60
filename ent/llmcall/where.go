// Code generated by ent, DO NOT EDIT.

package llmcall

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loreweave/loreweave/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldContainsFold(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldJobID, v))
}

// StepName applies equality check predicate on the "step_name" field. It's identical to StepNameEQ.
func StepName(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldStepName, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldProvider, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldModel, v))
}

// PromptTokens applies equality check predicate on the "prompt_tokens" field. It's identical to PromptTokensEQ.
func PromptTokens(v int64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldPromptTokens, v))
}

// CompletionTokens applies equality check predicate on the "completion_tokens" field. It's identical to CompletionTokensEQ.
func CompletionTokens(v int64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldCompletionTokens, v))
}

// TotalTokens applies equality check predicate on the "total_tokens" field. It's identical to TotalTokensEQ.
func TotalTokens(v int64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldTotalTokens, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldDurationMs, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldCreatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldContainsFold(FieldJobID, v))
}

// StepNameEQ applies the EQ predicate on the "step_name" field.
func StepNameEQ(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldStepName, v))
}

// StepNameNEQ applies the NEQ predicate on the "step_name" field.
func StepNameNEQ(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNEQ(FieldStepName, v))
}

// StepNameIn applies the In predicate on the "step_name" field.
func StepNameIn(vs ...string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldIn(FieldStepName, vs...))
}

// StepNameNotIn applies the NotIn predicate on the "step_name" field.
func StepNameNotIn(vs ...string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNotIn(FieldStepName, vs...))
}

// StepNameGT applies the GT predicate on the "step_name" field.
func StepNameGT(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldGT(FieldStepName, v))
}

// StepNameGTE applies the GTE predicate on the "step_name" field.
func StepNameGTE(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldGTE(FieldStepName, v))
}

// StepNameLT applies the LT predicate on the "step_name" field.
func StepNameLT(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldLT(FieldStepName, v))
}

// StepNameLTE applies the LTE predicate on the "step_name" field.
func StepNameLTE(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldLTE(FieldStepName, v))
}

// StepNameContains applies the Contains predicate on the "step_name" field.
func StepNameContains(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldContains(FieldStepName, v))
}

// StepNameHasPrefix applies the HasPrefix predicate on the "step_name" field.
func StepNameHasPrefix(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldHasPrefix(FieldStepName, v))
}

// StepNameHasSuffix applies the HasSuffix predicate on the "step_name" field.
func StepNameHasSuffix(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldHasSuffix(FieldStepName, v))
}

// StepNameEqualFold applies the EqualFold predicate on the "step_name" field.
func StepNameEqualFold(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEqualFold(FieldStepName, v))
}

// StepNameContainsFold applies the ContainsFold predicate on the "step_name" field.
func StepNameContainsFold(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldContainsFold(FieldStepName, v))
}

// PurposeEQ applies the EQ predicate on the "purpose" field.
func PurposeEQ(v Purpose) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldPurpose, v))
}

// PurposeNEQ applies the NEQ predicate on the "purpose" field.
func PurposeNEQ(v Purpose) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNEQ(FieldPurpose, v))
}

// PurposeIn applies the In predicate on the "purpose" field.
func PurposeIn(vs ...Purpose) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldIn(FieldPurpose, vs...))
}

// PurposeNotIn applies the NotIn predicate on the "purpose" field.
func PurposeNotIn(vs ...Purpose) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNotIn(FieldPurpose, vs...))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldContainsFold(FieldProvider, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldContainsFold(FieldModel, v))
}

// PromptTokensEQ applies the EQ predicate on the "prompt_tokens" field.
func PromptTokensEQ(v int64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldPromptTokens, v))
}

// PromptTokensNEQ applies the NEQ predicate on the "prompt_tokens" field.
func PromptTokensNEQ(v int64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNEQ(FieldPromptTokens, v))
}

// PromptTokensIn applies the In predicate on the "prompt_tokens" field.
func PromptTokensIn(vs ...int64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldIn(FieldPromptTokens, vs...))
}

// PromptTokensNotIn applies the NotIn predicate on the "prompt_tokens" field.
func PromptTokensNotIn(vs ...int64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNotIn(FieldPromptTokens, vs...))
}

// PromptTokensGT applies the GT predicate on the "prompt_tokens" field.
func PromptTokensGT(v int64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldGT(FieldPromptTokens, v))
}

// PromptTokensGTE applies the GTE predicate on the "prompt_tokens" field.
func PromptTokensGTE(v int64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldGTE(FieldPromptTokens, v))
}

// PromptTokensLT applies the LT predicate on the "prompt_tokens" field.
func PromptTokensLT(v int64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldLT(FieldPromptTokens, v))
}

// PromptTokensLTE applies the LTE predicate on the "prompt_tokens" field.
func PromptTokensLTE(v int64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldLTE(FieldPromptTokens, v))
}

// PromptTokensIsNil applies the IsNil predicate on the "prompt_tokens" field.
func PromptTokensIsNil() predicate.LLMCall {
	return predicate.LLMCall(sql.FieldIsNull(FieldPromptTokens))
}

// PromptTokensNotNil applies the NotNil predicate on the "prompt_tokens" field.
func PromptTokensNotNil() predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNotNull(FieldPromptTokens))
}

// CompletionTokensEQ applies the EQ predicate on the "completion_tokens" field.
func CompletionTokensEQ(v int64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldCompletionTokens, v))
}

// CompletionTokensNEQ applies the NEQ predicate on the "completion_tokens" field.
func CompletionTokensNEQ(v int64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNEQ(FieldCompletionTokens, v))
}

// CompletionTokensIn applies the In predicate on the "completion_tokens" field.
func CompletionTokensIn(vs ...int64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldIn(FieldCompletionTokens, vs...))
}

// CompletionTokensNotIn applies the NotIn predicate on the "completion_tokens" field.
func CompletionTokensNotIn(vs ...int64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNotIn(FieldCompletionTokens, vs...))
}

// CompletionTokensGT applies the GT predicate on the "completion_tokens" field.
func CompletionTokensGT(v int64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldGT(FieldCompletionTokens, v))
}

// CompletionTokensGTE applies the GTE predicate on the "completion_tokens" field.
func CompletionTokensGTE(v int64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldGTE(FieldCompletionTokens, v))
}

// CompletionTokensLT applies the LT predicate on the "completion_tokens" field.
func CompletionTokensLT(v int64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldLT(FieldCompletionTokens, v))
}

// CompletionTokensLTE applies the LTE predicate on the "completion_tokens" field.
func CompletionTokensLTE(v int64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldLTE(FieldCompletionTokens, v))
}

// CompletionTokensIsNil applies the IsNil predicate on the "completion_tokens" field.
func CompletionTokensIsNil() predicate.LLMCall {
	return predicate.LLMCall(sql.FieldIsNull(FieldCompletionTokens))
}

// CompletionTokensNotNil applies the NotNil predicate on the "completion_tokens" field.
func CompletionTokensNotNil() predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNotNull(FieldCompletionTokens))
}

// TotalTokensEQ applies the EQ predicate on the "total_tokens" field.
func TotalTokensEQ(v int64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldTotalTokens, v))
}

// TotalTokensNEQ applies the NEQ predicate on the "total_tokens" field.
func TotalTokensNEQ(v int64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNEQ(FieldTotalTokens, v))
}

// TotalTokensIn applies the In predicate on the "total_tokens" field.
func TotalTokensIn(vs ...int64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldIn(FieldTotalTokens, vs...))
}

// TotalTokensNotIn applies the NotIn predicate on the "total_tokens" field.
func TotalTokensNotIn(vs ...int64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNotIn(FieldTotalTokens, vs...))
}

// TotalTokensGT applies the GT predicate on the "total_tokens" field.
func TotalTokensGT(v int64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldGT(FieldTotalTokens, v))
}

// TotalTokensGTE applies the GTE predicate on the "total_tokens" field.
func TotalTokensGTE(v int64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldGTE(FieldTotalTokens, v))
}

// TotalTokensLT applies the LT predicate on the "total_tokens" field.
func TotalTokensLT(v int64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldLT(FieldTotalTokens, v))
}

// TotalTokensLTE applies the LTE predicate on the "total_tokens" field.
func TotalTokensLTE(v int64) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldLTE(FieldTotalTokens, v))
}

// TotalTokensIsNil applies the IsNil predicate on the "total_tokens" field.
func TotalTokensIsNil() predicate.LLMCall {
	return predicate.LLMCall(sql.FieldIsNull(FieldTotalTokens))
}

// TotalTokensNotNil applies the NotNil predicate on the "total_tokens" field.
func TotalTokensNotNil() predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNotNull(FieldTotalTokens))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.LLMCall {
	return predicate.LLMCall(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNotNull(FieldDurationMs))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.LLMCall {
	return predicate.LLMCall(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LLMCall {
	return predicate.LLMCall(sql.FieldLTE(FieldCreatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.LLMCall {
	return predicate.LLMCall(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.ResearchJob) predicate.LLMCall {
	return predicate.LLMCall(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LLMCall) predicate.LLMCall {
	return predicate.LLMCall(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LLMCall) predicate.LLMCall {
	return predicate.LLMCall(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LLMCall) predicate.LLMCall {
	return predicate.LLMCall(sql.NotPredicates(p))
}
