// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loreweave/loreweave/ent/llmcall"
	"github.com/loreweave/loreweave/ent/predicate"
)

// LLMCallUpdate is the builder for updating LLMCall entities.
type LLMCallUpdate struct {
	config
	hooks    []Hook
	mutation *LLMCallMutation
}

// Where appends a list predicates to the LLMCallUpdate builder.
func (_u *LLMCallUpdate) Where(ps ...predicate.LLMCall) *LLMCallUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStepName sets the "step_name" field.
func (_u *LLMCallUpdate) SetStepName(v string) *LLMCallUpdate {
	_u.mutation.SetStepName(v)
	return _u
}

// SetNillableStepName sets the "step_name" field if the given value is not nil.
func (_u *LLMCallUpdate) SetNillableStepName(v *string) *LLMCallUpdate {
	if v != nil {
		_u.SetStepName(*v)
	}
	return _u
}

// SetPurpose sets the "purpose" field.
func (_u *LLMCallUpdate) SetPurpose(v llmcall.Purpose) *LLMCallUpdate {
	_u.mutation.SetPurpose(v)
	return _u
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_u *LLMCallUpdate) SetNillablePurpose(v *llmcall.Purpose) *LLMCallUpdate {
	if v != nil {
		_u.SetPurpose(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *LLMCallUpdate) SetProvider(v string) *LLMCallUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *LLMCallUpdate) SetNillableProvider(v *string) *LLMCallUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *LLMCallUpdate) SetModel(v string) *LLMCallUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *LLMCallUpdate) SetNillableModel(v *string) *LLMCallUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *LLMCallUpdate) SetPromptTokens(v int64) *LLMCallUpdate {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *LLMCallUpdate) SetNillablePromptTokens(v *int64) *LLMCallUpdate {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *LLMCallUpdate) AddPromptTokens(v int64) *LLMCallUpdate {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// ClearPromptTokens clears the value of the "prompt_tokens" field.
func (_u *LLMCallUpdate) ClearPromptTokens() *LLMCallUpdate {
	_u.mutation.ClearPromptTokens()
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *LLMCallUpdate) SetCompletionTokens(v int64) *LLMCallUpdate {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *LLMCallUpdate) SetNillableCompletionTokens(v *int64) *LLMCallUpdate {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *LLMCallUpdate) AddCompletionTokens(v int64) *LLMCallUpdate {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// ClearCompletionTokens clears the value of the "completion_tokens" field.
func (_u *LLMCallUpdate) ClearCompletionTokens() *LLMCallUpdate {
	_u.mutation.ClearCompletionTokens()
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *LLMCallUpdate) SetTotalTokens(v int64) *LLMCallUpdate {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *LLMCallUpdate) SetNillableTotalTokens(v *int64) *LLMCallUpdate {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *LLMCallUpdate) AddTotalTokens(v int64) *LLMCallUpdate {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// ClearTotalTokens clears the value of the "total_tokens" field.
func (_u *LLMCallUpdate) ClearTotalTokens() *LLMCallUpdate {
	_u.mutation.ClearTotalTokens()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *LLMCallUpdate) SetDurationMs(v int) *LLMCallUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *LLMCallUpdate) SetNillableDurationMs(v *int) *LLMCallUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *LLMCallUpdate) AddDurationMs(v int) *LLMCallUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *LLMCallUpdate) ClearDurationMs() *LLMCallUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetStatus sets the "status" field.
func (_u *LLMCallUpdate) SetStatus(v llmcall.Status) *LLMCallUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LLMCallUpdate) SetNillableStatus(v *llmcall.Status) *LLMCallUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *LLMCallUpdate) SetErrorMessage(v string) *LLMCallUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *LLMCallUpdate) SetNillableErrorMessage(v *string) *LLMCallUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *LLMCallUpdate) ClearErrorMessage() *LLMCallUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the LLMCallMutation object of the builder.
func (_u *LLMCallUpdate) Mutation() *LLMCallMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LLMCallUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMCallUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LLMCallUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMCallUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LLMCallUpdate) check() error {
	if v, ok := _u.mutation.Purpose(); ok {
		if err := llmcall.PurposeValidator(v); err != nil {
			return &ValidationError{Name: "purpose", err: fmt.Errorf(`ent: validator failed for field "LLMCall.purpose": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := llmcall.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LLMCall.status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LLMCall.job"`)
	}
	return nil
}

func (_u *LLMCallUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(llmcall.Table, llmcall.Columns, sqlgraph.NewFieldSpec(llmcall.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StepName(); ok {
		_spec.SetField(llmcall.FieldStepName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Purpose(); ok {
		_spec.SetField(llmcall.FieldPurpose, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(llmcall.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(llmcall.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(llmcall.FieldPromptTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(llmcall.FieldPromptTokens, field.TypeInt64, value)
	}
	if _u.mutation.PromptTokensCleared() {
		_spec.ClearField(llmcall.FieldPromptTokens, field.TypeInt64)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(llmcall.FieldCompletionTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(llmcall.FieldCompletionTokens, field.TypeInt64, value)
	}
	if _u.mutation.CompletionTokensCleared() {
		_spec.ClearField(llmcall.FieldCompletionTokens, field.TypeInt64)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(llmcall.FieldTotalTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(llmcall.FieldTotalTokens, field.TypeInt64, value)
	}
	if _u.mutation.TotalTokensCleared() {
		_spec.ClearField(llmcall.FieldTotalTokens, field.TypeInt64)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(llmcall.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(llmcall.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(llmcall.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(llmcall.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(llmcall.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(llmcall.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmcall.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LLMCallUpdateOne is the builder for updating a single LLMCall entity.
type LLMCallUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LLMCallMutation
}

// SetStepName sets the "step_name" field.
func (_u *LLMCallUpdateOne) SetStepName(v string) *LLMCallUpdateOne {
	_u.mutation.SetStepName(v)
	return _u
}

// SetNillableStepName sets the "step_name" field if the given value is not nil.
func (_u *LLMCallUpdateOne) SetNillableStepName(v *string) *LLMCallUpdateOne {
	if v != nil {
		_u.SetStepName(*v)
	}
	return _u
}

// SetPurpose sets the "purpose" field.
func (_u *LLMCallUpdateOne) SetPurpose(v llmcall.Purpose) *LLMCallUpdateOne {
	_u.mutation.SetPurpose(v)
	return _u
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_u *LLMCallUpdateOne) SetNillablePurpose(v *llmcall.Purpose) *LLMCallUpdateOne {
	if v != nil {
		_u.SetPurpose(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *LLMCallUpdateOne) SetProvider(v string) *LLMCallUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *LLMCallUpdateOne) SetNillableProvider(v *string) *LLMCallUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *LLMCallUpdateOne) SetModel(v string) *LLMCallUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *LLMCallUpdateOne) SetNillableModel(v *string) *LLMCallUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *LLMCallUpdateOne) SetPromptTokens(v int64) *LLMCallUpdateOne {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *LLMCallUpdateOne) SetNillablePromptTokens(v *int64) *LLMCallUpdateOne {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *LLMCallUpdateOne) AddPromptTokens(v int64) *LLMCallUpdateOne {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// ClearPromptTokens clears the value of the "prompt_tokens" field.
func (_u *LLMCallUpdateOne) ClearPromptTokens() *LLMCallUpdateOne {
	_u.mutation.ClearPromptTokens()
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *LLMCallUpdateOne) SetCompletionTokens(v int64) *LLMCallUpdateOne {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *LLMCallUpdateOne) SetNillableCompletionTokens(v *int64) *LLMCallUpdateOne {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *LLMCallUpdateOne) AddCompletionTokens(v int64) *LLMCallUpdateOne {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// ClearCompletionTokens clears the value of the "completion_tokens" field.
func (_u *LLMCallUpdateOne) ClearCompletionTokens() *LLMCallUpdateOne {
	_u.mutation.ClearCompletionTokens()
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *LLMCallUpdateOne) SetTotalTokens(v int64) *LLMCallUpdateOne {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *LLMCallUpdateOne) SetNillableTotalTokens(v *int64) *LLMCallUpdateOne {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *LLMCallUpdateOne) AddTotalTokens(v int64) *LLMCallUpdateOne {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// ClearTotalTokens clears the value of the "total_tokens" field.
func (_u *LLMCallUpdateOne) ClearTotalTokens() *LLMCallUpdateOne {
	_u.mutation.ClearTotalTokens()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *LLMCallUpdateOne) SetDurationMs(v int) *LLMCallUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *LLMCallUpdateOne) SetNillableDurationMs(v *int) *LLMCallUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *LLMCallUpdateOne) AddDurationMs(v int) *LLMCallUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *LLMCallUpdateOne) ClearDurationMs() *LLMCallUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetStatus sets the "status" field.
func (_u *LLMCallUpdateOne) SetStatus(v llmcall.Status) *LLMCallUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LLMCallUpdateOne) SetNillableStatus(v *llmcall.Status) *LLMCallUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *LLMCallUpdateOne) SetErrorMessage(v string) *LLMCallUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *LLMCallUpdateOne) SetNillableErrorMessage(v *string) *LLMCallUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *LLMCallUpdateOne) ClearErrorMessage() *LLMCallUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the LLMCallMutation object of the builder.
func (_u *LLMCallUpdateOne) Mutation() *LLMCallMutation {
	return _u.mutation
}

// Where appends a list predicates to the LLMCallUpdate builder.
func (_u *LLMCallUpdateOne) Where(ps ...predicate.LLMCall) *LLMCallUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LLMCallUpdateOne) Select(field string, fields ...string) *LLMCallUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LLMCall entity.
func (_u *LLMCallUpdateOne) Save(ctx context.Context) (*LLMCall, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMCallUpdateOne) SaveX(ctx context.Context) *LLMCall {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LLMCallUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMCallUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LLMCallUpdateOne) check() error {
	if v, ok := _u.mutation.Purpose(); ok {
		if err := llmcall.PurposeValidator(v); err != nil {
			return &ValidationError{Name: "purpose", err: fmt.Errorf(`ent: validator failed for field "LLMCall.purpose": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := llmcall.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LLMCall.status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LLMCall.job"`)
	}
	return nil
}

func (_u *LLMCallUpdateOne) sqlSave(ctx context.Context) (_node *LLMCall, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(llmcall.Table, llmcall.Columns, sqlgraph.NewFieldSpec(llmcall.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LLMCall.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, llmcall.FieldID)
		for _, f := range fields {
			if !llmcall.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != llmcall.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StepName(); ok {
		_spec.SetField(llmcall.FieldStepName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Purpose(); ok {
		_spec.SetField(llmcall.FieldPurpose, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(llmcall.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(llmcall.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(llmcall.FieldPromptTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(llmcall.FieldPromptTokens, field.TypeInt64, value)
	}
	if _u.mutation.PromptTokensCleared() {
		_spec.ClearField(llmcall.FieldPromptTokens, field.TypeInt64)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(llmcall.FieldCompletionTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(llmcall.FieldCompletionTokens, field.TypeInt64, value)
	}
	if _u.mutation.CompletionTokensCleared() {
		_spec.ClearField(llmcall.FieldCompletionTokens, field.TypeInt64)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(llmcall.FieldTotalTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(llmcall.FieldTotalTokens, field.TypeInt64, value)
	}
	if _u.mutation.TotalTokensCleared() {
		_spec.ClearField(llmcall.FieldTotalTokens, field.TypeInt64)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(llmcall.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(llmcall.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(llmcall.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(llmcall.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(llmcall.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(llmcall.FieldErrorMessage, field.TypeString)
	}
	_node = &LLMCall{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmcall.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
