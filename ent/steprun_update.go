// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loreweave/loreweave/ent/predicate"
	"github.com/loreweave/loreweave/ent/steprun"
)

// StepRunUpdate is the builder for updating StepRun entities.
type StepRunUpdate struct {
	config
	hooks    []Hook
	mutation *StepRunMutation
}

// Where appends a list predicates to the StepRunUpdate builder.
func (_u *StepRunUpdate) Where(ps ...predicate.StepRun) *StepRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStepName sets the "step_name" field.
func (_u *StepRunUpdate) SetStepName(v string) *StepRunUpdate {
	_u.mutation.SetStepName(v)
	return _u
}

// SetNillableStepName sets the "step_name" field if the given value is not nil.
func (_u *StepRunUpdate) SetNillableStepName(v *string) *StepRunUpdate {
	if v != nil {
		_u.SetStepName(*v)
	}
	return _u
}

// SetStepIndex sets the "step_index" field.
func (_u *StepRunUpdate) SetStepIndex(v int) *StepRunUpdate {
	_u.mutation.ResetStepIndex()
	_u.mutation.SetStepIndex(v)
	return _u
}

// SetNillableStepIndex sets the "step_index" field if the given value is not nil.
func (_u *StepRunUpdate) SetNillableStepIndex(v *int) *StepRunUpdate {
	if v != nil {
		_u.SetStepIndex(*v)
	}
	return _u
}

// AddStepIndex adds value to the "step_index" field.
func (_u *StepRunUpdate) AddStepIndex(v int) *StepRunUpdate {
	_u.mutation.AddStepIndex(v)
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *StepRunUpdate) SetAttempt(v int) *StepRunUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *StepRunUpdate) SetNillableAttempt(v *int) *StepRunUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *StepRunUpdate) AddAttempt(v int) *StepRunUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *StepRunUpdate) SetStatus(v steprun.Status) *StepRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StepRunUpdate) SetNillableStatus(v *steprun.Status) *StepRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *StepRunUpdate) SetDurationMs(v int) *StepRunUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *StepRunUpdate) SetNillableDurationMs(v *int) *StepRunUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *StepRunUpdate) AddDurationMs(v int) *StepRunUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *StepRunUpdate) ClearDurationMs() *StepRunUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *StepRunUpdate) SetTokensUsed(v int64) *StepRunUpdate {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *StepRunUpdate) SetNillableTokensUsed(v *int64) *StepRunUpdate {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *StepRunUpdate) AddTokensUsed(v int64) *StepRunUpdate {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// ClearTokensUsed clears the value of the "tokens_used" field.
func (_u *StepRunUpdate) ClearTokensUsed() *StepRunUpdate {
	_u.mutation.ClearTokensUsed()
	return _u
}

// SetSourcesAdded sets the "sources_added" field.
func (_u *StepRunUpdate) SetSourcesAdded(v int) *StepRunUpdate {
	_u.mutation.ResetSourcesAdded()
	_u.mutation.SetSourcesAdded(v)
	return _u
}

// SetNillableSourcesAdded sets the "sources_added" field if the given value is not nil.
func (_u *StepRunUpdate) SetNillableSourcesAdded(v *int) *StepRunUpdate {
	if v != nil {
		_u.SetSourcesAdded(*v)
	}
	return _u
}

// AddSourcesAdded adds value to the "sources_added" field.
func (_u *StepRunUpdate) AddSourcesAdded(v int) *StepRunUpdate {
	_u.mutation.AddSourcesAdded(v)
	return _u
}

// ClearSourcesAdded clears the value of the "sources_added" field.
func (_u *StepRunUpdate) ClearSourcesAdded() *StepRunUpdate {
	_u.mutation.ClearSourcesAdded()
	return _u
}

// SetContentBytes sets the "content_bytes" field.
func (_u *StepRunUpdate) SetContentBytes(v int) *StepRunUpdate {
	_u.mutation.ResetContentBytes()
	_u.mutation.SetContentBytes(v)
	return _u
}

// SetNillableContentBytes sets the "content_bytes" field if the given value is not nil.
func (_u *StepRunUpdate) SetNillableContentBytes(v *int) *StepRunUpdate {
	if v != nil {
		_u.SetContentBytes(*v)
	}
	return _u
}

// AddContentBytes adds value to the "content_bytes" field.
func (_u *StepRunUpdate) AddContentBytes(v int) *StepRunUpdate {
	_u.mutation.AddContentBytes(v)
	return _u
}

// ClearContentBytes clears the value of the "content_bytes" field.
func (_u *StepRunUpdate) ClearContentBytes() *StepRunUpdate {
	_u.mutation.ClearContentBytes()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *StepRunUpdate) SetErrorKind(v string) *StepRunUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *StepRunUpdate) SetNillableErrorKind(v *string) *StepRunUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *StepRunUpdate) ClearErrorKind() *StepRunUpdate {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *StepRunUpdate) SetErrorMessage(v string) *StepRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *StepRunUpdate) SetNillableErrorMessage(v *string) *StepRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *StepRunUpdate) ClearErrorMessage() *StepRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StepRunUpdate) SetCompletedAt(v time.Time) *StepRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StepRunUpdate) SetNillableCompletedAt(v *time.Time) *StepRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StepRunUpdate) ClearCompletedAt() *StepRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the StepRunMutation object of the builder.
func (_u *StepRunUpdate) Mutation() *StepRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StepRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StepRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := steprun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StepRun.status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StepRun.job"`)
	}
	return nil
}

func (_u *StepRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(steprun.Table, steprun.Columns, sqlgraph.NewFieldSpec(steprun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StepName(); ok {
		_spec.SetField(steprun.FieldStepName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepIndex(); ok {
		_spec.SetField(steprun.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepIndex(); ok {
		_spec.AddField(steprun.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(steprun.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(steprun.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(steprun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(steprun.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(steprun.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(steprun.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(steprun.FieldTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(steprun.FieldTokensUsed, field.TypeInt64, value)
	}
	if _u.mutation.TokensUsedCleared() {
		_spec.ClearField(steprun.FieldTokensUsed, field.TypeInt64)
	}
	if value, ok := _u.mutation.SourcesAdded(); ok {
		_spec.SetField(steprun.FieldSourcesAdded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSourcesAdded(); ok {
		_spec.AddField(steprun.FieldSourcesAdded, field.TypeInt, value)
	}
	if _u.mutation.SourcesAddedCleared() {
		_spec.ClearField(steprun.FieldSourcesAdded, field.TypeInt)
	}
	if value, ok := _u.mutation.ContentBytes(); ok {
		_spec.SetField(steprun.FieldContentBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContentBytes(); ok {
		_spec.AddField(steprun.FieldContentBytes, field.TypeInt, value)
	}
	if _u.mutation.ContentBytesCleared() {
		_spec.ClearField(steprun.FieldContentBytes, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(steprun.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(steprun.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(steprun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(steprun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(steprun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(steprun.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{steprun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StepRunUpdateOne is the builder for updating a single StepRun entity.
type StepRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StepRunMutation
}

// SetStepName sets the "step_name" field.
func (_u *StepRunUpdateOne) SetStepName(v string) *StepRunUpdateOne {
	_u.mutation.SetStepName(v)
	return _u
}

// SetNillableStepName sets the "step_name" field if the given value is not nil.
func (_u *StepRunUpdateOne) SetNillableStepName(v *string) *StepRunUpdateOne {
	if v != nil {
		_u.SetStepName(*v)
	}
	return _u
}

// SetStepIndex sets the "step_index" field.
func (_u *StepRunUpdateOne) SetStepIndex(v int) *StepRunUpdateOne {
	_u.mutation.ResetStepIndex()
	_u.mutation.SetStepIndex(v)
	return _u
}

// SetNillableStepIndex sets the "step_index" field if the given value is not nil.
func (_u *StepRunUpdateOne) SetNillableStepIndex(v *int) *StepRunUpdateOne {
	if v != nil {
		_u.SetStepIndex(*v)
	}
	return _u
}

// AddStepIndex adds value to the "step_index" field.
func (_u *StepRunUpdateOne) AddStepIndex(v int) *StepRunUpdateOne {
	_u.mutation.AddStepIndex(v)
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *StepRunUpdateOne) SetAttempt(v int) *StepRunUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *StepRunUpdateOne) SetNillableAttempt(v *int) *StepRunUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *StepRunUpdateOne) AddAttempt(v int) *StepRunUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *StepRunUpdateOne) SetStatus(v steprun.Status) *StepRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StepRunUpdateOne) SetNillableStatus(v *steprun.Status) *StepRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *StepRunUpdateOne) SetDurationMs(v int) *StepRunUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *StepRunUpdateOne) SetNillableDurationMs(v *int) *StepRunUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *StepRunUpdateOne) AddDurationMs(v int) *StepRunUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *StepRunUpdateOne) ClearDurationMs() *StepRunUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *StepRunUpdateOne) SetTokensUsed(v int64) *StepRunUpdateOne {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *StepRunUpdateOne) SetNillableTokensUsed(v *int64) *StepRunUpdateOne {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *StepRunUpdateOne) AddTokensUsed(v int64) *StepRunUpdateOne {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// ClearTokensUsed clears the value of the "tokens_used" field.
func (_u *StepRunUpdateOne) ClearTokensUsed() *StepRunUpdateOne {
	_u.mutation.ClearTokensUsed()
	return _u
}

// SetSourcesAdded sets the "sources_added" field.
func (_u *StepRunUpdateOne) SetSourcesAdded(v int) *StepRunUpdateOne {
	_u.mutation.ResetSourcesAdded()
	_u.mutation.SetSourcesAdded(v)
	return _u
}

// SetNillableSourcesAdded sets the "sources_added" field if the given value is not nil.
func (_u *StepRunUpdateOne) SetNillableSourcesAdded(v *int) *StepRunUpdateOne {
	if v != nil {
		_u.SetSourcesAdded(*v)
	}
	return _u
}

// AddSourcesAdded adds value to the "sources_added" field.
func (_u *StepRunUpdateOne) AddSourcesAdded(v int) *StepRunUpdateOne {
	_u.mutation.AddSourcesAdded(v)
	return _u
}

// ClearSourcesAdded clears the value of the "sources_added" field.
func (_u *StepRunUpdateOne) ClearSourcesAdded() *StepRunUpdateOne {
	_u.mutation.ClearSourcesAdded()
	return _u
}

// SetContentBytes sets the "content_bytes" field.
func (_u *StepRunUpdateOne) SetContentBytes(v int) *StepRunUpdateOne {
	_u.mutation.ResetContentBytes()
	_u.mutation.SetContentBytes(v)
	return _u
}

// SetNillableContentBytes sets the "content_bytes" field if the given value is not nil.
func (_u *StepRunUpdateOne) SetNillableContentBytes(v *int) *StepRunUpdateOne {
	if v != nil {
		_u.SetContentBytes(*v)
	}
	return _u
}

// AddContentBytes adds value to the "content_bytes" field.
func (_u *StepRunUpdateOne) AddContentBytes(v int) *StepRunUpdateOne {
	_u.mutation.AddContentBytes(v)
	return _u
}

// ClearContentBytes clears the value of the "content_bytes" field.
func (_u *StepRunUpdateOne) ClearContentBytes() *StepRunUpdateOne {
	_u.mutation.ClearContentBytes()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *StepRunUpdateOne) SetErrorKind(v string) *StepRunUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *StepRunUpdateOne) SetNillableErrorKind(v *string) *StepRunUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *StepRunUpdateOne) ClearErrorKind() *StepRunUpdateOne {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *StepRunUpdateOne) SetErrorMessage(v string) *StepRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *StepRunUpdateOne) SetNillableErrorMessage(v *string) *StepRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *StepRunUpdateOne) ClearErrorMessage() *StepRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StepRunUpdateOne) SetCompletedAt(v time.Time) *StepRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StepRunUpdateOne) SetNillableCompletedAt(v *time.Time) *StepRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StepRunUpdateOne) ClearCompletedAt() *StepRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the StepRunMutation object of the builder.
func (_u *StepRunUpdateOne) Mutation() *StepRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the StepRunUpdate builder.
func (_u *StepRunUpdateOne) Where(ps ...predicate.StepRun) *StepRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StepRunUpdateOne) Select(field string, fields ...string) *StepRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StepRun entity.
func (_u *StepRunUpdateOne) Save(ctx context.Context) (*StepRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepRunUpdateOne) SaveX(ctx context.Context) *StepRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StepRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := steprun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StepRun.status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StepRun.job"`)
	}
	return nil
}

func (_u *StepRunUpdateOne) sqlSave(ctx context.Context) (_node *StepRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(steprun.Table, steprun.Columns, sqlgraph.NewFieldSpec(steprun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StepRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, steprun.FieldID)
		for _, f := range fields {
			if !steprun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != steprun.FieldID {
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
		_spec.SetField(steprun.FieldStepName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepIndex(); ok {
		_spec.SetField(steprun.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepIndex(); ok {
		_spec.AddField(steprun.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(steprun.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(steprun.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(steprun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(steprun.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(steprun.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(steprun.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(steprun.FieldTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(steprun.FieldTokensUsed, field.TypeInt64, value)
	}
	if _u.mutation.TokensUsedCleared() {
		_spec.ClearField(steprun.FieldTokensUsed, field.TypeInt64)
	}
	if value, ok := _u.mutation.SourcesAdded(); ok {
		_spec.SetField(steprun.FieldSourcesAdded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSourcesAdded(); ok {
		_spec.AddField(steprun.FieldSourcesAdded, field.TypeInt, value)
	}
	if _u.mutation.SourcesAddedCleared() {
		_spec.ClearField(steprun.FieldSourcesAdded, field.TypeInt)
	}
	if value, ok := _u.mutation.ContentBytes(); ok {
		_spec.SetField(steprun.FieldContentBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContentBytes(); ok {
		_spec.AddField(steprun.FieldContentBytes, field.TypeInt, value)
	}
	if _u.mutation.ContentBytesCleared() {
		_spec.ClearField(steprun.FieldContentBytes, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(steprun.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(steprun.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(steprun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(steprun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(steprun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(steprun.FieldCompletedAt, field.TypeTime)
	}
	_node = &StepRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{steprun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
