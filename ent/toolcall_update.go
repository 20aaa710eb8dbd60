// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loreweave/loreweave/ent/predicate"
	"github.com/loreweave/loreweave/ent/toolcall"
)

// ToolCallUpdate is the builder for updating ToolCall entities.
type ToolCallUpdate struct {
	config
	hooks    []Hook
	mutation *ToolCallMutation
}

// Where appends a list predicates to the ToolCallUpdate builder.
func (_u *ToolCallUpdate) Where(ps ...predicate.ToolCall) *ToolCallUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStepName sets the "step_name" field.
func (_u *ToolCallUpdate) SetStepName(v string) *ToolCallUpdate {
	_u.mutation.SetStepName(v)
	return _u
}

// SetNillableStepName sets the "step_name" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableStepName(v *string) *ToolCallUpdate {
	if v != nil {
		_u.SetStepName(*v)
	}
	return _u
}

// SetToolSet sets the "tool_set" field.
func (_u *ToolCallUpdate) SetToolSet(v string) *ToolCallUpdate {
	_u.mutation.SetToolSet(v)
	return _u
}

// SetNillableToolSet sets the "tool_set" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableToolSet(v *string) *ToolCallUpdate {
	if v != nil {
		_u.SetToolSet(*v)
	}
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *ToolCallUpdate) SetToolName(v string) *ToolCallUpdate {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableToolName(v *string) *ToolCallUpdate {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// SetArguments sets the "arguments" field.
func (_u *ToolCallUpdate) SetArguments(v map[string]interface{}) *ToolCallUpdate {
	_u.mutation.SetArguments(v)
	return _u
}

// ClearArguments clears the value of the "arguments" field.
func (_u *ToolCallUpdate) ClearArguments() *ToolCallUpdate {
	_u.mutation.ClearArguments()
	return _u
}

// SetResultText sets the "result_text" field.
func (_u *ToolCallUpdate) SetResultText(v string) *ToolCallUpdate {
	_u.mutation.SetResultText(v)
	return _u
}

// SetNillableResultText sets the "result_text" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableResultText(v *string) *ToolCallUpdate {
	if v != nil {
		_u.SetResultText(*v)
	}
	return _u
}

// ClearResultText clears the value of the "result_text" field.
func (_u *ToolCallUpdate) ClearResultText() *ToolCallUpdate {
	_u.mutation.ClearResultText()
	return _u
}

// SetIsError sets the "is_error" field.
func (_u *ToolCallUpdate) SetIsError(v bool) *ToolCallUpdate {
	_u.mutation.SetIsError(v)
	return _u
}

// SetNillableIsError sets the "is_error" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableIsError(v *bool) *ToolCallUpdate {
	if v != nil {
		_u.SetIsError(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ToolCallUpdate) SetDurationMs(v int) *ToolCallUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableDurationMs(v *int) *ToolCallUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ToolCallUpdate) AddDurationMs(v int) *ToolCallUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *ToolCallUpdate) ClearDurationMs() *ToolCallUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// Mutation returns the ToolCallMutation object of the builder.
func (_u *ToolCallUpdate) Mutation() *ToolCallMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ToolCallUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolCallUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ToolCallUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolCallUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolCallUpdate) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ToolCall.job"`)
	}
	return nil
}

func (_u *ToolCallUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(toolcall.Table, toolcall.Columns, sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StepName(); ok {
		_spec.SetField(toolcall.FieldStepName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolSet(); ok {
		_spec.SetField(toolcall.FieldToolSet, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(toolcall.FieldToolName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Arguments(); ok {
		_spec.SetField(toolcall.FieldArguments, field.TypeJSON, value)
	}
	if _u.mutation.ArgumentsCleared() {
		_spec.ClearField(toolcall.FieldArguments, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResultText(); ok {
		_spec.SetField(toolcall.FieldResultText, field.TypeString, value)
	}
	if _u.mutation.ResultTextCleared() {
		_spec.ClearField(toolcall.FieldResultText, field.TypeString)
	}
	if value, ok := _u.mutation.IsError(); ok {
		_spec.SetField(toolcall.FieldIsError, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(toolcall.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(toolcall.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(toolcall.FieldDurationMs, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolcall.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ToolCallUpdateOne is the builder for updating a single ToolCall entity.
type ToolCallUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ToolCallMutation
}

// SetStepName sets the "step_name" field.
func (_u *ToolCallUpdateOne) SetStepName(v string) *ToolCallUpdateOne {
	_u.mutation.SetStepName(v)
	return _u
}

// SetNillableStepName sets the "step_name" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableStepName(v *string) *ToolCallUpdateOne {
	if v != nil {
		_u.SetStepName(*v)
	}
	return _u
}

// SetToolSet sets the "tool_set" field.
func (_u *ToolCallUpdateOne) SetToolSet(v string) *ToolCallUpdateOne {
	_u.mutation.SetToolSet(v)
	return _u
}

// SetNillableToolSet sets the "tool_set" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableToolSet(v *string) *ToolCallUpdateOne {
	if v != nil {
		_u.SetToolSet(*v)
	}
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *ToolCallUpdateOne) SetToolName(v string) *ToolCallUpdateOne {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableToolName(v *string) *ToolCallUpdateOne {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// SetArguments sets the "arguments" field.
func (_u *ToolCallUpdateOne) SetArguments(v map[string]interface{}) *ToolCallUpdateOne {
	_u.mutation.SetArguments(v)
	return _u
}

// ClearArguments clears the value of the "arguments" field.
func (_u *ToolCallUpdateOne) ClearArguments() *ToolCallUpdateOne {
	_u.mutation.ClearArguments()
	return _u
}

// SetResultText sets the "result_text" field.
func (_u *ToolCallUpdateOne) SetResultText(v string) *ToolCallUpdateOne {
	_u.mutation.SetResultText(v)
	return _u
}

// SetNillableResultText sets the "result_text" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableResultText(v *string) *ToolCallUpdateOne {
	if v != nil {
		_u.SetResultText(*v)
	}
	return _u
}

// ClearResultText clears the value of the "result_text" field.
func (_u *ToolCallUpdateOne) ClearResultText() *ToolCallUpdateOne {
	_u.mutation.ClearResultText()
	return _u
}

// SetIsError sets the "is_error" field.
func (_u *ToolCallUpdateOne) SetIsError(v bool) *ToolCallUpdateOne {
	_u.mutation.SetIsError(v)
	return _u
}

// SetNillableIsError sets the "is_error" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableIsError(v *bool) *ToolCallUpdateOne {
	if v != nil {
		_u.SetIsError(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ToolCallUpdateOne) SetDurationMs(v int) *ToolCallUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableDurationMs(v *int) *ToolCallUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ToolCallUpdateOne) AddDurationMs(v int) *ToolCallUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *ToolCallUpdateOne) ClearDurationMs() *ToolCallUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// Mutation returns the ToolCallMutation object of the builder.
func (_u *ToolCallUpdateOne) Mutation() *ToolCallMutation {
	return _u.mutation
}

// Where appends a list predicates to the ToolCallUpdate builder.
func (_u *ToolCallUpdateOne) Where(ps ...predicate.ToolCall) *ToolCallUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ToolCallUpdateOne) Select(field string, fields ...string) *ToolCallUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ToolCall entity.
func (_u *ToolCallUpdateOne) Save(ctx context.Context) (*ToolCall, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolCallUpdateOne) SaveX(ctx context.Context) *ToolCall {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ToolCallUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolCallUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolCallUpdateOne) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ToolCall.job"`)
	}
	return nil
}

func (_u *ToolCallUpdateOne) sqlSave(ctx context.Context) (_node *ToolCall, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(toolcall.Table, toolcall.Columns, sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ToolCall.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, toolcall.FieldID)
		for _, f := range fields {
			if !toolcall.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != toolcall.FieldID {
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
		_spec.SetField(toolcall.FieldStepName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolSet(); ok {
		_spec.SetField(toolcall.FieldToolSet, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(toolcall.FieldToolName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Arguments(); ok {
		_spec.SetField(toolcall.FieldArguments, field.TypeJSON, value)
	}
	if _u.mutation.ArgumentsCleared() {
		_spec.ClearField(toolcall.FieldArguments, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResultText(); ok {
		_spec.SetField(toolcall.FieldResultText, field.TypeString, value)
	}
	if _u.mutation.ResultTextCleared() {
		_spec.ClearField(toolcall.FieldResultText, field.TypeString)
	}
	if value, ok := _u.mutation.IsError(); ok {
		_spec.SetField(toolcall.FieldIsError, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(toolcall.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(toolcall.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(toolcall.FieldDurationMs, field.TypeInt)
	}
	_node = &ToolCall{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolcall.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
