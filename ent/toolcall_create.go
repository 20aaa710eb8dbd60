// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loreweave/loreweave/ent/researchjob"
	"github.com/loreweave/loreweave/ent/toolcall"
)

// ToolCallCreate is the builder for creating a ToolCall entity.
type ToolCallCreate struct {
	config
	mutation *ToolCallMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetJobID sets the "job_id" field.
func (_c *ToolCallCreate) SetJobID(v string) *ToolCallCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetStepName sets the "step_name" field.
func (_c *ToolCallCreate) SetStepName(v string) *ToolCallCreate {
	_c.mutation.SetStepName(v)
	return _c
}

// SetToolSet sets the "tool_set" field.
func (_c *ToolCallCreate) SetToolSet(v string) *ToolCallCreate {
	_c.mutation.SetToolSet(v)
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *ToolCallCreate) SetToolName(v string) *ToolCallCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetArguments sets the "arguments" field.
func (_c *ToolCallCreate) SetArguments(v map[string]interface{}) *ToolCallCreate {
	_c.mutation.SetArguments(v)
	return _c
}

// SetResultText sets the "result_text" field.
func (_c *ToolCallCreate) SetResultText(v string) *ToolCallCreate {
	_c.mutation.SetResultText(v)
	return _c
}

// SetNillableResultText sets the "result_text" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableResultText(v *string) *ToolCallCreate {
	if v != nil {
		_c.SetResultText(*v)
	}
	return _c
}

// SetIsError sets the "is_error" field.
func (_c *ToolCallCreate) SetIsError(v bool) *ToolCallCreate {
	_c.mutation.SetIsError(v)
	return _c
}

// SetNillableIsError sets the "is_error" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableIsError(v *bool) *ToolCallCreate {
	if v != nil {
		_c.SetIsError(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *ToolCallCreate) SetDurationMs(v int) *ToolCallCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableDurationMs(v *int) *ToolCallCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ToolCallCreate) SetCreatedAt(v time.Time) *ToolCallCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableCreatedAt(v *time.Time) *ToolCallCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ToolCallCreate) SetID(v string) *ToolCallCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetJob sets the "job" edge to the ResearchJob entity.
func (_c *ToolCallCreate) SetJob(v *ResearchJob) *ToolCallCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the ToolCallMutation object of the builder.
func (_c *ToolCallCreate) Mutation() *ToolCallMutation {
	return _c.mutation
}

// Save creates the ToolCall in the database.
func (_c *ToolCallCreate) Save(ctx context.Context) (*ToolCall, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ToolCallCreate) SaveX(ctx context.Context) *ToolCall {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolCallCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolCallCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ToolCallCreate) defaults() {
	if _, ok := _c.mutation.IsError(); !ok {
		v := toolcall.DefaultIsError
		_c.mutation.SetIsError(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := toolcall.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ToolCallCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "ToolCall.job_id"`)}
	}
	if _, ok := _c.mutation.StepName(); !ok {
		return &ValidationError{Name: "step_name", err: errors.New(`ent: missing required field "ToolCall.step_name"`)}
	}
	if _, ok := _c.mutation.ToolSet(); !ok {
		return &ValidationError{Name: "tool_set", err: errors.New(`ent: missing required field "ToolCall.tool_set"`)}
	}
	if _, ok := _c.mutation.ToolName(); !ok {
		return &ValidationError{Name: "tool_name", err: errors.New(`ent: missing required field "ToolCall.tool_name"`)}
	}
	if _, ok := _c.mutation.IsError(); !ok {
		return &ValidationError{Name: "is_error", err: errors.New(`ent: missing required field "ToolCall.is_error"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ToolCall.created_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "ToolCall.job"`)}
	}
	return nil
}

func (_c *ToolCallCreate) sqlSave(ctx context.Context) (*ToolCall, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ToolCall.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ToolCallCreate) createSpec() (*ToolCall, *sqlgraph.CreateSpec) {
	var (
		_node = &ToolCall{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(toolcall.Table, sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StepName(); ok {
		_spec.SetField(toolcall.FieldStepName, field.TypeString, value)
		_node.StepName = value
	}
	if value, ok := _c.mutation.ToolSet(); ok {
		_spec.SetField(toolcall.FieldToolSet, field.TypeString, value)
		_node.ToolSet = value
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(toolcall.FieldToolName, field.TypeString, value)
		_node.ToolName = value
	}
	if value, ok := _c.mutation.Arguments(); ok {
		_spec.SetField(toolcall.FieldArguments, field.TypeJSON, value)
		_node.Arguments = value
	}
	if value, ok := _c.mutation.ResultText(); ok {
		_spec.SetField(toolcall.FieldResultText, field.TypeString, value)
		_node.ResultText = &value
	}
	if value, ok := _c.mutation.IsError(); ok {
		_spec.SetField(toolcall.FieldIsError, field.TypeBool, value)
		_node.IsError = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(toolcall.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(toolcall.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   toolcall.JobTable,
			Columns: []string{toolcall.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchjob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ToolCall.Create().
//		SetJobID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ToolCallUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *ToolCallCreate) OnConflict(opts ...sql.ConflictOption) *ToolCallUpsertOne {
	_c.conflict = opts
	return &ToolCallUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ToolCall.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ToolCallCreate) OnConflictColumns(columns ...string) *ToolCallUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ToolCallUpsertOne{
		create: _c,
	}
}

type (
	// ToolCallUpsertOne is the builder for "upsert"-ing
	//  one ToolCall node.
	ToolCallUpsertOne struct {
		create *ToolCallCreate
	}

	// ToolCallUpsert is the "OnConflict" setter.
	ToolCallUpsert struct {
		*sql.UpdateSet
	}
)

// SetStepName sets the "step_name" field.
func (u *ToolCallUpsert) SetStepName(v string) *ToolCallUpsert {
	u.Set(toolcall.FieldStepName, v)
	return u
}

// UpdateStepName sets the "step_name" field to the value that was provided on create.
func (u *ToolCallUpsert) UpdateStepName() *ToolCallUpsert {
	u.SetExcluded(toolcall.FieldStepName)
	return u
}

// SetToolSet sets the "tool_set" field.
func (u *ToolCallUpsert) SetToolSet(v string) *ToolCallUpsert {
	u.Set(toolcall.FieldToolSet, v)
	return u
}

// UpdateToolSet sets the "tool_set" field to the value that was provided on create.
func (u *ToolCallUpsert) UpdateToolSet() *ToolCallUpsert {
	u.SetExcluded(toolcall.FieldToolSet)
	return u
}

// SetToolName sets the "tool_name" field.
func (u *ToolCallUpsert) SetToolName(v string) *ToolCallUpsert {
	u.Set(toolcall.FieldToolName, v)
	return u
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *ToolCallUpsert) UpdateToolName() *ToolCallUpsert {
	u.SetExcluded(toolcall.FieldToolName)
	return u
}

// SetArguments sets the "arguments" field.
func (u *ToolCallUpsert) SetArguments(v map[string]interface{}) *ToolCallUpsert {
	u.Set(toolcall.FieldArguments, v)
	return u
}

// UpdateArguments sets the "arguments" field to the value that was provided on create.
func (u *ToolCallUpsert) UpdateArguments() *ToolCallUpsert {
	u.SetExcluded(toolcall.FieldArguments)
	return u
}

// ClearArguments clears the value of the "arguments" field.
func (u *ToolCallUpsert) ClearArguments() *ToolCallUpsert {
	u.SetNull(toolcall.FieldArguments)
	return u
}

// SetResultText sets the "result_text" field.
func (u *ToolCallUpsert) SetResultText(v string) *ToolCallUpsert {
	u.Set(toolcall.FieldResultText, v)
	return u
}

// UpdateResultText sets the "result_text" field to the value that was provided on create.
func (u *ToolCallUpsert) UpdateResultText() *ToolCallUpsert {
	u.SetExcluded(toolcall.FieldResultText)
	return u
}

// ClearResultText clears the value of the "result_text" field.
func (u *ToolCallUpsert) ClearResultText() *ToolCallUpsert {
	u.SetNull(toolcall.FieldResultText)
	return u
}

// SetIsError sets the "is_error" field.
func (u *ToolCallUpsert) SetIsError(v bool) *ToolCallUpsert {
	u.Set(toolcall.FieldIsError, v)
	return u
}

// UpdateIsError sets the "is_error" field to the value that was provided on create.
func (u *ToolCallUpsert) UpdateIsError() *ToolCallUpsert {
	u.SetExcluded(toolcall.FieldIsError)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *ToolCallUpsert) SetDurationMs(v int) *ToolCallUpsert {
	u.Set(toolcall.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *ToolCallUpsert) UpdateDurationMs() *ToolCallUpsert {
	u.SetExcluded(toolcall.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *ToolCallUpsert) AddDurationMs(v int) *ToolCallUpsert {
	u.Add(toolcall.FieldDurationMs, v)
	return u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *ToolCallUpsert) ClearDurationMs() *ToolCallUpsert {
	u.SetNull(toolcall.FieldDurationMs)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ToolCall.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(toolcall.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ToolCallUpsertOne) UpdateNewValues() *ToolCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(toolcall.FieldID)
		}
		if _, exists := u.create.mutation.JobID(); exists {
			s.SetIgnore(toolcall.FieldJobID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(toolcall.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ToolCall.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ToolCallUpsertOne) Ignore() *ToolCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ToolCallUpsertOne) DoNothing() *ToolCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ToolCallCreate.OnConflict
// documentation for more info.
func (u *ToolCallUpsertOne) Update(set func(*ToolCallUpsert)) *ToolCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ToolCallUpsert{UpdateSet: update})
	}))
	return u
}

// SetStepName sets the "step_name" field.
func (u *ToolCallUpsertOne) SetStepName(v string) *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetStepName(v)
	})
}

// UpdateStepName sets the "step_name" field to the value that was provided on create.
func (u *ToolCallUpsertOne) UpdateStepName() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateStepName()
	})
}

// SetToolSet sets the "tool_set" field.
func (u *ToolCallUpsertOne) SetToolSet(v string) *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetToolSet(v)
	})
}

// UpdateToolSet sets the "tool_set" field to the value that was provided on create.
func (u *ToolCallUpsertOne) UpdateToolSet() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateToolSet()
	})
}

// SetToolName sets the "tool_name" field.
func (u *ToolCallUpsertOne) SetToolName(v string) *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetToolName(v)
	})
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *ToolCallUpsertOne) UpdateToolName() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateToolName()
	})
}

// SetArguments sets the "arguments" field.
func (u *ToolCallUpsertOne) SetArguments(v map[string]interface{}) *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetArguments(v)
	})
}

// UpdateArguments sets the "arguments" field to the value that was provided on create.
func (u *ToolCallUpsertOne) UpdateArguments() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateArguments()
	})
}

// ClearArguments clears the value of the "arguments" field.
func (u *ToolCallUpsertOne) ClearArguments() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.ClearArguments()
	})
}

// SetResultText sets the "result_text" field.
func (u *ToolCallUpsertOne) SetResultText(v string) *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetResultText(v)
	})
}

// UpdateResultText sets the "result_text" field to the value that was provided on create.
func (u *ToolCallUpsertOne) UpdateResultText() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateResultText()
	})
}

// ClearResultText clears the value of the "result_text" field.
func (u *ToolCallUpsertOne) ClearResultText() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.ClearResultText()
	})
}

// SetIsError sets the "is_error" field.
func (u *ToolCallUpsertOne) SetIsError(v bool) *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetIsError(v)
	})
}

// UpdateIsError sets the "is_error" field to the value that was provided on create.
func (u *ToolCallUpsertOne) UpdateIsError() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateIsError()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *ToolCallUpsertOne) SetDurationMs(v int) *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *ToolCallUpsertOne) AddDurationMs(v int) *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *ToolCallUpsertOne) UpdateDurationMs() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *ToolCallUpsertOne) ClearDurationMs() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.ClearDurationMs()
	})
}

// Exec executes the query.
func (u *ToolCallUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ToolCallCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ToolCallUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ToolCallUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ToolCallUpsertOne.ID is not supported by MySQL driver. Use ToolCallUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ToolCallUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ToolCallCreateBulk is the builder for creating many ToolCall entities in bulk.
type ToolCallCreateBulk struct {
	config
	err      error
	builders []*ToolCallCreate
	conflict []sql.ConflictOption
}

// Save creates the ToolCall entities in the database.
func (_c *ToolCallCreateBulk) Save(ctx context.Context) ([]*ToolCall, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ToolCall, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ToolCallMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ToolCallCreateBulk) SaveX(ctx context.Context) []*ToolCall {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolCallCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolCallCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ToolCall.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ToolCallUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *ToolCallCreateBulk) OnConflict(opts ...sql.ConflictOption) *ToolCallUpsertBulk {
	_c.conflict = opts
	return &ToolCallUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ToolCall.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ToolCallCreateBulk) OnConflictColumns(columns ...string) *ToolCallUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ToolCallUpsertBulk{
		create: _c,
	}
}

// ToolCallUpsertBulk is the builder for "upsert"-ing
// a bulk of ToolCall nodes.
type ToolCallUpsertBulk struct {
	create *ToolCallCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ToolCall.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(toolcall.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ToolCallUpsertBulk) UpdateNewValues() *ToolCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(toolcall.FieldID)
			}
			if _, exists := b.mutation.JobID(); exists {
				s.SetIgnore(toolcall.FieldJobID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(toolcall.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ToolCall.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ToolCallUpsertBulk) Ignore() *ToolCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ToolCallUpsertBulk) DoNothing() *ToolCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ToolCallCreateBulk.OnConflict
// documentation for more info.
func (u *ToolCallUpsertBulk) Update(set func(*ToolCallUpsert)) *ToolCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ToolCallUpsert{UpdateSet: update})
	}))
	return u
}

// SetStepName sets the "step_name" field.
func (u *ToolCallUpsertBulk) SetStepName(v string) *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetStepName(v)
	})
}

// UpdateStepName sets the "step_name" field to the value that was provided on create.
func (u *ToolCallUpsertBulk) UpdateStepName() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateStepName()
	})
}

// SetToolSet sets the "tool_set" field.
func (u *ToolCallUpsertBulk) SetToolSet(v string) *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetToolSet(v)
	})
}

// UpdateToolSet sets the "tool_set" field to the value that was provided on create.
func (u *ToolCallUpsertBulk) UpdateToolSet() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateToolSet()
	})
}

// SetToolName sets the "tool_name" field.
func (u *ToolCallUpsertBulk) SetToolName(v string) *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetToolName(v)
	})
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *ToolCallUpsertBulk) UpdateToolName() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateToolName()
	})
}

// SetArguments sets the "arguments" field.
func (u *ToolCallUpsertBulk) SetArguments(v map[string]interface{}) *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetArguments(v)
	})
}

// UpdateArguments sets the "arguments" field to the value that was provided on create.
func (u *ToolCallUpsertBulk) UpdateArguments() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateArguments()
	})
}

// ClearArguments clears the value of the "arguments" field.
func (u *ToolCallUpsertBulk) ClearArguments() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.ClearArguments()
	})
}

// SetResultText sets the "result_text" field.
func (u *ToolCallUpsertBulk) SetResultText(v string) *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetResultText(v)
	})
}

// UpdateResultText sets the "result_text" field to the value that was provided on create.
func (u *ToolCallUpsertBulk) UpdateResultText() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateResultText()
	})
}

// ClearResultText clears the value of the "result_text" field.
func (u *ToolCallUpsertBulk) ClearResultText() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.ClearResultText()
	})
}

// SetIsError sets the "is_error" field.
func (u *ToolCallUpsertBulk) SetIsError(v bool) *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetIsError(v)
	})
}

// UpdateIsError sets the "is_error" field to the value that was provided on create.
func (u *ToolCallUpsertBulk) UpdateIsError() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateIsError()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *ToolCallUpsertBulk) SetDurationMs(v int) *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *ToolCallUpsertBulk) AddDurationMs(v int) *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *ToolCallUpsertBulk) UpdateDurationMs() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *ToolCallUpsertBulk) ClearDurationMs() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.ClearDurationMs()
	})
}

// Exec executes the query.
func (u *ToolCallUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ToolCallCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ToolCallCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ToolCallUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
