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
	"github.com/loreweave/loreweave/ent/llmcall"
	"github.com/loreweave/loreweave/ent/researchjob"
)

// LLMCallCreate is the builder for creating a LLMCall entity.
type LLMCallCreate struct {
	config
	mutation *LLMCallMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetJobID sets the "job_id" field.
func (_c *LLMCallCreate) SetJobID(v string) *LLMCallCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetStepName sets the "step_name" field.
func (_c *LLMCallCreate) SetStepName(v string) *LLMCallCreate {
	_c.mutation.SetStepName(v)
	return _c
}

// SetPurpose sets the "purpose" field.
func (_c *LLMCallCreate) SetPurpose(v llmcall.Purpose) *LLMCallCreate {
	_c.mutation.SetPurpose(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *LLMCallCreate) SetProvider(v string) *LLMCallCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *LLMCallCreate) SetModel(v string) *LLMCallCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_c *LLMCallCreate) SetPromptTokens(v int64) *LLMCallCreate {
	_c.mutation.SetPromptTokens(v)
	return _c
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_c *LLMCallCreate) SetNillablePromptTokens(v *int64) *LLMCallCreate {
	if v != nil {
		_c.SetPromptTokens(*v)
	}
	return _c
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_c *LLMCallCreate) SetCompletionTokens(v int64) *LLMCallCreate {
	_c.mutation.SetCompletionTokens(v)
	return _c
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_c *LLMCallCreate) SetNillableCompletionTokens(v *int64) *LLMCallCreate {
	if v != nil {
		_c.SetCompletionTokens(*v)
	}
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *LLMCallCreate) SetTotalTokens(v int64) *LLMCallCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_c *LLMCallCreate) SetNillableTotalTokens(v *int64) *LLMCallCreate {
	if v != nil {
		_c.SetTotalTokens(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *LLMCallCreate) SetDurationMs(v int) *LLMCallCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *LLMCallCreate) SetNillableDurationMs(v *int) *LLMCallCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *LLMCallCreate) SetStatus(v llmcall.Status) *LLMCallCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *LLMCallCreate) SetNillableStatus(v *llmcall.Status) *LLMCallCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *LLMCallCreate) SetErrorMessage(v string) *LLMCallCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *LLMCallCreate) SetNillableErrorMessage(v *string) *LLMCallCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LLMCallCreate) SetCreatedAt(v time.Time) *LLMCallCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LLMCallCreate) SetNillableCreatedAt(v *time.Time) *LLMCallCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LLMCallCreate) SetID(v string) *LLMCallCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetJob sets the "job" edge to the ResearchJob entity.
func (_c *LLMCallCreate) SetJob(v *ResearchJob) *LLMCallCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the LLMCallMutation object of the builder.
func (_c *LLMCallCreate) Mutation() *LLMCallMutation {
	return _c.mutation
}

// Save creates the LLMCall in the database.
func (_c *LLMCallCreate) Save(ctx context.Context) (*LLMCall, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LLMCallCreate) SaveX(ctx context.Context) *LLMCall {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMCallCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMCallCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LLMCallCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := llmcall.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := llmcall.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LLMCallCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "LLMCall.job_id"`)}
	}
	if _, ok := _c.mutation.StepName(); !ok {
		return &ValidationError{Name: "step_name", err: errors.New(`ent: missing required field "LLMCall.step_name"`)}
	}
	if _, ok := _c.mutation.Purpose(); !ok {
		return &ValidationError{Name: "purpose", err: errors.New(`ent: missing required field "LLMCall.purpose"`)}
	}
	if v, ok := _c.mutation.Purpose(); ok {
		if err := llmcall.PurposeValidator(v); err != nil {
			return &ValidationError{Name: "purpose", err: fmt.Errorf(`ent: validator failed for field "LLMCall.purpose": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "LLMCall.provider"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "LLMCall.model"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "LLMCall.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := llmcall.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LLMCall.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LLMCall.created_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "LLMCall.job"`)}
	}
	return nil
}

func (_c *LLMCallCreate) sqlSave(ctx context.Context) (*LLMCall, error) {
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
			return nil, fmt.Errorf("unexpected LLMCall.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LLMCallCreate) createSpec() (*LLMCall, *sqlgraph.CreateSpec) {
	var (
		_node = &LLMCall{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(llmcall.Table, sqlgraph.NewFieldSpec(llmcall.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StepName(); ok {
		_spec.SetField(llmcall.FieldStepName, field.TypeString, value)
		_node.StepName = value
	}
	if value, ok := _c.mutation.Purpose(); ok {
		_spec.SetField(llmcall.FieldPurpose, field.TypeEnum, value)
		_node.Purpose = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(llmcall.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(llmcall.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.PromptTokens(); ok {
		_spec.SetField(llmcall.FieldPromptTokens, field.TypeInt64, value)
		_node.PromptTokens = &value
	}
	if value, ok := _c.mutation.CompletionTokens(); ok {
		_spec.SetField(llmcall.FieldCompletionTokens, field.TypeInt64, value)
		_node.CompletionTokens = &value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(llmcall.FieldTotalTokens, field.TypeInt64, value)
		_node.TotalTokens = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(llmcall.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(llmcall.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(llmcall.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(llmcall.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   llmcall.JobTable,
			Columns: []string{llmcall.JobColumn},
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
//	client.LLMCall.Create().
//		SetJobID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LLMCallUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *LLMCallCreate) OnConflict(opts ...sql.ConflictOption) *LLMCallUpsertOne {
	_c.conflict = opts
	return &LLMCallUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LLMCall.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LLMCallCreate) OnConflictColumns(columns ...string) *LLMCallUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LLMCallUpsertOne{
		create: _c,
	}
}

type (
	// LLMCallUpsertOne is the builder for "upsert"-ing
	//  one LLMCall node.
	LLMCallUpsertOne struct {
		create *LLMCallCreate
	}

	// LLMCallUpsert is the "OnConflict" setter.
	LLMCallUpsert struct {
		*sql.UpdateSet
	}
)

// SetStepName sets the "step_name" field.
func (u *LLMCallUpsert) SetStepName(v string) *LLMCallUpsert {
	u.Set(llmcall.FieldStepName, v)
	return u
}

// UpdateStepName sets the "step_name" field to the value that was provided on create.
func (u *LLMCallUpsert) UpdateStepName() *LLMCallUpsert {
	u.SetExcluded(llmcall.FieldStepName)
	return u
}

// SetPurpose sets the "purpose" field.
func (u *LLMCallUpsert) SetPurpose(v llmcall.Purpose) *LLMCallUpsert {
	u.Set(llmcall.FieldPurpose, v)
	return u
}

// UpdatePurpose sets the "purpose" field to the value that was provided on create.
func (u *LLMCallUpsert) UpdatePurpose() *LLMCallUpsert {
	u.SetExcluded(llmcall.FieldPurpose)
	return u
}

// SetProvider sets the "provider" field.
func (u *LLMCallUpsert) SetProvider(v string) *LLMCallUpsert {
	u.Set(llmcall.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *LLMCallUpsert) UpdateProvider() *LLMCallUpsert {
	u.SetExcluded(llmcall.FieldProvider)
	return u
}

// SetModel sets the "model" field.
func (u *LLMCallUpsert) SetModel(v string) *LLMCallUpsert {
	u.Set(llmcall.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *LLMCallUpsert) UpdateModel() *LLMCallUpsert {
	u.SetExcluded(llmcall.FieldModel)
	return u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (u *LLMCallUpsert) SetPromptTokens(v int64) *LLMCallUpsert {
	u.Set(llmcall.FieldPromptTokens, v)
	return u
}

// UpdatePromptTokens sets the "prompt_tokens" field to the value that was provided on create.
func (u *LLMCallUpsert) UpdatePromptTokens() *LLMCallUpsert {
	u.SetExcluded(llmcall.FieldPromptTokens)
	return u
}

// AddPromptTokens adds v to the "prompt_tokens" field.
func (u *LLMCallUpsert) AddPromptTokens(v int64) *LLMCallUpsert {
	u.Add(llmcall.FieldPromptTokens, v)
	return u
}

// ClearPromptTokens clears the value of the "prompt_tokens" field.
func (u *LLMCallUpsert) ClearPromptTokens() *LLMCallUpsert {
	u.SetNull(llmcall.FieldPromptTokens)
	return u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (u *LLMCallUpsert) SetCompletionTokens(v int64) *LLMCallUpsert {
	u.Set(llmcall.FieldCompletionTokens, v)
	return u
}

// UpdateCompletionTokens sets the "completion_tokens" field to the value that was provided on create.
func (u *LLMCallUpsert) UpdateCompletionTokens() *LLMCallUpsert {
	u.SetExcluded(llmcall.FieldCompletionTokens)
	return u
}

// AddCompletionTokens adds v to the "completion_tokens" field.
func (u *LLMCallUpsert) AddCompletionTokens(v int64) *LLMCallUpsert {
	u.Add(llmcall.FieldCompletionTokens, v)
	return u
}

// ClearCompletionTokens clears the value of the "completion_tokens" field.
func (u *LLMCallUpsert) ClearCompletionTokens() *LLMCallUpsert {
	u.SetNull(llmcall.FieldCompletionTokens)
	return u
}

// SetTotalTokens sets the "total_tokens" field.
func (u *LLMCallUpsert) SetTotalTokens(v int64) *LLMCallUpsert {
	u.Set(llmcall.FieldTotalTokens, v)
	return u
}

// UpdateTotalTokens sets the "total_tokens" field to the value that was provided on create.
func (u *LLMCallUpsert) UpdateTotalTokens() *LLMCallUpsert {
	u.SetExcluded(llmcall.FieldTotalTokens)
	return u
}

// AddTotalTokens adds v to the "total_tokens" field.
func (u *LLMCallUpsert) AddTotalTokens(v int64) *LLMCallUpsert {
	u.Add(llmcall.FieldTotalTokens, v)
	return u
}

// ClearTotalTokens clears the value of the "total_tokens" field.
func (u *LLMCallUpsert) ClearTotalTokens() *LLMCallUpsert {
	u.SetNull(llmcall.FieldTotalTokens)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *LLMCallUpsert) SetDurationMs(v int) *LLMCallUpsert {
	u.Set(llmcall.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *LLMCallUpsert) UpdateDurationMs() *LLMCallUpsert {
	u.SetExcluded(llmcall.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *LLMCallUpsert) AddDurationMs(v int) *LLMCallUpsert {
	u.Add(llmcall.FieldDurationMs, v)
	return u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *LLMCallUpsert) ClearDurationMs() *LLMCallUpsert {
	u.SetNull(llmcall.FieldDurationMs)
	return u
}

// SetStatus sets the "status" field.
func (u *LLMCallUpsert) SetStatus(v llmcall.Status) *LLMCallUpsert {
	u.Set(llmcall.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *LLMCallUpsert) UpdateStatus() *LLMCallUpsert {
	u.SetExcluded(llmcall.FieldStatus)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *LLMCallUpsert) SetErrorMessage(v string) *LLMCallUpsert {
	u.Set(llmcall.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *LLMCallUpsert) UpdateErrorMessage() *LLMCallUpsert {
	u.SetExcluded(llmcall.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *LLMCallUpsert) ClearErrorMessage() *LLMCallUpsert {
	u.SetNull(llmcall.FieldErrorMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.LLMCall.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(llmcall.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LLMCallUpsertOne) UpdateNewValues() *LLMCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(llmcall.FieldID)
		}
		if _, exists := u.create.mutation.JobID(); exists {
			s.SetIgnore(llmcall.FieldJobID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(llmcall.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LLMCall.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LLMCallUpsertOne) Ignore() *LLMCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LLMCallUpsertOne) DoNothing() *LLMCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LLMCallCreate.OnConflict
// documentation for more info.
func (u *LLMCallUpsertOne) Update(set func(*LLMCallUpsert)) *LLMCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LLMCallUpsert{UpdateSet: update})
	}))
	return u
}

// SetStepName sets the "step_name" field.
func (u *LLMCallUpsertOne) SetStepName(v string) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetStepName(v)
	})
}

// UpdateStepName sets the "step_name" field to the value that was provided on create.
func (u *LLMCallUpsertOne) UpdateStepName() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateStepName()
	})
}

// SetPurpose sets the "purpose" field.
func (u *LLMCallUpsertOne) SetPurpose(v llmcall.Purpose) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetPurpose(v)
	})
}

// UpdatePurpose sets the "purpose" field to the value that was provided on create.
func (u *LLMCallUpsertOne) UpdatePurpose() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdatePurpose()
	})
}

// SetProvider sets the "provider" field.
func (u *LLMCallUpsertOne) SetProvider(v string) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *LLMCallUpsertOne) UpdateProvider() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateProvider()
	})
}

// SetModel sets the "model" field.
func (u *LLMCallUpsertOne) SetModel(v string) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *LLMCallUpsertOne) UpdateModel() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateModel()
	})
}

// SetPromptTokens sets the "prompt_tokens" field.
func (u *LLMCallUpsertOne) SetPromptTokens(v int64) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetPromptTokens(v)
	})
}

// AddPromptTokens adds v to the "prompt_tokens" field.
func (u *LLMCallUpsertOne) AddPromptTokens(v int64) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.AddPromptTokens(v)
	})
}

// UpdatePromptTokens sets the "prompt_tokens" field to the value that was provided on create.
func (u *LLMCallUpsertOne) UpdatePromptTokens() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdatePromptTokens()
	})
}

// ClearPromptTokens clears the value of the "prompt_tokens" field.
func (u *LLMCallUpsertOne) ClearPromptTokens() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.ClearPromptTokens()
	})
}

// SetCompletionTokens sets the "completion_tokens" field.
func (u *LLMCallUpsertOne) SetCompletionTokens(v int64) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetCompletionTokens(v)
	})
}

// AddCompletionTokens adds v to the "completion_tokens" field.
func (u *LLMCallUpsertOne) AddCompletionTokens(v int64) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.AddCompletionTokens(v)
	})
}

// UpdateCompletionTokens sets the "completion_tokens" field to the value that was provided on create.
func (u *LLMCallUpsertOne) UpdateCompletionTokens() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateCompletionTokens()
	})
}

// ClearCompletionTokens clears the value of the "completion_tokens" field.
func (u *LLMCallUpsertOne) ClearCompletionTokens() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.ClearCompletionTokens()
	})
}

// SetTotalTokens sets the "total_tokens" field.
func (u *LLMCallUpsertOne) SetTotalTokens(v int64) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetTotalTokens(v)
	})
}

// AddTotalTokens adds v to the "total_tokens" field.
func (u *LLMCallUpsertOne) AddTotalTokens(v int64) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.AddTotalTokens(v)
	})
}

// UpdateTotalTokens sets the "total_tokens" field to the value that was provided on create.
func (u *LLMCallUpsertOne) UpdateTotalTokens() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateTotalTokens()
	})
}

// ClearTotalTokens clears the value of the "total_tokens" field.
func (u *LLMCallUpsertOne) ClearTotalTokens() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.ClearTotalTokens()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *LLMCallUpsertOne) SetDurationMs(v int) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *LLMCallUpsertOne) AddDurationMs(v int) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *LLMCallUpsertOne) UpdateDurationMs() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *LLMCallUpsertOne) ClearDurationMs() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.ClearDurationMs()
	})
}

// SetStatus sets the "status" field.
func (u *LLMCallUpsertOne) SetStatus(v llmcall.Status) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *LLMCallUpsertOne) UpdateStatus() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *LLMCallUpsertOne) SetErrorMessage(v string) *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *LLMCallUpsertOne) UpdateErrorMessage() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *LLMCallUpsertOne) ClearErrorMessage() *LLMCallUpsertOne {
	return u.Update(func(s *LLMCallUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *LLMCallUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LLMCallCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LLMCallUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LLMCallUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: LLMCallUpsertOne.ID is not supported by MySQL driver. Use LLMCallUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LLMCallUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LLMCallCreateBulk is the builder for creating many LLMCall entities in bulk.
type LLMCallCreateBulk struct {
	config
	err      error
	builders []*LLMCallCreate
	conflict []sql.ConflictOption
}

// Save creates the LLMCall entities in the database.
func (_c *LLMCallCreateBulk) Save(ctx context.Context) ([]*LLMCall, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LLMCall, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LLMCallMutation)
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
func (_c *LLMCallCreateBulk) SaveX(ctx context.Context) []*LLMCall {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMCallCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMCallCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LLMCall.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LLMCallUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *LLMCallCreateBulk) OnConflict(opts ...sql.ConflictOption) *LLMCallUpsertBulk {
	_c.conflict = opts
	return &LLMCallUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LLMCall.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LLMCallCreateBulk) OnConflictColumns(columns ...string) *LLMCallUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LLMCallUpsertBulk{
		create: _c,
	}
}

// LLMCallUpsertBulk is the builder for "upsert"-ing
// a bulk of LLMCall nodes.
type LLMCallUpsertBulk struct {
	create *LLMCallCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LLMCall.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(llmcall.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LLMCallUpsertBulk) UpdateNewValues() *LLMCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(llmcall.FieldID)
			}
			if _, exists := b.mutation.JobID(); exists {
				s.SetIgnore(llmcall.FieldJobID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(llmcall.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LLMCall.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LLMCallUpsertBulk) Ignore() *LLMCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LLMCallUpsertBulk) DoNothing() *LLMCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LLMCallCreateBulk.OnConflict
// documentation for more info.
func (u *LLMCallUpsertBulk) Update(set func(*LLMCallUpsert)) *LLMCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LLMCallUpsert{UpdateSet: update})
	}))
	return u
}

// SetStepName sets the "step_name" field.
func (u *LLMCallUpsertBulk) SetStepName(v string) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetStepName(v)
	})
}

// UpdateStepName sets the "step_name" field to the value that was provided on create.
func (u *LLMCallUpsertBulk) UpdateStepName() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateStepName()
	})
}

// SetPurpose sets the "purpose" field.
func (u *LLMCallUpsertBulk) SetPurpose(v llmcall.Purpose) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetPurpose(v)
	})
}

// UpdatePurpose sets the "purpose" field to the value that was provided on create.
func (u *LLMCallUpsertBulk) UpdatePurpose() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdatePurpose()
	})
}

// SetProvider sets the "provider" field.
func (u *LLMCallUpsertBulk) SetProvider(v string) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *LLMCallUpsertBulk) UpdateProvider() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateProvider()
	})
}

// SetModel sets the "model" field.
func (u *LLMCallUpsertBulk) SetModel(v string) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *LLMCallUpsertBulk) UpdateModel() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateModel()
	})
}

// SetPromptTokens sets the "prompt_tokens" field.
func (u *LLMCallUpsertBulk) SetPromptTokens(v int64) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetPromptTokens(v)
	})
}

// AddPromptTokens adds v to the "prompt_tokens" field.
func (u *LLMCallUpsertBulk) AddPromptTokens(v int64) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.AddPromptTokens(v)
	})
}

// UpdatePromptTokens sets the "prompt_tokens" field to the value that was provided on create.
func (u *LLMCallUpsertBulk) UpdatePromptTokens() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdatePromptTokens()
	})
}

// ClearPromptTokens clears the value of the "prompt_tokens" field.
func (u *LLMCallUpsertBulk) ClearPromptTokens() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.ClearPromptTokens()
	})
}

// SetCompletionTokens sets the "completion_tokens" field.
func (u *LLMCallUpsertBulk) SetCompletionTokens(v int64) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetCompletionTokens(v)
	})
}

// AddCompletionTokens adds v to the "completion_tokens" field.
func (u *LLMCallUpsertBulk) AddCompletionTokens(v int64) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.AddCompletionTokens(v)
	})
}

// UpdateCompletionTokens sets the "completion_tokens" field to the value that was provided on create.
func (u *LLMCallUpsertBulk) UpdateCompletionTokens() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateCompletionTokens()
	})
}

// ClearCompletionTokens clears the value of the "completion_tokens" field.
func (u *LLMCallUpsertBulk) ClearCompletionTokens() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.ClearCompletionTokens()
	})
}

// SetTotalTokens sets the "total_tokens" field.
func (u *LLMCallUpsertBulk) SetTotalTokens(v int64) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetTotalTokens(v)
	})
}

// AddTotalTokens adds v to the "total_tokens" field.
func (u *LLMCallUpsertBulk) AddTotalTokens(v int64) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.AddTotalTokens(v)
	})
}

// UpdateTotalTokens sets the "total_tokens" field to the value that was provided on create.
func (u *LLMCallUpsertBulk) UpdateTotalTokens() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateTotalTokens()
	})
}

// ClearTotalTokens clears the value of the "total_tokens" field.
func (u *LLMCallUpsertBulk) ClearTotalTokens() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.ClearTotalTokens()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *LLMCallUpsertBulk) SetDurationMs(v int) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *LLMCallUpsertBulk) AddDurationMs(v int) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *LLMCallUpsertBulk) UpdateDurationMs() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *LLMCallUpsertBulk) ClearDurationMs() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.ClearDurationMs()
	})
}

// SetStatus sets the "status" field.
func (u *LLMCallUpsertBulk) SetStatus(v llmcall.Status) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *LLMCallUpsertBulk) UpdateStatus() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *LLMCallUpsertBulk) SetErrorMessage(v string) *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *LLMCallUpsertBulk) UpdateErrorMessage() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *LLMCallUpsertBulk) ClearErrorMessage() *LLMCallUpsertBulk {
	return u.Update(func(s *LLMCallUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *LLMCallUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LLMCallCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LLMCallCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LLMCallUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
