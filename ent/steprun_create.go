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
	"github.com/loreweave/loreweave/ent/steprun"
)

// StepRunCreate is the builder for creating a StepRun entity.
type StepRunCreate struct {
	config
	mutation *StepRunMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetJobID sets the "job_id" field.
func (_c *StepRunCreate) SetJobID(v string) *StepRunCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetStepName sets the "step_name" field.
func (_c *StepRunCreate) SetStepName(v string) *StepRunCreate {
	_c.mutation.SetStepName(v)
	return _c
}

// SetStepIndex sets the "step_index" field.
func (_c *StepRunCreate) SetStepIndex(v int) *StepRunCreate {
	_c.mutation.SetStepIndex(v)
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *StepRunCreate) SetAttempt(v int) *StepRunCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_c *StepRunCreate) SetNillableAttempt(v *int) *StepRunCreate {
	if v != nil {
		_c.SetAttempt(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *StepRunCreate) SetStatus(v steprun.Status) *StepRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StepRunCreate) SetNillableStatus(v *steprun.Status) *StepRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *StepRunCreate) SetDurationMs(v int) *StepRunCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *StepRunCreate) SetNillableDurationMs(v *int) *StepRunCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetTokensUsed sets the "tokens_used" field.
func (_c *StepRunCreate) SetTokensUsed(v int64) *StepRunCreate {
	_c.mutation.SetTokensUsed(v)
	return _c
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_c *StepRunCreate) SetNillableTokensUsed(v *int64) *StepRunCreate {
	if v != nil {
		_c.SetTokensUsed(*v)
	}
	return _c
}

// SetSourcesAdded sets the "sources_added" field.
func (_c *StepRunCreate) SetSourcesAdded(v int) *StepRunCreate {
	_c.mutation.SetSourcesAdded(v)
	return _c
}

// SetNillableSourcesAdded sets the "sources_added" field if the given value is not nil.
func (_c *StepRunCreate) SetNillableSourcesAdded(v *int) *StepRunCreate {
	if v != nil {
		_c.SetSourcesAdded(*v)
	}
	return _c
}

// SetContentBytes sets the "content_bytes" field.
func (_c *StepRunCreate) SetContentBytes(v int) *StepRunCreate {
	_c.mutation.SetContentBytes(v)
	return _c
}

// SetNillableContentBytes sets the "content_bytes" field if the given value is not nil.
func (_c *StepRunCreate) SetNillableContentBytes(v *int) *StepRunCreate {
	if v != nil {
		_c.SetContentBytes(*v)
	}
	return _c
}

// SetErrorKind sets the "error_kind" field.
func (_c *StepRunCreate) SetErrorKind(v string) *StepRunCreate {
	_c.mutation.SetErrorKind(v)
	return _c
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_c *StepRunCreate) SetNillableErrorKind(v *string) *StepRunCreate {
	if v != nil {
		_c.SetErrorKind(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *StepRunCreate) SetErrorMessage(v string) *StepRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *StepRunCreate) SetNillableErrorMessage(v *string) *StepRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *StepRunCreate) SetStartedAt(v time.Time) *StepRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *StepRunCreate) SetNillableStartedAt(v *time.Time) *StepRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *StepRunCreate) SetCompletedAt(v time.Time) *StepRunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *StepRunCreate) SetNillableCompletedAt(v *time.Time) *StepRunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StepRunCreate) SetID(v string) *StepRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetJob sets the "job" edge to the ResearchJob entity.
func (_c *StepRunCreate) SetJob(v *ResearchJob) *StepRunCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the StepRunMutation object of the builder.
func (_c *StepRunCreate) Mutation() *StepRunMutation {
	return _c.mutation
}

// Save creates the StepRun in the database.
func (_c *StepRunCreate) Save(ctx context.Context) (*StepRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StepRunCreate) SaveX(ctx context.Context) *StepRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StepRunCreate) defaults() {
	if _, ok := _c.mutation.Attempt(); !ok {
		v := steprun.DefaultAttempt
		_c.mutation.SetAttempt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := steprun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := steprun.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StepRunCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "StepRun.job_id"`)}
	}
	if _, ok := _c.mutation.StepName(); !ok {
		return &ValidationError{Name: "step_name", err: errors.New(`ent: missing required field "StepRun.step_name"`)}
	}
	if _, ok := _c.mutation.StepIndex(); !ok {
		return &ValidationError{Name: "step_index", err: errors.New(`ent: missing required field "StepRun.step_index"`)}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "StepRun.attempt"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "StepRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := steprun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StepRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "StepRun.started_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "StepRun.job"`)}
	}
	return nil
}

func (_c *StepRunCreate) sqlSave(ctx context.Context) (*StepRun, error) {
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
			return nil, fmt.Errorf("unexpected StepRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StepRunCreate) createSpec() (*StepRun, *sqlgraph.CreateSpec) {
	var (
		_node = &StepRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(steprun.Table, sqlgraph.NewFieldSpec(steprun.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StepName(); ok {
		_spec.SetField(steprun.FieldStepName, field.TypeString, value)
		_node.StepName = value
	}
	if value, ok := _c.mutation.StepIndex(); ok {
		_spec.SetField(steprun.FieldStepIndex, field.TypeInt, value)
		_node.StepIndex = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(steprun.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(steprun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(steprun.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.TokensUsed(); ok {
		_spec.SetField(steprun.FieldTokensUsed, field.TypeInt64, value)
		_node.TokensUsed = &value
	}
	if value, ok := _c.mutation.SourcesAdded(); ok {
		_spec.SetField(steprun.FieldSourcesAdded, field.TypeInt, value)
		_node.SourcesAdded = &value
	}
	if value, ok := _c.mutation.ContentBytes(); ok {
		_spec.SetField(steprun.FieldContentBytes, field.TypeInt, value)
		_node.ContentBytes = &value
	}
	if value, ok := _c.mutation.ErrorKind(); ok {
		_spec.SetField(steprun.FieldErrorKind, field.TypeString, value)
		_node.ErrorKind = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(steprun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(steprun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(steprun.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   steprun.JobTable,
			Columns: []string{steprun.JobColumn},
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
//	client.StepRun.Create().
//		SetJobID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StepRunUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *StepRunCreate) OnConflict(opts ...sql.ConflictOption) *StepRunUpsertOne {
	_c.conflict = opts
	return &StepRunUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StepRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StepRunCreate) OnConflictColumns(columns ...string) *StepRunUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StepRunUpsertOne{
		create: _c,
	}
}

type (
	// StepRunUpsertOne is the builder for "upsert"-ing
	//  one StepRun node.
	StepRunUpsertOne struct {
		create *StepRunCreate
	}

	// StepRunUpsert is the "OnConflict" setter.
	StepRunUpsert struct {
		*sql.UpdateSet
	}
)

// SetStepName sets the "step_name" field.
func (u *StepRunUpsert) SetStepName(v string) *StepRunUpsert {
	u.Set(steprun.FieldStepName, v)
	return u
}

// UpdateStepName sets the "step_name" field to the value that was provided on create.
func (u *StepRunUpsert) UpdateStepName() *StepRunUpsert {
	u.SetExcluded(steprun.FieldStepName)
	return u
}

// SetStepIndex sets the "step_index" field.
func (u *StepRunUpsert) SetStepIndex(v int) *StepRunUpsert {
	u.Set(steprun.FieldStepIndex, v)
	return u
}

// UpdateStepIndex sets the "step_index" field to the value that was provided on create.
func (u *StepRunUpsert) UpdateStepIndex() *StepRunUpsert {
	u.SetExcluded(steprun.FieldStepIndex)
	return u
}

// AddStepIndex adds v to the "step_index" field.
func (u *StepRunUpsert) AddStepIndex(v int) *StepRunUpsert {
	u.Add(steprun.FieldStepIndex, v)
	return u
}

// SetAttempt sets the "attempt" field.
func (u *StepRunUpsert) SetAttempt(v int) *StepRunUpsert {
	u.Set(steprun.FieldAttempt, v)
	return u
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *StepRunUpsert) UpdateAttempt() *StepRunUpsert {
	u.SetExcluded(steprun.FieldAttempt)
	return u
}

// AddAttempt adds v to the "attempt" field.
func (u *StepRunUpsert) AddAttempt(v int) *StepRunUpsert {
	u.Add(steprun.FieldAttempt, v)
	return u
}

// SetStatus sets the "status" field.
func (u *StepRunUpsert) SetStatus(v steprun.Status) *StepRunUpsert {
	u.Set(steprun.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StepRunUpsert) UpdateStatus() *StepRunUpsert {
	u.SetExcluded(steprun.FieldStatus)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *StepRunUpsert) SetDurationMs(v int) *StepRunUpsert {
	u.Set(steprun.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *StepRunUpsert) UpdateDurationMs() *StepRunUpsert {
	u.SetExcluded(steprun.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *StepRunUpsert) AddDurationMs(v int) *StepRunUpsert {
	u.Add(steprun.FieldDurationMs, v)
	return u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *StepRunUpsert) ClearDurationMs() *StepRunUpsert {
	u.SetNull(steprun.FieldDurationMs)
	return u
}

// SetTokensUsed sets the "tokens_used" field.
func (u *StepRunUpsert) SetTokensUsed(v int64) *StepRunUpsert {
	u.Set(steprun.FieldTokensUsed, v)
	return u
}

// UpdateTokensUsed sets the "tokens_used" field to the value that was provided on create.
func (u *StepRunUpsert) UpdateTokensUsed() *StepRunUpsert {
	u.SetExcluded(steprun.FieldTokensUsed)
	return u
}

// AddTokensUsed adds v to the "tokens_used" field.
func (u *StepRunUpsert) AddTokensUsed(v int64) *StepRunUpsert {
	u.Add(steprun.FieldTokensUsed, v)
	return u
}

// ClearTokensUsed clears the value of the "tokens_used" field.
func (u *StepRunUpsert) ClearTokensUsed() *StepRunUpsert {
	u.SetNull(steprun.FieldTokensUsed)
	return u
}

// SetSourcesAdded sets the "sources_added" field.
func (u *StepRunUpsert) SetSourcesAdded(v int) *StepRunUpsert {
	u.Set(steprun.FieldSourcesAdded, v)
	return u
}

// UpdateSourcesAdded sets the "sources_added" field to the value that was provided on create.
func (u *StepRunUpsert) UpdateSourcesAdded() *StepRunUpsert {
	u.SetExcluded(steprun.FieldSourcesAdded)
	return u
}

// AddSourcesAdded adds v to the "sources_added" field.
func (u *StepRunUpsert) AddSourcesAdded(v int) *StepRunUpsert {
	u.Add(steprun.FieldSourcesAdded, v)
	return u
}

// ClearSourcesAdded clears the value of the "sources_added" field.
func (u *StepRunUpsert) ClearSourcesAdded() *StepRunUpsert {
	u.SetNull(steprun.FieldSourcesAdded)
	return u
}

// SetContentBytes sets the "content_bytes" field.
func (u *StepRunUpsert) SetContentBytes(v int) *StepRunUpsert {
	u.Set(steprun.FieldContentBytes, v)
	return u
}

// UpdateContentBytes sets the "content_bytes" field to the value that was provided on create.
func (u *StepRunUpsert) UpdateContentBytes() *StepRunUpsert {
	u.SetExcluded(steprun.FieldContentBytes)
	return u
}

// AddContentBytes adds v to the "content_bytes" field.
func (u *StepRunUpsert) AddContentBytes(v int) *StepRunUpsert {
	u.Add(steprun.FieldContentBytes, v)
	return u
}

// ClearContentBytes clears the value of the "content_bytes" field.
func (u *StepRunUpsert) ClearContentBytes() *StepRunUpsert {
	u.SetNull(steprun.FieldContentBytes)
	return u
}

// SetErrorKind sets the "error_kind" field.
func (u *StepRunUpsert) SetErrorKind(v string) *StepRunUpsert {
	u.Set(steprun.FieldErrorKind, v)
	return u
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *StepRunUpsert) UpdateErrorKind() *StepRunUpsert {
	u.SetExcluded(steprun.FieldErrorKind)
	return u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *StepRunUpsert) ClearErrorKind() *StepRunUpsert {
	u.SetNull(steprun.FieldErrorKind)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *StepRunUpsert) SetErrorMessage(v string) *StepRunUpsert {
	u.Set(steprun.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *StepRunUpsert) UpdateErrorMessage() *StepRunUpsert {
	u.SetExcluded(steprun.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *StepRunUpsert) ClearErrorMessage() *StepRunUpsert {
	u.SetNull(steprun.FieldErrorMessage)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *StepRunUpsert) SetCompletedAt(v time.Time) *StepRunUpsert {
	u.Set(steprun.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *StepRunUpsert) UpdateCompletedAt() *StepRunUpsert {
	u.SetExcluded(steprun.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *StepRunUpsert) ClearCompletedAt() *StepRunUpsert {
	u.SetNull(steprun.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StepRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(steprun.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StepRunUpsertOne) UpdateNewValues() *StepRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(steprun.FieldID)
		}
		if _, exists := u.create.mutation.JobID(); exists {
			s.SetIgnore(steprun.FieldJobID)
		}
		if _, exists := u.create.mutation.StartedAt(); exists {
			s.SetIgnore(steprun.FieldStartedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StepRun.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StepRunUpsertOne) Ignore() *StepRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StepRunUpsertOne) DoNothing() *StepRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StepRunCreate.OnConflict
// documentation for more info.
func (u *StepRunUpsertOne) Update(set func(*StepRunUpsert)) *StepRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StepRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetStepName sets the "step_name" field.
func (u *StepRunUpsertOne) SetStepName(v string) *StepRunUpsertOne {
	return u.Update(func(s *StepRunUpsert) {
		s.SetStepName(v)
	})
}

// UpdateStepName sets the "step_name" field to the value that was provided on create.
func (u *StepRunUpsertOne) UpdateStepName() *StepRunUpsertOne {
	return u.Update(func(s *StepRunUpsert) {
		s.UpdateStepName()
	})
}

// SetStepIndex sets the "step_index" field.
func (u *StepRunUpsertOne) SetStepIndex(v int) *StepRunUpsertOne {
	return u.Update(func(s *StepRunUpsert) {
		s.SetStepIndex(v)
	})
}

// AddStepIndex adds v to the "step_index" field.
func (u *StepRunUpsertOne) AddStepIndex(v int) *StepRunUpsertOne {
	return u.Update(func(s *StepRunUpsert) {
		s.AddStepIndex(v)
	})
}

// UpdateStepIndex sets the "step_index" field to the value that was provided on create.
func (u *StepRunUpsertOne) UpdateStepIndex() *StepRunUpsertOne {
	return u.Update(func(s *StepRunUpsert) {
		s.UpdateStepIndex()
	})
}

// SetAttempt sets the "attempt" field.
func (u *StepRunUpsertOne) SetAttempt(v int) *StepRunUpsertOne {
	return u.Update(func(s *StepRunUpsert) {
		s.SetAttempt(v)
	})
}

// AddAttempt adds v to the "attempt" field.
func (u *StepRunUpsertOne) AddAttempt(v int) *StepRunUpsertOne {
	return u.Update(func(s *StepRunUpsert) {
		s.AddAttempt(v)
	})
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *StepRunUpsertOne) UpdateAttempt() *StepRunUpsertOne {
	return u.Update(func(s *StepRunUpsert) {
		s.UpdateAttempt()
	})
}

// SetStatus sets the "status" field.
func (u *StepRunUpsertOne) SetStatus(v steprun.Status) *StepRunUpsertOne {
	return u.Update(func(s *StepRunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StepRunUpsertOne) UpdateStatus() *StepRunUpsertOne {
	return u.Update(func(s *StepRunUpsert) {
		s.UpdateStatus()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *StepRunUpsertOne) SetDurationMs(v int) *StepRunUpsertOne {
	return u.Update(func(s *StepRunUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *StepRunUpsertOne) AddDurationMs(v int) *StepRunUpsertOne {
	return u.Update(func(s *StepRunUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *StepRunUpsertOne) UpdateDurationMs() *StepRunUpsertOne {
	return u.Update(func(s *StepRunUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *StepRunUpsertOne) ClearDurationMs() *StepRunUpsertOne {
	return u.Update(func(s *StepRunUpsert) {
		s.ClearDurationMs()
	})
}

// SetTokensUsed sets the "tokens_used" field.
func (u *StepRunUpsertOne) SetTokensUsed(v int64) *StepRunUpsertOne {
	return u.Update(func(s *StepRunUpsert) {
		s.SetTokensUsed(v)
	})
}

// AddTokensUsed adds v to the "tokens_used" field.
func (u *StepRunUpsertOne) AddTokensUsed(v int64) *StepRunUpsertOne {
	return u.Update(func(s *StepRunUpsert) {
		s.AddTokensUsed(v)
	})
}

// UpdateTokensUsed sets the "tokens_used" field to the value that was provided on create.
func (u *StepRunUpsertOne) UpdateTokensUsed() *StepRunUpsertOne {
	return u.Update(func(s *StepRunUpsert) {
		s.UpdateTokensUsed()
	})
}

// ClearTokensUsed clears the value of the "tokens_used" field.
func (u *StepRunUpsertOne) ClearTokensUsed() *StepRunUpsertOne {
	return u.Update(func(s *StepRunUpsert) {
		s.ClearTokensUsed()
	})
}

// SetSourcesAdded sets the "sources_added" field.
func (u *StepRunUpsertOne) SetSourcesAdded(v int) *StepRunUpsertOne {
	return u.Update(func(s *StepRunUpsert) {
		s.SetSourcesAdded(v)
	})
}

// AddSourcesAdded adds v to the "sources_added" field.
func (u *StepRunUpsertOne) AddSourcesAdded(v int) *StepRunUpsertOne {
	return u.Update(func(s *StepRunUpsert) {
		s.AddSourcesAdded(v)
	})
}

// UpdateSourcesAdded sets the "sources_added" field to the value that was provided on create.
func (u *StepRunUpsertOne) UpdateSourcesAdded() *StepRunUpsertOne {
	return u.Update(func(s *StepRunUpsert) {
		s.UpdateSourcesAdded()
	})
}

// ClearSourcesAdded clears the value of the "sources_added" field.
func (u *StepRunUpsertOne) ClearSourcesAdded() *StepRunUpsertOne {
	return u.Update(func(s *StepRunUpsert) {
		s.ClearSourcesAdded()
	})
}

// SetContentBytes sets the "content_bytes" field.
func (u *StepRunUpsertOne) SetContentBytes(v int) *StepRunUpsertOne {
	return u.Update(func(s *StepRunUpsert) {
		s.SetContentBytes(v)
	})
}

// AddContentBytes adds v to the "content_bytes" field.
func (u *StepRunUpsertOne) AddContentBytes(v int) *StepRunUpsertOne {
	return u.Update(func(s *StepRunUpsert) {
		s.AddContentBytes(v)
	})
}

// UpdateContentBytes sets the "content_bytes" field to the value that was provided on create.
func (u *StepRunUpsertOne) UpdateContentBytes() *StepRunUpsertOne {
	return u.Update(func(s *StepRunUpsert) {
		s.UpdateContentBytes()
	})
}

// ClearContentBytes clears the value of the "content_bytes" field.
func (u *StepRunUpsertOne) ClearContentBytes() *StepRunUpsertOne {
	return u.Update(func(s *StepRunUpsert) {
		s.ClearContentBytes()
	})
}

// SetErrorKind sets the "error_kind" field.
func (u *StepRunUpsertOne) SetErrorKind(v string) *StepRunUpsertOne {
	return u.Update(func(s *StepRunUpsert) {
		s.SetErrorKind(v)
	})
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *StepRunUpsertOne) UpdateErrorKind() *StepRunUpsertOne {
	return u.Update(func(s *StepRunUpsert) {
		s.UpdateErrorKind()
	})
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *StepRunUpsertOne) ClearErrorKind() *StepRunUpsertOne {
	return u.Update(func(s *StepRunUpsert) {
		s.ClearErrorKind()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *StepRunUpsertOne) SetErrorMessage(v string) *StepRunUpsertOne {
	return u.Update(func(s *StepRunUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *StepRunUpsertOne) UpdateErrorMessage() *StepRunUpsertOne {
	return u.Update(func(s *StepRunUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *StepRunUpsertOne) ClearErrorMessage() *StepRunUpsertOne {
	return u.Update(func(s *StepRunUpsert) {
		s.ClearErrorMessage()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *StepRunUpsertOne) SetCompletedAt(v time.Time) *StepRunUpsertOne {
	return u.Update(func(s *StepRunUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *StepRunUpsertOne) UpdateCompletedAt() *StepRunUpsertOne {
	return u.Update(func(s *StepRunUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *StepRunUpsertOne) ClearCompletedAt() *StepRunUpsertOne {
	return u.Update(func(s *StepRunUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *StepRunUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StepRunCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StepRunUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StepRunUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StepRunUpsertOne.ID is not supported by MySQL driver. Use StepRunUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StepRunUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StepRunCreateBulk is the builder for creating many StepRun entities in bulk.
type StepRunCreateBulk struct {
	config
	err      error
	builders []*StepRunCreate
	conflict []sql.ConflictOption
}

// Save creates the StepRun entities in the database.
func (_c *StepRunCreateBulk) Save(ctx context.Context) ([]*StepRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StepRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StepRunMutation)
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
func (_c *StepRunCreateBulk) SaveX(ctx context.Context) []*StepRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StepRun.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StepRunUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *StepRunCreateBulk) OnConflict(opts ...sql.ConflictOption) *StepRunUpsertBulk {
	_c.conflict = opts
	return &StepRunUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StepRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StepRunCreateBulk) OnConflictColumns(columns ...string) *StepRunUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StepRunUpsertBulk{
		create: _c,
	}
}

// StepRunUpsertBulk is the builder for "upsert"-ing
// a bulk of StepRun nodes.
type StepRunUpsertBulk struct {
	create *StepRunCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StepRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(steprun.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StepRunUpsertBulk) UpdateNewValues() *StepRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(steprun.FieldID)
			}
			if _, exists := b.mutation.JobID(); exists {
				s.SetIgnore(steprun.FieldJobID)
			}
			if _, exists := b.mutation.StartedAt(); exists {
				s.SetIgnore(steprun.FieldStartedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StepRun.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StepRunUpsertBulk) Ignore() *StepRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StepRunUpsertBulk) DoNothing() *StepRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StepRunCreateBulk.OnConflict
// documentation for more info.
func (u *StepRunUpsertBulk) Update(set func(*StepRunUpsert)) *StepRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StepRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetStepName sets the "step_name" field.
func (u *StepRunUpsertBulk) SetStepName(v string) *StepRunUpsertBulk {
	return u.Update(func(s *StepRunUpsert) {
		s.SetStepName(v)
	})
}

// UpdateStepName sets the "step_name" field to the value that was provided on create.
func (u *StepRunUpsertBulk) UpdateStepName() *StepRunUpsertBulk {
	return u.Update(func(s *StepRunUpsert) {
		s.UpdateStepName()
	})
}

// SetStepIndex sets the "step_index" field.
func (u *StepRunUpsertBulk) SetStepIndex(v int) *StepRunUpsertBulk {
	return u.Update(func(s *StepRunUpsert) {
		s.SetStepIndex(v)
	})
}

// AddStepIndex adds v to the "step_index" field.
func (u *StepRunUpsertBulk) AddStepIndex(v int) *StepRunUpsertBulk {
	return u.Update(func(s *StepRunUpsert) {
		s.AddStepIndex(v)
	})
}

// UpdateStepIndex sets the "step_index" field to the value that was provided on create.
func (u *StepRunUpsertBulk) UpdateStepIndex() *StepRunUpsertBulk {
	return u.Update(func(s *StepRunUpsert) {
		s.UpdateStepIndex()
	})
}

// SetAttempt sets the "attempt" field.
func (u *StepRunUpsertBulk) SetAttempt(v int) *StepRunUpsertBulk {
	return u.Update(func(s *StepRunUpsert) {
		s.SetAttempt(v)
	})
}

// AddAttempt adds v to the "attempt" field.
func (u *StepRunUpsertBulk) AddAttempt(v int) *StepRunUpsertBulk {
	return u.Update(func(s *StepRunUpsert) {
		s.AddAttempt(v)
	})
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *StepRunUpsertBulk) UpdateAttempt() *StepRunUpsertBulk {
	return u.Update(func(s *StepRunUpsert) {
		s.UpdateAttempt()
	})
}

// SetStatus sets the "status" field.
func (u *StepRunUpsertBulk) SetStatus(v steprun.Status) *StepRunUpsertBulk {
	return u.Update(func(s *StepRunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StepRunUpsertBulk) UpdateStatus() *StepRunUpsertBulk {
	return u.Update(func(s *StepRunUpsert) {
		s.UpdateStatus()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *StepRunUpsertBulk) SetDurationMs(v int) *StepRunUpsertBulk {
	return u.Update(func(s *StepRunUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *StepRunUpsertBulk) AddDurationMs(v int) *StepRunUpsertBulk {
	return u.Update(func(s *StepRunUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *StepRunUpsertBulk) UpdateDurationMs() *StepRunUpsertBulk {
	return u.Update(func(s *StepRunUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *StepRunUpsertBulk) ClearDurationMs() *StepRunUpsertBulk {
	return u.Update(func(s *StepRunUpsert) {
		s.ClearDurationMs()
	})
}

// SetTokensUsed sets the "tokens_used" field.
func (u *StepRunUpsertBulk) SetTokensUsed(v int64) *StepRunUpsertBulk {
	return u.Update(func(s *StepRunUpsert) {
		s.SetTokensUsed(v)
	})
}

// AddTokensUsed adds v to the "tokens_used" field.
func (u *StepRunUpsertBulk) AddTokensUsed(v int64) *StepRunUpsertBulk {
	return u.Update(func(s *StepRunUpsert) {
		s.AddTokensUsed(v)
	})
}

// UpdateTokensUsed sets the "tokens_used" field to the value that was provided on create.
func (u *StepRunUpsertBulk) UpdateTokensUsed() *StepRunUpsertBulk {
	return u.Update(func(s *StepRunUpsert) {
		s.UpdateTokensUsed()
	})
}

// ClearTokensUsed clears the value of the "tokens_used" field.
func (u *StepRunUpsertBulk) ClearTokensUsed() *StepRunUpsertBulk {
	return u.Update(func(s *StepRunUpsert) {
		s.ClearTokensUsed()
	})
}

// SetSourcesAdded sets the "sources_added" field.
func (u *StepRunUpsertBulk) SetSourcesAdded(v int) *StepRunUpsertBulk {
	return u.Update(func(s *StepRunUpsert) {
		s.SetSourcesAdded(v)
	})
}

// AddSourcesAdded adds v to the "sources_added" field.
func (u *StepRunUpsertBulk) AddSourcesAdded(v int) *StepRunUpsertBulk {
	return u.Update(func(s *StepRunUpsert) {
		s.AddSourcesAdded(v)
	})
}

// UpdateSourcesAdded sets the "sources_added" field to the value that was provided on create.
func (u *StepRunUpsertBulk) UpdateSourcesAdded() *StepRunUpsertBulk {
	return u.Update(func(s *StepRunUpsert) {
		s.UpdateSourcesAdded()
	})
}

// ClearSourcesAdded clears the value of the "sources_added" field.
func (u *StepRunUpsertBulk) ClearSourcesAdded() *StepRunUpsertBulk {
	return u.Update(func(s *StepRunUpsert) {
		s.ClearSourcesAdded()
	})
}

// SetContentBytes sets the "content_bytes" field.
func (u *StepRunUpsertBulk) SetContentBytes(v int) *StepRunUpsertBulk {
	return u.Update(func(s *StepRunUpsert) {
		s.SetContentBytes(v)
	})
}

// AddContentBytes adds v to the "content_bytes" field.
func (u *StepRunUpsertBulk) AddContentBytes(v int) *StepRunUpsertBulk {
	return u.Update(func(s *StepRunUpsert) {
		s.AddContentBytes(v)
	})
}

// UpdateContentBytes sets the "content_bytes" field to the value that was provided on create.
func (u *StepRunUpsertBulk) UpdateContentBytes() *StepRunUpsertBulk {
	return u.Update(func(s *StepRunUpsert) {
		s.UpdateContentBytes()
	})
}

// ClearContentBytes clears the value of the "content_bytes" field.
func (u *StepRunUpsertBulk) ClearContentBytes() *StepRunUpsertBulk {
	return u.Update(func(s *StepRunUpsert) {
		s.ClearContentBytes()
	})
}

// SetErrorKind sets the "error_kind" field.
func (u *StepRunUpsertBulk) SetErrorKind(v string) *StepRunUpsertBulk {
	return u.Update(func(s *StepRunUpsert) {
		s.SetErrorKind(v)
	})
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *StepRunUpsertBulk) UpdateErrorKind() *StepRunUpsertBulk {
	return u.Update(func(s *StepRunUpsert) {
		s.UpdateErrorKind()
	})
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *StepRunUpsertBulk) ClearErrorKind() *StepRunUpsertBulk {
	return u.Update(func(s *StepRunUpsert) {
		s.ClearErrorKind()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *StepRunUpsertBulk) SetErrorMessage(v string) *StepRunUpsertBulk {
	return u.Update(func(s *StepRunUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *StepRunUpsertBulk) UpdateErrorMessage() *StepRunUpsertBulk {
	return u.Update(func(s *StepRunUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *StepRunUpsertBulk) ClearErrorMessage() *StepRunUpsertBulk {
	return u.Update(func(s *StepRunUpsert) {
		s.ClearErrorMessage()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *StepRunUpsertBulk) SetCompletedAt(v time.Time) *StepRunUpsertBulk {
	return u.Update(func(s *StepRunUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *StepRunUpsertBulk) UpdateCompletedAt() *StepRunUpsertBulk {
	return u.Update(func(s *StepRunUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *StepRunUpsertBulk) ClearCompletedAt() *StepRunUpsertBulk {
	return u.Update(func(s *StepRunUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *StepRunUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StepRunCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StepRunCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StepRunUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
