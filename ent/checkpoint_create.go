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
	"github.com/loreweave/loreweave/ent/checkpoint"
	"github.com/loreweave/loreweave/ent/researchjob"
)

// CheckpointCreate is the builder for creating a Checkpoint entity.
type CheckpointCreate struct {
	config
	mutation *CheckpointMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetJobID sets the "job_id" field.
func (_c *CheckpointCreate) SetJobID(v string) *CheckpointCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetCurrentStepIndex sets the "current_step_index" field.
func (_c *CheckpointCreate) SetCurrentStepIndex(v int) *CheckpointCreate {
	_c.mutation.SetCurrentStepIndex(v)
	return _c
}

// SetNillableCurrentStepIndex sets the "current_step_index" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableCurrentStepIndex(v *int) *CheckpointCreate {
	if v != nil {
		_c.SetCurrentStepIndex(*v)
	}
	return _c
}

// SetCompletedStepNames sets the "completed_step_names" field.
func (_c *CheckpointCreate) SetCompletedStepNames(v []string) *CheckpointCreate {
	_c.mutation.SetCompletedStepNames(v)
	return _c
}

// SetAccumulatedContent sets the "accumulated_content" field.
func (_c *CheckpointCreate) SetAccumulatedContent(v map[string][]string) *CheckpointCreate {
	_c.mutation.SetAccumulatedContent(v)
	return _c
}

// SetAccumulatedSources sets the "accumulated_sources" field.
func (_c *CheckpointCreate) SetAccumulatedSources(v map[string]interface{}) *CheckpointCreate {
	_c.mutation.SetAccumulatedSources(v)
	return _c
}

// SetTopicSummaries sets the "topic_summaries" field.
func (_c *CheckpointCreate) SetTopicSummaries(v map[string]string) *CheckpointCreate {
	_c.mutation.SetTopicSummaries(v)
	return _c
}

// SetPartialExtractions sets the "partial_extractions" field.
func (_c *CheckpointCreate) SetPartialExtractions(v map[string]interface{}) *CheckpointCreate {
	_c.mutation.SetPartialExtractions(v)
	return _c
}

// SetStepErrors sets the "step_errors" field.
func (_c *CheckpointCreate) SetStepErrors(v []map[string]interface{}) *CheckpointCreate {
	_c.mutation.SetStepErrors(v)
	return _c
}

// SetTokensUsed sets the "tokens_used" field.
func (_c *CheckpointCreate) SetTokensUsed(v int64) *CheckpointCreate {
	_c.mutation.SetTokensUsed(v)
	return _c
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableTokensUsed(v *int64) *CheckpointCreate {
	if v != nil {
		_c.SetTokensUsed(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CheckpointCreate) SetStatus(v checkpoint.Status) *CheckpointCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableStatus(v *checkpoint.Status) *CheckpointCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSchemaVersion sets the "schema_version" field.
func (_c *CheckpointCreate) SetSchemaVersion(v int) *CheckpointCreate {
	_c.mutation.SetSchemaVersion(v)
	return _c
}

// SetNillableSchemaVersion sets the "schema_version" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableSchemaVersion(v *int) *CheckpointCreate {
	if v != nil {
		_c.SetSchemaVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CheckpointCreate) SetCreatedAt(v time.Time) *CheckpointCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableCreatedAt(v *time.Time) *CheckpointCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CheckpointCreate) SetUpdatedAt(v time.Time) *CheckpointCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableUpdatedAt(v *time.Time) *CheckpointCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CheckpointCreate) SetID(v string) *CheckpointCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetJob sets the "job" edge to the ResearchJob entity.
func (_c *CheckpointCreate) SetJob(v *ResearchJob) *CheckpointCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the CheckpointMutation object of the builder.
func (_c *CheckpointCreate) Mutation() *CheckpointMutation {
	return _c.mutation
}

// Save creates the Checkpoint in the database.
func (_c *CheckpointCreate) Save(ctx context.Context) (*Checkpoint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CheckpointCreate) SaveX(ctx context.Context) *Checkpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckpointCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckpointCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CheckpointCreate) defaults() {
	if _, ok := _c.mutation.CurrentStepIndex(); !ok {
		v := checkpoint.DefaultCurrentStepIndex
		_c.mutation.SetCurrentStepIndex(v)
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		v := checkpoint.DefaultTokensUsed
		_c.mutation.SetTokensUsed(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := checkpoint.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.SchemaVersion(); !ok {
		v := checkpoint.DefaultSchemaVersion
		_c.mutation.SetSchemaVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := checkpoint.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := checkpoint.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CheckpointCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "Checkpoint.job_id"`)}
	}
	if _, ok := _c.mutation.CurrentStepIndex(); !ok {
		return &ValidationError{Name: "current_step_index", err: errors.New(`ent: missing required field "Checkpoint.current_step_index"`)}
	}
	if _, ok := _c.mutation.CompletedStepNames(); !ok {
		return &ValidationError{Name: "completed_step_names", err: errors.New(`ent: missing required field "Checkpoint.completed_step_names"`)}
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		return &ValidationError{Name: "tokens_used", err: errors.New(`ent: missing required field "Checkpoint.tokens_used"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Checkpoint.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := checkpoint.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Checkpoint.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SchemaVersion(); !ok {
		return &ValidationError{Name: "schema_version", err: errors.New(`ent: missing required field "Checkpoint.schema_version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Checkpoint.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Checkpoint.updated_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "Checkpoint.job"`)}
	}
	return nil
}

func (_c *CheckpointCreate) sqlSave(ctx context.Context) (*Checkpoint, error) {
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
			return nil, fmt.Errorf("unexpected Checkpoint.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CheckpointCreate) createSpec() (*Checkpoint, *sqlgraph.CreateSpec) {
	var (
		_node = &Checkpoint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(checkpoint.Table, sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CurrentStepIndex(); ok {
		_spec.SetField(checkpoint.FieldCurrentStepIndex, field.TypeInt, value)
		_node.CurrentStepIndex = value
	}
	if value, ok := _c.mutation.CompletedStepNames(); ok {
		_spec.SetField(checkpoint.FieldCompletedStepNames, field.TypeJSON, value)
		_node.CompletedStepNames = value
	}
	if value, ok := _c.mutation.AccumulatedContent(); ok {
		_spec.SetField(checkpoint.FieldAccumulatedContent, field.TypeJSON, value)
		_node.AccumulatedContent = value
	}
	if value, ok := _c.mutation.AccumulatedSources(); ok {
		_spec.SetField(checkpoint.FieldAccumulatedSources, field.TypeJSON, value)
		_node.AccumulatedSources = value
	}
	if value, ok := _c.mutation.TopicSummaries(); ok {
		_spec.SetField(checkpoint.FieldTopicSummaries, field.TypeJSON, value)
		_node.TopicSummaries = value
	}
	if value, ok := _c.mutation.PartialExtractions(); ok {
		_spec.SetField(checkpoint.FieldPartialExtractions, field.TypeJSON, value)
		_node.PartialExtractions = value
	}
	if value, ok := _c.mutation.StepErrors(); ok {
		_spec.SetField(checkpoint.FieldStepErrors, field.TypeJSON, value)
		_node.StepErrors = value
	}
	if value, ok := _c.mutation.TokensUsed(); ok {
		_spec.SetField(checkpoint.FieldTokensUsed, field.TypeInt64, value)
		_node.TokensUsed = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(checkpoint.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SchemaVersion(); ok {
		_spec.SetField(checkpoint.FieldSchemaVersion, field.TypeInt, value)
		_node.SchemaVersion = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(checkpoint.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(checkpoint.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   checkpoint.JobTable,
			Columns: []string{checkpoint.JobColumn},
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
//	client.Checkpoint.Create().
//		SetJobID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CheckpointUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *CheckpointCreate) OnConflict(opts ...sql.ConflictOption) *CheckpointUpsertOne {
	_c.conflict = opts
	return &CheckpointUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Checkpoint.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CheckpointCreate) OnConflictColumns(columns ...string) *CheckpointUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CheckpointUpsertOne{
		create: _c,
	}
}

type (
	// CheckpointUpsertOne is the builder for "upsert"-ing
	//  one Checkpoint node.
	CheckpointUpsertOne struct {
		create *CheckpointCreate
	}

	// CheckpointUpsert is the "OnConflict" setter.
	CheckpointUpsert struct {
		*sql.UpdateSet
	}
)

// SetCurrentStepIndex sets the "current_step_index" field.
func (u *CheckpointUpsert) SetCurrentStepIndex(v int) *CheckpointUpsert {
	u.Set(checkpoint.FieldCurrentStepIndex, v)
	return u
}

// UpdateCurrentStepIndex sets the "current_step_index" field to the value that was provided on create.
func (u *CheckpointUpsert) UpdateCurrentStepIndex() *CheckpointUpsert {
	u.SetExcluded(checkpoint.FieldCurrentStepIndex)
	return u
}

// AddCurrentStepIndex adds v to the "current_step_index" field.
func (u *CheckpointUpsert) AddCurrentStepIndex(v int) *CheckpointUpsert {
	u.Add(checkpoint.FieldCurrentStepIndex, v)
	return u
}

// SetCompletedStepNames sets the "completed_step_names" field.
func (u *CheckpointUpsert) SetCompletedStepNames(v []string) *CheckpointUpsert {
	u.Set(checkpoint.FieldCompletedStepNames, v)
	return u
}

// UpdateCompletedStepNames sets the "completed_step_names" field to the value that was provided on create.
func (u *CheckpointUpsert) UpdateCompletedStepNames() *CheckpointUpsert {
	u.SetExcluded(checkpoint.FieldCompletedStepNames)
	return u
}

// SetAccumulatedContent sets the "accumulated_content" field.
func (u *CheckpointUpsert) SetAccumulatedContent(v map[string][]string) *CheckpointUpsert {
	u.Set(checkpoint.FieldAccumulatedContent, v)
	return u
}

// UpdateAccumulatedContent sets the "accumulated_content" field to the value that was provided on create.
func (u *CheckpointUpsert) UpdateAccumulatedContent() *CheckpointUpsert {
	u.SetExcluded(checkpoint.FieldAccumulatedContent)
	return u
}

// ClearAccumulatedContent clears the value of the "accumulated_content" field.
func (u *CheckpointUpsert) ClearAccumulatedContent() *CheckpointUpsert {
	u.SetNull(checkpoint.FieldAccumulatedContent)
	return u
}

// SetAccumulatedSources sets the "accumulated_sources" field.
func (u *CheckpointUpsert) SetAccumulatedSources(v map[string]interface{}) *CheckpointUpsert {
	u.Set(checkpoint.FieldAccumulatedSources, v)
	return u
}

// UpdateAccumulatedSources sets the "accumulated_sources" field to the value that was provided on create.
func (u *CheckpointUpsert) UpdateAccumulatedSources() *CheckpointUpsert {
	u.SetExcluded(checkpoint.FieldAccumulatedSources)
	return u
}

// ClearAccumulatedSources clears the value of the "accumulated_sources" field.
func (u *CheckpointUpsert) ClearAccumulatedSources() *CheckpointUpsert {
	u.SetNull(checkpoint.FieldAccumulatedSources)
	return u
}

// SetTopicSummaries sets the "topic_summaries" field.
func (u *CheckpointUpsert) SetTopicSummaries(v map[string]string) *CheckpointUpsert {
	u.Set(checkpoint.FieldTopicSummaries, v)
	return u
}

// UpdateTopicSummaries sets the "topic_summaries" field to the value that was provided on create.
func (u *CheckpointUpsert) UpdateTopicSummaries() *CheckpointUpsert {
	u.SetExcluded(checkpoint.FieldTopicSummaries)
	return u
}

// ClearTopicSummaries clears the value of the "topic_summaries" field.
func (u *CheckpointUpsert) ClearTopicSummaries() *CheckpointUpsert {
	u.SetNull(checkpoint.FieldTopicSummaries)
	return u
}

// SetPartialExtractions sets the "partial_extractions" field.
func (u *CheckpointUpsert) SetPartialExtractions(v map[string]interface{}) *CheckpointUpsert {
	u.Set(checkpoint.FieldPartialExtractions, v)
	return u
}

// UpdatePartialExtractions sets the "partial_extractions" field to the value that was provided on create.
func (u *CheckpointUpsert) UpdatePartialExtractions() *CheckpointUpsert {
	u.SetExcluded(checkpoint.FieldPartialExtractions)
	return u
}

// ClearPartialExtractions clears the value of the "partial_extractions" field.
func (u *CheckpointUpsert) ClearPartialExtractions() *CheckpointUpsert {
	u.SetNull(checkpoint.FieldPartialExtractions)
	return u
}

// SetStepErrors sets the "step_errors" field.
func (u *CheckpointUpsert) SetStepErrors(v []map[string]interface{}) *CheckpointUpsert {
	u.Set(checkpoint.FieldStepErrors, v)
	return u
}

// UpdateStepErrors sets the "step_errors" field to the value that was provided on create.
func (u *CheckpointUpsert) UpdateStepErrors() *CheckpointUpsert {
	u.SetExcluded(checkpoint.FieldStepErrors)
	return u
}

// ClearStepErrors clears the value of the "step_errors" field.
func (u *CheckpointUpsert) ClearStepErrors() *CheckpointUpsert {
	u.SetNull(checkpoint.FieldStepErrors)
	return u
}

// SetTokensUsed sets the "tokens_used" field.
func (u *CheckpointUpsert) SetTokensUsed(v int64) *CheckpointUpsert {
	u.Set(checkpoint.FieldTokensUsed, v)
	return u
}

// UpdateTokensUsed sets the "tokens_used" field to the value that was provided on create.
func (u *CheckpointUpsert) UpdateTokensUsed() *CheckpointUpsert {
	u.SetExcluded(checkpoint.FieldTokensUsed)
	return u
}

// AddTokensUsed adds v to the "tokens_used" field.
func (u *CheckpointUpsert) AddTokensUsed(v int64) *CheckpointUpsert {
	u.Add(checkpoint.FieldTokensUsed, v)
	return u
}

// SetStatus sets the "status" field.
func (u *CheckpointUpsert) SetStatus(v checkpoint.Status) *CheckpointUpsert {
	u.Set(checkpoint.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CheckpointUpsert) UpdateStatus() *CheckpointUpsert {
	u.SetExcluded(checkpoint.FieldStatus)
	return u
}

// SetSchemaVersion sets the "schema_version" field.
func (u *CheckpointUpsert) SetSchemaVersion(v int) *CheckpointUpsert {
	u.Set(checkpoint.FieldSchemaVersion, v)
	return u
}

// UpdateSchemaVersion sets the "schema_version" field to the value that was provided on create.
func (u *CheckpointUpsert) UpdateSchemaVersion() *CheckpointUpsert {
	u.SetExcluded(checkpoint.FieldSchemaVersion)
	return u
}

// AddSchemaVersion adds v to the "schema_version" field.
func (u *CheckpointUpsert) AddSchemaVersion(v int) *CheckpointUpsert {
	u.Add(checkpoint.FieldSchemaVersion, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CheckpointUpsert) SetUpdatedAt(v time.Time) *CheckpointUpsert {
	u.Set(checkpoint.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CheckpointUpsert) UpdateUpdatedAt() *CheckpointUpsert {
	u.SetExcluded(checkpoint.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Checkpoint.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(checkpoint.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CheckpointUpsertOne) UpdateNewValues() *CheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(checkpoint.FieldID)
		}
		if _, exists := u.create.mutation.JobID(); exists {
			s.SetIgnore(checkpoint.FieldJobID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(checkpoint.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Checkpoint.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CheckpointUpsertOne) Ignore() *CheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CheckpointUpsertOne) DoNothing() *CheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CheckpointCreate.OnConflict
// documentation for more info.
func (u *CheckpointUpsertOne) Update(set func(*CheckpointUpsert)) *CheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CheckpointUpsert{UpdateSet: update})
	}))
	return u
}

// SetCurrentStepIndex sets the "current_step_index" field.
func (u *CheckpointUpsertOne) SetCurrentStepIndex(v int) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetCurrentStepIndex(v)
	})
}

// AddCurrentStepIndex adds v to the "current_step_index" field.
func (u *CheckpointUpsertOne) AddCurrentStepIndex(v int) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.AddCurrentStepIndex(v)
	})
}

// UpdateCurrentStepIndex sets the "current_step_index" field to the value that was provided on create.
func (u *CheckpointUpsertOne) UpdateCurrentStepIndex() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateCurrentStepIndex()
	})
}

// SetCompletedStepNames sets the "completed_step_names" field.
func (u *CheckpointUpsertOne) SetCompletedStepNames(v []string) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetCompletedStepNames(v)
	})
}

// UpdateCompletedStepNames sets the "completed_step_names" field to the value that was provided on create.
func (u *CheckpointUpsertOne) UpdateCompletedStepNames() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateCompletedStepNames()
	})
}

// SetAccumulatedContent sets the "accumulated_content" field.
func (u *CheckpointUpsertOne) SetAccumulatedContent(v map[string][]string) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetAccumulatedContent(v)
	})
}

// UpdateAccumulatedContent sets the "accumulated_content" field to the value that was provided on create.
func (u *CheckpointUpsertOne) UpdateAccumulatedContent() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateAccumulatedContent()
	})
}

// ClearAccumulatedContent clears the value of the "accumulated_content" field.
func (u *CheckpointUpsertOne) ClearAccumulatedContent() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.ClearAccumulatedContent()
	})
}

// SetAccumulatedSources sets the "accumulated_sources" field.
func (u *CheckpointUpsertOne) SetAccumulatedSources(v map[string]interface{}) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetAccumulatedSources(v)
	})
}

// UpdateAccumulatedSources sets the "accumulated_sources" field to the value that was provided on create.
func (u *CheckpointUpsertOne) UpdateAccumulatedSources() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateAccumulatedSources()
	})
}

// ClearAccumulatedSources clears the value of the "accumulated_sources" field.
func (u *CheckpointUpsertOne) ClearAccumulatedSources() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.ClearAccumulatedSources()
	})
}

// SetTopicSummaries sets the "topic_summaries" field.
func (u *CheckpointUpsertOne) SetTopicSummaries(v map[string]string) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetTopicSummaries(v)
	})
}

// UpdateTopicSummaries sets the "topic_summaries" field to the value that was provided on create.
func (u *CheckpointUpsertOne) UpdateTopicSummaries() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateTopicSummaries()
	})
}

// ClearTopicSummaries clears the value of the "topic_summaries" field.
func (u *CheckpointUpsertOne) ClearTopicSummaries() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.ClearTopicSummaries()
	})
}

// SetPartialExtractions sets the "partial_extractions" field.
func (u *CheckpointUpsertOne) SetPartialExtractions(v map[string]interface{}) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetPartialExtractions(v)
	})
}

// UpdatePartialExtractions sets the "partial_extractions" field to the value that was provided on create.
func (u *CheckpointUpsertOne) UpdatePartialExtractions() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdatePartialExtractions()
	})
}

// ClearPartialExtractions clears the value of the "partial_extractions" field.
func (u *CheckpointUpsertOne) ClearPartialExtractions() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.ClearPartialExtractions()
	})
}

// SetStepErrors sets the "step_errors" field.
func (u *CheckpointUpsertOne) SetStepErrors(v []map[string]interface{}) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetStepErrors(v)
	})
}

// UpdateStepErrors sets the "step_errors" field to the value that was provided on create.
func (u *CheckpointUpsertOne) UpdateStepErrors() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateStepErrors()
	})
}

// ClearStepErrors clears the value of the "step_errors" field.
func (u *CheckpointUpsertOne) ClearStepErrors() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.ClearStepErrors()
	})
}

// SetTokensUsed sets the "tokens_used" field.
func (u *CheckpointUpsertOne) SetTokensUsed(v int64) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetTokensUsed(v)
	})
}

// AddTokensUsed adds v to the "tokens_used" field.
func (u *CheckpointUpsertOne) AddTokensUsed(v int64) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.AddTokensUsed(v)
	})
}

// UpdateTokensUsed sets the "tokens_used" field to the value that was provided on create.
func (u *CheckpointUpsertOne) UpdateTokensUsed() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateTokensUsed()
	})
}

// SetStatus sets the "status" field.
func (u *CheckpointUpsertOne) SetStatus(v checkpoint.Status) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CheckpointUpsertOne) UpdateStatus() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateStatus()
	})
}

// SetSchemaVersion sets the "schema_version" field.
func (u *CheckpointUpsertOne) SetSchemaVersion(v int) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetSchemaVersion(v)
	})
}

// AddSchemaVersion adds v to the "schema_version" field.
func (u *CheckpointUpsertOne) AddSchemaVersion(v int) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.AddSchemaVersion(v)
	})
}

// UpdateSchemaVersion sets the "schema_version" field to the value that was provided on create.
func (u *CheckpointUpsertOne) UpdateSchemaVersion() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateSchemaVersion()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CheckpointUpsertOne) SetUpdatedAt(v time.Time) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CheckpointUpsertOne) UpdateUpdatedAt() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CheckpointUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CheckpointCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CheckpointUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CheckpointUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CheckpointUpsertOne.ID is not supported by MySQL driver. Use CheckpointUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CheckpointUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CheckpointCreateBulk is the builder for creating many Checkpoint entities in bulk.
type CheckpointCreateBulk struct {
	config
	err      error
	builders []*CheckpointCreate
	conflict []sql.ConflictOption
}

// Save creates the Checkpoint entities in the database.
func (_c *CheckpointCreateBulk) Save(ctx context.Context) ([]*Checkpoint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Checkpoint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CheckpointMutation)
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
func (_c *CheckpointCreateBulk) SaveX(ctx context.Context) []*Checkpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckpointCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckpointCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Checkpoint.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CheckpointUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *CheckpointCreateBulk) OnConflict(opts ...sql.ConflictOption) *CheckpointUpsertBulk {
	_c.conflict = opts
	return &CheckpointUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Checkpoint.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CheckpointCreateBulk) OnConflictColumns(columns ...string) *CheckpointUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CheckpointUpsertBulk{
		create: _c,
	}
}

// CheckpointUpsertBulk is the builder for "upsert"-ing
// a bulk of Checkpoint nodes.
type CheckpointUpsertBulk struct {
	create *CheckpointCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Checkpoint.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(checkpoint.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CheckpointUpsertBulk) UpdateNewValues() *CheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(checkpoint.FieldID)
			}
			if _, exists := b.mutation.JobID(); exists {
				s.SetIgnore(checkpoint.FieldJobID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(checkpoint.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Checkpoint.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CheckpointUpsertBulk) Ignore() *CheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CheckpointUpsertBulk) DoNothing() *CheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CheckpointCreateBulk.OnConflict
// documentation for more info.
func (u *CheckpointUpsertBulk) Update(set func(*CheckpointUpsert)) *CheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CheckpointUpsert{UpdateSet: update})
	}))
	return u
}

// SetCurrentStepIndex sets the "current_step_index" field.
func (u *CheckpointUpsertBulk) SetCurrentStepIndex(v int) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetCurrentStepIndex(v)
	})
}

// AddCurrentStepIndex adds v to the "current_step_index" field.
func (u *CheckpointUpsertBulk) AddCurrentStepIndex(v int) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.AddCurrentStepIndex(v)
	})
}

// UpdateCurrentStepIndex sets the "current_step_index" field to the value that was provided on create.
func (u *CheckpointUpsertBulk) UpdateCurrentStepIndex() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateCurrentStepIndex()
	})
}

// SetCompletedStepNames sets the "completed_step_names" field.
func (u *CheckpointUpsertBulk) SetCompletedStepNames(v []string) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetCompletedStepNames(v)
	})
}

// UpdateCompletedStepNames sets the "completed_step_names" field to the value that was provided on create.
func (u *CheckpointUpsertBulk) UpdateCompletedStepNames() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateCompletedStepNames()
	})
}

// SetAccumulatedContent sets the "accumulated_content" field.
func (u *CheckpointUpsertBulk) SetAccumulatedContent(v map[string][]string) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetAccumulatedContent(v)
	})
}

// UpdateAccumulatedContent sets the "accumulated_content" field to the value that was provided on create.
func (u *CheckpointUpsertBulk) UpdateAccumulatedContent() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateAccumulatedContent()
	})
}

// ClearAccumulatedContent clears the value of the "accumulated_content" field.
func (u *CheckpointUpsertBulk) ClearAccumulatedContent() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.ClearAccumulatedContent()
	})
}

// SetAccumulatedSources sets the "accumulated_sources" field.
func (u *CheckpointUpsertBulk) SetAccumulatedSources(v map[string]interface{}) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetAccumulatedSources(v)
	})
}

// UpdateAccumulatedSources sets the "accumulated_sources" field to the value that was provided on create.
func (u *CheckpointUpsertBulk) UpdateAccumulatedSources() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateAccumulatedSources()
	})
}

// ClearAccumulatedSources clears the value of the "accumulated_sources" field.
func (u *CheckpointUpsertBulk) ClearAccumulatedSources() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.ClearAccumulatedSources()
	})
}

// SetTopicSummaries sets the "topic_summaries" field.
func (u *CheckpointUpsertBulk) SetTopicSummaries(v map[string]string) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetTopicSummaries(v)
	})
}

// UpdateTopicSummaries sets the "topic_summaries" field to the value that was provided on create.
func (u *CheckpointUpsertBulk) UpdateTopicSummaries() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateTopicSummaries()
	})
}

// ClearTopicSummaries clears the value of the "topic_summaries" field.
func (u *CheckpointUpsertBulk) ClearTopicSummaries() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.ClearTopicSummaries()
	})
}

// SetPartialExtractions sets the "partial_extractions" field.
func (u *CheckpointUpsertBulk) SetPartialExtractions(v map[string]interface{}) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetPartialExtractions(v)
	})
}

// UpdatePartialExtractions sets the "partial_extractions" field to the value that was provided on create.
func (u *CheckpointUpsertBulk) UpdatePartialExtractions() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdatePartialExtractions()
	})
}

// ClearPartialExtractions clears the value of the "partial_extractions" field.
func (u *CheckpointUpsertBulk) ClearPartialExtractions() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.ClearPartialExtractions()
	})
}

// SetStepErrors sets the "step_errors" field.
func (u *CheckpointUpsertBulk) SetStepErrors(v []map[string]interface{}) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetStepErrors(v)
	})
}

// UpdateStepErrors sets the "step_errors" field to the value that was provided on create.
func (u *CheckpointUpsertBulk) UpdateStepErrors() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateStepErrors()
	})
}

// ClearStepErrors clears the value of the "step_errors" field.
func (u *CheckpointUpsertBulk) ClearStepErrors() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.ClearStepErrors()
	})
}

// SetTokensUsed sets the "tokens_used" field.
func (u *CheckpointUpsertBulk) SetTokensUsed(v int64) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetTokensUsed(v)
	})
}

// AddTokensUsed adds v to the "tokens_used" field.
func (u *CheckpointUpsertBulk) AddTokensUsed(v int64) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.AddTokensUsed(v)
	})
}

// UpdateTokensUsed sets the "tokens_used" field to the value that was provided on create.
func (u *CheckpointUpsertBulk) UpdateTokensUsed() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateTokensUsed()
	})
}

// SetStatus sets the "status" field.
func (u *CheckpointUpsertBulk) SetStatus(v checkpoint.Status) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CheckpointUpsertBulk) UpdateStatus() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateStatus()
	})
}

// SetSchemaVersion sets the "schema_version" field.
func (u *CheckpointUpsertBulk) SetSchemaVersion(v int) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetSchemaVersion(v)
	})
}

// AddSchemaVersion adds v to the "schema_version" field.
func (u *CheckpointUpsertBulk) AddSchemaVersion(v int) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.AddSchemaVersion(v)
	})
}

// UpdateSchemaVersion sets the "schema_version" field to the value that was provided on create.
func (u *CheckpointUpsertBulk) UpdateSchemaVersion() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateSchemaVersion()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CheckpointUpsertBulk) SetUpdatedAt(v time.Time) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CheckpointUpsertBulk) UpdateUpdatedAt() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CheckpointUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CheckpointCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CheckpointCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CheckpointUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
