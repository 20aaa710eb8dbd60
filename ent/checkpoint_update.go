// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/loreweave/loreweave/ent/checkpoint"
	"github.com/loreweave/loreweave/ent/predicate"
)

// CheckpointUpdate is the builder for updating Checkpoint entities.
type CheckpointUpdate struct {
	config
	hooks    []Hook
	mutation *CheckpointMutation
}

// Where appends a list predicates to the CheckpointUpdate builder.
func (_u *CheckpointUpdate) Where(ps ...predicate.Checkpoint) *CheckpointUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCurrentStepIndex sets the "current_step_index" field.
func (_u *CheckpointUpdate) SetCurrentStepIndex(v int) *CheckpointUpdate {
	_u.mutation.ResetCurrentStepIndex()
	_u.mutation.SetCurrentStepIndex(v)
	return _u
}

// SetNillableCurrentStepIndex sets the "current_step_index" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableCurrentStepIndex(v *int) *CheckpointUpdate {
	if v != nil {
		_u.SetCurrentStepIndex(*v)
	}
	return _u
}

// AddCurrentStepIndex adds value to the "current_step_index" field.
func (_u *CheckpointUpdate) AddCurrentStepIndex(v int) *CheckpointUpdate {
	_u.mutation.AddCurrentStepIndex(v)
	return _u
}

// SetCompletedStepNames sets the "completed_step_names" field.
func (_u *CheckpointUpdate) SetCompletedStepNames(v []string) *CheckpointUpdate {
	_u.mutation.SetCompletedStepNames(v)
	return _u
}

// AppendCompletedStepNames appends value to the "completed_step_names" field.
func (_u *CheckpointUpdate) AppendCompletedStepNames(v []string) *CheckpointUpdate {
	_u.mutation.AppendCompletedStepNames(v)
	return _u
}

// SetAccumulatedContent sets the "accumulated_content" field.
func (_u *CheckpointUpdate) SetAccumulatedContent(v map[string][]string) *CheckpointUpdate {
	_u.mutation.SetAccumulatedContent(v)
	return _u
}

// ClearAccumulatedContent clears the value of the "accumulated_content" field.
func (_u *CheckpointUpdate) ClearAccumulatedContent() *CheckpointUpdate {
	_u.mutation.ClearAccumulatedContent()
	return _u
}

// SetAccumulatedSources sets the "accumulated_sources" field.
func (_u *CheckpointUpdate) SetAccumulatedSources(v map[string]interface{}) *CheckpointUpdate {
	_u.mutation.SetAccumulatedSources(v)
	return _u
}

// ClearAccumulatedSources clears the value of the "accumulated_sources" field.
func (_u *CheckpointUpdate) ClearAccumulatedSources() *CheckpointUpdate {
	_u.mutation.ClearAccumulatedSources()
	return _u
}

// SetTopicSummaries sets the "topic_summaries" field.
func (_u *CheckpointUpdate) SetTopicSummaries(v map[string]string) *CheckpointUpdate {
	_u.mutation.SetTopicSummaries(v)
	return _u
}

// ClearTopicSummaries clears the value of the "topic_summaries" field.
func (_u *CheckpointUpdate) ClearTopicSummaries() *CheckpointUpdate {
	_u.mutation.ClearTopicSummaries()
	return _u
}

// SetPartialExtractions sets the "partial_extractions" field.
func (_u *CheckpointUpdate) SetPartialExtractions(v map[string]interface{}) *CheckpointUpdate {
	_u.mutation.SetPartialExtractions(v)
	return _u
}

// ClearPartialExtractions clears the value of the "partial_extractions" field.
func (_u *CheckpointUpdate) ClearPartialExtractions() *CheckpointUpdate {
	_u.mutation.ClearPartialExtractions()
	return _u
}

// SetStepErrors sets the "step_errors" field.
func (_u *CheckpointUpdate) SetStepErrors(v []map[string]interface{}) *CheckpointUpdate {
	_u.mutation.SetStepErrors(v)
	return _u
}

// AppendStepErrors appends value to the "step_errors" field.
func (_u *CheckpointUpdate) AppendStepErrors(v []map[string]interface{}) *CheckpointUpdate {
	_u.mutation.AppendStepErrors(v)
	return _u
}

// ClearStepErrors clears the value of the "step_errors" field.
func (_u *CheckpointUpdate) ClearStepErrors() *CheckpointUpdate {
	_u.mutation.ClearStepErrors()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *CheckpointUpdate) SetTokensUsed(v int64) *CheckpointUpdate {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableTokensUsed(v *int64) *CheckpointUpdate {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *CheckpointUpdate) AddTokensUsed(v int64) *CheckpointUpdate {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *CheckpointUpdate) SetStatus(v checkpoint.Status) *CheckpointUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableStatus(v *checkpoint.Status) *CheckpointUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSchemaVersion sets the "schema_version" field.
func (_u *CheckpointUpdate) SetSchemaVersion(v int) *CheckpointUpdate {
	_u.mutation.ResetSchemaVersion()
	_u.mutation.SetSchemaVersion(v)
	return _u
}

// SetNillableSchemaVersion sets the "schema_version" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableSchemaVersion(v *int) *CheckpointUpdate {
	if v != nil {
		_u.SetSchemaVersion(*v)
	}
	return _u
}

// AddSchemaVersion adds value to the "schema_version" field.
func (_u *CheckpointUpdate) AddSchemaVersion(v int) *CheckpointUpdate {
	_u.mutation.AddSchemaVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CheckpointUpdate) SetUpdatedAt(v time.Time) *CheckpointUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CheckpointMutation object of the builder.
func (_u *CheckpointUpdate) Mutation() *CheckpointMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CheckpointUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckpointUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CheckpointUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckpointUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CheckpointUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := checkpoint.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckpointUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := checkpoint.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Checkpoint.status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Checkpoint.job"`)
	}
	return nil
}

func (_u *CheckpointUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkpoint.Table, checkpoint.Columns, sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CurrentStepIndex(); ok {
		_spec.SetField(checkpoint.FieldCurrentStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStepIndex(); ok {
		_spec.AddField(checkpoint.FieldCurrentStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedStepNames(); ok {
		_spec.SetField(checkpoint.FieldCompletedStepNames, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedStepNames(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, checkpoint.FieldCompletedStepNames, value)
		})
	}
	if value, ok := _u.mutation.AccumulatedContent(); ok {
		_spec.SetField(checkpoint.FieldAccumulatedContent, field.TypeJSON, value)
	}
	if _u.mutation.AccumulatedContentCleared() {
		_spec.ClearField(checkpoint.FieldAccumulatedContent, field.TypeJSON)
	}
	if value, ok := _u.mutation.AccumulatedSources(); ok {
		_spec.SetField(checkpoint.FieldAccumulatedSources, field.TypeJSON, value)
	}
	if _u.mutation.AccumulatedSourcesCleared() {
		_spec.ClearField(checkpoint.FieldAccumulatedSources, field.TypeJSON)
	}
	if value, ok := _u.mutation.TopicSummaries(); ok {
		_spec.SetField(checkpoint.FieldTopicSummaries, field.TypeJSON, value)
	}
	if _u.mutation.TopicSummariesCleared() {
		_spec.ClearField(checkpoint.FieldTopicSummaries, field.TypeJSON)
	}
	if value, ok := _u.mutation.PartialExtractions(); ok {
		_spec.SetField(checkpoint.FieldPartialExtractions, field.TypeJSON, value)
	}
	if _u.mutation.PartialExtractionsCleared() {
		_spec.ClearField(checkpoint.FieldPartialExtractions, field.TypeJSON)
	}
	if value, ok := _u.mutation.StepErrors(); ok {
		_spec.SetField(checkpoint.FieldStepErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStepErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, checkpoint.FieldStepErrors, value)
		})
	}
	if _u.mutation.StepErrorsCleared() {
		_spec.ClearField(checkpoint.FieldStepErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(checkpoint.FieldTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(checkpoint.FieldTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(checkpoint.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SchemaVersion(); ok {
		_spec.SetField(checkpoint.FieldSchemaVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSchemaVersion(); ok {
		_spec.AddField(checkpoint.FieldSchemaVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(checkpoint.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CheckpointUpdateOne is the builder for updating a single Checkpoint entity.
type CheckpointUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CheckpointMutation
}

// SetCurrentStepIndex sets the "current_step_index" field.
func (_u *CheckpointUpdateOne) SetCurrentStepIndex(v int) *CheckpointUpdateOne {
	_u.mutation.ResetCurrentStepIndex()
	_u.mutation.SetCurrentStepIndex(v)
	return _u
}

// SetNillableCurrentStepIndex sets the "current_step_index" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableCurrentStepIndex(v *int) *CheckpointUpdateOne {
	if v != nil {
		_u.SetCurrentStepIndex(*v)
	}
	return _u
}

// AddCurrentStepIndex adds value to the "current_step_index" field.
func (_u *CheckpointUpdateOne) AddCurrentStepIndex(v int) *CheckpointUpdateOne {
	_u.mutation.AddCurrentStepIndex(v)
	return _u
}

// SetCompletedStepNames sets the "completed_step_names" field.
func (_u *CheckpointUpdateOne) SetCompletedStepNames(v []string) *CheckpointUpdateOne {
	_u.mutation.SetCompletedStepNames(v)
	return _u
}

// AppendCompletedStepNames appends value to the "completed_step_names" field.
func (_u *CheckpointUpdateOne) AppendCompletedStepNames(v []string) *CheckpointUpdateOne {
	_u.mutation.AppendCompletedStepNames(v)
	return _u
}

// SetAccumulatedContent sets the "accumulated_content" field.
func (_u *CheckpointUpdateOne) SetAccumulatedContent(v map[string][]string) *CheckpointUpdateOne {
	_u.mutation.SetAccumulatedContent(v)
	return _u
}

// ClearAccumulatedContent clears the value of the "accumulated_content" field.
func (_u *CheckpointUpdateOne) ClearAccumulatedContent() *CheckpointUpdateOne {
	_u.mutation.ClearAccumulatedContent()
	return _u
}

// SetAccumulatedSources sets the "accumulated_sources" field.
func (_u *CheckpointUpdateOne) SetAccumulatedSources(v map[string]interface{}) *CheckpointUpdateOne {
	_u.mutation.SetAccumulatedSources(v)
	return _u
}

// ClearAccumulatedSources clears the value of the "accumulated_sources" field.
func (_u *CheckpointUpdateOne) ClearAccumulatedSources() *CheckpointUpdateOne {
	_u.mutation.ClearAccumulatedSources()
	return _u
}

// SetTopicSummaries sets the "topic_summaries" field.
func (_u *CheckpointUpdateOne) SetTopicSummaries(v map[string]string) *CheckpointUpdateOne {
	_u.mutation.SetTopicSummaries(v)
	return _u
}

// ClearTopicSummaries clears the value of the "topic_summaries" field.
func (_u *CheckpointUpdateOne) ClearTopicSummaries() *CheckpointUpdateOne {
	_u.mutation.ClearTopicSummaries()
	return _u
}

// SetPartialExtractions sets the "partial_extractions" field.
func (_u *CheckpointUpdateOne) SetPartialExtractions(v map[string]interface{}) *CheckpointUpdateOne {
	_u.mutation.SetPartialExtractions(v)
	return _u
}

// ClearPartialExtractions clears the value of the "partial_extractions" field.
func (_u *CheckpointUpdateOne) ClearPartialExtractions() *CheckpointUpdateOne {
	_u.mutation.ClearPartialExtractions()
	return _u
}

// SetStepErrors sets the "step_errors" field.
func (_u *CheckpointUpdateOne) SetStepErrors(v []map[string]interface{}) *CheckpointUpdateOne {
	_u.mutation.SetStepErrors(v)
	return _u
}

// AppendStepErrors appends value to the "step_errors" field.
func (_u *CheckpointUpdateOne) AppendStepErrors(v []map[string]interface{}) *CheckpointUpdateOne {
	_u.mutation.AppendStepErrors(v)
	return _u
}

// ClearStepErrors clears the value of the "step_errors" field.
func (_u *CheckpointUpdateOne) ClearStepErrors() *CheckpointUpdateOne {
	_u.mutation.ClearStepErrors()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *CheckpointUpdateOne) SetTokensUsed(v int64) *CheckpointUpdateOne {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableTokensUsed(v *int64) *CheckpointUpdateOne {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *CheckpointUpdateOne) AddTokensUsed(v int64) *CheckpointUpdateOne {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *CheckpointUpdateOne) SetStatus(v checkpoint.Status) *CheckpointUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableStatus(v *checkpoint.Status) *CheckpointUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSchemaVersion sets the "schema_version" field.
func (_u *CheckpointUpdateOne) SetSchemaVersion(v int) *CheckpointUpdateOne {
	_u.mutation.ResetSchemaVersion()
	_u.mutation.SetSchemaVersion(v)
	return _u
}

// SetNillableSchemaVersion sets the "schema_version" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableSchemaVersion(v *int) *CheckpointUpdateOne {
	if v != nil {
		_u.SetSchemaVersion(*v)
	}
	return _u
}

// AddSchemaVersion adds value to the "schema_version" field.
func (_u *CheckpointUpdateOne) AddSchemaVersion(v int) *CheckpointUpdateOne {
	_u.mutation.AddSchemaVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CheckpointUpdateOne) SetUpdatedAt(v time.Time) *CheckpointUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CheckpointMutation object of the builder.
func (_u *CheckpointUpdateOne) Mutation() *CheckpointMutation {
	return _u.mutation
}

// Where appends a list predicates to the CheckpointUpdate builder.
func (_u *CheckpointUpdateOne) Where(ps ...predicate.Checkpoint) *CheckpointUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CheckpointUpdateOne) Select(field string, fields ...string) *CheckpointUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Checkpoint entity.
func (_u *CheckpointUpdateOne) Save(ctx context.Context) (*Checkpoint, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckpointUpdateOne) SaveX(ctx context.Context) *Checkpoint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CheckpointUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckpointUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CheckpointUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := checkpoint.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckpointUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := checkpoint.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Checkpoint.status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Checkpoint.job"`)
	}
	return nil
}

func (_u *CheckpointUpdateOne) sqlSave(ctx context.Context) (_node *Checkpoint, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkpoint.Table, checkpoint.Columns, sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Checkpoint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, checkpoint.FieldID)
		for _, f := range fields {
			if !checkpoint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != checkpoint.FieldID {
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
	if value, ok := _u.mutation.CurrentStepIndex(); ok {
		_spec.SetField(checkpoint.FieldCurrentStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStepIndex(); ok {
		_spec.AddField(checkpoint.FieldCurrentStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedStepNames(); ok {
		_spec.SetField(checkpoint.FieldCompletedStepNames, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedStepNames(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, checkpoint.FieldCompletedStepNames, value)
		})
	}
	if value, ok := _u.mutation.AccumulatedContent(); ok {
		_spec.SetField(checkpoint.FieldAccumulatedContent, field.TypeJSON, value)
	}
	if _u.mutation.AccumulatedContentCleared() {
		_spec.ClearField(checkpoint.FieldAccumulatedContent, field.TypeJSON)
	}
	if value, ok := _u.mutation.AccumulatedSources(); ok {
		_spec.SetField(checkpoint.FieldAccumulatedSources, field.TypeJSON, value)
	}
	if _u.mutation.AccumulatedSourcesCleared() {
		_spec.ClearField(checkpoint.FieldAccumulatedSources, field.TypeJSON)
	}
	if value, ok := _u.mutation.TopicSummaries(); ok {
		_spec.SetField(checkpoint.FieldTopicSummaries, field.TypeJSON, value)
	}
	if _u.mutation.TopicSummariesCleared() {
		_spec.ClearField(checkpoint.FieldTopicSummaries, field.TypeJSON)
	}
	if value, ok := _u.mutation.PartialExtractions(); ok {
		_spec.SetField(checkpoint.FieldPartialExtractions, field.TypeJSON, value)
	}
	if _u.mutation.PartialExtractionsCleared() {
		_spec.ClearField(checkpoint.FieldPartialExtractions, field.TypeJSON)
	}
	if value, ok := _u.mutation.StepErrors(); ok {
		_spec.SetField(checkpoint.FieldStepErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStepErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, checkpoint.FieldStepErrors, value)
		})
	}
	if _u.mutation.StepErrorsCleared() {
		_spec.ClearField(checkpoint.FieldStepErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(checkpoint.FieldTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(checkpoint.FieldTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(checkpoint.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SchemaVersion(); ok {
		_spec.SetField(checkpoint.FieldSchemaVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSchemaVersion(); ok {
		_spec.AddField(checkpoint.FieldSchemaVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(checkpoint.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Checkpoint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
