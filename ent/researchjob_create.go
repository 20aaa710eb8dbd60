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
	"github.com/loreweave/loreweave/ent/llmcall"
	"github.com/loreweave/loreweave/ent/lorepackage"
	"github.com/loreweave/loreweave/ent/researchjob"
	"github.com/loreweave/loreweave/ent/steprun"
	"github.com/loreweave/loreweave/ent/toolcall"
)

// ResearchJobCreate is the builder for creating a ResearchJob entity.
type ResearchJobCreate struct {
	config
	mutation *ResearchJobMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetZoneName sets the "zone_name" field.
func (_c *ResearchJobCreate) SetZoneName(v string) *ResearchJobCreate {
	_c.mutation.SetZoneName(v)
	return _c
}

// SetDepth sets the "depth" field.
func (_c *ResearchJobCreate) SetDepth(v int) *ResearchJobCreate {
	_c.mutation.SetDepth(v)
	return _c
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_c *ResearchJobCreate) SetNillableDepth(v *int) *ResearchJobCreate {
	if v != nil {
		_c.SetDepth(*v)
	}
	return _c
}

// SetBudgetTokens sets the "budget_tokens" field.
func (_c *ResearchJobCreate) SetBudgetTokens(v int64) *ResearchJobCreate {
	_c.mutation.SetBudgetTokens(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *ResearchJobCreate) SetModel(v string) *ResearchJobCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *ResearchJobCreate) SetNillableModel(v *string) *ResearchJobCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ResearchJobCreate) SetStatus(v researchjob.Status) *ResearchJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ResearchJobCreate) SetNillableStatus(v *researchjob.Status) *ResearchJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCancelRequested sets the "cancel_requested" field.
func (_c *ResearchJobCreate) SetCancelRequested(v bool) *ResearchJobCreate {
	_c.mutation.SetCancelRequested(v)
	return _c
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_c *ResearchJobCreate) SetNillableCancelRequested(v *bool) *ResearchJobCreate {
	if v != nil {
		_c.SetCancelRequested(*v)
	}
	return _c
}

// SetRequestedBy sets the "requested_by" field.
func (_c *ResearchJobCreate) SetRequestedBy(v string) *ResearchJobCreate {
	_c.mutation.SetRequestedBy(v)
	return _c
}

// SetNillableRequestedBy sets the "requested_by" field if the given value is not nil.
func (_c *ResearchJobCreate) SetNillableRequestedBy(v *string) *ResearchJobCreate {
	if v != nil {
		_c.SetRequestedBy(*v)
	}
	return _c
}

// SetParentJobID sets the "parent_job_id" field.
func (_c *ResearchJobCreate) SetParentJobID(v string) *ResearchJobCreate {
	_c.mutation.SetParentJobID(v)
	return _c
}

// SetNillableParentJobID sets the "parent_job_id" field if the given value is not nil.
func (_c *ResearchJobCreate) SetNillableParentJobID(v *string) *ResearchJobCreate {
	if v != nil {
		_c.SetParentJobID(*v)
	}
	return _c
}

// SetClaimedBy sets the "claimed_by" field.
func (_c *ResearchJobCreate) SetClaimedBy(v string) *ResearchJobCreate {
	_c.mutation.SetClaimedBy(v)
	return _c
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_c *ResearchJobCreate) SetNillableClaimedBy(v *string) *ResearchJobCreate {
	if v != nil {
		_c.SetClaimedBy(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *ResearchJobCreate) SetLastHeartbeatAt(v time.Time) *ResearchJobCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *ResearchJobCreate) SetNillableLastHeartbeatAt(v *time.Time) *ResearchJobCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetResumeAt sets the "resume_at" field.
func (_c *ResearchJobCreate) SetResumeAt(v time.Time) *ResearchJobCreate {
	_c.mutation.SetResumeAt(v)
	return _c
}

// SetNillableResumeAt sets the "resume_at" field if the given value is not nil.
func (_c *ResearchJobCreate) SetNillableResumeAt(v *time.Time) *ResearchJobCreate {
	if v != nil {
		_c.SetResumeAt(*v)
	}
	return _c
}

// SetResumeCount sets the "resume_count" field.
func (_c *ResearchJobCreate) SetResumeCount(v int) *ResearchJobCreate {
	_c.mutation.SetResumeCount(v)
	return _c
}

// SetNillableResumeCount sets the "resume_count" field if the given value is not nil.
func (_c *ResearchJobCreate) SetNillableResumeCount(v *int) *ResearchJobCreate {
	if v != nil {
		_c.SetResumeCount(*v)
	}
	return _c
}

// SetErrorKind sets the "error_kind" field.
func (_c *ResearchJobCreate) SetErrorKind(v string) *ResearchJobCreate {
	_c.mutation.SetErrorKind(v)
	return _c
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_c *ResearchJobCreate) SetNillableErrorKind(v *string) *ResearchJobCreate {
	if v != nil {
		_c.SetErrorKind(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ResearchJobCreate) SetErrorMessage(v string) *ResearchJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ResearchJobCreate) SetNillableErrorMessage(v *string) *ResearchJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ResearchJobCreate) SetCreatedAt(v time.Time) *ResearchJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ResearchJobCreate) SetNillableCreatedAt(v *time.Time) *ResearchJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ResearchJobCreate) SetStartedAt(v time.Time) *ResearchJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ResearchJobCreate) SetNillableStartedAt(v *time.Time) *ResearchJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ResearchJobCreate) SetCompletedAt(v time.Time) *ResearchJobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ResearchJobCreate) SetNillableCompletedAt(v *time.Time) *ResearchJobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ResearchJobCreate) SetID(v string) *ResearchJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCheckpointID sets the "checkpoint" edge to the Checkpoint entity by ID.
func (_c *ResearchJobCreate) SetCheckpointID(id string) *ResearchJobCreate {
	_c.mutation.SetCheckpointID(id)
	return _c
}

// SetNillableCheckpointID sets the "checkpoint" edge to the Checkpoint entity by ID if the given value is not nil.
func (_c *ResearchJobCreate) SetNillableCheckpointID(id *string) *ResearchJobCreate {
	if id != nil {
		_c = _c.SetCheckpointID(*id)
	}
	return _c
}

// SetCheckpoint sets the "checkpoint" edge to the Checkpoint entity.
func (_c *ResearchJobCreate) SetCheckpoint(v *Checkpoint) *ResearchJobCreate {
	return _c.SetCheckpointID(v.ID)
}

// AddStepRunIDs adds the "step_runs" edge to the StepRun entity by IDs.
func (_c *ResearchJobCreate) AddStepRunIDs(ids ...string) *ResearchJobCreate {
	_c.mutation.AddStepRunIDs(ids...)
	return _c
}

// AddStepRuns adds the "step_runs" edges to the StepRun entity.
func (_c *ResearchJobCreate) AddStepRuns(v ...*StepRun) *ResearchJobCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepRunIDs(ids...)
}

// AddLlmCallIDs adds the "llm_calls" edge to the LLMCall entity by IDs.
func (_c *ResearchJobCreate) AddLlmCallIDs(ids ...string) *ResearchJobCreate {
	_c.mutation.AddLlmCallIDs(ids...)
	return _c
}

// AddLlmCalls adds the "llm_calls" edges to the LLMCall entity.
func (_c *ResearchJobCreate) AddLlmCalls(v ...*LLMCall) *ResearchJobCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLlmCallIDs(ids...)
}

// AddToolCallIDs adds the "tool_calls" edge to the ToolCall entity by IDs.
func (_c *ResearchJobCreate) AddToolCallIDs(ids ...string) *ResearchJobCreate {
	_c.mutation.AddToolCallIDs(ids...)
	return _c
}

// AddToolCalls adds the "tool_calls" edges to the ToolCall entity.
func (_c *ResearchJobCreate) AddToolCalls(v ...*ToolCall) *ResearchJobCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddToolCallIDs(ids...)
}

// SetPackageID sets the "package" edge to the LorePackage entity by ID.
func (_c *ResearchJobCreate) SetPackageID(id string) *ResearchJobCreate {
	_c.mutation.SetPackageID(id)
	return _c
}

// SetNillablePackageID sets the "package" edge to the LorePackage entity by ID if the given value is not nil.
func (_c *ResearchJobCreate) SetNillablePackageID(id *string) *ResearchJobCreate {
	if id != nil {
		_c = _c.SetPackageID(*id)
	}
	return _c
}

// SetPackage sets the "package" edge to the LorePackage entity.
func (_c *ResearchJobCreate) SetPackage(v *LorePackage) *ResearchJobCreate {
	return _c.SetPackageID(v.ID)
}

// Mutation returns the ResearchJobMutation object of the builder.
func (_c *ResearchJobCreate) Mutation() *ResearchJobMutation {
	return _c.mutation
}

// Save creates the ResearchJob in the database.
func (_c *ResearchJobCreate) Save(ctx context.Context) (*ResearchJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResearchJobCreate) SaveX(ctx context.Context) *ResearchJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearchJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearchJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResearchJobCreate) defaults() {
	if _, ok := _c.mutation.Depth(); !ok {
		v := researchjob.DefaultDepth
		_c.mutation.SetDepth(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := researchjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		v := researchjob.DefaultCancelRequested
		_c.mutation.SetCancelRequested(v)
	}
	if _, ok := _c.mutation.ResumeCount(); !ok {
		v := researchjob.DefaultResumeCount
		_c.mutation.SetResumeCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := researchjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResearchJobCreate) check() error {
	if _, ok := _c.mutation.ZoneName(); !ok {
		return &ValidationError{Name: "zone_name", err: errors.New(`ent: missing required field "ResearchJob.zone_name"`)}
	}
	if _, ok := _c.mutation.Depth(); !ok {
		return &ValidationError{Name: "depth", err: errors.New(`ent: missing required field "ResearchJob.depth"`)}
	}
	if _, ok := _c.mutation.BudgetTokens(); !ok {
		return &ValidationError{Name: "budget_tokens", err: errors.New(`ent: missing required field "ResearchJob.budget_tokens"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ResearchJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := researchjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ResearchJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		return &ValidationError{Name: "cancel_requested", err: errors.New(`ent: missing required field "ResearchJob.cancel_requested"`)}
	}
	if _, ok := _c.mutation.ResumeCount(); !ok {
		return &ValidationError{Name: "resume_count", err: errors.New(`ent: missing required field "ResearchJob.resume_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ResearchJob.created_at"`)}
	}
	return nil
}

func (_c *ResearchJobCreate) sqlSave(ctx context.Context) (*ResearchJob, error) {
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
			return nil, fmt.Errorf("unexpected ResearchJob.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResearchJobCreate) createSpec() (*ResearchJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ResearchJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(researchjob.Table, sqlgraph.NewFieldSpec(researchjob.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ZoneName(); ok {
		_spec.SetField(researchjob.FieldZoneName, field.TypeString, value)
		_node.ZoneName = value
	}
	if value, ok := _c.mutation.Depth(); ok {
		_spec.SetField(researchjob.FieldDepth, field.TypeInt, value)
		_node.Depth = value
	}
	if value, ok := _c.mutation.BudgetTokens(); ok {
		_spec.SetField(researchjob.FieldBudgetTokens, field.TypeInt64, value)
		_node.BudgetTokens = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(researchjob.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(researchjob.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CancelRequested(); ok {
		_spec.SetField(researchjob.FieldCancelRequested, field.TypeBool, value)
		_node.CancelRequested = value
	}
	if value, ok := _c.mutation.RequestedBy(); ok {
		_spec.SetField(researchjob.FieldRequestedBy, field.TypeString, value)
		_node.RequestedBy = &value
	}
	if value, ok := _c.mutation.ParentJobID(); ok {
		_spec.SetField(researchjob.FieldParentJobID, field.TypeString, value)
		_node.ParentJobID = &value
	}
	if value, ok := _c.mutation.ClaimedBy(); ok {
		_spec.SetField(researchjob.FieldClaimedBy, field.TypeString, value)
		_node.ClaimedBy = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(researchjob.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.ResumeAt(); ok {
		_spec.SetField(researchjob.FieldResumeAt, field.TypeTime, value)
		_node.ResumeAt = &value
	}
	if value, ok := _c.mutation.ResumeCount(); ok {
		_spec.SetField(researchjob.FieldResumeCount, field.TypeInt, value)
		_node.ResumeCount = value
	}
	if value, ok := _c.mutation.ErrorKind(); ok {
		_spec.SetField(researchjob.FieldErrorKind, field.TypeString, value)
		_node.ErrorKind = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(researchjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(researchjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(researchjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(researchjob.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.CheckpointIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   researchjob.CheckpointTable,
			Columns: []string{researchjob.CheckpointColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StepRunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchjob.StepRunsTable,
			Columns: []string{researchjob.StepRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(steprun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LlmCallsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchjob.LlmCallsTable,
			Columns: []string{researchjob.LlmCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(llmcall.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ToolCallsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchjob.ToolCallsTable,
			Columns: []string{researchjob.ToolCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PackageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   researchjob.PackageTable,
			Columns: []string{researchjob.PackageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lorepackage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ResearchJob.Create().
//		SetZoneName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ResearchJobUpsert) {
//			SetZoneName(v+v).
//		}).
//		Exec(ctx)
func (_c *ResearchJobCreate) OnConflict(opts ...sql.ConflictOption) *ResearchJobUpsertOne {
	_c.conflict = opts
	return &ResearchJobUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ResearchJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ResearchJobCreate) OnConflictColumns(columns ...string) *ResearchJobUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ResearchJobUpsertOne{
		create: _c,
	}
}

type (
	// ResearchJobUpsertOne is the builder for "upsert"-ing
	//  one ResearchJob node.
	ResearchJobUpsertOne struct {
		create *ResearchJobCreate
	}

	// ResearchJobUpsert is the "OnConflict" setter.
	ResearchJobUpsert struct {
		*sql.UpdateSet
	}
)

// SetZoneName sets the "zone_name" field.
func (u *ResearchJobUpsert) SetZoneName(v string) *ResearchJobUpsert {
	u.Set(researchjob.FieldZoneName, v)
	return u
}

// UpdateZoneName sets the "zone_name" field to the value that was provided on create.
func (u *ResearchJobUpsert) UpdateZoneName() *ResearchJobUpsert {
	u.SetExcluded(researchjob.FieldZoneName)
	return u
}

// SetDepth sets the "depth" field.
func (u *ResearchJobUpsert) SetDepth(v int) *ResearchJobUpsert {
	u.Set(researchjob.FieldDepth, v)
	return u
}

// UpdateDepth sets the "depth" field to the value that was provided on create.
func (u *ResearchJobUpsert) UpdateDepth() *ResearchJobUpsert {
	u.SetExcluded(researchjob.FieldDepth)
	return u
}

// AddDepth adds v to the "depth" field.
func (u *ResearchJobUpsert) AddDepth(v int) *ResearchJobUpsert {
	u.Add(researchjob.FieldDepth, v)
	return u
}

// SetBudgetTokens sets the "budget_tokens" field.
func (u *ResearchJobUpsert) SetBudgetTokens(v int64) *ResearchJobUpsert {
	u.Set(researchjob.FieldBudgetTokens, v)
	return u
}

// UpdateBudgetTokens sets the "budget_tokens" field to the value that was provided on create.
func (u *ResearchJobUpsert) UpdateBudgetTokens() *ResearchJobUpsert {
	u.SetExcluded(researchjob.FieldBudgetTokens)
	return u
}

// AddBudgetTokens adds v to the "budget_tokens" field.
func (u *ResearchJobUpsert) AddBudgetTokens(v int64) *ResearchJobUpsert {
	u.Add(researchjob.FieldBudgetTokens, v)
	return u
}

// SetModel sets the "model" field.
func (u *ResearchJobUpsert) SetModel(v string) *ResearchJobUpsert {
	u.Set(researchjob.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *ResearchJobUpsert) UpdateModel() *ResearchJobUpsert {
	u.SetExcluded(researchjob.FieldModel)
	return u
}

// ClearModel clears the value of the "model" field.
func (u *ResearchJobUpsert) ClearModel() *ResearchJobUpsert {
	u.SetNull(researchjob.FieldModel)
	return u
}

// SetStatus sets the "status" field.
func (u *ResearchJobUpsert) SetStatus(v researchjob.Status) *ResearchJobUpsert {
	u.Set(researchjob.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ResearchJobUpsert) UpdateStatus() *ResearchJobUpsert {
	u.SetExcluded(researchjob.FieldStatus)
	return u
}

// SetCancelRequested sets the "cancel_requested" field.
func (u *ResearchJobUpsert) SetCancelRequested(v bool) *ResearchJobUpsert {
	u.Set(researchjob.FieldCancelRequested, v)
	return u
}

// UpdateCancelRequested sets the "cancel_requested" field to the value that was provided on create.
func (u *ResearchJobUpsert) UpdateCancelRequested() *ResearchJobUpsert {
	u.SetExcluded(researchjob.FieldCancelRequested)
	return u
}

// SetRequestedBy sets the "requested_by" field.
func (u *ResearchJobUpsert) SetRequestedBy(v string) *ResearchJobUpsert {
	u.Set(researchjob.FieldRequestedBy, v)
	return u
}

// UpdateRequestedBy sets the "requested_by" field to the value that was provided on create.
func (u *ResearchJobUpsert) UpdateRequestedBy() *ResearchJobUpsert {
	u.SetExcluded(researchjob.FieldRequestedBy)
	return u
}

// ClearRequestedBy clears the value of the "requested_by" field.
func (u *ResearchJobUpsert) ClearRequestedBy() *ResearchJobUpsert {
	u.SetNull(researchjob.FieldRequestedBy)
	return u
}

// SetParentJobID sets the "parent_job_id" field.
func (u *ResearchJobUpsert) SetParentJobID(v string) *ResearchJobUpsert {
	u.Set(researchjob.FieldParentJobID, v)
	return u
}

// UpdateParentJobID sets the "parent_job_id" field to the value that was provided on create.
func (u *ResearchJobUpsert) UpdateParentJobID() *ResearchJobUpsert {
	u.SetExcluded(researchjob.FieldParentJobID)
	return u
}

// ClearParentJobID clears the value of the "parent_job_id" field.
func (u *ResearchJobUpsert) ClearParentJobID() *ResearchJobUpsert {
	u.SetNull(researchjob.FieldParentJobID)
	return u
}

// SetClaimedBy sets the "claimed_by" field.
func (u *ResearchJobUpsert) SetClaimedBy(v string) *ResearchJobUpsert {
	u.Set(researchjob.FieldClaimedBy, v)
	return u
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *ResearchJobUpsert) UpdateClaimedBy() *ResearchJobUpsert {
	u.SetExcluded(researchjob.FieldClaimedBy)
	return u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *ResearchJobUpsert) ClearClaimedBy() *ResearchJobUpsert {
	u.SetNull(researchjob.FieldClaimedBy)
	return u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *ResearchJobUpsert) SetLastHeartbeatAt(v time.Time) *ResearchJobUpsert {
	u.Set(researchjob.FieldLastHeartbeatAt, v)
	return u
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *ResearchJobUpsert) UpdateLastHeartbeatAt() *ResearchJobUpsert {
	u.SetExcluded(researchjob.FieldLastHeartbeatAt)
	return u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *ResearchJobUpsert) ClearLastHeartbeatAt() *ResearchJobUpsert {
	u.SetNull(researchjob.FieldLastHeartbeatAt)
	return u
}

// SetResumeAt sets the "resume_at" field.
func (u *ResearchJobUpsert) SetResumeAt(v time.Time) *ResearchJobUpsert {
	u.Set(researchjob.FieldResumeAt, v)
	return u
}

// UpdateResumeAt sets the "resume_at" field to the value that was provided on create.
func (u *ResearchJobUpsert) UpdateResumeAt() *ResearchJobUpsert {
	u.SetExcluded(researchjob.FieldResumeAt)
	return u
}

// ClearResumeAt clears the value of the "resume_at" field.
func (u *ResearchJobUpsert) ClearResumeAt() *ResearchJobUpsert {
	u.SetNull(researchjob.FieldResumeAt)
	return u
}

// SetResumeCount sets the "resume_count" field.
func (u *ResearchJobUpsert) SetResumeCount(v int) *ResearchJobUpsert {
	u.Set(researchjob.FieldResumeCount, v)
	return u
}

// UpdateResumeCount sets the "resume_count" field to the value that was provided on create.
func (u *ResearchJobUpsert) UpdateResumeCount() *ResearchJobUpsert {
	u.SetExcluded(researchjob.FieldResumeCount)
	return u
}

// AddResumeCount adds v to the "resume_count" field.
func (u *ResearchJobUpsert) AddResumeCount(v int) *ResearchJobUpsert {
	u.Add(researchjob.FieldResumeCount, v)
	return u
}

// SetErrorKind sets the "error_kind" field.
func (u *ResearchJobUpsert) SetErrorKind(v string) *ResearchJobUpsert {
	u.Set(researchjob.FieldErrorKind, v)
	return u
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *ResearchJobUpsert) UpdateErrorKind() *ResearchJobUpsert {
	u.SetExcluded(researchjob.FieldErrorKind)
	return u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *ResearchJobUpsert) ClearErrorKind() *ResearchJobUpsert {
	u.SetNull(researchjob.FieldErrorKind)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *ResearchJobUpsert) SetErrorMessage(v string) *ResearchJobUpsert {
	u.Set(researchjob.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ResearchJobUpsert) UpdateErrorMessage() *ResearchJobUpsert {
	u.SetExcluded(researchjob.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ResearchJobUpsert) ClearErrorMessage() *ResearchJobUpsert {
	u.SetNull(researchjob.FieldErrorMessage)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *ResearchJobUpsert) SetStartedAt(v time.Time) *ResearchJobUpsert {
	u.Set(researchjob.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *ResearchJobUpsert) UpdateStartedAt() *ResearchJobUpsert {
	u.SetExcluded(researchjob.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *ResearchJobUpsert) ClearStartedAt() *ResearchJobUpsert {
	u.SetNull(researchjob.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *ResearchJobUpsert) SetCompletedAt(v time.Time) *ResearchJobUpsert {
	u.Set(researchjob.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ResearchJobUpsert) UpdateCompletedAt() *ResearchJobUpsert {
	u.SetExcluded(researchjob.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ResearchJobUpsert) ClearCompletedAt() *ResearchJobUpsert {
	u.SetNull(researchjob.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ResearchJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(researchjob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ResearchJobUpsertOne) UpdateNewValues() *ResearchJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(researchjob.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(researchjob.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ResearchJob.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ResearchJobUpsertOne) Ignore() *ResearchJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ResearchJobUpsertOne) DoNothing() *ResearchJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ResearchJobCreate.OnConflict
// documentation for more info.
func (u *ResearchJobUpsertOne) Update(set func(*ResearchJobUpsert)) *ResearchJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ResearchJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetZoneName sets the "zone_name" field.
func (u *ResearchJobUpsertOne) SetZoneName(v string) *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.SetZoneName(v)
	})
}

// UpdateZoneName sets the "zone_name" field to the value that was provided on create.
func (u *ResearchJobUpsertOne) UpdateZoneName() *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.UpdateZoneName()
	})
}

// SetDepth sets the "depth" field.
func (u *ResearchJobUpsertOne) SetDepth(v int) *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.SetDepth(v)
	})
}

// AddDepth adds v to the "depth" field.
func (u *ResearchJobUpsertOne) AddDepth(v int) *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.AddDepth(v)
	})
}

// UpdateDepth sets the "depth" field to the value that was provided on create.
func (u *ResearchJobUpsertOne) UpdateDepth() *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.UpdateDepth()
	})
}

// SetBudgetTokens sets the "budget_tokens" field.
func (u *ResearchJobUpsertOne) SetBudgetTokens(v int64) *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.SetBudgetTokens(v)
	})
}

// AddBudgetTokens adds v to the "budget_tokens" field.
func (u *ResearchJobUpsertOne) AddBudgetTokens(v int64) *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.AddBudgetTokens(v)
	})
}

// UpdateBudgetTokens sets the "budget_tokens" field to the value that was provided on create.
func (u *ResearchJobUpsertOne) UpdateBudgetTokens() *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.UpdateBudgetTokens()
	})
}

// SetModel sets the "model" field.
func (u *ResearchJobUpsertOne) SetModel(v string) *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *ResearchJobUpsertOne) UpdateModel() *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.UpdateModel()
	})
}

// ClearModel clears the value of the "model" field.
func (u *ResearchJobUpsertOne) ClearModel() *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.ClearModel()
	})
}

// SetStatus sets the "status" field.
func (u *ResearchJobUpsertOne) SetStatus(v researchjob.Status) *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ResearchJobUpsertOne) UpdateStatus() *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.UpdateStatus()
	})
}

// SetCancelRequested sets the "cancel_requested" field.
func (u *ResearchJobUpsertOne) SetCancelRequested(v bool) *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.SetCancelRequested(v)
	})
}

// UpdateCancelRequested sets the "cancel_requested" field to the value that was provided on create.
func (u *ResearchJobUpsertOne) UpdateCancelRequested() *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.UpdateCancelRequested()
	})
}

// SetRequestedBy sets the "requested_by" field.
func (u *ResearchJobUpsertOne) SetRequestedBy(v string) *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.SetRequestedBy(v)
	})
}

// UpdateRequestedBy sets the "requested_by" field to the value that was provided on create.
func (u *ResearchJobUpsertOne) UpdateRequestedBy() *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.UpdateRequestedBy()
	})
}

// ClearRequestedBy clears the value of the "requested_by" field.
func (u *ResearchJobUpsertOne) ClearRequestedBy() *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.ClearRequestedBy()
	})
}

// SetParentJobID sets the "parent_job_id" field.
func (u *ResearchJobUpsertOne) SetParentJobID(v string) *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.SetParentJobID(v)
	})
}

// UpdateParentJobID sets the "parent_job_id" field to the value that was provided on create.
func (u *ResearchJobUpsertOne) UpdateParentJobID() *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.UpdateParentJobID()
	})
}

// ClearParentJobID clears the value of the "parent_job_id" field.
func (u *ResearchJobUpsertOne) ClearParentJobID() *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.ClearParentJobID()
	})
}

// SetClaimedBy sets the "claimed_by" field.
func (u *ResearchJobUpsertOne) SetClaimedBy(v string) *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.SetClaimedBy(v)
	})
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *ResearchJobUpsertOne) UpdateClaimedBy() *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.UpdateClaimedBy()
	})
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *ResearchJobUpsertOne) ClearClaimedBy() *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.ClearClaimedBy()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *ResearchJobUpsertOne) SetLastHeartbeatAt(v time.Time) *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *ResearchJobUpsertOne) UpdateLastHeartbeatAt() *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *ResearchJobUpsertOne) ClearLastHeartbeatAt() *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetResumeAt sets the "resume_at" field.
func (u *ResearchJobUpsertOne) SetResumeAt(v time.Time) *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.SetResumeAt(v)
	})
}

// UpdateResumeAt sets the "resume_at" field to the value that was provided on create.
func (u *ResearchJobUpsertOne) UpdateResumeAt() *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.UpdateResumeAt()
	})
}

// ClearResumeAt clears the value of the "resume_at" field.
func (u *ResearchJobUpsertOne) ClearResumeAt() *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.ClearResumeAt()
	})
}

// SetResumeCount sets the "resume_count" field.
func (u *ResearchJobUpsertOne) SetResumeCount(v int) *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.SetResumeCount(v)
	})
}

// AddResumeCount adds v to the "resume_count" field.
func (u *ResearchJobUpsertOne) AddResumeCount(v int) *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.AddResumeCount(v)
	})
}

// UpdateResumeCount sets the "resume_count" field to the value that was provided on create.
func (u *ResearchJobUpsertOne) UpdateResumeCount() *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.UpdateResumeCount()
	})
}

// SetErrorKind sets the "error_kind" field.
func (u *ResearchJobUpsertOne) SetErrorKind(v string) *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.SetErrorKind(v)
	})
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *ResearchJobUpsertOne) UpdateErrorKind() *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.UpdateErrorKind()
	})
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *ResearchJobUpsertOne) ClearErrorKind() *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.ClearErrorKind()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ResearchJobUpsertOne) SetErrorMessage(v string) *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ResearchJobUpsertOne) UpdateErrorMessage() *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ResearchJobUpsertOne) ClearErrorMessage() *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.ClearErrorMessage()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *ResearchJobUpsertOne) SetStartedAt(v time.Time) *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *ResearchJobUpsertOne) UpdateStartedAt() *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *ResearchJobUpsertOne) ClearStartedAt() *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *ResearchJobUpsertOne) SetCompletedAt(v time.Time) *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ResearchJobUpsertOne) UpdateCompletedAt() *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ResearchJobUpsertOne) ClearCompletedAt() *ResearchJobUpsertOne {
	return u.Update(func(s *ResearchJobUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *ResearchJobUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ResearchJobCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ResearchJobUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ResearchJobUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ResearchJobUpsertOne.ID is not supported by MySQL driver. Use ResearchJobUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ResearchJobUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ResearchJobCreateBulk is the builder for creating many ResearchJob entities in bulk.
type ResearchJobCreateBulk struct {
	config
	err      error
	builders []*ResearchJobCreate
	conflict []sql.ConflictOption
}

// Save creates the ResearchJob entities in the database.
func (_c *ResearchJobCreateBulk) Save(ctx context.Context) ([]*ResearchJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResearchJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResearchJobMutation)
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
func (_c *ResearchJobCreateBulk) SaveX(ctx context.Context) []*ResearchJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearchJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearchJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ResearchJob.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ResearchJobUpsert) {
//			SetZoneName(v+v).
//		}).
//		Exec(ctx)
func (_c *ResearchJobCreateBulk) OnConflict(opts ...sql.ConflictOption) *ResearchJobUpsertBulk {
	_c.conflict = opts
	return &ResearchJobUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ResearchJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ResearchJobCreateBulk) OnConflictColumns(columns ...string) *ResearchJobUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ResearchJobUpsertBulk{
		create: _c,
	}
}

// ResearchJobUpsertBulk is the builder for "upsert"-ing
// a bulk of ResearchJob nodes.
type ResearchJobUpsertBulk struct {
	create *ResearchJobCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ResearchJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(researchjob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ResearchJobUpsertBulk) UpdateNewValues() *ResearchJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(researchjob.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(researchjob.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ResearchJob.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ResearchJobUpsertBulk) Ignore() *ResearchJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ResearchJobUpsertBulk) DoNothing() *ResearchJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ResearchJobCreateBulk.OnConflict
// documentation for more info.
func (u *ResearchJobUpsertBulk) Update(set func(*ResearchJobUpsert)) *ResearchJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ResearchJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetZoneName sets the "zone_name" field.
func (u *ResearchJobUpsertBulk) SetZoneName(v string) *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.SetZoneName(v)
	})
}

// UpdateZoneName sets the "zone_name" field to the value that was provided on create.
func (u *ResearchJobUpsertBulk) UpdateZoneName() *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.UpdateZoneName()
	})
}

// SetDepth sets the "depth" field.
func (u *ResearchJobUpsertBulk) SetDepth(v int) *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.SetDepth(v)
	})
}

// AddDepth adds v to the "depth" field.
func (u *ResearchJobUpsertBulk) AddDepth(v int) *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.AddDepth(v)
	})
}

// UpdateDepth sets the "depth" field to the value that was provided on create.
func (u *ResearchJobUpsertBulk) UpdateDepth() *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.UpdateDepth()
	})
}

// SetBudgetTokens sets the "budget_tokens" field.
func (u *ResearchJobUpsertBulk) SetBudgetTokens(v int64) *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.SetBudgetTokens(v)
	})
}

// AddBudgetTokens adds v to the "budget_tokens" field.
func (u *ResearchJobUpsertBulk) AddBudgetTokens(v int64) *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.AddBudgetTokens(v)
	})
}

// UpdateBudgetTokens sets the "budget_tokens" field to the value that was provided on create.
func (u *ResearchJobUpsertBulk) UpdateBudgetTokens() *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.UpdateBudgetTokens()
	})
}

// SetModel sets the "model" field.
func (u *ResearchJobUpsertBulk) SetModel(v string) *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *ResearchJobUpsertBulk) UpdateModel() *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.UpdateModel()
	})
}

// ClearModel clears the value of the "model" field.
func (u *ResearchJobUpsertBulk) ClearModel() *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.ClearModel()
	})
}

// SetStatus sets the "status" field.
func (u *ResearchJobUpsertBulk) SetStatus(v researchjob.Status) *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ResearchJobUpsertBulk) UpdateStatus() *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.UpdateStatus()
	})
}

// SetCancelRequested sets the "cancel_requested" field.
func (u *ResearchJobUpsertBulk) SetCancelRequested(v bool) *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.SetCancelRequested(v)
	})
}

// UpdateCancelRequested sets the "cancel_requested" field to the value that was provided on create.
func (u *ResearchJobUpsertBulk) UpdateCancelRequested() *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.UpdateCancelRequested()
	})
}

// SetRequestedBy sets the "requested_by" field.
func (u *ResearchJobUpsertBulk) SetRequestedBy(v string) *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.SetRequestedBy(v)
	})
}

// UpdateRequestedBy sets the "requested_by" field to the value that was provided on create.
func (u *ResearchJobUpsertBulk) UpdateRequestedBy() *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.UpdateRequestedBy()
	})
}

// ClearRequestedBy clears the value of the "requested_by" field.
func (u *ResearchJobUpsertBulk) ClearRequestedBy() *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.ClearRequestedBy()
	})
}

// SetParentJobID sets the "parent_job_id" field.
func (u *ResearchJobUpsertBulk) SetParentJobID(v string) *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.SetParentJobID(v)
	})
}

// UpdateParentJobID sets the "parent_job_id" field to the value that was provided on create.
func (u *ResearchJobUpsertBulk) UpdateParentJobID() *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.UpdateParentJobID()
	})
}

// ClearParentJobID clears the value of the "parent_job_id" field.
func (u *ResearchJobUpsertBulk) ClearParentJobID() *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.ClearParentJobID()
	})
}

// SetClaimedBy sets the "claimed_by" field.
func (u *ResearchJobUpsertBulk) SetClaimedBy(v string) *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.SetClaimedBy(v)
	})
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *ResearchJobUpsertBulk) UpdateClaimedBy() *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.UpdateClaimedBy()
	})
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *ResearchJobUpsertBulk) ClearClaimedBy() *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.ClearClaimedBy()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *ResearchJobUpsertBulk) SetLastHeartbeatAt(v time.Time) *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *ResearchJobUpsertBulk) UpdateLastHeartbeatAt() *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *ResearchJobUpsertBulk) ClearLastHeartbeatAt() *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetResumeAt sets the "resume_at" field.
func (u *ResearchJobUpsertBulk) SetResumeAt(v time.Time) *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.SetResumeAt(v)
	})
}

// UpdateResumeAt sets the "resume_at" field to the value that was provided on create.
func (u *ResearchJobUpsertBulk) UpdateResumeAt() *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.UpdateResumeAt()
	})
}

// ClearResumeAt clears the value of the "resume_at" field.
func (u *ResearchJobUpsertBulk) ClearResumeAt() *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.ClearResumeAt()
	})
}

// SetResumeCount sets the "resume_count" field.
func (u *ResearchJobUpsertBulk) SetResumeCount(v int) *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.SetResumeCount(v)
	})
}

// AddResumeCount adds v to the "resume_count" field.
func (u *ResearchJobUpsertBulk) AddResumeCount(v int) *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.AddResumeCount(v)
	})
}

// UpdateResumeCount sets the "resume_count" field to the value that was provided on create.
func (u *ResearchJobUpsertBulk) UpdateResumeCount() *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.UpdateResumeCount()
	})
}

// SetErrorKind sets the "error_kind" field.
func (u *ResearchJobUpsertBulk) SetErrorKind(v string) *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.SetErrorKind(v)
	})
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *ResearchJobUpsertBulk) UpdateErrorKind() *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.UpdateErrorKind()
	})
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *ResearchJobUpsertBulk) ClearErrorKind() *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.ClearErrorKind()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ResearchJobUpsertBulk) SetErrorMessage(v string) *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ResearchJobUpsertBulk) UpdateErrorMessage() *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ResearchJobUpsertBulk) ClearErrorMessage() *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.ClearErrorMessage()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *ResearchJobUpsertBulk) SetStartedAt(v time.Time) *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *ResearchJobUpsertBulk) UpdateStartedAt() *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *ResearchJobUpsertBulk) ClearStartedAt() *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *ResearchJobUpsertBulk) SetCompletedAt(v time.Time) *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ResearchJobUpsertBulk) UpdateCompletedAt() *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ResearchJobUpsertBulk) ClearCompletedAt() *ResearchJobUpsertBulk {
	return u.Update(func(s *ResearchJobUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *ResearchJobUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ResearchJobCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ResearchJobCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ResearchJobUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
