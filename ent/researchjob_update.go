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
	"github.com/loreweave/loreweave/ent/checkpoint"
	"github.com/loreweave/loreweave/ent/llmcall"
	"github.com/loreweave/loreweave/ent/lorepackage"
	"github.com/loreweave/loreweave/ent/predicate"
	"github.com/loreweave/loreweave/ent/researchjob"
	"github.com/loreweave/loreweave/ent/steprun"
	"github.com/loreweave/loreweave/ent/toolcall"
)

// ResearchJobUpdate is the builder for updating ResearchJob entities.
type ResearchJobUpdate struct {
	config
	hooks    []Hook
	mutation *ResearchJobMutation
}

// Where appends a list predicates to the ResearchJobUpdate builder.
func (_u *ResearchJobUpdate) Where(ps ...predicate.ResearchJob) *ResearchJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetZoneName sets the "zone_name" field.
func (_u *ResearchJobUpdate) SetZoneName(v string) *ResearchJobUpdate {
	_u.mutation.SetZoneName(v)
	return _u
}

// SetNillableZoneName sets the "zone_name" field if the given value is not nil.
func (_u *ResearchJobUpdate) SetNillableZoneName(v *string) *ResearchJobUpdate {
	if v != nil {
		_u.SetZoneName(*v)
	}
	return _u
}

// SetDepth sets the "depth" field.
func (_u *ResearchJobUpdate) SetDepth(v int) *ResearchJobUpdate {
	_u.mutation.ResetDepth()
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *ResearchJobUpdate) SetNillableDepth(v *int) *ResearchJobUpdate {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// AddDepth adds value to the "depth" field.
func (_u *ResearchJobUpdate) AddDepth(v int) *ResearchJobUpdate {
	_u.mutation.AddDepth(v)
	return _u
}

// SetBudgetTokens sets the "budget_tokens" field.
func (_u *ResearchJobUpdate) SetBudgetTokens(v int64) *ResearchJobUpdate {
	_u.mutation.ResetBudgetTokens()
	_u.mutation.SetBudgetTokens(v)
	return _u
}

// SetNillableBudgetTokens sets the "budget_tokens" field if the given value is not nil.
func (_u *ResearchJobUpdate) SetNillableBudgetTokens(v *int64) *ResearchJobUpdate {
	if v != nil {
		_u.SetBudgetTokens(*v)
	}
	return _u
}

// AddBudgetTokens adds value to the "budget_tokens" field.
func (_u *ResearchJobUpdate) AddBudgetTokens(v int64) *ResearchJobUpdate {
	_u.mutation.AddBudgetTokens(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *ResearchJobUpdate) SetModel(v string) *ResearchJobUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ResearchJobUpdate) SetNillableModel(v *string) *ResearchJobUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *ResearchJobUpdate) ClearModel() *ResearchJobUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ResearchJobUpdate) SetStatus(v researchjob.Status) *ResearchJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ResearchJobUpdate) SetNillableStatus(v *researchjob.Status) *ResearchJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *ResearchJobUpdate) SetCancelRequested(v bool) *ResearchJobUpdate {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *ResearchJobUpdate) SetNillableCancelRequested(v *bool) *ResearchJobUpdate {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetRequestedBy sets the "requested_by" field.
func (_u *ResearchJobUpdate) SetRequestedBy(v string) *ResearchJobUpdate {
	_u.mutation.SetRequestedBy(v)
	return _u
}

// SetNillableRequestedBy sets the "requested_by" field if the given value is not nil.
func (_u *ResearchJobUpdate) SetNillableRequestedBy(v *string) *ResearchJobUpdate {
	if v != nil {
		_u.SetRequestedBy(*v)
	}
	return _u
}

// ClearRequestedBy clears the value of the "requested_by" field.
func (_u *ResearchJobUpdate) ClearRequestedBy() *ResearchJobUpdate {
	_u.mutation.ClearRequestedBy()
	return _u
}

// SetParentJobID sets the "parent_job_id" field.
func (_u *ResearchJobUpdate) SetParentJobID(v string) *ResearchJobUpdate {
	_u.mutation.SetParentJobID(v)
	return _u
}

// SetNillableParentJobID sets the "parent_job_id" field if the given value is not nil.
func (_u *ResearchJobUpdate) SetNillableParentJobID(v *string) *ResearchJobUpdate {
	if v != nil {
		_u.SetParentJobID(*v)
	}
	return _u
}

// ClearParentJobID clears the value of the "parent_job_id" field.
func (_u *ResearchJobUpdate) ClearParentJobID() *ResearchJobUpdate {
	_u.mutation.ClearParentJobID()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *ResearchJobUpdate) SetClaimedBy(v string) *ResearchJobUpdate {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *ResearchJobUpdate) SetNillableClaimedBy(v *string) *ResearchJobUpdate {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *ResearchJobUpdate) ClearClaimedBy() *ResearchJobUpdate {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *ResearchJobUpdate) SetLastHeartbeatAt(v time.Time) *ResearchJobUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *ResearchJobUpdate) SetNillableLastHeartbeatAt(v *time.Time) *ResearchJobUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *ResearchJobUpdate) ClearLastHeartbeatAt() *ResearchJobUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetResumeAt sets the "resume_at" field.
func (_u *ResearchJobUpdate) SetResumeAt(v time.Time) *ResearchJobUpdate {
	_u.mutation.SetResumeAt(v)
	return _u
}

// SetNillableResumeAt sets the "resume_at" field if the given value is not nil.
func (_u *ResearchJobUpdate) SetNillableResumeAt(v *time.Time) *ResearchJobUpdate {
	if v != nil {
		_u.SetResumeAt(*v)
	}
	return _u
}

// ClearResumeAt clears the value of the "resume_at" field.
func (_u *ResearchJobUpdate) ClearResumeAt() *ResearchJobUpdate {
	_u.mutation.ClearResumeAt()
	return _u
}

// SetResumeCount sets the "resume_count" field.
func (_u *ResearchJobUpdate) SetResumeCount(v int) *ResearchJobUpdate {
	_u.mutation.ResetResumeCount()
	_u.mutation.SetResumeCount(v)
	return _u
}

// SetNillableResumeCount sets the "resume_count" field if the given value is not nil.
func (_u *ResearchJobUpdate) SetNillableResumeCount(v *int) *ResearchJobUpdate {
	if v != nil {
		_u.SetResumeCount(*v)
	}
	return _u
}

// AddResumeCount adds value to the "resume_count" field.
func (_u *ResearchJobUpdate) AddResumeCount(v int) *ResearchJobUpdate {
	_u.mutation.AddResumeCount(v)
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *ResearchJobUpdate) SetErrorKind(v string) *ResearchJobUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *ResearchJobUpdate) SetNillableErrorKind(v *string) *ResearchJobUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *ResearchJobUpdate) ClearErrorKind() *ResearchJobUpdate {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ResearchJobUpdate) SetErrorMessage(v string) *ResearchJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ResearchJobUpdate) SetNillableErrorMessage(v *string) *ResearchJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ResearchJobUpdate) ClearErrorMessage() *ResearchJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ResearchJobUpdate) SetStartedAt(v time.Time) *ResearchJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ResearchJobUpdate) SetNillableStartedAt(v *time.Time) *ResearchJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ResearchJobUpdate) ClearStartedAt() *ResearchJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ResearchJobUpdate) SetCompletedAt(v time.Time) *ResearchJobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ResearchJobUpdate) SetNillableCompletedAt(v *time.Time) *ResearchJobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ResearchJobUpdate) ClearCompletedAt() *ResearchJobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCheckpointID sets the "checkpoint" edge to the Checkpoint entity by ID.
func (_u *ResearchJobUpdate) SetCheckpointID(id string) *ResearchJobUpdate {
	_u.mutation.SetCheckpointID(id)
	return _u
}

// SetNillableCheckpointID sets the "checkpoint" edge to the Checkpoint entity by ID if the given value is not nil.
func (_u *ResearchJobUpdate) SetNillableCheckpointID(id *string) *ResearchJobUpdate {
	if id != nil {
		_u = _u.SetCheckpointID(*id)
	}
	return _u
}

// SetCheckpoint sets the "checkpoint" edge to the Checkpoint entity.
func (_u *ResearchJobUpdate) SetCheckpoint(v *Checkpoint) *ResearchJobUpdate {
	return _u.SetCheckpointID(v.ID)
}

// AddStepRunIDs adds the "step_runs" edge to the StepRun entity by IDs.
func (_u *ResearchJobUpdate) AddStepRunIDs(ids ...string) *ResearchJobUpdate {
	_u.mutation.AddStepRunIDs(ids...)
	return _u
}

// AddStepRuns adds the "step_runs" edges to the StepRun entity.
func (_u *ResearchJobUpdate) AddStepRuns(v ...*StepRun) *ResearchJobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepRunIDs(ids...)
}

// AddLlmCallIDs adds the "llm_calls" edge to the LLMCall entity by IDs.
func (_u *ResearchJobUpdate) AddLlmCallIDs(ids ...string) *ResearchJobUpdate {
	_u.mutation.AddLlmCallIDs(ids...)
	return _u
}

// AddLlmCalls adds the "llm_calls" edges to the LLMCall entity.
func (_u *ResearchJobUpdate) AddLlmCalls(v ...*LLMCall) *ResearchJobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLlmCallIDs(ids...)
}

// AddToolCallIDs adds the "tool_calls" edge to the ToolCall entity by IDs.
func (_u *ResearchJobUpdate) AddToolCallIDs(ids ...string) *ResearchJobUpdate {
	_u.mutation.AddToolCallIDs(ids...)
	return _u
}

// AddToolCalls adds the "tool_calls" edges to the ToolCall entity.
func (_u *ResearchJobUpdate) AddToolCalls(v ...*ToolCall) *ResearchJobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddToolCallIDs(ids...)
}

// SetPackageID sets the "package" edge to the LorePackage entity by ID.
func (_u *ResearchJobUpdate) SetPackageID(id string) *ResearchJobUpdate {
	_u.mutation.SetPackageID(id)
	return _u
}

// SetNillablePackageID sets the "package" edge to the LorePackage entity by ID if the given value is not nil.
func (_u *ResearchJobUpdate) SetNillablePackageID(id *string) *ResearchJobUpdate {
	if id != nil {
		_u = _u.SetPackageID(*id)
	}
	return _u
}

// SetPackage sets the "package" edge to the LorePackage entity.
func (_u *ResearchJobUpdate) SetPackage(v *LorePackage) *ResearchJobUpdate {
	return _u.SetPackageID(v.ID)
}

// Mutation returns the ResearchJobMutation object of the builder.
func (_u *ResearchJobUpdate) Mutation() *ResearchJobMutation {
	return _u.mutation
}

// ClearCheckpoint clears the "checkpoint" edge to the Checkpoint entity.
func (_u *ResearchJobUpdate) ClearCheckpoint() *ResearchJobUpdate {
	_u.mutation.ClearCheckpoint()
	return _u
}

// ClearStepRuns clears all "step_runs" edges to the StepRun entity.
func (_u *ResearchJobUpdate) ClearStepRuns() *ResearchJobUpdate {
	_u.mutation.ClearStepRuns()
	return _u
}

// RemoveStepRunIDs removes the "step_runs" edge to StepRun entities by IDs.
func (_u *ResearchJobUpdate) RemoveStepRunIDs(ids ...string) *ResearchJobUpdate {
	_u.mutation.RemoveStepRunIDs(ids...)
	return _u
}

// RemoveStepRuns removes "step_runs" edges to StepRun entities.
func (_u *ResearchJobUpdate) RemoveStepRuns(v ...*StepRun) *ResearchJobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepRunIDs(ids...)
}

// ClearLlmCalls clears all "llm_calls" edges to the LLMCall entity.
func (_u *ResearchJobUpdate) ClearLlmCalls() *ResearchJobUpdate {
	_u.mutation.ClearLlmCalls()
	return _u
}

// RemoveLlmCallIDs removes the "llm_calls" edge to LLMCall entities by IDs.
func (_u *ResearchJobUpdate) RemoveLlmCallIDs(ids ...string) *ResearchJobUpdate {
	_u.mutation.RemoveLlmCallIDs(ids...)
	return _u
}

// RemoveLlmCalls removes "llm_calls" edges to LLMCall entities.
func (_u *ResearchJobUpdate) RemoveLlmCalls(v ...*LLMCall) *ResearchJobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLlmCallIDs(ids...)
}

// ClearToolCalls clears all "tool_calls" edges to the ToolCall entity.
func (_u *ResearchJobUpdate) ClearToolCalls() *ResearchJobUpdate {
	_u.mutation.ClearToolCalls()
	return _u
}

// RemoveToolCallIDs removes the "tool_calls" edge to ToolCall entities by IDs.
func (_u *ResearchJobUpdate) RemoveToolCallIDs(ids ...string) *ResearchJobUpdate {
	_u.mutation.RemoveToolCallIDs(ids...)
	return _u
}

// RemoveToolCalls removes "tool_calls" edges to ToolCall entities.
func (_u *ResearchJobUpdate) RemoveToolCalls(v ...*ToolCall) *ResearchJobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveToolCallIDs(ids...)
}

// ClearPackage clears the "package" edge to the LorePackage entity.
func (_u *ResearchJobUpdate) ClearPackage() *ResearchJobUpdate {
	_u.mutation.ClearPackage()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResearchJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResearchJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := researchjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ResearchJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ResearchJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchjob.Table, researchjob.Columns, sqlgraph.NewFieldSpec(researchjob.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ZoneName(); ok {
		_spec.SetField(researchjob.FieldZoneName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(researchjob.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepth(); ok {
		_spec.AddField(researchjob.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BudgetTokens(); ok {
		_spec.SetField(researchjob.FieldBudgetTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBudgetTokens(); ok {
		_spec.AddField(researchjob.FieldBudgetTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(researchjob.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(researchjob.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(researchjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(researchjob.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RequestedBy(); ok {
		_spec.SetField(researchjob.FieldRequestedBy, field.TypeString, value)
	}
	if _u.mutation.RequestedByCleared() {
		_spec.ClearField(researchjob.FieldRequestedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ParentJobID(); ok {
		_spec.SetField(researchjob.FieldParentJobID, field.TypeString, value)
	}
	if _u.mutation.ParentJobIDCleared() {
		_spec.ClearField(researchjob.FieldParentJobID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(researchjob.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(researchjob.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(researchjob.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(researchjob.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResumeAt(); ok {
		_spec.SetField(researchjob.FieldResumeAt, field.TypeTime, value)
	}
	if _u.mutation.ResumeAtCleared() {
		_spec.ClearField(researchjob.FieldResumeAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResumeCount(); ok {
		_spec.SetField(researchjob.FieldResumeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResumeCount(); ok {
		_spec.AddField(researchjob.FieldResumeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(researchjob.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(researchjob.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(researchjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(researchjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(researchjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(researchjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(researchjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(researchjob.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.CheckpointCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StepRunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepRunsIDs(); len(nodes) > 0 && !_u.mutation.StepRunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepRunsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LlmCallsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLlmCallsIDs(); len(nodes) > 0 && !_u.mutation.LlmCallsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LlmCallsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ToolCallsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedToolCallsIDs(); len(nodes) > 0 && !_u.mutation.ToolCallsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ToolCallsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PackageCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PackageIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResearchJobUpdateOne is the builder for updating a single ResearchJob entity.
type ResearchJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResearchJobMutation
}

// SetZoneName sets the "zone_name" field.
func (_u *ResearchJobUpdateOne) SetZoneName(v string) *ResearchJobUpdateOne {
	_u.mutation.SetZoneName(v)
	return _u
}

// SetNillableZoneName sets the "zone_name" field if the given value is not nil.
func (_u *ResearchJobUpdateOne) SetNillableZoneName(v *string) *ResearchJobUpdateOne {
	if v != nil {
		_u.SetZoneName(*v)
	}
	return _u
}

// SetDepth sets the "depth" field.
func (_u *ResearchJobUpdateOne) SetDepth(v int) *ResearchJobUpdateOne {
	_u.mutation.ResetDepth()
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *ResearchJobUpdateOne) SetNillableDepth(v *int) *ResearchJobUpdateOne {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// AddDepth adds value to the "depth" field.
func (_u *ResearchJobUpdateOne) AddDepth(v int) *ResearchJobUpdateOne {
	_u.mutation.AddDepth(v)
	return _u
}

// SetBudgetTokens sets the "budget_tokens" field.
func (_u *ResearchJobUpdateOne) SetBudgetTokens(v int64) *ResearchJobUpdateOne {
	_u.mutation.ResetBudgetTokens()
	_u.mutation.SetBudgetTokens(v)
	return _u
}

// SetNillableBudgetTokens sets the "budget_tokens" field if the given value is not nil.
func (_u *ResearchJobUpdateOne) SetNillableBudgetTokens(v *int64) *ResearchJobUpdateOne {
	if v != nil {
		_u.SetBudgetTokens(*v)
	}
	return _u
}

// AddBudgetTokens adds value to the "budget_tokens" field.
func (_u *ResearchJobUpdateOne) AddBudgetTokens(v int64) *ResearchJobUpdateOne {
	_u.mutation.AddBudgetTokens(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *ResearchJobUpdateOne) SetModel(v string) *ResearchJobUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ResearchJobUpdateOne) SetNillableModel(v *string) *ResearchJobUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *ResearchJobUpdateOne) ClearModel() *ResearchJobUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ResearchJobUpdateOne) SetStatus(v researchjob.Status) *ResearchJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ResearchJobUpdateOne) SetNillableStatus(v *researchjob.Status) *ResearchJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *ResearchJobUpdateOne) SetCancelRequested(v bool) *ResearchJobUpdateOne {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *ResearchJobUpdateOne) SetNillableCancelRequested(v *bool) *ResearchJobUpdateOne {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetRequestedBy sets the "requested_by" field.
func (_u *ResearchJobUpdateOne) SetRequestedBy(v string) *ResearchJobUpdateOne {
	_u.mutation.SetRequestedBy(v)
	return _u
}

// SetNillableRequestedBy sets the "requested_by" field if the given value is not nil.
func (_u *ResearchJobUpdateOne) SetNillableRequestedBy(v *string) *ResearchJobUpdateOne {
	if v != nil {
		_u.SetRequestedBy(*v)
	}
	return _u
}

// ClearRequestedBy clears the value of the "requested_by" field.
func (_u *ResearchJobUpdateOne) ClearRequestedBy() *ResearchJobUpdateOne {
	_u.mutation.ClearRequestedBy()
	return _u
}

// SetParentJobID sets the "parent_job_id" field.
func (_u *ResearchJobUpdateOne) SetParentJobID(v string) *ResearchJobUpdateOne {
	_u.mutation.SetParentJobID(v)
	return _u
}

// SetNillableParentJobID sets the "parent_job_id" field if the given value is not nil.
func (_u *ResearchJobUpdateOne) SetNillableParentJobID(v *string) *ResearchJobUpdateOne {
	if v != nil {
		_u.SetParentJobID(*v)
	}
	return _u
}

// ClearParentJobID clears the value of the "parent_job_id" field.
func (_u *ResearchJobUpdateOne) ClearParentJobID() *ResearchJobUpdateOne {
	_u.mutation.ClearParentJobID()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *ResearchJobUpdateOne) SetClaimedBy(v string) *ResearchJobUpdateOne {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *ResearchJobUpdateOne) SetNillableClaimedBy(v *string) *ResearchJobUpdateOne {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *ResearchJobUpdateOne) ClearClaimedBy() *ResearchJobUpdateOne {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *ResearchJobUpdateOne) SetLastHeartbeatAt(v time.Time) *ResearchJobUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *ResearchJobUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *ResearchJobUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *ResearchJobUpdateOne) ClearLastHeartbeatAt() *ResearchJobUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetResumeAt sets the "resume_at" field.
func (_u *ResearchJobUpdateOne) SetResumeAt(v time.Time) *ResearchJobUpdateOne {
	_u.mutation.SetResumeAt(v)
	return _u
}

// SetNillableResumeAt sets the "resume_at" field if the given value is not nil.
func (_u *ResearchJobUpdateOne) SetNillableResumeAt(v *time.Time) *ResearchJobUpdateOne {
	if v != nil {
		_u.SetResumeAt(*v)
	}
	return _u
}

// ClearResumeAt clears the value of the "resume_at" field.
func (_u *ResearchJobUpdateOne) ClearResumeAt() *ResearchJobUpdateOne {
	_u.mutation.ClearResumeAt()
	return _u
}

// SetResumeCount sets the "resume_count" field.
func (_u *ResearchJobUpdateOne) SetResumeCount(v int) *ResearchJobUpdateOne {
	_u.mutation.ResetResumeCount()
	_u.mutation.SetResumeCount(v)
	return _u
}

// SetNillableResumeCount sets the "resume_count" field if the given value is not nil.
func (_u *ResearchJobUpdateOne) SetNillableResumeCount(v *int) *ResearchJobUpdateOne {
	if v != nil {
		_u.SetResumeCount(*v)
	}
	return _u
}

// AddResumeCount adds value to the "resume_count" field.
func (_u *ResearchJobUpdateOne) AddResumeCount(v int) *ResearchJobUpdateOne {
	_u.mutation.AddResumeCount(v)
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *ResearchJobUpdateOne) SetErrorKind(v string) *ResearchJobUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *ResearchJobUpdateOne) SetNillableErrorKind(v *string) *ResearchJobUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *ResearchJobUpdateOne) ClearErrorKind() *ResearchJobUpdateOne {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ResearchJobUpdateOne) SetErrorMessage(v string) *ResearchJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ResearchJobUpdateOne) SetNillableErrorMessage(v *string) *ResearchJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ResearchJobUpdateOne) ClearErrorMessage() *ResearchJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ResearchJobUpdateOne) SetStartedAt(v time.Time) *ResearchJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ResearchJobUpdateOne) SetNillableStartedAt(v *time.Time) *ResearchJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ResearchJobUpdateOne) ClearStartedAt() *ResearchJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ResearchJobUpdateOne) SetCompletedAt(v time.Time) *ResearchJobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ResearchJobUpdateOne) SetNillableCompletedAt(v *time.Time) *ResearchJobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ResearchJobUpdateOne) ClearCompletedAt() *ResearchJobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCheckpointID sets the "checkpoint" edge to the Checkpoint entity by ID.
func (_u *ResearchJobUpdateOne) SetCheckpointID(id string) *ResearchJobUpdateOne {
	_u.mutation.SetCheckpointID(id)
	return _u
}

// SetNillableCheckpointID sets the "checkpoint" edge to the Checkpoint entity by ID if the given value is not nil.
func (_u *ResearchJobUpdateOne) SetNillableCheckpointID(id *string) *ResearchJobUpdateOne {
	if id != nil {
		_u = _u.SetCheckpointID(*id)
	}
	return _u
}

// SetCheckpoint sets the "checkpoint" edge to the Checkpoint entity.
func (_u *ResearchJobUpdateOne) SetCheckpoint(v *Checkpoint) *ResearchJobUpdateOne {
	return _u.SetCheckpointID(v.ID)
}

// AddStepRunIDs adds the "step_runs" edge to the StepRun entity by IDs.
func (_u *ResearchJobUpdateOne) AddStepRunIDs(ids ...string) *ResearchJobUpdateOne {
	_u.mutation.AddStepRunIDs(ids...)
	return _u
}

// AddStepRuns adds the "step_runs" edges to the StepRun entity.
func (_u *ResearchJobUpdateOne) AddStepRuns(v ...*StepRun) *ResearchJobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepRunIDs(ids...)
}

// AddLlmCallIDs adds the "llm_calls" edge to the LLMCall entity by IDs.
func (_u *ResearchJobUpdateOne) AddLlmCallIDs(ids ...string) *ResearchJobUpdateOne {
	_u.mutation.AddLlmCallIDs(ids...)
	return _u
}

// AddLlmCalls adds the "llm_calls" edges to the LLMCall entity.
func (_u *ResearchJobUpdateOne) AddLlmCalls(v ...*LLMCall) *ResearchJobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLlmCallIDs(ids...)
}

// AddToolCallIDs adds the "tool_calls" edge to the ToolCall entity by IDs.
func (_u *ResearchJobUpdateOne) AddToolCallIDs(ids ...string) *ResearchJobUpdateOne {
	_u.mutation.AddToolCallIDs(ids...)
	return _u
}

// AddToolCalls adds the "tool_calls" edges to the ToolCall entity.
func (_u *ResearchJobUpdateOne) AddToolCalls(v ...*ToolCall) *ResearchJobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddToolCallIDs(ids...)
}

// SetPackageID sets the "package" edge to the LorePackage entity by ID.
func (_u *ResearchJobUpdateOne) SetPackageID(id string) *ResearchJobUpdateOne {
	_u.mutation.SetPackageID(id)
	return _u
}

// SetNillablePackageID sets the "package" edge to the LorePackage entity by ID if the given value is not nil.
func (_u *ResearchJobUpdateOne) SetNillablePackageID(id *string) *ResearchJobUpdateOne {
	if id != nil {
		_u = _u.SetPackageID(*id)
	}
	return _u
}

// SetPackage sets the "package" edge to the LorePackage entity.
func (_u *ResearchJobUpdateOne) SetPackage(v *LorePackage) *ResearchJobUpdateOne {
	return _u.SetPackageID(v.ID)
}

// Mutation returns the ResearchJobMutation object of the builder.
func (_u *ResearchJobUpdateOne) Mutation() *ResearchJobMutation {
	return _u.mutation
}

// ClearCheckpoint clears the "checkpoint" edge to the Checkpoint entity.
func (_u *ResearchJobUpdateOne) ClearCheckpoint() *ResearchJobUpdateOne {
	_u.mutation.ClearCheckpoint()
	return _u
}

// ClearStepRuns clears all "step_runs" edges to the StepRun entity.
func (_u *ResearchJobUpdateOne) ClearStepRuns() *ResearchJobUpdateOne {
	_u.mutation.ClearStepRuns()
	return _u
}

// RemoveStepRunIDs removes the "step_runs" edge to StepRun entities by IDs.
func (_u *ResearchJobUpdateOne) RemoveStepRunIDs(ids ...string) *ResearchJobUpdateOne {
	_u.mutation.RemoveStepRunIDs(ids...)
	return _u
}

// RemoveStepRuns removes "step_runs" edges to StepRun entities.
func (_u *ResearchJobUpdateOne) RemoveStepRuns(v ...*StepRun) *ResearchJobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepRunIDs(ids...)
}

// ClearLlmCalls clears all "llm_calls" edges to the LLMCall entity.
func (_u *ResearchJobUpdateOne) ClearLlmCalls() *ResearchJobUpdateOne {
	_u.mutation.ClearLlmCalls()
	return _u
}

// RemoveLlmCallIDs removes the "llm_calls" edge to LLMCall entities by IDs.
func (_u *ResearchJobUpdateOne) RemoveLlmCallIDs(ids ...string) *ResearchJobUpdateOne {
	_u.mutation.RemoveLlmCallIDs(ids...)
	return _u
}

// RemoveLlmCalls removes "llm_calls" edges to LLMCall entities.
func (_u *ResearchJobUpdateOne) RemoveLlmCalls(v ...*LLMCall) *ResearchJobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLlmCallIDs(ids...)
}

// ClearToolCalls clears all "tool_calls" edges to the ToolCall entity.
func (_u *ResearchJobUpdateOne) ClearToolCalls() *ResearchJobUpdateOne {
	_u.mutation.ClearToolCalls()
	return _u
}

// RemoveToolCallIDs removes the "tool_calls" edge to ToolCall entities by IDs.
func (_u *ResearchJobUpdateOne) RemoveToolCallIDs(ids ...string) *ResearchJobUpdateOne {
	_u.mutation.RemoveToolCallIDs(ids...)
	return _u
}

// RemoveToolCalls removes "tool_calls" edges to ToolCall entities.
func (_u *ResearchJobUpdateOne) RemoveToolCalls(v ...*ToolCall) *ResearchJobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveToolCallIDs(ids...)
}

// ClearPackage clears the "package" edge to the LorePackage entity.
func (_u *ResearchJobUpdateOne) ClearPackage() *ResearchJobUpdateOne {
	_u.mutation.ClearPackage()
	return _u
}

// Where appends a list predicates to the ResearchJobUpdate builder.
func (_u *ResearchJobUpdateOne) Where(ps ...predicate.ResearchJob) *ResearchJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResearchJobUpdateOne) Select(field string, fields ...string) *ResearchJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResearchJob entity.
func (_u *ResearchJobUpdateOne) Save(ctx context.Context) (*ResearchJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchJobUpdateOne) SaveX(ctx context.Context) *ResearchJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResearchJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := researchjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ResearchJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ResearchJobUpdateOne) sqlSave(ctx context.Context) (_node *ResearchJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchjob.Table, researchjob.Columns, sqlgraph.NewFieldSpec(researchjob.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResearchJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, researchjob.FieldID)
		for _, f := range fields {
			if !researchjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != researchjob.FieldID {
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
	if value, ok := _u.mutation.ZoneName(); ok {
		_spec.SetField(researchjob.FieldZoneName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(researchjob.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepth(); ok {
		_spec.AddField(researchjob.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BudgetTokens(); ok {
		_spec.SetField(researchjob.FieldBudgetTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBudgetTokens(); ok {
		_spec.AddField(researchjob.FieldBudgetTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(researchjob.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(researchjob.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(researchjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(researchjob.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RequestedBy(); ok {
		_spec.SetField(researchjob.FieldRequestedBy, field.TypeString, value)
	}
	if _u.mutation.RequestedByCleared() {
		_spec.ClearField(researchjob.FieldRequestedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ParentJobID(); ok {
		_spec.SetField(researchjob.FieldParentJobID, field.TypeString, value)
	}
	if _u.mutation.ParentJobIDCleared() {
		_spec.ClearField(researchjob.FieldParentJobID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(researchjob.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(researchjob.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(researchjob.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(researchjob.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResumeAt(); ok {
		_spec.SetField(researchjob.FieldResumeAt, field.TypeTime, value)
	}
	if _u.mutation.ResumeAtCleared() {
		_spec.ClearField(researchjob.FieldResumeAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResumeCount(); ok {
		_spec.SetField(researchjob.FieldResumeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResumeCount(); ok {
		_spec.AddField(researchjob.FieldResumeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(researchjob.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(researchjob.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(researchjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(researchjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(researchjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(researchjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(researchjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(researchjob.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.CheckpointCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StepRunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepRunsIDs(); len(nodes) > 0 && !_u.mutation.StepRunsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepRunsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LlmCallsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLlmCallsIDs(); len(nodes) > 0 && !_u.mutation.LlmCallsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LlmCallsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ToolCallsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedToolCallsIDs(); len(nodes) > 0 && !_u.mutation.ToolCallsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ToolCallsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PackageCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PackageIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ResearchJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
