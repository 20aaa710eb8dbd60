// Code generated by ent, DO NOT EDIT.

package researchjob

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the researchjob type in the database.
	Label = "research_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "job_id"
	// FieldZoneName holds the string denoting the zone_name field in the database.
	FieldZoneName = "zone_name"
	// FieldDepth holds the string denoting the depth field in the database.
	FieldDepth = "depth"
	// FieldBudgetTokens holds the string denoting the budget_tokens field in the database.
	FieldBudgetTokens = "budget_tokens"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCancelRequested holds the string denoting the cancel_requested field in the database.
	FieldCancelRequested = "cancel_requested"
	// FieldRequestedBy holds the string denoting the requested_by field in the database.
	FieldRequestedBy = "requested_by"
	// FieldParentJobID holds the string denoting the parent_job_id field in the database.
	FieldParentJobID = "parent_job_id"
	// FieldClaimedBy holds the string denoting the claimed_by field in the database.
	FieldClaimedBy = "claimed_by"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// FieldResumeAt holds the string denoting the resume_at field in the database.
	FieldResumeAt = "resume_at"
	// FieldResumeCount holds the string denoting the resume_count field in the database.
	FieldResumeCount = "resume_count"
	// FieldErrorKind holds the string denoting the error_kind field in the database.
	FieldErrorKind = "error_kind"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeCheckpoint holds the string denoting the checkpoint edge name in mutations.
	EdgeCheckpoint = "checkpoint"
	// EdgeStepRuns holds the string denoting the step_runs edge name in mutations.
	EdgeStepRuns = "step_runs"
	// EdgeLlmCalls holds the string denoting the llm_calls edge name in mutations.
	EdgeLlmCalls = "llm_calls"
	// EdgeToolCalls holds the string denoting the tool_calls edge name in mutations.
	EdgeToolCalls = "tool_calls"
	// EdgePackage holds the string denoting the package edge name in mutations.
	EdgePackage = "package"
	// CheckpointFieldID holds the string denoting the ID field of the Checkpoint.
	CheckpointFieldID = "checkpoint_id"
	// StepRunFieldID holds the string denoting the ID field of the StepRun.
	StepRunFieldID = "step_run_id"
	// LLMCallFieldID holds the string denoting the ID field of the LLMCall.
	LLMCallFieldID = "llm_call_id"
	// ToolCallFieldID holds the string denoting the ID field of the ToolCall.
	ToolCallFieldID = "tool_call_id"
	// LorePackageFieldID holds the string denoting the ID field of the LorePackage.
	LorePackageFieldID = "package_id"
	// Table holds the table name of the researchjob in the database.
	Table = "research_jobs"
	// CheckpointTable is the table that holds the checkpoint relation/edge.
	CheckpointTable = "checkpoints"
	// CheckpointInverseTable is the table name for the Checkpoint entity.
	// It exists in this package in order to avoid circular dependency with the "checkpoint" package.
	CheckpointInverseTable = "checkpoints"
	// CheckpointColumn is the table column denoting the checkpoint relation/edge.
	CheckpointColumn = "job_id"
	// StepRunsTable is the table that holds the step_runs relation/edge.
	StepRunsTable = "step_runs"
	// StepRunsInverseTable is the table name for the StepRun entity.
	// It exists in this package in order to avoid circular dependency with the "steprun" package.
	StepRunsInverseTable = "step_runs"
	// StepRunsColumn is the table column denoting the step_runs relation/edge.
	StepRunsColumn = "job_id"
	// LlmCallsTable is the table that holds the llm_calls relation/edge.
	LlmCallsTable = "llm_calls"
	// LlmCallsInverseTable is the table name for the LLMCall entity.
	// It exists in this package in order to avoid circular dependency with the "llmcall" package.
	LlmCallsInverseTable = "llm_calls"
	// LlmCallsColumn is the table column denoting the llm_calls relation/edge.
	LlmCallsColumn = "job_id"
	// ToolCallsTable is the table that holds the tool_calls relation/edge.
	ToolCallsTable = "tool_calls"
	// ToolCallsInverseTable is the table name for the ToolCall entity.
	// It exists in this package in order to avoid circular dependency with the "toolcall" package.
	ToolCallsInverseTable = "tool_calls"
	// ToolCallsColumn is the table column denoting the tool_calls relation/edge.
	ToolCallsColumn = "job_id"
	// PackageTable is the table that holds the package relation/edge.
	PackageTable = "lore_packages"
	// PackageInverseTable is the table name for the LorePackage entity.
	// It exists in this package in order to avoid circular dependency with the "lorepackage" package.
	PackageInverseTable = "lore_packages"
	// PackageColumn is the table column denoting the package relation/edge.
	PackageColumn = "job_id"
)

// Columns holds all SQL columns for researchjob fields.
var Columns = []string{
	FieldID,
	FieldZoneName,
	FieldDepth,
	FieldBudgetTokens,
	FieldModel,
	FieldStatus,
	FieldCancelRequested,
	FieldRequestedBy,
	FieldParentJobID,
	FieldClaimedBy,
	FieldLastHeartbeatAt,
	FieldResumeAt,
	FieldResumeCount,
	FieldErrorKind,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultDepth holds the default value on creation for the "depth" field.
	DefaultDepth int
	// DefaultCancelRequested holds the default value on creation for the "cancel_requested" field.
	DefaultCancelRequested bool
	// DefaultResumeCount holds the default value on creation for the "resume_count" field.
	DefaultResumeCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusPaused, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("researchjob: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ResearchJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByZoneName orders the results by the zone_name field.
func ByZoneName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldZoneName, opts...).ToFunc()
}

// ByDepth orders the results by the depth field.
func ByDepth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepth, opts...).ToFunc()
}

// ByBudgetTokens orders the results by the budget_tokens field.
func ByBudgetTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBudgetTokens, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCancelRequested orders the results by the cancel_requested field.
func ByCancelRequested(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelRequested, opts...).ToFunc()
}

// ByRequestedBy orders the results by the requested_by field.
func ByRequestedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestedBy, opts...).ToFunc()
}

// ByParentJobID orders the results by the parent_job_id field.
func ByParentJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentJobID, opts...).ToFunc()
}

// ByClaimedBy orders the results by the claimed_by field.
func ByClaimedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimedBy, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByResumeAt orders the results by the resume_at field.
func ByResumeAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResumeAt, opts...).ToFunc()
}

// ByResumeCount orders the results by the resume_count field.
func ByResumeCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResumeCount, opts...).ToFunc()
}

// ByErrorKind orders the results by the error_kind field.
func ByErrorKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorKind, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByCheckpointField orders the results by checkpoint field.
func ByCheckpointField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCheckpointStep(), sql.OrderByField(field, opts...))
	}
}

// ByStepRunsCount orders the results by step_runs count.
func ByStepRunsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStepRunsStep(), opts...)
	}
}

// ByStepRuns orders the results by step_runs terms.
func ByStepRuns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepRunsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByLlmCallsCount orders the results by llm_calls count.
func ByLlmCallsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLlmCallsStep(), opts...)
	}
}

// ByLlmCalls orders the results by llm_calls terms.
func ByLlmCalls(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLlmCallsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByToolCallsCount orders the results by tool_calls count.
func ByToolCallsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newToolCallsStep(), opts...)
	}
}

// ByToolCalls orders the results by tool_calls terms.
func ByToolCalls(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newToolCallsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPackageField orders the results by package field.
func ByPackageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPackageStep(), sql.OrderByField(field, opts...))
	}
}
func newCheckpointStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CheckpointInverseTable, CheckpointFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, CheckpointTable, CheckpointColumn),
	)
}
func newStepRunsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepRunsInverseTable, StepRunFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StepRunsTable, StepRunsColumn),
	)
}
func newLlmCallsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LlmCallsInverseTable, LLMCallFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LlmCallsTable, LlmCallsColumn),
	)
}
func newToolCallsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ToolCallsInverseTable, ToolCallFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ToolCallsTable, ToolCallsColumn),
	)
}
func newPackageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PackageInverseTable, LorePackageFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, PackageTable, PackageColumn),
	)
}
