// Code generated by ent, DO NOT EDIT.

package checkpoint

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the checkpoint type in the database.
	Label = "checkpoint"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "checkpoint_id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldCurrentStepIndex holds the string denoting the current_step_index field in the database.
	FieldCurrentStepIndex = "current_step_index"
	// FieldCompletedStepNames holds the string denoting the completed_step_names field in the database.
	FieldCompletedStepNames = "completed_step_names"
	// FieldAccumulatedContent holds the string denoting the accumulated_content field in the database.
	FieldAccumulatedContent = "accumulated_content"
	// FieldAccumulatedSources holds the string denoting the accumulated_sources field in the database.
	FieldAccumulatedSources = "accumulated_sources"
	// FieldTopicSummaries holds the string denoting the topic_summaries field in the database.
	FieldTopicSummaries = "topic_summaries"
	// FieldPartialExtractions holds the string denoting the partial_extractions field in the database.
	FieldPartialExtractions = "partial_extractions"
	// FieldStepErrors holds the string denoting the step_errors field in the database.
	FieldStepErrors = "step_errors"
	// FieldTokensUsed holds the string denoting the tokens_used field in the database.
	FieldTokensUsed = "tokens_used"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSchemaVersion holds the string denoting the schema_version field in the database.
	FieldSchemaVersion = "schema_version"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// ResearchJobFieldID holds the string denoting the ID field of the ResearchJob.
	ResearchJobFieldID = "job_id"
	// Table holds the table name of the checkpoint in the database.
	Table = "checkpoints"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "checkpoints"
	// JobInverseTable is the table name for the ResearchJob entity.
	// It exists in this package in order to avoid circular dependency with the "researchjob" package.
	JobInverseTable = "research_jobs"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
)

// Columns holds all SQL columns for checkpoint fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldCurrentStepIndex,
	FieldCompletedStepNames,
	FieldAccumulatedContent,
	FieldAccumulatedSources,
	FieldTopicSummaries,
	FieldPartialExtractions,
	FieldStepErrors,
	FieldTokensUsed,
	FieldStatus,
	FieldSchemaVersion,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultCurrentStepIndex holds the default value on creation for the "current_step_index" field.
	DefaultCurrentStepIndex int
	// DefaultTokensUsed holds the default value on creation for the "tokens_used" field.
	DefaultTokensUsed int64
	// DefaultSchemaVersion holds the default value on creation for the "schema_version" field.
	DefaultSchemaVersion int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusRunning is the default value of the Status enum.
const DefaultStatus = StatusRunning

// Status values.
const (
	StatusRunning   Status = "running"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRunning, StatusPaused, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("checkpoint: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Checkpoint queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByCurrentStepIndex orders the results by the current_step_index field.
func ByCurrentStepIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStepIndex, opts...).ToFunc()
}

// ByTokensUsed orders the results by the tokens_used field.
func ByTokensUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensUsed, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySchemaVersion orders the results by the schema_version field.
func BySchemaVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSchemaVersion, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, ResearchJobFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, JobTable, JobColumn),
	)
}
