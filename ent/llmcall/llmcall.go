// Code generated by ent, DO NOT EDIT.

package llmcall

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the llmcall type in the database.
	Label = "llm_call"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "llm_call_id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldStepName holds the string denoting the step_name field in the database.
	FieldStepName = "step_name"
	// FieldPurpose holds the string denoting the purpose field in the database.
	FieldPurpose = "purpose"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldPromptTokens holds the string denoting the prompt_tokens field in the database.
	FieldPromptTokens = "prompt_tokens"
	// FieldCompletionTokens holds the string denoting the completion_tokens field in the database.
	FieldCompletionTokens = "completion_tokens"
	// FieldTotalTokens holds the string denoting the total_tokens field in the database.
	FieldTotalTokens = "total_tokens"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// ResearchJobFieldID holds the string denoting the ID field of the ResearchJob.
	ResearchJobFieldID = "job_id"
	// Table holds the table name of the llmcall in the database.
	Table = "llm_calls"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "llm_calls"
	// JobInverseTable is the table name for the ResearchJob entity.
	// It exists in this package in order to avoid circular dependency with the "researchjob" package.
	JobInverseTable = "research_jobs"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
)

// Columns holds all SQL columns for llmcall fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldStepName,
	FieldPurpose,
	FieldProvider,
	FieldModel,
	FieldPromptTokens,
	FieldCompletionTokens,
	FieldTotalTokens,
	FieldDurationMs,
	FieldStatus,
	FieldErrorMessage,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Purpose defines the type for the "purpose" enum field.
type Purpose string

// Purpose values.
const (
	PurposeResearch        Purpose = "research"
	PurposeExtraction      Purpose = "extraction"
	PurposeRepair          Purpose = "repair"
	PurposeCrossReference  Purpose = "cross_reference"
	PurposeDiscovery       Purpose = "discovery"
	PurposeSummarizeMap    Purpose = "summarize_map"
	PurposeSummarizeReduce Purpose = "summarize_reduce"
)

func (pu Purpose) String() string {
	return string(pu)
}

// PurposeValidator is a validator for the "purpose" field enum values. It is called by the builders before save.
func PurposeValidator(pu Purpose) error {
	switch pu {
	case PurposeResearch, PurposeExtraction, PurposeRepair, PurposeCrossReference, PurposeDiscovery, PurposeSummarizeMap, PurposeSummarizeReduce:
		return nil
	default:
		return fmt.Errorf("llmcall: invalid enum value for purpose field: %q", pu)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusCompleted is the default value of the Status enum.
const DefaultStatus = StatusCompleted

// Status values.
const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("llmcall: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the LLMCall queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByStepName orders the results by the step_name field.
func ByStepName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepName, opts...).ToFunc()
}

// ByPurpose orders the results by the purpose field.
func ByPurpose(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPurpose, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByPromptTokens orders the results by the prompt_tokens field.
func ByPromptTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptTokens, opts...).ToFunc()
}

// ByCompletionTokens orders the results by the completion_tokens field.
func ByCompletionTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletionTokens, opts...).ToFunc()
}

// ByTotalTokens orders the results by the total_tokens field.
func ByTotalTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTokens, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
	)
}
