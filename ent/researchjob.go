// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loreweave/loreweave/ent/checkpoint"
	"github.com/loreweave/loreweave/ent/lorepackage"
	"github.com/loreweave/loreweave/ent/researchjob"
)

// ResearchJob is the model entity for the ResearchJob schema.
type ResearchJob struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Target entity the pipeline researches
	ZoneName string `json:"zone_name,omitempty"`
	// Remaining connected-zone traversal depth
	Depth int `json:"depth,omitempty"`
	// Per-job token budget
	BudgetTokens int64 `json:"budget_tokens,omitempty"`
	// provider:model-id override; empty = configured default
	Model string `json:"model,omitempty"`
	// Status holds the value of the "status" field.
	Status researchjob.Status `json:"status,omitempty"`
	// Engine checks between steps and stops at the next quiescent point
	CancelRequested bool `json:"cancel_requested,omitempty"`
	// RequestedBy holds the value of the "requested_by" field.
	RequestedBy *string `json:"requested_by,omitempty"`
	// Set on child jobs created by connected-zone discovery
	ParentJobID *string `json:"parent_job_id,omitempty"`
	// Worker identity holding the claim
	ClaimedBy *string `json:"claimed_by,omitempty"`
	// For orphan detection
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// Earliest time a paused job becomes claimable again
	ResumeAt *time.Time `json:"resume_at,omitempty"`
	// ResumeCount holds the value of the "resume_count" field.
	ResumeCount int `json:"resume_count,omitempty"`
	// ErrorKind holds the value of the "error_kind" field.
	ErrorKind *string `json:"error_kind,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// First transition from pending to running
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ResearchJobQuery when eager-loading is set.
	Edges        ResearchJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ResearchJobEdges holds the relations/edges for other nodes in the graph.
type ResearchJobEdges struct {
	// Checkpoint holds the value of the checkpoint edge.
	Checkpoint *Checkpoint `json:"checkpoint,omitempty"`
	// StepRuns holds the value of the step_runs edge.
	StepRuns []*StepRun `json:"step_runs,omitempty"`
	// LlmCalls holds the value of the llm_calls edge.
	LlmCalls []*LLMCall `json:"llm_calls,omitempty"`
	// ToolCalls holds the value of the tool_calls edge.
	ToolCalls []*ToolCall `json:"tool_calls,omitempty"`
	// Package holds the value of the package edge.
	Package *LorePackage `json:"package,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// CheckpointOrErr returns the Checkpoint value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ResearchJobEdges) CheckpointOrErr() (*Checkpoint, error) {
	if e.Checkpoint != nil {
		return e.Checkpoint, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: checkpoint.Label}
	}
	return nil, &NotLoadedError{edge: "checkpoint"}
}

// StepRunsOrErr returns the StepRuns value or an error if the edge
// was not loaded in eager-loading.
func (e ResearchJobEdges) StepRunsOrErr() ([]*StepRun, error) {
	if e.loadedTypes[1] {
		return e.StepRuns, nil
	}
	return nil, &NotLoadedError{edge: "step_runs"}
}

// LlmCallsOrErr returns the LlmCalls value or an error if the edge
// was not loaded in eager-loading.
func (e ResearchJobEdges) LlmCallsOrErr() ([]*LLMCall, error) {
	if e.loadedTypes[2] {
		return e.LlmCalls, nil
	}
	return nil, &NotLoadedError{edge: "llm_calls"}
}

// ToolCallsOrErr returns the ToolCalls value or an error if the edge
// was not loaded in eager-loading.
func (e ResearchJobEdges) ToolCallsOrErr() ([]*ToolCall, error) {
	if e.loadedTypes[3] {
		return e.ToolCalls, nil
	}
	return nil, &NotLoadedError{edge: "tool_calls"}
}

// PackageOrErr returns the Package value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ResearchJobEdges) PackageOrErr() (*LorePackage, error) {
	if e.Package != nil {
		return e.Package, nil
	} else if e.loadedTypes[4] {
		return nil, &NotFoundError{label: lorepackage.Label}
	}
	return nil, &NotLoadedError{edge: "package"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ResearchJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case researchjob.FieldCancelRequested:
			values[i] = new(sql.NullBool)
		case researchjob.FieldDepth, researchjob.FieldBudgetTokens, researchjob.FieldResumeCount:
			values[i] = new(sql.NullInt64)
		case researchjob.FieldID, researchjob.FieldZoneName, researchjob.FieldModel, researchjob.FieldStatus, researchjob.FieldRequestedBy, researchjob.FieldParentJobID, researchjob.FieldClaimedBy, researchjob.FieldErrorKind, researchjob.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case researchjob.FieldLastHeartbeatAt, researchjob.FieldResumeAt, researchjob.FieldCreatedAt, researchjob.FieldStartedAt, researchjob.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ResearchJob fields.
func (_m *ResearchJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case researchjob.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case researchjob.FieldZoneName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field zone_name", values[i])
			} else if value.Valid {
				_m.ZoneName = value.String
			}
		case researchjob.FieldDepth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field depth", values[i])
			} else if value.Valid {
				_m.Depth = int(value.Int64)
			}
		case researchjob.FieldBudgetTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field budget_tokens", values[i])
			} else if value.Valid {
				_m.BudgetTokens = value.Int64
			}
		case researchjob.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case researchjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = researchjob.Status(value.String)
			}
		case researchjob.FieldCancelRequested:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cancel_requested", values[i])
			} else if value.Valid {
				_m.CancelRequested = value.Bool
			}
		case researchjob.FieldRequestedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field requested_by", values[i])
			} else if value.Valid {
				_m.RequestedBy = new(string)
				*_m.RequestedBy = value.String
			}
		case researchjob.FieldParentJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_job_id", values[i])
			} else if value.Valid {
				_m.ParentJobID = new(string)
				*_m.ParentJobID = value.String
			}
		case researchjob.FieldClaimedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claimed_by", values[i])
			} else if value.Valid {
				_m.ClaimedBy = new(string)
				*_m.ClaimedBy = value.String
			}
		case researchjob.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		case researchjob.FieldResumeAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resume_at", values[i])
			} else if value.Valid {
				_m.ResumeAt = new(time.Time)
				*_m.ResumeAt = value.Time
			}
		case researchjob.FieldResumeCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field resume_count", values[i])
			} else if value.Valid {
				_m.ResumeCount = int(value.Int64)
			}
		case researchjob.FieldErrorKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_kind", values[i])
			} else if value.Valid {
				_m.ErrorKind = new(string)
				*_m.ErrorKind = value.String
			}
		case researchjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case researchjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case researchjob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case researchjob.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ResearchJob.
// This includes values selected through modifiers, order, etc.
func (_m *ResearchJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCheckpoint queries the "checkpoint" edge of the ResearchJob entity.
func (_m *ResearchJob) QueryCheckpoint() *CheckpointQuery {
	return NewResearchJobClient(_m.config).QueryCheckpoint(_m)
}

// QueryStepRuns queries the "step_runs" edge of the ResearchJob entity.
func (_m *ResearchJob) QueryStepRuns() *StepRunQuery {
	return NewResearchJobClient(_m.config).QueryStepRuns(_m)
}

// QueryLlmCalls queries the "llm_calls" edge of the ResearchJob entity.
func (_m *ResearchJob) QueryLlmCalls() *LLMCallQuery {
	return NewResearchJobClient(_m.config).QueryLlmCalls(_m)
}

// QueryToolCalls queries the "tool_calls" edge of the ResearchJob entity.
func (_m *ResearchJob) QueryToolCalls() *ToolCallQuery {
	return NewResearchJobClient(_m.config).QueryToolCalls(_m)
}

// QueryPackage queries the "package" edge of the ResearchJob entity.
func (_m *ResearchJob) QueryPackage() *LorePackageQuery {
	return NewResearchJobClient(_m.config).QueryPackage(_m)
}

// Update returns a builder for updating this ResearchJob.
// Note that you need to call ResearchJob.Unwrap() before calling this method if this ResearchJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ResearchJob) Update() *ResearchJobUpdateOne {
	return NewResearchJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ResearchJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ResearchJob) Unwrap() *ResearchJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ResearchJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ResearchJob) String() string {
	var builder strings.Builder
	builder.WriteString("ResearchJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("zone_name=")
	builder.WriteString(_m.ZoneName)
	builder.WriteString(", ")
	builder.WriteString("depth=")
	builder.WriteString(fmt.Sprintf("%v", _m.Depth))
	builder.WriteString(", ")
	builder.WriteString("budget_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.BudgetTokens))
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("cancel_requested=")
	builder.WriteString(fmt.Sprintf("%v", _m.CancelRequested))
	builder.WriteString(", ")
	if v := _m.RequestedBy; v != nil {
		builder.WriteString("requested_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ParentJobID; v != nil {
		builder.WriteString("parent_job_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ClaimedBy; v != nil {
		builder.WriteString("claimed_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ResumeAt; v != nil {
		builder.WriteString("resume_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("resume_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResumeCount))
	builder.WriteString(", ")
	if v := _m.ErrorKind; v != nil {
		builder.WriteString("error_kind=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ResearchJobs is a parsable slice of ResearchJob.
type ResearchJobs []*ResearchJob
