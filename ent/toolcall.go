// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loreweave/loreweave/ent/researchjob"
	"github.com/loreweave/loreweave/ent/toolcall"
)

// ToolCall is the model entity for the ToolCall schema.
type ToolCall struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// StepName holds the value of the "step_name" field.
	StepName string `json:"step_name,omitempty"`
	// Configured tool-set name, e.g. 'search'
	ToolSet string `json:"tool_set,omitempty"`
	// Unprefixed tool name on the server
	ToolName string `json:"tool_name,omitempty"`
	// Arguments holds the value of the "arguments" field.
	Arguments map[string]interface{} `json:"arguments,omitempty"`
	// Token-truncated at a line boundary for storage
	ResultText *string `json:"result_text,omitempty"`
	// IsError holds the value of the "is_error" field.
	IsError bool `json:"is_error,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs *int `json:"duration_ms,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ToolCallQuery when eager-loading is set.
	Edges        ToolCallEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ToolCallEdges holds the relations/edges for other nodes in the graph.
type ToolCallEdges struct {
	// Job holds the value of the job edge.
	Job *ResearchJob `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ToolCallEdges) JobOrErr() (*ResearchJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: researchjob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ToolCall) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case toolcall.FieldArguments:
			values[i] = new([]byte)
		case toolcall.FieldIsError:
			values[i] = new(sql.NullBool)
		case toolcall.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case toolcall.FieldID, toolcall.FieldJobID, toolcall.FieldStepName, toolcall.FieldToolSet, toolcall.FieldToolName, toolcall.FieldResultText:
			values[i] = new(sql.NullString)
		case toolcall.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ToolCall fields.
func (_m *ToolCall) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case toolcall.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case toolcall.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = value.String
			}
		case toolcall.FieldStepName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_name", values[i])
			} else if value.Valid {
				_m.StepName = value.String
			}
		case toolcall.FieldToolSet:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_set", values[i])
			} else if value.Valid {
				_m.ToolSet = value.String
			}
		case toolcall.FieldToolName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_name", values[i])
			} else if value.Valid {
				_m.ToolName = value.String
			}
		case toolcall.FieldArguments:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field arguments", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Arguments); err != nil {
					return fmt.Errorf("unmarshal field arguments: %w", err)
				}
			}
		case toolcall.FieldResultText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_text", values[i])
			} else if value.Valid {
				_m.ResultText = new(string)
				*_m.ResultText = value.String
			}
		case toolcall.FieldIsError:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_error", values[i])
			} else if value.Valid {
				_m.IsError = value.Bool
			}
		case toolcall.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = new(int)
				*_m.DurationMs = int(value.Int64)
			}
		case toolcall.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ToolCall.
// This includes values selected through modifiers, order, etc.
func (_m *ToolCall) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the ToolCall entity.
func (_m *ToolCall) QueryJob() *ResearchJobQuery {
	return NewToolCallClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this ToolCall.
// Note that you need to call ToolCall.Unwrap() before calling this method if this ToolCall
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ToolCall) Update() *ToolCallUpdateOne {
	return NewToolCallClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ToolCall entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ToolCall) Unwrap() *ToolCall {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ToolCall is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ToolCall) String() string {
	var builder strings.Builder
	builder.WriteString("ToolCall(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(_m.JobID)
	builder.WriteString(", ")
	builder.WriteString("step_name=")
	builder.WriteString(_m.StepName)
	builder.WriteString(", ")
	builder.WriteString("tool_set=")
	builder.WriteString(_m.ToolSet)
	builder.WriteString(", ")
	builder.WriteString("tool_name=")
	builder.WriteString(_m.ToolName)
	builder.WriteString(", ")
	builder.WriteString("arguments=")
	builder.WriteString(fmt.Sprintf("%v", _m.Arguments))
	builder.WriteString(", ")
	if v := _m.ResultText; v != nil {
		builder.WriteString("result_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_error=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsError))
	builder.WriteString(", ")
	if v := _m.DurationMs; v != nil {
		builder.WriteString("duration_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ToolCalls is a parsable slice of ToolCall.
type ToolCalls []*ToolCall
