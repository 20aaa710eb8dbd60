// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loreweave/loreweave/ent/llmcall"
	"github.com/loreweave/loreweave/ent/researchjob"
)

// LLMCall is the model entity for the LLMCall schema.
type LLMCall struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// StepName holds the value of the "step_name" field.
	StepName string `json:"step_name,omitempty"`
	// Purpose holds the value of the "purpose" field.
	Purpose llmcall.Purpose `json:"purpose,omitempty"`
	// e.g. 'anthropic'
	Provider string `json:"provider,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// PromptTokens holds the value of the "prompt_tokens" field.
	PromptTokens *int64 `json:"prompt_tokens,omitempty"`
	// CompletionTokens holds the value of the "completion_tokens" field.
	CompletionTokens *int64 `json:"completion_tokens,omitempty"`
	// TotalTokens holds the value of the "total_tokens" field.
	TotalTokens *int64 `json:"total_tokens,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs *int `json:"duration_ms,omitempty"`
	// Status holds the value of the "status" field.
	Status llmcall.Status `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LLMCallQuery when eager-loading is set.
	Edges        LLMCallEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LLMCallEdges holds the relations/edges for other nodes in the graph.
type LLMCallEdges struct {
	// Job holds the value of the job edge.
	Job *ResearchJob `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LLMCallEdges) JobOrErr() (*ResearchJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: researchjob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LLMCall) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case llmcall.FieldPromptTokens, llmcall.FieldCompletionTokens, llmcall.FieldTotalTokens, llmcall.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case llmcall.FieldID, llmcall.FieldJobID, llmcall.FieldStepName, llmcall.FieldPurpose, llmcall.FieldProvider, llmcall.FieldModel, llmcall.FieldStatus, llmcall.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case llmcall.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LLMCall fields.
func (_m *LLMCall) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case llmcall.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case llmcall.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = value.String
			}
		case llmcall.FieldStepName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_name", values[i])
			} else if value.Valid {
				_m.StepName = value.String
			}
		case llmcall.FieldPurpose:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field purpose", values[i])
			} else if value.Valid {
				_m.Purpose = llmcall.Purpose(value.String)
			}
		case llmcall.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case llmcall.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case llmcall.FieldPromptTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_tokens", values[i])
			} else if value.Valid {
				_m.PromptTokens = new(int64)
				*_m.PromptTokens = value.Int64
			}
		case llmcall.FieldCompletionTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completion_tokens", values[i])
			} else if value.Valid {
				_m.CompletionTokens = new(int64)
				*_m.CompletionTokens = value.Int64
			}
		case llmcall.FieldTotalTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tokens", values[i])
			} else if value.Valid {
				_m.TotalTokens = new(int64)
				*_m.TotalTokens = value.Int64
			}
		case llmcall.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = new(int)
				*_m.DurationMs = int(value.Int64)
			}
		case llmcall.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = llmcall.Status(value.String)
			}
		case llmcall.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case llmcall.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the LLMCall.
// This includes values selected through modifiers, order, etc.
func (_m *LLMCall) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the LLMCall entity.
func (_m *LLMCall) QueryJob() *ResearchJobQuery {
	return NewLLMCallClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this LLMCall.
// Note that you need to call LLMCall.Unwrap() before calling this method if this LLMCall
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LLMCall) Update() *LLMCallUpdateOne {
	return NewLLMCallClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LLMCall entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LLMCall) Unwrap() *LLMCall {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LLMCall is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LLMCall) String() string {
	var builder strings.Builder
	builder.WriteString("LLMCall(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(_m.JobID)
	builder.WriteString(", ")
	builder.WriteString("step_name=")
	builder.WriteString(_m.StepName)
	builder.WriteString(", ")
	builder.WriteString("purpose=")
	builder.WriteString(fmt.Sprintf("%v", _m.Purpose))
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	if v := _m.PromptTokens; v != nil {
		builder.WriteString("prompt_tokens=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CompletionTokens; v != nil {
		builder.WriteString("completion_tokens=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TotalTokens; v != nil {
		builder.WriteString("total_tokens=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DurationMs; v != nil {
		builder.WriteString("duration_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LLMCalls is a parsable slice of LLMCall.
type LLMCalls []*LLMCall
