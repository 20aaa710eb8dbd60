// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loreweave/loreweave/ent/checkpoint"
	"github.com/loreweave/loreweave/ent/researchjob"
)

// Checkpoint is the model entity for the Checkpoint schema.
type Checkpoint struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// CurrentStepIndex holds the value of the "current_step_index" field.
	CurrentStepIndex int `json:"current_step_index,omitempty"`
	// CompletedStepNames holds the value of the "completed_step_names" field.
	CompletedStepNames []string `json:"completed_step_names,omitempty"`
	// topic -> ordered content blocks, capped per topic
	AccumulatedContent map[string][]string `json:"accumulated_content,omitempty"`
	// topic -> [{uri, tier}], deduplicated by URI keeping highest tier
	AccumulatedSources map[string]interface{} `json:"accumulated_sources,omitempty"`
	// topic -> agent-produced compact summary
	TopicSummaries map[string]string `json:"topic_summaries,omitempty"`
	// category -> most recent structured extraction
	PartialExtractions map[string]interface{} `json:"partial_extractions,omitempty"`
	// Append-only: {step, kind, message, at}
	StepErrors []map[string]interface{} `json:"step_errors,omitempty"`
	// TokensUsed holds the value of the "tokens_used" field.
	TokensUsed int64 `json:"tokens_used,omitempty"`
	// Status holds the value of the "status" field.
	Status checkpoint.Status `json:"status,omitempty"`
	// Document shape version for forward-compatible readers
	SchemaVersion int `json:"schema_version,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CheckpointQuery when eager-loading is set.
	Edges        CheckpointEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CheckpointEdges holds the relations/edges for other nodes in the graph.
type CheckpointEdges struct {
	// Job holds the value of the job edge.
	Job *ResearchJob `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CheckpointEdges) JobOrErr() (*ResearchJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: researchjob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Checkpoint) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case checkpoint.FieldCompletedStepNames, checkpoint.FieldAccumulatedContent, checkpoint.FieldAccumulatedSources, checkpoint.FieldTopicSummaries, checkpoint.FieldPartialExtractions, checkpoint.FieldStepErrors:
			values[i] = new([]byte)
		case checkpoint.FieldCurrentStepIndex, checkpoint.FieldTokensUsed, checkpoint.FieldSchemaVersion:
			values[i] = new(sql.NullInt64)
		case checkpoint.FieldID, checkpoint.FieldJobID, checkpoint.FieldStatus:
			values[i] = new(sql.NullString)
		case checkpoint.FieldCreatedAt, checkpoint.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Checkpoint fields.
func (_m *Checkpoint) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case checkpoint.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case checkpoint.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = value.String
			}
		case checkpoint.FieldCurrentStepIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_step_index", values[i])
			} else if value.Valid {
				_m.CurrentStepIndex = int(value.Int64)
			}
		case checkpoint.FieldCompletedStepNames:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field completed_step_names", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompletedStepNames); err != nil {
					return fmt.Errorf("unmarshal field completed_step_names: %w", err)
				}
			}
		case checkpoint.FieldAccumulatedContent:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field accumulated_content", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AccumulatedContent); err != nil {
					return fmt.Errorf("unmarshal field accumulated_content: %w", err)
				}
			}
		case checkpoint.FieldAccumulatedSources:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field accumulated_sources", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AccumulatedSources); err != nil {
					return fmt.Errorf("unmarshal field accumulated_sources: %w", err)
				}
			}
		case checkpoint.FieldTopicSummaries:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field topic_summaries", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TopicSummaries); err != nil {
					return fmt.Errorf("unmarshal field topic_summaries: %w", err)
				}
			}
		case checkpoint.FieldPartialExtractions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field partial_extractions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PartialExtractions); err != nil {
					return fmt.Errorf("unmarshal field partial_extractions: %w", err)
				}
			}
		case checkpoint.FieldStepErrors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field step_errors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StepErrors); err != nil {
					return fmt.Errorf("unmarshal field step_errors: %w", err)
				}
			}
		case checkpoint.FieldTokensUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_used", values[i])
			} else if value.Valid {
				_m.TokensUsed = value.Int64
			}
		case checkpoint.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = checkpoint.Status(value.String)
			}
		case checkpoint.FieldSchemaVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field schema_version", values[i])
			} else if value.Valid {
				_m.SchemaVersion = int(value.Int64)
			}
		case checkpoint.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case checkpoint.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Checkpoint.
// This includes values selected through modifiers, order, etc.
func (_m *Checkpoint) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the Checkpoint entity.
func (_m *Checkpoint) QueryJob() *ResearchJobQuery {
	return NewCheckpointClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this Checkpoint.
// Note that you need to call Checkpoint.Unwrap() before calling this method if this Checkpoint
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Checkpoint) Update() *CheckpointUpdateOne {
	return NewCheckpointClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Checkpoint entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Checkpoint) Unwrap() *Checkpoint {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Checkpoint is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Checkpoint) String() string {
	var builder strings.Builder
	builder.WriteString("Checkpoint(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(_m.JobID)
	builder.WriteString(", ")
	builder.WriteString("current_step_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentStepIndex))
	builder.WriteString(", ")
	builder.WriteString("completed_step_names=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedStepNames))
	builder.WriteString(", ")
	builder.WriteString("accumulated_content=")
	builder.WriteString(fmt.Sprintf("%v", _m.AccumulatedContent))
	builder.WriteString(", ")
	builder.WriteString("accumulated_sources=")
	builder.WriteString(fmt.Sprintf("%v", _m.AccumulatedSources))
	builder.WriteString(", ")
	builder.WriteString("topic_summaries=")
	builder.WriteString(fmt.Sprintf("%v", _m.TopicSummaries))
	builder.WriteString(", ")
	builder.WriteString("partial_extractions=")
	builder.WriteString(fmt.Sprintf("%v", _m.PartialExtractions))
	builder.WriteString(", ")
	builder.WriteString("step_errors=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepErrors))
	builder.WriteString(", ")
	builder.WriteString("tokens_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensUsed))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("schema_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.SchemaVersion))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Checkpoints is a parsable slice of Checkpoint.
type Checkpoints []*Checkpoint
