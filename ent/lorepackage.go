// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loreweave/loreweave/ent/lorepackage"
	"github.com/loreweave/loreweave/ent/researchjob"
)

// LorePackage is the model entity for the LorePackage schema.
type LorePackage struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// ZoneName holds the value of the "zone_name" field.
	ZoneName string `json:"zone_name,omitempty"`
	// Categories, cross_reference, sources_by_tier, confidence_by_category, errors
	Document map[string]interface{} `json:"document,omitempty"`
	// PublishedAt holds the value of the "published_at" field.
	PublishedAt time.Time `json:"published_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LorePackageQuery when eager-loading is set.
	Edges        LorePackageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LorePackageEdges holds the relations/edges for other nodes in the graph.
type LorePackageEdges struct {
	// Job holds the value of the job edge.
	Job *ResearchJob `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LorePackageEdges) JobOrErr() (*ResearchJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: researchjob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LorePackage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lorepackage.FieldDocument:
			values[i] = new([]byte)
		case lorepackage.FieldID, lorepackage.FieldJobID, lorepackage.FieldZoneName:
			values[i] = new(sql.NullString)
		case lorepackage.FieldPublishedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LorePackage fields.
func (_m *LorePackage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lorepackage.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case lorepackage.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = value.String
			}
		case lorepackage.FieldZoneName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field zone_name", values[i])
			} else if value.Valid {
				_m.ZoneName = value.String
			}
		case lorepackage.FieldDocument:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field document", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Document); err != nil {
					return fmt.Errorf("unmarshal field document: %w", err)
				}
			}
		case lorepackage.FieldPublishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field published_at", values[i])
			} else if value.Valid {
				_m.PublishedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LorePackage.
// This includes values selected through modifiers, order, etc.
func (_m *LorePackage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the LorePackage entity.
func (_m *LorePackage) QueryJob() *ResearchJobQuery {
	return NewLorePackageClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this LorePackage.
// Note that you need to call LorePackage.Unwrap() before calling this method if this LorePackage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LorePackage) Update() *LorePackageUpdateOne {
	return NewLorePackageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LorePackage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LorePackage) Unwrap() *LorePackage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LorePackage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LorePackage) String() string {
	var builder strings.Builder
	builder.WriteString("LorePackage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(_m.JobID)
	builder.WriteString(", ")
	builder.WriteString("zone_name=")
	builder.WriteString(_m.ZoneName)
	builder.WriteString(", ")
	builder.WriteString("document=")
	builder.WriteString(fmt.Sprintf("%v", _m.Document))
	builder.WriteString(", ")
	builder.WriteString("published_at=")
	builder.WriteString(_m.PublishedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LorePackages is a parsable slice of LorePackage.
type LorePackages []*LorePackage
