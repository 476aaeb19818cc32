// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/andeslegal/cobranza/ent/caseevent"
	"github.com/andeslegal/cobranza/ent/suggestion"
)

// Suggestion is the model entity for the Suggestion schema.
type Suggestion struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CaseEventID holds the value of the "case_event_id" field.
	CaseEventID string `json:"case_event_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// DocType holds the value of the "doc_type" field.
	DocType suggestion.DocType `json:"doc_type,omitempty"`
	// Structured document; absent content disables submission
	Content map[string]interface{} `json:"content,omitempty"`
	// StorageKey holds the value of the "storage_key" field.
	StorageKey *string `json:"storage_key,omitempty"`
	// Score holds the value of the "score" field.
	Score float64 `json:"score,omitempty"`
	// Submitted holds the value of the "submitted" field.
	Submitted bool `json:"submitted,omitempty"`
	// SubmittedAt holds the value of the "submitted_at" field.
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SuggestionQuery when eager-loading is set.
	Edges        SuggestionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SuggestionEdges holds the relations/edges for other nodes in the graph.
type SuggestionEdges struct {
	// CaseEvent holds the value of the case_event edge.
	CaseEvent *CaseEvent `json:"case_event,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CaseEventOrErr returns the CaseEvent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SuggestionEdges) CaseEventOrErr() (*CaseEvent, error) {
	if e.CaseEvent != nil {
		return e.CaseEvent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: caseevent.Label}
	}
	return nil, &NotLoadedError{edge: "case_event"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Suggestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case suggestion.FieldContent:
			values[i] = new([]byte)
		case suggestion.FieldSubmitted:
			values[i] = new(sql.NullBool)
		case suggestion.FieldScore:
			values[i] = new(sql.NullFloat64)
		case suggestion.FieldID, suggestion.FieldCaseEventID, suggestion.FieldName, suggestion.FieldDocType, suggestion.FieldStorageKey:
			values[i] = new(sql.NullString)
		case suggestion.FieldSubmittedAt, suggestion.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Suggestion fields.
func (_m *Suggestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case suggestion.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case suggestion.FieldCaseEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field case_event_id", values[i])
			} else if value.Valid {
				_m.CaseEventID = value.String
			}
		case suggestion.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case suggestion.FieldDocType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doc_type", values[i])
			} else if value.Valid {
				_m.DocType = suggestion.DocType(value.String)
			}
		case suggestion.FieldContent:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Content); err != nil {
					return fmt.Errorf("unmarshal field content: %w", err)
				}
			}
		case suggestion.FieldStorageKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_key", values[i])
			} else if value.Valid {
				_m.StorageKey = new(string)
				*_m.StorageKey = value.String
			}
		case suggestion.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case suggestion.FieldSubmitted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field submitted", values[i])
			} else if value.Valid {
				_m.Submitted = value.Bool
			}
		case suggestion.FieldSubmittedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field submitted_at", values[i])
			} else if value.Valid {
				_m.SubmittedAt = new(time.Time)
				*_m.SubmittedAt = value.Time
			}
		case suggestion.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Suggestion.
// This includes values selected through modifiers, order, etc.
func (_m *Suggestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCaseEvent queries the "case_event" edge of the Suggestion entity.
func (_m *Suggestion) QueryCaseEvent() *CaseEventQuery {
	return NewSuggestionClient(_m.config).QueryCaseEvent(_m)
}

// Update returns a builder for updating this Suggestion.
// Note that you need to call Suggestion.Unwrap() before calling this method if this Suggestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Suggestion) Update() *SuggestionUpdateOne {
	return NewSuggestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Suggestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Suggestion) Unwrap() *Suggestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Suggestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Suggestion) String() string {
	var builder strings.Builder
	builder.WriteString("Suggestion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("case_event_id=")
	builder.WriteString(_m.CaseEventID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("doc_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocType))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(fmt.Sprintf("%v", _m.Content))
	builder.WriteString(", ")
	if v := _m.StorageKey; v != nil {
		builder.WriteString("storage_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("submitted=")
	builder.WriteString(fmt.Sprintf("%v", _m.Submitted))
	builder.WriteString(", ")
	if v := _m.SubmittedAt; v != nil {
		builder.WriteString("submitted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Suggestions is a parsable slice of Suggestion.
type Suggestions []*Suggestion
