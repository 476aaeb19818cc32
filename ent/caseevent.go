// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/andeslegal/cobranza/ent/caseevent"
	"github.com/andeslegal/cobranza/ent/collectioncase"
)

// CaseEvent is the model entity for the CaseEvent schema.
type CaseEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CaseID holds the value of the "case_id" field.
	CaseID string `json:"case_id,omitempty"`
	// Milestone holds the value of the "milestone" field.
	Milestone caseevent.Milestone `json:"milestone,omitempty"`
	// Absent while the milestone is still pending
	OccurredAt *time.Time `json:"occurred_at,omitempty"`
	// Detail holds the value of the "detail" field.
	Detail string `json:"detail,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CaseEventQuery when eager-loading is set.
	Edges        CaseEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CaseEventEdges holds the relations/edges for other nodes in the graph.
type CaseEventEdges struct {
	// Case holds the value of the case edge.
	Case *CollectionCase `json:"case,omitempty"`
	// Suggestions holds the value of the suggestions edge.
	Suggestions []*Suggestion `json:"suggestions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// CaseOrErr returns the Case value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CaseEventEdges) CaseOrErr() (*CollectionCase, error) {
	if e.Case != nil {
		return e.Case, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: collectioncase.Label}
	}
	return nil, &NotLoadedError{edge: "case"}
}

// SuggestionsOrErr returns the Suggestions value or an error if the edge
// was not loaded in eager-loading.
func (e CaseEventEdges) SuggestionsOrErr() ([]*Suggestion, error) {
	if e.loadedTypes[1] {
		return e.Suggestions, nil
	}
	return nil, &NotLoadedError{edge: "suggestions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CaseEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case caseevent.FieldID, caseevent.FieldCaseID, caseevent.FieldMilestone, caseevent.FieldDetail:
			values[i] = new(sql.NullString)
		case caseevent.FieldOccurredAt, caseevent.FieldCreatedAt, caseevent.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CaseEvent fields.
func (_m *CaseEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case caseevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case caseevent.FieldCaseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field case_id", values[i])
			} else if value.Valid {
				_m.CaseID = value.String
			}
		case caseevent.FieldMilestone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field milestone", values[i])
			} else if value.Valid {
				_m.Milestone = caseevent.Milestone(value.String)
			}
		case caseevent.FieldOccurredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field occurred_at", values[i])
			} else if value.Valid {
				_m.OccurredAt = new(time.Time)
				*_m.OccurredAt = value.Time
			}
		case caseevent.FieldDetail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detail", values[i])
			} else if value.Valid {
				_m.Detail = value.String
			}
		case caseevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case caseevent.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CaseEvent.
// This includes values selected through modifiers, order, etc.
func (_m *CaseEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCase queries the "case" edge of the CaseEvent entity.
func (_m *CaseEvent) QueryCase() *CollectionCaseQuery {
	return NewCaseEventClient(_m.config).QueryCase(_m)
}

// QuerySuggestions queries the "suggestions" edge of the CaseEvent entity.
func (_m *CaseEvent) QuerySuggestions() *SuggestionQuery {
	return NewCaseEventClient(_m.config).QuerySuggestions(_m)
}

// Update returns a builder for updating this CaseEvent.
// Note that you need to call CaseEvent.Unwrap() before calling this method if this CaseEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CaseEvent) Update() *CaseEventUpdateOne {
	return NewCaseEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CaseEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CaseEvent) Unwrap() *CaseEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CaseEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CaseEvent) String() string {
	var builder strings.Builder
	builder.WriteString("CaseEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("case_id=")
	builder.WriteString(_m.CaseID)
	builder.WriteString(", ")
	builder.WriteString("milestone=")
	builder.WriteString(fmt.Sprintf("%v", _m.Milestone))
	builder.WriteString(", ")
	if v := _m.OccurredAt; v != nil {
		builder.WriteString("occurred_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("detail=")
	builder.WriteString(_m.Detail)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CaseEvents is a parsable slice of CaseEvent.
type CaseEvents []*CaseEvent
