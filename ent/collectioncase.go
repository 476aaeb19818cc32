// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/andeslegal/cobranza/ent/collectioncase"
)

// CollectionCase is the model entity for the CollectionCase schema.
type CollectionCase struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Court docket number, e.g. C-1234-2026
	Rol string `json:"rol,omitempty"`
	// Court holds the value of the "court" field.
	Court string `json:"court,omitempty"`
	// DebtorName holds the value of the "debtor_name" field.
	DebtorName string `json:"debtor_name,omitempty"`
	// DebtorRut holds the value of the "debtor_rut" field.
	DebtorRut string `json:"debtor_rut,omitempty"`
	// Status holds the value of the "status" field.
	Status collectioncase.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CollectionCaseQuery when eager-loading is set.
	Edges        CollectionCaseEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CollectionCaseEdges holds the relations/edges for other nodes in the graph.
type CollectionCaseEdges struct {
	// Events holds the value of the events edge.
	Events []*CaseEvent `json:"events,omitempty"`
	// Documents holds the value of the documents edge.
	Documents []*CaseDocument `json:"documents,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e CollectionCaseEdges) EventsOrErr() ([]*CaseEvent, error) {
	if e.loadedTypes[0] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// DocumentsOrErr returns the Documents value or an error if the edge
// was not loaded in eager-loading.
func (e CollectionCaseEdges) DocumentsOrErr() ([]*CaseDocument, error) {
	if e.loadedTypes[1] {
		return e.Documents, nil
	}
	return nil, &NotLoadedError{edge: "documents"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CollectionCase) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case collectioncase.FieldID, collectioncase.FieldRol, collectioncase.FieldCourt, collectioncase.FieldDebtorName, collectioncase.FieldDebtorRut, collectioncase.FieldStatus:
			values[i] = new(sql.NullString)
		case collectioncase.FieldCreatedAt, collectioncase.FieldUpdatedAt, collectioncase.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CollectionCase fields.
func (_m *CollectionCase) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case collectioncase.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case collectioncase.FieldRol:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rol", values[i])
			} else if value.Valid {
				_m.Rol = value.String
			}
		case collectioncase.FieldCourt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field court", values[i])
			} else if value.Valid {
				_m.Court = value.String
			}
		case collectioncase.FieldDebtorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field debtor_name", values[i])
			} else if value.Valid {
				_m.DebtorName = value.String
			}
		case collectioncase.FieldDebtorRut:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field debtor_rut", values[i])
			} else if value.Valid {
				_m.DebtorRut = value.String
			}
		case collectioncase.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = collectioncase.Status(value.String)
			}
		case collectioncase.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case collectioncase.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case collectioncase.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CollectionCase.
// This includes values selected through modifiers, order, etc.
func (_m *CollectionCase) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvents queries the "events" edge of the CollectionCase entity.
func (_m *CollectionCase) QueryEvents() *CaseEventQuery {
	return NewCollectionCaseClient(_m.config).QueryEvents(_m)
}

// QueryDocuments queries the "documents" edge of the CollectionCase entity.
func (_m *CollectionCase) QueryDocuments() *CaseDocumentQuery {
	return NewCollectionCaseClient(_m.config).QueryDocuments(_m)
}

// Update returns a builder for updating this CollectionCase.
// Note that you need to call CollectionCase.Unwrap() before calling this method if this CollectionCase
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CollectionCase) Update() *CollectionCaseUpdateOne {
	return NewCollectionCaseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CollectionCase entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CollectionCase) Unwrap() *CollectionCase {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CollectionCase is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CollectionCase) String() string {
	var builder strings.Builder
	builder.WriteString("CollectionCase(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("rol=")
	builder.WriteString(_m.Rol)
	builder.WriteString(", ")
	builder.WriteString("court=")
	builder.WriteString(_m.Court)
	builder.WriteString(", ")
	builder.WriteString("debtor_name=")
	builder.WriteString(_m.DebtorName)
	builder.WriteString(", ")
	builder.WriteString("debtor_rut=")
	builder.WriteString(_m.DebtorRut)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// CollectionCases is a parsable slice of CollectionCase.
type CollectionCases []*CollectionCase
