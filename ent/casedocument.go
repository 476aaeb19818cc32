// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/andeslegal/cobranza/ent/casedocument"
	"github.com/andeslegal/cobranza/ent/collectioncase"
)

// CaseDocument is the model entity for the CaseDocument schema.
type CaseDocument struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CaseID holds the value of the "case_id" field.
	CaseID string `json:"case_id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind casedocument.Kind `json:"kind,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// StorageKey holds the value of the "storage_key" field.
	StorageKey string `json:"storage_key,omitempty"`
	// User-chosen order within the case; drives submission labels
	Position int `json:"position,omitempty"`
	// ContentType holds the value of the "content_type" field.
	ContentType string `json:"content_type,omitempty"`
	// SizeBytes holds the value of the "size_bytes" field.
	SizeBytes int64 `json:"size_bytes,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CaseDocumentQuery when eager-loading is set.
	Edges        CaseDocumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CaseDocumentEdges holds the relations/edges for other nodes in the graph.
type CaseDocumentEdges struct {
	// Case holds the value of the case edge.
	Case *CollectionCase `json:"case,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CaseOrErr returns the Case value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CaseDocumentEdges) CaseOrErr() (*CollectionCase, error) {
	if e.Case != nil {
		return e.Case, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: collectioncase.Label}
	}
	return nil, &NotLoadedError{edge: "case"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CaseDocument) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case casedocument.FieldPosition, casedocument.FieldSizeBytes:
			values[i] = new(sql.NullInt64)
		case casedocument.FieldID, casedocument.FieldCaseID, casedocument.FieldKind, casedocument.FieldName, casedocument.FieldStorageKey, casedocument.FieldContentType:
			values[i] = new(sql.NullString)
		case casedocument.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CaseDocument fields.
func (_m *CaseDocument) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case casedocument.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case casedocument.FieldCaseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field case_id", values[i])
			} else if value.Valid {
				_m.CaseID = value.String
			}
		case casedocument.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = casedocument.Kind(value.String)
			}
		case casedocument.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case casedocument.FieldStorageKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_key", values[i])
			} else if value.Valid {
				_m.StorageKey = value.String
			}
		case casedocument.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case casedocument.FieldContentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_type", values[i])
			} else if value.Valid {
				_m.ContentType = value.String
			}
		case casedocument.FieldSizeBytes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field size_bytes", values[i])
			} else if value.Valid {
				_m.SizeBytes = value.Int64
			}
		case casedocument.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CaseDocument.
// This includes values selected through modifiers, order, etc.
func (_m *CaseDocument) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCase queries the "case" edge of the CaseDocument entity.
func (_m *CaseDocument) QueryCase() *CollectionCaseQuery {
	return NewCaseDocumentClient(_m.config).QueryCase(_m)
}

// Update returns a builder for updating this CaseDocument.
// Note that you need to call CaseDocument.Unwrap() before calling this method if this CaseDocument
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CaseDocument) Update() *CaseDocumentUpdateOne {
	return NewCaseDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CaseDocument entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CaseDocument) Unwrap() *CaseDocument {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CaseDocument is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CaseDocument) String() string {
	var builder strings.Builder
	builder.WriteString("CaseDocument(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("case_id=")
	builder.WriteString(_m.CaseID)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("storage_key=")
	builder.WriteString(_m.StorageKey)
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("content_type=")
	builder.WriteString(_m.ContentType)
	builder.WriteString(", ")
	builder.WriteString("size_bytes=")
	builder.WriteString(fmt.Sprintf("%v", _m.SizeBytes))
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CaseDocuments is a parsable slice of CaseDocument.
type CaseDocuments []*CaseDocument
