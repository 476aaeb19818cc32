// Code generated by ent, DO NOT EDIT.

package collectioncase

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the collectioncase type in the database.
	Label = "collection_case"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "case_id"
	// FieldRol holds the string denoting the rol field in the database.
	FieldRol = "rol"
	// FieldCourt holds the string denoting the court field in the database.
	FieldCourt = "court"
	// FieldDebtorName holds the string denoting the debtor_name field in the database.
	FieldDebtorName = "debtor_name"
	// FieldDebtorRut holds the string denoting the debtor_rut field in the database.
	FieldDebtorRut = "debtor_rut"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// EdgeDocuments holds the string denoting the documents edge name in mutations.
	EdgeDocuments = "documents"
	// CaseEventFieldID holds the string denoting the ID field of the CaseEvent.
	CaseEventFieldID = "event_id"
	// CaseDocumentFieldID holds the string denoting the ID field of the CaseDocument.
	CaseDocumentFieldID = "document_id"
	// Table holds the table name of the collectioncase in the database.
	Table = "collection_cases"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "case_events"
	// EventsInverseTable is the table name for the CaseEvent entity.
	// It exists in this package in order to avoid circular dependency with the "caseevent" package.
	EventsInverseTable = "case_events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "case_id"
	// DocumentsTable is the table that holds the documents relation/edge.
	DocumentsTable = "case_documents"
	// DocumentsInverseTable is the table name for the CaseDocument entity.
	// It exists in this package in order to avoid circular dependency with the "casedocument" package.
	DocumentsInverseTable = "case_documents"
	// DocumentsColumn is the table column denoting the documents relation/edge.
	DocumentsColumn = "case_id"
)

// Columns holds all SQL columns for collectioncase fields.
var Columns = []string{
	FieldID,
	FieldRol,
	FieldCourt,
	FieldDebtorName,
	FieldDebtorRut,
	FieldStatus,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
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

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusFinished:
		return nil
	default:
		return fmt.Errorf("collectioncase: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the CollectionCase queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRol orders the results by the rol field.
func ByRol(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRol, opts...).ToFunc()
}

// ByCourt orders the results by the court field.
func ByCourt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCourt, opts...).ToFunc()
}

// ByDebtorName orders the results by the debtor_name field.
func ByDebtorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDebtorName, opts...).ToFunc()
}

// ByDebtorRut orders the results by the debtor_rut field.
func ByDebtorRut(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDebtorRut, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDocumentsCount orders the results by documents count.
func ByDocumentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDocumentsStep(), opts...)
	}
}

// ByDocuments orders the results by documents terms.
func ByDocuments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, CaseEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
func newDocumentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentsInverseTable, CaseDocumentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
	)
}
