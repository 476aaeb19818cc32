// Code generated by ent, DO NOT EDIT.

package suggestion

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the suggestion type in the database.
	Label = "suggestion"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "suggestion_id"
	// FieldCaseEventID holds the string denoting the case_event_id field in the database.
	FieldCaseEventID = "case_event_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDocType holds the string denoting the doc_type field in the database.
	FieldDocType = "doc_type"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldStorageKey holds the string denoting the storage_key field in the database.
	FieldStorageKey = "storage_key"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldSubmitted holds the string denoting the submitted field in the database.
	FieldSubmitted = "submitted"
	// FieldSubmittedAt holds the string denoting the submitted_at field in the database.
	FieldSubmittedAt = "submitted_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeCaseEvent holds the string denoting the case_event edge name in mutations.
	EdgeCaseEvent = "case_event"
	// CaseEventFieldID holds the string denoting the ID field of the CaseEvent.
	CaseEventFieldID = "event_id"
	// Table holds the table name of the suggestion in the database.
	Table = "suggestions"
	// CaseEventTable is the table that holds the case_event relation/edge.
	CaseEventTable = "suggestions"
	// CaseEventInverseTable is the table name for the CaseEvent entity.
	// It exists in this package in order to avoid circular dependency with the "caseevent" package.
	CaseEventInverseTable = "case_events"
	// CaseEventColumn is the table column denoting the case_event relation/edge.
	CaseEventColumn = "case_event_id"
)

// Columns holds all SQL columns for suggestion fields.
var Columns = []string{
	FieldID,
	FieldCaseEventID,
	FieldName,
	FieldDocType,
	FieldContent,
	FieldStorageKey,
	FieldScore,
	FieldSubmitted,
	FieldSubmittedAt,
	FieldCreatedAt,
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

var (
	// ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	ScoreValidator func(float64) error
	// DefaultSubmitted holds the default value on creation for the "submitted" field.
	DefaultSubmitted bool
)

// DocType defines the type for the "doc_type" enum field.
type DocType string

// DocType values.
const (
	DocTypeResponse             DocType = "response"
	DocTypeExceptionsResponse   DocType = "exceptions_response"
	DocTypeCompromise           DocType = "compromise"
	DocTypeDemandTextCorrection DocType = "demand_text_correction"
	DocTypeOther                DocType = "other"
)

func (dt DocType) String() string {
	return string(dt)
}

// DocTypeValidator is a validator for the "doc_type" field enum values. It is called by the builders before save.
func DocTypeValidator(dt DocType) error {
	switch dt {
	case DocTypeResponse, DocTypeExceptionsResponse, DocTypeCompromise, DocTypeDemandTextCorrection, DocTypeOther:
		return nil
	default:
		return fmt.Errorf("suggestion: invalid enum value for doc_type field: %q", dt)
	}
}

// OrderOption defines the ordering options for the Suggestion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCaseEventID orders the results by the case_event_id field.
func ByCaseEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaseEventID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDocType orders the results by the doc_type field.
func ByDocType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocType, opts...).ToFunc()
}

// ByStorageKey orders the results by the storage_key field.
func ByStorageKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStorageKey, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// BySubmitted orders the results by the submitted field.
func BySubmitted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmitted, opts...).ToFunc()
}

// BySubmittedAt orders the results by the submitted_at field.
func BySubmittedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmittedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCaseEventField orders the results by case_event field.
func ByCaseEventField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCaseEventStep(), sql.OrderByField(field, opts...))
	}
}
func newCaseEventStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CaseEventInverseTable, CaseEventFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CaseEventTable, CaseEventColumn),
	)
}
