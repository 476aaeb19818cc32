// Code generated by ent, DO NOT EDIT.

package caseevent

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the caseevent type in the database.
	Label = "case_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "event_id"
	// FieldCaseID holds the string denoting the case_id field in the database.
	FieldCaseID = "case_id"
	// FieldMilestone holds the string denoting the milestone field in the database.
	FieldMilestone = "milestone"
	// FieldOccurredAt holds the string denoting the occurred_at field in the database.
	FieldOccurredAt = "occurred_at"
	// FieldDetail holds the string denoting the detail field in the database.
	FieldDetail = "detail"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCase holds the string denoting the case edge name in mutations.
	EdgeCase = "case"
	// EdgeSuggestions holds the string denoting the suggestions edge name in mutations.
	EdgeSuggestions = "suggestions"
	// CollectionCaseFieldID holds the string denoting the ID field of the CollectionCase.
	CollectionCaseFieldID = "case_id"
	// SuggestionFieldID holds the string denoting the ID field of the Suggestion.
	SuggestionFieldID = "suggestion_id"
	// Table holds the table name of the caseevent in the database.
	Table = "case_events"
	// CaseTable is the table that holds the case relation/edge.
	CaseTable = "case_events"
	// CaseInverseTable is the table name for the CollectionCase entity.
	// It exists in this package in order to avoid circular dependency with the "collectioncase" package.
	CaseInverseTable = "collection_cases"
	// CaseColumn is the table column denoting the case relation/edge.
	CaseColumn = "case_id"
	// SuggestionsTable is the table that holds the suggestions relation/edge.
	SuggestionsTable = "suggestions"
	// SuggestionsInverseTable is the table name for the Suggestion entity.
	// It exists in this package in order to avoid circular dependency with the "suggestion" package.
	SuggestionsInverseTable = "suggestions"
	// SuggestionsColumn is the table column denoting the suggestions relation/edge.
	SuggestionsColumn = "case_event_id"
)

// Columns holds all SQL columns for caseevent fields.
var Columns = []string{
	FieldID,
	FieldCaseID,
	FieldMilestone,
	FieldOccurredAt,
	FieldDetail,
	FieldCreatedAt,
	FieldUpdatedAt,
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

// Milestone defines the type for the "milestone" enum field.
type Milestone string

// Milestone values.
const (
	MilestoneDocuments       Milestone = "documents"
	MilestoneDemandText      Milestone = "demand_text"
	MilestoneDispatch        Milestone = "dispatch"
	MilestoneNotification    Milestone = "notification"
	MilestoneDefense         Milestone = "defense"
	MilestonePlaintiffAnswer Milestone = "plaintiff_answer"
	MilestoneFinished        Milestone = "finished"
)

func (m Milestone) String() string {
	return string(m)
}

// MilestoneValidator is a validator for the "milestone" field enum values. It is called by the builders before save.
func MilestoneValidator(m Milestone) error {
	switch m {
	case MilestoneDocuments, MilestoneDemandText, MilestoneDispatch, MilestoneNotification, MilestoneDefense, MilestonePlaintiffAnswer, MilestoneFinished:
		return nil
	default:
		return fmt.Errorf("caseevent: invalid enum value for milestone field: %q", m)
	}
}

// OrderOption defines the ordering options for the CaseEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCaseID orders the results by the case_id field.
func ByCaseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaseID, opts...).ToFunc()
}

// ByMilestone orders the results by the milestone field.
func ByMilestone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMilestone, opts...).ToFunc()
}

// ByOccurredAt orders the results by the occurred_at field.
func ByOccurredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOccurredAt, opts...).ToFunc()
}

// ByDetail orders the results by the detail field.
func ByDetail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetail, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCaseField orders the results by case field.
func ByCaseField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCaseStep(), sql.OrderByField(field, opts...))
	}
}

// BySuggestionsCount orders the results by suggestions count.
func BySuggestionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSuggestionsStep(), opts...)
	}
}

// BySuggestions orders the results by suggestions terms.
func BySuggestions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSuggestionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCaseStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CaseInverseTable, CollectionCaseFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CaseTable, CaseColumn),
	)
}
func newSuggestionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SuggestionsInverseTable, SuggestionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SuggestionsTable, SuggestionsColumn),
	)
}
