// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CaseDocument is the predicate function for casedocument builders.
type CaseDocument func(*sql.Selector)

// CaseEvent is the predicate function for caseevent builders.
type CaseEvent func(*sql.Selector)

// CollectionCase is the predicate function for collectioncase builders.
type CollectionCase func(*sql.Selector)

// Suggestion is the predicate function for suggestion builders.
type Suggestion func(*sql.Selector)
