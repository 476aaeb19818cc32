// Code generated by ent, DO NOT EDIT.

package casedocument

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the casedocument type in the database.
	Label = "case_document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "document_id"
	// FieldCaseID holds the string denoting the case_id field in the database.
	FieldCaseID = "case_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldStorageKey holds the string denoting the storage_key field in the database.
	FieldStorageKey = "storage_key"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldContentType holds the string denoting the content_type field in the database.
	FieldContentType = "content_type"
	// FieldSizeBytes holds the string denoting the size_bytes field in the database.
	FieldSizeBytes = "size_bytes"
	// FieldUploadedAt holds the string denoting the uploaded_at field in the database.
	FieldUploadedAt = "uploaded_at"
	// EdgeCase holds the string denoting the case edge name in mutations.
	EdgeCase = "case"
	// CollectionCaseFieldID holds the string denoting the ID field of the CollectionCase.
	CollectionCaseFieldID = "case_id"
	// Table holds the table name of the casedocument in the database.
	Table = "case_documents"
	// CaseTable is the table that holds the case relation/edge.
	CaseTable = "case_documents"
	// CaseInverseTable is the table name for the CollectionCase entity.
	// It exists in this package in order to avoid circular dependency with the "collectioncase" package.
	CaseInverseTable = "collection_cases"
	// CaseColumn is the table column denoting the case relation/edge.
	CaseColumn = "case_id"
)

// Columns holds all SQL columns for casedocument fields.
var Columns = []string{
	FieldID,
	FieldCaseID,
	FieldKind,
	FieldName,
	FieldStorageKey,
	FieldPosition,
	FieldContentType,
	FieldSizeBytes,
	FieldUploadedAt,
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
	// DefaultPosition holds the default value on creation for the "position" field.
	DefaultPosition int
	// DefaultContentType holds the default value on creation for the "content_type" field.
	DefaultContentType string
	// DefaultSizeBytes holds the default value on creation for the "size_bytes" field.
	DefaultSizeBytes int64
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindEvidence           Kind = "evidence"
	KindDemandText         Kind = "demand_text"
	KindPreliminaryMeasure Kind = "preliminary_measure"
	KindResponse           Kind = "response"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindEvidence, KindDemandText, KindPreliminaryMeasure, KindResponse:
		return nil
	default:
		return fmt.Errorf("casedocument: invalid enum value for kind field: %q", k)
	}
}

// OrderOption defines the ordering options for the CaseDocument queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCaseID orders the results by the case_id field.
func ByCaseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaseID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByStorageKey orders the results by the storage_key field.
func ByStorageKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStorageKey, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByContentType orders the results by the content_type field.
func ByContentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentType, opts...).ToFunc()
}

// BySizeBytes orders the results by the size_bytes field.
func BySizeBytes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSizeBytes, opts...).ToFunc()
}

// ByUploadedAt orders the results by the uploaded_at field.
func ByUploadedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadedAt, opts...).ToFunc()
}

// ByCaseField orders the results by case field.
func ByCaseField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCaseStep(), sql.OrderByField(field, opts...))
	}
}
func newCaseStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CaseInverseTable, CollectionCaseFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CaseTable, CaseColumn),
	)
}
