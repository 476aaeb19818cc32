// Code generated by ent, DO NOT EDIT.

package suggestion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/andeslegal/cobranza/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldContainsFold(FieldID, id))
}

// CaseEventID applies equality check predicate on the "case_event_id" field. It's identical to CaseEventIDEQ.
func CaseEventID(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldCaseEventID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldName, v))
}

// StorageKey applies equality check predicate on the "storage_key" field. It's identical to StorageKeyEQ.
func StorageKey(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldStorageKey, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldScore, v))
}

// Submitted applies equality check predicate on the "submitted" field. It's identical to SubmittedEQ.
func Submitted(v bool) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldSubmitted, v))
}

// SubmittedAt applies equality check predicate on the "submitted_at" field. It's identical to SubmittedAtEQ.
func SubmittedAt(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldSubmittedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldCreatedAt, v))
}

// CaseEventIDEQ applies the EQ predicate on the "case_event_id" field.
func CaseEventIDEQ(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldCaseEventID, v))
}

// CaseEventIDNEQ applies the NEQ predicate on the "case_event_id" field.
func CaseEventIDNEQ(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldCaseEventID, v))
}

// CaseEventIDIn applies the In predicate on the "case_event_id" field.
func CaseEventIDIn(vs ...string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldCaseEventID, vs...))
}

// CaseEventIDNotIn applies the NotIn predicate on the "case_event_id" field.
func CaseEventIDNotIn(vs ...string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldCaseEventID, vs...))
}

// CaseEventIDGT applies the GT predicate on the "case_event_id" field.
func CaseEventIDGT(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldCaseEventID, v))
}

// CaseEventIDGTE applies the GTE predicate on the "case_event_id" field.
func CaseEventIDGTE(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldCaseEventID, v))
}

// CaseEventIDLT applies the LT predicate on the "case_event_id" field.
func CaseEventIDLT(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldCaseEventID, v))
}

// CaseEventIDLTE applies the LTE predicate on the "case_event_id" field.
func CaseEventIDLTE(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldCaseEventID, v))
}

// CaseEventIDContains applies the Contains predicate on the "case_event_id" field.
func CaseEventIDContains(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldContains(FieldCaseEventID, v))
}

// CaseEventIDHasPrefix applies the HasPrefix predicate on the "case_event_id" field.
func CaseEventIDHasPrefix(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldHasPrefix(FieldCaseEventID, v))
}

// CaseEventIDHasSuffix applies the HasSuffix predicate on the "case_event_id" field.
func CaseEventIDHasSuffix(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldHasSuffix(FieldCaseEventID, v))
}

// CaseEventIDEqualFold applies the EqualFold predicate on the "case_event_id" field.
func CaseEventIDEqualFold(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEqualFold(FieldCaseEventID, v))
}

// CaseEventIDContainsFold applies the ContainsFold predicate on the "case_event_id" field.
func CaseEventIDContainsFold(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldContainsFold(FieldCaseEventID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldContainsFold(FieldName, v))
}

// DocTypeEQ applies the EQ predicate on the "doc_type" field.
func DocTypeEQ(v DocType) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldDocType, v))
}

// DocTypeNEQ applies the NEQ predicate on the "doc_type" field.
func DocTypeNEQ(v DocType) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldDocType, v))
}

// DocTypeIn applies the In predicate on the "doc_type" field.
func DocTypeIn(vs ...DocType) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldDocType, vs...))
}

// DocTypeNotIn applies the NotIn predicate on the "doc_type" field.
func DocTypeNotIn(vs ...DocType) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldDocType, vs...))
}

// ContentIsNil applies the IsNil predicate on the "content" field.
func ContentIsNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIsNull(FieldContent))
}

// ContentNotNil applies the NotNil predicate on the "content" field.
func ContentNotNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotNull(FieldContent))
}

// StorageKeyEQ applies the EQ predicate on the "storage_key" field.
func StorageKeyEQ(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldStorageKey, v))
}

// StorageKeyNEQ applies the NEQ predicate on the "storage_key" field.
func StorageKeyNEQ(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldStorageKey, v))
}

// StorageKeyIn applies the In predicate on the "storage_key" field.
func StorageKeyIn(vs ...string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldStorageKey, vs...))
}

// StorageKeyNotIn applies the NotIn predicate on the "storage_key" field.
func StorageKeyNotIn(vs ...string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldStorageKey, vs...))
}

// StorageKeyGT applies the GT predicate on the "storage_key" field.
func StorageKeyGT(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldStorageKey, v))
}

// StorageKeyGTE applies the GTE predicate on the "storage_key" field.
func StorageKeyGTE(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldStorageKey, v))
}

// StorageKeyLT applies the LT predicate on the "storage_key" field.
func StorageKeyLT(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldStorageKey, v))
}

// StorageKeyLTE applies the LTE predicate on the "storage_key" field.
func StorageKeyLTE(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldStorageKey, v))
}

// StorageKeyContains applies the Contains predicate on the "storage_key" field.
func StorageKeyContains(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldContains(FieldStorageKey, v))
}

// StorageKeyHasPrefix applies the HasPrefix predicate on the "storage_key" field.
func StorageKeyHasPrefix(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldHasPrefix(FieldStorageKey, v))
}

// StorageKeyHasSuffix applies the HasSuffix predicate on the "storage_key" field.
func StorageKeyHasSuffix(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldHasSuffix(FieldStorageKey, v))
}

// StorageKeyIsNil applies the IsNil predicate on the "storage_key" field.
func StorageKeyIsNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIsNull(FieldStorageKey))
}

// StorageKeyNotNil applies the NotNil predicate on the "storage_key" field.
func StorageKeyNotNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotNull(FieldStorageKey))
}

// StorageKeyEqualFold applies the EqualFold predicate on the "storage_key" field.
func StorageKeyEqualFold(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEqualFold(FieldStorageKey, v))
}

// StorageKeyContainsFold applies the ContainsFold predicate on the "storage_key" field.
func StorageKeyContainsFold(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldContainsFold(FieldStorageKey, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldScore, v))
}

// SubmittedEQ applies the EQ predicate on the "submitted" field.
func SubmittedEQ(v bool) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldSubmitted, v))
}

// SubmittedNEQ applies the NEQ predicate on the "submitted" field.
func SubmittedNEQ(v bool) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldSubmitted, v))
}

// SubmittedAtEQ applies the EQ predicate on the "submitted_at" field.
func SubmittedAtEQ(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldSubmittedAt, v))
}

// SubmittedAtNEQ applies the NEQ predicate on the "submitted_at" field.
func SubmittedAtNEQ(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldSubmittedAt, v))
}

// SubmittedAtIn applies the In predicate on the "submitted_at" field.
func SubmittedAtIn(vs ...time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldSubmittedAt, vs...))
}

// SubmittedAtNotIn applies the NotIn predicate on the "submitted_at" field.
func SubmittedAtNotIn(vs ...time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldSubmittedAt, vs...))
}

// SubmittedAtGT applies the GT predicate on the "submitted_at" field.
func SubmittedAtGT(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldSubmittedAt, v))
}

// SubmittedAtGTE applies the GTE predicate on the "submitted_at" field.
func SubmittedAtGTE(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldSubmittedAt, v))
}

// SubmittedAtLT applies the LT predicate on the "submitted_at" field.
func SubmittedAtLT(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldSubmittedAt, v))
}

// SubmittedAtLTE applies the LTE predicate on the "submitted_at" field.
func SubmittedAtLTE(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldSubmittedAt, v))
}

// SubmittedAtIsNil applies the IsNil predicate on the "submitted_at" field.
func SubmittedAtIsNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIsNull(FieldSubmittedAt))
}

// SubmittedAtNotNil applies the NotNil predicate on the "submitted_at" field.
func SubmittedAtNotNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotNull(FieldSubmittedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldCreatedAt, v))
}

// HasCaseEvent applies the HasEdge predicate on the "case_event" edge.
func HasCaseEvent() predicate.Suggestion {
	return predicate.Suggestion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CaseEventTable, CaseEventColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCaseEventWith applies the HasEdge predicate on the "case_event" edge with a given conditions (other predicates).
func HasCaseEventWith(preds ...predicate.CaseEvent) predicate.Suggestion {
	return predicate.Suggestion(func(s *sql.Selector) {
		step := newCaseEventStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Suggestion) predicate.Suggestion {
	return predicate.Suggestion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Suggestion) predicate.Suggestion {
	return predicate.Suggestion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Suggestion) predicate.Suggestion {
	return predicate.Suggestion(sql.NotPredicates(p))
}
