// Code generated by ent, DO NOT EDIT.

package caseevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/andeslegal/cobranza/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldContainsFold(FieldID, id))
}

// CaseID applies equality check predicate on the "case_id" field. It's identical to CaseIDEQ.
func CaseID(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEQ(FieldCaseID, v))
}

// OccurredAt applies equality check predicate on the "occurred_at" field. It's identical to OccurredAtEQ.
func OccurredAt(v time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEQ(FieldOccurredAt, v))
}

// Detail applies equality check predicate on the "detail" field. It's identical to DetailEQ.
func Detail(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEQ(FieldDetail, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEQ(FieldUpdatedAt, v))
}

// CaseIDEQ applies the EQ predicate on the "case_id" field.
func CaseIDEQ(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEQ(FieldCaseID, v))
}

// CaseIDNEQ applies the NEQ predicate on the "case_id" field.
func CaseIDNEQ(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNEQ(FieldCaseID, v))
}

// CaseIDIn applies the In predicate on the "case_id" field.
func CaseIDIn(vs ...string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldIn(FieldCaseID, vs...))
}

// CaseIDNotIn applies the NotIn predicate on the "case_id" field.
func CaseIDNotIn(vs ...string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNotIn(FieldCaseID, vs...))
}

// CaseIDGT applies the GT predicate on the "case_id" field.
func CaseIDGT(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldGT(FieldCaseID, v))
}

// CaseIDGTE applies the GTE predicate on the "case_id" field.
func CaseIDGTE(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldGTE(FieldCaseID, v))
}

// CaseIDLT applies the LT predicate on the "case_id" field.
func CaseIDLT(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldLT(FieldCaseID, v))
}

// CaseIDLTE applies the LTE predicate on the "case_id" field.
func CaseIDLTE(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldLTE(FieldCaseID, v))
}

// CaseIDContains applies the Contains predicate on the "case_id" field.
func CaseIDContains(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldContains(FieldCaseID, v))
}

// CaseIDHasPrefix applies the HasPrefix predicate on the "case_id" field.
func CaseIDHasPrefix(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldHasPrefix(FieldCaseID, v))
}

// CaseIDHasSuffix applies the HasSuffix predicate on the "case_id" field.
func CaseIDHasSuffix(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldHasSuffix(FieldCaseID, v))
}

// CaseIDEqualFold applies the EqualFold predicate on the "case_id" field.
func CaseIDEqualFold(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEqualFold(FieldCaseID, v))
}

// CaseIDContainsFold applies the ContainsFold predicate on the "case_id" field.
func CaseIDContainsFold(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldContainsFold(FieldCaseID, v))
}

// MilestoneEQ applies the EQ predicate on the "milestone" field.
func MilestoneEQ(v Milestone) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEQ(FieldMilestone, v))
}

// MilestoneNEQ applies the NEQ predicate on the "milestone" field.
func MilestoneNEQ(v Milestone) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNEQ(FieldMilestone, v))
}

// MilestoneIn applies the In predicate on the "milestone" field.
func MilestoneIn(vs ...Milestone) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldIn(FieldMilestone, vs...))
}

// MilestoneNotIn applies the NotIn predicate on the "milestone" field.
func MilestoneNotIn(vs ...Milestone) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNotIn(FieldMilestone, vs...))
}

// OccurredAtEQ applies the EQ predicate on the "occurred_at" field.
func OccurredAtEQ(v time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEQ(FieldOccurredAt, v))
}

// OccurredAtNEQ applies the NEQ predicate on the "occurred_at" field.
func OccurredAtNEQ(v time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNEQ(FieldOccurredAt, v))
}

// OccurredAtIn applies the In predicate on the "occurred_at" field.
func OccurredAtIn(vs ...time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldIn(FieldOccurredAt, vs...))
}

// OccurredAtNotIn applies the NotIn predicate on the "occurred_at" field.
func OccurredAtNotIn(vs ...time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNotIn(FieldOccurredAt, vs...))
}

// OccurredAtGT applies the GT predicate on the "occurred_at" field.
func OccurredAtGT(v time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldGT(FieldOccurredAt, v))
}

// OccurredAtGTE applies the GTE predicate on the "occurred_at" field.
func OccurredAtGTE(v time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldGTE(FieldOccurredAt, v))
}

// OccurredAtLT applies the LT predicate on the "occurred_at" field.
func OccurredAtLT(v time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldLT(FieldOccurredAt, v))
}

// OccurredAtLTE applies the LTE predicate on the "occurred_at" field.
func OccurredAtLTE(v time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldLTE(FieldOccurredAt, v))
}

// OccurredAtIsNil applies the IsNil predicate on the "occurred_at" field.
func OccurredAtIsNil() predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldIsNull(FieldOccurredAt))
}

// OccurredAtNotNil applies the NotNil predicate on the "occurred_at" field.
func OccurredAtNotNil() predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNotNull(FieldOccurredAt))
}

// DetailEQ applies the EQ predicate on the "detail" field.
func DetailEQ(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEQ(FieldDetail, v))
}

// DetailNEQ applies the NEQ predicate on the "detail" field.
func DetailNEQ(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNEQ(FieldDetail, v))
}

// DetailIn applies the In predicate on the "detail" field.
func DetailIn(vs ...string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldIn(FieldDetail, vs...))
}

// DetailNotIn applies the NotIn predicate on the "detail" field.
func DetailNotIn(vs ...string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNotIn(FieldDetail, vs...))
}

// DetailGT applies the GT predicate on the "detail" field.
func DetailGT(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldGT(FieldDetail, v))
}

// DetailGTE applies the GTE predicate on the "detail" field.
func DetailGTE(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldGTE(FieldDetail, v))
}

// DetailLT applies the LT predicate on the "detail" field.
func DetailLT(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldLT(FieldDetail, v))
}

// DetailLTE applies the LTE predicate on the "detail" field.
func DetailLTE(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldLTE(FieldDetail, v))
}

// DetailContains applies the Contains predicate on the "detail" field.
func DetailContains(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldContains(FieldDetail, v))
}

// DetailHasPrefix applies the HasPrefix predicate on the "detail" field.
func DetailHasPrefix(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldHasPrefix(FieldDetail, v))
}

// DetailHasSuffix applies the HasSuffix predicate on the "detail" field.
func DetailHasSuffix(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldHasSuffix(FieldDetail, v))
}

// DetailIsNil applies the IsNil predicate on the "detail" field.
func DetailIsNil() predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldIsNull(FieldDetail))
}

// DetailNotNil applies the NotNil predicate on the "detail" field.
func DetailNotNil() predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNotNull(FieldDetail))
}

// DetailEqualFold applies the EqualFold predicate on the "detail" field.
func DetailEqualFold(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEqualFold(FieldDetail, v))
}

// DetailContainsFold applies the ContainsFold predicate on the "detail" field.
func DetailContainsFold(v string) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldContainsFold(FieldDetail, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CaseEvent {
	return predicate.CaseEvent(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCase applies the HasEdge predicate on the "case" edge.
func HasCase() predicate.CaseEvent {
	return predicate.CaseEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CaseTable, CaseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCaseWith applies the HasEdge predicate on the "case" edge with a given conditions (other predicates).
func HasCaseWith(preds ...predicate.CollectionCase) predicate.CaseEvent {
	return predicate.CaseEvent(func(s *sql.Selector) {
		step := newCaseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSuggestions applies the HasEdge predicate on the "suggestions" edge.
func HasSuggestions() predicate.CaseEvent {
	return predicate.CaseEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SuggestionsTable, SuggestionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSuggestionsWith applies the HasEdge predicate on the "suggestions" edge with a given conditions (other predicates).
func HasSuggestionsWith(preds ...predicate.Suggestion) predicate.CaseEvent {
	return predicate.CaseEvent(func(s *sql.Selector) {
		step := newSuggestionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CaseEvent) predicate.CaseEvent {
	return predicate.CaseEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CaseEvent) predicate.CaseEvent {
	return predicate.CaseEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CaseEvent) predicate.CaseEvent {
	return predicate.CaseEvent(sql.NotPredicates(p))
}
