// Code generated by ent, DO NOT EDIT.

package collectioncase

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/andeslegal/cobranza/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldContainsFold(FieldID, id))
}

// Rol applies equality check predicate on the "rol" field. It's identical to RolEQ.
func Rol(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldEQ(FieldRol, v))
}

// Court applies equality check predicate on the "court" field. It's identical to CourtEQ.
func Court(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldEQ(FieldCourt, v))
}

// DebtorName applies equality check predicate on the "debtor_name" field. It's identical to DebtorNameEQ.
func DebtorName(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldEQ(FieldDebtorName, v))
}

// DebtorRut applies equality check predicate on the "debtor_rut" field. It's identical to DebtorRutEQ.
func DebtorRut(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldEQ(FieldDebtorRut, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldEQ(FieldDeletedAt, v))
}

// RolEQ applies the EQ predicate on the "rol" field.
func RolEQ(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldEQ(FieldRol, v))
}

// RolNEQ applies the NEQ predicate on the "rol" field.
func RolNEQ(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldNEQ(FieldRol, v))
}

// RolIn applies the In predicate on the "rol" field.
func RolIn(vs ...string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldIn(FieldRol, vs...))
}

// RolNotIn applies the NotIn predicate on the "rol" field.
func RolNotIn(vs ...string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldNotIn(FieldRol, vs...))
}

// RolGT applies the GT predicate on the "rol" field.
func RolGT(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldGT(FieldRol, v))
}

// RolGTE applies the GTE predicate on the "rol" field.
func RolGTE(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldGTE(FieldRol, v))
}

// RolLT applies the LT predicate on the "rol" field.
func RolLT(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldLT(FieldRol, v))
}

// RolLTE applies the LTE predicate on the "rol" field.
func RolLTE(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldLTE(FieldRol, v))
}

// RolContains applies the Contains predicate on the "rol" field.
func RolContains(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldContains(FieldRol, v))
}

// RolHasPrefix applies the HasPrefix predicate on the "rol" field.
func RolHasPrefix(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldHasPrefix(FieldRol, v))
}

// RolHasSuffix applies the HasSuffix predicate on the "rol" field.
func RolHasSuffix(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldHasSuffix(FieldRol, v))
}

// RolEqualFold applies the EqualFold predicate on the "rol" field.
func RolEqualFold(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldEqualFold(FieldRol, v))
}

// RolContainsFold applies the ContainsFold predicate on the "rol" field.
func RolContainsFold(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldContainsFold(FieldRol, v))
}

// CourtEQ applies the EQ predicate on the "court" field.
func CourtEQ(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldEQ(FieldCourt, v))
}

// CourtNEQ applies the NEQ predicate on the "court" field.
func CourtNEQ(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldNEQ(FieldCourt, v))
}

// CourtIn applies the In predicate on the "court" field.
func CourtIn(vs ...string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldIn(FieldCourt, vs...))
}

// CourtNotIn applies the NotIn predicate on the "court" field.
func CourtNotIn(vs ...string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldNotIn(FieldCourt, vs...))
}

// CourtGT applies the GT predicate on the "court" field.
func CourtGT(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldGT(FieldCourt, v))
}

// CourtGTE applies the GTE predicate on the "court" field.
func CourtGTE(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldGTE(FieldCourt, v))
}

// CourtLT applies the LT predicate on the "court" field.
func CourtLT(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldLT(FieldCourt, v))
}

// CourtLTE applies the LTE predicate on the "court" field.
func CourtLTE(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldLTE(FieldCourt, v))
}

// CourtContains applies the Contains predicate on the "court" field.
func CourtContains(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldContains(FieldCourt, v))
}

// CourtHasPrefix applies the HasPrefix predicate on the "court" field.
func CourtHasPrefix(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldHasPrefix(FieldCourt, v))
}

// CourtHasSuffix applies the HasSuffix predicate on the "court" field.
func CourtHasSuffix(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldHasSuffix(FieldCourt, v))
}

// CourtEqualFold applies the EqualFold predicate on the "court" field.
func CourtEqualFold(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldEqualFold(FieldCourt, v))
}

// CourtContainsFold applies the ContainsFold predicate on the "court" field.
func CourtContainsFold(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldContainsFold(FieldCourt, v))
}

// DebtorNameEQ applies the EQ predicate on the "debtor_name" field.
func DebtorNameEQ(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldEQ(FieldDebtorName, v))
}

// DebtorNameNEQ applies the NEQ predicate on the "debtor_name" field.
func DebtorNameNEQ(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldNEQ(FieldDebtorName, v))
}

// DebtorNameIn applies the In predicate on the "debtor_name" field.
func DebtorNameIn(vs ...string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldIn(FieldDebtorName, vs...))
}

// DebtorNameNotIn applies the NotIn predicate on the "debtor_name" field.
func DebtorNameNotIn(vs ...string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldNotIn(FieldDebtorName, vs...))
}

// DebtorNameGT applies the GT predicate on the "debtor_name" field.
func DebtorNameGT(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldGT(FieldDebtorName, v))
}

// DebtorNameGTE applies the GTE predicate on the "debtor_name" field.
func DebtorNameGTE(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldGTE(FieldDebtorName, v))
}

// DebtorNameLT applies the LT predicate on the "debtor_name" field.
func DebtorNameLT(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldLT(FieldDebtorName, v))
}

// DebtorNameLTE applies the LTE predicate on the "debtor_name" field.
func DebtorNameLTE(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldLTE(FieldDebtorName, v))
}

// DebtorNameContains applies the Contains predicate on the "debtor_name" field.
func DebtorNameContains(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldContains(FieldDebtorName, v))
}

// DebtorNameHasPrefix applies the HasPrefix predicate on the "debtor_name" field.
func DebtorNameHasPrefix(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldHasPrefix(FieldDebtorName, v))
}

// DebtorNameHasSuffix applies the HasSuffix predicate on the "debtor_name" field.
func DebtorNameHasSuffix(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldHasSuffix(FieldDebtorName, v))
}

// DebtorNameEqualFold applies the EqualFold predicate on the "debtor_name" field.
func DebtorNameEqualFold(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldEqualFold(FieldDebtorName, v))
}

// DebtorNameContainsFold applies the ContainsFold predicate on the "debtor_name" field.
func DebtorNameContainsFold(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldContainsFold(FieldDebtorName, v))
}

// DebtorRutEQ applies the EQ predicate on the "debtor_rut" field.
func DebtorRutEQ(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldEQ(FieldDebtorRut, v))
}

// DebtorRutNEQ applies the NEQ predicate on the "debtor_rut" field.
func DebtorRutNEQ(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldNEQ(FieldDebtorRut, v))
}

// DebtorRutIn applies the In predicate on the "debtor_rut" field.
func DebtorRutIn(vs ...string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldIn(FieldDebtorRut, vs...))
}

// DebtorRutNotIn applies the NotIn predicate on the "debtor_rut" field.
func DebtorRutNotIn(vs ...string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldNotIn(FieldDebtorRut, vs...))
}

// DebtorRutGT applies the GT predicate on the "debtor_rut" field.
func DebtorRutGT(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldGT(FieldDebtorRut, v))
}

// DebtorRutGTE applies the GTE predicate on the "debtor_rut" field.
func DebtorRutGTE(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldGTE(FieldDebtorRut, v))
}

// DebtorRutLT applies the LT predicate on the "debtor_rut" field.
func DebtorRutLT(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldLT(FieldDebtorRut, v))
}

// DebtorRutLTE applies the LTE predicate on the "debtor_rut" field.
func DebtorRutLTE(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldLTE(FieldDebtorRut, v))
}

// DebtorRutContains applies the Contains predicate on the "debtor_rut" field.
func DebtorRutContains(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldContains(FieldDebtorRut, v))
}

// DebtorRutHasPrefix applies the HasPrefix predicate on the "debtor_rut" field.
func DebtorRutHasPrefix(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldHasPrefix(FieldDebtorRut, v))
}

// DebtorRutHasSuffix applies the HasSuffix predicate on the "debtor_rut" field.
func DebtorRutHasSuffix(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldHasSuffix(FieldDebtorRut, v))
}

// DebtorRutEqualFold applies the EqualFold predicate on the "debtor_rut" field.
func DebtorRutEqualFold(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldEqualFold(FieldDebtorRut, v))
}

// DebtorRutContainsFold applies the ContainsFold predicate on the "debtor_rut" field.
func DebtorRutContainsFold(v string) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldContainsFold(FieldDebtorRut, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.CollectionCase {
	return predicate.CollectionCase(sql.FieldNotNull(FieldDeletedAt))
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.CollectionCase {
	return predicate.CollectionCase(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.CaseEvent) predicate.CollectionCase {
	return predicate.CollectionCase(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDocuments applies the HasEdge predicate on the "documents" edge.
func HasDocuments() predicate.CollectionCase {
	return predicate.CollectionCase(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentsWith applies the HasEdge predicate on the "documents" edge with a given conditions (other predicates).
func HasDocumentsWith(preds ...predicate.CaseDocument) predicate.CollectionCase {
	return predicate.CollectionCase(func(s *sql.Selector) {
		step := newDocumentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CollectionCase) predicate.CollectionCase {
	return predicate.CollectionCase(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CollectionCase) predicate.CollectionCase {
	return predicate.CollectionCase(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CollectionCase) predicate.CollectionCase {
	return predicate.CollectionCase(sql.NotPredicates(p))
}
