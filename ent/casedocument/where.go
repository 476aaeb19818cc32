// Code generated by ent, DO NOT EDIT.

package casedocument

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/andeslegal/cobranza/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldContainsFold(FieldID, id))
}

// CaseID applies equality check predicate on the "case_id" field. It's identical to CaseIDEQ.
func CaseID(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldEQ(FieldCaseID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldEQ(FieldName, v))
}

// StorageKey applies equality check predicate on the "storage_key" field. It's identical to StorageKeyEQ.
func StorageKey(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldEQ(FieldStorageKey, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldEQ(FieldPosition, v))
}

// ContentType applies equality check predicate on the "content_type" field. It's identical to ContentTypeEQ.
func ContentType(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldEQ(FieldContentType, v))
}

// SizeBytes applies equality check predicate on the "size_bytes" field. It's identical to SizeBytesEQ.
func SizeBytes(v int64) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldEQ(FieldSizeBytes, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldEQ(FieldUploadedAt, v))
}

// CaseIDEQ applies the EQ predicate on the "case_id" field.
func CaseIDEQ(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldEQ(FieldCaseID, v))
}

// CaseIDNEQ applies the NEQ predicate on the "case_id" field.
func CaseIDNEQ(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldNEQ(FieldCaseID, v))
}

// CaseIDIn applies the In predicate on the "case_id" field.
func CaseIDIn(vs ...string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldIn(FieldCaseID, vs...))
}

// CaseIDNotIn applies the NotIn predicate on the "case_id" field.
func CaseIDNotIn(vs ...string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldNotIn(FieldCaseID, vs...))
}

// CaseIDGT applies the GT predicate on the "case_id" field.
func CaseIDGT(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldGT(FieldCaseID, v))
}

// CaseIDGTE applies the GTE predicate on the "case_id" field.
func CaseIDGTE(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldGTE(FieldCaseID, v))
}

// CaseIDLT applies the LT predicate on the "case_id" field.
func CaseIDLT(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldLT(FieldCaseID, v))
}

// CaseIDLTE applies the LTE predicate on the "case_id" field.
func CaseIDLTE(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldLTE(FieldCaseID, v))
}

// CaseIDContains applies the Contains predicate on the "case_id" field.
func CaseIDContains(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldContains(FieldCaseID, v))
}

// CaseIDHasPrefix applies the HasPrefix predicate on the "case_id" field.
func CaseIDHasPrefix(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldHasPrefix(FieldCaseID, v))
}

// CaseIDHasSuffix applies the HasSuffix predicate on the "case_id" field.
func CaseIDHasSuffix(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldHasSuffix(FieldCaseID, v))
}

// CaseIDEqualFold applies the EqualFold predicate on the "case_id" field.
func CaseIDEqualFold(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldEqualFold(FieldCaseID, v))
}

// CaseIDContainsFold applies the ContainsFold predicate on the "case_id" field.
func CaseIDContainsFold(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldContainsFold(FieldCaseID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldNotIn(FieldKind, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldContainsFold(FieldName, v))
}

// StorageKeyEQ applies the EQ predicate on the "storage_key" field.
func StorageKeyEQ(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldEQ(FieldStorageKey, v))
}

// StorageKeyNEQ applies the NEQ predicate on the "storage_key" field.
func StorageKeyNEQ(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldNEQ(FieldStorageKey, v))
}

// StorageKeyIn applies the In predicate on the "storage_key" field.
func StorageKeyIn(vs ...string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldIn(FieldStorageKey, vs...))
}

// StorageKeyNotIn applies the NotIn predicate on the "storage_key" field.
func StorageKeyNotIn(vs ...string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldNotIn(FieldStorageKey, vs...))
}

// StorageKeyGT applies the GT predicate on the "storage_key" field.
func StorageKeyGT(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldGT(FieldStorageKey, v))
}

// StorageKeyGTE applies the GTE predicate on the "storage_key" field.
func StorageKeyGTE(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldGTE(FieldStorageKey, v))
}

// StorageKeyLT applies the LT predicate on the "storage_key" field.
func StorageKeyLT(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldLT(FieldStorageKey, v))
}

// StorageKeyLTE applies the LTE predicate on the "storage_key" field.
func StorageKeyLTE(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldLTE(FieldStorageKey, v))
}

// StorageKeyContains applies the Contains predicate on the "storage_key" field.
func StorageKeyContains(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldContains(FieldStorageKey, v))
}

// StorageKeyHasPrefix applies the HasPrefix predicate on the "storage_key" field.
func StorageKeyHasPrefix(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldHasPrefix(FieldStorageKey, v))
}

// StorageKeyHasSuffix applies the HasSuffix predicate on the "storage_key" field.
func StorageKeyHasSuffix(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldHasSuffix(FieldStorageKey, v))
}

// StorageKeyEqualFold applies the EqualFold predicate on the "storage_key" field.
func StorageKeyEqualFold(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldEqualFold(FieldStorageKey, v))
}

// StorageKeyContainsFold applies the ContainsFold predicate on the "storage_key" field.
func StorageKeyContainsFold(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldContainsFold(FieldStorageKey, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldLTE(FieldPosition, v))
}

// ContentTypeEQ applies the EQ predicate on the "content_type" field.
func ContentTypeEQ(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldEQ(FieldContentType, v))
}

// ContentTypeNEQ applies the NEQ predicate on the "content_type" field.
func ContentTypeNEQ(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldNEQ(FieldContentType, v))
}

// ContentTypeIn applies the In predicate on the "content_type" field.
func ContentTypeIn(vs ...string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldIn(FieldContentType, vs...))
}

// ContentTypeNotIn applies the NotIn predicate on the "content_type" field.
func ContentTypeNotIn(vs ...string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldNotIn(FieldContentType, vs...))
}

// ContentTypeGT applies the GT predicate on the "content_type" field.
func ContentTypeGT(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldGT(FieldContentType, v))
}

// ContentTypeGTE applies the GTE predicate on the "content_type" field.
func ContentTypeGTE(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldGTE(FieldContentType, v))
}

// ContentTypeLT applies the LT predicate on the "content_type" field.
func ContentTypeLT(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldLT(FieldContentType, v))
}

// ContentTypeLTE applies the LTE predicate on the "content_type" field.
func ContentTypeLTE(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldLTE(FieldContentType, v))
}

// ContentTypeContains applies the Contains predicate on the "content_type" field.
func ContentTypeContains(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldContains(FieldContentType, v))
}

// ContentTypeHasPrefix applies the HasPrefix predicate on the "content_type" field.
func ContentTypeHasPrefix(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldHasPrefix(FieldContentType, v))
}

// ContentTypeHasSuffix applies the HasSuffix predicate on the "content_type" field.
func ContentTypeHasSuffix(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldHasSuffix(FieldContentType, v))
}

// ContentTypeEqualFold applies the EqualFold predicate on the "content_type" field.
func ContentTypeEqualFold(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldEqualFold(FieldContentType, v))
}

// ContentTypeContainsFold applies the ContainsFold predicate on the "content_type" field.
func ContentTypeContainsFold(v string) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldContainsFold(FieldContentType, v))
}

// SizeBytesEQ applies the EQ predicate on the "size_bytes" field.
func SizeBytesEQ(v int64) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldEQ(FieldSizeBytes, v))
}

// SizeBytesNEQ applies the NEQ predicate on the "size_bytes" field.
func SizeBytesNEQ(v int64) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldNEQ(FieldSizeBytes, v))
}

// SizeBytesIn applies the In predicate on the "size_bytes" field.
func SizeBytesIn(vs ...int64) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldIn(FieldSizeBytes, vs...))
}

// SizeBytesNotIn applies the NotIn predicate on the "size_bytes" field.
func SizeBytesNotIn(vs ...int64) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldNotIn(FieldSizeBytes, vs...))
}

// SizeBytesGT applies the GT predicate on the "size_bytes" field.
func SizeBytesGT(v int64) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldGT(FieldSizeBytes, v))
}

// SizeBytesGTE applies the GTE predicate on the "size_bytes" field.
func SizeBytesGTE(v int64) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldGTE(FieldSizeBytes, v))
}

// SizeBytesLT applies the LT predicate on the "size_bytes" field.
func SizeBytesLT(v int64) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldLT(FieldSizeBytes, v))
}

// SizeBytesLTE applies the LTE predicate on the "size_bytes" field.
func SizeBytesLTE(v int64) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldLTE(FieldSizeBytes, v))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.CaseDocument {
	return predicate.CaseDocument(sql.FieldLTE(FieldUploadedAt, v))
}

// HasCase applies the HasEdge predicate on the "case" edge.
func HasCase() predicate.CaseDocument {
	return predicate.CaseDocument(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CaseTable, CaseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCaseWith applies the HasEdge predicate on the "case" edge with a given conditions (other predicates).
func HasCaseWith(preds ...predicate.CollectionCase) predicate.CaseDocument {
	return predicate.CaseDocument(func(s *sql.Selector) {
		step := newCaseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CaseDocument) predicate.CaseDocument {
	return predicate.CaseDocument(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CaseDocument) predicate.CaseDocument {
	return predicate.CaseDocument(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CaseDocument) predicate.CaseDocument {
	return predicate.CaseDocument(sql.NotPredicates(p))
}
