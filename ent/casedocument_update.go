// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/andeslegal/cobranza/ent/casedocument"
	"github.com/andeslegal/cobranza/ent/predicate"
)

// CaseDocumentUpdate is the builder for updating CaseDocument entities.
type CaseDocumentUpdate struct {
	config
	hooks    []Hook
	mutation *CaseDocumentMutation
}

// Where appends a list predicates to the CaseDocumentUpdate builder.
func (_u *CaseDocumentUpdate) Where(ps ...predicate.CaseDocument) *CaseDocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *CaseDocumentUpdate) SetKind(v casedocument.Kind) *CaseDocumentUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *CaseDocumentUpdate) SetNillableKind(v *casedocument.Kind) *CaseDocumentUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CaseDocumentUpdate) SetName(v string) *CaseDocumentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CaseDocumentUpdate) SetNillableName(v *string) *CaseDocumentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStorageKey sets the "storage_key" field.
func (_u *CaseDocumentUpdate) SetStorageKey(v string) *CaseDocumentUpdate {
	_u.mutation.SetStorageKey(v)
	return _u
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_u *CaseDocumentUpdate) SetNillableStorageKey(v *string) *CaseDocumentUpdate {
	if v != nil {
		_u.SetStorageKey(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *CaseDocumentUpdate) SetPosition(v int) *CaseDocumentUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *CaseDocumentUpdate) SetNillablePosition(v *int) *CaseDocumentUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *CaseDocumentUpdate) AddPosition(v int) *CaseDocumentUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *CaseDocumentUpdate) SetContentType(v string) *CaseDocumentUpdate {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *CaseDocumentUpdate) SetNillableContentType(v *string) *CaseDocumentUpdate {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *CaseDocumentUpdate) SetSizeBytes(v int64) *CaseDocumentUpdate {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *CaseDocumentUpdate) SetNillableSizeBytes(v *int64) *CaseDocumentUpdate {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *CaseDocumentUpdate) AddSizeBytes(v int64) *CaseDocumentUpdate {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// Mutation returns the CaseDocumentMutation object of the builder.
func (_u *CaseDocumentUpdate) Mutation() *CaseDocumentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CaseDocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaseDocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CaseDocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaseDocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CaseDocumentUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := casedocument.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "CaseDocument.kind": %w`, err)}
		}
	}
	if _u.mutation.CaseCleared() && len(_u.mutation.CaseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CaseDocument.case"`)
	}
	return nil
}

func (_u *CaseDocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(casedocument.Table, casedocument.Columns, sqlgraph.NewFieldSpec(casedocument.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(casedocument.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(casedocument.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StorageKey(); ok {
		_spec.SetField(casedocument.FieldStorageKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(casedocument.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(casedocument.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(casedocument.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(casedocument.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(casedocument.FieldSizeBytes, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{casedocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CaseDocumentUpdateOne is the builder for updating a single CaseDocument entity.
type CaseDocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CaseDocumentMutation
}

// SetKind sets the "kind" field.
func (_u *CaseDocumentUpdateOne) SetKind(v casedocument.Kind) *CaseDocumentUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *CaseDocumentUpdateOne) SetNillableKind(v *casedocument.Kind) *CaseDocumentUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CaseDocumentUpdateOne) SetName(v string) *CaseDocumentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CaseDocumentUpdateOne) SetNillableName(v *string) *CaseDocumentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStorageKey sets the "storage_key" field.
func (_u *CaseDocumentUpdateOne) SetStorageKey(v string) *CaseDocumentUpdateOne {
	_u.mutation.SetStorageKey(v)
	return _u
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_u *CaseDocumentUpdateOne) SetNillableStorageKey(v *string) *CaseDocumentUpdateOne {
	if v != nil {
		_u.SetStorageKey(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *CaseDocumentUpdateOne) SetPosition(v int) *CaseDocumentUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *CaseDocumentUpdateOne) SetNillablePosition(v *int) *CaseDocumentUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *CaseDocumentUpdateOne) AddPosition(v int) *CaseDocumentUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *CaseDocumentUpdateOne) SetContentType(v string) *CaseDocumentUpdateOne {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *CaseDocumentUpdateOne) SetNillableContentType(v *string) *CaseDocumentUpdateOne {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *CaseDocumentUpdateOne) SetSizeBytes(v int64) *CaseDocumentUpdateOne {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *CaseDocumentUpdateOne) SetNillableSizeBytes(v *int64) *CaseDocumentUpdateOne {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *CaseDocumentUpdateOne) AddSizeBytes(v int64) *CaseDocumentUpdateOne {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// Mutation returns the CaseDocumentMutation object of the builder.
func (_u *CaseDocumentUpdateOne) Mutation() *CaseDocumentMutation {
	return _u.mutation
}

// Where appends a list predicates to the CaseDocumentUpdate builder.
func (_u *CaseDocumentUpdateOne) Where(ps ...predicate.CaseDocument) *CaseDocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CaseDocumentUpdateOne) Select(field string, fields ...string) *CaseDocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CaseDocument entity.
func (_u *CaseDocumentUpdateOne) Save(ctx context.Context) (*CaseDocument, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaseDocumentUpdateOne) SaveX(ctx context.Context) *CaseDocument {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CaseDocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaseDocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CaseDocumentUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := casedocument.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "CaseDocument.kind": %w`, err)}
		}
	}
	if _u.mutation.CaseCleared() && len(_u.mutation.CaseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CaseDocument.case"`)
	}
	return nil
}

func (_u *CaseDocumentUpdateOne) sqlSave(ctx context.Context) (_node *CaseDocument, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(casedocument.Table, casedocument.Columns, sqlgraph.NewFieldSpec(casedocument.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CaseDocument.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, casedocument.FieldID)
		for _, f := range fields {
			if !casedocument.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != casedocument.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(casedocument.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(casedocument.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StorageKey(); ok {
		_spec.SetField(casedocument.FieldStorageKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(casedocument.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(casedocument.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(casedocument.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(casedocument.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(casedocument.FieldSizeBytes, field.TypeInt64, value)
	}
	_node = &CaseDocument{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{casedocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
