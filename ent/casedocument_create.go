// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/andeslegal/cobranza/ent/casedocument"
	"github.com/andeslegal/cobranza/ent/collectioncase"
)

// CaseDocumentCreate is the builder for creating a CaseDocument entity.
type CaseDocumentCreate struct {
	config
	mutation *CaseDocumentMutation
	hooks    []Hook
}

// SetCaseID sets the "case_id" field.
func (_c *CaseDocumentCreate) SetCaseID(v string) *CaseDocumentCreate {
	_c.mutation.SetCaseID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *CaseDocumentCreate) SetKind(v casedocument.Kind) *CaseDocumentCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetName sets the "name" field.
func (_c *CaseDocumentCreate) SetName(v string) *CaseDocumentCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetStorageKey sets the "storage_key" field.
func (_c *CaseDocumentCreate) SetStorageKey(v string) *CaseDocumentCreate {
	_c.mutation.SetStorageKey(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *CaseDocumentCreate) SetPosition(v int) *CaseDocumentCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *CaseDocumentCreate) SetNillablePosition(v *int) *CaseDocumentCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetContentType sets the "content_type" field.
func (_c *CaseDocumentCreate) SetContentType(v string) *CaseDocumentCreate {
	_c.mutation.SetContentType(v)
	return _c
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_c *CaseDocumentCreate) SetNillableContentType(v *string) *CaseDocumentCreate {
	if v != nil {
		_c.SetContentType(*v)
	}
	return _c
}

// SetSizeBytes sets the "size_bytes" field.
func (_c *CaseDocumentCreate) SetSizeBytes(v int64) *CaseDocumentCreate {
	_c.mutation.SetSizeBytes(v)
	return _c
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_c *CaseDocumentCreate) SetNillableSizeBytes(v *int64) *CaseDocumentCreate {
	if v != nil {
		_c.SetSizeBytes(*v)
	}
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *CaseDocumentCreate) SetUploadedAt(v time.Time) *CaseDocumentCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *CaseDocumentCreate) SetID(v string) *CaseDocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCase sets the "case" edge to the CollectionCase entity.
func (_c *CaseDocumentCreate) SetCase(v *CollectionCase) *CaseDocumentCreate {
	return _c.SetCaseID(v.ID)
}

// Mutation returns the CaseDocumentMutation object of the builder.
func (_c *CaseDocumentCreate) Mutation() *CaseDocumentMutation {
	return _c.mutation
}

// Save creates the CaseDocument in the database.
func (_c *CaseDocumentCreate) Save(ctx context.Context) (*CaseDocument, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CaseDocumentCreate) SaveX(ctx context.Context) *CaseDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaseDocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaseDocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CaseDocumentCreate) defaults() {
	if _, ok := _c.mutation.Position(); !ok {
		v := casedocument.DefaultPosition
		_c.mutation.SetPosition(v)
	}
	if _, ok := _c.mutation.ContentType(); !ok {
		v := casedocument.DefaultContentType
		_c.mutation.SetContentType(v)
	}
	if _, ok := _c.mutation.SizeBytes(); !ok {
		v := casedocument.DefaultSizeBytes
		_c.mutation.SetSizeBytes(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CaseDocumentCreate) check() error {
	if _, ok := _c.mutation.CaseID(); !ok {
		return &ValidationError{Name: "case_id", err: errors.New(`ent: missing required field "CaseDocument.case_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "CaseDocument.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := casedocument.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "CaseDocument.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "CaseDocument.name"`)}
	}
	if _, ok := _c.mutation.StorageKey(); !ok {
		return &ValidationError{Name: "storage_key", err: errors.New(`ent: missing required field "CaseDocument.storage_key"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "CaseDocument.position"`)}
	}
	if _, ok := _c.mutation.ContentType(); !ok {
		return &ValidationError{Name: "content_type", err: errors.New(`ent: missing required field "CaseDocument.content_type"`)}
	}
	if _, ok := _c.mutation.SizeBytes(); !ok {
		return &ValidationError{Name: "size_bytes", err: errors.New(`ent: missing required field "CaseDocument.size_bytes"`)}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "CaseDocument.uploaded_at"`)}
	}
	if len(_c.mutation.CaseIDs()) == 0 {
		return &ValidationError{Name: "case", err: errors.New(`ent: missing required edge "CaseDocument.case"`)}
	}
	return nil
}

func (_c *CaseDocumentCreate) sqlSave(ctx context.Context) (*CaseDocument, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected CaseDocument.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CaseDocumentCreate) createSpec() (*CaseDocument, *sqlgraph.CreateSpec) {
	var (
		_node = &CaseDocument{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(casedocument.Table, sqlgraph.NewFieldSpec(casedocument.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(casedocument.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(casedocument.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.StorageKey(); ok {
		_spec.SetField(casedocument.FieldStorageKey, field.TypeString, value)
		_node.StorageKey = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(casedocument.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.ContentType(); ok {
		_spec.SetField(casedocument.FieldContentType, field.TypeString, value)
		_node.ContentType = value
	}
	if value, ok := _c.mutation.SizeBytes(); ok {
		_spec.SetField(casedocument.FieldSizeBytes, field.TypeInt64, value)
		_node.SizeBytes = value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(casedocument.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := _c.mutation.CaseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   casedocument.CaseTable,
			Columns: []string{casedocument.CaseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(collectioncase.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CaseID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CaseDocumentCreateBulk is the builder for creating many CaseDocument entities in bulk.
type CaseDocumentCreateBulk struct {
	config
	err      error
	builders []*CaseDocumentCreate
}

// Save creates the CaseDocument entities in the database.
func (_c *CaseDocumentCreateBulk) Save(ctx context.Context) ([]*CaseDocument, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CaseDocument, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CaseDocumentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CaseDocumentCreateBulk) SaveX(ctx context.Context) []*CaseDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaseDocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaseDocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
