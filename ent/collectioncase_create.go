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
	"github.com/andeslegal/cobranza/ent/caseevent"
	"github.com/andeslegal/cobranza/ent/collectioncase"
)

// CollectionCaseCreate is the builder for creating a CollectionCase entity.
type CollectionCaseCreate struct {
	config
	mutation *CollectionCaseMutation
	hooks    []Hook
}

// SetRol sets the "rol" field.
func (_c *CollectionCaseCreate) SetRol(v string) *CollectionCaseCreate {
	_c.mutation.SetRol(v)
	return _c
}

// SetCourt sets the "court" field.
func (_c *CollectionCaseCreate) SetCourt(v string) *CollectionCaseCreate {
	_c.mutation.SetCourt(v)
	return _c
}

// SetDebtorName sets the "debtor_name" field.
func (_c *CollectionCaseCreate) SetDebtorName(v string) *CollectionCaseCreate {
	_c.mutation.SetDebtorName(v)
	return _c
}

// SetDebtorRut sets the "debtor_rut" field.
func (_c *CollectionCaseCreate) SetDebtorRut(v string) *CollectionCaseCreate {
	_c.mutation.SetDebtorRut(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *CollectionCaseCreate) SetStatus(v collectioncase.Status) *CollectionCaseCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CollectionCaseCreate) SetNillableStatus(v *collectioncase.Status) *CollectionCaseCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CollectionCaseCreate) SetCreatedAt(v time.Time) *CollectionCaseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CollectionCaseCreate) SetUpdatedAt(v time.Time) *CollectionCaseCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *CollectionCaseCreate) SetDeletedAt(v time.Time) *CollectionCaseCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *CollectionCaseCreate) SetNillableDeletedAt(v *time.Time) *CollectionCaseCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CollectionCaseCreate) SetID(v string) *CollectionCaseCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddEventIDs adds the "events" edge to the CaseEvent entity by IDs.
func (_c *CollectionCaseCreate) AddEventIDs(ids ...string) *CollectionCaseCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the CaseEvent entity.
func (_c *CollectionCaseCreate) AddEvents(v ...*CaseEvent) *CollectionCaseCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// AddDocumentIDs adds the "documents" edge to the CaseDocument entity by IDs.
func (_c *CollectionCaseCreate) AddDocumentIDs(ids ...string) *CollectionCaseCreate {
	_c.mutation.AddDocumentIDs(ids...)
	return _c
}

// AddDocuments adds the "documents" edges to the CaseDocument entity.
func (_c *CollectionCaseCreate) AddDocuments(v ...*CaseDocument) *CollectionCaseCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentIDs(ids...)
}

// Mutation returns the CollectionCaseMutation object of the builder.
func (_c *CollectionCaseCreate) Mutation() *CollectionCaseMutation {
	return _c.mutation
}

// Save creates the CollectionCase in the database.
func (_c *CollectionCaseCreate) Save(ctx context.Context) (*CollectionCase, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CollectionCaseCreate) SaveX(ctx context.Context) *CollectionCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CollectionCaseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CollectionCaseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CollectionCaseCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := collectioncase.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CollectionCaseCreate) check() error {
	if _, ok := _c.mutation.Rol(); !ok {
		return &ValidationError{Name: "rol", err: errors.New(`ent: missing required field "CollectionCase.rol"`)}
	}
	if _, ok := _c.mutation.Court(); !ok {
		return &ValidationError{Name: "court", err: errors.New(`ent: missing required field "CollectionCase.court"`)}
	}
	if _, ok := _c.mutation.DebtorName(); !ok {
		return &ValidationError{Name: "debtor_name", err: errors.New(`ent: missing required field "CollectionCase.debtor_name"`)}
	}
	if _, ok := _c.mutation.DebtorRut(); !ok {
		return &ValidationError{Name: "debtor_rut", err: errors.New(`ent: missing required field "CollectionCase.debtor_rut"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CollectionCase.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := collectioncase.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CollectionCase.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CollectionCase.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CollectionCase.updated_at"`)}
	}
	return nil
}

func (_c *CollectionCaseCreate) sqlSave(ctx context.Context) (*CollectionCase, error) {
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
			return nil, fmt.Errorf("unexpected CollectionCase.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CollectionCaseCreate) createSpec() (*CollectionCase, *sqlgraph.CreateSpec) {
	var (
		_node = &CollectionCase{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(collectioncase.Table, sqlgraph.NewFieldSpec(collectioncase.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Rol(); ok {
		_spec.SetField(collectioncase.FieldRol, field.TypeString, value)
		_node.Rol = value
	}
	if value, ok := _c.mutation.Court(); ok {
		_spec.SetField(collectioncase.FieldCourt, field.TypeString, value)
		_node.Court = value
	}
	if value, ok := _c.mutation.DebtorName(); ok {
		_spec.SetField(collectioncase.FieldDebtorName, field.TypeString, value)
		_node.DebtorName = value
	}
	if value, ok := _c.mutation.DebtorRut(); ok {
		_spec.SetField(collectioncase.FieldDebtorRut, field.TypeString, value)
		_node.DebtorRut = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(collectioncase.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(collectioncase.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(collectioncase.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(collectioncase.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   collectioncase.EventsTable,
			Columns: []string{collectioncase.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(caseevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   collectioncase.DocumentsTable,
			Columns: []string{collectioncase.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(casedocument.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CollectionCaseCreateBulk is the builder for creating many CollectionCase entities in bulk.
type CollectionCaseCreateBulk struct {
	config
	err      error
	builders []*CollectionCaseCreate
}

// Save creates the CollectionCase entities in the database.
func (_c *CollectionCaseCreateBulk) Save(ctx context.Context) ([]*CollectionCase, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CollectionCase, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CollectionCaseMutation)
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
func (_c *CollectionCaseCreateBulk) SaveX(ctx context.Context) []*CollectionCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CollectionCaseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CollectionCaseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
