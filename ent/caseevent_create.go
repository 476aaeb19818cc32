// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/andeslegal/cobranza/ent/caseevent"
	"github.com/andeslegal/cobranza/ent/collectioncase"
	"github.com/andeslegal/cobranza/ent/suggestion"
)

// CaseEventCreate is the builder for creating a CaseEvent entity.
type CaseEventCreate struct {
	config
	mutation *CaseEventMutation
	hooks    []Hook
}

// SetCaseID sets the "case_id" field.
func (_c *CaseEventCreate) SetCaseID(v string) *CaseEventCreate {
	_c.mutation.SetCaseID(v)
	return _c
}

// SetMilestone sets the "milestone" field.
func (_c *CaseEventCreate) SetMilestone(v caseevent.Milestone) *CaseEventCreate {
	_c.mutation.SetMilestone(v)
	return _c
}

// SetOccurredAt sets the "occurred_at" field.
func (_c *CaseEventCreate) SetOccurredAt(v time.Time) *CaseEventCreate {
	_c.mutation.SetOccurredAt(v)
	return _c
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_c *CaseEventCreate) SetNillableOccurredAt(v *time.Time) *CaseEventCreate {
	if v != nil {
		_c.SetOccurredAt(*v)
	}
	return _c
}

// SetDetail sets the "detail" field.
func (_c *CaseEventCreate) SetDetail(v string) *CaseEventCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_c *CaseEventCreate) SetNillableDetail(v *string) *CaseEventCreate {
	if v != nil {
		_c.SetDetail(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CaseEventCreate) SetCreatedAt(v time.Time) *CaseEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CaseEventCreate) SetUpdatedAt(v time.Time) *CaseEventCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *CaseEventCreate) SetID(v string) *CaseEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCase sets the "case" edge to the CollectionCase entity.
func (_c *CaseEventCreate) SetCase(v *CollectionCase) *CaseEventCreate {
	return _c.SetCaseID(v.ID)
}

// AddSuggestionIDs adds the "suggestions" edge to the Suggestion entity by IDs.
func (_c *CaseEventCreate) AddSuggestionIDs(ids ...string) *CaseEventCreate {
	_c.mutation.AddSuggestionIDs(ids...)
	return _c
}

// AddSuggestions adds the "suggestions" edges to the Suggestion entity.
func (_c *CaseEventCreate) AddSuggestions(v ...*Suggestion) *CaseEventCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSuggestionIDs(ids...)
}

// Mutation returns the CaseEventMutation object of the builder.
func (_c *CaseEventCreate) Mutation() *CaseEventMutation {
	return _c.mutation
}

// Save creates the CaseEvent in the database.
func (_c *CaseEventCreate) Save(ctx context.Context) (*CaseEvent, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CaseEventCreate) SaveX(ctx context.Context) *CaseEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaseEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaseEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CaseEventCreate) check() error {
	if _, ok := _c.mutation.CaseID(); !ok {
		return &ValidationError{Name: "case_id", err: errors.New(`ent: missing required field "CaseEvent.case_id"`)}
	}
	if _, ok := _c.mutation.Milestone(); !ok {
		return &ValidationError{Name: "milestone", err: errors.New(`ent: missing required field "CaseEvent.milestone"`)}
	}
	if v, ok := _c.mutation.Milestone(); ok {
		if err := caseevent.MilestoneValidator(v); err != nil {
			return &ValidationError{Name: "milestone", err: fmt.Errorf(`ent: validator failed for field "CaseEvent.milestone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CaseEvent.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CaseEvent.updated_at"`)}
	}
	if len(_c.mutation.CaseIDs()) == 0 {
		return &ValidationError{Name: "case", err: errors.New(`ent: missing required edge "CaseEvent.case"`)}
	}
	return nil
}

func (_c *CaseEventCreate) sqlSave(ctx context.Context) (*CaseEvent, error) {
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
			return nil, fmt.Errorf("unexpected CaseEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CaseEventCreate) createSpec() (*CaseEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CaseEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(caseevent.Table, sqlgraph.NewFieldSpec(caseevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Milestone(); ok {
		_spec.SetField(caseevent.FieldMilestone, field.TypeEnum, value)
		_node.Milestone = value
	}
	if value, ok := _c.mutation.OccurredAt(); ok {
		_spec.SetField(caseevent.FieldOccurredAt, field.TypeTime, value)
		_node.OccurredAt = &value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(caseevent.FieldDetail, field.TypeString, value)
		_node.Detail = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(caseevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(caseevent.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CaseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   caseevent.CaseTable,
			Columns: []string{caseevent.CaseColumn},
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
	if nodes := _c.mutation.SuggestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   caseevent.SuggestionsTable,
			Columns: []string{caseevent.SuggestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(suggestion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CaseEventCreateBulk is the builder for creating many CaseEvent entities in bulk.
type CaseEventCreateBulk struct {
	config
	err      error
	builders []*CaseEventCreate
}

// Save creates the CaseEvent entities in the database.
func (_c *CaseEventCreateBulk) Save(ctx context.Context) ([]*CaseEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CaseEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CaseEventMutation)
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
func (_c *CaseEventCreateBulk) SaveX(ctx context.Context) []*CaseEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaseEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaseEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
