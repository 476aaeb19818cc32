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
	"github.com/andeslegal/cobranza/ent/suggestion"
)

// SuggestionCreate is the builder for creating a Suggestion entity.
type SuggestionCreate struct {
	config
	mutation *SuggestionMutation
	hooks    []Hook
}

// SetCaseEventID sets the "case_event_id" field.
func (_c *SuggestionCreate) SetCaseEventID(v string) *SuggestionCreate {
	_c.mutation.SetCaseEventID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *SuggestionCreate) SetName(v string) *SuggestionCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDocType sets the "doc_type" field.
func (_c *SuggestionCreate) SetDocType(v suggestion.DocType) *SuggestionCreate {
	_c.mutation.SetDocType(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *SuggestionCreate) SetContent(v map[string]interface{}) *SuggestionCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetStorageKey sets the "storage_key" field.
func (_c *SuggestionCreate) SetStorageKey(v string) *SuggestionCreate {
	_c.mutation.SetStorageKey(v)
	return _c
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_c *SuggestionCreate) SetNillableStorageKey(v *string) *SuggestionCreate {
	if v != nil {
		_c.SetStorageKey(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *SuggestionCreate) SetScore(v float64) *SuggestionCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetSubmitted sets the "submitted" field.
func (_c *SuggestionCreate) SetSubmitted(v bool) *SuggestionCreate {
	_c.mutation.SetSubmitted(v)
	return _c
}

// SetNillableSubmitted sets the "submitted" field if the given value is not nil.
func (_c *SuggestionCreate) SetNillableSubmitted(v *bool) *SuggestionCreate {
	if v != nil {
		_c.SetSubmitted(*v)
	}
	return _c
}

// SetSubmittedAt sets the "submitted_at" field.
func (_c *SuggestionCreate) SetSubmittedAt(v time.Time) *SuggestionCreate {
	_c.mutation.SetSubmittedAt(v)
	return _c
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_c *SuggestionCreate) SetNillableSubmittedAt(v *time.Time) *SuggestionCreate {
	if v != nil {
		_c.SetSubmittedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SuggestionCreate) SetCreatedAt(v time.Time) *SuggestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *SuggestionCreate) SetID(v string) *SuggestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCaseEvent sets the "case_event" edge to the CaseEvent entity.
func (_c *SuggestionCreate) SetCaseEvent(v *CaseEvent) *SuggestionCreate {
	return _c.SetCaseEventID(v.ID)
}

// Mutation returns the SuggestionMutation object of the builder.
func (_c *SuggestionCreate) Mutation() *SuggestionMutation {
	return _c.mutation
}

// Save creates the Suggestion in the database.
func (_c *SuggestionCreate) Save(ctx context.Context) (*Suggestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SuggestionCreate) SaveX(ctx context.Context) *Suggestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SuggestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SuggestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SuggestionCreate) defaults() {
	if _, ok := _c.mutation.Submitted(); !ok {
		v := suggestion.DefaultSubmitted
		_c.mutation.SetSubmitted(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SuggestionCreate) check() error {
	if _, ok := _c.mutation.CaseEventID(); !ok {
		return &ValidationError{Name: "case_event_id", err: errors.New(`ent: missing required field "Suggestion.case_event_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Suggestion.name"`)}
	}
	if _, ok := _c.mutation.DocType(); !ok {
		return &ValidationError{Name: "doc_type", err: errors.New(`ent: missing required field "Suggestion.doc_type"`)}
	}
	if v, ok := _c.mutation.DocType(); ok {
		if err := suggestion.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "Suggestion.doc_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "Suggestion.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := suggestion.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "Suggestion.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Submitted(); !ok {
		return &ValidationError{Name: "submitted", err: errors.New(`ent: missing required field "Suggestion.submitted"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Suggestion.created_at"`)}
	}
	if len(_c.mutation.CaseEventIDs()) == 0 {
		return &ValidationError{Name: "case_event", err: errors.New(`ent: missing required edge "Suggestion.case_event"`)}
	}
	return nil
}

func (_c *SuggestionCreate) sqlSave(ctx context.Context) (*Suggestion, error) {
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
			return nil, fmt.Errorf("unexpected Suggestion.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SuggestionCreate) createSpec() (*Suggestion, *sqlgraph.CreateSpec) {
	var (
		_node = &Suggestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(suggestion.Table, sqlgraph.NewFieldSpec(suggestion.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(suggestion.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.DocType(); ok {
		_spec.SetField(suggestion.FieldDocType, field.TypeEnum, value)
		_node.DocType = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(suggestion.FieldContent, field.TypeJSON, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.StorageKey(); ok {
		_spec.SetField(suggestion.FieldStorageKey, field.TypeString, value)
		_node.StorageKey = &value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(suggestion.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Submitted(); ok {
		_spec.SetField(suggestion.FieldSubmitted, field.TypeBool, value)
		_node.Submitted = value
	}
	if value, ok := _c.mutation.SubmittedAt(); ok {
		_spec.SetField(suggestion.FieldSubmittedAt, field.TypeTime, value)
		_node.SubmittedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(suggestion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.CaseEventIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   suggestion.CaseEventTable,
			Columns: []string{suggestion.CaseEventColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(caseevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CaseEventID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SuggestionCreateBulk is the builder for creating many Suggestion entities in bulk.
type SuggestionCreateBulk struct {
	config
	err      error
	builders []*SuggestionCreate
}

// Save creates the Suggestion entities in the database.
func (_c *SuggestionCreateBulk) Save(ctx context.Context) ([]*Suggestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Suggestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SuggestionMutation)
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
func (_c *SuggestionCreateBulk) SaveX(ctx context.Context) []*Suggestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SuggestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SuggestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
