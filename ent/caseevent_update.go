// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/andeslegal/cobranza/ent/caseevent"
	"github.com/andeslegal/cobranza/ent/predicate"
	"github.com/andeslegal/cobranza/ent/suggestion"
)

// CaseEventUpdate is the builder for updating CaseEvent entities.
type CaseEventUpdate struct {
	config
	hooks    []Hook
	mutation *CaseEventMutation
}

// Where appends a list predicates to the CaseEventUpdate builder.
func (_u *CaseEventUpdate) Where(ps ...predicate.CaseEvent) *CaseEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMilestone sets the "milestone" field.
func (_u *CaseEventUpdate) SetMilestone(v caseevent.Milestone) *CaseEventUpdate {
	_u.mutation.SetMilestone(v)
	return _u
}

// SetNillableMilestone sets the "milestone" field if the given value is not nil.
func (_u *CaseEventUpdate) SetNillableMilestone(v *caseevent.Milestone) *CaseEventUpdate {
	if v != nil {
		_u.SetMilestone(*v)
	}
	return _u
}

// SetOccurredAt sets the "occurred_at" field.
func (_u *CaseEventUpdate) SetOccurredAt(v time.Time) *CaseEventUpdate {
	_u.mutation.SetOccurredAt(v)
	return _u
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_u *CaseEventUpdate) SetNillableOccurredAt(v *time.Time) *CaseEventUpdate {
	if v != nil {
		_u.SetOccurredAt(*v)
	}
	return _u
}

// ClearOccurredAt clears the value of the "occurred_at" field.
func (_u *CaseEventUpdate) ClearOccurredAt() *CaseEventUpdate {
	_u.mutation.ClearOccurredAt()
	return _u
}

// SetDetail sets the "detail" field.
func (_u *CaseEventUpdate) SetDetail(v string) *CaseEventUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *CaseEventUpdate) SetNillableDetail(v *string) *CaseEventUpdate {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *CaseEventUpdate) ClearDetail() *CaseEventUpdate {
	_u.mutation.ClearDetail()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CaseEventUpdate) SetUpdatedAt(v time.Time) *CaseEventUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *CaseEventUpdate) SetNillableUpdatedAt(v *time.Time) *CaseEventUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// AddSuggestionIDs adds the "suggestions" edge to the Suggestion entity by IDs.
func (_u *CaseEventUpdate) AddSuggestionIDs(ids ...string) *CaseEventUpdate {
	_u.mutation.AddSuggestionIDs(ids...)
	return _u
}

// AddSuggestions adds the "suggestions" edges to the Suggestion entity.
func (_u *CaseEventUpdate) AddSuggestions(v ...*Suggestion) *CaseEventUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSuggestionIDs(ids...)
}

// Mutation returns the CaseEventMutation object of the builder.
func (_u *CaseEventUpdate) Mutation() *CaseEventMutation {
	return _u.mutation
}

// ClearSuggestions clears all "suggestions" edges to the Suggestion entity.
func (_u *CaseEventUpdate) ClearSuggestions() *CaseEventUpdate {
	_u.mutation.ClearSuggestions()
	return _u
}

// RemoveSuggestionIDs removes the "suggestions" edge to Suggestion entities by IDs.
func (_u *CaseEventUpdate) RemoveSuggestionIDs(ids ...string) *CaseEventUpdate {
	_u.mutation.RemoveSuggestionIDs(ids...)
	return _u
}

// RemoveSuggestions removes "suggestions" edges to Suggestion entities.
func (_u *CaseEventUpdate) RemoveSuggestions(v ...*Suggestion) *CaseEventUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSuggestionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CaseEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaseEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CaseEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaseEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CaseEventUpdate) check() error {
	if v, ok := _u.mutation.Milestone(); ok {
		if err := caseevent.MilestoneValidator(v); err != nil {
			return &ValidationError{Name: "milestone", err: fmt.Errorf(`ent: validator failed for field "CaseEvent.milestone": %w`, err)}
		}
	}
	if _u.mutation.CaseCleared() && len(_u.mutation.CaseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CaseEvent.case"`)
	}
	return nil
}

func (_u *CaseEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(caseevent.Table, caseevent.Columns, sqlgraph.NewFieldSpec(caseevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Milestone(); ok {
		_spec.SetField(caseevent.FieldMilestone, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OccurredAt(); ok {
		_spec.SetField(caseevent.FieldOccurredAt, field.TypeTime, value)
	}
	if _u.mutation.OccurredAtCleared() {
		_spec.ClearField(caseevent.FieldOccurredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(caseevent.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(caseevent.FieldDetail, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(caseevent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SuggestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSuggestionsIDs(); len(nodes) > 0 && !_u.mutation.SuggestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SuggestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{caseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CaseEventUpdateOne is the builder for updating a single CaseEvent entity.
type CaseEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CaseEventMutation
}

// SetMilestone sets the "milestone" field.
func (_u *CaseEventUpdateOne) SetMilestone(v caseevent.Milestone) *CaseEventUpdateOne {
	_u.mutation.SetMilestone(v)
	return _u
}

// SetNillableMilestone sets the "milestone" field if the given value is not nil.
func (_u *CaseEventUpdateOne) SetNillableMilestone(v *caseevent.Milestone) *CaseEventUpdateOne {
	if v != nil {
		_u.SetMilestone(*v)
	}
	return _u
}

// SetOccurredAt sets the "occurred_at" field.
func (_u *CaseEventUpdateOne) SetOccurredAt(v time.Time) *CaseEventUpdateOne {
	_u.mutation.SetOccurredAt(v)
	return _u
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_u *CaseEventUpdateOne) SetNillableOccurredAt(v *time.Time) *CaseEventUpdateOne {
	if v != nil {
		_u.SetOccurredAt(*v)
	}
	return _u
}

// ClearOccurredAt clears the value of the "occurred_at" field.
func (_u *CaseEventUpdateOne) ClearOccurredAt() *CaseEventUpdateOne {
	_u.mutation.ClearOccurredAt()
	return _u
}

// SetDetail sets the "detail" field.
func (_u *CaseEventUpdateOne) SetDetail(v string) *CaseEventUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *CaseEventUpdateOne) SetNillableDetail(v *string) *CaseEventUpdateOne {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *CaseEventUpdateOne) ClearDetail() *CaseEventUpdateOne {
	_u.mutation.ClearDetail()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CaseEventUpdateOne) SetUpdatedAt(v time.Time) *CaseEventUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *CaseEventUpdateOne) SetNillableUpdatedAt(v *time.Time) *CaseEventUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// AddSuggestionIDs adds the "suggestions" edge to the Suggestion entity by IDs.
func (_u *CaseEventUpdateOne) AddSuggestionIDs(ids ...string) *CaseEventUpdateOne {
	_u.mutation.AddSuggestionIDs(ids...)
	return _u
}

// AddSuggestions adds the "suggestions" edges to the Suggestion entity.
func (_u *CaseEventUpdateOne) AddSuggestions(v ...*Suggestion) *CaseEventUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSuggestionIDs(ids...)
}

// Mutation returns the CaseEventMutation object of the builder.
func (_u *CaseEventUpdateOne) Mutation() *CaseEventMutation {
	return _u.mutation
}

// ClearSuggestions clears all "suggestions" edges to the Suggestion entity.
func (_u *CaseEventUpdateOne) ClearSuggestions() *CaseEventUpdateOne {
	_u.mutation.ClearSuggestions()
	return _u
}

// RemoveSuggestionIDs removes the "suggestions" edge to Suggestion entities by IDs.
func (_u *CaseEventUpdateOne) RemoveSuggestionIDs(ids ...string) *CaseEventUpdateOne {
	_u.mutation.RemoveSuggestionIDs(ids...)
	return _u
}

// RemoveSuggestions removes "suggestions" edges to Suggestion entities.
func (_u *CaseEventUpdateOne) RemoveSuggestions(v ...*Suggestion) *CaseEventUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSuggestionIDs(ids...)
}

// Where appends a list predicates to the CaseEventUpdate builder.
func (_u *CaseEventUpdateOne) Where(ps ...predicate.CaseEvent) *CaseEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CaseEventUpdateOne) Select(field string, fields ...string) *CaseEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CaseEvent entity.
func (_u *CaseEventUpdateOne) Save(ctx context.Context) (*CaseEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaseEventUpdateOne) SaveX(ctx context.Context) *CaseEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CaseEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaseEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CaseEventUpdateOne) check() error {
	if v, ok := _u.mutation.Milestone(); ok {
		if err := caseevent.MilestoneValidator(v); err != nil {
			return &ValidationError{Name: "milestone", err: fmt.Errorf(`ent: validator failed for field "CaseEvent.milestone": %w`, err)}
		}
	}
	if _u.mutation.CaseCleared() && len(_u.mutation.CaseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CaseEvent.case"`)
	}
	return nil
}

func (_u *CaseEventUpdateOne) sqlSave(ctx context.Context) (_node *CaseEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(caseevent.Table, caseevent.Columns, sqlgraph.NewFieldSpec(caseevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CaseEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, caseevent.FieldID)
		for _, f := range fields {
			if !caseevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != caseevent.FieldID {
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
	if value, ok := _u.mutation.Milestone(); ok {
		_spec.SetField(caseevent.FieldMilestone, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OccurredAt(); ok {
		_spec.SetField(caseevent.FieldOccurredAt, field.TypeTime, value)
	}
	if _u.mutation.OccurredAtCleared() {
		_spec.ClearField(caseevent.FieldOccurredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(caseevent.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(caseevent.FieldDetail, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(caseevent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SuggestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSuggestionsIDs(); len(nodes) > 0 && !_u.mutation.SuggestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SuggestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CaseEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{caseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
