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
	"github.com/andeslegal/cobranza/ent/predicate"
	"github.com/andeslegal/cobranza/ent/suggestion"
)

// SuggestionUpdate is the builder for updating Suggestion entities.
type SuggestionUpdate struct {
	config
	hooks    []Hook
	mutation *SuggestionMutation
}

// Where appends a list predicates to the SuggestionUpdate builder.
func (_u *SuggestionUpdate) Where(ps ...predicate.Suggestion) *SuggestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *SuggestionUpdate) SetName(v string) *SuggestionUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableName(v *string) *SuggestionUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDocType sets the "doc_type" field.
func (_u *SuggestionUpdate) SetDocType(v suggestion.DocType) *SuggestionUpdate {
	_u.mutation.SetDocType(v)
	return _u
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableDocType(v *suggestion.DocType) *SuggestionUpdate {
	if v != nil {
		_u.SetDocType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *SuggestionUpdate) SetContent(v map[string]interface{}) *SuggestionUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *SuggestionUpdate) ClearContent() *SuggestionUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetStorageKey sets the "storage_key" field.
func (_u *SuggestionUpdate) SetStorageKey(v string) *SuggestionUpdate {
	_u.mutation.SetStorageKey(v)
	return _u
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableStorageKey(v *string) *SuggestionUpdate {
	if v != nil {
		_u.SetStorageKey(*v)
	}
	return _u
}

// ClearStorageKey clears the value of the "storage_key" field.
func (_u *SuggestionUpdate) ClearStorageKey() *SuggestionUpdate {
	_u.mutation.ClearStorageKey()
	return _u
}

// SetScore sets the "score" field.
func (_u *SuggestionUpdate) SetScore(v float64) *SuggestionUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableScore(v *float64) *SuggestionUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SuggestionUpdate) AddScore(v float64) *SuggestionUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetSubmitted sets the "submitted" field.
func (_u *SuggestionUpdate) SetSubmitted(v bool) *SuggestionUpdate {
	_u.mutation.SetSubmitted(v)
	return _u
}

// SetNillableSubmitted sets the "submitted" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableSubmitted(v *bool) *SuggestionUpdate {
	if v != nil {
		_u.SetSubmitted(*v)
	}
	return _u
}

// SetSubmittedAt sets the "submitted_at" field.
func (_u *SuggestionUpdate) SetSubmittedAt(v time.Time) *SuggestionUpdate {
	_u.mutation.SetSubmittedAt(v)
	return _u
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableSubmittedAt(v *time.Time) *SuggestionUpdate {
	if v != nil {
		_u.SetSubmittedAt(*v)
	}
	return _u
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (_u *SuggestionUpdate) ClearSubmittedAt() *SuggestionUpdate {
	_u.mutation.ClearSubmittedAt()
	return _u
}

// Mutation returns the SuggestionMutation object of the builder.
func (_u *SuggestionUpdate) Mutation() *SuggestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SuggestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SuggestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SuggestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SuggestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SuggestionUpdate) check() error {
	if v, ok := _u.mutation.DocType(); ok {
		if err := suggestion.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "Suggestion.doc_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := suggestion.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "Suggestion.score": %w`, err)}
		}
	}
	if _u.mutation.CaseEventCleared() && len(_u.mutation.CaseEventIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Suggestion.case_event"`)
	}
	return nil
}

func (_u *SuggestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(suggestion.Table, suggestion.Columns, sqlgraph.NewFieldSpec(suggestion.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(suggestion.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocType(); ok {
		_spec.SetField(suggestion.FieldDocType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(suggestion.FieldContent, field.TypeJSON, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(suggestion.FieldContent, field.TypeJSON)
	}
	if value, ok := _u.mutation.StorageKey(); ok {
		_spec.SetField(suggestion.FieldStorageKey, field.TypeString, value)
	}
	if _u.mutation.StorageKeyCleared() {
		_spec.ClearField(suggestion.FieldStorageKey, field.TypeString)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(suggestion.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(suggestion.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Submitted(); ok {
		_spec.SetField(suggestion.FieldSubmitted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SubmittedAt(); ok {
		_spec.SetField(suggestion.FieldSubmittedAt, field.TypeTime, value)
	}
	if _u.mutation.SubmittedAtCleared() {
		_spec.ClearField(suggestion.FieldSubmittedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{suggestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SuggestionUpdateOne is the builder for updating a single Suggestion entity.
type SuggestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SuggestionMutation
}

// SetName sets the "name" field.
func (_u *SuggestionUpdateOne) SetName(v string) *SuggestionUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableName(v *string) *SuggestionUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDocType sets the "doc_type" field.
func (_u *SuggestionUpdateOne) SetDocType(v suggestion.DocType) *SuggestionUpdateOne {
	_u.mutation.SetDocType(v)
	return _u
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableDocType(v *suggestion.DocType) *SuggestionUpdateOne {
	if v != nil {
		_u.SetDocType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *SuggestionUpdateOne) SetContent(v map[string]interface{}) *SuggestionUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *SuggestionUpdateOne) ClearContent() *SuggestionUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetStorageKey sets the "storage_key" field.
func (_u *SuggestionUpdateOne) SetStorageKey(v string) *SuggestionUpdateOne {
	_u.mutation.SetStorageKey(v)
	return _u
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableStorageKey(v *string) *SuggestionUpdateOne {
	if v != nil {
		_u.SetStorageKey(*v)
	}
	return _u
}

// ClearStorageKey clears the value of the "storage_key" field.
func (_u *SuggestionUpdateOne) ClearStorageKey() *SuggestionUpdateOne {
	_u.mutation.ClearStorageKey()
	return _u
}

// SetScore sets the "score" field.
func (_u *SuggestionUpdateOne) SetScore(v float64) *SuggestionUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableScore(v *float64) *SuggestionUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SuggestionUpdateOne) AddScore(v float64) *SuggestionUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetSubmitted sets the "submitted" field.
func (_u *SuggestionUpdateOne) SetSubmitted(v bool) *SuggestionUpdateOne {
	_u.mutation.SetSubmitted(v)
	return _u
}

// SetNillableSubmitted sets the "submitted" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableSubmitted(v *bool) *SuggestionUpdateOne {
	if v != nil {
		_u.SetSubmitted(*v)
	}
	return _u
}

// SetSubmittedAt sets the "submitted_at" field.
func (_u *SuggestionUpdateOne) SetSubmittedAt(v time.Time) *SuggestionUpdateOne {
	_u.mutation.SetSubmittedAt(v)
	return _u
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableSubmittedAt(v *time.Time) *SuggestionUpdateOne {
	if v != nil {
		_u.SetSubmittedAt(*v)
	}
	return _u
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (_u *SuggestionUpdateOne) ClearSubmittedAt() *SuggestionUpdateOne {
	_u.mutation.ClearSubmittedAt()
	return _u
}

// Mutation returns the SuggestionMutation object of the builder.
func (_u *SuggestionUpdateOne) Mutation() *SuggestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SuggestionUpdate builder.
func (_u *SuggestionUpdateOne) Where(ps ...predicate.Suggestion) *SuggestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SuggestionUpdateOne) Select(field string, fields ...string) *SuggestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Suggestion entity.
func (_u *SuggestionUpdateOne) Save(ctx context.Context) (*Suggestion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SuggestionUpdateOne) SaveX(ctx context.Context) *Suggestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SuggestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SuggestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SuggestionUpdateOne) check() error {
	if v, ok := _u.mutation.DocType(); ok {
		if err := suggestion.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "Suggestion.doc_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := suggestion.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "Suggestion.score": %w`, err)}
		}
	}
	if _u.mutation.CaseEventCleared() && len(_u.mutation.CaseEventIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Suggestion.case_event"`)
	}
	return nil
}

func (_u *SuggestionUpdateOne) sqlSave(ctx context.Context) (_node *Suggestion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(suggestion.Table, suggestion.Columns, sqlgraph.NewFieldSpec(suggestion.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Suggestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, suggestion.FieldID)
		for _, f := range fields {
			if !suggestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != suggestion.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(suggestion.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocType(); ok {
		_spec.SetField(suggestion.FieldDocType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(suggestion.FieldContent, field.TypeJSON, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(suggestion.FieldContent, field.TypeJSON)
	}
	if value, ok := _u.mutation.StorageKey(); ok {
		_spec.SetField(suggestion.FieldStorageKey, field.TypeString, value)
	}
	if _u.mutation.StorageKeyCleared() {
		_spec.ClearField(suggestion.FieldStorageKey, field.TypeString)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(suggestion.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(suggestion.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Submitted(); ok {
		_spec.SetField(suggestion.FieldSubmitted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SubmittedAt(); ok {
		_spec.SetField(suggestion.FieldSubmittedAt, field.TypeTime, value)
	}
	if _u.mutation.SubmittedAtCleared() {
		_spec.ClearField(suggestion.FieldSubmittedAt, field.TypeTime)
	}
	_node = &Suggestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{suggestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
