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
	"github.com/andeslegal/cobranza/ent/casedocument"
	"github.com/andeslegal/cobranza/ent/caseevent"
	"github.com/andeslegal/cobranza/ent/collectioncase"
	"github.com/andeslegal/cobranza/ent/predicate"
)

// CollectionCaseUpdate is the builder for updating CollectionCase entities.
type CollectionCaseUpdate struct {
	config
	hooks    []Hook
	mutation *CollectionCaseMutation
}

// Where appends a list predicates to the CollectionCaseUpdate builder.
func (_u *CollectionCaseUpdate) Where(ps ...predicate.CollectionCase) *CollectionCaseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRol sets the "rol" field.
func (_u *CollectionCaseUpdate) SetRol(v string) *CollectionCaseUpdate {
	_u.mutation.SetRol(v)
	return _u
}

// SetNillableRol sets the "rol" field if the given value is not nil.
func (_u *CollectionCaseUpdate) SetNillableRol(v *string) *CollectionCaseUpdate {
	if v != nil {
		_u.SetRol(*v)
	}
	return _u
}

// SetCourt sets the "court" field.
func (_u *CollectionCaseUpdate) SetCourt(v string) *CollectionCaseUpdate {
	_u.mutation.SetCourt(v)
	return _u
}

// SetNillableCourt sets the "court" field if the given value is not nil.
func (_u *CollectionCaseUpdate) SetNillableCourt(v *string) *CollectionCaseUpdate {
	if v != nil {
		_u.SetCourt(*v)
	}
	return _u
}

// SetDebtorName sets the "debtor_name" field.
func (_u *CollectionCaseUpdate) SetDebtorName(v string) *CollectionCaseUpdate {
	_u.mutation.SetDebtorName(v)
	return _u
}

// SetNillableDebtorName sets the "debtor_name" field if the given value is not nil.
func (_u *CollectionCaseUpdate) SetNillableDebtorName(v *string) *CollectionCaseUpdate {
	if v != nil {
		_u.SetDebtorName(*v)
	}
	return _u
}

// SetDebtorRut sets the "debtor_rut" field.
func (_u *CollectionCaseUpdate) SetDebtorRut(v string) *CollectionCaseUpdate {
	_u.mutation.SetDebtorRut(v)
	return _u
}

// SetNillableDebtorRut sets the "debtor_rut" field if the given value is not nil.
func (_u *CollectionCaseUpdate) SetNillableDebtorRut(v *string) *CollectionCaseUpdate {
	if v != nil {
		_u.SetDebtorRut(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CollectionCaseUpdate) SetStatus(v collectioncase.Status) *CollectionCaseUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CollectionCaseUpdate) SetNillableStatus(v *collectioncase.Status) *CollectionCaseUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CollectionCaseUpdate) SetUpdatedAt(v time.Time) *CollectionCaseUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *CollectionCaseUpdate) SetNillableUpdatedAt(v *time.Time) *CollectionCaseUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *CollectionCaseUpdate) SetDeletedAt(v time.Time) *CollectionCaseUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *CollectionCaseUpdate) SetNillableDeletedAt(v *time.Time) *CollectionCaseUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *CollectionCaseUpdate) ClearDeletedAt() *CollectionCaseUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddEventIDs adds the "events" edge to the CaseEvent entity by IDs.
func (_u *CollectionCaseUpdate) AddEventIDs(ids ...string) *CollectionCaseUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the CaseEvent entity.
func (_u *CollectionCaseUpdate) AddEvents(v ...*CaseEvent) *CollectionCaseUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddDocumentIDs adds the "documents" edge to the CaseDocument entity by IDs.
func (_u *CollectionCaseUpdate) AddDocumentIDs(ids ...string) *CollectionCaseUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the CaseDocument entity.
func (_u *CollectionCaseUpdate) AddDocuments(v ...*CaseDocument) *CollectionCaseUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// Mutation returns the CollectionCaseMutation object of the builder.
func (_u *CollectionCaseUpdate) Mutation() *CollectionCaseMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the CaseEvent entity.
func (_u *CollectionCaseUpdate) ClearEvents() *CollectionCaseUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to CaseEvent entities by IDs.
func (_u *CollectionCaseUpdate) RemoveEventIDs(ids ...string) *CollectionCaseUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to CaseEvent entities.
func (_u *CollectionCaseUpdate) RemoveEvents(v ...*CaseEvent) *CollectionCaseUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearDocuments clears all "documents" edges to the CaseDocument entity.
func (_u *CollectionCaseUpdate) ClearDocuments() *CollectionCaseUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to CaseDocument entities by IDs.
func (_u *CollectionCaseUpdate) RemoveDocumentIDs(ids ...string) *CollectionCaseUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to CaseDocument entities.
func (_u *CollectionCaseUpdate) RemoveDocuments(v ...*CaseDocument) *CollectionCaseUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CollectionCaseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CollectionCaseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CollectionCaseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CollectionCaseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CollectionCaseUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := collectioncase.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CollectionCase.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CollectionCaseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(collectioncase.Table, collectioncase.Columns, sqlgraph.NewFieldSpec(collectioncase.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Rol(); ok {
		_spec.SetField(collectioncase.FieldRol, field.TypeString, value)
	}
	if value, ok := _u.mutation.Court(); ok {
		_spec.SetField(collectioncase.FieldCourt, field.TypeString, value)
	}
	if value, ok := _u.mutation.DebtorName(); ok {
		_spec.SetField(collectioncase.FieldDebtorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DebtorRut(); ok {
		_spec.SetField(collectioncase.FieldDebtorRut, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(collectioncase.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(collectioncase.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(collectioncase.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(collectioncase.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{collectioncase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CollectionCaseUpdateOne is the builder for updating a single CollectionCase entity.
type CollectionCaseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CollectionCaseMutation
}

// SetRol sets the "rol" field.
func (_u *CollectionCaseUpdateOne) SetRol(v string) *CollectionCaseUpdateOne {
	_u.mutation.SetRol(v)
	return _u
}

// SetNillableRol sets the "rol" field if the given value is not nil.
func (_u *CollectionCaseUpdateOne) SetNillableRol(v *string) *CollectionCaseUpdateOne {
	if v != nil {
		_u.SetRol(*v)
	}
	return _u
}

// SetCourt sets the "court" field.
func (_u *CollectionCaseUpdateOne) SetCourt(v string) *CollectionCaseUpdateOne {
	_u.mutation.SetCourt(v)
	return _u
}

// SetNillableCourt sets the "court" field if the given value is not nil.
func (_u *CollectionCaseUpdateOne) SetNillableCourt(v *string) *CollectionCaseUpdateOne {
	if v != nil {
		_u.SetCourt(*v)
	}
	return _u
}

// SetDebtorName sets the "debtor_name" field.
func (_u *CollectionCaseUpdateOne) SetDebtorName(v string) *CollectionCaseUpdateOne {
	_u.mutation.SetDebtorName(v)
	return _u
}

// SetNillableDebtorName sets the "debtor_name" field if the given value is not nil.
func (_u *CollectionCaseUpdateOne) SetNillableDebtorName(v *string) *CollectionCaseUpdateOne {
	if v != nil {
		_u.SetDebtorName(*v)
	}
	return _u
}

// SetDebtorRut sets the "debtor_rut" field.
func (_u *CollectionCaseUpdateOne) SetDebtorRut(v string) *CollectionCaseUpdateOne {
	_u.mutation.SetDebtorRut(v)
	return _u
}

// SetNillableDebtorRut sets the "debtor_rut" field if the given value is not nil.
func (_u *CollectionCaseUpdateOne) SetNillableDebtorRut(v *string) *CollectionCaseUpdateOne {
	if v != nil {
		_u.SetDebtorRut(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CollectionCaseUpdateOne) SetStatus(v collectioncase.Status) *CollectionCaseUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CollectionCaseUpdateOne) SetNillableStatus(v *collectioncase.Status) *CollectionCaseUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CollectionCaseUpdateOne) SetUpdatedAt(v time.Time) *CollectionCaseUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *CollectionCaseUpdateOne) SetNillableUpdatedAt(v *time.Time) *CollectionCaseUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *CollectionCaseUpdateOne) SetDeletedAt(v time.Time) *CollectionCaseUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *CollectionCaseUpdateOne) SetNillableDeletedAt(v *time.Time) *CollectionCaseUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *CollectionCaseUpdateOne) ClearDeletedAt() *CollectionCaseUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddEventIDs adds the "events" edge to the CaseEvent entity by IDs.
func (_u *CollectionCaseUpdateOne) AddEventIDs(ids ...string) *CollectionCaseUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the CaseEvent entity.
func (_u *CollectionCaseUpdateOne) AddEvents(v ...*CaseEvent) *CollectionCaseUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddDocumentIDs adds the "documents" edge to the CaseDocument entity by IDs.
func (_u *CollectionCaseUpdateOne) AddDocumentIDs(ids ...string) *CollectionCaseUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the CaseDocument entity.
func (_u *CollectionCaseUpdateOne) AddDocuments(v ...*CaseDocument) *CollectionCaseUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// Mutation returns the CollectionCaseMutation object of the builder.
func (_u *CollectionCaseUpdateOne) Mutation() *CollectionCaseMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the CaseEvent entity.
func (_u *CollectionCaseUpdateOne) ClearEvents() *CollectionCaseUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to CaseEvent entities by IDs.
func (_u *CollectionCaseUpdateOne) RemoveEventIDs(ids ...string) *CollectionCaseUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to CaseEvent entities.
func (_u *CollectionCaseUpdateOne) RemoveEvents(v ...*CaseEvent) *CollectionCaseUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearDocuments clears all "documents" edges to the CaseDocument entity.
func (_u *CollectionCaseUpdateOne) ClearDocuments() *CollectionCaseUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to CaseDocument entities by IDs.
func (_u *CollectionCaseUpdateOne) RemoveDocumentIDs(ids ...string) *CollectionCaseUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to CaseDocument entities.
func (_u *CollectionCaseUpdateOne) RemoveDocuments(v ...*CaseDocument) *CollectionCaseUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// Where appends a list predicates to the CollectionCaseUpdate builder.
func (_u *CollectionCaseUpdateOne) Where(ps ...predicate.CollectionCase) *CollectionCaseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CollectionCaseUpdateOne) Select(field string, fields ...string) *CollectionCaseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CollectionCase entity.
func (_u *CollectionCaseUpdateOne) Save(ctx context.Context) (*CollectionCase, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CollectionCaseUpdateOne) SaveX(ctx context.Context) *CollectionCase {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CollectionCaseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CollectionCaseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CollectionCaseUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := collectioncase.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CollectionCase.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CollectionCaseUpdateOne) sqlSave(ctx context.Context) (_node *CollectionCase, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(collectioncase.Table, collectioncase.Columns, sqlgraph.NewFieldSpec(collectioncase.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CollectionCase.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, collectioncase.FieldID)
		for _, f := range fields {
			if !collectioncase.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != collectioncase.FieldID {
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
	if value, ok := _u.mutation.Rol(); ok {
		_spec.SetField(collectioncase.FieldRol, field.TypeString, value)
	}
	if value, ok := _u.mutation.Court(); ok {
		_spec.SetField(collectioncase.FieldCourt, field.TypeString, value)
	}
	if value, ok := _u.mutation.DebtorName(); ok {
		_spec.SetField(collectioncase.FieldDebtorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DebtorRut(); ok {
		_spec.SetField(collectioncase.FieldDebtorRut, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(collectioncase.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(collectioncase.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(collectioncase.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(collectioncase.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CollectionCase{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{collectioncase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
