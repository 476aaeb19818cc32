// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/andeslegal/cobranza/ent/casedocument"
	"github.com/andeslegal/cobranza/ent/predicate"
)

// CaseDocumentDelete is the builder for deleting a CaseDocument entity.
type CaseDocumentDelete struct {
	config
	hooks    []Hook
	mutation *CaseDocumentMutation
}

// Where appends a list predicates to the CaseDocumentDelete builder.
func (_d *CaseDocumentDelete) Where(ps ...predicate.CaseDocument) *CaseDocumentDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CaseDocumentDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CaseDocumentDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CaseDocumentDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(casedocument.Table, sqlgraph.NewFieldSpec(casedocument.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CaseDocumentDeleteOne is the builder for deleting a single CaseDocument entity.
type CaseDocumentDeleteOne struct {
	_d *CaseDocumentDelete
}

// Where appends a list predicates to the CaseDocumentDelete builder.
func (_d *CaseDocumentDeleteOne) Where(ps ...predicate.CaseDocument) *CaseDocumentDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CaseDocumentDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{casedocument.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CaseDocumentDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
