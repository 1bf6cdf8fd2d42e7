// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/financialhighlight"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/predicate"
)

// FinancialHighlightDelete is the builder for deleting a FinancialHighlight entity.
type FinancialHighlightDelete struct {
	config
	hooks    []Hook
	mutation *FinancialHighlightMutation
}

// Where appends a list predicates to the FinancialHighlightDelete builder.
func (_d *FinancialHighlightDelete) Where(ps ...predicate.FinancialHighlight) *FinancialHighlightDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *FinancialHighlightDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FinancialHighlightDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *FinancialHighlightDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(financialhighlight.Table, sqlgraph.NewFieldSpec(financialhighlight.FieldID, field.TypeUUID))
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

// FinancialHighlightDeleteOne is the builder for deleting a single FinancialHighlight entity.
type FinancialHighlightDeleteOne struct {
	_d *FinancialHighlightDelete
}

// Where appends a list predicates to the FinancialHighlightDelete builder.
func (_d *FinancialHighlightDeleteOne) Where(ps ...predicate.FinancialHighlight) *FinancialHighlightDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *FinancialHighlightDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{financialhighlight.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FinancialHighlightDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
