// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agrobase-io/agrobase/gen/ent/archivedcycle"
	"github.com/agrobase-io/agrobase/gen/ent/predicate"
)

// ArchivedCycleDelete is the builder for deleting a ArchivedCycle entity.
type ArchivedCycleDelete struct {
	config
	hooks    []Hook
	mutation *ArchivedCycleMutation
}

// Where appends a list predicates to the ArchivedCycleDelete builder.
func (_d *ArchivedCycleDelete) Where(ps ...predicate.ArchivedCycle) *ArchivedCycleDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ArchivedCycleDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ArchivedCycleDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ArchivedCycleDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(archivedcycle.Table, sqlgraph.NewFieldSpec(archivedcycle.FieldID, field.TypeUUID))
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

// ArchivedCycleDeleteOne is the builder for deleting a single ArchivedCycle entity.
type ArchivedCycleDeleteOne struct {
	_d *ArchivedCycleDelete
}

// Where appends a list predicates to the ArchivedCycleDelete builder.
func (_d *ArchivedCycleDeleteOne) Where(ps ...predicate.ArchivedCycle) *ArchivedCycleDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ArchivedCycleDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{archivedcycle.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ArchivedCycleDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
