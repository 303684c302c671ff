// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/athletiq/athletiq_backend/internal/repo/injuryshortmessage"
	"github.com/athletiq/athletiq_backend/internal/repo/predicate"
)

// InjuryShortMessageDelete is the builder for deleting a InjuryShortMessage entity.
type InjuryShortMessageDelete struct {
	config
	hooks    []Hook
	mutation *InjuryShortMessageMutation
}

// Where appends a list predicates to the InjuryShortMessageDelete builder.
func (_d *InjuryShortMessageDelete) Where(ps ...predicate.InjuryShortMessage) *InjuryShortMessageDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *InjuryShortMessageDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InjuryShortMessageDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *InjuryShortMessageDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(injuryshortmessage.Table, sqlgraph.NewFieldSpec(injuryshortmessage.FieldID, field.TypeUUID))
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

// InjuryShortMessageDeleteOne is the builder for deleting a single InjuryShortMessage entity.
type InjuryShortMessageDeleteOne struct {
	_d *InjuryShortMessageDelete
}

// Where appends a list predicates to the InjuryShortMessageDelete builder.
func (_d *InjuryShortMessageDeleteOne) Where(ps ...predicate.InjuryShortMessage) *InjuryShortMessageDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *InjuryShortMessageDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{injuryshortmessage.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InjuryShortMessageDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
