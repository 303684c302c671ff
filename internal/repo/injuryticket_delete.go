// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/athletiq/athletiq_backend/internal/repo/injuryticket"
	"github.com/athletiq/athletiq_backend/internal/repo/predicate"
)

// InjuryTicketDelete is the builder for deleting a InjuryTicket entity.
type InjuryTicketDelete struct {
	config
	hooks    []Hook
	mutation *InjuryTicketMutation
}

// Where appends a list predicates to the InjuryTicketDelete builder.
func (_d *InjuryTicketDelete) Where(ps ...predicate.InjuryTicket) *InjuryTicketDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *InjuryTicketDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InjuryTicketDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *InjuryTicketDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(injuryticket.Table, sqlgraph.NewFieldSpec(injuryticket.FieldID, field.TypeUUID))
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

// InjuryTicketDeleteOne is the builder for deleting a single InjuryTicket entity.
type InjuryTicketDeleteOne struct {
	_d *InjuryTicketDelete
}

// Where appends a list predicates to the InjuryTicketDelete builder.
func (_d *InjuryTicketDeleteOne) Where(ps ...predicate.InjuryTicket) *InjuryTicketDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *InjuryTicketDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{injuryticket.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InjuryTicketDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
