// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/athletiq/athletiq_backend/internal/repo/injuryreport"
	"github.com/athletiq/athletiq_backend/internal/repo/predicate"
)

// InjuryReportDelete is the builder for deleting a InjuryReport entity.
type InjuryReportDelete struct {
	config
	hooks    []Hook
	mutation *InjuryReportMutation
}

// Where appends a list predicates to the InjuryReportDelete builder.
func (_d *InjuryReportDelete) Where(ps ...predicate.InjuryReport) *InjuryReportDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *InjuryReportDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InjuryReportDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *InjuryReportDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(injuryreport.Table, sqlgraph.NewFieldSpec(injuryreport.FieldID, field.TypeUUID))
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

// InjuryReportDeleteOne is the builder for deleting a single InjuryReport entity.
type InjuryReportDeleteOne struct {
	_d *InjuryReportDelete
}

// Where appends a list predicates to the InjuryReportDelete builder.
func (_d *InjuryReportDeleteOne) Where(ps ...predicate.InjuryReport) *InjuryReportDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *InjuryReportDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{injuryreport.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InjuryReportDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
