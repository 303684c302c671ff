// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/athletiq/athletiq_backend/internal/repo/injuryassessment"
	"github.com/athletiq/athletiq_backend/internal/repo/predicate"
)

// InjuryAssessmentDelete is the builder for deleting a InjuryAssessment entity.
type InjuryAssessmentDelete struct {
	config
	hooks    []Hook
	mutation *InjuryAssessmentMutation
}

// Where appends a list predicates to the InjuryAssessmentDelete builder.
func (_d *InjuryAssessmentDelete) Where(ps ...predicate.InjuryAssessment) *InjuryAssessmentDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *InjuryAssessmentDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InjuryAssessmentDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *InjuryAssessmentDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(injuryassessment.Table, sqlgraph.NewFieldSpec(injuryassessment.FieldID, field.TypeUUID))
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

// InjuryAssessmentDeleteOne is the builder for deleting a single InjuryAssessment entity.
type InjuryAssessmentDeleteOne struct {
	_d *InjuryAssessmentDelete
}

// Where appends a list predicates to the InjuryAssessmentDelete builder.
func (_d *InjuryAssessmentDeleteOne) Where(ps ...predicate.InjuryAssessment) *InjuryAssessmentDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *InjuryAssessmentDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{injuryassessment.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InjuryAssessmentDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
