// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/athletiq/athletiq_backend/internal/repo/injuryticket"
	"github.com/athletiq/athletiq_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// InjuryTicketUpdate is the builder for updating InjuryTicket entities.
type InjuryTicketUpdate struct {
	config
	hooks    []Hook
	mutation *InjuryTicketMutation
}

// Where appends a list predicates to the InjuryTicketUpdate builder.
func (_u *InjuryTicketUpdate) Where(ps ...predicate.InjuryTicket) *InjuryTicketUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InjuryTicketUpdate) SetUpdatedAt(v time.Time) *InjuryTicketUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *InjuryTicketUpdate) SetReportID(v uuid.UUID) *InjuryTicketUpdate {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *InjuryTicketUpdate) SetNillableReportID(v *uuid.UUID) *InjuryTicketUpdate {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *InjuryTicketUpdate) SetStatus(v injuryticket.Status) *InjuryTicketUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InjuryTicketUpdate) SetNillableStatus(v *injuryticket.Status) *InjuryTicketUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the InjuryTicketMutation object of the builder.
func (_u *InjuryTicketUpdate) Mutation() *InjuryTicketMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InjuryTicketUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InjuryTicketUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InjuryTicketUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InjuryTicketUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InjuryTicketUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := injuryticket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InjuryTicketUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := injuryticket.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "InjuryTicket.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InjuryTicketUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(injuryticket.Table, injuryticket.Columns, sqlgraph.NewFieldSpec(injuryticket.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(injuryticket.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ReportID(); ok {
		_spec.SetField(injuryticket.FieldReportID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(injuryticket.FieldStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{injuryticket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InjuryTicketUpdateOne is the builder for updating a single InjuryTicket entity.
type InjuryTicketUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InjuryTicketMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InjuryTicketUpdateOne) SetUpdatedAt(v time.Time) *InjuryTicketUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *InjuryTicketUpdateOne) SetReportID(v uuid.UUID) *InjuryTicketUpdateOne {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *InjuryTicketUpdateOne) SetNillableReportID(v *uuid.UUID) *InjuryTicketUpdateOne {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *InjuryTicketUpdateOne) SetStatus(v injuryticket.Status) *InjuryTicketUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InjuryTicketUpdateOne) SetNillableStatus(v *injuryticket.Status) *InjuryTicketUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the InjuryTicketMutation object of the builder.
func (_u *InjuryTicketUpdateOne) Mutation() *InjuryTicketMutation {
	return _u.mutation
}

// Where appends a list predicates to the InjuryTicketUpdate builder.
func (_u *InjuryTicketUpdateOne) Where(ps ...predicate.InjuryTicket) *InjuryTicketUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InjuryTicketUpdateOne) Select(field string, fields ...string) *InjuryTicketUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InjuryTicket entity.
func (_u *InjuryTicketUpdateOne) Save(ctx context.Context) (*InjuryTicket, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InjuryTicketUpdateOne) SaveX(ctx context.Context) *InjuryTicket {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InjuryTicketUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InjuryTicketUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InjuryTicketUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := injuryticket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InjuryTicketUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := injuryticket.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "InjuryTicket.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InjuryTicketUpdateOne) sqlSave(ctx context.Context) (_node *InjuryTicket, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(injuryticket.Table, injuryticket.Columns, sqlgraph.NewFieldSpec(injuryticket.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "InjuryTicket.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, injuryticket.FieldID)
		for _, f := range fields {
			if !injuryticket.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != injuryticket.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(injuryticket.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ReportID(); ok {
		_spec.SetField(injuryticket.FieldReportID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(injuryticket.FieldStatus, field.TypeEnum, value)
	}
	_node = &InjuryTicket{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{injuryticket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
