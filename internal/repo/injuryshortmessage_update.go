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
	"github.com/athletiq/athletiq_backend/internal/repo/injuryshortmessage"
	"github.com/athletiq/athletiq_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// InjuryShortMessageUpdate is the builder for updating InjuryShortMessage entities.
type InjuryShortMessageUpdate struct {
	config
	hooks    []Hook
	mutation *InjuryShortMessageMutation
}

// Where appends a list predicates to the InjuryShortMessageUpdate builder.
func (_u *InjuryShortMessageUpdate) Where(ps ...predicate.InjuryShortMessage) *InjuryShortMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *InjuryShortMessageUpdate) SetReportID(v uuid.UUID) *InjuryShortMessageUpdate {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *InjuryShortMessageUpdate) SetNillableReportID(v *uuid.UUID) *InjuryShortMessageUpdate {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetResponse sets the "response" field.
func (_u *InjuryShortMessageUpdate) SetResponse(v string) *InjuryShortMessageUpdate {
	_u.mutation.SetResponse(v)
	return _u
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_u *InjuryShortMessageUpdate) SetNillableResponse(v *string) *InjuryShortMessageUpdate {
	if v != nil {
		_u.SetResponse(*v)
	}
	return _u
}

// SetMedication sets the "medication" field.
func (_u *InjuryShortMessageUpdate) SetMedication(v string) *InjuryShortMessageUpdate {
	_u.mutation.SetMedication(v)
	return _u
}

// SetNillableMedication sets the "medication" field if the given value is not nil.
func (_u *InjuryShortMessageUpdate) SetNillableMedication(v *string) *InjuryShortMessageUpdate {
	if v != nil {
		_u.SetMedication(*v)
	}
	return _u
}

// SetDoctorNote sets the "doctor_note" field.
func (_u *InjuryShortMessageUpdate) SetDoctorNote(v string) *InjuryShortMessageUpdate {
	_u.mutation.SetDoctorNote(v)
	return _u
}

// SetNillableDoctorNote sets the "doctor_note" field if the given value is not nil.
func (_u *InjuryShortMessageUpdate) SetNillableDoctorNote(v *string) *InjuryShortMessageUpdate {
	if v != nil {
		_u.SetDoctorNote(*v)
	}
	return _u
}

// SetAppointmentDate sets the "appointment_date" field.
func (_u *InjuryShortMessageUpdate) SetAppointmentDate(v time.Time) *InjuryShortMessageUpdate {
	_u.mutation.SetAppointmentDate(v)
	return _u
}

// SetNillableAppointmentDate sets the "appointment_date" field if the given value is not nil.
func (_u *InjuryShortMessageUpdate) SetNillableAppointmentDate(v *time.Time) *InjuryShortMessageUpdate {
	if v != nil {
		_u.SetAppointmentDate(*v)
	}
	return _u
}

// SetAppointmentTime sets the "appointment_time" field.
func (_u *InjuryShortMessageUpdate) SetAppointmentTime(v string) *InjuryShortMessageUpdate {
	_u.mutation.SetAppointmentTime(v)
	return _u
}

// SetNillableAppointmentTime sets the "appointment_time" field if the given value is not nil.
func (_u *InjuryShortMessageUpdate) SetNillableAppointmentTime(v *string) *InjuryShortMessageUpdate {
	if v != nil {
		_u.SetAppointmentTime(*v)
	}
	return _u
}

// Mutation returns the InjuryShortMessageMutation object of the builder.
func (_u *InjuryShortMessageUpdate) Mutation() *InjuryShortMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InjuryShortMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InjuryShortMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InjuryShortMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InjuryShortMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InjuryShortMessageUpdate) check() error {
	if v, ok := _u.mutation.Medication(); ok {
		if err := injuryshortmessage.MedicationValidator(v); err != nil {
			return &ValidationError{Name: "medication", err: fmt.Errorf(`repo: validator failed for field "InjuryShortMessage.medication": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AppointmentTime(); ok {
		if err := injuryshortmessage.AppointmentTimeValidator(v); err != nil {
			return &ValidationError{Name: "appointment_time", err: fmt.Errorf(`repo: validator failed for field "InjuryShortMessage.appointment_time": %w`, err)}
		}
	}
	return nil
}

func (_u *InjuryShortMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(injuryshortmessage.Table, injuryshortmessage.Columns, sqlgraph.NewFieldSpec(injuryshortmessage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ReportID(); ok {
		_spec.SetField(injuryshortmessage.FieldReportID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(injuryshortmessage.FieldResponse, field.TypeString, value)
	}
	if value, ok := _u.mutation.Medication(); ok {
		_spec.SetField(injuryshortmessage.FieldMedication, field.TypeString, value)
	}
	if value, ok := _u.mutation.DoctorNote(); ok {
		_spec.SetField(injuryshortmessage.FieldDoctorNote, field.TypeString, value)
	}
	if value, ok := _u.mutation.AppointmentDate(); ok {
		_spec.SetField(injuryshortmessage.FieldAppointmentDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AppointmentTime(); ok {
		_spec.SetField(injuryshortmessage.FieldAppointmentTime, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{injuryshortmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InjuryShortMessageUpdateOne is the builder for updating a single InjuryShortMessage entity.
type InjuryShortMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InjuryShortMessageMutation
}

// SetReportID sets the "report_id" field.
func (_u *InjuryShortMessageUpdateOne) SetReportID(v uuid.UUID) *InjuryShortMessageUpdateOne {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *InjuryShortMessageUpdateOne) SetNillableReportID(v *uuid.UUID) *InjuryShortMessageUpdateOne {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetResponse sets the "response" field.
func (_u *InjuryShortMessageUpdateOne) SetResponse(v string) *InjuryShortMessageUpdateOne {
	_u.mutation.SetResponse(v)
	return _u
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_u *InjuryShortMessageUpdateOne) SetNillableResponse(v *string) *InjuryShortMessageUpdateOne {
	if v != nil {
		_u.SetResponse(*v)
	}
	return _u
}

// SetMedication sets the "medication" field.
func (_u *InjuryShortMessageUpdateOne) SetMedication(v string) *InjuryShortMessageUpdateOne {
	_u.mutation.SetMedication(v)
	return _u
}

// SetNillableMedication sets the "medication" field if the given value is not nil.
func (_u *InjuryShortMessageUpdateOne) SetNillableMedication(v *string) *InjuryShortMessageUpdateOne {
	if v != nil {
		_u.SetMedication(*v)
	}
	return _u
}

// SetDoctorNote sets the "doctor_note" field.
func (_u *InjuryShortMessageUpdateOne) SetDoctorNote(v string) *InjuryShortMessageUpdateOne {
	_u.mutation.SetDoctorNote(v)
	return _u
}

// SetNillableDoctorNote sets the "doctor_note" field if the given value is not nil.
func (_u *InjuryShortMessageUpdateOne) SetNillableDoctorNote(v *string) *InjuryShortMessageUpdateOne {
	if v != nil {
		_u.SetDoctorNote(*v)
	}
	return _u
}

// SetAppointmentDate sets the "appointment_date" field.
func (_u *InjuryShortMessageUpdateOne) SetAppointmentDate(v time.Time) *InjuryShortMessageUpdateOne {
	_u.mutation.SetAppointmentDate(v)
	return _u
}

// SetNillableAppointmentDate sets the "appointment_date" field if the given value is not nil.
func (_u *InjuryShortMessageUpdateOne) SetNillableAppointmentDate(v *time.Time) *InjuryShortMessageUpdateOne {
	if v != nil {
		_u.SetAppointmentDate(*v)
	}
	return _u
}

// SetAppointmentTime sets the "appointment_time" field.
func (_u *InjuryShortMessageUpdateOne) SetAppointmentTime(v string) *InjuryShortMessageUpdateOne {
	_u.mutation.SetAppointmentTime(v)
	return _u
}

// SetNillableAppointmentTime sets the "appointment_time" field if the given value is not nil.
func (_u *InjuryShortMessageUpdateOne) SetNillableAppointmentTime(v *string) *InjuryShortMessageUpdateOne {
	if v != nil {
		_u.SetAppointmentTime(*v)
	}
	return _u
}

// Mutation returns the InjuryShortMessageMutation object of the builder.
func (_u *InjuryShortMessageUpdateOne) Mutation() *InjuryShortMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the InjuryShortMessageUpdate builder.
func (_u *InjuryShortMessageUpdateOne) Where(ps ...predicate.InjuryShortMessage) *InjuryShortMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InjuryShortMessageUpdateOne) Select(field string, fields ...string) *InjuryShortMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InjuryShortMessage entity.
func (_u *InjuryShortMessageUpdateOne) Save(ctx context.Context) (*InjuryShortMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InjuryShortMessageUpdateOne) SaveX(ctx context.Context) *InjuryShortMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InjuryShortMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InjuryShortMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InjuryShortMessageUpdateOne) check() error {
	if v, ok := _u.mutation.Medication(); ok {
		if err := injuryshortmessage.MedicationValidator(v); err != nil {
			return &ValidationError{Name: "medication", err: fmt.Errorf(`repo: validator failed for field "InjuryShortMessage.medication": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AppointmentTime(); ok {
		if err := injuryshortmessage.AppointmentTimeValidator(v); err != nil {
			return &ValidationError{Name: "appointment_time", err: fmt.Errorf(`repo: validator failed for field "InjuryShortMessage.appointment_time": %w`, err)}
		}
	}
	return nil
}

func (_u *InjuryShortMessageUpdateOne) sqlSave(ctx context.Context) (_node *InjuryShortMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(injuryshortmessage.Table, injuryshortmessage.Columns, sqlgraph.NewFieldSpec(injuryshortmessage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "InjuryShortMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, injuryshortmessage.FieldID)
		for _, f := range fields {
			if !injuryshortmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != injuryshortmessage.FieldID {
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
	if value, ok := _u.mutation.ReportID(); ok {
		_spec.SetField(injuryshortmessage.FieldReportID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(injuryshortmessage.FieldResponse, field.TypeString, value)
	}
	if value, ok := _u.mutation.Medication(); ok {
		_spec.SetField(injuryshortmessage.FieldMedication, field.TypeString, value)
	}
	if value, ok := _u.mutation.DoctorNote(); ok {
		_spec.SetField(injuryshortmessage.FieldDoctorNote, field.TypeString, value)
	}
	if value, ok := _u.mutation.AppointmentDate(); ok {
		_spec.SetField(injuryshortmessage.FieldAppointmentDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AppointmentTime(); ok {
		_spec.SetField(injuryshortmessage.FieldAppointmentTime, field.TypeString, value)
	}
	_node = &InjuryShortMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{injuryshortmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
