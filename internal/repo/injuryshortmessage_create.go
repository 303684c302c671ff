// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/athletiq/athletiq_backend/internal/repo/injuryshortmessage"
	"github.com/google/uuid"
)

// InjuryShortMessageCreate is the builder for creating a InjuryShortMessage entity.
type InjuryShortMessageCreate struct {
	config
	mutation *InjuryShortMessageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *InjuryShortMessageCreate) SetCreatedAt(v time.Time) *InjuryShortMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InjuryShortMessageCreate) SetNillableCreatedAt(v *time.Time) *InjuryShortMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetReportID sets the "report_id" field.
func (_c *InjuryShortMessageCreate) SetReportID(v uuid.UUID) *InjuryShortMessageCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetResponse sets the "response" field.
func (_c *InjuryShortMessageCreate) SetResponse(v string) *InjuryShortMessageCreate {
	_c.mutation.SetResponse(v)
	return _c
}

// SetMedication sets the "medication" field.
func (_c *InjuryShortMessageCreate) SetMedication(v string) *InjuryShortMessageCreate {
	_c.mutation.SetMedication(v)
	return _c
}

// SetDoctorNote sets the "doctor_note" field.
func (_c *InjuryShortMessageCreate) SetDoctorNote(v string) *InjuryShortMessageCreate {
	_c.mutation.SetDoctorNote(v)
	return _c
}

// SetAppointmentDate sets the "appointment_date" field.
func (_c *InjuryShortMessageCreate) SetAppointmentDate(v time.Time) *InjuryShortMessageCreate {
	_c.mutation.SetAppointmentDate(v)
	return _c
}

// SetAppointmentTime sets the "appointment_time" field.
func (_c *InjuryShortMessageCreate) SetAppointmentTime(v string) *InjuryShortMessageCreate {
	_c.mutation.SetAppointmentTime(v)
	return _c
}

// SetID sets the "id" field.
func (_c *InjuryShortMessageCreate) SetID(v uuid.UUID) *InjuryShortMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InjuryShortMessageCreate) SetNillableID(v *uuid.UUID) *InjuryShortMessageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the InjuryShortMessageMutation object of the builder.
func (_c *InjuryShortMessageCreate) Mutation() *InjuryShortMessageMutation {
	return _c.mutation
}

// Save creates the InjuryShortMessage in the database.
func (_c *InjuryShortMessageCreate) Save(ctx context.Context) (*InjuryShortMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InjuryShortMessageCreate) SaveX(ctx context.Context) *InjuryShortMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InjuryShortMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InjuryShortMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InjuryShortMessageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := injuryshortmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := injuryshortmessage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InjuryShortMessageCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "InjuryShortMessage.created_at"`)}
	}
	if _, ok := _c.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`repo: missing required field "InjuryShortMessage.report_id"`)}
	}
	if _, ok := _c.mutation.Response(); !ok {
		return &ValidationError{Name: "response", err: errors.New(`repo: missing required field "InjuryShortMessage.response"`)}
	}
	if _, ok := _c.mutation.Medication(); !ok {
		return &ValidationError{Name: "medication", err: errors.New(`repo: missing required field "InjuryShortMessage.medication"`)}
	}
	if v, ok := _c.mutation.Medication(); ok {
		if err := injuryshortmessage.MedicationValidator(v); err != nil {
			return &ValidationError{Name: "medication", err: fmt.Errorf(`repo: validator failed for field "InjuryShortMessage.medication": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DoctorNote(); !ok {
		return &ValidationError{Name: "doctor_note", err: errors.New(`repo: missing required field "InjuryShortMessage.doctor_note"`)}
	}
	if _, ok := _c.mutation.AppointmentDate(); !ok {
		return &ValidationError{Name: "appointment_date", err: errors.New(`repo: missing required field "InjuryShortMessage.appointment_date"`)}
	}
	if _, ok := _c.mutation.AppointmentTime(); !ok {
		return &ValidationError{Name: "appointment_time", err: errors.New(`repo: missing required field "InjuryShortMessage.appointment_time"`)}
	}
	if v, ok := _c.mutation.AppointmentTime(); ok {
		if err := injuryshortmessage.AppointmentTimeValidator(v); err != nil {
			return &ValidationError{Name: "appointment_time", err: fmt.Errorf(`repo: validator failed for field "InjuryShortMessage.appointment_time": %w`, err)}
		}
	}
	return nil
}

func (_c *InjuryShortMessageCreate) sqlSave(ctx context.Context) (*InjuryShortMessage, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InjuryShortMessageCreate) createSpec() (*InjuryShortMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &InjuryShortMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(injuryshortmessage.Table, sqlgraph.NewFieldSpec(injuryshortmessage.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(injuryshortmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ReportID(); ok {
		_spec.SetField(injuryshortmessage.FieldReportID, field.TypeUUID, value)
		_node.ReportID = value
	}
	if value, ok := _c.mutation.Response(); ok {
		_spec.SetField(injuryshortmessage.FieldResponse, field.TypeString, value)
		_node.Response = value
	}
	if value, ok := _c.mutation.Medication(); ok {
		_spec.SetField(injuryshortmessage.FieldMedication, field.TypeString, value)
		_node.Medication = value
	}
	if value, ok := _c.mutation.DoctorNote(); ok {
		_spec.SetField(injuryshortmessage.FieldDoctorNote, field.TypeString, value)
		_node.DoctorNote = value
	}
	if value, ok := _c.mutation.AppointmentDate(); ok {
		_spec.SetField(injuryshortmessage.FieldAppointmentDate, field.TypeTime, value)
		_node.AppointmentDate = value
	}
	if value, ok := _c.mutation.AppointmentTime(); ok {
		_spec.SetField(injuryshortmessage.FieldAppointmentTime, field.TypeString, value)
		_node.AppointmentTime = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.InjuryShortMessage.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InjuryShortMessageUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *InjuryShortMessageCreate) OnConflict(opts ...sql.ConflictOption) *InjuryShortMessageUpsertOne {
	_c.conflict = opts
	return &InjuryShortMessageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InjuryShortMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InjuryShortMessageCreate) OnConflictColumns(columns ...string) *InjuryShortMessageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InjuryShortMessageUpsertOne{
		create: _c,
	}
}

type (
	// InjuryShortMessageUpsertOne is the builder for "upsert"-ing
	//  one InjuryShortMessage node.
	InjuryShortMessageUpsertOne struct {
		create *InjuryShortMessageCreate
	}

	// InjuryShortMessageUpsert is the "OnConflict" setter.
	InjuryShortMessageUpsert struct {
		*sql.UpdateSet
	}
)

// SetReportID sets the "report_id" field.
func (u *InjuryShortMessageUpsert) SetReportID(v uuid.UUID) *InjuryShortMessageUpsert {
	u.Set(injuryshortmessage.FieldReportID, v)
	return u
}

// UpdateReportID sets the "report_id" field to the value that was provided on create.
func (u *InjuryShortMessageUpsert) UpdateReportID() *InjuryShortMessageUpsert {
	u.SetExcluded(injuryshortmessage.FieldReportID)
	return u
}

// SetResponse sets the "response" field.
func (u *InjuryShortMessageUpsert) SetResponse(v string) *InjuryShortMessageUpsert {
	u.Set(injuryshortmessage.FieldResponse, v)
	return u
}

// UpdateResponse sets the "response" field to the value that was provided on create.
func (u *InjuryShortMessageUpsert) UpdateResponse() *InjuryShortMessageUpsert {
	u.SetExcluded(injuryshortmessage.FieldResponse)
	return u
}

// SetMedication sets the "medication" field.
func (u *InjuryShortMessageUpsert) SetMedication(v string) *InjuryShortMessageUpsert {
	u.Set(injuryshortmessage.FieldMedication, v)
	return u
}

// UpdateMedication sets the "medication" field to the value that was provided on create.
func (u *InjuryShortMessageUpsert) UpdateMedication() *InjuryShortMessageUpsert {
	u.SetExcluded(injuryshortmessage.FieldMedication)
	return u
}

// SetDoctorNote sets the "doctor_note" field.
func (u *InjuryShortMessageUpsert) SetDoctorNote(v string) *InjuryShortMessageUpsert {
	u.Set(injuryshortmessage.FieldDoctorNote, v)
	return u
}

// UpdateDoctorNote sets the "doctor_note" field to the value that was provided on create.
func (u *InjuryShortMessageUpsert) UpdateDoctorNote() *InjuryShortMessageUpsert {
	u.SetExcluded(injuryshortmessage.FieldDoctorNote)
	return u
}

// SetAppointmentDate sets the "appointment_date" field.
func (u *InjuryShortMessageUpsert) SetAppointmentDate(v time.Time) *InjuryShortMessageUpsert {
	u.Set(injuryshortmessage.FieldAppointmentDate, v)
	return u
}

// UpdateAppointmentDate sets the "appointment_date" field to the value that was provided on create.
func (u *InjuryShortMessageUpsert) UpdateAppointmentDate() *InjuryShortMessageUpsert {
	u.SetExcluded(injuryshortmessage.FieldAppointmentDate)
	return u
}

// SetAppointmentTime sets the "appointment_time" field.
func (u *InjuryShortMessageUpsert) SetAppointmentTime(v string) *InjuryShortMessageUpsert {
	u.Set(injuryshortmessage.FieldAppointmentTime, v)
	return u
}

// UpdateAppointmentTime sets the "appointment_time" field to the value that was provided on create.
func (u *InjuryShortMessageUpsert) UpdateAppointmentTime() *InjuryShortMessageUpsert {
	u.SetExcluded(injuryshortmessage.FieldAppointmentTime)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.InjuryShortMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(injuryshortmessage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InjuryShortMessageUpsertOne) UpdateNewValues() *InjuryShortMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(injuryshortmessage.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(injuryshortmessage.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InjuryShortMessage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InjuryShortMessageUpsertOne) Ignore() *InjuryShortMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InjuryShortMessageUpsertOne) DoNothing() *InjuryShortMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InjuryShortMessageCreate.OnConflict
// documentation for more info.
func (u *InjuryShortMessageUpsertOne) Update(set func(*InjuryShortMessageUpsert)) *InjuryShortMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InjuryShortMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetReportID sets the "report_id" field.
func (u *InjuryShortMessageUpsertOne) SetReportID(v uuid.UUID) *InjuryShortMessageUpsertOne {
	return u.Update(func(s *InjuryShortMessageUpsert) {
		s.SetReportID(v)
	})
}

// UpdateReportID sets the "report_id" field to the value that was provided on create.
func (u *InjuryShortMessageUpsertOne) UpdateReportID() *InjuryShortMessageUpsertOne {
	return u.Update(func(s *InjuryShortMessageUpsert) {
		s.UpdateReportID()
	})
}

// SetResponse sets the "response" field.
func (u *InjuryShortMessageUpsertOne) SetResponse(v string) *InjuryShortMessageUpsertOne {
	return u.Update(func(s *InjuryShortMessageUpsert) {
		s.SetResponse(v)
	})
}

// UpdateResponse sets the "response" field to the value that was provided on create.
func (u *InjuryShortMessageUpsertOne) UpdateResponse() *InjuryShortMessageUpsertOne {
	return u.Update(func(s *InjuryShortMessageUpsert) {
		s.UpdateResponse()
	})
}

// SetMedication sets the "medication" field.
func (u *InjuryShortMessageUpsertOne) SetMedication(v string) *InjuryShortMessageUpsertOne {
	return u.Update(func(s *InjuryShortMessageUpsert) {
		s.SetMedication(v)
	})
}

// UpdateMedication sets the "medication" field to the value that was provided on create.
func (u *InjuryShortMessageUpsertOne) UpdateMedication() *InjuryShortMessageUpsertOne {
	return u.Update(func(s *InjuryShortMessageUpsert) {
		s.UpdateMedication()
	})
}

// SetDoctorNote sets the "doctor_note" field.
func (u *InjuryShortMessageUpsertOne) SetDoctorNote(v string) *InjuryShortMessageUpsertOne {
	return u.Update(func(s *InjuryShortMessageUpsert) {
		s.SetDoctorNote(v)
	})
}

// UpdateDoctorNote sets the "doctor_note" field to the value that was provided on create.
func (u *InjuryShortMessageUpsertOne) UpdateDoctorNote() *InjuryShortMessageUpsertOne {
	return u.Update(func(s *InjuryShortMessageUpsert) {
		s.UpdateDoctorNote()
	})
}

// SetAppointmentDate sets the "appointment_date" field.
func (u *InjuryShortMessageUpsertOne) SetAppointmentDate(v time.Time) *InjuryShortMessageUpsertOne {
	return u.Update(func(s *InjuryShortMessageUpsert) {
		s.SetAppointmentDate(v)
	})
}

// UpdateAppointmentDate sets the "appointment_date" field to the value that was provided on create.
func (u *InjuryShortMessageUpsertOne) UpdateAppointmentDate() *InjuryShortMessageUpsertOne {
	return u.Update(func(s *InjuryShortMessageUpsert) {
		s.UpdateAppointmentDate()
	})
}

// SetAppointmentTime sets the "appointment_time" field.
func (u *InjuryShortMessageUpsertOne) SetAppointmentTime(v string) *InjuryShortMessageUpsertOne {
	return u.Update(func(s *InjuryShortMessageUpsert) {
		s.SetAppointmentTime(v)
	})
}

// UpdateAppointmentTime sets the "appointment_time" field to the value that was provided on create.
func (u *InjuryShortMessageUpsertOne) UpdateAppointmentTime() *InjuryShortMessageUpsertOne {
	return u.Update(func(s *InjuryShortMessageUpsert) {
		s.UpdateAppointmentTime()
	})
}

// Exec executes the query.
func (u *InjuryShortMessageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for InjuryShortMessageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InjuryShortMessageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InjuryShortMessageUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: InjuryShortMessageUpsertOne.ID is not supported by MySQL driver. Use InjuryShortMessageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InjuryShortMessageUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InjuryShortMessageCreateBulk is the builder for creating many InjuryShortMessage entities in bulk.
type InjuryShortMessageCreateBulk struct {
	config
	err      error
	builders []*InjuryShortMessageCreate
	conflict []sql.ConflictOption
}

// Save creates the InjuryShortMessage entities in the database.
func (_c *InjuryShortMessageCreateBulk) Save(ctx context.Context) ([]*InjuryShortMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InjuryShortMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InjuryShortMessageMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InjuryShortMessageCreateBulk) SaveX(ctx context.Context) []*InjuryShortMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InjuryShortMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InjuryShortMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.InjuryShortMessage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InjuryShortMessageUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *InjuryShortMessageCreateBulk) OnConflict(opts ...sql.ConflictOption) *InjuryShortMessageUpsertBulk {
	_c.conflict = opts
	return &InjuryShortMessageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InjuryShortMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InjuryShortMessageCreateBulk) OnConflictColumns(columns ...string) *InjuryShortMessageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InjuryShortMessageUpsertBulk{
		create: _c,
	}
}

// InjuryShortMessageUpsertBulk is the builder for "upsert"-ing
// a bulk of InjuryShortMessage nodes.
type InjuryShortMessageUpsertBulk struct {
	create *InjuryShortMessageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.InjuryShortMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(injuryshortmessage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InjuryShortMessageUpsertBulk) UpdateNewValues() *InjuryShortMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(injuryshortmessage.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(injuryshortmessage.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InjuryShortMessage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InjuryShortMessageUpsertBulk) Ignore() *InjuryShortMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InjuryShortMessageUpsertBulk) DoNothing() *InjuryShortMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InjuryShortMessageCreateBulk.OnConflict
// documentation for more info.
func (u *InjuryShortMessageUpsertBulk) Update(set func(*InjuryShortMessageUpsert)) *InjuryShortMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InjuryShortMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetReportID sets the "report_id" field.
func (u *InjuryShortMessageUpsertBulk) SetReportID(v uuid.UUID) *InjuryShortMessageUpsertBulk {
	return u.Update(func(s *InjuryShortMessageUpsert) {
		s.SetReportID(v)
	})
}

// UpdateReportID sets the "report_id" field to the value that was provided on create.
func (u *InjuryShortMessageUpsertBulk) UpdateReportID() *InjuryShortMessageUpsertBulk {
	return u.Update(func(s *InjuryShortMessageUpsert) {
		s.UpdateReportID()
	})
}

// SetResponse sets the "response" field.
func (u *InjuryShortMessageUpsertBulk) SetResponse(v string) *InjuryShortMessageUpsertBulk {
	return u.Update(func(s *InjuryShortMessageUpsert) {
		s.SetResponse(v)
	})
}

// UpdateResponse sets the "response" field to the value that was provided on create.
func (u *InjuryShortMessageUpsertBulk) UpdateResponse() *InjuryShortMessageUpsertBulk {
	return u.Update(func(s *InjuryShortMessageUpsert) {
		s.UpdateResponse()
	})
}

// SetMedication sets the "medication" field.
func (u *InjuryShortMessageUpsertBulk) SetMedication(v string) *InjuryShortMessageUpsertBulk {
	return u.Update(func(s *InjuryShortMessageUpsert) {
		s.SetMedication(v)
	})
}

// UpdateMedication sets the "medication" field to the value that was provided on create.
func (u *InjuryShortMessageUpsertBulk) UpdateMedication() *InjuryShortMessageUpsertBulk {
	return u.Update(func(s *InjuryShortMessageUpsert) {
		s.UpdateMedication()
	})
}

// SetDoctorNote sets the "doctor_note" field.
func (u *InjuryShortMessageUpsertBulk) SetDoctorNote(v string) *InjuryShortMessageUpsertBulk {
	return u.Update(func(s *InjuryShortMessageUpsert) {
		s.SetDoctorNote(v)
	})
}

// UpdateDoctorNote sets the "doctor_note" field to the value that was provided on create.
func (u *InjuryShortMessageUpsertBulk) UpdateDoctorNote() *InjuryShortMessageUpsertBulk {
	return u.Update(func(s *InjuryShortMessageUpsert) {
		s.UpdateDoctorNote()
	})
}

// SetAppointmentDate sets the "appointment_date" field.
func (u *InjuryShortMessageUpsertBulk) SetAppointmentDate(v time.Time) *InjuryShortMessageUpsertBulk {
	return u.Update(func(s *InjuryShortMessageUpsert) {
		s.SetAppointmentDate(v)
	})
}

// UpdateAppointmentDate sets the "appointment_date" field to the value that was provided on create.
func (u *InjuryShortMessageUpsertBulk) UpdateAppointmentDate() *InjuryShortMessageUpsertBulk {
	return u.Update(func(s *InjuryShortMessageUpsert) {
		s.UpdateAppointmentDate()
	})
}

// SetAppointmentTime sets the "appointment_time" field.
func (u *InjuryShortMessageUpsertBulk) SetAppointmentTime(v string) *InjuryShortMessageUpsertBulk {
	return u.Update(func(s *InjuryShortMessageUpsert) {
		s.SetAppointmentTime(v)
	})
}

// UpdateAppointmentTime sets the "appointment_time" field to the value that was provided on create.
func (u *InjuryShortMessageUpsertBulk) UpdateAppointmentTime() *InjuryShortMessageUpsertBulk {
	return u.Update(func(s *InjuryShortMessageUpsert) {
		s.UpdateAppointmentTime()
	})
}

// Exec executes the query.
func (u *InjuryShortMessageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the InjuryShortMessageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for InjuryShortMessageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InjuryShortMessageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
