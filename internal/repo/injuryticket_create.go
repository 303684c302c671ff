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
	"github.com/athletiq/athletiq_backend/internal/repo/injuryticket"
	"github.com/google/uuid"
)

// InjuryTicketCreate is the builder for creating a InjuryTicket entity.
type InjuryTicketCreate struct {
	config
	mutation *InjuryTicketMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *InjuryTicketCreate) SetCreatedAt(v time.Time) *InjuryTicketCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InjuryTicketCreate) SetNillableCreatedAt(v *time.Time) *InjuryTicketCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InjuryTicketCreate) SetUpdatedAt(v time.Time) *InjuryTicketCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InjuryTicketCreate) SetNillableUpdatedAt(v *time.Time) *InjuryTicketCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetReportID sets the "report_id" field.
func (_c *InjuryTicketCreate) SetReportID(v uuid.UUID) *InjuryTicketCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *InjuryTicketCreate) SetStatus(v injuryticket.Status) *InjuryTicketCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InjuryTicketCreate) SetNillableStatus(v *injuryticket.Status) *InjuryTicketCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InjuryTicketCreate) SetID(v uuid.UUID) *InjuryTicketCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InjuryTicketCreate) SetNillableID(v *uuid.UUID) *InjuryTicketCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the InjuryTicketMutation object of the builder.
func (_c *InjuryTicketCreate) Mutation() *InjuryTicketMutation {
	return _c.mutation
}

// Save creates the InjuryTicket in the database.
func (_c *InjuryTicketCreate) Save(ctx context.Context) (*InjuryTicket, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InjuryTicketCreate) SaveX(ctx context.Context) *InjuryTicket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InjuryTicketCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InjuryTicketCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InjuryTicketCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := injuryticket.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := injuryticket.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := injuryticket.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := injuryticket.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InjuryTicketCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "InjuryTicket.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "InjuryTicket.updated_at"`)}
	}
	if _, ok := _c.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`repo: missing required field "InjuryTicket.report_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "InjuryTicket.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := injuryticket.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "InjuryTicket.status": %w`, err)}
		}
	}
	return nil
}

func (_c *InjuryTicketCreate) sqlSave(ctx context.Context) (*InjuryTicket, error) {
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

func (_c *InjuryTicketCreate) createSpec() (*InjuryTicket, *sqlgraph.CreateSpec) {
	var (
		_node = &InjuryTicket{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(injuryticket.Table, sqlgraph.NewFieldSpec(injuryticket.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(injuryticket.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(injuryticket.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ReportID(); ok {
		_spec.SetField(injuryticket.FieldReportID, field.TypeUUID, value)
		_node.ReportID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(injuryticket.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.InjuryTicket.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InjuryTicketUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *InjuryTicketCreate) OnConflict(opts ...sql.ConflictOption) *InjuryTicketUpsertOne {
	_c.conflict = opts
	return &InjuryTicketUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InjuryTicket.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InjuryTicketCreate) OnConflictColumns(columns ...string) *InjuryTicketUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InjuryTicketUpsertOne{
		create: _c,
	}
}

type (
	// InjuryTicketUpsertOne is the builder for "upsert"-ing
	//  one InjuryTicket node.
	InjuryTicketUpsertOne struct {
		create *InjuryTicketCreate
	}

	// InjuryTicketUpsert is the "OnConflict" setter.
	InjuryTicketUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *InjuryTicketUpsert) SetUpdatedAt(v time.Time) *InjuryTicketUpsert {
	u.Set(injuryticket.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InjuryTicketUpsert) UpdateUpdatedAt() *InjuryTicketUpsert {
	u.SetExcluded(injuryticket.FieldUpdatedAt)
	return u
}

// SetReportID sets the "report_id" field.
func (u *InjuryTicketUpsert) SetReportID(v uuid.UUID) *InjuryTicketUpsert {
	u.Set(injuryticket.FieldReportID, v)
	return u
}

// UpdateReportID sets the "report_id" field to the value that was provided on create.
func (u *InjuryTicketUpsert) UpdateReportID() *InjuryTicketUpsert {
	u.SetExcluded(injuryticket.FieldReportID)
	return u
}

// SetStatus sets the "status" field.
func (u *InjuryTicketUpsert) SetStatus(v injuryticket.Status) *InjuryTicketUpsert {
	u.Set(injuryticket.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InjuryTicketUpsert) UpdateStatus() *InjuryTicketUpsert {
	u.SetExcluded(injuryticket.FieldStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.InjuryTicket.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(injuryticket.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InjuryTicketUpsertOne) UpdateNewValues() *InjuryTicketUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(injuryticket.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(injuryticket.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InjuryTicket.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InjuryTicketUpsertOne) Ignore() *InjuryTicketUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InjuryTicketUpsertOne) DoNothing() *InjuryTicketUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InjuryTicketCreate.OnConflict
// documentation for more info.
func (u *InjuryTicketUpsertOne) Update(set func(*InjuryTicketUpsert)) *InjuryTicketUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InjuryTicketUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InjuryTicketUpsertOne) SetUpdatedAt(v time.Time) *InjuryTicketUpsertOne {
	return u.Update(func(s *InjuryTicketUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InjuryTicketUpsertOne) UpdateUpdatedAt() *InjuryTicketUpsertOne {
	return u.Update(func(s *InjuryTicketUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetReportID sets the "report_id" field.
func (u *InjuryTicketUpsertOne) SetReportID(v uuid.UUID) *InjuryTicketUpsertOne {
	return u.Update(func(s *InjuryTicketUpsert) {
		s.SetReportID(v)
	})
}

// UpdateReportID sets the "report_id" field to the value that was provided on create.
func (u *InjuryTicketUpsertOne) UpdateReportID() *InjuryTicketUpsertOne {
	return u.Update(func(s *InjuryTicketUpsert) {
		s.UpdateReportID()
	})
}

// SetStatus sets the "status" field.
func (u *InjuryTicketUpsertOne) SetStatus(v injuryticket.Status) *InjuryTicketUpsertOne {
	return u.Update(func(s *InjuryTicketUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InjuryTicketUpsertOne) UpdateStatus() *InjuryTicketUpsertOne {
	return u.Update(func(s *InjuryTicketUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *InjuryTicketUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for InjuryTicketCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InjuryTicketUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InjuryTicketUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: InjuryTicketUpsertOne.ID is not supported by MySQL driver. Use InjuryTicketUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InjuryTicketUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InjuryTicketCreateBulk is the builder for creating many InjuryTicket entities in bulk.
type InjuryTicketCreateBulk struct {
	config
	err      error
	builders []*InjuryTicketCreate
	conflict []sql.ConflictOption
}

// Save creates the InjuryTicket entities in the database.
func (_c *InjuryTicketCreateBulk) Save(ctx context.Context) ([]*InjuryTicket, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InjuryTicket, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InjuryTicketMutation)
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
func (_c *InjuryTicketCreateBulk) SaveX(ctx context.Context) []*InjuryTicket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InjuryTicketCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InjuryTicketCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.InjuryTicket.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InjuryTicketUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *InjuryTicketCreateBulk) OnConflict(opts ...sql.ConflictOption) *InjuryTicketUpsertBulk {
	_c.conflict = opts
	return &InjuryTicketUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InjuryTicket.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InjuryTicketCreateBulk) OnConflictColumns(columns ...string) *InjuryTicketUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InjuryTicketUpsertBulk{
		create: _c,
	}
}

// InjuryTicketUpsertBulk is the builder for "upsert"-ing
// a bulk of InjuryTicket nodes.
type InjuryTicketUpsertBulk struct {
	create *InjuryTicketCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.InjuryTicket.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(injuryticket.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InjuryTicketUpsertBulk) UpdateNewValues() *InjuryTicketUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(injuryticket.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(injuryticket.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InjuryTicket.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InjuryTicketUpsertBulk) Ignore() *InjuryTicketUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InjuryTicketUpsertBulk) DoNothing() *InjuryTicketUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InjuryTicketCreateBulk.OnConflict
// documentation for more info.
func (u *InjuryTicketUpsertBulk) Update(set func(*InjuryTicketUpsert)) *InjuryTicketUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InjuryTicketUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InjuryTicketUpsertBulk) SetUpdatedAt(v time.Time) *InjuryTicketUpsertBulk {
	return u.Update(func(s *InjuryTicketUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InjuryTicketUpsertBulk) UpdateUpdatedAt() *InjuryTicketUpsertBulk {
	return u.Update(func(s *InjuryTicketUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetReportID sets the "report_id" field.
func (u *InjuryTicketUpsertBulk) SetReportID(v uuid.UUID) *InjuryTicketUpsertBulk {
	return u.Update(func(s *InjuryTicketUpsert) {
		s.SetReportID(v)
	})
}

// UpdateReportID sets the "report_id" field to the value that was provided on create.
func (u *InjuryTicketUpsertBulk) UpdateReportID() *InjuryTicketUpsertBulk {
	return u.Update(func(s *InjuryTicketUpsert) {
		s.UpdateReportID()
	})
}

// SetStatus sets the "status" field.
func (u *InjuryTicketUpsertBulk) SetStatus(v injuryticket.Status) *InjuryTicketUpsertBulk {
	return u.Update(func(s *InjuryTicketUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InjuryTicketUpsertBulk) UpdateStatus() *InjuryTicketUpsertBulk {
	return u.Update(func(s *InjuryTicketUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *InjuryTicketUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the InjuryTicketCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for InjuryTicketCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InjuryTicketUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
