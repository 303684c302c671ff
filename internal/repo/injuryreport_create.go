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
	"github.com/athletiq/athletiq_backend/internal/repo/injuryreport"
	"github.com/google/uuid"
)

// InjuryReportCreate is the builder for creating a InjuryReport entity.
type InjuryReportCreate struct {
	config
	mutation *InjuryReportMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *InjuryReportCreate) SetCreatedAt(v time.Time) *InjuryReportCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InjuryReportCreate) SetNillableCreatedAt(v *time.Time) *InjuryReportCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InjuryReportCreate) SetUpdatedAt(v time.Time) *InjuryReportCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InjuryReportCreate) SetNillableUpdatedAt(v *time.Time) *InjuryReportCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetAthleteID sets the "athlete_id" field.
func (_c *InjuryReportCreate) SetAthleteID(v uuid.UUID) *InjuryReportCreate {
	_c.mutation.SetAthleteID(v)
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *InjuryReportCreate) SetDoctorID(v uuid.UUID) *InjuryReportCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *InjuryReportCreate) SetTitle(v string) *InjuryReportCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetInjuryType sets the "injury_type" field.
func (_c *InjuryReportCreate) SetInjuryType(v string) *InjuryReportCreate {
	_c.mutation.SetInjuryType(v)
	return _c
}

// SetBodyPart sets the "body_part" field.
func (_c *InjuryReportCreate) SetBodyPart(v string) *InjuryReportCreate {
	_c.mutation.SetBodyPart(v)
	return _c
}

// SetPainLevel sets the "pain_level" field.
func (_c *InjuryReportCreate) SetPainLevel(v int) *InjuryReportCreate {
	_c.mutation.SetPainLevel(v)
	return _c
}

// SetDateOfInjury sets the "date_of_injury" field.
func (_c *InjuryReportCreate) SetDateOfInjury(v time.Time) *InjuryReportCreate {
	_c.mutation.SetDateOfInjury(v)
	return _c
}

// SetActivityContext sets the "activity_context" field.
func (_c *InjuryReportCreate) SetActivityContext(v string) *InjuryReportCreate {
	_c.mutation.SetActivityContext(v)
	return _c
}

// SetNillableActivityContext sets the "activity_context" field if the given value is not nil.
func (_c *InjuryReportCreate) SetNillableActivityContext(v *string) *InjuryReportCreate {
	if v != nil {
		_c.SetActivityContext(*v)
	}
	return _c
}

// SetSymptoms sets the "symptoms" field.
func (_c *InjuryReportCreate) SetSymptoms(v []string) *InjuryReportCreate {
	_c.mutation.SetSymptoms(v)
	return _c
}

// SetAffectingPerformance sets the "affecting_performance" field.
func (_c *InjuryReportCreate) SetAffectingPerformance(v injuryreport.AffectingPerformance) *InjuryReportCreate {
	_c.mutation.SetAffectingPerformance(v)
	return _c
}

// SetPreviouslyInjured sets the "previously_injured" field.
func (_c *InjuryReportCreate) SetPreviouslyInjured(v bool) *InjuryReportCreate {
	_c.mutation.SetPreviouslyInjured(v)
	return _c
}

// SetNillablePreviouslyInjured sets the "previously_injured" field if the given value is not nil.
func (_c *InjuryReportCreate) SetNillablePreviouslyInjured(v *bool) *InjuryReportCreate {
	if v != nil {
		_c.SetPreviouslyInjured(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *InjuryReportCreate) SetNotes(v string) *InjuryReportCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *InjuryReportCreate) SetNillableNotes(v *string) *InjuryReportCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetImages sets the "images" field.
func (_c *InjuryReportCreate) SetImages(v []string) *InjuryReportCreate {
	_c.mutation.SetImages(v)
	return _c
}

// SetID sets the "id" field.
func (_c *InjuryReportCreate) SetID(v uuid.UUID) *InjuryReportCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InjuryReportCreate) SetNillableID(v *uuid.UUID) *InjuryReportCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the InjuryReportMutation object of the builder.
func (_c *InjuryReportCreate) Mutation() *InjuryReportMutation {
	return _c.mutation
}

// Save creates the InjuryReport in the database.
func (_c *InjuryReportCreate) Save(ctx context.Context) (*InjuryReport, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InjuryReportCreate) SaveX(ctx context.Context) *InjuryReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InjuryReportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InjuryReportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InjuryReportCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := injuryreport.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := injuryreport.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.PreviouslyInjured(); !ok {
		v := injuryreport.DefaultPreviouslyInjured
		_c.mutation.SetPreviouslyInjured(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := injuryreport.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InjuryReportCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "InjuryReport.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "InjuryReport.updated_at"`)}
	}
	if _, ok := _c.mutation.AthleteID(); !ok {
		return &ValidationError{Name: "athlete_id", err: errors.New(`repo: missing required field "InjuryReport.athlete_id"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "InjuryReport.doctor_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "InjuryReport.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := injuryreport.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "InjuryReport.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InjuryType(); !ok {
		return &ValidationError{Name: "injury_type", err: errors.New(`repo: missing required field "InjuryReport.injury_type"`)}
	}
	if v, ok := _c.mutation.InjuryType(); ok {
		if err := injuryreport.InjuryTypeValidator(v); err != nil {
			return &ValidationError{Name: "injury_type", err: fmt.Errorf(`repo: validator failed for field "InjuryReport.injury_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BodyPart(); !ok {
		return &ValidationError{Name: "body_part", err: errors.New(`repo: missing required field "InjuryReport.body_part"`)}
	}
	if v, ok := _c.mutation.BodyPart(); ok {
		if err := injuryreport.BodyPartValidator(v); err != nil {
			return &ValidationError{Name: "body_part", err: fmt.Errorf(`repo: validator failed for field "InjuryReport.body_part": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PainLevel(); !ok {
		return &ValidationError{Name: "pain_level", err: errors.New(`repo: missing required field "InjuryReport.pain_level"`)}
	}
	if v, ok := _c.mutation.PainLevel(); ok {
		if err := injuryreport.PainLevelValidator(v); err != nil {
			return &ValidationError{Name: "pain_level", err: fmt.Errorf(`repo: validator failed for field "InjuryReport.pain_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DateOfInjury(); !ok {
		return &ValidationError{Name: "date_of_injury", err: errors.New(`repo: missing required field "InjuryReport.date_of_injury"`)}
	}
	if v, ok := _c.mutation.ActivityContext(); ok {
		if err := injuryreport.ActivityContextValidator(v); err != nil {
			return &ValidationError{Name: "activity_context", err: fmt.Errorf(`repo: validator failed for field "InjuryReport.activity_context": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AffectingPerformance(); !ok {
		return &ValidationError{Name: "affecting_performance", err: errors.New(`repo: missing required field "InjuryReport.affecting_performance"`)}
	}
	if v, ok := _c.mutation.AffectingPerformance(); ok {
		if err := injuryreport.AffectingPerformanceValidator(v); err != nil {
			return &ValidationError{Name: "affecting_performance", err: fmt.Errorf(`repo: validator failed for field "InjuryReport.affecting_performance": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PreviouslyInjured(); !ok {
		return &ValidationError{Name: "previously_injured", err: errors.New(`repo: missing required field "InjuryReport.previously_injured"`)}
	}
	return nil
}

func (_c *InjuryReportCreate) sqlSave(ctx context.Context) (*InjuryReport, error) {
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

func (_c *InjuryReportCreate) createSpec() (*InjuryReport, *sqlgraph.CreateSpec) {
	var (
		_node = &InjuryReport{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(injuryreport.Table, sqlgraph.NewFieldSpec(injuryreport.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(injuryreport.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(injuryreport.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.AthleteID(); ok {
		_spec.SetField(injuryreport.FieldAthleteID, field.TypeUUID, value)
		_node.AthleteID = value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(injuryreport.FieldDoctorID, field.TypeUUID, value)
		_node.DoctorID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(injuryreport.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.InjuryType(); ok {
		_spec.SetField(injuryreport.FieldInjuryType, field.TypeString, value)
		_node.InjuryType = value
	}
	if value, ok := _c.mutation.BodyPart(); ok {
		_spec.SetField(injuryreport.FieldBodyPart, field.TypeString, value)
		_node.BodyPart = value
	}
	if value, ok := _c.mutation.PainLevel(); ok {
		_spec.SetField(injuryreport.FieldPainLevel, field.TypeInt, value)
		_node.PainLevel = value
	}
	if value, ok := _c.mutation.DateOfInjury(); ok {
		_spec.SetField(injuryreport.FieldDateOfInjury, field.TypeTime, value)
		_node.DateOfInjury = value
	}
	if value, ok := _c.mutation.ActivityContext(); ok {
		_spec.SetField(injuryreport.FieldActivityContext, field.TypeString, value)
		_node.ActivityContext = value
	}
	if value, ok := _c.mutation.Symptoms(); ok {
		_spec.SetField(injuryreport.FieldSymptoms, field.TypeJSON, value)
		_node.Symptoms = value
	}
	if value, ok := _c.mutation.AffectingPerformance(); ok {
		_spec.SetField(injuryreport.FieldAffectingPerformance, field.TypeEnum, value)
		_node.AffectingPerformance = value
	}
	if value, ok := _c.mutation.PreviouslyInjured(); ok {
		_spec.SetField(injuryreport.FieldPreviouslyInjured, field.TypeBool, value)
		_node.PreviouslyInjured = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(injuryreport.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.Images(); ok {
		_spec.SetField(injuryreport.FieldImages, field.TypeJSON, value)
		_node.Images = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.InjuryReport.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InjuryReportUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *InjuryReportCreate) OnConflict(opts ...sql.ConflictOption) *InjuryReportUpsertOne {
	_c.conflict = opts
	return &InjuryReportUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InjuryReport.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InjuryReportCreate) OnConflictColumns(columns ...string) *InjuryReportUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InjuryReportUpsertOne{
		create: _c,
	}
}

type (
	// InjuryReportUpsertOne is the builder for "upsert"-ing
	//  one InjuryReport node.
	InjuryReportUpsertOne struct {
		create *InjuryReportCreate
	}

	// InjuryReportUpsert is the "OnConflict" setter.
	InjuryReportUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *InjuryReportUpsert) SetUpdatedAt(v time.Time) *InjuryReportUpsert {
	u.Set(injuryreport.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InjuryReportUpsert) UpdateUpdatedAt() *InjuryReportUpsert {
	u.SetExcluded(injuryreport.FieldUpdatedAt)
	return u
}

// SetAthleteID sets the "athlete_id" field.
func (u *InjuryReportUpsert) SetAthleteID(v uuid.UUID) *InjuryReportUpsert {
	u.Set(injuryreport.FieldAthleteID, v)
	return u
}

// UpdateAthleteID sets the "athlete_id" field to the value that was provided on create.
func (u *InjuryReportUpsert) UpdateAthleteID() *InjuryReportUpsert {
	u.SetExcluded(injuryreport.FieldAthleteID)
	return u
}

// SetDoctorID sets the "doctor_id" field.
func (u *InjuryReportUpsert) SetDoctorID(v uuid.UUID) *InjuryReportUpsert {
	u.Set(injuryreport.FieldDoctorID, v)
	return u
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *InjuryReportUpsert) UpdateDoctorID() *InjuryReportUpsert {
	u.SetExcluded(injuryreport.FieldDoctorID)
	return u
}

// SetTitle sets the "title" field.
func (u *InjuryReportUpsert) SetTitle(v string) *InjuryReportUpsert {
	u.Set(injuryreport.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *InjuryReportUpsert) UpdateTitle() *InjuryReportUpsert {
	u.SetExcluded(injuryreport.FieldTitle)
	return u
}

// SetInjuryType sets the "injury_type" field.
func (u *InjuryReportUpsert) SetInjuryType(v string) *InjuryReportUpsert {
	u.Set(injuryreport.FieldInjuryType, v)
	return u
}

// UpdateInjuryType sets the "injury_type" field to the value that was provided on create.
func (u *InjuryReportUpsert) UpdateInjuryType() *InjuryReportUpsert {
	u.SetExcluded(injuryreport.FieldInjuryType)
	return u
}

// SetBodyPart sets the "body_part" field.
func (u *InjuryReportUpsert) SetBodyPart(v string) *InjuryReportUpsert {
	u.Set(injuryreport.FieldBodyPart, v)
	return u
}

// UpdateBodyPart sets the "body_part" field to the value that was provided on create.
func (u *InjuryReportUpsert) UpdateBodyPart() *InjuryReportUpsert {
	u.SetExcluded(injuryreport.FieldBodyPart)
	return u
}

// SetPainLevel sets the "pain_level" field.
func (u *InjuryReportUpsert) SetPainLevel(v int) *InjuryReportUpsert {
	u.Set(injuryreport.FieldPainLevel, v)
	return u
}

// UpdatePainLevel sets the "pain_level" field to the value that was provided on create.
func (u *InjuryReportUpsert) UpdatePainLevel() *InjuryReportUpsert {
	u.SetExcluded(injuryreport.FieldPainLevel)
	return u
}

// AddPainLevel adds v to the "pain_level" field.
func (u *InjuryReportUpsert) AddPainLevel(v int) *InjuryReportUpsert {
	u.Add(injuryreport.FieldPainLevel, v)
	return u
}

// SetDateOfInjury sets the "date_of_injury" field.
func (u *InjuryReportUpsert) SetDateOfInjury(v time.Time) *InjuryReportUpsert {
	u.Set(injuryreport.FieldDateOfInjury, v)
	return u
}

// UpdateDateOfInjury sets the "date_of_injury" field to the value that was provided on create.
func (u *InjuryReportUpsert) UpdateDateOfInjury() *InjuryReportUpsert {
	u.SetExcluded(injuryreport.FieldDateOfInjury)
	return u
}

// SetActivityContext sets the "activity_context" field.
func (u *InjuryReportUpsert) SetActivityContext(v string) *InjuryReportUpsert {
	u.Set(injuryreport.FieldActivityContext, v)
	return u
}

// UpdateActivityContext sets the "activity_context" field to the value that was provided on create.
func (u *InjuryReportUpsert) UpdateActivityContext() *InjuryReportUpsert {
	u.SetExcluded(injuryreport.FieldActivityContext)
	return u
}

// ClearActivityContext clears the value of the "activity_context" field.
func (u *InjuryReportUpsert) ClearActivityContext() *InjuryReportUpsert {
	u.SetNull(injuryreport.FieldActivityContext)
	return u
}

// SetSymptoms sets the "symptoms" field.
func (u *InjuryReportUpsert) SetSymptoms(v []string) *InjuryReportUpsert {
	u.Set(injuryreport.FieldSymptoms, v)
	return u
}

// UpdateSymptoms sets the "symptoms" field to the value that was provided on create.
func (u *InjuryReportUpsert) UpdateSymptoms() *InjuryReportUpsert {
	u.SetExcluded(injuryreport.FieldSymptoms)
	return u
}

// ClearSymptoms clears the value of the "symptoms" field.
func (u *InjuryReportUpsert) ClearSymptoms() *InjuryReportUpsert {
	u.SetNull(injuryreport.FieldSymptoms)
	return u
}

// SetAffectingPerformance sets the "affecting_performance" field.
func (u *InjuryReportUpsert) SetAffectingPerformance(v injuryreport.AffectingPerformance) *InjuryReportUpsert {
	u.Set(injuryreport.FieldAffectingPerformance, v)
	return u
}

// UpdateAffectingPerformance sets the "affecting_performance" field to the value that was provided on create.
func (u *InjuryReportUpsert) UpdateAffectingPerformance() *InjuryReportUpsert {
	u.SetExcluded(injuryreport.FieldAffectingPerformance)
	return u
}

// SetPreviouslyInjured sets the "previously_injured" field.
func (u *InjuryReportUpsert) SetPreviouslyInjured(v bool) *InjuryReportUpsert {
	u.Set(injuryreport.FieldPreviouslyInjured, v)
	return u
}

// UpdatePreviouslyInjured sets the "previously_injured" field to the value that was provided on create.
func (u *InjuryReportUpsert) UpdatePreviouslyInjured() *InjuryReportUpsert {
	u.SetExcluded(injuryreport.FieldPreviouslyInjured)
	return u
}

// SetNotes sets the "notes" field.
func (u *InjuryReportUpsert) SetNotes(v string) *InjuryReportUpsert {
	u.Set(injuryreport.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *InjuryReportUpsert) UpdateNotes() *InjuryReportUpsert {
	u.SetExcluded(injuryreport.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *InjuryReportUpsert) ClearNotes() *InjuryReportUpsert {
	u.SetNull(injuryreport.FieldNotes)
	return u
}

// SetImages sets the "images" field.
func (u *InjuryReportUpsert) SetImages(v []string) *InjuryReportUpsert {
	u.Set(injuryreport.FieldImages, v)
	return u
}

// UpdateImages sets the "images" field to the value that was provided on create.
func (u *InjuryReportUpsert) UpdateImages() *InjuryReportUpsert {
	u.SetExcluded(injuryreport.FieldImages)
	return u
}

// ClearImages clears the value of the "images" field.
func (u *InjuryReportUpsert) ClearImages() *InjuryReportUpsert {
	u.SetNull(injuryreport.FieldImages)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.InjuryReport.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(injuryreport.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InjuryReportUpsertOne) UpdateNewValues() *InjuryReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(injuryreport.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(injuryreport.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InjuryReport.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InjuryReportUpsertOne) Ignore() *InjuryReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InjuryReportUpsertOne) DoNothing() *InjuryReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InjuryReportCreate.OnConflict
// documentation for more info.
func (u *InjuryReportUpsertOne) Update(set func(*InjuryReportUpsert)) *InjuryReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InjuryReportUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InjuryReportUpsertOne) SetUpdatedAt(v time.Time) *InjuryReportUpsertOne {
	return u.Update(func(s *InjuryReportUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InjuryReportUpsertOne) UpdateUpdatedAt() *InjuryReportUpsertOne {
	return u.Update(func(s *InjuryReportUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetAthleteID sets the "athlete_id" field.
func (u *InjuryReportUpsertOne) SetAthleteID(v uuid.UUID) *InjuryReportUpsertOne {
	return u.Update(func(s *InjuryReportUpsert) {
		s.SetAthleteID(v)
	})
}

// UpdateAthleteID sets the "athlete_id" field to the value that was provided on create.
func (u *InjuryReportUpsertOne) UpdateAthleteID() *InjuryReportUpsertOne {
	return u.Update(func(s *InjuryReportUpsert) {
		s.UpdateAthleteID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *InjuryReportUpsertOne) SetDoctorID(v uuid.UUID) *InjuryReportUpsertOne {
	return u.Update(func(s *InjuryReportUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *InjuryReportUpsertOne) UpdateDoctorID() *InjuryReportUpsertOne {
	return u.Update(func(s *InjuryReportUpsert) {
		s.UpdateDoctorID()
	})
}

// SetTitle sets the "title" field.
func (u *InjuryReportUpsertOne) SetTitle(v string) *InjuryReportUpsertOne {
	return u.Update(func(s *InjuryReportUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *InjuryReportUpsertOne) UpdateTitle() *InjuryReportUpsertOne {
	return u.Update(func(s *InjuryReportUpsert) {
		s.UpdateTitle()
	})
}

// SetInjuryType sets the "injury_type" field.
func (u *InjuryReportUpsertOne) SetInjuryType(v string) *InjuryReportUpsertOne {
	return u.Update(func(s *InjuryReportUpsert) {
		s.SetInjuryType(v)
	})
}

// UpdateInjuryType sets the "injury_type" field to the value that was provided on create.
func (u *InjuryReportUpsertOne) UpdateInjuryType() *InjuryReportUpsertOne {
	return u.Update(func(s *InjuryReportUpsert) {
		s.UpdateInjuryType()
	})
}

// SetBodyPart sets the "body_part" field.
func (u *InjuryReportUpsertOne) SetBodyPart(v string) *InjuryReportUpsertOne {
	return u.Update(func(s *InjuryReportUpsert) {
		s.SetBodyPart(v)
	})
}

// UpdateBodyPart sets the "body_part" field to the value that was provided on create.
func (u *InjuryReportUpsertOne) UpdateBodyPart() *InjuryReportUpsertOne {
	return u.Update(func(s *InjuryReportUpsert) {
		s.UpdateBodyPart()
	})
}

// SetPainLevel sets the "pain_level" field.
func (u *InjuryReportUpsertOne) SetPainLevel(v int) *InjuryReportUpsertOne {
	return u.Update(func(s *InjuryReportUpsert) {
		s.SetPainLevel(v)
	})
}

// AddPainLevel adds v to the "pain_level" field.
func (u *InjuryReportUpsertOne) AddPainLevel(v int) *InjuryReportUpsertOne {
	return u.Update(func(s *InjuryReportUpsert) {
		s.AddPainLevel(v)
	})
}

// UpdatePainLevel sets the "pain_level" field to the value that was provided on create.
func (u *InjuryReportUpsertOne) UpdatePainLevel() *InjuryReportUpsertOne {
	return u.Update(func(s *InjuryReportUpsert) {
		s.UpdatePainLevel()
	})
}

// SetDateOfInjury sets the "date_of_injury" field.
func (u *InjuryReportUpsertOne) SetDateOfInjury(v time.Time) *InjuryReportUpsertOne {
	return u.Update(func(s *InjuryReportUpsert) {
		s.SetDateOfInjury(v)
	})
}

// UpdateDateOfInjury sets the "date_of_injury" field to the value that was provided on create.
func (u *InjuryReportUpsertOne) UpdateDateOfInjury() *InjuryReportUpsertOne {
	return u.Update(func(s *InjuryReportUpsert) {
		s.UpdateDateOfInjury()
	})
}

// SetActivityContext sets the "activity_context" field.
func (u *InjuryReportUpsertOne) SetActivityContext(v string) *InjuryReportUpsertOne {
	return u.Update(func(s *InjuryReportUpsert) {
		s.SetActivityContext(v)
	})
}

// UpdateActivityContext sets the "activity_context" field to the value that was provided on create.
func (u *InjuryReportUpsertOne) UpdateActivityContext() *InjuryReportUpsertOne {
	return u.Update(func(s *InjuryReportUpsert) {
		s.UpdateActivityContext()
	})
}

// ClearActivityContext clears the value of the "activity_context" field.
func (u *InjuryReportUpsertOne) ClearActivityContext() *InjuryReportUpsertOne {
	return u.Update(func(s *InjuryReportUpsert) {
		s.ClearActivityContext()
	})
}

// SetSymptoms sets the "symptoms" field.
func (u *InjuryReportUpsertOne) SetSymptoms(v []string) *InjuryReportUpsertOne {
	return u.Update(func(s *InjuryReportUpsert) {
		s.SetSymptoms(v)
	})
}

// UpdateSymptoms sets the "symptoms" field to the value that was provided on create.
func (u *InjuryReportUpsertOne) UpdateSymptoms() *InjuryReportUpsertOne {
	return u.Update(func(s *InjuryReportUpsert) {
		s.UpdateSymptoms()
	})
}

// ClearSymptoms clears the value of the "symptoms" field.
func (u *InjuryReportUpsertOne) ClearSymptoms() *InjuryReportUpsertOne {
	return u.Update(func(s *InjuryReportUpsert) {
		s.ClearSymptoms()
	})
}

// SetAffectingPerformance sets the "affecting_performance" field.
func (u *InjuryReportUpsertOne) SetAffectingPerformance(v injuryreport.AffectingPerformance) *InjuryReportUpsertOne {
	return u.Update(func(s *InjuryReportUpsert) {
		s.SetAffectingPerformance(v)
	})
}

// UpdateAffectingPerformance sets the "affecting_performance" field to the value that was provided on create.
func (u *InjuryReportUpsertOne) UpdateAffectingPerformance() *InjuryReportUpsertOne {
	return u.Update(func(s *InjuryReportUpsert) {
		s.UpdateAffectingPerformance()
	})
}

// SetPreviouslyInjured sets the "previously_injured" field.
func (u *InjuryReportUpsertOne) SetPreviouslyInjured(v bool) *InjuryReportUpsertOne {
	return u.Update(func(s *InjuryReportUpsert) {
		s.SetPreviouslyInjured(v)
	})
}

// UpdatePreviouslyInjured sets the "previously_injured" field to the value that was provided on create.
func (u *InjuryReportUpsertOne) UpdatePreviouslyInjured() *InjuryReportUpsertOne {
	return u.Update(func(s *InjuryReportUpsert) {
		s.UpdatePreviouslyInjured()
	})
}

// SetNotes sets the "notes" field.
func (u *InjuryReportUpsertOne) SetNotes(v string) *InjuryReportUpsertOne {
	return u.Update(func(s *InjuryReportUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *InjuryReportUpsertOne) UpdateNotes() *InjuryReportUpsertOne {
	return u.Update(func(s *InjuryReportUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *InjuryReportUpsertOne) ClearNotes() *InjuryReportUpsertOne {
	return u.Update(func(s *InjuryReportUpsert) {
		s.ClearNotes()
	})
}

// SetImages sets the "images" field.
func (u *InjuryReportUpsertOne) SetImages(v []string) *InjuryReportUpsertOne {
	return u.Update(func(s *InjuryReportUpsert) {
		s.SetImages(v)
	})
}

// UpdateImages sets the "images" field to the value that was provided on create.
func (u *InjuryReportUpsertOne) UpdateImages() *InjuryReportUpsertOne {
	return u.Update(func(s *InjuryReportUpsert) {
		s.UpdateImages()
	})
}

// ClearImages clears the value of the "images" field.
func (u *InjuryReportUpsertOne) ClearImages() *InjuryReportUpsertOne {
	return u.Update(func(s *InjuryReportUpsert) {
		s.ClearImages()
	})
}

// Exec executes the query.
func (u *InjuryReportUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for InjuryReportCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InjuryReportUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InjuryReportUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: InjuryReportUpsertOne.ID is not supported by MySQL driver. Use InjuryReportUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InjuryReportUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InjuryReportCreateBulk is the builder for creating many InjuryReport entities in bulk.
type InjuryReportCreateBulk struct {
	config
	err      error
	builders []*InjuryReportCreate
	conflict []sql.ConflictOption
}

// Save creates the InjuryReport entities in the database.
func (_c *InjuryReportCreateBulk) Save(ctx context.Context) ([]*InjuryReport, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InjuryReport, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InjuryReportMutation)
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
func (_c *InjuryReportCreateBulk) SaveX(ctx context.Context) []*InjuryReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InjuryReportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InjuryReportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.InjuryReport.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InjuryReportUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *InjuryReportCreateBulk) OnConflict(opts ...sql.ConflictOption) *InjuryReportUpsertBulk {
	_c.conflict = opts
	return &InjuryReportUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InjuryReport.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InjuryReportCreateBulk) OnConflictColumns(columns ...string) *InjuryReportUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InjuryReportUpsertBulk{
		create: _c,
	}
}

// InjuryReportUpsertBulk is the builder for "upsert"-ing
// a bulk of InjuryReport nodes.
type InjuryReportUpsertBulk struct {
	create *InjuryReportCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.InjuryReport.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(injuryreport.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InjuryReportUpsertBulk) UpdateNewValues() *InjuryReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(injuryreport.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(injuryreport.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InjuryReport.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InjuryReportUpsertBulk) Ignore() *InjuryReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InjuryReportUpsertBulk) DoNothing() *InjuryReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InjuryReportCreateBulk.OnConflict
// documentation for more info.
func (u *InjuryReportUpsertBulk) Update(set func(*InjuryReportUpsert)) *InjuryReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InjuryReportUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InjuryReportUpsertBulk) SetUpdatedAt(v time.Time) *InjuryReportUpsertBulk {
	return u.Update(func(s *InjuryReportUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InjuryReportUpsertBulk) UpdateUpdatedAt() *InjuryReportUpsertBulk {
	return u.Update(func(s *InjuryReportUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetAthleteID sets the "athlete_id" field.
func (u *InjuryReportUpsertBulk) SetAthleteID(v uuid.UUID) *InjuryReportUpsertBulk {
	return u.Update(func(s *InjuryReportUpsert) {
		s.SetAthleteID(v)
	})
}

// UpdateAthleteID sets the "athlete_id" field to the value that was provided on create.
func (u *InjuryReportUpsertBulk) UpdateAthleteID() *InjuryReportUpsertBulk {
	return u.Update(func(s *InjuryReportUpsert) {
		s.UpdateAthleteID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *InjuryReportUpsertBulk) SetDoctorID(v uuid.UUID) *InjuryReportUpsertBulk {
	return u.Update(func(s *InjuryReportUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *InjuryReportUpsertBulk) UpdateDoctorID() *InjuryReportUpsertBulk {
	return u.Update(func(s *InjuryReportUpsert) {
		s.UpdateDoctorID()
	})
}

// SetTitle sets the "title" field.
func (u *InjuryReportUpsertBulk) SetTitle(v string) *InjuryReportUpsertBulk {
	return u.Update(func(s *InjuryReportUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *InjuryReportUpsertBulk) UpdateTitle() *InjuryReportUpsertBulk {
	return u.Update(func(s *InjuryReportUpsert) {
		s.UpdateTitle()
	})
}

// SetInjuryType sets the "injury_type" field.
func (u *InjuryReportUpsertBulk) SetInjuryType(v string) *InjuryReportUpsertBulk {
	return u.Update(func(s *InjuryReportUpsert) {
		s.SetInjuryType(v)
	})
}

// UpdateInjuryType sets the "injury_type" field to the value that was provided on create.
func (u *InjuryReportUpsertBulk) UpdateInjuryType() *InjuryReportUpsertBulk {
	return u.Update(func(s *InjuryReportUpsert) {
		s.UpdateInjuryType()
	})
}

// SetBodyPart sets the "body_part" field.
func (u *InjuryReportUpsertBulk) SetBodyPart(v string) *InjuryReportUpsertBulk {
	return u.Update(func(s *InjuryReportUpsert) {
		s.SetBodyPart(v)
	})
}

// UpdateBodyPart sets the "body_part" field to the value that was provided on create.
func (u *InjuryReportUpsertBulk) UpdateBodyPart() *InjuryReportUpsertBulk {
	return u.Update(func(s *InjuryReportUpsert) {
		s.UpdateBodyPart()
	})
}

// SetPainLevel sets the "pain_level" field.
func (u *InjuryReportUpsertBulk) SetPainLevel(v int) *InjuryReportUpsertBulk {
	return u.Update(func(s *InjuryReportUpsert) {
		s.SetPainLevel(v)
	})
}

// AddPainLevel adds v to the "pain_level" field.
func (u *InjuryReportUpsertBulk) AddPainLevel(v int) *InjuryReportUpsertBulk {
	return u.Update(func(s *InjuryReportUpsert) {
		s.AddPainLevel(v)
	})
}

// UpdatePainLevel sets the "pain_level" field to the value that was provided on create.
func (u *InjuryReportUpsertBulk) UpdatePainLevel() *InjuryReportUpsertBulk {
	return u.Update(func(s *InjuryReportUpsert) {
		s.UpdatePainLevel()
	})
}

// SetDateOfInjury sets the "date_of_injury" field.
func (u *InjuryReportUpsertBulk) SetDateOfInjury(v time.Time) *InjuryReportUpsertBulk {
	return u.Update(func(s *InjuryReportUpsert) {
		s.SetDateOfInjury(v)
	})
}

// UpdateDateOfInjury sets the "date_of_injury" field to the value that was provided on create.
func (u *InjuryReportUpsertBulk) UpdateDateOfInjury() *InjuryReportUpsertBulk {
	return u.Update(func(s *InjuryReportUpsert) {
		s.UpdateDateOfInjury()
	})
}

// SetActivityContext sets the "activity_context" field.
func (u *InjuryReportUpsertBulk) SetActivityContext(v string) *InjuryReportUpsertBulk {
	return u.Update(func(s *InjuryReportUpsert) {
		s.SetActivityContext(v)
	})
}

// UpdateActivityContext sets the "activity_context" field to the value that was provided on create.
func (u *InjuryReportUpsertBulk) UpdateActivityContext() *InjuryReportUpsertBulk {
	return u.Update(func(s *InjuryReportUpsert) {
		s.UpdateActivityContext()
	})
}

// ClearActivityContext clears the value of the "activity_context" field.
func (u *InjuryReportUpsertBulk) ClearActivityContext() *InjuryReportUpsertBulk {
	return u.Update(func(s *InjuryReportUpsert) {
		s.ClearActivityContext()
	})
}

// SetSymptoms sets the "symptoms" field.
func (u *InjuryReportUpsertBulk) SetSymptoms(v []string) *InjuryReportUpsertBulk {
	return u.Update(func(s *InjuryReportUpsert) {
		s.SetSymptoms(v)
	})
}

// UpdateSymptoms sets the "symptoms" field to the value that was provided on create.
func (u *InjuryReportUpsertBulk) UpdateSymptoms() *InjuryReportUpsertBulk {
	return u.Update(func(s *InjuryReportUpsert) {
		s.UpdateSymptoms()
	})
}

// ClearSymptoms clears the value of the "symptoms" field.
func (u *InjuryReportUpsertBulk) ClearSymptoms() *InjuryReportUpsertBulk {
	return u.Update(func(s *InjuryReportUpsert) {
		s.ClearSymptoms()
	})
}

// SetAffectingPerformance sets the "affecting_performance" field.
func (u *InjuryReportUpsertBulk) SetAffectingPerformance(v injuryreport.AffectingPerformance) *InjuryReportUpsertBulk {
	return u.Update(func(s *InjuryReportUpsert) {
		s.SetAffectingPerformance(v)
	})
}

// UpdateAffectingPerformance sets the "affecting_performance" field to the value that was provided on create.
func (u *InjuryReportUpsertBulk) UpdateAffectingPerformance() *InjuryReportUpsertBulk {
	return u.Update(func(s *InjuryReportUpsert) {
		s.UpdateAffectingPerformance()
	})
}

// SetPreviouslyInjured sets the "previously_injured" field.
func (u *InjuryReportUpsertBulk) SetPreviouslyInjured(v bool) *InjuryReportUpsertBulk {
	return u.Update(func(s *InjuryReportUpsert) {
		s.SetPreviouslyInjured(v)
	})
}

// UpdatePreviouslyInjured sets the "previously_injured" field to the value that was provided on create.
func (u *InjuryReportUpsertBulk) UpdatePreviouslyInjured() *InjuryReportUpsertBulk {
	return u.Update(func(s *InjuryReportUpsert) {
		s.UpdatePreviouslyInjured()
	})
}

// SetNotes sets the "notes" field.
func (u *InjuryReportUpsertBulk) SetNotes(v string) *InjuryReportUpsertBulk {
	return u.Update(func(s *InjuryReportUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *InjuryReportUpsertBulk) UpdateNotes() *InjuryReportUpsertBulk {
	return u.Update(func(s *InjuryReportUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *InjuryReportUpsertBulk) ClearNotes() *InjuryReportUpsertBulk {
	return u.Update(func(s *InjuryReportUpsert) {
		s.ClearNotes()
	})
}

// SetImages sets the "images" field.
func (u *InjuryReportUpsertBulk) SetImages(v []string) *InjuryReportUpsertBulk {
	return u.Update(func(s *InjuryReportUpsert) {
		s.SetImages(v)
	})
}

// UpdateImages sets the "images" field to the value that was provided on create.
func (u *InjuryReportUpsertBulk) UpdateImages() *InjuryReportUpsertBulk {
	return u.Update(func(s *InjuryReportUpsert) {
		s.UpdateImages()
	})
}

// ClearImages clears the value of the "images" field.
func (u *InjuryReportUpsertBulk) ClearImages() *InjuryReportUpsertBulk {
	return u.Update(func(s *InjuryReportUpsert) {
		s.ClearImages()
	})
}

// Exec executes the query.
func (u *InjuryReportUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the InjuryReportCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for InjuryReportCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InjuryReportUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
