// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/athletiq/athletiq_backend/internal/repo/injuryreport"
	"github.com/athletiq/athletiq_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// InjuryReportUpdate is the builder for updating InjuryReport entities.
type InjuryReportUpdate struct {
	config
	hooks    []Hook
	mutation *InjuryReportMutation
}

// Where appends a list predicates to the InjuryReportUpdate builder.
func (_u *InjuryReportUpdate) Where(ps ...predicate.InjuryReport) *InjuryReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InjuryReportUpdate) SetUpdatedAt(v time.Time) *InjuryReportUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAthleteID sets the "athlete_id" field.
func (_u *InjuryReportUpdate) SetAthleteID(v uuid.UUID) *InjuryReportUpdate {
	_u.mutation.SetAthleteID(v)
	return _u
}

// SetNillableAthleteID sets the "athlete_id" field if the given value is not nil.
func (_u *InjuryReportUpdate) SetNillableAthleteID(v *uuid.UUID) *InjuryReportUpdate {
	if v != nil {
		_u.SetAthleteID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *InjuryReportUpdate) SetDoctorID(v uuid.UUID) *InjuryReportUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *InjuryReportUpdate) SetNillableDoctorID(v *uuid.UUID) *InjuryReportUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *InjuryReportUpdate) SetTitle(v string) *InjuryReportUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *InjuryReportUpdate) SetNillableTitle(v *string) *InjuryReportUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetInjuryType sets the "injury_type" field.
func (_u *InjuryReportUpdate) SetInjuryType(v string) *InjuryReportUpdate {
	_u.mutation.SetInjuryType(v)
	return _u
}

// SetNillableInjuryType sets the "injury_type" field if the given value is not nil.
func (_u *InjuryReportUpdate) SetNillableInjuryType(v *string) *InjuryReportUpdate {
	if v != nil {
		_u.SetInjuryType(*v)
	}
	return _u
}

// SetBodyPart sets the "body_part" field.
func (_u *InjuryReportUpdate) SetBodyPart(v string) *InjuryReportUpdate {
	_u.mutation.SetBodyPart(v)
	return _u
}

// SetNillableBodyPart sets the "body_part" field if the given value is not nil.
func (_u *InjuryReportUpdate) SetNillableBodyPart(v *string) *InjuryReportUpdate {
	if v != nil {
		_u.SetBodyPart(*v)
	}
	return _u
}

// SetPainLevel sets the "pain_level" field.
func (_u *InjuryReportUpdate) SetPainLevel(v int) *InjuryReportUpdate {
	_u.mutation.ResetPainLevel()
	_u.mutation.SetPainLevel(v)
	return _u
}

// SetNillablePainLevel sets the "pain_level" field if the given value is not nil.
func (_u *InjuryReportUpdate) SetNillablePainLevel(v *int) *InjuryReportUpdate {
	if v != nil {
		_u.SetPainLevel(*v)
	}
	return _u
}

// AddPainLevel adds value to the "pain_level" field.
func (_u *InjuryReportUpdate) AddPainLevel(v int) *InjuryReportUpdate {
	_u.mutation.AddPainLevel(v)
	return _u
}

// SetDateOfInjury sets the "date_of_injury" field.
func (_u *InjuryReportUpdate) SetDateOfInjury(v time.Time) *InjuryReportUpdate {
	_u.mutation.SetDateOfInjury(v)
	return _u
}

// SetNillableDateOfInjury sets the "date_of_injury" field if the given value is not nil.
func (_u *InjuryReportUpdate) SetNillableDateOfInjury(v *time.Time) *InjuryReportUpdate {
	if v != nil {
		_u.SetDateOfInjury(*v)
	}
	return _u
}

// SetActivityContext sets the "activity_context" field.
func (_u *InjuryReportUpdate) SetActivityContext(v string) *InjuryReportUpdate {
	_u.mutation.SetActivityContext(v)
	return _u
}

// SetNillableActivityContext sets the "activity_context" field if the given value is not nil.
func (_u *InjuryReportUpdate) SetNillableActivityContext(v *string) *InjuryReportUpdate {
	if v != nil {
		_u.SetActivityContext(*v)
	}
	return _u
}

// ClearActivityContext clears the value of the "activity_context" field.
func (_u *InjuryReportUpdate) ClearActivityContext() *InjuryReportUpdate {
	_u.mutation.ClearActivityContext()
	return _u
}

// SetSymptoms sets the "symptoms" field.
func (_u *InjuryReportUpdate) SetSymptoms(v []string) *InjuryReportUpdate {
	_u.mutation.SetSymptoms(v)
	return _u
}

// AppendSymptoms appends value to the "symptoms" field.
func (_u *InjuryReportUpdate) AppendSymptoms(v []string) *InjuryReportUpdate {
	_u.mutation.AppendSymptoms(v)
	return _u
}

// ClearSymptoms clears the value of the "symptoms" field.
func (_u *InjuryReportUpdate) ClearSymptoms() *InjuryReportUpdate {
	_u.mutation.ClearSymptoms()
	return _u
}

// SetAffectingPerformance sets the "affecting_performance" field.
func (_u *InjuryReportUpdate) SetAffectingPerformance(v injuryreport.AffectingPerformance) *InjuryReportUpdate {
	_u.mutation.SetAffectingPerformance(v)
	return _u
}

// SetNillableAffectingPerformance sets the "affecting_performance" field if the given value is not nil.
func (_u *InjuryReportUpdate) SetNillableAffectingPerformance(v *injuryreport.AffectingPerformance) *InjuryReportUpdate {
	if v != nil {
		_u.SetAffectingPerformance(*v)
	}
	return _u
}

// SetPreviouslyInjured sets the "previously_injured" field.
func (_u *InjuryReportUpdate) SetPreviouslyInjured(v bool) *InjuryReportUpdate {
	_u.mutation.SetPreviouslyInjured(v)
	return _u
}

// SetNillablePreviouslyInjured sets the "previously_injured" field if the given value is not nil.
func (_u *InjuryReportUpdate) SetNillablePreviouslyInjured(v *bool) *InjuryReportUpdate {
	if v != nil {
		_u.SetPreviouslyInjured(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *InjuryReportUpdate) SetNotes(v string) *InjuryReportUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *InjuryReportUpdate) SetNillableNotes(v *string) *InjuryReportUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *InjuryReportUpdate) ClearNotes() *InjuryReportUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetImages sets the "images" field.
func (_u *InjuryReportUpdate) SetImages(v []string) *InjuryReportUpdate {
	_u.mutation.SetImages(v)
	return _u
}

// AppendImages appends value to the "images" field.
func (_u *InjuryReportUpdate) AppendImages(v []string) *InjuryReportUpdate {
	_u.mutation.AppendImages(v)
	return _u
}

// ClearImages clears the value of the "images" field.
func (_u *InjuryReportUpdate) ClearImages() *InjuryReportUpdate {
	_u.mutation.ClearImages()
	return _u
}

// Mutation returns the InjuryReportMutation object of the builder.
func (_u *InjuryReportUpdate) Mutation() *InjuryReportMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InjuryReportUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InjuryReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InjuryReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InjuryReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InjuryReportUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := injuryreport.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InjuryReportUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := injuryreport.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "InjuryReport.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InjuryType(); ok {
		if err := injuryreport.InjuryTypeValidator(v); err != nil {
			return &ValidationError{Name: "injury_type", err: fmt.Errorf(`repo: validator failed for field "InjuryReport.injury_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BodyPart(); ok {
		if err := injuryreport.BodyPartValidator(v); err != nil {
			return &ValidationError{Name: "body_part", err: fmt.Errorf(`repo: validator failed for field "InjuryReport.body_part": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PainLevel(); ok {
		if err := injuryreport.PainLevelValidator(v); err != nil {
			return &ValidationError{Name: "pain_level", err: fmt.Errorf(`repo: validator failed for field "InjuryReport.pain_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActivityContext(); ok {
		if err := injuryreport.ActivityContextValidator(v); err != nil {
			return &ValidationError{Name: "activity_context", err: fmt.Errorf(`repo: validator failed for field "InjuryReport.activity_context": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AffectingPerformance(); ok {
		if err := injuryreport.AffectingPerformanceValidator(v); err != nil {
			return &ValidationError{Name: "affecting_performance", err: fmt.Errorf(`repo: validator failed for field "InjuryReport.affecting_performance": %w`, err)}
		}
	}
	return nil
}

func (_u *InjuryReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(injuryreport.Table, injuryreport.Columns, sqlgraph.NewFieldSpec(injuryreport.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(injuryreport.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AthleteID(); ok {
		_spec.SetField(injuryreport.FieldAthleteID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(injuryreport.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(injuryreport.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.InjuryType(); ok {
		_spec.SetField(injuryreport.FieldInjuryType, field.TypeString, value)
	}
	if value, ok := _u.mutation.BodyPart(); ok {
		_spec.SetField(injuryreport.FieldBodyPart, field.TypeString, value)
	}
	if value, ok := _u.mutation.PainLevel(); ok {
		_spec.SetField(injuryreport.FieldPainLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPainLevel(); ok {
		_spec.AddField(injuryreport.FieldPainLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DateOfInjury(); ok {
		_spec.SetField(injuryreport.FieldDateOfInjury, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ActivityContext(); ok {
		_spec.SetField(injuryreport.FieldActivityContext, field.TypeString, value)
	}
	if _u.mutation.ActivityContextCleared() {
		_spec.ClearField(injuryreport.FieldActivityContext, field.TypeString)
	}
	if value, ok := _u.mutation.Symptoms(); ok {
		_spec.SetField(injuryreport.FieldSymptoms, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSymptoms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, injuryreport.FieldSymptoms, value)
		})
	}
	if _u.mutation.SymptomsCleared() {
		_spec.ClearField(injuryreport.FieldSymptoms, field.TypeJSON)
	}
	if value, ok := _u.mutation.AffectingPerformance(); ok {
		_spec.SetField(injuryreport.FieldAffectingPerformance, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PreviouslyInjured(); ok {
		_spec.SetField(injuryreport.FieldPreviouslyInjured, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(injuryreport.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(injuryreport.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Images(); ok {
		_spec.SetField(injuryreport.FieldImages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, injuryreport.FieldImages, value)
		})
	}
	if _u.mutation.ImagesCleared() {
		_spec.ClearField(injuryreport.FieldImages, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{injuryreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InjuryReportUpdateOne is the builder for updating a single InjuryReport entity.
type InjuryReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InjuryReportMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InjuryReportUpdateOne) SetUpdatedAt(v time.Time) *InjuryReportUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAthleteID sets the "athlete_id" field.
func (_u *InjuryReportUpdateOne) SetAthleteID(v uuid.UUID) *InjuryReportUpdateOne {
	_u.mutation.SetAthleteID(v)
	return _u
}

// SetNillableAthleteID sets the "athlete_id" field if the given value is not nil.
func (_u *InjuryReportUpdateOne) SetNillableAthleteID(v *uuid.UUID) *InjuryReportUpdateOne {
	if v != nil {
		_u.SetAthleteID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *InjuryReportUpdateOne) SetDoctorID(v uuid.UUID) *InjuryReportUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *InjuryReportUpdateOne) SetNillableDoctorID(v *uuid.UUID) *InjuryReportUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *InjuryReportUpdateOne) SetTitle(v string) *InjuryReportUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *InjuryReportUpdateOne) SetNillableTitle(v *string) *InjuryReportUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetInjuryType sets the "injury_type" field.
func (_u *InjuryReportUpdateOne) SetInjuryType(v string) *InjuryReportUpdateOne {
	_u.mutation.SetInjuryType(v)
	return _u
}

// SetNillableInjuryType sets the "injury_type" field if the given value is not nil.
func (_u *InjuryReportUpdateOne) SetNillableInjuryType(v *string) *InjuryReportUpdateOne {
	if v != nil {
		_u.SetInjuryType(*v)
	}
	return _u
}

// SetBodyPart sets the "body_part" field.
func (_u *InjuryReportUpdateOne) SetBodyPart(v string) *InjuryReportUpdateOne {
	_u.mutation.SetBodyPart(v)
	return _u
}

// SetNillableBodyPart sets the "body_part" field if the given value is not nil.
func (_u *InjuryReportUpdateOne) SetNillableBodyPart(v *string) *InjuryReportUpdateOne {
	if v != nil {
		_u.SetBodyPart(*v)
	}
	return _u
}

// SetPainLevel sets the "pain_level" field.
func (_u *InjuryReportUpdateOne) SetPainLevel(v int) *InjuryReportUpdateOne {
	_u.mutation.ResetPainLevel()
	_u.mutation.SetPainLevel(v)
	return _u
}

// SetNillablePainLevel sets the "pain_level" field if the given value is not nil.
func (_u *InjuryReportUpdateOne) SetNillablePainLevel(v *int) *InjuryReportUpdateOne {
	if v != nil {
		_u.SetPainLevel(*v)
	}
	return _u
}

// AddPainLevel adds value to the "pain_level" field.
func (_u *InjuryReportUpdateOne) AddPainLevel(v int) *InjuryReportUpdateOne {
	_u.mutation.AddPainLevel(v)
	return _u
}

// SetDateOfInjury sets the "date_of_injury" field.
func (_u *InjuryReportUpdateOne) SetDateOfInjury(v time.Time) *InjuryReportUpdateOne {
	_u.mutation.SetDateOfInjury(v)
	return _u
}

// SetNillableDateOfInjury sets the "date_of_injury" field if the given value is not nil.
func (_u *InjuryReportUpdateOne) SetNillableDateOfInjury(v *time.Time) *InjuryReportUpdateOne {
	if v != nil {
		_u.SetDateOfInjury(*v)
	}
	return _u
}

// SetActivityContext sets the "activity_context" field.
func (_u *InjuryReportUpdateOne) SetActivityContext(v string) *InjuryReportUpdateOne {
	_u.mutation.SetActivityContext(v)
	return _u
}

// SetNillableActivityContext sets the "activity_context" field if the given value is not nil.
func (_u *InjuryReportUpdateOne) SetNillableActivityContext(v *string) *InjuryReportUpdateOne {
	if v != nil {
		_u.SetActivityContext(*v)
	}
	return _u
}

// ClearActivityContext clears the value of the "activity_context" field.
func (_u *InjuryReportUpdateOne) ClearActivityContext() *InjuryReportUpdateOne {
	_u.mutation.ClearActivityContext()
	return _u
}

// SetSymptoms sets the "symptoms" field.
func (_u *InjuryReportUpdateOne) SetSymptoms(v []string) *InjuryReportUpdateOne {
	_u.mutation.SetSymptoms(v)
	return _u
}

// AppendSymptoms appends value to the "symptoms" field.
func (_u *InjuryReportUpdateOne) AppendSymptoms(v []string) *InjuryReportUpdateOne {
	_u.mutation.AppendSymptoms(v)
	return _u
}

// ClearSymptoms clears the value of the "symptoms" field.
func (_u *InjuryReportUpdateOne) ClearSymptoms() *InjuryReportUpdateOne {
	_u.mutation.ClearSymptoms()
	return _u
}

// SetAffectingPerformance sets the "affecting_performance" field.
func (_u *InjuryReportUpdateOne) SetAffectingPerformance(v injuryreport.AffectingPerformance) *InjuryReportUpdateOne {
	_u.mutation.SetAffectingPerformance(v)
	return _u
}

// SetNillableAffectingPerformance sets the "affecting_performance" field if the given value is not nil.
func (_u *InjuryReportUpdateOne) SetNillableAffectingPerformance(v *injuryreport.AffectingPerformance) *InjuryReportUpdateOne {
	if v != nil {
		_u.SetAffectingPerformance(*v)
	}
	return _u
}

// SetPreviouslyInjured sets the "previously_injured" field.
func (_u *InjuryReportUpdateOne) SetPreviouslyInjured(v bool) *InjuryReportUpdateOne {
	_u.mutation.SetPreviouslyInjured(v)
	return _u
}

// SetNillablePreviouslyInjured sets the "previously_injured" field if the given value is not nil.
func (_u *InjuryReportUpdateOne) SetNillablePreviouslyInjured(v *bool) *InjuryReportUpdateOne {
	if v != nil {
		_u.SetPreviouslyInjured(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *InjuryReportUpdateOne) SetNotes(v string) *InjuryReportUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *InjuryReportUpdateOne) SetNillableNotes(v *string) *InjuryReportUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *InjuryReportUpdateOne) ClearNotes() *InjuryReportUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetImages sets the "images" field.
func (_u *InjuryReportUpdateOne) SetImages(v []string) *InjuryReportUpdateOne {
	_u.mutation.SetImages(v)
	return _u
}

// AppendImages appends value to the "images" field.
func (_u *InjuryReportUpdateOne) AppendImages(v []string) *InjuryReportUpdateOne {
	_u.mutation.AppendImages(v)
	return _u
}

// ClearImages clears the value of the "images" field.
func (_u *InjuryReportUpdateOne) ClearImages() *InjuryReportUpdateOne {
	_u.mutation.ClearImages()
	return _u
}

// Mutation returns the InjuryReportMutation object of the builder.
func (_u *InjuryReportUpdateOne) Mutation() *InjuryReportMutation {
	return _u.mutation
}

// Where appends a list predicates to the InjuryReportUpdate builder.
func (_u *InjuryReportUpdateOne) Where(ps ...predicate.InjuryReport) *InjuryReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InjuryReportUpdateOne) Select(field string, fields ...string) *InjuryReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InjuryReport entity.
func (_u *InjuryReportUpdateOne) Save(ctx context.Context) (*InjuryReport, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InjuryReportUpdateOne) SaveX(ctx context.Context) *InjuryReport {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InjuryReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InjuryReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InjuryReportUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := injuryreport.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InjuryReportUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := injuryreport.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "InjuryReport.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InjuryType(); ok {
		if err := injuryreport.InjuryTypeValidator(v); err != nil {
			return &ValidationError{Name: "injury_type", err: fmt.Errorf(`repo: validator failed for field "InjuryReport.injury_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BodyPart(); ok {
		if err := injuryreport.BodyPartValidator(v); err != nil {
			return &ValidationError{Name: "body_part", err: fmt.Errorf(`repo: validator failed for field "InjuryReport.body_part": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PainLevel(); ok {
		if err := injuryreport.PainLevelValidator(v); err != nil {
			return &ValidationError{Name: "pain_level", err: fmt.Errorf(`repo: validator failed for field "InjuryReport.pain_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActivityContext(); ok {
		if err := injuryreport.ActivityContextValidator(v); err != nil {
			return &ValidationError{Name: "activity_context", err: fmt.Errorf(`repo: validator failed for field "InjuryReport.activity_context": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AffectingPerformance(); ok {
		if err := injuryreport.AffectingPerformanceValidator(v); err != nil {
			return &ValidationError{Name: "affecting_performance", err: fmt.Errorf(`repo: validator failed for field "InjuryReport.affecting_performance": %w`, err)}
		}
	}
	return nil
}

func (_u *InjuryReportUpdateOne) sqlSave(ctx context.Context) (_node *InjuryReport, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(injuryreport.Table, injuryreport.Columns, sqlgraph.NewFieldSpec(injuryreport.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "InjuryReport.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, injuryreport.FieldID)
		for _, f := range fields {
			if !injuryreport.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != injuryreport.FieldID {
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
		_spec.SetField(injuryreport.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AthleteID(); ok {
		_spec.SetField(injuryreport.FieldAthleteID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(injuryreport.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(injuryreport.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.InjuryType(); ok {
		_spec.SetField(injuryreport.FieldInjuryType, field.TypeString, value)
	}
	if value, ok := _u.mutation.BodyPart(); ok {
		_spec.SetField(injuryreport.FieldBodyPart, field.TypeString, value)
	}
	if value, ok := _u.mutation.PainLevel(); ok {
		_spec.SetField(injuryreport.FieldPainLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPainLevel(); ok {
		_spec.AddField(injuryreport.FieldPainLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DateOfInjury(); ok {
		_spec.SetField(injuryreport.FieldDateOfInjury, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ActivityContext(); ok {
		_spec.SetField(injuryreport.FieldActivityContext, field.TypeString, value)
	}
	if _u.mutation.ActivityContextCleared() {
		_spec.ClearField(injuryreport.FieldActivityContext, field.TypeString)
	}
	if value, ok := _u.mutation.Symptoms(); ok {
		_spec.SetField(injuryreport.FieldSymptoms, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSymptoms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, injuryreport.FieldSymptoms, value)
		})
	}
	if _u.mutation.SymptomsCleared() {
		_spec.ClearField(injuryreport.FieldSymptoms, field.TypeJSON)
	}
	if value, ok := _u.mutation.AffectingPerformance(); ok {
		_spec.SetField(injuryreport.FieldAffectingPerformance, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PreviouslyInjured(); ok {
		_spec.SetField(injuryreport.FieldPreviouslyInjured, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(injuryreport.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(injuryreport.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Images(); ok {
		_spec.SetField(injuryreport.FieldImages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, injuryreport.FieldImages, value)
		})
	}
	if _u.mutation.ImagesCleared() {
		_spec.ClearField(injuryreport.FieldImages, field.TypeJSON)
	}
	_node = &InjuryReport{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{injuryreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
