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
	"github.com/athletiq/athletiq_backend/internal/domain/injury"
	"github.com/athletiq/athletiq_backend/internal/repo/injuryassessment"
	"github.com/google/uuid"
)

// InjuryAssessmentCreate is the builder for creating a InjuryAssessment entity.
type InjuryAssessmentCreate struct {
	config
	mutation *InjuryAssessmentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *InjuryAssessmentCreate) SetCreatedAt(v time.Time) *InjuryAssessmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InjuryAssessmentCreate) SetNillableCreatedAt(v *time.Time) *InjuryAssessmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InjuryAssessmentCreate) SetUpdatedAt(v time.Time) *InjuryAssessmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InjuryAssessmentCreate) SetNillableUpdatedAt(v *time.Time) *InjuryAssessmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetReportID sets the "report_id" field.
func (_c *InjuryAssessmentCreate) SetReportID(v uuid.UUID) *InjuryAssessmentCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *InjuryAssessmentCreate) SetDoctorID(v uuid.UUID) *InjuryAssessmentCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetDiagnosis sets the "diagnosis" field.
func (_c *InjuryAssessmentCreate) SetDiagnosis(v string) *InjuryAssessmentCreate {
	_c.mutation.SetDiagnosis(v)
	return _c
}

// SetDiagnosisDetails sets the "diagnosis_details" field.
func (_c *InjuryAssessmentCreate) SetDiagnosisDetails(v string) *InjuryAssessmentCreate {
	_c.mutation.SetDiagnosisDetails(v)
	return _c
}

// SetNillableDiagnosisDetails sets the "diagnosis_details" field if the given value is not nil.
func (_c *InjuryAssessmentCreate) SetNillableDiagnosisDetails(v *string) *InjuryAssessmentCreate {
	if v != nil {
		_c.SetDiagnosisDetails(*v)
	}
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *InjuryAssessmentCreate) SetSeverity(v injuryassessment.Severity) *InjuryAssessmentCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetTreatmentPlan sets the "treatment_plan" field.
func (_c *InjuryAssessmentCreate) SetTreatmentPlan(v string) *InjuryAssessmentCreate {
	_c.mutation.SetTreatmentPlan(v)
	return _c
}

// SetMedications sets the "medications" field.
func (_c *InjuryAssessmentCreate) SetMedications(v []injury.MedicationItem) *InjuryAssessmentCreate {
	_c.mutation.SetMedications(v)
	return _c
}

// SetRehabilitationProtocol sets the "rehabilitation_protocol" field.
func (_c *InjuryAssessmentCreate) SetRehabilitationProtocol(v string) *InjuryAssessmentCreate {
	_c.mutation.SetRehabilitationProtocol(v)
	return _c
}

// SetNillableRehabilitationProtocol sets the "rehabilitation_protocol" field if the given value is not nil.
func (_c *InjuryAssessmentCreate) SetNillableRehabilitationProtocol(v *string) *InjuryAssessmentCreate {
	if v != nil {
		_c.SetRehabilitationProtocol(*v)
	}
	return _c
}

// SetRestrictions sets the "restrictions" field.
func (_c *InjuryAssessmentCreate) SetRestrictions(v []string) *InjuryAssessmentCreate {
	_c.mutation.SetRestrictions(v)
	return _c
}

// SetEstimatedRecovery sets the "estimated_recovery" field.
func (_c *InjuryAssessmentCreate) SetEstimatedRecovery(v *injury.RecoveryEstimate) *InjuryAssessmentCreate {
	_c.mutation.SetEstimatedRecovery(v)
	return _c
}

// SetFollowUpRequired sets the "follow_up_required" field.
func (_c *InjuryAssessmentCreate) SetFollowUpRequired(v bool) *InjuryAssessmentCreate {
	_c.mutation.SetFollowUpRequired(v)
	return _c
}

// SetNillableFollowUpRequired sets the "follow_up_required" field if the given value is not nil.
func (_c *InjuryAssessmentCreate) SetNillableFollowUpRequired(v *bool) *InjuryAssessmentCreate {
	if v != nil {
		_c.SetFollowUpRequired(*v)
	}
	return _c
}

// SetAppointment sets the "appointment" field.
func (_c *InjuryAssessmentCreate) SetAppointment(v *injury.ScheduledAppointment) *InjuryAssessmentCreate {
	_c.mutation.SetAppointment(v)
	return _c
}

// SetClearanceStatus sets the "clearance_status" field.
func (_c *InjuryAssessmentCreate) SetClearanceStatus(v injuryassessment.ClearanceStatus) *InjuryAssessmentCreate {
	_c.mutation.SetClearanceStatus(v)
	return _c
}

// SetNillableClearanceStatus sets the "clearance_status" field if the given value is not nil.
func (_c *InjuryAssessmentCreate) SetNillableClearanceStatus(v *injuryassessment.ClearanceStatus) *InjuryAssessmentCreate {
	if v != nil {
		_c.SetClearanceStatus(*v)
	}
	return _c
}

// SetTestResults sets the "test_results" field.
func (_c *InjuryAssessmentCreate) SetTestResults(v []injury.TestResult) *InjuryAssessmentCreate {
	_c.mutation.SetTestResults(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *InjuryAssessmentCreate) SetNotes(v string) *InjuryAssessmentCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *InjuryAssessmentCreate) SetNillableNotes(v *string) *InjuryAssessmentCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InjuryAssessmentCreate) SetID(v uuid.UUID) *InjuryAssessmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InjuryAssessmentCreate) SetNillableID(v *uuid.UUID) *InjuryAssessmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the InjuryAssessmentMutation object of the builder.
func (_c *InjuryAssessmentCreate) Mutation() *InjuryAssessmentMutation {
	return _c.mutation
}

// Save creates the InjuryAssessment in the database.
func (_c *InjuryAssessmentCreate) Save(ctx context.Context) (*InjuryAssessment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InjuryAssessmentCreate) SaveX(ctx context.Context) *InjuryAssessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InjuryAssessmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InjuryAssessmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InjuryAssessmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := injuryassessment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := injuryassessment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.FollowUpRequired(); !ok {
		v := injuryassessment.DefaultFollowUpRequired
		_c.mutation.SetFollowUpRequired(v)
	}
	if _, ok := _c.mutation.ClearanceStatus(); !ok {
		v := injuryassessment.DefaultClearanceStatus
		_c.mutation.SetClearanceStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := injuryassessment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InjuryAssessmentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "InjuryAssessment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "InjuryAssessment.updated_at"`)}
	}
	if _, ok := _c.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`repo: missing required field "InjuryAssessment.report_id"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "InjuryAssessment.doctor_id"`)}
	}
	if _, ok := _c.mutation.Diagnosis(); !ok {
		return &ValidationError{Name: "diagnosis", err: errors.New(`repo: missing required field "InjuryAssessment.diagnosis"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`repo: missing required field "InjuryAssessment.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := injuryassessment.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`repo: validator failed for field "InjuryAssessment.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TreatmentPlan(); !ok {
		return &ValidationError{Name: "treatment_plan", err: errors.New(`repo: missing required field "InjuryAssessment.treatment_plan"`)}
	}
	if _, ok := _c.mutation.FollowUpRequired(); !ok {
		return &ValidationError{Name: "follow_up_required", err: errors.New(`repo: missing required field "InjuryAssessment.follow_up_required"`)}
	}
	if _, ok := _c.mutation.ClearanceStatus(); !ok {
		return &ValidationError{Name: "clearance_status", err: errors.New(`repo: missing required field "InjuryAssessment.clearance_status"`)}
	}
	if v, ok := _c.mutation.ClearanceStatus(); ok {
		if err := injuryassessment.ClearanceStatusValidator(v); err != nil {
			return &ValidationError{Name: "clearance_status", err: fmt.Errorf(`repo: validator failed for field "InjuryAssessment.clearance_status": %w`, err)}
		}
	}
	return nil
}

func (_c *InjuryAssessmentCreate) sqlSave(ctx context.Context) (*InjuryAssessment, error) {
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

func (_c *InjuryAssessmentCreate) createSpec() (*InjuryAssessment, *sqlgraph.CreateSpec) {
	var (
		_node = &InjuryAssessment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(injuryassessment.Table, sqlgraph.NewFieldSpec(injuryassessment.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(injuryassessment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(injuryassessment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ReportID(); ok {
		_spec.SetField(injuryassessment.FieldReportID, field.TypeUUID, value)
		_node.ReportID = value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(injuryassessment.FieldDoctorID, field.TypeUUID, value)
		_node.DoctorID = value
	}
	if value, ok := _c.mutation.Diagnosis(); ok {
		_spec.SetField(injuryassessment.FieldDiagnosis, field.TypeString, value)
		_node.Diagnosis = value
	}
	if value, ok := _c.mutation.DiagnosisDetails(); ok {
		_spec.SetField(injuryassessment.FieldDiagnosisDetails, field.TypeString, value)
		_node.DiagnosisDetails = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(injuryassessment.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.TreatmentPlan(); ok {
		_spec.SetField(injuryassessment.FieldTreatmentPlan, field.TypeString, value)
		_node.TreatmentPlan = value
	}
	if value, ok := _c.mutation.Medications(); ok {
		_spec.SetField(injuryassessment.FieldMedications, field.TypeJSON, value)
		_node.Medications = value
	}
	if value, ok := _c.mutation.RehabilitationProtocol(); ok {
		_spec.SetField(injuryassessment.FieldRehabilitationProtocol, field.TypeString, value)
		_node.RehabilitationProtocol = value
	}
	if value, ok := _c.mutation.Restrictions(); ok {
		_spec.SetField(injuryassessment.FieldRestrictions, field.TypeJSON, value)
		_node.Restrictions = value
	}
	if value, ok := _c.mutation.EstimatedRecovery(); ok {
		_spec.SetField(injuryassessment.FieldEstimatedRecovery, field.TypeJSON, value)
		_node.EstimatedRecovery = value
	}
	if value, ok := _c.mutation.FollowUpRequired(); ok {
		_spec.SetField(injuryassessment.FieldFollowUpRequired, field.TypeBool, value)
		_node.FollowUpRequired = value
	}
	if value, ok := _c.mutation.Appointment(); ok {
		_spec.SetField(injuryassessment.FieldAppointment, field.TypeJSON, value)
		_node.Appointment = value
	}
	if value, ok := _c.mutation.ClearanceStatus(); ok {
		_spec.SetField(injuryassessment.FieldClearanceStatus, field.TypeEnum, value)
		_node.ClearanceStatus = value
	}
	if value, ok := _c.mutation.TestResults(); ok {
		_spec.SetField(injuryassessment.FieldTestResults, field.TypeJSON, value)
		_node.TestResults = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(injuryassessment.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.InjuryAssessment.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InjuryAssessmentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *InjuryAssessmentCreate) OnConflict(opts ...sql.ConflictOption) *InjuryAssessmentUpsertOne {
	_c.conflict = opts
	return &InjuryAssessmentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InjuryAssessment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InjuryAssessmentCreate) OnConflictColumns(columns ...string) *InjuryAssessmentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InjuryAssessmentUpsertOne{
		create: _c,
	}
}

type (
	// InjuryAssessmentUpsertOne is the builder for "upsert"-ing
	//  one InjuryAssessment node.
	InjuryAssessmentUpsertOne struct {
		create *InjuryAssessmentCreate
	}

	// InjuryAssessmentUpsert is the "OnConflict" setter.
	InjuryAssessmentUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *InjuryAssessmentUpsert) SetUpdatedAt(v time.Time) *InjuryAssessmentUpsert {
	u.Set(injuryassessment.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InjuryAssessmentUpsert) UpdateUpdatedAt() *InjuryAssessmentUpsert {
	u.SetExcluded(injuryassessment.FieldUpdatedAt)
	return u
}

// SetReportID sets the "report_id" field.
func (u *InjuryAssessmentUpsert) SetReportID(v uuid.UUID) *InjuryAssessmentUpsert {
	u.Set(injuryassessment.FieldReportID, v)
	return u
}

// UpdateReportID sets the "report_id" field to the value that was provided on create.
func (u *InjuryAssessmentUpsert) UpdateReportID() *InjuryAssessmentUpsert {
	u.SetExcluded(injuryassessment.FieldReportID)
	return u
}

// SetDoctorID sets the "doctor_id" field.
func (u *InjuryAssessmentUpsert) SetDoctorID(v uuid.UUID) *InjuryAssessmentUpsert {
	u.Set(injuryassessment.FieldDoctorID, v)
	return u
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *InjuryAssessmentUpsert) UpdateDoctorID() *InjuryAssessmentUpsert {
	u.SetExcluded(injuryassessment.FieldDoctorID)
	return u
}

// SetDiagnosis sets the "diagnosis" field.
func (u *InjuryAssessmentUpsert) SetDiagnosis(v string) *InjuryAssessmentUpsert {
	u.Set(injuryassessment.FieldDiagnosis, v)
	return u
}

// UpdateDiagnosis sets the "diagnosis" field to the value that was provided on create.
func (u *InjuryAssessmentUpsert) UpdateDiagnosis() *InjuryAssessmentUpsert {
	u.SetExcluded(injuryassessment.FieldDiagnosis)
	return u
}

// SetDiagnosisDetails sets the "diagnosis_details" field.
func (u *InjuryAssessmentUpsert) SetDiagnosisDetails(v string) *InjuryAssessmentUpsert {
	u.Set(injuryassessment.FieldDiagnosisDetails, v)
	return u
}

// UpdateDiagnosisDetails sets the "diagnosis_details" field to the value that was provided on create.
func (u *InjuryAssessmentUpsert) UpdateDiagnosisDetails() *InjuryAssessmentUpsert {
	u.SetExcluded(injuryassessment.FieldDiagnosisDetails)
	return u
}

// ClearDiagnosisDetails clears the value of the "diagnosis_details" field.
func (u *InjuryAssessmentUpsert) ClearDiagnosisDetails() *InjuryAssessmentUpsert {
	u.SetNull(injuryassessment.FieldDiagnosisDetails)
	return u
}

// SetSeverity sets the "severity" field.
func (u *InjuryAssessmentUpsert) SetSeverity(v injuryassessment.Severity) *InjuryAssessmentUpsert {
	u.Set(injuryassessment.FieldSeverity, v)
	return u
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *InjuryAssessmentUpsert) UpdateSeverity() *InjuryAssessmentUpsert {
	u.SetExcluded(injuryassessment.FieldSeverity)
	return u
}

// SetTreatmentPlan sets the "treatment_plan" field.
func (u *InjuryAssessmentUpsert) SetTreatmentPlan(v string) *InjuryAssessmentUpsert {
	u.Set(injuryassessment.FieldTreatmentPlan, v)
	return u
}

// UpdateTreatmentPlan sets the "treatment_plan" field to the value that was provided on create.
func (u *InjuryAssessmentUpsert) UpdateTreatmentPlan() *InjuryAssessmentUpsert {
	u.SetExcluded(injuryassessment.FieldTreatmentPlan)
	return u
}

// SetMedications sets the "medications" field.
func (u *InjuryAssessmentUpsert) SetMedications(v []injury.MedicationItem) *InjuryAssessmentUpsert {
	u.Set(injuryassessment.FieldMedications, v)
	return u
}

// UpdateMedications sets the "medications" field to the value that was provided on create.
func (u *InjuryAssessmentUpsert) UpdateMedications() *InjuryAssessmentUpsert {
	u.SetExcluded(injuryassessment.FieldMedications)
	return u
}

// ClearMedications clears the value of the "medications" field.
func (u *InjuryAssessmentUpsert) ClearMedications() *InjuryAssessmentUpsert {
	u.SetNull(injuryassessment.FieldMedications)
	return u
}

// SetRehabilitationProtocol sets the "rehabilitation_protocol" field.
func (u *InjuryAssessmentUpsert) SetRehabilitationProtocol(v string) *InjuryAssessmentUpsert {
	u.Set(injuryassessment.FieldRehabilitationProtocol, v)
	return u
}

// UpdateRehabilitationProtocol sets the "rehabilitation_protocol" field to the value that was provided on create.
func (u *InjuryAssessmentUpsert) UpdateRehabilitationProtocol() *InjuryAssessmentUpsert {
	u.SetExcluded(injuryassessment.FieldRehabilitationProtocol)
	return u
}

// ClearRehabilitationProtocol clears the value of the "rehabilitation_protocol" field.
func (u *InjuryAssessmentUpsert) ClearRehabilitationProtocol() *InjuryAssessmentUpsert {
	u.SetNull(injuryassessment.FieldRehabilitationProtocol)
	return u
}

// SetRestrictions sets the "restrictions" field.
func (u *InjuryAssessmentUpsert) SetRestrictions(v []string) *InjuryAssessmentUpsert {
	u.Set(injuryassessment.FieldRestrictions, v)
	return u
}

// UpdateRestrictions sets the "restrictions" field to the value that was provided on create.
func (u *InjuryAssessmentUpsert) UpdateRestrictions() *InjuryAssessmentUpsert {
	u.SetExcluded(injuryassessment.FieldRestrictions)
	return u
}

// ClearRestrictions clears the value of the "restrictions" field.
func (u *InjuryAssessmentUpsert) ClearRestrictions() *InjuryAssessmentUpsert {
	u.SetNull(injuryassessment.FieldRestrictions)
	return u
}

// SetEstimatedRecovery sets the "estimated_recovery" field.
func (u *InjuryAssessmentUpsert) SetEstimatedRecovery(v *injury.RecoveryEstimate) *InjuryAssessmentUpsert {
	u.Set(injuryassessment.FieldEstimatedRecovery, v)
	return u
}

// UpdateEstimatedRecovery sets the "estimated_recovery" field to the value that was provided on create.
func (u *InjuryAssessmentUpsert) UpdateEstimatedRecovery() *InjuryAssessmentUpsert {
	u.SetExcluded(injuryassessment.FieldEstimatedRecovery)
	return u
}

// ClearEstimatedRecovery clears the value of the "estimated_recovery" field.
func (u *InjuryAssessmentUpsert) ClearEstimatedRecovery() *InjuryAssessmentUpsert {
	u.SetNull(injuryassessment.FieldEstimatedRecovery)
	return u
}

// SetFollowUpRequired sets the "follow_up_required" field.
func (u *InjuryAssessmentUpsert) SetFollowUpRequired(v bool) *InjuryAssessmentUpsert {
	u.Set(injuryassessment.FieldFollowUpRequired, v)
	return u
}

// UpdateFollowUpRequired sets the "follow_up_required" field to the value that was provided on create.
func (u *InjuryAssessmentUpsert) UpdateFollowUpRequired() *InjuryAssessmentUpsert {
	u.SetExcluded(injuryassessment.FieldFollowUpRequired)
	return u
}

// SetAppointment sets the "appointment" field.
func (u *InjuryAssessmentUpsert) SetAppointment(v *injury.ScheduledAppointment) *InjuryAssessmentUpsert {
	u.Set(injuryassessment.FieldAppointment, v)
	return u
}

// UpdateAppointment sets the "appointment" field to the value that was provided on create.
func (u *InjuryAssessmentUpsert) UpdateAppointment() *InjuryAssessmentUpsert {
	u.SetExcluded(injuryassessment.FieldAppointment)
	return u
}

// ClearAppointment clears the value of the "appointment" field.
func (u *InjuryAssessmentUpsert) ClearAppointment() *InjuryAssessmentUpsert {
	u.SetNull(injuryassessment.FieldAppointment)
	return u
}

// SetClearanceStatus sets the "clearance_status" field.
func (u *InjuryAssessmentUpsert) SetClearanceStatus(v injuryassessment.ClearanceStatus) *InjuryAssessmentUpsert {
	u.Set(injuryassessment.FieldClearanceStatus, v)
	return u
}

// UpdateClearanceStatus sets the "clearance_status" field to the value that was provided on create.
func (u *InjuryAssessmentUpsert) UpdateClearanceStatus() *InjuryAssessmentUpsert {
	u.SetExcluded(injuryassessment.FieldClearanceStatus)
	return u
}

// SetTestResults sets the "test_results" field.
func (u *InjuryAssessmentUpsert) SetTestResults(v []injury.TestResult) *InjuryAssessmentUpsert {
	u.Set(injuryassessment.FieldTestResults, v)
	return u
}

// UpdateTestResults sets the "test_results" field to the value that was provided on create.
func (u *InjuryAssessmentUpsert) UpdateTestResults() *InjuryAssessmentUpsert {
	u.SetExcluded(injuryassessment.FieldTestResults)
	return u
}

// ClearTestResults clears the value of the "test_results" field.
func (u *InjuryAssessmentUpsert) ClearTestResults() *InjuryAssessmentUpsert {
	u.SetNull(injuryassessment.FieldTestResults)
	return u
}

// SetNotes sets the "notes" field.
func (u *InjuryAssessmentUpsert) SetNotes(v string) *InjuryAssessmentUpsert {
	u.Set(injuryassessment.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *InjuryAssessmentUpsert) UpdateNotes() *InjuryAssessmentUpsert {
	u.SetExcluded(injuryassessment.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *InjuryAssessmentUpsert) ClearNotes() *InjuryAssessmentUpsert {
	u.SetNull(injuryassessment.FieldNotes)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.InjuryAssessment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(injuryassessment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InjuryAssessmentUpsertOne) UpdateNewValues() *InjuryAssessmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(injuryassessment.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(injuryassessment.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InjuryAssessment.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InjuryAssessmentUpsertOne) Ignore() *InjuryAssessmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InjuryAssessmentUpsertOne) DoNothing() *InjuryAssessmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InjuryAssessmentCreate.OnConflict
// documentation for more info.
func (u *InjuryAssessmentUpsertOne) Update(set func(*InjuryAssessmentUpsert)) *InjuryAssessmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InjuryAssessmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InjuryAssessmentUpsertOne) SetUpdatedAt(v time.Time) *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InjuryAssessmentUpsertOne) UpdateUpdatedAt() *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetReportID sets the "report_id" field.
func (u *InjuryAssessmentUpsertOne) SetReportID(v uuid.UUID) *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.SetReportID(v)
	})
}

// UpdateReportID sets the "report_id" field to the value that was provided on create.
func (u *InjuryAssessmentUpsertOne) UpdateReportID() *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.UpdateReportID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *InjuryAssessmentUpsertOne) SetDoctorID(v uuid.UUID) *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *InjuryAssessmentUpsertOne) UpdateDoctorID() *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.UpdateDoctorID()
	})
}

// SetDiagnosis sets the "diagnosis" field.
func (u *InjuryAssessmentUpsertOne) SetDiagnosis(v string) *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.SetDiagnosis(v)
	})
}

// UpdateDiagnosis sets the "diagnosis" field to the value that was provided on create.
func (u *InjuryAssessmentUpsertOne) UpdateDiagnosis() *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.UpdateDiagnosis()
	})
}

// SetDiagnosisDetails sets the "diagnosis_details" field.
func (u *InjuryAssessmentUpsertOne) SetDiagnosisDetails(v string) *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.SetDiagnosisDetails(v)
	})
}

// UpdateDiagnosisDetails sets the "diagnosis_details" field to the value that was provided on create.
func (u *InjuryAssessmentUpsertOne) UpdateDiagnosisDetails() *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.UpdateDiagnosisDetails()
	})
}

// ClearDiagnosisDetails clears the value of the "diagnosis_details" field.
func (u *InjuryAssessmentUpsertOne) ClearDiagnosisDetails() *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.ClearDiagnosisDetails()
	})
}

// SetSeverity sets the "severity" field.
func (u *InjuryAssessmentUpsertOne) SetSeverity(v injuryassessment.Severity) *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *InjuryAssessmentUpsertOne) UpdateSeverity() *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.UpdateSeverity()
	})
}

// SetTreatmentPlan sets the "treatment_plan" field.
func (u *InjuryAssessmentUpsertOne) SetTreatmentPlan(v string) *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.SetTreatmentPlan(v)
	})
}

// UpdateTreatmentPlan sets the "treatment_plan" field to the value that was provided on create.
func (u *InjuryAssessmentUpsertOne) UpdateTreatmentPlan() *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.UpdateTreatmentPlan()
	})
}

// SetMedications sets the "medications" field.
func (u *InjuryAssessmentUpsertOne) SetMedications(v []injury.MedicationItem) *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.SetMedications(v)
	})
}

// UpdateMedications sets the "medications" field to the value that was provided on create.
func (u *InjuryAssessmentUpsertOne) UpdateMedications() *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.UpdateMedications()
	})
}

// ClearMedications clears the value of the "medications" field.
func (u *InjuryAssessmentUpsertOne) ClearMedications() *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.ClearMedications()
	})
}

// SetRehabilitationProtocol sets the "rehabilitation_protocol" field.
func (u *InjuryAssessmentUpsertOne) SetRehabilitationProtocol(v string) *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.SetRehabilitationProtocol(v)
	})
}

// UpdateRehabilitationProtocol sets the "rehabilitation_protocol" field to the value that was provided on create.
func (u *InjuryAssessmentUpsertOne) UpdateRehabilitationProtocol() *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.UpdateRehabilitationProtocol()
	})
}

// ClearRehabilitationProtocol clears the value of the "rehabilitation_protocol" field.
func (u *InjuryAssessmentUpsertOne) ClearRehabilitationProtocol() *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.ClearRehabilitationProtocol()
	})
}

// SetRestrictions sets the "restrictions" field.
func (u *InjuryAssessmentUpsertOne) SetRestrictions(v []string) *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.SetRestrictions(v)
	})
}

// UpdateRestrictions sets the "restrictions" field to the value that was provided on create.
func (u *InjuryAssessmentUpsertOne) UpdateRestrictions() *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.UpdateRestrictions()
	})
}

// ClearRestrictions clears the value of the "restrictions" field.
func (u *InjuryAssessmentUpsertOne) ClearRestrictions() *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.ClearRestrictions()
	})
}

// SetEstimatedRecovery sets the "estimated_recovery" field.
func (u *InjuryAssessmentUpsertOne) SetEstimatedRecovery(v *injury.RecoveryEstimate) *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.SetEstimatedRecovery(v)
	})
}

// UpdateEstimatedRecovery sets the "estimated_recovery" field to the value that was provided on create.
func (u *InjuryAssessmentUpsertOne) UpdateEstimatedRecovery() *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.UpdateEstimatedRecovery()
	})
}

// ClearEstimatedRecovery clears the value of the "estimated_recovery" field.
func (u *InjuryAssessmentUpsertOne) ClearEstimatedRecovery() *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.ClearEstimatedRecovery()
	})
}

// SetFollowUpRequired sets the "follow_up_required" field.
func (u *InjuryAssessmentUpsertOne) SetFollowUpRequired(v bool) *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.SetFollowUpRequired(v)
	})
}

// UpdateFollowUpRequired sets the "follow_up_required" field to the value that was provided on create.
func (u *InjuryAssessmentUpsertOne) UpdateFollowUpRequired() *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.UpdateFollowUpRequired()
	})
}

// SetAppointment sets the "appointment" field.
func (u *InjuryAssessmentUpsertOne) SetAppointment(v *injury.ScheduledAppointment) *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.SetAppointment(v)
	})
}

// UpdateAppointment sets the "appointment" field to the value that was provided on create.
func (u *InjuryAssessmentUpsertOne) UpdateAppointment() *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.UpdateAppointment()
	})
}

// ClearAppointment clears the value of the "appointment" field.
func (u *InjuryAssessmentUpsertOne) ClearAppointment() *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.ClearAppointment()
	})
}

// SetClearanceStatus sets the "clearance_status" field.
func (u *InjuryAssessmentUpsertOne) SetClearanceStatus(v injuryassessment.ClearanceStatus) *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.SetClearanceStatus(v)
	})
}

// UpdateClearanceStatus sets the "clearance_status" field to the value that was provided on create.
func (u *InjuryAssessmentUpsertOne) UpdateClearanceStatus() *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.UpdateClearanceStatus()
	})
}

// SetTestResults sets the "test_results" field.
func (u *InjuryAssessmentUpsertOne) SetTestResults(v []injury.TestResult) *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.SetTestResults(v)
	})
}

// UpdateTestResults sets the "test_results" field to the value that was provided on create.
func (u *InjuryAssessmentUpsertOne) UpdateTestResults() *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.UpdateTestResults()
	})
}

// ClearTestResults clears the value of the "test_results" field.
func (u *InjuryAssessmentUpsertOne) ClearTestResults() *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.ClearTestResults()
	})
}

// SetNotes sets the "notes" field.
func (u *InjuryAssessmentUpsertOne) SetNotes(v string) *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *InjuryAssessmentUpsertOne) UpdateNotes() *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *InjuryAssessmentUpsertOne) ClearNotes() *InjuryAssessmentUpsertOne {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *InjuryAssessmentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for InjuryAssessmentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InjuryAssessmentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InjuryAssessmentUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: InjuryAssessmentUpsertOne.ID is not supported by MySQL driver. Use InjuryAssessmentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InjuryAssessmentUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InjuryAssessmentCreateBulk is the builder for creating many InjuryAssessment entities in bulk.
type InjuryAssessmentCreateBulk struct {
	config
	err      error
	builders []*InjuryAssessmentCreate
	conflict []sql.ConflictOption
}

// Save creates the InjuryAssessment entities in the database.
func (_c *InjuryAssessmentCreateBulk) Save(ctx context.Context) ([]*InjuryAssessment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InjuryAssessment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InjuryAssessmentMutation)
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
func (_c *InjuryAssessmentCreateBulk) SaveX(ctx context.Context) []*InjuryAssessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InjuryAssessmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InjuryAssessmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.InjuryAssessment.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InjuryAssessmentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *InjuryAssessmentCreateBulk) OnConflict(opts ...sql.ConflictOption) *InjuryAssessmentUpsertBulk {
	_c.conflict = opts
	return &InjuryAssessmentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InjuryAssessment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InjuryAssessmentCreateBulk) OnConflictColumns(columns ...string) *InjuryAssessmentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InjuryAssessmentUpsertBulk{
		create: _c,
	}
}

// InjuryAssessmentUpsertBulk is the builder for "upsert"-ing
// a bulk of InjuryAssessment nodes.
type InjuryAssessmentUpsertBulk struct {
	create *InjuryAssessmentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.InjuryAssessment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(injuryassessment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InjuryAssessmentUpsertBulk) UpdateNewValues() *InjuryAssessmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(injuryassessment.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(injuryassessment.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InjuryAssessment.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InjuryAssessmentUpsertBulk) Ignore() *InjuryAssessmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InjuryAssessmentUpsertBulk) DoNothing() *InjuryAssessmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InjuryAssessmentCreateBulk.OnConflict
// documentation for more info.
func (u *InjuryAssessmentUpsertBulk) Update(set func(*InjuryAssessmentUpsert)) *InjuryAssessmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InjuryAssessmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InjuryAssessmentUpsertBulk) SetUpdatedAt(v time.Time) *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InjuryAssessmentUpsertBulk) UpdateUpdatedAt() *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetReportID sets the "report_id" field.
func (u *InjuryAssessmentUpsertBulk) SetReportID(v uuid.UUID) *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.SetReportID(v)
	})
}

// UpdateReportID sets the "report_id" field to the value that was provided on create.
func (u *InjuryAssessmentUpsertBulk) UpdateReportID() *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.UpdateReportID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *InjuryAssessmentUpsertBulk) SetDoctorID(v uuid.UUID) *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *InjuryAssessmentUpsertBulk) UpdateDoctorID() *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.UpdateDoctorID()
	})
}

// SetDiagnosis sets the "diagnosis" field.
func (u *InjuryAssessmentUpsertBulk) SetDiagnosis(v string) *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.SetDiagnosis(v)
	})
}

// UpdateDiagnosis sets the "diagnosis" field to the value that was provided on create.
func (u *InjuryAssessmentUpsertBulk) UpdateDiagnosis() *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.UpdateDiagnosis()
	})
}

// SetDiagnosisDetails sets the "diagnosis_details" field.
func (u *InjuryAssessmentUpsertBulk) SetDiagnosisDetails(v string) *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.SetDiagnosisDetails(v)
	})
}

// UpdateDiagnosisDetails sets the "diagnosis_details" field to the value that was provided on create.
func (u *InjuryAssessmentUpsertBulk) UpdateDiagnosisDetails() *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.UpdateDiagnosisDetails()
	})
}

// ClearDiagnosisDetails clears the value of the "diagnosis_details" field.
func (u *InjuryAssessmentUpsertBulk) ClearDiagnosisDetails() *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.ClearDiagnosisDetails()
	})
}

// SetSeverity sets the "severity" field.
func (u *InjuryAssessmentUpsertBulk) SetSeverity(v injuryassessment.Severity) *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *InjuryAssessmentUpsertBulk) UpdateSeverity() *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.UpdateSeverity()
	})
}

// SetTreatmentPlan sets the "treatment_plan" field.
func (u *InjuryAssessmentUpsertBulk) SetTreatmentPlan(v string) *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.SetTreatmentPlan(v)
	})
}

// UpdateTreatmentPlan sets the "treatment_plan" field to the value that was provided on create.
func (u *InjuryAssessmentUpsertBulk) UpdateTreatmentPlan() *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.UpdateTreatmentPlan()
	})
}

// SetMedications sets the "medications" field.
func (u *InjuryAssessmentUpsertBulk) SetMedications(v []injury.MedicationItem) *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.SetMedications(v)
	})
}

// UpdateMedications sets the "medications" field to the value that was provided on create.
func (u *InjuryAssessmentUpsertBulk) UpdateMedications() *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.UpdateMedications()
	})
}

// ClearMedications clears the value of the "medications" field.
func (u *InjuryAssessmentUpsertBulk) ClearMedications() *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.ClearMedications()
	})
}

// SetRehabilitationProtocol sets the "rehabilitation_protocol" field.
func (u *InjuryAssessmentUpsertBulk) SetRehabilitationProtocol(v string) *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.SetRehabilitationProtocol(v)
	})
}

// UpdateRehabilitationProtocol sets the "rehabilitation_protocol" field to the value that was provided on create.
func (u *InjuryAssessmentUpsertBulk) UpdateRehabilitationProtocol() *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.UpdateRehabilitationProtocol()
	})
}

// ClearRehabilitationProtocol clears the value of the "rehabilitation_protocol" field.
func (u *InjuryAssessmentUpsertBulk) ClearRehabilitationProtocol() *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.ClearRehabilitationProtocol()
	})
}

// SetRestrictions sets the "restrictions" field.
func (u *InjuryAssessmentUpsertBulk) SetRestrictions(v []string) *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.SetRestrictions(v)
	})
}

// UpdateRestrictions sets the "restrictions" field to the value that was provided on create.
func (u *InjuryAssessmentUpsertBulk) UpdateRestrictions() *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.UpdateRestrictions()
	})
}

// ClearRestrictions clears the value of the "restrictions" field.
func (u *InjuryAssessmentUpsertBulk) ClearRestrictions() *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.ClearRestrictions()
	})
}

// SetEstimatedRecovery sets the "estimated_recovery" field.
func (u *InjuryAssessmentUpsertBulk) SetEstimatedRecovery(v *injury.RecoveryEstimate) *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.SetEstimatedRecovery(v)
	})
}

// UpdateEstimatedRecovery sets the "estimated_recovery" field to the value that was provided on create.
func (u *InjuryAssessmentUpsertBulk) UpdateEstimatedRecovery() *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.UpdateEstimatedRecovery()
	})
}

// ClearEstimatedRecovery clears the value of the "estimated_recovery" field.
func (u *InjuryAssessmentUpsertBulk) ClearEstimatedRecovery() *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.ClearEstimatedRecovery()
	})
}

// SetFollowUpRequired sets the "follow_up_required" field.
func (u *InjuryAssessmentUpsertBulk) SetFollowUpRequired(v bool) *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.SetFollowUpRequired(v)
	})
}

// UpdateFollowUpRequired sets the "follow_up_required" field to the value that was provided on create.
func (u *InjuryAssessmentUpsertBulk) UpdateFollowUpRequired() *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.UpdateFollowUpRequired()
	})
}

// SetAppointment sets the "appointment" field.
func (u *InjuryAssessmentUpsertBulk) SetAppointment(v *injury.ScheduledAppointment) *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.SetAppointment(v)
	})
}

// UpdateAppointment sets the "appointment" field to the value that was provided on create.
func (u *InjuryAssessmentUpsertBulk) UpdateAppointment() *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.UpdateAppointment()
	})
}

// ClearAppointment clears the value of the "appointment" field.
func (u *InjuryAssessmentUpsertBulk) ClearAppointment() *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.ClearAppointment()
	})
}

// SetClearanceStatus sets the "clearance_status" field.
func (u *InjuryAssessmentUpsertBulk) SetClearanceStatus(v injuryassessment.ClearanceStatus) *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.SetClearanceStatus(v)
	})
}

// UpdateClearanceStatus sets the "clearance_status" field to the value that was provided on create.
func (u *InjuryAssessmentUpsertBulk) UpdateClearanceStatus() *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.UpdateClearanceStatus()
	})
}

// SetTestResults sets the "test_results" field.
func (u *InjuryAssessmentUpsertBulk) SetTestResults(v []injury.TestResult) *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.SetTestResults(v)
	})
}

// UpdateTestResults sets the "test_results" field to the value that was provided on create.
func (u *InjuryAssessmentUpsertBulk) UpdateTestResults() *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.UpdateTestResults()
	})
}

// ClearTestResults clears the value of the "test_results" field.
func (u *InjuryAssessmentUpsertBulk) ClearTestResults() *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.ClearTestResults()
	})
}

// SetNotes sets the "notes" field.
func (u *InjuryAssessmentUpsertBulk) SetNotes(v string) *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *InjuryAssessmentUpsertBulk) UpdateNotes() *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *InjuryAssessmentUpsertBulk) ClearNotes() *InjuryAssessmentUpsertBulk {
	return u.Update(func(s *InjuryAssessmentUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *InjuryAssessmentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the InjuryAssessmentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for InjuryAssessmentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InjuryAssessmentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
