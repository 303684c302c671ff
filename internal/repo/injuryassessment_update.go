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
	"github.com/athletiq/athletiq_backend/internal/domain/injury"
	"github.com/athletiq/athletiq_backend/internal/repo/injuryassessment"
	"github.com/athletiq/athletiq_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// InjuryAssessmentUpdate is the builder for updating InjuryAssessment entities.
type InjuryAssessmentUpdate struct {
	config
	hooks    []Hook
	mutation *InjuryAssessmentMutation
}

// Where appends a list predicates to the InjuryAssessmentUpdate builder.
func (_u *InjuryAssessmentUpdate) Where(ps ...predicate.InjuryAssessment) *InjuryAssessmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InjuryAssessmentUpdate) SetUpdatedAt(v time.Time) *InjuryAssessmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *InjuryAssessmentUpdate) SetReportID(v uuid.UUID) *InjuryAssessmentUpdate {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *InjuryAssessmentUpdate) SetNillableReportID(v *uuid.UUID) *InjuryAssessmentUpdate {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *InjuryAssessmentUpdate) SetDoctorID(v uuid.UUID) *InjuryAssessmentUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *InjuryAssessmentUpdate) SetNillableDoctorID(v *uuid.UUID) *InjuryAssessmentUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetDiagnosis sets the "diagnosis" field.
func (_u *InjuryAssessmentUpdate) SetDiagnosis(v string) *InjuryAssessmentUpdate {
	_u.mutation.SetDiagnosis(v)
	return _u
}

// SetNillableDiagnosis sets the "diagnosis" field if the given value is not nil.
func (_u *InjuryAssessmentUpdate) SetNillableDiagnosis(v *string) *InjuryAssessmentUpdate {
	if v != nil {
		_u.SetDiagnosis(*v)
	}
	return _u
}

// SetDiagnosisDetails sets the "diagnosis_details" field.
func (_u *InjuryAssessmentUpdate) SetDiagnosisDetails(v string) *InjuryAssessmentUpdate {
	_u.mutation.SetDiagnosisDetails(v)
	return _u
}

// SetNillableDiagnosisDetails sets the "diagnosis_details" field if the given value is not nil.
func (_u *InjuryAssessmentUpdate) SetNillableDiagnosisDetails(v *string) *InjuryAssessmentUpdate {
	if v != nil {
		_u.SetDiagnosisDetails(*v)
	}
	return _u
}

// ClearDiagnosisDetails clears the value of the "diagnosis_details" field.
func (_u *InjuryAssessmentUpdate) ClearDiagnosisDetails() *InjuryAssessmentUpdate {
	_u.mutation.ClearDiagnosisDetails()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *InjuryAssessmentUpdate) SetSeverity(v injuryassessment.Severity) *InjuryAssessmentUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *InjuryAssessmentUpdate) SetNillableSeverity(v *injuryassessment.Severity) *InjuryAssessmentUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetTreatmentPlan sets the "treatment_plan" field.
func (_u *InjuryAssessmentUpdate) SetTreatmentPlan(v string) *InjuryAssessmentUpdate {
	_u.mutation.SetTreatmentPlan(v)
	return _u
}

// SetNillableTreatmentPlan sets the "treatment_plan" field if the given value is not nil.
func (_u *InjuryAssessmentUpdate) SetNillableTreatmentPlan(v *string) *InjuryAssessmentUpdate {
	if v != nil {
		_u.SetTreatmentPlan(*v)
	}
	return _u
}

// SetMedications sets the "medications" field.
func (_u *InjuryAssessmentUpdate) SetMedications(v []injury.MedicationItem) *InjuryAssessmentUpdate {
	_u.mutation.SetMedications(v)
	return _u
}

// AppendMedications appends value to the "medications" field.
func (_u *InjuryAssessmentUpdate) AppendMedications(v []injury.MedicationItem) *InjuryAssessmentUpdate {
	_u.mutation.AppendMedications(v)
	return _u
}

// ClearMedications clears the value of the "medications" field.
func (_u *InjuryAssessmentUpdate) ClearMedications() *InjuryAssessmentUpdate {
	_u.mutation.ClearMedications()
	return _u
}

// SetRehabilitationProtocol sets the "rehabilitation_protocol" field.
func (_u *InjuryAssessmentUpdate) SetRehabilitationProtocol(v string) *InjuryAssessmentUpdate {
	_u.mutation.SetRehabilitationProtocol(v)
	return _u
}

// SetNillableRehabilitationProtocol sets the "rehabilitation_protocol" field if the given value is not nil.
func (_u *InjuryAssessmentUpdate) SetNillableRehabilitationProtocol(v *string) *InjuryAssessmentUpdate {
	if v != nil {
		_u.SetRehabilitationProtocol(*v)
	}
	return _u
}

// ClearRehabilitationProtocol clears the value of the "rehabilitation_protocol" field.
func (_u *InjuryAssessmentUpdate) ClearRehabilitationProtocol() *InjuryAssessmentUpdate {
	_u.mutation.ClearRehabilitationProtocol()
	return _u
}

// SetRestrictions sets the "restrictions" field.
func (_u *InjuryAssessmentUpdate) SetRestrictions(v []string) *InjuryAssessmentUpdate {
	_u.mutation.SetRestrictions(v)
	return _u
}

// AppendRestrictions appends value to the "restrictions" field.
func (_u *InjuryAssessmentUpdate) AppendRestrictions(v []string) *InjuryAssessmentUpdate {
	_u.mutation.AppendRestrictions(v)
	return _u
}

// ClearRestrictions clears the value of the "restrictions" field.
func (_u *InjuryAssessmentUpdate) ClearRestrictions() *InjuryAssessmentUpdate {
	_u.mutation.ClearRestrictions()
	return _u
}

// SetEstimatedRecovery sets the "estimated_recovery" field.
func (_u *InjuryAssessmentUpdate) SetEstimatedRecovery(v *injury.RecoveryEstimate) *InjuryAssessmentUpdate {
	_u.mutation.SetEstimatedRecovery(v)
	return _u
}

// ClearEstimatedRecovery clears the value of the "estimated_recovery" field.
func (_u *InjuryAssessmentUpdate) ClearEstimatedRecovery() *InjuryAssessmentUpdate {
	_u.mutation.ClearEstimatedRecovery()
	return _u
}

// SetFollowUpRequired sets the "follow_up_required" field.
func (_u *InjuryAssessmentUpdate) SetFollowUpRequired(v bool) *InjuryAssessmentUpdate {
	_u.mutation.SetFollowUpRequired(v)
	return _u
}

// SetNillableFollowUpRequired sets the "follow_up_required" field if the given value is not nil.
func (_u *InjuryAssessmentUpdate) SetNillableFollowUpRequired(v *bool) *InjuryAssessmentUpdate {
	if v != nil {
		_u.SetFollowUpRequired(*v)
	}
	return _u
}

// SetAppointment sets the "appointment" field.
func (_u *InjuryAssessmentUpdate) SetAppointment(v *injury.ScheduledAppointment) *InjuryAssessmentUpdate {
	_u.mutation.SetAppointment(v)
	return _u
}

// ClearAppointment clears the value of the "appointment" field.
func (_u *InjuryAssessmentUpdate) ClearAppointment() *InjuryAssessmentUpdate {
	_u.mutation.ClearAppointment()
	return _u
}

// SetClearanceStatus sets the "clearance_status" field.
func (_u *InjuryAssessmentUpdate) SetClearanceStatus(v injuryassessment.ClearanceStatus) *InjuryAssessmentUpdate {
	_u.mutation.SetClearanceStatus(v)
	return _u
}

// SetNillableClearanceStatus sets the "clearance_status" field if the given value is not nil.
func (_u *InjuryAssessmentUpdate) SetNillableClearanceStatus(v *injuryassessment.ClearanceStatus) *InjuryAssessmentUpdate {
	if v != nil {
		_u.SetClearanceStatus(*v)
	}
	return _u
}

// SetTestResults sets the "test_results" field.
func (_u *InjuryAssessmentUpdate) SetTestResults(v []injury.TestResult) *InjuryAssessmentUpdate {
	_u.mutation.SetTestResults(v)
	return _u
}

// AppendTestResults appends value to the "test_results" field.
func (_u *InjuryAssessmentUpdate) AppendTestResults(v []injury.TestResult) *InjuryAssessmentUpdate {
	_u.mutation.AppendTestResults(v)
	return _u
}

// ClearTestResults clears the value of the "test_results" field.
func (_u *InjuryAssessmentUpdate) ClearTestResults() *InjuryAssessmentUpdate {
	_u.mutation.ClearTestResults()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *InjuryAssessmentUpdate) SetNotes(v string) *InjuryAssessmentUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *InjuryAssessmentUpdate) SetNillableNotes(v *string) *InjuryAssessmentUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *InjuryAssessmentUpdate) ClearNotes() *InjuryAssessmentUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the InjuryAssessmentMutation object of the builder.
func (_u *InjuryAssessmentUpdate) Mutation() *InjuryAssessmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InjuryAssessmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InjuryAssessmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InjuryAssessmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InjuryAssessmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InjuryAssessmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := injuryassessment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InjuryAssessmentUpdate) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := injuryassessment.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`repo: validator failed for field "InjuryAssessment.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClearanceStatus(); ok {
		if err := injuryassessment.ClearanceStatusValidator(v); err != nil {
			return &ValidationError{Name: "clearance_status", err: fmt.Errorf(`repo: validator failed for field "InjuryAssessment.clearance_status": %w`, err)}
		}
	}
	return nil
}

func (_u *InjuryAssessmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(injuryassessment.Table, injuryassessment.Columns, sqlgraph.NewFieldSpec(injuryassessment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(injuryassessment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ReportID(); ok {
		_spec.SetField(injuryassessment.FieldReportID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(injuryassessment.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Diagnosis(); ok {
		_spec.SetField(injuryassessment.FieldDiagnosis, field.TypeString, value)
	}
	if value, ok := _u.mutation.DiagnosisDetails(); ok {
		_spec.SetField(injuryassessment.FieldDiagnosisDetails, field.TypeString, value)
	}
	if _u.mutation.DiagnosisDetailsCleared() {
		_spec.ClearField(injuryassessment.FieldDiagnosisDetails, field.TypeString)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(injuryassessment.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TreatmentPlan(); ok {
		_spec.SetField(injuryassessment.FieldTreatmentPlan, field.TypeString, value)
	}
	if value, ok := _u.mutation.Medications(); ok {
		_spec.SetField(injuryassessment.FieldMedications, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMedications(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, injuryassessment.FieldMedications, value)
		})
	}
	if _u.mutation.MedicationsCleared() {
		_spec.ClearField(injuryassessment.FieldMedications, field.TypeJSON)
	}
	if value, ok := _u.mutation.RehabilitationProtocol(); ok {
		_spec.SetField(injuryassessment.FieldRehabilitationProtocol, field.TypeString, value)
	}
	if _u.mutation.RehabilitationProtocolCleared() {
		_spec.ClearField(injuryassessment.FieldRehabilitationProtocol, field.TypeString)
	}
	if value, ok := _u.mutation.Restrictions(); ok {
		_spec.SetField(injuryassessment.FieldRestrictions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRestrictions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, injuryassessment.FieldRestrictions, value)
		})
	}
	if _u.mutation.RestrictionsCleared() {
		_spec.ClearField(injuryassessment.FieldRestrictions, field.TypeJSON)
	}
	if value, ok := _u.mutation.EstimatedRecovery(); ok {
		_spec.SetField(injuryassessment.FieldEstimatedRecovery, field.TypeJSON, value)
	}
	if _u.mutation.EstimatedRecoveryCleared() {
		_spec.ClearField(injuryassessment.FieldEstimatedRecovery, field.TypeJSON)
	}
	if value, ok := _u.mutation.FollowUpRequired(); ok {
		_spec.SetField(injuryassessment.FieldFollowUpRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Appointment(); ok {
		_spec.SetField(injuryassessment.FieldAppointment, field.TypeJSON, value)
	}
	if _u.mutation.AppointmentCleared() {
		_spec.ClearField(injuryassessment.FieldAppointment, field.TypeJSON)
	}
	if value, ok := _u.mutation.ClearanceStatus(); ok {
		_spec.SetField(injuryassessment.FieldClearanceStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TestResults(); ok {
		_spec.SetField(injuryassessment.FieldTestResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTestResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, injuryassessment.FieldTestResults, value)
		})
	}
	if _u.mutation.TestResultsCleared() {
		_spec.ClearField(injuryassessment.FieldTestResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(injuryassessment.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(injuryassessment.FieldNotes, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{injuryassessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InjuryAssessmentUpdateOne is the builder for updating a single InjuryAssessment entity.
type InjuryAssessmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InjuryAssessmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InjuryAssessmentUpdateOne) SetUpdatedAt(v time.Time) *InjuryAssessmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *InjuryAssessmentUpdateOne) SetReportID(v uuid.UUID) *InjuryAssessmentUpdateOne {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *InjuryAssessmentUpdateOne) SetNillableReportID(v *uuid.UUID) *InjuryAssessmentUpdateOne {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *InjuryAssessmentUpdateOne) SetDoctorID(v uuid.UUID) *InjuryAssessmentUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *InjuryAssessmentUpdateOne) SetNillableDoctorID(v *uuid.UUID) *InjuryAssessmentUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetDiagnosis sets the "diagnosis" field.
func (_u *InjuryAssessmentUpdateOne) SetDiagnosis(v string) *InjuryAssessmentUpdateOne {
	_u.mutation.SetDiagnosis(v)
	return _u
}

// SetNillableDiagnosis sets the "diagnosis" field if the given value is not nil.
func (_u *InjuryAssessmentUpdateOne) SetNillableDiagnosis(v *string) *InjuryAssessmentUpdateOne {
	if v != nil {
		_u.SetDiagnosis(*v)
	}
	return _u
}

// SetDiagnosisDetails sets the "diagnosis_details" field.
func (_u *InjuryAssessmentUpdateOne) SetDiagnosisDetails(v string) *InjuryAssessmentUpdateOne {
	_u.mutation.SetDiagnosisDetails(v)
	return _u
}

// SetNillableDiagnosisDetails sets the "diagnosis_details" field if the given value is not nil.
func (_u *InjuryAssessmentUpdateOne) SetNillableDiagnosisDetails(v *string) *InjuryAssessmentUpdateOne {
	if v != nil {
		_u.SetDiagnosisDetails(*v)
	}
	return _u
}

// ClearDiagnosisDetails clears the value of the "diagnosis_details" field.
func (_u *InjuryAssessmentUpdateOne) ClearDiagnosisDetails() *InjuryAssessmentUpdateOne {
	_u.mutation.ClearDiagnosisDetails()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *InjuryAssessmentUpdateOne) SetSeverity(v injuryassessment.Severity) *InjuryAssessmentUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *InjuryAssessmentUpdateOne) SetNillableSeverity(v *injuryassessment.Severity) *InjuryAssessmentUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetTreatmentPlan sets the "treatment_plan" field.
func (_u *InjuryAssessmentUpdateOne) SetTreatmentPlan(v string) *InjuryAssessmentUpdateOne {
	_u.mutation.SetTreatmentPlan(v)
	return _u
}

// SetNillableTreatmentPlan sets the "treatment_plan" field if the given value is not nil.
func (_u *InjuryAssessmentUpdateOne) SetNillableTreatmentPlan(v *string) *InjuryAssessmentUpdateOne {
	if v != nil {
		_u.SetTreatmentPlan(*v)
	}
	return _u
}

// SetMedications sets the "medications" field.
func (_u *InjuryAssessmentUpdateOne) SetMedications(v []injury.MedicationItem) *InjuryAssessmentUpdateOne {
	_u.mutation.SetMedications(v)
	return _u
}

// AppendMedications appends value to the "medications" field.
func (_u *InjuryAssessmentUpdateOne) AppendMedications(v []injury.MedicationItem) *InjuryAssessmentUpdateOne {
	_u.mutation.AppendMedications(v)
	return _u
}

// ClearMedications clears the value of the "medications" field.
func (_u *InjuryAssessmentUpdateOne) ClearMedications() *InjuryAssessmentUpdateOne {
	_u.mutation.ClearMedications()
	return _u
}

// SetRehabilitationProtocol sets the "rehabilitation_protocol" field.
func (_u *InjuryAssessmentUpdateOne) SetRehabilitationProtocol(v string) *InjuryAssessmentUpdateOne {
	_u.mutation.SetRehabilitationProtocol(v)
	return _u
}

// SetNillableRehabilitationProtocol sets the "rehabilitation_protocol" field if the given value is not nil.
func (_u *InjuryAssessmentUpdateOne) SetNillableRehabilitationProtocol(v *string) *InjuryAssessmentUpdateOne {
	if v != nil {
		_u.SetRehabilitationProtocol(*v)
	}
	return _u
}

// ClearRehabilitationProtocol clears the value of the "rehabilitation_protocol" field.
func (_u *InjuryAssessmentUpdateOne) ClearRehabilitationProtocol() *InjuryAssessmentUpdateOne {
	_u.mutation.ClearRehabilitationProtocol()
	return _u
}

// SetRestrictions sets the "restrictions" field.
func (_u *InjuryAssessmentUpdateOne) SetRestrictions(v []string) *InjuryAssessmentUpdateOne {
	_u.mutation.SetRestrictions(v)
	return _u
}

// AppendRestrictions appends value to the "restrictions" field.
func (_u *InjuryAssessmentUpdateOne) AppendRestrictions(v []string) *InjuryAssessmentUpdateOne {
	_u.mutation.AppendRestrictions(v)
	return _u
}

// ClearRestrictions clears the value of the "restrictions" field.
func (_u *InjuryAssessmentUpdateOne) ClearRestrictions() *InjuryAssessmentUpdateOne {
	_u.mutation.ClearRestrictions()
	return _u
}

// SetEstimatedRecovery sets the "estimated_recovery" field.
func (_u *InjuryAssessmentUpdateOne) SetEstimatedRecovery(v *injury.RecoveryEstimate) *InjuryAssessmentUpdateOne {
	_u.mutation.SetEstimatedRecovery(v)
	return _u
}

// ClearEstimatedRecovery clears the value of the "estimated_recovery" field.
func (_u *InjuryAssessmentUpdateOne) ClearEstimatedRecovery() *InjuryAssessmentUpdateOne {
	_u.mutation.ClearEstimatedRecovery()
	return _u
}

// SetFollowUpRequired sets the "follow_up_required" field.
func (_u *InjuryAssessmentUpdateOne) SetFollowUpRequired(v bool) *InjuryAssessmentUpdateOne {
	_u.mutation.SetFollowUpRequired(v)
	return _u
}

// SetNillableFollowUpRequired sets the "follow_up_required" field if the given value is not nil.
func (_u *InjuryAssessmentUpdateOne) SetNillableFollowUpRequired(v *bool) *InjuryAssessmentUpdateOne {
	if v != nil {
		_u.SetFollowUpRequired(*v)
	}
	return _u
}

// SetAppointment sets the "appointment" field.
func (_u *InjuryAssessmentUpdateOne) SetAppointment(v *injury.ScheduledAppointment) *InjuryAssessmentUpdateOne {
	_u.mutation.SetAppointment(v)
	return _u
}

// ClearAppointment clears the value of the "appointment" field.
func (_u *InjuryAssessmentUpdateOne) ClearAppointment() *InjuryAssessmentUpdateOne {
	_u.mutation.ClearAppointment()
	return _u
}

// SetClearanceStatus sets the "clearance_status" field.
func (_u *InjuryAssessmentUpdateOne) SetClearanceStatus(v injuryassessment.ClearanceStatus) *InjuryAssessmentUpdateOne {
	_u.mutation.SetClearanceStatus(v)
	return _u
}

// SetNillableClearanceStatus sets the "clearance_status" field if the given value is not nil.
func (_u *InjuryAssessmentUpdateOne) SetNillableClearanceStatus(v *injuryassessment.ClearanceStatus) *InjuryAssessmentUpdateOne {
	if v != nil {
		_u.SetClearanceStatus(*v)
	}
	return _u
}

// SetTestResults sets the "test_results" field.
func (_u *InjuryAssessmentUpdateOne) SetTestResults(v []injury.TestResult) *InjuryAssessmentUpdateOne {
	_u.mutation.SetTestResults(v)
	return _u
}

// AppendTestResults appends value to the "test_results" field.
func (_u *InjuryAssessmentUpdateOne) AppendTestResults(v []injury.TestResult) *InjuryAssessmentUpdateOne {
	_u.mutation.AppendTestResults(v)
	return _u
}

// ClearTestResults clears the value of the "test_results" field.
func (_u *InjuryAssessmentUpdateOne) ClearTestResults() *InjuryAssessmentUpdateOne {
	_u.mutation.ClearTestResults()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *InjuryAssessmentUpdateOne) SetNotes(v string) *InjuryAssessmentUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *InjuryAssessmentUpdateOne) SetNillableNotes(v *string) *InjuryAssessmentUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *InjuryAssessmentUpdateOne) ClearNotes() *InjuryAssessmentUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the InjuryAssessmentMutation object of the builder.
func (_u *InjuryAssessmentUpdateOne) Mutation() *InjuryAssessmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the InjuryAssessmentUpdate builder.
func (_u *InjuryAssessmentUpdateOne) Where(ps ...predicate.InjuryAssessment) *InjuryAssessmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InjuryAssessmentUpdateOne) Select(field string, fields ...string) *InjuryAssessmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InjuryAssessment entity.
func (_u *InjuryAssessmentUpdateOne) Save(ctx context.Context) (*InjuryAssessment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InjuryAssessmentUpdateOne) SaveX(ctx context.Context) *InjuryAssessment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InjuryAssessmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InjuryAssessmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InjuryAssessmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := injuryassessment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InjuryAssessmentUpdateOne) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := injuryassessment.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`repo: validator failed for field "InjuryAssessment.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClearanceStatus(); ok {
		if err := injuryassessment.ClearanceStatusValidator(v); err != nil {
			return &ValidationError{Name: "clearance_status", err: fmt.Errorf(`repo: validator failed for field "InjuryAssessment.clearance_status": %w`, err)}
		}
	}
	return nil
}

func (_u *InjuryAssessmentUpdateOne) sqlSave(ctx context.Context) (_node *InjuryAssessment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(injuryassessment.Table, injuryassessment.Columns, sqlgraph.NewFieldSpec(injuryassessment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "InjuryAssessment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, injuryassessment.FieldID)
		for _, f := range fields {
			if !injuryassessment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != injuryassessment.FieldID {
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
		_spec.SetField(injuryassessment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ReportID(); ok {
		_spec.SetField(injuryassessment.FieldReportID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(injuryassessment.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Diagnosis(); ok {
		_spec.SetField(injuryassessment.FieldDiagnosis, field.TypeString, value)
	}
	if value, ok := _u.mutation.DiagnosisDetails(); ok {
		_spec.SetField(injuryassessment.FieldDiagnosisDetails, field.TypeString, value)
	}
	if _u.mutation.DiagnosisDetailsCleared() {
		_spec.ClearField(injuryassessment.FieldDiagnosisDetails, field.TypeString)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(injuryassessment.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TreatmentPlan(); ok {
		_spec.SetField(injuryassessment.FieldTreatmentPlan, field.TypeString, value)
	}
	if value, ok := _u.mutation.Medications(); ok {
		_spec.SetField(injuryassessment.FieldMedications, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMedications(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, injuryassessment.FieldMedications, value)
		})
	}
	if _u.mutation.MedicationsCleared() {
		_spec.ClearField(injuryassessment.FieldMedications, field.TypeJSON)
	}
	if value, ok := _u.mutation.RehabilitationProtocol(); ok {
		_spec.SetField(injuryassessment.FieldRehabilitationProtocol, field.TypeString, value)
	}
	if _u.mutation.RehabilitationProtocolCleared() {
		_spec.ClearField(injuryassessment.FieldRehabilitationProtocol, field.TypeString)
	}
	if value, ok := _u.mutation.Restrictions(); ok {
		_spec.SetField(injuryassessment.FieldRestrictions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRestrictions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, injuryassessment.FieldRestrictions, value)
		})
	}
	if _u.mutation.RestrictionsCleared() {
		_spec.ClearField(injuryassessment.FieldRestrictions, field.TypeJSON)
	}
	if value, ok := _u.mutation.EstimatedRecovery(); ok {
		_spec.SetField(injuryassessment.FieldEstimatedRecovery, field.TypeJSON, value)
	}
	if _u.mutation.EstimatedRecoveryCleared() {
		_spec.ClearField(injuryassessment.FieldEstimatedRecovery, field.TypeJSON)
	}
	if value, ok := _u.mutation.FollowUpRequired(); ok {
		_spec.SetField(injuryassessment.FieldFollowUpRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Appointment(); ok {
		_spec.SetField(injuryassessment.FieldAppointment, field.TypeJSON, value)
	}
	if _u.mutation.AppointmentCleared() {
		_spec.ClearField(injuryassessment.FieldAppointment, field.TypeJSON)
	}
	if value, ok := _u.mutation.ClearanceStatus(); ok {
		_spec.SetField(injuryassessment.FieldClearanceStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TestResults(); ok {
		_spec.SetField(injuryassessment.FieldTestResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTestResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, injuryassessment.FieldTestResults, value)
		})
	}
	if _u.mutation.TestResultsCleared() {
		_spec.ClearField(injuryassessment.FieldTestResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(injuryassessment.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(injuryassessment.FieldNotes, field.TypeString)
	}
	_node = &InjuryAssessment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{injuryassessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
