// Code generated by ent, DO NOT EDIT.

package injuryassessment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/athletiq/athletiq_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldEQ(FieldUpdatedAt, v))
}

// ReportID applies equality check predicate on the "report_id" field. It's identical to ReportIDEQ.
func ReportID(v uuid.UUID) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldEQ(FieldReportID, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldEQ(FieldDoctorID, v))
}

// Diagnosis applies equality check predicate on the "diagnosis" field. It's identical to DiagnosisEQ.
func Diagnosis(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldEQ(FieldDiagnosis, v))
}

// DiagnosisDetails applies equality check predicate on the "diagnosis_details" field. It's identical to DiagnosisDetailsEQ.
func DiagnosisDetails(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldEQ(FieldDiagnosisDetails, v))
}

// TreatmentPlan applies equality check predicate on the "treatment_plan" field. It's identical to TreatmentPlanEQ.
func TreatmentPlan(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldEQ(FieldTreatmentPlan, v))
}

// RehabilitationProtocol applies equality check predicate on the "rehabilitation_protocol" field. It's identical to RehabilitationProtocolEQ.
func RehabilitationProtocol(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldEQ(FieldRehabilitationProtocol, v))
}

// FollowUpRequired applies equality check predicate on the "follow_up_required" field. It's identical to FollowUpRequiredEQ.
func FollowUpRequired(v bool) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldEQ(FieldFollowUpRequired, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldEQ(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldLTE(FieldUpdatedAt, v))
}

// ReportIDEQ applies the EQ predicate on the "report_id" field.
func ReportIDEQ(v uuid.UUID) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldEQ(FieldReportID, v))
}

// ReportIDNEQ applies the NEQ predicate on the "report_id" field.
func ReportIDNEQ(v uuid.UUID) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldNEQ(FieldReportID, v))
}

// ReportIDIn applies the In predicate on the "report_id" field.
func ReportIDIn(vs ...uuid.UUID) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldIn(FieldReportID, vs...))
}

// ReportIDNotIn applies the NotIn predicate on the "report_id" field.
func ReportIDNotIn(vs ...uuid.UUID) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldNotIn(FieldReportID, vs...))
}

// ReportIDGT applies the GT predicate on the "report_id" field.
func ReportIDGT(v uuid.UUID) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldGT(FieldReportID, v))
}

// ReportIDGTE applies the GTE predicate on the "report_id" field.
func ReportIDGTE(v uuid.UUID) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldGTE(FieldReportID, v))
}

// ReportIDLT applies the LT predicate on the "report_id" field.
func ReportIDLT(v uuid.UUID) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldLT(FieldReportID, v))
}

// ReportIDLTE applies the LTE predicate on the "report_id" field.
func ReportIDLTE(v uuid.UUID) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldLTE(FieldReportID, v))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldNotIn(FieldDoctorID, vs...))
}

// DoctorIDGT applies the GT predicate on the "doctor_id" field.
func DoctorIDGT(v uuid.UUID) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldGT(FieldDoctorID, v))
}

// DoctorIDGTE applies the GTE predicate on the "doctor_id" field.
func DoctorIDGTE(v uuid.UUID) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldGTE(FieldDoctorID, v))
}

// DoctorIDLT applies the LT predicate on the "doctor_id" field.
func DoctorIDLT(v uuid.UUID) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldLT(FieldDoctorID, v))
}

// DoctorIDLTE applies the LTE predicate on the "doctor_id" field.
func DoctorIDLTE(v uuid.UUID) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldLTE(FieldDoctorID, v))
}

// DiagnosisEQ applies the EQ predicate on the "diagnosis" field.
func DiagnosisEQ(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldEQ(FieldDiagnosis, v))
}

// DiagnosisNEQ applies the NEQ predicate on the "diagnosis" field.
func DiagnosisNEQ(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldNEQ(FieldDiagnosis, v))
}

// DiagnosisIn applies the In predicate on the "diagnosis" field.
func DiagnosisIn(vs ...string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldIn(FieldDiagnosis, vs...))
}

// DiagnosisNotIn applies the NotIn predicate on the "diagnosis" field.
func DiagnosisNotIn(vs ...string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldNotIn(FieldDiagnosis, vs...))
}

// DiagnosisGT applies the GT predicate on the "diagnosis" field.
func DiagnosisGT(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldGT(FieldDiagnosis, v))
}

// DiagnosisGTE applies the GTE predicate on the "diagnosis" field.
func DiagnosisGTE(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldGTE(FieldDiagnosis, v))
}

// DiagnosisLT applies the LT predicate on the "diagnosis" field.
func DiagnosisLT(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldLT(FieldDiagnosis, v))
}

// DiagnosisLTE applies the LTE predicate on the "diagnosis" field.
func DiagnosisLTE(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldLTE(FieldDiagnosis, v))
}

// DiagnosisContains applies the Contains predicate on the "diagnosis" field.
func DiagnosisContains(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldContains(FieldDiagnosis, v))
}

// DiagnosisHasPrefix applies the HasPrefix predicate on the "diagnosis" field.
func DiagnosisHasPrefix(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldHasPrefix(FieldDiagnosis, v))
}

// DiagnosisHasSuffix applies the HasSuffix predicate on the "diagnosis" field.
func DiagnosisHasSuffix(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldHasSuffix(FieldDiagnosis, v))
}

// DiagnosisEqualFold applies the EqualFold predicate on the "diagnosis" field.
func DiagnosisEqualFold(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldEqualFold(FieldDiagnosis, v))
}

// DiagnosisContainsFold applies the ContainsFold predicate on the "diagnosis" field.
func DiagnosisContainsFold(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldContainsFold(FieldDiagnosis, v))
}

// DiagnosisDetailsEQ applies the EQ predicate on the "diagnosis_details" field.
func DiagnosisDetailsEQ(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldEQ(FieldDiagnosisDetails, v))
}

// DiagnosisDetailsNEQ applies the NEQ predicate on the "diagnosis_details" field.
func DiagnosisDetailsNEQ(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldNEQ(FieldDiagnosisDetails, v))
}

// DiagnosisDetailsIn applies the In predicate on the "diagnosis_details" field.
func DiagnosisDetailsIn(vs ...string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldIn(FieldDiagnosisDetails, vs...))
}

// DiagnosisDetailsNotIn applies the NotIn predicate on the "diagnosis_details" field.
func DiagnosisDetailsNotIn(vs ...string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldNotIn(FieldDiagnosisDetails, vs...))
}

// DiagnosisDetailsGT applies the GT predicate on the "diagnosis_details" field.
func DiagnosisDetailsGT(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldGT(FieldDiagnosisDetails, v))
}

// DiagnosisDetailsGTE applies the GTE predicate on the "diagnosis_details" field.
func DiagnosisDetailsGTE(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldGTE(FieldDiagnosisDetails, v))
}

// DiagnosisDetailsLT applies the LT predicate on the "diagnosis_details" field.
func DiagnosisDetailsLT(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldLT(FieldDiagnosisDetails, v))
}

// DiagnosisDetailsLTE applies the LTE predicate on the "diagnosis_details" field.
func DiagnosisDetailsLTE(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldLTE(FieldDiagnosisDetails, v))
}

// DiagnosisDetailsContains applies the Contains predicate on the "diagnosis_details" field.
func DiagnosisDetailsContains(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldContains(FieldDiagnosisDetails, v))
}

// DiagnosisDetailsHasPrefix applies the HasPrefix predicate on the "diagnosis_details" field.
func DiagnosisDetailsHasPrefix(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldHasPrefix(FieldDiagnosisDetails, v))
}

// DiagnosisDetailsHasSuffix applies the HasSuffix predicate on the "diagnosis_details" field.
func DiagnosisDetailsHasSuffix(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldHasSuffix(FieldDiagnosisDetails, v))
}

// DiagnosisDetailsIsNil applies the IsNil predicate on the "diagnosis_details" field.
func DiagnosisDetailsIsNil() predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldIsNull(FieldDiagnosisDetails))
}

// DiagnosisDetailsNotNil applies the NotNil predicate on the "diagnosis_details" field.
func DiagnosisDetailsNotNil() predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldNotNull(FieldDiagnosisDetails))
}

// DiagnosisDetailsEqualFold applies the EqualFold predicate on the "diagnosis_details" field.
func DiagnosisDetailsEqualFold(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldEqualFold(FieldDiagnosisDetails, v))
}

// DiagnosisDetailsContainsFold applies the ContainsFold predicate on the "diagnosis_details" field.
func DiagnosisDetailsContainsFold(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldContainsFold(FieldDiagnosisDetails, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v Severity) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v Severity) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...Severity) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...Severity) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldNotIn(FieldSeverity, vs...))
}

// TreatmentPlanEQ applies the EQ predicate on the "treatment_plan" field.
func TreatmentPlanEQ(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldEQ(FieldTreatmentPlan, v))
}

// TreatmentPlanNEQ applies the NEQ predicate on the "treatment_plan" field.
func TreatmentPlanNEQ(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldNEQ(FieldTreatmentPlan, v))
}

// TreatmentPlanIn applies the In predicate on the "treatment_plan" field.
func TreatmentPlanIn(vs ...string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldIn(FieldTreatmentPlan, vs...))
}

// TreatmentPlanNotIn applies the NotIn predicate on the "treatment_plan" field.
func TreatmentPlanNotIn(vs ...string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldNotIn(FieldTreatmentPlan, vs...))
}

// TreatmentPlanGT applies the GT predicate on the "treatment_plan" field.
func TreatmentPlanGT(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldGT(FieldTreatmentPlan, v))
}

// TreatmentPlanGTE applies the GTE predicate on the "treatment_plan" field.
func TreatmentPlanGTE(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldGTE(FieldTreatmentPlan, v))
}

// TreatmentPlanLT applies the LT predicate on the "treatment_plan" field.
func TreatmentPlanLT(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldLT(FieldTreatmentPlan, v))
}

// TreatmentPlanLTE applies the LTE predicate on the "treatment_plan" field.
func TreatmentPlanLTE(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldLTE(FieldTreatmentPlan, v))
}

// TreatmentPlanContains applies the Contains predicate on the "treatment_plan" field.
func TreatmentPlanContains(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldContains(FieldTreatmentPlan, v))
}

// TreatmentPlanHasPrefix applies the HasPrefix predicate on the "treatment_plan" field.
func TreatmentPlanHasPrefix(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldHasPrefix(FieldTreatmentPlan, v))
}

// TreatmentPlanHasSuffix applies the HasSuffix predicate on the "treatment_plan" field.
func TreatmentPlanHasSuffix(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldHasSuffix(FieldTreatmentPlan, v))
}

// TreatmentPlanEqualFold applies the EqualFold predicate on the "treatment_plan" field.
func TreatmentPlanEqualFold(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldEqualFold(FieldTreatmentPlan, v))
}

// TreatmentPlanContainsFold applies the ContainsFold predicate on the "treatment_plan" field.
func TreatmentPlanContainsFold(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldContainsFold(FieldTreatmentPlan, v))
}

// MedicationsIsNil applies the IsNil predicate on the "medications" field.
func MedicationsIsNil() predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldIsNull(FieldMedications))
}

// MedicationsNotNil applies the NotNil predicate on the "medications" field.
func MedicationsNotNil() predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldNotNull(FieldMedications))
}

// RehabilitationProtocolEQ applies the EQ predicate on the "rehabilitation_protocol" field.
func RehabilitationProtocolEQ(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldEQ(FieldRehabilitationProtocol, v))
}

// RehabilitationProtocolNEQ applies the NEQ predicate on the "rehabilitation_protocol" field.
func RehabilitationProtocolNEQ(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldNEQ(FieldRehabilitationProtocol, v))
}

// RehabilitationProtocolIn applies the In predicate on the "rehabilitation_protocol" field.
func RehabilitationProtocolIn(vs ...string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldIn(FieldRehabilitationProtocol, vs...))
}

// RehabilitationProtocolNotIn applies the NotIn predicate on the "rehabilitation_protocol" field.
func RehabilitationProtocolNotIn(vs ...string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldNotIn(FieldRehabilitationProtocol, vs...))
}

// RehabilitationProtocolGT applies the GT predicate on the "rehabilitation_protocol" field.
func RehabilitationProtocolGT(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldGT(FieldRehabilitationProtocol, v))
}

// RehabilitationProtocolGTE applies the GTE predicate on the "rehabilitation_protocol" field.
func RehabilitationProtocolGTE(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldGTE(FieldRehabilitationProtocol, v))
}

// RehabilitationProtocolLT applies the LT predicate on the "rehabilitation_protocol" field.
func RehabilitationProtocolLT(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldLT(FieldRehabilitationProtocol, v))
}

// RehabilitationProtocolLTE applies the LTE predicate on the "rehabilitation_protocol" field.
func RehabilitationProtocolLTE(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldLTE(FieldRehabilitationProtocol, v))
}

// RehabilitationProtocolContains applies the Contains predicate on the "rehabilitation_protocol" field.
func RehabilitationProtocolContains(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldContains(FieldRehabilitationProtocol, v))
}

// RehabilitationProtocolHasPrefix applies the HasPrefix predicate on the "rehabilitation_protocol" field.
func RehabilitationProtocolHasPrefix(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldHasPrefix(FieldRehabilitationProtocol, v))
}

// RehabilitationProtocolHasSuffix applies the HasSuffix predicate on the "rehabilitation_protocol" field.
func RehabilitationProtocolHasSuffix(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldHasSuffix(FieldRehabilitationProtocol, v))
}

// RehabilitationProtocolIsNil applies the IsNil predicate on the "rehabilitation_protocol" field.
func RehabilitationProtocolIsNil() predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldIsNull(FieldRehabilitationProtocol))
}

// RehabilitationProtocolNotNil applies the NotNil predicate on the "rehabilitation_protocol" field.
func RehabilitationProtocolNotNil() predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldNotNull(FieldRehabilitationProtocol))
}

// RehabilitationProtocolEqualFold applies the EqualFold predicate on the "rehabilitation_protocol" field.
func RehabilitationProtocolEqualFold(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldEqualFold(FieldRehabilitationProtocol, v))
}

// RehabilitationProtocolContainsFold applies the ContainsFold predicate on the "rehabilitation_protocol" field.
func RehabilitationProtocolContainsFold(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldContainsFold(FieldRehabilitationProtocol, v))
}

// RestrictionsIsNil applies the IsNil predicate on the "restrictions" field.
func RestrictionsIsNil() predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldIsNull(FieldRestrictions))
}

// RestrictionsNotNil applies the NotNil predicate on the "restrictions" field.
func RestrictionsNotNil() predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldNotNull(FieldRestrictions))
}

// EstimatedRecoveryIsNil applies the IsNil predicate on the "estimated_recovery" field.
func EstimatedRecoveryIsNil() predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldIsNull(FieldEstimatedRecovery))
}

// EstimatedRecoveryNotNil applies the NotNil predicate on the "estimated_recovery" field.
func EstimatedRecoveryNotNil() predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldNotNull(FieldEstimatedRecovery))
}

// FollowUpRequiredEQ applies the EQ predicate on the "follow_up_required" field.
func FollowUpRequiredEQ(v bool) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldEQ(FieldFollowUpRequired, v))
}

// FollowUpRequiredNEQ applies the NEQ predicate on the "follow_up_required" field.
func FollowUpRequiredNEQ(v bool) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldNEQ(FieldFollowUpRequired, v))
}

// AppointmentIsNil applies the IsNil predicate on the "appointment" field.
func AppointmentIsNil() predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldIsNull(FieldAppointment))
}

// AppointmentNotNil applies the NotNil predicate on the "appointment" field.
func AppointmentNotNil() predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldNotNull(FieldAppointment))
}

// ClearanceStatusEQ applies the EQ predicate on the "clearance_status" field.
func ClearanceStatusEQ(v ClearanceStatus) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldEQ(FieldClearanceStatus, v))
}

// ClearanceStatusNEQ applies the NEQ predicate on the "clearance_status" field.
func ClearanceStatusNEQ(v ClearanceStatus) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldNEQ(FieldClearanceStatus, v))
}

// ClearanceStatusIn applies the In predicate on the "clearance_status" field.
func ClearanceStatusIn(vs ...ClearanceStatus) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldIn(FieldClearanceStatus, vs...))
}

// ClearanceStatusNotIn applies the NotIn predicate on the "clearance_status" field.
func ClearanceStatusNotIn(vs ...ClearanceStatus) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldNotIn(FieldClearanceStatus, vs...))
}

// TestResultsIsNil applies the IsNil predicate on the "test_results" field.
func TestResultsIsNil() predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldIsNull(FieldTestResults))
}

// TestResultsNotNil applies the NotNil predicate on the "test_results" field.
func TestResultsNotNil() predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldNotNull(FieldTestResults))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.FieldContainsFold(FieldNotes, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InjuryAssessment) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InjuryAssessment) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InjuryAssessment) predicate.InjuryAssessment {
	return predicate.InjuryAssessment(sql.NotPredicates(p))
}
