// Code generated by ent, DO NOT EDIT.

package injuryshortmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/athletiq/athletiq_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// ReportID applies equality check predicate on the "report_id" field. It's identical to ReportIDEQ.
func ReportID(v uuid.UUID) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldEQ(FieldReportID, v))
}

// Response applies equality check predicate on the "response" field. It's identical to ResponseEQ.
func Response(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldEQ(FieldResponse, v))
}

// Medication applies equality check predicate on the "medication" field. It's identical to MedicationEQ.
func Medication(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldEQ(FieldMedication, v))
}

// DoctorNote applies equality check predicate on the "doctor_note" field. It's identical to DoctorNoteEQ.
func DoctorNote(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldEQ(FieldDoctorNote, v))
}

// AppointmentDate applies equality check predicate on the "appointment_date" field. It's identical to AppointmentDateEQ.
func AppointmentDate(v time.Time) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldEQ(FieldAppointmentDate, v))
}

// AppointmentTime applies equality check predicate on the "appointment_time" field. It's identical to AppointmentTimeEQ.
func AppointmentTime(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldEQ(FieldAppointmentTime, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldLTE(FieldCreatedAt, v))
}

// ReportIDEQ applies the EQ predicate on the "report_id" field.
func ReportIDEQ(v uuid.UUID) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldEQ(FieldReportID, v))
}

// ReportIDNEQ applies the NEQ predicate on the "report_id" field.
func ReportIDNEQ(v uuid.UUID) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldNEQ(FieldReportID, v))
}

// ReportIDIn applies the In predicate on the "report_id" field.
func ReportIDIn(vs ...uuid.UUID) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldIn(FieldReportID, vs...))
}

// ReportIDNotIn applies the NotIn predicate on the "report_id" field.
func ReportIDNotIn(vs ...uuid.UUID) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldNotIn(FieldReportID, vs...))
}

// ReportIDGT applies the GT predicate on the "report_id" field.
func ReportIDGT(v uuid.UUID) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldGT(FieldReportID, v))
}

// ReportIDGTE applies the GTE predicate on the "report_id" field.
func ReportIDGTE(v uuid.UUID) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldGTE(FieldReportID, v))
}

// ReportIDLT applies the LT predicate on the "report_id" field.
func ReportIDLT(v uuid.UUID) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldLT(FieldReportID, v))
}

// ReportIDLTE applies the LTE predicate on the "report_id" field.
func ReportIDLTE(v uuid.UUID) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldLTE(FieldReportID, v))
}

// ResponseEQ applies the EQ predicate on the "response" field.
func ResponseEQ(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldEQ(FieldResponse, v))
}

// ResponseNEQ applies the NEQ predicate on the "response" field.
func ResponseNEQ(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldNEQ(FieldResponse, v))
}

// ResponseIn applies the In predicate on the "response" field.
func ResponseIn(vs ...string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldIn(FieldResponse, vs...))
}

// ResponseNotIn applies the NotIn predicate on the "response" field.
func ResponseNotIn(vs ...string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldNotIn(FieldResponse, vs...))
}

// ResponseGT applies the GT predicate on the "response" field.
func ResponseGT(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldGT(FieldResponse, v))
}

// ResponseGTE applies the GTE predicate on the "response" field.
func ResponseGTE(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldGTE(FieldResponse, v))
}

// ResponseLT applies the LT predicate on the "response" field.
func ResponseLT(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldLT(FieldResponse, v))
}

// ResponseLTE applies the LTE predicate on the "response" field.
func ResponseLTE(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldLTE(FieldResponse, v))
}

// ResponseContains applies the Contains predicate on the "response" field.
func ResponseContains(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldContains(FieldResponse, v))
}

// ResponseHasPrefix applies the HasPrefix predicate on the "response" field.
func ResponseHasPrefix(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldHasPrefix(FieldResponse, v))
}

// ResponseHasSuffix applies the HasSuffix predicate on the "response" field.
func ResponseHasSuffix(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldHasSuffix(FieldResponse, v))
}

// ResponseEqualFold applies the EqualFold predicate on the "response" field.
func ResponseEqualFold(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldEqualFold(FieldResponse, v))
}

// ResponseContainsFold applies the ContainsFold predicate on the "response" field.
func ResponseContainsFold(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldContainsFold(FieldResponse, v))
}

// MedicationEQ applies the EQ predicate on the "medication" field.
func MedicationEQ(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldEQ(FieldMedication, v))
}

// MedicationNEQ applies the NEQ predicate on the "medication" field.
func MedicationNEQ(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldNEQ(FieldMedication, v))
}

// MedicationIn applies the In predicate on the "medication" field.
func MedicationIn(vs ...string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldIn(FieldMedication, vs...))
}

// MedicationNotIn applies the NotIn predicate on the "medication" field.
func MedicationNotIn(vs ...string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldNotIn(FieldMedication, vs...))
}

// MedicationGT applies the GT predicate on the "medication" field.
func MedicationGT(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldGT(FieldMedication, v))
}

// MedicationGTE applies the GTE predicate on the "medication" field.
func MedicationGTE(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldGTE(FieldMedication, v))
}

// MedicationLT applies the LT predicate on the "medication" field.
func MedicationLT(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldLT(FieldMedication, v))
}

// MedicationLTE applies the LTE predicate on the "medication" field.
func MedicationLTE(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldLTE(FieldMedication, v))
}

// MedicationContains applies the Contains predicate on the "medication" field.
func MedicationContains(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldContains(FieldMedication, v))
}

// MedicationHasPrefix applies the HasPrefix predicate on the "medication" field.
func MedicationHasPrefix(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldHasPrefix(FieldMedication, v))
}

// MedicationHasSuffix applies the HasSuffix predicate on the "medication" field.
func MedicationHasSuffix(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldHasSuffix(FieldMedication, v))
}

// MedicationEqualFold applies the EqualFold predicate on the "medication" field.
func MedicationEqualFold(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldEqualFold(FieldMedication, v))
}

// MedicationContainsFold applies the ContainsFold predicate on the "medication" field.
func MedicationContainsFold(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldContainsFold(FieldMedication, v))
}

// DoctorNoteEQ applies the EQ predicate on the "doctor_note" field.
func DoctorNoteEQ(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldEQ(FieldDoctorNote, v))
}

// DoctorNoteNEQ applies the NEQ predicate on the "doctor_note" field.
func DoctorNoteNEQ(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldNEQ(FieldDoctorNote, v))
}

// DoctorNoteIn applies the In predicate on the "doctor_note" field.
func DoctorNoteIn(vs ...string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldIn(FieldDoctorNote, vs...))
}

// DoctorNoteNotIn applies the NotIn predicate on the "doctor_note" field.
func DoctorNoteNotIn(vs ...string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldNotIn(FieldDoctorNote, vs...))
}

// DoctorNoteGT applies the GT predicate on the "doctor_note" field.
func DoctorNoteGT(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldGT(FieldDoctorNote, v))
}

// DoctorNoteGTE applies the GTE predicate on the "doctor_note" field.
func DoctorNoteGTE(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldGTE(FieldDoctorNote, v))
}

// DoctorNoteLT applies the LT predicate on the "doctor_note" field.
func DoctorNoteLT(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldLT(FieldDoctorNote, v))
}

// DoctorNoteLTE applies the LTE predicate on the "doctor_note" field.
func DoctorNoteLTE(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldLTE(FieldDoctorNote, v))
}

// DoctorNoteContains applies the Contains predicate on the "doctor_note" field.
func DoctorNoteContains(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldContains(FieldDoctorNote, v))
}

// DoctorNoteHasPrefix applies the HasPrefix predicate on the "doctor_note" field.
func DoctorNoteHasPrefix(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldHasPrefix(FieldDoctorNote, v))
}

// DoctorNoteHasSuffix applies the HasSuffix predicate on the "doctor_note" field.
func DoctorNoteHasSuffix(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldHasSuffix(FieldDoctorNote, v))
}

// DoctorNoteEqualFold applies the EqualFold predicate on the "doctor_note" field.
func DoctorNoteEqualFold(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldEqualFold(FieldDoctorNote, v))
}

// DoctorNoteContainsFold applies the ContainsFold predicate on the "doctor_note" field.
func DoctorNoteContainsFold(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldContainsFold(FieldDoctorNote, v))
}

// AppointmentDateEQ applies the EQ predicate on the "appointment_date" field.
func AppointmentDateEQ(v time.Time) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldEQ(FieldAppointmentDate, v))
}

// AppointmentDateNEQ applies the NEQ predicate on the "appointment_date" field.
func AppointmentDateNEQ(v time.Time) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldNEQ(FieldAppointmentDate, v))
}

// AppointmentDateIn applies the In predicate on the "appointment_date" field.
func AppointmentDateIn(vs ...time.Time) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldIn(FieldAppointmentDate, vs...))
}

// AppointmentDateNotIn applies the NotIn predicate on the "appointment_date" field.
func AppointmentDateNotIn(vs ...time.Time) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldNotIn(FieldAppointmentDate, vs...))
}

// AppointmentDateGT applies the GT predicate on the "appointment_date" field.
func AppointmentDateGT(v time.Time) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldGT(FieldAppointmentDate, v))
}

// AppointmentDateGTE applies the GTE predicate on the "appointment_date" field.
func AppointmentDateGTE(v time.Time) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldGTE(FieldAppointmentDate, v))
}

// AppointmentDateLT applies the LT predicate on the "appointment_date" field.
func AppointmentDateLT(v time.Time) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldLT(FieldAppointmentDate, v))
}

// AppointmentDateLTE applies the LTE predicate on the "appointment_date" field.
func AppointmentDateLTE(v time.Time) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldLTE(FieldAppointmentDate, v))
}

// AppointmentTimeEQ applies the EQ predicate on the "appointment_time" field.
func AppointmentTimeEQ(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldEQ(FieldAppointmentTime, v))
}

// AppointmentTimeNEQ applies the NEQ predicate on the "appointment_time" field.
func AppointmentTimeNEQ(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldNEQ(FieldAppointmentTime, v))
}

// AppointmentTimeIn applies the In predicate on the "appointment_time" field.
func AppointmentTimeIn(vs ...string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldIn(FieldAppointmentTime, vs...))
}

// AppointmentTimeNotIn applies the NotIn predicate on the "appointment_time" field.
func AppointmentTimeNotIn(vs ...string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldNotIn(FieldAppointmentTime, vs...))
}

// AppointmentTimeGT applies the GT predicate on the "appointment_time" field.
func AppointmentTimeGT(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldGT(FieldAppointmentTime, v))
}

// AppointmentTimeGTE applies the GTE predicate on the "appointment_time" field.
func AppointmentTimeGTE(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldGTE(FieldAppointmentTime, v))
}

// AppointmentTimeLT applies the LT predicate on the "appointment_time" field.
func AppointmentTimeLT(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldLT(FieldAppointmentTime, v))
}

// AppointmentTimeLTE applies the LTE predicate on the "appointment_time" field.
func AppointmentTimeLTE(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldLTE(FieldAppointmentTime, v))
}

// AppointmentTimeContains applies the Contains predicate on the "appointment_time" field.
func AppointmentTimeContains(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldContains(FieldAppointmentTime, v))
}

// AppointmentTimeHasPrefix applies the HasPrefix predicate on the "appointment_time" field.
func AppointmentTimeHasPrefix(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldHasPrefix(FieldAppointmentTime, v))
}

// AppointmentTimeHasSuffix applies the HasSuffix predicate on the "appointment_time" field.
func AppointmentTimeHasSuffix(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldHasSuffix(FieldAppointmentTime, v))
}

// AppointmentTimeEqualFold applies the EqualFold predicate on the "appointment_time" field.
func AppointmentTimeEqualFold(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldEqualFold(FieldAppointmentTime, v))
}

// AppointmentTimeContainsFold applies the ContainsFold predicate on the "appointment_time" field.
func AppointmentTimeContainsFold(v string) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.FieldContainsFold(FieldAppointmentTime, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InjuryShortMessage) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InjuryShortMessage) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InjuryShortMessage) predicate.InjuryShortMessage {
	return predicate.InjuryShortMessage(sql.NotPredicates(p))
}
