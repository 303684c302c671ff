// Code generated by ent, DO NOT EDIT.

package injuryreport

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/athletiq/athletiq_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldEQ(FieldUpdatedAt, v))
}

// AthleteID applies equality check predicate on the "athlete_id" field. It's identical to AthleteIDEQ.
func AthleteID(v uuid.UUID) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldEQ(FieldAthleteID, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldEQ(FieldDoctorID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldEQ(FieldTitle, v))
}

// InjuryType applies equality check predicate on the "injury_type" field. It's identical to InjuryTypeEQ.
func InjuryType(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldEQ(FieldInjuryType, v))
}

// BodyPart applies equality check predicate on the "body_part" field. It's identical to BodyPartEQ.
func BodyPart(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldEQ(FieldBodyPart, v))
}

// PainLevel applies equality check predicate on the "pain_level" field. It's identical to PainLevelEQ.
func PainLevel(v int) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldEQ(FieldPainLevel, v))
}

// DateOfInjury applies equality check predicate on the "date_of_injury" field. It's identical to DateOfInjuryEQ.
func DateOfInjury(v time.Time) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldEQ(FieldDateOfInjury, v))
}

// ActivityContext applies equality check predicate on the "activity_context" field. It's identical to ActivityContextEQ.
func ActivityContext(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldEQ(FieldActivityContext, v))
}

// PreviouslyInjured applies equality check predicate on the "previously_injured" field. It's identical to PreviouslyInjuredEQ.
func PreviouslyInjured(v bool) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldEQ(FieldPreviouslyInjured, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldEQ(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldLTE(FieldUpdatedAt, v))
}

// AthleteIDEQ applies the EQ predicate on the "athlete_id" field.
func AthleteIDEQ(v uuid.UUID) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldEQ(FieldAthleteID, v))
}

// AthleteIDNEQ applies the NEQ predicate on the "athlete_id" field.
func AthleteIDNEQ(v uuid.UUID) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldNEQ(FieldAthleteID, v))
}

// AthleteIDIn applies the In predicate on the "athlete_id" field.
func AthleteIDIn(vs ...uuid.UUID) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldIn(FieldAthleteID, vs...))
}

// AthleteIDNotIn applies the NotIn predicate on the "athlete_id" field.
func AthleteIDNotIn(vs ...uuid.UUID) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldNotIn(FieldAthleteID, vs...))
}

// AthleteIDGT applies the GT predicate on the "athlete_id" field.
func AthleteIDGT(v uuid.UUID) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldGT(FieldAthleteID, v))
}

// AthleteIDGTE applies the GTE predicate on the "athlete_id" field.
func AthleteIDGTE(v uuid.UUID) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldGTE(FieldAthleteID, v))
}

// AthleteIDLT applies the LT predicate on the "athlete_id" field.
func AthleteIDLT(v uuid.UUID) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldLT(FieldAthleteID, v))
}

// AthleteIDLTE applies the LTE predicate on the "athlete_id" field.
func AthleteIDLTE(v uuid.UUID) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldLTE(FieldAthleteID, v))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldNotIn(FieldDoctorID, vs...))
}

// DoctorIDGT applies the GT predicate on the "doctor_id" field.
func DoctorIDGT(v uuid.UUID) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldGT(FieldDoctorID, v))
}

// DoctorIDGTE applies the GTE predicate on the "doctor_id" field.
func DoctorIDGTE(v uuid.UUID) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldGTE(FieldDoctorID, v))
}

// DoctorIDLT applies the LT predicate on the "doctor_id" field.
func DoctorIDLT(v uuid.UUID) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldLT(FieldDoctorID, v))
}

// DoctorIDLTE applies the LTE predicate on the "doctor_id" field.
func DoctorIDLTE(v uuid.UUID) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldLTE(FieldDoctorID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldContainsFold(FieldTitle, v))
}

// InjuryTypeEQ applies the EQ predicate on the "injury_type" field.
func InjuryTypeEQ(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldEQ(FieldInjuryType, v))
}

// InjuryTypeNEQ applies the NEQ predicate on the "injury_type" field.
func InjuryTypeNEQ(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldNEQ(FieldInjuryType, v))
}

// InjuryTypeIn applies the In predicate on the "injury_type" field.
func InjuryTypeIn(vs ...string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldIn(FieldInjuryType, vs...))
}

// InjuryTypeNotIn applies the NotIn predicate on the "injury_type" field.
func InjuryTypeNotIn(vs ...string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldNotIn(FieldInjuryType, vs...))
}

// InjuryTypeGT applies the GT predicate on the "injury_type" field.
func InjuryTypeGT(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldGT(FieldInjuryType, v))
}

// InjuryTypeGTE applies the GTE predicate on the "injury_type" field.
func InjuryTypeGTE(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldGTE(FieldInjuryType, v))
}

// InjuryTypeLT applies the LT predicate on the "injury_type" field.
func InjuryTypeLT(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldLT(FieldInjuryType, v))
}

// InjuryTypeLTE applies the LTE predicate on the "injury_type" field.
func InjuryTypeLTE(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldLTE(FieldInjuryType, v))
}

// InjuryTypeContains applies the Contains predicate on the "injury_type" field.
func InjuryTypeContains(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldContains(FieldInjuryType, v))
}

// InjuryTypeHasPrefix applies the HasPrefix predicate on the "injury_type" field.
func InjuryTypeHasPrefix(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldHasPrefix(FieldInjuryType, v))
}

// InjuryTypeHasSuffix applies the HasSuffix predicate on the "injury_type" field.
func InjuryTypeHasSuffix(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldHasSuffix(FieldInjuryType, v))
}

// InjuryTypeEqualFold applies the EqualFold predicate on the "injury_type" field.
func InjuryTypeEqualFold(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldEqualFold(FieldInjuryType, v))
}

// InjuryTypeContainsFold applies the ContainsFold predicate on the "injury_type" field.
func InjuryTypeContainsFold(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldContainsFold(FieldInjuryType, v))
}

// BodyPartEQ applies the EQ predicate on the "body_part" field.
func BodyPartEQ(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldEQ(FieldBodyPart, v))
}

// BodyPartNEQ applies the NEQ predicate on the "body_part" field.
func BodyPartNEQ(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldNEQ(FieldBodyPart, v))
}

// BodyPartIn applies the In predicate on the "body_part" field.
func BodyPartIn(vs ...string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldIn(FieldBodyPart, vs...))
}

// BodyPartNotIn applies the NotIn predicate on the "body_part" field.
func BodyPartNotIn(vs ...string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldNotIn(FieldBodyPart, vs...))
}

// BodyPartGT applies the GT predicate on the "body_part" field.
func BodyPartGT(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldGT(FieldBodyPart, v))
}

// BodyPartGTE applies the GTE predicate on the "body_part" field.
func BodyPartGTE(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldGTE(FieldBodyPart, v))
}

// BodyPartLT applies the LT predicate on the "body_part" field.
func BodyPartLT(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldLT(FieldBodyPart, v))
}

// BodyPartLTE applies the LTE predicate on the "body_part" field.
func BodyPartLTE(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldLTE(FieldBodyPart, v))
}

// BodyPartContains applies the Contains predicate on the "body_part" field.
func BodyPartContains(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldContains(FieldBodyPart, v))
}

// BodyPartHasPrefix applies the HasPrefix predicate on the "body_part" field.
func BodyPartHasPrefix(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldHasPrefix(FieldBodyPart, v))
}

// BodyPartHasSuffix applies the HasSuffix predicate on the "body_part" field.
func BodyPartHasSuffix(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldHasSuffix(FieldBodyPart, v))
}

// BodyPartEqualFold applies the EqualFold predicate on the "body_part" field.
func BodyPartEqualFold(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldEqualFold(FieldBodyPart, v))
}

// BodyPartContainsFold applies the ContainsFold predicate on the "body_part" field.
func BodyPartContainsFold(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldContainsFold(FieldBodyPart, v))
}

// PainLevelEQ applies the EQ predicate on the "pain_level" field.
func PainLevelEQ(v int) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldEQ(FieldPainLevel, v))
}

// PainLevelNEQ applies the NEQ predicate on the "pain_level" field.
func PainLevelNEQ(v int) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldNEQ(FieldPainLevel, v))
}

// PainLevelIn applies the In predicate on the "pain_level" field.
func PainLevelIn(vs ...int) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldIn(FieldPainLevel, vs...))
}

// PainLevelNotIn applies the NotIn predicate on the "pain_level" field.
func PainLevelNotIn(vs ...int) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldNotIn(FieldPainLevel, vs...))
}

// PainLevelGT applies the GT predicate on the "pain_level" field.
func PainLevelGT(v int) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldGT(FieldPainLevel, v))
}

// PainLevelGTE applies the GTE predicate on the "pain_level" field.
func PainLevelGTE(v int) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldGTE(FieldPainLevel, v))
}

// PainLevelLT applies the LT predicate on the "pain_level" field.
func PainLevelLT(v int) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldLT(FieldPainLevel, v))
}

// PainLevelLTE applies the LTE predicate on the "pain_level" field.
func PainLevelLTE(v int) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldLTE(FieldPainLevel, v))
}

// DateOfInjuryEQ applies the EQ predicate on the "date_of_injury" field.
func DateOfInjuryEQ(v time.Time) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldEQ(FieldDateOfInjury, v))
}

// DateOfInjuryNEQ applies the NEQ predicate on the "date_of_injury" field.
func DateOfInjuryNEQ(v time.Time) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldNEQ(FieldDateOfInjury, v))
}

// DateOfInjuryIn applies the In predicate on the "date_of_injury" field.
func DateOfInjuryIn(vs ...time.Time) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldIn(FieldDateOfInjury, vs...))
}

// DateOfInjuryNotIn applies the NotIn predicate on the "date_of_injury" field.
func DateOfInjuryNotIn(vs ...time.Time) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldNotIn(FieldDateOfInjury, vs...))
}

// DateOfInjuryGT applies the GT predicate on the "date_of_injury" field.
func DateOfInjuryGT(v time.Time) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldGT(FieldDateOfInjury, v))
}

// DateOfInjuryGTE applies the GTE predicate on the "date_of_injury" field.
func DateOfInjuryGTE(v time.Time) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldGTE(FieldDateOfInjury, v))
}

// DateOfInjuryLT applies the LT predicate on the "date_of_injury" field.
func DateOfInjuryLT(v time.Time) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldLT(FieldDateOfInjury, v))
}

// DateOfInjuryLTE applies the LTE predicate on the "date_of_injury" field.
func DateOfInjuryLTE(v time.Time) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldLTE(FieldDateOfInjury, v))
}

// ActivityContextEQ applies the EQ predicate on the "activity_context" field.
func ActivityContextEQ(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldEQ(FieldActivityContext, v))
}

// ActivityContextNEQ applies the NEQ predicate on the "activity_context" field.
func ActivityContextNEQ(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldNEQ(FieldActivityContext, v))
}

// ActivityContextIn applies the In predicate on the "activity_context" field.
func ActivityContextIn(vs ...string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldIn(FieldActivityContext, vs...))
}

// ActivityContextNotIn applies the NotIn predicate on the "activity_context" field.
func ActivityContextNotIn(vs ...string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldNotIn(FieldActivityContext, vs...))
}

// ActivityContextGT applies the GT predicate on the "activity_context" field.
func ActivityContextGT(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldGT(FieldActivityContext, v))
}

// ActivityContextGTE applies the GTE predicate on the "activity_context" field.
func ActivityContextGTE(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldGTE(FieldActivityContext, v))
}

// ActivityContextLT applies the LT predicate on the "activity_context" field.
func ActivityContextLT(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldLT(FieldActivityContext, v))
}

// ActivityContextLTE applies the LTE predicate on the "activity_context" field.
func ActivityContextLTE(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldLTE(FieldActivityContext, v))
}

// ActivityContextContains applies the Contains predicate on the "activity_context" field.
func ActivityContextContains(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldContains(FieldActivityContext, v))
}

// ActivityContextHasPrefix applies the HasPrefix predicate on the "activity_context" field.
func ActivityContextHasPrefix(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldHasPrefix(FieldActivityContext, v))
}

// ActivityContextHasSuffix applies the HasSuffix predicate on the "activity_context" field.
func ActivityContextHasSuffix(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldHasSuffix(FieldActivityContext, v))
}

// ActivityContextIsNil applies the IsNil predicate on the "activity_context" field.
func ActivityContextIsNil() predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldIsNull(FieldActivityContext))
}

// ActivityContextNotNil applies the NotNil predicate on the "activity_context" field.
func ActivityContextNotNil() predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldNotNull(FieldActivityContext))
}

// ActivityContextEqualFold applies the EqualFold predicate on the "activity_context" field.
func ActivityContextEqualFold(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldEqualFold(FieldActivityContext, v))
}

// ActivityContextContainsFold applies the ContainsFold predicate on the "activity_context" field.
func ActivityContextContainsFold(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldContainsFold(FieldActivityContext, v))
}

// SymptomsIsNil applies the IsNil predicate on the "symptoms" field.
func SymptomsIsNil() predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldIsNull(FieldSymptoms))
}

// SymptomsNotNil applies the NotNil predicate on the "symptoms" field.
func SymptomsNotNil() predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldNotNull(FieldSymptoms))
}

// AffectingPerformanceEQ applies the EQ predicate on the "affecting_performance" field.
func AffectingPerformanceEQ(v AffectingPerformance) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldEQ(FieldAffectingPerformance, v))
}

// AffectingPerformanceNEQ applies the NEQ predicate on the "affecting_performance" field.
func AffectingPerformanceNEQ(v AffectingPerformance) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldNEQ(FieldAffectingPerformance, v))
}

// AffectingPerformanceIn applies the In predicate on the "affecting_performance" field.
func AffectingPerformanceIn(vs ...AffectingPerformance) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldIn(FieldAffectingPerformance, vs...))
}

// AffectingPerformanceNotIn applies the NotIn predicate on the "affecting_performance" field.
func AffectingPerformanceNotIn(vs ...AffectingPerformance) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldNotIn(FieldAffectingPerformance, vs...))
}

// PreviouslyInjuredEQ applies the EQ predicate on the "previously_injured" field.
func PreviouslyInjuredEQ(v bool) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldEQ(FieldPreviouslyInjured, v))
}

// PreviouslyInjuredNEQ applies the NEQ predicate on the "previously_injured" field.
func PreviouslyInjuredNEQ(v bool) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldNEQ(FieldPreviouslyInjured, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldContainsFold(FieldNotes, v))
}

// ImagesIsNil applies the IsNil predicate on the "images" field.
func ImagesIsNil() predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldIsNull(FieldImages))
}

// ImagesNotNil applies the NotNil predicate on the "images" field.
func ImagesNotNil() predicate.InjuryReport {
	return predicate.InjuryReport(sql.FieldNotNull(FieldImages))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InjuryReport) predicate.InjuryReport {
	return predicate.InjuryReport(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InjuryReport) predicate.InjuryReport {
	return predicate.InjuryReport(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InjuryReport) predicate.InjuryReport {
	return predicate.InjuryReport(sql.NotPredicates(p))
}
