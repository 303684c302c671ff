// Code generated by ent, DO NOT EDIT.

package injuryreport

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the injuryreport type in the database.
	Label = "injury_report"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldAthleteID holds the string denoting the athlete_id field in the database.
	FieldAthleteID = "athlete_id"
	// FieldDoctorID holds the string denoting the doctor_id field in the database.
	FieldDoctorID = "doctor_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldInjuryType holds the string denoting the injury_type field in the database.
	FieldInjuryType = "injury_type"
	// FieldBodyPart holds the string denoting the body_part field in the database.
	FieldBodyPart = "body_part"
	// FieldPainLevel holds the string denoting the pain_level field in the database.
	FieldPainLevel = "pain_level"
	// FieldDateOfInjury holds the string denoting the date_of_injury field in the database.
	FieldDateOfInjury = "date_of_injury"
	// FieldActivityContext holds the string denoting the activity_context field in the database.
	FieldActivityContext = "activity_context"
	// FieldSymptoms holds the string denoting the symptoms field in the database.
	FieldSymptoms = "symptoms"
	// FieldAffectingPerformance holds the string denoting the affecting_performance field in the database.
	FieldAffectingPerformance = "affecting_performance"
	// FieldPreviouslyInjured holds the string denoting the previously_injured field in the database.
	FieldPreviouslyInjured = "previously_injured"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldImages holds the string denoting the images field in the database.
	FieldImages = "images"
	// Table holds the table name of the injuryreport in the database.
	Table = "injury_reports"
)

// Columns holds all SQL columns for injuryreport fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldAthleteID,
	FieldDoctorID,
	FieldTitle,
	FieldInjuryType,
	FieldBodyPart,
	FieldPainLevel,
	FieldDateOfInjury,
	FieldActivityContext,
	FieldSymptoms,
	FieldAffectingPerformance,
	FieldPreviouslyInjured,
	FieldNotes,
	FieldImages,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// InjuryTypeValidator is a validator for the "injury_type" field. It is called by the builders before save.
	InjuryTypeValidator func(string) error
	// BodyPartValidator is a validator for the "body_part" field. It is called by the builders before save.
	BodyPartValidator func(string) error
	// PainLevelValidator is a validator for the "pain_level" field. It is called by the builders before save.
	PainLevelValidator func(int) error
	// ActivityContextValidator is a validator for the "activity_context" field. It is called by the builders before save.
	ActivityContextValidator func(string) error
	// DefaultPreviouslyInjured holds the default value on creation for the "previously_injured" field.
	DefaultPreviouslyInjured bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// AffectingPerformance defines the type for the "affecting_performance" enum field.
type AffectingPerformance string

// AffectingPerformance values.
const (
	AffectingPerformanceCANNOT_PLAY AffectingPerformance = "CANNOT_PLAY"
	AffectingPerformanceLIMITED     AffectingPerformance = "LIMITED"
	AffectingPerformanceMINIMAL     AffectingPerformance = "MINIMAL"
	AffectingPerformanceNONE        AffectingPerformance = "NONE"
)

func (ap AffectingPerformance) String() string {
	return string(ap)
}

// AffectingPerformanceValidator is a validator for the "affecting_performance" field enum values. It is called by the builders before save.
func AffectingPerformanceValidator(ap AffectingPerformance) error {
	switch ap {
	case AffectingPerformanceCANNOT_PLAY, AffectingPerformanceLIMITED, AffectingPerformanceMINIMAL, AffectingPerformanceNONE:
		return nil
	default:
		return fmt.Errorf("injuryreport: invalid enum value for affecting_performance field: %q", ap)
	}
}

// OrderOption defines the ordering options for the InjuryReport queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByAthleteID orders the results by the athlete_id field.
func ByAthleteID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAthleteID, opts...).ToFunc()
}

// ByDoctorID orders the results by the doctor_id field.
func ByDoctorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoctorID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByInjuryType orders the results by the injury_type field.
func ByInjuryType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInjuryType, opts...).ToFunc()
}

// ByBodyPart orders the results by the body_part field.
func ByBodyPart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBodyPart, opts...).ToFunc()
}

// ByPainLevel orders the results by the pain_level field.
func ByPainLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPainLevel, opts...).ToFunc()
}

// ByDateOfInjury orders the results by the date_of_injury field.
func ByDateOfInjury(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateOfInjury, opts...).ToFunc()
}

// ByActivityContext orders the results by the activity_context field.
func ByActivityContext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActivityContext, opts...).ToFunc()
}

// ByAffectingPerformance orders the results by the affecting_performance field.
func ByAffectingPerformance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAffectingPerformance, opts...).ToFunc()
}

// ByPreviouslyInjured orders the results by the previously_injured field.
func ByPreviouslyInjured(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreviouslyInjured, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}
