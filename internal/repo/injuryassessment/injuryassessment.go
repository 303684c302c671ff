// Code generated by ent, DO NOT EDIT.

package injuryassessment

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the injuryassessment type in the database.
	Label = "injury_assessment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldReportID holds the string denoting the report_id field in the database.
	FieldReportID = "report_id"
	// FieldDoctorID holds the string denoting the doctor_id field in the database.
	FieldDoctorID = "doctor_id"
	// FieldDiagnosis holds the string denoting the diagnosis field in the database.
	FieldDiagnosis = "diagnosis"
	// FieldDiagnosisDetails holds the string denoting the diagnosis_details field in the database.
	FieldDiagnosisDetails = "diagnosis_details"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldTreatmentPlan holds the string denoting the treatment_plan field in the database.
	FieldTreatmentPlan = "treatment_plan"
	// FieldMedications holds the string denoting the medications field in the database.
	FieldMedications = "medications"
	// FieldRehabilitationProtocol holds the string denoting the rehabilitation_protocol field in the database.
	FieldRehabilitationProtocol = "rehabilitation_protocol"
	// FieldRestrictions holds the string denoting the restrictions field in the database.
	FieldRestrictions = "restrictions"
	// FieldEstimatedRecovery holds the string denoting the estimated_recovery field in the database.
	FieldEstimatedRecovery = "estimated_recovery"
	// FieldFollowUpRequired holds the string denoting the follow_up_required field in the database.
	FieldFollowUpRequired = "follow_up_required"
	// FieldAppointment holds the string denoting the appointment field in the database.
	FieldAppointment = "appointment"
	// FieldClearanceStatus holds the string denoting the clearance_status field in the database.
	FieldClearanceStatus = "clearance_status"
	// FieldTestResults holds the string denoting the test_results field in the database.
	FieldTestResults = "test_results"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// Table holds the table name of the injuryassessment in the database.
	Table = "injury_assessments"
)

// Columns holds all SQL columns for injuryassessment fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldReportID,
	FieldDoctorID,
	FieldDiagnosis,
	FieldDiagnosisDetails,
	FieldSeverity,
	FieldTreatmentPlan,
	FieldMedications,
	FieldRehabilitationProtocol,
	FieldRestrictions,
	FieldEstimatedRecovery,
	FieldFollowUpRequired,
	FieldAppointment,
	FieldClearanceStatus,
	FieldTestResults,
	FieldNotes,
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
	// DefaultFollowUpRequired holds the default value on creation for the "follow_up_required" field.
	DefaultFollowUpRequired bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Severity defines the type for the "severity" enum field.
type Severity string

// Severity values.
const (
	SeverityMINOR    Severity = "MINOR"
	SeverityMODERATE Severity = "MODERATE"
	SeveritySEVERE   Severity = "SEVERE"
	SeverityCRITICAL Severity = "CRITICAL"
)

func (s Severity) String() string {
	return string(s)
}

// SeverityValidator is a validator for the "severity" field enum values. It is called by the builders before save.
func SeverityValidator(s Severity) error {
	switch s {
	case SeverityMINOR, SeverityMODERATE, SeveritySEVERE, SeverityCRITICAL:
		return nil
	default:
		return fmt.Errorf("injuryassessment: invalid enum value for severity field: %q", s)
	}
}

// ClearanceStatus defines the type for the "clearance_status" enum field.
type ClearanceStatus string

// ClearanceStatusFULL_CLEARANCE_PENDING is the default value of the ClearanceStatus enum.
const DefaultClearanceStatus = ClearanceStatusFULL_CLEARANCE_PENDING

// ClearanceStatus values.
const (
	ClearanceStatusNO_ACTIVITY            ClearanceStatus = "NO_ACTIVITY"
	ClearanceStatusLIMITED_ACTIVITY       ClearanceStatus = "LIMITED_ACTIVITY"
	ClearanceStatusFULL_CLEARANCE_PENDING ClearanceStatus = "FULL_CLEARANCE_PENDING"
	ClearanceStatusFULLY_CLEARED          ClearanceStatus = "FULLY_CLEARED"
)

func (cs ClearanceStatus) String() string {
	return string(cs)
}

// ClearanceStatusValidator is a validator for the "clearance_status" field enum values. It is called by the builders before save.
func ClearanceStatusValidator(cs ClearanceStatus) error {
	switch cs {
	case ClearanceStatusNO_ACTIVITY, ClearanceStatusLIMITED_ACTIVITY, ClearanceStatusFULL_CLEARANCE_PENDING, ClearanceStatusFULLY_CLEARED:
		return nil
	default:
		return fmt.Errorf("injuryassessment: invalid enum value for clearance_status field: %q", cs)
	}
}

// OrderOption defines the ordering options for the InjuryAssessment queries.
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

// ByReportID orders the results by the report_id field.
func ByReportID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportID, opts...).ToFunc()
}

// ByDoctorID orders the results by the doctor_id field.
func ByDoctorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoctorID, opts...).ToFunc()
}

// ByDiagnosis orders the results by the diagnosis field.
func ByDiagnosis(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiagnosis, opts...).ToFunc()
}

// ByDiagnosisDetails orders the results by the diagnosis_details field.
func ByDiagnosisDetails(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiagnosisDetails, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByTreatmentPlan orders the results by the treatment_plan field.
func ByTreatmentPlan(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTreatmentPlan, opts...).ToFunc()
}

// ByRehabilitationProtocol orders the results by the rehabilitation_protocol field.
func ByRehabilitationProtocol(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRehabilitationProtocol, opts...).ToFunc()
}

// ByFollowUpRequired orders the results by the follow_up_required field.
func ByFollowUpRequired(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFollowUpRequired, opts...).ToFunc()
}

// ByClearanceStatus orders the results by the clearance_status field.
func ByClearanceStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClearanceStatus, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}
