// Code generated by ent, DO NOT EDIT.

package injuryshortmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the injuryshortmessage type in the database.
	Label = "injury_short_message"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldReportID holds the string denoting the report_id field in the database.
	FieldReportID = "report_id"
	// FieldResponse holds the string denoting the response field in the database.
	FieldResponse = "response"
	// FieldMedication holds the string denoting the medication field in the database.
	FieldMedication = "medication"
	// FieldDoctorNote holds the string denoting the doctor_note field in the database.
	FieldDoctorNote = "doctor_note"
	// FieldAppointmentDate holds the string denoting the appointment_date field in the database.
	FieldAppointmentDate = "appointment_date"
	// FieldAppointmentTime holds the string denoting the appointment_time field in the database.
	FieldAppointmentTime = "appointment_time"
	// Table holds the table name of the injuryshortmessage in the database.
	Table = "injury_short_messages"
)

// Columns holds all SQL columns for injuryshortmessage fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldReportID,
	FieldResponse,
	FieldMedication,
	FieldDoctorNote,
	FieldAppointmentDate,
	FieldAppointmentTime,
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
	// MedicationValidator is a validator for the "medication" field. It is called by the builders before save.
	MedicationValidator func(string) error
	// AppointmentTimeValidator is a validator for the "appointment_time" field. It is called by the builders before save.
	AppointmentTimeValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the InjuryShortMessage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByReportID orders the results by the report_id field.
func ByReportID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportID, opts...).ToFunc()
}

// ByResponse orders the results by the response field.
func ByResponse(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponse, opts...).ToFunc()
}

// ByMedication orders the results by the medication field.
func ByMedication(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMedication, opts...).ToFunc()
}

// ByDoctorNote orders the results by the doctor_note field.
func ByDoctorNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoctorNote, opts...).ToFunc()
}

// ByAppointmentDate orders the results by the appointment_date field.
func ByAppointmentDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppointmentDate, opts...).ToFunc()
}

// ByAppointmentTime orders the results by the appointment_time field.
func ByAppointmentTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppointmentTime, opts...).ToFunc()
}
