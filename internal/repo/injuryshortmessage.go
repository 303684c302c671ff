// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/athletiq/athletiq_backend/internal/repo/injuryshortmessage"
	"github.com/google/uuid"
)

// InjuryShortMessage is the model entity for the InjuryShortMessage schema.
type InjuryShortMessage struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ReportID holds the value of the "report_id" field.
	ReportID uuid.UUID `json:"report_id,omitempty"`
	// Response holds the value of the "response" field.
	Response string `json:"response,omitempty"`
	// Medication holds the value of the "medication" field.
	Medication string `json:"medication,omitempty"`
	// DoctorNote holds the value of the "doctor_note" field.
	DoctorNote string `json:"doctor_note,omitempty"`
	// AppointmentDate holds the value of the "appointment_date" field.
	AppointmentDate time.Time `json:"appointment_date,omitempty"`
	// AppointmentTime holds the value of the "appointment_time" field.
	AppointmentTime string `json:"appointment_time,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InjuryShortMessage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case injuryshortmessage.FieldResponse, injuryshortmessage.FieldMedication, injuryshortmessage.FieldDoctorNote, injuryshortmessage.FieldAppointmentTime:
			values[i] = new(sql.NullString)
		case injuryshortmessage.FieldCreatedAt, injuryshortmessage.FieldAppointmentDate:
			values[i] = new(sql.NullTime)
		case injuryshortmessage.FieldID, injuryshortmessage.FieldReportID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InjuryShortMessage fields.
func (_m *InjuryShortMessage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case injuryshortmessage.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case injuryshortmessage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case injuryshortmessage.FieldReportID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value != nil {
				_m.ReportID = *value
			}
		case injuryshortmessage.FieldResponse:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field response", values[i])
			} else if value.Valid {
				_m.Response = value.String
			}
		case injuryshortmessage.FieldMedication:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field medication", values[i])
			} else if value.Valid {
				_m.Medication = value.String
			}
		case injuryshortmessage.FieldDoctorNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_note", values[i])
			} else if value.Valid {
				_m.DoctorNote = value.String
			}
		case injuryshortmessage.FieldAppointmentDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field appointment_date", values[i])
			} else if value.Valid {
				_m.AppointmentDate = value.Time
			}
		case injuryshortmessage.FieldAppointmentTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field appointment_time", values[i])
			} else if value.Valid {
				_m.AppointmentTime = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InjuryShortMessage.
// This includes values selected through modifiers, order, etc.
func (_m *InjuryShortMessage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this InjuryShortMessage.
// Note that you need to call InjuryShortMessage.Unwrap() before calling this method if this InjuryShortMessage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InjuryShortMessage) Update() *InjuryShortMessageUpdateOne {
	return NewInjuryShortMessageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InjuryShortMessage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InjuryShortMessage) Unwrap() *InjuryShortMessage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: InjuryShortMessage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InjuryShortMessage) String() string {
	var builder strings.Builder
	builder.WriteString("InjuryShortMessage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("report_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReportID))
	builder.WriteString(", ")
	builder.WriteString("response=")
	builder.WriteString(_m.Response)
	builder.WriteString(", ")
	builder.WriteString("medication=")
	builder.WriteString(_m.Medication)
	builder.WriteString(", ")
	builder.WriteString("doctor_note=")
	builder.WriteString(_m.DoctorNote)
	builder.WriteString(", ")
	builder.WriteString("appointment_date=")
	builder.WriteString(_m.AppointmentDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("appointment_time=")
	builder.WriteString(_m.AppointmentTime)
	builder.WriteByte(')')
	return builder.String()
}

// InjuryShortMessages is a parsable slice of InjuryShortMessage.
type InjuryShortMessages []*InjuryShortMessage
