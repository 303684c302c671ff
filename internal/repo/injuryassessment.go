// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/athletiq/athletiq_backend/internal/domain/injury"
	"github.com/athletiq/athletiq_backend/internal/repo/injuryassessment"
	"github.com/google/uuid"
)

// InjuryAssessment is the model entity for the InjuryAssessment schema.
type InjuryAssessment struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// ReportID holds the value of the "report_id" field.
	ReportID uuid.UUID `json:"report_id,omitempty"`
	// DoctorID holds the value of the "doctor_id" field.
	DoctorID uuid.UUID `json:"doctor_id,omitempty"`
	// Diagnosis holds the value of the "diagnosis" field.
	Diagnosis string `json:"diagnosis,omitempty"`
	// DiagnosisDetails holds the value of the "diagnosis_details" field.
	DiagnosisDetails string `json:"diagnosis_details,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity injuryassessment.Severity `json:"severity,omitempty"`
	// TreatmentPlan holds the value of the "treatment_plan" field.
	TreatmentPlan string `json:"treatment_plan,omitempty"`
	// Medications holds the value of the "medications" field.
	Medications []injury.MedicationItem `json:"medications,omitempty"`
	// RehabilitationProtocol holds the value of the "rehabilitation_protocol" field.
	RehabilitationProtocol string `json:"rehabilitation_protocol,omitempty"`
	// Restrictions holds the value of the "restrictions" field.
	Restrictions []string `json:"restrictions,omitempty"`
	// EstimatedRecovery holds the value of the "estimated_recovery" field.
	EstimatedRecovery *injury.RecoveryEstimate `json:"estimated_recovery,omitempty"`
	// FollowUpRequired holds the value of the "follow_up_required" field.
	FollowUpRequired bool `json:"follow_up_required,omitempty"`
	// Appointment holds the value of the "appointment" field.
	Appointment *injury.ScheduledAppointment `json:"appointment,omitempty"`
	// ClearanceStatus holds the value of the "clearance_status" field.
	ClearanceStatus injuryassessment.ClearanceStatus `json:"clearance_status,omitempty"`
	// TestResults holds the value of the "test_results" field.
	TestResults []injury.TestResult `json:"test_results,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes        string `json:"notes,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InjuryAssessment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case injuryassessment.FieldMedications, injuryassessment.FieldRestrictions, injuryassessment.FieldEstimatedRecovery, injuryassessment.FieldAppointment, injuryassessment.FieldTestResults:
			values[i] = new([]byte)
		case injuryassessment.FieldFollowUpRequired:
			values[i] = new(sql.NullBool)
		case injuryassessment.FieldDiagnosis, injuryassessment.FieldDiagnosisDetails, injuryassessment.FieldSeverity, injuryassessment.FieldTreatmentPlan, injuryassessment.FieldRehabilitationProtocol, injuryassessment.FieldClearanceStatus, injuryassessment.FieldNotes:
			values[i] = new(sql.NullString)
		case injuryassessment.FieldCreatedAt, injuryassessment.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case injuryassessment.FieldID, injuryassessment.FieldReportID, injuryassessment.FieldDoctorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InjuryAssessment fields.
func (_m *InjuryAssessment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case injuryassessment.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case injuryassessment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case injuryassessment.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case injuryassessment.FieldReportID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value != nil {
				_m.ReportID = *value
			}
		case injuryassessment.FieldDoctorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_id", values[i])
			} else if value != nil {
				_m.DoctorID = *value
			}
		case injuryassessment.FieldDiagnosis:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field diagnosis", values[i])
			} else if value.Valid {
				_m.Diagnosis = value.String
			}
		case injuryassessment.FieldDiagnosisDetails:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field diagnosis_details", values[i])
			} else if value.Valid {
				_m.DiagnosisDetails = value.String
			}
		case injuryassessment.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = injuryassessment.Severity(value.String)
			}
		case injuryassessment.FieldTreatmentPlan:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field treatment_plan", values[i])
			} else if value.Valid {
				_m.TreatmentPlan = value.String
			}
		case injuryassessment.FieldMedications:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field medications", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Medications); err != nil {
					return fmt.Errorf("unmarshal field medications: %w", err)
				}
			}
		case injuryassessment.FieldRehabilitationProtocol:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rehabilitation_protocol", values[i])
			} else if value.Valid {
				_m.RehabilitationProtocol = value.String
			}
		case injuryassessment.FieldRestrictions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field restrictions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Restrictions); err != nil {
					return fmt.Errorf("unmarshal field restrictions: %w", err)
				}
			}
		case injuryassessment.FieldEstimatedRecovery:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_recovery", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EstimatedRecovery); err != nil {
					return fmt.Errorf("unmarshal field estimated_recovery: %w", err)
				}
			}
		case injuryassessment.FieldFollowUpRequired:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field follow_up_required", values[i])
			} else if value.Valid {
				_m.FollowUpRequired = value.Bool
			}
		case injuryassessment.FieldAppointment:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field appointment", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Appointment); err != nil {
					return fmt.Errorf("unmarshal field appointment: %w", err)
				}
			}
		case injuryassessment.FieldClearanceStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field clearance_status", values[i])
			} else if value.Valid {
				_m.ClearanceStatus = injuryassessment.ClearanceStatus(value.String)
			}
		case injuryassessment.FieldTestResults:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field test_results", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TestResults); err != nil {
					return fmt.Errorf("unmarshal field test_results: %w", err)
				}
			}
		case injuryassessment.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InjuryAssessment.
// This includes values selected through modifiers, order, etc.
func (_m *InjuryAssessment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this InjuryAssessment.
// Note that you need to call InjuryAssessment.Unwrap() before calling this method if this InjuryAssessment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InjuryAssessment) Update() *InjuryAssessmentUpdateOne {
	return NewInjuryAssessmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InjuryAssessment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InjuryAssessment) Unwrap() *InjuryAssessment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: InjuryAssessment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InjuryAssessment) String() string {
	var builder strings.Builder
	builder.WriteString("InjuryAssessment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("report_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReportID))
	builder.WriteString(", ")
	builder.WriteString("doctor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DoctorID))
	builder.WriteString(", ")
	builder.WriteString("diagnosis=")
	builder.WriteString(_m.Diagnosis)
	builder.WriteString(", ")
	builder.WriteString("diagnosis_details=")
	builder.WriteString(_m.DiagnosisDetails)
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Severity))
	builder.WriteString(", ")
	builder.WriteString("treatment_plan=")
	builder.WriteString(_m.TreatmentPlan)
	builder.WriteString(", ")
	builder.WriteString("medications=")
	builder.WriteString(fmt.Sprintf("%v", _m.Medications))
	builder.WriteString(", ")
	builder.WriteString("rehabilitation_protocol=")
	builder.WriteString(_m.RehabilitationProtocol)
	builder.WriteString(", ")
	builder.WriteString("restrictions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Restrictions))
	builder.WriteString(", ")
	builder.WriteString("estimated_recovery=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedRecovery))
	builder.WriteString(", ")
	builder.WriteString("follow_up_required=")
	builder.WriteString(fmt.Sprintf("%v", _m.FollowUpRequired))
	builder.WriteString(", ")
	builder.WriteString("appointment=")
	builder.WriteString(fmt.Sprintf("%v", _m.Appointment))
	builder.WriteString(", ")
	builder.WriteString("clearance_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClearanceStatus))
	builder.WriteString(", ")
	builder.WriteString("test_results=")
	builder.WriteString(fmt.Sprintf("%v", _m.TestResults))
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteByte(')')
	return builder.String()
}

// InjuryAssessments is a parsable slice of InjuryAssessment.
type InjuryAssessments []*InjuryAssessment
