// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/athletiq/athletiq_backend/internal/repo/injuryreport"
	"github.com/google/uuid"
)

// InjuryReport is the model entity for the InjuryReport schema.
type InjuryReport struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Owning athlete
	AthleteID uuid.UUID `json:"athlete_id,omitempty"`
	// Assigned doctor
	DoctorID uuid.UUID `json:"doctor_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// InjuryType holds the value of the "injury_type" field.
	InjuryType string `json:"injury_type,omitempty"`
	// BodyPart holds the value of the "body_part" field.
	BodyPart string `json:"body_part,omitempty"`
	// PainLevel holds the value of the "pain_level" field.
	PainLevel int `json:"pain_level,omitempty"`
	// DateOfInjury holds the value of the "date_of_injury" field.
	DateOfInjury time.Time `json:"date_of_injury,omitempty"`
	// ActivityContext holds the value of the "activity_context" field.
	ActivityContext string `json:"activity_context,omitempty"`
	// Symptoms holds the value of the "symptoms" field.
	Symptoms []string `json:"symptoms,omitempty"`
	// AffectingPerformance holds the value of the "affecting_performance" field.
	AffectingPerformance injuryreport.AffectingPerformance `json:"affecting_performance,omitempty"`
	// PreviouslyInjured holds the value of the "previously_injured" field.
	PreviouslyInjured bool `json:"previously_injured,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes string `json:"notes,omitempty"`
	// Opaque attachment references; storage is external
	Images       []string `json:"images,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InjuryReport) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case injuryreport.FieldSymptoms, injuryreport.FieldImages:
			values[i] = new([]byte)
		case injuryreport.FieldPreviouslyInjured:
			values[i] = new(sql.NullBool)
		case injuryreport.FieldPainLevel:
			values[i] = new(sql.NullInt64)
		case injuryreport.FieldTitle, injuryreport.FieldInjuryType, injuryreport.FieldBodyPart, injuryreport.FieldActivityContext, injuryreport.FieldAffectingPerformance, injuryreport.FieldNotes:
			values[i] = new(sql.NullString)
		case injuryreport.FieldCreatedAt, injuryreport.FieldUpdatedAt, injuryreport.FieldDateOfInjury:
			values[i] = new(sql.NullTime)
		case injuryreport.FieldID, injuryreport.FieldAthleteID, injuryreport.FieldDoctorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InjuryReport fields.
func (_m *InjuryReport) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case injuryreport.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case injuryreport.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case injuryreport.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case injuryreport.FieldAthleteID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field athlete_id", values[i])
			} else if value != nil {
				_m.AthleteID = *value
			}
		case injuryreport.FieldDoctorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_id", values[i])
			} else if value != nil {
				_m.DoctorID = *value
			}
		case injuryreport.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case injuryreport.FieldInjuryType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field injury_type", values[i])
			} else if value.Valid {
				_m.InjuryType = value.String
			}
		case injuryreport.FieldBodyPart:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body_part", values[i])
			} else if value.Valid {
				_m.BodyPart = value.String
			}
		case injuryreport.FieldPainLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pain_level", values[i])
			} else if value.Valid {
				_m.PainLevel = int(value.Int64)
			}
		case injuryreport.FieldDateOfInjury:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date_of_injury", values[i])
			} else if value.Valid {
				_m.DateOfInjury = value.Time
			}
		case injuryreport.FieldActivityContext:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field activity_context", values[i])
			} else if value.Valid {
				_m.ActivityContext = value.String
			}
		case injuryreport.FieldSymptoms:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field symptoms", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Symptoms); err != nil {
					return fmt.Errorf("unmarshal field symptoms: %w", err)
				}
			}
		case injuryreport.FieldAffectingPerformance:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field affecting_performance", values[i])
			} else if value.Valid {
				_m.AffectingPerformance = injuryreport.AffectingPerformance(value.String)
			}
		case injuryreport.FieldPreviouslyInjured:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field previously_injured", values[i])
			} else if value.Valid {
				_m.PreviouslyInjured = value.Bool
			}
		case injuryreport.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case injuryreport.FieldImages:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field images", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Images); err != nil {
					return fmt.Errorf("unmarshal field images: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InjuryReport.
// This includes values selected through modifiers, order, etc.
func (_m *InjuryReport) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this InjuryReport.
// Note that you need to call InjuryReport.Unwrap() before calling this method if this InjuryReport
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InjuryReport) Update() *InjuryReportUpdateOne {
	return NewInjuryReportClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InjuryReport entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InjuryReport) Unwrap() *InjuryReport {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: InjuryReport is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InjuryReport) String() string {
	var builder strings.Builder
	builder.WriteString("InjuryReport(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("athlete_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AthleteID))
	builder.WriteString(", ")
	builder.WriteString("doctor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DoctorID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("injury_type=")
	builder.WriteString(_m.InjuryType)
	builder.WriteString(", ")
	builder.WriteString("body_part=")
	builder.WriteString(_m.BodyPart)
	builder.WriteString(", ")
	builder.WriteString("pain_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.PainLevel))
	builder.WriteString(", ")
	builder.WriteString("date_of_injury=")
	builder.WriteString(_m.DateOfInjury.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("activity_context=")
	builder.WriteString(_m.ActivityContext)
	builder.WriteString(", ")
	builder.WriteString("symptoms=")
	builder.WriteString(fmt.Sprintf("%v", _m.Symptoms))
	builder.WriteString(", ")
	builder.WriteString("affecting_performance=")
	builder.WriteString(fmt.Sprintf("%v", _m.AffectingPerformance))
	builder.WriteString(", ")
	builder.WriteString("previously_injured=")
	builder.WriteString(fmt.Sprintf("%v", _m.PreviouslyInjured))
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("images=")
	builder.WriteString(fmt.Sprintf("%v", _m.Images))
	builder.WriteByte(')')
	return builder.String()
}

// InjuryReports is a parsable slice of InjuryReport.
type InjuryReports []*InjuryReport
