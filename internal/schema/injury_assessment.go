package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/athletiq/athletiq_backend/internal/domain/injury"
)

// InjuryAssessment is the terminal diagnosis record for a report.
type InjuryAssessment struct {
	ent.Schema
}

func (InjuryAssessment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (InjuryAssessment) Fields() []ent.Field {
	return []ent.Field{
		// The unique constraint is what makes concurrent filings safe:
		// the database admits exactly one row per report.
		field.UUID("report_id", uuid.UUID{}).
			Unique(),

		field.UUID("doctor_id", uuid.UUID{}),

		field.Text("diagnosis"),

		field.Text("diagnosis_details").
			Optional(),

		field.Enum("severity").
			Values("MINOR", "MODERATE", "SEVERE", "CRITICAL"),

		field.Text("treatment_plan"),

		field.JSON("medications", []injury.MedicationItem{}).
			Optional(),

		field.Text("rehabilitation_protocol").
			Optional(),

		field.JSON("restrictions", []string{}).
			Optional(),

		field.JSON("estimated_recovery", &injury.RecoveryEstimate{}).
			Optional(),

		field.Bool("follow_up_required").
			Default(true),

		field.JSON("appointment", &injury.ScheduledAppointment{}).
			Optional(),

		field.Enum("clearance_status").
			Values("NO_ACTIVITY", "LIMITED_ACTIVITY", "FULL_CLEARANCE_PENDING", "FULLY_CLEARED").
			Default("FULL_CLEARANCE_PENDING"),

		field.JSON("test_results", []injury.TestResult{}).
			Optional(),

		field.Text("notes").
			Optional(),
	}
}
