package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// InjuryShortMessage is one doctor communication on a report. Append-
// mostly: rows are only removed when the whole case is withdrawn.
type InjuryShortMessage struct {
	ent.Schema
}

func (InjuryShortMessage) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (InjuryShortMessage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("report_id", uuid.UUID{}),

		field.Text("response"),

		field.String("medication").
			MaxLen(255),

		field.Text("doctor_note"),

		field.Time("appointment_date"),

		field.String("appointment_time").
			MaxLen(20),
	}
}

func (InjuryShortMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_id", "created_at"),
	}
}
