package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// InjuryReport is an athlete's reported complaint. The assigned doctor
// is fixed at creation time.
type InjuryReport struct {
	ent.Schema
}

func (InjuryReport) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (InjuryReport) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("athlete_id", uuid.UUID{}).
			Comment("Owning athlete"),

		field.UUID("doctor_id", uuid.UUID{}).
			Comment("Assigned doctor"),

		field.String("title").
			MaxLen(255),

		field.String("injury_type").
			MaxLen(100),

		field.String("body_part").
			MaxLen(100),

		field.Int("pain_level").
			Min(1).
			Max(10),

		field.Time("date_of_injury"),

		field.String("activity_context").
			Optional().
			MaxLen(255),

		field.JSON("symptoms", []string{}).
			Optional(),

		field.Enum("affecting_performance").
			Values("CANNOT_PLAY", "LIMITED", "MINIMAL", "NONE"),

		field.Bool("previously_injured").
			Default(false),

		field.Text("notes").
			Optional(),

		field.JSON("images", []string{}).
			Optional().
			Comment("Opaque attachment references; storage is external"),
	}
}

func (InjuryReport) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("athlete_id"),
		index.Fields("doctor_id"),
	}
}
