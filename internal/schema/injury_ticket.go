package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// InjuryTicket is the workflow envelope for a report, strictly 1:1.
type InjuryTicket struct {
	ent.Schema
}

func (InjuryTicket) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (InjuryTicket) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("report_id", uuid.UUID{}).
			Unique(),

		field.Enum("status").
			Values("OPEN", "IN_PROGRESS", "CLOSED").
			Default("OPEN"),
	}
}

func (InjuryTicket) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
