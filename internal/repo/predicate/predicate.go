// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// InjuryAssessment is the predicate function for injuryassessment builders.
type InjuryAssessment func(*sql.Selector)

// InjuryReport is the predicate function for injuryreport builders.
type InjuryReport func(*sql.Selector)

// InjuryShortMessage is the predicate function for injuryshortmessage builders.
type InjuryShortMessage func(*sql.Selector)

// InjuryTicket is the predicate function for injuryticket builders.
type InjuryTicket func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
