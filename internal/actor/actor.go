// Package actor defines the authenticated participant attached to every
// request after token verification. Services never look at tokens or
// headers; they only ever see a resolved Actor.
package actor

import "github.com/google/uuid"

type Role string

const (
	RoleAthlete Role = "athlete"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAthlete, RoleDoctor, RoleAdmin:
		return true
	}
	return false
}

// Actor is the resolved identity of a request: one role, one stable id.
type Actor struct {
	Role Role
	ID   uuid.UUID
}

func (a Actor) IsAthlete() bool { return a.Role == RoleAthlete }
func (a Actor) IsDoctor() bool  { return a.Role == RoleDoctor }
func (a Actor) IsAdmin() bool   { return a.Role == RoleAdmin }
