package injury

import (
	"testing"

	"github.com/athletiq/athletiq_backend/internal/actor"
)

func TestPolicy(t *testing.T) {
	athleteID := NewID()
	doctorID := NewID()
	report := &Report{ID: NewID(), AthleteID: athleteID, DoctorID: doctorID}

	owner := actor.Actor{Role: actor.RoleAthlete, ID: athleteID}
	assigned := actor.Actor{Role: actor.RoleDoctor, ID: doctorID}
	admin := actor.Actor{Role: actor.RoleAdmin, ID: NewID()}
	otherAthlete := actor.Actor{Role: actor.RoleAthlete, ID: NewID()}
	otherDoctor := actor.Actor{Role: actor.RoleDoctor, ID: NewID()}

	tests := []struct {
		name string
		fn   func(actor.Actor, *Report) bool
		want map[string]bool
	}{
		{
			name: "read",
			fn:   CanReadCase,
			want: map[string]bool{"owner": true, "assigned": true, "admin": true, "otherAthlete": false, "otherDoctor": false},
		},
		{
			name: "update report",
			fn:   CanUpdateReport,
			want: map[string]bool{"owner": true, "assigned": true, "admin": false, "otherAthlete": false, "otherDoctor": false},
		},
		{
			name: "withdraw",
			fn:   CanWithdraw,
			want: map[string]bool{"owner": true, "assigned": false, "admin": false, "otherAthlete": false, "otherDoctor": false},
		},
		{
			name: "post message",
			fn:   CanPostMessage,
			want: map[string]bool{"owner": false, "assigned": true, "admin": false, "otherAthlete": false, "otherDoctor": false},
		},
		{
			name: "file assessment",
			fn:   CanFileAssessment,
			want: map[string]bool{"owner": false, "assigned": true, "admin": false, "otherAthlete": false, "otherDoctor": false},
		},
	}

	actors := map[string]actor.Actor{
		"owner":        owner,
		"assigned":     assigned,
		"admin":        admin,
		"otherAthlete": otherAthlete,
		"otherDoctor":  otherDoctor,
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for who, want := range tt.want {
				if got := tt.fn(actors[who], report); got != want {
					t.Errorf("%s(%s) = %v, want %v", tt.name, who, got, want)
				}
			}
		})
	}
}

func TestCanEditAssessment(t *testing.T) {
	doctorID := NewID()
	as := &Assessment{ID: NewID(), DoctorID: doctorID}

	author := actor.Actor{Role: actor.RoleDoctor, ID: doctorID}
	if !CanEditAssessment(author, as) {
		t.Error("authoring doctor denied")
	}
	other := actor.Actor{Role: actor.RoleDoctor, ID: NewID()}
	if CanEditAssessment(other, as) {
		t.Error("other doctor allowed")
	}
	athlete := actor.Actor{Role: actor.RoleAthlete, ID: doctorID}
	if CanEditAssessment(athlete, as) {
		t.Error("athlete allowed")
	}
}
