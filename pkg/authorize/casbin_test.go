package authorize

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/athletiq/athletiq_backend/internal/actor"
)

func newTestAuthorization(t *testing.T) IAuthorization {
	t.Helper()
	e, err := NewEnforcer()
	if err != nil {
		t.Fatalf("NewEnforcer: %v", err)
	}
	auth, err := NewAuthorization(e)
	if err != nil {
		t.Fatalf("NewAuthorization: %v", err)
	}
	if err := SeedDefaultPolicies(context.Background(), auth); err != nil {
		t.Fatalf("SeedDefaultPolicies: %v", err)
	}
	return auth
}

func subjectWithRole(t *testing.T, auth IAuthorization, role actor.Role) GroupSubject {
	t.Helper()
	id, err := uuid.NewV7()
	if err != nil {
		t.Fatal(err)
	}
	a := actor.Actor{Role: role, ID: id}
	if err := AssignActorRole(context.Background(), auth, a); err != nil {
		t.Fatalf("AssignActorRole: %v", err)
	}
	return GroupSubject(id.String())
}

func TestSeededPolicies(t *testing.T) {
	auth := newTestAuthorization(t)
	ctx := context.Background()

	athlete := subjectWithRole(t, auth, actor.RoleAthlete)
	doctor := subjectWithRole(t, auth, actor.RoleDoctor)
	admin := subjectWithRole(t, auth, actor.RoleAdmin)

	tests := []struct {
		name    string
		subject GroupSubject
		object  Resource
		action  Action
		want    bool
	}{
		{"athlete opens case", athlete, ResourceInjuryCase, ActionCreate, true},
		{"athlete withdraws case", athlete, ResourceInjuryCase, ActionDelete, true},
		{"athlete cannot post message", athlete, ResourceInjuryMessage, ActionCreate, false},
		{"athlete cannot file assessment", athlete, ResourceInjuryAssessment, ActionCreate, false},
		{"doctor posts message", doctor, ResourceInjuryMessage, ActionCreate, true},
		{"doctor files assessment", doctor, ResourceInjuryAssessment, ActionCreate, true},
		{"doctor cannot open case", doctor, ResourceInjuryCase, ActionCreate, false},
		{"doctor cannot withdraw", doctor, ResourceInjuryCase, ActionDelete, false},
		{"admin lists cases", admin, ResourceInjuryCase, ActionList, true},
		{"admin cannot mutate", admin, ResourceInjuryAssessment, ActionCreate, false},
		{"admin reads audit", admin, ResourceAudit, ActionRead, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := auth.Enforce(ctx, tt.subject, DomainSys, tt.object, tt.action)
			if err != nil {
				t.Fatalf("Enforce: %v", err)
			}
			if got != tt.want {
				t.Errorf("Enforce = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMustEnforce(t *testing.T) {
	auth := newTestAuthorization(t)
	ctx := context.Background()
	athlete := subjectWithRole(t, auth, actor.RoleAthlete)

	if err := auth.MustEnforce(ctx, athlete, DomainSys, ResourceInjuryCase, ActionCreate); err != nil {
		t.Errorf("allowed action: %v", err)
	}
	err := auth.MustEnforce(ctx, athlete, DomainSys, ResourceInjuryAssessment, ActionCreate)
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("denied action: err = %v, want ErrForbidden", err)
	}
}

func TestSuperAdminBypass(t *testing.T) {
	auth := newTestAuthorization(t)
	ctx := context.Background()

	id, err := uuid.NewV7()
	if err != nil {
		t.Fatal(err)
	}
	sub := GroupSubject(id.String())
	if _, err := auth.AddRoleForUserInDomain(ctx, sub, RoleSysSuperAdmin, DomainSys); err != nil {
		t.Fatalf("AddRoleForUserInDomain: %v", err)
	}

	ok, err := auth.Enforce(ctx, sub, DomainSys, ResourceSystem, ActionDelete)
	if err != nil {
		t.Fatalf("Enforce: %v", err)
	}
	if !ok {
		t.Error("superadmin denied")
	}
}

func TestEnforceGuardrails(t *testing.T) {
	auth := newTestAuthorization(t)
	ctx := context.Background()

	if _, err := auth.Enforce(ctx, "", DomainSys, ResourceInjuryCase, ActionRead); !errors.Is(err, ErrInvalidArgs) {
		t.Errorf("empty subject: err = %v", err)
	}
	if _, err := auth.Enforce(ctx, "x", "clinic:1", ResourceInjuryCase, ActionRead); !errors.Is(err, ErrInvalidArgs) {
		t.Errorf("unknown domain: err = %v", err)
	}
	if _, err := auth.Enforce(ctx, "x", DomainSys, "spaceship", ActionRead); !errors.Is(err, ErrInvalidArgs) {
		t.Errorf("unknown resource: err = %v", err)
	}
	if _, err := auth.Enforce(ctx, "x", DomainSys, ResourceInjuryCase, "fly"); !errors.Is(err, ErrInvalidArgs) {
		t.Errorf("unknown action: err = %v", err)
	}
}
