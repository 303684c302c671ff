package authorize

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/athletiq/athletiq_backend/internal/actor"
)

var policyReady atomic.Bool

// IsPolicyHealthy reports whether the default policies have been seeded.
// Wired into the readiness probe.
func IsPolicyHealthy() bool { return policyReady.Load() }

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
// The route-level gate is coarse; the per-case participant checks live in
// the lifecycle service's access policy.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	policies := []PermissionPolicy{
		// Athlete: owns cases end to end, reads doctor output.
		{RoleAthlete, DomainSys, ResourceInjuryCase, ActionCreate, EffectAllow},
		{RoleAthlete, DomainSys, ResourceInjuryCase, ActionRead, EffectAllow},
		{RoleAthlete, DomainSys, ResourceInjuryCase, ActionList, EffectAllow},
		{RoleAthlete, DomainSys, ResourceInjuryCase, ActionUpdate, EffectAllow},
		{RoleAthlete, DomainSys, ResourceInjuryCase, ActionDelete, EffectAllow},
		{RoleAthlete, DomainSys, ResourceInjuryMessage, ActionRead, EffectAllow},
		{RoleAthlete, DomainSys, ResourceInjuryAssessment, ActionRead, EffectAllow},

		// Doctor: responds and assesses on assigned cases.
		{RoleDoctor, DomainSys, ResourceInjuryCase, ActionRead, EffectAllow},
		{RoleDoctor, DomainSys, ResourceInjuryCase, ActionList, EffectAllow},
		{RoleDoctor, DomainSys, ResourceInjuryCase, ActionUpdate, EffectAllow},
		{RoleDoctor, DomainSys, ResourceInjuryMessage, ActionCreate, EffectAllow},
		{RoleDoctor, DomainSys, ResourceInjuryMessage, ActionRead, EffectAllow},
		{RoleDoctor, DomainSys, ResourceInjuryMessage, ActionUpdate, EffectAllow},
		{RoleDoctor, DomainSys, ResourceInjuryAssessment, ActionCreate, EffectAllow},
		{RoleDoctor, DomainSys, ResourceInjuryAssessment, ActionRead, EffectAllow},
		{RoleDoctor, DomainSys, ResourceInjuryAssessment, ActionUpdate, EffectAllow},

		// Admin: read-everything, mutate nothing in the lifecycle.
		{RoleAdmin, DomainSys, ResourceInjuryCase, ActionRead, EffectAllow},
		{RoleAdmin, DomainSys, ResourceInjuryCase, ActionList, EffectAllow},
		{RoleAdmin, DomainSys, ResourceInjuryMessage, ActionRead, EffectAllow},
		{RoleAdmin, DomainSys, ResourceInjuryAssessment, ActionRead, EffectAllow},
		{RoleAdmin, DomainSys, ResourceUser, ActionRead, EffectAllow},
		{RoleAdmin, DomainSys, ResourceUser, ActionList, EffectAllow},
		{RoleAdmin, DomainSys, ResourceAudit, ActionRead, EffectAllow},
	}

	for _, p := range policies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(policies))
	policyReady.Store(true)
	return nil
}

// RoleFor maps an actor role onto its Casbin policy subject.
func RoleFor(r actor.Role) (Role, bool) {
	switch r {
	case actor.RoleAthlete:
		return RoleAthlete, true
	case actor.RoleDoctor:
		return RoleDoctor, true
	case actor.RoleAdmin:
		return RoleAdmin, true
	}
	return "", false
}

// AssignActorRole records the grouping policy for an authenticated actor.
// Called by the auth middleware the first time a subject is seen.
func AssignActorRole(ctx context.Context, auth IAuthorization, a actor.Actor) error {
	role, ok := RoleFor(a.Role)
	if !ok {
		return ErrInvalidArgs
	}
	_, err := auth.AddRoleForUserInDomain(ctx, GroupSubject(a.ID.String()), role, DomainSys)
	return err
}
