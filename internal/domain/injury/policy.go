package injury

import "github.com/athletiq/athletiq_backend/internal/actor"

// Access policy: pure decisions over (actor, resource). An athlete is
// scoped to reports they own, a doctor to reports they are assigned to,
// an admin may read any case but mutates nothing here.

// CanReadCase reports whether act may see the case built on r.
func CanReadCase(act actor.Actor, r *Report) bool {
	switch act.Role {
	case actor.RoleAdmin:
		return true
	case actor.RoleAthlete:
		return r.AthleteID == act.ID
	case actor.RoleDoctor:
		return r.DoctorID == act.ID
	}
	return false
}

// CanUpdateReport allows the owning athlete and the assigned doctor.
func CanUpdateReport(act actor.Actor, r *Report) bool {
	switch act.Role {
	case actor.RoleAthlete:
		return r.AthleteID == act.ID
	case actor.RoleDoctor:
		return r.DoctorID == act.ID
	}
	return false
}

// CanWithdraw allows only the owning athlete. Status gating (OPEN only)
// is the service's concern, not the policy's.
func CanWithdraw(act actor.Actor, r *Report) bool {
	return act.Role == actor.RoleAthlete && r.AthleteID == act.ID
}

// CanPostMessage allows only the doctor assigned to the report.
func CanPostMessage(act actor.Actor, r *Report) bool {
	return act.Role == actor.RoleDoctor && r.DoctorID == act.ID
}

// CanFileAssessment allows only the doctor assigned to the report.
func CanFileAssessment(act actor.Actor, r *Report) bool {
	return act.Role == actor.RoleDoctor && r.DoctorID == act.ID
}

// CanEditAssessment allows only the doctor who authored the assessment.
func CanEditAssessment(act actor.Actor, a *Assessment) bool {
	return act.Role == actor.RoleDoctor && a.DoctorID == act.ID
}
