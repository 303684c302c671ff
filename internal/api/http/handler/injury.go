package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/athletiq/athletiq_backend/internal/api/http/middleware"
	"github.com/athletiq/athletiq_backend/internal/domain/injury"
	"github.com/athletiq/athletiq_backend/internal/service/injurycase"
)

type InjuryHandler struct {
	svc injurycase.Service
}

func NewInjuryHandler(svc injurycase.Service) *InjuryHandler {
	return &InjuryHandler{svc: svc}
}

func mapInjuryError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, injurycase.ErrInvalidArgument):
		return badRequest(c, err.Error())
	case errors.Is(err, injurycase.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, injurycase.ErrPermissionDenied):
		return forbidden(c)
	case errors.Is(err, injurycase.ErrAssessmentExists):
		return conflict(c, err.Error())
	case errors.Is(err, injurycase.ErrInvalidState):
		return conflict(c, err.Error())
	case errors.Is(err, injurycase.ErrConflict):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /injuries
func (h *InjuryHandler) OpenCase(c fiber.Ctx) error {
	act, actOK := middleware.ActorFromFiber(c)
	if !actOK {
		return unauthorized(c)
	}

	var body struct {
		DoctorID             string    `json:"doctor_id"`
		Title                string    `json:"title"`
		InjuryType           string    `json:"injury_type"`
		BodyPart             string    `json:"body_part"`
		PainLevel            int       `json:"pain_level"`
		DateOfInjury         time.Time `json:"date_of_injury"`
		ActivityContext      string    `json:"activity_context"`
		Symptoms             []string  `json:"symptoms"`
		AffectingPerformance string    `json:"affecting_performance"`
		PreviouslyInjured    bool      `json:"previously_injured"`
		Notes                string    `json:"notes"`
		Images               []string  `json:"images"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	doctorID, err := uuid.Parse(body.DoctorID)
	if err != nil {
		return badRequest(c, "invalid doctor_id")
	}

	cs, err := h.svc.OpenCase(c.Context(), act, injurycase.OpenCaseRequest{
		DoctorID:             doctorID,
		Title:                body.Title,
		InjuryType:           body.InjuryType,
		BodyPart:             body.BodyPart,
		PainLevel:            body.PainLevel,
		DateOfInjury:         body.DateOfInjury,
		ActivityContext:      body.ActivityContext,
		Symptoms:             body.Symptoms,
		AffectingPerformance: injury.PerformanceImpact(body.AffectingPerformance),
		PreviouslyInjured:    body.PreviouslyInjured,
		Notes:                body.Notes,
		Images:               body.Images,
	})
	if err != nil {
		return mapInjuryError(c, err)
	}

	return created(c, cs)
}

// GET /injuries/:id
func (h *InjuryHandler) GetCase(c fiber.Ctx) error {
	act, actOK := middleware.ActorFromFiber(c)
	if !actOK {
		return unauthorized(c)
	}

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid case id")
	}

	cs, err := h.svc.GetCase(c.Context(), act, reportID)
	if err != nil {
		return mapInjuryError(c, err)
	}

	return ok(c, cs)
}

// DELETE /injuries/:id
func (h *InjuryHandler) WithdrawCase(c fiber.Ctx) error {
	act, actOK := middleware.ActorFromFiber(c)
	if !actOK {
		return unauthorized(c)
	}

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid case id")
	}

	if err := h.svc.WithdrawCase(c.Context(), act, reportID); err != nil {
		return mapInjuryError(c, err)
	}

	return noContent(c)
}

// PATCH /injuries/:id/report
func (h *InjuryHandler) UpdateReport(c fiber.Ctx) error {
	act, actOK := middleware.ActorFromFiber(c)
	if !actOK {
		return unauthorized(c)
	}

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid case id")
	}

	var body struct {
		Title                *string    `json:"title"`
		InjuryType           *string    `json:"injury_type"`
		BodyPart             *string    `json:"body_part"`
		PainLevel            *int       `json:"pain_level"`
		DateOfInjury         *time.Time `json:"date_of_injury"`
		ActivityContext      *string    `json:"activity_context"`
		Symptoms             []string   `json:"symptoms"`
		AffectingPerformance *string    `json:"affecting_performance"`
		PreviouslyInjured    *bool      `json:"previously_injured"`
		Notes                *string    `json:"notes"`
		Images               []string   `json:"images"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := injurycase.UpdateReportRequest{
		Title:             body.Title,
		InjuryType:        body.InjuryType,
		BodyPart:          body.BodyPart,
		PainLevel:         body.PainLevel,
		DateOfInjury:      body.DateOfInjury,
		ActivityContext:   body.ActivityContext,
		Symptoms:          body.Symptoms,
		PreviouslyInjured: body.PreviouslyInjured,
		Notes:             body.Notes,
		Images:            body.Images,
	}
	if body.AffectingPerformance != nil {
		impact := injury.PerformanceImpact(*body.AffectingPerformance)
		req.AffectingPerformance = &impact
	}

	rep, err := h.svc.UpdateReport(c.Context(), act, reportID, req)
	if err != nil {
		return mapInjuryError(c, err)
	}

	return ok(c, rep)
}

// POST /injuries/:id/messages
func (h *InjuryHandler) PostMessage(c fiber.Ctx) error {
	act, actOK := middleware.ActorFromFiber(c)
	if !actOK {
		return unauthorized(c)
	}

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid case id")
	}

	var body struct {
		Response        string    `json:"response"`
		Medication      string    `json:"medication"`
		DoctorNote      string    `json:"doctor_note"`
		AppointmentDate time.Time `json:"appointment_date"`
		AppointmentTime string    `json:"appointment_time"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	msg, err := h.svc.PostShortMessage(c.Context(), act, reportID, injurycase.PostMessageRequest{
		Response:        body.Response,
		Medication:      body.Medication,
		DoctorNote:      body.DoctorNote,
		AppointmentDate: body.AppointmentDate,
		AppointmentTime: body.AppointmentTime,
	})
	if err != nil {
		return mapInjuryError(c, err)
	}

	return created(c, msg)
}

// GET /injuries/:id/messages
func (h *InjuryHandler) ListMessages(c fiber.Ctx) error {
	act, actOK := middleware.ActorFromFiber(c)
	if !actOK {
		return unauthorized(c)
	}

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid case id")
	}

	msgs, err := h.svc.ListMessages(c.Context(), act, reportID)
	if err != nil {
		return mapInjuryError(c, err)
	}

	return ok(c, msgs)
}

// PATCH /injuries/messages/:id
func (h *InjuryHandler) UpdateMessage(c fiber.Ctx) error {
	act, actOK := middleware.ActorFromFiber(c)
	if !actOK {
		return unauthorized(c)
	}

	messageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid message id")
	}

	var body struct {
		Response        *string    `json:"response"`
		Medication      *string    `json:"medication"`
		DoctorNote      *string    `json:"doctor_note"`
		AppointmentDate *time.Time `json:"appointment_date"`
		AppointmentTime *string    `json:"appointment_time"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	msg, err := h.svc.UpdateShortMessage(c.Context(), act, messageID, injurycase.UpdateMessageRequest{
		Response:        body.Response,
		Medication:      body.Medication,
		DoctorNote:      body.DoctorNote,
		AppointmentDate: body.AppointmentDate,
		AppointmentTime: body.AppointmentTime,
	})
	if err != nil {
		return mapInjuryError(c, err)
	}

	return ok(c, msg)
}

// POST /injuries/:id/assessment
func (h *InjuryHandler) FileAssessment(c fiber.Ctx) error {
	act, actOK := middleware.ActorFromFiber(c)
	if !actOK {
		return unauthorized(c)
	}

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid case id")
	}

	var body struct {
		Diagnosis              string                       `json:"diagnosis"`
		DiagnosisDetails       string                       `json:"diagnosis_details"`
		Severity               string                       `json:"severity"`
		TreatmentPlan          string                       `json:"treatment_plan"`
		Medications            []injury.MedicationItem      `json:"medications"`
		RehabilitationProtocol string                       `json:"rehabilitation_protocol"`
		Restrictions           []string                     `json:"restrictions"`
		EstimatedRecovery      *injury.RecoveryEstimate     `json:"estimated_recovery"`
		FollowUpRequired       *bool                        `json:"follow_up_required"`
		Appointment            *injury.ScheduledAppointment `json:"appointment"`
		ClearanceStatus        string                       `json:"clearance_status"`
		TestResults            []injury.TestResult          `json:"test_results"`
		Notes                  string                       `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	a, err := h.svc.FileAssessment(c.Context(), act, reportID, injurycase.FileAssessmentRequest{
		Diagnosis:              body.Diagnosis,
		DiagnosisDetails:       body.DiagnosisDetails,
		Severity:               injury.Severity(body.Severity),
		TreatmentPlan:          body.TreatmentPlan,
		Medications:            body.Medications,
		RehabilitationProtocol: body.RehabilitationProtocol,
		Restrictions:           body.Restrictions,
		EstimatedRecovery:      body.EstimatedRecovery,
		FollowUpRequired:       body.FollowUpRequired,
		Appointment:            body.Appointment,
		ClearanceStatus:        injury.ClearanceStatus(body.ClearanceStatus),
		TestResults:            body.TestResults,
		Notes:                  body.Notes,
	})
	if err != nil {
		return mapInjuryError(c, err)
	}

	return created(c, a)
}

// PATCH /injuries/assessments/:id
func (h *InjuryHandler) UpdateAssessment(c fiber.Ctx) error {
	act, actOK := middleware.ActorFromFiber(c)
	if !actOK {
		return unauthorized(c)
	}

	assessmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid assessment id")
	}

	var body struct {
		Diagnosis              *string                      `json:"diagnosis"`
		DiagnosisDetails       *string                      `json:"diagnosis_details"`
		Severity               *string                      `json:"severity"`
		TreatmentPlan          *string                      `json:"treatment_plan"`
		Medications            []injury.MedicationItem      `json:"medications"`
		RehabilitationProtocol *string                      `json:"rehabilitation_protocol"`
		Restrictions           []string                     `json:"restrictions"`
		EstimatedRecovery      *injury.RecoveryEstimate     `json:"estimated_recovery"`
		FollowUpRequired       *bool                        `json:"follow_up_required"`
		Appointment            *injury.ScheduledAppointment `json:"appointment"`
		ClearanceStatus        *string                      `json:"clearance_status"`
		TestResults            []injury.TestResult          `json:"test_results"`
		Notes                  *string                      `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := injurycase.UpdateAssessmentRequest{
		Diagnosis:              body.Diagnosis,
		DiagnosisDetails:       body.DiagnosisDetails,
		TreatmentPlan:          body.TreatmentPlan,
		Medications:            body.Medications,
		RehabilitationProtocol: body.RehabilitationProtocol,
		Restrictions:           body.Restrictions,
		EstimatedRecovery:      body.EstimatedRecovery,
		FollowUpRequired:       body.FollowUpRequired,
		Appointment:            body.Appointment,
		TestResults:            body.TestResults,
		Notes:                  body.Notes,
	}
	if body.Severity != nil {
		sev := injury.Severity(*body.Severity)
		req.Severity = &sev
	}
	if body.ClearanceStatus != nil {
		cl := injury.ClearanceStatus(*body.ClearanceStatus)
		req.ClearanceStatus = &cl
	}

	a, err := h.svc.UpdateAssessment(c.Context(), act, assessmentID, req)
	if err != nil {
		return mapInjuryError(c, err)
	}

	return ok(c, a)
}

// GET /injuries/mine
func (h *InjuryHandler) ListMine(c fiber.Ctx) error {
	act, actOK := middleware.ActorFromFiber(c)
	if !actOK {
		return unauthorized(c)
	}

	buckets, err := h.svc.ListForAthlete(c.Context(), act)
	if err != nil {
		return mapInjuryError(c, err)
	}

	return ok(c, buckets)
}

// GET /injuries/assigned
func (h *InjuryHandler) ListAssigned(c fiber.Ctx) error {
	act, actOK := middleware.ActorFromFiber(c)
	if !actOK {
		return unauthorized(c)
	}

	buckets, err := h.svc.ListForDoctor(c.Context(), act)
	if err != nil {
		return mapInjuryError(c, err)
	}

	return ok(c, buckets)
}

// GET /injuries
func (h *InjuryHandler) ListAll(c fiber.Ctx) error {
	act, actOK := middleware.ActorFromFiber(c)
	if !actOK {
		return unauthorized(c)
	}

	buckets, err := h.svc.ListAll(c.Context(), act)
	if err != nil {
		return mapInjuryError(c, err)
	}

	return ok(c, buckets)
}
