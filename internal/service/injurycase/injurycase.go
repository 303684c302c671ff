// Package injurycase implements the injury case lifecycle: an athlete
// opens a case against a doctor, the doctor communicates through short
// messages, and a single final assessment closes the case for good.
package injurycase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/athletiq/athletiq_backend/internal/actor"
	"github.com/athletiq/athletiq_backend/internal/domain/injury"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type OpenCaseRequest struct {
	DoctorID uuid.UUID

	Title                string
	InjuryType           string
	BodyPart             string
	PainLevel            int
	DateOfInjury         time.Time
	ActivityContext      string
	Symptoms             []string
	AffectingPerformance injury.PerformanceImpact
	PreviouslyInjured    bool
	Notes                string
	Images               []string
}

type UpdateReportRequest struct {
	Title                *string
	InjuryType           *string
	BodyPart             *string
	PainLevel            *int
	DateOfInjury         *time.Time
	ActivityContext      *string
	Symptoms             []string
	AffectingPerformance *injury.PerformanceImpact
	PreviouslyInjured    *bool
	Notes                *string
	Images               []string
}

type PostMessageRequest struct {
	Response        string
	Medication      string
	DoctorNote      string
	AppointmentDate time.Time
	AppointmentTime string
}

type UpdateMessageRequest struct {
	Response        *string
	Medication      *string
	DoctorNote      *string
	AppointmentDate *time.Time
	AppointmentTime *string
}

type FileAssessmentRequest struct {
	Diagnosis              string
	DiagnosisDetails       string
	Severity               injury.Severity
	TreatmentPlan          string
	Medications            []injury.MedicationItem
	RehabilitationProtocol string
	Restrictions           []string
	EstimatedRecovery      *injury.RecoveryEstimate
	FollowUpRequired       *bool // defaults to true
	Appointment            *injury.ScheduledAppointment
	ClearanceStatus        injury.ClearanceStatus
	TestResults            []injury.TestResult
	Notes                  string
}

type UpdateAssessmentRequest struct {
	Diagnosis              *string
	DiagnosisDetails       *string
	Severity               *injury.Severity
	TreatmentPlan          *string
	Medications            []injury.MedicationItem
	RehabilitationProtocol *string
	Restrictions           []string
	EstimatedRecovery      *injury.RecoveryEstimate
	FollowUpRequired       *bool
	Appointment            *injury.ScheduledAppointment
	ClearanceStatus        *injury.ClearanceStatus
	TestResults            []injury.TestResult
	Notes                  *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	OpenCase(ctx context.Context, act actor.Actor, req OpenCaseRequest) (*injury.Case, error)
	UpdateReport(ctx context.Context, act actor.Actor, reportID uuid.UUID, req UpdateReportRequest) (*injury.Report, error)
	WithdrawCase(ctx context.Context, act actor.Actor, reportID uuid.UUID) error

	PostShortMessage(ctx context.Context, act actor.Actor, reportID uuid.UUID, req PostMessageRequest) (*injury.ShortMessage, error)
	UpdateShortMessage(ctx context.Context, act actor.Actor, messageID uuid.UUID, req UpdateMessageRequest) (*injury.ShortMessage, error)
	ListMessages(ctx context.Context, act actor.Actor, reportID uuid.UUID) ([]*injury.ShortMessage, error)

	FileAssessment(ctx context.Context, act actor.Actor, reportID uuid.UUID, req FileAssessmentRequest) (*injury.Assessment, error)
	UpdateAssessment(ctx context.Context, act actor.Actor, assessmentID uuid.UUID, req UpdateAssessmentRequest) (*injury.Assessment, error)

	GetCase(ctx context.Context, act actor.Actor, reportID uuid.UUID) (*injury.Case, error)
	ListForAthlete(ctx context.Context, act actor.Actor) (*CaseBuckets, error)
	ListForDoctor(ctx context.Context, act actor.Actor) (*CaseBuckets, error)
	ListAll(ctx context.Context, act actor.Actor) (*CaseBuckets, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type caseService struct {
	store injury.Store
	dir   injury.Directory
	nc    *nats.Conn
	now   func() time.Time
}

func New(store injury.Store, dir injury.Directory, nc *nats.Conn) Service {
	return &caseService{store: store, dir: dir, nc: nc, now: time.Now}
}

// NewWithClock is New with an injected clock, for tests that pin time.
func NewWithClock(store injury.Store, dir injury.Directory, nc *nats.Conn, now func() time.Time) Service {
	return &caseService{store: store, dir: dir, nc: nc, now: now}
}

func (s *caseService) OpenCase(ctx context.Context, act actor.Actor, req OpenCaseRequest) (*injury.Case, error) {
	if !act.IsAthlete() {
		return nil, fmt.Errorf("%w: only athletes open cases", ErrPermissionDenied)
	}

	// Rejection order is fixed: missing fields, then unknown
	// participants, then out-of-range values.
	draft := &injury.Report{
		Title:                req.Title,
		InjuryType:           req.InjuryType,
		BodyPart:             req.BodyPart,
		PainLevel:            req.PainLevel,
		DateOfInjury:         req.DateOfInjury,
		AffectingPerformance: req.AffectingPerformance,
	}
	if err := validateReportRequired(draft); err != nil {
		return nil, err
	}

	ok, err := s.dir.AthleteExists(ctx, act.ID)
	if err != nil {
		return nil, fmt.Errorf("check athlete: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: athlete %s", ErrNotFound, act.ID)
	}
	ok, err = s.dir.DoctorExists(ctx, req.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("check doctor: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: doctor %s", ErrNotFound, req.DoctorID)
	}

	if err := s.validateReportValues(draft); err != nil {
		return nil, err
	}

	now := s.now()
	report := &injury.Report{
		ID:                   injury.NewID(),
		AthleteID:            act.ID,
		DoctorID:             req.DoctorID,
		Title:                req.Title,
		InjuryType:           req.InjuryType,
		BodyPart:             req.BodyPart,
		PainLevel:            req.PainLevel,
		DateOfInjury:         req.DateOfInjury,
		ActivityContext:      req.ActivityContext,
		Symptoms:             req.Symptoms,
		AffectingPerformance: req.AffectingPerformance,
		PreviouslyInjured:    req.PreviouslyInjured,
		Notes:                req.Notes,
		Images:               req.Images,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	ticket := &injury.Ticket{
		ID:        injury.NewID(),
		ReportID:  report.ID,
		Status:    injury.StatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Report and ticket come into existence together or not at all.
	err = s.store.WithinTx(ctx, func(st injury.Stores) error {
		if err := st.Reports.Insert(ctx, report); err != nil {
			return fmt.Errorf("insert report: %w", err)
		}
		if err := st.Tickets.Insert(ctx, ticket); err != nil {
			return fmt.Errorf("insert ticket: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish("opened", report.ID)
	return &injury.Case{Ticket: ticket, Report: report}, nil
}

func (s *caseService) UpdateReport(ctx context.Context, act actor.Actor, reportID uuid.UUID, req UpdateReportRequest) (*injury.Report, error) {
	report, err := s.getReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if !injury.CanUpdateReport(act, report) {
		return nil, fmt.Errorf("%w: not a participant of this case", ErrPermissionDenied)
	}

	ticket, err := s.getTicket(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if ticket.Status == injury.StatusClosed {
		return nil, fmt.Errorf("%w: case is closed", ErrInvalidState)
	}

	if req.Title != nil {
		report.Title = *req.Title
	}
	if req.InjuryType != nil {
		report.InjuryType = *req.InjuryType
	}
	if req.BodyPart != nil {
		report.BodyPart = *req.BodyPart
	}
	if req.PainLevel != nil {
		report.PainLevel = *req.PainLevel
	}
	if req.DateOfInjury != nil {
		report.DateOfInjury = *req.DateOfInjury
	}
	if req.ActivityContext != nil {
		report.ActivityContext = *req.ActivityContext
	}
	if req.Symptoms != nil {
		report.Symptoms = req.Symptoms
	}
	if req.AffectingPerformance != nil {
		report.AffectingPerformance = *req.AffectingPerformance
	}
	if req.PreviouslyInjured != nil {
		report.PreviouslyInjured = *req.PreviouslyInjured
	}
	if req.Notes != nil {
		report.Notes = *req.Notes
	}
	if req.Images != nil {
		report.Images = req.Images
	}

	if err := s.validateReport(report); err != nil {
		return nil, err
	}

	report.UpdatedAt = s.now()
	if err := s.store.Stores().Reports.Update(ctx, report); err != nil {
		return nil, fmt.Errorf("update report: %w", err)
	}
	return report, nil
}

func (s *caseService) WithdrawCase(ctx context.Context, act actor.Actor, reportID uuid.UUID) error {
	report, err := s.getReport(ctx, reportID)
	if err != nil {
		return err
	}
	if !injury.CanWithdraw(act, report) {
		return fmt.Errorf("%w: only the reporting athlete may withdraw", ErrPermissionDenied)
	}

	// The status gate runs inside the transaction as a conditional
	// update. In SQL that update takes the row lock, so a message or
	// assessment landing concurrently commits strictly before or after
	// the withdrawal, never in between.
	err = s.store.WithinTx(ctx, func(st injury.Stores) error {
		ticket, err := st.Tickets.GetByReport(ctx, reportID)
		if err != nil {
			if errors.Is(err, injury.ErrNotFound) {
				return fmt.Errorf("%w: case %s", ErrNotFound, reportID)
			}
			return fmt.Errorf("get ticket: %w", err)
		}
		applied, err := st.Tickets.Advance(ctx, ticket.ID, injury.StatusOpen, injury.StatusOpen)
		if err != nil {
			return fmt.Errorf("lock ticket: %w", err)
		}
		if !applied {
			return fmt.Errorf("%w: only an open case can be withdrawn", ErrInvalidState)
		}
		if err := st.Messages.DeleteByReport(ctx, reportID); err != nil {
			return fmt.Errorf("delete messages: %w", err)
		}
		if err := st.Reports.Delete(ctx, reportID); err != nil {
			return fmt.Errorf("delete report: %w", err)
		}
		if err := st.Tickets.Delete(ctx, ticket.ID); err != nil {
			return fmt.Errorf("delete ticket: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publish("withdrawn", reportID)
	return nil
}

func (s *caseService) PostShortMessage(ctx context.Context, act actor.Actor, reportID uuid.UUID, req PostMessageRequest) (*injury.ShortMessage, error) {
	if err := validateMessageFields(req); err != nil {
		return nil, err
	}

	report, err := s.getReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if !injury.CanPostMessage(act, report) {
		return nil, fmt.Errorf("%w: only the assigned doctor may respond", ErrPermissionDenied)
	}

	msg := &injury.ShortMessage{
		ID:              injury.NewID(),
		ReportID:        reportID,
		Response:        req.Response,
		Medication:      req.Medication,
		DoctorNote:      req.DoctorNote,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		CreatedAt:       s.now(),
	}

	err = s.store.WithinTx(ctx, func(st injury.Stores) error {
		ticket, err := st.Tickets.GetByReport(ctx, reportID)
		if err != nil {
			return fmt.Errorf("get ticket: %w", err)
		}
		if ticket.Status == injury.StatusClosed {
			return fmt.Errorf("%w: case is closed", ErrInvalidState)
		}
		if err := st.Messages.Insert(ctx, msg); err != nil {
			return fmt.Errorf("insert message: %w", err)
		}
		// First response moves the case forward; later ones are no-ops.
		applied, err := st.Tickets.Advance(ctx, ticket.ID, injury.StatusInProgress, injury.StatusOpen)
		if err != nil {
			if errors.Is(err, injury.ErrNotFound) {
				return fmt.Errorf("%w: case %s was withdrawn", ErrConflict, reportID)
			}
			return fmt.Errorf("advance ticket: %w", err)
		}
		if !applied {
			// Zero rows is fine when the case is already IN_PROGRESS,
			// fatal when a concurrent withdrawal took the ticket away.
			if _, err := st.Tickets.Get(ctx, ticket.ID); err != nil {
				if errors.Is(err, injury.ErrNotFound) {
					return fmt.Errorf("%w: case %s was withdrawn", ErrConflict, reportID)
				}
				return fmt.Errorf("recheck ticket: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish("responded", reportID)
	return msg, nil
}

func (s *caseService) UpdateShortMessage(ctx context.Context, act actor.Actor, messageID uuid.UUID, req UpdateMessageRequest) (*injury.ShortMessage, error) {
	msg, err := s.store.Stores().Messages.Get(ctx, messageID)
	if err != nil {
		if errors.Is(err, injury.ErrNotFound) {
			return nil, fmt.Errorf("%w: message %s", ErrNotFound, messageID)
		}
		return nil, fmt.Errorf("get message: %w", err)
	}

	report, err := s.getReport(ctx, msg.ReportID)
	if err != nil {
		return nil, err
	}
	if !injury.CanPostMessage(act, report) {
		return nil, fmt.Errorf("%w: only the assigned doctor may edit responses", ErrPermissionDenied)
	}

	ticket, err := s.getTicket(ctx, msg.ReportID)
	if err != nil {
		return nil, err
	}
	if ticket.Status == injury.StatusClosed {
		return nil, fmt.Errorf("%w: case is closed", ErrInvalidState)
	}

	if req.Response != nil {
		msg.Response = *req.Response
	}
	if req.Medication != nil {
		msg.Medication = *req.Medication
	}
	if req.DoctorNote != nil {
		msg.DoctorNote = *req.DoctorNote
	}
	if req.AppointmentDate != nil {
		msg.AppointmentDate = *req.AppointmentDate
	}
	if req.AppointmentTime != nil {
		msg.AppointmentTime = *req.AppointmentTime
	}
	if msg.Response == "" || msg.Medication == "" || msg.DoctorNote == "" ||
		msg.AppointmentDate.IsZero() || msg.AppointmentTime == "" {
		return nil, fmt.Errorf("%w: message fields cannot be cleared", ErrInvalidArgument)
	}

	if err := s.store.Stores().Messages.Update(ctx, msg); err != nil {
		return nil, fmt.Errorf("update message: %w", err)
	}
	return msg, nil
}

func (s *caseService) FileAssessment(ctx context.Context, act actor.Actor, reportID uuid.UUID, req FileAssessmentRequest) (*injury.Assessment, error) {
	if err := validateAssessmentFields(req); err != nil {
		return nil, err
	}

	report, err := s.getReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if !injury.CanFileAssessment(act, report) {
		return nil, fmt.Errorf("%w: only the assigned doctor may assess", ErrPermissionDenied)
	}

	followUp := true
	if req.FollowUpRequired != nil {
		followUp = *req.FollowUpRequired
	}
	clearance := req.ClearanceStatus
	if clearance == "" {
		clearance = injury.ClearancePending
	}

	now := s.now()
	as := &injury.Assessment{
		ID:                     injury.NewID(),
		ReportID:               reportID,
		DoctorID:               act.ID,
		Diagnosis:              req.Diagnosis,
		DiagnosisDetails:       req.DiagnosisDetails,
		Severity:               req.Severity,
		TreatmentPlan:          req.TreatmentPlan,
		Medications:            req.Medications,
		RehabilitationProtocol: req.RehabilitationProtocol,
		Restrictions:           req.Restrictions,
		EstimatedRecovery:      req.EstimatedRecovery,
		FollowUpRequired:       followUp,
		Appointment:            req.Appointment,
		ClearanceStatus:        clearance,
		TestResults:            req.TestResults,
		Notes:                  req.Notes,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	// The per-report uniqueness constraint decides the race: of N
	// concurrent filings exactly one insert lands, the rest get
	// ErrDuplicate. Closing the ticket rides in the same transaction.
	err = s.store.WithinTx(ctx, func(st injury.Stores) error {
		ticket, err := st.Tickets.GetByReport(ctx, reportID)
		if err != nil {
			return fmt.Errorf("get ticket: %w", err)
		}
		if err := st.Assessments.Insert(ctx, as); err != nil {
			if errors.Is(err, injury.ErrDuplicate) {
				return fmt.Errorf("%w: case %s", ErrAssessmentExists, reportID)
			}
			return fmt.Errorf("insert assessment: %w", err)
		}
		applied, err := st.Tickets.Advance(ctx, ticket.ID, injury.StatusClosed, injury.StatusOpen, injury.StatusInProgress)
		if err != nil {
			if errors.Is(err, injury.ErrNotFound) {
				return fmt.Errorf("%w: case %s was withdrawn", ErrConflict, reportID)
			}
			return fmt.Errorf("close ticket: %w", err)
		}
		if !applied {
			// The insert above proved no other assessment closed the
			// ticket, so zero rows means the case is gone.
			return fmt.Errorf("%w: case %s was withdrawn", ErrConflict, reportID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish("closed", reportID)
	return as, nil
}

func (s *caseService) UpdateAssessment(ctx context.Context, act actor.Actor, assessmentID uuid.UUID, req UpdateAssessmentRequest) (*injury.Assessment, error) {
	as, err := s.store.Stores().Assessments.Get(ctx, assessmentID)
	if err != nil {
		if errors.Is(err, injury.ErrNotFound) {
			return nil, fmt.Errorf("%w: assessment %s", ErrNotFound, assessmentID)
		}
		return nil, fmt.Errorf("get assessment: %w", err)
	}
	if !injury.CanEditAssessment(act, as) {
		return nil, fmt.Errorf("%w: only the authoring doctor may edit the assessment", ErrPermissionDenied)
	}

	if req.Diagnosis != nil {
		as.Diagnosis = *req.Diagnosis
	}
	if req.DiagnosisDetails != nil {
		as.DiagnosisDetails = *req.DiagnosisDetails
	}
	if req.Severity != nil {
		as.Severity = *req.Severity
	}
	if req.TreatmentPlan != nil {
		as.TreatmentPlan = *req.TreatmentPlan
	}
	if req.Medications != nil {
		as.Medications = req.Medications
	}
	if req.RehabilitationProtocol != nil {
		as.RehabilitationProtocol = *req.RehabilitationProtocol
	}
	if req.Restrictions != nil {
		as.Restrictions = req.Restrictions
	}
	if req.EstimatedRecovery != nil {
		as.EstimatedRecovery = req.EstimatedRecovery
	}
	if req.FollowUpRequired != nil {
		as.FollowUpRequired = *req.FollowUpRequired
	}
	if req.Appointment != nil {
		as.Appointment = req.Appointment
	}
	if req.ClearanceStatus != nil {
		as.ClearanceStatus = *req.ClearanceStatus
	}
	if req.TestResults != nil {
		as.TestResults = req.TestResults
	}
	if req.Notes != nil {
		as.Notes = *req.Notes
	}

	if err := validateAssessment(as); err != nil {
		return nil, err
	}

	as.UpdatedAt = s.now()
	if err := s.store.Stores().Assessments.Update(ctx, as); err != nil {
		return nil, fmt.Errorf("update assessment: %w", err)
	}
	return as, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *caseService) getReport(ctx context.Context, reportID uuid.UUID) (*injury.Report, error) {
	report, err := s.store.Stores().Reports.Get(ctx, reportID)
	if err != nil {
		if errors.Is(err, injury.ErrNotFound) {
			return nil, fmt.Errorf("%w: case %s", ErrNotFound, reportID)
		}
		return nil, fmt.Errorf("get report: %w", err)
	}
	return report, nil
}

func (s *caseService) getTicket(ctx context.Context, reportID uuid.UUID) (*injury.Ticket, error) {
	ticket, err := s.store.Stores().Tickets.GetByReport(ctx, reportID)
	if err != nil {
		if errors.Is(err, injury.ErrNotFound) {
			return nil, fmt.Errorf("%w: case %s", ErrNotFound, reportID)
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return ticket, nil
}

func (s *caseService) publish(event string, reportID uuid.UUID) {
	if s.nc == nil {
		return
	}
	subject := fmt.Sprintf("athletiq.injury.case.%s.%s", event, reportID)
	_ = s.nc.Publish(subject, []byte(reportID.String()))
}

func validateReportRequired(r *injury.Report) error {
	switch {
	case r.Title == "":
		return fmt.Errorf("%w: title is required", ErrInvalidArgument)
	case r.InjuryType == "":
		return fmt.Errorf("%w: injury type is required", ErrInvalidArgument)
	case r.BodyPart == "":
		return fmt.Errorf("%w: body part is required", ErrInvalidArgument)
	case r.DateOfInjury.IsZero():
		return fmt.Errorf("%w: date of injury is required", ErrInvalidArgument)
	case !r.AffectingPerformance.Valid():
		return fmt.Errorf("%w: invalid performance impact %q", ErrInvalidArgument, r.AffectingPerformance)
	}
	return nil
}

func (s *caseService) validateReportValues(r *injury.Report) error {
	switch {
	case r.PainLevel < 1 || r.PainLevel > 10:
		return fmt.Errorf("%w: pain level must be between 1 and 10", ErrInvalidArgument)
	case r.DateOfInjury.After(s.now()):
		return fmt.Errorf("%w: date of injury cannot be in the future", ErrInvalidArgument)
	}
	return nil
}

func (s *caseService) validateReport(r *injury.Report) error {
	if err := validateReportRequired(r); err != nil {
		return err
	}
	return s.validateReportValues(r)
}

func validateMessageFields(req PostMessageRequest) error {
	switch {
	case req.Response == "":
		return fmt.Errorf("%w: response is required", ErrInvalidArgument)
	case req.Medication == "":
		return fmt.Errorf("%w: medication is required", ErrInvalidArgument)
	case req.DoctorNote == "":
		return fmt.Errorf("%w: doctor note is required", ErrInvalidArgument)
	case req.AppointmentDate.IsZero():
		return fmt.Errorf("%w: appointment date is required", ErrInvalidArgument)
	case req.AppointmentTime == "":
		return fmt.Errorf("%w: appointment time is required", ErrInvalidArgument)
	}
	return nil
}

func validateAssessmentFields(req FileAssessmentRequest) error {
	switch {
	case req.Diagnosis == "":
		return fmt.Errorf("%w: diagnosis is required", ErrInvalidArgument)
	case !req.Severity.Valid():
		return fmt.Errorf("%w: invalid severity %q", ErrInvalidArgument, req.Severity)
	case req.TreatmentPlan == "":
		return fmt.Errorf("%w: treatment plan is required", ErrInvalidArgument)
	case req.ClearanceStatus != "" && !req.ClearanceStatus.Valid():
		return fmt.Errorf("%w: invalid clearance status %q", ErrInvalidArgument, req.ClearanceStatus)
	case req.EstimatedRecovery != nil && !req.EstimatedRecovery.Unit.Valid():
		return fmt.Errorf("%w: invalid recovery unit %q", ErrInvalidArgument, req.EstimatedRecovery.Unit)
	}
	return nil
}

func validateAssessment(a *injury.Assessment) error {
	switch {
	case a.Diagnosis == "":
		return fmt.Errorf("%w: diagnosis is required", ErrInvalidArgument)
	case !a.Severity.Valid():
		return fmt.Errorf("%w: invalid severity %q", ErrInvalidArgument, a.Severity)
	case a.TreatmentPlan == "":
		return fmt.Errorf("%w: treatment plan is required", ErrInvalidArgument)
	case !a.ClearanceStatus.Valid():
		return fmt.Errorf("%w: invalid clearance status %q", ErrInvalidArgument, a.ClearanceStatus)
	case a.EstimatedRecovery != nil && !a.EstimatedRecovery.Unit.Valid():
		return fmt.Errorf("%w: invalid recovery unit %q", ErrInvalidArgument, a.EstimatedRecovery.Unit)
	}
	return nil
}
