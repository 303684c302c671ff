// Package entstore implements the injury store contracts over the
// ent-generated Postgres client. The assessment's report_id uniqueness
// lives in the database schema, so concurrent filings resolve to one
// winner regardless of how many service instances run.
package entstore

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/athletiq/athletiq_backend/internal/domain/injury"
	"github.com/athletiq/athletiq_backend/internal/repo"
	entassessment "github.com/athletiq/athletiq_backend/internal/repo/injuryassessment"
	entreport "github.com/athletiq/athletiq_backend/internal/repo/injuryreport"
	entmessage "github.com/athletiq/athletiq_backend/internal/repo/injuryshortmessage"
	entticket "github.com/athletiq/athletiq_backend/internal/repo/injuryticket"
)

type Store struct {
	db *repo.Client
}

var _ injury.Store = (*Store)(nil)

func New(db *repo.Client) *Store {
	return &Store{db: db}
}

func (s *Store) Stores() injury.Stores {
	return stores(s.db)
}

func (s *Store) WithinTx(ctx context.Context, fn func(injury.Stores) error) error {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if err = fn(stores(tx.Client())); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func stores(c *repo.Client) injury.Stores {
	return injury.Stores{
		Reports:     &reportStore{c: c},
		Tickets:     &ticketStore{c: c},
		Messages:    &messageStore{c: c},
		Assessments: &assessmentStore{c: c},
	}
}

func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case repo.IsNotFound(err):
		return injury.ErrNotFound
	case repo.IsConstraintError(err):
		return injury.ErrDuplicate
	}
	return err
}

// ---------------------------------------------------------------------------
// Reports
// ---------------------------------------------------------------------------

type reportStore struct {
	c *repo.Client
}

func (s *reportStore) Insert(ctx context.Context, r *injury.Report) error {
	_, err := s.c.InjuryReport.Create().
		SetID(r.ID).
		SetAthleteID(r.AthleteID).
		SetDoctorID(r.DoctorID).
		SetTitle(r.Title).
		SetInjuryType(r.InjuryType).
		SetBodyPart(r.BodyPart).
		SetPainLevel(r.PainLevel).
		SetDateOfInjury(r.DateOfInjury).
		SetActivityContext(r.ActivityContext).
		SetSymptoms(r.Symptoms).
		SetAffectingPerformance(entreport.AffectingPerformance(r.AffectingPerformance)).
		SetPreviouslyInjured(r.PreviouslyInjured).
		SetNotes(r.Notes).
		SetImages(r.Images).
		SetCreatedAt(r.CreatedAt).
		SetUpdatedAt(r.UpdatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("insert report: %w", mapErr(err))
	}
	return nil
}

func (s *reportStore) Get(ctx context.Context, id uuid.UUID) (*injury.Report, error) {
	row, err := s.c.InjuryReport.Query().
		Where(entreport.ID(id)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("get report: %w", mapErr(err))
	}
	return toReport(row), nil
}

func (s *reportStore) Update(ctx context.Context, r *injury.Report) error {
	err := s.c.InjuryReport.UpdateOneID(r.ID).
		SetTitle(r.Title).
		SetInjuryType(r.InjuryType).
		SetBodyPart(r.BodyPart).
		SetPainLevel(r.PainLevel).
		SetDateOfInjury(r.DateOfInjury).
		SetActivityContext(r.ActivityContext).
		SetSymptoms(r.Symptoms).
		SetAffectingPerformance(entreport.AffectingPerformance(r.AffectingPerformance)).
		SetPreviouslyInjured(r.PreviouslyInjured).
		SetNotes(r.Notes).
		SetImages(r.Images).
		SetUpdatedAt(r.UpdatedAt).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update report: %w", mapErr(err))
	}
	return nil
}

func (s *reportStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.c.InjuryReport.DeleteOneID(id).Exec(ctx); err != nil {
		return fmt.Errorf("delete report: %w", mapErr(err))
	}
	return nil
}

func (s *reportStore) ListByAthlete(ctx context.Context, athleteID uuid.UUID) ([]*injury.Report, error) {
	rows, err := s.c.InjuryReport.Query().
		Where(entreport.AthleteID(athleteID)).
		Order(entreport.ByCreatedAt(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reports by athlete: %w", err)
	}
	return toReports(rows), nil
}

func (s *reportStore) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*injury.Report, error) {
	rows, err := s.c.InjuryReport.Query().
		Where(entreport.DoctorID(doctorID)).
		Order(entreport.ByCreatedAt(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reports by doctor: %w", err)
	}
	return toReports(rows), nil
}

func toReports(rows []*repo.InjuryReport) []*injury.Report {
	out := make([]*injury.Report, 0, len(rows))
	for _, row := range rows {
		out = append(out, toReport(row))
	}
	return out
}

func toReport(row *repo.InjuryReport) *injury.Report {
	return &injury.Report{
		ID:                   row.ID,
		AthleteID:            row.AthleteID,
		DoctorID:             row.DoctorID,
		Title:                row.Title,
		InjuryType:           row.InjuryType,
		BodyPart:             row.BodyPart,
		PainLevel:            row.PainLevel,
		DateOfInjury:         row.DateOfInjury,
		ActivityContext:      row.ActivityContext,
		Symptoms:             row.Symptoms,
		AffectingPerformance: injury.PerformanceImpact(row.AffectingPerformance),
		PreviouslyInjured:    row.PreviouslyInjured,
		Notes:                row.Notes,
		Images:               row.Images,
		CreatedAt:            row.CreatedAt,
		UpdatedAt:            row.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Tickets
// ---------------------------------------------------------------------------

type ticketStore struct {
	c *repo.Client
}

func (s *ticketStore) Insert(ctx context.Context, t *injury.Ticket) error {
	_, err := s.c.InjuryTicket.Create().
		SetID(t.ID).
		SetReportID(t.ReportID).
		SetStatus(entticket.Status(t.Status)).
		SetCreatedAt(t.CreatedAt).
		SetUpdatedAt(t.UpdatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("insert ticket: %w", mapErr(err))
	}
	return nil
}

func (s *ticketStore) Get(ctx context.Context, id uuid.UUID) (*injury.Ticket, error) {
	row, err := s.c.InjuryTicket.Query().
		Where(entticket.ID(id)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", mapErr(err))
	}
	return toTicket(row), nil
}

func (s *ticketStore) GetByReport(ctx context.Context, reportID uuid.UUID) (*injury.Ticket, error) {
	row, err := s.c.InjuryTicket.Query().
		Where(entticket.ReportID(reportID)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("get ticket by report: %w", mapErr(err))
	}
	return toTicket(row), nil
}

func (s *ticketStore) Advance(ctx context.Context, id uuid.UUID, to injury.TicketStatus, from ...injury.TicketStatus) (bool, error) {
	fromStatuses := make([]entticket.Status, 0, len(from))
	for _, f := range from {
		fromStatuses = append(fromStatuses, entticket.Status(f))
	}
	// One conditional UPDATE; the row count is the CAS outcome. The
	// update also holds the row lock for the rest of the transaction,
	// serializing writers on the same ticket.
	n, err := s.c.InjuryTicket.Update().
		Where(entticket.ID(id), entticket.StatusIn(fromStatuses...)).
		SetStatus(entticket.Status(to)).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("advance ticket: %w", err)
	}
	return n > 0, nil
}

func (s *ticketStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.c.InjuryTicket.DeleteOneID(id).Exec(ctx); err != nil {
		return fmt.Errorf("delete ticket: %w", mapErr(err))
	}
	return nil
}

func (s *ticketStore) List(ctx context.Context) ([]*injury.Ticket, error) {
	rows, err := s.c.InjuryTicket.Query().
		Order(entticket.ByCreatedAt(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return toTickets(rows), nil
}

func (s *ticketStore) ListByReports(ctx context.Context, reportIDs []uuid.UUID) ([]*injury.Ticket, error) {
	rows, err := s.c.InjuryTicket.Query().
		Where(entticket.ReportIDIn(reportIDs...)).
		Order(entticket.ByCreatedAt(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tickets by reports: %w", err)
	}
	return toTickets(rows), nil
}

func toTickets(rows []*repo.InjuryTicket) []*injury.Ticket {
	out := make([]*injury.Ticket, 0, len(rows))
	for _, row := range rows {
		out = append(out, toTicket(row))
	}
	return out
}

func toTicket(row *repo.InjuryTicket) *injury.Ticket {
	return &injury.Ticket{
		ID:        row.ID,
		ReportID:  row.ReportID,
		Status:    injury.TicketStatus(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

type messageStore struct {
	c *repo.Client
}

func (s *messageStore) Insert(ctx context.Context, m *injury.ShortMessage) error {
	_, err := s.c.InjuryShortMessage.Create().
		SetID(m.ID).
		SetReportID(m.ReportID).
		SetResponse(m.Response).
		SetMedication(m.Medication).
		SetDoctorNote(m.DoctorNote).
		SetAppointmentDate(m.AppointmentDate).
		SetAppointmentTime(m.AppointmentTime).
		SetCreatedAt(m.CreatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("insert message: %w", mapErr(err))
	}
	return nil
}

func (s *messageStore) Get(ctx context.Context, id uuid.UUID) (*injury.ShortMessage, error) {
	row, err := s.c.InjuryShortMessage.Query().
		Where(entmessage.ID(id)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("get message: %w", mapErr(err))
	}
	return toMessage(row), nil
}

func (s *messageStore) Update(ctx context.Context, m *injury.ShortMessage) error {
	err := s.c.InjuryShortMessage.UpdateOneID(m.ID).
		SetResponse(m.Response).
		SetMedication(m.Medication).
		SetDoctorNote(m.DoctorNote).
		SetAppointmentDate(m.AppointmentDate).
		SetAppointmentTime(m.AppointmentTime).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update message: %w", mapErr(err))
	}
	return nil
}

func (s *messageStore) ListByReport(ctx context.Context, reportID uuid.UUID) ([]*injury.ShortMessage, error) {
	// UUIDv7 ids are time-ordered, so the id tiebreak keeps causal
	// order even for same-timestamp rows.
	rows, err := s.c.InjuryShortMessage.Query().
		Where(entmessage.ReportID(reportID)).
		Order(entmessage.ByCreatedAt(sql.OrderAsc()), entmessage.ByID(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	out := make([]*injury.ShortMessage, 0, len(rows))
	for _, row := range rows {
		out = append(out, toMessage(row))
	}
	return out, nil
}

func (s *messageStore) DeleteByReport(ctx context.Context, reportID uuid.UUID) error {
	_, err := s.c.InjuryShortMessage.Delete().
		Where(entmessage.ReportID(reportID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete messages: %w", err)
	}
	return nil
}

func toMessage(row *repo.InjuryShortMessage) *injury.ShortMessage {
	return &injury.ShortMessage{
		ID:              row.ID,
		ReportID:        row.ReportID,
		Response:        row.Response,
		Medication:      row.Medication,
		DoctorNote:      row.DoctorNote,
		AppointmentDate: row.AppointmentDate,
		AppointmentTime: row.AppointmentTime,
		CreatedAt:       row.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Assessments
// ---------------------------------------------------------------------------

type assessmentStore struct {
	c *repo.Client
}

func (s *assessmentStore) Insert(ctx context.Context, a *injury.Assessment) error {
	create := s.c.InjuryAssessment.Create().
		SetID(a.ID).
		SetReportID(a.ReportID).
		SetDoctorID(a.DoctorID).
		SetDiagnosis(a.Diagnosis).
		SetDiagnosisDetails(a.DiagnosisDetails).
		SetSeverity(entassessment.Severity(a.Severity)).
		SetTreatmentPlan(a.TreatmentPlan).
		SetMedications(a.Medications).
		SetRehabilitationProtocol(a.RehabilitationProtocol).
		SetRestrictions(a.Restrictions).
		SetFollowUpRequired(a.FollowUpRequired).
		SetClearanceStatus(entassessment.ClearanceStatus(a.ClearanceStatus)).
		SetTestResults(a.TestResults).
		SetNotes(a.Notes).
		SetCreatedAt(a.CreatedAt).
		SetUpdatedAt(a.UpdatedAt)
	if a.EstimatedRecovery != nil {
		create = create.SetEstimatedRecovery(a.EstimatedRecovery)
	}
	if a.Appointment != nil {
		create = create.SetAppointment(a.Appointment)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("insert assessment: %w", mapErr(err))
	}
	return nil
}

func (s *assessmentStore) Get(ctx context.Context, id uuid.UUID) (*injury.Assessment, error) {
	row, err := s.c.InjuryAssessment.Query().
		Where(entassessment.ID(id)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("get assessment: %w", mapErr(err))
	}
	return toAssessment(row), nil
}

func (s *assessmentStore) GetByReport(ctx context.Context, reportID uuid.UUID) (*injury.Assessment, error) {
	row, err := s.c.InjuryAssessment.Query().
		Where(entassessment.ReportID(reportID)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("get assessment by report: %w", mapErr(err))
	}
	return toAssessment(row), nil
}

func (s *assessmentStore) Update(ctx context.Context, a *injury.Assessment) error {
	update := s.c.InjuryAssessment.UpdateOneID(a.ID).
		SetDiagnosis(a.Diagnosis).
		SetDiagnosisDetails(a.DiagnosisDetails).
		SetSeverity(entassessment.Severity(a.Severity)).
		SetTreatmentPlan(a.TreatmentPlan).
		SetMedications(a.Medications).
		SetRehabilitationProtocol(a.RehabilitationProtocol).
		SetRestrictions(a.Restrictions).
		SetFollowUpRequired(a.FollowUpRequired).
		SetClearanceStatus(entassessment.ClearanceStatus(a.ClearanceStatus)).
		SetTestResults(a.TestResults).
		SetNotes(a.Notes).
		SetUpdatedAt(a.UpdatedAt)
	if a.EstimatedRecovery != nil {
		update = update.SetEstimatedRecovery(a.EstimatedRecovery)
	} else {
		update = update.ClearEstimatedRecovery()
	}
	if a.Appointment != nil {
		update = update.SetAppointment(a.Appointment)
	} else {
		update = update.ClearAppointment()
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("update assessment: %w", mapErr(err))
	}
	return nil
}

func (s *assessmentStore) ListByReports(ctx context.Context, reportIDs []uuid.UUID) ([]*injury.Assessment, error) {
	rows, err := s.c.InjuryAssessment.Query().
		Where(entassessment.ReportIDIn(reportIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	out := make([]*injury.Assessment, 0, len(rows))
	for _, row := range rows {
		out = append(out, toAssessment(row))
	}
	return out, nil
}

func toAssessment(row *repo.InjuryAssessment) *injury.Assessment {
	return &injury.Assessment{
		ID:                     row.ID,
		ReportID:               row.ReportID,
		DoctorID:               row.DoctorID,
		Diagnosis:              row.Diagnosis,
		DiagnosisDetails:       row.DiagnosisDetails,
		Severity:               injury.Severity(row.Severity),
		TreatmentPlan:          row.TreatmentPlan,
		Medications:            row.Medications,
		RehabilitationProtocol: row.RehabilitationProtocol,
		Restrictions:           row.Restrictions,
		EstimatedRecovery:      row.EstimatedRecovery,
		FollowUpRequired:       row.FollowUpRequired,
		Appointment:            row.Appointment,
		ClearanceStatus:        injury.ClearanceStatus(row.ClearanceStatus),
		TestResults:            row.TestResults,
		Notes:                  row.Notes,
		CreatedAt:              row.CreatedAt,
		UpdatedAt:              row.UpdatedAt,
	}
}
