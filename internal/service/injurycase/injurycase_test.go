package injurycase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/athletiq/athletiq_backend/internal/actor"
	"github.com/athletiq/athletiq_backend/internal/domain/injury"
	"github.com/athletiq/athletiq_backend/internal/store/memstore"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type fixture struct {
	svc     Service
	store   *memstore.Store
	dir     *memstore.Directory
	athlete actor.Actor
	doctor  actor.Actor
	admin   actor.Actor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	athleteID := injury.NewID()
	doctorID := injury.NewID()

	dir := memstore.NewDirectory()
	dir.AddAthlete(athleteID)
	dir.AddDoctor(doctorID)

	store := memstore.New()
	svc := NewWithClock(store, dir, nil, func() time.Time { return testNow })

	return &fixture{
		svc:     svc,
		store:   store,
		dir:     dir,
		athlete: actor.Actor{Role: actor.RoleAthlete, ID: athleteID},
		doctor:  actor.Actor{Role: actor.RoleDoctor, ID: doctorID},
		admin:   actor.Actor{Role: actor.RoleAdmin, ID: injury.NewID()},
	}
}

func validOpenRequest(doctorID uuid.UUID) OpenCaseRequest {
	return OpenCaseRequest{
		DoctorID:             doctorID,
		Title:                "Sprained ankle",
		InjuryType:           "Sprain",
		BodyPart:             "Ankle",
		PainLevel:            7,
		DateOfInjury:         testNow.AddDate(0, 0, -1),
		ActivityContext:      "League match",
		Symptoms:             []string{"swelling", "bruising"},
		AffectingPerformance: injury.ImpactCannotPlay,
		PreviouslyInjured:    false,
		Notes:                "Rolled the ankle on landing",
	}
}

func validMessage() PostMessageRequest {
	return PostMessageRequest{
		Response:        "Rest and ice for 48 hours",
		Medication:      "Ibuprofen 400mg",
		DoctorNote:      "Suspected grade II sprain",
		AppointmentDate: testNow.AddDate(0, 0, 3),
		AppointmentTime: "10:30",
	}
}

func validAssessment() FileAssessmentRequest {
	return FileAssessmentRequest{
		Diagnosis:     "Grade II lateral ankle sprain",
		Severity:      injury.SeverityModerate,
		TreatmentPlan: "RICE protocol, then progressive loading",
		EstimatedRecovery: &injury.RecoveryEstimate{
			Value: 4,
			Unit:  injury.RecoveryWeeks,
		},
		ClearanceStatus: injury.ClearanceNoActivity,
	}
}

func (f *fixture) openCase(t *testing.T) *injury.Case {
	t.Helper()
	c, err := f.svc.OpenCase(context.Background(), f.athlete, validOpenRequest(f.doctor.ID))
	if err != nil {
		t.Fatalf("OpenCase: %v", err)
	}
	return c
}

func TestOpenCase(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c := f.openCase(t)

	if c.Ticket.Status != injury.StatusOpen {
		t.Errorf("status = %q, want %q", c.Ticket.Status, injury.StatusOpen)
	}
	if c.Ticket.ReportID != c.Report.ID {
		t.Errorf("ticket references report %s, want %s", c.Ticket.ReportID, c.Report.ID)
	}
	if c.Report.AthleteID != f.athlete.ID {
		t.Errorf("report owner = %s, want %s", c.Report.AthleteID, f.athlete.ID)
	}

	// Scenario A: re-fetch shows OPEN and no assessment.
	got, err := f.svc.GetCase(ctx, f.athlete, c.Report.ID)
	if err != nil {
		t.Fatalf("GetCase: %v", err)
	}
	if got.Ticket.Status != injury.StatusOpen {
		t.Errorf("refetched status = %q, want OPEN", got.Ticket.Status)
	}
	if got.Assessment != nil {
		t.Error("fresh case has an assessment")
	}
}

func TestOpenCaseValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*OpenCaseRequest)
		wantErr error
	}{
		{"pain level too high", func(r *OpenCaseRequest) { r.PainLevel = 11 }, ErrInvalidArgument},
		{"pain level too low", func(r *OpenCaseRequest) { r.PainLevel = 0 }, ErrInvalidArgument},
		{"future injury date", func(r *OpenCaseRequest) { r.DateOfInjury = testNow.Add(time.Hour) }, ErrInvalidArgument},
		{"missing title", func(r *OpenCaseRequest) { r.Title = "" }, ErrInvalidArgument},
		{"missing injury type", func(r *OpenCaseRequest) { r.InjuryType = "" }, ErrInvalidArgument},
		{"missing body part", func(r *OpenCaseRequest) { r.BodyPart = "" }, ErrInvalidArgument},
		{"bad performance impact", func(r *OpenCaseRequest) { r.AffectingPerformance = "SOMEWHAT" }, ErrInvalidArgument},
		{"unknown doctor", func(r *OpenCaseRequest) { r.DoctorID = injury.NewID() }, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validOpenRequest(f.doctor.ID)
			tt.mutate(&req)
			_, err := f.svc.OpenCase(ctx, f.athlete, req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}

	// Scenario F: nothing was written by any rejected request.
	buckets, err := f.svc.ListForAthlete(ctx, f.athlete)
	if err != nil {
		t.Fatalf("ListForAthlete: %v", err)
	}
	if buckets.Stats.Total != 0 {
		t.Errorf("stored cases after rejections = %d, want 0", buckets.Stats.Total)
	}
}

func TestOpenCaseExistenceChecks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// An athlete the directory does not know cannot open a case.
	ghost := actor.Actor{Role: actor.RoleAthlete, ID: injury.NewID()}
	if _, err := f.svc.OpenCase(ctx, ghost, validOpenRequest(f.doctor.ID)); !errors.Is(err, ErrNotFound) {
		t.Errorf("OpenCase by unknown athlete: err = %v, want ErrNotFound", err)
	}

	// Existence outranks value checks: an unknown doctor is reported
	// even when the pain level is also out of range.
	req := validOpenRequest(injury.NewID())
	req.PainLevel = 11
	if _, err := f.svc.OpenCase(ctx, f.athlete, req); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown doctor with bad pain level: err = %v, want ErrNotFound", err)
	}

	// A missing required field is reported before either lookup.
	req = validOpenRequest(injury.NewID())
	req.Title = ""
	if _, err := f.svc.OpenCase(ctx, f.athlete, req); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("missing title with unknown doctor: err = %v, want ErrInvalidArgument", err)
	}
}

func TestOpenCaseRoleGate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, a := range []actor.Actor{f.doctor, f.admin} {
		_, err := f.svc.OpenCase(ctx, a, validOpenRequest(f.doctor.ID))
		if !errors.Is(err, ErrPermissionDenied) {
			t.Errorf("OpenCase as %s: err = %v, want ErrPermissionDenied", a.Role, err)
		}
	}
}

func TestPostShortMessage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.openCase(t)

	// Scenario B: first message flips OPEN -> IN_PROGRESS.
	if _, err := f.svc.PostShortMessage(ctx, f.doctor, c.Report.ID, validMessage()); err != nil {
		t.Fatalf("PostShortMessage: %v", err)
	}
	got, err := f.svc.GetCase(ctx, f.doctor, c.Report.ID)
	if err != nil {
		t.Fatalf("GetCase: %v", err)
	}
	if got.Ticket.Status != injury.StatusInProgress {
		t.Fatalf("status after first message = %q, want IN_PROGRESS", got.Ticket.Status)
	}

	// Second message leaves the status unchanged.
	if _, err := f.svc.PostShortMessage(ctx, f.doctor, c.Report.ID, validMessage()); err != nil {
		t.Fatalf("second PostShortMessage: %v", err)
	}
	got, err = f.svc.GetCase(ctx, f.doctor, c.Report.ID)
	if err != nil {
		t.Fatalf("GetCase: %v", err)
	}
	if got.Ticket.Status != injury.StatusInProgress {
		t.Errorf("status after second message = %q, want IN_PROGRESS", got.Ticket.Status)
	}
	if len(got.Messages) != 2 {
		t.Errorf("message count = %d, want 2", len(got.Messages))
	}
	// Causal order: first posted comes first.
	if len(got.Messages) == 2 && got.Messages[0].CreatedAt.After(got.Messages[1].CreatedAt) {
		t.Error("messages not in causal order")
	}
}

func TestPostShortMessageValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.openCase(t)

	tests := []struct {
		name   string
		mutate func(*PostMessageRequest)
	}{
		{"missing response", func(m *PostMessageRequest) { m.Response = "" }},
		{"missing medication", func(m *PostMessageRequest) { m.Medication = "" }},
		{"missing doctor note", func(m *PostMessageRequest) { m.DoctorNote = "" }},
		{"missing appointment date", func(m *PostMessageRequest) { m.AppointmentDate = time.Time{} }},
		{"missing appointment time", func(m *PostMessageRequest) { m.AppointmentTime = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validMessage()
			tt.mutate(&req)
			_, err := f.svc.PostShortMessage(ctx, f.doctor, c.Report.ID, req)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("err = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestWrongDoctorDenied(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.openCase(t)

	// Scenario D: an unassigned doctor can neither respond nor assess.
	other := actor.Actor{Role: actor.RoleDoctor, ID: injury.NewID()}

	if _, err := f.svc.PostShortMessage(ctx, other, c.Report.ID, validMessage()); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("PostShortMessage by unassigned doctor: err = %v, want ErrPermissionDenied", err)
	}
	if _, err := f.svc.FileAssessment(ctx, other, c.Report.ID, validAssessment()); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("FileAssessment by unassigned doctor: err = %v, want ErrPermissionDenied", err)
	}
	if _, err := f.svc.GetCase(ctx, other, c.Report.ID); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("GetCase by unassigned doctor: err = %v, want ErrPermissionDenied", err)
	}
}

func TestFileAssessment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.openCase(t)

	// Scenario C: filing closes the ticket.
	as, err := f.svc.FileAssessment(ctx, f.doctor, c.Report.ID, validAssessment())
	if err != nil {
		t.Fatalf("FileAssessment: %v", err)
	}
	if as.Severity != injury.SeverityModerate {
		t.Errorf("severity = %q, want MODERATE", as.Severity)
	}
	if !as.FollowUpRequired {
		t.Error("follow-up should default to true")
	}

	got, err := f.svc.GetCase(ctx, f.doctor, c.Report.ID)
	if err != nil {
		t.Fatalf("GetCase: %v", err)
	}
	if got.Ticket.Status != injury.StatusClosed {
		t.Fatalf("status after assessment = %q, want CLOSED", got.Ticket.Status)
	}
	if got.Assessment == nil {
		t.Fatal("closed case has no assessment")
	}

	// A second filing is a hard error; the stored record is untouched.
	_, err = f.svc.FileAssessment(ctx, f.doctor, c.Report.ID, validAssessment())
	if !errors.Is(err, ErrAssessmentExists) {
		t.Fatalf("second FileAssessment: err = %v, want ErrAssessmentExists", err)
	}
	got, err = f.svc.GetCase(ctx, f.doctor, c.Report.ID)
	if err != nil {
		t.Fatalf("GetCase: %v", err)
	}
	if got.Ticket.Status != injury.StatusClosed || got.Assessment == nil || got.Assessment.ID != as.ID {
		t.Error("second filing disturbed the stored assessment")
	}

	// Messages are rejected once the case is closed.
	if _, err := f.svc.PostShortMessage(ctx, f.doctor, c.Report.ID, validMessage()); !errors.Is(err, ErrInvalidState) {
		t.Errorf("PostShortMessage on closed case: err = %v, want ErrInvalidState", err)
	}
}

func TestFileAssessmentValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.openCase(t)

	tests := []struct {
		name   string
		mutate func(*FileAssessmentRequest)
	}{
		{"missing diagnosis", func(r *FileAssessmentRequest) { r.Diagnosis = "" }},
		{"missing treatment plan", func(r *FileAssessmentRequest) { r.TreatmentPlan = "" }},
		{"bad severity", func(r *FileAssessmentRequest) { r.Severity = "CATASTROPHIC" }},
		{"bad clearance", func(r *FileAssessmentRequest) { r.ClearanceStatus = "BENCHED" }},
		{"bad recovery unit", func(r *FileAssessmentRequest) {
			r.EstimatedRecovery = &injury.RecoveryEstimate{Value: 2, Unit: "FORTNIGHTS"}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validAssessment()
			tt.mutate(&req)
			_, err := f.svc.FileAssessment(ctx, f.doctor, c.Report.ID, req)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("err = %v, want ErrInvalidArgument", err)
			}
		})
	}

	// Nothing closed the ticket along the way.
	got, err := f.svc.GetCase(ctx, f.doctor, c.Report.ID)
	if err != nil {
		t.Fatalf("GetCase: %v", err)
	}
	if got.Ticket.Status != injury.StatusOpen {
		t.Errorf("status = %q, want OPEN", got.Ticket.Status)
	}
}

// Invariant: of N concurrent filings on a fresh case exactly one wins.
func TestFileAssessmentConcurrent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.openCase(t)

	const n = 16
	errs := make([]error, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.FileAssessment(ctx, f.doctor, c.Report.ID, validAssessment())
		}(i)
	}
	wg.Wait()

	var wins, dups int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrAssessmentExists), errors.Is(err, ErrConflict):
			dups++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Fatalf("winners = %d, want exactly 1", wins)
	}
	if dups != n-1 {
		t.Fatalf("duplicate rejections = %d, want %d", dups, n-1)
	}

	got, err := f.svc.GetCase(ctx, f.doctor, c.Report.ID)
	if err != nil {
		t.Fatalf("GetCase: %v", err)
	}
	if got.Ticket.Status != injury.StatusClosed {
		t.Errorf("status = %q, want CLOSED", got.Ticket.Status)
	}
	if got.Assessment == nil {
		t.Error("no assessment stored after concurrent filings")
	}
}

// ticketTxOverride swaps the ticket store handed to each transaction,
// simulating interleavings the in-memory lock otherwise rules out.
type ticketTxOverride struct {
	injury.Store
	wrap func(injury.TicketStore) injury.TicketStore
}

func (o ticketTxOverride) WithinTx(ctx context.Context, fn func(injury.Stores) error) error {
	return o.Store.WithinTx(ctx, func(st injury.Stores) error {
		st.Tickets = o.wrap(st.Tickets)
		return fn(st)
	})
}

// vanishingTickets deletes the ticket right before the status advance,
// the way a withdrawal committed by another session would under read
// committed isolation.
type vanishingTickets struct {
	injury.TicketStore
}

func (v vanishingTickets) Advance(ctx context.Context, id uuid.UUID, to injury.TicketStatus, from ...injury.TicketStatus) (bool, error) {
	_ = v.TicketStore.Delete(ctx, id)
	return v.TicketStore.Advance(ctx, id, to, from...)
}

// stalledTickets reports zero matched rows without touching anything,
// the shape a SQL conditional update returns when the row is gone.
type stalledTickets struct {
	injury.TicketStore
}

func (stalledTickets) Advance(context.Context, uuid.UUID, injury.TicketStatus, ...injury.TicketStatus) (bool, error) {
	return false, nil
}

func (f *fixture) raceService(wrap func(injury.TicketStore) injury.TicketStore) Service {
	return NewWithClock(
		ticketTxOverride{Store: f.store, wrap: wrap},
		f.dir,
		nil,
		func() time.Time { return testNow },
	)
}

// A withdrawal landing between the ticket read and the close must fail
// the whole filing instead of leaving an assessment behind.
func TestFileAssessmentConcurrentWithdrawal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.openCase(t)

	racy := f.raceService(func(ts injury.TicketStore) injury.TicketStore {
		return vanishingTickets{ts}
	})
	if _, err := racy.FileAssessment(ctx, f.doctor, c.Report.ID, validAssessment()); !errors.Is(err, ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}

	// The failed transaction left nothing behind.
	if _, err := f.store.Stores().Assessments.GetByReport(ctx, c.Report.ID); !errors.Is(err, injury.ErrNotFound) {
		t.Errorf("assessment persisted after conflict: err = %v", err)
	}
	got, err := f.svc.GetCase(ctx, f.doctor, c.Report.ID)
	if err != nil {
		t.Fatalf("GetCase: %v", err)
	}
	if got.Ticket.Status != injury.StatusOpen {
		t.Errorf("status = %q, want OPEN", got.Ticket.Status)
	}
}

func TestFileAssessmentCloseRefused(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.openCase(t)

	racy := f.raceService(func(ts injury.TicketStore) injury.TicketStore {
		return stalledTickets{ts}
	})
	if _, err := racy.FileAssessment(ctx, f.doctor, c.Report.ID, validAssessment()); !errors.Is(err, ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
	if _, err := f.store.Stores().Assessments.GetByReport(ctx, c.Report.ID); !errors.Is(err, injury.ErrNotFound) {
		t.Errorf("assessment persisted after refused close: err = %v", err)
	}
}

func TestPostShortMessageConcurrentWithdrawal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.openCase(t)

	racy := f.raceService(func(ts injury.TicketStore) injury.TicketStore {
		return vanishingTickets{ts}
	})
	if _, err := racy.PostShortMessage(ctx, f.doctor, c.Report.ID, validMessage()); !errors.Is(err, ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}

	msgs, err := f.svc.ListMessages(ctx, f.doctor, c.Report.ID)
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(msgs) != 0 {
		t.Errorf("message count after conflict = %d, want 0", len(msgs))
	}
	got, err := f.svc.GetCase(ctx, f.doctor, c.Report.ID)
	if err != nil {
		t.Fatalf("GetCase: %v", err)
	}
	if got.Ticket.Status != injury.StatusOpen {
		t.Errorf("status = %q, want OPEN", got.Ticket.Status)
	}
}

// Reads racing a filing must never observe the half of the write that
// already landed: status and assessment always agree.
func TestGetCaseSnapshotConsistent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.openCase(t)

	done := make(chan error, 1)
	go func() {
		_, err := f.svc.FileAssessment(ctx, f.doctor, c.Report.ID, validAssessment())
		done <- err
	}()

	filed := false
	for {
		got, err := f.svc.GetCase(ctx, f.athlete, c.Report.ID)
		if err != nil {
			t.Fatalf("GetCase: %v", err)
		}
		if (got.Ticket.Status == injury.StatusClosed) != (got.Assessment != nil) {
			t.Fatalf("torn snapshot: status=%q assessment=%v", got.Ticket.Status, got.Assessment != nil)
		}
		if got.Ticket.Status == injury.StatusClosed {
			break
		}
		if filed {
			t.Fatal("case never closed after filing completed")
		}
		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("FileAssessment: %v", err)
			}
			filed = true
		default:
		}
	}
}

func TestUpdateAssessment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.openCase(t)

	as, err := f.svc.FileAssessment(ctx, f.doctor, c.Report.ID, validAssessment())
	if err != nil {
		t.Fatalf("FileAssessment: %v", err)
	}

	sev := injury.SeveritySevere
	cleared := injury.ClearanceLimited
	updated, err := f.svc.UpdateAssessment(ctx, f.doctor, as.ID, UpdateAssessmentRequest{
		Severity:        &sev,
		ClearanceStatus: &cleared,
	})
	if err != nil {
		t.Fatalf("UpdateAssessment: %v", err)
	}
	if updated.Severity != injury.SeveritySevere {
		t.Errorf("severity = %q, want SEVERE", updated.Severity)
	}
	if updated.ClearanceStatus != injury.ClearanceLimited {
		t.Errorf("clearance = %q, want LIMITED_ACTIVITY", updated.ClearanceStatus)
	}
	if updated.Diagnosis != as.Diagnosis {
		t.Error("partial update clobbered an untouched field")
	}

	// Ticket stays CLOSED; editing has no status side effect.
	got, err := f.svc.GetCase(ctx, f.doctor, c.Report.ID)
	if err != nil {
		t.Fatalf("GetCase: %v", err)
	}
	if got.Ticket.Status != injury.StatusClosed {
		t.Errorf("status = %q, want CLOSED", got.Ticket.Status)
	}

	// Only the authoring doctor may edit.
	other := actor.Actor{Role: actor.RoleDoctor, ID: injury.NewID()}
	if _, err := f.svc.UpdateAssessment(ctx, other, as.ID, UpdateAssessmentRequest{Severity: &sev}); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("UpdateAssessment by other doctor: err = %v, want ErrPermissionDenied", err)
	}
	if _, err := f.svc.UpdateAssessment(ctx, f.doctor, injury.NewID(), UpdateAssessmentRequest{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateAssessment on missing id: err = %v, want ErrNotFound", err)
	}
}

func TestWithdrawCase(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Scenario E, fresh case: withdrawal removes everything.
	c := f.openCase(t)
	if err := f.svc.WithdrawCase(ctx, f.athlete, c.Report.ID); err != nil {
		t.Fatalf("WithdrawCase: %v", err)
	}
	if _, err := f.svc.GetCase(ctx, f.athlete, c.Report.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetCase after withdrawal: err = %v, want ErrNotFound", err)
	}

	// Scenario E, after a doctor action: withdrawal is refused and the
	// case survives intact.
	c = f.openCase(t)
	if _, err := f.svc.PostShortMessage(ctx, f.doctor, c.Report.ID, validMessage()); err != nil {
		t.Fatalf("PostShortMessage: %v", err)
	}
	if err := f.svc.WithdrawCase(ctx, f.athlete, c.Report.ID); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("WithdrawCase after message: err = %v, want ErrInvalidState", err)
	}
	got, err := f.svc.GetCase(ctx, f.athlete, c.Report.ID)
	if err != nil {
		t.Fatalf("GetCase: %v", err)
	}
	if got.Ticket.Status != injury.StatusInProgress || len(got.Messages) != 1 {
		t.Error("failed withdrawal disturbed the case")
	}

	// Only the owning athlete may withdraw.
	if err := f.svc.WithdrawCase(ctx, f.doctor, c.Report.ID); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("WithdrawCase by doctor: err = %v, want ErrPermissionDenied", err)
	}
	otherAthlete := actor.Actor{Role: actor.RoleAthlete, ID: injury.NewID()}
	if err := f.svc.WithdrawCase(ctx, otherAthlete, c.Report.ID); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("WithdrawCase by other athlete: err = %v, want ErrPermissionDenied", err)
	}
}

func TestUpdateReport(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.openCase(t)

	pain := 4
	notes := "Swelling is going down"
	updated, err := f.svc.UpdateReport(ctx, f.athlete, c.Report.ID, UpdateReportRequest{
		PainLevel: &pain,
		Notes:     &notes,
	})
	if err != nil {
		t.Fatalf("UpdateReport: %v", err)
	}
	if updated.PainLevel != 4 || updated.Notes != notes {
		t.Error("partial update not applied")
	}
	if updated.Title != c.Report.Title {
		t.Error("partial update clobbered an untouched field")
	}

	// Updated values still go through validation.
	bad := 12
	if _, err := f.svc.UpdateReport(ctx, f.athlete, c.Report.ID, UpdateReportRequest{PainLevel: &bad}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("UpdateReport pain 12: err = %v, want ErrInvalidArgument", err)
	}

	// The assigned doctor may update too; strangers may not.
	if _, err := f.svc.UpdateReport(ctx, f.doctor, c.Report.ID, UpdateReportRequest{Notes: &notes}); err != nil {
		t.Errorf("UpdateReport by assigned doctor: %v", err)
	}
	other := actor.Actor{Role: actor.RoleDoctor, ID: injury.NewID()}
	if _, err := f.svc.UpdateReport(ctx, other, c.Report.ID, UpdateReportRequest{Notes: &notes}); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("UpdateReport by stranger: err = %v, want ErrPermissionDenied", err)
	}

	// Closed cases are immutable.
	if _, err := f.svc.FileAssessment(ctx, f.doctor, c.Report.ID, validAssessment()); err != nil {
		t.Fatalf("FileAssessment: %v", err)
	}
	if _, err := f.svc.UpdateReport(ctx, f.athlete, c.Report.ID, UpdateReportRequest{Notes: &notes}); !errors.Is(err, ErrInvalidState) {
		t.Errorf("UpdateReport on closed case: err = %v, want ErrInvalidState", err)
	}
}

func TestUpdateShortMessage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.openCase(t)

	msg, err := f.svc.PostShortMessage(ctx, f.doctor, c.Report.ID, validMessage())
	if err != nil {
		t.Fatalf("PostShortMessage: %v", err)
	}

	resp := "Switch to heat after 48 hours"
	updated, err := f.svc.UpdateShortMessage(ctx, f.doctor, msg.ID, UpdateMessageRequest{Response: &resp})
	if err != nil {
		t.Fatalf("UpdateShortMessage: %v", err)
	}
	if updated.Response != resp {
		t.Errorf("response = %q, want %q", updated.Response, resp)
	}
	if updated.Medication != msg.Medication {
		t.Error("partial update clobbered an untouched field")
	}

	empty := ""
	if _, err := f.svc.UpdateShortMessage(ctx, f.doctor, msg.ID, UpdateMessageRequest{Medication: &empty}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("clearing a required field: err = %v, want ErrInvalidArgument", err)
	}

	if _, err := f.svc.UpdateShortMessage(ctx, f.athlete, msg.ID, UpdateMessageRequest{Response: &resp}); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("UpdateShortMessage by athlete: err = %v, want ErrPermissionDenied", err)
	}
}

func TestListings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	open := f.openCase(t)
	inProgress := f.openCase(t)
	closed := f.openCase(t)

	if _, err := f.svc.PostShortMessage(ctx, f.doctor, inProgress.Report.ID, validMessage()); err != nil {
		t.Fatalf("PostShortMessage: %v", err)
	}
	if _, err := f.svc.FileAssessment(ctx, f.doctor, closed.Report.ID, validAssessment()); err != nil {
		t.Fatalf("FileAssessment: %v", err)
	}

	check := func(name string, b *CaseBuckets) {
		t.Helper()
		if b.Stats.Total != 3 || b.Stats.Open != 1 || b.Stats.InProgress != 1 || b.Stats.Closed != 1 {
			t.Errorf("%s stats = %+v, want 3/1/1/1", name, b.Stats)
		}
		if len(b.Open) != 1 || b.Open[0].Report.ID != open.Report.ID {
			t.Errorf("%s: wrong open bucket", name)
		}
		if len(b.InProgress) != 1 || b.InProgress[0].Report.ID != inProgress.Report.ID {
			t.Errorf("%s: wrong in-progress bucket", name)
		}
		if len(b.Closed) != 1 || b.Closed[0].Report.ID != closed.Report.ID {
			t.Errorf("%s: wrong closed bucket", name)
		}
		// Consistent snapshot: CLOSED iff assessment attached.
		for _, c := range append(append([]*injury.Case{}, b.Open...), b.InProgress...) {
			if c.Assessment != nil {
				t.Errorf("%s: non-closed case carries an assessment", name)
			}
		}
		for _, c := range b.Closed {
			if c.Assessment == nil {
				t.Errorf("%s: closed case without assessment", name)
			}
		}
	}

	athleteView, err := f.svc.ListForAthlete(ctx, f.athlete)
	if err != nil {
		t.Fatalf("ListForAthlete: %v", err)
	}
	check("athlete", athleteView)

	doctorView, err := f.svc.ListForDoctor(ctx, f.doctor)
	if err != nil {
		t.Fatalf("ListForDoctor: %v", err)
	}
	check("doctor", doctorView)

	adminView, err := f.svc.ListAll(ctx, f.admin)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	check("admin", adminView)

	// Role gates on the listings themselves.
	if _, err := f.svc.ListForAthlete(ctx, f.doctor); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("ListForAthlete as doctor: err = %v, want ErrPermissionDenied", err)
	}
	if _, err := f.svc.ListAll(ctx, f.athlete); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("ListAll as athlete: err = %v, want ErrPermissionDenied", err)
	}
}

func TestAdminReadOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.openCase(t)

	// Admin can read any case.
	if _, err := f.svc.GetCase(ctx, f.admin, c.Report.ID); err != nil {
		t.Errorf("GetCase as admin: %v", err)
	}

	// But holds no mutation path in the lifecycle.
	if _, err := f.svc.PostShortMessage(ctx, f.admin, c.Report.ID, validMessage()); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("PostShortMessage as admin: err = %v, want ErrPermissionDenied", err)
	}
	if _, err := f.svc.FileAssessment(ctx, f.admin, c.Report.ID, validAssessment()); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("FileAssessment as admin: err = %v, want ErrPermissionDenied", err)
	}
	if err := f.svc.WithdrawCase(ctx, f.admin, c.Report.ID); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("WithdrawCase as admin: err = %v, want ErrPermissionDenied", err)
	}
}
