package memstore

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/athletiq/athletiq_backend/internal/domain/injury"
)

func seedReport() *injury.Report {
	now := time.Now()
	return &injury.Report{
		ID:                   injury.NewID(),
		AthleteID:            injury.NewID(),
		DoctorID:             injury.NewID(),
		Title:                "Pulled hamstring",
		InjuryType:           "Strain",
		BodyPart:             "Hamstring",
		PainLevel:            5,
		DateOfInjury:         now.AddDate(0, 0, -2),
		AffectingPerformance: injury.ImpactLimited,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

func TestTxRollback(t *testing.T) {
	s := New()
	ctx := context.Background()
	boom := errors.New("boom")

	rep := seedReport()
	err := s.WithinTx(ctx, func(st injury.Stores) error {
		if err := st.Reports.Insert(ctx, rep); err != nil {
			return err
		}
		if err := st.Tickets.Insert(ctx, &injury.Ticket{
			ID:       injury.NewID(),
			ReportID: rep.ID,
			Status:   injury.StatusOpen,
		}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	// Nothing from the failed transaction is visible.
	if _, err := s.Stores().Reports.Get(ctx, rep.ID); !errors.Is(err, injury.ErrNotFound) {
		t.Errorf("report visible after rollback: err = %v", err)
	}
	if _, err := s.Stores().Tickets.GetByReport(ctx, rep.ID); !errors.Is(err, injury.ErrNotFound) {
		t.Errorf("ticket visible after rollback: err = %v", err)
	}
}

func TestTxCommit(t *testing.T) {
	s := New()
	ctx := context.Background()

	rep := seedReport()
	err := s.WithinTx(ctx, func(st injury.Stores) error {
		return st.Reports.Insert(ctx, rep)
	})
	if err != nil {
		t.Fatalf("WithinTx: %v", err)
	}
	got, err := s.Stores().Reports.Get(ctx, rep.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != rep.Title {
		t.Errorf("title = %q, want %q", got.Title, rep.Title)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	s := New()
	ctx := context.Background()

	rep := seedReport()
	rep.Symptoms = []string{"tightness"}
	if err := s.Stores().Reports.Insert(ctx, rep); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got, err := s.Stores().Reports.Get(ctx, rep.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	got.Title = "mutated"
	got.Symptoms[0] = "mutated"

	again, err := s.Stores().Reports.Get(ctx, rep.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if again.Title != rep.Title || again.Symptoms[0] != "tightness" {
		t.Error("stored report aliased by a returned copy")
	}
}

func TestAssessmentGetReturnsCopy(t *testing.T) {
	s := New()
	ctx := context.Background()

	as := &injury.Assessment{
		ID:           injury.NewID(),
		ReportID:     injury.NewID(),
		Diagnosis:    "Grade I strain",
		Severity:     injury.SeverityMinor,
		Restrictions: []string{"no sprinting"},
		TestResults: []injury.TestResult{
			{TestType: "MRI", Results: "partial tear", Attachments: []string{"mri-1.png"}},
		},
	}
	if err := s.Stores().Assessments.Insert(ctx, as); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got, err := s.Stores().Assessments.Get(ctx, as.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	got.Restrictions[0] = "mutated"
	got.TestResults[0].Attachments[0] = "mutated"

	again, err := s.Stores().Assessments.Get(ctx, as.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if again.Restrictions[0] != "no sprinting" {
		t.Error("stored restrictions aliased by a returned copy")
	}
	if again.TestResults[0].Attachments[0] != "mri-1.png" {
		t.Error("stored test result attachments aliased by a returned copy")
	}
}

func TestAssessmentUniqueness(t *testing.T) {
	s := New()
	ctx := context.Background()
	reportID := injury.NewID()

	first := &injury.Assessment{ID: injury.NewID(), ReportID: reportID, Diagnosis: "a", Severity: injury.SeverityMinor}
	if err := s.Stores().Assessments.Insert(ctx, first); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	second := &injury.Assessment{ID: injury.NewID(), ReportID: reportID, Diagnosis: "b", Severity: injury.SeverityMinor}
	if err := s.Stores().Assessments.Insert(ctx, second); !errors.Is(err, injury.ErrDuplicate) {
		t.Fatalf("second insert: err = %v, want ErrDuplicate", err)
	}
}

func TestAssessmentUniquenessConcurrent(t *testing.T) {
	s := New()
	ctx := context.Background()
	reportID := injury.NewID()

	const n = 32
	errs := make([]error, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			errs[i] = s.WithinTx(ctx, func(st injury.Stores) error {
				return st.Assessments.Insert(ctx, &injury.Assessment{
					ID:       injury.NewID(),
					ReportID: reportID,
				})
			})
		}(i)
	}
	wg.Wait()

	var wins int
	for _, err := range errs {
		if err == nil {
			wins++
		} else if !errors.Is(err, injury.ErrDuplicate) {
			t.Errorf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Fatalf("winners = %d, want 1", wins)
	}
}

func TestTicketAdvance(t *testing.T) {
	s := New()
	ctx := context.Background()

	tk := &injury.Ticket{ID: injury.NewID(), ReportID: injury.NewID(), Status: injury.StatusOpen}
	if err := s.Stores().Tickets.Insert(ctx, tk); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	applied, err := s.Stores().Tickets.Advance(ctx, tk.ID, injury.StatusInProgress, injury.StatusOpen)
	if err != nil || !applied {
		t.Fatalf("first advance: applied=%v err=%v", applied, err)
	}
	// Same transition again is a no-op.
	applied, err = s.Stores().Tickets.Advance(ctx, tk.ID, injury.StatusInProgress, injury.StatusOpen)
	if err != nil || applied {
		t.Fatalf("repeat advance: applied=%v err=%v", applied, err)
	}
	// Close from either active state.
	applied, err = s.Stores().Tickets.Advance(ctx, tk.ID, injury.StatusClosed, injury.StatusOpen, injury.StatusInProgress)
	if err != nil || !applied {
		t.Fatalf("close: applied=%v err=%v", applied, err)
	}
	// CLOSED never regresses.
	applied, err = s.Stores().Tickets.Advance(ctx, tk.ID, injury.StatusInProgress, injury.StatusOpen)
	if err != nil || applied {
		t.Fatalf("regress: applied=%v err=%v", applied, err)
	}
	got, err := s.Stores().Tickets.Get(ctx, tk.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != injury.StatusClosed {
		t.Errorf("status = %q, want CLOSED", got.Status)
	}
}

func TestMessageOrder(t *testing.T) {
	s := New()
	ctx := context.Background()
	reportID := injury.NewID()

	// Identical timestamps: insertion order still wins.
	now := time.Now()
	var ids []string
	for i := 0; i < 5; i++ {
		m := &injury.ShortMessage{ID: injury.NewID(), ReportID: reportID, CreatedAt: now}
		if err := s.Stores().Messages.Insert(ctx, m); err != nil {
			t.Fatalf("Insert: %v", err)
		}
		ids = append(ids, m.ID.String())
	}

	msgs, err := s.Stores().Messages.ListByReport(ctx, reportID)
	if err != nil {
		t.Fatalf("ListByReport: %v", err)
	}
	if len(msgs) != 5 {
		t.Fatalf("len = %d, want 5", len(msgs))
	}
	for i, m := range msgs {
		if m.ID.String() != ids[i] {
			t.Fatalf("position %d: got %s, want %s", i, m.ID, ids[i])
		}
	}

	if err := s.Stores().Messages.DeleteByReport(ctx, reportID); err != nil {
		t.Fatalf("DeleteByReport: %v", err)
	}
	msgs, err = s.Stores().Messages.ListByReport(ctx, reportID)
	if err != nil {
		t.Fatalf("ListByReport: %v", err)
	}
	if len(msgs) != 0 {
		t.Errorf("len after delete = %d, want 0", len(msgs))
	}
}
