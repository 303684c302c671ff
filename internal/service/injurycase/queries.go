package injurycase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/athletiq/athletiq_backend/internal/actor"
	"github.com/athletiq/athletiq_backend/internal/domain/injury"
)

// CaseStats are the per-status counts returned with every listing.
type CaseStats struct {
	Total      int `json:"total"`
	Open       int `json:"open"`
	InProgress int `json:"in_progress"`
	Closed     int `json:"closed"`
}

// CaseBuckets groups a caller's cases by ticket status.
type CaseBuckets struct {
	Open       []*injury.Case `json:"open"`
	InProgress []*injury.Case `json:"in_progress"`
	Closed     []*injury.Case `json:"closed"`
	Stats      CaseStats      `json:"stats"`
}

func (s *caseService) GetCase(ctx context.Context, act actor.Actor, reportID uuid.UUID) (*injury.Case, error) {
	// All four reads share one transaction. A filing committing halfway
	// through must never yield an IN_PROGRESS case that already carries
	// the assessment.
	var c *injury.Case
	err := s.store.WithinTx(ctx, func(st injury.Stores) error {
		report, err := st.Reports.Get(ctx, reportID)
		if err != nil {
			if errors.Is(err, injury.ErrNotFound) {
				return fmt.Errorf("%w: case %s", ErrNotFound, reportID)
			}
			return fmt.Errorf("get report: %w", err)
		}
		if !injury.CanReadCase(act, report) {
			return fmt.Errorf("%w: not a participant of this case", ErrPermissionDenied)
		}
		ticket, err := st.Tickets.GetByReport(ctx, reportID)
		if err != nil {
			if errors.Is(err, injury.ErrNotFound) {
				return fmt.Errorf("%w: case %s", ErrNotFound, reportID)
			}
			return fmt.Errorf("get ticket: %w", err)
		}
		msgs, err := st.Messages.ListByReport(ctx, reportID)
		if err != nil {
			return fmt.Errorf("list messages: %w", err)
		}
		as, err := st.Assessments.GetByReport(ctx, reportID)
		if err != nil && !errors.Is(err, injury.ErrNotFound) {
			return fmt.Errorf("get assessment: %w", err)
		}
		c = &injury.Case{Ticket: ticket, Report: report, Messages: msgs, Assessment: as}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *caseService) ListMessages(ctx context.Context, act actor.Actor, reportID uuid.UUID) ([]*injury.ShortMessage, error) {
	report, err := s.getReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if !injury.CanReadCase(act, report) {
		return nil, fmt.Errorf("%w: not a participant of this case", ErrPermissionDenied)
	}
	msgs, err := s.store.Stores().Messages.ListByReport(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}

func (s *caseService) ListForAthlete(ctx context.Context, act actor.Actor) (*CaseBuckets, error) {
	if !act.IsAthlete() {
		return nil, fmt.Errorf("%w: athlete listing", ErrPermissionDenied)
	}
	var out *CaseBuckets
	err := s.store.WithinTx(ctx, func(st injury.Stores) error {
		reports, err := st.Reports.ListByAthlete(ctx, act.ID)
		if err != nil {
			return fmt.Errorf("list reports: %w", err)
		}
		out, err = bucket(ctx, st, reports)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *caseService) ListForDoctor(ctx context.Context, act actor.Actor) (*CaseBuckets, error) {
	if !act.IsDoctor() {
		return nil, fmt.Errorf("%w: doctor listing", ErrPermissionDenied)
	}
	var out *CaseBuckets
	err := s.store.WithinTx(ctx, func(st injury.Stores) error {
		reports, err := st.Reports.ListByDoctor(ctx, act.ID)
		if err != nil {
			return fmt.Errorf("list reports: %w", err)
		}
		out, err = bucket(ctx, st, reports)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *caseService) ListAll(ctx context.Context, act actor.Actor) (*CaseBuckets, error) {
	if !act.IsAdmin() {
		return nil, fmt.Errorf("%w: admin listing", ErrPermissionDenied)
	}
	var out *CaseBuckets
	err := s.store.WithinTx(ctx, func(st injury.Stores) error {
		tickets, err := st.Tickets.List(ctx)
		if err != nil {
			return fmt.Errorf("list tickets: %w", err)
		}
		reports := make([]*injury.Report, 0, len(tickets))
		for _, t := range tickets {
			r, err := st.Reports.Get(ctx, t.ReportID)
			if err != nil {
				return fmt.Errorf("get report %s: %w", t.ReportID, err)
			}
			reports = append(reports, r)
		}
		out, err = bucket(ctx, st, reports)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// bucket assembles listings: one ticket and at most one assessment per
// report, grouped by status. It runs inside the caller's transaction so
// the counts and the assessments describe the same instant. Messages
// are loaded per case, not here.
func bucket(ctx context.Context, st injury.Stores, reports []*injury.Report) (*CaseBuckets, error) {
	out := &CaseBuckets{
		Open:       []*injury.Case{},
		InProgress: []*injury.Case{},
		Closed:     []*injury.Case{},
	}
	if len(reports) == 0 {
		return out, nil
	}

	ids := make([]uuid.UUID, 0, len(reports))
	for _, r := range reports {
		ids = append(ids, r.ID)
	}

	tickets, err := st.Tickets.ListByReports(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	byReport := make(map[uuid.UUID]*injury.Ticket, len(tickets))
	for _, t := range tickets {
		byReport[t.ReportID] = t
	}

	assessments, err := st.Assessments.ListByReports(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	asByReport := make(map[uuid.UUID]*injury.Assessment, len(assessments))
	for _, a := range assessments {
		asByReport[a.ReportID] = a
	}

	for _, r := range reports {
		t, ok := byReport[r.ID]
		if !ok {
			// A report without its ticket means a broken write path.
			return nil, fmt.Errorf("%w: report %s has no ticket", ErrConflict, r.ID)
		}
		c := &injury.Case{Ticket: t, Report: r, Assessment: asByReport[r.ID]}
		switch t.Status {
		case injury.StatusOpen:
			out.Open = append(out.Open, c)
			out.Stats.Open++
		case injury.StatusInProgress:
			out.InProgress = append(out.InProgress, c)
			out.Stats.InProgress++
		case injury.StatusClosed:
			out.Closed = append(out.Closed, c)
			out.Stats.Closed++
		}
		out.Stats.Total++
	}
	return out, nil
}
