// Package memstore is an in-memory implementation of the injury store
// contracts. It backs the service tests and local development; the
// behavior it guarantees (assessment uniqueness, conditional ticket
// advances, all-or-nothing transactions) matches the SQL store.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/athletiq/athletiq_backend/internal/domain/injury"
)

type state struct {
	reports     map[uuid.UUID]*injury.Report
	tickets     map[uuid.UUID]*injury.Ticket
	messages    map[uuid.UUID]*injury.ShortMessage
	assessments map[uuid.UUID]*injury.Assessment

	ticketByReport map[uuid.UUID]uuid.UUID
	assessByReport map[uuid.UUID]uuid.UUID

	// msgSeq fixes causal order even when wall-clock timestamps collide.
	msgSeq  map[uuid.UUID]uint64
	nextSeq uint64
}

func newState() *state {
	return &state{
		reports:        make(map[uuid.UUID]*injury.Report),
		tickets:        make(map[uuid.UUID]*injury.Ticket),
		messages:       make(map[uuid.UUID]*injury.ShortMessage),
		assessments:    make(map[uuid.UUID]*injury.Assessment),
		ticketByReport: make(map[uuid.UUID]uuid.UUID),
		assessByReport: make(map[uuid.UUID]uuid.UUID),
		msgSeq:         make(map[uuid.UUID]uint64),
	}
}

func (st *state) clone() *state {
	c := newState()
	for id, r := range st.reports {
		c.reports[id] = cloneReport(r)
	}
	for id, t := range st.tickets {
		c.tickets[id] = cloneTicket(t)
	}
	for id, m := range st.messages {
		c.messages[id] = cloneMessage(m)
	}
	for id, a := range st.assessments {
		c.assessments[id] = cloneAssessment(a)
	}
	for k, v := range st.ticketByReport {
		c.ticketByReport[k] = v
	}
	for k, v := range st.assessByReport {
		c.assessByReport[k] = v
	}
	for k, v := range st.msgSeq {
		c.msgSeq[k] = v
	}
	c.nextSeq = st.nextSeq
	return c
}

// Store holds everything behind one mutex. Transactions run against a
// clone of the state and swap it in on success, so a failed transaction
// leaves no trace.
type Store struct {
	mu sync.Mutex
	st *state
}

func New() *Store {
	return &Store{st: newState()}
}

var _ injury.Store = (*Store)(nil)

func (s *Store) Stores() injury.Stores {
	return stores(s, nil)
}

func (s *Store) WithinTx(_ context.Context, fn func(injury.Stores) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	if err := fn(stores(s, work)); err != nil {
		return err
	}
	s.st = work
	return nil
}

func stores(s *Store, tx *state) injury.Stores {
	return injury.Stores{
		Reports:     &reportStore{s: s, tx: tx},
		Tickets:     &ticketStore{s: s, tx: tx},
		Messages:    &messageStore{s: s, tx: tx},
		Assessments: &assessmentStore{s: s, tx: tx},
	}
}

// handle resolves which state an operation runs against: the live state
// under the store lock, or the transaction's working copy (the lock is
// already held for the whole transaction).
type handle struct {
	s  *Store
	tx *state
}

func (h handle) acquire() (*state, func()) {
	if h.tx != nil {
		return h.tx, func() {}
	}
	h.s.mu.Lock()
	return h.s.st, h.s.mu.Unlock
}

// ---------------------------------------------------------------------------
// Reports
// ---------------------------------------------------------------------------

type reportStore handle

func (r *reportStore) Insert(_ context.Context, rep *injury.Report) error {
	st, done := handle(*r).acquire()
	defer done()
	if _, ok := st.reports[rep.ID]; ok {
		return fmt.Errorf("report %s: %w", rep.ID, injury.ErrDuplicate)
	}
	st.reports[rep.ID] = cloneReport(rep)
	return nil
}

func (r *reportStore) Get(_ context.Context, id uuid.UUID) (*injury.Report, error) {
	st, done := handle(*r).acquire()
	defer done()
	rep, ok := st.reports[id]
	if !ok {
		return nil, fmt.Errorf("report %s: %w", id, injury.ErrNotFound)
	}
	return cloneReport(rep), nil
}

func (r *reportStore) Update(_ context.Context, rep *injury.Report) error {
	st, done := handle(*r).acquire()
	defer done()
	if _, ok := st.reports[rep.ID]; !ok {
		return fmt.Errorf("report %s: %w", rep.ID, injury.ErrNotFound)
	}
	st.reports[rep.ID] = cloneReport(rep)
	return nil
}

func (r *reportStore) Delete(_ context.Context, id uuid.UUID) error {
	st, done := handle(*r).acquire()
	defer done()
	if _, ok := st.reports[id]; !ok {
		return fmt.Errorf("report %s: %w", id, injury.ErrNotFound)
	}
	delete(st.reports, id)
	return nil
}

func (r *reportStore) ListByAthlete(_ context.Context, athleteID uuid.UUID) ([]*injury.Report, error) {
	st, done := handle(*r).acquire()
	defer done()
	return listReports(st, func(rep *injury.Report) bool { return rep.AthleteID == athleteID }), nil
}

func (r *reportStore) ListByDoctor(_ context.Context, doctorID uuid.UUID) ([]*injury.Report, error) {
	st, done := handle(*r).acquire()
	defer done()
	return listReports(st, func(rep *injury.Report) bool { return rep.DoctorID == doctorID }), nil
}

func listReports(st *state, keep func(*injury.Report) bool) []*injury.Report {
	var out []*injury.Report
	for _, rep := range st.reports {
		if keep(rep) {
			out = append(out, cloneReport(rep))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

// ---------------------------------------------------------------------------
// Tickets
// ---------------------------------------------------------------------------

type ticketStore handle

func (t *ticketStore) Insert(_ context.Context, tk *injury.Ticket) error {
	st, done := handle(*t).acquire()
	defer done()
	if _, ok := st.tickets[tk.ID]; ok {
		return fmt.Errorf("ticket %s: %w", tk.ID, injury.ErrDuplicate)
	}
	if _, ok := st.ticketByReport[tk.ReportID]; ok {
		return fmt.Errorf("ticket for report %s: %w", tk.ReportID, injury.ErrDuplicate)
	}
	st.tickets[tk.ID] = cloneTicket(tk)
	st.ticketByReport[tk.ReportID] = tk.ID
	return nil
}

func (t *ticketStore) Get(_ context.Context, id uuid.UUID) (*injury.Ticket, error) {
	st, done := handle(*t).acquire()
	defer done()
	tk, ok := st.tickets[id]
	if !ok {
		return nil, fmt.Errorf("ticket %s: %w", id, injury.ErrNotFound)
	}
	return cloneTicket(tk), nil
}

func (t *ticketStore) GetByReport(_ context.Context, reportID uuid.UUID) (*injury.Ticket, error) {
	st, done := handle(*t).acquire()
	defer done()
	id, ok := st.ticketByReport[reportID]
	if !ok {
		return nil, fmt.Errorf("ticket for report %s: %w", reportID, injury.ErrNotFound)
	}
	return cloneTicket(st.tickets[id]), nil
}

func (t *ticketStore) Advance(_ context.Context, id uuid.UUID, to injury.TicketStatus, from ...injury.TicketStatus) (bool, error) {
	st, done := handle(*t).acquire()
	defer done()
	tk, ok := st.tickets[id]
	if !ok {
		return false, fmt.Errorf("ticket %s: %w", id, injury.ErrNotFound)
	}
	for _, f := range from {
		if tk.Status == f {
			tk.Status = to
			return true, nil
		}
	}
	return false, nil
}

func (t *ticketStore) Delete(_ context.Context, id uuid.UUID) error {
	st, done := handle(*t).acquire()
	defer done()
	tk, ok := st.tickets[id]
	if !ok {
		return fmt.Errorf("ticket %s: %w", id, injury.ErrNotFound)
	}
	delete(st.ticketByReport, tk.ReportID)
	delete(st.tickets, id)
	return nil
}

func (t *ticketStore) List(_ context.Context) ([]*injury.Ticket, error) {
	st, done := handle(*t).acquire()
	defer done()
	out := make([]*injury.Ticket, 0, len(st.tickets))
	for _, tk := range st.tickets {
		out = append(out, cloneTicket(tk))
	}
	sortTickets(out)
	return out, nil
}

func (t *ticketStore) ListByReports(_ context.Context, reportIDs []uuid.UUID) ([]*injury.Ticket, error) {
	st, done := handle(*t).acquire()
	defer done()
	var out []*injury.Ticket
	for _, rid := range reportIDs {
		if id, ok := st.ticketByReport[rid]; ok {
			out = append(out, cloneTicket(st.tickets[id]))
		}
	}
	sortTickets(out)
	return out, nil
}

func sortTickets(out []*injury.Ticket) {
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
}

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

type messageStore handle

func (m *messageStore) Insert(_ context.Context, msg *injury.ShortMessage) error {
	st, done := handle(*m).acquire()
	defer done()
	if _, ok := st.messages[msg.ID]; ok {
		return fmt.Errorf("message %s: %w", msg.ID, injury.ErrDuplicate)
	}
	st.messages[msg.ID] = cloneMessage(msg)
	st.nextSeq++
	st.msgSeq[msg.ID] = st.nextSeq
	return nil
}

func (m *messageStore) Get(_ context.Context, id uuid.UUID) (*injury.ShortMessage, error) {
	st, done := handle(*m).acquire()
	defer done()
	msg, ok := st.messages[id]
	if !ok {
		return nil, fmt.Errorf("message %s: %w", id, injury.ErrNotFound)
	}
	return cloneMessage(msg), nil
}

func (m *messageStore) Update(_ context.Context, msg *injury.ShortMessage) error {
	st, done := handle(*m).acquire()
	defer done()
	if _, ok := st.messages[msg.ID]; !ok {
		return fmt.Errorf("message %s: %w", msg.ID, injury.ErrNotFound)
	}
	st.messages[msg.ID] = cloneMessage(msg)
	return nil
}

func (m *messageStore) ListByReport(_ context.Context, reportID uuid.UUID) ([]*injury.ShortMessage, error) {
	st, done := handle(*m).acquire()
	defer done()
	var out []*injury.ShortMessage
	for _, msg := range st.messages {
		if msg.ReportID == reportID {
			out = append(out, cloneMessage(msg))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return st.msgSeq[out[i].ID] < st.msgSeq[out[j].ID]
	})
	return out, nil
}

func (m *messageStore) DeleteByReport(_ context.Context, reportID uuid.UUID) error {
	st, done := handle(*m).acquire()
	defer done()
	for id, msg := range st.messages {
		if msg.ReportID == reportID {
			delete(st.messages, id)
			delete(st.msgSeq, id)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Assessments
// ---------------------------------------------------------------------------

type assessmentStore handle

func (a *assessmentStore) Insert(_ context.Context, as *injury.Assessment) error {
	st, done := handle(*a).acquire()
	defer done()
	if _, ok := st.assessByReport[as.ReportID]; ok {
		return fmt.Errorf("assessment for report %s: %w", as.ReportID, injury.ErrDuplicate)
	}
	st.assessments[as.ID] = cloneAssessment(as)
	st.assessByReport[as.ReportID] = as.ID
	return nil
}

func (a *assessmentStore) Get(_ context.Context, id uuid.UUID) (*injury.Assessment, error) {
	st, done := handle(*a).acquire()
	defer done()
	as, ok := st.assessments[id]
	if !ok {
		return nil, fmt.Errorf("assessment %s: %w", id, injury.ErrNotFound)
	}
	return cloneAssessment(as), nil
}

func (a *assessmentStore) GetByReport(_ context.Context, reportID uuid.UUID) (*injury.Assessment, error) {
	st, done := handle(*a).acquire()
	defer done()
	id, ok := st.assessByReport[reportID]
	if !ok {
		return nil, fmt.Errorf("assessment for report %s: %w", reportID, injury.ErrNotFound)
	}
	return cloneAssessment(st.assessments[id]), nil
}

func (a *assessmentStore) Update(_ context.Context, as *injury.Assessment) error {
	st, done := handle(*a).acquire()
	defer done()
	if _, ok := st.assessments[as.ID]; !ok {
		return fmt.Errorf("assessment %s: %w", as.ID, injury.ErrNotFound)
	}
	st.assessments[as.ID] = cloneAssessment(as)
	return nil
}

func (a *assessmentStore) ListByReports(_ context.Context, reportIDs []uuid.UUID) ([]*injury.Assessment, error) {
	st, done := handle(*a).acquire()
	defer done()
	var out []*injury.Assessment
	for _, rid := range reportIDs {
		if id, ok := st.assessByReport[rid]; ok {
			out = append(out, cloneAssessment(st.assessments[id]))
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Clone helpers
// ---------------------------------------------------------------------------

func cloneReport(r *injury.Report) *injury.Report {
	c := *r
	c.Symptoms = append([]string(nil), r.Symptoms...)
	c.Images = append([]string(nil), r.Images...)
	return &c
}

func cloneTicket(t *injury.Ticket) *injury.Ticket {
	c := *t
	return &c
}

func cloneMessage(m *injury.ShortMessage) *injury.ShortMessage {
	c := *m
	return &c
}

func cloneAssessment(a *injury.Assessment) *injury.Assessment {
	c := *a
	c.Medications = append([]injury.MedicationItem(nil), a.Medications...)
	c.Restrictions = append([]string(nil), a.Restrictions...)
	c.TestResults = append([]injury.TestResult(nil), a.TestResults...)
	for i := range c.TestResults {
		c.TestResults[i].Attachments = append([]string(nil), a.TestResults[i].Attachments...)
	}
	if a.EstimatedRecovery != nil {
		v := *a.EstimatedRecovery
		c.EstimatedRecovery = &v
	}
	if a.Appointment != nil {
		v := *a.Appointment
		c.Appointment = &v
	}
	return &c
}
