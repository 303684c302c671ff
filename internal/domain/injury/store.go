package injury

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Store-level sentinels. Implementations translate their backend's errors
// into these; services translate them further into caller-facing kinds.
var (
	ErrNotFound  = errors.New("injury: not found")
	ErrDuplicate = errors.New("injury: duplicate")
)

type ReportStore interface {
	Insert(ctx context.Context, r *Report) error
	Get(ctx context.Context, id uuid.UUID) (*Report, error)
	Update(ctx context.Context, r *Report) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByAthlete(ctx context.Context, athleteID uuid.UUID) ([]*Report, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Report, error)
}

type TicketStore interface {
	Insert(ctx context.Context, t *Ticket) error
	Get(ctx context.Context, id uuid.UUID) (*Ticket, error)
	GetByReport(ctx context.Context, reportID uuid.UUID) (*Ticket, error)
	// Advance sets the ticket status to 'to' only when the current status
	// is one of 'from'. It reports whether the transition applied, so the
	// first-message OPEN -> IN_PROGRESS advance stays idempotent and a
	// CLOSED ticket can never regress.
	Advance(ctx context.Context, id uuid.UUID, to TicketStatus, from ...TicketStatus) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*Ticket, error)
	ListByReports(ctx context.Context, reportIDs []uuid.UUID) ([]*Ticket, error)
}

type MessageStore interface {
	Insert(ctx context.Context, m *ShortMessage) error
	Get(ctx context.Context, id uuid.UUID) (*ShortMessage, error)
	Update(ctx context.Context, m *ShortMessage) error
	// ListByReport returns messages in causal (oldest-first) order.
	ListByReport(ctx context.Context, reportID uuid.UUID) ([]*ShortMessage, error)
	DeleteByReport(ctx context.Context, reportID uuid.UUID) error
}

type AssessmentStore interface {
	// Insert fails with ErrDuplicate when an assessment already exists for
	// the same report. Backed by a uniqueness constraint, not an existence
	// query, so two concurrent inserts cannot both win.
	Insert(ctx context.Context, a *Assessment) error
	Get(ctx context.Context, id uuid.UUID) (*Assessment, error)
	GetByReport(ctx context.Context, reportID uuid.UUID) (*Assessment, error)
	Update(ctx context.Context, a *Assessment) error
	ListByReports(ctx context.Context, reportIDs []uuid.UUID) ([]*Assessment, error)
}

// Stores bundles the four entity stores so transactional code can receive
// them bound to one unit of work.
type Stores struct {
	Reports     ReportStore
	Tickets     TicketStore
	Messages    MessageStore
	Assessments AssessmentStore
}

// Store is the persistence boundary injected into the lifecycle service.
type Store interface {
	// Stores returns auto-committing stores for single-step operations.
	Stores() Stores
	// WithinTx runs fn against stores bound to one atomic transaction.
	// If fn returns an error the transaction is rolled back in full.
	WithinTx(ctx context.Context, fn func(Stores) error) error
}

// Directory answers actor-existence questions at case-open time. Identity
// management itself lives outside this subsystem.
type Directory interface {
	AthleteExists(ctx context.Context, id uuid.UUID) (bool, error)
	DoctorExists(ctx context.Context, id uuid.UUID) (bool, error)
}
