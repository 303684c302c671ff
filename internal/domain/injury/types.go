// Package injury holds the entities of the injury case lifecycle: a Report
// filed by an athlete, the Ticket that tracks its workflow status, the
// short Messages a doctor posts against it, and the single final
// Assessment. The package is persistence-agnostic; stores implement the
// interfaces in store.go.
package injury

import (
	"time"

	"github.com/google/uuid"
)

// TicketStatus is the workflow state of a case.
// OPEN -> IN_PROGRESS -> CLOSED, monotonic, never reversed.
type TicketStatus string

const (
	StatusOpen       TicketStatus = "OPEN"
	StatusInProgress TicketStatus = "IN_PROGRESS"
	StatusClosed     TicketStatus = "CLOSED"
)

func (s TicketStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

// PerformanceImpact describes how the injury affects play.
type PerformanceImpact string

const (
	ImpactCannotPlay PerformanceImpact = "CANNOT_PLAY"
	ImpactLimited    PerformanceImpact = "LIMITED"
	ImpactMinimal    PerformanceImpact = "MINIMAL"
	ImpactNone       PerformanceImpact = "NONE"
)

func (p PerformanceImpact) Valid() bool {
	switch p {
	case ImpactCannotPlay, ImpactLimited, ImpactMinimal, ImpactNone:
		return true
	}
	return false
}

type Severity string

const (
	SeverityMinor    Severity = "MINOR"
	SeverityModerate Severity = "MODERATE"
	SeveritySevere   Severity = "SEVERE"
	SeverityCritical Severity = "CRITICAL"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityMinor, SeverityModerate, SeveritySevere, SeverityCritical:
		return true
	}
	return false
}

type ClearanceStatus string

const (
	ClearanceNoActivity      ClearanceStatus = "NO_ACTIVITY"
	ClearanceLimited         ClearanceStatus = "LIMITED_ACTIVITY"
	ClearancePending         ClearanceStatus = "FULL_CLEARANCE_PENDING"
	ClearanceFullyCleared    ClearanceStatus = "FULLY_CLEARED"
)

func (c ClearanceStatus) Valid() bool {
	switch c {
	case ClearanceNoActivity, ClearanceLimited, ClearancePending, ClearanceFullyCleared:
		return true
	}
	return false
}

type RecoveryUnit string

const (
	RecoveryDays   RecoveryUnit = "DAYS"
	RecoveryWeeks  RecoveryUnit = "WEEKS"
	RecoveryMonths RecoveryUnit = "MONTHS"
)

func (u RecoveryUnit) Valid() bool {
	switch u {
	case RecoveryDays, RecoveryWeeks, RecoveryMonths:
		return true
	}
	return false
}

// Report is one reported medical complaint. Owned by the athlete who filed
// it; the assigned doctor is fixed at creation time.
type Report struct {
	ID        uuid.UUID
	AthleteID uuid.UUID
	DoctorID  uuid.UUID

	Title                string
	InjuryType           string
	BodyPart             string
	PainLevel            int // 1..10 inclusive
	DateOfInjury         time.Time
	ActivityContext      string
	Symptoms             []string
	AffectingPerformance PerformanceImpact
	PreviouslyInjured    bool
	Notes                string
	Images               []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Ticket is the workflow envelope, strictly 1:1 with a Report and created
// in the same transaction.
type Ticket struct {
	ID       uuid.UUID
	ReportID uuid.UUID
	Status   TicketStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ShortMessage is one doctor communication against a Report. All content
// fields are mandatory.
type ShortMessage struct {
	ID       uuid.UUID
	ReportID uuid.UUID

	Response        string
	Medication      string
	DoctorNote      string
	AppointmentDate time.Time
	AppointmentTime string

	CreatedAt time.Time
}

type MedicationItem struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Duration  string `json:"duration"`
}

type TestResult struct {
	TestType    string    `json:"test_type"`
	Date        time.Time `json:"date"`
	Results     string    `json:"results"`
	Attachments []string  `json:"attachments"`
}

type ScheduledAppointment struct {
	Date     time.Time `json:"date"`
	Location string    `json:"location"`
	Notes    string    `json:"notes"`
}

type RecoveryEstimate struct {
	Value int          `json:"value"`
	Unit  RecoveryUnit `json:"unit"`
}

// Assessment is the terminal diagnosis record. At most one exists per
// Report; filing it closes the Ticket.
type Assessment struct {
	ID       uuid.UUID
	ReportID uuid.UUID
	DoctorID uuid.UUID

	Diagnosis              string
	DiagnosisDetails       string
	Severity               Severity
	TreatmentPlan          string
	Medications            []MedicationItem
	RehabilitationProtocol string
	Restrictions           []string
	EstimatedRecovery      *RecoveryEstimate
	FollowUpRequired       bool
	Appointment            *ScheduledAppointment
	ClearanceStatus        ClearanceStatus
	TestResults            []TestResult
	Notes                  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Case bundles everything belonging to one ticket: the report, its
// messages in causal order, and the assessment if one has been filed.
type Case struct {
	Ticket     *Ticket
	Report     *Report
	Messages   []*ShortMessage
	Assessment *Assessment
}

// NewID returns a time-ordered UUID for a new entity.
func NewID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		panic(err)
	}
	return id
}
