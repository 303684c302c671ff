// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/athletiq/athletiq_backend/internal/domain/injury"
	"github.com/athletiq/athletiq_backend/internal/repo/injuryassessment"
	"github.com/athletiq/athletiq_backend/internal/repo/injuryreport"
	"github.com/athletiq/athletiq_backend/internal/repo/injuryshortmessage"
	"github.com/athletiq/athletiq_backend/internal/repo/injuryticket"
	"github.com/athletiq/athletiq_backend/internal/repo/predicate"
	"github.com/athletiq/athletiq_backend/internal/repo/user"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeInjuryAssessment   = "InjuryAssessment"
	TypeInjuryReport       = "InjuryReport"
	TypeInjuryShortMessage = "InjuryShortMessage"
	TypeInjuryTicket       = "InjuryTicket"
	TypeUser               = "User"
)

// InjuryAssessmentMutation represents an operation that mutates the InjuryAssessment nodes in the graph.
type InjuryAssessmentMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	created_at              *time.Time
	updated_at              *time.Time
	report_id               *uuid.UUID
	doctor_id               *uuid.UUID
	diagnosis               *string
	diagnosis_details       *string
	severity                *injuryassessment.Severity
	treatment_plan          *string
	medications             *[]injury.MedicationItem
	appendmedications       []injury.MedicationItem
	rehabilitation_protocol *string
	restrictions            *[]string
	appendrestrictions      []string
	estimated_recovery      **injury.RecoveryEstimate
	follow_up_required      *bool
	appointment             **injury.ScheduledAppointment
	clearance_status        *injuryassessment.ClearanceStatus
	test_results            *[]injury.TestResult
	appendtest_results      []injury.TestResult
	notes                   *string
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*InjuryAssessment, error)
	predicates              []predicate.InjuryAssessment
}

var _ ent.Mutation = (*InjuryAssessmentMutation)(nil)

// injuryassessmentOption allows management of the mutation configuration using functional options.
type injuryassessmentOption func(*InjuryAssessmentMutation)

// newInjuryAssessmentMutation creates new mutation for the InjuryAssessment entity.
func newInjuryAssessmentMutation(c config, op Op, opts ...injuryassessmentOption) *InjuryAssessmentMutation {
	m := &InjuryAssessmentMutation{
		config:        c,
		op:            op,
		typ:           TypeInjuryAssessment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInjuryAssessmentID sets the ID field of the mutation.
func withInjuryAssessmentID(id uuid.UUID) injuryassessmentOption {
	return func(m *InjuryAssessmentMutation) {
		var (
			err   error
			once  sync.Once
			value *InjuryAssessment
		)
		m.oldValue = func(ctx context.Context) (*InjuryAssessment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InjuryAssessment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInjuryAssessment sets the old InjuryAssessment of the mutation.
func withInjuryAssessment(node *InjuryAssessment) injuryassessmentOption {
	return func(m *InjuryAssessmentMutation) {
		m.oldValue = func(context.Context) (*InjuryAssessment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InjuryAssessmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InjuryAssessmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InjuryAssessment entities.
func (m *InjuryAssessmentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InjuryAssessmentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InjuryAssessmentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InjuryAssessment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *InjuryAssessmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InjuryAssessmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InjuryAssessment entity.
// If the InjuryAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryAssessmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InjuryAssessmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InjuryAssessmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InjuryAssessmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the InjuryAssessment entity.
// If the InjuryAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryAssessmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InjuryAssessmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetReportID sets the "report_id" field.
func (m *InjuryAssessmentMutation) SetReportID(u uuid.UUID) {
	m.report_id = &u
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *InjuryAssessmentMutation) ReportID() (r uuid.UUID, exists bool) {
	v := m.report_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the InjuryAssessment entity.
// If the InjuryAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryAssessmentMutation) OldReportID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *InjuryAssessmentMutation) ResetReportID() {
	m.report_id = nil
}

// SetDoctorID sets the "doctor_id" field.
func (m *InjuryAssessmentMutation) SetDoctorID(u uuid.UUID) {
	m.doctor_id = &u
}

// DoctorID returns the value of the "doctor_id" field in the mutation.
func (m *InjuryAssessmentMutation) DoctorID() (r uuid.UUID, exists bool) {
	v := m.doctor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDoctorID returns the old "doctor_id" field's value of the InjuryAssessment entity.
// If the InjuryAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryAssessmentMutation) OldDoctorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoctorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoctorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoctorID: %w", err)
	}
	return oldValue.DoctorID, nil
}

// ResetDoctorID resets all changes to the "doctor_id" field.
func (m *InjuryAssessmentMutation) ResetDoctorID() {
	m.doctor_id = nil
}

// SetDiagnosis sets the "diagnosis" field.
func (m *InjuryAssessmentMutation) SetDiagnosis(s string) {
	m.diagnosis = &s
}

// Diagnosis returns the value of the "diagnosis" field in the mutation.
func (m *InjuryAssessmentMutation) Diagnosis() (r string, exists bool) {
	v := m.diagnosis
	if v == nil {
		return
	}
	return *v, true
}

// OldDiagnosis returns the old "diagnosis" field's value of the InjuryAssessment entity.
// If the InjuryAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryAssessmentMutation) OldDiagnosis(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiagnosis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiagnosis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiagnosis: %w", err)
	}
	return oldValue.Diagnosis, nil
}

// ResetDiagnosis resets all changes to the "diagnosis" field.
func (m *InjuryAssessmentMutation) ResetDiagnosis() {
	m.diagnosis = nil
}

// SetDiagnosisDetails sets the "diagnosis_details" field.
func (m *InjuryAssessmentMutation) SetDiagnosisDetails(s string) {
	m.diagnosis_details = &s
}

// DiagnosisDetails returns the value of the "diagnosis_details" field in the mutation.
func (m *InjuryAssessmentMutation) DiagnosisDetails() (r string, exists bool) {
	v := m.diagnosis_details
	if v == nil {
		return
	}
	return *v, true
}

// OldDiagnosisDetails returns the old "diagnosis_details" field's value of the InjuryAssessment entity.
// If the InjuryAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryAssessmentMutation) OldDiagnosisDetails(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiagnosisDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiagnosisDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiagnosisDetails: %w", err)
	}
	return oldValue.DiagnosisDetails, nil
}

// ClearDiagnosisDetails clears the value of the "diagnosis_details" field.
func (m *InjuryAssessmentMutation) ClearDiagnosisDetails() {
	m.diagnosis_details = nil
	m.clearedFields[injuryassessment.FieldDiagnosisDetails] = struct{}{}
}

// DiagnosisDetailsCleared returns if the "diagnosis_details" field was cleared in this mutation.
func (m *InjuryAssessmentMutation) DiagnosisDetailsCleared() bool {
	_, ok := m.clearedFields[injuryassessment.FieldDiagnosisDetails]
	return ok
}

// ResetDiagnosisDetails resets all changes to the "diagnosis_details" field.
func (m *InjuryAssessmentMutation) ResetDiagnosisDetails() {
	m.diagnosis_details = nil
	delete(m.clearedFields, injuryassessment.FieldDiagnosisDetails)
}

// SetSeverity sets the "severity" field.
func (m *InjuryAssessmentMutation) SetSeverity(i injuryassessment.Severity) {
	m.severity = &i
}

// Severity returns the value of the "severity" field in the mutation.
func (m *InjuryAssessmentMutation) Severity() (r injuryassessment.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the InjuryAssessment entity.
// If the InjuryAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryAssessmentMutation) OldSeverity(ctx context.Context) (v injuryassessment.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *InjuryAssessmentMutation) ResetSeverity() {
	m.severity = nil
}

// SetTreatmentPlan sets the "treatment_plan" field.
func (m *InjuryAssessmentMutation) SetTreatmentPlan(s string) {
	m.treatment_plan = &s
}

// TreatmentPlan returns the value of the "treatment_plan" field in the mutation.
func (m *InjuryAssessmentMutation) TreatmentPlan() (r string, exists bool) {
	v := m.treatment_plan
	if v == nil {
		return
	}
	return *v, true
}

// OldTreatmentPlan returns the old "treatment_plan" field's value of the InjuryAssessment entity.
// If the InjuryAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryAssessmentMutation) OldTreatmentPlan(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTreatmentPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTreatmentPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTreatmentPlan: %w", err)
	}
	return oldValue.TreatmentPlan, nil
}

// ResetTreatmentPlan resets all changes to the "treatment_plan" field.
func (m *InjuryAssessmentMutation) ResetTreatmentPlan() {
	m.treatment_plan = nil
}

// SetMedications sets the "medications" field.
func (m *InjuryAssessmentMutation) SetMedications(ii []injury.MedicationItem) {
	m.medications = &ii
	m.appendmedications = nil
}

// Medications returns the value of the "medications" field in the mutation.
func (m *InjuryAssessmentMutation) Medications() (r []injury.MedicationItem, exists bool) {
	v := m.medications
	if v == nil {
		return
	}
	return *v, true
}

// OldMedications returns the old "medications" field's value of the InjuryAssessment entity.
// If the InjuryAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryAssessmentMutation) OldMedications(ctx context.Context) (v []injury.MedicationItem, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMedications is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMedications requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMedications: %w", err)
	}
	return oldValue.Medications, nil
}

// AppendMedications adds ii to the "medications" field.
func (m *InjuryAssessmentMutation) AppendMedications(ii []injury.MedicationItem) {
	m.appendmedications = append(m.appendmedications, ii...)
}

// AppendedMedications returns the list of values that were appended to the "medications" field in this mutation.
func (m *InjuryAssessmentMutation) AppendedMedications() ([]injury.MedicationItem, bool) {
	if len(m.appendmedications) == 0 {
		return nil, false
	}
	return m.appendmedications, true
}

// ClearMedications clears the value of the "medications" field.
func (m *InjuryAssessmentMutation) ClearMedications() {
	m.medications = nil
	m.appendmedications = nil
	m.clearedFields[injuryassessment.FieldMedications] = struct{}{}
}

// MedicationsCleared returns if the "medications" field was cleared in this mutation.
func (m *InjuryAssessmentMutation) MedicationsCleared() bool {
	_, ok := m.clearedFields[injuryassessment.FieldMedications]
	return ok
}

// ResetMedications resets all changes to the "medications" field.
func (m *InjuryAssessmentMutation) ResetMedications() {
	m.medications = nil
	m.appendmedications = nil
	delete(m.clearedFields, injuryassessment.FieldMedications)
}

// SetRehabilitationProtocol sets the "rehabilitation_protocol" field.
func (m *InjuryAssessmentMutation) SetRehabilitationProtocol(s string) {
	m.rehabilitation_protocol = &s
}

// RehabilitationProtocol returns the value of the "rehabilitation_protocol" field in the mutation.
func (m *InjuryAssessmentMutation) RehabilitationProtocol() (r string, exists bool) {
	v := m.rehabilitation_protocol
	if v == nil {
		return
	}
	return *v, true
}

// OldRehabilitationProtocol returns the old "rehabilitation_protocol" field's value of the InjuryAssessment entity.
// If the InjuryAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryAssessmentMutation) OldRehabilitationProtocol(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRehabilitationProtocol is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRehabilitationProtocol requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRehabilitationProtocol: %w", err)
	}
	return oldValue.RehabilitationProtocol, nil
}

// ClearRehabilitationProtocol clears the value of the "rehabilitation_protocol" field.
func (m *InjuryAssessmentMutation) ClearRehabilitationProtocol() {
	m.rehabilitation_protocol = nil
	m.clearedFields[injuryassessment.FieldRehabilitationProtocol] = struct{}{}
}

// RehabilitationProtocolCleared returns if the "rehabilitation_protocol" field was cleared in this mutation.
func (m *InjuryAssessmentMutation) RehabilitationProtocolCleared() bool {
	_, ok := m.clearedFields[injuryassessment.FieldRehabilitationProtocol]
	return ok
}

// ResetRehabilitationProtocol resets all changes to the "rehabilitation_protocol" field.
func (m *InjuryAssessmentMutation) ResetRehabilitationProtocol() {
	m.rehabilitation_protocol = nil
	delete(m.clearedFields, injuryassessment.FieldRehabilitationProtocol)
}

// SetRestrictions sets the "restrictions" field.
func (m *InjuryAssessmentMutation) SetRestrictions(s []string) {
	m.restrictions = &s
	m.appendrestrictions = nil
}

// Restrictions returns the value of the "restrictions" field in the mutation.
func (m *InjuryAssessmentMutation) Restrictions() (r []string, exists bool) {
	v := m.restrictions
	if v == nil {
		return
	}
	return *v, true
}

// OldRestrictions returns the old "restrictions" field's value of the InjuryAssessment entity.
// If the InjuryAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryAssessmentMutation) OldRestrictions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRestrictions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRestrictions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRestrictions: %w", err)
	}
	return oldValue.Restrictions, nil
}

// AppendRestrictions adds s to the "restrictions" field.
func (m *InjuryAssessmentMutation) AppendRestrictions(s []string) {
	m.appendrestrictions = append(m.appendrestrictions, s...)
}

// AppendedRestrictions returns the list of values that were appended to the "restrictions" field in this mutation.
func (m *InjuryAssessmentMutation) AppendedRestrictions() ([]string, bool) {
	if len(m.appendrestrictions) == 0 {
		return nil, false
	}
	return m.appendrestrictions, true
}

// ClearRestrictions clears the value of the "restrictions" field.
func (m *InjuryAssessmentMutation) ClearRestrictions() {
	m.restrictions = nil
	m.appendrestrictions = nil
	m.clearedFields[injuryassessment.FieldRestrictions] = struct{}{}
}

// RestrictionsCleared returns if the "restrictions" field was cleared in this mutation.
func (m *InjuryAssessmentMutation) RestrictionsCleared() bool {
	_, ok := m.clearedFields[injuryassessment.FieldRestrictions]
	return ok
}

// ResetRestrictions resets all changes to the "restrictions" field.
func (m *InjuryAssessmentMutation) ResetRestrictions() {
	m.restrictions = nil
	m.appendrestrictions = nil
	delete(m.clearedFields, injuryassessment.FieldRestrictions)
}

// SetEstimatedRecovery sets the "estimated_recovery" field.
func (m *InjuryAssessmentMutation) SetEstimatedRecovery(ie *injury.RecoveryEstimate) {
	m.estimated_recovery = &ie
}

// EstimatedRecovery returns the value of the "estimated_recovery" field in the mutation.
func (m *InjuryAssessmentMutation) EstimatedRecovery() (r *injury.RecoveryEstimate, exists bool) {
	v := m.estimated_recovery
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedRecovery returns the old "estimated_recovery" field's value of the InjuryAssessment entity.
// If the InjuryAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryAssessmentMutation) OldEstimatedRecovery(ctx context.Context) (v *injury.RecoveryEstimate, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedRecovery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedRecovery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedRecovery: %w", err)
	}
	return oldValue.EstimatedRecovery, nil
}

// ClearEstimatedRecovery clears the value of the "estimated_recovery" field.
func (m *InjuryAssessmentMutation) ClearEstimatedRecovery() {
	m.estimated_recovery = nil
	m.clearedFields[injuryassessment.FieldEstimatedRecovery] = struct{}{}
}

// EstimatedRecoveryCleared returns if the "estimated_recovery" field was cleared in this mutation.
func (m *InjuryAssessmentMutation) EstimatedRecoveryCleared() bool {
	_, ok := m.clearedFields[injuryassessment.FieldEstimatedRecovery]
	return ok
}

// ResetEstimatedRecovery resets all changes to the "estimated_recovery" field.
func (m *InjuryAssessmentMutation) ResetEstimatedRecovery() {
	m.estimated_recovery = nil
	delete(m.clearedFields, injuryassessment.FieldEstimatedRecovery)
}

// SetFollowUpRequired sets the "follow_up_required" field.
func (m *InjuryAssessmentMutation) SetFollowUpRequired(b bool) {
	m.follow_up_required = &b
}

// FollowUpRequired returns the value of the "follow_up_required" field in the mutation.
func (m *InjuryAssessmentMutation) FollowUpRequired() (r bool, exists bool) {
	v := m.follow_up_required
	if v == nil {
		return
	}
	return *v, true
}

// OldFollowUpRequired returns the old "follow_up_required" field's value of the InjuryAssessment entity.
// If the InjuryAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryAssessmentMutation) OldFollowUpRequired(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFollowUpRequired is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFollowUpRequired requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFollowUpRequired: %w", err)
	}
	return oldValue.FollowUpRequired, nil
}

// ResetFollowUpRequired resets all changes to the "follow_up_required" field.
func (m *InjuryAssessmentMutation) ResetFollowUpRequired() {
	m.follow_up_required = nil
}

// SetAppointment sets the "appointment" field.
func (m *InjuryAssessmentMutation) SetAppointment(ia *injury.ScheduledAppointment) {
	m.appointment = &ia
}

// Appointment returns the value of the "appointment" field in the mutation.
func (m *InjuryAssessmentMutation) Appointment() (r *injury.ScheduledAppointment, exists bool) {
	v := m.appointment
	if v == nil {
		return
	}
	return *v, true
}

// OldAppointment returns the old "appointment" field's value of the InjuryAssessment entity.
// If the InjuryAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryAssessmentMutation) OldAppointment(ctx context.Context) (v *injury.ScheduledAppointment, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppointment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppointment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppointment: %w", err)
	}
	return oldValue.Appointment, nil
}

// ClearAppointment clears the value of the "appointment" field.
func (m *InjuryAssessmentMutation) ClearAppointment() {
	m.appointment = nil
	m.clearedFields[injuryassessment.FieldAppointment] = struct{}{}
}

// AppointmentCleared returns if the "appointment" field was cleared in this mutation.
func (m *InjuryAssessmentMutation) AppointmentCleared() bool {
	_, ok := m.clearedFields[injuryassessment.FieldAppointment]
	return ok
}

// ResetAppointment resets all changes to the "appointment" field.
func (m *InjuryAssessmentMutation) ResetAppointment() {
	m.appointment = nil
	delete(m.clearedFields, injuryassessment.FieldAppointment)
}

// SetClearanceStatus sets the "clearance_status" field.
func (m *InjuryAssessmentMutation) SetClearanceStatus(is injuryassessment.ClearanceStatus) {
	m.clearance_status = &is
}

// ClearanceStatus returns the value of the "clearance_status" field in the mutation.
func (m *InjuryAssessmentMutation) ClearanceStatus() (r injuryassessment.ClearanceStatus, exists bool) {
	v := m.clearance_status
	if v == nil {
		return
	}
	return *v, true
}

// OldClearanceStatus returns the old "clearance_status" field's value of the InjuryAssessment entity.
// If the InjuryAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryAssessmentMutation) OldClearanceStatus(ctx context.Context) (v injuryassessment.ClearanceStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClearanceStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClearanceStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClearanceStatus: %w", err)
	}
	return oldValue.ClearanceStatus, nil
}

// ResetClearanceStatus resets all changes to the "clearance_status" field.
func (m *InjuryAssessmentMutation) ResetClearanceStatus() {
	m.clearance_status = nil
}

// SetTestResults sets the "test_results" field.
func (m *InjuryAssessmentMutation) SetTestResults(ir []injury.TestResult) {
	m.test_results = &ir
	m.appendtest_results = nil
}

// TestResults returns the value of the "test_results" field in the mutation.
func (m *InjuryAssessmentMutation) TestResults() (r []injury.TestResult, exists bool) {
	v := m.test_results
	if v == nil {
		return
	}
	return *v, true
}

// OldTestResults returns the old "test_results" field's value of the InjuryAssessment entity.
// If the InjuryAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryAssessmentMutation) OldTestResults(ctx context.Context) (v []injury.TestResult, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestResults is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestResults requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestResults: %w", err)
	}
	return oldValue.TestResults, nil
}

// AppendTestResults adds ir to the "test_results" field.
func (m *InjuryAssessmentMutation) AppendTestResults(ir []injury.TestResult) {
	m.appendtest_results = append(m.appendtest_results, ir...)
}

// AppendedTestResults returns the list of values that were appended to the "test_results" field in this mutation.
func (m *InjuryAssessmentMutation) AppendedTestResults() ([]injury.TestResult, bool) {
	if len(m.appendtest_results) == 0 {
		return nil, false
	}
	return m.appendtest_results, true
}

// ClearTestResults clears the value of the "test_results" field.
func (m *InjuryAssessmentMutation) ClearTestResults() {
	m.test_results = nil
	m.appendtest_results = nil
	m.clearedFields[injuryassessment.FieldTestResults] = struct{}{}
}

// TestResultsCleared returns if the "test_results" field was cleared in this mutation.
func (m *InjuryAssessmentMutation) TestResultsCleared() bool {
	_, ok := m.clearedFields[injuryassessment.FieldTestResults]
	return ok
}

// ResetTestResults resets all changes to the "test_results" field.
func (m *InjuryAssessmentMutation) ResetTestResults() {
	m.test_results = nil
	m.appendtest_results = nil
	delete(m.clearedFields, injuryassessment.FieldTestResults)
}

// SetNotes sets the "notes" field.
func (m *InjuryAssessmentMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *InjuryAssessmentMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the InjuryAssessment entity.
// If the InjuryAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryAssessmentMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *InjuryAssessmentMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[injuryassessment.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *InjuryAssessmentMutation) NotesCleared() bool {
	_, ok := m.clearedFields[injuryassessment.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *InjuryAssessmentMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, injuryassessment.FieldNotes)
}

// Where appends a list predicates to the InjuryAssessmentMutation builder.
func (m *InjuryAssessmentMutation) Where(ps ...predicate.InjuryAssessment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InjuryAssessmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InjuryAssessmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InjuryAssessment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InjuryAssessmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InjuryAssessmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InjuryAssessment).
func (m *InjuryAssessmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InjuryAssessmentMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.created_at != nil {
		fields = append(fields, injuryassessment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, injuryassessment.FieldUpdatedAt)
	}
	if m.report_id != nil {
		fields = append(fields, injuryassessment.FieldReportID)
	}
	if m.doctor_id != nil {
		fields = append(fields, injuryassessment.FieldDoctorID)
	}
	if m.diagnosis != nil {
		fields = append(fields, injuryassessment.FieldDiagnosis)
	}
	if m.diagnosis_details != nil {
		fields = append(fields, injuryassessment.FieldDiagnosisDetails)
	}
	if m.severity != nil {
		fields = append(fields, injuryassessment.FieldSeverity)
	}
	if m.treatment_plan != nil {
		fields = append(fields, injuryassessment.FieldTreatmentPlan)
	}
	if m.medications != nil {
		fields = append(fields, injuryassessment.FieldMedications)
	}
	if m.rehabilitation_protocol != nil {
		fields = append(fields, injuryassessment.FieldRehabilitationProtocol)
	}
	if m.restrictions != nil {
		fields = append(fields, injuryassessment.FieldRestrictions)
	}
	if m.estimated_recovery != nil {
		fields = append(fields, injuryassessment.FieldEstimatedRecovery)
	}
	if m.follow_up_required != nil {
		fields = append(fields, injuryassessment.FieldFollowUpRequired)
	}
	if m.appointment != nil {
		fields = append(fields, injuryassessment.FieldAppointment)
	}
	if m.clearance_status != nil {
		fields = append(fields, injuryassessment.FieldClearanceStatus)
	}
	if m.test_results != nil {
		fields = append(fields, injuryassessment.FieldTestResults)
	}
	if m.notes != nil {
		fields = append(fields, injuryassessment.FieldNotes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InjuryAssessmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case injuryassessment.FieldCreatedAt:
		return m.CreatedAt()
	case injuryassessment.FieldUpdatedAt:
		return m.UpdatedAt()
	case injuryassessment.FieldReportID:
		return m.ReportID()
	case injuryassessment.FieldDoctorID:
		return m.DoctorID()
	case injuryassessment.FieldDiagnosis:
		return m.Diagnosis()
	case injuryassessment.FieldDiagnosisDetails:
		return m.DiagnosisDetails()
	case injuryassessment.FieldSeverity:
		return m.Severity()
	case injuryassessment.FieldTreatmentPlan:
		return m.TreatmentPlan()
	case injuryassessment.FieldMedications:
		return m.Medications()
	case injuryassessment.FieldRehabilitationProtocol:
		return m.RehabilitationProtocol()
	case injuryassessment.FieldRestrictions:
		return m.Restrictions()
	case injuryassessment.FieldEstimatedRecovery:
		return m.EstimatedRecovery()
	case injuryassessment.FieldFollowUpRequired:
		return m.FollowUpRequired()
	case injuryassessment.FieldAppointment:
		return m.Appointment()
	case injuryassessment.FieldClearanceStatus:
		return m.ClearanceStatus()
	case injuryassessment.FieldTestResults:
		return m.TestResults()
	case injuryassessment.FieldNotes:
		return m.Notes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InjuryAssessmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case injuryassessment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case injuryassessment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case injuryassessment.FieldReportID:
		return m.OldReportID(ctx)
	case injuryassessment.FieldDoctorID:
		return m.OldDoctorID(ctx)
	case injuryassessment.FieldDiagnosis:
		return m.OldDiagnosis(ctx)
	case injuryassessment.FieldDiagnosisDetails:
		return m.OldDiagnosisDetails(ctx)
	case injuryassessment.FieldSeverity:
		return m.OldSeverity(ctx)
	case injuryassessment.FieldTreatmentPlan:
		return m.OldTreatmentPlan(ctx)
	case injuryassessment.FieldMedications:
		return m.OldMedications(ctx)
	case injuryassessment.FieldRehabilitationProtocol:
		return m.OldRehabilitationProtocol(ctx)
	case injuryassessment.FieldRestrictions:
		return m.OldRestrictions(ctx)
	case injuryassessment.FieldEstimatedRecovery:
		return m.OldEstimatedRecovery(ctx)
	case injuryassessment.FieldFollowUpRequired:
		return m.OldFollowUpRequired(ctx)
	case injuryassessment.FieldAppointment:
		return m.OldAppointment(ctx)
	case injuryassessment.FieldClearanceStatus:
		return m.OldClearanceStatus(ctx)
	case injuryassessment.FieldTestResults:
		return m.OldTestResults(ctx)
	case injuryassessment.FieldNotes:
		return m.OldNotes(ctx)
	}
	return nil, fmt.Errorf("unknown InjuryAssessment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InjuryAssessmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case injuryassessment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case injuryassessment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case injuryassessment.FieldReportID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case injuryassessment.FieldDoctorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoctorID(v)
		return nil
	case injuryassessment.FieldDiagnosis:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiagnosis(v)
		return nil
	case injuryassessment.FieldDiagnosisDetails:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiagnosisDetails(v)
		return nil
	case injuryassessment.FieldSeverity:
		v, ok := value.(injuryassessment.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case injuryassessment.FieldTreatmentPlan:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTreatmentPlan(v)
		return nil
	case injuryassessment.FieldMedications:
		v, ok := value.([]injury.MedicationItem)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMedications(v)
		return nil
	case injuryassessment.FieldRehabilitationProtocol:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRehabilitationProtocol(v)
		return nil
	case injuryassessment.FieldRestrictions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRestrictions(v)
		return nil
	case injuryassessment.FieldEstimatedRecovery:
		v, ok := value.(*injury.RecoveryEstimate)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedRecovery(v)
		return nil
	case injuryassessment.FieldFollowUpRequired:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFollowUpRequired(v)
		return nil
	case injuryassessment.FieldAppointment:
		v, ok := value.(*injury.ScheduledAppointment)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppointment(v)
		return nil
	case injuryassessment.FieldClearanceStatus:
		v, ok := value.(injuryassessment.ClearanceStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClearanceStatus(v)
		return nil
	case injuryassessment.FieldTestResults:
		v, ok := value.([]injury.TestResult)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestResults(v)
		return nil
	case injuryassessment.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	}
	return fmt.Errorf("unknown InjuryAssessment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InjuryAssessmentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InjuryAssessmentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InjuryAssessmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown InjuryAssessment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InjuryAssessmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(injuryassessment.FieldDiagnosisDetails) {
		fields = append(fields, injuryassessment.FieldDiagnosisDetails)
	}
	if m.FieldCleared(injuryassessment.FieldMedications) {
		fields = append(fields, injuryassessment.FieldMedications)
	}
	if m.FieldCleared(injuryassessment.FieldRehabilitationProtocol) {
		fields = append(fields, injuryassessment.FieldRehabilitationProtocol)
	}
	if m.FieldCleared(injuryassessment.FieldRestrictions) {
		fields = append(fields, injuryassessment.FieldRestrictions)
	}
	if m.FieldCleared(injuryassessment.FieldEstimatedRecovery) {
		fields = append(fields, injuryassessment.FieldEstimatedRecovery)
	}
	if m.FieldCleared(injuryassessment.FieldAppointment) {
		fields = append(fields, injuryassessment.FieldAppointment)
	}
	if m.FieldCleared(injuryassessment.FieldTestResults) {
		fields = append(fields, injuryassessment.FieldTestResults)
	}
	if m.FieldCleared(injuryassessment.FieldNotes) {
		fields = append(fields, injuryassessment.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InjuryAssessmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InjuryAssessmentMutation) ClearField(name string) error {
	switch name {
	case injuryassessment.FieldDiagnosisDetails:
		m.ClearDiagnosisDetails()
		return nil
	case injuryassessment.FieldMedications:
		m.ClearMedications()
		return nil
	case injuryassessment.FieldRehabilitationProtocol:
		m.ClearRehabilitationProtocol()
		return nil
	case injuryassessment.FieldRestrictions:
		m.ClearRestrictions()
		return nil
	case injuryassessment.FieldEstimatedRecovery:
		m.ClearEstimatedRecovery()
		return nil
	case injuryassessment.FieldAppointment:
		m.ClearAppointment()
		return nil
	case injuryassessment.FieldTestResults:
		m.ClearTestResults()
		return nil
	case injuryassessment.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown InjuryAssessment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InjuryAssessmentMutation) ResetField(name string) error {
	switch name {
	case injuryassessment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case injuryassessment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case injuryassessment.FieldReportID:
		m.ResetReportID()
		return nil
	case injuryassessment.FieldDoctorID:
		m.ResetDoctorID()
		return nil
	case injuryassessment.FieldDiagnosis:
		m.ResetDiagnosis()
		return nil
	case injuryassessment.FieldDiagnosisDetails:
		m.ResetDiagnosisDetails()
		return nil
	case injuryassessment.FieldSeverity:
		m.ResetSeverity()
		return nil
	case injuryassessment.FieldTreatmentPlan:
		m.ResetTreatmentPlan()
		return nil
	case injuryassessment.FieldMedications:
		m.ResetMedications()
		return nil
	case injuryassessment.FieldRehabilitationProtocol:
		m.ResetRehabilitationProtocol()
		return nil
	case injuryassessment.FieldRestrictions:
		m.ResetRestrictions()
		return nil
	case injuryassessment.FieldEstimatedRecovery:
		m.ResetEstimatedRecovery()
		return nil
	case injuryassessment.FieldFollowUpRequired:
		m.ResetFollowUpRequired()
		return nil
	case injuryassessment.FieldAppointment:
		m.ResetAppointment()
		return nil
	case injuryassessment.FieldClearanceStatus:
		m.ResetClearanceStatus()
		return nil
	case injuryassessment.FieldTestResults:
		m.ResetTestResults()
		return nil
	case injuryassessment.FieldNotes:
		m.ResetNotes()
		return nil
	}
	return fmt.Errorf("unknown InjuryAssessment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InjuryAssessmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InjuryAssessmentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InjuryAssessmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InjuryAssessmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InjuryAssessmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InjuryAssessmentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InjuryAssessmentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown InjuryAssessment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InjuryAssessmentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown InjuryAssessment edge %s", name)
}

// InjuryReportMutation represents an operation that mutates the InjuryReport nodes in the graph.
type InjuryReportMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	created_at            *time.Time
	updated_at            *time.Time
	athlete_id            *uuid.UUID
	doctor_id             *uuid.UUID
	title                 *string
	injury_type           *string
	body_part             *string
	pain_level            *int
	addpain_level         *int
	date_of_injury        *time.Time
	activity_context      *string
	symptoms              *[]string
	appendsymptoms        []string
	affecting_performance *injuryreport.AffectingPerformance
	previously_injured    *bool
	notes                 *string
	images                *[]string
	appendimages          []string
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*InjuryReport, error)
	predicates            []predicate.InjuryReport
}

var _ ent.Mutation = (*InjuryReportMutation)(nil)

// injuryreportOption allows management of the mutation configuration using functional options.
type injuryreportOption func(*InjuryReportMutation)

// newInjuryReportMutation creates new mutation for the InjuryReport entity.
func newInjuryReportMutation(c config, op Op, opts ...injuryreportOption) *InjuryReportMutation {
	m := &InjuryReportMutation{
		config:        c,
		op:            op,
		typ:           TypeInjuryReport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInjuryReportID sets the ID field of the mutation.
func withInjuryReportID(id uuid.UUID) injuryreportOption {
	return func(m *InjuryReportMutation) {
		var (
			err   error
			once  sync.Once
			value *InjuryReport
		)
		m.oldValue = func(ctx context.Context) (*InjuryReport, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InjuryReport.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInjuryReport sets the old InjuryReport of the mutation.
func withInjuryReport(node *InjuryReport) injuryreportOption {
	return func(m *InjuryReportMutation) {
		m.oldValue = func(context.Context) (*InjuryReport, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InjuryReportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InjuryReportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InjuryReport entities.
func (m *InjuryReportMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InjuryReportMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InjuryReportMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InjuryReport.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *InjuryReportMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InjuryReportMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InjuryReport entity.
// If the InjuryReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryReportMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InjuryReportMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InjuryReportMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InjuryReportMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the InjuryReport entity.
// If the InjuryReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryReportMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InjuryReportMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetAthleteID sets the "athlete_id" field.
func (m *InjuryReportMutation) SetAthleteID(u uuid.UUID) {
	m.athlete_id = &u
}

// AthleteID returns the value of the "athlete_id" field in the mutation.
func (m *InjuryReportMutation) AthleteID() (r uuid.UUID, exists bool) {
	v := m.athlete_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAthleteID returns the old "athlete_id" field's value of the InjuryReport entity.
// If the InjuryReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryReportMutation) OldAthleteID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAthleteID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAthleteID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAthleteID: %w", err)
	}
	return oldValue.AthleteID, nil
}

// ResetAthleteID resets all changes to the "athlete_id" field.
func (m *InjuryReportMutation) ResetAthleteID() {
	m.athlete_id = nil
}

// SetDoctorID sets the "doctor_id" field.
func (m *InjuryReportMutation) SetDoctorID(u uuid.UUID) {
	m.doctor_id = &u
}

// DoctorID returns the value of the "doctor_id" field in the mutation.
func (m *InjuryReportMutation) DoctorID() (r uuid.UUID, exists bool) {
	v := m.doctor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDoctorID returns the old "doctor_id" field's value of the InjuryReport entity.
// If the InjuryReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryReportMutation) OldDoctorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoctorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoctorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoctorID: %w", err)
	}
	return oldValue.DoctorID, nil
}

// ResetDoctorID resets all changes to the "doctor_id" field.
func (m *InjuryReportMutation) ResetDoctorID() {
	m.doctor_id = nil
}

// SetTitle sets the "title" field.
func (m *InjuryReportMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *InjuryReportMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the InjuryReport entity.
// If the InjuryReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryReportMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *InjuryReportMutation) ResetTitle() {
	m.title = nil
}

// SetInjuryType sets the "injury_type" field.
func (m *InjuryReportMutation) SetInjuryType(s string) {
	m.injury_type = &s
}

// InjuryType returns the value of the "injury_type" field in the mutation.
func (m *InjuryReportMutation) InjuryType() (r string, exists bool) {
	v := m.injury_type
	if v == nil {
		return
	}
	return *v, true
}

// OldInjuryType returns the old "injury_type" field's value of the InjuryReport entity.
// If the InjuryReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryReportMutation) OldInjuryType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInjuryType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInjuryType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInjuryType: %w", err)
	}
	return oldValue.InjuryType, nil
}

// ResetInjuryType resets all changes to the "injury_type" field.
func (m *InjuryReportMutation) ResetInjuryType() {
	m.injury_type = nil
}

// SetBodyPart sets the "body_part" field.
func (m *InjuryReportMutation) SetBodyPart(s string) {
	m.body_part = &s
}

// BodyPart returns the value of the "body_part" field in the mutation.
func (m *InjuryReportMutation) BodyPart() (r string, exists bool) {
	v := m.body_part
	if v == nil {
		return
	}
	return *v, true
}

// OldBodyPart returns the old "body_part" field's value of the InjuryReport entity.
// If the InjuryReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryReportMutation) OldBodyPart(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBodyPart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBodyPart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBodyPart: %w", err)
	}
	return oldValue.BodyPart, nil
}

// ResetBodyPart resets all changes to the "body_part" field.
func (m *InjuryReportMutation) ResetBodyPart() {
	m.body_part = nil
}

// SetPainLevel sets the "pain_level" field.
func (m *InjuryReportMutation) SetPainLevel(i int) {
	m.pain_level = &i
	m.addpain_level = nil
}

// PainLevel returns the value of the "pain_level" field in the mutation.
func (m *InjuryReportMutation) PainLevel() (r int, exists bool) {
	v := m.pain_level
	if v == nil {
		return
	}
	return *v, true
}

// OldPainLevel returns the old "pain_level" field's value of the InjuryReport entity.
// If the InjuryReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryReportMutation) OldPainLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPainLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPainLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPainLevel: %w", err)
	}
	return oldValue.PainLevel, nil
}

// AddPainLevel adds i to the "pain_level" field.
func (m *InjuryReportMutation) AddPainLevel(i int) {
	if m.addpain_level != nil {
		*m.addpain_level += i
	} else {
		m.addpain_level = &i
	}
}

// AddedPainLevel returns the value that was added to the "pain_level" field in this mutation.
func (m *InjuryReportMutation) AddedPainLevel() (r int, exists bool) {
	v := m.addpain_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetPainLevel resets all changes to the "pain_level" field.
func (m *InjuryReportMutation) ResetPainLevel() {
	m.pain_level = nil
	m.addpain_level = nil
}

// SetDateOfInjury sets the "date_of_injury" field.
func (m *InjuryReportMutation) SetDateOfInjury(t time.Time) {
	m.date_of_injury = &t
}

// DateOfInjury returns the value of the "date_of_injury" field in the mutation.
func (m *InjuryReportMutation) DateOfInjury() (r time.Time, exists bool) {
	v := m.date_of_injury
	if v == nil {
		return
	}
	return *v, true
}

// OldDateOfInjury returns the old "date_of_injury" field's value of the InjuryReport entity.
// If the InjuryReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryReportMutation) OldDateOfInjury(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateOfInjury is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateOfInjury requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateOfInjury: %w", err)
	}
	return oldValue.DateOfInjury, nil
}

// ResetDateOfInjury resets all changes to the "date_of_injury" field.
func (m *InjuryReportMutation) ResetDateOfInjury() {
	m.date_of_injury = nil
}

// SetActivityContext sets the "activity_context" field.
func (m *InjuryReportMutation) SetActivityContext(s string) {
	m.activity_context = &s
}

// ActivityContext returns the value of the "activity_context" field in the mutation.
func (m *InjuryReportMutation) ActivityContext() (r string, exists bool) {
	v := m.activity_context
	if v == nil {
		return
	}
	return *v, true
}

// OldActivityContext returns the old "activity_context" field's value of the InjuryReport entity.
// If the InjuryReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryReportMutation) OldActivityContext(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivityContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivityContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivityContext: %w", err)
	}
	return oldValue.ActivityContext, nil
}

// ClearActivityContext clears the value of the "activity_context" field.
func (m *InjuryReportMutation) ClearActivityContext() {
	m.activity_context = nil
	m.clearedFields[injuryreport.FieldActivityContext] = struct{}{}
}

// ActivityContextCleared returns if the "activity_context" field was cleared in this mutation.
func (m *InjuryReportMutation) ActivityContextCleared() bool {
	_, ok := m.clearedFields[injuryreport.FieldActivityContext]
	return ok
}

// ResetActivityContext resets all changes to the "activity_context" field.
func (m *InjuryReportMutation) ResetActivityContext() {
	m.activity_context = nil
	delete(m.clearedFields, injuryreport.FieldActivityContext)
}

// SetSymptoms sets the "symptoms" field.
func (m *InjuryReportMutation) SetSymptoms(s []string) {
	m.symptoms = &s
	m.appendsymptoms = nil
}

// Symptoms returns the value of the "symptoms" field in the mutation.
func (m *InjuryReportMutation) Symptoms() (r []string, exists bool) {
	v := m.symptoms
	if v == nil {
		return
	}
	return *v, true
}

// OldSymptoms returns the old "symptoms" field's value of the InjuryReport entity.
// If the InjuryReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryReportMutation) OldSymptoms(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSymptoms is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSymptoms requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSymptoms: %w", err)
	}
	return oldValue.Symptoms, nil
}

// AppendSymptoms adds s to the "symptoms" field.
func (m *InjuryReportMutation) AppendSymptoms(s []string) {
	m.appendsymptoms = append(m.appendsymptoms, s...)
}

// AppendedSymptoms returns the list of values that were appended to the "symptoms" field in this mutation.
func (m *InjuryReportMutation) AppendedSymptoms() ([]string, bool) {
	if len(m.appendsymptoms) == 0 {
		return nil, false
	}
	return m.appendsymptoms, true
}

// ClearSymptoms clears the value of the "symptoms" field.
func (m *InjuryReportMutation) ClearSymptoms() {
	m.symptoms = nil
	m.appendsymptoms = nil
	m.clearedFields[injuryreport.FieldSymptoms] = struct{}{}
}

// SymptomsCleared returns if the "symptoms" field was cleared in this mutation.
func (m *InjuryReportMutation) SymptomsCleared() bool {
	_, ok := m.clearedFields[injuryreport.FieldSymptoms]
	return ok
}

// ResetSymptoms resets all changes to the "symptoms" field.
func (m *InjuryReportMutation) ResetSymptoms() {
	m.symptoms = nil
	m.appendsymptoms = nil
	delete(m.clearedFields, injuryreport.FieldSymptoms)
}

// SetAffectingPerformance sets the "affecting_performance" field.
func (m *InjuryReportMutation) SetAffectingPerformance(ip injuryreport.AffectingPerformance) {
	m.affecting_performance = &ip
}

// AffectingPerformance returns the value of the "affecting_performance" field in the mutation.
func (m *InjuryReportMutation) AffectingPerformance() (r injuryreport.AffectingPerformance, exists bool) {
	v := m.affecting_performance
	if v == nil {
		return
	}
	return *v, true
}

// OldAffectingPerformance returns the old "affecting_performance" field's value of the InjuryReport entity.
// If the InjuryReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryReportMutation) OldAffectingPerformance(ctx context.Context) (v injuryreport.AffectingPerformance, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAffectingPerformance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAffectingPerformance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAffectingPerformance: %w", err)
	}
	return oldValue.AffectingPerformance, nil
}

// ResetAffectingPerformance resets all changes to the "affecting_performance" field.
func (m *InjuryReportMutation) ResetAffectingPerformance() {
	m.affecting_performance = nil
}

// SetPreviouslyInjured sets the "previously_injured" field.
func (m *InjuryReportMutation) SetPreviouslyInjured(b bool) {
	m.previously_injured = &b
}

// PreviouslyInjured returns the value of the "previously_injured" field in the mutation.
func (m *InjuryReportMutation) PreviouslyInjured() (r bool, exists bool) {
	v := m.previously_injured
	if v == nil {
		return
	}
	return *v, true
}

// OldPreviouslyInjured returns the old "previously_injured" field's value of the InjuryReport entity.
// If the InjuryReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryReportMutation) OldPreviouslyInjured(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreviouslyInjured is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreviouslyInjured requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreviouslyInjured: %w", err)
	}
	return oldValue.PreviouslyInjured, nil
}

// ResetPreviouslyInjured resets all changes to the "previously_injured" field.
func (m *InjuryReportMutation) ResetPreviouslyInjured() {
	m.previously_injured = nil
}

// SetNotes sets the "notes" field.
func (m *InjuryReportMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *InjuryReportMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the InjuryReport entity.
// If the InjuryReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryReportMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *InjuryReportMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[injuryreport.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *InjuryReportMutation) NotesCleared() bool {
	_, ok := m.clearedFields[injuryreport.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *InjuryReportMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, injuryreport.FieldNotes)
}

// SetImages sets the "images" field.
func (m *InjuryReportMutation) SetImages(s []string) {
	m.images = &s
	m.appendimages = nil
}

// Images returns the value of the "images" field in the mutation.
func (m *InjuryReportMutation) Images() (r []string, exists bool) {
	v := m.images
	if v == nil {
		return
	}
	return *v, true
}

// OldImages returns the old "images" field's value of the InjuryReport entity.
// If the InjuryReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryReportMutation) OldImages(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImages: %w", err)
	}
	return oldValue.Images, nil
}

// AppendImages adds s to the "images" field.
func (m *InjuryReportMutation) AppendImages(s []string) {
	m.appendimages = append(m.appendimages, s...)
}

// AppendedImages returns the list of values that were appended to the "images" field in this mutation.
func (m *InjuryReportMutation) AppendedImages() ([]string, bool) {
	if len(m.appendimages) == 0 {
		return nil, false
	}
	return m.appendimages, true
}

// ClearImages clears the value of the "images" field.
func (m *InjuryReportMutation) ClearImages() {
	m.images = nil
	m.appendimages = nil
	m.clearedFields[injuryreport.FieldImages] = struct{}{}
}

// ImagesCleared returns if the "images" field was cleared in this mutation.
func (m *InjuryReportMutation) ImagesCleared() bool {
	_, ok := m.clearedFields[injuryreport.FieldImages]
	return ok
}

// ResetImages resets all changes to the "images" field.
func (m *InjuryReportMutation) ResetImages() {
	m.images = nil
	m.appendimages = nil
	delete(m.clearedFields, injuryreport.FieldImages)
}

// Where appends a list predicates to the InjuryReportMutation builder.
func (m *InjuryReportMutation) Where(ps ...predicate.InjuryReport) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InjuryReportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InjuryReportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InjuryReport, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InjuryReportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InjuryReportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InjuryReport).
func (m *InjuryReportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InjuryReportMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.created_at != nil {
		fields = append(fields, injuryreport.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, injuryreport.FieldUpdatedAt)
	}
	if m.athlete_id != nil {
		fields = append(fields, injuryreport.FieldAthleteID)
	}
	if m.doctor_id != nil {
		fields = append(fields, injuryreport.FieldDoctorID)
	}
	if m.title != nil {
		fields = append(fields, injuryreport.FieldTitle)
	}
	if m.injury_type != nil {
		fields = append(fields, injuryreport.FieldInjuryType)
	}
	if m.body_part != nil {
		fields = append(fields, injuryreport.FieldBodyPart)
	}
	if m.pain_level != nil {
		fields = append(fields, injuryreport.FieldPainLevel)
	}
	if m.date_of_injury != nil {
		fields = append(fields, injuryreport.FieldDateOfInjury)
	}
	if m.activity_context != nil {
		fields = append(fields, injuryreport.FieldActivityContext)
	}
	if m.symptoms != nil {
		fields = append(fields, injuryreport.FieldSymptoms)
	}
	if m.affecting_performance != nil {
		fields = append(fields, injuryreport.FieldAffectingPerformance)
	}
	if m.previously_injured != nil {
		fields = append(fields, injuryreport.FieldPreviouslyInjured)
	}
	if m.notes != nil {
		fields = append(fields, injuryreport.FieldNotes)
	}
	if m.images != nil {
		fields = append(fields, injuryreport.FieldImages)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InjuryReportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case injuryreport.FieldCreatedAt:
		return m.CreatedAt()
	case injuryreport.FieldUpdatedAt:
		return m.UpdatedAt()
	case injuryreport.FieldAthleteID:
		return m.AthleteID()
	case injuryreport.FieldDoctorID:
		return m.DoctorID()
	case injuryreport.FieldTitle:
		return m.Title()
	case injuryreport.FieldInjuryType:
		return m.InjuryType()
	case injuryreport.FieldBodyPart:
		return m.BodyPart()
	case injuryreport.FieldPainLevel:
		return m.PainLevel()
	case injuryreport.FieldDateOfInjury:
		return m.DateOfInjury()
	case injuryreport.FieldActivityContext:
		return m.ActivityContext()
	case injuryreport.FieldSymptoms:
		return m.Symptoms()
	case injuryreport.FieldAffectingPerformance:
		return m.AffectingPerformance()
	case injuryreport.FieldPreviouslyInjured:
		return m.PreviouslyInjured()
	case injuryreport.FieldNotes:
		return m.Notes()
	case injuryreport.FieldImages:
		return m.Images()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InjuryReportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case injuryreport.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case injuryreport.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case injuryreport.FieldAthleteID:
		return m.OldAthleteID(ctx)
	case injuryreport.FieldDoctorID:
		return m.OldDoctorID(ctx)
	case injuryreport.FieldTitle:
		return m.OldTitle(ctx)
	case injuryreport.FieldInjuryType:
		return m.OldInjuryType(ctx)
	case injuryreport.FieldBodyPart:
		return m.OldBodyPart(ctx)
	case injuryreport.FieldPainLevel:
		return m.OldPainLevel(ctx)
	case injuryreport.FieldDateOfInjury:
		return m.OldDateOfInjury(ctx)
	case injuryreport.FieldActivityContext:
		return m.OldActivityContext(ctx)
	case injuryreport.FieldSymptoms:
		return m.OldSymptoms(ctx)
	case injuryreport.FieldAffectingPerformance:
		return m.OldAffectingPerformance(ctx)
	case injuryreport.FieldPreviouslyInjured:
		return m.OldPreviouslyInjured(ctx)
	case injuryreport.FieldNotes:
		return m.OldNotes(ctx)
	case injuryreport.FieldImages:
		return m.OldImages(ctx)
	}
	return nil, fmt.Errorf("unknown InjuryReport field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InjuryReportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case injuryreport.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case injuryreport.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case injuryreport.FieldAthleteID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAthleteID(v)
		return nil
	case injuryreport.FieldDoctorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoctorID(v)
		return nil
	case injuryreport.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case injuryreport.FieldInjuryType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInjuryType(v)
		return nil
	case injuryreport.FieldBodyPart:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBodyPart(v)
		return nil
	case injuryreport.FieldPainLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPainLevel(v)
		return nil
	case injuryreport.FieldDateOfInjury:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateOfInjury(v)
		return nil
	case injuryreport.FieldActivityContext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivityContext(v)
		return nil
	case injuryreport.FieldSymptoms:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSymptoms(v)
		return nil
	case injuryreport.FieldAffectingPerformance:
		v, ok := value.(injuryreport.AffectingPerformance)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAffectingPerformance(v)
		return nil
	case injuryreport.FieldPreviouslyInjured:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreviouslyInjured(v)
		return nil
	case injuryreport.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case injuryreport.FieldImages:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImages(v)
		return nil
	}
	return fmt.Errorf("unknown InjuryReport field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InjuryReportMutation) AddedFields() []string {
	var fields []string
	if m.addpain_level != nil {
		fields = append(fields, injuryreport.FieldPainLevel)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InjuryReportMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case injuryreport.FieldPainLevel:
		return m.AddedPainLevel()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InjuryReportMutation) AddField(name string, value ent.Value) error {
	switch name {
	case injuryreport.FieldPainLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPainLevel(v)
		return nil
	}
	return fmt.Errorf("unknown InjuryReport numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InjuryReportMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(injuryreport.FieldActivityContext) {
		fields = append(fields, injuryreport.FieldActivityContext)
	}
	if m.FieldCleared(injuryreport.FieldSymptoms) {
		fields = append(fields, injuryreport.FieldSymptoms)
	}
	if m.FieldCleared(injuryreport.FieldNotes) {
		fields = append(fields, injuryreport.FieldNotes)
	}
	if m.FieldCleared(injuryreport.FieldImages) {
		fields = append(fields, injuryreport.FieldImages)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InjuryReportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InjuryReportMutation) ClearField(name string) error {
	switch name {
	case injuryreport.FieldActivityContext:
		m.ClearActivityContext()
		return nil
	case injuryreport.FieldSymptoms:
		m.ClearSymptoms()
		return nil
	case injuryreport.FieldNotes:
		m.ClearNotes()
		return nil
	case injuryreport.FieldImages:
		m.ClearImages()
		return nil
	}
	return fmt.Errorf("unknown InjuryReport nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InjuryReportMutation) ResetField(name string) error {
	switch name {
	case injuryreport.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case injuryreport.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case injuryreport.FieldAthleteID:
		m.ResetAthleteID()
		return nil
	case injuryreport.FieldDoctorID:
		m.ResetDoctorID()
		return nil
	case injuryreport.FieldTitle:
		m.ResetTitle()
		return nil
	case injuryreport.FieldInjuryType:
		m.ResetInjuryType()
		return nil
	case injuryreport.FieldBodyPart:
		m.ResetBodyPart()
		return nil
	case injuryreport.FieldPainLevel:
		m.ResetPainLevel()
		return nil
	case injuryreport.FieldDateOfInjury:
		m.ResetDateOfInjury()
		return nil
	case injuryreport.FieldActivityContext:
		m.ResetActivityContext()
		return nil
	case injuryreport.FieldSymptoms:
		m.ResetSymptoms()
		return nil
	case injuryreport.FieldAffectingPerformance:
		m.ResetAffectingPerformance()
		return nil
	case injuryreport.FieldPreviouslyInjured:
		m.ResetPreviouslyInjured()
		return nil
	case injuryreport.FieldNotes:
		m.ResetNotes()
		return nil
	case injuryreport.FieldImages:
		m.ResetImages()
		return nil
	}
	return fmt.Errorf("unknown InjuryReport field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InjuryReportMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InjuryReportMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InjuryReportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InjuryReportMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InjuryReportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InjuryReportMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InjuryReportMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown InjuryReport unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InjuryReportMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown InjuryReport edge %s", name)
}

// InjuryShortMessageMutation represents an operation that mutates the InjuryShortMessage nodes in the graph.
type InjuryShortMessageMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	created_at       *time.Time
	report_id        *uuid.UUID
	response         *string
	medication       *string
	doctor_note      *string
	appointment_date *time.Time
	appointment_time *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*InjuryShortMessage, error)
	predicates       []predicate.InjuryShortMessage
}

var _ ent.Mutation = (*InjuryShortMessageMutation)(nil)

// injuryshortmessageOption allows management of the mutation configuration using functional options.
type injuryshortmessageOption func(*InjuryShortMessageMutation)

// newInjuryShortMessageMutation creates new mutation for the InjuryShortMessage entity.
func newInjuryShortMessageMutation(c config, op Op, opts ...injuryshortmessageOption) *InjuryShortMessageMutation {
	m := &InjuryShortMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeInjuryShortMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInjuryShortMessageID sets the ID field of the mutation.
func withInjuryShortMessageID(id uuid.UUID) injuryshortmessageOption {
	return func(m *InjuryShortMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *InjuryShortMessage
		)
		m.oldValue = func(ctx context.Context) (*InjuryShortMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InjuryShortMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInjuryShortMessage sets the old InjuryShortMessage of the mutation.
func withInjuryShortMessage(node *InjuryShortMessage) injuryshortmessageOption {
	return func(m *InjuryShortMessageMutation) {
		m.oldValue = func(context.Context) (*InjuryShortMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InjuryShortMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InjuryShortMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InjuryShortMessage entities.
func (m *InjuryShortMessageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InjuryShortMessageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InjuryShortMessageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InjuryShortMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *InjuryShortMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InjuryShortMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InjuryShortMessage entity.
// If the InjuryShortMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryShortMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InjuryShortMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetReportID sets the "report_id" field.
func (m *InjuryShortMessageMutation) SetReportID(u uuid.UUID) {
	m.report_id = &u
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *InjuryShortMessageMutation) ReportID() (r uuid.UUID, exists bool) {
	v := m.report_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the InjuryShortMessage entity.
// If the InjuryShortMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryShortMessageMutation) OldReportID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *InjuryShortMessageMutation) ResetReportID() {
	m.report_id = nil
}

// SetResponse sets the "response" field.
func (m *InjuryShortMessageMutation) SetResponse(s string) {
	m.response = &s
}

// Response returns the value of the "response" field in the mutation.
func (m *InjuryShortMessageMutation) Response() (r string, exists bool) {
	v := m.response
	if v == nil {
		return
	}
	return *v, true
}

// OldResponse returns the old "response" field's value of the InjuryShortMessage entity.
// If the InjuryShortMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryShortMessageMutation) OldResponse(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponse: %w", err)
	}
	return oldValue.Response, nil
}

// ResetResponse resets all changes to the "response" field.
func (m *InjuryShortMessageMutation) ResetResponse() {
	m.response = nil
}

// SetMedication sets the "medication" field.
func (m *InjuryShortMessageMutation) SetMedication(s string) {
	m.medication = &s
}

// Medication returns the value of the "medication" field in the mutation.
func (m *InjuryShortMessageMutation) Medication() (r string, exists bool) {
	v := m.medication
	if v == nil {
		return
	}
	return *v, true
}

// OldMedication returns the old "medication" field's value of the InjuryShortMessage entity.
// If the InjuryShortMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryShortMessageMutation) OldMedication(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMedication is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMedication requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMedication: %w", err)
	}
	return oldValue.Medication, nil
}

// ResetMedication resets all changes to the "medication" field.
func (m *InjuryShortMessageMutation) ResetMedication() {
	m.medication = nil
}

// SetDoctorNote sets the "doctor_note" field.
func (m *InjuryShortMessageMutation) SetDoctorNote(s string) {
	m.doctor_note = &s
}

// DoctorNote returns the value of the "doctor_note" field in the mutation.
func (m *InjuryShortMessageMutation) DoctorNote() (r string, exists bool) {
	v := m.doctor_note
	if v == nil {
		return
	}
	return *v, true
}

// OldDoctorNote returns the old "doctor_note" field's value of the InjuryShortMessage entity.
// If the InjuryShortMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryShortMessageMutation) OldDoctorNote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoctorNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoctorNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoctorNote: %w", err)
	}
	return oldValue.DoctorNote, nil
}

// ResetDoctorNote resets all changes to the "doctor_note" field.
func (m *InjuryShortMessageMutation) ResetDoctorNote() {
	m.doctor_note = nil
}

// SetAppointmentDate sets the "appointment_date" field.
func (m *InjuryShortMessageMutation) SetAppointmentDate(t time.Time) {
	m.appointment_date = &t
}

// AppointmentDate returns the value of the "appointment_date" field in the mutation.
func (m *InjuryShortMessageMutation) AppointmentDate() (r time.Time, exists bool) {
	v := m.appointment_date
	if v == nil {
		return
	}
	return *v, true
}

// OldAppointmentDate returns the old "appointment_date" field's value of the InjuryShortMessage entity.
// If the InjuryShortMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryShortMessageMutation) OldAppointmentDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppointmentDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppointmentDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppointmentDate: %w", err)
	}
	return oldValue.AppointmentDate, nil
}

// ResetAppointmentDate resets all changes to the "appointment_date" field.
func (m *InjuryShortMessageMutation) ResetAppointmentDate() {
	m.appointment_date = nil
}

// SetAppointmentTime sets the "appointment_time" field.
func (m *InjuryShortMessageMutation) SetAppointmentTime(s string) {
	m.appointment_time = &s
}

// AppointmentTime returns the value of the "appointment_time" field in the mutation.
func (m *InjuryShortMessageMutation) AppointmentTime() (r string, exists bool) {
	v := m.appointment_time
	if v == nil {
		return
	}
	return *v, true
}

// OldAppointmentTime returns the old "appointment_time" field's value of the InjuryShortMessage entity.
// If the InjuryShortMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryShortMessageMutation) OldAppointmentTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppointmentTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppointmentTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppointmentTime: %w", err)
	}
	return oldValue.AppointmentTime, nil
}

// ResetAppointmentTime resets all changes to the "appointment_time" field.
func (m *InjuryShortMessageMutation) ResetAppointmentTime() {
	m.appointment_time = nil
}

// Where appends a list predicates to the InjuryShortMessageMutation builder.
func (m *InjuryShortMessageMutation) Where(ps ...predicate.InjuryShortMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InjuryShortMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InjuryShortMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InjuryShortMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InjuryShortMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InjuryShortMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InjuryShortMessage).
func (m *InjuryShortMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InjuryShortMessageMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, injuryshortmessage.FieldCreatedAt)
	}
	if m.report_id != nil {
		fields = append(fields, injuryshortmessage.FieldReportID)
	}
	if m.response != nil {
		fields = append(fields, injuryshortmessage.FieldResponse)
	}
	if m.medication != nil {
		fields = append(fields, injuryshortmessage.FieldMedication)
	}
	if m.doctor_note != nil {
		fields = append(fields, injuryshortmessage.FieldDoctorNote)
	}
	if m.appointment_date != nil {
		fields = append(fields, injuryshortmessage.FieldAppointmentDate)
	}
	if m.appointment_time != nil {
		fields = append(fields, injuryshortmessage.FieldAppointmentTime)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InjuryShortMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case injuryshortmessage.FieldCreatedAt:
		return m.CreatedAt()
	case injuryshortmessage.FieldReportID:
		return m.ReportID()
	case injuryshortmessage.FieldResponse:
		return m.Response()
	case injuryshortmessage.FieldMedication:
		return m.Medication()
	case injuryshortmessage.FieldDoctorNote:
		return m.DoctorNote()
	case injuryshortmessage.FieldAppointmentDate:
		return m.AppointmentDate()
	case injuryshortmessage.FieldAppointmentTime:
		return m.AppointmentTime()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InjuryShortMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case injuryshortmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case injuryshortmessage.FieldReportID:
		return m.OldReportID(ctx)
	case injuryshortmessage.FieldResponse:
		return m.OldResponse(ctx)
	case injuryshortmessage.FieldMedication:
		return m.OldMedication(ctx)
	case injuryshortmessage.FieldDoctorNote:
		return m.OldDoctorNote(ctx)
	case injuryshortmessage.FieldAppointmentDate:
		return m.OldAppointmentDate(ctx)
	case injuryshortmessage.FieldAppointmentTime:
		return m.OldAppointmentTime(ctx)
	}
	return nil, fmt.Errorf("unknown InjuryShortMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InjuryShortMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case injuryshortmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case injuryshortmessage.FieldReportID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case injuryshortmessage.FieldResponse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponse(v)
		return nil
	case injuryshortmessage.FieldMedication:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMedication(v)
		return nil
	case injuryshortmessage.FieldDoctorNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoctorNote(v)
		return nil
	case injuryshortmessage.FieldAppointmentDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppointmentDate(v)
		return nil
	case injuryshortmessage.FieldAppointmentTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppointmentTime(v)
		return nil
	}
	return fmt.Errorf("unknown InjuryShortMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InjuryShortMessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InjuryShortMessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InjuryShortMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown InjuryShortMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InjuryShortMessageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InjuryShortMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InjuryShortMessageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown InjuryShortMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InjuryShortMessageMutation) ResetField(name string) error {
	switch name {
	case injuryshortmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case injuryshortmessage.FieldReportID:
		m.ResetReportID()
		return nil
	case injuryshortmessage.FieldResponse:
		m.ResetResponse()
		return nil
	case injuryshortmessage.FieldMedication:
		m.ResetMedication()
		return nil
	case injuryshortmessage.FieldDoctorNote:
		m.ResetDoctorNote()
		return nil
	case injuryshortmessage.FieldAppointmentDate:
		m.ResetAppointmentDate()
		return nil
	case injuryshortmessage.FieldAppointmentTime:
		m.ResetAppointmentTime()
		return nil
	}
	return fmt.Errorf("unknown InjuryShortMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InjuryShortMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InjuryShortMessageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InjuryShortMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InjuryShortMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InjuryShortMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InjuryShortMessageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InjuryShortMessageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown InjuryShortMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InjuryShortMessageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown InjuryShortMessage edge %s", name)
}

// InjuryTicketMutation represents an operation that mutates the InjuryTicket nodes in the graph.
type InjuryTicketMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	report_id     *uuid.UUID
	status        *injuryticket.Status
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*InjuryTicket, error)
	predicates    []predicate.InjuryTicket
}

var _ ent.Mutation = (*InjuryTicketMutation)(nil)

// injuryticketOption allows management of the mutation configuration using functional options.
type injuryticketOption func(*InjuryTicketMutation)

// newInjuryTicketMutation creates new mutation for the InjuryTicket entity.
func newInjuryTicketMutation(c config, op Op, opts ...injuryticketOption) *InjuryTicketMutation {
	m := &InjuryTicketMutation{
		config:        c,
		op:            op,
		typ:           TypeInjuryTicket,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInjuryTicketID sets the ID field of the mutation.
func withInjuryTicketID(id uuid.UUID) injuryticketOption {
	return func(m *InjuryTicketMutation) {
		var (
			err   error
			once  sync.Once
			value *InjuryTicket
		)
		m.oldValue = func(ctx context.Context) (*InjuryTicket, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InjuryTicket.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInjuryTicket sets the old InjuryTicket of the mutation.
func withInjuryTicket(node *InjuryTicket) injuryticketOption {
	return func(m *InjuryTicketMutation) {
		m.oldValue = func(context.Context) (*InjuryTicket, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InjuryTicketMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InjuryTicketMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InjuryTicket entities.
func (m *InjuryTicketMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InjuryTicketMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InjuryTicketMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InjuryTicket.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *InjuryTicketMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InjuryTicketMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InjuryTicket entity.
// If the InjuryTicket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryTicketMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InjuryTicketMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InjuryTicketMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InjuryTicketMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the InjuryTicket entity.
// If the InjuryTicket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryTicketMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InjuryTicketMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetReportID sets the "report_id" field.
func (m *InjuryTicketMutation) SetReportID(u uuid.UUID) {
	m.report_id = &u
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *InjuryTicketMutation) ReportID() (r uuid.UUID, exists bool) {
	v := m.report_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the InjuryTicket entity.
// If the InjuryTicket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryTicketMutation) OldReportID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *InjuryTicketMutation) ResetReportID() {
	m.report_id = nil
}

// SetStatus sets the "status" field.
func (m *InjuryTicketMutation) SetStatus(i injuryticket.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *InjuryTicketMutation) Status() (r injuryticket.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the InjuryTicket entity.
// If the InjuryTicket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InjuryTicketMutation) OldStatus(ctx context.Context) (v injuryticket.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *InjuryTicketMutation) ResetStatus() {
	m.status = nil
}

// Where appends a list predicates to the InjuryTicketMutation builder.
func (m *InjuryTicketMutation) Where(ps ...predicate.InjuryTicket) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InjuryTicketMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InjuryTicketMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InjuryTicket, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InjuryTicketMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InjuryTicketMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InjuryTicket).
func (m *InjuryTicketMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InjuryTicketMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, injuryticket.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, injuryticket.FieldUpdatedAt)
	}
	if m.report_id != nil {
		fields = append(fields, injuryticket.FieldReportID)
	}
	if m.status != nil {
		fields = append(fields, injuryticket.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InjuryTicketMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case injuryticket.FieldCreatedAt:
		return m.CreatedAt()
	case injuryticket.FieldUpdatedAt:
		return m.UpdatedAt()
	case injuryticket.FieldReportID:
		return m.ReportID()
	case injuryticket.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InjuryTicketMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case injuryticket.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case injuryticket.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case injuryticket.FieldReportID:
		return m.OldReportID(ctx)
	case injuryticket.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown InjuryTicket field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InjuryTicketMutation) SetField(name string, value ent.Value) error {
	switch name {
	case injuryticket.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case injuryticket.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case injuryticket.FieldReportID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case injuryticket.FieldStatus:
		v, ok := value.(injuryticket.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown InjuryTicket field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InjuryTicketMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InjuryTicketMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InjuryTicketMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown InjuryTicket numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InjuryTicketMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InjuryTicketMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InjuryTicketMutation) ClearField(name string) error {
	return fmt.Errorf("unknown InjuryTicket nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InjuryTicketMutation) ResetField(name string) error {
	switch name {
	case injuryticket.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case injuryticket.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case injuryticket.FieldReportID:
		m.ResetReportID()
		return nil
	case injuryticket.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown InjuryTicket field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InjuryTicketMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InjuryTicketMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InjuryTicketMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InjuryTicketMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InjuryTicketMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InjuryTicketMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InjuryTicketMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown InjuryTicket unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InjuryTicketMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown InjuryTicket edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	first_name    *string
	last_name     *string
	email         *string
	role          *user.Role
	status        *user.Status
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*User, error)
	predicates    []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetFirstName sets the "first_name" field.
func (m *UserMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *UserMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFirstName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ClearFirstName clears the value of the "first_name" field.
func (m *UserMutation) ClearFirstName() {
	m.first_name = nil
	m.clearedFields[user.FieldFirstName] = struct{}{}
}

// FirstNameCleared returns if the "first_name" field was cleared in this mutation.
func (m *UserMutation) FirstNameCleared() bool {
	_, ok := m.clearedFields[user.FieldFirstName]
	return ok
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *UserMutation) ResetFirstName() {
	m.first_name = nil
	delete(m.clearedFields, user.FieldFirstName)
}

// SetLastName sets the "last_name" field.
func (m *UserMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *UserMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ClearLastName clears the value of the "last_name" field.
func (m *UserMutation) ClearLastName() {
	m.last_name = nil
	m.clearedFields[user.FieldLastName] = struct{}{}
}

// LastNameCleared returns if the "last_name" field was cleared in this mutation.
func (m *UserMutation) LastNameCleared() bool {
	_, ok := m.clearedFields[user.FieldLastName]
	return ok
}

// ResetLastName resets all changes to the "last_name" field.
func (m *UserMutation) ResetLastName() {
	m.last_name = nil
	delete(m.clearedFields, user.FieldLastName)
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *UserMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[user.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *UserMutation) EmailCleared() bool {
	_, ok := m.clearedFields[user.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, user.FieldEmail)
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetStatus sets the "status" field.
func (m *UserMutation) SetStatus(u user.Status) {
	m.status = &u
}

// Status returns the value of the "status" field in the mutation.
func (m *UserMutation) Status() (r user.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldStatus(ctx context.Context) (v user.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *UserMutation) ResetStatus() {
	m.status = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.first_name != nil {
		fields = append(fields, user.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, user.FieldLastName)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.status != nil {
		fields = append(fields, user.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldFirstName:
		return m.FirstName()
	case user.FieldLastName:
		return m.LastName()
	case user.FieldEmail:
		return m.Email()
	case user.FieldRole:
		return m.Role()
	case user.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldFirstName:
		return m.OldFirstName(ctx)
	case user.FieldLastName:
		return m.OldLastName(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case user.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldStatus:
		v, ok := value.(user.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldFirstName) {
		fields = append(fields, user.FieldFirstName)
	}
	if m.FieldCleared(user.FieldLastName) {
		fields = append(fields, user.FieldLastName)
	}
	if m.FieldCleared(user.FieldEmail) {
		fields = append(fields, user.FieldEmail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldFirstName:
		m.ClearFirstName()
		return nil
	case user.FieldLastName:
		m.ClearLastName()
		return nil
	case user.FieldEmail:
		m.ClearEmail()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldFirstName:
		m.ResetFirstName()
		return nil
	case user.FieldLastName:
		m.ResetLastName()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}
