// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/athletiq/athletiq_backend/internal/repo/injuryassessment"
	"github.com/athletiq/athletiq_backend/internal/repo/injuryreport"
	"github.com/athletiq/athletiq_backend/internal/repo/injuryshortmessage"
	"github.com/athletiq/athletiq_backend/internal/repo/injuryticket"
	"github.com/athletiq/athletiq_backend/internal/repo/user"
	"github.com/athletiq/athletiq_backend/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	injuryassessmentMixin := schema.InjuryAssessment{}.Mixin()
	injuryassessmentMixinFields0 := injuryassessmentMixin[0].Fields()
	_ = injuryassessmentMixinFields0
	injuryassessmentMixinFields1 := injuryassessmentMixin[1].Fields()
	_ = injuryassessmentMixinFields1
	injuryassessmentFields := schema.InjuryAssessment{}.Fields()
	_ = injuryassessmentFields
	// injuryassessmentDescCreatedAt is the schema descriptor for created_at field.
	injuryassessmentDescCreatedAt := injuryassessmentMixinFields1[0].Descriptor()
	// injuryassessment.DefaultCreatedAt holds the default value on creation for the created_at field.
	injuryassessment.DefaultCreatedAt = injuryassessmentDescCreatedAt.Default.(func() time.Time)
	// injuryassessmentDescUpdatedAt is the schema descriptor for updated_at field.
	injuryassessmentDescUpdatedAt := injuryassessmentMixinFields1[1].Descriptor()
	// injuryassessment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	injuryassessment.DefaultUpdatedAt = injuryassessmentDescUpdatedAt.Default.(func() time.Time)
	// injuryassessment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	injuryassessment.UpdateDefaultUpdatedAt = injuryassessmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// injuryassessmentDescFollowUpRequired is the schema descriptor for follow_up_required field.
	injuryassessmentDescFollowUpRequired := injuryassessmentFields[10].Descriptor()
	// injuryassessment.DefaultFollowUpRequired holds the default value on creation for the follow_up_required field.
	injuryassessment.DefaultFollowUpRequired = injuryassessmentDescFollowUpRequired.Default.(bool)
	// injuryassessmentDescID is the schema descriptor for id field.
	injuryassessmentDescID := injuryassessmentMixinFields0[0].Descriptor()
	// injuryassessment.DefaultID holds the default value on creation for the id field.
	injuryassessment.DefaultID = injuryassessmentDescID.Default.(func() uuid.UUID)
	injuryreportMixin := schema.InjuryReport{}.Mixin()
	injuryreportMixinFields0 := injuryreportMixin[0].Fields()
	_ = injuryreportMixinFields0
	injuryreportMixinFields1 := injuryreportMixin[1].Fields()
	_ = injuryreportMixinFields1
	injuryreportFields := schema.InjuryReport{}.Fields()
	_ = injuryreportFields
	// injuryreportDescCreatedAt is the schema descriptor for created_at field.
	injuryreportDescCreatedAt := injuryreportMixinFields1[0].Descriptor()
	// injuryreport.DefaultCreatedAt holds the default value on creation for the created_at field.
	injuryreport.DefaultCreatedAt = injuryreportDescCreatedAt.Default.(func() time.Time)
	// injuryreportDescUpdatedAt is the schema descriptor for updated_at field.
	injuryreportDescUpdatedAt := injuryreportMixinFields1[1].Descriptor()
	// injuryreport.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	injuryreport.DefaultUpdatedAt = injuryreportDescUpdatedAt.Default.(func() time.Time)
	// injuryreport.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	injuryreport.UpdateDefaultUpdatedAt = injuryreportDescUpdatedAt.UpdateDefault.(func() time.Time)
	// injuryreportDescTitle is the schema descriptor for title field.
	injuryreportDescTitle := injuryreportFields[2].Descriptor()
	// injuryreport.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	injuryreport.TitleValidator = injuryreportDescTitle.Validators[0].(func(string) error)
	// injuryreportDescInjuryType is the schema descriptor for injury_type field.
	injuryreportDescInjuryType := injuryreportFields[3].Descriptor()
	// injuryreport.InjuryTypeValidator is a validator for the "injury_type" field. It is called by the builders before save.
	injuryreport.InjuryTypeValidator = injuryreportDescInjuryType.Validators[0].(func(string) error)
	// injuryreportDescBodyPart is the schema descriptor for body_part field.
	injuryreportDescBodyPart := injuryreportFields[4].Descriptor()
	// injuryreport.BodyPartValidator is a validator for the "body_part" field. It is called by the builders before save.
	injuryreport.BodyPartValidator = injuryreportDescBodyPart.Validators[0].(func(string) error)
	// injuryreportDescPainLevel is the schema descriptor for pain_level field.
	injuryreportDescPainLevel := injuryreportFields[5].Descriptor()
	// injuryreport.PainLevelValidator is a validator for the "pain_level" field. It is called by the builders before save.
	injuryreport.PainLevelValidator = func() func(int) error {
		validators := injuryreportDescPainLevel.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(pain_level int) error {
			for _, fn := range fns {
				if err := fn(pain_level); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// injuryreportDescActivityContext is the schema descriptor for activity_context field.
	injuryreportDescActivityContext := injuryreportFields[7].Descriptor()
	// injuryreport.ActivityContextValidator is a validator for the "activity_context" field. It is called by the builders before save.
	injuryreport.ActivityContextValidator = injuryreportDescActivityContext.Validators[0].(func(string) error)
	// injuryreportDescPreviouslyInjured is the schema descriptor for previously_injured field.
	injuryreportDescPreviouslyInjured := injuryreportFields[10].Descriptor()
	// injuryreport.DefaultPreviouslyInjured holds the default value on creation for the previously_injured field.
	injuryreport.DefaultPreviouslyInjured = injuryreportDescPreviouslyInjured.Default.(bool)
	// injuryreportDescID is the schema descriptor for id field.
	injuryreportDescID := injuryreportMixinFields0[0].Descriptor()
	// injuryreport.DefaultID holds the default value on creation for the id field.
	injuryreport.DefaultID = injuryreportDescID.Default.(func() uuid.UUID)
	injuryshortmessageMixin := schema.InjuryShortMessage{}.Mixin()
	injuryshortmessageMixinFields0 := injuryshortmessageMixin[0].Fields()
	_ = injuryshortmessageMixinFields0
	injuryshortmessageMixinFields1 := injuryshortmessageMixin[1].Fields()
	_ = injuryshortmessageMixinFields1
	injuryshortmessageFields := schema.InjuryShortMessage{}.Fields()
	_ = injuryshortmessageFields
	// injuryshortmessageDescCreatedAt is the schema descriptor for created_at field.
	injuryshortmessageDescCreatedAt := injuryshortmessageMixinFields1[0].Descriptor()
	// injuryshortmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	injuryshortmessage.DefaultCreatedAt = injuryshortmessageDescCreatedAt.Default.(func() time.Time)
	// injuryshortmessageDescMedication is the schema descriptor for medication field.
	injuryshortmessageDescMedication := injuryshortmessageFields[2].Descriptor()
	// injuryshortmessage.MedicationValidator is a validator for the "medication" field. It is called by the builders before save.
	injuryshortmessage.MedicationValidator = injuryshortmessageDescMedication.Validators[0].(func(string) error)
	// injuryshortmessageDescAppointmentTime is the schema descriptor for appointment_time field.
	injuryshortmessageDescAppointmentTime := injuryshortmessageFields[5].Descriptor()
	// injuryshortmessage.AppointmentTimeValidator is a validator for the "appointment_time" field. It is called by the builders before save.
	injuryshortmessage.AppointmentTimeValidator = injuryshortmessageDescAppointmentTime.Validators[0].(func(string) error)
	// injuryshortmessageDescID is the schema descriptor for id field.
	injuryshortmessageDescID := injuryshortmessageMixinFields0[0].Descriptor()
	// injuryshortmessage.DefaultID holds the default value on creation for the id field.
	injuryshortmessage.DefaultID = injuryshortmessageDescID.Default.(func() uuid.UUID)
	injuryticketMixin := schema.InjuryTicket{}.Mixin()
	injuryticketMixinFields0 := injuryticketMixin[0].Fields()
	_ = injuryticketMixinFields0
	injuryticketMixinFields1 := injuryticketMixin[1].Fields()
	_ = injuryticketMixinFields1
	injuryticketFields := schema.InjuryTicket{}.Fields()
	_ = injuryticketFields
	// injuryticketDescCreatedAt is the schema descriptor for created_at field.
	injuryticketDescCreatedAt := injuryticketMixinFields1[0].Descriptor()
	// injuryticket.DefaultCreatedAt holds the default value on creation for the created_at field.
	injuryticket.DefaultCreatedAt = injuryticketDescCreatedAt.Default.(func() time.Time)
	// injuryticketDescUpdatedAt is the schema descriptor for updated_at field.
	injuryticketDescUpdatedAt := injuryticketMixinFields1[1].Descriptor()
	// injuryticket.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	injuryticket.DefaultUpdatedAt = injuryticketDescUpdatedAt.Default.(func() time.Time)
	// injuryticket.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	injuryticket.UpdateDefaultUpdatedAt = injuryticketDescUpdatedAt.UpdateDefault.(func() time.Time)
	// injuryticketDescID is the schema descriptor for id field.
	injuryticketDescID := injuryticketMixinFields0[0].Descriptor()
	// injuryticket.DefaultID holds the default value on creation for the id field.
	injuryticket.DefaultID = injuryticketDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[0].Descriptor()
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = userDescFirstName.Validators[0].(func(string) error)
	// userDescLastName is the schema descriptor for last_name field.
	userDescLastName := userFields[1].Descriptor()
	// user.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	user.LastNameValidator = userDescLastName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
