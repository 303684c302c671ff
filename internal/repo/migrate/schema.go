// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// InjuryAssessmentsColumns holds the columns for the "injury_assessments" table.
	InjuryAssessmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "report_id", Type: field.TypeUUID, Unique: true},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "diagnosis", Type: field.TypeString, Size: 2147483647},
		{Name: "diagnosis_details", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"MINOR", "MODERATE", "SEVERE", "CRITICAL"}},
		{Name: "treatment_plan", Type: field.TypeString, Size: 2147483647},
		{Name: "medications", Type: field.TypeJSON, Nullable: true},
		{Name: "rehabilitation_protocol", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "restrictions", Type: field.TypeJSON, Nullable: true},
		{Name: "estimated_recovery", Type: field.TypeJSON, Nullable: true},
		{Name: "follow_up_required", Type: field.TypeBool, Default: true},
		{Name: "appointment", Type: field.TypeJSON, Nullable: true},
		{Name: "clearance_status", Type: field.TypeEnum, Enums: []string{"NO_ACTIVITY", "LIMITED_ACTIVITY", "FULL_CLEARANCE_PENDING", "FULLY_CLEARED"}, Default: "FULL_CLEARANCE_PENDING"},
		{Name: "test_results", Type: field.TypeJSON, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// InjuryAssessmentsTable holds the schema information for the "injury_assessments" table.
	InjuryAssessmentsTable = &schema.Table{
		Name:       "injury_assessments",
		Columns:    InjuryAssessmentsColumns,
		PrimaryKey: []*schema.Column{InjuryAssessmentsColumns[0]},
	}
	// InjuryReportsColumns holds the columns for the "injury_reports" table.
	InjuryReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "athlete_id", Type: field.TypeUUID},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "injury_type", Type: field.TypeString, Size: 100},
		{Name: "body_part", Type: field.TypeString, Size: 100},
		{Name: "pain_level", Type: field.TypeInt},
		{Name: "date_of_injury", Type: field.TypeTime},
		{Name: "activity_context", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "symptoms", Type: field.TypeJSON, Nullable: true},
		{Name: "affecting_performance", Type: field.TypeEnum, Enums: []string{"CANNOT_PLAY", "LIMITED", "MINIMAL", "NONE"}},
		{Name: "previously_injured", Type: field.TypeBool, Default: false},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "images", Type: field.TypeJSON, Nullable: true},
	}
	// InjuryReportsTable holds the schema information for the "injury_reports" table.
	InjuryReportsTable = &schema.Table{
		Name:       "injury_reports",
		Columns:    InjuryReportsColumns,
		PrimaryKey: []*schema.Column{InjuryReportsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "injuryreport_athlete_id",
				Unique:  false,
				Columns: []*schema.Column{InjuryReportsColumns[3]},
			},
			{
				Name:    "injuryreport_doctor_id",
				Unique:  false,
				Columns: []*schema.Column{InjuryReportsColumns[4]},
			},
		},
	}
	// InjuryShortMessagesColumns holds the columns for the "injury_short_messages" table.
	InjuryShortMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "report_id", Type: field.TypeUUID},
		{Name: "response", Type: field.TypeString, Size: 2147483647},
		{Name: "medication", Type: field.TypeString, Size: 255},
		{Name: "doctor_note", Type: field.TypeString, Size: 2147483647},
		{Name: "appointment_date", Type: field.TypeTime},
		{Name: "appointment_time", Type: field.TypeString, Size: 20},
	}
	// InjuryShortMessagesTable holds the schema information for the "injury_short_messages" table.
	InjuryShortMessagesTable = &schema.Table{
		Name:       "injury_short_messages",
		Columns:    InjuryShortMessagesColumns,
		PrimaryKey: []*schema.Column{InjuryShortMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "injuryshortmessage_report_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{InjuryShortMessagesColumns[2], InjuryShortMessagesColumns[1]},
			},
		},
	}
	// InjuryTicketsColumns holds the columns for the "injury_tickets" table.
	InjuryTicketsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "report_id", Type: field.TypeUUID, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"OPEN", "IN_PROGRESS", "CLOSED"}, Default: "OPEN"},
	}
	// InjuryTicketsTable holds the schema information for the "injury_tickets" table.
	InjuryTicketsTable = &schema.Table{
		Name:       "injury_tickets",
		Columns:    InjuryTicketsColumns,
		PrimaryKey: []*schema.Column{InjuryTicketsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "injuryticket_status",
				Unique:  false,
				Columns: []*schema.Column{InjuryTicketsColumns[4]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "first_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "last_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "email", Type: field.TypeString, Unique: true, Nullable: true, Size: 255},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"athlete", "doctor", "admin"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ACTIVE", "SUSPENDED"}, Default: "ACTIVE"},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_role_status",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[6], UsersColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		InjuryAssessmentsTable,
		InjuryReportsTable,
		InjuryShortMessagesTable,
		InjuryTicketsTable,
		UsersTable,
	}
)

func init() {
}
