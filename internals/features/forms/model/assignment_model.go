// file: internals/features/forms/model/assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type FormAssignmentModel struct {
	AssignmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:assignment_id" json:"assignment_id"`

	AssignmentFormID uuid.UUID `gorm:"type:uuid;not null;index;column:assignment_form_id" json:"assignment_form_id"`
	AssignmentTeenID uuid.UUID `gorm:"type:uuid;not null;index;column:assignment_teen_id" json:"assignment_teen_id"`

	AssignmentAssignedBy *uuid.UUID `gorm:"type:uuid;column:assignment_assigned_by" json:"assignment_assigned_by,omitempty"`

	// Optional event link feeding $eventName / $eventDate / $eventLocation.
	AssignmentEventID *uuid.UUID `gorm:"type:uuid;column:assignment_event_id" json:"assignment_event_id,omitempty"`

	AssignmentDueAt    *time.Time `gorm:"type:timestamptz;column:assignment_due_at"      json:"assignment_due_at,omitempty"`
	AssignmentRequired bool       `gorm:"not null;default:false;column:assignment_required" json:"assignment_required"`

	// Stamped in the same transaction that writes the submission.
	AssignmentCompletedAt *time.Time `gorm:"type:timestamptz;column:assignment_completed_at" json:"assignment_completed_at,omitempty"`

	AssignmentArchivedAt *time.Time `gorm:"type:timestamptz;index;column:assignment_archived_at" json:"assignment_archived_at,omitempty"`

	AssignmentCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:assignment_created_at" json:"assignment_created_at"`
	AssignmentUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:assignment_updated_at" json:"assignment_updated_at"`
}

func (FormAssignmentModel) TableName() string { return "form_assignments" }

// Submissions are immutable once written.
type FormSubmissionModel struct {
	SubmissionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:submission_id" json:"submission_id"`

	// One submission per assignment, enforced at the database too.
	SubmissionAssignmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:submission_assignment_id" json:"submission_assignment_id"`

	SubmissionFormID uuid.UUID `gorm:"type:uuid;not null;index;column:submission_form_id" json:"submission_form_id"`
	SubmissionTeenID uuid.UUID `gorm:"type:uuid;not null;index;column:submission_teen_id" json:"submission_teen_id"`

	SubmissionSubmittedBy *uuid.UUID `gorm:"type:uuid;column:submission_submitted_by" json:"submission_submitted_by,omitempty"`

	SubmissionDataJSON datatypes.JSON `gorm:"not null;column:submission_data_json" json:"submission_data_json"`

	SubmissionSubmittedAt time.Time  `gorm:"type:timestamptz;not null;column:submission_submitted_at" json:"submission_submitted_at"`
	SubmissionExpiresAt   *time.Time `gorm:"type:timestamptz;column:submission_expires_at"            json:"submission_expires_at,omitempty"`

	SubmissionCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:submission_created_at" json:"submission_created_at"`
}

func (FormSubmissionModel) TableName() string { return "form_submissions" }
