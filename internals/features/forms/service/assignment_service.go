// file: internals/features/forms/service/assignment_service.go
package service

import (
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	auditModel "github.com/artiechokes/youth-ministry-admin-suite/internals/features/audit/model"
	formDTO "github.com/artiechokes/youth-ministry-admin-suite/internals/features/forms/dto"
	"github.com/artiechokes/youth-ministry-admin-suite/internals/features/forms/engine"
	formModel "github.com/artiechokes/youth-ministry-admin-suite/internals/features/forms/model"
	teenModel "github.com/artiechokes/youth-ministry-admin-suite/internals/features/roster/teens/model"
	helper "github.com/artiechokes/youth-ministry-admin-suite/internals/helpers"
)

/* =========================================================
   Reassignment policy
========================================================= */

var ErrAlreadyAssigned = errors.New("an active assignment already exists for this form and teen")

// DecideReassign settles whether a new assignment may be created over
// an existing one. An expired completed assignment is always renewable.
// Anything still live (pending, or completed and unexpired) needs the
// caller to force it with allowReassign; without the flag the call
// fails rather than silently overwriting.
func DecideReassign(hasExisting, hasSubmission bool, expiresAt *time.Time, allowReassign bool, now time.Time) (archivePrior bool, err error) {
	if !hasExisting {
		return false, nil
	}
	expired := hasSubmission && expiresAt != nil && now.After(*expiresAt)
	if expired {
		return true, nil
	}
	if allowReassign {
		return true, nil
	}
	return false, ErrAlreadyAssigned
}

/* =========================================================
   Assignment operations
========================================================= */

// AssignForm creates a new assignment, archiving any prior one the
// reassignment policy lets it supersede. One transaction: a reader
// never sees two live assignments for the same teen and form.
func AssignForm(db *gorm.DB, actorID uuid.UUID, formID uuid.UUID, req formDTO.AssignFormRequest) (*formModel.FormAssignmentModel, error) {
	dueAt, ok := formDTO.ParseDueAt(req.DueAt)
	if !ok {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid due date")
	}

	var assignment formModel.FormAssignmentModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var form formModel.FormModel
		if err := tx.Where("form_id = ?", formID).First(&form).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Form not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load form")
		}
		if form.FormStatus != formModel.FormStatusActive {
			return fiber.NewError(fiber.StatusBadRequest, "Archived forms cannot be assigned")
		}

		var teen teenModel.TeenModel
		if err := tx.Where("teen_id = ? AND teen_archived_at IS NULL", req.TeenID).First(&teen).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Teen not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load teen")
		}

		var prior formModel.FormAssignmentModel
		hasPrior := true
		err := tx.Where("assignment_form_id = ? AND assignment_teen_id = ? AND assignment_archived_at IS NULL", formID, req.TeenID).
			Order("assignment_created_at DESC").
			First(&prior).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			hasPrior = false
		} else if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check existing assignments")
		}

		var expiresAt *time.Time
		hasSubmission := false
		if hasPrior {
			var submission formModel.FormSubmissionModel
			err := tx.Where("submission_assignment_id = ?", prior.AssignmentID).First(&submission).Error
			switch {
			case err == nil:
				hasSubmission = true
				expiresAt = submission.SubmissionExpiresAt
			case errors.Is(err, gorm.ErrRecordNotFound):
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to check submissions")
			}
		}

		archivePrior, decisionErr := DecideReassign(hasPrior, hasSubmission, expiresAt, req.AllowReassign, time.Now())
		if decisionErr != nil {
			return fiber.NewError(fiber.StatusConflict, "This form is already assigned to this teen")
		}
		if archivePrior {
			now := time.Now().UTC()
			prior.AssignmentArchivedAt = &now
			if err := tx.Save(&prior).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to archive prior assignment")
			}
		}

		assignment = formModel.FormAssignmentModel{
			AssignmentFormID:     formID,
			AssignmentTeenID:     req.TeenID,
			AssignmentAssignedBy: &actorID,
			AssignmentEventID:    req.EventID,
			AssignmentDueAt:      dueAt,
			AssignmentRequired:   req.Required,
		}
		if err := tx.Create(&assignment).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create assignment")
		}
		return auditModel.Record(tx, actorID, auditModel.ActionCreate, "FormAssignment", assignment.AssignmentID, nil, assignment)
	})
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// SubmitForm records the one submission an assignment gets. The insert
// and the completion stamp commit together or not at all; a concurrent
// duplicate loses on the unique index and reads as AlreadyCompleted.
func SubmitForm(db *gorm.DB, actorID uuid.UUID, assignmentID uuid.UUID, data map[string]interface{}) (*formModel.FormSubmissionModel, error) {
	var submission formModel.FormSubmissionModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var assignment formModel.FormAssignmentModel
		if err := tx.Where("assignment_id = ? AND assignment_archived_at IS NULL", assignmentID).
			First(&assignment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Assignment not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load assignment")
		}

		var existing int64
		if err := tx.Model(&formModel.FormSubmissionModel{}).
			Where("submission_assignment_id = ?", assignment.AssignmentID).
			Count(&existing).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check submissions")
		}
		if existing > 0 {
			return fiber.NewError(fiber.StatusConflict, "This form has already been completed")
		}

		var form formModel.FormModel
		if err := tx.Where("form_id = ?", assignment.AssignmentFormID).First(&form).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load form")
		}

		fields, err := LoadFieldSpecs(tx, form.FormID)
		if err != nil {
			return err
		}
		if err := engine.ValidateSubmission(fields, data); err != nil {
			var fe *engine.FieldError
			if errors.As(err, &fe) {
				return fiber.NewError(fiber.StatusBadRequest, fe.Error())
			}
			return fiber.NewError(fiber.StatusBadRequest, "Submission failed validation")
		}

		raw, err := sonic.Marshal(data)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Submission data could not be encoded")
		}

		now := time.Now().UTC()
		submission = formModel.FormSubmissionModel{
			SubmissionAssignmentID: assignment.AssignmentID,
			SubmissionFormID:       form.FormID,
			SubmissionTeenID:       assignment.AssignmentTeenID,
			SubmissionSubmittedBy:  &actorID,
			SubmissionDataJSON:     datatypes.JSON(raw),
			SubmissionSubmittedAt:  now,
			SubmissionExpiresAt: engine.ResolveExpiration(now, engine.ValidityPolicy{
				ValidForValue: form.FormValidForValue,
				ValidForUnit:  form.FormValidForUnit,
				ValidUntil:    form.FormValidUntil,
			}),
		}
		if err := tx.Create(&submission).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "This form has already been completed")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to record submission")
		}

		assignment.AssignmentCompletedAt = &now
		if err := tx.Save(&assignment).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to complete assignment")
		}
		return auditModel.Record(tx, actorID, auditModel.ActionCreate, "FormSubmission", submission.SubmissionID, nil, nil)
	})
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// UnassignForm archives a pending assignment. Completed assignments are
// history; they can only be superseded through reassignment.
func UnassignForm(db *gorm.DB, actorID uuid.UUID, assignmentID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var assignment formModel.FormAssignmentModel
		if err := tx.Where("assignment_id = ? AND assignment_archived_at IS NULL", assignmentID).
			First(&assignment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Assignment not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load assignment")
		}

		var submissions int64
		if err := tx.Model(&formModel.FormSubmissionModel{}).
			Where("submission_assignment_id = ?", assignment.AssignmentID).
			Count(&submissions).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check submissions")
		}
		if submissions > 0 {
			return fiber.NewError(fiber.StatusConflict, "Completed assignments cannot be unassigned")
		}

		now := time.Now().UTC()
		assignment.AssignmentArchivedAt = &now
		if err := tx.Save(&assignment).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to unassign form")
		}
		return auditModel.Record(tx, actorID, auditModel.ActionArchive, "FormAssignment", assignment.AssignmentID, nil, nil)
	})
}

/* =========================================================
   shared loaders
========================================================= */

// LoadFieldSpecs fetches a form's live fields in display order, shaped
// for the validator.
func LoadFieldSpecs(tx *gorm.DB, formID uuid.UUID) ([]engine.FieldSpec, error) {
	var fields []formModel.FormFieldModel
	if err := tx.Where("field_form_id = ? AND field_archived_at IS NULL", formID).
		Order("field_order ASC").
		Find(&fields).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load form fields")
	}

	specs := make([]engine.FieldSpec, 0, len(fields))
	for _, f := range fields {
		specs = append(specs, engine.FieldSpec{
			ID:       f.FieldID.String(),
			Label:    f.FieldLabel,
			Type:     f.FieldType,
			Required: f.FieldRequired,
			Options:  engine.DecodeOptions(f.FieldOptionsJSON),
		})
	}
	return specs, nil
}
