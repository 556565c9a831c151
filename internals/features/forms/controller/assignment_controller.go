// file: internals/features/forms/controller/assignment_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventModel "github.com/artiechokes/youth-ministry-admin-suite/internals/features/events/model"
	formDTO "github.com/artiechokes/youth-ministry-admin-suite/internals/features/forms/dto"
	"github.com/artiechokes/youth-ministry-admin-suite/internals/features/forms/engine"
	formModel "github.com/artiechokes/youth-ministry-admin-suite/internals/features/forms/model"
	formService "github.com/artiechokes/youth-ministry-admin-suite/internals/features/forms/service"
	teenModel "github.com/artiechokes/youth-ministry-admin-suite/internals/features/roster/teens/model"
	helper "github.com/artiechokes/youth-ministry-admin-suite/internals/helpers"
	authMiddleware "github.com/artiechokes/youth-ministry-admin-suite/internals/middlewares/auth"
)

type AssignmentController struct {
	DB *gorm.DB
}

// POST /api/a/forms/:id/assignments (forms_edit)
func (h *AssignmentController) Assign(c *fiber.Ctx) error {
	actorID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return err
	}
	formID, err := parseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req formDTO.AssignFormRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if req.TeenID == uuid.Nil {
		return helper.Error(c, fiber.StatusBadRequest, "teen_id is required")
	}

	assignment, err := formService.AssignForm(h.DB, actorID, formID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Form assigned", assignment)
}

// POST /api/a/assignments/:id/submissions (forms_edit)
func (h *AssignmentController) Submit(c *fiber.Ctx) error {
	actorID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return err
	}
	assignmentID, err := parseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req formDTO.SubmitFormRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if req.Data == nil {
		return helper.Error(c, fiber.StatusBadRequest, "data is required")
	}

	submission, err := formService.SubmitForm(h.DB, actorID, assignmentID, req.Data)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Submission recorded", submission)
}

// POST /api/a/assignments/:id/unassign (forms_edit)
func (h *AssignmentController) Unassign(c *fiber.Ctx) error {
	actorID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return err
	}
	assignmentID, err := parseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := formService.UnassignForm(h.DB, actorID, assignmentID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Assignment removed", nil)
}

// GET /api/a/teens/:id/forms (forms_view)
// Every live assignment for the teen with its derived display status.
func (h *AssignmentController) TeenAssignments(c *fiber.Ctx) error {
	teenID, err := parseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var teen teenModel.TeenModel
	if err := h.DB.Where("teen_id = ?", teenID).First(&teen).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Teen not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load teen")
	}

	var assignments []formModel.FormAssignmentModel
	if err := h.DB.Where("assignment_teen_id = ? AND assignment_archived_at IS NULL", teenID).
		Order("assignment_created_at DESC").
		Find(&assignments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list assignments")
	}

	now := time.Now()
	views := make([]formDTO.AssignmentView, 0, len(assignments))
	for _, a := range assignments {
		var form formModel.FormModel
		if err := h.DB.Select("form_id, form_name").
			Where("form_id = ?", a.AssignmentFormID).
			First(&form).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to load form")
		}

		var expiresAt *time.Time
		hasSubmission := false
		var submission formModel.FormSubmissionModel
		err := h.DB.Where("submission_assignment_id = ?", a.AssignmentID).First(&submission).Error
		switch {
		case err == nil:
			hasSubmission = true
			expiresAt = submission.SubmissionExpiresAt
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to load submissions")
		}

		views = append(views, formDTO.AssignmentView{
			AssignmentID: a.AssignmentID,
			FormID:       form.FormID,
			FormName:     form.FormName,
			TeenID:       teen.TeenID,
			TeenName:     teen.FullName(),
			DueAt:        a.AssignmentDueAt,
			Required:     a.AssignmentRequired,
			CompletedAt:  a.AssignmentCompletedAt,
			ExpiresAt:    expiresAt,
			Status:       engine.DeriveStatus(hasSubmission, expiresAt, a.AssignmentDueAt, now),
		})
	}

	return helper.Success(c, "OK", views)
}

// GET /api/a/assignments/:id/summary (forms_view)
// Resolved labels and display values for a summary or print view.
func (h *AssignmentController) Summary(c *fiber.Ctx) error {
	assignmentID, err := parseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var assignment formModel.FormAssignmentModel
	if err := h.DB.Where("assignment_id = ?", assignmentID).First(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Assignment not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load assignment")
	}

	var teen teenModel.TeenModel
	if err := h.DB.Where("teen_id = ?", assignment.AssignmentTeenID).First(&teen).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load teen")
	}

	var event *eventModel.EventModel
	if assignment.AssignmentEventID != nil {
		var loaded eventModel.EventModel
		if err := h.DB.Where("event_id = ?", *assignment.AssignmentEventID).First(&loaded).Error; err == nil {
			event = &loaded
		}
	}

	data := map[string]interface{}{}
	var submittedAt *time.Time
	var submission formModel.FormSubmissionModel
	err = h.DB.Where("submission_assignment_id = ?", assignment.AssignmentID).First(&submission).Error
	switch {
	case err == nil:
		if err := sonic.Unmarshal(submission.SubmissionDataJSON, &data); err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Stored submission could not be decoded")
		}
		submittedAt = &submission.SubmissionSubmittedAt
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load submission")
	}

	// archived fields included: the history must keep resolving
	var storedFields []formModel.FormFieldModel
	if err := h.DB.Where("field_form_id = ?", assignment.AssignmentFormID).
		Order("field_order ASC").
		Find(&storedFields).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load form fields")
	}

	attrs := engine.BuildTeenVariables(&teen, event)
	overrides := engine.ExtractOverrides(data)

	rows := make([]formDTO.SummaryRow, 0, len(storedFields))
	for _, f := range storedFields {
		if f.FieldArchivedAt != nil {
			if _, answered := data[f.FieldID.String()]; !answered {
				continue
			}
		}
		spec := engine.FieldSpec{
			ID:       f.FieldID.String(),
			Label:    f.FieldLabel,
			Type:     f.FieldType,
			Required: f.FieldRequired,
			Options:  engine.DecodeOptions(f.FieldOptionsJSON),
		}
		row := formDTO.SummaryRow{
			FieldID: f.FieldID,
			Label:   engine.ResolveText(f.FieldLabel, attrs, overrides),
			Type:    f.FieldType,
			Value:   engine.DisplayValue(spec, data),
		}
		if f.FieldHelpText != nil {
			row.HelpText = engine.ResolveText(*f.FieldHelpText, attrs, overrides)
		}
		rows = append(rows, row)
	}

	return helper.Success(c, "OK", fiber.Map{
		"assignment_id": assignment.AssignmentID,
		"teen_name":     teen.FullName(),
		"submitted_at":  submittedAt,
		"rows":          rows,
	})
}

// GET /api/a/submissions/:id/signature/:fieldId (forms_view)
// Drawn signatures come back as a webp raster for the printable view.
func (h *AssignmentController) SignatureImage(c *fiber.Ctx) error {
	submissionID, err := parseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var submission formModel.FormSubmissionModel
	if err := h.DB.Where("submission_id = ?", submissionID).First(&submission).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Submission not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load submission")
	}

	data := map[string]interface{}{}
	if err := sonic.Unmarshal(submission.SubmissionDataJSON, &data); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Stored submission could not be decoded")
	}

	sig, ok := data[c.Params("fieldId")].(map[string]interface{})
	if !ok {
		return helper.Error(c, fiber.StatusNotFound, "No signature for this field")
	}
	dataURL, _ := sig["dataUrl"].(string)
	if sig["mode"] != "draw" || dataURL == "" {
		return helper.Error(c, fiber.StatusNotFound, "No drawn signature for this field")
	}

	img, err := engine.RenderSignatureImage(dataURL)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Signature could not be rendered")
	}

	c.Set(fiber.HeaderContentType, "image/webp")
	return c.Send(img)
}
