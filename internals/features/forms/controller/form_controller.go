// file: internals/features/forms/controller/form_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	formDTO "github.com/artiechokes/youth-ministry-admin-suite/internals/features/forms/dto"
	formModel "github.com/artiechokes/youth-ministry-admin-suite/internals/features/forms/model"
	formService "github.com/artiechokes/youth-ministry-admin-suite/internals/features/forms/service"
	helper "github.com/artiechokes/youth-ministry-admin-suite/internals/helpers"
	authMiddleware "github.com/artiechokes/youth-ministry-admin-suite/internals/middlewares/auth"
)

type FormController struct {
	DB *gorm.DB
}

// GET /api/a/forms?category=&with_archived= (forms_view)
func (h *FormController) List(c *fiber.Ctx) error {
	q := h.DB.Model(&formModel.FormModel{}).Order("form_name ASC")

	if !strings.EqualFold(c.Query("with_archived"), "true") {
		q = q.Where("form_status = ?", formModel.FormStatusActive)
	}
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		if !formModel.IsFormCategory(category) {
			return helper.Error(c, fiber.StatusBadRequest, "Unknown form category")
		}
		q = q.Where("form_category = ?", category)
	}

	var forms []formModel.FormModel
	if err := q.Find(&forms).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list forms")
	}
	return helper.Success(c, "OK", forms)
}

// GET /api/a/forms/:id (forms_view)
func (h *FormController) Get(c *fiber.Ctx) error {
	formID, err := parseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var form formModel.FormModel
	if err := h.DB.Where("form_id = ?", formID).First(&form).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Form not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load form")
	}
	if err := h.DB.Where("field_form_id = ? AND field_archived_at IS NULL", form.FormID).
		Order("field_order ASC").
		Find(&form.Fields).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load form fields")
	}
	return helper.Success(c, "OK", form)
}

// POST /api/a/forms (forms_edit)
func (h *FormController) Create(c *fiber.Ctx) error {
	actorID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return err
	}

	var req formDTO.CreateFormRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}

	form, err := formService.CreateForm(h.DB, actorID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Form created", form)
}

// PATCH /api/a/forms/:id (forms_edit)
func (h *FormController) Update(c *fiber.Ctx) error {
	actorID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return err
	}
	formID, err := parseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req formDTO.UpdateFormRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}

	form, err := formService.UpdateForm(h.DB, actorID, formID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Form updated", form)
}

// POST /api/a/forms/:id/archive (forms_manage)
func (h *FormController) Archive(c *fiber.Ctx) error {
	actorID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return err
	}
	formID, err := parseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	form, err := formService.ArchiveForm(h.DB, actorID, formID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Form archived", form)
}

func parseIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	return id, nil
}
