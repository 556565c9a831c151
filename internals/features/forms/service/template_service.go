// file: internals/features/forms/service/template_service.go
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditModel "github.com/artiechokes/youth-ministry-admin-suite/internals/features/audit/model"
	formDTO "github.com/artiechokes/youth-ministry-admin-suite/internals/features/forms/dto"
	"github.com/artiechokes/youth-ministry-admin-suite/internals/features/forms/engine"
	formModel "github.com/artiechokes/youth-ministry-admin-suite/internals/features/forms/model"
	helper "github.com/artiechokes/youth-ministry-admin-suite/internals/helpers"
)

/* =========================================================
   Template service — create / update / archive form templates
========================================================= */

// CreateForm builds a template and its fields in one transaction.
// Fields with a blank label are silently dropped, never persisted.
func CreateForm(db *gorm.DB, actorID uuid.UUID, req formDTO.CreateFormRequest) (*formModel.FormModel, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Form name is required")
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = formModel.FormCategoryGeneral
	}
	if !formModel.IsFormCategory(category) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Unknown form category")
	}

	form := formModel.FormModel{
		FormName:        name,
		FormDescription: helper.ToOptional(req.Description),
		FormCategory:    category,
		FormStatus:      formModel.FormStatusActive,
		FormCreatedBy:   &actorID,
	}
	if err := applyValidityCreate(&form, req); err != nil {
		return nil, err
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&form).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create form")
		}

		order := 0
		for _, input := range req.Fields {
			field, ok := buildField(form.FormID, input, order)
			if !ok {
				continue
			}
			if err := tx.Create(&field).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to create form field")
			}
			form.Fields = append(form.Fields, field)
			order++
		}

		return auditModel.Record(tx, actorID, auditModel.ActionCreate, "Form", form.FormID, nil, form)
	}); err != nil {
		return nil, err
	}

	return &form, nil
}

// UpdateForm applies a metadata patch, field upserts and removals as a
// single atomic unit. Incoming field positions become the new order;
// removed fields are archived, not deleted, so old submissions keep
// resolving.
func UpdateForm(db *gorm.DB, actorID uuid.UUID, formID uuid.UUID, req formDTO.UpdateFormRequest) (*formModel.FormModel, error) {
	var form formModel.FormModel

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("form_id = ?", formID).First(&form).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Form not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load form")
		}

		before := form

		if v, present := req.Name.Get(); present {
			if v == nil || strings.TrimSpace(*v) == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Form name cannot be blank")
			}
			form.FormName = strings.TrimSpace(*v)
		}
		if v, present := req.Description.Get(); present {
			if v == nil {
				form.FormDescription = nil
			} else {
				form.FormDescription = helper.ToOptional(*v)
			}
		}
		if v, present := req.Category.Get(); present {
			if v == nil || !formModel.IsFormCategory(*v) {
				return fiber.NewError(fiber.StatusBadRequest, "Unknown form category")
			}
			form.FormCategory = *v
		}

		if err := applyValidityPatch(&form, req); err != nil {
			return err
		}

		if err := tx.Save(&form).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update form")
		}

		if req.Fields != nil {
			if err := upsertFields(tx, &form, *req.Fields); err != nil {
				return err
			}
		}

		for _, removedID := range req.RemovedFieldIDs {
			now := time.Now().UTC()
			if err := tx.Model(&formModel.FormFieldModel{}).
				Where("field_id = ? AND field_form_id = ? AND field_archived_at IS NULL", removedID, form.FormID).
				Update("field_archived_at", now).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to remove form field")
			}
		}

		return auditModel.Record(tx, actorID, auditModel.ActionUpdate, "Form", form.FormID, before, form)
	})
	if err != nil {
		return nil, err
	}

	if err := db.Where("field_form_id = ? AND field_archived_at IS NULL", form.FormID).
		Order("field_order ASC").
		Find(&form.Fields).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to reload form fields")
	}
	return &form, nil
}

// ArchiveForm stops new assignments; existing assignments and
// submissions stay viewable.
func ArchiveForm(db *gorm.DB, actorID uuid.UUID, formID uuid.UUID) (*formModel.FormModel, error) {
	var form formModel.FormModel

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("form_id = ?", formID).First(&form).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Form not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load form")
		}
		if form.FormStatus == formModel.FormStatusArchived {
			return fiber.NewError(fiber.StatusConflict, "Form is already archived")
		}

		form.FormStatus = formModel.FormStatusArchived
		if err := tx.Save(&form).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to archive form")
		}
		return auditModel.Record(tx, actorID, auditModel.ActionArchive, "Form", form.FormID, nil, nil)
	})
	if err != nil {
		return nil, err
	}
	return &form, nil
}

/* =========================================================
   internals
========================================================= */

func buildField(formID uuid.UUID, input formDTO.FieldInput, order int) (formModel.FormFieldModel, bool) {
	label := strings.TrimSpace(input.Label)
	if label == "" {
		return formModel.FormFieldModel{}, false
	}
	if !engine.IsFieldType(input.Type) {
		return formModel.FormFieldModel{}, false
	}

	return formModel.FormFieldModel{
		FieldFormID:      formID,
		FieldLabel:       label,
		FieldType:        input.Type,
		FieldRequired:    input.Required && input.Type != engine.TypeSection,
		FieldHelpText:    helper.ToOptional(input.HelpText),
		FieldOptionsJSON: engine.BuildOptionsJSON(engine.ParseOptionInput(input.Options), input.AllowOther),
		FieldOrder:       order,
	}, true
}

// upsertFields matches incoming fields to stored ones by id. Known ids
// update in place, unknown ids are ignored as stale, absent ids create
// new fields. List position becomes the stored order.
func upsertFields(tx *gorm.DB, form *formModel.FormModel, inputs []formDTO.FieldInput) error {
	var existing []formModel.FormFieldModel
	if err := tx.Where("field_form_id = ?", form.FormID).Find(&existing).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load form fields")
	}
	byID := make(map[uuid.UUID]*formModel.FormFieldModel, len(existing))
	for i := range existing {
		byID[existing[i].FieldID] = &existing[i]
	}

	order := 0
	for _, input := range inputs {
		label := strings.TrimSpace(input.Label)
		if label == "" || !engine.IsFieldType(input.Type) {
			continue
		}

		if input.ID != nil {
			stored, known := byID[*input.ID]
			if !known {
				// stale id from a concurrent edit, skip
				continue
			}
			stored.FieldLabel = label
			stored.FieldType = input.Type
			stored.FieldRequired = input.Required && input.Type != engine.TypeSection
			stored.FieldHelpText = helper.ToOptional(input.HelpText)
			stored.FieldOptionsJSON = engine.BuildOptionsJSON(engine.ParseOptionInput(input.Options), input.AllowOther)
			stored.FieldOrder = order
			if err := tx.Save(stored).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to update form field")
			}
			order++
			continue
		}

		field, ok := buildField(form.FormID, input, order)
		if !ok {
			continue
		}
		if err := tx.Create(&field).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create form field")
		}
		order++
	}
	return nil
}

func applyValidityCreate(form *formModel.FormModel, req formDTO.CreateFormRequest) error {
	if req.ValidUntil != nil && *req.ValidUntil != "" {
		until, ok := formDTO.ParseDueAt(req.ValidUntil)
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid valid-until date")
		}
		form.FormValidUntil = until
		return nil
	}
	if req.ValidForValue != nil || req.ValidForUnit != nil {
		if req.ValidForValue == nil || *req.ValidForValue <= 0 ||
			req.ValidForUnit == nil || !formModel.IsValidForUnit(*req.ValidForUnit) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid validity window")
		}
		form.FormValidForValue = req.ValidForValue
		form.FormValidForUnit = req.ValidForUnit
	}
	return nil
}

// Validity patch precedence: a non-null valid_until in the request
// selects the fixed policy and clears the relative window; non-null
// window values select the relative policy and clear the fixed date.
// Explicit nulls clear only the component they name.
func applyValidityPatch(form *formModel.FormModel, req formDTO.UpdateFormRequest) error {
	if v, present := req.ValidUntil.Get(); present {
		if v == nil {
			form.FormValidUntil = nil
		} else {
			until, ok := formDTO.ParseDueAt(v)
			if !ok {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid valid-until date")
			}
			form.FormValidUntil = until
			form.FormValidForValue = nil
			form.FormValidForUnit = nil
			return nil
		}
	}

	valuePatch, valuePresent := req.ValidForValue.Get()
	unitPatch, unitPresent := req.ValidForUnit.Get()
	if !valuePresent && !unitPresent {
		return nil
	}

	if valuePresent {
		if valuePatch == nil {
			form.FormValidForValue = nil
		} else {
			if *valuePatch <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid validity window")
			}
			form.FormValidForValue = valuePatch
		}
	}
	if unitPresent {
		if unitPatch == nil {
			form.FormValidForUnit = nil
		} else {
			if !formModel.IsValidForUnit(*unitPatch) {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid validity unit")
			}
			form.FormValidForUnit = unitPatch
		}
	}

	// a live relative window displaces any stored fixed date
	if form.FormValidForValue != nil && form.FormValidForUnit != nil {
		form.FormValidUntil = nil
	}
	return nil
}
