// file: internals/features/roster/teens/controller/teen_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditModel "github.com/artiechokes/youth-ministry-admin-suite/internals/features/audit/model"
	teenDTO "github.com/artiechokes/youth-ministry-admin-suite/internals/features/roster/teens/dto"
	teenModel "github.com/artiechokes/youth-ministry-admin-suite/internals/features/roster/teens/model"
	helper "github.com/artiechokes/youth-ministry-admin-suite/internals/helpers"
	authMiddleware "github.com/artiechokes/youth-ministry-admin-suite/internals/middlewares/auth"
)

type TeenController struct {
	DB *gorm.DB
}

var validate = validator.New()

// POST /api/registrations (public, rate limited)
// Creates a pending teen from the self-service registration form.
func (h *TeenController) Register(c *fiber.Ctx) error {
	var req teenDTO.RegisterTeenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	dob, ok := teenDTO.ParseDOB(strings.TrimSpace(req.DOB))
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid date of birth")
	}

	publicID := helper.GeneratePublicID("T", 6)
	teen := teenModel.TeenModel{
		TeenPublicID:              &publicID,
		TeenFirstName:             strings.TrimSpace(req.FirstName),
		TeenLastName:              strings.TrimSpace(req.LastName),
		TeenDOB:                   dob,
		TeenEmail:                 helper.ToOptional(req.TeenEmail),
		TeenPhone:                 helper.ToOptional(req.TeenPhone),
		TeenAddressLine1:          helper.ToOptional(req.AddressLine1),
		TeenAddressLine2:          helper.ToOptional(req.AddressLine2),
		TeenCity:                  helper.ToOptional(req.City),
		TeenState:                 helper.ToOptional(req.State),
		TeenPostalCode:            helper.ToOptional(req.PostalCode),
		TeenParish:                helper.ToOptional(req.Parish),
		TeenEmergencyContactName:  helper.ToOptional(req.EmergencyName),
		TeenEmergencyContactPhone: helper.ToOptional(req.EmergencyPhone),
		TeenParentName:            helper.ToOptional(req.ParentName),
		TeenParentEmail:           helper.ToOptional(req.ParentEmail),
		TeenParentPhone:           helper.ToOptional(req.ParentPhone),
		TeenParentRelationship:    helper.ToOptional(req.ParentRelationship),
		TeenRegistrationStatus:    teenModel.RegistrationPendingParentVerification,
		TeenRegistrationDataJSON:  req.RegistrationDataJSON,
	}

	if err := h.DB.Create(&teen).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to register")
	}

	// TODO: send parent verification email once the notifications module
	// has a verified sender domain.

	return helper.JsonCreated(c, "Registration received", fiber.Map{
		"teen_id":        teen.TeenID,
		"teen_public_id": teen.TeenPublicID,
	})
}

// GET /api/a/teens?search=&status=&with_archived= (roster_view)
func (h *TeenController) List(c *fiber.Ctx) error {
	// opportunistic sweep: anyone hitting the roster flushes out adults
	teenModel.AutoArchiveAdults(h.DB)

	q := h.DB.Model(&teenModel.TeenModel{}).
		Order("teen_last_name ASC, teen_first_name ASC")

	if !strings.EqualFold(c.Query("with_archived"), "true") {
		q = q.Where("teen_archived_at IS NULL")
	}

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !teenModel.IsRegistrationStatus(status) {
			return helper.Error(c, fiber.StatusBadRequest, "Unknown registration status")
		}
		q = q.Where("teen_registration_status = ?", status)
	}

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where(`
			teen_first_name ILIKE ? OR
			teen_last_name ILIKE ? OR
			teen_email ILIKE ? OR
			teen_parent_email ILIKE ?`,
			like, like, like, like)
	}

	paging := helper.ResolvePaging(c, 50, 200)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list teens")
	}

	var teens []teenModel.TeenModel
	if err := q.Offset(paging.Offset).Limit(paging.Limit).Find(&teens).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list teens")
	}

	return helper.Success(c, "OK", fiber.Map{
		"teens":      teens,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// GET /api/a/teens/:id (roster_view)
func (h *TeenController) Get(c *fiber.Ctx) error {
	teen, err := h.loadTeen(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "OK", teen)
}

// PATCH /api/a/teens/:id (roster_edit)
func (h *TeenController) Update(c *fiber.Ctx) error {
	actorID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return err
	}

	teen, err := h.loadTeen(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req teenDTO.UpdateTeenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}

	before := teen

	if v, present := req.FirstName.Get(); present {
		if v == nil || strings.TrimSpace(*v) == "" {
			return helper.Error(c, fiber.StatusBadRequest, "First name cannot be blank")
		}
		teen.TeenFirstName = strings.TrimSpace(*v)
	}
	if v, present := req.LastName.Get(); present {
		if v == nil || strings.TrimSpace(*v) == "" {
			return helper.Error(c, fiber.StatusBadRequest, "Last name cannot be blank")
		}
		teen.TeenLastName = strings.TrimSpace(*v)
	}
	if v, present := req.DOB.Get(); present {
		if v == nil {
			return helper.Error(c, fiber.StatusBadRequest, "Date of birth cannot be cleared")
		}
		dob, ok := teenDTO.ParseDOB(strings.TrimSpace(*v))
		if !ok {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid date of birth")
		}
		teen.TeenDOB = dob
	}
	if v, present := req.RegistrationStatus.Get(); present {
		if v == nil || !teenModel.IsRegistrationStatus(*v) {
			return helper.Error(c, fiber.StatusBadRequest, "Unknown registration status")
		}
		teen.TeenRegistrationStatus = *v
	}

	applyPatch(&teen.TeenEmail, req.TeenEmail)
	applyPatch(&teen.TeenPhone, req.TeenPhone)
	applyPatch(&teen.TeenAddressLine1, req.AddressLine1)
	applyPatch(&teen.TeenAddressLine2, req.AddressLine2)
	applyPatch(&teen.TeenCity, req.City)
	applyPatch(&teen.TeenState, req.State)
	applyPatch(&teen.TeenPostalCode, req.PostalCode)
	applyPatch(&teen.TeenParish, req.Parish)
	applyPatch(&teen.TeenEmergencyContactName, req.EmergencyName)
	applyPatch(&teen.TeenEmergencyContactPhone, req.EmergencyPhone)
	applyPatch(&teen.TeenParentName, req.ParentName)
	applyPatch(&teen.TeenParentEmail, req.ParentEmail)
	applyPatch(&teen.TeenParentPhone, req.ParentPhone)
	applyPatch(&teen.TeenParentRelationship, req.ParentRelationship)

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&teen).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update teen")
		}
		return auditModel.Record(tx, actorID, auditModel.ActionUpdate, "Teen", teen.TeenID, before, teen)
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Teen updated", teen)
}

// POST /api/a/teens/:id/archive (roster_manage)
func (h *TeenController) Archive(c *fiber.Ctx) error {
	actorID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return err
	}

	teen, err := h.loadTeen(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if teen.TeenArchivedAt != nil {
		return helper.Error(c, fiber.StatusConflict, "Teen is already archived")
	}

	var req teenDTO.ArchiveTeenRequest
	_ = c.BodyParser(&req)

	now := time.Now().UTC()
	teen.TeenArchivedAt = &now
	teen.TeenArchivedReason = helper.ToOptional(req.Reason)

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&teen).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to archive teen")
		}
		return auditModel.Record(tx, actorID, auditModel.ActionArchive, "Teen", teen.TeenID, nil, nil)
	}); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Teen archived", teen)
}

// POST /api/a/teens/:id/restore (roster_manage)
func (h *TeenController) Restore(c *fiber.Ctx) error {
	actorID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return err
	}

	teen, err := h.loadTeen(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if teen.TeenArchivedAt == nil {
		return helper.Error(c, fiber.StatusConflict, "Teen is not archived")
	}

	teen.TeenArchivedAt = nil
	teen.TeenArchivedReason = nil

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&teen).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to restore teen")
		}
		return auditModel.Record(tx, actorID, auditModel.ActionRestore, "Teen", teen.TeenID, nil, nil)
	}); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Teen restored", teen)
}

func (h *TeenController) loadTeen(c *fiber.Ctx) (teenModel.TeenModel, error) {
	var teen teenModel.TeenModel

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return teen, fiber.NewError(fiber.StatusBadRequest, "Invalid teen id")
	}

	if err := h.DB.Where("teen_id = ?", id).First(&teen).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return teen, fiber.NewError(fiber.StatusNotFound, "Teen not found")
		}
		return teen, fiber.NewError(fiber.StatusInternalServerError, "Failed to load teen")
	}
	return teen, nil
}

func applyPatch(dst **string, field helper.PatchField[string]) {
	v, present := field.Get()
	if !present {
		return
	}
	if v == nil {
		*dst = nil
		return
	}
	*dst = helper.ToOptional(*v)
}
