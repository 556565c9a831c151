// file: internals/features/users/controller/staff_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditModel "github.com/artiechokes/youth-ministry-admin-suite/internals/features/audit/model"
	"github.com/artiechokes/youth-ministry-admin-suite/internals/constants"
	userDTO "github.com/artiechokes/youth-ministry-admin-suite/internals/features/users/dto"
	userModel "github.com/artiechokes/youth-ministry-admin-suite/internals/features/users/model"
	userService "github.com/artiechokes/youth-ministry-admin-suite/internals/features/users/service"
	helper "github.com/artiechokes/youth-ministry-admin-suite/internals/helpers"
	authMiddleware "github.com/artiechokes/youth-ministry-admin-suite/internals/middlewares/auth"
)

type StaffController struct {
	DB *gorm.DB
}

// GET /api/a/staff (staff_view)
func (h *StaffController) List(c *fiber.Ctx) error {
	withArchived := strings.EqualFold(c.Query("with_archived"), "true")

	q := h.DB.Model(&userModel.UserModel{}).Order("user_created_at ASC")
	if !withArchived {
		q = q.Where("user_archived_at IS NULL")
	}

	var staff []userModel.UserModel
	if err := q.Find(&staff).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list staff")
	}
	return helper.Success(c, "OK", userDTO.FromUserModels(staff))
}

// GET /api/a/staff/:id (staff_view)
func (h *StaffController) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid staff id")
	}

	var usr userModel.UserModel
	if err := h.DB.Where("user_id = ?", id).First(&usr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Staff member not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load staff member")
	}
	return helper.Success(c, "OK", userDTO.FromUserModel(usr))
}

// POST /api/a/staff (staff_manage)
func (h *StaffController) Create(c *fiber.Ctx) error {
	actorID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return err
	}

	var req userDTO.CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	role := constants.RoleStaff
	if req.Role == constants.RoleAdmin {
		role = constants.RoleAdmin
	}

	hash, err := userService.HashPassword(req.Password)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	usr := userModel.UserModel{
		UserEmail:        req.Email,
		UserUsername:     req.Username,
		UserRole:         role,
		UserPasswordHash: hash,
		UserFirstName:    helper.ToOptional(req.FirstName),
		UserLastName:     helper.ToOptional(req.LastName),
	}
	if err := usr.SetPermissions(constants.NormalizePermissions(req.Permissions)); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid permissions")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&userModel.UserModel{}).
			Where("lower(user_email) = lower(?) OR lower(user_username) = lower(?)", req.Email, req.Username).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check duplicates")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "A staff account with this email or username already exists")
		}

		if err := tx.Create(&usr).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create staff account")
		}
		return auditModel.Record(tx, actorID, auditModel.ActionCreate, "User", usr.UserID,
			nil, userDTO.FromUserModel(usr))
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Staff account created", userDTO.FromUserModel(usr))
}

// PATCH /api/a/staff/:id (staff_manage)
func (h *StaffController) Update(c *fiber.Ctx) error {
	actorID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid staff id")
	}

	var req userDTO.UpdateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}

	var usr userModel.UserModel
	if err := h.DB.Where("user_id = ?", id).First(&usr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Staff member not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load staff member")
	}

	before := userDTO.FromUserModel(usr)

	applyPatch(&usr.UserFirstName, req.FirstName)
	applyPatch(&usr.UserLastName, req.LastName)
	applyPatch(&usr.UserDisplayName, req.DisplayName)
	applyPatch(&usr.UserTitle, req.Title)
	applyPatch(&usr.UserPhone, req.Phone)
	applyPatch(&usr.UserBio, req.Bio)

	if role, present := req.Role.Get(); present && role != nil {
		switch *role {
		case constants.RoleAdmin, constants.RoleStaff:
			usr.UserRole = *role
		default:
			return helper.Error(c, fiber.StatusBadRequest, "Unknown role")
		}
	}

	if perms, present := req.Permissions.Get(); present {
		normalized := []constants.Permission{}
		if perms != nil {
			normalized = constants.NormalizePermissions(*perms)
		}
		if err := usr.SetPermissions(normalized); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid permissions")
		}
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&usr).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update staff account")
		}
		return auditModel.Record(tx, actorID, auditModel.ActionUpdate, "User", usr.UserID,
			before, userDTO.FromUserModel(usr))
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Staff account updated", userDTO.FromUserModel(usr))
}

// POST /api/a/staff/:id/archive (staff_manage)
func (h *StaffController) Archive(c *fiber.Ctx) error {
	return h.setArchived(c, true)
}

// POST /api/a/staff/:id/restore (staff_manage)
func (h *StaffController) Restore(c *fiber.Ctx) error {
	return h.setArchived(c, false)
}

func (h *StaffController) setArchived(c *fiber.Ctx, archived bool) error {
	actorID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid staff id")
	}
	if archived && id.String() == c.Locals("user_id") {
		return helper.Error(c, fiber.StatusConflict, "You cannot archive your own account")
	}

	var usr userModel.UserModel
	if err := h.DB.Where("user_id = ?", id).First(&usr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Staff member not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load staff member")
	}

	action := auditModel.ActionArchive
	if archived {
		now := time.Now().UTC()
		usr.UserArchivedAt = &now
	} else {
		usr.UserArchivedAt = nil
		action = auditModel.ActionRestore
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&usr).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update staff account")
		}
		return auditModel.Record(tx, actorID, action, "User", usr.UserID, nil, nil)
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Staff account updated", userDTO.FromUserModel(usr))
}
