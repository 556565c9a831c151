// file: internals/features/users/controller/auth_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userDTO "github.com/artiechokes/youth-ministry-admin-suite/internals/features/users/dto"
	userModel "github.com/artiechokes/youth-ministry-admin-suite/internals/features/users/model"
	userService "github.com/artiechokes/youth-ministry-admin-suite/internals/features/users/service"
	helper "github.com/artiechokes/youth-ministry-admin-suite/internals/helpers"
	authMiddleware "github.com/artiechokes/youth-ministry-admin-suite/internals/middlewares/auth"
)

type AuthController struct {
	DB *gorm.DB
}

var validate = validator.New()

// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req userDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	usr, pair, err := userService.Login(h.DB, req.Identifier, req.Password)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Signed in", fiber.Map{
		"user":   userDTO.FromUserModel(usr),
		"tokens": pair,
	})
}

// POST /api/auth/google
func (h *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var req userDTO.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	usr, pair, err := userService.GoogleLogin(h.DB, req.IDToken)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Signed in", fiber.Map{
		"user":   userDTO.FromUserModel(usr),
		"tokens": pair,
	})
}

// POST /api/auth/refresh
func (h *AuthController) Refresh(c *fiber.Ctx) error {
	var req userDTO.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	usr, pair, err := userService.Refresh(h.DB, req.RefreshToken)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Token refreshed", fiber.Map{
		"user":   userDTO.FromUserModel(usr),
		"tokens": pair,
	})
}

// POST /api/auth/logout (authenticated)
func (h *AuthController) Logout(c *fiber.Ctx) error {
	accessToken, _ := c.Locals("access_token").(string)
	if accessToken == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if err := userService.Logout(h.DB, accessToken); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Signed out", nil)
}

// GET /api/me (authenticated)
func (h *AuthController) Me(c *fiber.Ctx) error {
	userID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return err
	}

	var usr userModel.UserModel
	if err := h.DB.Where("user_id = ? AND user_archived_at IS NULL", userID).First(&usr).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	return helper.Success(c, "OK", userDTO.FromUserModel(usr))
}

// PATCH /api/me (authenticated, profile fields only)
func (h *AuthController) UpdateMe(c *fiber.Ctx) error {
	userID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return err
	}

	var req userDTO.UpdateMeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}

	var usr userModel.UserModel
	if err := h.DB.Where("user_id = ? AND user_archived_at IS NULL", userID).First(&usr).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	applyPatch(&usr.UserFirstName, req.FirstName)
	applyPatch(&usr.UserLastName, req.LastName)
	applyPatch(&usr.UserDisplayName, req.DisplayName)
	applyPatch(&usr.UserTitle, req.Title)
	applyPatch(&usr.UserPhone, req.Phone)
	applyPatch(&usr.UserBio, req.Bio)

	if err := h.DB.Save(&usr).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update profile")
	}
	return helper.Success(c, "Profile updated", userDTO.FromUserModel(usr))
}

// applyPatch maps tri-state PATCH fields onto nullable columns; blank
// values clear the column same as explicit null.
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
