// internals/middlewares/auth/permission_middleware.go
package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/artiechokes/youth-ministry-admin-suite/internals/constants"
	userModel "github.com/artiechokes/youth-ministry-admin-suite/internals/features/users/model"
)

// RequirePermission gates a route on a (module, level) pair. ADMIN accounts
// bypass the matrix entirely; everyone else is checked against the freshly
// loaded permission set, not the token, so revocations apply immediately.
func RequirePermission(db *gorm.DB, module constants.PermissionModule, level constants.PermissionLevel) fiber.Handler {
	required := constants.MakePermission(module, level)
	return func(c *fiber.Ctx) error {
		userID, err := GetUserID(c)
		if err != nil {
			return err
		}

		if GetUserRole(c) == constants.RoleAdmin {
			return c.Next()
		}

		var usr userModel.UserModel
		if err := db.Where("user_id = ? AND user_archived_at IS NULL", userID).First(&usr).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
			}
			log.Println("[ERROR] permission lookup:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		if !constants.HasPermission(usr.Permissions(), required) {
			return fiber.NewError(fiber.StatusUnauthorized,
				"Missing "+string(required)+" permission")
		}
		return c.Next()
	}
}
