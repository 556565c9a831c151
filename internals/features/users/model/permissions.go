// file: internals/features/users/model/permissions.go
package model

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/artiechokes/youth-ministry-admin-suite/internals/constants"
)

// Permissions decodes user_permissions and runs it through normalization,
// so legacy bare-module grants keep working no matter when the row was
// written. A broken JSON blob reads as "no permissions".
func (u *UserModel) Permissions() []constants.Permission {
	if len(u.UserPermissions) == 0 {
		return nil
	}
	var raw []string
	if err := json.Unmarshal(u.UserPermissions, &raw); err != nil {
		return nil
	}
	return constants.NormalizePermissions(raw)
}

func (u *UserModel) SetPermissions(perms []constants.Permission) error {
	b, err := json.Marshal(perms)
	if err != nil {
		return err
	}
	u.UserPermissions = datatypes.JSON(b)
	return nil
}

func (u *UserModel) IsAdmin() bool { return u.UserRole == constants.RoleAdmin }
