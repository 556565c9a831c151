// file: internals/features/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type UserModel struct {
	// PK
	UserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`

	// Identity
	UserEmail    string `gorm:"type:varchar(160);not null;uniqueIndex;column:user_email"    json:"user_email"`
	UserUsername string `gorm:"type:varchar(80);not null;uniqueIndex;column:user_username"  json:"user_username"`

	// Role & permissions
	// user_role: ADMIN | STAFF (constants.AllRoles)
	UserRole        string         `gorm:"type:varchar(20);not null;default:'STAFF';column:user_role" json:"user_role"`
	UserPermissions datatypes.JSON `gorm:"column:user_permissions"                                    json:"user_permissions,omitempty"`

	UserPasswordHash string `gorm:"type:text;not null;column:user_password_hash" json:"-"`

	// Profile (nullable)
	UserFirstName   *string `gorm:"type:varchar(80);column:user_first_name"    json:"user_first_name,omitempty"`
	UserLastName    *string `gorm:"type:varchar(80);column:user_last_name"     json:"user_last_name,omitempty"`
	UserDisplayName *string `gorm:"type:varchar(120);column:user_display_name" json:"user_display_name,omitempty"`
	UserTitle       *string `gorm:"type:varchar(120);column:user_title"        json:"user_title,omitempty"`
	UserPhone       *string `gorm:"type:varchar(30);column:user_phone"         json:"user_phone,omitempty"`
	UserBio         *string `gorm:"type:text;column:user_bio"                  json:"user_bio,omitempty"`

	// Status & audit
	UserArchivedAt *time.Time `gorm:"type:timestamptz;column:user_archived_at"                    json:"user_archived_at,omitempty"`
	UserCreatedAt  time.Time  `gorm:"type:timestamptz;not null;autoCreateTime;column:user_created_at" json:"user_created_at"`
	UserUpdatedAt  time.Time  `gorm:"type:timestamptz;not null;autoUpdateTime;column:user_updated_at" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }
