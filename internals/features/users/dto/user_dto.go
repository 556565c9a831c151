// file: internals/features/users/dto/user_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	userModel "github.com/artiechokes/youth-ministry-admin-suite/internals/features/users/model"
	helper "github.com/artiechokes/youth-ministry-admin-suite/internals/helpers"
)

/* =========================================================
   1) AUTH REQUESTS
========================================================= */

type LoginRequest struct {
	// username or email
	Identifier string `json:"identifier" validate:"required,min=3,max=160"`
	Password   string `json:"password"   validate:"required,min=8,max=100"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

/* =========================================================
   2) STAFF REQUESTS
========================================================= */

type CreateStaffRequest struct {
	Email     string   `json:"user_email"    validate:"required,email,max=160"`
	Username  string   `json:"user_username" validate:"required,min=3,max=80"`
	Password  string   `json:"password"      validate:"required,min=8,max=100"`
	FirstName string   `json:"user_first_name" validate:"required,max=80"`
	LastName  string   `json:"user_last_name"  validate:"required,max=80"`
	Role      string   `json:"user_role"       validate:"omitempty,oneof=ADMIN STAFF"`
	Permissions []string `json:"user_permissions" validate:"omitempty,dive,max=60"`
}

// Partial update for staff accounts; role/permissions need staff_manage.
type UpdateStaffRequest struct {
	FirstName   helper.PatchField[string]   `json:"user_first_name"`
	LastName    helper.PatchField[string]   `json:"user_last_name"`
	DisplayName helper.PatchField[string]   `json:"user_display_name"`
	Title       helper.PatchField[string]   `json:"user_title"`
	Phone       helper.PatchField[string]   `json:"user_phone"`
	Bio         helper.PatchField[string]   `json:"user_bio"`
	Role        helper.PatchField[string]   `json:"user_role"`
	Permissions helper.PatchField[[]string] `json:"user_permissions"`
}

// Self-service profile patch (never touches role/permissions).
type UpdateMeRequest struct {
	FirstName   helper.PatchField[string] `json:"user_first_name"`
	LastName    helper.PatchField[string] `json:"user_last_name"`
	DisplayName helper.PatchField[string] `json:"user_display_name"`
	Title       helper.PatchField[string] `json:"user_title"`
	Phone       helper.PatchField[string] `json:"user_phone"`
	Bio         helper.PatchField[string] `json:"user_bio"`
}

/* =========================================================
   3) RESPONSES
========================================================= */

type StaffResponse struct {
	UserID          uuid.UUID  `json:"user_id"`
	UserEmail       string     `json:"user_email"`
	UserUsername    string     `json:"user_username"`
	UserRole        string     `json:"user_role"`
	UserPermissions []string   `json:"user_permissions"`
	UserFirstName   string     `json:"user_first_name"`
	UserLastName    string     `json:"user_last_name"`
	UserDisplayName string     `json:"user_display_name"`
	UserTitle       string     `json:"user_title"`
	UserPhone       string     `json:"user_phone"`
	UserBio         string     `json:"user_bio"`
	UserArchivedAt  *time.Time `json:"user_archived_at,omitempty"`
	UserCreatedAt   time.Time  `json:"user_created_at"`
}

func FromUserModel(m userModel.UserModel) StaffResponse {
	perms := m.Permissions()
	permStrings := make([]string, len(perms))
	for i, p := range perms {
		permStrings[i] = string(p)
	}
	return StaffResponse{
		UserID:          m.UserID,
		UserEmail:       m.UserEmail,
		UserUsername:    m.UserUsername,
		UserRole:        m.UserRole,
		UserPermissions: permStrings,
		UserFirstName:   deref(m.UserFirstName),
		UserLastName:    deref(m.UserLastName),
		UserDisplayName: deref(m.UserDisplayName),
		UserTitle:       deref(m.UserTitle),
		UserPhone:       deref(m.UserPhone),
		UserBio:         deref(m.UserBio),
		UserArchivedAt:  m.UserArchivedAt,
		UserCreatedAt:   m.UserCreatedAt,
	}
}

func FromUserModels(ms []userModel.UserModel) []StaffResponse {
	out := make([]StaffResponse, len(ms))
	for i, m := range ms {
		out[i] = FromUserModel(m)
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Normalize trims identity fields in place before validation.
func (r *CreateStaffRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
	r.Username = strings.TrimSpace(r.Username)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
}
