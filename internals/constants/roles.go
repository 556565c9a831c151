package constants

import "fmt"

// Staff account roles. ADMIN bypasses the permission matrix entirely;
// STAFF accounts are gated per module/level (see permissions.go).
const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)

var (
	AllRoles = []string{
		RoleAdmin,
		RoleStaff,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

const (
	ErrOnlyStaffCanAccess  = "Only staff accounts may access %s."
	ErrOnlyAdminsCanAccess = "Only admins may access %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}
