package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermissionRankComparison(t *testing.T) {
	granted := []Permission{"roster_manage", "forms_view"}

	// manage implies edit and view on the same module
	assert.True(t, HasPermission(granted, "roster_view"))
	assert.True(t, HasPermission(granted, "roster_edit"))
	assert.True(t, HasPermission(granted, "roster_manage"))

	// view does not imply edit
	assert.True(t, HasPermission(granted, "forms_view"))
	assert.False(t, HasPermission(granted, "forms_edit"))
	assert.False(t, HasPermission(granted, "forms_manage"))

	// other modules stay closed
	assert.False(t, HasPermission(granted, "staff_view"))
	assert.False(t, HasPermission(nil, "roster_view"))
}

func TestHasPermissionMonotonic(t *testing.T) {
	base := []Permission{"kiosk_edit"}
	superset := append([]Permission{"events_manage", "prayers_view"}, base...)

	for _, required := range AllPermissions() {
		if HasPermission(base, required) {
			assert.True(t, HasPermission(superset, required),
				"adding grants must never revoke %s", required)
		}
	}
}

func TestHasPermissionRejectsMalformedRequired(t *testing.T) {
	granted := []Permission{"roster_manage"}
	assert.False(t, HasPermission(granted, "roster"))
	assert.False(t, HasPermission(granted, "roster_admin"))
	assert.False(t, HasPermission(granted, ""))
}

func TestNormalizePermissions(t *testing.T) {
	raw := []string{
		"roster_view",
		"roster_view",     // duplicate
		"forms",           // legacy bare module -> forms_manage
		"banana_manage",   // unknown module
		"kiosk_superuser", // unknown level
		"staff_edit",
	}

	got := NormalizePermissions(raw)
	assert.Equal(t, []Permission{"roster_view", "forms_manage", "staff_edit"}, got)
}

func TestNormalizePermissionsIdempotent(t *testing.T) {
	raw := []string{"prayers", "roster_edit", "notifications_view", "roster"}

	once := NormalizePermissions(raw)
	asStrings := make([]string, len(once))
	for i, p := range once {
		asStrings[i] = string(p)
	}
	twice := NormalizePermissions(asStrings)

	assert.Equal(t, once, twice)
}

func TestAllPermissionsCoversMatrix(t *testing.T) {
	all := AllPermissions()
	assert.Len(t, all, len(PermissionModules)*len(PermissionLevels))
	assert.Contains(t, all, Permission("notifications_manage"))
	for _, p := range all {
		assert.True(t, HasPermission([]Permission{p}, p))
	}
}
