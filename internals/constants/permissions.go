package constants

import "strings"

/* =========================================================
   Permission matrix — "{module}_{level}"
   Levels are ranked view < edit < manage; holding a higher
   level on a module implies the lower ones (rank compare,
   nothing is stored twice).
========================================================= */

type PermissionModule string

type PermissionLevel string

const (
	ModuleRoster        PermissionModule = "roster"
	ModuleKiosk         PermissionModule = "kiosk"
	ModuleEvents        PermissionModule = "events"
	ModuleForms         PermissionModule = "forms"
	ModulePrayers       PermissionModule = "prayers"
	ModuleNotifications PermissionModule = "notifications"
	ModuleStaff         PermissionModule = "staff"
)

const (
	LevelView   PermissionLevel = "view"
	LevelEdit   PermissionLevel = "edit"
	LevelManage PermissionLevel = "manage"
)

var PermissionModules = []PermissionModule{
	ModuleRoster,
	ModuleKiosk,
	ModuleEvents,
	ModuleForms,
	ModulePrayers,
	ModuleNotifications,
	ModuleStaff,
}

var PermissionLevels = []PermissionLevel{
	LevelView,
	LevelEdit,
	LevelManage,
}

var levelRank = map[PermissionLevel]int{
	LevelView:   1,
	LevelEdit:   2,
	LevelManage: 3,
}

var ModuleLabels = map[PermissionModule]string{
	ModuleRoster:        "Roster",
	ModuleKiosk:         "Kiosk",
	ModuleEvents:        "Events",
	ModuleForms:         "Forms",
	ModulePrayers:       "Prayers",
	ModuleNotifications: "Notifications",
	ModuleStaff:         "Staff",
}

// Permission is the stored/wire form, e.g. "forms_edit".
type Permission string

func MakePermission(m PermissionModule, l PermissionLevel) Permission {
	return Permission(string(m) + "_" + string(l))
}

// AllPermissions lists every module × level combination.
func AllPermissions() []Permission {
	out := make([]Permission, 0, len(PermissionModules)*len(PermissionLevels))
	for _, m := range PermissionModules {
		for _, l := range PermissionLevels {
			out = append(out, MakePermission(m, l))
		}
	}
	return out
}

var knownPermissions = func() map[Permission]struct{} {
	set := make(map[Permission]struct{})
	for _, p := range AllPermissions() {
		set[p] = struct{}{}
	}
	return set
}()

// Accounts created before the tiered matrix stored bare module names;
// a bare module grant meant full control, so it upgrades to manage.
var legacyPermissionMap = map[string]Permission{
	"roster":        "roster_manage",
	"kiosk":         "kiosk_manage",
	"events":        "events_manage",
	"forms":         "forms_manage",
	"prayers":       "prayers_manage",
	"notifications": "notifications_manage",
	"staff":         "staff_manage",
}

// parsePermission splits "module_level". The level is always the last
// underscore segment; module names themselves contain no underscores.
func parsePermission(p Permission) (PermissionModule, PermissionLevel, bool) {
	s := string(p)
	i := strings.LastIndexByte(s, '_')
	if i <= 0 || i == len(s)-1 {
		return "", "", false
	}
	m := PermissionModule(s[:i])
	l := PermissionLevel(s[i+1:])
	if _, ok := levelRank[l]; !ok {
		return "", "", false
	}
	if _, ok := ModuleLabels[m]; !ok {
		return "", "", false
	}
	return m, l, true
}

// NormalizePermissions converts arbitrary stored input into a valid,
// deduplicated permission set. Unknown strings are dropped; legacy bare
// module names upgrade to "{module}_manage". Idempotent.
func NormalizePermissions(raw []string) []Permission {
	out := make([]Permission, 0, len(raw))
	seen := make(map[Permission]struct{}, len(raw))
	for _, entry := range raw {
		p := Permission(entry)
		if _, ok := knownPermissions[p]; !ok {
			legacy, ok := legacyPermissionMap[entry]
			if !ok {
				continue
			}
			p = legacy
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// HasPermission reports whether the granted set satisfies the required
// permission: same module, level rank >= required rank. Role bypass for
// admins happens in the middleware, not here.
func HasPermission(granted []Permission, required Permission) bool {
	reqModule, reqLevel, ok := parsePermission(required)
	if !ok {
		return false
	}
	reqRank := levelRank[reqLevel]
	for _, p := range granted {
		m, l, ok := parsePermission(p)
		if !ok || m != reqModule {
			continue
		}
		if levelRank[l] >= reqRank {
			return true
		}
	}
	return false
}
