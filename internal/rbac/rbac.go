// Package rbac holds the static role-to-panel access table for the NBS
// dashboard. The four roles form a strict hierarchy: every panel visible to a
// role is visible to all roles above it, and sysadmin differs from clientadmin
// only by the settings panel.
package rbac

import "github.com/iskandars/NBS-apps/internal/models"

// Panel identifies one dashboard surface.
type Panel string

const (
	PanelClimate      Panel = "climate"
	PanelSocial       Panel = "social"
	PanelBiodiversity Panel = "biodiversity"
	PanelWater        Panel = "water"
	PanelCarbon       Panel = "carbon"
	PanelAlerts       Panel = "alerts"
	PanelGrafana      Panel = "grafana"
	PanelProjects     Panel = "projects"
	PanelSettings     Panel = "settings"
)

// rolePanels is the access table. Entries are cumulative by construction:
// each role's slice extends the previous role's slice.
var rolePanels = map[models.UserRole][]Panel{
	models.RoleOperator: {
		PanelClimate, PanelBiodiversity, PanelWater, PanelAlerts,
	},
	models.RoleSupervisor: {
		PanelClimate, PanelBiodiversity, PanelWater, PanelAlerts,
		PanelSocial, PanelCarbon,
	},
	models.RoleClientAdmin: {
		PanelClimate, PanelBiodiversity, PanelWater, PanelAlerts,
		PanelSocial, PanelCarbon,
		PanelGrafana, PanelProjects,
	},
	models.RoleSysAdmin: {
		PanelClimate, PanelBiodiversity, PanelWater, PanelAlerts,
		PanelSocial, PanelCarbon,
		PanelGrafana, PanelProjects,
		PanelSettings,
	},
}

// PermittedPanels returns the panels visible to role, lowest-tier panels
// first. It returns nil for a role outside the four defined values; callers
// that need to distinguish unknown roles should check models.UserRole.Valid.
func PermittedPanels(role models.UserRole) []Panel {
	panels, ok := rolePanels[role]
	if !ok {
		return nil
	}
	out := make([]Panel, len(panels))
	copy(out, panels)
	return out
}

// IsPermitted reports whether role may see panel. Unknown roles and unknown
// panels are never permitted.
func IsPermitted(role models.UserRole, panel Panel) bool {
	for _, p := range rolePanels[role] {
		if p == panel {
			return true
		}
	}
	return false
}
