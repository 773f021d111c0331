package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iskandars/NBS-apps/internal/models"
	"github.com/iskandars/NBS-apps/internal/rbac"
	"github.com/iskandars/NBS-apps/utils"
)

// RoleHeader carries the client-declared role when RBAC enforcement is on.
const RoleHeader = "X-Dashboard-Role"

// PanelGate returns middleware requiring the request's declared role to be
// permitted for panel. The role is still self-declared with no credential
// behind it; the gate only mirrors the presentation layer's visibility rules
// at the HTTP boundary for deployments that opt in via RBAC_ENFORCE.
func PanelGate(panel rbac.Panel) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := models.UserRole(c.GetHeader(RoleHeader))
		if role == "" {
			c.AbortWithStatusJSON(http.StatusForbidden,
				utils.CreateErrorResponse("MISSING_ROLE", "Role header required"))
			return
		}
		if !role.Valid() || !rbac.IsPermitted(role, panel) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				utils.CreateErrorResponse("FORBIDDEN", "Role not permitted for this panel"))
			return
		}
		c.Next()
	}
}
