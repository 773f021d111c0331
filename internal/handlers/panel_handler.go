package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iskandars/NBS-apps/internal/event"
	"github.com/iskandars/NBS-apps/internal/models"
	"github.com/iskandars/NBS-apps/internal/rbac"
	"github.com/iskandars/NBS-apps/utils"
)

// PanelHandler exposes the role-to-panel access table to the presentation
// layer, plus the service health endpoint.
type PanelHandler struct {
	publisher *event.AlertPublisher
}

func NewPanelHandler(publisher *event.AlertPublisher) *PanelHandler {
	return &PanelHandler{publisher: publisher}
}

func (h *PanelHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", h.Health)
	router.GET("/api/panels", h.PermittedPanels)
}

// PermittedPanels answers which panels the given role may see. The role is
// whatever the client declares; there is no credential behind it.
func (h *PanelHandler) PermittedPanels(c *gin.Context) {
	role := models.UserRole(c.Query("role"))
	if !role.Valid() {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("INVALID_ROLE", "Unknown role"))
		return
	}
	c.JSON(http.StatusOK, rbac.PermittedPanels(role))
}

func (h *PanelHandler) Health(c *gin.Context) {
	status := gin.H{"status": "ok"}
	if h.publisher != nil {
		status["events"] = h.publisher.HealthCheck()
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(status))
}
