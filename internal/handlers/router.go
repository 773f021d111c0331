package handlers

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/iskandars/NBS-apps/internal/event"
	"github.com/iskandars/NBS-apps/internal/models"
	"github.com/iskandars/NBS-apps/internal/rbac"
	"github.com/iskandars/NBS-apps/internal/storage"
)

// NewRouter wires the six resource families, the panels endpoint and the
// health endpoint onto a Gin engine. The stores value is injected rather
// than ambient so tests construct routers over fresh storage. publisher may
// be nil (eventing disabled); enforce turns on the per-panel RBAC gate.
func NewRouter(stores *storage.Stores, publisher *event.AlertPublisher, enforce bool) *gin.Engine {
	router := gin.Default()

	api := router.Group("/api")

	species := NewResource[models.Species, models.SpeciesPatch, models.CreateSpeciesRequest](ResourceConfig{
		Path:        "/species",
		Panel:       rbac.PanelBiodiversity,
		Label:       "species",
		FilterParam: "category",
	}, stores.Species)
	species.RegisterRoutes(api, enforce)

	stations := NewResource[models.WaterStation, models.WaterStationPatch, models.CreateWaterStationRequest](ResourceConfig{
		Path:        "/water-stations",
		Panel:       rbac.PanelWater,
		Label:       "station",
		WithGetByID: true,
	}, stores.WaterStations)
	stations.RegisterRoutes(api, enforce)

	carbon := NewResource[models.CarbonProject, models.CarbonProjectPatch, models.CreateCarbonProjectRequest](ResourceConfig{
		Path:        "/carbon-projects",
		Panel:       rbac.PanelCarbon,
		Label:       "carbon project",
		WithGetByID: true,
	}, stores.CarbonProjects)
	carbon.RegisterRoutes(api, enforce)

	alerts := NewResource[models.Alert, models.AlertPatch, models.CreateAlertRequest](ResourceConfig{
		Path:        "/alerts",
		Panel:       rbac.PanelAlerts,
		Label:       "alert",
		FilterParam: "status",
	}, stores.Alerts)
	if publisher != nil {
		alerts.OnCreate = func(ctx context.Context, created models.Alert) {
			evt := event.AlertEvent{EventType: event.AlertCreated, Alert: created}
			if err := publisher.PublishEvent(ctx, evt); err != nil {
				log.Printf("failed to publish alert created event: %v", err)
			}
		}
		alerts.OnUpdate = func(ctx context.Context, patch models.AlertPatch, updated models.Alert) {
			if patch.Status == nil {
				return
			}
			evt := event.AlertEvent{EventType: event.AlertStatusChanged, Alert: updated}
			if err := publisher.PublishEvent(ctx, evt); err != nil {
				log.Printf("failed to publish alert status event: %v", err)
			}
		}
	}
	alerts.RegisterRoutes(api, enforce)

	projects := NewResource[models.Project, models.ProjectPatch, models.CreateProjectRequest](ResourceConfig{
		Path:        "/projects",
		Panel:       rbac.PanelProjects,
		Label:       "project",
		WithGetByID: true,
	}, stores.Projects)
	projects.RegisterRoutes(api, enforce)

	users := NewUserHandler(stores.Users)
	users.RegisterRoutes(api, enforce)

	panels := NewPanelHandler(publisher)
	panels.RegisterRoutes(router)

	return router
}
