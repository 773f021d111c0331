package event

import "github.com/iskandars/NBS-apps/internal/models"

// AlertQueue is the durable queue carrying dashboard alert events.
const AlertQueue string = "nbs_alert_events"

type AlertEventType string

const (
	AlertCreated       AlertEventType = "alert_created"
	AlertStatusChanged AlertEventType = "alert_status_changed"
)

// AlertEvent is published when an alert is created or its status changes.
type AlertEvent struct {
	EventType AlertEventType `json:"event_type"`
	Alert     models.Alert   `json:"alert"`
}
