package models

import "fmt"

type AlertSeverity string

const (
	AlertSeverityCritical AlertSeverity = "critical"
	AlertSeverityWarning  AlertSeverity = "warning"
	AlertSeverityInfo     AlertSeverity = "info"
)

type AlertCategory string

const (
	AlertCategoryEnvironment  AlertCategory = "environment"
	AlertCategoryBiodiversity AlertCategory = "biodiversity"
	AlertCategoryWater        AlertCategory = "water"
	AlertCategoryWeather      AlertCategory = "weather"
)

type AlertStatus string

const (
	AlertStatusActive       AlertStatus = "active"
	AlertStatusAcknowledged AlertStatus = "acknowledged"
	AlertStatusResolved     AlertStatus = "resolved"
)

// Alert is one dashboard alert. Timestamp is free text as shown to the user
// ("2 hours ago"); status transitions are not ordered.
type Alert struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Severity    AlertSeverity `json:"severity"`
	Category    AlertCategory `json:"category"`
	Timestamp   string        `json:"timestamp"`
	Status      AlertStatus   `json:"status"`
}

func (a Alert) RecordID() string { return a.ID }

func (a Alert) WithID(id string) Alert {
	a.ID = id
	return a
}

type CreateAlertRequest struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Severity    *AlertSeverity `json:"severity"`
	Category    *AlertCategory `json:"category"`
	Timestamp   *string        `json:"timestamp"`
	Status      *AlertStatus   `json:"status"`
}

func (r CreateAlertRequest) Validate() error {
	switch {
	case r.Title == nil || *r.Title == "":
		return fmt.Errorf("title is required")
	case r.Description == nil || *r.Description == "":
		return fmt.Errorf("description is required")
	case r.Severity == nil || *r.Severity == "":
		return fmt.Errorf("severity is required")
	case r.Category == nil || *r.Category == "":
		return fmt.Errorf("category is required")
	case r.Timestamp == nil || *r.Timestamp == "":
		return fmt.Errorf("timestamp is required")
	case r.Status == nil || *r.Status == "":
		return fmt.Errorf("status is required")
	}
	return nil
}

func (r CreateAlertRequest) Record() Alert {
	return Alert{
		Title:       *r.Title,
		Description: *r.Description,
		Severity:    *r.Severity,
		Category:    *r.Category,
		Timestamp:   *r.Timestamp,
		Status:      *r.Status,
	}
}

type AlertPatch struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Severity    *AlertSeverity `json:"severity"`
	Category    *AlertCategory `json:"category"`
	Timestamp   *string        `json:"timestamp"`
	Status      *AlertStatus   `json:"status"`
}

func (p AlertPatch) Apply(a Alert) Alert {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.Severity != nil {
		a.Severity = *p.Severity
	}
	if p.Category != nil {
		a.Category = *p.Category
	}
	if p.Timestamp != nil {
		a.Timestamp = *p.Timestamp
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	return a
}
