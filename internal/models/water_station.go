package models

import "fmt"

type WaterStationStatus string

const (
	WaterStatusExcellent WaterStationStatus = "excellent"
	WaterStatusGood      WaterStationStatus = "good"
	WaterStatusFair      WaterStationStatus = "fair"
	WaterStatusPoor      WaterStationStatus = "poor"
)

// WaterStation is one water quality monitoring point. Numeric readings are
// stored as reported; no range checks are applied beyond presence.
type WaterStation struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Location        string             `json:"location"`
	PH              float64            `json:"ph"`
	Turbidity       float64            `json:"turbidity"`
	Temperature     float64            `json:"temperature"`
	DissolvedOxygen float64            `json:"dissolvedOxygen"`
	Status          WaterStationStatus `json:"status"`
}

func (w WaterStation) RecordID() string { return w.ID }

func (w WaterStation) WithID(id string) WaterStation {
	w.ID = id
	return w
}

type CreateWaterStationRequest struct {
	Name            *string             `json:"name"`
	Location        *string             `json:"location"`
	PH              *float64            `json:"ph"`
	Turbidity       *float64            `json:"turbidity"`
	Temperature     *float64            `json:"temperature"`
	DissolvedOxygen *float64            `json:"dissolvedOxygen"`
	Status          *WaterStationStatus `json:"status"`
}

func (r CreateWaterStationRequest) Validate() error {
	switch {
	case r.Name == nil || *r.Name == "":
		return fmt.Errorf("name is required")
	case r.Location == nil || *r.Location == "":
		return fmt.Errorf("location is required")
	case r.PH == nil:
		return fmt.Errorf("ph is required")
	case r.Turbidity == nil:
		return fmt.Errorf("turbidity is required")
	case r.Temperature == nil:
		return fmt.Errorf("temperature is required")
	case r.DissolvedOxygen == nil:
		return fmt.Errorf("dissolvedOxygen is required")
	case r.Status == nil || *r.Status == "":
		return fmt.Errorf("status is required")
	}
	return nil
}

func (r CreateWaterStationRequest) Record() WaterStation {
	return WaterStation{
		Name:            *r.Name,
		Location:        *r.Location,
		PH:              *r.PH,
		Turbidity:       *r.Turbidity,
		Temperature:     *r.Temperature,
		DissolvedOxygen: *r.DissolvedOxygen,
		Status:          *r.Status,
	}
}

type WaterStationPatch struct {
	Name            *string             `json:"name"`
	Location        *string             `json:"location"`
	PH              *float64            `json:"ph"`
	Turbidity       *float64            `json:"turbidity"`
	Temperature     *float64            `json:"temperature"`
	DissolvedOxygen *float64            `json:"dissolvedOxygen"`
	Status          *WaterStationStatus `json:"status"`
}

func (p WaterStationPatch) Apply(w WaterStation) WaterStation {
	if p.Name != nil {
		w.Name = *p.Name
	}
	if p.Location != nil {
		w.Location = *p.Location
	}
	if p.PH != nil {
		w.PH = *p.PH
	}
	if p.Turbidity != nil {
		w.Turbidity = *p.Turbidity
	}
	if p.Temperature != nil {
		w.Temperature = *p.Temperature
	}
	if p.DissolvedOxygen != nil {
		w.DissolvedOxygen = *p.DissolvedOxygen
	}
	if p.Status != nil {
		w.Status = *p.Status
	}
	return w
}
