package models

import "fmt"

type CarbonProjectType string

const (
	CarbonTypeReforestation CarbonProjectType = "reforestation"
	CarbonTypeWetland       CarbonProjectType = "wetland"
	CarbonTypeAgroforestry  CarbonProjectType = "agroforestry"
)

// CarbonProject tracks captured vs. target carbon (tons) over a project area
// (hectares). Values are expected non-negative but not enforced.
type CarbonProject struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Area     float64           `json:"area"`
	Captured float64           `json:"captured"`
	Target   float64           `json:"target"`
	Type     CarbonProjectType `json:"type"`
}

func (c CarbonProject) RecordID() string { return c.ID }

func (c CarbonProject) WithID(id string) CarbonProject {
	c.ID = id
	return c
}

type CreateCarbonProjectRequest struct {
	Name     *string            `json:"name"`
	Area     *float64           `json:"area"`
	Captured *float64           `json:"captured"`
	Target   *float64           `json:"target"`
	Type     *CarbonProjectType `json:"type"`
}

func (r CreateCarbonProjectRequest) Validate() error {
	switch {
	case r.Name == nil || *r.Name == "":
		return fmt.Errorf("name is required")
	case r.Area == nil:
		return fmt.Errorf("area is required")
	case r.Captured == nil:
		return fmt.Errorf("captured is required")
	case r.Target == nil:
		return fmt.Errorf("target is required")
	case r.Type == nil || *r.Type == "":
		return fmt.Errorf("type is required")
	}
	return nil
}

func (r CreateCarbonProjectRequest) Record() CarbonProject {
	return CarbonProject{
		Name:     *r.Name,
		Area:     *r.Area,
		Captured: *r.Captured,
		Target:   *r.Target,
		Type:     *r.Type,
	}
}

type CarbonProjectPatch struct {
	Name     *string            `json:"name"`
	Area     *float64           `json:"area"`
	Captured *float64           `json:"captured"`
	Target   *float64           `json:"target"`
	Type     *CarbonProjectType `json:"type"`
}

func (p CarbonProjectPatch) Apply(c CarbonProject) CarbonProject {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Area != nil {
		c.Area = *p.Area
	}
	if p.Captured != nil {
		c.Captured = *p.Captured
	}
	if p.Target != nil {
		c.Target = *p.Target
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	return c
}
