package models

import "fmt"

type SpeciesStatus string

const (
	SpeciesStatusEndangered SpeciesStatus = "endangered"
	SpeciesStatusVulnerable SpeciesStatus = "vulnerable"
	SpeciesStatusStable     SpeciesStatus = "stable"
	SpeciesStatusThriving   SpeciesStatus = "thriving"
)

type SpeciesTrend string

const (
	SpeciesTrendUp     SpeciesTrend = "up"
	SpeciesTrendDown   SpeciesTrend = "down"
	SpeciesTrendStable SpeciesTrend = "stable"
)

type SpeciesCategory string

const (
	SpeciesCategoryBirds   SpeciesCategory = "birds"
	SpeciesCategoryInsects SpeciesCategory = "insects"
	SpeciesCategoryAquatic SpeciesCategory = "aquatic"
	SpeciesCategoryPlants  SpeciesCategory = "plants"
)

// Species is one tracked population in the biodiversity panel.
type Species struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	ScientificName string          `json:"scientificName"`
	Count          int             `json:"count"`
	Status         SpeciesStatus   `json:"status"`
	Trend          SpeciesTrend    `json:"trend"`
	Category       SpeciesCategory `json:"category"`
}

func (s Species) RecordID() string { return s.ID }

func (s Species) WithID(id string) Species {
	s.ID = id
	return s
}

// CreateSpeciesRequest is the insert shape for a species record. Pointer
// fields distinguish "missing" from zero values during validation.
type CreateSpeciesRequest struct {
	Name           *string          `json:"name"`
	ScientificName *string          `json:"scientificName"`
	Count          *int             `json:"count"`
	Status         *SpeciesStatus   `json:"status"`
	Trend          *SpeciesTrend    `json:"trend"`
	Category       *SpeciesCategory `json:"category"`
}

func (r CreateSpeciesRequest) Validate() error {
	switch {
	case r.Name == nil || *r.Name == "":
		return fmt.Errorf("name is required")
	case r.ScientificName == nil || *r.ScientificName == "":
		return fmt.Errorf("scientificName is required")
	case r.Count == nil:
		return fmt.Errorf("count is required")
	case r.Status == nil || *r.Status == "":
		return fmt.Errorf("status is required")
	case r.Trend == nil || *r.Trend == "":
		return fmt.Errorf("trend is required")
	case r.Category == nil || *r.Category == "":
		return fmt.Errorf("category is required")
	}
	return nil
}

func (r CreateSpeciesRequest) Record() Species {
	return Species{
		Name:           *r.Name,
		ScientificName: *r.ScientificName,
		Count:          *r.Count,
		Status:         *r.Status,
		Trend:          *r.Trend,
		Category:       *r.Category,
	}
}

// SpeciesPatch is a partial update; nil fields keep the stored value.
type SpeciesPatch struct {
	Name           *string          `json:"name"`
	ScientificName *string          `json:"scientificName"`
	Count          *int             `json:"count"`
	Status         *SpeciesStatus   `json:"status"`
	Trend          *SpeciesTrend    `json:"trend"`
	Category       *SpeciesCategory `json:"category"`
}

func (p SpeciesPatch) Apply(s Species) Species {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.ScientificName != nil {
		s.ScientificName = *p.ScientificName
	}
	if p.Count != nil {
		s.Count = *p.Count
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.Trend != nil {
		s.Trend = *p.Trend
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	return s
}
