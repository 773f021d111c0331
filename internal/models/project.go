package models

import "fmt"

type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusInProgress ProjectStatus = "in-progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

type ProjectCategory string

const (
	ProjectCategoryReforestation ProjectCategory = "reforestation"
	ProjectCategoryWater         ProjectCategory = "water"
	ProjectCategoryBiodiversity  ProjectCategory = "biodiversity"
	ProjectCategoryCommunity     ProjectCategory = "community"
)

// Project is one managed restoration project. Progress is a percentage in
// [0,100] by convention, not clamped. Dates are display strings ("Jan 2024").
type Project struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Status      ProjectStatus   `json:"status"`
	Progress    int             `json:"progress"`
	Budget      float64         `json:"budget"`
	Spent       float64         `json:"spent"`
	Team        int             `json:"team"`
	StartDate   string          `json:"startDate"`
	EndDate     string          `json:"endDate"`
	Category    ProjectCategory `json:"category"`
}

func (p Project) RecordID() string { return p.ID }

func (p Project) WithID(id string) Project {
	p.ID = id
	return p
}

type CreateProjectRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Status      *ProjectStatus   `json:"status"`
	Progress    *int             `json:"progress"`
	Budget      *float64         `json:"budget"`
	Spent       *float64         `json:"spent"`
	Team        *int             `json:"team"`
	StartDate   *string          `json:"startDate"`
	EndDate     *string          `json:"endDate"`
	Category    *ProjectCategory `json:"category"`
}

func (r CreateProjectRequest) Validate() error {
	switch {
	case r.Name == nil || *r.Name == "":
		return fmt.Errorf("name is required")
	case r.Description == nil || *r.Description == "":
		return fmt.Errorf("description is required")
	case r.Status == nil || *r.Status == "":
		return fmt.Errorf("status is required")
	case r.Progress == nil:
		return fmt.Errorf("progress is required")
	case r.Budget == nil:
		return fmt.Errorf("budget is required")
	case r.Spent == nil:
		return fmt.Errorf("spent is required")
	case r.Team == nil:
		return fmt.Errorf("team is required")
	case r.StartDate == nil || *r.StartDate == "":
		return fmt.Errorf("startDate is required")
	case r.EndDate == nil || *r.EndDate == "":
		return fmt.Errorf("endDate is required")
	case r.Category == nil || *r.Category == "":
		return fmt.Errorf("category is required")
	}
	return nil
}

func (r CreateProjectRequest) Record() Project {
	return Project{
		Name:        *r.Name,
		Description: *r.Description,
		Status:      *r.Status,
		Progress:    *r.Progress,
		Budget:      *r.Budget,
		Spent:       *r.Spent,
		Team:        *r.Team,
		StartDate:   *r.StartDate,
		EndDate:     *r.EndDate,
		Category:    *r.Category,
	}
}

type ProjectPatch struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Status      *ProjectStatus   `json:"status"`
	Progress    *int             `json:"progress"`
	Budget      *float64         `json:"budget"`
	Spent       *float64         `json:"spent"`
	Team        *int             `json:"team"`
	StartDate   *string          `json:"startDate"`
	EndDate     *string          `json:"endDate"`
	Category    *ProjectCategory `json:"category"`
}

func (p ProjectPatch) Apply(pr Project) Project {
	if p.Name != nil {
		pr.Name = *p.Name
	}
	if p.Description != nil {
		pr.Description = *p.Description
	}
	if p.Status != nil {
		pr.Status = *p.Status
	}
	if p.Progress != nil {
		pr.Progress = *p.Progress
	}
	if p.Budget != nil {
		pr.Budget = *p.Budget
	}
	if p.Spent != nil {
		pr.Spent = *p.Spent
	}
	if p.Team != nil {
		pr.Team = *p.Team
	}
	if p.StartDate != nil {
		pr.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		pr.EndDate = *p.EndDate
	}
	if p.Category != nil {
		pr.Category = *p.Category
	}
	return pr
}
