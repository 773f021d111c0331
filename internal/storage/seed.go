package storage

import (
	"context"
	"fmt"

	"github.com/iskandars/NBS-apps/internal/models"
)

// Seed loads the demo monitoring fixtures into empty stores. It is a no-op
// when species records already exist, so restarts against a durable backend
// do not duplicate data. Tests reuse it for a known dataset.
func Seed(ctx context.Context, stores *Stores) error {
	existing, err := stores.Species.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("seed precheck failed: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	species := []models.Species{
		{Name: "Javan Hawk-Eagle", ScientificName: "Nisaetus bartelsi", Count: 12, Status: models.SpeciesStatusEndangered, Trend: models.SpeciesTrendUp, Category: models.SpeciesCategoryBirds},
		{Name: "Green Peafowl", ScientificName: "Pavo muticus", Count: 28, Status: models.SpeciesStatusVulnerable, Trend: models.SpeciesTrendStable, Category: models.SpeciesCategoryBirds},
		{Name: "Paradise Flycatcher", ScientificName: "Terpsiphone paradisi", Count: 45, Status: models.SpeciesStatusStable, Trend: models.SpeciesTrendUp, Category: models.SpeciesCategoryBirds},
		{Name: "Wallace's Bee", ScientificName: "Megachile pluto", Count: 156, Status: models.SpeciesStatusVulnerable, Trend: models.SpeciesTrendDown, Category: models.SpeciesCategoryInsects},
		{Name: "Atlas Moth", ScientificName: "Attacus atlas", Count: 89, Status: models.SpeciesStatusStable, Trend: models.SpeciesTrendStable, Category: models.SpeciesCategoryInsects},
		{Name: "Freshwater Crayfish", ScientificName: "Cherax quadricarinatus", Count: 342, Status: models.SpeciesStatusThriving, Trend: models.SpeciesTrendUp, Category: models.SpeciesCategoryAquatic},
		{Name: "Giant Gourami", ScientificName: "Osphronemus goramy", Count: 128, Status: models.SpeciesStatusStable, Trend: models.SpeciesTrendUp, Category: models.SpeciesCategoryAquatic},
		{Name: "Rafflesia", ScientificName: "Rafflesia arnoldii", Count: 8, Status: models.SpeciesStatusEndangered, Trend: models.SpeciesTrendDown, Category: models.SpeciesCategoryPlants},
		{Name: "Titan Arum", ScientificName: "Amorphophallus titanum", Count: 15, Status: models.SpeciesStatusVulnerable, Trend: models.SpeciesTrendStable, Category: models.SpeciesCategoryPlants},
	}
	for _, s := range species {
		if _, err := stores.Species.Create(ctx, s); err != nil {
			return fmt.Errorf("failed to seed species: %w", err)
		}
	}

	stations := []models.WaterStation{
		{Name: "Upstream Monitoring Point", Location: "River Basin A, Sector 1", PH: 7.2, Turbidity: 12, Temperature: 24.5, DissolvedOxygen: 8.2, Status: models.WaterStatusExcellent},
		{Name: "Midstream Collection", Location: "River Basin A, Sector 3", PH: 6.8, Turbidity: 28, Temperature: 25.8, DissolvedOxygen: 6.5, Status: models.WaterStatusGood},
		{Name: "Downstream Assessment", Location: "River Basin A, Sector 5", PH: 6.5, Turbidity: 45, Temperature: 26.2, DissolvedOxygen: 5.1, Status: models.WaterStatusFair},
	}
	for _, w := range stations {
		if _, err := stores.WaterStations.Create(ctx, w); err != nil {
			return fmt.Errorf("failed to seed water stations: %w", err)
		}
	}

	carbon := []models.CarbonProject{
		{Name: "Mountain Forest Restoration", Area: 450, Captured: 3420, Target: 4500, Type: models.CarbonTypeReforestation},
		{Name: "Coastal Mangrove Revival", Area: 280, Captured: 2150, Target: 2800, Type: models.CarbonTypeWetland},
		{Name: "Community Agroforestry", Area: 320, Captured: 1890, Target: 3200, Type: models.CarbonTypeAgroforestry},
	}
	for _, c := range carbon {
		if _, err := stores.CarbonProjects.Create(ctx, c); err != nil {
			return fmt.Errorf("failed to seed carbon projects: %w", err)
		}
	}

	alerts := []models.Alert{
		{Title: "High Turbidity Detected", Description: "Water turbidity at Downstream Station exceeds 50 NTU threshold", Severity: models.AlertSeverityCritical, Category: models.AlertCategoryWater, Timestamp: "2 hours ago", Status: models.AlertStatusActive},
		{Title: "Temperature Spike Warning", Description: "River temperature increased by 3°C in 6 hours", Severity: models.AlertSeverityWarning, Category: models.AlertCategoryEnvironment, Timestamp: "5 hours ago", Status: models.AlertStatusAcknowledged},
		{Title: "Endangered Species Sighting", Description: "Javan Hawk-Eagle spotted in protected area - positive indicator", Severity: models.AlertSeverityInfo, Category: models.AlertCategoryBiodiversity, Timestamp: "1 day ago", Status: models.AlertStatusResolved},
		{Title: "Heavy Rainfall Expected", Description: "Weather forecast indicates 120mm+ rainfall in next 48 hours", Severity: models.AlertSeverityWarning, Category: models.AlertCategoryWeather, Timestamp: "3 hours ago", Status: models.AlertStatusActive},
		{Title: "Dissolved Oxygen Below Minimum", Description: "DO levels at 4.2 mg/L, below safe threshold of 5 mg/L", Severity: models.AlertSeverityCritical, Category: models.AlertCategoryWater, Timestamp: "30 minutes ago", Status: models.AlertStatusActive},
	}
	for _, a := range alerts {
		if _, err := stores.Alerts.Create(ctx, a); err != nil {
			return fmt.Errorf("failed to seed alerts: %w", err)
		}
	}

	projects := []models.Project{
		{Name: "Mountain Forest Restoration", Description: "Large-scale reforestation of degraded mountain slopes", Status: models.ProjectStatusInProgress, Progress: 68, Budget: 250000, Spent: 175000, Team: 12, StartDate: "Jan 2024", EndDate: "Dec 2024", Category: models.ProjectCategoryReforestation},
		{Name: "River Basin Water Quality Initiative", Description: "Comprehensive water monitoring and treatment program", Status: models.ProjectStatusInProgress, Progress: 45, Budget: 180000, Spent: 95000, Team: 8, StartDate: "Mar 2024", EndDate: "Mar 2025", Category: models.ProjectCategoryWater},
		{Name: "Endangered Species Protection", Description: "Habitat preservation for critically endangered species", Status: models.ProjectStatusPlanning, Progress: 15, Budget: 320000, Spent: 48000, Team: 6, StartDate: "Jun 2024", EndDate: "Dec 2025", Category: models.ProjectCategoryBiodiversity},
		{Name: "Community Education Program", Description: "Environmental awareness and capacity building initiative", Status: models.ProjectStatusCompleted, Progress: 100, Budget: 95000, Spent: 92000, Team: 5, StartDate: "Sep 2023", EndDate: "May 2024", Category: models.ProjectCategoryCommunity},
	}
	for _, p := range projects {
		if _, err := stores.Projects.Create(ctx, p); err != nil {
			return fmt.Errorf("failed to seed projects: %w", err)
		}
	}

	return nil
}
