package storage

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/iskandars/NBS-apps/internal/models"
)

// Collection names, used as Postgres table names and Redis hash keys.
const (
	collectionSpecies        = "species"
	collectionWaterStations  = "water_stations"
	collectionCarbonProjects = "carbon_projects"
	collectionAlerts         = "alerts"
	collectionProjects       = "projects"
	collectionUsers          = "users"
)

// Stores bundles the six entity stores behind one explicitly constructed
// value that the router receives at startup.
type Stores struct {
	Species        Store[models.Species, models.SpeciesPatch]
	WaterStations  Store[models.WaterStation, models.WaterStationPatch]
	CarbonProjects Store[models.CarbonProject, models.CarbonProjectPatch]
	Alerts         Store[models.Alert, models.AlertPatch]
	Projects       Store[models.Project, models.ProjectPatch]
	Users          *UserStore
}

// NewMemoryStores builds the default in-memory backend.
func NewMemoryStores() *Stores {
	return &Stores{
		Species:        NewMemoryStore[models.Species, models.SpeciesPatch](),
		WaterStations:  NewMemoryStore[models.WaterStation, models.WaterStationPatch](),
		CarbonProjects: NewMemoryStore[models.CarbonProject, models.CarbonProjectPatch](),
		Alerts:         NewMemoryStore[models.Alert, models.AlertPatch](),
		Projects:       NewMemoryStore[models.Project, models.ProjectPatch](),
		Users:          NewUserStore(NewMemoryStore[models.User, models.UserPatch]()),
	}
}

// NewRedisStores builds stores over one hash per entity kind, prefixed with
// "nbs:".
func NewRedisStores(client *redis.Client) *Stores {
	key := func(name string) string { return "nbs:" + name }
	return &Stores{
		Species:        NewRedisStore[models.Species, models.SpeciesPatch](client, key(collectionSpecies)),
		WaterStations:  NewRedisStore[models.WaterStation, models.WaterStationPatch](client, key(collectionWaterStations)),
		CarbonProjects: NewRedisStore[models.CarbonProject, models.CarbonProjectPatch](client, key(collectionCarbonProjects)),
		Alerts:         NewRedisStore[models.Alert, models.AlertPatch](client, key(collectionAlerts)),
		Projects:       NewRedisStore[models.Project, models.ProjectPatch](client, key(collectionProjects)),
		Users:          NewUserStore(NewRedisStore[models.User, models.UserPatch](client, key(collectionUsers))),
	}
}

// NewPostgresStores builds stores over one jsonb table per entity kind,
// creating missing tables.
func NewPostgresStores(db *sqlx.DB) (*Stores, error) {
	species, err := NewPostgresStore[models.Species, models.SpeciesPatch](db, collectionSpecies)
	if err != nil {
		return nil, fmt.Errorf("species store: %w", err)
	}
	stations, err := NewPostgresStore[models.WaterStation, models.WaterStationPatch](db, collectionWaterStations)
	if err != nil {
		return nil, fmt.Errorf("water station store: %w", err)
	}
	carbon, err := NewPostgresStore[models.CarbonProject, models.CarbonProjectPatch](db, collectionCarbonProjects)
	if err != nil {
		return nil, fmt.Errorf("carbon project store: %w", err)
	}
	alerts, err := NewPostgresStore[models.Alert, models.AlertPatch](db, collectionAlerts)
	if err != nil {
		return nil, fmt.Errorf("alert store: %w", err)
	}
	projects, err := NewPostgresStore[models.Project, models.ProjectPatch](db, collectionProjects)
	if err != nil {
		return nil, fmt.Errorf("project store: %w", err)
	}
	users, err := NewPostgresStore[models.User, models.UserPatch](db, collectionUsers)
	if err != nil {
		return nil, fmt.Errorf("user store: %w", err)
	}
	return &Stores{
		Species:        species,
		WaterStations:  stations,
		CarbonProjects: carbon,
		Alerts:         alerts,
		Projects:       projects,
		Users:          NewUserStore(users),
	}, nil
}
