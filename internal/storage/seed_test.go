package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_LoadsFixtures(t *testing.T) {
	ctx := context.Background()
	stores := NewMemoryStores()

	require.NoError(t, Seed(ctx, stores))

	species, err := stores.Species.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, species, 9)

	stations, err := stores.WaterStations.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, stations, 3)

	carbon, err := stores.CarbonProjects.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, carbon, 3)

	alerts, err := stores.Alerts.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, alerts, 5)

	projects, err := stores.Projects.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 4)
}

func TestSeed_Idempotent(t *testing.T) {
	ctx := context.Background()
	stores := NewMemoryStores()

	require.NoError(t, Seed(ctx, stores))
	require.NoError(t, Seed(ctx, stores))

	species, err := stores.Species.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, species, 9)
}
