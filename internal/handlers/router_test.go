package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iskandars/NBS-apps/internal/models"
	"github.com/iskandars/NBS-apps/internal/storage"
)

func newTestRouter(t *testing.T, enforce bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	stores := storage.NewMemoryStores()
	require.NoError(t, storage.Seed(context.Background(), stores))
	return NewRouter(stores, nil, enforce)
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

func TestListSpecies_Seeded(t *testing.T) {
	router := newTestRouter(t, false)

	rec := doRequest(t, router, http.MethodGet, "/api/species", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var species []models.Species
	decodeInto(t, rec, &species)
	assert.Len(t, species, 9)
}

func TestListSpecies_FilterByCategory(t *testing.T) {
	router := newTestRouter(t, false)

	rec := doRequest(t, router, http.MethodGet, "/api/species?category=birds", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var species []models.Species
	decodeInto(t, rec, &species)
	require.Len(t, species, 3)
	for _, s := range species {
		assert.Equal(t, models.SpeciesCategoryBirds, s.Category)
	}
}

func TestListSpecies_FilterNoMatchesIsEmptyList(t *testing.T) {
	router := newTestRouter(t, false)

	rec := doRequest(t, router, http.MethodGet, "/api/species?category=mammals", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())
}

func TestCreateSpecies(t *testing.T) {
	router := newTestRouter(t, false)

	body := map[string]any{
		"name":           "Borneo Ironwood",
		"scientificName": "Eusideroxylon zwageri",
		"count":          23,
		"status":         "endangered",
		"trend":          "down",
		"category":       "plants",
	}
	rec := doRequest(t, router, http.MethodPost, "/api/species", body, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Species
	decodeInto(t, rec, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Borneo Ironwood", created.Name)

	list := doRequest(t, router, http.MethodGet, "/api/species", nil, nil)
	var species []models.Species
	decodeInto(t, list, &species)
	assert.Len(t, species, 10)
}

func TestCreateSpecies_MissingFieldRejected(t *testing.T) {
	router := newTestRouter(t, false)

	body := map[string]any{"name": "No Latin Name", "count": 1}
	rec := doRequest(t, router, http.MethodPost, "/api/species", body, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Storage untouched by the invalid create.
	list := doRequest(t, router, http.MethodGet, "/api/species", nil, nil)
	var species []models.Species
	decodeInto(t, list, &species)
	assert.Len(t, species, 9)
}

func TestCreateSpecies_UnknownFieldRejected(t *testing.T) {
	router := newTestRouter(t, false)

	body := map[string]any{
		"name":           "Typo Bird",
		"scientificName": "Avis typographica",
		"count":          1,
		"status":         "stable",
		"trend":          "up",
		"category":       "birds",
		"habitat":        "nowhere",
	}
	rec := doRequest(t, router, http.MethodPost, "/api/species", body, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPatchSpecies_UnknownIDIs404(t *testing.T) {
	router := newTestRouter(t, false)

	rec := doRequest(t, router, http.MethodPatch, "/api/species/no-such-id", map[string]any{"count": 5}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPatchSpecies_UnknownFieldRejected(t *testing.T) {
	router := newTestRouter(t, false)

	list := doRequest(t, router, http.MethodGet, "/api/species", nil, nil)
	var species []models.Species
	decodeInto(t, list, &species)
	require.NotEmpty(t, species)

	rec := doRequest(t, router, http.MethodPatch, "/api/species/"+species[0].ID, map[string]any{"wingspan": 2}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWaterStationByID(t *testing.T) {
	router := newTestRouter(t, false)

	list := doRequest(t, router, http.MethodGet, "/api/water-stations", nil, nil)
	require.Equal(t, http.StatusOK, list.Code)
	var stations []models.WaterStation
	decodeInto(t, list, &stations)
	require.Len(t, stations, 3)

	rec := doRequest(t, router, http.MethodGet, "/api/water-stations/"+stations[0].ID, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var station models.WaterStation
	decodeInto(t, rec, &station)
	assert.Equal(t, stations[0], station)

	missing := doRequest(t, router, http.MethodGet, "/api/water-stations/no-such-id", nil, nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestPatchWaterStation_PreservesUntouchedFields(t *testing.T) {
	router := newTestRouter(t, false)

	list := doRequest(t, router, http.MethodGet, "/api/water-stations", nil, nil)
	var stations []models.WaterStation
	decodeInto(t, list, &stations)
	require.NotEmpty(t, stations)
	before := stations[0]

	rec := doRequest(t, router, http.MethodPatch, "/api/water-stations/"+before.ID, map[string]any{"status": "poor"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var after models.WaterStation
	decodeInto(t, rec, &after)
	want := before
	want.Status = models.WaterStatusPoor
	assert.Equal(t, want, after)
}

func TestCarbonProjects(t *testing.T) {
	router := newTestRouter(t, false)

	list := doRequest(t, router, http.MethodGet, "/api/carbon-projects", nil, nil)
	require.Equal(t, http.StatusOK, list.Code)
	var carbon []models.CarbonProject
	decodeInto(t, list, &carbon)
	require.Len(t, carbon, 3)

	body := map[string]any{
		"name":     "Peatland Rewetting",
		"area":     150,
		"captured": 0,
		"target":   1200,
		"type":     "wetland",
	}
	rec := doRequest(t, router, http.MethodPost, "/api/carbon-projects", body, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.CarbonProject
	decodeInto(t, rec, &created)
	byID := doRequest(t, router, http.MethodGet, "/api/carbon-projects/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusOK, byID.Code)
}

// The alert lifecycle: create, resolve via patch, find via status filter.
func TestAlertLifecycle(t *testing.T) {
	router := newTestRouter(t, false)

	body := map[string]any{
		"title":       "High Turbidity Detected",
		"description": "Water turbidity at Downstream Station exceeds 50 NTU threshold",
		"severity":    "critical",
		"category":    "water",
		"timestamp":   "2 hours ago",
		"status":      "active",
	}
	created := doRequest(t, router, http.MethodPost, "/api/alerts", body, nil)
	require.Equal(t, http.StatusCreated, created.Code)

	var alert models.Alert
	decodeInto(t, created, &alert)
	require.NotEmpty(t, alert.ID)

	patched := doRequest(t, router, http.MethodPatch, "/api/alerts/"+alert.ID, map[string]any{"status": "resolved"}, nil)
	require.Equal(t, http.StatusOK, patched.Code)

	var resolved models.Alert
	decodeInto(t, patched, &resolved)
	want := alert
	want.Status = models.AlertStatusResolved
	assert.Equal(t, want, resolved)

	list := doRequest(t, router, http.MethodGet, "/api/alerts?status=resolved", nil, nil)
	require.Equal(t, http.StatusOK, list.Code)
	var alerts []models.Alert
	decodeInto(t, list, &alerts)
	assert.Contains(t, alerts, resolved)
	for _, a := range alerts {
		assert.Equal(t, models.AlertStatusResolved, a.Status)
	}
}

func TestProjects(t *testing.T) {
	router := newTestRouter(t, false)

	list := doRequest(t, router, http.MethodGet, "/api/projects", nil, nil)
	require.Equal(t, http.StatusOK, list.Code)
	var projects []models.Project
	decodeInto(t, list, &projects)
	require.Len(t, projects, 4)

	byID := doRequest(t, router, http.MethodGet, "/api/projects/"+projects[0].ID, nil, nil)
	assert.Equal(t, http.StatusOK, byID.Code)

	missing := doRequest(t, router, http.MethodGet, "/api/projects/no-such-id", nil, nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestCreateUser(t *testing.T) {
	router := newTestRouter(t, false)

	rec := doRequest(t, router, http.MethodPost, "/api/users", map[string]any{"username": "ranger", "password": "secret"}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var user models.User
	decodeInto(t, rec, &user)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, models.RoleOperator, user.Role)

	byID := doRequest(t, router, http.MethodGet, "/api/users/"+user.ID, nil, nil)
	assert.Equal(t, http.StatusOK, byID.Code)

	dup := doRequest(t, router, http.MethodPost, "/api/users", map[string]any{"username": "ranger", "password": "other"}, nil)
	assert.Equal(t, http.StatusConflict, dup.Code)

	invalid := doRequest(t, router, http.MethodPost, "/api/users", map[string]any{"username": "nopass"}, nil)
	assert.Equal(t, http.StatusBadRequest, invalid.Code)
}

func TestPermittedPanelsEndpoint(t *testing.T) {
	router := newTestRouter(t, false)

	rec := doRequest(t, router, http.MethodGet, "/api/panels?role=operator", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var panels []string
	decodeInto(t, rec, &panels)
	assert.ElementsMatch(t, []string{"climate", "biodiversity", "water", "alerts"}, panels)

	unknown := doRequest(t, router, http.MethodGet, "/api/panels?role=intruder", nil, nil)
	assert.Equal(t, http.StatusBadRequest, unknown.Code)

	missing := doRequest(t, router, http.MethodGet, "/api/panels", nil, nil)
	assert.Equal(t, http.StatusBadRequest, missing.Code)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, false)

	rec := doRequest(t, router, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRBACGate_Enforced(t *testing.T) {
	router := newTestRouter(t, true)

	// No role header.
	rec := doRequest(t, router, http.MethodGet, "/api/projects", nil, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Operator cannot see projects, clientadmin can.
	rec = doRequest(t, router, http.MethodGet, "/api/projects", nil, map[string]string{RoleHeader: "operator"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/projects", nil, map[string]string{RoleHeader: "clientadmin"})
	assert.Equal(t, http.StatusOK, rec.Code)

	// Operator keeps access to its own panels.
	rec = doRequest(t, router, http.MethodGet, "/api/species", nil, map[string]string{RoleHeader: "operator"})
	assert.Equal(t, http.StatusOK, rec.Code)

	// Users sit behind the settings panel: sysadmin only.
	rec = doRequest(t, router, http.MethodPost, "/api/users", map[string]any{"username": "x", "password": "y"}, map[string]string{RoleHeader: "clientadmin"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/users", map[string]any{"username": "x", "password": "y"}, map[string]string{RoleHeader: "sysadmin"})
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Unknown role is rejected outright.
	rec = doRequest(t, router, http.MethodGet, "/api/species", nil, map[string]string{RoleHeader: "intruder"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRBACGate_DisabledByDefault(t *testing.T) {
	router := newTestRouter(t, false)

	rec := doRequest(t, router, http.MethodGet, "/api/projects", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
