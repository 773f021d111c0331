package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCreateSpeciesRequest_Validate(t *testing.T) {
	status := SpeciesStatusStable
	trend := SpeciesTrendUp
	category := SpeciesCategoryBirds
	valid := CreateSpeciesRequest{
		Name:           strPtr("Green Peafowl"),
		ScientificName: strPtr("Pavo muticus"),
		Count:          intPtr(28),
		Status:         &status,
		Trend:          &trend,
		Category:       &category,
	}
	assert.NoError(t, valid.Validate())

	missingName := valid
	missingName.Name = nil
	assert.EqualError(t, missingName.Validate(), "name is required")

	missingCount := valid
	missingCount.Count = nil
	assert.EqualError(t, missingCount.Validate(), "count is required")

	emptyStatus := valid
	empty := SpeciesStatus("")
	emptyStatus.Status = &empty
	assert.Error(t, emptyStatus.Validate())
}

func TestAlertPatch_ApplyPartial(t *testing.T) {
	alert := Alert{
		ID:          "a-1",
		Title:       "High Turbidity Detected",
		Description: "Turbidity exceeds threshold",
		Severity:    AlertSeverityCritical,
		Category:    AlertCategoryWater,
		Timestamp:   "2 hours ago",
		Status:      AlertStatusActive,
	}

	resolved := AlertStatusResolved
	updated := AlertPatch{Status: &resolved}.Apply(alert)

	want := alert
	want.Status = AlertStatusResolved
	assert.Equal(t, want, updated)
}

func TestAlertPatch_EmptyPatchKeepsRecord(t *testing.T) {
	alert := Alert{ID: "a-1", Title: "t", Status: AlertStatusActive}
	assert.Equal(t, alert, AlertPatch{}.Apply(alert))
}

func TestProjectPatch_ApplyMultipleFields(t *testing.T) {
	project := Project{
		ID:       "p-1",
		Name:     "River Basin Water Quality Initiative",
		Status:   ProjectStatusInProgress,
		Progress: 45,
		Budget:   180000,
		Spent:    95000,
		Team:     8,
	}

	done := ProjectStatusCompleted
	progress := 100
	updated := ProjectPatch{Status: &done, Progress: &progress}.Apply(project)

	assert.Equal(t, ProjectStatusCompleted, updated.Status)
	assert.Equal(t, 100, updated.Progress)
	assert.Equal(t, project.Budget, updated.Budget)
	assert.Equal(t, project.Team, updated.Team)
}

func TestCreateUserRequest_RoleDefaultsToOperator(t *testing.T) {
	req := CreateUserRequest{Username: strPtr("ranger"), Password: strPtr("secret")}
	assert.NoError(t, req.Validate())
	assert.Equal(t, RoleOperator, req.Record().Role)

	admin := RoleSysAdmin
	req.Role = &admin
	assert.Equal(t, RoleSysAdmin, req.Record().Role)
}

func TestUserRole_Valid(t *testing.T) {
	for _, r := range Roles {
		assert.True(t, r.Valid())
	}
	assert.False(t, UserRole("intruder").Valid())
	assert.False(t, UserRole("").Valid())
}

func TestSpeciesWithID_DoesNotMutateReceiver(t *testing.T) {
	s := Species{Name: "Rafflesia"}
	withID := s.WithID("s-1")

	assert.Empty(t, s.ID)
	assert.Equal(t, "s-1", withID.ID)
	assert.Equal(t, "s-1", withID.RecordID())
}
